package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/crm-pedidos-api/internal/application/dto"
	"github.com/jhoicas/crm-pedidos-api/internal/domain"
	"github.com/jhoicas/crm-pedidos-api/internal/domain/entity"
	"github.com/jhoicas/crm-pedidos-api/internal/domain/repository"
)

// ClientUseCase casos de uso para clientes de un vendedor.
// Toda mutación y la lectura individual pasan por el guard de propiedad:
// primero existencia (ErrNotFound), después propiedad (ErrForbidden).
// Ese orden mantiene distinguibles "no existe" y "no es suyo".
type ClientUseCase struct {
	repo repository.ClientRepository
}

// NewClientUseCase construye el caso de uso.
func NewClientUseCase(repo repository.ClientRepository) *ClientUseCase {
	return &ClientUseCase{repo: repo}
}

// ownedClient carga el cliente y verifica que pertenece al principal.
func (uc *ClientUseCase) ownedClient(id string, principal *entity.Principal) (*entity.Client, error) {
	if principal == nil {
		return nil, domain.ErrUnauthorized
	}
	client, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	if client.SellerID != principal.ID {
		return nil, domain.ErrForbidden
	}
	return client, nil
}

// Create registra un cliente para el vendedor autenticado. El email es único
// global; SellerID se estampa del principal, nunca del input.
func (uc *ClientUseCase) Create(principal *entity.Principal, in dto.CreateClientRequest) (*dto.ClientResponse, error) {
	if principal == nil {
		return nil, domain.ErrUnauthorized
	}
	existing, err := uc.repo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	client := &entity.Client{
		ID:        uuid.New().String(),
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Company:   in.Company,
		Email:     in.Email,
		Phone:     in.Phone,
		SellerID:  principal.ID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// GetByID obtiene un cliente aplicando el guard de propiedad.
func (uc *ClientUseCase) GetByID(principal *entity.Principal, id string) (*dto.ClientResponse, error) {
	client, err := uc.ownedClient(id, principal)
	if err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// ListAll lista todos los clientes sin filtrar por vendedor (lectura administrativa).
func (uc *ClientUseCase) ListAll() ([]dto.ClientResponse, error) {
	list, err := uc.repo.ListAll()
	if err != nil {
		return nil, err
	}
	return toClientResponses(list), nil
}

// ListMine lista los clientes del vendedor autenticado.
func (uc *ClientUseCase) ListMine(principal *entity.Principal) ([]dto.ClientResponse, error) {
	if principal == nil {
		return nil, domain.ErrUnauthorized
	}
	list, err := uc.repo.ListBySeller(principal.ID)
	if err != nil {
		return nil, err
	}
	return toClientResponses(list), nil
}

// Update actualiza un cliente del vendedor (merge de campos presentes).
// SellerID es inmutable; el patch no lo acepta.
func (uc *ClientUseCase) Update(principal *entity.Principal, id string, in dto.UpdateClientRequest) (*dto.ClientResponse, error) {
	client, err := uc.ownedClient(id, principal)
	if err != nil {
		return nil, err
	}
	if in.Email != nil && *in.Email != client.Email {
		existing, err := uc.repo.GetByEmail(*in.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, domain.ErrDuplicate
		}
		client.Email = *in.Email
	}
	if in.FirstName != nil {
		client.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		client.LastName = *in.LastName
	}
	if in.Company != nil {
		client.Company = *in.Company
	}
	if in.Phone != nil {
		client.Phone = *in.Phone
	}
	client.UpdatedAt = time.Now()
	if err := uc.repo.Update(client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// Delete elimina un cliente del vendedor.
func (uc *ClientUseCase) Delete(principal *entity.Principal, id string) error {
	if _, err := uc.ownedClient(id, principal); err != nil {
		return err
	}
	return uc.repo.Delete(id)
}

func toClientResponses(list []*entity.Client) []dto.ClientResponse {
	items := make([]dto.ClientResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toClientResponse(c))
	}
	return items
}

func toClientResponse(c *entity.Client) *dto.ClientResponse {
	if c == nil {
		return nil
	}
	return &dto.ClientResponse{
		ID:        c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Company:   c.Company,
		Email:     c.Email,
		Phone:     c.Phone,
		SellerID:  c.SellerID,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
