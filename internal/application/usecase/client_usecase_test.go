package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/crm-pedidos-api/internal/application/dto"
	"github.com/jhoicas/crm-pedidos-api/internal/application/usecase"
	"github.com/jhoicas/crm-pedidos-api/internal/domain"
	"github.com/jhoicas/crm-pedidos-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake de ClientRepository
// ──────────────────────────────────────────────────────────────────────────────

type memClientRepo struct {
	clients map[string]*entity.Client
}

func newMemClientRepo(clients ...*entity.Client) *memClientRepo {
	r := &memClientRepo{clients: make(map[string]*entity.Client)}
	for _, c := range clients {
		cp := *c
		r.clients[c.ID] = &cp
	}
	return r
}

func (r *memClientRepo) Create(c *entity.Client) error {
	cp := *c
	r.clients[c.ID] = &cp
	return nil
}

func (r *memClientRepo) GetByID(id string) (*entity.Client, error) {
	c, ok := r.clients[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *memClientRepo) GetByEmail(email string) (*entity.Client, error) {
	for _, c := range r.clients {
		if c.Email == email {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memClientRepo) ListAll() ([]*entity.Client, error) {
	list := make([]*entity.Client, 0, len(r.clients))
	for _, c := range r.clients {
		cp := *c
		list = append(list, &cp)
	}
	return list, nil
}

func (r *memClientRepo) ListBySeller(sellerID string) ([]*entity.Client, error) {
	all, _ := r.ListAll()
	list := make([]*entity.Client, 0, len(all))
	for _, c := range all {
		if c.SellerID == sellerID {
			list = append(list, c)
		}
	}
	return list, nil
}

func (r *memClientRepo) Update(c *entity.Client) error {
	cp := *c
	r.clients[c.ID] = &cp
	return nil
}

func (r *memClientRepo) Delete(id string) error {
	delete(r.clients, id)
	return nil
}

var (
	vendedoraAna  = &entity.Principal{ID: "seller-ana", Email: "ana@test.com"}
	vendedorJuan  = &entity.Principal{ID: "seller-juan", Email: "juan@test.com"}
	clienteDeAna  = &entity.Client{ID: "cli-1", FirstName: "Luis", LastName: "Rojas", Company: "Acme", Email: "luis@acme.com", SellerID: "seller-ana"}
	clienteDeJuan = &entity.Client{ID: "cli-2", FirstName: "Marta", LastName: "Peña", Company: "Beta", Email: "marta@beta.com", SellerID: "seller-juan"}
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestClientCreate_EstampaVendedorDelPrincipal(t *testing.T) {
	repo := newMemClientRepo()
	uc := usecase.NewClientUseCase(repo)

	out, err := uc.Create(vendedoraAna, dto.CreateClientRequest{
		FirstName: "Luis",
		LastName:  "Rojas",
		Company:   "Acme",
		Email:     "luis@acme.com",
	})
	require.NoError(t, err)
	assert.Equal(t, vendedoraAna.ID, out.SellerID, "el vendedor sale del token, no del body")
}

func TestClientCreate_EmailDuplicado_Conflict(t *testing.T) {
	repo := newMemClientRepo(clienteDeAna)
	uc := usecase.NewClientUseCase(repo)

	_, err := uc.Create(vendedorJuan, dto.CreateClientRequest{
		FirstName: "Otro",
		LastName:  "Luis",
		Company:   "Gamma",
		Email:     "luis@acme.com", // ya registrado, aunque sea de otro vendedor
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate, "el email de cliente es único global")
}

func TestClientGetByID_ExistenciaAntesQuePropiedad(t *testing.T) {
	repo := newMemClientRepo(clienteDeAna)
	uc := usecase.NewClientUseCase(repo)

	got, err := uc.GetByID(vendedoraAna, "cli-1")
	require.NoError(t, err)
	assert.Equal(t, "Luis", got.FirstName)

	_, err = uc.GetByID(vendedorJuan, "cli-1")
	assert.ErrorIs(t, err, domain.ErrForbidden, "el cliente existe pero es de otro vendedor")

	_, err = uc.GetByID(vendedoraAna, "cli-fantasma")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.GetByID(nil, "cli-1")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestClientUpdate_MergeParcialYGuard(t *testing.T) {
	repo := newMemClientRepo(clienteDeAna)
	uc := usecase.NewClientUseCase(repo)

	empresa := "Acme Internacional"
	out, err := uc.Update(vendedoraAna, "cli-1", dto.UpdateClientRequest{Company: &empresa})
	require.NoError(t, err)
	assert.Equal(t, "Acme Internacional", out.Company)
	assert.Equal(t, "Luis", out.FirstName, "los campos ausentes no se tocan")
	assert.Equal(t, vendedoraAna.ID, out.SellerID, "el vendedor es inmutable")

	_, err = uc.Update(vendedorJuan, "cli-1", dto.UpdateClientRequest{Company: &empresa})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestClientUpdate_EmailDuplicado_Conflict(t *testing.T) {
	repo := newMemClientRepo(clienteDeAna, clienteDeJuan)
	uc := usecase.NewClientUseCase(repo)

	ocupado := "marta@beta.com"
	_, err := uc.Update(vendedoraAna, "cli-1", dto.UpdateClientRequest{Email: &ocupado})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestClientDelete_SoloSuVendedor(t *testing.T) {
	repo := newMemClientRepo(clienteDeAna)
	uc := usecase.NewClientUseCase(repo)

	err := uc.Delete(vendedorJuan, "cli-1")
	assert.ErrorIs(t, err, domain.ErrForbidden)

	require.NoError(t, uc.Delete(vendedoraAna, "cli-1"))
	_, err = uc.GetByID(vendedoraAna, "cli-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestClientListMine_FiltraPorVendedor(t *testing.T) {
	repo := newMemClientRepo(clienteDeAna, clienteDeJuan)
	uc := usecase.NewClientUseCase(repo)

	mine, err := uc.ListMine(vendedoraAna)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "cli-1", mine[0].ID)

	all, err := uc.ListAll()
	require.NoError(t, err)
	assert.Len(t, all, 2, "la lectura administrativa no filtra")
}
