package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/crm-pedidos-api/internal/application/auth"
	"github.com/jhoicas/crm-pedidos-api/internal/application/dto"
	"github.com/jhoicas/crm-pedidos-api/internal/domain"
	"github.com/jhoicas/crm-pedidos-api/internal/domain/entity"
	"github.com/jhoicas/crm-pedidos-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake de UserRepository
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	users map[string]*entity.User // por ID
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

var testJWT = auth.JWTConfig{
	Secret:     "test-secret-key-for-unit-tests",
	ExpMinutes: 60,
	Issuer:     "crm-pedidos-test",
}

func registerAna(t *testing.T, uc *auth.AuthUseCase) *dto.UserResponse {
	t.Helper()
	out, err := uc.Register(dto.RegisterRequest{
		FirstName: "Ana",
		LastName:  "Gómez",
		Email:     "ana@test.com",
		Password:  "secreto123",
	})
	require.NoError(t, err)
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Registro
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_HasheaPasswordConBcrypt(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo, testJWT)

	out := registerAna(t, uc)

	stored, err := repo.GetByID(out.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEqual(t, "secreto123", stored.PasswordHash, "el password nunca se guarda en claro")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secreto123")))
}

func TestRegister_EmailDuplicado_Conflict(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo, testJWT)
	registerAna(t, uc)

	_, err := uc.Register(dto.RegisterRequest{
		FirstName: "Otra",
		LastName:  "Ana",
		Email:     "ana@test.com",
		Password:  "otro-secreto",
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_DevuelveTokenConClaims(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo, testJWT)
	out := registerAna(t, uc)

	resp, err := uc.Login(dto.LoginRequest{Email: "ana@test.com", Password: "secreto123"})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)

	claims, err := jwt.Parse(testJWT.Secret, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, out.ID, claims.UserID)
	assert.Equal(t, "ana@test.com", claims.Email)
	assert.Equal(t, "Ana", claims.FirstName)
	assert.Equal(t, "Gómez", claims.LastName)
}

// Email desconocido y password incorrecto devuelven exactamente el mismo
// error: login no sirve para enumerar vendedores registrados.
func TestLogin_CredencialesMalas_Indistinguibles(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo, testJWT)
	registerAna(t, uc)

	_, errEmail := uc.Login(dto.LoginRequest{Email: "nadie@test.com", Password: "secreto123"})
	_, errPass := uc.Login(dto.LoginRequest{Email: "ana@test.com", Password: "incorrecto"})

	assert.ErrorIs(t, errEmail, domain.ErrInvalidCredentials)
	assert.ErrorIs(t, errPass, domain.ErrInvalidCredentials)
	assert.Equal(t, errEmail, errPass, "ambas fallas devuelven el mismo error")
}

// ──────────────────────────────────────────────────────────────────────────────
// Usuario actual
// ──────────────────────────────────────────────────────────────────────────────

func TestCurrentUser_ResuelveElRegistroCompleto(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo, testJWT)
	out := registerAna(t, uc)

	got, err := uc.CurrentUser(&entity.Principal{ID: out.ID, Email: out.Email})
	require.NoError(t, err)
	assert.Equal(t, out.ID, got.ID)
	assert.Equal(t, "Ana", got.FirstName)
}

func TestCurrentUser_SinPrincipal_Unauthorized(t *testing.T) {
	uc := auth.NewAuthUseCase(newFakeUserRepo(), testJWT)

	_, err := uc.CurrentUser(nil)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestCurrentUser_TokenDeUsuarioBorrado_NotFound(t *testing.T) {
	uc := auth.NewAuthUseCase(newFakeUserRepo(), testJWT)

	_, err := uc.CurrentUser(&entity.Principal{ID: "usuario-borrado"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
