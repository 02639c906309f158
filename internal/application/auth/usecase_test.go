package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/textil-crm/internal/application/dto"
	"github.com/tu-usuario/textil-crm/internal/domain"
	"github.com/tu-usuario/textil-crm/internal/domain/entity"
	"github.com/tu-usuario/textil-crm/pkg/config"
	"github.com/tu-usuario/textil-crm/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{}}
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

func (r *fakeUserRepo) GetByUsername(username string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(u *entity.User) error {
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) List(limit, offset int) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}

func (r *fakeUserRepo) ListByRole(role string) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.users {
		if u.Role == role {
			out = append(out, u)
		}
	}
	return out, nil
}

var testJWTCfg = config.JWTConfig{
	Secret:     "secreto-de-prueba",
	Expiration: 60,
	Issuer:     "textil-crm-test",
}

func register(t *testing.T, uc *UseCase, username, email, password, role string) *dto.UserResponse {
	t.Helper()
	out, err := uc.Register(dto.RegisterRequest{
		Username: username,
		Email:    email,
		Password: password,
		Role:     role,
	})
	require.NoError(t, err)
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Registro
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_RolPorDefectoEsUser(t *testing.T) {
	uc := NewUseCase(newFakeUserRepo(), testJWTCfg)

	out := register(t, uc, "ana", "ana@textil.com", "secreta123", "")
	assert.Equal(t, entity.RoleUser, out.Role)
	assert.True(t, out.IsActive)
}

func TestRegister_RolInvalido(t *testing.T) {
	uc := NewUseCase(newFakeUserRepo(), testJWTCfg)

	_, err := uc.Register(dto.RegisterRequest{
		Username: "ana",
		Email:    "ana@textil.com",
		Password: "secreta123",
		Role:     "superusuario",
	})
	assert.Equal(t, domain.ErrInvalidInput, err)
}

func TestRegister_CamposRequeridos(t *testing.T) {
	uc := NewUseCase(newFakeUserRepo(), testJWTCfg)

	_, err := uc.Register(dto.RegisterRequest{Username: "ana"})
	assert.Equal(t, domain.ErrInvalidInput, err)
}

func TestRegister_EmailDuplicado(t *testing.T) {
	uc := NewUseCase(newFakeUserRepo(), testJWTCfg)
	register(t, uc, "ana", "ana@textil.com", "secreta123", "")

	_, err := uc.Register(dto.RegisterRequest{
		Username: "otra",
		Email:    "ana@textil.com",
		Password: "secreta123",
	})
	assert.Equal(t, domain.ErrEmailAlreadyExists, err)
}

func TestRegister_UsernameDuplicado(t *testing.T) {
	uc := NewUseCase(newFakeUserRepo(), testJWTCfg)
	register(t, uc, "ana", "ana@textil.com", "secreta123", "")

	_, err := uc.Register(dto.RegisterRequest{
		Username: "ana",
		Email:    "otra@textil.com",
		Password: "secreta123",
	})
	assert.Equal(t, domain.ErrDuplicate, err)
}

func TestRegister_NoGuardaPasswordEnClaro(t *testing.T) {
	repo := newFakeUserRepo()
	uc := NewUseCase(repo, testJWTCfg)

	out := register(t, uc, "ana", "ana@textil.com", "secreta123", "")
	stored := repo.users[out.ID]
	assert.NotEqual(t, "secreta123", stored.PasswordHash)
	assert.NotEmpty(t, stored.PasswordHash)
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_EmiteTokenConRol(t *testing.T) {
	uc := NewUseCase(newFakeUserRepo(), testJWTCfg)
	registered := register(t, uc, "ana", "ana@textil.com", "secreta123", entity.RoleManager)

	out, err := uc.Login(dto.LoginRequest{Username: "ana", Password: "secreta123"})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)
	assert.Equal(t, registered.ID, out.User.ID)

	userID, username, role, err := jwt.Parse(testJWTCfg.Secret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, registered.ID, userID)
	assert.Equal(t, "ana", username)
	assert.Equal(t, entity.RoleManager, role)
}

func TestLogin_PasswordIncorrecto(t *testing.T) {
	uc := NewUseCase(newFakeUserRepo(), testJWTCfg)
	register(t, uc, "ana", "ana@textil.com", "secreta123", "")

	_, err := uc.Login(dto.LoginRequest{Username: "ana", Password: "equivocada"})
	assert.Equal(t, domain.ErrUnauthorized, err)
}

func TestLogin_UsuarioInexistente(t *testing.T) {
	uc := NewUseCase(newFakeUserRepo(), testJWTCfg)

	_, err := uc.Login(dto.LoginRequest{Username: "fantasma", Password: "lo-que-sea"})
	assert.Equal(t, domain.ErrUnauthorized, err)
}

func TestLogin_UsuarioInactivo(t *testing.T) {
	repo := newFakeUserRepo()
	uc := NewUseCase(repo, testJWTCfg)
	registered := register(t, uc, "ana", "ana@textil.com", "secreta123", "")

	stored := repo.users[registered.ID]
	stored.IsActive = false

	// El usuario inactivo recibe el mismo error que las credenciales malas.
	_, err := uc.Login(dto.LoginRequest{Username: "ana", Password: "secreta123"})
	assert.Equal(t, domain.ErrUnauthorized, err)
}

func TestGetByID_Inexistente(t *testing.T) {
	uc := NewUseCase(newFakeUserRepo(), testJWTCfg)

	_, err := uc.GetByID("no-existe")
	assert.Equal(t, domain.ErrUserNotFound, err)
}
