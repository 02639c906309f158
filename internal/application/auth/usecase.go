package auth

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/textil-crm/internal/application/dto"
	"github.com/tu-usuario/textil-crm/internal/domain"
	"github.com/tu-usuario/textil-crm/internal/domain/entity"
	"github.com/tu-usuario/textil-crm/internal/domain/repository"
	"github.com/tu-usuario/textil-crm/pkg/config"
	"github.com/tu-usuario/textil-crm/pkg/jwt"
)

// roles válidos asignables en el registro.
var roles = map[string]bool{
	entity.RoleAdmin:   true,
	entity.RoleManager: true,
	entity.RoleUser:    true,
}

// UseCase casos de uso de autenticación.
type UseCase struct {
	userRepo repository.UserRepository
	jwtCfg   config.JWTConfig
}

// NewUseCase construye el caso de uso.
func NewUseCase(userRepo repository.UserRepository, jwtCfg config.JWTConfig) *UseCase {
	return &UseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Register registra un usuario nuevo. El password se guarda como hash bcrypt.
func (uc *UseCase) Register(in dto.RegisterRequest) (*dto.UserResponse, error) {
	if in.Username == "" || in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	role := in.Role
	if role == "" {
		role = entity.RoleUser
	}
	if !roles[role] {
		return nil, domain.ErrInvalidInput
	}

	existing, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	existing, err = uc.userRepo.GetByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         role,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Login valida credenciales y emite un JWT con el rol del usuario.
// Credenciales inválidas y usuarios inactivos devuelven siempre ErrUnauthorized
// para no revelar cuál de los dos falló.
func (uc *UseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if !user.IsActive {
		return nil, domain.ErrUnauthorized
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Username, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.Expiration)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *toUserResponse(user),
	}, nil
}

// GetByID obtiene un usuario por ID (perfil propio).
func (uc *UseCase) GetByID(id string) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return toUserResponse(user), nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Role:      u.Role,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
