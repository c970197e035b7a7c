package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/gestao-api/internal/application/dto"
	"github.com/jhoicas/gestao-api/internal/domain"
	"github.com/jhoicas/gestao-api/internal/domain/entity"
	"github.com/jhoicas/gestao-api/internal/domain/repository"
	"github.com/jhoicas/gestao-api/pkg/jwt"
	"github.com/jhoicas/gestao-api/pkg/logger"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// BootstrapTxRunner ejecuta fn con repositorios atados a una misma transacción.
type BootstrapTxRunner interface {
	RunBootstrap(ctx context.Context, fn func(users repository.UserRepository, settings repository.SettingsRepository) error) error
}

// AuthUseCase casos de uso de autenticación: login, sesión actual y contraseña.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
	log      *logger.Logger
	now      func() time.Time
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig, log *logger.Logger) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg, log: log, now: time.Now}
}

// Login acepta username o email. Credenciales incorrectas y usuario inexistente
// devuelven el mismo ErrUnauthorized.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.findUser(ctx, strings.TrimSpace(in.Username))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		uc.log.Warn().Str("username", user.Username).Msg("login: senha incorreta")
		return nil, domain.ErrUnauthorized
	}
	if !user.Active {
		return nil, domain.ErrInactiveUser
	}

	now := uc.now()
	token, err := jwt.Generate(uc.jwtCfg.Secret, jwt.Principal{UserID: user.ID, Username: user.Username, Role: user.Role}, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	if err := uc.userRepo.TouchLastLogin(ctx, user.ID, now); err != nil {
		return nil, err
	}
	user.LastLogin = &now
	uc.log.Info().Str("user_id", user.ID).Msg("login")

	return &dto.LoginResponse{
		Token:     token,
		ExpiresAt: now.Add(time.Duration(uc.jwtCfg.ExpMinutes) * time.Minute),
		User:      *ToUserResponse(user),
	}, nil
}

// Me devuelve el usuario de la sesión.
func (uc *AuthUseCase) Me(ctx context.Context, userID string) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return ToUserResponse(user), nil
}

// ChangePassword exige la contraseña actual.
func (uc *AuthUseCase) ChangePassword(ctx context.Context, userID string, in dto.ChangePasswordRequest) error {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.CurrentPassword)); err != nil {
		return fmt.Errorf("%w: senha atual incorreta", domain.ErrInvalidInput)
	}
	hash, err := HashPassword(in.NewPassword)
	if err != nil {
		return err
	}
	user.PasswordHash = hash
	user.UpdatedAt = uc.now()
	return uc.userRepo.Update(ctx, user)
}

// BootstrapAdmin crea el administrador inicial y la configuración por defecto
// en una única transacción. Si el usuario ya existe no hace nada y devuelve false.
func BootstrapAdmin(ctx context.Context, tx BootstrapTxRunner, username, email, password string) (bool, error) {
	if username == "" || email == "" || len(password) < 6 {
		return false, fmt.Errorf("%w: admin requer username, email e senha de 6+ caracteres", domain.ErrInvalidInput)
	}
	hash, err := HashPassword(password)
	if err != nil {
		return false, err
	}
	created := false
	err = tx.RunBootstrap(ctx, func(users repository.UserRepository, settings repository.SettingsRepository) error {
		existing, err := users.GetByUsername(ctx, username)
		if err != nil {
			return err
		}
		if existing != nil {
			return nil
		}
		now := time.Now()
		admin := &entity.User{
			ID:           uuid.New().String(),
			Username:     username,
			Email:        email,
			PasswordHash: hash,
			Role:         entity.RoleAdmin,
			Active:       true,
			Permissions:  json.RawMessage(`{}`),
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := users.Create(ctx, admin); err != nil {
			return err
		}
		cur, err := settings.Get(ctx)
		if err != nil {
			return err
		}
		if cur == nil {
			def := entity.DefaultCompanySettings()
			def.UpdatedAt = now
			if err := settings.Save(ctx, &def); err != nil {
				return err
			}
		}
		created = true
		return nil
	})
	return created, err
}

// HashPassword bcrypt con costo por defecto.
func HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

func (uc *AuthUseCase) findUser(ctx context.Context, login string) (*entity.User, error) {
	if strings.Contains(login, "@") {
		return uc.userRepo.GetByEmail(ctx, login)
	}
	return uc.userRepo.GetByUsername(ctx, login)
}

// ToUserResponse convierte la entidad sin exponer el hash.
func ToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:          u.ID,
		Username:    u.Username,
		Email:       u.Email,
		Role:        u.Role,
		Active:      u.Active,
		Permissions: u.Permissions,
		LastLogin:   u.LastLogin,
		CreatedAt:   u.CreatedAt,
	}
}
