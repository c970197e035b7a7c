package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/gestao-api/internal/application/auth"
	"github.com/jhoicas/gestao-api/internal/application/dto"
	"github.com/jhoicas/gestao-api/internal/domain"
	"github.com/jhoicas/gestao-api/internal/domain/entity"
	"github.com/jhoicas/gestao-api/internal/domain/repository"
)

// UserUseCase administración de usuarios (rutas solo admin).
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// Create da de alta un usuario. Username y email son únicos (ErrDuplicate).
func (uc *UserUseCase) Create(ctx context.Context, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if in.Role == "" {
		in.Role = entity.RoleUser
	}
	if !entity.IsValidRole(in.Role) {
		return nil, invalid("role inválido: %s", in.Role)
	}
	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	perms := in.Permissions
	if len(perms) == 0 {
		perms = json.RawMessage(`{}`)
	}
	now := time.Now()
	u := &entity.User{
		ID:           uuid.New().String(),
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hash,
		Role:         in.Role,
		Active:       true,
		Permissions:  perms,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(ctx, u); err != nil {
		return nil, err
	}
	return auth.ToUserResponse(u), nil
}

// GetByID devuelve nil, nil si el usuario no existe.
func (uc *UserUseCase) GetByID(ctx context.Context, id string) (*dto.UserResponse, error) {
	u, err := uc.repo.GetByID(ctx, id)
	if err != nil || u == nil {
		return nil, err
	}
	return auth.ToUserResponse(u), nil
}

func (uc *UserUseCase) List(ctx context.Context, page dto.PageRequest) (*dto.UserListResponse, error) {
	list, err := uc.repo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *auth.ToUserResponse(u))
	}
	return &dto.UserListResponse{Items: items, Page: dto.PageResponse{Limit: page.Limit, Offset: page.Offset}}, nil
}

// Update aplica solo los campos presentes. Un admin no puede quitarse su propio rol.
func (uc *UserUseCase) Update(ctx context.Context, actorID, id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	u, err := uc.repo.GetByID(ctx, id)
	if err != nil || u == nil {
		return nil, err
	}
	if in.Role != nil {
		if !entity.IsValidRole(*in.Role) {
			return nil, invalid("role inválido: %s", *in.Role)
		}
		if actorID == id && *in.Role != entity.RoleAdmin {
			return nil, domain.ErrConflict
		}
		u.Role = *in.Role
	}
	if in.Active != nil {
		if actorID == id && !*in.Active {
			return nil, domain.ErrConflict
		}
		u.Active = *in.Active
	}
	setString(&u.Email, in.Email)
	if in.Password != nil {
		hash, err := auth.HashPassword(*in.Password)
		if err != nil {
			return nil, err
		}
		u.PasswordHash = hash
	}
	if len(in.Permissions) > 0 {
		u.Permissions = in.Permissions
	}
	u.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, u); err != nil {
		return nil, err
	}
	return auth.ToUserResponse(u), nil
}

// Delete elimina un usuario; nadie puede eliminarse a sí mismo.
func (uc *UserUseCase) Delete(ctx context.Context, actorID, id string) error {
	if actorID == id {
		return domain.ErrConflict
	}
	u, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if u == nil {
		return domain.ErrUserNotFound
	}
	return uc.repo.Delete(ctx, id)
}
