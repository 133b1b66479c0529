package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/vetpharm/vetpharm-pro/internal/application/dto"
	"github.com/vetpharm/vetpharm-pro/internal/domain"
	"github.com/vetpharm/vetpharm-pro/internal/domain/entity"
	"github.com/vetpharm/vetpharm-pro/internal/domain/repository"
	"golang.org/x/crypto/bcrypt"
)

// UserUseCase CRUD de usuarios gestionados (módulo Users, solo Admin).
// Los passwords de los registros gestionados se hashean con bcrypt; las
// cuentas demo del login viven en su propia tabla y no pasan por aquí.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// Create crea un usuario: hashea password y persiste.
// Devuelve ErrEmailAlreadyExists si el email ya existe.
func (uc *UserUseCase) Create(in dto.CreateUserRequest) (*dto.UserResponse, error) {
	role, ok := entity.ParseRole(in.Role)
	if !ok {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.repo.FindByEmail(in.Email)
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        in.Email,
		Name:         in.Name,
		Role:         role,
		Avatar:       in.Avatar,
		PasswordHash: string(hash),
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// GetByID obtiene un usuario por ID. nil sin error si no existe.
func (uc *UserUseCase) GetByID(id string) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	return toUserResponse(user), nil
}

// List devuelve el listado paginado de usuarios.
func (uc *UserUseCase) List(limit, offset int) (*dto.UserListResponse, error) {
	users, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		items = append(items, *toUserResponse(u))
	}
	return &dto.UserListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update modifica nombre, rol, estado, avatar y/o password de un usuario.
// Degradar o desactivar al último Admin está prohibido.
func (uc *UserUseCase) Update(id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}

	demotesAdmin := user.Role == entity.RoleAdmin &&
		((in.Role != "" && in.Role != string(entity.RoleAdmin)) || in.Status == "inactive")
	if demotesAdmin {
		admins, err := uc.repo.CountByRole(entity.RoleAdmin)
		if err != nil {
			return nil, err
		}
		if admins <= 1 {
			return nil, domain.ErrLastAdmin
		}
	}

	if in.Name != "" {
		user.Name = in.Name
	}
	if in.Role != "" {
		role, ok := entity.ParseRole(in.Role)
		if !ok {
			return nil, domain.ErrInvalidInput
		}
		user.Role = role
	}
	if in.Status != "" {
		user.Status = in.Status
	}
	if in.Avatar != "" {
		user.Avatar = in.Avatar
	}
	if in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	user.UpdatedAt = time.Now()
	if err := uc.repo.Update(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Delete elimina un usuario. El último Admin no puede eliminarse.
func (uc *UserUseCase) Delete(id string) error {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	if user.Role == entity.RoleAdmin {
		admins, err := uc.repo.CountByRole(entity.RoleAdmin)
		if err != nil {
			return err
		}
		if admins <= 1 {
			return domain.ErrLastAdmin
		}
	}
	return uc.repo.Delete(id)
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      string(u.Role),
		Avatar:    u.Avatar,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
