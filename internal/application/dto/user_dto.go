package dto

import "time"

// CreateUserRequest entrada para crear un usuario gestionado
// (password en texto, se hashea con bcrypt en el use case).
type CreateUserRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name" validate:"required,min=1,max=200"`
	Role     string `json:"role" validate:"required,oneof=Admin Staff Vet Auditor"`
	Avatar   string `json:"avatar" validate:"omitempty,uri"`
}

// UpdateUserRequest entrada para actualizar un usuario. Campos opcionales.
type UpdateUserRequest struct {
	Name     string `json:"name" validate:"omitempty,min=1,max=200"`
	Role     string `json:"role" validate:"omitempty,oneof=Admin Staff Vet Auditor"`
	Status   string `json:"status" validate:"omitempty,oneof=active inactive"`
	Password string `json:"password" validate:"omitempty,min=8"`
	Avatar   string `json:"avatar" validate:"omitempty,uri"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Avatar    string    `json:"avatar,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserListResponse listado paginado de usuarios.
type UserListResponse struct {
	Items []UserResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
