package dto

import "time"

// CreateUserRequest alta de usuario (capacidad ManageUsers).
// La contraseña se deriva del esquema demo, no viene en el request.
type CreateUserRequest struct {
	Email              string   `json:"email"`
	Name               string   `json:"name"`
	Role               string   `json:"role"`
	Phone              string   `json:"phone"`
	AssignedProjectIDs []string `json:"assigned_project_ids"`
}

// UpdateUserRequest edición parcial. El rol es inmutable una vez creado.
type UpdateUserRequest struct {
	Name               *string   `json:"name"`
	Phone              *string   `json:"phone"`
	AssignedProjectIDs *[]string `json:"assigned_project_ids"`
}

// UserResponse representación pública del usuario (sin hash).
type UserResponse struct {
	ID                 string    `json:"id"`
	Email              string    `json:"email"`
	Name               string    `json:"name"`
	Role               string    `json:"role"`
	Phone              string    `json:"phone,omitempty"`
	AssignedProjectIDs []string  `json:"assigned_project_ids,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// UserListResponse listado de usuarios.
type UserListResponse struct {
	Items []UserResponse `json:"items"`
	Total int            `json:"total"`
}
