package api

import "time"

// Request/response structures for the authentication and task endpoints.
// Bodies are validated here at the boundary, before any service logic runs.

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	Email     string `json:"email"     validate:"required,email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Password  string `json:"password"  validate:"required,max=72"`
}

// RegisterResponse defines the successful registration response.
type RegisterResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginUser carries the display fields returned on login.
type LoginUser struct {
	FirstName string `json:"firstName"`
}

// LoginResponse defines the successful login response.
type LoginResponse struct {
	Token string    `json:"token"`
	User  LoginUser `json:"user"`
}

// CreateTaskRequest defines the payload for task creation. The external uuid
// is optional; a missing one is generated server-side.
type CreateTaskRequest struct {
	Task        string `json:"task"        validate:"required"`
	Description string `json:"description"`
	UUID        string `json:"uuid"`
}

// UpdateTaskRequest defines the payload for partial task updates. Pointer
// fields distinguish "absent" from "set to zero value"; absent fields leave
// the stored record unchanged.
type UpdateTaskRequest struct {
	Task        *string    `json:"task"        validate:"omitempty,min=1"`
	Description *string    `json:"description"`
	Status      *string    `json:"status"      validate:"omitempty,min=1"`
	CompletedAt *time.Time `json:"completedAt"`
}
