package entity

import "time"

// Roles de usuario.
const (
	RoleAdmin    = "Admin"
	RoleManager  = "Manager"
	RoleEmployee = "Employee"
)

// User representa una cuenta de acceso. PasswordHash nunca se serializa.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username" validate:"required,max=100"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role" validate:"required,oneof=Admin Manager Employee"`
	FullName     string    `json:"fullName" validate:"max=200"`
	Email        string    `json:"email" validate:"omitempty,email"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Profile devuelve la parte pública del usuario.
func (u *User) Profile() *UserProfile {
	return &UserProfile{
		ID:       u.ID,
		Username: u.Username,
		FullName: u.FullName,
		Role:     u.Role,
		Email:    u.Email,
	}
}

// UserProfile datos públicos del usuario autenticado.
type UserProfile struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	FullName string `json:"fullName"`
	Role     string `json:"role"`
	Email    string `json:"email,omitempty"`
}

// AuthResult resultado de un intento de login.
// Si Success es false no hay Token ni User.
type AuthResult struct {
	Success bool         `json:"success"`
	Token   string       `json:"token,omitempty"`
	Message string       `json:"message,omitempty"`
	User    *UserProfile `json:"user,omitempty"`
}

// FailedAuth construye un AuthResult fallido con el mensaje indicado.
func FailedAuth(message string) AuthResult {
	return AuthResult{Success: false, Message: message}
}
