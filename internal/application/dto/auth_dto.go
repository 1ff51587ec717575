package dto

// LoginRequest body para POST /api/auth/login.
// La respuesta es entity.AuthResult ({success, token, message, user}) sin envoltorio.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}
