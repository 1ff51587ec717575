package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/blackwoods-compta/internal/application/dto"
	"github.com/jhoicas/blackwoods-compta/internal/domain/repository"
)

// AuthHandler maneja el login.
type AuthHandler struct {
	repo repository.AuthRepository
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(repo repository.AuthRepository) *AuthHandler {
	return &AuthHandler{repo: repo}
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "username, password"
// @Success      200   {object}  entity.AuthResult
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  entity.AuthResult
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	if in.Username == "" || in.Password == "" {
		return badRequest(c, "username y password son requeridos")
	}
	res := h.repo.Login(c.Context(), in.Username, in.Password)
	if !res.Success {
		return c.Status(fiber.StatusUnauthorized).JSON(res)
	}
	return c.JSON(res)
}
