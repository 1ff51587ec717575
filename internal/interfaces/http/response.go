package http

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/blackwoods-compta/internal/application/dto"
	"github.com/jhoicas/blackwoods-compta/internal/domain"
)

// errorStatus traduce errores de dominio a estado HTTP y código de la API.
var errorStatus = []struct {
	err    error
	status int
	code   string
}{
	{domain.ErrValidation, fiber.StatusBadRequest, dto.CodeValidation},
	{domain.ErrNotFound, fiber.StatusNotFound, dto.CodeNotFound},
	{domain.ErrInsufficientStock, fiber.StatusConflict, dto.CodeInsufficientStock},
	{domain.ErrDuplicate, fiber.StatusConflict, dto.CodeConflict},
	{domain.ErrConflict, fiber.StatusConflict, dto.CodeConflict},
	{domain.ErrInvalidTransition, fiber.StatusConflict, dto.CodeConflict},
	{domain.ErrUnauthorized, fiber.StatusUnauthorized, dto.CodeUnauthorized},
}

// fail responde con el error de dominio; lo desconocido es 500 sin detalle.
func fail(c *fiber.Ctx, err error) error {
	for _, e := range errorStatus {
		if errors.Is(err, e.err) {
			return c.Status(e.status).JSON(dto.ErrorResponse{Code: e.code, Message: err.Error()})
		}
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: dto.CodeInternal, Message: "error interno"})
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: dto.CodeValidation, Message: msg})
}

func notFound(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: dto.CodeNotFound, Message: msg})
}

func ok[T any](c *fiber.Ctx, data T) error {
	return c.JSON(dto.OK(data))
}

func created[T any](c *fiber.Ctx, data T) error {
	return c.Status(fiber.StatusCreated).JSON(dto.OK(data))
}

// done responde a update/delete: 404 si el ID no existía.
func done(c *fiber.Ctx, found bool, err error, what string) error {
	if err != nil {
		return fail(c, err)
	}
	if !found {
		return notFound(c, what+" no encontrado")
	}
	return c.JSON(dto.Envelope[any]{Success: true})
}

// paramID lee el parámetro :id como entero positivo.
func paramID(c *fiber.Ctx) (int64, bool) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// queryInt64 lee un entero opcional; nil si el parámetro está vacío.
func queryInt64(c *fiber.Ctx, key string) (*int64, error) {
	s := c.Query(key)
	if s == "" {
		return nil, nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil, errors.New(key + " debe ser un entero")
	}
	return &n, nil
}

// queryBool lee un booleano opcional.
func queryBool(c *fiber.Ctx, key string) (*bool, error) {
	s := c.Query(key)
	if s == "" {
		return nil, nil
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return nil, errors.New(key + " debe ser true o false")
	}
	return &b, nil
}

// queryDate lee una fecha opcional con formato dto.DateLayout (UTC).
func queryDate(c *fiber.Ctx, key string) (*time.Time, error) {
	s := c.Query(key)
	if s == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation(dto.DateLayout, s, time.UTC)
	if err != nil {
		return nil, errors.New(key + " debe tener formato " + dto.DateLayout)
	}
	return &t, nil
}

// updated responde a un update con la entidad resultante (totales recalculados incluidos).
func updated[T any](c *fiber.Ctx, found bool, err error, what string, v T) error {
	if err != nil {
		return fail(c, err)
	}
	if !found {
		return notFound(c, what+" no encontrado")
	}
	return ok(c, v)
}
