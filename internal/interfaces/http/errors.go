package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Vitrinas-api/internal/application/dto"
	"github.com/jhoicas/Vitrinas-api/internal/domain"
	"github.com/rs/zerolog/log"
)

// errorMapping orden importa: los errores más específicos primero.
var errorMapping = []struct {
	target error
	status int
	code   string
}{
	{domain.ErrInvalidStockData, fiber.StatusInternalServerError, "INVALID_STOCK_DATA"},
	{domain.ErrInvalidInput, fiber.StatusBadRequest, "VALIDATION"},
	{domain.ErrUnauthorized, fiber.StatusUnauthorized, "UNAUTHORIZED"},
	{domain.ErrUserNotLinked, fiber.StatusForbidden, "USER_NOT_LINKED"},
	{domain.ErrInactiveUser, fiber.StatusForbidden, "USER_INACTIVE"},
	{domain.ErrNoCaseAssigned, fiber.StatusForbidden, "NO_VITRINE"},
	{domain.ErrForbidden, fiber.StatusForbidden, "FORBIDDEN"},
	{domain.ErrNotFound, fiber.StatusNotFound, "NOT_FOUND"},
	{domain.ErrDuplicate, fiber.StatusConflict, "DUPLICATE"},
	{domain.ErrConflict, fiber.StatusConflict, "CONFLICT"},
}

// writeError traduce un error de dominio a status + dto.ErrorResponse.
// Todo 500 se registra con el detalle y responde con un mensaje genérico.
func writeError(c *fiber.Ctx, err error) error {
	for _, m := range errorMapping {
		if errors.Is(err, m.target) {
			msg := err.Error()
			if m.status >= fiber.StatusInternalServerError {
				log.Error().Err(err).Str("method", c.Method()).Str("path", c.Path()).Msg("error de datos")
				msg = "datos de stock inconsistentes en el backend"
			}
			return c.Status(m.status).JSON(dto.ErrorResponse{Code: m.code, Message: msg})
		}
	}
	log.Error().Err(err).Str("method", c.Method()).Str("path", c.Path()).Msg("error interno")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno del servidor"})
}

func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}
