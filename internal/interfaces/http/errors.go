package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/aslanavm/stok-api/internal/application/dto"
	"github.com/aslanavm/stok-api/internal/domain"
	"github.com/aslanavm/stok-api/internal/infrastructure/postgres"
)

// storeError traduce un fallo del gateway a la taxonomía de la API.
// Ningún error de la base llega al render sin clasificar: esquema ausente y
// caída de conexión salen como 503 reintentables, con el DDL embebido en el
// primer caso para la pantalla de configuración guiada.
func storeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrSchemaMissing):
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
			Code:    "SCHEMA_MISSING",
			Message: "faltan tablas en la base de datos; ejecuta el esquema adjunto",
			Schema:  postgres.SchemaDDL,
		})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Code: "NOT_FOUND", Message: "recurso no encontrado",
		})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: err.Error(),
		})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Code: "DUPLICATE", Message: "recurso duplicado",
		})
	case errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Code: "CONFLICT", Message: err.Error(),
		})
	default:
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
			Code: "STORE_UNAVAILABLE", Message: "la base de datos no respondió; reintenta la carga",
		})
	}
}
