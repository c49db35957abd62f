package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/aslanavm/stok-api/internal/application/barcode"
	"github.com/aslanavm/stok-api/internal/application/dto"
	"github.com/aslanavm/stok-api/internal/domain"
)

// BarcodeHandler expone el broker de sesiones de escaneo.
type BarcodeHandler struct {
	broker *barcode.Broker
}

// NewBarcodeHandler construye el handler.
func NewBarcodeHandler(broker *barcode.Broker) *BarcodeHandler {
	return &BarcodeHandler{broker: broker}
}

type scanSessionResponse struct {
	SessionID string `json:"session_id"`
}

type scanDeliverRequest struct {
	Code string `json:"code"`
}

type scanResultResponse struct {
	Code string `json:"code"`
}

// Open godoc
// @Summary      Abrir sesión de escaneo
// @Description  La vista que necesita un código abre la sesión y luego espera
//               en /result; la sesión expira sola si nadie entrega.
// @Tags         barcode
// @Produce      json
// @Success      201  {object}  scanSessionResponse
// @Router       /api/barcode/sessions [post]
func (h *BarcodeHandler) Open(c *fiber.Ctx) error {
	return c.Status(fiber.StatusCreated).JSON(scanSessionResponse{SessionID: h.broker.Open()})
}

// Await godoc
// @Summary      Esperar el código decodificado (long-poll)
// @Description  Bloquea hasta la entrega, el cierre o la cancelación de la
//               petición; abortar la petición libera la sesión.
// @Tags         barcode
// @Produce      json
// @Param        id  path  string  true  "ID de sesión"
// @Success      200  {object}  scanResultResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/barcode/sessions/{id}/result [get]
func (h *BarcodeHandler) Await(c *fiber.Ctx) error {
	code, err := h.broker.Await(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Code: "NOT_FOUND", Message: "sesión inexistente o cerrada",
			})
		}
		// Contexto cancelado: el cliente ya se fue, la respuesta no importa.
		return c.SendStatus(fiber.StatusRequestTimeout)
	}
	return c.JSON(scanResultResponse{Code: code})
}

// Deliver godoc
// @Summary      Entregar el código decodificado
// @Description  El widget de cámara entrega el primer código leído (single-shot);
//               el código queda pendiente hasta que la vista lo recoja.
// @Tags         barcode
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de sesión"
// @Param        body  body  scanDeliverRequest  true  "Código decodificado"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/barcode/sessions/{id}/result [post]
func (h *BarcodeHandler) Deliver(c *fiber.Ctx) error {
	var in scanDeliverRequest
	if err := c.BodyParser(&in); err != nil || in.Code == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "code es obligatorio"})
	}
	if err := h.broker.Deliver(c.Params("id"), in.Code); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Code: "ALREADY_DELIVERED", Message: "la sesión ya recibió un código",
			})
		}
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Code: "NOT_FOUND", Message: "sesión inexistente o cerrada",
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Close godoc
// @Summary      Cerrar sesión de escaneo
// @Description  Cierre manual desde la vista; idempotente.
// @Tags         barcode
// @Param        id  path  string  true  "ID de sesión"
// @Success      204
// @Router       /api/barcode/sessions/{id} [delete]
func (h *BarcodeHandler) Close(c *fiber.Ctx) error {
	h.broker.Close(c.Params("id"))
	return c.SendStatus(fiber.StatusNoContent)
}
