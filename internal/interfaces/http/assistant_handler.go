package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/aslanavm/stok-api/internal/application/dto"
	"github.com/aslanavm/stok-api/internal/application/usecase"
)

// AssistantHandler maneja los endpoints del asistente generativo.
// Ambos responden siempre 200 con texto: los fallos del servicio terminan en
// el mensaje fijo de disculpa, nunca en un 5xx.
type AssistantHandler struct {
	uc *usecase.AssistantUseCase
}

// NewAssistantHandler construye el handler.
func NewAssistantHandler(uc *usecase.AssistantUseCase) *AssistantHandler {
	return &AssistantHandler{uc: uc}
}

// Chat godoc
// @Summary      Conversar con el asistente
// @Description  Envía el mensaje con los turnos previos al modelo con la
//               persona de la tienda. Timeout interno de 10 s.
// @Tags         assistant
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ChatRequest  true  "message y history opcional"
// @Success      200   {object}  dto.ChatResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/assistant/chat [post]
func (h *AssistantHandler) Chat(c *fiber.Ctx) error {
	var req dto.ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	return c.JSON(dto.ChatResponse{Reply: h.uc.Converse(c.Context(), req)})
}

// Vision godoc
// @Summary      Analizar una imagen
// @Description  Envía la imagen (data URL o base64) con una instrucción al
//               endpoint multimodal.
// @Tags         assistant
// @Accept       json
// @Produce      json
// @Param        body  body  dto.VisionRequest  true  "image y prompt opcional"
// @Success      200   {object}  dto.VisionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/assistant/vision [post]
func (h *AssistantHandler) Vision(c *fiber.Ctx) error {
	var req dto.VisionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	return c.JSON(dto.VisionResponse{Description: h.uc.DescribeImage(c.Context(), req)})
}
