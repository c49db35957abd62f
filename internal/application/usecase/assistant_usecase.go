package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/aslanavm/stok-api/internal/application/dto"
	"github.com/aslanavm/stok-api/internal/application/ports"
	"github.com/aslanavm/stok-api/pkg/logger"
)

// Mensajes fijos de reserva, en el idioma de los operadores de la tienda.
// El contrato del asistente es que cualquier fallo (credencial ausente, red,
// error del servicio) termina en uno de estos textos, nunca en un error
// propagado al caller.
const (
	chatApology    = "Üzgünüm, şu anda hizmet veremiyorum. Lütfen API anahtarınızı kontrol edin."
	chatEmptyReply = "Bir hata oluştu, cevap alınamadı."

	visionApology    = "Görsel analizi sırasında bir hata oluştu."
	visionEmptyReply = "Görsel analiz edilemedi."
)

// assistantTimeout acota cada llamada al modelo para no bloquear goroutines
// del servidor con latencias externas.
const assistantTimeout = 10 * time.Second

// AssistantUseCase orquesta las dos operaciones del asistente. Sin estado
// entre llamadas salvo el historial que el propio caller suministra.
type AssistantUseCase struct {
	svc ports.AssistantService
	log *logger.Logger
}

// NewAssistantUseCase construye el caso de uso inyectando el puerto.
func NewAssistantUseCase(svc ports.AssistantService, log *logger.Logger) *AssistantUseCase {
	return &AssistantUseCase{svc: svc, log: log}
}

// Converse envía el texto del usuario con los turnos previos. Siempre
// devuelve un texto utilizable; los fallos se registran y se sustituyen por
// el mensaje de disculpa.
func (uc *AssistantUseCase) Converse(ctx context.Context, req dto.ChatRequest) string {
	if strings.TrimSpace(req.Message) == "" {
		return chatEmptyReply
	}

	ctx, cancel := context.WithTimeout(ctx, assistantTimeout)
	defer cancel()

	reply, err := uc.svc.Converse(ctx, req.Message, req.History)
	if err != nil {
		uc.log.Warn().Err(err).Msg("fallo del chat del asistente")
		return chatApology
	}
	if strings.TrimSpace(reply) == "" {
		return chatEmptyReply
	}
	return reply
}

// DescribeImage envía la imagen con la instrucción. Mismo contrato que
// Converse: nunca devuelve error.
func (uc *AssistantUseCase) DescribeImage(ctx context.Context, req dto.VisionRequest) string {
	if strings.TrimSpace(req.Image) == "" {
		return visionEmptyReply
	}

	ctx, cancel := context.WithTimeout(ctx, assistantTimeout)
	defer cancel()

	description, err := uc.svc.DescribeImage(ctx, req.Image, req.Prompt)
	if err != nil {
		uc.log.Warn().Err(err).Msg("fallo del análisis de imagen")
		return visionApology
	}
	if strings.TrimSpace(description) == "" {
		return visionEmptyReply
	}
	return description
}
