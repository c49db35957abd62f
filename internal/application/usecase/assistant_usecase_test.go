package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aslanavm/stok-api/internal/application/dto"
	"github.com/aslanavm/stok-api/internal/application/usecase"
	"github.com/aslanavm/stok-api/pkg/logger"
)

// fakeAssistant devuelve respuestas fijas o el error configurado.
type fakeAssistant struct {
	reply       string
	description string
	err         error

	gotMessage string
	gotHistory []dto.ChatTurn
	gotImage   string
	gotPrompt  string
}

func (f *fakeAssistant) Converse(_ context.Context, message string, history []dto.ChatTurn) (string, error) {
	f.gotMessage = message
	f.gotHistory = history
	return f.reply, f.err
}

func (f *fakeAssistant) DescribeImage(_ context.Context, imageData, prompt string) (string, error) {
	f.gotImage = imageData
	f.gotPrompt = prompt
	return f.description, f.err
}

const (
	wantChatApology   = "Üzgünüm, şu anda hizmet veremiyorum. Lütfen API anahtarınızı kontrol edin."
	wantChatEmpty     = "Bir hata oluştu, cevap alınamadı."
	wantVisionApology = "Görsel analizi sırasında bir hata oluştu."
	wantVisionEmpty   = "Görsel analiz edilemedi."
)

// ── chat ──────────────────────────────────────────────────────────────────────

func TestConverse_RespuestaDelModeloSeDevuelveTalCual(t *testing.T) {
	svc := &fakeAssistant{reply: "Stokta 45 adet süt var."}
	uc := usecase.NewAssistantUseCase(svc, logger.Nop())

	got := uc.Converse(context.Background(), dto.ChatRequest{
		Message: "Kaç süt kaldı?",
		History: []dto.ChatTurn{{Role: "user", Text: "merhaba"}, {Role: "model", Text: "Merhaba!"}},
	})

	assert.Equal(t, "Stokta 45 adet süt var.", got)
	assert.Equal(t, "Kaç süt kaldı?", svc.gotMessage)
	assert.Len(t, svc.gotHistory, 2, "los turnos previos viajan completos al modelo")
}

func TestConverse_FalloDelServicioDevuelveDisculpaFija(t *testing.T) {
	svc := &fakeAssistant{err: errors.New("GEMINI_API_KEY no configurado")}
	uc := usecase.NewAssistantUseCase(svc, logger.Nop())

	got := uc.Converse(context.Background(), dto.ChatRequest{Message: "merhaba"})

	assert.Equal(t, wantChatApology, got,
		"cualquier fallo termina en el texto fijo, nunca en un error propagado")
}

func TestConverse_RespuestaVaciaDelModelo(t *testing.T) {
	svc := &fakeAssistant{reply: "   "}
	uc := usecase.NewAssistantUseCase(svc, logger.Nop())

	got := uc.Converse(context.Background(), dto.ChatRequest{Message: "merhaba"})

	assert.Equal(t, wantChatEmpty, got)
}

func TestConverse_MensajeVacioNoLlamaAlModelo(t *testing.T) {
	svc := &fakeAssistant{reply: "no debería verse"}
	uc := usecase.NewAssistantUseCase(svc, logger.Nop())

	got := uc.Converse(context.Background(), dto.ChatRequest{Message: "  "})

	assert.Equal(t, wantChatEmpty, got)
	assert.Empty(t, svc.gotMessage, "con el mensaje en blanco el puerto no se invoca")
}

// ── visión ────────────────────────────────────────────────────────────────────

func TestDescribeImage_DescripcionDelModelo(t *testing.T) {
	svc := &fakeAssistant{description: "Bir kutu süt görünüyor."}
	uc := usecase.NewAssistantUseCase(svc, logger.Nop())

	got := uc.DescribeImage(context.Background(), dto.VisionRequest{
		Image:  "data:image/png;base64,aGVsbG8=",
		Prompt: "Bu ürün nedir?",
	})

	assert.Equal(t, "Bir kutu süt görünüyor.", got)
	assert.Equal(t, "data:image/png;base64,aGVsbG8=", svc.gotImage)
	assert.Equal(t, "Bu ürün nedir?", svc.gotPrompt)
}

func TestDescribeImage_FalloDevuelveDisculpaDeVision(t *testing.T) {
	svc := &fakeAssistant{err: errors.New("timeout")}
	uc := usecase.NewAssistantUseCase(svc, logger.Nop())

	got := uc.DescribeImage(context.Background(), dto.VisionRequest{Image: "data:image/png;base64,aGVsbG8="})

	assert.Equal(t, wantVisionApology, got)
}

func TestDescribeImage_ImagenVaciaNoLlamaAlModelo(t *testing.T) {
	svc := &fakeAssistant{description: "no debería verse"}
	uc := usecase.NewAssistantUseCase(svc, logger.Nop())

	got := uc.DescribeImage(context.Background(), dto.VisionRequest{Image: ""})

	assert.Equal(t, wantVisionEmpty, got)
	assert.Empty(t, svc.gotImage)
}

func TestDescribeImage_DescripcionVacia(t *testing.T) {
	svc := &fakeAssistant{description: ""}
	uc := usecase.NewAssistantUseCase(svc, logger.Nop())

	got := uc.DescribeImage(context.Background(), dto.VisionRequest{Image: "data:image/png;base64,aGVsbG8="})

	assert.Equal(t, wantVisionEmpty, got)
}
