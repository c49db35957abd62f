package ports

import (
	"context"

	"github.com/aslanavm/stok-api/internal/application/dto"
)

// AssistantService define el puerto de salida hacia el servicio generativo.
// Cualquier adaptador (Gemini, mock) debe implementar esta interfaz; la capa
// de aplicación solo conoce este contrato, no la implementación concreta.
// El contexto debe llevar un timeout: son llamadas de red externas.
type AssistantService interface {
	// Converse envía el mensaje del usuario junto con los turnos previos y
	// devuelve la respuesta textual del modelo.
	Converse(ctx context.Context, message string, history []dto.ChatTurn) (string, error)

	// DescribeImage envía una imagen embebida más una instrucción en lenguaje
	// natural al endpoint multimodal y devuelve el texto descriptivo.
	DescribeImage(ctx context.Context, imageData, prompt string) (string, error)
}
