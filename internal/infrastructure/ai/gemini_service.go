package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/aslanavm/stok-api/internal/application/dto"
	"github.com/aslanavm/stok-api/internal/application/ports"
)

// Verificar en tiempo de compilación que GeminiService implementa AssistantService.
var _ ports.AssistantService = (*GeminiService)(nil)

const (
	geminiBaseURL = "https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent?key=%s"

	// systemPrompt define la persona del asistente de la tienda. En turco:
	// el asistente habla el idioma de los operadores de ASLAN AVM.
	systemPrompt = "Sen ASLAN AVM'nin yardımsever, Türkçe konuşan yapay zeka asistanısın. " +
		"Mağaza yönetimi, stok takibi ve genel muhasebe konularında uzmansın. " +
		"Cevapların kısa, net ve profesyonel olmalı."

	// defaultVisionPrompt se usa cuando el caller no manda instrucción.
	defaultVisionPrompt = "Bu görseli analiz et ve perakende/stok yönetimi açısından ne içerdiğini Türkçe olarak açıkla."
)

// GeminiService adaptador que implementa AssistantService llamando a la API
// REST de Google Gemini. Usa únicamente la librería estándar de Go (net/http)
// para no añadir dependencias externas.
type GeminiService struct {
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewGeminiService construye el adaptador. model suele ser "gemini-3-pro-preview".
// Si apiKey está vacío, cada llamada devuelve un error descriptivo (el caso de
// uso lo convierte en el mensaje fijo de disculpa); no se cachea ni se panikea.
func NewGeminiService(apiKey, model string) *GeminiService {
	return &GeminiService{
		apiKey: apiKey,
		model:  model,
		httpClient: &http.Client{
			Timeout: 20 * time.Second, // timeout de red; el caller también pone WithTimeout
		},
	}
}

// ── Estructuras internas para la API de Gemini ────────────────────────────────

type geminiRequest struct {
	SystemInstruction *geminiContent  `json:"system_instruction,omitempty"`
	Contents          []geminiContent `json:"contents"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
	Role  string       `json:"role,omitempty"`
}

type geminiPart struct {
	Text       string          `json:"text,omitempty"`
	InlineData *geminiBlobPart `json:"inline_data,omitempty"`
}

type geminiBlobPart struct {
	MIMEType string `json:"mime_type"`
	Data     string `json:"data"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// dataURLRe separa el encabezado de un data URL ("data:image/jpeg;base64,...").
var dataURLRe = regexp.MustCompile(`^data:([a-zA-Z0-9]+/[a-zA-Z0-9-.+]+);base64,`)

// ── Implementación del puerto ─────────────────────────────────────────────────

// Converse envía el mensaje del usuario con los turnos previos y la persona
// fija, y devuelve el texto de la respuesta.
func (s *GeminiService) Converse(ctx context.Context, message string, history []dto.ChatTurn) (string, error) {
	contents := make([]geminiContent, 0, len(history)+1)
	for _, turn := range history {
		role := turn.Role
		if role != "user" && role != "model" {
			role = "user"
		}
		contents = append(contents, geminiContent{
			Role:  role,
			Parts: []geminiPart{{Text: turn.Text}},
		})
	}
	contents = append(contents, geminiContent{
		Role:  "user",
		Parts: []geminiPart{{Text: message}},
	})

	payload := geminiRequest{
		SystemInstruction: &geminiContent{
			Parts: []geminiPart{{Text: systemPrompt}},
		},
		Contents: contents,
	}
	return s.generate(ctx, payload)
}

// DescribeImage envía la imagen embebida más la instrucción al endpoint
// multimodal. imageData puede ser un data URL o base64 pelado; el tipo MIME
// se extrae del encabezado y por defecto es image/png.
func (s *GeminiService) DescribeImage(ctx context.Context, imageData, prompt string) (string, error) {
	mimeType, base64Data := splitDataURL(imageData)
	if prompt == "" {
		prompt = defaultVisionPrompt
	}

	payload := geminiRequest{
		Contents: []geminiContent{
			{
				Role: "user",
				Parts: []geminiPart{
					{InlineData: &geminiBlobPart{MIMEType: mimeType, Data: base64Data}},
					{Text: prompt},
				},
			},
		},
	}
	return s.generate(ctx, payload)
}

// generate hace la llamada HTTP y extrae el primer texto candidato.
func (s *GeminiService) generate(ctx context.Context, payload geminiRequest) (string, error) {
	if s.apiKey == "" {
		return "", fmt.Errorf("AI: GEMINI_API_KEY no configurado")
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("AI: serializar request: %w", err)
	}

	url := fmt.Sprintf(geminiBaseURL, s.model, s.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("AI: crear HTTP request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("AI: timeout o cancelación: %w", ctx.Err())
		}
		return "", fmt.Errorf("AI: llamada HTTP fallida: %w", err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, 256*1024))
	if err != nil {
		return "", fmt.Errorf("AI: leer respuesta: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		// Intentar extraer el mensaje de error de Gemini
		var errResp geminiResponse
		if jsonErr := json.Unmarshal(rawBody, &errResp); jsonErr == nil && errResp.Error != nil {
			return "", fmt.Errorf("AI: Gemini error %d: %s", errResp.Error.Code, errResp.Error.Message)
		}
		return "", fmt.Errorf("AI: Gemini HTTP %d", resp.StatusCode)
	}

	var gemResp geminiResponse
	if err := json.Unmarshal(rawBody, &gemResp); err != nil {
		return "", fmt.Errorf("AI: deserializar respuesta Gemini: %w", err)
	}

	if len(gemResp.Candidates) == 0 || len(gemResp.Candidates[0].Content.Parts) == 0 {
		return "", nil // respuesta vacía: el caso de uso decide el mensaje
	}
	return strings.TrimSpace(gemResp.Candidates[0].Content.Parts[0].Text), nil
}

// splitDataURL separa MIME y datos de un data URL; si no hay encabezado,
// asume base64 pelado y image/png.
func splitDataURL(imageData string) (mimeType, base64Data string) {
	if m := dataURLRe.FindStringSubmatch(imageData); m != nil {
		return m[1], imageData[len(m[0]):]
	}
	if i := strings.Index(imageData, ","); i >= 0 {
		return "image/png", imageData[i+1:]
	}
	return "image/png", imageData
}
