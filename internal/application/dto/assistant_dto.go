package dto

// ChatTurn es un turno previo de la conversación con el asistente.
// Role es "user" o "model", igual que en la API del proveedor.
type ChatTurn struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

// ChatRequest entrada del chat del asistente.
type ChatRequest struct {
	Message string     `json:"message"`
	History []ChatTurn `json:"history"`
}

// ChatResponse respuesta del asistente. Siempre trae texto: los fallos del
// servicio se convierten en un mensaje fijo de disculpa, nunca en un 5xx.
type ChatResponse struct {
	Reply string `json:"reply"`
}

// VisionRequest entrada del análisis de imagen. Image es un data URL
// ("data:image/jpeg;base64,...") o base64 pelado. Prompt opcional.
type VisionRequest struct {
	Image  string `json:"image"`
	Prompt string `json:"prompt"`
}

// VisionResponse resultado textual del análisis de imagen.
type VisionResponse struct {
	Description string `json:"description"`
}
