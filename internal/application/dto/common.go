package dto

// ErrorResponse cuerpo de error HTTP.
// Schema solo se llena en errores SCHEMA_MISSING: trae el DDL que falta
// para que el cliente pueda mostrar la pantalla de configuración guiada.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Schema  string `json:"schema,omitempty"`
}
