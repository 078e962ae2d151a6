package dto

// PageResponse metadatos de página en respuestas.
type PageResponse struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// CodePreviewResponse código que recibiría hoy una entidad nueva con ese nombre.
type CodePreviewResponse struct {
	Entity string `json:"entity"`
	Name   string `json:"name"`
	Code   string `json:"code"`
}
