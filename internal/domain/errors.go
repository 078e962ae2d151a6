package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrDuplicate    = errors.New("recurso duplicado")

	// Generación de códigos de entidad.
	ErrCodeConflict            = errors.New("el código ya está asignado a otra entidad")
	ErrRegistryUnavailable     = errors.New("registro de códigos no disponible")
	ErrCodeGenerationExhausted = errors.New("no se pudo generar un código único, intente de nuevo")
)
