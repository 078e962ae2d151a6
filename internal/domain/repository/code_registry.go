package repository

import "context"

// CodeRegistry puerto de solo lectura sobre los códigos ya asignados a un tipo de entidad.
// La persistencia es dueña del registro; el generador nunca lo modifica.
type CodeRegistry interface {
	// FindMaxSuffix devuelve el mayor sufijo numérico entre los códigos que empiezan con prefix
	// y cuyo resto son solo dígitos. found = false si no hay ninguno.
	FindMaxSuffix(ctx context.Context, prefix string) (max int, found bool, err error)
}
