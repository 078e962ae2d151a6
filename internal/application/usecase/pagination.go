package usecase

const (
	defaultLimit = 20
	maxLimit     = 100
)

// normalizePage aplica los valores por defecto de paginación.
func normalizePage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
