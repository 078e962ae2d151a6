package postgres

import (
	"errors"
	"fmt"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5" // registra el esquema pgx5://
	_ "github.com/golang-migrate/migrate/v4/source/file"     // lee migrations/*.sql del disco
	"github.com/rs/zerolog"
)

// RunMigrations aplica las migraciones pendientes. Las tablas con código llevan UNIQUE(code),
// que es lo que hace seguro el reintento ante conflicto del generador.
func RunMigrations(dsn, migrationsPath string, log zerolog.Logger) error {
	m, err := migrate.New("file://"+migrationsPath, toPgx5URL(dsn))
	if err != nil {
		return fmt.Errorf("migraciones: inicializar: %w", err)
	}
	defer func() {
		srcErr, dbErr := m.Close()
		if srcErr != nil {
			log.Error().Err(srcErr).Msg("migraciones: cerrar source")
		}
		if dbErr != nil {
			log.Error().Err(dbErr).Msg("migraciones: cerrar DB")
		}
	}()

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("migraciones: versión actual: %w", err)
	}
	if dirty {
		return fmt.Errorf("migraciones: base de datos en estado dirty en la versión %d", version)
	}

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			log.Info().Uint("version", version).Msg("migraciones al día")
			return nil
		}
		return fmt.Errorf("migraciones: up: %w", err)
	}
	newVersion, _, _ := m.Version()
	log.Info().Uint("from", version).Uint("to", newVersion).Msg("migraciones aplicadas")
	return nil
}

// toPgx5URL adapta postgres:// o postgresql:// al esquema que espera el driver pgx/v5 de migrate.
func toPgx5URL(dsn string) string {
	for _, scheme := range []string{"postgresql://", "postgres://"} {
		if strings.HasPrefix(dsn, scheme) {
			return "pgx5://" + strings.TrimPrefix(dsn, scheme)
		}
	}
	return dsn
}
