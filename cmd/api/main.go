package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/Transporte-api/internal/application/codes"
	"github.com/jhoicas/Transporte-api/internal/application/usecase"
	"github.com/jhoicas/Transporte-api/internal/domain/entity"
	"github.com/jhoicas/Transporte-api/internal/domain/repository"
	"github.com/jhoicas/Transporte-api/internal/infrastructure/memory"
	"github.com/jhoicas/Transporte-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Transporte-api/internal/interfaces/http"
	"github.com/jhoicas/Transporte-api/pkg/config"
	"github.com/jhoicas/Transporte-api/pkg/logger"
)

// stores repositorios y registros de códigos por tipo de entidad.
type stores struct {
	customers  repository.CustomerRepository
	vendors    repository.VendorRepository
	vehicles   repository.VehicleRepository
	registries map[entity.EntityType]repository.CodeRegistry
	close      func()
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.Store.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	st, err := openStores(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("inicializar persistencia")
	}
	defer st.close()

	generators := make(map[entity.EntityType]*codes.Generator, len(st.registries))
	fallbacks := map[entity.EntityType]string{
		entity.EntityCustomer: cfg.Codes.FallbackCustomer,
		entity.EntityVendor:   cfg.Codes.FallbackVendor,
		entity.EntityVehicle:  cfg.Codes.FallbackVehicle,
	}
	for kind, reg := range st.registries {
		generators[kind] = codes.NewGenerator(reg, codes.Options{
			MaxLength:      cfg.Codes.MaxLength,
			PadWidth:       cfg.Codes.PadWidth,
			FallbackPrefix: fallbacks[kind],
			MaxAttempts:    cfg.Codes.MaxAttempts,
		}, log.Component("codes."+string(kind)))
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CustomerUC:    usecase.NewCustomerUseCase(st.customers, generators[entity.EntityCustomer]),
		VendorUC:      usecase.NewVendorUseCase(st.vendors, generators[entity.EntityVendor]),
		VehicleUC:     usecase.NewVehicleUseCase(st.vehicles, generators[entity.EntityVehicle]),
		CodePreviewUC: usecase.NewCodePreviewUseCase(generators),
		JWTSecret:     cfg.JWT.Secret,
		JWTIssuer:     cfg.JWT.Issuer,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

func openStores(ctx context.Context, cfg *config.Config, log *logger.Logger) (*stores, error) {
	if cfg.Store.Driver == "memory" {
		log.Warn().Msg("STORE_DRIVER=memory: los datos se pierden al reiniciar")
		custIdx, vendIdx, vehIdx := memory.NewCodeIndex(), memory.NewCodeIndex(), memory.NewCodeIndex()
		return &stores{
			customers: memory.NewCustomerRepository(custIdx),
			vendors:   memory.NewVendorRepository(vendIdx),
			vehicles:  memory.NewVehicleRepository(vehIdx),
			registries: map[entity.EntityType]repository.CodeRegistry{
				entity.EntityCustomer: custIdx,
				entity.EntityVendor:   vendIdx,
				entity.EntityVehicle:  vehIdx,
			},
			close: func() {},
		}, nil
	}

	if cfg.DB.MigrationsPath != "" {
		if err := postgres.RunMigrations(cfg.DB.ConnectionString(), cfg.DB.MigrationsPath, log.Component("migrations")); err != nil {
			return nil, err
		}
	}
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return nil, err
	}
	registries := make(map[entity.EntityType]repository.CodeRegistry, 3)
	for _, kind := range []entity.EntityType{entity.EntityCustomer, entity.EntityVendor, entity.EntityVehicle} {
		reg, err := postgres.NewCodeRegistry(pool, kind)
		if err != nil {
			pool.Close()
			return nil, err
		}
		registries[kind] = reg
	}
	return &stores{
		customers:  postgres.NewCustomerRepository(pool),
		vendors:    postgres.NewVendorRepository(pool),
		vehicles:   postgres.NewVehicleRepository(pool),
		registries: registries,
		close:      pool.Close,
	}, nil
}
