package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhoicas/Sucursales-api/internal/application/auth"
	"github.com/jhoicas/Sucursales-api/internal/application/inventory"
	"github.com/jhoicas/Sucursales-api/internal/application/moveout"
	"github.com/jhoicas/Sucursales-api/internal/application/notify"
	"github.com/jhoicas/Sucursales-api/internal/application/usecase"
	"github.com/jhoicas/Sucursales-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Sucursales-api/internal/interfaces/http"
	"github.com/jhoicas/Sucursales-api/pkg/config"
	"github.com/jhoicas/Sucursales-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	if err := runMigrations(cfg.DB.ConnectionString()); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	// Repositorios
	regionRepo := postgres.NewRegionRepository(pool)
	districtRepo := postgres.NewDistrictRepository(pool)
	branchRepo := postgres.NewBranchRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	itemRepo := postgres.NewItemRepository(pool)
	stockRepo := postgres.NewStockRepository(pool)
	stockLevelRepo := postgres.NewStockLevelRepository(pool)
	movementRepo := postgres.NewStockMovementRepository(pool)
	moveoutRepo := postgres.NewMoveoutRepository(pool)
	deliveryRepo := postgres.NewDeliveryRepository(pool)
	prefsRepo := postgres.NewNotificationPreferenceRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Métricas y bus de avisos de stock
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	bus := notify.NewBus(registry)

	// Los avisos también quedan en el log estructurado.
	alertLog := log.WithComponent("stock-alerts")
	go func() {
		for alert := range bus.Subscribe(64) {
			alertLog.Warn().
				Str("branch_id", alert.BranchID).
				Str("item", alert.ItemName).
				Str("tier", string(alert.Status)).
				Str("quantity", alert.Quantity.String()).
				Str("threshold", alert.Threshold.String()).
				Msg("artículo en nivel de aviso")
		}
	}()

	// Casos de uso
	applyDeltaUC := inventory.NewApplyStockDeltaUseCase(txRunner, itemRepo, branchRepo, bus)
	initializeStockUC := inventory.NewInitializeStockUseCase(stockRepo, branchRepo)
	moveoutUC := moveout.NewMoveoutUseCase(txRunner, moveoutRepo, itemRepo, applyDeltaUC, bus)
	regionUC := usecase.NewRegionUseCase(regionRepo)
	districtUC := usecase.NewDistrictUseCase(districtRepo, regionRepo)
	branchUC := usecase.NewBranchUseCase(branchRepo, districtRepo)
	staffUC := usecase.NewStaffUseCase(userRepo, branchRepo)
	itemUC := usecase.NewItemUseCase(itemRepo)
	stockQueryUC := usecase.NewStockQueryUseCase(stockLevelRepo)
	deliveryUC := usecase.NewDeliveryUseCase(txRunner, itemRepo, deliveryRepo, applyDeltaUC, bus)
	reportUC := usecase.NewReportUseCase(stockLevelRepo, movementRepo)
	notificationUC := usecase.NewNotificationUseCase(prefsRepo, stockLevelRepo)
	authUC := auth.NewAuthUseCase(userRepo, branchRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Sucursales API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	if cfg.Metrics.Enabled {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:          authUC,
		RegionUC:        regionUC,
		DistrictUC:      districtUC,
		BranchUC:        branchUC,
		StaffUC:         staffUC,
		ItemUC:          itemUC,
		StockQuery:      stockQueryUC,
		ApplyDelta:      applyDeltaUC,
		InitializeStock: initializeStockUC,
		MoveoutUC:       moveoutUC,
		DeliveryUC:      deliveryUC,
		ReportUC:        reportUC,
		NotificationUC:  notificationUC,
		JWTSecret:       cfg.JWT.Secret,
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

// runMigrations aplica las migraciones pendientes con goose sobre el driver pgx stdlib.
func runMigrations(dsn string) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return err
	}
	defer db.Close()
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	return goose.Up(db, "migrations")
}
