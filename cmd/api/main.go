package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/aslanavm/stok-api/internal/application/barcode"
	"github.com/aslanavm/stok-api/internal/application/inventory"
	"github.com/aslanavm/stok-api/internal/application/usecase"
	infraai "github.com/aslanavm/stok-api/internal/infrastructure/ai"
	infrapdf "github.com/aslanavm/stok-api/internal/infrastructure/pdf"
	"github.com/aslanavm/stok-api/internal/infrastructure/postgres"
	httpRouter "github.com/aslanavm/stok-api/internal/interfaces/http"
	"github.com/aslanavm/stok-api/pkg/config"
	"github.com/aslanavm/stok-api/pkg/logger"
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

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	productRepo := postgres.NewProductRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	stockLogRepo := postgres.NewStockLogRepository(pool)

	container := inventory.NewContainer(productRepo, categoryRepo, stockLogRepo, log)
	// La carga inicial puede fallar si las tablas aún no existen; el servidor
	// arranca igual y la API responde SCHEMA_MISSING con el DDL hasta que el
	// operador cree el esquema y pida la recarga.
	if err := container.Load(ctx); err != nil {
		log.Warn().Err(err).Msg("carga inicial del inventario fallida")
	}

	broker := barcode.NewBroker(barcode.DefaultTTL, log)
	defer broker.Shutdown()

	geminiSvc := infraai.NewGeminiService(cfg.AI.GeminiAPIKey, cfg.AI.GeminiModel)
	assistantUC := usecase.NewAssistantUseCase(geminiSvc, log)

	reportGen := infrapdf.NewMarotoReportGenerator()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 60, // las long-polls de escaneo esperan hasta que el lector entregue
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat("./docs/swagger.json"); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: "./docs/swagger.json",
			Path:     "docs",
			Title:    "Aslan Stok API",
		}))
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Container:       container,
		AssistantUC:     assistantUC,
		BarcodeBroker:   broker,
		ReportGenerator: reportGen,
		StoreName:       cfg.App.Store,
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
