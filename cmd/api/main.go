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
	"github.com/jhoicas/Vitrinas-api/docs"
	"github.com/jhoicas/Vitrinas-api/internal/application/auth"
	"github.com/jhoicas/Vitrinas-api/internal/application/inventory"
	"github.com/jhoicas/Vitrinas-api/internal/application/usecase"
	"github.com/jhoicas/Vitrinas-api/internal/domain/stock"
	infrapdf "github.com/jhoicas/Vitrinas-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Vitrinas-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Vitrinas-api/internal/infrastructure/supabase"
	httpRouter "github.com/jhoicas/Vitrinas-api/internal/interfaces/http"
	"github.com/jhoicas/Vitrinas-api/pkg/config"
	"github.com/jhoicas/Vitrinas-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("configuración inválida")
	}
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	classifier, err := stock.NewClassifier(stock.Policy{
		CriticalAtOrBelow: cfg.Stock.CriticalAtOrBelow,
		CriticalRatio:     cfg.Stock.CriticalRatio,
		HonorUpstream:     cfg.Stock.HonorUpstreamStatus,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("política de stock")
	}
	policy := classifier.Policy()
	log.Info().
		Int64("critical_at_or_below", policy.CriticalAtOrBelow).
		Str("critical_ratio", policy.CriticalRatio.String()).
		Bool("honor_upstream", policy.HonorUpstream).
		Msg("política de semáforo")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	vitrineRepo := postgres.NewVitrineRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	stockRepo := postgres.NewStockRepository(pool)
	summaryRepo := postgres.NewSummaryRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(supabase.NewAuthClient(cfg.Supabase), userRepo)
	stockUC := inventory.NewStockUseCase(stockRepo, vitrineRepo, productRepo, summaryRepo, classifier)
	refillPDFUC := inventory.NewRefillPDFUseCase(stockUC, infrapdf.NewRefillRenderer())
	saleUC := usecase.NewSaleUseCase(txRunner, saleRepo, productRepo)
	productUC := usecase.NewProductUseCase(productRepo)
	vitrineUC := usecase.NewVitrineUseCase(vitrineRepo)
	userUC := usecase.NewUserUseCase(userRepo, vitrineRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log.Named("http")))

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(cfg.Docs.SwaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.Docs.SwaggerFile,
			Path:     "docs",
			Title:    "Vitrinas API",
		}))
	} else {
		log.Warn().Str("file", cfg.Docs.SwaggerFile).Msg("swagger.json no encontrado, /docs deshabilitado")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	app.Get("/api/openapi.json", func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
		return c.SendString(docs.SwaggerInfo.ReadDoc())
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:    authUC,
		StockUC:   stockUC,
		RefillPDF: refillPDFUC,
		SaleUC:    saleUC,
		ProductUC: productUC,
		VitrineUC: vitrineUC,
		UserUC:    userUC,
		Token: httpRouter.TokenConfig{
			Secret:   cfg.Auth.JWTSecret,
			Audience: cfg.Auth.Audience,
		},
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
