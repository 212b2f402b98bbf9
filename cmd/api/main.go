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
	"github.com/Xavis19/NuclearVET-sub001/internal/application/alerta"
	"github.com/Xavis19/NuclearVET-sub001/internal/application/auth"
	"github.com/Xavis19/NuclearVET-sub001/internal/application/inventory"
	"github.com/Xavis19/NuclearVET-sub001/internal/application/usecase"
	"github.com/Xavis19/NuclearVET-sub001/internal/infrastructure/postgres"
	httpRouter "github.com/Xavis19/NuclearVET-sub001/internal/interfaces/http"
	"github.com/Xavis19/NuclearVET-sub001/pkg/config"
	"github.com/Xavis19/NuclearVET-sub001/pkg/logger"
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

	productoRepo := postgres.NewProductoRepository(pool)
	loteRepo := postgres.NewLoteRepository(pool)
	movRepo := postgres.NewMovimientoRepository(pool)
	alertaRepo := postgres.NewAlertaRepository(pool)
	usuarioRepo := postgres.NewUsuarioRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	productoUC := usecase.NewProductoUseCase(productoRepo)
	movimientoUC := inventory.NewRegistrarMovimientoUseCase(txRunner)
	consultasUC := inventory.NewConsultasUseCase(productoRepo, loteRepo, movRepo)
	alertaUC := alerta.NewUseCase(alertaRepo)
	generador := alerta.NewGenerador(txRunner, loteRepo, cfg.Alertas.DiasAvisoVencimiento, log)
	authUC := auth.NewAuthUseCase(usuarioRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	// Barrido periódico de vencimientos: marca lotes vencidos, descuenta su
	// stock y genera alertas. Se detiene con el contexto al apagar.
	sweepCtx, stopSweep := context.WithCancel(ctx)
	defer stopSweep()
	sweeper := alerta.NewSweeper(generador, cfg.Alertas.BarridoIntervalo, log)
	go sweeper.Run(sweepCtx)

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
		Title:    "NuclearVET Inventario API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductoUC:   productoUC,
		MovimientoUC: movimientoUC,
		ConsultasUC:  consultasUC,
		AlertaUC:     alertaUC,
		Generador:    generador,
		AuthUC:       authUC,
		JWTSecret:    cfg.JWT.Secret,
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
	stopSweep()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
