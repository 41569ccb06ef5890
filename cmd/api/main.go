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
	gocache "github.com/patrickmn/go-cache"

	_ "github.com/jcastanog/restaurante-api/docs"
	"github.com/jcastanog/restaurante-api/internal/application/auth"
	"github.com/jcastanog/restaurante-api/internal/application/usecase"
	"github.com/jcastanog/restaurante-api/internal/infrastructure/postgres"
	httpRouter "github.com/jcastanog/restaurante-api/internal/interfaces/http"
	"github.com/jcastanog/restaurante-api/pkg/config"
	"github.com/jcastanog/restaurante-api/pkg/logger"
	"github.com/jcastanog/restaurante-api/pkg/token"
)

// @title        Restaurante API
// @version      1.0
// @description  Backend de pedidos de restaurante: carta, pedidos, reparto y valoraciones.
// @securityDefinitions.apikey Bearer
// @in   header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	level := "info"
	if cfg.App.Env == "development" {
		level = "debug"
	}
	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: level,
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

	if err := postgres.Migrate(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}
	if err := postgres.SeedAdmin(ctx, pool,
		getenv("ADMIN_USERNAME", "admin"),
		getenv("ADMIN_PASSWORD", "admin123"),
		getenv("ADMIN_EMAIL", "admin@restaurante.local"),
	); err != nil {
		log.Fatal().Err(err).Msg("semilla de administrador")
	}

	usuarioRepo := postgres.NewUsuarioRepository(pool)
	clienteRepo := postgres.NewClienteRepository(pool)
	personalRepo := postgres.NewPersonalCocinaRepository(pool)
	repartidorRepo := postgres.NewRepartidorRepository(pool)
	categoriaRepo := postgres.NewCategoriaRepository(pool)
	productoRepo := postgres.NewProductoRepository(pool)
	pedidoRepo := postgres.NewPedidoRepository(pool)
	detalleRepo := postgres.NewDetallePedidoRepository(pool)
	historialRepo := postgres.NewHistorialEstadosRepository(pool)
	valoracionRepo := postgres.NewValoracionRepository(pool)
	asignacionRepo := postgres.NewAsignacionRepartidorRepository(pool)

	locker := postgres.NewRowLocker(pool, cfg.Lock.Dwell())

	cacheTTL := time.Duration(cfg.Cache.TTLSeconds) * time.Second
	cache := gocache.New(cacheTTL, 2*cacheTTL)

	codec, err := token.NewCodec(cfg.JWT.Secret, cfg.JWT.Issuer)
	if err != nil {
		log.Fatal().Err(err).Msg("códec de tokens")
	}
	authUC := auth.NewUseCase(usuarioRepo, codec, time.Duration(cfg.JWT.Expiration)*time.Minute)

	clienteUC := usecase.NewClienteUseCase(clienteRepo, locker)
	personalUC := usecase.NewPersonalCocinaUseCase(personalRepo, locker)
	repartidorUC := usecase.NewRepartidorUseCase(repartidorRepo, locker)
	categoriaUC := usecase.NewCategoriaUseCase(categoriaRepo, locker, cache)
	productoUC := usecase.NewProductoUseCase(productoRepo, locker, cache)
	pedidoUC := usecase.NewPedidoUseCase(pedidoRepo, historialRepo, locker)
	detalleUC := usecase.NewDetallePedidoUseCase(detalleRepo, productoRepo, locker)
	historialUC := usecase.NewHistorialUseCase(historialRepo, locker)
	valoracionUC := usecase.NewValoracionUseCase(valoracionRepo, locker)
	asignacionUC := usecase.NewAsignacionUseCase(asignacionRepo, locker)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	httpLog := log.Component("http")
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(httpLog))
	app.Use(httpRouter.Metrics())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Restaurante API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	app.Get("/metrics", httpRouter.MetricsHandler())

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:          authUC,
		ClienteUC:       clienteUC,
		PersonalUC:      personalUC,
		RepartidorUC:    repartidorUC,
		CategoriaUC:     categoriaUC,
		ProductoUC:      productoUC,
		PedidoUC:        pedidoUC,
		DetalleUC:       detalleUC,
		HistorialUC:     historialUC,
		ValoracionUC:    valoracionUC,
		AsignacionUC:    asignacionUC,
		TokenCodec:      codec,
		PrincipalLoader: authUC,
		Log:             httpLog,
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

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
