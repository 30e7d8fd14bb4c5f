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
	"github.com/redis/go-redis/v9"
	"github.com/talentbase/crm-api/internal/application/auth"
	"github.com/talentbase/crm-api/internal/application/usecase"
	"github.com/talentbase/crm-api/internal/domain/access"
	"github.com/talentbase/crm-api/internal/infrastructure/docs"
	"github.com/talentbase/crm-api/internal/infrastructure/mail"
	"github.com/talentbase/crm-api/internal/infrastructure/mongodb"
	infraotp "github.com/talentbase/crm-api/internal/infrastructure/otp"
	httpRouter "github.com/talentbase/crm-api/internal/interfaces/http"
	"github.com/talentbase/crm-api/pkg/config"
	"github.com/talentbase/crm-api/pkg/logger"
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

	if err := access.ValidateMatrix(); err != nil {
		log.Fatal().Err(err).Msg("matriz de permisos inconsistente")
	}

	ctx := context.Background()
	client, err := mongodb.Connect(ctx, cfg.Mongo)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a MongoDB")
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	db := client.Database(cfg.Mongo.Database)
	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("creación de índices")
	}

	userRepo := mongodb.NewUserRepository(db)
	customerRepo := mongodb.NewCustomerRepository(db)
	accessSvc := access.NewService(userRepo)

	// Almacén OTP: memoria por defecto, Redis si OTP_STORE=redis.
	var otpStore auth.OTPStore
	if cfg.OTP.Store == "redis" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Fatal().Err(err).Msg("conexión a Redis")
		}
		otpStore = infraotp.NewRedisStore(rdb)
	} else {
		otpStore = infraotp.NewMemoryStore()
	}

	mailer := mail.NewSMTPMailer(cfg.SMTP)

	authUC := auth.NewAuthUseCase(userRepo, otpStore, mailer, cfg.Owner.Email, cfg.OTP.TTL(), auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	customerUC := usecase.NewCustomerUseCase(customerRepo, accessSvc)
	exportUC := usecase.NewExportUseCase(customerRepo, accessSvc)
	settingsUC := usecase.NewSettingsUseCase(userRepo)
	reportUC := usecase.NewReportUseCase(customerRepo, accessSvc)
	resumeUC := usecase.NewResumeUseCase(docs.NewExtractor())

	// Rutinas de arranque: cuenta propietaria y backfill de Company.
	bootstrap := auth.NewBootstrap(userRepo, customerRepo, auth.OwnerSeed{
		Email:    cfg.Owner.Email,
		Name:     cfg.Owner.Name,
		Company:  cfg.Owner.Company,
		Password: cfg.Owner.Password,
	}, log)
	if err := bootstrap.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("rutinas de arranque")
	}

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
		Title:    "TalentBase CRM API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:     authUC,
		CustomerUC: customerUC,
		ExportUC:   exportUC,
		SettingsUC: settingsUC,
		ReportUC:   reportUC,
		ResumeUC:   resumeUC,
		JWTSecret:  cfg.JWT.Secret,
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
