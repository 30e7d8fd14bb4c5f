package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/talentbase/crm-api/internal/application/auth"
	"github.com/talentbase/crm-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	CustomerUC *usecase.CustomerUseCase
	ExportUC   *usecase.ExportUseCase
	SettingsUC *usecase.SettingsUseCase
	ReportUC   *usecase.ReportUseCase
	ResumeUC   *usecase.ResumeUseCase
	JWTSecret  string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público): registro, login y segundo factor OTP
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/send-otp", authHandler.SendOTP)
	authGroup.Post("/verify-otp", authHandler.VerifyOTP)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Customers (protegido; permisos y alcance por llamada en el use case)
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC, deps.ExportUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/export", customerHandler.Export)
	customers.Put("/:email", customerHandler.Update)
	customers.Delete("/:email", customerHandler.Delete)

	// Perfil y preferencias (protegido)
	users := protected.Group("/users")
	settingsHandler := NewSettingsHandler(deps.SettingsUC)
	users.Get("/me", settingsHandler.Profile)
	users.Put("/me/darkmode", settingsHandler.SetDarkMode)

	// Informes (protegido)
	reports := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/summary", reportHandler.Summary)

	// Currículums (protegido)
	resumes := protected.Group("/resumes")
	resumeHandler := NewResumeHandler(deps.ResumeUC)
	resumes.Post("/extract", resumeHandler.Extract)
}
