package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/NadiyatulJenni/Cleaning-Data-and-FIFO/internal/application/auth"
	"github.com/NadiyatulJenni/Cleaning-Data-and-FIFO/internal/application/kardex"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Valuation *kardex.ValuationUseCase
	Auth      *auth.AuthUseCase
	JWTSecret string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	if deps.Auth != nil {
		authHandler := NewAuthHandler(deps.Auth)
		api.Post("/auth/login", authHandler.Login)
	}

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Kardex FIFO (protegido)
	kardexGroup := protected.Group("/kardex")
	kardexHandler := NewKardexHandler(deps.Valuation)
	kardexGroup.Post("/fifo", kardexHandler.RunFifo)
}
