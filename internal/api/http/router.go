package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/abhay8696/rajmudra-backend/internal/api/http/handlers"
	"github.com/abhay8696/rajmudra-backend/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Admins         *handlers.AdminsHandler
	Shops          *handlers.ShopsHandler
	Payments       *handlers.PaymentsHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	v1 := app.Group("/v1")
	v1.Post("/auth/login", cfg.Auth.Login)

	admins := v1.Group("/admins", cfg.AuthMiddleware.Handle)
	admins.Post("/new", cfg.Admins.Create)
	admins.Get("/all", cfg.Admins.GetAll)
	admins.Get("/contact", cfg.Admins.GetByContact)
	admins.Get("/:id", cfg.Admins.GetByID)
	admins.Put("/:id", cfg.Admins.Update)
	admins.Delete("/:id", cfg.Admins.Delete)

	shops := v1.Group("/shops", cfg.AuthMiddleware.Handle)
	shops.Post("/new", cfg.Shops.Create)
	shops.Get("/all", cfg.Shops.GetAll)
	shops.Get("/:id", cfg.Shops.GetByID)
	shops.Put("/:id", cfg.Shops.Update)
	shops.Delete("/:id", cfg.Shops.Delete)

	payments := v1.Group("/payments", cfg.AuthMiddleware.Handle)
	payments.Post("/new", cfg.Payments.Create)
	payments.Get("/condition/:key/:val", cfg.Payments.GetByCondition)
	payments.Get("/:id", cfg.Payments.GetByID)
	payments.Put("/:id", cfg.Payments.Update)
	payments.Delete("/:id", cfg.Payments.Delete)
}
