package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/customer-portal/internal/application/orders"
	"github.com/tu-usuario/customer-portal/internal/application/portal"
	"github.com/tu-usuario/customer-portal/internal/application/profile"
	"github.com/tu-usuario/customer-portal/internal/application/session"
	"github.com/tu-usuario/customer-portal/internal/application/subscriptions"
	"github.com/tu-usuario/customer-portal/internal/application/support"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	SessionUC      *session.UseCase
	PortalUC       *portal.UseCase
	OrdersUC       *orders.UseCase
	OrdersPDF      *orders.PDFUseCase
	SubscriptionUC *subscriptions.UseCase
	SupportUC      *support.UseCase
	ProfileUC      *profile.UseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público; session y logout leen el Bearer directamente)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.SessionUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/session", authHandler.Session)
	authGroup.Post("/logout", authHandler.Logout)

	// Rutas protegidas (requieren sesión vigente)
	protected := api.Group("/", SessionMiddleware(deps.SessionUC))

	// Portal shell (protegido)
	portalHandler := NewPortalHandler(deps.PortalUC)
	protected.Get("/portal", portalHandler.Overview)

	// Orders (protegido)
	ordersGroup := protected.Group("/orders")
	orderHandler := NewOrderHandler(deps.OrdersUC, deps.OrdersPDF)
	ordersGroup.Get("/", orderHandler.List)
	ordersGroup.Post("/:id/reorder", orderHandler.Reorder)
	ordersGroup.Post("/:id/cancel", orderHandler.Cancel)
	ordersGroup.Get("/:id/tracking", orderHandler.Tracking)
	ordersGroup.Get("/:number/invoice", orderHandler.Invoice)

	// Subscriptions (protegido)
	subsGroup := protected.Group("/subscriptions")
	subscriptionHandler := NewSubscriptionHandler(deps.SubscriptionUC)
	subsGroup.Get("/", subscriptionHandler.List)
	subsGroup.Get("/summary", subscriptionHandler.Summary)
	subsGroup.Post("/:id/pause", subscriptionHandler.Pause)
	subsGroup.Post("/:id/resume", subscriptionHandler.Resume)
	subsGroup.Post("/:id/cancel", subscriptionHandler.Cancel)
	subsGroup.Put("/:id/frequency", subscriptionHandler.ChangeFrequency)

	// Support (protegido)
	ticketsGroup := protected.Group("/support/tickets")
	ticketHandler := NewTicketHandler(deps.SupportUC)
	ticketsGroup.Post("/", ticketHandler.Create)
	ticketsGroup.Get("/", ticketHandler.List)
	ticketsGroup.Get("/:id", ticketHandler.Get)
	ticketsGroup.Post("/:id/messages", ticketHandler.AddMessage)

	// Profile (protegido)
	profileGroup := protected.Group("/profile")
	profileHandler := NewProfileHandler(deps.ProfileUC)
	profileGroup.Get("/", profileHandler.Get)
	profileGroup.Put("/", profileHandler.UpdateProfile)
	profileGroup.Put("/address", profileHandler.UpdateAddress)
	profileGroup.Put("/password", profileHandler.ChangePassword)
	profileGroup.Get("/preferences", profileHandler.GetPreferences)
	profileGroup.Put("/preferences/:key", profileHandler.UpdatePreference)
}
