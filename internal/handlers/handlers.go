package handlers

import (
	"DailyManna/internal/config"
	"DailyManna/internal/middleware"
	"DailyManna/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

type Handler struct {
	Router chi.Router
}

// NewHandler разводящий для хендлеров
func NewHandler(
	contentService *service.ContentService,
	paymentService *service.PaymentService,
	entitlementService *service.EntitlementService,
	deviceService *service.DeviceService,
	favoriteService *service.FavoriteService,
	logger *zap.SugaredLogger,
	config *config.Config,
) *Handler {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Admin-Token"},
		AllowCredentials: false,
	}))
	r.Use(middleware.WithGzip)
	r.Use(middleware.WithLogging)
	r.Use(middleware.WithDevice(config.AuthSecret))

	// Handlers
	deviceHandler := NewDeviceHandler(deviceService, logger, config)
	contentHandler := NewContentHandler(contentService, logger, config)
	paymentHandler := NewPaymentHandler(paymentService, logger, config)
	entitlementHandler := NewEntitlementHandler(entitlementService, logger)
	favoriteHandler := NewFavoriteHandler(favoriteService, logger)

	// Device routes
	r.Post("/api/device/register", deviceHandler.Register)
	r.Delete("/api/device", deviceHandler.Delete)

	// Content routes: чтение открыто, вставка только административная
	r.Get("/api/content", contentHandler.List)
	r.Post("/api/admin/content", contentHandler.AdminInsert)

	// Payment/entitlement routes (требуют device cookie)
	r.Post("/api/payments/record", paymentHandler.Record)
	r.Get("/api/payments", paymentHandler.History)
	r.Get("/api/entitlement", entitlementHandler.Status)

	// Favorites
	r.Post("/api/favorites", favoriteHandler.Add)
	r.Get("/api/favorites", favoriteHandler.List)
	r.Delete("/api/favorites/{devotionalID}", favoriteHandler.Remove)

	return &Handler{Router: r}
}
