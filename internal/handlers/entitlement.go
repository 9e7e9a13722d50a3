package handlers

import (
	"DailyManna/internal/middleware"
	"DailyManna/internal/service"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// EntitlementHandler отдаёт статус подписки устройства.
type EntitlementHandler struct {
	EntitlementService *service.EntitlementService
	Logger             *zap.SugaredLogger
}

// NewEntitlementHandler создаёт хендлер статуса подписки.
func NewEntitlementHandler(entitlementService *service.EntitlementService, logger *zap.SugaredLogger) *EntitlementHandler {
	return &EntitlementHandler{EntitlementService: entitlementService, Logger: logger}
}

// Status возвращает {active, expires_at} для текущего устройства.
func (h *EntitlementHandler) Status(w http.ResponseWriter, r *http.Request) {
	deviceID, ok := middleware.GetDeviceIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	st, err := h.EntitlementService.Status(r.Context(), deviceID)
	if err != nil {
		h.Logger.Errorw("Status: service error", "device_id", deviceID, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(st)
}
