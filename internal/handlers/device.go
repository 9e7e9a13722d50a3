package handlers

import (
	"DailyManna/internal/config"
	"DailyManna/internal/middleware"
	"DailyManna/internal/service"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// DeviceHandler обрабатывает регистрацию и удаление устройств.
type DeviceHandler struct {
	DeviceService *service.DeviceService
	Logger        *zap.SugaredLogger
	Config        *config.Config
}

// NewDeviceHandler создаёт хендлер устройств.
func NewDeviceHandler(deviceService *service.DeviceService, logger *zap.SugaredLogger, cfg *config.Config) *DeviceHandler {
	return &DeviceHandler{DeviceService: deviceService, Logger: logger, Config: cfg}
}

// RegisterRequest — тело запроса регистрации устройства.
type RegisterRequest struct {
	DeviceID string `json:"device_id"`
	Email    string `json:"email,omitempty"`
}

// Register сохраняет устройство и ставит подписанную device cookie.
func (h *DeviceHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("Register: invalid request body", "error", err)
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	if req.DeviceID == "" {
		http.Error(w, "missing device_id", http.StatusBadRequest)
		return
	}

	if err := h.DeviceService.Register(r.Context(), req.DeviceID, req.Email); err != nil {
		h.Logger.Errorw("Register: service error", "device_id", req.DeviceID, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	if err := middleware.SetDeviceCookie(w, req.DeviceID, h.Config.AuthSecret); err != nil {
		h.Logger.Errorw("Register: failed to sign device token", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}

// Delete удаляет устройство и все его записи (запрос на удаление аккаунта).
func (h *DeviceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	deviceID, ok := middleware.GetDeviceIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	if err := h.DeviceService.Delete(r.Context(), deviceID); err != nil {
		h.Logger.Errorw("Delete: service error", "device_id", deviceID, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
