package handlers

import (
	"DailyManna/internal/middleware"
	"DailyManna/internal/service"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// FavoriteHandler — закладки устройства.
type FavoriteHandler struct {
	FavoriteService *service.FavoriteService
	Logger          *zap.SugaredLogger
}

// NewFavoriteHandler создаёт хендлер закладок.
func NewFavoriteHandler(favoriteService *service.FavoriteService, logger *zap.SugaredLogger) *FavoriteHandler {
	return &FavoriteHandler{FavoriteService: favoriteService, Logger: logger}
}

// FavoriteRequest — тело добавления закладки.
type FavoriteRequest struct {
	DevotionalID string `json:"devotional_id"`
}

// FavoriteDTO — закладка в API.
type FavoriteDTO struct {
	DevotionalID string `json:"devotional_id"`
	CreatedAt    string `json:"created_at"`
}

// Add добавляет закладку текущего устройства.
func (h *FavoriteHandler) Add(w http.ResponseWriter, r *http.Request) {
	deviceID, ok := middleware.GetDeviceIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req FavoriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.DevotionalID == "" {
		h.Logger.Warnw("Add favorite: invalid request body", "error", err)
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	created, err := h.FavoriteService.Add(r.Context(), deviceID, req.DevotionalID)
	if err != nil {
		h.Logger.Errorw("Add favorite: service error", "device_id", deviceID, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if created {
		w.WriteHeader(http.StatusCreated)
	} else {
		w.WriteHeader(http.StatusOK)
	}
}

// List возвращает закладки текущего устройства.
func (h *FavoriteHandler) List(w http.ResponseWriter, r *http.Request) {
	deviceID, ok := middleware.GetDeviceIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	favs, err := h.FavoriteService.List(r.Context(), deviceID)
	if err != nil {
		h.Logger.Errorw("List favorites: service error", "device_id", deviceID, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	out := make([]FavoriteDTO, 0, len(favs))
	for _, f := range favs {
		out = append(out, FavoriteDTO{
			DevotionalID: f.DevotionalID,
			CreatedAt:    f.CreatedAt.UTC().Format(time.RFC3339),
		})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(out)
}

// Remove удаляет закладку текущего устройства.
func (h *FavoriteHandler) Remove(w http.ResponseWriter, r *http.Request) {
	deviceID, ok := middleware.GetDeviceIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	devotionalID := chi.URLParam(r, "devotionalID")
	if devotionalID == "" {
		http.Error(w, "missing devotional id", http.StatusBadRequest)
		return
	}

	if err := h.FavoriteService.Remove(r.Context(), deviceID, devotionalID); err != nil {
		h.Logger.Errorw("Remove favorite: service error", "device_id", deviceID, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
