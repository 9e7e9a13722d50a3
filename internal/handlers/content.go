package handlers

import (
	"DailyManna/internal/config"
	"DailyManna/internal/model"
	"DailyManna/internal/service"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// ContentHandler отдаёт чтения и принимает административные вставки.
type ContentHandler struct {
	ContentService *service.ContentService
	Logger         *zap.SugaredLogger
	Config         *config.Config
}

// NewContentHandler создаёт хендлер контента.
func NewContentHandler(contentService *service.ContentService, logger *zap.SugaredLogger, cfg *config.Config) *ContentHandler {
	return &ContentHandler{ContentService: contentService, Logger: logger, Config: cfg}
}

// DevotionalDTO — представление чтения в API.
type DevotionalDTO struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Body        string `json:"body"`
	PublishedAt string `json:"published_at"`
	DayTag      string `json:"day_tag"`
	UpdatedAt   string `json:"updated_at"`
}

func toDevotionalDTO(d model.Devotional) DevotionalDTO {
	return DevotionalDTO{
		ID:          d.ID,
		Title:       d.Title,
		Body:        d.Body,
		PublishedAt: d.PublishedAt.UTC().Format(time.RFC3339),
		DayTag:      d.DayTag,
		UpdatedAt:   d.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

// ContentResponse — ответ выборки контента.
type ContentResponse struct {
	Items      []DevotionalDTO `json:"items"`
	ServerTime string          `json:"server_time"`
}

// List возвращает чтения, изменённые после ?since= (RFC3339). Доступ открытый:
// разграничение free/premium выполняется на клиенте контент-гейтом.
func (h *ContentHandler) List(w http.ResponseWriter, r *http.Request) {
	var since time.Time
	if raw := r.URL.Query().Get("since"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			h.Logger.Warnw("List: invalid since", "value", raw, "error", err)
			http.Error(w, "invalid since", http.StatusBadRequest)
			return
		}
		since = t
	}

	items, err := h.ContentService.ListSince(r.Context(), since)
	if err != nil {
		h.Logger.Errorw("List: service error", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	resp := ContentResponse{
		Items:      make([]DevotionalDTO, 0, len(items)),
		ServerTime: time.Now().UTC().Format(time.RFC3339),
	}
	for _, d := range items {
		resp.Items = append(resp.Items, toDevotionalDTO(d))
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(resp)
}

// AdminInsertRequest — тело административной вставки чтения.
type AdminInsertRequest struct {
	ID          string `json:"id,omitempty"`
	Title       string `json:"title"`
	Body        string `json:"body"`
	PublishedAt string `json:"published_at"`
}

// AdminInsert создаёт чтение. Запрос должен нести X-Admin-Token.
func (h *ContentHandler) AdminInsert(w http.ResponseWriter, r *http.Request) {
	if h.Config.AdminToken == "" || r.Header.Get("X-Admin-Token") != h.Config.AdminToken {
		http.Error(w, "forbidden", http.StatusForbidden)
		return
	}

	var req AdminInsertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("AdminInsert: invalid request body", "error", err)
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	publishedAt, err := time.Parse(time.RFC3339, req.PublishedAt)
	if err != nil {
		h.Logger.Warnw("AdminInsert: invalid published_at", "value", req.PublishedAt, "error", err)
		http.Error(w, "invalid published_at", http.StatusBadRequest)
		return
	}

	d := &model.Devotional{ID: req.ID, Title: req.Title, Body: req.Body, PublishedAt: publishedAt}
	created, err := h.ContentService.Insert(r.Context(), d)
	if err != nil {
		if errors.Is(err, service.ErrInvalidContent) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		h.Logger.Errorw("AdminInsert: service error", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if created {
		w.WriteHeader(http.StatusCreated)
	} else {
		w.WriteHeader(http.StatusOK)
	}
	_ = json.NewEncoder(w).Encode(toDevotionalDTO(*d))
}
