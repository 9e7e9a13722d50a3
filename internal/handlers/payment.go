package handlers

import (
	"DailyManna/internal/config"
	"DailyManna/internal/middleware"
	"DailyManna/internal/model"
	"DailyManna/internal/service"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// PaymentHandler принимает платёжные записи и отдаёт историю.
type PaymentHandler struct {
	PaymentService *service.PaymentService
	Logger         *zap.SugaredLogger
	Config         *config.Config
}

// NewPaymentHandler создаёт хендлер платежей.
func NewPaymentHandler(paymentService *service.PaymentService, logger *zap.SugaredLogger, cfg *config.Config) *PaymentHandler {
	return &PaymentHandler{PaymentService: paymentService, Logger: logger, Config: cfg}
}

// PaymentDTO — платёжная запись в API.
type PaymentDTO struct {
	ID            string `json:"id,omitempty"`
	Email         string `json:"email,omitempty"`
	TransactionID string `json:"transaction_id"`
	AmountMinor   int64  `json:"amount_minor"`
	Currency      string `json:"currency"`
	PlanID        string `json:"plan_id"`
	Status        string `json:"status"`
	CreatedAt     string `json:"created_at,omitempty"`
}

// RecordResponse — ответ на запись платежа.
type RecordResponse struct {
	Created bool `json:"created"`
}

// Record сохраняет платёжную запись устройства. Повторная доставка
// записи с тем же transaction_id идемпотентна (created=false).
func (h *PaymentHandler) Record(w http.ResponseWriter, r *http.Request) {
	deviceID, ok := middleware.GetDeviceIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req PaymentDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("Record: invalid request body", "error", err)
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	rec := &model.PaymentRecord{
		ID:            req.ID,
		DeviceID:      deviceID,
		Email:         req.Email,
		TransactionID: req.TransactionID,
		AmountMinor:   req.AmountMinor,
		Currency:      req.Currency,
		PlanID:        req.PlanID,
		Status:        req.Status,
	}
	if req.CreatedAt != "" {
		if t, err := time.Parse(time.RFC3339, req.CreatedAt); err == nil {
			rec.CreatedAt = t
		} else {
			h.Logger.Warnw("Record: invalid created_at", "value", req.CreatedAt, "error", err)
		}
	}

	created, err := h.PaymentService.Record(r.Context(), rec)
	if err != nil {
		if errors.Is(err, service.ErrInvalidPaymentStatus) || errors.Is(err, service.ErrMissingTransactionID) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		h.Logger.Errorw("Record: service error", "device_id", deviceID, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(RecordResponse{Created: created})
}

// HistoryResponse — история платежей устройства.
type HistoryResponse struct {
	Payments []PaymentDTO `json:"payments"`
}

// History возвращает платежи текущего устройства, новые первыми.
func (h *PaymentHandler) History(w http.ResponseWriter, r *http.Request) {
	deviceID, ok := middleware.GetDeviceIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	recs, err := h.PaymentService.History(r.Context(), deviceID)
	if err != nil {
		h.Logger.Errorw("History: service error", "device_id", deviceID, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	resp := HistoryResponse{Payments: make([]PaymentDTO, 0, len(recs))}
	for _, rec := range recs {
		resp.Payments = append(resp.Payments, PaymentDTO{
			ID:            rec.ID,
			Email:         rec.Email,
			TransactionID: rec.TransactionID,
			AmountMinor:   rec.AmountMinor,
			Currency:      rec.Currency,
			PlanID:        rec.PlanID,
			Status:        rec.Status,
			CreatedAt:     rec.CreatedAt.UTC().Format(time.RFC3339),
		})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(resp)
}
