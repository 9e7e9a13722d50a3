package service

import (
	"DailyManna/internal/mail"
	"DailyManna/internal/model"
	"DailyManna/internal/repo"
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Ошибки валидации платежа.
var (
	ErrInvalidPaymentStatus = errors.New("invalid payment status")
	ErrMissingTransactionID = errors.New("missing transaction id")
)

// PaymentService принимает платёжные записи от клиентов.
// Сумму и валюту сервер сейчас не сверяет с доверенным источником —
// запись клиента принимается как есть.
// TODO: серверная верификация транзакции у платёжного шлюза.
type PaymentService struct {
	payments    repo.PaymentRepository
	entitlement *EntitlementService
	mailer      mail.Sender
	logger      *zap.SugaredLogger
}

// NewPaymentService создаёт сервис платежей. mailer может быть nil —
// тогда квитанции не отправляются.
func NewPaymentService(p repo.PaymentRepository, ent *EntitlementService, mailer mail.Sender, logger *zap.SugaredLogger) *PaymentService {
	return &PaymentService{payments: p, entitlement: ent, mailer: mailer, logger: logger}
}

// Record сохраняет платёжную запись. Повторная доставка записи с тем же
// transaction_id не создаёт дубликата (created=false). При первой записи
// успешного платежа инвалидируется кэш статуса и отправляется квитанция.
func (s *PaymentService) Record(ctx context.Context, rec *model.PaymentRecord) (bool, error) {
	if !model.ValidStatus(rec.Status) {
		return false, ErrInvalidPaymentStatus
	}
	if rec.Status != model.PaymentStatusPending && rec.TransactionID == "" {
		return false, ErrMissingTransactionID
	}
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}

	created, err := s.payments.RecordPayment(ctx, rec)
	if err != nil {
		return false, err
	}
	if !created || rec.Status != model.PaymentStatusSuccessful {
		return created, nil
	}

	s.entitlement.Invalidate(ctx, rec.DeviceID)

	if s.mailer != nil && rec.Email != "" {
		// отправка квитанции не должна ломать запись платежа
		if err := s.mailer.SendReceipt(rec.Email, rec.PlanID, rec.TransactionID, rec.AmountMinor, rec.Currency, rec.CreatedAt); err != nil {
			s.logger.Warnw("payment: receipt email failed", "transaction_id", rec.TransactionID, "error", err)
		}
	}
	return true, nil
}

// History возвращает историю платежей устройства.
func (s *PaymentService) History(ctx context.Context, deviceID string) ([]model.PaymentRecord, error) {
	return s.payments.ListByDevice(ctx, deviceID)
}
