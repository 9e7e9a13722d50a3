package service

import (
	"DailyManna/internal/cli/gateway"
	"DailyManna/internal/cli/model"
	crepo "DailyManna/internal/cli/repo"
	"DailyManna/internal/plans"
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ErrSessionInFlight возвращается при попытке начать вторую платёжную
// сессию, пока первая не завершилась.
var ErrSessionInFlight = errors.New("a payment session is already in progress")

// RemoteRecorder — доставка платёжной записи в удалённое хранилище.
type RemoteRecorder interface {
	RecordPayment(ctx context.Context, rec model.PaymentRecord) error
}

// EntitlementInvalidator сбрасывает кэш резолвера после успешной оплаты.
type EntitlementInvalidator interface {
	Invalidate()
}

// PaymentSession проводит одну попытку покупки через внешний шлюз.
// Сессия не реентерабельна; автоматических повторов оплаты нет —
// неуспех требует явного перезапуска пользователем.
type PaymentSession struct {
	payments crepo.PaymentRepository
	gw       gateway.Gateway
	remote   RemoteRecorder
	resolver EntitlementInvalidator
	now      func() time.Time

	mu       sync.Mutex
	inFlight bool
}

// NewPaymentSession создаёт платёжную сессию.
func NewPaymentSession(payments crepo.PaymentRepository, gw gateway.Gateway, remote RemoteRecorder, resolver EntitlementInvalidator) *PaymentSession {
	return &PaymentSession{payments: payments, gw: gw, remote: remote, resolver: resolver, now: time.Now}
}

// Begin проводит покупку плана. Итоговый статус — в возвращаемой записи:
// successful при подтверждении шлюза, failed при отказе (запись остаётся
// локально для истории, entitlement не меняется). Недоставленная на сервер
// успешная запись остаётся в очереди и уйдёт при следующей синхронизации.
func (s *PaymentSession) Begin(ctx context.Context, userID, email string, plan plans.Plan) (model.PaymentRecord, error) {
	s.mu.Lock()
	if s.inFlight {
		s.mu.Unlock()
		return model.PaymentRecord{}, ErrSessionInFlight
	}
	s.inFlight = true
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		s.inFlight = false
		s.mu.Unlock()
	}()

	rec := model.PaymentRecord{
		ID:          uuid.NewString(),
		UserID:      userID,
		Email:       email,
		AmountMinor: plan.AmountMinor,
		Currency:    plan.Currency,
		PlanID:      plan.ID,
		Status:      model.PaymentStatusPending,
		CreatedAt:   s.now().Unix(),
	}
	if err := s.payments.InsertPayment(rec); err != nil {
		return rec, fmt.Errorf("persist pending payment: %w", err)
	}

	res, chErr := s.gw.Charge(ctx, gateway.ChargeRequest{
		UserID:      userID,
		Email:       email,
		PlanID:      plan.ID,
		AmountMinor: plan.AmountMinor,
		Currency:    plan.Currency,
	})
	if chErr != nil || !res.Succeeded {
		rec.Status = model.PaymentStatusFailed
		rec.TransactionID = res.TransactionID
		if err := s.payments.UpdatePaymentStatus(rec.ID, rec.Status, rec.TransactionID); err != nil {
			return rec, fmt.Errorf("persist failed payment: %w", err)
		}
		if chErr != nil {
			return rec, fmt.Errorf("gateway: %w", chErr)
		}
		return rec, nil
	}

	rec.Status = model.PaymentStatusSuccessful
	rec.TransactionID = res.TransactionID
	if err := s.payments.UpdatePaymentStatus(rec.ID, rec.Status, rec.TransactionID); err != nil {
		return rec, fmt.Errorf("persist successful payment: %w", err)
	}

	// Удалённая запись — best effort: при ошибке строка остаётся в очереди
	// (synced=0) и будет доставлена повторно; сервер дедуплицирует по
	// transaction_id, поэтому повтор идемпотентен.
	if s.remote != nil {
		if err := s.remote.RecordPayment(ctx, rec); err == nil {
			rec.Synced = true
			_ = s.payments.MarkSynced(rec.ID)
		}
	}

	if s.resolver != nil {
		s.resolver.Invalidate()
	}
	return rec, nil
}
