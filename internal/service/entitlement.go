package service

import (
	"DailyManna/internal/plans"
	"DailyManna/internal/repo"
	"context"
	"time"

	"go.uber.org/zap"
)

// EntitlementStatus — статус подписки устройства.
type EntitlementStatus struct {
	Active    bool       `json:"active"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

// statusCacheTTL — короткий TTL серверного кэша статуса. Кэш
// инвалидируется сразу при записи нового успешного платежа.
const statusCacheTTL = 60 * time.Second

// EntitlementService вычисляет статус подписки по истории платежей.
type EntitlementService struct {
	payments repo.PaymentRepository
	cache    repo.StatusCache
	logger   *zap.SugaredLogger
	now      func() time.Time
}

func NewEntitlementService(p repo.PaymentRepository, cache repo.StatusCache, logger *zap.SugaredLogger) *EntitlementService {
	return &EntitlementService{payments: p, cache: cache, logger: logger, now: time.Now}
}

func cacheKey(deviceID string) string { return "entitlement:" + deviceID }

// Status возвращает статус подписки устройства: активна, пока у устройства
// есть успешный платёж с неистёкшим сроком плана.
func (s *EntitlementService) Status(ctx context.Context, deviceID string) (EntitlementStatus, error) {
	var cached EntitlementStatus
	if hit, err := s.cache.Get(ctx, cacheKey(deviceID), &cached); err == nil && hit {
		return cached, nil
	}

	recs, err := s.payments.ListSuccessfulByDevice(ctx, deviceID)
	if err != nil {
		return EntitlementStatus{}, err
	}

	st := EntitlementStatus{}
	now := s.now()
	for _, r := range recs {
		exp := plans.ExpiryOf(r.PlanID, r.CreatedAt)
		if now.Before(exp) && (st.ExpiresAt == nil || exp.After(*st.ExpiresAt)) {
			e := exp
			st.Active = true
			st.ExpiresAt = &e
		}
	}

	if err := s.cache.Set(ctx, cacheKey(deviceID), st, statusCacheTTL); err != nil {
		s.logger.Warnw("entitlement: cache set failed", "device_id", deviceID, "error", err)
	}
	return st, nil
}

// Invalidate сбрасывает кэш статуса устройства. Вызывается сразу после
// записи нового успешного платежа.
func (s *EntitlementService) Invalidate(ctx context.Context, deviceID string) {
	if err := s.cache.Delete(ctx, cacheKey(deviceID)); err != nil {
		s.logger.Warnw("entitlement: cache delete failed", "device_id", deviceID, "error", err)
	}
}
