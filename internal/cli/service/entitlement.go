package service

import (
	"DailyManna/internal/cli/model"
	crepo "DailyManna/internal/cli/repo"
	"DailyManna/internal/plans"
	"context"
	"strconv"
	"sync"
	"time"
)

const (
	// entitlementCacheTTL — TTL кэша вычисленного статуса в памяти.
	// Кэш сбрасывается немедленно после записи нового успешного платежа.
	entitlementCacheTTL = 30 * time.Second

	// offlineGrace — максимальная давность последней успешной сверки
	// с сервером, в пределах которой при недоступной сети действует
	// последний известный статус (fail-open, но ограниченный).
	offlineGrace = 24 * time.Hour
)

// RemotePayments — удалённый источник платёжной истории.
type RemotePayments interface {
	FetchPayments(ctx context.Context) ([]model.PaymentRecord, error)
}

// EntitlementResolver отвечает на единственный вопрос: есть ли у
// пользователя сейчас premium-доступ. Локальное хранилище — быстрый путь,
// удалённое — медленный; при обрыве сети доступ не отбирается.
type EntitlementResolver struct {
	payments crepo.PaymentRepository
	settings crepo.SettingsStore
	remote   RemotePayments
	now      func() time.Time

	mu        sync.Mutex
	cachedVal bool
	cachedAt  time.Time
	hasCached bool
}

// NewEntitlementResolver создаёт резолвер. remote может быть nil —
// тогда используется только локальная история.
func NewEntitlementResolver(payments crepo.PaymentRepository, settings crepo.SettingsStore, remote RemotePayments) *EntitlementResolver {
	return &EntitlementResolver{payments: payments, settings: settings, remote: remote, now: time.Now}
}

// HasPremiumAccess сообщает, действует ли premium для userID.
// Чтение идемпотентно и безопасно для повторных вызовов.
func (r *EntitlementResolver) HasPremiumAccess(ctx context.Context, userID string) bool {
	r.mu.Lock()
	if r.hasCached && r.now().Sub(r.cachedAt) < entitlementCacheTTL {
		v := r.cachedVal
		r.mu.Unlock()
		return v
	}
	r.mu.Unlock()

	now := r.now()
	active := r.activeLocally(userID, now)

	if !active && r.remote != nil {
		recs, err := r.remote.FetchPayments(ctx)
		if err != nil {
			// сеть недоступна: остаёмся на локальном результате,
			// в пределах grace-окна доверяем последнему известному статусу
			active = active || r.lastKnownWithinGrace(now)
		} else {
			for _, rec := range recs {
				if rec.UserID == "" {
					rec.UserID = userID
				}
				_ = r.payments.UpsertPayment(rec)
			}
			active = r.activeLocally(userID, now)
			// отметка ставится только после реальной сверки с сервером
			r.rememberRemoteCheck(active, now)
		}
	}

	r.mu.Lock()
	r.cachedVal, r.cachedAt, r.hasCached = active, now, true
	r.mu.Unlock()
	return active
}

// Invalidate сбрасывает кэш. Обязателен после записи нового успешного платежа.
func (r *EntitlementResolver) Invalidate() {
	r.mu.Lock()
	r.hasCached = false
	r.mu.Unlock()
}

// activeLocally вычисляет статус по локальной истории платежей.
func (r *EntitlementResolver) activeLocally(userID string, now time.Time) bool {
	recs, err := r.payments.ListPayments()
	if err != nil {
		return false
	}
	for _, rec := range recs {
		if rec.Status != model.PaymentStatusSuccessful {
			continue
		}
		if rec.UserID != "" && rec.UserID != userID {
			continue
		}
		if plans.ActiveAt(rec.PlanID, time.Unix(rec.CreatedAt, 0).UTC(), now) {
			return true
		}
	}
	return false
}

func (r *EntitlementResolver) rememberRemoteCheck(active bool, now time.Time) {
	_ = r.settings.SetSetting(crepo.SettingLastRemoteCheck, now.UTC().Format(time.RFC3339))
	_ = r.settings.SetSetting(crepo.SettingLastKnownActive, strconv.FormatBool(active))
}

func (r *EntitlementResolver) lastKnownWithinGrace(now time.Time) bool {
	raw, ok, err := r.settings.GetSetting(crepo.SettingLastRemoteCheck)
	if err != nil || !ok {
		return false
	}
	checkedAt, err := time.Parse(time.RFC3339, raw)
	if err != nil || now.Sub(checkedAt) > offlineGrace {
		return false
	}
	known, ok, err := r.settings.GetSetting(crepo.SettingLastKnownActive)
	if err != nil || !ok {
		return false
	}
	v, err := strconv.ParseBool(known)
	return err == nil && v
}
