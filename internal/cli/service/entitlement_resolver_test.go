package service

import (
	"DailyManna/internal/cli/model"
	crepo "DailyManna/internal/cli/repo"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func purchasedUnix(y int, m time.Month, d int) int64 {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Unix()
}

func TestEntitlementResolver_LocalHistory(t *testing.T) {
	ctx := context.Background()

	newResolver := func(now time.Time, recs ...model.PaymentRecord) *EntitlementResolver {
		payments := &fakePaymentRepo{recs: recs}
		r := NewEntitlementResolver(payments, newFakeSettings(), nil)
		r.now = func() time.Time { return now }
		return r
	}

	rec := model.PaymentRecord{
		ID:     "p1",
		UserID: "dev-1",
		PlanID: "3-Month Premium",
		Status: model.PaymentStatusSuccessful,
		// куплено 1 января, действует до 1 апреля (исключительно)
		CreatedAt: purchasedUnix(2025, 1, 1),
	}

	t.Run("active just before expiry", func(t *testing.T) {
		r := newResolver(time.Date(2025, 3, 31, 23, 59, 59, 0, time.UTC), rec)
		assert.True(t, r.HasPremiumAccess(ctx, "dev-1"))
	})

	t.Run("inactive at expiry", func(t *testing.T) {
		r := newResolver(time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC), rec)
		assert.False(t, r.HasPremiumAccess(ctx, "dev-1"))
	})

	t.Run("failed payment grants nothing", func(t *testing.T) {
		failed := rec
		failed.Status = model.PaymentStatusFailed
		r := newResolver(time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), failed)
		assert.False(t, r.HasPremiumAccess(ctx, "dev-1"))
	})
}

func TestEntitlementResolver_LocalResultDoesNotStampRemoteCheck(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)

	settings := newFakeSettings()
	payments := &fakePaymentRepo{recs: []model.PaymentRecord{{
		ID: "p1", UserID: "dev-1", PlanID: "6-Month Premium",
		Status: model.PaymentStatusSuccessful, CreatedAt: purchasedUnix(2025, 1, 1),
	}}}
	r := NewEntitlementResolver(payments, settings, nil)
	r.now = func() time.Time { return now }

	assert.True(t, r.HasPremiumAccess(ctx, "dev-1"))

	// сверки с сервером не было — отметка о ней не ставится
	_, ok, err := settings.GetSetting(crepo.SettingLastRemoteCheck)
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestEntitlementResolver_RemoteFallback(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)

	payments := &fakePaymentRepo{}
	settings := newFakeSettings()
	remote := &fakeRemote{payments: []model.PaymentRecord{
		{ID: "p1", PlanID: "6-Month Premium", Status: model.PaymentStatusSuccessful, CreatedAt: purchasedUnix(2025, 1, 1), Synced: true},
	}}
	r := NewEntitlementResolver(payments, settings, remote)
	r.now = func() time.Time { return now }

	// локальная история пуста — ответ приходит с сервера и кэшируется локально
	assert.True(t, r.HasPremiumAccess(ctx, "dev-1"))

	local, _ := payments.ListPayments()
	assert.Len(t, local, 1)

	// успешная сверка фиксируется для офлайн-окна
	raw, ok, err := settings.GetSetting(crepo.SettingLastRemoteCheck)
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, now.Format(time.RFC3339), raw)
}

func TestEntitlementResolver_OfflineGrace(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 2, 1, 12, 0, 0, 0, time.UTC)

	t.Run("recent check honoured", func(t *testing.T) {
		settings := newFakeSettings()
		_ = settings.SetSetting(crepo.SettingLastRemoteCheck, now.Add(-time.Hour).Format(time.RFC3339))
		_ = settings.SetSetting(crepo.SettingLastKnownActive, "true")

		r := NewEntitlementResolver(&fakePaymentRepo{}, settings, &fakeRemote{paymentsErr: assert.AnError})
		r.now = func() time.Time { return now }

		// сеть недоступна, но последняя сверка свежая — доступ сохраняется
		assert.True(t, r.HasPremiumAccess(ctx, "dev-1"))
	})

	t.Run("stale check expires", func(t *testing.T) {
		settings := newFakeSettings()
		_ = settings.SetSetting(crepo.SettingLastRemoteCheck, now.Add(-25*time.Hour).Format(time.RFC3339))
		_ = settings.SetSetting(crepo.SettingLastKnownActive, "true")

		r := NewEntitlementResolver(&fakePaymentRepo{}, settings, &fakeRemote{paymentsErr: assert.AnError})
		r.now = func() time.Time { return now }

		assert.False(t, r.HasPremiumAccess(ctx, "dev-1"))
	})
}

func TestEntitlementResolver_CacheInvalidation(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)

	payments := &fakePaymentRepo{}
	r := NewEntitlementResolver(payments, newFakeSettings(), nil)
	r.now = func() time.Time { return now }

	assert.False(t, r.HasPremiumAccess(ctx, "dev-1"))

	// новый успешный платёж виден только после инвалидации кэша
	_ = payments.InsertPayment(model.PaymentRecord{
		ID: "p1", UserID: "dev-1", PlanID: "1-Month Premium",
		Status: model.PaymentStatusSuccessful, CreatedAt: now.Unix(),
	})
	assert.False(t, r.HasPremiumAccess(ctx, "dev-1"))

	r.Invalidate()
	assert.True(t, r.HasPremiumAccess(ctx, "dev-1"))
}
