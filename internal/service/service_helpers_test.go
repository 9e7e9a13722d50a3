package service

import (
	"DailyManna/internal/model"
	"DailyManna/internal/repo"
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func testLogger(t *testing.T) *zap.SugaredLogger {
	t.Helper()
	return zap.NewNop().Sugar()
}

// мок для repo.PaymentRepository
type mockPaymentRepo struct{ mock.Mock }

func (m *mockPaymentRepo) RecordPayment(ctx context.Context, p *model.PaymentRecord) (bool, error) {
	args := m.Called(ctx, p)
	return args.Bool(0), args.Error(1)
}

func (m *mockPaymentRepo) ListByDevice(ctx context.Context, deviceID string) ([]model.PaymentRecord, error) {
	args := m.Called(ctx, deviceID)
	if recs, ok := args.Get(0).([]model.PaymentRecord); ok {
		return recs, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockPaymentRepo) ListSuccessfulByDevice(ctx context.Context, deviceID string) ([]model.PaymentRecord, error) {
	args := m.Called(ctx, deviceID)
	if recs, ok := args.Get(0).([]model.PaymentRecord); ok {
		return recs, args.Error(1)
	}
	return nil, args.Error(1)
}

var _ repo.PaymentRepository = (*mockPaymentRepo)(nil)

// mapCache — StatusCache в памяти для проверки кэширования/инвалидации.
type mapCache struct {
	vals map[string][]byte
}

func newMapCache() *mapCache { return &mapCache{vals: map[string][]byte{}} }

func (c *mapCache) Get(ctx context.Context, key string, dest any) (bool, error) {
	b, ok := c.vals[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, dest)
}

func (c *mapCache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.vals[key] = b
	return nil
}

func (c *mapCache) Delete(ctx context.Context, key string) error {
	delete(c.vals, key)
	return nil
}

var _ repo.StatusCache = (*mapCache)(nil)
