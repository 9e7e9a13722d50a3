package handlers_test

import (
	"DailyManna/internal/config"
	"DailyManna/internal/handlers"
	"DailyManna/internal/middleware"
	"DailyManna/internal/model"
	"DailyManna/internal/repo"
	"DailyManna/internal/service"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

// Local light mocks
type hMockDevotionalRepo struct{ mock.Mock }

func (m *hMockDevotionalRepo) ListUpdatedSince(ctx context.Context, since time.Time) ([]model.Devotional, error) {
	args := m.Called(ctx, since)
	if v, ok := args.Get(0).([]model.Devotional); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *hMockDevotionalRepo) GetByID(ctx context.Context, id string) (*model.Devotional, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*model.Devotional); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *hMockDevotionalRepo) Insert(ctx context.Context, d *model.Devotional) (bool, error) {
	args := m.Called(ctx, d)
	return args.Bool(0), args.Error(1)
}

var _ repo.DevotionalRepository = (*hMockDevotionalRepo)(nil)

type hMockPaymentRepo struct{ mock.Mock }

func (m *hMockPaymentRepo) RecordPayment(ctx context.Context, p *model.PaymentRecord) (bool, error) {
	args := m.Called(ctx, p)
	return args.Bool(0), args.Error(1)
}
func (m *hMockPaymentRepo) ListByDevice(ctx context.Context, deviceID string) ([]model.PaymentRecord, error) {
	args := m.Called(ctx, deviceID)
	if v, ok := args.Get(0).([]model.PaymentRecord); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *hMockPaymentRepo) ListSuccessfulByDevice(ctx context.Context, deviceID string) ([]model.PaymentRecord, error) {
	args := m.Called(ctx, deviceID)
	if v, ok := args.Get(0).([]model.PaymentRecord); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

var _ repo.PaymentRepository = (*hMockPaymentRepo)(nil)

type hMockDeviceRepo struct{ mock.Mock }

func (m *hMockDeviceRepo) Upsert(ctx context.Context, d *model.Device) error {
	return m.Called(ctx, d).Error(0)
}
func (m *hMockDeviceRepo) GetByID(ctx context.Context, id string) (*model.Device, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*model.Device); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *hMockDeviceRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

var _ repo.DeviceRepository = (*hMockDeviceRepo)(nil)

type hMockFavoriteRepo struct{ mock.Mock }

func (m *hMockFavoriteRepo) Add(ctx context.Context, f *model.Favorite) (bool, error) {
	args := m.Called(ctx, f)
	return args.Bool(0), args.Error(1)
}
func (m *hMockFavoriteRepo) ListByDevice(ctx context.Context, deviceID string) ([]model.Favorite, error) {
	args := m.Called(ctx, deviceID)
	if v, ok := args.Get(0).([]model.Favorite); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *hMockFavoriteRepo) Remove(ctx context.Context, deviceID, devotionalID string) error {
	return m.Called(ctx, deviceID, devotionalID).Error(0)
}

var _ repo.FavoriteRepository = (*hMockFavoriteRepo)(nil)

// testMocks — все репозитории, используемые роутером.
type testMocks struct {
	devotionals *hMockDevotionalRepo
	payments    *hMockPaymentRepo
	devices     *hMockDeviceRepo
	favorites   *hMockFavoriteRepo
}

func newHandlersTestRouter(t *testing.T) (http.Handler, *config.Config, *testMocks) {
	t.Helper()
	cfg := &config.Config{AuthSecret: "test-secret", AdminToken: "admin-token", FreeDay: "sunday"}
	logger := zap.NewNop().Sugar()

	m := &testMocks{
		devotionals: &hMockDevotionalRepo{},
		payments:    &hMockPaymentRepo{},
		devices:     &hMockDeviceRepo{},
		favorites:   &hMockFavoriteRepo{},
	}

	contentSvc := service.NewContentService(m.devotionals)
	entSvc := service.NewEntitlementService(m.payments, repo.NewNoopCache(), logger)
	paymentSvc := service.NewPaymentService(m.payments, entSvc, nil, logger)
	deviceSvc := service.NewDeviceService(m.devices)
	favoriteSvc := service.NewFavoriteService(m.favorites)

	h := handlers.NewHandler(contentSvc, paymentSvc, entSvc, deviceSvc, favoriteSvc, logger, cfg)
	return h.Router, cfg, m
}

// addDeviceCookie подписывает и прикладывает device cookie к запросу.
func addDeviceCookie(t *testing.T, req *http.Request, deviceID, secret string) {
	t.Helper()
	rr := httptest.NewRecorder()
	if err := middleware.SetDeviceCookie(rr, deviceID, secret); err != nil {
		t.Fatalf("failed to sign device cookie: %v", err)
	}
	for _, c := range rr.Result().Cookies() {
		req.AddCookie(c)
	}
}
