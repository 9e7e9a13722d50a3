package service

import (
	"DailyManna/internal/cli/gateway"
	"DailyManna/internal/cli/model"
	crepo "DailyManna/internal/cli/repo"
	"context"
	"fmt"
	"sync"
)

// fakePaymentRepo — PaymentRepository в памяти.
type fakePaymentRepo struct {
	mu   sync.Mutex
	recs []model.PaymentRecord
}

func (f *fakePaymentRepo) InsertPayment(p model.PaymentRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.recs = append(f.recs, p)
	return nil
}

func (f *fakePaymentRepo) UpsertPayment(p model.PaymentRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.recs {
		if f.recs[i].ID == p.ID {
			f.recs[i].Status = p.Status
			f.recs[i].TransactionID = p.TransactionID
			f.recs[i].Synced = p.Synced
			return nil
		}
	}
	f.recs = append(f.recs, p)
	return nil
}

func (f *fakePaymentRepo) UpdatePaymentStatus(id, status, transactionID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.recs {
		if f.recs[i].ID == id {
			f.recs[i].Status = status
			f.recs[i].TransactionID = transactionID
			return nil
		}
	}
	return fmt.Errorf("payment %q not found", id)
}

func (f *fakePaymentRepo) ListPayments() ([]model.PaymentRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]model.PaymentRecord, len(f.recs))
	copy(out, f.recs)
	return out, nil
}

func (f *fakePaymentRepo) ListUnsynced() ([]model.PaymentRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.PaymentRecord
	for _, r := range f.recs {
		if !r.Synced && r.Status == model.PaymentStatusSuccessful {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakePaymentRepo) MarkSynced(id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.recs {
		if f.recs[i].ID == id {
			f.recs[i].Synced = true
			return nil
		}
	}
	return fmt.Errorf("payment %q not found", id)
}

var _ crepo.PaymentRepository = (*fakePaymentRepo)(nil)

// fakeSettings — SettingsStore в памяти.
type fakeSettings struct {
	mu   sync.Mutex
	vals map[string]string
}

func newFakeSettings() *fakeSettings { return &fakeSettings{vals: map[string]string{}} }

func (f *fakeSettings) GetSetting(key string) (string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.vals[key]
	return v, ok, nil
}

func (f *fakeSettings) SetSetting(key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.vals[key] = value
	return nil
}

func (f *fakeSettings) DeleteSetting(key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.vals, key)
	return nil
}

var _ crepo.SettingsStore = (*fakeSettings)(nil)

// fakeContentRepo — ContentRepository в памяти (только то, что нужно sync).
type fakeContentRepo struct {
	mu    sync.Mutex
	items map[string]model.Devotional
}

func newFakeContentRepo() *fakeContentRepo {
	return &fakeContentRepo{items: map[string]model.Devotional{}}
}

func (f *fakeContentRepo) UpsertDevotionals(items []model.Devotional) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, it := range items {
		f.items[it.ID] = it
	}
	return nil
}

func (f *fakeContentRepo) ListDevotionals() ([]model.Devotional, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.Devotional
	for _, it := range f.items {
		out = append(out, it)
	}
	return out, nil
}

func (f *fakeContentRepo) GetDevotional(id string) (*model.Devotional, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if it, ok := f.items[id]; ok {
		return &it, nil
	}
	return nil, nil
}

func (f *fakeContentRepo) UpsertDownload(c model.DownloadedCopy) error { return nil }
func (f *fakeContentRepo) ListDownloads() ([]model.DownloadedCopy, error) {
	return nil, nil
}
func (f *fakeContentRepo) DeleteDownload(id string) error { return nil }

var _ crepo.ContentRepository = (*fakeContentRepo)(nil)

// fakeRemote — удалённый источник платежей/контента и приёмник записей.
type fakeRemote struct {
	mu          sync.Mutex
	payments    []model.PaymentRecord
	paymentsErr error
	content     []model.Devotional
	serverTime  string
	contentErr  error
	recordErr   error
	recorded    []model.PaymentRecord
}

func (f *fakeRemote) FetchPayments(ctx context.Context) ([]model.PaymentRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.paymentsErr != nil {
		return nil, f.paymentsErr
	}
	return f.payments, nil
}

func (f *fakeRemote) FetchContent(ctx context.Context, since string) ([]model.Devotional, string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.contentErr != nil {
		return nil, "", f.contentErr
	}
	return f.content, f.serverTime, nil
}

func (f *fakeRemote) RecordPayment(ctx context.Context, rec model.PaymentRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.recordErr != nil {
		return f.recordErr
	}
	f.recorded = append(f.recorded, rec)
	return nil
}

// fakeGateway — платёжный шлюз с программируемым исходом.
type fakeGateway struct {
	result  gateway.Result
	err     error
	entered chan struct{} // закрывается при входе в Charge (если задан)
	release chan struct{} // Charge блокируется до закрытия (если задан)
}

func (f *fakeGateway) Charge(ctx context.Context, req gateway.ChargeRequest) (gateway.Result, error) {
	if f.entered != nil {
		close(f.entered)
	}
	if f.release != nil {
		<-f.release
	}
	return f.result, f.err
}

var _ gateway.Gateway = (*fakeGateway)(nil)

// fakeRegistrar фиксирует вызовы Register/Cancel.
type fakeRegistrar struct {
	mu         sync.Mutex
	allowExact bool
	registered []struct {
		ID           string
		Hour, Minute int
		Exact        bool
	}
	cancelled []string
}

func (f *fakeRegistrar) Register(id string, hour, minute int, exact bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if exact && !f.allowExact {
		return ErrExactUnavailable
	}
	f.registered = append(f.registered, struct {
		ID           string
		Hour, Minute int
		Exact        bool
	}{id, hour, minute, exact})
	return nil
}

func (f *fakeRegistrar) Cancel(id string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cancelled = append(f.cancelled, id)
}

var _ Registrar = (*fakeRegistrar)(nil)
