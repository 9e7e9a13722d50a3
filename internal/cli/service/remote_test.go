package service

import (
	"DailyManna/internal/cli/model"
	fsrepo "DailyManna/internal/cli/repo/fs"
	"DailyManna/internal/config"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

// setupClientEnv изолирует файловое хранилище идентичности в temp-каталоге.
func setupClientEnv(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	if runtime.GOOS == "windows" {
		t.Setenv("APPDATA", dir)
	} else {
		t.Setenv("XDG_CONFIG_HOME", dir)
	}
}

func TestRemoteClient_RegisterDevicePersistsToken(t *testing.T) {
	setupClientEnv(t)

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/device/register", r.URL.Path)
		var req struct {
			DeviceID string `json:"device_id"`
			Email    string `json:"email"`
		}
		_ = json.NewDecoder(r.Body).Decode(&req)
		assert.Equal(t, "dev-1", req.DeviceID)

		http.SetCookie(w, &http.Cookie{Name: "device_token", Value: "signed-token"})
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	c := NewRemoteClient(&config.Config{ServerURL: ts.URL})
	assert.NoError(t, c.RegisterDevice(context.Background(), "dev-1", "user@example.com"))

	tok, err := (fsrepo.IdentityFSStore{}).Load()
	assert.NoError(t, err)
	assert.Equal(t, "signed-token", tok)
}

func TestRemoteClient_FetchContent(t *testing.T) {
	setupClientEnv(t)

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/content", r.URL.Path)
		assert.Equal(t, "2025-03-01T00:00:00Z", r.URL.Query().Get("since"))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"items": []map[string]any{
				{"id": "d1", "title": "Первое", "body": "b", "published_at": "2025-03-02T00:00:00Z", "day_tag": "sunday"},
			},
			"server_time": "2025-03-02T10:00:00Z",
		})
	}))
	defer ts.Close()

	c := NewRemoteClient(&config.Config{ServerURL: ts.URL})
	items, serverTime, err := c.FetchContent(context.Background(), "2025-03-01T00:00:00Z")
	assert.NoError(t, err)
	assert.Equal(t, "2025-03-02T10:00:00Z", serverTime)
	assert.Len(t, items, 1)
	assert.Equal(t, "d1", items[0].ID)
	assert.Equal(t, "sunday", items[0].DayTag)
	assert.NotZero(t, items[0].PublishedAt)
}

func TestRemoteClient_FetchContent_EscapesSinceOffset(t *testing.T) {
	setupClientEnv(t)

	// "+03:00" без экранирования декодируется сервером как пробел
	since := "2025-03-01T00:00:00+03:00"
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, since, r.URL.Query().Get("since"))
		_ = json.NewEncoder(w).Encode(map[string]any{"items": []any{}, "server_time": "2025-03-02T10:00:00Z"})
	}))
	defer ts.Close()

	c := NewRemoteClient(&config.Config{ServerURL: ts.URL})
	_, _, err := c.FetchContent(context.Background(), since)
	assert.NoError(t, err)
}

func TestRemoteClient_RecordPaymentSendsLocalID(t *testing.T) {
	setupClientEnv(t)

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/payments/record", r.URL.Path)
		var req map[string]any
		_ = json.NewDecoder(r.Body).Decode(&req)
		// локальный id уходит на сервер как есть, чтобы строки совпадали
		assert.Equal(t, "p1", req["id"])
		assert.Equal(t, "txn-1", req["transaction_id"])
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	c := NewRemoteClient(&config.Config{ServerURL: ts.URL})
	err := c.RecordPayment(context.Background(), model.PaymentRecord{
		ID: "p1", TransactionID: "txn-1", AmountMinor: 50000, Currency: "NGN",
		PlanID: "1-Month Premium", Status: model.PaymentStatusSuccessful,
	})
	assert.NoError(t, err)
}

func TestRemoteClient_ServerErrorSurfaces(t *testing.T) {
	setupClientEnv(t)

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer ts.Close()

	c := NewRemoteClient(&config.Config{ServerURL: ts.URL})
	_, _, err := c.FetchContent(context.Background(), "")
	assert.Error(t, err)
	_, err2 := c.FetchPayments(context.Background())
	assert.Error(t, err2)
}
