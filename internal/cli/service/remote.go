package service

import (
	"DailyManna/internal/cli/api"
	"DailyManna/internal/cli/model"
	crepo "DailyManna/internal/cli/repo"
	fsrepo "DailyManna/internal/cli/repo/fs"
	"DailyManna/internal/config"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// DTOs соответствуют серверному API.
type devotionalDTO struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Body        string `json:"body"`
	PublishedAt string `json:"published_at"`
	DayTag      string `json:"day_tag"`
}

type contentResponse struct {
	Items      []devotionalDTO `json:"items"`
	ServerTime string          `json:"server_time"`
}

type paymentDTO struct {
	ID            string `json:"id,omitempty"`
	Email         string `json:"email,omitempty"`
	TransactionID string `json:"transaction_id"`
	AmountMinor   int64  `json:"amount_minor"`
	Currency      string `json:"currency"`
	PlanID        string `json:"plan_id"`
	Status        string `json:"status"`
	CreatedAt     string `json:"created_at,omitempty"`
}

type historyResponse struct {
	Payments []paymentDTO `json:"payments"`
}

type registerRequest struct {
	DeviceID string `json:"device_id"`
	Email    string `json:"email,omitempty"`
}

// RemoteClient — типизированный доступ к удалённому хранилищу записей.
type RemoteClient struct {
	cfg    *config.Config
	tokens crepo.TokenStore
}

// NewRemoteClient создаёт клиента удалённого хранилища.
func NewRemoteClient(cfg *config.Config) *RemoteClient {
	return &RemoteClient{cfg: cfg, tokens: fsrepo.IdentityFSStore{}}
}

func (c *RemoteClient) token() string {
	t, err := c.tokens.Load()
	if err != nil {
		return ""
	}
	return t
}

// RegisterDevice регистрирует устройство на сервере и сохраняет
// выданный device-токен.
func (c *RemoteClient) RegisterDevice(ctx context.Context, deviceID, email string) error {
	endpoint := c.cfg.ServerURL + "/api/device/register"
	resp, body, err := api.PostJSON(ctx, endpoint, registerRequest{DeviceID: deviceID, Email: email}, "")
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("server returned status %d: %s", resp.StatusCode, string(body))
	}
	return api.PersistDeviceTokenFromResponse(resp)
}

// FetchContent возвращает чтения, изменённые после since (RFC3339 или ""),
// и серверное время ответа.
func (c *RemoteClient) FetchContent(ctx context.Context, since string) ([]model.Devotional, string, error) {
	endpoint := c.cfg.ServerURL + "/api/content"
	if since != "" {
		// RFC3339 с не-UTC смещением содержит "+", без экранирования он станет пробелом
		endpoint += "?since=" + url.QueryEscape(since)
	}
	resp, body, err := api.GetJSON(ctx, endpoint, c.token())
	if err != nil {
		return nil, "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("server returned status %d: %s", resp.StatusCode, string(body))
	}
	var cr contentResponse
	if err := json.Unmarshal(body, &cr); err != nil {
		return nil, "", err
	}
	items := make([]model.Devotional, 0, len(cr.Items))
	for _, d := range cr.Items {
		var published int64
		if t, err := time.Parse(time.RFC3339, d.PublishedAt); err == nil {
			published = t.Unix()
		}
		items = append(items, model.Devotional{
			ID:          d.ID,
			Title:       d.Title,
			Body:        d.Body,
			PublishedAt: published,
			DayTag:      d.DayTag,
		})
	}
	return items, cr.ServerTime, nil
}

// FetchPayments возвращает платёжные записи устройства с сервера.
// Полученные записи уже доставлены (Synced=true).
func (c *RemoteClient) FetchPayments(ctx context.Context) ([]model.PaymentRecord, error) {
	endpoint := c.cfg.ServerURL + "/api/payments"
	resp, body, err := api.GetJSON(ctx, endpoint, c.token())
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("server returned status %d: %s", resp.StatusCode, string(body))
	}
	var hr historyResponse
	if err := json.Unmarshal(body, &hr); err != nil {
		return nil, err
	}
	recs := make([]model.PaymentRecord, 0, len(hr.Payments))
	for _, p := range hr.Payments {
		var created int64
		if t, err := time.Parse(time.RFC3339, p.CreatedAt); err == nil {
			created = t.Unix()
		}
		recs = append(recs, model.PaymentRecord{
			ID:            p.ID,
			Email:         p.Email,
			TransactionID: p.TransactionID,
			AmountMinor:   p.AmountMinor,
			Currency:      p.Currency,
			PlanID:        p.PlanID,
			Status:        p.Status,
			CreatedAt:     created,
			Synced:        true,
		})
	}
	return recs, nil
}

// RecordPayment доставляет платёжную запись на сервер. Клиентский ID
// записи отправляется как есть, поэтому локальная и серверная строки
// совпадают по идентификатору; дубликаты сервер отсекает по transaction_id.
func (c *RemoteClient) RecordPayment(ctx context.Context, rec model.PaymentRecord) error {
	payload := paymentDTO{
		ID:            rec.ID,
		Email:         rec.Email,
		TransactionID: rec.TransactionID,
		AmountMinor:   rec.AmountMinor,
		Currency:      rec.Currency,
		PlanID:        rec.PlanID,
		Status:        rec.Status,
		CreatedAt:     time.Unix(rec.CreatedAt, 0).UTC().Format(time.RFC3339),
	}
	endpoint := c.cfg.ServerURL + "/api/payments/record"
	resp, body, err := api.PostJSON(ctx, endpoint, payload, c.token())
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("server returned status %d: %s", resp.StatusCode, string(body))
	}
	return nil
}
