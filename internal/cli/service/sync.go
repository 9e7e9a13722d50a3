package service

import (
	"DailyManna/internal/cli/model"
	crepo "DailyManna/internal/cli/repo"
	"context"
	"fmt"
	"time"
)

// RemoteContent — удалённый источник контента.
type RemoteContent interface {
	FetchContent(ctx context.Context, since string) ([]model.Devotional, string, error)
}

// SyncReport — итог синхронизации.
type SyncReport struct {
	Pulled int // получено чтений
	Pushed int // доставлено отложенных платежей
}

// SyncService подтягивает свежий контент в локальный кэш и доставляет
// отложенные платёжные записи. Вызывается командой sync и при выходе
// приложения на передний план.
type SyncService struct {
	content  crepo.ContentRepository
	payments crepo.PaymentRepository
	settings crepo.SettingsStore
	remote   RemoteContent
	recorder RemoteRecorder
}

// NewSyncService создаёт сервис синхронизации.
func NewSyncService(content crepo.ContentRepository, payments crepo.PaymentRepository, settings crepo.SettingsStore, remote RemoteContent, recorder RemoteRecorder) *SyncService {
	return &SyncService{content: content, payments: payments, settings: settings, remote: remote, recorder: recorder}
}

// Run выполняет один проход синхронизации. Отложенные платежи доставляются
// по принципу at-least-once: сервер дедуплицирует по transaction_id.
func (s *SyncService) Run(ctx context.Context) (SyncReport, error) {
	var report SyncReport

	since, _, err := s.settings.GetSetting(crepo.SettingLastSyncAt)
	if err != nil {
		return report, err
	}

	items, serverTime, err := s.remote.FetchContent(ctx, since)
	if err != nil {
		return report, fmt.Errorf("fetch content: %w", err)
	}
	if err := s.content.UpsertDevotionals(items); err != nil {
		return report, fmt.Errorf("cache content: %w", err)
	}
	report.Pulled = len(items)
	if serverTime == "" {
		serverTime = time.Now().UTC().Format(time.RFC3339)
	}
	if err := s.settings.SetSetting(crepo.SettingLastSyncAt, serverTime); err != nil {
		return report, err
	}

	queued, err := s.payments.ListUnsynced()
	if err != nil {
		return report, err
	}
	for _, rec := range queued {
		if err := s.recorder.RecordPayment(ctx, rec); err != nil {
			// остальная очередь уйдёт при следующем проходе
			return report, fmt.Errorf("deliver payment %s: %w", rec.ID, err)
		}
		if err := s.payments.MarkSynced(rec.ID); err != nil {
			return report, err
		}
		report.Pushed++
	}
	return report, nil
}
