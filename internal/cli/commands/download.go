package commands

import (
	"DailyManna/internal/cli/bootstrap"
	"DailyManna/internal/cli/model"
	"DailyManna/internal/cli/service"
	"DailyManna/internal/config"
	"context"
	"fmt"
	"time"
)

type downloadCmd struct{}

func (downloadCmd) Name() string        { return "download" }
func (downloadCmd) Description() string { return "Скачать чтение для офлайн-доступа (Premium)" }
func (downloadCmd) Usage() string       { return "download <id>" }

func (downloadCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}

	store, cleanup, err := bootstrap.OpenStore(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	entitled := newResolver(cfg, store).HasPremiumAccess(ctx, currentDeviceID())
	gate := service.NewContentGate(cfg.FreeDay)
	if !gate.CanUse(service.FeatureOfflineDownload, entitled) {
		// без подписки копия не создаётся вовсе
		fmt.Fprintln(Out, "× Офлайн-скачивание доступно только по подписке Premium. Выполните: manna plans")
		return nil
	}

	item, err := store.GetDevotional(args[0])
	if err != nil {
		return fmt.Errorf("get devotional: %w", err)
	}
	if item == nil {
		fmt.Fprintln(Out, "Чтение не найдено в кэше. Выполните sync.")
		return nil
	}
	if gate.Decide(item, entitled) != service.AccessVisible {
		fmt.Fprintln(Out, "× Это чтение сейчас недоступно для скачивания.")
		return nil
	}

	err = store.UpsertDownload(model.DownloadedCopy{
		ID:           item.ID,
		Title:        item.Title,
		Body:         item.Body,
		PublishedAt:  item.PublishedAt,
		DayTag:       item.DayTag,
		DownloadedAt: time.Now().Unix(),
	})
	if err != nil {
		return fmt.Errorf("save download: %w", err)
	}
	fmt.Fprintf(Out, "✓ Скачано: %s\n", item.Title)
	return nil
}

func init() { RegisterCmd(downloadCmd{}) }
