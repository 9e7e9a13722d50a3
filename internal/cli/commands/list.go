package commands

import (
	"DailyManna/internal/cli/bootstrap"
	"DailyManna/internal/cli/service"
	"DailyManna/internal/config"
	"context"
	"fmt"
	"time"
)

type listCmd struct{}

func (listCmd) Name() string        { return "list" }
func (listCmd) Description() string { return "Список чтений в локальном кэше" }
func (listCmd) Usage() string       { return "list" }

func (listCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}

	store, cleanup, err := bootstrap.OpenStore(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	items, err := store.ListDevotionals()
	if err != nil {
		return fmt.Errorf("list cached content: %w", err)
	}
	if len(items) == 0 {
		fmt.Fprintln(Out, "Кэш пуст. Выполните sync.")
		return nil
	}

	entitled := newResolver(cfg, store).HasPremiumAccess(ctx, currentDeviceID())
	gate := service.NewContentGate(cfg.FreeDay)

	for i := range items {
		item := &items[i]
		marker := ""
		switch gate.Decide(item, entitled) {
		case service.AccessLocked:
			marker = " 🔒"
		case service.AccessHidden:
			continue
		}
		date := time.Unix(item.PublishedAt, 0).UTC().Format("2006-01-02")
		fmt.Fprintf(Out, "%s  %s  %s%s\n", item.ID, date, item.Title, marker)
	}
	return nil
}

func init() { RegisterCmd(listCmd{}) }
