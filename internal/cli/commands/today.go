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

type todayCmd struct{}

func (todayCmd) Name() string        { return "today" }
func (todayCmd) Description() string { return "Показать чтение на сегодня" }
func (todayCmd) Usage() string       { return "today" }

func (todayCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
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

	now := time.Now().UTC()
	var today *model.Devotional
	for i := range items {
		p := time.Unix(items[i].PublishedAt, 0).UTC()
		if p.Year() == now.Year() && p.YearDay() == now.YearDay() {
			today = &items[i]
			break
		}
	}
	if today == nil {
		fmt.Fprintln(Out, "На сегодня чтений нет. Выполните sync, чтобы обновить кэш.")
		return nil
	}

	entitled := newResolver(cfg, store).HasPremiumAccess(ctx, currentDeviceID())
	printDevotional(cfg, today, entitled)
	return nil
}

// printDevotional выводит чтение согласно решению контент-гейта.
func printDevotional(cfg *config.Config, item *model.Devotional, entitled bool) {
	gate := service.NewContentGate(cfg.FreeDay)
	switch gate.Decide(item, entitled) {
	case service.AccessVisible:
		fmt.Fprintf(Out, "%s (%s)\n\n%s\n", item.Title, time.Unix(item.PublishedAt, 0).UTC().Format("2006-01-02"), item.Body)
	case service.AccessLocked:
		fmt.Fprintf(Out, "%s (%s)\n\n🔒 Доступно по подписке Premium. Выполните: manna plans\n", item.Title, time.Unix(item.PublishedAt, 0).UTC().Format("2006-01-02"))
	default:
		fmt.Fprintln(Out, "— чтение недоступно —")
	}
}

func init() { RegisterCmd(todayCmd{}) }
