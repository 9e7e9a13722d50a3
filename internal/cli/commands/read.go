package commands

import (
	"DailyManna/internal/cli/bootstrap"
	"DailyManna/internal/config"
	"context"
	"fmt"
)

type readCmd struct{}

func (readCmd) Name() string        { return "read" }
func (readCmd) Description() string { return "Прочитать чтение по идентификатору" }
func (readCmd) Usage() string       { return "read <id>" }

func (readCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}

	store, cleanup, err := bootstrap.OpenStore(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	item, err := store.GetDevotional(args[0])
	if err != nil {
		return fmt.Errorf("get devotional: %w", err)
	}
	if item == nil {
		fmt.Fprintln(Out, "Чтение не найдено в кэше. Выполните sync.")
		return nil
	}

	entitled := newResolver(cfg, store).HasPremiumAccess(ctx, currentDeviceID())
	printDevotional(cfg, item, entitled)
	return nil
}

func init() { RegisterCmd(readCmd{}) }
