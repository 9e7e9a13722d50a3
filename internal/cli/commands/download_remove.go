package commands

import (
	"DailyManna/internal/cli/bootstrap"
	"DailyManna/internal/config"
	"context"
	"fmt"
)

type downloadRemoveCmd struct{}

func (downloadRemoveCmd) Name() string        { return "download-remove" }
func (downloadRemoveCmd) Description() string { return "Удалить офлайн-копию" }
func (downloadRemoveCmd) Usage() string       { return "download-remove <id>" }

func (downloadRemoveCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}

	store, cleanup, err := bootstrap.OpenStore(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	if err := store.DeleteDownload(args[0]); err != nil {
		return fmt.Errorf("delete download: %w", err)
	}
	fmt.Fprintln(Out, "✓ Офлайн-копия удалена")
	return nil
}

func init() { RegisterCmd(downloadRemoveCmd{}) }
