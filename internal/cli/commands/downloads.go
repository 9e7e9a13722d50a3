package commands

import (
	"DailyManna/internal/cli/bootstrap"
	"DailyManna/internal/config"
	"context"
	"fmt"
	"time"
)

type downloadsCmd struct{}

func (downloadsCmd) Name() string        { return "downloads" }
func (downloadsCmd) Description() string { return "Список офлайн-копий" }
func (downloadsCmd) Usage() string       { return "downloads" }

func (downloadsCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}

	store, cleanup, err := bootstrap.OpenStore(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	copies, err := store.ListDownloads()
	if err != nil {
		return fmt.Errorf("list downloads: %w", err)
	}
	if len(copies) == 0 {
		fmt.Fprintln(Out, "Офлайн-копий нет.")
		return nil
	}
	for _, c := range copies {
		when := time.Unix(c.DownloadedAt, 0).UTC().Format("2006-01-02 15:04")
		fmt.Fprintf(Out, "%s  %s  (скачано %s)\n", c.ID, c.Title, when)
	}
	return nil
}

func init() { RegisterCmd(downloadsCmd{}) }
