package commands

import (
	"DailyManna/internal/cli/bootstrap"
	"DailyManna/internal/cli/service"
	"DailyManna/internal/config"
	"context"
	"fmt"
)

type syncCmd struct{}

func (syncCmd) Name() string        { return "sync" }
func (syncCmd) Description() string { return "Синхронизировать кэш и отложенные платежи" }
func (syncCmd) Usage() string       { return "sync" }

func (syncCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}

	store, cleanup, err := bootstrap.OpenStore(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	remote := service.NewRemoteClient(cfg)
	report, err := service.NewSyncService(store, store, store, remote, remote).Run(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(Out, "✓ Синхронизировано: получено %d чтений, доставлено %d платежей\n", report.Pulled, report.Pushed)
	return nil
}

func init() { RegisterCmd(syncCmd{}) }
