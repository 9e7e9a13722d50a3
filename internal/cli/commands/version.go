package commands

import (
	"DailyManna/internal/config"
	"context"
	"fmt"
)

// Заполняются из main при старте (ldflags).
var (
	Version   = "dev"
	BuildDate = "unknown"
)

type versionCmd struct{}

func (versionCmd) Name() string        { return "version" }
func (versionCmd) Description() string { return "Показать версию приложения" }
func (versionCmd) Usage() string       { return "version" }

func (versionCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	fmt.Fprintf(Out, "DailyManna CLI\nVersion: %s\nBuild date: %s\n", Version, BuildDate)
	return nil
}

func init() { RegisterCmd(versionCmd{}) }
