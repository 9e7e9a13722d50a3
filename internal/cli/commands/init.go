package commands

import (
	fsrepo "DailyManna/internal/cli/repo/fs"
	"DailyManna/internal/cli/service"
	"DailyManna/internal/config"
	"context"
	"fmt"

	"github.com/google/uuid"
)

type initCmd struct{}

func (initCmd) Name() string { return "init" }
func (initCmd) Description() string {
	return "Создать идентичность устройства и зарегистрировать её на сервере"
}
func (initCmd) Usage() string { return "init [email]" }

func (initCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) > 1 {
		return ErrUsage
	}

	store := fsrepo.IdentityFSStore{}
	deviceID, err := store.LoadDeviceID()
	if err != nil {
		// идентичность создаётся локально; сервер её только принимает
		deviceID = uuid.NewString()
		if err := store.SaveDeviceID(deviceID); err != nil {
			return fmt.Errorf("save device id: %w", err)
		}
		fmt.Fprintf(Out, "Создана идентичность устройства: %s\n", deviceID)
	} else {
		fmt.Fprintf(Out, "Идентичность устройства уже существует: %s\n", deviceID)
	}

	email := ""
	if len(args) == 1 {
		email = args[0]
		if err := store.SaveEmail(email); err != nil {
			return fmt.Errorf("save email: %w", err)
		}
	} else if saved, err := store.LoadEmail(); err == nil {
		email = saved
	}

	remote := service.NewRemoteClient(cfg)
	if err := remote.RegisterDevice(ctx, deviceID, email); err != nil {
		// регистрация не обязательна для локальной работы
		fmt.Fprintf(Out, "× Сервер недоступен, регистрация отложена: %v\n", err)
		return nil
	}
	fmt.Fprintln(Out, "✓ Устройство зарегистрировано на сервере")
	return nil
}

func init() { RegisterCmd(initCmd{}) }
