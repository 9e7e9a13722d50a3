package commands

import (
	"DailyManna/internal/cli/bootstrap"
	"DailyManna/internal/cli/service"
	"DailyManna/internal/config"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
)

type notifyCmd struct{}

func (notifyCmd) Name() string        { return "notify" }
func (notifyCmd) Description() string { return "Ежедневное напоминание о чтении" }
func (notifyCmd) Usage() string       { return "notify on <HH:MM> | off | status | run" }

func (notifyCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) == 0 {
		return ErrUsage
	}

	store, cleanup, err := bootstrap.OpenStore(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	// NOTIFY_NO_EXACT имитирует отсутствие разрешения на точное планирование:
	// планировщик в этом случае деградирует до неточного режима
	registrar := service.NewTimerRegistrar(os.Getenv("NOTIFY_NO_EXACT") == "", func(id string) {
		fmt.Fprintln(Out, "🔔 Время ежедневного чтения! Откройте: manna today")
	})
	scheduler := service.NewNotificationScheduler(store, registrar)

	switch args[0] {
	case "on":
		if len(args) != 2 {
			return ErrUsage
		}
		hour, minute, err := parseClock(args[1])
		if err != nil {
			fmt.Fprintf(Out, "Неверное время %q, ожидается HH:MM\n", args[1])
			return ErrUsage
		}
		if err := scheduler.Enable(hour, minute); err != nil {
			return err
		}
		fmt.Fprintf(Out, "✓ Напоминание включено: ежедневно в %02d:%02d\n", hour, minute)
		return nil

	case "off":
		if err := scheduler.Disable(); err != nil {
			return err
		}
		fmt.Fprintln(Out, "✓ Напоминание выключено")
		return nil

	case "status":
		enabled, hour, minute, err := scheduler.Status()
		if err != nil {
			return err
		}
		if enabled {
			fmt.Fprintf(Out, "Включено: ежедневно в %02d:%02d\n", hour, minute)
		} else {
			fmt.Fprintln(Out, "Выключено")
		}
		return nil

	case "run":
		// восстанавливаем регистрацию и держим процесс до Ctrl+C;
		// в мобильной обёртке этим занимается платформа
		if err := scheduler.ApplyStored(); err != nil {
			return err
		}
		enabled, hour, minute, _ := scheduler.Status()
		if !enabled {
			fmt.Fprintln(Out, "Напоминание выключено, нечего запускать.")
			return nil
		}
		fmt.Fprintf(Out, "Ожидание напоминаний (ежедневно в %02d:%02d), Ctrl+C для выхода…\n", hour, minute)
		<-ctx.Done()
		registrar.Cancel(service.ReminderID)
		return nil

	default:
		return ErrUsage
	}
}

// parseClock разбирает строку HH:MM.
func parseClock(s string) (int, int, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("want HH:MM, got %q", s)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, err
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, err
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("out of range: %q", s)
	}
	return hour, minute, nil
}

func init() { RegisterCmd(notifyCmd{}) }
