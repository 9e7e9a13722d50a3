package commands

import (
	"DailyManna/internal/cli/bootstrap"
	"DailyManna/internal/cli/model"
	"DailyManna/internal/cli/service"
	"DailyManna/internal/config"
	"DailyManna/internal/plans"
	"context"
	"fmt"
)

type statusCmd struct{}

func (statusCmd) Name() string        { return "status" }
func (statusCmd) Description() string { return "Статус подписки и история платежей" }
func (statusCmd) Usage() string       { return "status" }

func (statusCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}

	deviceID := currentDeviceID()
	if deviceID == "" {
		fmt.Fprintln(Out, "Устройство не инициализировано. Выполните: manna init")
		return nil
	}
	fmt.Fprintf(Out, "Устройство: %s\n", deviceID)

	store, cleanup, err := bootstrap.OpenStore(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	if newResolver(cfg, store).HasPremiumAccess(ctx, deviceID) {
		fmt.Fprintln(Out, "Подписка: Premium активна")
	} else {
		fmt.Fprintln(Out, "Подписка: нет (free)")
	}

	recs, err := store.ListPayments()
	if err != nil {
		return fmt.Errorf("list payments: %w", err)
	}
	if len(recs) > 0 {
		fmt.Fprintln(Out, "\nПлатежи:")
		for _, rec := range recs {
			line := fmt.Sprintf("  %s  %-18s %-10s", timeOfUnix(rec.CreatedAt).Format("2006-01-02"), rec.PlanID, rec.Status)
			if rec.Status == model.PaymentStatusSuccessful {
				line += "  до " + plans.ExpiryOf(rec.PlanID, timeOfUnix(rec.CreatedAt)).Format("2006-01-02")
				if !rec.Synced {
					line += "  (не доставлен на сервер)"
				}
			}
			fmt.Fprintln(Out, line)
		}
	}

	scheduler := service.NewNotificationScheduler(store, noopRegistrar{})
	if enabled, hour, minute, err := scheduler.Status(); err == nil {
		if enabled {
			fmt.Fprintf(Out, "\nНапоминание: включено, ежедневно в %02d:%02d\n", hour, minute)
		} else {
			fmt.Fprintln(Out, "\nНапоминание: выключено")
		}
	}
	return nil
}

// noopRegistrar — для чтения статуса регистрация не нужна.
type noopRegistrar struct{}

func (noopRegistrar) Register(id string, hour, minute int, exact bool) error { return nil }
func (noopRegistrar) Cancel(id string)                                       {}

func init() { RegisterCmd(statusCmd{}) }
