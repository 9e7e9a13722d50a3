package commands

import (
	"DailyManna/internal/cli/bootstrap"
	"DailyManna/internal/cli/gateway"
	"DailyManna/internal/cli/model"
	fsrepo "DailyManna/internal/cli/repo/fs"
	"DailyManna/internal/cli/service"
	"DailyManna/internal/config"
	"DailyManna/internal/plans"
	"context"
	"fmt"
)

type buyCmd struct{}

func (buyCmd) Name() string        { return "buy" }
func (buyCmd) Description() string { return "Купить план подписки" }
func (buyCmd) Usage() string       { return "buy <plan-id> [email]" }

func (buyCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return ErrUsage
	}

	plan, ok := plans.Find(args[0])
	if !ok {
		fmt.Fprintf(Out, "Неизвестный план: %q. Список планов: manna plans\n", args[0])
		return ErrUsage
	}

	deviceID, err := bootstrap.DeviceID()
	if err != nil {
		return err
	}

	identity := fsrepo.IdentityFSStore{}
	email := ""
	if len(args) == 2 {
		email = args[1]
		if err := identity.SaveEmail(email); err != nil {
			return fmt.Errorf("save email: %w", err)
		}
	} else if saved, err := identity.LoadEmail(); err == nil {
		email = saved
	}

	store, cleanup, err := bootstrap.OpenStore(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	remote := service.NewRemoteClient(cfg)
	resolver := service.NewEntitlementResolver(store, store, remote)
	session := service.NewPaymentSession(store, gateway.NewSandbox(), remote, resolver)

	rec, err := session.Begin(ctx, deviceID, email, plan)
	if err != nil {
		return err
	}

	switch rec.Status {
	case model.PaymentStatusSuccessful:
		fmt.Fprintf(Out, "✓ Оплата прошла: %s, транзакция %s\n", plan.Name, rec.TransactionID)
		expiry := plans.ExpiryOf(plan.ID, timeOfUnix(rec.CreatedAt))
		fmt.Fprintf(Out, "Подписка действует до %s\n", expiry.Format("2006-01-02"))
		if !rec.Synced {
			fmt.Fprintln(Out, "Сервер недоступен: запись будет доставлена при следующей синхронизации.")
		}
	case model.PaymentStatusFailed:
		fmt.Fprintln(Out, "× Оплата отклонена. Повторите покупку позже.")
	default:
		fmt.Fprintf(Out, "Статус платежа: %s\n", rec.Status)
	}
	return nil
}

func init() { RegisterCmd(buyCmd{}) }
