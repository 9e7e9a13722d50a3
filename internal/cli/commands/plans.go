package commands

import (
	"DailyManna/internal/config"
	"DailyManna/internal/plans"
	"context"
	"fmt"
)

type plansCmd struct{}

func (plansCmd) Name() string        { return "plans" }
func (plansCmd) Description() string { return "Доступные планы подписки" }
func (plansCmd) Usage() string       { return "plans" }

func (plansCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	for _, p := range plans.All() {
		// сумма хранится в минимальных единицах
		fmt.Fprintf(Out, "%-18q %s — %d.%02d %s\n", p.ID, p.Name, p.AmountMinor/100, p.AmountMinor%100, p.Currency)
	}
	fmt.Fprintln(Out, "\nПокупка: manna buy <plan-id> [email]")
	return nil
}

func init() { RegisterCmd(plansCmd{}) }
