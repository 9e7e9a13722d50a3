package gateway

import (
	"context"
	"errors"
	"os"

	"github.com/google/uuid"
)

// Sandbox — тестовый шлюз вместо реального SDK. Успешно «списывает»
// любую сумму; отказ можно форсировать флагом DeclineAll или переменной
// окружения GATEWAY_SANDBOX_DECLINE.
type Sandbox struct {
	DeclineAll bool
}

var _ Gateway = (*Sandbox)(nil)

// NewSandbox создаёт sandbox-шлюз с настройками из окружения.
func NewSandbox() *Sandbox {
	return &Sandbox{DeclineAll: os.Getenv("GATEWAY_SANDBOX_DECLINE") != ""}
}

// Charge имитирует списание и возвращает идентификатор транзакции.
func (s *Sandbox) Charge(ctx context.Context, req ChargeRequest) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	if req.AmountMinor <= 0 {
		return Result{}, errors.New("sandbox: non-positive amount")
	}
	txnID := "sandbox-" + uuid.NewString()
	if s.DeclineAll {
		return Result{TransactionID: txnID, Succeeded: false, Message: "declined by sandbox"}, nil
	}
	return Result{TransactionID: txnID, Succeeded: true, Message: "approved"}, nil
}
