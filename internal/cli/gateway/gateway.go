package gateway

import "context"

// ChargeRequest — параметры списания: сумма в минимальных единицах,
// валюта и метаданные плана.
type ChargeRequest struct {
	UserID      string
	Email       string
	PlanID      string
	AmountMinor int64
	Currency    string
}

// Result — ответ шлюза: идентификатор транзакции и исход.
type Result struct {
	TransactionID string
	Succeeded     bool
	Message       string
}

// Gateway — граница внешнего платёжного шлюза. Ядро потребляет одну
// способность: «списать сумму за план и сообщить исход с идентификатором
// транзакции». Вся логика транзакций, PCI и антифрод живут за этой границей.
type Gateway interface {
	Charge(ctx context.Context, req ChargeRequest) (Result, error)
}
