package model

// Статусы локальной платёжной записи.
const (
	PaymentStatusPending    = "pending"
	PaymentStatusSuccessful = "successful"
	PaymentStatusFailed     = "failed"
)

// PaymentRecord — локальная платёжная запись. Synced=false означает,
// что запись ещё не доставлена на сервер и будет отправлена при
// следующей синхронизации (at-least-once; сервер дедуплицирует по
// transaction_id).
type PaymentRecord struct {
	ID            string
	UserID        string
	Email         string
	TransactionID string
	AmountMinor   int64
	Currency      string
	PlanID        string
	Status        string
	CreatedAt     int64 // unix seconds
	Synced        bool
}
