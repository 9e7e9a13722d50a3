package repo

import "DailyManna/internal/cli/model"

// PaymentRepository — локальные платёжные записи.
type PaymentRepository interface {
	// InsertPayment создаёт запись (обычно со статусом pending).
	InsertPayment(p model.PaymentRecord) error

	// UpsertPayment сохраняет запись, полученную с сервера: существующая
	// строка с тем же id обновляется, новой присваивается synced=1.
	UpsertPayment(p model.PaymentRecord) error

	// UpdatePaymentStatus переводит запись в терминальный статус и
	// фиксирует transaction_id, полученный от шлюза.
	UpdatePaymentStatus(id, status, transactionID string) error

	// ListPayments возвращает все записи, новые первыми.
	ListPayments() ([]model.PaymentRecord, error)

	// ListUnsynced возвращает записи, ещё не доставленные на сервер.
	ListUnsynced() ([]model.PaymentRecord, error)

	// MarkSynced помечает запись доставленной.
	MarkSynced(id string) error
}
