package sqlite

import (
	"DailyManna/internal/cli/model"
	"errors"
	"fmt"
)

// InsertPayment создаёт локальную платёжную запись.
func (s *Store) InsertPayment(p model.PaymentRecord) error {
	if p.ID == "" {
		return errors.New("payment id is required")
	}
	synced := 0
	if p.Synced {
		synced = 1
	}
	_, err := s.db.Exec(`INSERT INTO payments(
        id, user_id, email, transaction_id, amount_minor, currency, plan_id, status, created_at, synced
    ) VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.UserID, p.Email, p.TransactionID, p.AmountMinor, p.Currency, p.PlanID, p.Status, p.CreatedAt, synced,
	)
	return err
}

// UpsertPayment сохраняет запись, пришедшую из удалённого хранилища.
// Идентификаторы совпадают с локальными (клиент отправляет свой id),
// поэтому конфликт по id означает ту же логическую запись.
func (s *Store) UpsertPayment(p model.PaymentRecord) error {
	if p.ID == "" {
		return errors.New("payment id is required")
	}
	synced := 0
	if p.Synced {
		synced = 1
	}
	_, err := s.db.Exec(`INSERT INTO payments(
        id, user_id, email, transaction_id, amount_minor, currency, plan_id, status, created_at, synced
    ) VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
    ON CONFLICT(id) DO UPDATE SET
        status = excluded.status,
        transaction_id = excluded.transaction_id,
        synced = excluded.synced`,
		p.ID, p.UserID, p.Email, p.TransactionID, p.AmountMinor, p.Currency, p.PlanID, p.Status, p.CreatedAt, synced,
	)
	return err
}

// UpdatePaymentStatus переводит запись в терминальный статус и фиксирует
// идентификатор транзакции, выданный шлюзом.
func (s *Store) UpdatePaymentStatus(id, status, transactionID string) error {
	res, err := s.db.Exec(`UPDATE payments SET status = ?, transaction_id = ? WHERE id = ?`,
		status, transactionID, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("payment %q not found", id)
	}
	return nil
}

func (s *Store) listPayments(where string, args ...any) ([]model.PaymentRecord, error) {
	q := `SELECT id, user_id, email, transaction_id, amount_minor, currency, plan_id, status, created_at, synced FROM payments ` +
		where + ` ORDER BY created_at DESC`
	rows, err := s.db.Query(q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var res []model.PaymentRecord
	for rows.Next() {
		var p model.PaymentRecord
		var syncedInt int
		if err := rows.Scan(&p.ID, &p.UserID, &p.Email, &p.TransactionID, &p.AmountMinor, &p.Currency, &p.PlanID, &p.Status, &p.CreatedAt, &syncedInt); err != nil {
			return nil, err
		}
		p.Synced = syncedInt != 0
		res = append(res, p)
	}
	return res, rows.Err()
}

// ListPayments возвращает все локальные платёжные записи, новые первыми.
func (s *Store) ListPayments() ([]model.PaymentRecord, error) {
	return s.listPayments("")
}

// ListUnsynced возвращает успешные записи, ещё не доставленные на сервер.
func (s *Store) ListUnsynced() ([]model.PaymentRecord, error) {
	return s.listPayments(`WHERE synced = 0 AND status = ?`, model.PaymentStatusSuccessful)
}

// MarkSynced помечает запись доставленной на сервер.
func (s *Store) MarkSynced(id string) error {
	_, err := s.db.Exec(`UPDATE payments SET synced = 1 WHERE id = ?`, id)
	return err
}
