package repo

import (
	"DailyManna/internal/model"
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PaymentRepository — контракт доступа к платежам.
type PaymentRepository interface {
	// RecordPayment сохраняет платёж. Конфликт по transaction_id игнорируется,
	// поэтому повторная доставка той же записи идемпотентна.
	// Возвращает created=true, если строка была создана в этой операции.
	RecordPayment(ctx context.Context, p *model.PaymentRecord) (created bool, err error)

	// ListByDevice возвращает платежи устройства, новые первыми.
	ListByDevice(ctx context.Context, deviceID string) ([]model.PaymentRecord, error)

	// ListSuccessfulByDevice возвращает только успешные платежи устройства.
	ListSuccessfulByDevice(ctx context.Context, deviceID string) ([]model.PaymentRecord, error)
}

type paymentRepo struct {
	db *gorm.DB
}

// NewPaymentRepository создаёт реализацию репозитория для PaymentRecord.
func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &paymentRepo{db: db}
}

func (r *paymentRepo) RecordPayment(ctx context.Context, p *model.PaymentRecord) (bool, error) {
	tx := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "transaction_id"}},
		DoNothing: true,
	}).Create(p)
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

func (r *paymentRepo) ListByDevice(ctx context.Context, deviceID string) ([]model.PaymentRecord, error) {
	var out []model.PaymentRecord
	err := r.db.WithContext(ctx).
		Where("device_id = ?", deviceID).
		Order("created_at DESC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *paymentRepo) ListSuccessfulByDevice(ctx context.Context, deviceID string) ([]model.PaymentRecord, error) {
	var out []model.PaymentRecord
	err := r.db.WithContext(ctx).
		Where("device_id = ? AND status = ?", deviceID, model.PaymentStatusSuccessful).
		Order("created_at DESC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}
