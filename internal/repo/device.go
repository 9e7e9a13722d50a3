package repo

import (
	"DailyManna/internal/model"
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DeviceRepository — контракт доступа к устройствам.
type DeviceRepository interface {
	// Upsert регистрирует устройство или обновляет его email.
	Upsert(ctx context.Context, d *model.Device) error

	// GetByID возвращает устройство по идентификатору.
	GetByID(ctx context.Context, id string) (*model.Device, error)

	// Delete удаляет устройство. Платежи и закладки удаляются каскадно
	// (запрос на удаление аккаунта).
	Delete(ctx context.Context, id string) error
}

type deviceRepo struct {
	db *gorm.DB
}

// NewDeviceRepository создаёт реализацию репозитория для Device.
func NewDeviceRepository(db *gorm.DB) DeviceRepository {
	return &deviceRepo{db: db}
}

func (r *deviceRepo) Upsert(ctx context.Context, d *model.Device) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"email", "updated_at"}),
	}).Create(d).Error
}

func (r *deviceRepo) GetByID(ctx context.Context, id string) (*model.Device, error) {
	var d model.Device
	if err := r.db.WithContext(ctx).First(&d, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *deviceRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&model.Device{}, "id = ?", id).Error
}
