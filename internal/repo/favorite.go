package repo

import (
	"DailyManna/internal/model"
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FavoriteRepository — контракт доступа к закладкам устройства.
type FavoriteRepository interface {
	// Add создаёт закладку. Повторное добавление той же пары
	// устройство/чтение игнорируется.
	Add(ctx context.Context, f *model.Favorite) (created bool, err error)

	// ListByDevice возвращает закладки устройства, новые первыми.
	ListByDevice(ctx context.Context, deviceID string) ([]model.Favorite, error)

	// Remove удаляет закладку устройства на указанное чтение.
	Remove(ctx context.Context, deviceID, devotionalID string) error
}

type favoriteRepo struct {
	db *gorm.DB
}

// NewFavoriteRepository создаёт реализацию репозитория для Favorite.
func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &favoriteRepo{db: db}
}

func (r *favoriteRepo) Add(ctx context.Context, f *model.Favorite) (bool, error) {
	tx := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "device_id"}, {Name: "devotional_id"}},
		DoNothing: true,
	}).Create(f)
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

func (r *favoriteRepo) ListByDevice(ctx context.Context, deviceID string) ([]model.Favorite, error) {
	var out []model.Favorite
	err := r.db.WithContext(ctx).
		Where("device_id = ?", deviceID).
		Order("created_at DESC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *favoriteRepo) Remove(ctx context.Context, deviceID, devotionalID string) error {
	return r.db.WithContext(ctx).
		Delete(&model.Favorite{}, "device_id = ? AND devotional_id = ?", deviceID, devotionalID).Error
}
