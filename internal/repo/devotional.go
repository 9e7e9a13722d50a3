package repo

import (
	"DailyManna/internal/model"
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DevotionalRepository — контракт доступа к чтениям для слоя сервиса.
type DevotionalRepository interface {
	// ListUpdatedSince возвращает чтения, изменённые после указанного времени.
	// Нулевое since означает «все».
	ListUpdatedSince(ctx context.Context, since time.Time) ([]model.Devotional, error)

	// GetByID возвращает чтение по идентификатору.
	GetByID(ctx context.Context, id string) (*model.Devotional, error)

	// Insert создаёт чтение (административная вставка). Повторная вставка
	// с тем же ID игнорируется — контент неизменяем.
	Insert(ctx context.Context, d *model.Devotional) (created bool, err error)
}

type devotionalRepo struct {
	db *gorm.DB
}

// NewDevotionalRepository создаёт реализацию репозитория для Devotional.
func NewDevotionalRepository(db *gorm.DB) DevotionalRepository {
	return &devotionalRepo{db: db}
}

func (r *devotionalRepo) ListUpdatedSince(ctx context.Context, since time.Time) ([]model.Devotional, error) {
	var out []model.Devotional
	q := r.db.WithContext(ctx).Order("published_at ASC")
	if !since.IsZero() {
		q = q.Where("updated_at > ?", since)
	}
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *devotionalRepo) GetByID(ctx context.Context, id string) (*model.Devotional, error) {
	var d model.Devotional
	if err := r.db.WithContext(ctx).First(&d, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *devotionalRepo) Insert(ctx context.Context, d *model.Devotional) (bool, error) {
	tx := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoNothing: true,
	}).Create(d)
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}
