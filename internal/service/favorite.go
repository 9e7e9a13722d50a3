package service

import (
	"DailyManna/internal/model"
	"DailyManna/internal/repo"
	"context"

	"github.com/google/uuid"
)

// FavoriteService — закладки устройства.
type FavoriteService struct {
	favorites repo.FavoriteRepository
}

func NewFavoriteService(r repo.FavoriteRepository) *FavoriteService {
	return &FavoriteService{favorites: r}
}

// Add добавляет закладку; повторное добавление — no-op (created=false).
func (s *FavoriteService) Add(ctx context.Context, deviceID, devotionalID string) (bool, error) {
	f := &model.Favorite{
		ID:           uuid.NewString(),
		DeviceID:     deviceID,
		DevotionalID: devotionalID,
	}
	return s.favorites.Add(ctx, f)
}

// List возвращает закладки устройства.
func (s *FavoriteService) List(ctx context.Context, deviceID string) ([]model.Favorite, error) {
	return s.favorites.ListByDevice(ctx, deviceID)
}

// Remove удаляет закладку.
func (s *FavoriteService) Remove(ctx context.Context, deviceID, devotionalID string) error {
	return s.favorites.Remove(ctx, deviceID, devotionalID)
}
