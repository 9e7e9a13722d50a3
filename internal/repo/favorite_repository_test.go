package repo

import (
	"DailyManna/internal/model"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestFavoriteRepository_AddListRemove(t *testing.T) {
	db := newTestDB(t)
	r := NewFavoriteRepository(db)
	ctx := context.Background()

	dev := &model.Device{ID: uuid.NewString()}
	assert.NoError(t, NewDeviceRepository(db).Upsert(ctx, dev))

	d := &model.Devotional{
		ID:          uuid.NewString(),
		Title:       "t",
		Body:        "b",
		PublishedAt: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		DayTag:      "saturday",
	}
	_, err := NewDevotionalRepository(db).Insert(ctx, d)
	assert.NoError(t, err)

	created, err := r.Add(ctx, &model.Favorite{ID: uuid.NewString(), DeviceID: dev.ID, DevotionalID: d.ID})
	assert.NoError(t, err)
	assert.True(t, created)

	// дубликат пары устройство/чтение игнорируется
	created, err = r.Add(ctx, &model.Favorite{ID: uuid.NewString(), DeviceID: dev.ID, DevotionalID: d.ID})
	assert.NoError(t, err)
	assert.False(t, created)

	list, err := r.ListByDevice(ctx, dev.ID)
	assert.NoError(t, err)
	assert.Len(t, list, 1)

	assert.NoError(t, r.Remove(ctx, dev.ID, d.ID))
	list, err = r.ListByDevice(ctx, dev.ID)
	assert.NoError(t, err)
	assert.Len(t, list, 0)
}
