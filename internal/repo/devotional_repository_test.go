package repo

import (
	"DailyManna/internal/model"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestDevotionalRepository_InsertAndGet(t *testing.T) {
	db := newTestDB(t)
	r := NewDevotionalRepository(db)
	ctx := context.Background()

	d := &model.Devotional{
		ID:          uuid.NewString(),
		Title:       "Хлеб насущный",
		Body:        "Текст чтения",
		PublishedAt: time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC),
		DayTag:      "sunday",
	}
	created, err := r.Insert(ctx, d)
	assert.NoError(t, err)
	assert.True(t, created)

	// контент неизменяем: повторная вставка того же ID игнорируется
	created, err = r.Insert(ctx, &model.Devotional{ID: d.ID, Title: "other", Body: "other", PublishedAt: d.PublishedAt, DayTag: "monday"})
	assert.NoError(t, err)
	assert.False(t, created)

	got, err := r.GetByID(ctx, d.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Хлеб насущный", got.Title)

	_, err = r.GetByID(ctx, uuid.NewString())
	assert.Equal(t, gorm.ErrRecordNotFound, err)
}

func TestDevotionalRepository_ListUpdatedSince(t *testing.T) {
	db := newTestDB(t)
	r := NewDevotionalRepository(db)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := r.Insert(ctx, &model.Devotional{
			ID:          uuid.NewString(),
			Title:       "t",
			Body:        "b",
			PublishedAt: time.Date(2025, 3, 1+i, 0, 0, 0, 0, time.UTC),
			DayTag:      "monday",
		})
		assert.NoError(t, err)
	}

	all, err := r.ListUpdatedSince(ctx, time.Time{})
	assert.NoError(t, err)
	assert.Len(t, all, 3)
	// порядок по дате публикации, старые первыми
	assert.True(t, all[0].PublishedAt.Before(all[2].PublishedAt))

	none, err := r.ListUpdatedSince(ctx, time.Now().Add(time.Hour))
	assert.NoError(t, err)
	assert.Len(t, none, 0)
}
