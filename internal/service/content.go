package service

import (
	"DailyManna/internal/model"
	"DailyManna/internal/repo"
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ContentService инкапсулирует бизнес-логику работы с чтениями.
type ContentService struct {
	repo repo.DevotionalRepository
}

func NewContentService(r repo.DevotionalRepository) *ContentService {
	return &ContentService{repo: r}
}

// ErrInvalidContent возвращается при попытке вставить чтение без обязательных полей.
var ErrInvalidContent = errors.New("devotional requires title, body and published_at")

// ListSince возвращает чтения, изменённые после since (нулевое — все).
func (s *ContentService) ListSince(ctx context.Context, since time.Time) ([]model.Devotional, error) {
	return s.repo.ListUpdatedSince(ctx, since)
}

// Get возвращает одно чтение по идентификатору.
func (s *ContentService) Get(ctx context.Context, id string) (*model.Devotional, error) {
	return s.repo.GetByID(ctx, id)
}

// Insert выполняет административную вставку чтения. Тег дня недели
// выводится из даты публикации; переданный вручную DayTag игнорируется.
// Повторная вставка с тем же ID не изменяет существующую запись.
func (s *ContentService) Insert(ctx context.Context, d *model.Devotional) (bool, error) {
	if d.Title == "" || d.Body == "" || d.PublishedAt.IsZero() {
		return false, ErrInvalidContent
	}
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	d.DayTag = DayTagOf(d.PublishedAt)
	return s.repo.Insert(ctx, d)
}

// DayTagOf возвращает тег дня недели для даты публикации ("sunday".."saturday").
func DayTagOf(t time.Time) string {
	return strings.ToLower(t.UTC().Weekday().String())
}
