package repo

import "DailyManna/internal/cli/model"

// ContentRepository — локальный кэш чтений и офлайн-копии.
type ContentRepository interface {
	// UpsertDevotionals сохраняет/обновляет проекции чтений (replace-on-conflict).
	UpsertDevotionals(items []model.Devotional) error

	// ListDevotionals возвращает кэшированные чтения, новые первыми.
	ListDevotionals() ([]model.Devotional, error)

	// GetDevotional возвращает чтение по идентификатору.
	GetDevotional(id string) (*model.Devotional, error)

	// UpsertDownload сохраняет офлайн-копию. Не больше одной копии на id.
	UpsertDownload(c model.DownloadedCopy) error

	// ListDownloads возвращает офлайн-копии, свежескачанные первыми.
	ListDownloads() ([]model.DownloadedCopy, error)

	// DeleteDownload удаляет офлайн-копию (явное действие пользователя).
	DeleteDownload(id string) error
}
