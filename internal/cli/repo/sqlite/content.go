package sqlite

import (
	"DailyManna/internal/cli/model"
	"database/sql"
	"errors"
)

// UpsertDevotionals сохраняет проекции чтений. Существующие строки
// заменяются целиком — кэш только отражает удалённое хранилище.
func (s *Store) UpsertDevotionals(items []model.Devotional) error {
	if len(items) == 0 {
		return nil
	}
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()
	stmt, err := tx.Prepare(`INSERT INTO devotionals(id, title, body, published_at, day_tag)
        VALUES(?, ?, ?, ?, ?)
        ON CONFLICT(id) DO UPDATE SET
            title = excluded.title,
            body = excluded.body,
            published_at = excluded.published_at,
            day_tag = excluded.day_tag`)
	if err != nil {
		return err
	}
	defer stmt.Close()
	for _, it := range items {
		if _, err := stmt.Exec(it.ID, it.Title, it.Body, it.PublishedAt, it.DayTag); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// ListDevotionals возвращает кэшированные чтения, новые первыми.
func (s *Store) ListDevotionals() ([]model.Devotional, error) {
	rows, err := s.db.Query(`SELECT id, title, body, published_at, day_tag FROM devotionals ORDER BY published_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var res []model.Devotional
	for rows.Next() {
		var d model.Devotional
		if err := rows.Scan(&d.ID, &d.Title, &d.Body, &d.PublishedAt, &d.DayTag); err != nil {
			return nil, err
		}
		res = append(res, d)
	}
	return res, rows.Err()
}

// GetDevotional возвращает чтение по идентификатору.
// Отсутствие записи — не ошибка: (nil, nil).
func (s *Store) GetDevotional(id string) (*model.Devotional, error) {
	var d model.Devotional
	err := s.db.QueryRow(`SELECT id, title, body, published_at, day_tag FROM devotionals WHERE id = ?`, id).
		Scan(&d.ID, &d.Title, &d.Body, &d.PublishedAt, &d.DayTag)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &d, nil
}

// UpsertDownload сохраняет офлайн-копию. Повторное скачивание того же
// чтения заменяет строку — не больше одной копии на идентификатор.
func (s *Store) UpsertDownload(c model.DownloadedCopy) error {
	_, err := s.db.Exec(`INSERT INTO downloads(id, title, body, published_at, day_tag, downloaded_at)
        VALUES(?, ?, ?, ?, ?, ?)
        ON CONFLICT(id) DO UPDATE SET
            title = excluded.title,
            body = excluded.body,
            published_at = excluded.published_at,
            day_tag = excluded.day_tag,
            downloaded_at = excluded.downloaded_at`,
		c.ID, c.Title, c.Body, c.PublishedAt, c.DayTag, c.DownloadedAt,
	)
	return err
}

// ListDownloads возвращает офлайн-копии, свежескачанные первыми.
func (s *Store) ListDownloads() ([]model.DownloadedCopy, error) {
	rows, err := s.db.Query(`SELECT id, title, body, published_at, day_tag, downloaded_at FROM downloads ORDER BY downloaded_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var res []model.DownloadedCopy
	for rows.Next() {
		var c model.DownloadedCopy
		if err := rows.Scan(&c.ID, &c.Title, &c.Body, &c.PublishedAt, &c.DayTag, &c.DownloadedAt); err != nil {
			return nil, err
		}
		res = append(res, c)
	}
	return res, rows.Err()
}

// DeleteDownload удаляет офлайн-копию.
func (s *Store) DeleteDownload(id string) error {
	_, err := s.db.Exec(`DELETE FROM downloads WHERE id = ?`, id)
	return err
}
