package sqlite

import (
	"DailyManna/internal/cli/repo"
	"database/sql"
	"errors"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// Store — локальное хранилище записей (SQLite): кэш чтений, офлайн-копии,
// платежи и настройки. Доступ последовательный, из одного процесса.
type Store struct {
	db *sql.DB
}

var (
	_ repo.ContentRepository = (*Store)(nil)
	_ repo.PaymentRepository = (*Store)(nil)
	_ repo.SettingsStore     = (*Store)(nil)
)

// Open открывает (и создаёт при необходимости) файл БД по указанному пути.
func Open(path string) (*Store, error) {
	if path == "" {
		return nil, errors.New("empty client db path")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, err
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

// Close закрывает соединение с БД.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Migrate гарантирует наличие необходимых таблиц/индексов.
func (s *Store) Migrate() error {
	_, err := s.db.Exec(initialDDL())
	return err
}
