package bootstrap

import (
	"fmt"
	"strconv"

	crepo "DailyManna/internal/cli/repo"
	fsrepo "DailyManna/internal/cli/repo/fs"
	reposqlite "DailyManna/internal/cli/repo/sqlite"
	"DailyManna/internal/config"
)

// Значения настроек по умолчанию, применяемые один раз при первом запуске.
const (
	defaultNotifyHour   = 7
	defaultNotifyMinute = 0
)

// OpenStore открывает локальное хранилище, выполняет миграции и один раз
// применяет настройки по умолчанию. Возвращает (store, cleanup, error);
// cleanup необходимо вызвать после окончания работы с хранилищем.
func OpenStore(cfg *config.Config) (*reposqlite.Store, func() error, error) {
	s, err := reposqlite.Open(cfg.ClientDBPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open client db: %w", err)
	}
	if err := s.Migrate(); err != nil {
		_ = s.Close()
		return nil, nil, fmt.Errorf("migrate client db: %w", err)
	}
	if err := applyDefaults(s); err != nil {
		_ = s.Close()
		return nil, nil, fmt.Errorf("apply default settings: %w", err)
	}
	cleanup := func() error { return s.Close() }
	return s, cleanup, nil
}

// applyDefaults записывает настройки по умолчанию ровно один раз.
func applyDefaults(s *reposqlite.Store) error {
	_, ok, err := s.GetSetting(crepo.SettingDefaultsApplied)
	if err != nil || ok {
		return err
	}
	if err := s.SetSetting(crepo.SettingNotifyEnabled, "false"); err != nil {
		return err
	}
	if err := s.SetSetting(crepo.SettingNotifyHour, strconv.Itoa(defaultNotifyHour)); err != nil {
		return err
	}
	if err := s.SetSetting(crepo.SettingNotifyMinute, strconv.Itoa(defaultNotifyMinute)); err != nil {
		return err
	}
	return s.SetSetting(crepo.SettingDefaultsApplied, "true")
}

// DeviceID возвращает локальный идентификатор устройства.
func DeviceID() (string, error) {
	id, err := (fsrepo.IdentityFSStore{}).LoadDeviceID()
	if err != nil {
		return "", fmt.Errorf("нет идентичности устройства: выполните init: %w", err)
	}
	return id, nil
}
