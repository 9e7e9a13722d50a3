package repo

// Ключи персистентных настроек клиента.
const (
	SettingNotifyEnabled   = "notify_enabled"
	SettingNotifyHour      = "notify_hour"
	SettingNotifyMinute    = "notify_minute"
	SettingLastSyncAt      = "last_sync_at"
	SettingLastRemoteCheck = "entitlement_last_remote_check"
	SettingLastKnownActive = "entitlement_last_known_active"
	SettingDefaultsApplied = "defaults_applied"
)

// SettingsStore — персистентное key-value хранилище настроек.
// Переживает перезапуск процесса.
type SettingsStore interface {
	// GetSetting возвращает значение и признак наличия ключа.
	GetSetting(key string) (string, bool, error)

	// SetSetting сохраняет значение (upsert).
	SetSetting(key, value string) error

	// DeleteSetting удаляет ключ; отсутствие ключа — не ошибка.
	DeleteSetting(key string) error
}
