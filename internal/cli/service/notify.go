package service

import (
	crepo "DailyManna/internal/cli/repo"
	"errors"
	"fmt"
	"strconv"
)

// ReminderID — фиксированный идентификатор единственного ежедневного
// напоминания. Повторное включение отменяет и регистрирует заново,
// дубликаты не накапливаются.
const ReminderID = "daily-reading-reminder"

// ErrExactUnavailable возвращается регистратором, когда точное
// планирование недоступно (нет разрешения платформы).
var ErrExactUnavailable = errors.New("exact scheduling unavailable")

// Registrar — граница платформенного API уведомлений.
type Registrar interface {
	// Register ставит ежедневное напоминание на hour:minute.
	// При exact=true и отсутствии разрешения возвращает ErrExactUnavailable.
	Register(id string, hour, minute int, exact bool) error

	// Cancel снимает напоминание; отсутствие регистрации — не ошибка.
	Cancel(id string)
}

// NotificationScheduler управляет единственным ежедневным напоминанием.
// Желаемое время хранится в настройках и восстанавливается при старте.
type NotificationScheduler struct {
	settings crepo.SettingsStore
	reg      Registrar
}

// NewNotificationScheduler создаёт планировщик.
func NewNotificationScheduler(settings crepo.SettingsStore, reg Registrar) *NotificationScheduler {
	return &NotificationScheduler{settings: settings, reg: reg}
}

// Enable включает напоминание на hour:minute. Прежняя регистрация
// снимается; при недоступности точного планирования деградируем до
// неточного, а не падаем.
func (n *NotificationScheduler) Enable(hour, minute int) error {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return fmt.Errorf("invalid time %02d:%02d", hour, minute)
	}

	n.reg.Cancel(ReminderID)
	err := n.reg.Register(ReminderID, hour, minute, true)
	if errors.Is(err, ErrExactUnavailable) {
		err = n.reg.Register(ReminderID, hour, minute, false)
	}
	if err != nil {
		return err
	}

	if err := n.settings.SetSetting(crepo.SettingNotifyEnabled, "true"); err != nil {
		return err
	}
	if err := n.settings.SetSetting(crepo.SettingNotifyHour, strconv.Itoa(hour)); err != nil {
		return err
	}
	return n.settings.SetSetting(crepo.SettingNotifyMinute, strconv.Itoa(minute))
}

// Disable снимает напоминание и выключает настройку.
func (n *NotificationScheduler) Disable() error {
	n.reg.Cancel(ReminderID)
	return n.settings.SetSetting(crepo.SettingNotifyEnabled, "false")
}

// Reschedule меняет время напоминания.
func (n *NotificationScheduler) Reschedule(hour, minute int) error {
	return n.Enable(hour, minute)
}

// Status возвращает (enabled, hour, minute) из настроек.
func (n *NotificationScheduler) Status() (bool, int, int, error) {
	raw, ok, err := n.settings.GetSetting(crepo.SettingNotifyEnabled)
	if err != nil {
		return false, 0, 0, err
	}
	if !ok || raw != "true" {
		return false, 0, 0, nil
	}
	hour, minute := 0, 0
	if raw, ok, err := n.settings.GetSetting(crepo.SettingNotifyHour); err == nil && ok {
		hour, _ = strconv.Atoi(raw)
	}
	if raw, ok, err := n.settings.GetSetting(crepo.SettingNotifyMinute); err == nil && ok {
		minute, _ = strconv.Atoi(raw)
	}
	return true, hour, minute, nil
}

// ApplyStored восстанавливает регистрацию из настроек после перезапуска
// процесса. Выключенное напоминание не трогаем.
func (n *NotificationScheduler) ApplyStored() error {
	enabled, hour, minute, err := n.Status()
	if err != nil || !enabled {
		return err
	}
	n.reg.Cancel(ReminderID)
	err = n.reg.Register(ReminderID, hour, minute, true)
	if errors.Is(err, ErrExactUnavailable) {
		err = n.reg.Register(ReminderID, hour, minute, false)
	}
	return err
}
