package model

import "time"

// Favorite — закладка устройства на чтение.
type Favorite struct {
	ID       string `gorm:"primaryKey;type:uuid"`
	DeviceID string `gorm:"not null;index;uniqueIndex:uk_device_devotional,priority:1"`

	Device *Device `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`

	DevotionalID string      `gorm:"not null;type:uuid;uniqueIndex:uk_device_devotional,priority:2"`
	Devotional   *Devotional `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
}
