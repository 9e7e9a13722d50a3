package model

import "time"

// Devotional — серверная модель ежедневного чтения.
// Записи создаются административной вставкой и после этого не изменяются;
// клиенты получают их только на чтение.
type Devotional struct {
	ID    string `gorm:"primaryKey;type:uuid"`
	Title string `gorm:"not null"`
	Body  string `gorm:"not null"`

	// PublishedAt — дата публикации; DayTag — производный тег дня недели
	// ("sunday".."saturday"), по нему работает политика бесплатного дня.
	PublishedAt time.Time `gorm:"not null;index"`
	DayTag      string    `gorm:"not null;index"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
