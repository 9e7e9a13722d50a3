package model

import "time"

// Статусы платежа. Статус pending фиксируется в начале платёжной сессии,
// терминальные статусы выставляются после ответа платёжного шлюза.
const (
	PaymentStatusPending    = "pending"
	PaymentStatusSuccessful = "successful"
	PaymentStatusFailed     = "failed"
)

// PaymentRecord — серверная модель платежа/подписки.
// TransactionID уникален: повторная доставка той же записи клиентом
// не создаёт вторую строку (идемпотентный retry).
type PaymentRecord struct {
	ID       string `gorm:"primaryKey;type:uuid"`
	DeviceID string `gorm:"not null;index"`

	// Связь с устройством: удаление устройства каскадно удаляет платежи.
	Device *Device `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`

	Email         string
	TransactionID string `gorm:"not null;uniqueIndex"`
	AmountMinor   int64  `gorm:"not null"`
	Currency      string `gorm:"not null;size:3"`
	PlanID        string `gorm:"not null"`
	Status        string `gorm:"not null"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// ValidStatus проверяет, что строка является одним из известных статусов.
func ValidStatus(s string) bool {
	return s == PaymentStatusPending || s == PaymentStatusSuccessful || s == PaymentStatusFailed
}
