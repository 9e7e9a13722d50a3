package model

import "time"

// Device — зарегистрированное устройство. Идентификатор генерируется
// клиентом локально; email необязателен и появляется при оплате.
// Парольной учётной записи нет — идентичность привязана к устройству.
type Device struct {
	ID    string `gorm:"primaryKey"`
	Email string

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}
