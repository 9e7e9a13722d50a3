package service

import (
	"DailyManna/internal/model"
	"DailyManna/internal/repo"
	"context"
	"errors"
)

// ErrEmptyDeviceID возвращается при регистрации без идентификатора.
var ErrEmptyDeviceID = errors.New("empty device id")

// DeviceService — регистрация и удаление устройств.
type DeviceService struct {
	devices repo.DeviceRepository
}

func NewDeviceService(r repo.DeviceRepository) *DeviceService {
	return &DeviceService{devices: r}
}

// Register создаёт или обновляет устройство. Идентификатор генерирует
// клиент; сервер его только принимает.
func (s *DeviceService) Register(ctx context.Context, deviceID, email string) error {
	if deviceID == "" {
		return ErrEmptyDeviceID
	}
	return s.devices.Upsert(ctx, &model.Device{ID: deviceID, Email: email})
}

// Delete удаляет устройство вместе с платежами и закладками.
func (s *DeviceService) Delete(ctx context.Context, deviceID string) error {
	if deviceID == "" {
		return ErrEmptyDeviceID
	}
	return s.devices.Delete(ctx, deviceID)
}
