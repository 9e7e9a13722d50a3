package repo

// IdentityStore — локальная идентичность устройства: непрозрачный
// идентификатор и необязательный email, указанный при оплате.
type IdentityStore interface {
	SaveDeviceID(id string) error
	LoadDeviceID() (string, error)
	SaveEmail(email string) error
	LoadEmail() (string, error)
}

// TokenStore — хранилище device-токена, выданного сервером.
type TokenStore interface {
	Save(token string) error
	Load() (string, error)
}
