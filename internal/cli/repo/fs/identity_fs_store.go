package fs

import (
	"errors"
	"os"
	"path/filepath"
)

// IdentityFSStore — файловое хранилище идентичности устройства и
// device-токена для CLI.
type IdentityFSStore struct{}

func configDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	p := filepath.Join(dir, "DailyManna")
	if err := os.MkdirAll(p, 0o700); err != nil {
		return "", err
	}
	return p, nil
}

func filePath(name string) (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, name), nil
}

func writeValue(name, value string) error {
	p, err := filePath(name)
	if err != nil {
		return err
	}
	return os.WriteFile(p, []byte(value), 0o600)
}

func readValue(name string) (string, error) {
	p, err := filePath(name)
	if err != nil {
		return "", err
	}
	b, err := os.ReadFile(p)
	if err != nil {
		return "", err
	}
	// обрезаем завершающие переводы строки/пробелы
	for len(b) > 0 {
		c := b[len(b)-1]
		if c == '\n' || c == '\r' || c == ' ' || c == '\t' {
			b = b[:len(b)-1]
			continue
		}
		break
	}
	if len(b) == 0 {
		return "", errors.New("empty value in " + name)
	}
	return string(b), nil
}

// SaveDeviceID сохраняет идентификатор устройства.
func (IdentityFSStore) SaveDeviceID(id string) error {
	if id == "" {
		return errors.New("empty device id")
	}
	return writeValue("device_id", id)
}

// LoadDeviceID читает идентификатор устройства.
func (IdentityFSStore) LoadDeviceID() (string, error) {
	return readValue("device_id")
}

// SaveEmail сохраняет email, указанный при оплате.
func (IdentityFSStore) SaveEmail(email string) error {
	if email == "" {
		return errors.New("empty email")
	}
	return writeValue("email", email)
}

// LoadEmail читает сохранённый email.
func (IdentityFSStore) LoadEmail() (string, error) {
	return readValue("email")
}

// Save сохраняет device-токен, выданный сервером.
func (IdentityFSStore) Save(token string) error {
	if token == "" {
		return errors.New("empty token")
	}
	return writeValue("device_token", token)
}

// Load читает device-токен.
func (IdentityFSStore) Load() (string, error) {
	return readValue("device_token")
}
