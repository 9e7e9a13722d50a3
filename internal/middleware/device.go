package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Имя cookie с подписанным device-токеном.
const deviceCookieName = "device_token"

type contextKey string

const deviceIDKey contextKey = "device_id"

type deviceClaims struct {
	jwt.RegisteredClaims
	DeviceID string `json:"device_id"`
}

// SetDeviceCookie подписывает device-токен и ставит cookie в ответ.
func SetDeviceCookie(w http.ResponseWriter, deviceID, secret string) error {
	claims := deviceClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().AddDate(1, 0, 0)),
		},
		DeviceID: deviceID,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     deviceCookieName,
		Value:    signed,
		Path:     "/",
		HttpOnly: true,
	})
	return nil
}

// WithDevice извлекает device_id из подписанной cookie и кладёт его в контекст.
// Запрос без валидной cookie проходит дальше анонимным: хендлеры сами
// решают, требуется ли им идентификатор устройства.
func WithDevice(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(deviceCookieName)
			if err != nil || cookie.Value == "" {
				next.ServeHTTP(w, r)
				return
			}

			claims := &deviceClaims{}
			token, err := jwt.ParseWithClaims(cookie.Value, claims, func(t *jwt.Token) (any, error) {
				return []byte(secret), nil
			})
			if err != nil || !token.Valid || claims.DeviceID == "" {
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), deviceIDKey, claims.DeviceID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetDeviceIDFromContext возвращает device_id, установленный WithDevice.
func GetDeviceIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(deviceIDKey).(string)
	return id, ok && id != ""
}
