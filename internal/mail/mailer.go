package mail

import (
	"DailyManna/internal/plans"
	"fmt"
	"time"

	"gopkg.in/gomail.v2"
)

// Sender отправляет письмо-квитанцию об успешной оплате.
type Sender interface {
	SendReceipt(to, planID, transactionID string, amountMinor int64, currency string, paidAt time.Time) error
}

// SMTPConfig — настройки SMTP для отправки квитанций.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// Configured сообщает, достаточно ли настроек для отправки почты.
func (c SMTPConfig) Configured() bool {
	return c.Host != "" && c.Port != 0 && c.From != ""
}

// SMTPMailer — отправка квитанций через SMTP (gomail).
type SMTPMailer struct {
	cfg SMTPConfig
}

// NewSMTPMailer создаёт мейлер. Возвращает ошибку при неполной конфигурации.
func NewSMTPMailer(cfg SMTPConfig) (*SMTPMailer, error) {
	if !cfg.Configured() {
		return nil, fmt.Errorf("smtp is not configured")
	}
	return &SMTPMailer{cfg: cfg}, nil
}

// SendReceipt отправляет квитанцию об оплате на указанный адрес.
func (m *SMTPMailer) SendReceipt(to, planID, transactionID string, amountMinor int64, currency string, paidAt time.Time) error {
	planName := planID
	if p, ok := plans.Find(planID); ok {
		planName = p.Name
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.From)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", "DailyManna: ваша подписка активна")
	body := fmt.Sprintf(
		"<p>Спасибо за покупку!</p>"+
			"<p>План: %s<br>Сумма: %d.%02d %s<br>Транзакция: %s<br>Дата: %s</p>",
		planName, amountMinor/100, amountMinor%100, currency,
		transactionID, paidAt.UTC().Format(time.RFC3339),
	)
	msg.SetBody("text/html", body)

	d := gomail.NewDialer(m.cfg.Host, m.cfg.Port, m.cfg.Username, m.cfg.Password)
	if err := d.DialAndSend(msg); err != nil {
		return fmt.Errorf("send receipt: %w", err)
	}
	return nil
}
