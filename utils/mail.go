package utils

import (
	"fmt"
	"net/smtp"
	"os"

	"github.com/Kweyu/resto-api/models"
)

// ReceiptMailer sends a plain-text copy of each receipt to a back-office
// address over SMTP. Configuration comes from the environment.
type ReceiptMailer struct {
	to string
}

// NewReceiptMailer returns nil when RECEIPTS_EMAIL is unset, which disables
// receipt copies entirely.
func NewReceiptMailer() *ReceiptMailer {
	to := os.Getenv("RECEIPTS_EMAIL")
	if to == "" {
		return nil
	}
	return &ReceiptMailer{to: to}
}

func (m *ReceiptMailer) SendReceiptCopy(payment *models.Payment, order *models.Order) error {
	subject := fmt.Sprintf("Receipt %s - order #%d", payment.ReceiptNumber, payment.OrderID)
	message := fmt.Sprintf(
		"From: %s\r\nSubject: %s\r\nMIME-version: 1.0;\r\nContent-Type: text/plain; charset=\"UTF-8\";\r\n\r\n%s",
		os.Getenv("FROM_EMAIL"),
		subject,
		BuildReceiptText(payment, order),
	)

	auth := smtp.PlainAuth(
		"",
		os.Getenv("FROM_EMAIL"),
		os.Getenv("FROM_EMAIL_PASSWORD"),
		os.Getenv("FROM_EMAIL_SMTP"),
	)

	if err := smtp.SendMail(os.Getenv("SMTP_ADDRESS"), auth, os.Getenv("FROM_EMAIL"), []string{m.to}, []byte(message)); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}
