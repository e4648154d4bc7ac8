package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "Pending"
	PaymentStatusCompleted PaymentStatus = "Completed"
	PaymentStatusFailed    PaymentStatus = "Failed"
	// PaymentStatusRefunded is reserved. No operation transitions into it yet.
	PaymentStatusRefunded PaymentStatus = "Refunded"
)

type Payment struct {
	ID            int             `json:"id" gorm:"primaryKey"`
	OrderID       int             `json:"orderId" gorm:"uniqueIndex"`
	Amount        decimal.Decimal `json:"amount" gorm:"type:decimal(18,2)"`
	AmountPaid    decimal.Decimal `json:"amountPaid" gorm:"type:decimal(18,2)"`
	Change        decimal.Decimal `json:"change" gorm:"type:decimal(18,2)"`
	Status        PaymentStatus   `json:"status" gorm:"size:20"`
	PaymentTime   time.Time       `json:"paymentTime"`
	CashierName   string          `json:"cashierName" gorm:"size:100"`
	Notes         string          `json:"notes" gorm:"size:500"`
	ReceiptNumber string          `json:"receiptNumber" gorm:"size:20"`
}

// ReceiptNumberAt derives the human-readable receipt number from the payment
// timestamp, to-the-second. Two payments within the same second collide; a
// known and accepted limitation of the format.
func ReceiptNumberAt(t time.Time) string {
	return "R" + t.Format("20060102") + t.Format("150405")
}
