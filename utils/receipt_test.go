package utils

import (
	"testing"
	"time"

	"github.com/Kweyu/resto-api/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixturePayment() (*models.Payment, *models.Order) {
	payment := &models.Payment{
		ID:            1,
		OrderID:       7,
		Amount:        decimal.RequireFromString("22.00"),
		AmountPaid:    decimal.RequireFromString("25.00"),
		Change:        decimal.RequireFromString("3.00"),
		Status:        models.PaymentStatusCompleted,
		PaymentTime:   time.Date(2025, time.March, 7, 14, 5, 9, 0, time.Local),
		CashierName:   "Sam",
		ReceiptNumber: "R20250307140509",
	}
	order := &models.Order{
		ID:           7,
		CustomerName: "Jane",
		TableNumber:  "T4",
		Items: []models.OrderItem{
			{Name: "Burger", Price: decimal.RequireFromString("9.50"), Quantity: 2},
			{Name: "Fries", Price: decimal.RequireFromString("3.00"), Quantity: 1},
		},
	}
	return payment, order
}

func TestBuildReceiptText(t *testing.T) {
	payment, order := fixturePayment()
	text := BuildReceiptText(payment, order)

	assert.Contains(t, text, "Receipt #: R20250307140509")
	assert.Contains(t, text, "Cashier: Sam")
	assert.Contains(t, text, "Customer: Jane")
	assert.Contains(t, text, "Table: T4")
	assert.Contains(t, text, "2x Burger")
	assert.Contains(t, text, "$   19.00")
	assert.Contains(t, text, "Total:                              $   22.00")
	assert.Contains(t, text, "Change:                             $    3.00")

	// Takeout receipts skip the table line.
	order.TableNumber = ""
	assert.NotContains(t, BuildReceiptText(payment, order), "Table:")
}

func TestBuildReceiptQR(t *testing.T) {
	payment, _ := fixturePayment()

	data := BuildReceiptQRData(payment)
	assert.Contains(t, data, "Receipt: R20250307140509")
	assert.Contains(t, data, "Amount: $22.00")
	assert.Contains(t, data, "Order: #7")

	png, err := BuildReceiptQR(payment)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png[:4])
}
