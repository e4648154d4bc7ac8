package utils

import (
	"fmt"
	"strings"

	"github.com/Kweyu/resto-api/models"
	"github.com/shopspring/decimal"
	qrcode "github.com/skip2/go-qrcode"
)

const (
	restaurantName    = "RESTAURANT ORDER MANAGEMENT"
	restaurantAddress = "123 Main Street, City, State"
	restaurantPhone   = "Phone: (555) 123-4567"

	receiptQRSize = 256
)

// BuildReceiptText renders the fixed-width cash receipt for a payment and its
// order. Rendering to paper or screen is the caller's concern.
func BuildReceiptText(payment *models.Payment, order *models.Order) string {
	var sb strings.Builder
	sb.WriteString("========================================\n")
	sb.WriteString("        " + restaurantName + "\n")
	sb.WriteString("========================================\n")
	sb.WriteString(restaurantAddress + "\n")
	sb.WriteString(restaurantPhone + "\n\n")

	fmt.Fprintf(&sb, "Receipt #: %s\n", payment.ReceiptNumber)
	fmt.Fprintf(&sb, "Date: %s\n", payment.PaymentTime.Format("01/02/2006 15:04"))
	fmt.Fprintf(&sb, "Cashier: %s\n\n", payment.CashierName)

	sb.WriteString("Order Details:\n")
	if order != nil {
		fmt.Fprintf(&sb, "Order #: %d\n", order.ID)
		fmt.Fprintf(&sb, "Customer: %s\n", order.CustomerName)
		if order.TableNumber != "" {
			fmt.Fprintf(&sb, "Table: %s\n", order.TableNumber)
		}
		sb.WriteString("\nItems:\n")
		for _, item := range order.Items {
			line := item.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
			fmt.Fprintf(&sb, "%dx %-20s $%8s\n", item.Quantity, item.Name, line.StringFixed(2))
		}
	}

	sb.WriteString("----------------------------------------\n")
	fmt.Fprintf(&sb, "Total:                              $%8s\n", payment.Amount.StringFixed(2))
	fmt.Fprintf(&sb, "Paid:                               $%8s\n", payment.AmountPaid.StringFixed(2))
	fmt.Fprintf(&sb, "Change:                             $%8s\n\n", payment.Change.StringFixed(2))
	sb.WriteString("Thank you for your business!\n")
	sb.WriteString("Please come again!\n")
	sb.WriteString("========================================\n")

	return sb.String()
}

// BuildReceiptQRData is the payload encoded into the receipt's QR code.
func BuildReceiptQRData(payment *models.Payment) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Receipt: %s\n", payment.ReceiptNumber)
	fmt.Fprintf(&sb, "Date: %s\n", payment.PaymentTime.Format("2006-01-02 15:04"))
	fmt.Fprintf(&sb, "Amount: $%s\n", payment.Amount.StringFixed(2))
	fmt.Fprintf(&sb, "Order: #%d\n", payment.OrderID)
	fmt.Fprintf(&sb, "Restaurant: %s\n", restaurantName)
	return sb.String()
}

// BuildReceiptQR encodes the receipt payload as a PNG.
func BuildReceiptQR(payment *models.Payment) ([]byte, error) {
	png, err := qrcode.Encode(BuildReceiptQRData(payment), qrcode.Medium, receiptQRSize)
	if err != nil {
		return nil, fmt.Errorf("qr encode error: %w", err)
	}
	return png, nil
}
