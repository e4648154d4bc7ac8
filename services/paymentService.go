package services

import (
	"errors"
	"sort"
	"time"

	"github.com/Kweyu/resto-api/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PaymentService handles cash payments and the payment-side reporting.
// Payments are created Completed and never mutated; the Refunded status is
// reserved and unreachable.
type PaymentService struct {
	db     *gorm.DB
	orders *OrderService
}

func NewPaymentService(db *gorm.DB, orders *OrderService) *PaymentService {
	return &PaymentService{db: db, orders: orders}
}

// TopSellingItem is one row of the top-sellers report, aggregated by item name.
type TopSellingItem struct {
	Name          string          `json:"name"`
	TotalQuantity int             `json:"totalQuantity"`
	TotalRevenue  decimal.Decimal `json:"totalRevenue"`
}

// ProcessCashPayment accepts cash against the order's computed total. At most
// one payment may ever exist per order. Change is tendered minus total.
func (s *PaymentService) ProcessCashPayment(orderID int, amountPaid decimal.Decimal, cashierName, notes string) (*models.Payment, error) {
	var payment *models.Payment
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := tx.Preload("Items").First(&order, orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return persistErr("process payment", err)
		}

		var existing int64
		if err := tx.Model(&models.Payment{}).Where("order_id = ?", orderID).Count(&existing).Error; err != nil {
			return persistErr("process payment", err)
		}
		if existing > 0 {
			return ErrDuplicatePayment
		}

		total := order.Total()
		if amountPaid.LessThan(total) {
			return ErrInsufficientAmount
		}

		now := time.Now()
		payment = &models.Payment{
			OrderID:       orderID,
			Amount:        total,
			AmountPaid:    amountPaid,
			Change:        amountPaid.Sub(total),
			Status:        models.PaymentStatusCompleted,
			PaymentTime:   now,
			CashierName:   cashierName,
			Notes:         notes,
			ReceiptNumber: models.ReceiptNumberAt(now),
		}
		if err := tx.Create(payment).Error; err != nil {
			return persistErr("process payment", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return payment, nil
}

// GetPaymentByOrderID returns the order's payment, or ErrNotFound if the
// order was never paid.
func (s *PaymentService) GetPaymentByOrderID(orderID int) (*models.Payment, error) {
	var payment models.Payment
	if err := s.db.Where("order_id = ?", orderID).First(&payment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, persistErr("get payment", err)
	}
	return &payment, nil
}

// GetPaymentWithOrder returns the payment together with its order, loaded
// through the order lifecycle service, for collaborators rendering receipts.
func (s *PaymentService) GetPaymentWithOrder(orderID int) (*models.Payment, *models.Order, error) {
	payment, err := s.GetPaymentByOrderID(orderID)
	if err != nil {
		return nil, nil, err
	}
	order, err := s.orders.GetOrderByID(orderID)
	if err != nil {
		return nil, nil, err
	}
	return payment, order, nil
}

// GetPaymentsByDateRange lists payments in the inclusive range, newest first.
func (s *PaymentService) GetPaymentsByDateRange(start, end time.Time) ([]models.Payment, error) {
	var payments []models.Payment
	err := s.db.Where("payment_time >= ? AND payment_time <= ?", start, end).
		Order("payment_time DESC").Find(&payments).Error
	if err != nil {
		return nil, persistErr("list payments", err)
	}
	return payments, nil
}

// GetTotalRevenueByDateRange sums Amount across Completed payments in range.
// This is the cash-drawer view; it can differ from order-side revenue when a
// completed order was never paid.
func (s *PaymentService) GetTotalRevenueByDateRange(start, end time.Time) (decimal.Decimal, error) {
	var payments []models.Payment
	err := s.db.Where("status = ? AND payment_time >= ? AND payment_time <= ?",
		models.PaymentStatusCompleted, start, end).Find(&payments).Error
	if err != nil {
		return decimal.Zero, persistErr("compute payment revenue", err)
	}
	total := decimal.Zero
	for _, p := range payments {
		total = total.Add(p.Amount)
	}
	return total, nil
}

// GetTopSellingItems aggregates line items across Completed orders in the
// range, grouped by item name and ranked by quantity sold, highest first.
func (s *PaymentService) GetTopSellingItems(start, end time.Time, limit int) ([]TopSellingItem, error) {
	if limit <= 0 {
		limit = 10
	}
	var orders []models.Order
	err := s.db.Preload("Items").
		Where("status = ? AND order_time >= ? AND order_time <= ?",
			models.OrderStatusCompleted, start, end).
		Find(&orders).Error
	if err != nil {
		return nil, persistErr("top selling items", err)
	}

	byName := map[string]*TopSellingItem{}
	for i := range orders {
		for _, item := range orders[i].Items {
			row, ok := byName[item.Name]
			if !ok {
				row = &TopSellingItem{Name: item.Name, TotalRevenue: decimal.Zero}
				byName[item.Name] = row
			}
			row.TotalQuantity += item.Quantity
			row.TotalRevenue = row.TotalRevenue.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
		}
	}

	rows := make([]TopSellingItem, 0, len(byName))
	for _, row := range byName {
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].TotalQuantity != rows[j].TotalQuantity {
			return rows[i].TotalQuantity > rows[j].TotalQuantity
		}
		return rows[i].Name < rows[j].Name
	})
	if len(rows) > limit {
		rows = rows[:limit]
	}
	return rows, nil
}
