package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderType string

const (
	OrderTypeDineIn  OrderType = "DineIn"
	OrderTypeTakeout OrderType = "Takeout"
)

func (t OrderType) Valid() bool {
	return t == OrderTypeDineIn || t == OrderTypeTakeout
}

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "Pending"
	OrderStatusConfirmed OrderStatus = "Confirmed"
	OrderStatusInKitchen OrderStatus = "InKitchen"
	OrderStatusReady     OrderStatus = "Ready"
	OrderStatusServed    OrderStatus = "Served"
	OrderStatusCompleted OrderStatus = "Completed"
	OrderStatusCancelled OrderStatus = "Cancelled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusInKitchen,
		OrderStatusReady, OrderStatusServed, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

func (s OrderStatus) Terminal() bool {
	return s == OrderStatusCompleted || s == OrderStatusCancelled
}

// transitions lists the states each status may move to. Completed and
// Cancelled are terminal. Cancellation is allowed from any non-terminal state.
var transitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:   {OrderStatusConfirmed, OrderStatusCancelled},
	OrderStatusConfirmed: {OrderStatusInKitchen, OrderStatusCancelled},
	OrderStatusInKitchen: {OrderStatusReady, OrderStatusCancelled},
	OrderStatusReady:     {OrderStatusServed, OrderStatusCompleted, OrderStatusCancelled},
	OrderStatusServed:    {OrderStatusCompleted, OrderStatusCancelled},
}

// ValidTransition reports whether moving from one status to the other is part
// of the normal order lifecycle. Services only consult this in strict mode;
// the default behavior accepts any overwrite.
func ValidTransition(from, to OrderStatus) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

type Order struct {
	ID                  int         `json:"id" gorm:"primaryKey"`
	Type                OrderType   `json:"type" gorm:"size:20"`
	Status              OrderStatus `json:"status" gorm:"size:20"`
	OrderTime           time.Time   `json:"orderTime"`
	EstimatedReadyTime  *time.Time  `json:"estimatedReadyTime,omitempty"`
	CustomerName        string      `json:"customerName" gorm:"size:100;not null"`
	TableNumber         string      `json:"tableNumber" gorm:"size:20"`
	PhoneNumber         string      `json:"phoneNumber" gorm:"size:20"`
	SpecialInstructions string      `json:"specialInstructions" gorm:"size:500"`
	Items               []OrderItem `json:"items" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Payment             *Payment    `json:"payment,omitempty" gorm:"foreignKey:OrderID"`
}

// OrderItem is a snapshot of a menu item at the time it was added. Later menu
// edits must not change historical orders, so name and price are copied, not
// referenced. ItemID is sequential within its order.
type OrderItem struct {
	OrderID             int             `json:"orderId" gorm:"primaryKey;autoIncrement:false"`
	ItemID              int             `json:"itemId" gorm:"primaryKey;autoIncrement:false"`
	Name                string          `json:"name" gorm:"size:100;not null"`
	Price               decimal.Decimal `json:"price" gorm:"type:decimal(18,2)"`
	Quantity            int             `json:"quantity"`
	SpecialInstructions string          `json:"specialInstructions" gorm:"size:500"`
	IsReady             bool            `json:"isReady"`
}

// Total is the flat sum of line items. No tax, no tips.
func (o *Order) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}

func (o *Order) IsPaid() bool {
	return o.Payment != nil && o.Payment.Status == PaymentStatusCompleted
}

func (o *Order) AllItemsReady() bool {
	if len(o.Items) == 0 {
		return false
	}
	for _, item := range o.Items {
		if !item.IsReady {
			return false
		}
	}
	return true
}
