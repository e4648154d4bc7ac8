package services

import (
	"errors"
	"time"

	"github.com/Kweyu/resto-api/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderService drives the order lifecycle: creation, item attachment, status
// transitions, readiness aggregation, and the order-side revenue queries.
type OrderService struct {
	db        *gorm.DB
	observers []OrderObserver
	strict    bool
}

type OrderServiceOption func(*OrderService)

// WithStrictTransitions turns on validation of status changes against the
// lifecycle transition table. The default accepts any overwrite, which is the
// historical behavior this system grew up with.
func WithStrictTransitions() OrderServiceOption {
	return func(s *OrderService) { s.strict = true }
}

func NewOrderService(db *gorm.DB, opts ...OrderServiceOption) *OrderService {
	s := &OrderService{db: db}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Subscribe registers an observer for order creation and mutation events.
// Not safe for concurrent use with in-flight operations; register everything
// at startup.
func (s *OrderService) Subscribe(observer OrderObserver) {
	s.observers = append(s.observers, observer)
}

func (s *OrderService) notifyCreated(order *models.Order) {
	for _, o := range s.observers {
		o.OrderCreated(order)
	}
}

func (s *OrderService) notifyUpdated(order *models.Order) {
	for _, o := range s.observers {
		o.OrderUpdated(order)
	}
}

// CreateOrder opens a new Pending order stamped with the current time.
func (s *OrderService) CreateOrder(orderType models.OrderType, customerName, tableNumber, phoneNumber string) (*models.Order, error) {
	order := &models.Order{
		Type:         orderType,
		Status:       models.OrderStatusPending,
		OrderTime:    time.Now(),
		CustomerName: customerName,
		TableNumber:  tableNumber,
		PhoneNumber:  phoneNumber,
	}
	if err := s.db.Create(order).Error; err != nil {
		return nil, persistErr("create order", err)
	}
	s.notifyCreated(order)
	return order, nil
}

// AddItemToOrder snapshots the menu item's name and price into a new line
// item with the next sequential item id.
func (s *OrderService) AddItemToOrder(orderID int, menuItem *models.MenuItem, quantity int, specialInstructions string) error {
	var order models.Order
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("Items").First(&order, orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return persistErr("add item to order", err)
		}
		item := models.OrderItem{
			OrderID:             orderID,
			ItemID:              len(order.Items) + 1,
			Name:                menuItem.Name,
			Price:               menuItem.Price,
			Quantity:            quantity,
			SpecialInstructions: specialInstructions,
		}
		if err := tx.Create(&item).Error; err != nil {
			return persistErr("add item to order", err)
		}
		order.Items = append(order.Items, item)
		return nil
	})
	if err != nil {
		return err
	}
	s.notifyUpdated(&order)
	return nil
}

// UpdateOrderStatus moves the order to the given status. Entering InKitchen
// sets the estimated ready time to now + 15 minutes per line item, a flat
// estimate that ignores per-item preparation times.
func (s *OrderService) UpdateOrderStatus(orderID int, newStatus models.OrderStatus) error {
	var order models.Order
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("Items").First(&order, orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return persistErr("update order status", err)
		}
		if s.strict && !models.ValidTransition(order.Status, newStatus) {
			return ErrInvalidTransition
		}
		order.Status = newStatus
		updates := map[string]any{"status": newStatus}
		if newStatus == models.OrderStatusInKitchen {
			eta := time.Now().Add(time.Duration(len(order.Items)) * models.DefaultPreparationMinutes * time.Minute)
			order.EstimatedReadyTime = &eta
			updates["estimated_ready_time"] = eta
		}
		if err := tx.Model(&models.Order{}).Where("id = ?", orderID).Updates(updates).Error; err != nil {
			return persistErr("update order status", err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.notifyUpdated(&order)
	return nil
}

// MarkItemReady flags one line item as ready. Once every item on the order is
// ready the order itself moves to Ready automatically.
func (s *OrderService) MarkItemReady(orderID, itemID int) error {
	var order models.Order
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("Items").First(&order, orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return persistErr("mark item ready", err)
		}
		idx := -1
		for i := range order.Items {
			if order.Items[i].ItemID == itemID {
				idx = i
				break
			}
		}
		if idx < 0 {
			return ErrNotFound
		}
		order.Items[idx].IsReady = true
		if err := tx.Model(&models.OrderItem{}).
			Where("order_id = ? AND item_id = ?", orderID, itemID).
			Update("is_ready", true).Error; err != nil {
			return persistErr("mark item ready", err)
		}
		if order.AllItemsReady() {
			order.Status = models.OrderStatusReady
			if err := tx.Model(&models.Order{}).Where("id = ?", orderID).
				Update("status", models.OrderStatusReady).Error; err != nil {
				return persistErr("mark item ready", err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.notifyUpdated(&order)
	return nil
}

// CompleteOrder is the terminal checkout transition.
func (s *OrderService) CompleteOrder(orderID int) error {
	return s.terminate(orderID, models.OrderStatusCompleted)
}

// CancelOrder terminally cancels the order.
func (s *OrderService) CancelOrder(orderID int) error {
	return s.terminate(orderID, models.OrderStatusCancelled)
}

func (s *OrderService) terminate(orderID int, status models.OrderStatus) error {
	var order models.Order
	if err := s.db.Preload("Items").First(&order, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return persistErr("update order status", err)
	}
	order.Status = status
	if err := s.db.Model(&models.Order{}).Where("id = ?", orderID).
		Update("status", status).Error; err != nil {
		return persistErr("update order status", err)
	}
	s.notifyUpdated(&order)
	return nil
}

func (s *OrderService) GetOrderByID(orderID int) (*models.Order, error) {
	var order models.Order
	if err := s.db.Preload("Items").Preload("Payment").First(&order, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, persistErr("get order", err)
	}
	return &order, nil
}

func (s *OrderService) GetAllOrders() ([]models.Order, error) {
	return s.findOrders(s.db)
}

func (s *OrderService) GetOrdersByType(orderType models.OrderType) ([]models.Order, error) {
	return s.findOrders(s.db.Where("type = ?", orderType))
}

func (s *OrderService) GetOrdersByStatus(status models.OrderStatus) ([]models.Order, error) {
	return s.findOrders(s.db.Where("status = ?", status))
}

// GetActiveOrders returns every order still in flight, newest first.
func (s *OrderService) GetActiveOrders() ([]models.Order, error) {
	return s.findOrders(s.db.Where("status NOT IN ?",
		[]models.OrderStatus{models.OrderStatusCompleted, models.OrderStatusCancelled}))
}

// CountActiveOrders backs the dashboard badge without loading full orders.
func (s *OrderService) CountActiveOrders() (int64, error) {
	var count int64
	err := s.db.Model(&models.Order{}).
		Where("status NOT IN ?", []models.OrderStatus{models.OrderStatusCompleted, models.OrderStatusCancelled}).
		Count(&count).Error
	if err != nil {
		return 0, persistErr("count active orders", err)
	}
	return count, nil
}

func (s *OrderService) findOrders(query *gorm.DB) ([]models.Order, error) {
	var orders []models.Order
	err := query.Preload("Items").Preload("Payment").
		Order("order_time DESC").Find(&orders).Error
	if err != nil {
		return nil, persistErr("list orders", err)
	}
	return orders, nil
}

// GetTotalRevenue sums line items across every Completed order.
func (s *OrderService) GetTotalRevenue() (decimal.Decimal, error) {
	return s.revenue(s.db.Where("status = ?", models.OrderStatusCompleted))
}

// GetTotalRevenueForDateRange sums line items across Completed orders whose
// order time falls inside the inclusive range.
func (s *OrderService) GetTotalRevenueForDateRange(start, end time.Time) (decimal.Decimal, error) {
	return s.revenue(s.db.Where("status = ? AND order_time >= ? AND order_time <= ?",
		models.OrderStatusCompleted, start, end))
}

func (s *OrderService) revenue(query *gorm.DB) (decimal.Decimal, error) {
	var orders []models.Order
	if err := query.Preload("Items").Find(&orders).Error; err != nil {
		return decimal.Zero, persistErr("compute revenue", err)
	}
	total := decimal.Zero
	for i := range orders {
		total = total.Add(orders[i].Total())
	}
	return total, nil
}
