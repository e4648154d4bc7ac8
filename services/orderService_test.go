package services

import (
	"testing"
	"time"

	"github.com/Kweyu/resto-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingObserver struct {
	created []int
	updated []int
}

func (r *recordingObserver) OrderCreated(order *models.Order) {
	r.created = append(r.created, order.ID)
}

func (r *recordingObserver) OrderUpdated(order *models.Order) {
	r.updated = append(r.updated, order.ID)
}

func TestCreateOrderDefaults(t *testing.T) {
	orders := NewOrderService(newTestDB(t))
	rec := &recordingObserver{}
	orders.Subscribe(rec)

	order, err := orders.CreateOrder(models.OrderTypeDineIn, "Ada", "T4", "555-0101")
	require.NoError(t, err)

	assert.NotZero(t, order.ID)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, "Ada", order.CustomerName)
	assert.Equal(t, "T4", order.TableNumber)
	assert.WithinDuration(t, time.Now(), order.OrderTime, 2*time.Second)
	assert.Nil(t, order.EstimatedReadyTime)
	assert.Equal(t, []int{order.ID}, rec.created)
}

func TestAddItemToOrderSnapshotsMenuItem(t *testing.T) {
	db := newTestDB(t)
	menu := NewMenuService(db)
	orders := NewOrderService(db)

	item, err := menu.AddMenuItem(burger())
	require.NoError(t, err)
	order, err := orders.CreateOrder(models.OrderTypeTakeout, "Jane", "", "")
	require.NoError(t, err)

	require.NoError(t, orders.AddItemToOrder(order.ID, item, 2, "no onions"))

	// A later price hike must not change the historical order.
	require.NoError(t, menu.SetItemPrice(item.ID, money("14.00")))
	require.NoError(t, menu.SetItemName(item.ID, "Deluxe Burger"))

	got, err := orders.GetOrderByID(order.ID)
	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	assert.Equal(t, 1, got.Items[0].ItemID)
	assert.Equal(t, "Burger", got.Items[0].Name)
	assert.True(t, got.Items[0].Price.Equal(money("9.50")))
	assert.Equal(t, 2, got.Items[0].Quantity)
	assert.Equal(t, "no onions", got.Items[0].SpecialInstructions)
	assert.True(t, got.Total().Equal(money("19.00")))
}

func TestAddItemToOrderSequentialItemIDs(t *testing.T) {
	db := newTestDB(t)
	orders := NewOrderService(db)
	rec := &recordingObserver{}
	orders.Subscribe(rec)

	order, err := orders.CreateOrder(models.OrderTypeDineIn, "Ada", "T1", "")
	require.NoError(t, err)
	require.NoError(t, orders.AddItemToOrder(order.ID, burger(), 1, ""))
	require.NoError(t, orders.AddItemToOrder(order.ID, fries(), 3, ""))

	got, err := orders.GetOrderByID(order.ID)
	require.NoError(t, err)
	require.Len(t, got.Items, 2)
	assert.Equal(t, 1, got.Items[0].ItemID)
	assert.Equal(t, 2, got.Items[1].ItemID)
	assert.Equal(t, []int{order.ID, order.ID}, rec.updated)

	assert.ErrorIs(t, orders.AddItemToOrder(999, burger(), 1, ""), ErrNotFound)
}

func TestUpdateOrderStatusComputesEstimatedReadyTime(t *testing.T) {
	db := newTestDB(t)
	orders := NewOrderService(db)

	order, err := orders.CreateOrder(models.OrderTypeDineIn, "Ada", "T1", "")
	require.NoError(t, err)
	require.NoError(t, orders.AddItemToOrder(order.ID, burger(), 2, ""))
	require.NoError(t, orders.AddItemToOrder(order.ID, fries(), 1, ""))
	third := fries()
	third.Name = "Cola"
	require.NoError(t, orders.AddItemToOrder(order.ID, third, 1, ""))

	require.NoError(t, orders.UpdateOrderStatus(order.ID, models.OrderStatusInKitchen))

	got, err := orders.GetOrderByID(order.ID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusInKitchen, got.Status)
	// Flat 15 minutes per line item, quantities ignored: 3 items = 45 minutes.
	require.NotNil(t, got.EstimatedReadyTime)
	assert.WithinDuration(t, time.Now().Add(45*time.Minute), *got.EstimatedReadyTime, 2*time.Second)

	assert.ErrorIs(t, orders.UpdateOrderStatus(999, models.OrderStatusReady), ErrNotFound)
}

func TestMarkItemReadyAggregatesToReady(t *testing.T) {
	db := newTestDB(t)
	orders := NewOrderService(db)

	order, err := orders.CreateOrder(models.OrderTypeDineIn, "Ada", "T1", "")
	require.NoError(t, err)
	require.NoError(t, orders.AddItemToOrder(order.ID, burger(), 1, ""))
	require.NoError(t, orders.AddItemToOrder(order.ID, fries(), 1, ""))
	require.NoError(t, orders.UpdateOrderStatus(order.ID, models.OrderStatusInKitchen))

	require.NoError(t, orders.MarkItemReady(order.ID, 1))
	got, err := orders.GetOrderByID(order.ID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusInKitchen, got.Status)

	require.NoError(t, orders.MarkItemReady(order.ID, 2))
	got, err = orders.GetOrderByID(order.ID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusReady, got.Status)

	// Re-marking an already ready item keeps the order Ready and errors nothing.
	require.NoError(t, orders.MarkItemReady(order.ID, 2))
	got, err = orders.GetOrderByID(order.ID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusReady, got.Status)

	assert.ErrorIs(t, orders.MarkItemReady(order.ID, 42), ErrNotFound)
	assert.ErrorIs(t, orders.MarkItemReady(999, 1), ErrNotFound)
}

func TestCompleteAndCancelAreTerminal(t *testing.T) {
	db := newTestDB(t)
	orders := NewOrderService(db)

	first, err := orders.CreateOrder(models.OrderTypeDineIn, "Ada", "T1", "")
	require.NoError(t, err)
	second, err := orders.CreateOrder(models.OrderTypeTakeout, "Grace", "", "")
	require.NoError(t, err)

	require.NoError(t, orders.CompleteOrder(first.ID))
	require.NoError(t, orders.CancelOrder(second.ID))

	active, err := orders.GetActiveOrders()
	require.NoError(t, err)
	assert.Empty(t, active)

	count, err := orders.CountActiveOrders()
	require.NoError(t, err)
	assert.Zero(t, count)

	assert.ErrorIs(t, orders.CompleteOrder(999), ErrNotFound)
	assert.ErrorIs(t, orders.CancelOrder(999), ErrNotFound)
}

func TestStatusTransitionsPermissiveByDefault(t *testing.T) {
	db := newTestDB(t)
	orders := NewOrderService(db)

	order, err := orders.CreateOrder(models.OrderTypeDineIn, "Ada", "T1", "")
	require.NoError(t, err)
	require.NoError(t, orders.CompleteOrder(order.ID))

	// Historical behavior: any overwrite is accepted, even out of a terminal state.
	require.NoError(t, orders.UpdateOrderStatus(order.ID, models.OrderStatusInKitchen))
	got, err := orders.GetOrderByID(order.ID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusInKitchen, got.Status)
}

func TestStrictTransitionsRejectInvalidMoves(t *testing.T) {
	db := newTestDB(t)
	orders := NewOrderService(db, WithStrictTransitions())

	order, err := orders.CreateOrder(models.OrderTypeDineIn, "Ada", "T1", "")
	require.NoError(t, err)

	assert.ErrorIs(t, orders.UpdateOrderStatus(order.ID, models.OrderStatusReady), ErrInvalidTransition)
	require.NoError(t, orders.UpdateOrderStatus(order.ID, models.OrderStatusConfirmed))
	require.NoError(t, orders.UpdateOrderStatus(order.ID, models.OrderStatusInKitchen))
	require.NoError(t, orders.UpdateOrderStatus(order.ID, models.OrderStatusReady))
	require.NoError(t, orders.UpdateOrderStatus(order.ID, models.OrderStatusCompleted))
	assert.ErrorIs(t, orders.UpdateOrderStatus(order.ID, models.OrderStatusInKitchen), ErrInvalidTransition)
}

func TestOrderQueries(t *testing.T) {
	db := newTestDB(t)
	orders := NewOrderService(db)

	dineIn, err := orders.CreateOrder(models.OrderTypeDineIn, "Ada", "T1", "")
	require.NoError(t, err)
	takeout, err := orders.CreateOrder(models.OrderTypeTakeout, "Grace", "", "555-0102")
	require.NoError(t, err)
	require.NoError(t, orders.UpdateOrderStatus(takeout.ID, models.OrderStatusConfirmed))

	byType, err := orders.GetOrdersByType(models.OrderTypeDineIn)
	require.NoError(t, err)
	require.Len(t, byType, 1)
	assert.Equal(t, dineIn.ID, byType[0].ID)

	byStatus, err := orders.GetOrdersByStatus(models.OrderStatusConfirmed)
	require.NoError(t, err)
	require.Len(t, byStatus, 1)
	assert.Equal(t, takeout.ID, byStatus[0].ID)

	all, err := orders.GetAllOrders()
	require.NoError(t, err)
	assert.Len(t, all, 2)

	active, err := orders.GetActiveOrders()
	require.NoError(t, err)
	assert.Len(t, active, 2)
}

func TestRevenueExcludesCancelledOrders(t *testing.T) {
	db := newTestDB(t)
	orders := NewOrderService(db)

	completed := func(name, price string, qty int) {
		o, err := orders.CreateOrder(models.OrderTypeDineIn, name, "T1", "")
		require.NoError(t, err)
		mi := &models.MenuItem{Name: name, Price: money(price), Category: models.CategoryMainCourse}
		require.NoError(t, orders.AddItemToOrder(o.ID, mi, qty, ""))
		require.NoError(t, orders.CompleteOrder(o.ID))
	}

	completed("First", "22.00", 1)
	completed("Second", "15.75", 1)

	cancelled, err := orders.CreateOrder(models.OrderTypeDineIn, "Third", "T2", "")
	require.NoError(t, err)
	require.NoError(t, orders.AddItemToOrder(cancelled.ID,
		&models.MenuItem{Name: "Feast", Price: money("50.00"), Category: models.CategoryMainCourse}, 1, ""))
	require.NoError(t, orders.CancelOrder(cancelled.ID))

	total, err := orders.GetTotalRevenue()
	require.NoError(t, err)
	assert.True(t, total.Equal(money("37.75")), "got %s", total)

	start := time.Now().Add(-time.Hour)
	end := time.Now().Add(time.Hour)
	ranged, err := orders.GetTotalRevenueForDateRange(start, end)
	require.NoError(t, err)
	assert.True(t, ranged.Equal(money("37.75")))

	empty, err := orders.GetTotalRevenueForDateRange(start.Add(-48*time.Hour), end.Add(-48*time.Hour))
	require.NoError(t, err)
	assert.True(t, empty.IsZero())
}
