package services

import "github.com/Kweyu/resto-api/models"

// OrderObserver receives notifications about order creation and mutation.
// Callbacks run synchronously after the change has been committed, never
// before, so observers always see persisted state.
type OrderObserver interface {
	OrderCreated(order *models.Order)
	OrderUpdated(order *models.Order)
}

// OrderObserverFuncs adapts plain functions to OrderObserver. Nil fields are
// skipped.
type OrderObserverFuncs struct {
	Created func(order *models.Order)
	Updated func(order *models.Order)
}

func (o OrderObserverFuncs) OrderCreated(order *models.Order) {
	if o.Created != nil {
		o.Created(order)
	}
}

func (o OrderObserverFuncs) OrderUpdated(order *models.Order) {
	if o.Updated != nil {
		o.Updated(order)
	}
}
