package services

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound means the referenced menu item, order, or order item does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateName means a menu item with the same name (case-insensitive) already exists.
	ErrDuplicateName = errors.New("menu item name already exists")
	// ErrDuplicatePayment means a payment has already been processed for the order.
	ErrDuplicatePayment = errors.New("payment already processed for this order")
	// ErrInsufficientAmount means the tendered amount is less than the order total.
	ErrInsufficientAmount = errors.New("amount paid is less than total amount")
	// ErrInvalidTransition is returned in strict mode when a status change is not
	// part of the order lifecycle.
	ErrInvalidTransition = errors.New("invalid order status transition")
)

// persistErr wraps a store failure so callers can distinguish it from the
// domain errors above while keeping the cause inspectable.
func persistErr(op string, err error) error {
	return fmt.Errorf("%s: persistence failure: %w", op, err)
}
