package order

import "errors"

var (
	ErrOrderNotFound      = errors.New("order not found")
	ErrEmptyOrderItems    = errors.New("order has no items")
	ErrInvalidPayment     = errors.New("invalid payment method")
	ErrInvalidStatus      = errors.New("invalid order status")
	ErrCheckoutValidation = errors.New("checkout validation failed")
)
