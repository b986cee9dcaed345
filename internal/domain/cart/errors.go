// internal/domain/cart/errors.go
package cart

import "errors"

var (
	// ErrProductNotFound is returned when the referenced product does not
	// exist or is inactive
	ErrProductNotFound = errors.New("product not found or inactive")

	// ErrItemNotFound is returned when a quantity update targets a line
	// item that is not in the cart
	ErrItemNotFound = errors.New("item not found in cart")

	// ErrInvalidVariant is returned when a size or color required by the
	// product is missing or not among the declared values
	ErrInvalidVariant = errors.New("invalid variant selection")

	// ErrInsufficientStock is returned when the requested quantity exceeds
	// the available stock
	ErrInsufficientStock = errors.New("insufficient stock")

	// ErrConflict is returned when a save lost the optimistic-concurrency
	// race and retries are exhausted
	ErrConflict = errors.New("cart was modified concurrently")
)
