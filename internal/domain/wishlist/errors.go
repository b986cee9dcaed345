// internal/domain/wishlist/errors.go
package wishlist

import "errors"

var (
	// ErrProductNotFound is returned when the referenced product does not
	// exist or is inactive
	ErrProductNotFound = errors.New("product not found or inactive")

	// ErrDuplicateItem is returned when adding a product that is already
	// on the wishlist
	ErrDuplicateItem = errors.New("item already exists in wishlist")

	// ErrItemNotFound is returned when a move-to-cart targets a product
	// that is not on the wishlist
	ErrItemNotFound = errors.New("item not found in wishlist")

	// ErrConflict is returned when a save lost the optimistic-concurrency
	// race and retries are exhausted
	ErrConflict = errors.New("wishlist was modified concurrently")
)
