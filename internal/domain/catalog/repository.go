package catalog

import "context"

// Repository persists the canonical catalog
type Repository interface {
	// ReplaceAll swaps the whole catalog for the given rows as one logical
	// unit. Readers never observe an empty or partially written catalog.
	ReplaceAll(ctx context.Context, products []CanonicalProduct) error

	// FindAll returns the catalog in integration order
	FindAll(ctx context.Context) ([]CanonicalProduct, error)

	// Count returns the number of catalog rows
	Count(ctx context.Context) (int64, error)
}
