package normalize

import (
	"github.com/cataloghub/backend/internal/domain/catalog"
	"github.com/cataloghub/backend/internal/domain/vendor"
)

// VendorB maps raw vendor B records into canonical products. Prices pass
// through undiscounted; availability is the boolean flag. Vendor B records
// cannot fail normalization.
func VendorB(records []vendor.RecordB) ([]catalog.CanonicalProduct, []Failure) {
	products := make([]catalog.CanonicalProduct, 0, len(records))
	for _, r := range records {
		status := catalog.StockStatusOutOfStock
		if r.IsAvailable {
			status = catalog.StockStatusAvailable
		}

		products = append(products, catalog.NewCanonicalProduct(
			catalog.VendorB,
			r.SKU,
			r.ProductName,
			nonNegative(r.Price),
			status,
		))
	}
	return products, nil
}
