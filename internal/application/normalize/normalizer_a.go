package normalize

import (
	"strings"

	"github.com/cataloghub/backend/internal/domain/catalog"
	"github.com/cataloghub/backend/internal/domain/vendor"
	"github.com/shopspring/decimal"
)

// vendorADiscount is the fixed 10% listing discount applied to vendor A
var vendorADiscount = decimal.NewFromFloat(0.9)

// VendorA maps raw vendor A records into canonical products. Prices get a
// fixed 10% discount rounded half-up; the textual stock flag maps to the
// canonical status. Vendor A records cannot fail normalization.
func VendorA(records []vendor.RecordA) ([]catalog.CanonicalProduct, []Failure) {
	products := make([]catalog.CanonicalProduct, 0, len(records))
	for _, r := range records {
		price := decimal.NewFromInt(ToInt(r.Price)).
			Mul(vendorADiscount).
			Round(0).
			IntPart()

		status := catalog.StockStatusOutOfStock
		if strings.EqualFold(strings.TrimSpace(r.StockFlag), vendor.StockMarkerInStock) {
			status = catalog.StockStatusAvailable
		}

		products = append(products, catalog.NewCanonicalProduct(
			catalog.VendorA,
			r.ProductCode,
			r.ProductName,
			nonNegative(price),
			status,
		))
	}
	return products, nil
}
