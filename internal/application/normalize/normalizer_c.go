package normalize

import (
	"fmt"
	"strings"

	"github.com/cataloghub/backend/internal/domain/catalog"
	"github.com/cataloghub/backend/internal/domain/vendor"
)

// recommendedSuffix is appended to vendor C food listings
const recommendedSuffix = " (Recommended)"

// VendorC maps raw vendor C records into canonical products. The embedded
// `details` and `pricing` sub-documents are decoded first (they may arrive
// as JSON-encoded strings); a record whose sub-documents cannot be decoded
// is reported as a failure and skipped, never aborting the batch.
func VendorC(records []vendor.RecordC) ([]catalog.CanonicalProduct, []Failure) {
	products := make([]catalog.CanonicalProduct, 0, len(records))
	var failures []Failure

	for _, r := range records {
		var details vendor.DetailsDocument
		if err := vendor.DecodeSubDocument(r.Details, &details); err != nil {
			failures = append(failures, Failure{
				Vendor:   string(catalog.VendorC),
				RecordID: r.ID.String(),
				Reason:   fmt.Sprintf("invalid details document: %v", err),
			})
			continue
		}

		var pricing vendor.PricingDocument
		if err := vendor.DecodeSubDocument(r.Pricing, &pricing); err != nil {
			failures = append(failures, Failure{
				Vendor:   string(catalog.VendorC),
				RecordID: r.ID.String(),
				Reason:   fmt.Sprintf("invalid pricing document: %v", err),
			})
			continue
		}

		price := ToInt(pricing.BasePrice) + ToInt(pricing.Tax)

		name := details.Name
		if strings.EqualFold(details.Category, "food") {
			name += recommendedSuffix
		}

		status := catalog.StockStatusOutOfStock
		if r.Stock > 0 {
			status = catalog.StockStatusAvailable
		}

		products = append(products, catalog.NewCanonicalProduct(
			catalog.VendorC,
			r.ID.String(),
			name,
			nonNegative(price),
			status,
		))
	}

	return products, failures
}
