// Package normalize maps raw per-vendor records into canonical catalog
// entries. Each normalizer is a pure, order-preserving transformation with
// no I/O; records that cannot be normalized are reported as failures
// instead of aborting the batch.
package normalize

// Failure records a single raw record that could not be normalized
type Failure struct {
	Vendor   string `json:"vendor"`
	RecordID string `json:"record_id"`
	Reason   string `json:"reason"`
}

// nonNegative clamps coerced prices to the canonical lower bound
func nonNegative(price int64) int64 {
	if price < 0 {
		return 0
	}
	return price
}
