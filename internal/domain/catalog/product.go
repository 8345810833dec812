package catalog

import (
	"github.com/cataloghub/backend/internal/domain/shared"
)

// Vendor identifies the upstream source a canonical product came from
type Vendor string

const (
	VendorA Vendor = "VendorA"
	VendorB Vendor = "VendorB"
	VendorC Vendor = "VendorC"
)

// IsValid returns true if the vendor tag is known
func (v Vendor) IsValid() bool {
	switch v {
	case VendorA, VendorB, VendorC:
		return true
	}
	return false
}

// StockStatus represents the unified availability of a canonical product
type StockStatus string

const (
	StockStatusAvailable  StockStatus = "available"
	StockStatusOutOfStock StockStatus = "out_of_stock"
)

// CanonicalProduct is the unified catalog entry produced by a vendor
// normalizer. The persisted catalog is the full ordered set of these rows
// from the most recent successful integration run.
type CanonicalProduct struct {
	shared.BaseEntity
	Vendor      Vendor      `gorm:"type:varchar(20);not null;index" json:"vendor"`
	ProductCode string      `gorm:"type:varchar(100);not null" json:"product_code"`
	ProductName string      `gorm:"type:varchar(255);not null" json:"product_name"`
	Price       int64       `gorm:"not null;default:0" json:"price"`
	StockStatus StockStatus `gorm:"type:varchar(20);not null" json:"stock_status"`
	Position    int         `gorm:"not null;default:0" json:"-"`
}

// TableName returns the table name for GORM
func (CanonicalProduct) TableName() string {
	return "catalog_products"
}

// NewCanonicalProduct builds a catalog entry. The storage identity is
// assigned fresh each run; canonical identity is (vendor, product_code).
func NewCanonicalProduct(vendor Vendor, code, name string, price int64, status StockStatus) CanonicalProduct {
	if price < 0 {
		price = 0
	}
	return CanonicalProduct{
		BaseEntity:  shared.NewBaseEntity(),
		Vendor:      vendor,
		ProductCode: code,
		ProductName: name,
		Price:       price,
		StockStatus: status,
	}
}
