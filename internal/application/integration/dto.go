package integration

import (
	"github.com/cataloghub/backend/internal/application/normalize"
	"github.com/cataloghub/backend/internal/domain/catalog"
)

// ProductView is the wire representation of a canonical product
type ProductView struct {
	Vendor      string `json:"vendor"`
	ProductCode string `json:"product_code"`
	ProductName string `json:"product_name"`
	Price       int64  `json:"price"`
	StockStatus string `json:"stock_status"`
}

// Result summarizes a completed integration run
type Result struct {
	TotalProducts int                 `json:"total_products"`
	FailedRecords []normalize.Failure `json:"failed_records"`
	Sample        []ProductView       `json:"sample"`
}

// PreviewResult is the outcome of a dry-run normalization
type PreviewResult struct {
	Products      []ProductView       `json:"products"`
	FailedRecords []normalize.Failure `json:"failed_records"`
}

func toProductView(p catalog.CanonicalProduct) ProductView {
	return ProductView{
		Vendor:      string(p.Vendor),
		ProductCode: p.ProductCode,
		ProductName: p.ProductName,
		Price:       p.Price,
		StockStatus: string(p.StockStatus),
	}
}

func toProductViews(products []catalog.CanonicalProduct) []ProductView {
	views := make([]ProductView, 0, len(products))
	for _, p := range products {
		views = append(views, toProductView(p))
	}
	return views
}
