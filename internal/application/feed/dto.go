package feed

import "encoding/json"

// RecordAInput carries a vendor A record in the vendor's native field names
type RecordAInput struct {
	ProductCode string `json:"kd_produk" binding:"required"`
	ProductName string `json:"nm_brg" binding:"required"`
	Price       string `json:"hrg"`
	StockFlag   string `json:"ket_stok"`
}

// RecordBInput carries a vendor B record
type RecordBInput struct {
	SKU         string `json:"sku" binding:"required"`
	ProductName string `json:"product_name" binding:"required"`
	Price       int64  `json:"price"`
	IsAvailable bool   `json:"is_available"`
}

// RecordCInput carries a vendor C record. Details and pricing are stored
// verbatim, malformed documents surface later as normalization failures.
type RecordCInput struct {
	Details json.RawMessage `json:"details" binding:"required"`
	Pricing json.RawMessage `json:"pricing" binding:"required"`
	Stock   int             `json:"stock"`
}
