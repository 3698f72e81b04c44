package model

type Product struct {
	BaseModel
	CompanyID   string           `db:"company_id" json:"company_id"`
	Name        string           `db:"name" json:"name"`
	Description *string          `db:"description" json:"description"`
	Category    string           `db:"category" json:"category"` // name reference, not FK-enforced
	Brand       *string          `db:"brand" json:"brand"`
	CostPrice   float64          `db:"cost_price" json:"cost_price"`
	SalePrice   float64          `db:"sale_price" json:"sale_price"`
	MinStock    int              `db:"min_stock" json:"min_stock"` // single threshold shared by all variants
	ImageURL    *string          `db:"image_url" json:"image_url"`
	Variants    []ProductVariant `db:"-" json:"variants"` // loaded separately
}

type ProductVariant struct {
	BaseModel
	CompanyID    string `db:"company_id" json:"company_id"`
	ProductID    string `db:"product_id" json:"product_id"`
	Size         string `db:"size" json:"size"`
	Color        string `db:"color" json:"color"`
	Barcode      string `db:"barcode" json:"barcode"`
	SKU          string `db:"sku" json:"sku"`
	CurrentStock int    `db:"current_stock" json:"current_stock"` // never below zero
}

// Label is the denormalized size/color snapshot stored on logs and sale items.
func (v *ProductVariant) Label() string {
	return v.Size + "/" + v.Color
}
