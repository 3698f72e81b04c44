package dto

type CreateProductInput struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description"`
	Category    string  `json:"category" validate:"required"`
	Brand       string  `json:"brand"`
	CostPrice   float64 `json:"cost_price" validate:"gte=0"`
	SalePrice   float64 `json:"sale_price" validate:"gte=0"`
	MinStock    int     `json:"min_stock" validate:"gte=0"`
	ImageURL    string  `json:"image_url"`

	// Sizes and Colors describe the variant grid; every size/color pair
	// becomes one variant. Explicit Variants take precedence when present.
	Sizes    []string             `json:"sizes"`
	Colors   []string             `json:"colors"`
	Variants []CreateVariantInput `json:"variants" validate:"dive"`
}

type UpdateProductInput struct {
	ID          string  `json:"-"`
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description"`
	Category    string  `json:"category" validate:"required"`
	Brand       string  `json:"brand"`
	CostPrice   float64 `json:"cost_price" validate:"gte=0"`
	SalePrice   float64 `json:"sale_price" validate:"gte=0"`
	MinStock    int     `json:"min_stock" validate:"gte=0"`
	ImageURL    string  `json:"image_url"`
}

type CreateVariantInput struct {
	ProductID    string `json:"-"`
	Size         string `json:"size" validate:"required"`
	Color        string `json:"color" validate:"required"`
	Barcode      string `json:"barcode"`
	InitialStock int    `json:"initial_stock" validate:"gte=0"`
}
