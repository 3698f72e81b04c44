package dto

import "github.com/micaelrauan/stokk-backend/internal/model"

type SaleLineInput struct {
	ProductID string  `json:"product_id" validate:"required"`
	VariantID string  `json:"variant_id" validate:"required"`
	Quantity  int     `json:"quantity" validate:"gte=1"`
	UnitPrice float64 `json:"unit_price" validate:"gte=0"`
}

// RegisterSaleInput carries totals as computed by the point of sale. They are
// persisted as-is, without re-pricing the lines.
type RegisterSaleInput struct {
	Items           []SaleLineInput     `json:"items" validate:"required,min=1,dive"`
	Subtotal        float64             `json:"subtotal" validate:"gte=0"`
	DiscountPercent float64             `json:"discount_percent" validate:"gte=0,lte=100"`
	Total           float64             `json:"total" validate:"gte=0"`
	PaymentMethod   model.PaymentMethod `json:"payment_method" validate:"required,oneof=cash card pix"`
	CashReceived    *float64            `json:"cash_received" validate:"omitempty,gte=0"`
	CustomerName    *string             `json:"customer_name"`
}
