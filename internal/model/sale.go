package model

import "time"

type PaymentMethod string

const (
	PaymentCash PaymentMethod = "cash"
	PaymentCard PaymentMethod = "card"
	PaymentPix  PaymentMethod = "pix"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCash, PaymentCard, PaymentPix:
		return true
	}
	return false
}

type Sale struct {
	ID              string        `db:"id" json:"id"`
	CompanyID       string        `db:"company_id" json:"company_id"`
	Subtotal        float64       `db:"subtotal" json:"subtotal"`
	DiscountPercent float64       `db:"discount_percent" json:"discount_percent"`
	Total           float64       `db:"total" json:"total"`
	PaymentMethod   PaymentMethod `db:"payment_method" json:"payment_method"`
	CashReceived    *float64      `db:"cash_received" json:"cash_received"` // cash only
	ChangeDue       *float64      `db:"change_due" json:"change_due"`       // cash only
	CustomerName    *string       `db:"customer_name" json:"customer_name"`
	CreatedAt       time.Time     `db:"created_at" json:"created_at"`
	Items           []SaleItem    `db:"-" json:"items"`
}

type SaleItem struct {
	ID           string  `db:"id" json:"id"`
	SaleID       string  `db:"sale_id" json:"sale_id"`
	ProductID    string  `db:"product_id" json:"product_id"`
	VariantID    string  `db:"variant_id" json:"variant_id"`
	ProductName  string  `db:"product_name" json:"product_name"`
	VariantLabel string  `db:"variant_label" json:"variant_label"`
	SKU          string  `db:"sku" json:"sku"`
	Quantity     int     `db:"quantity" json:"quantity"`
	UnitPrice    float64 `db:"unit_price" json:"unit_price"` // price snapshot at sale time
}
