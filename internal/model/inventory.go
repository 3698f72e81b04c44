package model

import "time"

type MovementType string

const (
	MovementIn     MovementType = "IN"
	MovementOut    MovementType = "OUT"
	MovementAdjust MovementType = "ADJUST"
)

func (t MovementType) Valid() bool {
	switch t {
	case MovementIn, MovementOut, MovementAdjust:
		return true
	}
	return false
}

// InventoryLog is an immutable record of one stock mutation. Product name and
// variant label are snapshots taken at mutation time; rows are only removed by
// the product-delete cascade.
type InventoryLog struct {
	ID           string       `db:"id" json:"id"`
	CompanyID    string       `db:"company_id" json:"company_id"`
	ProductID    string       `db:"product_id" json:"product_id"`
	VariantID    string       `db:"variant_id" json:"variant_id"`
	ProductName  string       `db:"product_name" json:"product_name"`
	VariantLabel string       `db:"variant_label" json:"variant_label"`
	MovementType MovementType `db:"movement_type" json:"movement_type"`
	Quantity     int          `db:"quantity" json:"quantity"` // signed; OUT stored negative
	Reason       string       `db:"reason" json:"reason"`
	CreatedAt    time.Time    `db:"created_at" json:"created_at"`
}
