package dto

import "github.com/micaelrauan/stokk-backend/internal/model"

type MovementItem struct {
	ProductID string `json:"product_id" validate:"required"`
	VariantID string `json:"variant_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required"`
}

type ApplyMovementInput struct {
	Type   model.MovementType `json:"type" validate:"required,oneof=IN OUT ADJUST"`
	Reason string             `json:"reason" validate:"required"`
	Items  []MovementItem     `json:"items" validate:"required,min=1,dive"`
}

// SetStockInput overwrites a variant's stock level. VariantID comes from the
// URL, not the body. Negative quantities are rejected here; the usecase does
// not re-validate.
type SetStockInput struct {
	ProductID string `json:"product_id" validate:"required"`
	VariantID string `json:"-"`
	Quantity  int    `json:"quantity" validate:"gte=0"`
}
