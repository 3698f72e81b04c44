package dto

import (
	"github.com/micaelrauan/stokk-backend/internal/model"
	stockdto "github.com/micaelrauan/stokk-backend/internal/stock/dto"
)

// LineSnapshot is the denormalized variant data copied onto a sale item.
type LineSnapshot struct {
	ProductName string `db:"product_name"`
	Size        string `db:"size"`
	Color       string `db:"color"`
	SKU         string `db:"sku"`
}

func (s *LineSnapshot) Label() string {
	return s.Size + "/" + s.Color
}

// SaleResult pairs the persisted sale with the outcome of the stock batch it
// triggered. Movement is nil when the batch could not run at all.
type SaleResult struct {
	Sale     *model.Sale              `json:"sale"`
	Movement *stockdto.MovementResult `json:"movement,omitempty"`
}

type SaleFilters struct {
	CompanyID string
	Page      int
	PageSize  int
}
