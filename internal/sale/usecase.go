package sale

import (
	"context"

	"github.com/micaelrauan/stokk-backend/internal/model"
	"github.com/micaelrauan/stokk-backend/internal/sale/dto"
)

type UseCase interface {
	// RegisterSale persists the sale and pushes its lines through the stock
	// engine as one OUT batch. The stock write is best effort: a failure
	// there does not undo the sale.
	RegisterSale(ctx context.Context, input *dto.RegisterSaleInput) (*dto.SaleResult, error)

	GetSale(ctx context.Context, id string) (*model.Sale, error)
	ListSales(ctx context.Context, filters *dto.SaleFilters) ([]model.Sale, int, error)
}
