package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/micaelrauan/stokk-backend/internal/auth"
	"github.com/micaelrauan/stokk-backend/internal/model"
	"github.com/micaelrauan/stokk-backend/internal/pkg/logger"
	"github.com/micaelrauan/stokk-backend/internal/pkg/metrics"
	"github.com/micaelrauan/stokk-backend/internal/sale"
	"github.com/micaelrauan/stokk-backend/internal/sale/dto"
	"github.com/micaelrauan/stokk-backend/internal/stock"
	stockdto "github.com/micaelrauan/stokk-backend/internal/stock/dto"
	"go.uber.org/zap"
)

var ErrUnknownVariant = errors.New("sale references an unknown variant")

type saleUseCase struct {
	repo    sale.Repository
	stockUC stock.UseCase
	logger  logger.ZapLogger
}

func NewSaleUseCase(repo sale.Repository, stockUC stock.UseCase, log logger.ZapLogger) sale.UseCase {
	return &saleUseCase{repo: repo, stockUC: stockUC, logger: log}
}

func (uc *saleUseCase) RegisterSale(ctx context.Context, input *dto.RegisterSaleInput) (*dto.SaleResult, error) {
	companyID := auth.CompanyID(ctx)
	if companyID == "" {
		return nil, auth.ErrNoCompany
	}

	s := &model.Sale{
		ID:              uuid.New().String(),
		CompanyID:       companyID,
		Subtotal:        input.Subtotal,
		DiscountPercent: input.DiscountPercent,
		Total:           input.Total,
		PaymentMethod:   input.PaymentMethod,
		CashReceived:    input.CashReceived,
		CustomerName:    input.CustomerName,
		CreatedAt:       time.Now(),
	}

	if s.PaymentMethod == model.PaymentCash && s.CashReceived != nil {
		change := *s.CashReceived - s.Total
		s.ChangeDue = &change
	}

	for _, line := range input.Items {
		snap, err := uc.repo.ResolveLine(ctx, companyID, line.VariantID)
		if err != nil {
			return nil, fmt.Errorf("resolve sale line: %w", err)
		}
		if snap == nil {
			return nil, fmt.Errorf("%w: %s", ErrUnknownVariant, line.VariantID)
		}
		s.Items = append(s.Items, model.SaleItem{
			ID:           uuid.New().String(),
			SaleID:       s.ID,
			ProductID:    line.ProductID,
			VariantID:    line.VariantID,
			ProductName:  snap.ProductName,
			VariantLabel: snap.Label(),
			SKU:          snap.SKU,
			Quantity:     line.Quantity,
			UnitPrice:    line.UnitPrice,
		})
	}

	if err := uc.repo.Create(ctx, s); err != nil {
		return nil, fmt.Errorf("persist sale: %w", err)
	}
	metrics.SalesRegistered.WithLabelValues(string(s.PaymentMethod)).Inc()

	result := &dto.SaleResult{Sale: s}
	movement, err := uc.stockUC.ApplyMovement(ctx, uc.movementFor(s))
	if err != nil {
		// The sale is already committed. Stock drift gets corrected by a
		// manual ADJUST, so log and move on.
		uc.logger.Error("stock batch for sale failed",
			zap.String("saleID", s.ID), zap.Error(err))
		return result, nil
	}
	result.Movement = movement
	return result, nil
}

func (uc *saleUseCase) movementFor(s *model.Sale) *stockdto.ApplyMovementInput {
	reason := fmt.Sprintf("Venda #%s", shortID(s.ID))
	if s.CustomerName != nil && *s.CustomerName != "" {
		reason += " - " + *s.CustomerName
	}

	items := make([]stockdto.MovementItem, 0, len(s.Items))
	for _, it := range s.Items {
		items = append(items, stockdto.MovementItem{
			ProductID: it.ProductID,
			VariantID: it.VariantID,
			Quantity:  it.Quantity,
		})
	}
	return &stockdto.ApplyMovementInput{
		Type:   model.MovementOut,
		Reason: reason,
		Items:  items,
	}
}

func (uc *saleUseCase) GetSale(ctx context.Context, id string) (*model.Sale, error) {
	companyID := auth.CompanyID(ctx)
	if companyID == "" {
		return nil, auth.ErrNoCompany
	}
	return uc.repo.FindByID(ctx, companyID, id)
}

func (uc *saleUseCase) ListSales(ctx context.Context, filters *dto.SaleFilters) ([]model.Sale, int, error) {
	companyID := auth.CompanyID(ctx)
	if companyID == "" {
		return nil, 0, auth.ErrNoCompany
	}
	filters.CompanyID = companyID
	if filters.Page < 1 {
		filters.Page = 1
	}
	if filters.PageSize < 1 || filters.PageSize > 100 {
		filters.PageSize = 20
	}
	return uc.repo.FindAll(ctx, filters)
}

func shortID(id string) string {
	if len(id) <= 6 {
		return id
	}
	return id[len(id)-6:]
}
