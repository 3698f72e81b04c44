package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/micaelrauan/stokk-backend/internal/alert"
	"github.com/micaelrauan/stokk-backend/internal/auth"
	"github.com/micaelrauan/stokk-backend/internal/model"
	"github.com/micaelrauan/stokk-backend/internal/pkg/logger"
	"github.com/micaelrauan/stokk-backend/internal/pkg/metrics"
	"github.com/micaelrauan/stokk-backend/internal/stock"
	"github.com/micaelrauan/stokk-backend/internal/stock/dto"
	"go.uber.org/zap"
)

const lockTTL = 5 * time.Second

type stockUseCase struct {
	repo      stock.Repository
	alertRepo alert.Repository
	cache     stock.Cache
	logger    logger.ZapLogger
}

func NewStockUseCase(repo stock.Repository, alertRepo alert.Repository, cache stock.Cache, log logger.ZapLogger) stock.UseCase {
	return &stockUseCase{
		repo:      repo,
		alertRepo: alertRepo,
		cache:     cache,
		logger:    log,
	}
}

func (uc *stockUseCase) ApplyMovement(ctx context.Context, input *dto.ApplyMovementInput) (*dto.MovementResult, error) {
	companyID := auth.CompanyID(ctx)
	if companyID == "" {
		return nil, auth.ErrNoCompany
	}
	if !input.Type.Valid() {
		return nil, fmt.Errorf("invalid movement type %q", input.Type)
	}

	result := &dto.MovementResult{}

	// Items are processed sequentially. A failure on one item does not halt
	// the batch; each item either lands in Applied, Skipped or Failed.
	for _, item := range input.Items {
		applied, err := uc.applyItem(ctx, companyID, input.Type, input.Reason, item)
		if err != nil {
			uc.logger.Error("failed to apply stock movement item",
				zap.String("company_id", companyID),
				zap.String("variant_id", item.VariantID),
				zap.String("type", string(input.Type)),
				zap.Error(err),
			)
			result.Failed = append(result.Failed, item.VariantID)
			continue
		}
		if applied == nil {
			result.Skipped = append(result.Skipped, item.VariantID)
			metrics.StockItemsSkipped.Inc()
			continue
		}
		result.Applied = append(result.Applied, *applied)
		metrics.StockMovementsApplied.WithLabelValues(string(input.Type)).Inc()
	}

	uc.invalidateDerivedCaches(ctx, companyID)

	return result, nil
}

// applyItem mutates one variant under its lock. Returns nil, nil when the
// variant does not resolve for the tenant.
func (uc *stockUseCase) applyItem(ctx context.Context, companyID string, movementType model.MovementType, reason string, item dto.MovementItem) (*dto.AppliedItem, error) {
	lockKey := fmt.Sprintf("lock:stock:%s:%s", companyID, item.VariantID)
	lockValue := uuid.New().String()

	acquired := false
	for i := 0; i < 3; i++ {
		ok, err := uc.cache.AcquireLock(ctx, lockKey, lockValue, lockTTL)
		if err != nil {
			uc.logger.Error("failed to acquire stock lock", zap.String("key", lockKey), zap.Error(err))
		}
		if ok {
			acquired = true
			break
		}
		time.Sleep(100 * time.Millisecond)
	}
	if !acquired {
		return nil, fmt.Errorf("variant %s is locked by another operation", item.VariantID)
	}
	defer uc.cache.ReleaseLock(ctx, lockKey, lockValue)

	state, err := uc.repo.GetVariantState(ctx, companyID, item.VariantID)
	if err != nil {
		return nil, err
	}
	if state == nil {
		return nil, nil
	}

	newStock, logged := computeMovement(movementType, state.CurrentStock, item.Quantity)

	now := time.Now()
	entry := &model.InventoryLog{
		ID:           uuid.New().String(),
		CompanyID:    companyID,
		ProductID:    state.ProductID,
		VariantID:    state.VariantID,
		ProductName:  state.ProductName,
		VariantLabel: state.Label(),
		MovementType: movementType,
		Quantity:     logged,
		Reason:       reason,
		CreatedAt:    now,
	}

	if err := uc.repo.ApplyChange(ctx, companyID, state.VariantID, newStock, entry); err != nil {
		return nil, err
	}

	// Alert insertion is best-effort: the stock change above is already
	// committed and is not rolled back if this fails.
	alertType := uc.evaluateAlert(ctx, companyID, state, newStock)

	return &dto.AppliedItem{
		ProductID:     state.ProductID,
		VariantID:     state.VariantID,
		PreviousStock: state.CurrentStock,
		NewStock:      newStock,
		AlertType:     alertType,
	}, nil
}

// computeMovement returns the clamped stock level and the signed quantity to
// log. OUT logs the negated quantity, IN and ADJUST the literal value, even
// when the resulting level was clamped at zero.
func computeMovement(movementType model.MovementType, currentStock, quantity int) (newStock, logged int) {
	switch movementType {
	case model.MovementIn:
		return currentStock + quantity, quantity
	case model.MovementOut:
		newStock = currentStock - quantity
		if newStock < 0 {
			newStock = 0
		}
		return newStock, -quantity
	case model.MovementAdjust:
		newStock = currentStock + quantity
		if newStock < 0 {
			newStock = 0
		}
		return newStock, quantity
	}
	return currentStock, 0
}

// evaluateAlert inserts an alert when the new level breaches the product
// threshold. Zero wins over low stock; at the threshold no alert is raised.
func (uc *stockUseCase) evaluateAlert(ctx context.Context, companyID string, state *dto.VariantState, newStock int) model.AlertType {
	var alertType model.AlertType
	var message string

	switch {
	case newStock == 0:
		alertType = model.AlertOutOfStock
		message = fmt.Sprintf("Estoque esgotado: %s (%s)", state.ProductName, state.Label())
	case newStock < state.MinStock:
		alertType = model.AlertLowStock
		message = fmt.Sprintf("Estoque baixo: %s (%s) com %d unidades", state.ProductName, state.Label(), newStock)
	default:
		return ""
	}

	a := &model.Alert{
		ID:          uuid.New().String(),
		CompanyID:   companyID,
		Type:        alertType,
		Message:     message,
		ProductID:   state.ProductID,
		ProductName: state.ProductName,
		Read:        false,
		CreatedAt:   time.Now(),
	}

	if err := uc.alertRepo.Create(ctx, a); err != nil {
		uc.logger.Warn("failed to insert stock alert",
			zap.String("company_id", companyID),
			zap.String("product_id", state.ProductID),
			zap.String("type", string(alertType)),
			zap.Error(err),
		)
		return alertType
	}

	metrics.AlertsRaised.WithLabelValues(string(alertType)).Inc()
	return alertType
}

func (uc *stockUseCase) SetStock(ctx context.Context, input *dto.SetStockInput) (*dto.AppliedItem, error) {
	companyID := auth.CompanyID(ctx)
	if companyID == "" {
		return nil, auth.ErrNoCompany
	}

	lockKey := fmt.Sprintf("lock:stock:%s:%s", companyID, input.VariantID)
	lockValue := uuid.New().String()
	ok, err := uc.cache.AcquireLock(ctx, lockKey, lockValue, lockTTL)
	if err != nil {
		uc.logger.Error("failed to acquire stock lock", zap.String("key", lockKey), zap.Error(err))
	}
	if !ok {
		return nil, fmt.Errorf("variant %s is locked by another operation", input.VariantID)
	}
	defer uc.cache.ReleaseLock(ctx, lockKey, lockValue)

	state, err := uc.repo.GetVariantState(ctx, companyID, input.VariantID)
	if err != nil {
		return nil, err
	}
	if state == nil {
		return nil, nil
	}

	if err := uc.repo.SetStock(ctx, companyID, input.VariantID, input.Quantity); err != nil {
		return nil, err
	}

	alertType := uc.evaluateAlert(ctx, companyID, state, input.Quantity)
	uc.invalidateDerivedCaches(ctx, companyID)

	return &dto.AppliedItem{
		ProductID:     state.ProductID,
		VariantID:     state.VariantID,
		PreviousStock: state.CurrentStock,
		NewStock:      input.Quantity,
		AlertType:     alertType,
	}, nil
}

func (uc *stockUseCase) ListLogs(ctx context.Context, filters *dto.LogFilters) ([]model.InventoryLog, int, error) {
	if filters.CompanyID == "" {
		filters.CompanyID = auth.CompanyID(ctx)
	}
	return uc.repo.ListLogs(ctx, filters)
}

// invalidateDerivedCaches drops the tenant's dashboard summary and product
// list caches so the next read reflects this mutation.
func (uc *stockUseCase) invalidateDerivedCaches(ctx context.Context, companyID string) {
	if err := uc.cache.Delete(ctx, fmt.Sprintf("dashboard:summary:%s", companyID)); err != nil {
		uc.logger.Warn("failed to invalidate dashboard cache", zap.Error(err))
	}
	if err := uc.cache.DeleteByPattern(ctx, fmt.Sprintf("products:list:%s:*", companyID)); err != nil {
		uc.logger.Warn("failed to invalidate product list cache", zap.Error(err))
	}
}
