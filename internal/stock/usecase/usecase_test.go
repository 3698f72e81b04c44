package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	alertdto "github.com/micaelrauan/stokk-backend/internal/alert/dto"
	"github.com/micaelrauan/stokk-backend/internal/auth"
	"github.com/micaelrauan/stokk-backend/internal/model"
	"github.com/micaelrauan/stokk-backend/internal/stock/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testCompany = "11111111-1111-1111-1111-111111111111"

type fakeRepo struct {
	states map[string]*dto.VariantState
	logs   []model.InventoryLog
	failOn map[string]bool
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		states: make(map[string]*dto.VariantState),
		failOn: make(map[string]bool),
	}
}

func (r *fakeRepo) addVariant(variantID string, currentStock, minStock int) {
	r.states[variantID] = &dto.VariantState{
		ProductID:    "prod-" + variantID,
		VariantID:    variantID,
		ProductName:  "Camiseta Basica",
		Size:         "M",
		Color:        "Azul",
		MinStock:     minStock,
		CurrentStock: currentStock,
	}
}

func (r *fakeRepo) GetVariantState(_ context.Context, _, variantID string) (*dto.VariantState, error) {
	state, ok := r.states[variantID]
	if !ok {
		return nil, nil
	}
	copied := *state
	return &copied, nil
}

func (r *fakeRepo) ApplyChange(_ context.Context, _, variantID string, newStock int, entry *model.InventoryLog) error {
	if r.failOn[variantID] {
		return errors.New("write failed")
	}
	r.states[variantID].CurrentStock = newStock
	r.logs = append(r.logs, *entry)
	return nil
}

func (r *fakeRepo) SetStock(_ context.Context, _, variantID string, quantity int) error {
	if r.failOn[variantID] {
		return errors.New("write failed")
	}
	r.states[variantID].CurrentStock = quantity
	return nil
}

func (r *fakeRepo) ListLogs(_ context.Context, _ *dto.LogFilters) ([]model.InventoryLog, int, error) {
	return r.logs, len(r.logs), nil
}

type fakeAlertRepo struct {
	created []model.Alert
}

func (r *fakeAlertRepo) Create(_ context.Context, a *model.Alert) error {
	r.created = append(r.created, *a)
	return nil
}

func (r *fakeAlertRepo) FindAll(_ context.Context, _ *alertdto.AlertFilters) ([]model.Alert, int, error) {
	return r.created, len(r.created), nil
}

func (r *fakeAlertRepo) MarkRead(_ context.Context, _, _ string) error   { return nil }
func (r *fakeAlertRepo) MarkAllRead(_ context.Context, _ string) error   { return nil }
func (r *fakeAlertRepo) CountUnread(_ context.Context, _ string) (int, error) {
	return len(r.created), nil
}

type noopCache struct{}

func (noopCache) AcquireLock(_ context.Context, _, _ string, _ time.Duration) (bool, error) {
	return true, nil
}
func (noopCache) ReleaseLock(_ context.Context, _, _ string) error  { return nil }
func (noopCache) Delete(_ context.Context, _ ...string) error       { return nil }
func (noopCache) DeleteByPattern(_ context.Context, _ string) error { return nil }

type noopLogger struct{}

func (noopLogger) Debug(_ string, _ ...zap.Field) {}
func (noopLogger) Info(_ string, _ ...zap.Field)  {}
func (noopLogger) Warn(_ string, _ ...zap.Field)  {}
func (noopLogger) Error(_ string, _ ...zap.Field) {}
func (noopLogger) Fatal(_ string, _ ...zap.Field) {}
func (noopLogger) Sync() error                    { return nil }

func newTestUseCase(repo *fakeRepo, alerts *fakeAlertRepo) *stockUseCase {
	return &stockUseCase{
		repo:      repo,
		alertRepo: alerts,
		cache:     noopCache{},
		logger:    noopLogger{},
	}
}

func tenantCtx() context.Context {
	return auth.WithCompanyID(context.Background(), testCompany)
}

func TestApplyMovement_InAddsStock(t *testing.T) {
	repo := newFakeRepo()
	repo.addVariant("v1", 10, 3)
	uc := newTestUseCase(repo, &fakeAlertRepo{})

	result, err := uc.ApplyMovement(tenantCtx(), &dto.ApplyMovementInput{
		Type:   model.MovementIn,
		Reason: "Reposicao",
		Items:  []dto.MovementItem{{ProductID: "p1", VariantID: "v1", Quantity: 5}},
	})
	require.NoError(t, err)
	require.Len(t, result.Applied, 1)

	assert.Equal(t, 10, result.Applied[0].PreviousStock)
	assert.Equal(t, 15, result.Applied[0].NewStock)
	require.Len(t, repo.logs, 1)
	assert.Equal(t, 5, repo.logs[0].Quantity)
	assert.Equal(t, model.MovementIn, repo.logs[0].MovementType)
	assert.Equal(t, "Reposicao", repo.logs[0].Reason)
}

func TestApplyMovement_OutClampsAtZero(t *testing.T) {
	repo := newFakeRepo()
	repo.addVariant("v1", 3, 0)
	uc := newTestUseCase(repo, &fakeAlertRepo{})

	result, err := uc.ApplyMovement(tenantCtx(), &dto.ApplyMovementInput{
		Type:   model.MovementOut,
		Reason: "Perda",
		Items:  []dto.MovementItem{{ProductID: "p1", VariantID: "v1", Quantity: 10}},
	})
	require.NoError(t, err)
	require.Len(t, result.Applied, 1)

	assert.Equal(t, 0, result.Applied[0].NewStock)
	// The log keeps the requested quantity even though the level was clamped.
	require.Len(t, repo.logs, 1)
	assert.Equal(t, -10, repo.logs[0].Quantity)
}

func TestApplyMovement_AdjustNegativeClamps(t *testing.T) {
	repo := newFakeRepo()
	repo.addVariant("v1", 4, 0)
	uc := newTestUseCase(repo, &fakeAlertRepo{})

	result, err := uc.ApplyMovement(tenantCtx(), &dto.ApplyMovementInput{
		Type:   model.MovementAdjust,
		Reason: "Correcao de inventario",
		Items:  []dto.MovementItem{{ProductID: "p1", VariantID: "v1", Quantity: -7}},
	})
	require.NoError(t, err)
	require.Len(t, result.Applied, 1)

	assert.Equal(t, 0, result.Applied[0].NewStock)
	require.Len(t, repo.logs, 1)
	assert.Equal(t, -7, repo.logs[0].Quantity)
	assert.Equal(t, model.MovementAdjust, repo.logs[0].MovementType)
}

func TestApplyMovement_OneLogPerItem(t *testing.T) {
	repo := newFakeRepo()
	repo.addVariant("v1", 10, 0)
	repo.addVariant("v2", 20, 0)
	uc := newTestUseCase(repo, &fakeAlertRepo{})

	result, err := uc.ApplyMovement(tenantCtx(), &dto.ApplyMovementInput{
		Type:   model.MovementOut,
		Reason: "Venda #abc123",
		Items: []dto.MovementItem{
			{ProductID: "p1", VariantID: "v1", Quantity: 2},
			{ProductID: "p2", VariantID: "v2", Quantity: 3},
		},
	})
	require.NoError(t, err)
	assert.Len(t, result.Applied, 2)
	assert.Len(t, repo.logs, 2)
	assert.Equal(t, 8, repo.states["v1"].CurrentStock)
	assert.Equal(t, 17, repo.states["v2"].CurrentStock)
}

func TestApplyMovement_UnknownVariantSkipped(t *testing.T) {
	repo := newFakeRepo()
	repo.addVariant("v1", 10, 0)
	uc := newTestUseCase(repo, &fakeAlertRepo{})

	result, err := uc.ApplyMovement(tenantCtx(), &dto.ApplyMovementInput{
		Type:   model.MovementIn,
		Reason: "Reposicao",
		Items: []dto.MovementItem{
			{ProductID: "p1", VariantID: "v1", Quantity: 1},
			{ProductID: "px", VariantID: "missing", Quantity: 1},
		},
	})
	require.NoError(t, err)
	assert.Len(t, result.Applied, 1)
	assert.Equal(t, []string{"missing"}, result.Skipped)
	assert.Empty(t, result.Failed)
}

func TestApplyMovement_WriteFailureReported(t *testing.T) {
	repo := newFakeRepo()
	repo.addVariant("v1", 10, 0)
	repo.addVariant("v2", 10, 0)
	repo.failOn["v2"] = true
	uc := newTestUseCase(repo, &fakeAlertRepo{})

	result, err := uc.ApplyMovement(tenantCtx(), &dto.ApplyMovementInput{
		Type:   model.MovementOut,
		Reason: "Venda #abc123",
		Items: []dto.MovementItem{
			{ProductID: "p1", VariantID: "v1", Quantity: 1},
			{ProductID: "p2", VariantID: "v2", Quantity: 1},
		},
	})
	require.NoError(t, err)
	assert.Len(t, result.Applied, 1)
	assert.Equal(t, []string{"v2"}, result.Failed)
	// The failed item leaves no log behind.
	assert.Len(t, repo.logs, 1)
}

func TestApplyMovement_RequiresCompany(t *testing.T) {
	uc := newTestUseCase(newFakeRepo(), &fakeAlertRepo{})

	_, err := uc.ApplyMovement(context.Background(), &dto.ApplyMovementInput{
		Type:   model.MovementIn,
		Reason: "Reposicao",
		Items:  []dto.MovementItem{{ProductID: "p1", VariantID: "v1", Quantity: 1}},
	})
	assert.ErrorIs(t, err, auth.ErrNoCompany)
}

func TestApplyMovement_InvalidType(t *testing.T) {
	uc := newTestUseCase(newFakeRepo(), &fakeAlertRepo{})

	_, err := uc.ApplyMovement(tenantCtx(), &dto.ApplyMovementInput{
		Type:   "TRANSFER",
		Reason: "x",
		Items:  []dto.MovementItem{{ProductID: "p1", VariantID: "v1", Quantity: 1}},
	})
	assert.Error(t, err)
}

func TestAlertThresholds(t *testing.T) {
	tests := []struct {
		name     string
		start    int
		minStock int
		out      int
		wantType model.AlertType
	}{
		{"at threshold no alert", 10, 5, 5, ""},
		{"below threshold low stock", 10, 5, 6, model.AlertLowStock},
		{"zero beats low stock", 10, 5, 10, model.AlertOutOfStock},
		{"no threshold no low alert", 10, 0, 7, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeRepo()
			repo.addVariant("v1", tt.start, tt.minStock)
			alerts := &fakeAlertRepo{}
			uc := newTestUseCase(repo, alerts)

			result, err := uc.ApplyMovement(tenantCtx(), &dto.ApplyMovementInput{
				Type:   model.MovementOut,
				Reason: "Venda #abc123",
				Items:  []dto.MovementItem{{ProductID: "p1", VariantID: "v1", Quantity: tt.out}},
			})
			require.NoError(t, err)
			require.Len(t, result.Applied, 1)
			assert.Equal(t, tt.wantType, result.Applied[0].AlertType)

			if tt.wantType == "" {
				assert.Empty(t, alerts.created)
			} else {
				require.Len(t, alerts.created, 1)
				assert.Equal(t, tt.wantType, alerts.created[0].Type)
				assert.False(t, alerts.created[0].Read)
			}
		})
	}
}

func TestAlertMessages(t *testing.T) {
	repo := newFakeRepo()
	repo.addVariant("v1", 10, 5)
	alerts := &fakeAlertRepo{}
	uc := newTestUseCase(repo, alerts)

	_, err := uc.ApplyMovement(tenantCtx(), &dto.ApplyMovementInput{
		Type:   model.MovementOut,
		Reason: "Venda #abc123",
		Items:  []dto.MovementItem{{ProductID: "p1", VariantID: "v1", Quantity: 7}},
	})
	require.NoError(t, err)
	require.Len(t, alerts.created, 1)
	assert.Equal(t, "Estoque baixo: Camiseta Basica (M/Azul) com 3 unidades", alerts.created[0].Message)

	_, err = uc.ApplyMovement(tenantCtx(), &dto.ApplyMovementInput{
		Type:   model.MovementOut,
		Reason: "Venda #abc124",
		Items:  []dto.MovementItem{{ProductID: "p1", VariantID: "v1", Quantity: 3}},
	})
	require.NoError(t, err)
	require.Len(t, alerts.created, 2)
	assert.Equal(t, "Estoque esgotado: Camiseta Basica (M/Azul)", alerts.created[1].Message)
}

func TestSetStock_NoLogEntry(t *testing.T) {
	repo := newFakeRepo()
	repo.addVariant("v1", 10, 5)
	alerts := &fakeAlertRepo{}
	uc := newTestUseCase(repo, alerts)

	applied, err := uc.SetStock(tenantCtx(), &dto.SetStockInput{
		ProductID: "p1",
		VariantID: "v1",
		Quantity:  2,
	})
	require.NoError(t, err)
	require.NotNil(t, applied)

	assert.Equal(t, 10, applied.PreviousStock)
	assert.Equal(t, 2, applied.NewStock)
	assert.Equal(t, 2, repo.states["v1"].CurrentStock)
	assert.Empty(t, repo.logs)
	// Alert evaluation still runs on direct writes.
	require.Len(t, alerts.created, 1)
	assert.Equal(t, model.AlertLowStock, alerts.created[0].Type)
}

func TestSetStock_UnknownVariant(t *testing.T) {
	uc := newTestUseCase(newFakeRepo(), &fakeAlertRepo{})

	applied, err := uc.SetStock(tenantCtx(), &dto.SetStockInput{
		ProductID: "p1",
		VariantID: "missing",
		Quantity:  2,
	})
	require.NoError(t, err)
	assert.Nil(t, applied)
}

func TestComputeMovement(t *testing.T) {
	tests := []struct {
		name       string
		mtype      model.MovementType
		current    int
		quantity   int
		wantStock  int
		wantLogged int
	}{
		{"in adds", model.MovementIn, 3, 4, 7, 4},
		{"out subtracts", model.MovementOut, 10, 4, 6, -4},
		{"out clamps", model.MovementOut, 2, 9, 0, -9},
		{"out exact zero", model.MovementOut, 5, 5, 0, -5},
		{"adjust positive", model.MovementAdjust, 3, 2, 5, 2},
		{"adjust negative", model.MovementAdjust, 5, -3, 2, -3},
		{"adjust clamps", model.MovementAdjust, 2, -8, 0, -8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			newStock, logged := computeMovement(tt.mtype, tt.current, tt.quantity)
			assert.Equal(t, tt.wantStock, newStock)
			assert.Equal(t, tt.wantLogged, logged)
		})
	}
}
