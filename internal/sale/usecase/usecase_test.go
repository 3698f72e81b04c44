package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/micaelrauan/stokk-backend/internal/auth"
	"github.com/micaelrauan/stokk-backend/internal/model"
	"github.com/micaelrauan/stokk-backend/internal/sale/dto"
	stockdto "github.com/micaelrauan/stokk-backend/internal/stock/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testCompany = "11111111-1111-1111-1111-111111111111"

type fakeRepo struct {
	lines      map[string]*dto.LineSnapshot
	created    []*model.Sale
	failCreate bool
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{lines: make(map[string]*dto.LineSnapshot)}
}

func (r *fakeRepo) Create(_ context.Context, s *model.Sale) error {
	if r.failCreate {
		return errors.New("insert failed")
	}
	r.created = append(r.created, s)
	return nil
}

func (r *fakeRepo) FindByID(_ context.Context, _, id string) (*model.Sale, error) {
	for _, s := range r.created {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, nil
}

func (r *fakeRepo) FindAll(_ context.Context, _ *dto.SaleFilters) ([]model.Sale, int, error) {
	out := make([]model.Sale, 0, len(r.created))
	for _, s := range r.created {
		out = append(out, *s)
	}
	return out, len(out), nil
}

func (r *fakeRepo) ResolveLine(_ context.Context, _, variantID string) (*dto.LineSnapshot, error) {
	return r.lines[variantID], nil
}

type fakeStockUC struct {
	inputs  []*stockdto.ApplyMovementInput
	failAll bool
}

func (s *fakeStockUC) ApplyMovement(_ context.Context, input *stockdto.ApplyMovementInput) (*stockdto.MovementResult, error) {
	if s.failAll {
		return nil, errors.New("stock engine down")
	}
	s.inputs = append(s.inputs, input)
	result := &stockdto.MovementResult{}
	for _, item := range input.Items {
		result.Applied = append(result.Applied, stockdto.AppliedItem{
			ProductID: item.ProductID,
			VariantID: item.VariantID,
		})
	}
	return result, nil
}

func (s *fakeStockUC) SetStock(_ context.Context, _ *stockdto.SetStockInput) (*stockdto.AppliedItem, error) {
	return nil, nil
}

func (s *fakeStockUC) ListLogs(_ context.Context, _ *stockdto.LogFilters) ([]model.InventoryLog, int, error) {
	return nil, 0, nil
}

type noopLogger struct{}

func (noopLogger) Debug(_ string, _ ...zap.Field) {}
func (noopLogger) Info(_ string, _ ...zap.Field)  {}
func (noopLogger) Warn(_ string, _ ...zap.Field)  {}
func (noopLogger) Error(_ string, _ ...zap.Field) {}
func (noopLogger) Fatal(_ string, _ ...zap.Field) {}
func (noopLogger) Sync() error                    { return nil }

func tenantCtx() context.Context {
	return auth.WithCompanyID(context.Background(), testCompany)
}

func validInput() *dto.RegisterSaleInput {
	return &dto.RegisterSaleInput{
		Items: []dto.SaleLineInput{
			{ProductID: "p1", VariantID: "v1", Quantity: 2, UnitPrice: 49.90},
		},
		Subtotal:      99.80,
		Total:         99.80,
		PaymentMethod: model.PaymentCard,
	}
}

func TestRegisterSale_PersistsAndMovesStock(t *testing.T) {
	repo := newFakeRepo()
	repo.lines["v1"] = &dto.LineSnapshot{ProductName: "Camiseta Basica", Size: "M", Color: "Azul", SKU: "CAM-AZU-M"}
	stockUC := &fakeStockUC{}
	uc := NewSaleUseCase(repo, stockUC, noopLogger{})

	result, err := uc.RegisterSale(tenantCtx(), validInput())
	require.NoError(t, err)
	require.Len(t, repo.created, 1)

	s := result.Sale
	assert.Equal(t, testCompany, s.CompanyID)
	assert.Equal(t, 99.80, s.Total)
	require.Len(t, s.Items, 1)
	assert.Equal(t, "Camiseta Basica", s.Items[0].ProductName)
	assert.Equal(t, "M/Azul", s.Items[0].VariantLabel)
	assert.Equal(t, "CAM-AZU-M", s.Items[0].SKU)
	assert.Equal(t, 49.90, s.Items[0].UnitPrice)

	require.Len(t, stockUC.inputs, 1)
	batch := stockUC.inputs[0]
	assert.Equal(t, model.MovementOut, batch.Type)
	assert.Equal(t, "Venda #"+s.ID[len(s.ID)-6:], batch.Reason)
	require.Len(t, batch.Items, 1)
	assert.Equal(t, "v1", batch.Items[0].VariantID)
	assert.Equal(t, 2, batch.Items[0].Quantity)
	require.NotNil(t, result.Movement)
}

func TestRegisterSale_ReasonIncludesCustomer(t *testing.T) {
	repo := newFakeRepo()
	repo.lines["v1"] = &dto.LineSnapshot{ProductName: "Camiseta", Size: "M", Color: "Azul", SKU: "CAM-AZU-M"}
	stockUC := &fakeStockUC{}
	uc := NewSaleUseCase(repo, stockUC, noopLogger{})

	input := validInput()
	customer := "Maria"
	input.CustomerName = &customer

	result, err := uc.RegisterSale(tenantCtx(), input)
	require.NoError(t, err)

	require.Len(t, stockUC.inputs, 1)
	assert.Equal(t, "Venda #"+result.Sale.ID[len(result.Sale.ID)-6:]+" - Maria", stockUC.inputs[0].Reason)
}

func TestRegisterSale_CashChange(t *testing.T) {
	repo := newFakeRepo()
	repo.lines["v1"] = &dto.LineSnapshot{ProductName: "Camiseta", Size: "M", Color: "Azul", SKU: "CAM-AZU-M"}
	uc := NewSaleUseCase(repo, &fakeStockUC{}, noopLogger{})

	input := validInput()
	input.PaymentMethod = model.PaymentCash
	received := 100.0
	input.CashReceived = &received

	result, err := uc.RegisterSale(tenantCtx(), input)
	require.NoError(t, err)

	require.NotNil(t, result.Sale.ChangeDue)
	assert.InDelta(t, 0.20, *result.Sale.ChangeDue, 1e-9)
}

func TestRegisterSale_StockFailureKeepsSale(t *testing.T) {
	repo := newFakeRepo()
	repo.lines["v1"] = &dto.LineSnapshot{ProductName: "Camiseta", Size: "M", Color: "Azul", SKU: "CAM-AZU-M"}
	uc := NewSaleUseCase(repo, &fakeStockUC{failAll: true}, noopLogger{})

	result, err := uc.RegisterSale(tenantCtx(), validInput())
	require.NoError(t, err)

	assert.Len(t, repo.created, 1)
	assert.Nil(t, result.Movement)
}

func TestRegisterSale_PersistFailureSkipsStock(t *testing.T) {
	repo := newFakeRepo()
	repo.lines["v1"] = &dto.LineSnapshot{ProductName: "Camiseta", Size: "M", Color: "Azul", SKU: "CAM-AZU-M"}
	repo.failCreate = true
	stockUC := &fakeStockUC{}
	uc := NewSaleUseCase(repo, stockUC, noopLogger{})

	_, err := uc.RegisterSale(tenantCtx(), validInput())
	assert.Error(t, err)
	assert.Empty(t, stockUC.inputs)
}

func TestRegisterSale_UnknownVariant(t *testing.T) {
	repo := newFakeRepo()
	uc := NewSaleUseCase(repo, &fakeStockUC{}, noopLogger{})

	_, err := uc.RegisterSale(tenantCtx(), validInput())
	assert.ErrorIs(t, err, ErrUnknownVariant)
	assert.Empty(t, repo.created)
}

func TestRegisterSale_RequiresCompany(t *testing.T) {
	uc := NewSaleUseCase(newFakeRepo(), &fakeStockUC{}, noopLogger{})

	_, err := uc.RegisterSale(context.Background(), validInput())
	assert.ErrorIs(t, err, auth.ErrNoCompany)
}

func TestShortID(t *testing.T) {
	assert.Equal(t, "abc123", shortID("9f1e8d7c-abc123"))
	assert.Equal(t, "ab", shortID("ab"))
}
