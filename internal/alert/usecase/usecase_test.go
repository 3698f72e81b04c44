package usecase

import (
	"context"
	"testing"

	"github.com/micaelrauan/stokk-backend/internal/alert/dto"
	"github.com/micaelrauan/stokk-backend/internal/auth"
	"github.com/micaelrauan/stokk-backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testCompany = "11111111-1111-1111-1111-111111111111"

type fakeRepo struct {
	alerts map[string]*model.Alert
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{alerts: make(map[string]*model.Alert)}
}

func (r *fakeRepo) add(id string, read bool) {
	r.alerts[id] = &model.Alert{ID: id, CompanyID: testCompany, Type: model.AlertLowStock, Read: read}
}

func (r *fakeRepo) Create(_ context.Context, a *model.Alert) error {
	r.alerts[a.ID] = a
	return nil
}

func (r *fakeRepo) FindAll(_ context.Context, filters *dto.AlertFilters) ([]model.Alert, int, error) {
	var out []model.Alert
	for _, a := range r.alerts {
		if a.CompanyID != filters.CompanyID {
			continue
		}
		if filters.UnreadOnly && a.Read {
			continue
		}
		out = append(out, *a)
	}
	return out, len(out), nil
}

func (r *fakeRepo) MarkRead(_ context.Context, companyID, id string) error {
	if a, ok := r.alerts[id]; ok && a.CompanyID == companyID {
		a.Read = true
	}
	return nil
}

func (r *fakeRepo) MarkAllRead(_ context.Context, companyID string) error {
	for _, a := range r.alerts {
		if a.CompanyID == companyID {
			a.Read = true
		}
	}
	return nil
}

func (r *fakeRepo) CountUnread(_ context.Context, companyID string) (int, error) {
	count := 0
	for _, a := range r.alerts {
		if a.CompanyID == companyID && !a.Read {
			count++
		}
	}
	return count, nil
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

func TestListAlerts_UnreadOnly(t *testing.T) {
	repo := newFakeRepo()
	repo.add("a1", false)
	repo.add("a2", true)
	uc := NewAlertUseCase(repo, noopLogger{})

	alerts, total, err := uc.ListAlerts(tenantCtx(), true, 1, 50)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, alerts, 1)
	assert.Equal(t, "a1", alerts[0].ID)
}

func TestMarkRead_IsOneWay(t *testing.T) {
	repo := newFakeRepo()
	repo.add("a1", false)
	uc := NewAlertUseCase(repo, noopLogger{})

	require.NoError(t, uc.MarkRead(tenantCtx(), "a1"))
	assert.True(t, repo.alerts["a1"].Read)

	// Marking again keeps it read.
	require.NoError(t, uc.MarkRead(tenantCtx(), "a1"))
	assert.True(t, repo.alerts["a1"].Read)
}

func TestMarkAllRead_Idempotent(t *testing.T) {
	repo := newFakeRepo()
	repo.add("a1", false)
	repo.add("a2", false)
	uc := NewAlertUseCase(repo, noopLogger{})

	require.NoError(t, uc.MarkAllRead(tenantCtx()))
	count, err := uc.CountUnread(tenantCtx())
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	require.NoError(t, uc.MarkAllRead(tenantCtx()))
	count, err = uc.CountUnread(tenantCtx())
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestMarkRead_RequiresCompany(t *testing.T) {
	uc := NewAlertUseCase(newFakeRepo(), noopLogger{})

	assert.ErrorIs(t, uc.MarkRead(context.Background(), "a1"), auth.ErrNoCompany)
	assert.ErrorIs(t, uc.MarkAllRead(context.Background()), auth.ErrNoCompany)
}
