package stock

import (
	"context"
	"time"

	"github.com/micaelrauan/stokk-backend/internal/model"
	"github.com/micaelrauan/stokk-backend/internal/stock/dto"
)

type UseCase interface {
	// ApplyMovement applies a typed batch of stock movements, one log entry
	// per resolved item, raising alerts as thresholds are crossed.
	ApplyMovement(ctx context.Context, input *dto.ApplyMovementInput) (*dto.MovementResult, error)

	// SetStock overwrites a variant's stock directly (manual grid edit).
	// No log entry is produced; alert evaluation still runs.
	SetStock(ctx context.Context, input *dto.SetStockInput) (*dto.AppliedItem, error)

	ListLogs(ctx context.Context, filters *dto.LogFilters) ([]model.InventoryLog, int, error)
}

// Cache is the slice of the redis client the engine needs: per-variant locks
// plus invalidation of derived caches after a mutation.
type Cache interface {
	AcquireLock(ctx context.Context, key, value string, ttl time.Duration) (bool, error)
	ReleaseLock(ctx context.Context, key, value string) error
	Delete(ctx context.Context, keys ...string) error
	DeleteByPattern(ctx context.Context, pattern string) error
}
