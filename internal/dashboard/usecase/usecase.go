package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/micaelrauan/stokk-backend/internal/auth"
	"github.com/micaelrauan/stokk-backend/internal/dashboard"
	"github.com/micaelrauan/stokk-backend/internal/pkg/cache"
	"github.com/micaelrauan/stokk-backend/internal/pkg/logger"
	"go.uber.org/zap"
)

// summaryTTL keeps repeated dashboard polls off the database. Stock and sale
// mutations delete the key early, so the numbers stay fresh after a change.
const summaryTTL = 15 * time.Second

type dashboardUseCase struct {
	repo   dashboard.Repository
	cache  *cache.RedisClient
	logger logger.ZapLogger
}

func NewDashboardUseCase(repo dashboard.Repository, cache *cache.RedisClient, log logger.ZapLogger) dashboard.UseCase {
	return &dashboardUseCase{repo: repo, cache: cache, logger: log}
}

func (uc *dashboardUseCase) GetSummary(ctx context.Context) (*dashboard.Summary, error) {
	companyID := auth.CompanyID(ctx)
	if companyID == "" {
		return nil, auth.ErrNoCompany
	}

	cacheKey := fmt.Sprintf("dashboard:summary:%s", companyID)
	if val, err := uc.cache.Client.Get(ctx, cacheKey).Result(); err == nil {
		var cached dashboard.Summary
		if err := json.Unmarshal([]byte(val), &cached); err == nil {
			return &cached, nil
		}
	}

	now := time.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	snap, err := uc.repo.LoadSnapshot(ctx, companyID, dayStart)
	if err != nil {
		return nil, err
	}
	summary := dashboard.ComputeSummary(snap)

	if data, err := json.Marshal(summary); err == nil {
		if err := uc.cache.Client.Set(ctx, cacheKey, data, summaryTTL).Err(); err != nil {
			uc.logger.Warn("failed to cache dashboard summary", zap.Error(err))
		}
	}
	return summary, nil
}
