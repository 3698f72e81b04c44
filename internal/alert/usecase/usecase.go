package usecase

import (
	"context"

	"github.com/micaelrauan/stokk-backend/internal/alert"
	"github.com/micaelrauan/stokk-backend/internal/alert/dto"
	"github.com/micaelrauan/stokk-backend/internal/auth"
	"github.com/micaelrauan/stokk-backend/internal/model"
	"github.com/micaelrauan/stokk-backend/internal/pkg/logger"
)

type alertUseCase struct {
	repo   alert.Repository
	logger logger.ZapLogger
}

func NewAlertUseCase(repo alert.Repository, log logger.ZapLogger) alert.UseCase {
	return &alertUseCase{repo: repo, logger: log}
}

func (uc *alertUseCase) ListAlerts(ctx context.Context, unreadOnly bool, page, pageSize int) ([]model.Alert, int, error) {
	return uc.repo.FindAll(ctx, &dto.AlertFilters{
		CompanyID:  auth.CompanyID(ctx),
		UnreadOnly: unreadOnly,
		Page:       page,
		PageSize:   pageSize,
	})
}

func (uc *alertUseCase) MarkRead(ctx context.Context, id string) error {
	companyID := auth.CompanyID(ctx)
	if companyID == "" {
		return auth.ErrNoCompany
	}
	return uc.repo.MarkRead(ctx, companyID, id)
}

func (uc *alertUseCase) MarkAllRead(ctx context.Context) error {
	companyID := auth.CompanyID(ctx)
	if companyID == "" {
		return auth.ErrNoCompany
	}
	return uc.repo.MarkAllRead(ctx, companyID)
}

func (uc *alertUseCase) CountUnread(ctx context.Context) (int, error) {
	return uc.repo.CountUnread(ctx, auth.CompanyID(ctx))
}
