package auth

import (
	"context"
	"errors"
)

// ErrNoCompany is returned by usecases when a write is attempted without a
// tenant in context.
var ErrNoCompany = errors.New("no company in context")

type contextKey string

const (
	companyIDKey contextKey = "company_id"
	userIDKey    contextKey = "user_id"
)

func WithCompanyID(ctx context.Context, companyID string) context.Context {
	return context.WithValue(ctx, companyIDKey, companyID)
}

func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// CompanyID returns the tenant owning the request, or "" when absent.
func CompanyID(ctx context.Context) string {
	if val, ok := ctx.Value(companyIDKey).(string); ok {
		return val
	}
	return ""
}

func UserID(ctx context.Context) string {
	if val, ok := ctx.Value(userIDKey).(string); ok {
		return val
	}
	return ""
}
