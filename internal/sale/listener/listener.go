package listener

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/micaelrauan/stokk-backend/internal/auth"
	"github.com/micaelrauan/stokk-backend/internal/model"
	"github.com/micaelrauan/stokk-backend/internal/pkg/broker"
	"github.com/micaelrauan/stokk-backend/internal/pkg/logger"
	"github.com/micaelrauan/stokk-backend/internal/sale"
	"github.com/micaelrauan/stokk-backend/internal/sale/dto"
	"go.uber.org/zap"
)

// SaleCompletedEvent is the payload external sales channels publish when a
// checkout finishes. It mirrors RegisterSaleInput plus the tenant.
type SaleCompletedEvent struct {
	CompanyID       string              `json:"company_id"`
	Items           []dto.SaleLineInput `json:"items"`
	Subtotal        float64             `json:"subtotal"`
	DiscountPercent float64             `json:"discount_percent"`
	Total           float64             `json:"total"`
	PaymentMethod   model.PaymentMethod `json:"payment_method"`
	CustomerName    *string             `json:"customer_name"`
}

type SaleListener struct {
	consumer *broker.KafkaConsumer
	uc       sale.UseCase
	logger   logger.ZapLogger
}

func NewSaleListener(consumer *broker.KafkaConsumer, uc sale.UseCase, log logger.ZapLogger) *SaleListener {
	return &SaleListener{consumer: consumer, uc: uc, logger: log}
}

// Start consumes sale events until the context is cancelled. Malformed or
// rejected events are logged and skipped; the stream keeps moving.
func (l *SaleListener) Start(ctx context.Context) {
	l.logger.Info("sale listener started")
	for {
		msg, err := l.consumer.ReadMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || ctx.Err() != nil {
				l.logger.Info("sale listener stopped")
				return
			}
			l.logger.Error("failed to read sale event", zap.Error(err))
			continue
		}

		var event SaleCompletedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			l.logger.Error("malformed sale event",
				zap.Int64("offset", msg.Offset), zap.Error(err))
			continue
		}
		l.handle(ctx, &event)
	}
}

func (l *SaleListener) handle(ctx context.Context, event *SaleCompletedEvent) {
	if event.CompanyID == "" {
		l.logger.Error("sale event without company id")
		return
	}
	if !event.PaymentMethod.Valid() {
		l.logger.Error("sale event with invalid payment method",
			zap.String("paymentMethod", string(event.PaymentMethod)))
		return
	}

	tenantCtx := auth.WithCompanyID(ctx, event.CompanyID)
	result, err := l.uc.RegisterSale(tenantCtx, &dto.RegisterSaleInput{
		Items:           event.Items,
		Subtotal:        event.Subtotal,
		DiscountPercent: event.DiscountPercent,
		Total:           event.Total,
		PaymentMethod:   event.PaymentMethod,
		CustomerName:    event.CustomerName,
	})
	if err != nil {
		l.logger.Error("failed to register channel sale",
			zap.String("companyID", event.CompanyID), zap.Error(err))
		return
	}
	l.logger.Info("channel sale registered",
		zap.String("companyID", event.CompanyID),
		zap.String("saleID", result.Sale.ID))
}
