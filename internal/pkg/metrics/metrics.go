package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	StockMovementsApplied = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "stokk_stock_movements_applied_total",
		Help: "Stock movements applied, by movement type.",
	}, []string{"type"})

	StockItemsSkipped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "stokk_stock_items_skipped_total",
		Help: "Batch movement items skipped because the variant did not resolve.",
	})

	AlertsRaised = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "stokk_alerts_raised_total",
		Help: "Stock alerts raised, by alert type.",
	}, []string{"type"})

	SalesRegistered = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "stokk_sales_registered_total",
		Help: "Sales registered, by payment method.",
	}, []string{"payment_method"})
)
