package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	alerthandler "github.com/micaelrauan/stokk-backend/internal/alert/handler"
	"github.com/micaelrauan/stokk-backend/internal/api"
	"github.com/micaelrauan/stokk-backend/internal/auth"
	dashboardhandler "github.com/micaelrauan/stokk-backend/internal/dashboard/handler"
	producthandler "github.com/micaelrauan/stokk-backend/internal/product/handler"
	referencehandler "github.com/micaelrauan/stokk-backend/internal/reference/handler"
	salehandler "github.com/micaelrauan/stokk-backend/internal/sale/handler"
	stockhandler "github.com/micaelrauan/stokk-backend/internal/stock/handler"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Handlers struct {
	Stock     *stockhandler.StockHandler
	Sale      *salehandler.SaleHandler
	Alert     *alerthandler.AlertHandler
	Dashboard *dashboardhandler.DashboardHandler
	Product   *producthandler.ProductHandler
	Reference *referencehandler.ReferenceHandler
}

func NewRouter(h *Handlers) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		api.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(auth.Middleware)

		r.Route("/products", func(r chi.Router) {
			r.Get("/", h.Product.List)
			r.Post("/", h.Product.Create)
			r.Get("/barcode/{code}", h.Product.FindByBarcode)
			r.Route("/{productID}", func(r chi.Router) {
				r.Get("/", h.Product.Get)
				r.Put("/", h.Product.Update)
				r.Delete("/", h.Product.Delete)
				r.Get("/variants", h.Product.ListVariants)
				r.Post("/variants", h.Product.AddVariant)
			})
		})

		r.Route("/stock", func(r chi.Router) {
			r.Post("/movements", h.Stock.ApplyMovement)
			r.Put("/variants/{variantID}", h.Stock.SetStock)
			r.Get("/logs", h.Stock.ListLogs)
		})

		r.Route("/sales", func(r chi.Router) {
			r.Get("/", h.Sale.List)
			r.Post("/", h.Sale.Register)
			r.Get("/{saleID}", h.Sale.Get)
		})

		r.Route("/alerts", func(r chi.Router) {
			r.Get("/", h.Alert.List)
			r.Get("/unread-count", h.Alert.CountUnread)
			r.Post("/read-all", h.Alert.MarkAllRead)
			r.Post("/{alertID}/read", h.Alert.MarkRead)
		})

		r.Get("/dashboard/summary", h.Dashboard.Summary)

		r.Route("/categories", func(r chi.Router) {
			r.Get("/", h.Reference.ListCategories)
			r.Post("/", h.Reference.CreateCategory)
			r.Put("/{categoryID}", h.Reference.UpdateCategory)
			r.Delete("/{categoryID}", h.Reference.DeleteCategory)
		})
		r.Route("/colors", func(r chi.Router) {
			r.Get("/", h.Reference.ListColors)
			r.Post("/", h.Reference.CreateColor)
			r.Put("/{colorID}", h.Reference.UpdateColor)
			r.Delete("/{colorID}", h.Reference.DeleteColor)
		})
		r.Route("/sizes", func(r chi.Router) {
			r.Get("/", h.Reference.ListSizes)
			r.Post("/", h.Reference.CreateSize)
			r.Put("/{sizeID}", h.Reference.UpdateSize)
			r.Delete("/{sizeID}", h.Reference.DeleteSize)
		})
	})

	return r
}
