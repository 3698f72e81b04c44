package dashboard

// ProductStock is the slice of a product the summary needs: its threshold and
// the stock level of each variant.
type ProductStock struct {
	MinStock      int
	VariantStocks []int
}

// Snapshot is everything the summary is derived from, loaded in one pass.
type Snapshot struct {
	Products        []ProductStock
	UnreadAlerts    int
	TodaySalesCount int
	TodayRevenue    float64
}

type Summary struct {
	TotalProducts   int     `json:"total_products"`
	TotalItems      int     `json:"total_items"`
	LowStockCount   int     `json:"low_stock_count"`
	OutOfStockCount int     `json:"out_of_stock_count"`
	UnreadAlerts    int     `json:"unread_alerts"`
	TodaySalesCount int     `json:"today_sales_count"`
	TodayRevenue    float64 `json:"today_revenue"`
}

// ComputeSummary derives the dashboard numbers from a snapshot. Low stock is
// strictly between zero and the product threshold; a variant at zero counts
// only as out of stock.
func ComputeSummary(snap *Snapshot) *Summary {
	s := &Summary{
		TotalProducts:   len(snap.Products),
		UnreadAlerts:    snap.UnreadAlerts,
		TodaySalesCount: snap.TodaySalesCount,
		TodayRevenue:    snap.TodayRevenue,
	}

	for _, p := range snap.Products {
		for _, stock := range p.VariantStocks {
			s.TotalItems += stock
			switch {
			case stock == 0:
				s.OutOfStockCount++
			case stock < p.MinStock:
				s.LowStockCount++
			}
		}
	}
	return s
}
