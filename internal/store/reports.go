package store

import (
	"math"

	"go-tea-store/internal/models"
	"go-tea-store/internal/pricing"
)

// ProfitReport is derived from Delivered orders only. Revenue uses the unit
// price frozen in each line at the order's RETAIL/WHOLESALE type; COGS uses
// the current catalog cost price, and a deleted product contributes cost 0.
type ProfitReport struct {
	TotalRevenue float64 `json:"totalRevenue"`
	TotalCOGS    float64 `json:"totalCogs"`
	GrossProfit  float64 `json:"grossProfit"`
	ProfitMargin float64 `json:"profitMargin"` // percent, rounded to 1 decimal
}

// PaymentStats splits order value between online collections and cash on
// delivery. Online counts only paid non-COD orders.
type PaymentStats struct {
	OnlineRevenue float64 `json:"onlineRevenue"`
	OnlineCount   int     `json:"onlineCount"`
	CODRevenue    float64 `json:"codRevenue"`
	CODCount      int     `json:"codCount"`
}

// PnLRow is one delivered line item flattened for export.
type PnLRow struct {
	Date     string  `json:"date"`
	OrderID  string  `json:"orderId"`
	Product  string  `json:"product"`
	Quantity int     `json:"quantity"`
	Revenue  float64 `json:"revenue"`
	COGS     float64 `json:"cogs"`
	Profit   float64 `json:"profit"`
}

// Everything here is recomputed from current state on every call; nothing is
// cached or stored.

func (s *Store) ProfitReport() ProfitReport {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var revenue, cogs float64
	for _, o := range s.orders {
		if o.Status != models.OrderDelivered {
			continue
		}
		for _, item := range o.Items {
			revenue += pricing.LinePriceForType(item, o.Type) * float64(item.Quantity)
			if p, ok := s.findProduct(item.ProductID); ok {
				cogs += p.CostPrice * float64(item.Quantity)
			}
		}
	}

	report := ProfitReport{
		TotalRevenue: revenue,
		TotalCOGS:    cogs,
		GrossProfit:  revenue - cogs,
	}
	if revenue > 0 {
		report.ProfitMargin = math.Round(report.GrossProfit/revenue*100*10) / 10
	}
	return report
}

// LowStock lists every product at or below its own threshold.
func (s *Store) LowStock() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Product
	for _, p := range s.products {
		if p.Stock <= p.LowStockThreshold {
			out = append(out, p)
		}
	}
	return out
}

func (s *Store) PaymentStats() PaymentStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var stats PaymentStats
	for _, o := range s.orders {
		switch {
		case o.PaymentMethod == models.PaymentCOD:
			stats.CODRevenue += o.TotalAmount
			stats.CODCount++
		case o.PaymentStatus == models.PaymentPaid:
			stats.OnlineRevenue += o.TotalAmount
			stats.OnlineCount++
		}
	}
	return stats
}

// PaymentRow is one captured online payment flattened for export.
type PaymentRow struct {
	Date      string               `json:"date"`
	PaymentID string               `json:"paymentId"`
	OrderID   string               `json:"orderId"`
	Method    models.PaymentMethod `json:"method"`
	Amount    float64              `json:"amount"`
	Status    string               `json:"status"`
}

// OnlinePaymentRows lists every paid non-COD order for the payments export.
func (s *Store) OnlinePaymentRows() []PaymentRow {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var rows []PaymentRow
	for _, o := range s.orders {
		if o.PaymentMethod == models.PaymentCOD || o.PaymentStatus != models.PaymentPaid {
			continue
		}
		paymentID := o.TransactionID
		if paymentID == "" {
			paymentID = "N/A"
		}
		rows = append(rows, PaymentRow{
			Date:      o.Date,
			PaymentID: paymentID,
			OrderID:   o.ID,
			Method:    o.PaymentMethod,
			Amount:    o.TotalAmount,
			Status:    "Captured",
		})
	}
	return rows
}

// ProfitLossRows flattens delivered orders into per-line rows for the CSV and
// spreadsheet exports.
func (s *Store) ProfitLossRows() []PnLRow {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var rows []PnLRow
	for _, o := range s.orders {
		if o.Status != models.OrderDelivered {
			continue
		}
		for _, item := range o.Items {
			var cost float64
			if p, ok := s.findProduct(item.ProductID); ok {
				cost = p.CostPrice
			}
			revenue := pricing.LinePriceForType(item, o.Type) * float64(item.Quantity)
			totalCost := cost * float64(item.Quantity)
			rows = append(rows, PnLRow{
				Date:     o.Date,
				OrderID:  o.ID,
				Product:  item.Name,
				Quantity: item.Quantity,
				Revenue:  revenue,
				COGS:     totalCost,
				Profit:   revenue - totalCost,
			})
		}
	}
	return rows
}
