package handlers

import (
	"net/http"

	"go-tea-store/internal/export"

	"github.com/gin-gonic/gin"
)

// --- GET: /api/reports ---
// Everything is derived fresh from the current orders and catalog; nothing
// here is cached between requests.
func (h *Handler) GetReports(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"profit":   h.Store.ProfitReport(),
		"lowStock": h.Store.LowStock(),
		"payments": h.Store.PaymentStats(),
	})
}

var pnlHeaders = []string{"Date", "OrderId", "Product", "Quantity", "Revenue", "COGS", "Profit"}

func (h *Handler) pnlRows() [][]any {
	var rows [][]any
	for _, r := range h.Store.ProfitLossRows() {
		rows = append(rows, []any{r.Date, r.OrderID, r.Product, r.Quantity, r.Revenue, r.COGS, r.Profit})
	}
	return rows
}

// --- GET: /api/reports/pnl.csv ---
func (h *Handler) ExportPnLCSV(c *gin.Context) {
	doc, err := export.CSV(pnlHeaders, h.pnlRows())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build CSV"})
		return
	}
	c.Header("Content-Disposition", `attachment; filename="Profit_Loss_Statement.csv"`)
	c.Data(http.StatusOK, "text/csv", doc)
}

var paymentHeaders = []string{"Date", "PaymentID", "OrderID", "Method", "Amount", "Status"}

// --- GET: /api/reports/payments.csv ---
func (h *Handler) ExportPaymentsCSV(c *gin.Context) {
	var rows [][]any
	for _, r := range h.Store.OnlinePaymentRows() {
		rows = append(rows, []any{r.Date, r.PaymentID, r.OrderID, string(r.Method), r.Amount, r.Status})
	}
	doc, err := export.CSV(paymentHeaders, rows)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build CSV"})
		return
	}
	c.Header("Content-Disposition", `attachment; filename="payments_export.csv"`)
	c.Data(http.StatusOK, "text/csv", doc)
}

// --- GET: /api/reports/pnl.xlsx ---
func (h *Handler) ExportPnLXLSX(c *gin.Context) {
	doc, err := export.XLSX("Profit & Loss", pnlHeaders, h.pnlRows())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build workbook"})
		return
	}
	c.Header("Content-Disposition", `attachment; filename="Profit_Loss_Statement.xlsx"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", doc)
}
