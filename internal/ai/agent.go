// Package ai is the back-office assistant: a Gemini chat session with tool
// access to the catalog and reports, so the admin can ask "what's running
// low?" or "update the Family Pack MRP to 130" in plain language.
package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go-tea-store/internal/store"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

func RunAgent(st *store.Store, userMessage string, apiKey string) (string, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return "", err
	}
	defer client.Close()

	model := client.GenerativeModel("gemini-2.0-flash-001")

	today := time.Now().Format("2006-01-02")
	systemPrompt := fmt.Sprintf(`SYSTEM: Today is %s. You are the back-office assistant of a tea distribution shop.

	RULES:
	1. UPDATE: If the user asks to change a product price by NAME, do NOT ask for the ID. Instead:
	   - Call 'check_catalog' to find the ID.
	   - Call 'update_product_price' using that ID.

	2. READ: For PRICE, STOCK or DETAILS of a product, call 'check_catalog' and read the JSON.
	   Prices are in rupees; mrp is retail, distributorPrice is wholesale.

	3. PROFIT: For revenue, cost or margin questions, use 'get_profit_report'.
	   It only counts Delivered orders.

	4. STOCK: For restocking questions, use 'low_stock_alerts'.

	USER: %s`, today, userMessage)

	model.Tools = []*genai.Tool{
		{
			FunctionDeclarations: []*genai.FunctionDeclaration{
				{
					Name:        "check_catalog",
					Description: "Get the full tea catalog. Use this to find ANY product details like ID, Name, MRP, Distributor Price, or Stock.",
				},
				{
					Name:        "update_product_price",
					Description: "Update the retail price (MRP) of a specific product using its ID",
					Parameters: &genai.Schema{
						Type: genai.TypeObject,
						Properties: map[string]*genai.Schema{
							"product_id": {Type: genai.TypeString, Description: "ID of the product"},
							"new_mrp":    {Type: genai.TypeNumber, Description: "New retail price"},
						},
						Required: []string{"product_id", "new_mrp"},
					},
				},
				{
					Name:        "get_profit_report",
					Description: "Get total revenue, cost of goods sold, gross profit and margin over delivered orders.",
				},
				{
					Name:        "low_stock_alerts",
					Description: "List products at or below their low-stock threshold.",
				},
			},
		},
	}

	session := model.StartChat()

	resp, err := session.SendMessage(ctx, genai.Text(systemPrompt))
	if err != nil {
		return "", err
	}

	for _, part := range resp.Candidates[0].Content.Parts {
		if funcCall, ok := part.(genai.FunctionCall); ok {
			switch funcCall.Name {
			case "check_catalog":
				finalResp, err := sendCatalog(ctx, st, session)
				if err != nil {
					return "", err
				}
				return handleRecursiveToolCalls(ctx, st, session, finalResp), nil
			case "update_product_price":
				return executeUpdatePrice(ctx, st, session, funcCall), nil
			case "get_profit_report":
				return executeProfitReport(ctx, st, session), nil
			case "low_stock_alerts":
				return executeLowStock(ctx, st, session), nil
			}
		}
	}

	return printResponse(resp), nil
}

// --- HELPER FUNCTIONS ---

func sendCatalog(ctx context.Context, st *store.Store, session *genai.ChatSession) (*genai.GenerateContentResponse, error) {
	type simpleProduct struct {
		ID               string  `json:"id"`
		Name             string  `json:"name"`
		MRP              float64 `json:"mrp"`
		DistributorPrice float64 `json:"distributorPrice"`
		Stock            int     `json:"stock"`
	}
	var simpleList []simpleProduct
	for _, p := range st.Products() {
		simpleList = append(simpleList, simpleProduct{
			ID:               p.ID,
			Name:             p.Name,
			MRP:              p.MRP,
			DistributorPrice: p.DistributorPrice,
			Stock:            p.Stock,
		})
	}
	jsonBytes, _ := json.Marshal(simpleList)

	return session.SendMessage(ctx, genai.FunctionResponse{
		Name:     "check_catalog",
		Response: map[string]interface{}{"catalog": string(jsonBytes)},
	})
}

// handleRecursiveToolCalls lets the model chain a lookup into an update
// (find the ID via the catalog, then change the price).
func handleRecursiveToolCalls(ctx context.Context, st *store.Store, session *genai.ChatSession, resp *genai.GenerateContentResponse) string {
	for _, part := range resp.Candidates[0].Content.Parts {
		if funcCall, ok := part.(genai.FunctionCall); ok {
			if funcCall.Name == "update_product_price" {
				return executeUpdatePrice(ctx, st, session, funcCall)
			}
		}
	}
	return printResponse(resp)
}

func executeUpdatePrice(ctx context.Context, st *store.Store, session *genai.ChatSession, funcCall genai.FunctionCall) string {
	args := funcCall.Args
	productID, _ := args["product_id"].(string)
	newMRP, _ := args["new_mrp"].(float64)

	msg := "Success"
	if p, ok := st.ProductByID(productID); ok {
		p.MRP = newMRP
		if err := st.UpdateProduct(p); err != nil {
			msg = "Update failed: " + err.Error()
		}
	} else {
		msg = "Product ID not found"
	}

	finalResp, _ := session.SendMessage(ctx, genai.FunctionResponse{
		Name:     "update_product_price",
		Response: map[string]interface{}{"status": msg, "new_mrp": newMRP},
	})
	return printResponse(finalResp)
}

func executeProfitReport(ctx context.Context, st *store.Store, session *genai.ChatSession) string {
	report := st.ProfitReport()
	finalResp, _ := session.SendMessage(ctx, genai.FunctionResponse{
		Name: "get_profit_report",
		Response: map[string]interface{}{
			"revenue":      report.TotalRevenue,
			"cogs":         report.TotalCOGS,
			"gross_profit": report.GrossProfit,
			"margin_pct":   report.ProfitMargin,
		},
	})
	return printResponse(finalResp)
}

func executeLowStock(ctx context.Context, st *store.Store, session *genai.ChatSession) string {
	type alert struct {
		Name      string `json:"name"`
		Stock     int    `json:"stock"`
		Threshold int    `json:"threshold"`
	}
	var alerts []alert
	for _, p := range st.LowStock() {
		alerts = append(alerts, alert{Name: p.Name, Stock: p.Stock, Threshold: p.LowStockThreshold})
	}
	jsonBytes, _ := json.Marshal(alerts)

	finalResp, _ := session.SendMessage(ctx, genai.FunctionResponse{
		Name:     "low_stock_alerts",
		Response: map[string]interface{}{"alerts": string(jsonBytes)},
	})
	return printResponse(finalResp)
}

func printResponse(resp *genai.GenerateContentResponse) string {
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			return string(txt)
		}
	}
	return "I completed the action."
}
