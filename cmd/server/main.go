package main

import (
	"log"
	"os"
	"time"

	"go-tea-store/internal/handlers"
	"go-tea-store/internal/middleware"
	"go-tea-store/internal/models"
	"go-tea-store/internal/payment"
	"go-tea-store/internal/persistence"
	"go-tea-store/internal/persistence/rowstore"
	"go-tea-store/internal/persistence/snapshot"
	"go-tea-store/internal/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: No .env file found")
	}

	backend := openBackend()
	st, err := store.New(backend, store.Options{
		RestockOnCancel: os.Getenv("RESTOCK_ON_CANCEL") == "true",
		Seed:            os.Getenv("SEED_DEMO_DATA") != "false",
	})
	if err != nil {
		log.Fatal("Failed to initialize store: ", err)
	}

	h := handlers.New(st, payment.Sandbox{})

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "online"}) })
	r.POST("/login", h.Login)
	r.POST("/register", h.Register)

	// --- PUBLIC STOREFRONT ---
	r.GET("/api/products", h.GetProducts)
	r.GET("/api/products/:id/reviews", h.GetProductReviews)

	// --- AUTHENTICATED ROUTES ---
	api := r.Group("/api")
	api.Use(middleware.AuthMiddleware())
	{
		api.POST("/logout", h.Logout)
		api.POST("/password", h.ChangePassword)

		api.GET("/cart", h.GetCart)
		api.POST("/cart", h.AddToCart)
		api.DELETE("/cart/:id", h.RemoveFromCart)
		api.POST("/checkout", h.Checkout)

		api.GET("/orders", h.MyOrders)
		api.GET("/orders/:id/invoice.pdf", h.OrderInvoicePDF)
		api.POST("/reviews", h.AddReview)

		// --- ADMIN ONLY ---
		admin := api.Group("/admin")
		admin.Use(middleware.RequireRole(models.RoleAdmin))
		{
			admin.POST("/ask", h.AskAI)

			admin.POST("/products", h.AddProduct)
			admin.PUT("/products/:id", h.UpdateProduct)
			admin.DELETE("/products/:id", h.DeleteProduct)
			admin.PUT("/products/:id/stock", h.UpdateStock)

			admin.GET("/orders", h.ListOrders)
			admin.POST("/orders", h.AddOrder)
			admin.PUT("/orders/:id/status", h.UpdateOrderStatus)
			admin.PUT("/orders/:id/payment", h.UpdatePaymentStatus)
			admin.DELETE("/orders/:id", h.DeleteOrder)
			admin.DELETE("/payments/online", h.ClearOnlineOrders)

			admin.GET("/purchase-orders", h.ListPurchaseOrders)
			admin.POST("/purchase-orders", h.AddPurchaseOrder)
			admin.PUT("/purchase-orders/:id/receive", h.ReceivePurchaseOrder)
			admin.DELETE("/purchase-orders/:id", h.DeletePurchaseOrder)

			admin.GET("/users", h.ListUsers)
			admin.POST("/users", h.AddUser)
			admin.PUT("/users/:id/approve", h.ApproveDistributor)
			admin.PUT("/users/:id/password", h.UpdateUserPassword)

			admin.GET("/reviews", h.ListReviews)
			admin.POST("/reviews", h.AddReviewManual)
			admin.PUT("/reviews/:id", h.UpdateReview)
			admin.DELETE("/reviews/:id", h.DeleteReview)

			admin.GET("/settings", h.GetSettings)
			admin.PUT("/settings/invoice", h.UpdateInvoiceSettings)
			admin.PUT("/settings/payment", h.UpdatePaymentSettings)
			admin.PUT("/settings/brand", h.UpdateBrandAssets)

			admin.GET("/reports", h.GetReports)
			admin.GET("/reports/pnl.csv", h.ExportPnLCSV)
			admin.GET("/reports/pnl.xlsx", h.ExportPnLXLSX)
			admin.GET("/reports/payments.csv", h.ExportPaymentsCSV)
		}
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Println("🚀 Server starting on :" + port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("Server failed to start:", err)
	}
}

// openBackend picks the persistence collaborator: MySQL when STORE_BACKEND is
// "mysql", otherwise the local JSON snapshot directory (mock mode).
func openBackend() persistence.Backend {
	if os.Getenv("STORE_BACKEND") == "mysql" {
		backend, err := rowstore.Connect(os.Getenv("DB_DSN"))
		if err != nil {
			log.Fatal("❌ Error: ", err)
		}
		return backend
	}

	dir := os.Getenv("DATA_DIR")
	if dir == "" {
		dir = "./data"
	}
	backend, err := snapshot.New(dir)
	if err != nil {
		log.Fatal("❌ Error: ", err)
	}
	log.Println("✅ Using JSON snapshot store at " + dir)
	return backend
}
