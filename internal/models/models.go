package models

// Role decides which price list a user sees and which routes they may hit.
type Role string

const (
	RoleAdmin       Role = "ADMIN"
	RoleDistributor Role = "DISTRIBUTOR"
	RoleCustomer    Role = "CUSTOMER"
)

type OrderStatus string

const (
	OrderProcessing OrderStatus = "Processing"
	OrderShipped    OrderStatus = "Shipped"
	OrderDelivered  OrderStatus = "Delivered"
	OrderCancelled  OrderStatus = "Cancelled"
)

type PaymentMethod string

const (
	PaymentUPI  PaymentMethod = "UPI"
	PaymentCard PaymentMethod = "Card"
	PaymentCOD  PaymentMethod = "COD"
	PaymentCash PaymentMethod = "Cash"
)

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "Pending"
	PaymentPaid    PaymentStatus = "Paid"
)

type OrderType string

const (
	OrderRetail    OrderType = "RETAIL"
	OrderWholesale OrderType = "WHOLESALE"
)

type POStatus string

const (
	POPending   POStatus = "Pending"
	POReceived  POStatus = "Received"
	POCancelled POStatus = "Cancelled"
)

// User - Customer, distributor or back-office admin
type User struct {
	ID        string `gorm:"primaryKey;size:40" json:"id"`
	Name      string `json:"name"`
	Mobile    string `gorm:"uniqueIndex;size:10" json:"mobile"`
	Password  string `json:"-"` // bcrypt hash, never returned in JSON
	Role      Role   `gorm:"size:20" json:"role"`
	Approved  bool   `json:"approved"` // distributors need admin approval before login
	Territory string `json:"territory,omitempty"`
	Address   string `json:"address,omitempty"`
	GSTNumber string `json:"gstNumber,omitempty"`
}

// Product - The tea catalog. MRP is the retail price, DistributorPrice the
// wholesale one, CostPrice feeds profit reporting and is never shown to buyers.
type Product struct {
	ID                string  `gorm:"primaryKey;size:40" json:"id"`
	Name              string  `json:"name"`
	Description       string  `json:"description"`
	Image             string  `json:"image"`
	Weight            string  `json:"weight"`
	MRP               float64 `json:"mrp"`
	DistributorPrice  float64 `json:"distributorPrice"`
	CostPrice         float64 `json:"costPrice"`
	Stock             int     `json:"stock"`
	LowStockThreshold int     `json:"lowStockThreshold"`
	Category          string  `gorm:"size:20" json:"category"` // Sachet, Pouch, Bulk
	HSNCode           string  `gorm:"size:20" json:"hsnCode,omitempty"`
}

// CartItem - A product snapshot plus quantity. Both price columns are kept so
// an order line can be priced for either role after the catalog changes.
type CartItem struct {
	RowID            uint    `gorm:"primaryKey;autoIncrement" json:"-"`
	OrderID          string  `gorm:"index;size:40" json:"-"`
	ProductID        string  `gorm:"size:40" json:"id"`
	Name             string  `json:"name"`
	Weight           string  `json:"weight"`
	MRP              float64 `json:"mrp"`
	DistributorPrice float64 `json:"distributorPrice"`
	HSNCode          string  `gorm:"size:20" json:"hsnCode,omitempty"`
	Quantity         int     `json:"quantity"`
}

func (CartItem) TableName() string { return "order_items" }

// Order - The transaction header with its line snapshots
type Order struct {
	ID            string        `gorm:"primaryKey;size:40" json:"id"`
	UserID        string        `gorm:"size:40" json:"userId"`
	UserName      string        `json:"userName"`
	UserAddress   string        `json:"userAddress,omitempty"`
	UserGST       string        `json:"userGst,omitempty"`
	Items         []CartItem    `gorm:"foreignKey:OrderID" json:"items"`
	TotalAmount   float64       `json:"totalAmount"`
	TaxAmount     float64       `json:"taxAmount"` // GST, 5% of the subtotal
	Status        OrderStatus   `gorm:"size:20" json:"status"`
	PaymentMethod PaymentMethod `gorm:"size:10" json:"paymentMethod"`
	PaymentStatus PaymentStatus `gorm:"size:10" json:"paymentStatus"`
	TransactionID string        `json:"transactionId,omitempty"`
	Date          string        `gorm:"size:10" json:"date"` // YYYY-MM-DD
	Type          OrderType     `gorm:"size:10" json:"type"`
	InvoiceNumber string        `json:"invoiceNumber,omitempty"`
}

// PurchaseItem - One restocking line on a supplier purchase order
type PurchaseItem struct {
	RowID           uint    `gorm:"primaryKey;autoIncrement" json:"-"`
	PurchaseOrderID string  `gorm:"index;size:40" json:"-"`
	ProductID       string  `gorm:"size:40" json:"productId"`
	ProductName     string  `json:"productName"`
	Quantity        int     `json:"quantity"`
	UnitCost        float64 `json:"unitCost"`
	TotalCost       float64 `json:"totalCost"`
}

// PurchaseOrder - Supplier-side restocking document. Receiving it is the only
// flow that increases stock besides a manual admin correction.
type PurchaseOrder struct {
	ID           string         `gorm:"primaryKey;size:40" json:"id"`
	PONumber     string         `json:"poNumber"`
	SupplierName string         `json:"supplierName"`
	Date         string         `gorm:"size:10" json:"date"`
	Status       POStatus       `gorm:"size:10" json:"status"`
	Items        []PurchaseItem `gorm:"foreignKey:PurchaseOrderID" json:"items"`
	TotalAmount  float64        `json:"totalAmount"`
}

// Review - Per-product rating and comment, independent of orders
type Review struct {
	ID        string `gorm:"primaryKey;size:40" json:"id"`
	ProductID string `gorm:"index;size:40" json:"productId"`
	UserID    string `gorm:"size:40" json:"userId"` // empty for admin-authored reviews
	UserName  string `json:"userName"`
	Rating    int    `json:"rating"` // 1 to 5
	Comment   string `json:"comment"`
	Date      string `gorm:"size:10" json:"date"`
}

// Settings singletons. Each lives in a single row (ID 1) in the row store and
// a single JSON file in the snapshot store; saves overwrite the whole thing.

type InvoiceSettings struct {
	ID           uint   `gorm:"primaryKey" json:"-"`
	CompanyName  string `json:"companyName"`
	AddressLine1 string `json:"addressLine1"`
	AddressLine2 string `json:"addressLine2"`
	GSTIN        string `json:"gstin"`
	Phone        string `json:"phone"`
	FooterNote   string `json:"footerNote"`
}

type PaymentSettings struct {
	ID            uint   `gorm:"primaryKey" json:"-"`
	RazorpayKeyID string `json:"razorpayKeyId"`
	UPIID         string `json:"upiId,omitempty"` // VPA printed as a QR on unpaid invoices
}

type BrandAssets struct {
	ID           uint   `gorm:"primaryKey" json:"-"`
	Logo         string `json:"logo"`
	HeroImage    string `json:"heroImage"`
	FeatureImage string `json:"featureImage"`
}
