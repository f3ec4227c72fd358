package persistence

import "go-tea-store/internal/models"

// State is everything the store rehydrates at startup. Nil settings mean the
// backend has never saved them and defaults apply.
type State struct {
	Products        []models.Product
	Orders          []models.Order
	PurchaseOrders  []models.PurchaseOrder
	Users           []models.User
	Reviews         []models.Review
	InvoiceSettings *models.InvoiceSettings
	PaymentSettings *models.PaymentSettings
	BrandAssets     *models.BrandAssets
}

// Backend is the persistence collaborator behind the store. Two
// implementations exist: a JSON snapshot-per-collection file store and a
// MySQL row store. Updates carry the full row; both backends overwrite by id.
//
// A failed call means the row was not persisted; the store surfaces the error
// and does not advance its in-memory mirror for that row. There is no retry.
type Backend interface {
	Load() (*State, error)

	InsertProduct(p models.Product) error
	UpdateProduct(p models.Product) error
	DeleteProduct(id string) error

	InsertOrder(o models.Order) error
	UpdateOrder(o models.Order) error
	DeleteOrder(id string) error

	InsertPurchaseOrder(po models.PurchaseOrder) error
	UpdatePurchaseOrder(po models.PurchaseOrder) error
	DeletePurchaseOrder(id string) error

	InsertUser(u models.User) error
	UpdateUser(u models.User) error

	InsertReview(r models.Review) error
	UpdateReview(r models.Review) error
	DeleteReview(id string) error

	SaveInvoiceSettings(s models.InvoiceSettings) error
	SavePaymentSettings(s models.PaymentSettings) error
	SaveBrandAssets(b models.BrandAssets) error
}
