// Package store owns every collection of the shop — catalog, users, carts,
// orders, purchase orders, reviews and settings — and is the only mutation
// path to them. Each write goes to the persistence backend first; if that
// fails the in-memory mirror is left untouched and the error is surfaced.
package store

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"go-tea-store/internal/models"
	"go-tea-store/internal/persistence"
)

// TaxRate is the GST applied on every order subtotal.
const TaxRate = 0.05

var (
	ErrAccountNotFound   = errors.New("account not found")
	ErrWrongPassword     = errors.New("incorrect password")
	ErrNotApproved       = errors.New("distributor account is pending approval")
	ErrMobileExists      = errors.New("user with this mobile number already exists")
	ErrNotFound          = errors.New("not found")
	ErrValidation        = errors.New("validation failed")
	ErrEmptyCart         = errors.New("cart is empty")
	ErrInsufficientStock = errors.New("insufficient stock")
)

// InsufficientStockError names the offending product and what is left, so the
// shop can show "Insufficient stock for X. Available: N".
type InsufficientStockError struct {
	ProductName string
	Available   int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %s. Available: %d", e.ProductName, e.Available)
}

func (e *InsufficientStockError) Unwrap() error { return ErrInsufficientStock }

// Options tunes store behavior at composition time.
type Options struct {
	// RestockOnCancel returns an order's quantities to stock when its status
	// is set to Cancelled. Off by default: a cancelled shipment may represent
	// lost inventory, so the call is left to the operator.
	RestockOnCancel bool

	// Seed loads the demo catalog and accounts when the backend is empty.
	Seed bool
}

type Store struct {
	mu      sync.RWMutex
	backend persistence.Backend
	opts    Options

	products       []models.Product
	orders         []models.Order
	purchaseOrders []models.PurchaseOrder
	users          []models.User
	reviews        []models.Review

	invoiceSettings models.InvoiceSettings
	paymentSettings models.PaymentSettings
	brandAssets     models.BrandAssets

	// Carts are transient per-user state, never persisted.
	carts map[string][]models.CartItem

	seq uint64 // tie-breaker for time-derived document numbers
}

func New(backend persistence.Backend, opts Options) (*Store, error) {
	st, err := backend.Load()
	if err != nil {
		return nil, fmt.Errorf("load state: %w", err)
	}

	s := &Store{
		backend:        backend,
		opts:           opts,
		products:       st.Products,
		orders:         st.Orders,
		purchaseOrders: st.PurchaseOrders,
		users:          st.Users,
		reviews:        st.Reviews,
		carts:          make(map[string][]models.CartItem),
	}

	if st.InvoiceSettings != nil {
		s.invoiceSettings = *st.InvoiceSettings
	} else {
		s.invoiceSettings = defaultInvoiceSettings
	}
	if st.PaymentSettings != nil {
		s.paymentSettings = *st.PaymentSettings
	} else {
		s.paymentSettings = defaultPaymentSettings
	}
	if st.BrandAssets != nil {
		s.brandAssets = *st.BrandAssets
	}

	if opts.Seed && len(s.users) == 0 && len(s.products) == 0 {
		if err := s.seed(); err != nil {
			return nil, fmt.Errorf("seed demo data: %w", err)
		}
	}

	return s, nil
}

// nextRef builds a time-derived document number like ORD-1721041532000001.
// The full millisecond timestamp keeps numbers unique across restarts; the
// sequence suffix keeps them unique within one millisecond.
func (s *Store) nextRef(prefix string) string {
	s.seq++
	return fmt.Sprintf("%s-%d%03d", prefix, time.Now().UnixMilli(), s.seq%1000)
}

func today() string {
	return time.Now().Format("2006-01-02")
}
