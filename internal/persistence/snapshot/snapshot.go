// Package snapshot persists every collection as one JSON file in a data
// directory, rewritten in full after each mutation and rehydrated at startup.
// It is the local mock-mode counterpart of the MySQL row store.
package snapshot

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go-tea-store/internal/models"
	"go-tea-store/internal/persistence"
)

const (
	fileProducts        = "products.json"
	fileOrders          = "orders.json"
	filePurchaseOrders  = "purchase_orders.json"
	fileUsers           = "users.json"
	fileReviews         = "reviews.json"
	fileInvoiceSettings = "invoice_settings.json"
	filePaymentSettings = "payment_settings.json"
	fileBrandAssets     = "brand_assets.json"
)

type Store struct {
	dir string

	// Mirror of what is on disk, so single-row mutations can rewrite the
	// whole collection file the way localStorage snapshots did.
	st persistence.State
}

// userRecord is the on-disk shape of a user. The API model hides the
// credential behind json:"-", so marshaling it directly would strip every
// password hash from users.json and break all logins after a restart.
type userRecord struct {
	models.User
	Password string `json:"password"`
}

func userRecords(users []models.User) []userRecord {
	out := make([]userRecord, len(users))
	for i, u := range users {
		out[i] = userRecord{User: u, Password: u.Password}
	}
	return out
}

var _ persistence.Backend = (*Store)(nil)

func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir %s: %w", dir, err)
	}
	s := &Store{dir: dir}
	if err := s.reload(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) Load() (*persistence.State, error) {
	if err := s.reload(); err != nil {
		return nil, err
	}
	st := s.st
	return &st, nil
}

func (s *Store) reload() error {
	s.st = persistence.State{}
	if err := s.read(fileProducts, &s.st.Products); err != nil {
		return err
	}
	if err := s.read(fileOrders, &s.st.Orders); err != nil {
		return err
	}
	if err := s.read(filePurchaseOrders, &s.st.PurchaseOrders); err != nil {
		return err
	}
	var users []userRecord
	if err := s.read(fileUsers, &users); err != nil {
		return err
	}
	for _, r := range users {
		r.User.Password = r.Password
		s.st.Users = append(s.st.Users, r.User)
	}
	if err := s.read(fileReviews, &s.st.Reviews); err != nil {
		return err
	}
	if err := s.read(fileInvoiceSettings, &s.st.InvoiceSettings); err != nil {
		return err
	}
	if err := s.read(filePaymentSettings, &s.st.PaymentSettings); err != nil {
		return err
	}
	return s.read(fileBrandAssets, &s.st.BrandAssets)
}

// read unmarshals one collection file into dest; a missing file is an empty
// collection, not an error.
func (s *Store) read(name string, dest any) error {
	raw, err := os.ReadFile(filepath.Join(s.dir, name))
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read snapshot %s: %w", name, err)
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return fmt.Errorf("decode snapshot %s: %w", name, err)
	}
	return nil
}

func (s *Store) write(name string, v any) error {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode snapshot %s: %w", name, err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, name), raw, 0o644); err != nil {
		return fmt.Errorf("write snapshot %s: %w", name, err)
	}
	return nil
}

// --- Products ---

func (s *Store) InsertProduct(p models.Product) error {
	s.st.Products = append(s.st.Products, p)
	return s.write(fileProducts, s.st.Products)
}

func (s *Store) UpdateProduct(p models.Product) error {
	for i := range s.st.Products {
		if s.st.Products[i].ID == p.ID {
			s.st.Products[i] = p
		}
	}
	return s.write(fileProducts, s.st.Products)
}

func (s *Store) DeleteProduct(id string) error {
	out := s.st.Products[:0]
	for _, p := range s.st.Products {
		if p.ID != id {
			out = append(out, p)
		}
	}
	s.st.Products = out
	return s.write(fileProducts, s.st.Products)
}

// --- Orders ---

func (s *Store) InsertOrder(o models.Order) error {
	// Newest first, matching how the store presents them.
	s.st.Orders = append([]models.Order{o}, s.st.Orders...)
	return s.write(fileOrders, s.st.Orders)
}

func (s *Store) UpdateOrder(o models.Order) error {
	for i := range s.st.Orders {
		if s.st.Orders[i].ID == o.ID {
			s.st.Orders[i] = o
		}
	}
	return s.write(fileOrders, s.st.Orders)
}

func (s *Store) DeleteOrder(id string) error {
	out := s.st.Orders[:0]
	for _, o := range s.st.Orders {
		if o.ID != id {
			out = append(out, o)
		}
	}
	s.st.Orders = out
	return s.write(fileOrders, s.st.Orders)
}

// --- Purchase orders ---

func (s *Store) InsertPurchaseOrder(po models.PurchaseOrder) error {
	s.st.PurchaseOrders = append([]models.PurchaseOrder{po}, s.st.PurchaseOrders...)
	return s.write(filePurchaseOrders, s.st.PurchaseOrders)
}

func (s *Store) UpdatePurchaseOrder(po models.PurchaseOrder) error {
	for i := range s.st.PurchaseOrders {
		if s.st.PurchaseOrders[i].ID == po.ID {
			s.st.PurchaseOrders[i] = po
		}
	}
	return s.write(filePurchaseOrders, s.st.PurchaseOrders)
}

func (s *Store) DeletePurchaseOrder(id string) error {
	out := s.st.PurchaseOrders[:0]
	for _, po := range s.st.PurchaseOrders {
		if po.ID != id {
			out = append(out, po)
		}
	}
	s.st.PurchaseOrders = out
	return s.write(filePurchaseOrders, s.st.PurchaseOrders)
}

// --- Users ---

func (s *Store) InsertUser(u models.User) error {
	s.st.Users = append(s.st.Users, u)
	return s.write(fileUsers, userRecords(s.st.Users))
}

func (s *Store) UpdateUser(u models.User) error {
	for i := range s.st.Users {
		if s.st.Users[i].ID == u.ID {
			s.st.Users[i] = u
		}
	}
	return s.write(fileUsers, userRecords(s.st.Users))
}

// --- Reviews ---

func (s *Store) InsertReview(r models.Review) error {
	s.st.Reviews = append([]models.Review{r}, s.st.Reviews...)
	return s.write(fileReviews, s.st.Reviews)
}

func (s *Store) UpdateReview(r models.Review) error {
	for i := range s.st.Reviews {
		if s.st.Reviews[i].ID == r.ID {
			s.st.Reviews[i] = r
		}
	}
	return s.write(fileReviews, s.st.Reviews)
}

func (s *Store) DeleteReview(id string) error {
	out := s.st.Reviews[:0]
	for _, r := range s.st.Reviews {
		if r.ID != id {
			out = append(out, r)
		}
	}
	s.st.Reviews = out
	return s.write(fileReviews, s.st.Reviews)
}

// --- Settings singletons ---

func (s *Store) SaveInvoiceSettings(v models.InvoiceSettings) error {
	s.st.InvoiceSettings = &v
	return s.write(fileInvoiceSettings, v)
}

func (s *Store) SavePaymentSettings(v models.PaymentSettings) error {
	s.st.PaymentSettings = &v
	return s.write(filePaymentSettings, v)
}

func (s *Store) SaveBrandAssets(v models.BrandAssets) error {
	s.st.BrandAssets = &v
	return s.write(fileBrandAssets, v)
}
