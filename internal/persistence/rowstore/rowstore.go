// Package rowstore is the hosted-backend persistence collaborator: a MySQL
// database driven through GORM, one table per collection, orders join-fetched
// together with their line items.
package rowstore

import (
	"fmt"
	"log"
	"time"

	"go-tea-store/internal/models"
	"go-tea-store/internal/persistence"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

type Store struct {
	db *gorm.DB
}

var _ persistence.Backend = (*Store)(nil)

// Connect opens the MySQL connection and syncs the schema. The database may
// still be starting up (docker-compose), so retry a few times before failing.
func Connect(dsn string) (*Store, error) {
	if dsn == "" {
		return nil, fmt.Errorf("DB_DSN is empty; configure your database")
	}

	var db *gorm.DB
	var err error
	for i := 0; i < 5; i++ {
		db, err = gorm.Open(mysql.Open(dsn), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Warn),
		})
		if err == nil {
			break
		}
		log.Printf("Failed to connect to database. Retrying in 2 seconds... (%d/5)", i+1)
		time.Sleep(2 * time.Second)
	}
	if err != nil {
		return nil, fmt.Errorf("connect to MySQL after 5 attempts: %w", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Order{},
		&models.CartItem{},
		&models.PurchaseOrder{},
		&models.PurchaseItem{},
		&models.Review{},
		&models.InvoiceSettings{},
		&models.PaymentSettings{},
		&models.BrandAssets{},
	)
	if err != nil {
		return nil, fmt.Errorf("sync schema: %w", err)
	}

	log.Println("✅ Successfully connected to MySQL!")
	return &Store{db: db}, nil
}

func (s *Store) Load() (*persistence.State, error) {
	st := &persistence.State{}

	if err := s.db.Find(&st.Products).Error; err != nil {
		return nil, fmt.Errorf("fetch products: %w", err)
	}
	// Join-fetch: every order comes back with its line items attached.
	if err := s.db.Preload("Items").Order("date desc, id desc").Find(&st.Orders).Error; err != nil {
		return nil, fmt.Errorf("fetch orders: %w", err)
	}
	if err := s.db.Preload("Items").Order("date desc, id desc").Find(&st.PurchaseOrders).Error; err != nil {
		return nil, fmt.Errorf("fetch purchase orders: %w", err)
	}
	if err := s.db.Find(&st.Users).Error; err != nil {
		return nil, fmt.Errorf("fetch users: %w", err)
	}
	if err := s.db.Order("date desc").Find(&st.Reviews).Error; err != nil {
		return nil, fmt.Errorf("fetch reviews: %w", err)
	}

	var inv models.InvoiceSettings
	if err := s.db.First(&inv, 1).Error; err == nil {
		st.InvoiceSettings = &inv
	}
	var pay models.PaymentSettings
	if err := s.db.First(&pay, 1).Error; err == nil {
		st.PaymentSettings = &pay
	}
	var brand models.BrandAssets
	if err := s.db.First(&brand, 1).Error; err == nil {
		st.BrandAssets = &brand
	}

	return st, nil
}

// --- Products ---

func (s *Store) InsertProduct(p models.Product) error {
	return s.db.Create(&p).Error
}

func (s *Store) UpdateProduct(p models.Product) error {
	return s.db.Save(&p).Error
}

func (s *Store) DeleteProduct(id string) error {
	return s.db.Delete(&models.Product{}, "id = ?", id).Error
}

// --- Orders ---

func (s *Store) InsertOrder(o models.Order) error {
	// GORM inserts the line items alongside the header.
	return s.db.Create(&o).Error
}

func (s *Store) UpdateOrder(o models.Order) error {
	// Line items are immutable after creation; only the header changes.
	return s.db.Omit("Items").Save(&o).Error
}

func (s *Store) DeleteOrder(id string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.CartItem{}, "order_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Order{}, "id = ?", id).Error
	})
}

// --- Purchase orders ---

func (s *Store) InsertPurchaseOrder(po models.PurchaseOrder) error {
	return s.db.Create(&po).Error
}

func (s *Store) UpdatePurchaseOrder(po models.PurchaseOrder) error {
	return s.db.Omit("Items").Save(&po).Error
}

func (s *Store) DeletePurchaseOrder(id string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.PurchaseItem{}, "purchase_order_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.PurchaseOrder{}, "id = ?", id).Error
	})
}

// --- Users ---

func (s *Store) InsertUser(u models.User) error {
	return s.db.Create(&u).Error
}

func (s *Store) UpdateUser(u models.User) error {
	return s.db.Save(&u).Error
}

// --- Reviews ---

func (s *Store) InsertReview(r models.Review) error {
	return s.db.Create(&r).Error
}

func (s *Store) UpdateReview(r models.Review) error {
	return s.db.Save(&r).Error
}

func (s *Store) DeleteReview(id string) error {
	return s.db.Delete(&models.Review{}, "id = ?", id).Error
}

// --- Settings singletons (fixed row id 1, upsert on save) ---

func (s *Store) SaveInvoiceSettings(v models.InvoiceSettings) error {
	v.ID = 1
	return s.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&v).Error
}

func (s *Store) SavePaymentSettings(v models.PaymentSettings) error {
	v.ID = 1
	return s.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&v).Error
}

func (s *Store) SaveBrandAssets(v models.BrandAssets) error {
	v.ID = 1
	return s.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&v).Error
}
