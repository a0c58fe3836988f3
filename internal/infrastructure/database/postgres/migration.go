// internal/infrastructure/database/postgres/migration.go
package postgres

import (
	"fmt"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/cart"
	"github.com/your-org/storefront-backend/internal/domain/catalog"
	"github.com/your-org/storefront-backend/internal/domain/settings"
	"github.com/your-org/storefront-backend/internal/domain/upload"
	"github.com/your-org/storefront-backend/internal/domain/user"
)

// Migration handles database migrations
type Migration struct {
	db     *gorm.DB
	config *config.Config
}

// NewMigration creates a new migration instance
func NewMigration(db *gorm.DB, cfg *config.Config) *Migration {
	return &Migration{
		db:     db,
		config: cfg,
	}
}

// RunAutoMigrations runs GORM auto-migrations for all models
func (m *Migration) RunAutoMigrations() error {
	log.Println("🔄 Running database auto-migrations...")

	// Dependency order: reference tables before the rows that point at them
	models := []interface{}{
		&user.User{},

		&catalog.Category{},
		&catalog.Color{},
		&catalog.Material{},
		&catalog.Size{},
		&catalog.Garment{},
		&catalog.Product{},

		&cart.Cart{},

		&settings.WhatsAppContact{},

		&upload.UploadedFile{},
	}

	for _, model := range models {
		if err := m.db.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate model %T: %w", model, err)
		}
	}

	log.Println("✅ Database auto-migrations completed successfully")
	return nil
}

// CreateIndexes creates additional indexes for better performance
func (m *Migration) CreateIndexes() error {
	log.Println("🔄 Creating additional database indexes...")

	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_users_created_at ON users(created_at DESC)",
		"CREATE INDEX IF NOT EXISTS idx_users_role ON users(role)",

		"CREATE INDEX IF NOT EXISTS idx_products_price ON products(price)",
		"CREATE INDEX IF NOT EXISTS idx_products_created_at ON products(created_at DESC)",

		"CREATE INDEX IF NOT EXISTS idx_garments_category ON garments(category_id)",

		"CREATE UNIQUE INDEX IF NOT EXISTS idx_carts_owner ON carts(owner_id)",

		"CREATE INDEX IF NOT EXISTS idx_uploaded_files_created_at ON uploaded_files(created_at DESC)",
	}

	successCount := 0
	failCount := 0

	for _, indexSQL := range indexes {
		if err := m.db.Exec(indexSQL).Error; err != nil {
			log.Printf("⚠️ Failed to create index: %v", err)
			failCount++
		} else {
			successCount++
		}
	}

	log.Printf("✅ Created %d indexes successfully (%d failed)", successCount, failCount)
	return nil
}

// SeedInitialData inserts initial data into the database
func (m *Migration) SeedInitialData() error {
	log.Println("🌱 Seeding initial data...")

	if err := m.seedAdminUser(); err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}

	if err := m.seedSellerContact(); err != nil {
		return fmt.Errorf("failed to seed seller contact: %w", err)
	}

	log.Println("✅ Initial data seeded successfully")
	return nil
}

func (m *Migration) seedAdminUser() error {
	var existing user.User
	result := m.db.Where("email = ?", "admin@example.com").First(&existing)
	if result.Error == nil {
		log.Println("⏭️ Admin user already exists")
		return nil
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte("Admin1234"), m.config.Security.BcryptCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	adminUser := user.User{
		Name:     "Admin",
		Email:    "admin@example.com",
		Password: string(hashedPassword),
		Role:     user.RoleAdmin,
	}

	return m.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&adminUser).Error; err != nil {
			return fmt.Errorf("failed to create admin user: %w", err)
		}
		adminCart := cart.Cart{
			OwnerID: adminUser.ID,
			Items:   cart.ItemList{},
		}
		if err := tx.Create(&adminCart).Error; err != nil {
			return fmt.Errorf("failed to create admin cart: %w", err)
		}
		log.Println("✅ Created admin user: admin@example.com (password: Admin1234)")
		return nil
	})
}

// seedSellerContact stores the configured WhatsApp contact so checkout
// works before an admin ever touches the settings endpoint
func (m *Migration) seedSellerContact() error {
	var existing settings.WhatsAppContact
	result := m.db.Where("id = ?", settings.DefaultID).First(&existing)
	if result.Error == nil {
		log.Println("⏭️ Seller contact already exists")
		return nil
	}

	contact := settings.WhatsAppContact{
		ID:          settings.DefaultID,
		CountryCode: m.config.WhatsApp.DefaultCountryCode,
		PhoneNumber: m.config.WhatsApp.DefaultPhoneNumber,
	}
	if contact.PhoneNumber == "" {
		log.Println("⏭️ No default seller contact configured, skipping")
		return nil
	}

	if err := m.db.Create(&contact).Error; err != nil {
		return fmt.Errorf("failed to create seller contact: %w", err)
	}

	log.Printf("✅ Created seller contact: +%s %s", contact.CountryCode, contact.PhoneNumber)
	return nil
}

// GetTableInfo logs row counts for every public table
func (m *Migration) GetTableInfo() error {
	var tables []string

	if err := m.db.Raw("SELECT tablename FROM pg_tables WHERE schemaname = 'public' ORDER BY tablename").Scan(&tables).Error; err != nil {
		return err
	}

	log.Println("📊 Database Tables Information:")
	log.Println("================================")

	totalRecords := int64(0)
	for _, table := range tables {
		var count int64
		m.db.Table(table).Count(&count)
		totalRecords += count
		log.Printf("%-25s | %d records", table, count)
	}

	log.Println("================================")
	log.Printf("📈 Total records across all tables: %d", totalRecords)
	log.Printf("🗂️ Total tables: %d", len(tables))

	return nil
}

// DropAllTables drops all tables (use with extreme caution)
func (m *Migration) DropAllTables() error {
	log.Println("⚠️ WARNING: Dropping all database tables...")

	// Reverse dependency order
	tables := []string{
		"uploaded_files",
		"whatsapp_contacts",
		"carts",
		"products",
		"garments",
		"sizes",
		"materials",
		"colors",
		"categories",
		"users",
	}

	for _, table := range tables {
		if err := m.db.Exec(fmt.Sprintf("DROP TABLE IF EXISTS %s CASCADE", table)).Error; err != nil {
			log.Printf("⚠️ Failed to drop table %s: %v", table, err)
		}
	}

	log.Println("✅ All tables dropped successfully")
	return nil
}
