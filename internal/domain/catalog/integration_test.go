// internal/domain/catalog/integration_test.go
package catalog

import (
	"fmt"
	"io"
	"os"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/your-org/storefront-backend/internal/config"
)

var testDB *gorm.DB

func TestMain(m *testing.M) {
	if dsn := os.Getenv("TEST_DATABASE_URL"); dsn != "" {
		db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
			Logger: gormlogger.Default.LogMode(gormlogger.Silent),
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to connect to test database: %v\n", err)
			os.Exit(1)
		}
		if err := db.AutoMigrate(&Category{}, &Color{}, &Material{}, &Size{}, &Garment{}, &Product{}); err != nil {
			fmt.Fprintf(os.Stderr, "failed to migrate test database: %v\n", err)
			os.Exit(1)
		}
		testDB = db
	}

	os.Exit(m.Run())
}

// cleanupTables doubles as the integration-test gate: without a database
// the test is skipped.
func cleanupTables(t *testing.T, tables ...string) {
	t.Helper()
	if testDB == nil {
		t.Skip("TEST_DATABASE_URL not set")
	}
	for _, table := range tables {
		if err := testDB.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			t.Fatalf("failed to cleanup table %s: %v", table, err)
		}
	}
}

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func TestProductService_CreateGetRoundTrip(t *testing.T) {
	cleanupTables(t, "products")
	svc := NewProductService(testDB, &config.Config{}, quietLogger())

	created, err := svc.CreateProduct(&ProductCreateRequest{
		Name:        "Camisa clásica",
		Description: "Manga larga",
		Price:       19.99,
		ImageURL:    "https://cdn.example.com/camisa.png",
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	found, err := svc.GetProduct(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
	assert.Equal(t, "Camisa clásica", found.Name)
	assert.Equal(t, "Manga larga", found.Description)
	assert.Equal(t, 19.99, found.Price)
	assert.Equal(t, "https://cdn.example.com/camisa.png", found.ImageURL)
}

func TestLookupService_MaterialCreateGetRoundTrip(t *testing.T) {
	cleanupTables(t, "materials")
	svc := NewLookupService(testDB, &config.Config{}, quietLogger())

	created, err := svc.CreateMaterial(&MaterialRequest{Name: "Algodón", ExtraPrice: 2.5})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	found, err := svc.GetMaterial(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
	assert.Equal(t, "Algodón", found.Name)
	assert.Equal(t, 2.5, found.ExtraPrice)

	_, err = svc.GetMaterial("missing-id")
	assert.ErrorIs(t, err, ErrNotFound)
}
