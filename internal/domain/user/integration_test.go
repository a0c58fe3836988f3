// internal/domain/user/integration_test.go
package user

import (
	"fmt"
	"io"
	"os"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/cart"
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
		if err := db.AutoMigrate(&User{}, &cart.Cart{}); err != nil {
			fmt.Fprintf(os.Stderr, "failed to migrate test database: %v\n", err)
			os.Exit(1)
		}
		testDB = db
	}

	os.Exit(m.Run())
}

// cleanupTables doubles as the integration-test gate: without a database
// the test is skipped, the pure-logic tests in this package still run.
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

func integrationService() *Service {
	cfg := &config.Config{}
	cfg.App.Name = "storefront-api-test"
	cfg.Security.BcryptCost = 4
	cfg.JWT.Secret = "test-secret-key-for-integration-tests"
	cfg.JWT.AccessTokenExpiry = 15 * time.Minute
	cfg.JWT.RefreshTokenExpiry = 24 * time.Hour

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	return NewService(testDB, cfg, logger)
}

func TestService_MixedCaseEmailRegisterLogin(t *testing.T) {
	cleanupTables(t, "carts", "users")
	svc := integrationService()

	reg, err := svc.Register(&RegisterRequest{
		Email:      "Ana@Example.com",
		Password:   "Passw0rd1",
		NationalID: "1234567890",
		Name:       "Ana",
	})
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", reg.User.Email)

	// Login with the exact string used at registration
	resp, err := svc.Login(&LoginRequest{Email: "Ana@Example.com", Password: "Passw0rd1"})
	require.NoError(t, err)
	assert.Equal(t, reg.User.ID, resp.User.ID)

	// And with a different casing of the same address
	resp, err = svc.Login(&LoginRequest{Email: "ANA@EXAMPLE.COM", Password: "Passw0rd1"})
	require.NoError(t, err)
	assert.Equal(t, reg.User.ID, resp.User.ID)
}

func TestService_DuplicateEmailAnyCasing(t *testing.T) {
	cleanupTables(t, "carts", "users")
	svc := integrationService()

	_, err := svc.Register(&RegisterRequest{
		Email:      "ana@example.com",
		Password:   "Passw0rd1",
		NationalID: "1234567890",
		Name:       "Ana",
	})
	require.NoError(t, err)

	_, err = svc.Register(&RegisterRequest{
		Email:      "ANA@Example.com",
		Password:   "Passw0rd1",
		NationalID: "0987654321",
		Name:       "Ana Again",
	})
	assert.ErrorIs(t, err, ErrEmailInUse)
}

func TestService_RegisterCreatesCart(t *testing.T) {
	cleanupTables(t, "carts", "users")
	svc := integrationService()

	reg, err := svc.Register(&RegisterRequest{
		Email:      "cart@example.com",
		Password:   "Passw0rd1",
		NationalID: "1234567890",
		Name:       "Cart Owner",
	})
	require.NoError(t, err)

	var owned cart.Cart
	require.NoError(t, testDB.Where("owner_id = ?", reg.User.ID).First(&owned).Error)
	assert.Empty(t, owned.Items)
}
