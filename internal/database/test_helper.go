package database

import (
	"fmt"
	"testing"
	"time"

	"expenseease/internal/config"
	"expenseease/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	testDB := &DB{
		DB: db,
		config: &config.DatabaseConfig{
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
	}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return testDB
}

func CreateTestUser(t *testing.T, db *DB, email string) *models.User {
	t.Helper()

	user := &models.User{
		Email: email,
		Name:  "Test User",
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}

	return user
}

func CreateTestCategory(t *testing.T, db *DB, ownerID uuid.UUID, name string) *models.BudgetCategory {
	t.Helper()

	category := &models.BudgetCategory{
		OwnerID: ownerID,
		Name:    name,
	}

	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to create test category: %v", err)
	}

	return category
}

func CreateTestTransaction(t *testing.T, db *DB, ownerID uuid.UUID, category string, amount float64, occurredAt time.Time) *models.Transaction {
	t.Helper()

	txn := &models.Transaction{
		OwnerID:         ownerID,
		Amount:          decimal.NewFromFloat(amount),
		TransactionType: models.TransactionTypeDebit,
		Description:     "test spend",
		Category:        category,
		OccurredAt:      occurredAt,
		Source:          models.TransactionSourceManual,
	}

	if err := db.Create(txn).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}

	return txn
}

func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	tables := []string{
		"notifications",
		"bank_accounts",
		"items",
		"goals",
		"dynamic_budgets",
		"budgets",
		"transactions",
		"budget_categories",
		"users",
	}

	for _, table := range tables {
		if err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			t.Logf("failed to cleanup table %s: %v", table, err)
		}
	}
}
