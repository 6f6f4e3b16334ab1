package database

import (
	"fmt"
	"log"
	"time"

	"expenseease/internal/config"
	"expenseease/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type DB struct {
	*gorm.DB
	config *config.DatabaseConfig
}

func New(cfg *config.DatabaseConfig) (*DB, error) {
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN()), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxConnections)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{
		DB:     db,
		config: cfg,
	}, nil
}

func (db *DB) AutoMigrate() error {
	return db.DB.AutoMigrate(
		&models.User{},
		&models.BudgetCategory{},
		&models.Transaction{},
		&models.Budget{},
		&models.DynamicBudget{},
		&models.Goal{},
		&models.Item{},
		&models.BankAccount{},
		&models.Notification{},
	)
}

func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (db *DB) HealthCheck() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func (db *DB) Transaction(fn func(*gorm.DB) error) error {
	return db.DB.Transaction(fn)
}

func (db *DB) CreateIndexes() error {
	queries := []string{
		"CREATE INDEX IF NOT EXISTS idx_users_email ON users(email)",
		// Transaction indexes: spend aggregation scans by owner, category and date
		"CREATE INDEX IF NOT EXISTS idx_transactions_owner_id ON transactions(owner_id)",
		"CREATE INDEX IF NOT EXISTS idx_transactions_owner_category ON transactions(owner_id, category)",
		"CREATE INDEX IF NOT EXISTS idx_transactions_occurred_at ON transactions(occurred_at)",
		"CREATE INDEX IF NOT EXISTS idx_transactions_owner_type_occurred ON transactions(owner_id, transaction_type, occurred_at)",
		"CREATE INDEX IF NOT EXISTS idx_transactions_source ON transactions(source)",
		// Budget indexes: reconciliation walks active windows per owner
		"CREATE INDEX IF NOT EXISTS idx_budgets_owner_id ON budgets(owner_id)",
		"CREATE INDEX IF NOT EXISTS idx_budgets_owner_category ON budgets(owner_id, category_id)",
		"CREATE INDEX IF NOT EXISTS idx_budgets_date_range ON budgets(start_date, end_date)",
		"CREATE INDEX IF NOT EXISTS idx_budget_categories_owner ON budget_categories(owner_id)",
		"CREATE INDEX IF NOT EXISTS idx_dynamic_budgets_owner_period ON dynamic_budgets(owner_id, period)",
		"CREATE INDEX IF NOT EXISTS idx_goals_owner_id ON goals(owner_id)",
		// Item and account indexes
		"CREATE INDEX IF NOT EXISTS idx_items_owner_id ON items(owner_id)",
		"CREATE INDEX IF NOT EXISTS idx_items_item_id ON items(item_id)",
		"CREATE INDEX IF NOT EXISTS idx_items_status ON items(status)",
		"CREATE INDEX IF NOT EXISTS idx_bank_accounts_item_row_id ON bank_accounts(item_row_id)",
		"CREATE INDEX IF NOT EXISTS idx_notifications_owner_created ON notifications(owner_id, created_at)",
		"CREATE INDEX IF NOT EXISTS idx_notifications_read ON notifications(owner_id, read) WHERE read = false",
	}

	for _, query := range queries {
		if err := db.DB.Exec(query).Error; err != nil {
			log.Printf("Failed to create index: %s, error: %v", query, err)
		}
	}

	return nil
}

// PurgeReadNotifications deletes read notifications older than the retention
// window. Called from the scheduler, not on the request path.
func (db *DB) PurgeReadNotifications(olderThan time.Duration) error {
	cutoff := time.Now().Add(-olderThan)

	if err := db.DB.Where("read = ? AND created_at < ?", true, cutoff).
		Delete(&models.Notification{}).Error; err != nil {
		return fmt.Errorf("failed to purge read notifications: %w", err)
	}

	return nil
}

// Initialize creates and configures the database connection
func Initialize(cfg *config.Config) (*gorm.DB, error) {
	db, err := New(&cfg.Database)
	if err != nil {
		return nil, err
	}

	// Get the underlying sql.DB for migration runner
	sqlDB, err := db.DB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	// Run SQL-based migrations using golang-migrate if enabled
	if err := RunMigrationsIfEnabled(sqlDB); err != nil {
		log.Printf("Warning: migration runner failed: %v", err)
		log.Println("Falling back to GORM AutoMigrate...")

		// Fallback to GORM AutoMigrate
		if err := db.AutoMigrate(); err != nil {
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	if err := db.CreateIndexes(); err != nil {
		log.Printf("Warning: failed to create some indexes: %v", err)
	}

	log.Println("Database initialized successfully")

	return db.DB, nil
}
