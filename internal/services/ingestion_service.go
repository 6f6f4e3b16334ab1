package services

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"expenseease/internal/dto"
	"expenseease/internal/models"
	"expenseease/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidAmountFormat   = errors.New("invalid amount format")
	ErrInvalidDateFormat     = errors.New("invalid date format, expected YYYY-MM-DD")
	ErrExternalRefRequired   = errors.New("bank_sync transactions require an external reference")
	ErrInvalidOwnerID        = errors.New("invalid owner ID")
)

const ingestDateLayout = "2006-01-02"

// IngestionService normalizes and stores transactions from every source.
// Dedup policy is decided by the source: bank_sync replaces by external_ref,
// a ref_number makes the submission idempotent, and everything else is
// inserted as new.
type IngestionService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	categoryRepo    repositories.CategoryRepositoryInterface
	metrics         MetricsRecorderInterface
	logger          *slog.Logger
}

// NewIngestionService creates a new ingestion service
func NewIngestionService(
	transactionRepo repositories.TransactionRepositoryInterface,
	categoryRepo repositories.CategoryRepositoryInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) IngestionServiceInterface {
	return &IngestionService{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
		metrics:         metrics,
		logger:          logger,
	}
}

// Ingest stores one normalized transaction and reports what the store did
// with it. On a ref_number duplicate the existing record is returned
// unchanged; on a bank_sync external_ref match the stored fields are
// replaced by the incoming ones.
func (s *IngestionService) Ingest(ownerID uuid.UUID, req *dto.IngestTransactionRequest) (*models.Transaction, repositories.PutOutcome, error) {
	start := time.Now()

	if ownerID == uuid.Nil {
		return nil, repositories.PutDuplicateIgnored, ErrInvalidOwnerID
	}

	transaction, err := s.buildTransaction(ownerID, req)
	if err != nil {
		return nil, repositories.PutDuplicateIgnored, err
	}

	if transaction.Category != models.CategoryUncategorized {
		if _, err := s.categoryRepo.EnsureExists(ownerID, transaction.Category); err != nil {
			return nil, repositories.PutDuplicateIgnored, fmt.Errorf("failed to ensure category: %w", err)
		}
	}

	stored, outcome, err := s.store(ownerID, transaction)
	if err != nil {
		return nil, outcome, err
	}

	s.metrics.IncrementCounter("transaction.ingested", map[string]string{
		"source":  stored.Source,
		"outcome": outcome.String(),
	})
	s.metrics.RecordProcessingTime("transaction.ingest", time.Since(start))

	s.logger.Info("transaction ingested",
		slog.String("owner_id", ownerID.String()),
		slog.String("transaction_id", stored.ID.String()),
		slog.String("source", stored.Source),
		slog.String("outcome", outcome.String()))

	return stored, outcome, nil
}

func (s *IngestionService) buildTransaction(ownerID uuid.UUID, req *dto.IngestTransactionRequest) (*models.Transaction, error) {
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return nil, ErrInvalidAmountFormat
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, models.ErrInvalidAmount
	}

	occurredAt := time.Now()
	if req.Date != "" {
		occurredAt, err = time.Parse(ingestDateLayout, req.Date)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
	}

	category := req.Category
	if category == "" {
		category = models.CategoryUncategorized
	}

	transaction := &models.Transaction{
		OwnerID:         ownerID,
		Amount:          amount,
		TransactionType: req.Type,
		Description:     req.Description,
		Category:        category,
		OccurredAt:      occurredAt,
		Bank:            req.Bank,
		Source:          req.Source,
	}

	if req.ExternalRef != nil && *req.ExternalRef != "" {
		transaction.ExternalRef = req.ExternalRef
	}
	if req.RefNumber != nil && *req.RefNumber != "" {
		transaction.RefNumber = req.RefNumber
	}

	if transaction.Source == models.TransactionSourceBankSync && transaction.ExternalRef == nil {
		return nil, ErrExternalRefRequired
	}

	return transaction, nil
}

func (s *IngestionService) store(ownerID uuid.UUID, transaction *models.Transaction) (*models.Transaction, repositories.PutOutcome, error) {
	// Bank feed records replace whatever is stored under the same
	// external_ref: the feed re-sends modified transactions.
	if transaction.Source == models.TransactionSourceBankSync {
		outcome, err := s.transactionRepo.UpsertByExternalRef(transaction)
		if err != nil {
			return nil, outcome, fmt.Errorf("failed to upsert transaction: %w", err)
		}
		return transaction, outcome, nil
	}

	// A reference number makes the submission idempotent: the first write
	// wins and a repeat returns the stored record unchanged.
	if transaction.RefNumber != nil {
		outcome, err := s.transactionRepo.Put(transaction)
		if err != nil {
			return nil, outcome, fmt.Errorf("failed to put transaction: %w", err)
		}
		if outcome == repositories.PutDuplicateIgnored {
			existing, err := s.transactionRepo.GetByRefNumber(ownerID, *transaction.RefNumber)
			if err != nil {
				return nil, outcome, fmt.Errorf("failed to load existing transaction: %w", err)
			}
			return existing, outcome, nil
		}
		return transaction, outcome, nil
	}

	// OCR and manual entries without a reference are always inserted as new.
	if err := s.transactionRepo.Create(transaction); err != nil {
		return nil, repositories.PutDuplicateIgnored, fmt.Errorf("failed to create transaction: %w", err)
	}
	return transaction, repositories.PutInserted, nil
}

// GetTransactions lists an owner's transactions newest-first
func (s *IngestionService) GetTransactions(ownerID uuid.UUID, filters repositories.TransactionFilters) ([]models.Transaction, int64, error) {
	if ownerID == uuid.Nil {
		return nil, 0, ErrInvalidOwnerID
	}
	return s.transactionRepo.GetByOwnerID(ownerID, filters)
}

// DeleteTransaction removes one transaction owned by the given user
func (s *IngestionService) DeleteTransaction(ownerID, id uuid.UUID) error {
	if ownerID == uuid.Nil {
		return ErrInvalidOwnerID
	}
	return s.transactionRepo.Delete(ownerID, id)
}

// DeleteAllTransactions wipes every transaction for an owner. Deleting zero
// rows is not an error.
func (s *IngestionService) DeleteAllTransactions(ownerID uuid.UUID) (int64, error) {
	if ownerID == uuid.Nil {
		return 0, ErrInvalidOwnerID
	}

	deleted, err := s.transactionRepo.DeleteAll(ownerID)
	if err != nil {
		return 0, err
	}

	s.logger.Info("all transactions deleted",
		slog.String("owner_id", ownerID.String()),
		slog.Int64("deleted", deleted))

	return deleted, nil
}
