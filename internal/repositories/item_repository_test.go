package repositories

import (
	"testing"
	"time"

	"expenseease/internal/database"
	"expenseease/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

func TestItemRepository(t *testing.T) {
	suite.Run(t, new(ItemRepositorySuite))
}

type ItemRepositorySuite struct {
	suite.Suite
	db       *database.DB
	repo     ItemRepositoryInterface
	accounts BankAccountRepositoryInterface
	ownerID  uuid.UUID
}

func (s *ItemRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewItemRepository(s.db.DB)
	s.accounts = NewBankAccountRepository(s.db.DB)

	user := database.CreateTestUser(s.T(), s.db, "item-owner@example.com")
	s.ownerID = user.ID
}

func (s *ItemRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *ItemRepositorySuite) newItem(itemID string) *models.Item {
	return &models.Item{
		OwnerID:         s.ownerID,
		ItemID:          itemID,
		AccessToken:     "access-" + itemID,
		InstitutionID:   "ins_1",
		InstitutionName: "First Platypus Bank",
	}
}

func (s *ItemRepositorySuite) TestCreateAndGetByItemID() {
	item := s.newItem("item-1")
	s.Require().NoError(s.repo.Create(item))

	found, err := s.repo.GetByItemID("item-1")
	s.NoError(err)
	s.Equal(item.ID, found.ID)
	s.Equal(models.ItemStatusGood, found.Status)

	_, err = s.repo.GetByItemID("missing")
	s.Equal(ErrItemNotFound, err)
}

func (s *ItemRepositorySuite) TestUpdateCursor() {
	item := s.newItem("item-1")
	s.Require().NoError(s.repo.Create(item))

	s.NoError(s.repo.UpdateCursor(item.ID, "cursor-abc"))

	found, err := s.repo.GetByID(item.ID)
	s.NoError(err)
	s.Equal("cursor-abc", found.TransactionsCursor)
}

func (s *ItemRepositorySuite) TestUpdateStatus() {
	item := s.newItem("item-1")
	s.Require().NoError(s.repo.Create(item))

	s.NoError(s.repo.UpdateStatus(item.ID, models.ItemStatusBad))

	found, err := s.repo.GetByID(item.ID)
	s.NoError(err)
	s.Equal(models.ItemStatusBad, found.Status)

	s.Equal(models.ErrInvalidItemStatus, s.repo.UpdateStatus(item.ID, "WEIRD"))
}

func (s *ItemRepositorySuite) TestGetSyncable_SkipsBadItems() {
	good := s.newItem("item-good")
	s.Require().NoError(s.repo.Create(good))

	bad := s.newItem("item-bad")
	bad.Status = models.ItemStatusBad
	s.Require().NoError(s.repo.Create(bad))

	items, err := s.repo.GetSyncable()
	s.NoError(err)
	s.Require().Len(items, 1)
	s.Equal("item-good", items[0].ItemID)
}

func (s *ItemRepositorySuite) TestTouchLastSync() {
	item := s.newItem("item-1")
	s.Require().NoError(s.repo.Create(item))

	at := time.Now().Truncate(time.Second)
	s.NoError(s.repo.TouchLastSync(item.ID, at))

	found, err := s.repo.GetByID(item.ID)
	s.NoError(err)
	s.Require().NotNil(found.LastSuccessfulSyncAt)
	s.WithinDuration(at, *found.LastSuccessfulSyncAt, time.Second)
}

func (s *ItemRepositorySuite) TestUpsertAccounts() {
	item := s.newItem("item-1")
	s.Require().NoError(s.repo.Create(item))

	accounts := []models.BankAccount{
		{
			ItemRowID:      item.ID,
			AccountID:      "acc-1",
			Name:           "Checking",
			CurrentBalance: decimal.NewFromFloat(1000.00),
			AccountType:    "depository",
		},
	}
	s.Require().NoError(s.accounts.UpsertAccounts(accounts))

	// second pull refreshes the balance instead of duplicating the row
	refreshed := []models.BankAccount{
		{
			ItemRowID:      item.ID,
			AccountID:      "acc-1",
			Name:           "Checking",
			CurrentBalance: decimal.NewFromFloat(850.00),
			AccountType:    "depository",
		},
	}
	s.Require().NoError(s.accounts.UpsertAccounts(refreshed))

	stored, err := s.accounts.GetByItemRowID(item.ID)
	s.NoError(err)
	s.Require().Len(stored, 1)
	s.True(stored[0].CurrentBalance.Equal(decimal.NewFromFloat(850.00)))

	byOwner, err := s.accounts.GetByOwnerID(s.ownerID)
	s.NoError(err)
	s.Len(byOwner, 1)
}
