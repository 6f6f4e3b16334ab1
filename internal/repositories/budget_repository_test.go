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

func TestBudgetRepository(t *testing.T) {
	suite.Run(t, new(BudgetRepositorySuite))
}

type BudgetRepositorySuite struct {
	suite.Suite
	db         *database.DB
	repo       BudgetRepositoryInterface
	ownerID    uuid.UUID
	categoryID uuid.UUID
}

func (s *BudgetRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewBudgetRepository(s.db.DB)

	user := database.CreateTestUser(s.T(), s.db, "budget-owner@example.com")
	s.ownerID = user.ID

	category := database.CreateTestCategory(s.T(), s.db, user.ID, "Food")
	s.categoryID = category.ID
}

func (s *BudgetRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *BudgetRepositorySuite) newMonthlyBudget(amount float64, start, end time.Time) *models.Budget {
	return &models.Budget{
		OwnerID:    s.ownerID,
		CategoryID: s.categoryID,
		Amount:     decimal.NewFromFloat(amount),
		Period:     models.BudgetPeriodMonthly,
		StartDate:  start,
		EndDate:    end,
	}
}

func (s *BudgetRepositorySuite) TestCreateAndGetByID() {
	budget := s.newMonthlyBudget(500.00,
		time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC))

	err := s.repo.Create(budget)
	s.NoError(err)
	s.Equal(1, budget.Version)

	found, err := s.repo.GetByID(s.ownerID, budget.ID)
	s.NoError(err)
	s.True(found.Amount.Equal(decimal.NewFromFloat(500.00)))
	s.Equal("Food", found.Category.Name)
}

func (s *BudgetRepositorySuite) TestGetByID_WrongOwner() {
	budget := s.newMonthlyBudget(500.00,
		time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC))
	s.Require().NoError(s.repo.Create(budget))

	_, err := s.repo.GetByID(uuid.New(), budget.ID)
	s.Equal(ErrBudgetNotFound, err)
}

func (s *BudgetRepositorySuite) TestGetCovering() {
	june := s.newMonthlyBudget(300.00,
		time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC))
	s.Require().NoError(s.repo.Create(june))

	july := s.newMonthlyBudget(350.00,
		time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 7, 31, 0, 0, 0, 0, time.UTC))
	s.Require().NoError(s.repo.Create(july))

	found, err := s.repo.GetCovering(s.ownerID, s.categoryID,
		time.Date(2025, 6, 15, 18, 30, 0, 0, time.UTC))
	s.NoError(err)
	s.Equal(june.ID, found.ID)

	found, err = s.repo.GetCovering(s.ownerID, s.categoryID,
		time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC))
	s.NoError(err)
	s.Equal(july.ID, found.ID)

	_, err = s.repo.GetCovering(s.ownerID, s.categoryID,
		time.Date(2025, 8, 10, 0, 0, 0, 0, time.UTC))
	s.Equal(ErrBudgetNotFound, err)
}

func (s *BudgetRepositorySuite) TestUpdateAmountWithOptimisticLock() {
	budget := s.newMonthlyBudget(200.00,
		time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC))
	s.Require().NoError(s.repo.Create(budget))

	err := s.repo.UpdateAmountWithOptimisticLock(budget.ID, decimal.NewFromFloat(240.00), 1)
	s.NoError(err)

	updated, err := s.repo.GetByID(s.ownerID, budget.ID)
	s.NoError(err)
	s.True(updated.Amount.Equal(decimal.NewFromFloat(240.00)))
	s.Equal(2, updated.Version)

	// stale version loses
	err = s.repo.UpdateAmountWithOptimisticLock(budget.ID, decimal.NewFromFloat(999.00), 1)
	s.Equal(models.ErrOptimisticLockConflict, err)

	unchanged, err := s.repo.GetByID(s.ownerID, budget.ID)
	s.NoError(err)
	s.True(unchanged.Amount.Equal(decimal.NewFromFloat(240.00)))
}

func (s *BudgetRepositorySuite) TestExistsCovering() {
	budget := s.newMonthlyBudget(100.00,
		time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC))
	s.Require().NoError(s.repo.Create(budget))

	exists, err := s.repo.ExistsCovering(s.ownerID, s.categoryID,
		time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC))
	s.NoError(err)
	s.True(exists)

	exists, err = s.repo.ExistsCovering(s.ownerID, s.categoryID,
		time.Date(2025, 9, 10, 0, 0, 0, 0, time.UTC))
	s.NoError(err)
	s.False(exists)
}

func (s *BudgetRepositorySuite) TestDelete() {
	budget := s.newMonthlyBudget(100.00,
		time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC))
	s.Require().NoError(s.repo.Create(budget))

	s.NoError(s.repo.Delete(s.ownerID, budget.ID))
	s.Equal(ErrBudgetNotFound, s.repo.Delete(s.ownerID, budget.ID))
}
