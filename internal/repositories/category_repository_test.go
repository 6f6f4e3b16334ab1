package repositories

import (
	"testing"

	"expenseease/internal/database"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

func TestCategoryRepository(t *testing.T) {
	suite.Run(t, new(CategoryRepositorySuite))
}

type CategoryRepositorySuite struct {
	suite.Suite
	db      *database.DB
	repo    CategoryRepositoryInterface
	ownerID uuid.UUID
}

func (s *CategoryRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewCategoryRepository(s.db.DB)

	user := database.CreateTestUser(s.T(), s.db, "cat-owner@example.com")
	s.ownerID = user.ID
}

func (s *CategoryRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *CategoryRepositorySuite) TestEnsureExists_CreatesOnFirstReference() {
	category, err := s.repo.EnsureExists(s.ownerID, "Food")
	s.NoError(err)
	s.NotEqual(uuid.Nil, category.ID)
	s.Equal("Food", category.Name)

	again, err := s.repo.EnsureExists(s.ownerID, "Food")
	s.NoError(err)
	s.Equal(category.ID, again.ID)

	categories, err := s.repo.GetByOwnerID(s.ownerID)
	s.NoError(err)
	s.Len(categories, 1)
}

func (s *CategoryRepositorySuite) TestEnsureExists_ScopedPerOwner() {
	other := database.CreateTestUser(s.T(), s.db, "cat-other@example.com")

	mine, err := s.repo.EnsureExists(s.ownerID, "Travel")
	s.NoError(err)

	theirs, err := s.repo.EnsureExists(other.ID, "Travel")
	s.NoError(err)

	s.NotEqual(mine.ID, theirs.ID)
}

func (s *CategoryRepositorySuite) TestGetByName() {
	created, err := s.repo.EnsureExists(s.ownerID, "Rent")
	s.Require().NoError(err)

	found, err := s.repo.GetByName(s.ownerID, "Rent")
	s.NoError(err)
	s.Equal(created.ID, found.ID)

	_, err = s.repo.GetByName(s.ownerID, "Missing")
	s.Equal(ErrCategoryNotFound, err)
}
