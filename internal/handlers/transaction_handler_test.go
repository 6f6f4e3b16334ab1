package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"expenseease/internal/dto"
	"expenseease/internal/models"
	"expenseease/internal/repositories"
	"expenseease/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type TransactionHandlerTestSuite struct {
	suite.Suite
	echo      *echo.Echo
	ctrl      *gomock.Controller
	ingestion *service_mocks.MockIngestionServiceInterface
	category  *service_mocks.MockCategoryServiceInterface
	handler   *TransactionHandler
	ownerID   uuid.UUID
}

func (s *TransactionHandlerTestSuite) SetupTest() {
	s.echo = echo.New()
	s.echo.Validator = NewValidator()
	s.ctrl = gomock.NewController(s.T())
	s.ingestion = service_mocks.NewMockIngestionServiceInterface(s.ctrl)
	s.category = service_mocks.NewMockCategoryServiceInterface(s.ctrl)
	s.handler = NewTransactionHandler(s.ingestion, s.category)
	s.ownerID = uuid.New()
}

func (s *TransactionHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestTransactionHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionHandlerTestSuite))
}

func (s *TransactionHandlerTestSuite) newContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.Set("user_id", s.ownerID)
	return c, rec
}

func sampleTransaction(ownerID uuid.UUID) *models.Transaction {
	return &models.Transaction{
		ID:              uuid.New(),
		OwnerID:         ownerID,
		Amount:          decimal.NewFromFloat(42.50),
		TransactionType: models.TransactionTypeDebit,
		Description:     "Lunch",
		Category:        "Food",
		OccurredAt:      time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
		Source:          models.TransactionSourceManual,
		ISOCurrencyCode: "USD",
	}
}

func (s *TransactionHandlerTestSuite) TestCreateTransaction_Inserted() {
	body := `{"amount":"42.50","type":"debit","description":"Lunch","category":"Food","date":"2025-06-10","source":"manual"}`
	c, rec := s.newContext(http.MethodPost, "/transactions", body)

	s.ingestion.EXPECT().
		Ingest(s.ownerID, gomock.Any()).
		Return(sampleTransaction(s.ownerID), repositories.PutInserted, nil)

	s.NoError(s.handler.CreateTransaction(c))
	s.Equal(http.StatusCreated, rec.Code)

	var resp dto.IngestTransactionResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("inserted", resp.Outcome)
	s.Equal("42.50", resp.Transaction.Amount)
}

func (s *TransactionHandlerTestSuite) TestCreateTransaction_DuplicateReplaysExisting() {
	ref := "SMS-REF-1"
	body := `{"amount":"42.50","type":"debit","description":"Lunch","source":"sms","refNumber":"` + ref + `"}`
	c, rec := s.newContext(http.MethodPost, "/transactions", body)

	existing := sampleTransaction(s.ownerID)
	existing.RefNumber = &ref
	s.ingestion.EXPECT().
		Ingest(s.ownerID, gomock.Any()).
		Return(existing, repositories.PutDuplicateIgnored, nil)

	s.NoError(s.handler.CreateTransaction(c))
	// Replays answer with the original record, not a new resource
	s.Equal(http.StatusOK, rec.Code)

	var resp dto.IngestTransactionResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("duplicate", resp.Outcome)
}

func (s *TransactionHandlerTestSuite) TestCreateTransaction_RejectsUnknownSource() {
	body := `{"amount":"42.50","type":"debit","description":"Lunch","source":"carrier_pigeon"}`
	c, _ := s.newContext(http.MethodPost, "/transactions", body)

	// Validation fails before the service is reached
	s.Error(s.handler.CreateTransaction(c))
}

func (s *TransactionHandlerTestSuite) TestCreateTransaction_RejectsNegativeAmount() {
	body := `{"amount":"-5.00","type":"debit","description":"Lunch","source":"manual"}`
	c, _ := s.newContext(http.MethodPost, "/transactions", body)

	s.Error(s.handler.CreateTransaction(c))
}

func (s *TransactionHandlerTestSuite) TestCreateTransaction_MissingOwner() {
	req := httptest.NewRequest(http.MethodPost, "/transactions", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	s.NoError(s.handler.CreateTransaction(c))
	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *TransactionHandlerTestSuite) TestListTransactions() {
	c, rec := s.newContext(http.MethodGet, "/transactions?category=Food&limit=10", "")

	s.ingestion.EXPECT().
		GetTransactions(s.ownerID, gomock.Any()).
		DoAndReturn(func(_ uuid.UUID, filters repositories.TransactionFilters) ([]models.Transaction, int64, error) {
			s.Equal("Food", filters.Category)
			s.Equal(10, filters.Limit)
			return []models.Transaction{*sampleTransaction(s.ownerID)}, 1, nil
		})

	s.NoError(s.handler.ListTransactions(c))
	s.Equal(http.StatusOK, rec.Code)

	var resp dto.ListTransactionsResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(int64(1), resp.Total)
	s.Len(resp.Transactions, 1)
}

func (s *TransactionHandlerTestSuite) TestListTransactions_InvalidType() {
	c, rec := s.newContext(http.MethodGet, "/transactions?type=transfer", "")

	s.NoError(s.handler.ListTransactions(c))
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *TransactionHandlerTestSuite) TestBulkRecategorize() {
	body := `{"description":"Starbucks","category":"Coffee"}`
	c, rec := s.newContext(http.MethodPost, "/transactions/recategorize", body)

	s.category.EXPECT().
		BulkRecategorize(s.ownerID, "Starbucks", "Coffee").
		Return(int64(7), nil)

	s.NoError(s.handler.BulkRecategorize(c))
	s.Equal(http.StatusOK, rec.Code)

	var resp dto.BulkRecategorizeResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(int64(7), resp.Updated)
}

func (s *TransactionHandlerTestSuite) TestDeleteTransaction_NotFound() {
	id := uuid.New()
	c, rec := s.newContext(http.MethodDelete, "/transactions/"+id.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	s.ingestion.EXPECT().
		DeleteTransaction(s.ownerID, id).
		Return(repositories.ErrTransactionNotFound)

	s.NoError(s.handler.DeleteTransaction(c))
	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *TransactionHandlerTestSuite) TestDeleteAllTransactions() {
	c, rec := s.newContext(http.MethodDelete, "/transactions", "")

	s.ingestion.EXPECT().
		DeleteAllTransactions(s.ownerID).
		Return(int64(3), nil)

	s.NoError(s.handler.DeleteAllTransactions(c))
	s.Equal(http.StatusOK, rec.Code)

	var resp dto.DeleteAllResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(int64(3), resp.Deleted)
}
