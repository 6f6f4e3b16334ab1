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

type BudgetHandlerTestSuite struct {
	suite.Suite
	echo    *echo.Echo
	ctrl    *gomock.Controller
	service *service_mocks.MockBudgetServiceInterface
	handler *BudgetHandler
	ownerID uuid.UUID
}

func (s *BudgetHandlerTestSuite) SetupTest() {
	s.echo = echo.New()
	s.echo.Validator = NewValidator()
	s.ctrl = gomock.NewController(s.T())
	s.service = service_mocks.NewMockBudgetServiceInterface(s.ctrl)
	s.handler = NewBudgetHandler(s.service)
	s.ownerID = uuid.New()
}

func (s *BudgetHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestBudgetHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(BudgetHandlerTestSuite))
}

func (s *BudgetHandlerTestSuite) newContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
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

func sampleBudget(ownerID uuid.UUID) *models.Budget {
	return &models.Budget{
		ID:         uuid.New(),
		OwnerID:    ownerID,
		CategoryID: uuid.New(),
		Amount:     decimal.NewFromInt(100),
		Period:     models.BudgetPeriodMonthly,
		StartDate:  time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC),
		Version:    1,
	}
}

func (s *BudgetHandlerTestSuite) TestCreateBudget() {
	body := `{"category":"Food","amount":"100.00","period":"monthly","startDate":"2025-06-01","endDate":"2025-06-30"}`
	c, rec := s.newContext(http.MethodPost, "/budgets", body)

	s.service.EXPECT().
		CreateBudget(s.ownerID, gomock.Any()).
		Return(sampleBudget(s.ownerID), nil)

	s.NoError(s.handler.CreateBudget(c))
	s.Equal(http.StatusCreated, rec.Code)

	var resp dto.BudgetResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("100.00", resp.Amount)
	s.Equal(models.BudgetPeriodMonthly, resp.Period)
}

func (s *BudgetHandlerTestSuite) TestCreateBudget_RejectsUnknownPeriod() {
	body := `{"category":"Food","amount":"100.00","period":"yearly","startDate":"2025-06-01","endDate":"2025-06-30"}`
	c, _ := s.newContext(http.MethodPost, "/budgets", body)

	s.Error(s.handler.CreateBudget(c))
}

func (s *BudgetHandlerTestSuite) TestCreateBudget_InvalidDateRange() {
	body := `{"category":"Food","amount":"100.00","period":"monthly","startDate":"2025-06-30","endDate":"2025-06-01"}`
	c, rec := s.newContext(http.MethodPost, "/budgets", body)

	s.service.EXPECT().
		CreateBudget(s.ownerID, gomock.Any()).
		Return(nil, models.ErrInvalidBudgetDateRange)

	s.NoError(s.handler.CreateBudget(c))
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *BudgetHandlerTestSuite) TestListBudgets() {
	c, rec := s.newContext(http.MethodGet, "/budgets", "")

	s.service.EXPECT().
		GetBudgetSummaries(s.ownerID).
		Return([]dto.BudgetSummaryResponse{{
			ID:             uuid.New(),
			Category:       "Food",
			Amount:         "100.00",
			Spent:          "85.00",
			Remaining:      "15.00",
			IsNearingLimit: true,
		}}, nil)

	s.NoError(s.handler.ListBudgets(c))
	s.Equal(http.StatusOK, rec.Code)

	var resp []dto.BudgetSummaryResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Require().Len(resp, 1)
	s.True(resp[0].IsNearingLimit)
}

func (s *BudgetHandlerTestSuite) TestAdjustBudget() {
	budget := sampleBudget(s.ownerID)
	budget.Amount = decimal.NewFromInt(120)
	c, rec := s.newContext(http.MethodPost, "/budgets/"+budget.ID.String()+"/adjust", "")
	c.SetParamNames("id")
	c.SetParamValues(budget.ID.String())

	s.service.EXPECT().
		AdjustBudget(s.ownerID, budget.ID).
		Return(budget, true, nil)

	s.NoError(s.handler.AdjustBudget(c))
	s.Equal(http.StatusOK, rec.Code)

	var resp dto.AdjustBudgetResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.True(resp.Adjusted)
	s.Equal("120.00", resp.Amount)
}

func (s *BudgetHandlerTestSuite) TestAdjustBudget_NotFound() {
	id := uuid.New()
	c, rec := s.newContext(http.MethodPost, "/budgets/"+id.String()+"/adjust", "")
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	s.service.EXPECT().
		AdjustBudget(s.ownerID, id).
		Return(nil, false, repositories.ErrBudgetNotFound)

	s.NoError(s.handler.AdjustBudget(c))
	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *BudgetHandlerTestSuite) TestGenerateDynamicBudgets() {
	body := `{"period":"monthly"}`
	c, rec := s.newContext(http.MethodPost, "/budgets/dynamic", body)

	s.service.EXPECT().
		GenerateDynamicBudgets(s.ownerID, models.BudgetPeriodMonthly).
		Return([]models.DynamicBudget{{
			Period:      models.BudgetPeriodMonthly,
			Category:    "Food",
			Amount:      decimal.NewFromInt(45),
			GeneratedAt: time.Now(),
		}}, nil)

	s.NoError(s.handler.GenerateDynamicBudgets(c))
	s.Equal(http.StatusOK, rec.Code)

	var resp []dto.DynamicBudgetResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Require().Len(resp, 1)
	s.Equal("45.00", resp[0].Amount)
}

func (s *BudgetHandlerTestSuite) TestListDynamicBudgets_DefaultsToMonthly() {
	c, rec := s.newContext(http.MethodGet, "/budgets/dynamic", "")

	s.service.EXPECT().
		GetDynamicBudgets(s.ownerID, models.BudgetPeriodMonthly).
		Return([]models.DynamicBudget{}, nil)

	s.NoError(s.handler.ListDynamicBudgets(c))
	s.Equal(http.StatusOK, rec.Code)
}

func (s *BudgetHandlerTestSuite) TestAutoCreateBudgets() {
	c, rec := s.newContext(http.MethodPost, "/budgets/auto-create", "")

	s.service.EXPECT().
		AutoCreateBudgets(s.ownerID).
		Return(2, nil)

	s.NoError(s.handler.AutoCreateBudgets(c))
	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"created":2}`, rec.Body.String())
}
