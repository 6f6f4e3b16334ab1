package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"expenseease/internal/dto"
	"expenseease/internal/models"
	"expenseease/internal/repositories"
	"expenseease/internal/services"
	"expenseease/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type ItemHandlerTestSuite struct {
	suite.Suite
	echo    *echo.Echo
	ctrl    *gomock.Controller
	sync    *service_mocks.MockSyncServiceInterface
	handler *ItemHandler
	ownerID uuid.UUID
}

func (s *ItemHandlerTestSuite) SetupTest() {
	s.echo = echo.New()
	s.echo.Validator = NewValidator()
	s.ctrl = gomock.NewController(s.T())
	s.sync = service_mocks.NewMockSyncServiceInterface(s.ctrl)
	// nil verifier: signature checking is covered by the plaid package tests
	s.handler = NewItemHandler(s.sync, nil)
	s.ownerID = uuid.New()
}

func (s *ItemHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestItemHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ItemHandlerTestSuite))
}

func (s *ItemHandlerTestSuite) newContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
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

func (s *ItemHandlerTestSuite) TestLinkItem() {
	body := `{"itemId":"item-1","accessToken":"tok-1","institutionName":"First Test Bank"}`
	c, rec := s.newContext(http.MethodPost, "/items", body)

	s.sync.EXPECT().
		LinkItem(gomock.Any(), s.ownerID, gomock.Any()).
		Return(&models.Item{
			ID:              uuid.New(),
			OwnerID:         s.ownerID,
			ItemID:          "item-1",
			InstitutionName: "First Test Bank",
			Status:          models.ItemStatusGood,
		}, nil)

	s.NoError(s.handler.LinkItem(c))
	s.Equal(http.StatusCreated, rec.Code)
	s.Contains(rec.Body.String(), "First Test Bank")
	// Credentials must never appear in responses
	s.NotContains(rec.Body.String(), "tok-1")
}

func (s *ItemHandlerTestSuite) TestSyncItem_Degraded() {
	item := models.Item{ID: uuid.New(), OwnerID: s.ownerID, Status: models.ItemStatusBad}
	c, rec := s.newContext(http.MethodPost, "/items/"+item.ID.String()+"/sync", "")
	c.SetParamNames("id")
	c.SetParamValues(item.ID.String())

	s.sync.EXPECT().GetItems(s.ownerID).Return([]models.Item{item}, nil)
	s.sync.EXPECT().SyncItem(gomock.Any(), gomock.Any()).Return(nil, services.ErrItemDegraded)

	s.NoError(s.handler.SyncItem(c))
	s.Equal(http.StatusUnprocessableEntity, rec.Code)
}

func (s *ItemHandlerTestSuite) TestSyncItem_UnknownItem() {
	id := uuid.New()
	c, rec := s.newContext(http.MethodPost, "/items/"+id.String()+"/sync", "")
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	s.sync.EXPECT().GetItems(s.ownerID).Return([]models.Item{}, nil)

	s.NoError(s.handler.SyncItem(c))
	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *ItemHandlerTestSuite) TestWebhook() {
	body := `{"webhook_type":"TRANSACTIONS","webhook_code":"SYNC_UPDATES_AVAILABLE","item_id":"item-1"}`
	req := httptest.NewRequest(http.MethodPost, "/webhooks/plaid", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	s.sync.EXPECT().
		HandleWebhook(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, payload *dto.WebhookPayload) error {
			s.Equal("SYNC_UPDATES_AVAILABLE", payload.WebhookCode)
			s.Equal("item-1", payload.ItemID)
			return nil
		})

	s.NoError(s.handler.Webhook(c))
	s.Equal(http.StatusOK, rec.Code)
}

func (s *ItemHandlerTestSuite) TestWebhook_MalformedBody() {
	req := httptest.NewRequest(http.MethodPost, "/webhooks/plaid", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	s.NoError(s.handler.Webhook(c))
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *ItemHandlerTestSuite) TestWebhook_UnknownItem() {
	body := `{"webhook_code":"SYNC_UPDATES_AVAILABLE","item_id":"missing"}`
	req := httptest.NewRequest(http.MethodPost, "/webhooks/plaid", strings.NewReader(body))
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	s.sync.EXPECT().
		HandleWebhook(gomock.Any(), gomock.Any()).
		Return(repositories.ErrItemNotFound)

	s.NoError(s.handler.Webhook(c))
	s.Equal(http.StatusNotFound, rec.Code)
}
