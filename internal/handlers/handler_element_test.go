package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/openbooks/general_ledger_app/internal/apperrors"
	"github.com/openbooks/general_ledger_app/internal/core/domain"
	portssvc "github.com/openbooks/general_ledger_app/internal/core/ports/services"
	"github.com/openbooks/general_ledger_app/internal/dto"
	"github.com/openbooks/general_ledger_app/internal/handlers"
)

// --- Mock ElementService ---

type MockElementService struct {
	mock.Mock
}

var _ portssvc.ElementSvcFacade = (*MockElementService)(nil)

func (m *MockElementService) SaveElement(ctx context.Context, req dto.SaveElementRequest) (*domain.Element, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Element), args.Error(1)
}

func (m *MockElementService) GetElementByNumber(ctx context.Context, number int64) (*domain.Element, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Element), args.Error(1)
}

func (m *MockElementService) ListElements(ctx context.Context, params dto.ListElementsParams) ([]domain.Element, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Element), args.Error(1)
}

func (m *MockElementService) DeleteElement(ctx context.Context, number int64) error {
	args := m.Called(ctx, number)
	return args.Error(0)
}

// --- Test Suite Setup ---

type ElementHandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockElementService *MockElementService
}

func (suite *ElementHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()

	suite.mockElementService = new(MockElementService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterElementRoutes(v1, suite.mockElementService)
}

// --- Test Cases ---

func (suite *ElementHandlerTestSuite) TestSaveElement_Success() {
	now := time.Now().UTC()
	expected := &domain.Element{Number: 1, Name: "Assets", AuditFields: domain.AuditFields{CreatedAt: now, LastUpdatedAt: now}}

	suite.mockElementService.On("SaveElement",
		mock.Anything,
		mock.MatchedBy(func(req dto.SaveElementRequest) bool {
			return req.Number == 1 && req.Name == "Assets"
		}),
	).Return(expected, nil).Once()

	body, _ := json.Marshal(dto.SaveElementRequest{Number: 1, Name: "Assets"})
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/elements", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.ElementResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(int64(1), resp.Number)
	suite.Equal("Assets", resp.Name)

	suite.mockElementService.AssertExpectations(suite.T())
}

func (suite *ElementHandlerTestSuite) TestSaveElement_MissingName() {
	body := []byte(`{"number": 1}`)
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/elements", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockElementService.AssertNotCalled(suite.T(), "SaveElement")
}

func (suite *ElementHandlerTestSuite) TestSaveElement_NameConflict() {
	conflict := fmt.Errorf("%w: element name %q is already used by element 2", apperrors.ErrValidation, "Assets")
	suite.mockElementService.On("SaveElement", mock.Anything, mock.Anything).
		Return(nil, conflict).Once()

	body, _ := json.Marshal(dto.SaveElementRequest{Number: 1, Name: "Assets"})
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/elements", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusConflict, w.Code)
	suite.mockElementService.AssertExpectations(suite.T())
}

func (suite *ElementHandlerTestSuite) TestGetElementByNumber_Success() {
	now := time.Now().UTC()
	expected := &domain.Element{Number: 4, Name: "Income", AuditFields: domain.AuditFields{CreatedAt: now, LastUpdatedAt: now}}

	suite.mockElementService.On("GetElementByNumber", mock.Anything, int64(4)).
		Return(expected, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/elements/4", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.ElementResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("Income", resp.Name)

	suite.mockElementService.AssertExpectations(suite.T())
}

func (suite *ElementHandlerTestSuite) TestGetElementByNumber_NotFound() {
	suite.mockElementService.On("GetElementByNumber", mock.Anything, int64(99)).
		Return(nil, apperrors.ErrNotFound).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/elements/99", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockElementService.AssertExpectations(suite.T())
}

func (suite *ElementHandlerTestSuite) TestGetElementByNumber_BadNumber() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/elements/assets", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockElementService.AssertNotCalled(suite.T(), "GetElementByNumber")
}

func (suite *ElementHandlerTestSuite) TestListElements_NameFilter() {
	now := time.Now().UTC()
	expected := []domain.Element{
		{Number: 1, Name: "Assets", AuditFields: domain.AuditFields{CreatedAt: now, LastUpdatedAt: now}},
	}

	suite.mockElementService.On("ListElements",
		mock.Anything,
		mock.MatchedBy(func(p dto.ListElementsParams) bool {
			return p.Name != nil && *p.Name == "Ass%"
		}),
	).Return(expected, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/elements?name=Ass%25", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var resp []dto.ElementResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp, 1)
	suite.Equal("Assets", resp[0].Name)

	suite.mockElementService.AssertExpectations(suite.T())
}

func (suite *ElementHandlerTestSuite) TestDeleteElement_Success() {
	suite.mockElementService.On("DeleteElement", mock.Anything, int64(5)).
		Return(nil).Once()

	req, _ := http.NewRequest(http.MethodDelete, "/api/v1/elements/5", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNoContent, w.Code)
	suite.mockElementService.AssertExpectations(suite.T())
}

func (suite *ElementHandlerTestSuite) TestDeleteElement_StillReferenced() {
	suite.mockElementService.On("DeleteElement", mock.Anything, int64(1)).
		Return(apperrors.ErrReferentialConstraint).Once()

	req, _ := http.NewRequest(http.MethodDelete, "/api/v1/elements/1", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusConflict, w.Code)
	suite.mockElementService.AssertExpectations(suite.T())
}

// --- Run Suite ---

func TestElementHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ElementHandlerTestSuite))
}
