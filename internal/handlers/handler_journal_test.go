package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/xylo-fin/xylo-backend/internal/apperrors"
	"github.com/xylo-fin/xylo-backend/internal/core/domain"
	portssvc "github.com/xylo-fin/xylo-backend/internal/core/ports/services"
	"github.com/xylo-fin/xylo-backend/internal/dto"
	"github.com/xylo-fin/xylo-backend/internal/handlers"
	"github.com/xylo-fin/xylo-backend/internal/platform/config"
)

// --- Mock JournalService ---
type MockJournalService struct {
	mock.Mock
}

var _ portssvc.JournalSvcFacade = (*MockJournalService)(nil)

func (m *MockJournalService) PostEntry(ctx context.Context, req dto.PostEntryRequest) (*domain.JournalEntry, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalService) GetEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalService) ReverseEntry(ctx context.Context, entryID string, entryDate time.Time) (*domain.JournalEntry, error) {
	args := m.Called(ctx, entryID, entryDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

// --- Test Suite ---
type JournalHandlerTestSuite struct {
	suite.Suite
	router         *gin.Engine
	mockJournalSvc *MockJournalService
}

func (suite *JournalHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.mockJournalSvc = new(MockJournalService)

	suite.router = gin.New()
	handlers.RegisterRoutes(suite.router, &config.Config{}, &portssvc.ServiceContainer{
		Journal: suite.mockJournalSvc,
	})
}

func TestJournalHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(JournalHandlerTestSuite))
}

func (suite *JournalHandlerTestSuite) postJSON(path string, body any) *httptest.ResponseRecorder {
	payload, err := json.Marshal(body)
	suite.Require().NoError(err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *JournalHandlerTestSuite) TestPostEntry_Success() {
	entry := &domain.JournalEntry{
		EntryID:     uuid.NewString(),
		EntryDate:   time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		Description: "Invoice settled",
		CreatedAt:   time.Now().UTC(),
	}
	suite.mockJournalSvc.On("PostEntry", mock.Anything, mock.AnythingOfType("dto.PostEntryRequest")).Return(entry, nil).Once()

	w := suite.postJSON("/api/v1/journal-entries", gin.H{
		"entryDate":   "2024-01-15T00:00:00Z",
		"description": "Invoice settled",
		"lines": []gin.H{
			{"accountCode": "1100", "debit": "1000.00"},
			{"accountCode": "4000", "credit": "1000.00"},
		},
	})

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.JournalEntryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(entry.EntryID, resp.EntryID)
	suite.mockJournalSvc.AssertExpectations(suite.T())
}

func (suite *JournalHandlerTestSuite) TestPostEntry_UnbalancedReturnsTotals() {
	unbalanced := &apperrors.UnbalancedEntryError{
		TotalDebit:  decimal.RequireFromString("100.00"),
		TotalCredit: decimal.RequireFromString("99.99"),
	}
	suite.mockJournalSvc.On("PostEntry", mock.Anything, mock.AnythingOfType("dto.PostEntryRequest")).Return(nil, unbalanced).Once()

	w := suite.postJSON("/api/v1/journal-entries", gin.H{
		"entryDate": "2024-01-15T00:00:00Z",
		"lines": []gin.H{
			{"accountCode": "1100", "debit": "100.00"},
			{"accountCode": "4000", "credit": "99.99"},
		},
	})

	suite.Equal(http.StatusBadRequest, w.Code)
	var body map[string]json.RawMessage
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Contains(body, "error")
	suite.JSONEq(`"100"`, string(body["totalDebit"]))
	suite.JSONEq(`"99.99"`, string(body["totalCredit"]))
}

func (suite *JournalHandlerTestSuite) TestPostEntry_MissingLines() {
	// Binding rejects the request before the service sees it.
	w := suite.postJSON("/api/v1/journal-entries", gin.H{
		"entryDate": "2024-01-15T00:00:00Z",
	})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockJournalSvc.AssertNotCalled(suite.T(), "PostEntry", mock.Anything, mock.Anything)
}

func (suite *JournalHandlerTestSuite) TestGetEntry_Success() {
	entryID := uuid.NewString()
	entry := &domain.JournalEntry{
		EntryID:   entryID,
		EntryDate: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		Lines: []domain.JournalLine{
			{LineID: uuid.NewString(), EntryID: entryID, AccountCode: "1100", Debit: decimal.RequireFromString("10.00"), Credit: decimal.Zero},
			{LineID: uuid.NewString(), EntryID: entryID, AccountCode: "4000", Debit: decimal.Zero, Credit: decimal.RequireFromString("10.00")},
		},
	}
	suite.mockJournalSvc.On("GetEntryByID", mock.Anything, entryID).Return(entry, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/journal-entries/"+entryID, nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.JournalEntryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(entryID, resp.EntryID)
	suite.Len(resp.Lines, 2)
}

func (suite *JournalHandlerTestSuite) TestGetEntry_NotFound() {
	entryID := uuid.NewString()
	suite.mockJournalSvc.On("GetEntryByID", mock.Anything, entryID).Return(nil, apperrors.ErrNotFound).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/journal-entries/"+entryID, nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *JournalHandlerTestSuite) TestReverseEntry_NotFound() {
	entryID := uuid.NewString()
	suite.mockJournalSvc.On("ReverseEntry", mock.Anything, entryID, mock.AnythingOfType("time.Time")).Return(nil, apperrors.ErrNotFound).Once()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/journal-entries/"+entryID+"/reverse", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
}
