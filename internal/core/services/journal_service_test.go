package services_test

import (
	"context"
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/xylo-fin/xylo-backend/internal/apperrors"
	"github.com/xylo-fin/xylo-backend/internal/core/domain"
	portsrepo "github.com/xylo-fin/xylo-backend/internal/core/ports/repositories"
	portssvc "github.com/xylo-fin/xylo-backend/internal/core/ports/services"
	"github.com/xylo-fin/xylo-backend/internal/core/services"
	"github.com/xylo-fin/xylo-backend/internal/dto"
)

// --- Mock JournalRepository ---
type MockJournalRepository struct {
	mock.Mock
}

// Ensure MockJournalRepository implements portsrepo.JournalRepositoryFacade
var _ portsrepo.JournalRepositoryFacade = (*MockJournalRepository)(nil)

func (m *MockJournalRepository) SaveEntry(ctx context.Context, entry domain.JournalEntry, lines []domain.JournalLine, markTransactionID *string) error {
	args := m.Called(ctx, entry, lines, markTransactionID)
	return args.Error(0)
}

func (m *MockJournalRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalRepository) FindLinesByEntryID(ctx context.Context, entryID string) ([]domain.JournalLine, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalLine), args.Error(1)
}

// --- Mock ChartOfAccountsSvc (as used by JournalService in strict mode) ---
type MockChartService struct {
	mock.Mock
}

var _ portssvc.ChartOfAccountsSvc = (*MockChartService)(nil)

func (m *MockChartService) SeedAccounts(ctx context.Context, accounts []domain.Account) (int, error) {
	args := m.Called(ctx, accounts)
	return args.Int(0), args.Error(1)
}

func (m *MockChartService) SeedDefaultAccounts(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockChartService) GetAccountByCode(ctx context.Context, code string) (*domain.Account, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockChartService) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

// --- Test Suite ---
type JournalServiceTestSuite struct {
	suite.Suite
	mockJournalRepo *MockJournalRepository
	mockChartSvc    *MockChartService
	service         portssvc.JournalSvcFacade
}

func (suite *JournalServiceTestSuite) SetupTest() {
	suite.mockJournalRepo = new(MockJournalRepository)
	suite.mockChartSvc = new(MockChartService)
	suite.service = services.NewJournalService(suite.mockJournalRepo, suite.mockChartSvc)
}

func TestJournalServiceTestSuite(t *testing.T) {
	suite.Run(t, new(JournalServiceTestSuite))
}

func balancedRequest(amount decimal.Decimal) dto.PostEntryRequest {
	return dto.PostEntryRequest{
		EntryDate:   time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		Description: "Invoice settled",
		Lines: []dto.LineSpec{
			{AccountCode: "1100", Debit: amount, Credit: decimal.Zero},
			{AccountCode: "4000", Debit: decimal.Zero, Credit: amount},
		},
	}
}

// --- Test Cases ---

func (suite *JournalServiceTestSuite) TestPostEntry_Success() {
	ctx := context.Background()
	txnID := uuid.NewString()
	req := balancedRequest(decimal.RequireFromString("1000.00"))
	req.TransactionID = &txnID

	var savedLines []domain.JournalLine
	suite.mockJournalRepo.On("SaveEntry", ctx, mock.AnythingOfType("domain.JournalEntry"), mock.AnythingOfType("[]domain.JournalLine"), &txnID).
		Run(func(args mock.Arguments) {
			savedLines = args.Get(2).([]domain.JournalLine)
		}).
		Return(nil).Once()

	entry, err := suite.service.PostEntry(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(entry)
	suite.NotEmpty(entry.EntryID)
	suite.Equal(req.Description, entry.Description)
	suite.Equal(&txnID, entry.TransactionID)
	suite.Nil(entry.Lines) // header only, lines come back via GetEntryByID

	suite.Require().Len(savedLines, 2)
	for _, line := range savedLines {
		suite.Equal(entry.EntryID, line.EntryID)
		suite.NotEmpty(line.LineID)
	}
	suite.True(savedLines[0].Debit.Equal(decimal.RequireFromString("1000.00")))
	suite.True(savedLines[1].Credit.Equal(decimal.RequireFromString("1000.00")))

	suite.mockJournalRepo.AssertExpectations(suite.T())
	// Lenient by default: no chart lookups on the posting path.
	suite.mockChartSvc.AssertNotCalled(suite.T(), "GetAccountByCode", mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestPostEntry_Unbalanced() {
	ctx := context.Background()
	req := dto.PostEntryRequest{
		EntryDate: time.Now(),
		Lines: []dto.LineSpec{
			{AccountCode: "1100", Debit: decimal.RequireFromString("100.00")},
			{AccountCode: "4000", Credit: decimal.RequireFromString("99.99")},
		},
	}

	_, err := suite.service.PostEntry(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnbalanced)

	var unbalanced *apperrors.UnbalancedEntryError
	suite.Require().ErrorAs(err, &unbalanced)
	suite.True(unbalanced.TotalDebit.Equal(decimal.RequireFromString("100.00")))
	suite.True(unbalanced.TotalCredit.Equal(decimal.RequireFromString("99.99")))

	suite.mockJournalRepo.AssertNotCalled(suite.T(), "SaveEntry", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestPostEntry_UnbalancedByACent_Randomized() {
	ctx := context.Background()
	rng := rand.New(rand.NewSource(42))
	cent := decimal.New(1, -2)

	for i := 0; i < 50; i++ {
		amount := decimal.New(int64(rng.Intn(1_000_000)+1), -2)
		req := balancedRequest(amount)
		req.Lines[1].Credit = req.Lines[1].Credit.Add(cent)

		_, err := suite.service.PostEntry(ctx, req)

		suite.Require().Error(err, "amount %s plus one cent must not post", amount)
		suite.ErrorIs(err, apperrors.ErrUnbalanced)
	}
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "SaveEntry", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestPostEntry_NoLines() {
	_, err := suite.service.PostEntry(context.Background(), dto.PostEntryRequest{EntryDate: time.Now()})

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrEntryNoLines)
}

func (suite *JournalServiceTestSuite) TestPostEntry_NegativeAmount() {
	ctx := context.Background()
	req := dto.PostEntryRequest{
		EntryDate: time.Now(),
		Lines: []dto.LineSpec{
			{AccountCode: "1100", Debit: decimal.RequireFromString("-50.00")},
			{AccountCode: "4000", Credit: decimal.RequireFromString("-50.00")},
		},
	}

	_, err := suite.service.PostEntry(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrNegativeAmount)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "SaveEntry", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestPostEntry_QuantizesHalfUp() {
	ctx := context.Background()
	req := dto.PostEntryRequest{
		EntryDate: time.Now(),
		Lines: []dto.LineSpec{
			// Both sides land on 10.01 after rounding half up.
			{AccountCode: "1100", Debit: decimal.RequireFromString("10.005")},
			{AccountCode: "4000", Credit: decimal.RequireFromString("10.0051")},
		},
	}

	var savedLines []domain.JournalLine
	suite.mockJournalRepo.On("SaveEntry", ctx, mock.AnythingOfType("domain.JournalEntry"), mock.AnythingOfType("[]domain.JournalLine"), (*string)(nil)).
		Run(func(args mock.Arguments) {
			savedLines = args.Get(2).([]domain.JournalLine)
		}).
		Return(nil).Once()

	_, err := suite.service.PostEntry(ctx, req)

	suite.Require().NoError(err)
	suite.Require().Len(savedLines, 2)
	suite.True(savedLines[0].Debit.Equal(decimal.RequireFromString("10.01")), "got %s", savedLines[0].Debit)
	suite.True(savedLines[1].Credit.Equal(decimal.RequireFromString("10.01")), "got %s", savedLines[1].Credit)
	suite.mockJournalRepo.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestPostEntry_StrictRejectsUnknownAccount() {
	ctx := context.Background()
	strictSvc := services.NewJournalService(suite.mockJournalRepo, suite.mockChartSvc, services.WithStrictAccounts())
	req := balancedRequest(decimal.RequireFromString("25.00"))

	suite.mockChartSvc.On("GetAccountByCode", ctx, "1100").Return(&domain.Account{Code: "1100", Type: domain.Asset}, nil).Once()
	suite.mockChartSvc.On("GetAccountByCode", ctx, "4000").Return(nil, apperrors.ErrNotFound).Once()

	_, err := strictSvc.PostEntry(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrUnknownAccount)
	suite.Contains(err.Error(), "4000")
	suite.mockChartSvc.AssertExpectations(suite.T())
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "SaveEntry", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestPostEntry_LenientAllowsUnknownAccount() {
	ctx := context.Background()
	req := dto.PostEntryRequest{
		EntryDate: time.Now(),
		Lines: []dto.LineSpec{
			{AccountCode: "9999", Debit: decimal.RequireFromString("5.00")},
			{AccountCode: "4000", Credit: decimal.RequireFromString("5.00")},
		},
	}

	suite.mockJournalRepo.On("SaveEntry", ctx, mock.AnythingOfType("domain.JournalEntry"), mock.AnythingOfType("[]domain.JournalLine"), (*string)(nil)).Return(nil).Once()

	_, err := suite.service.PostEntry(ctx, req)

	suite.Require().NoError(err)
	suite.mockJournalRepo.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestPostEntry_SaveError() {
	ctx := context.Background()
	req := balancedRequest(decimal.RequireFromString("10.00"))
	repoErr := assert.AnError

	suite.mockJournalRepo.On("SaveEntry", ctx, mock.AnythingOfType("domain.JournalEntry"), mock.AnythingOfType("[]domain.JournalLine"), (*string)(nil)).Return(repoErr).Once()

	_, err := suite.service.PostEntry(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, repoErr)
	suite.mockJournalRepo.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestGetEntryByID_Success() {
	ctx := context.Background()
	entryID := uuid.NewString()
	header := &domain.JournalEntry{EntryID: entryID, Description: "Opening balances"}
	lines := []domain.JournalLine{
		{LineID: uuid.NewString(), EntryID: entryID, AccountCode: "1000", Debit: decimal.RequireFromString("500.00"), Credit: decimal.Zero},
		{LineID: uuid.NewString(), EntryID: entryID, AccountCode: "3000", Debit: decimal.Zero, Credit: decimal.RequireFromString("500.00")},
	}

	suite.mockJournalRepo.On("FindEntryByID", ctx, entryID).Return(header, nil).Once()
	suite.mockJournalRepo.On("FindLinesByEntryID", ctx, entryID).Return(lines, nil).Once()

	entry, err := suite.service.GetEntryByID(ctx, entryID)

	suite.Require().NoError(err)
	suite.Require().NotNil(entry)
	suite.Equal(entryID, entry.EntryID)
	suite.Len(entry.Lines, 2)
	suite.mockJournalRepo.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestGetEntryByID_NotFound() {
	ctx := context.Background()
	entryID := uuid.NewString()

	suite.mockJournalRepo.On("FindEntryByID", ctx, entryID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.GetEntryByID(ctx, entryID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "FindLinesByEntryID", mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestReverseEntry_SwapsSides() {
	ctx := context.Background()
	entryID := uuid.NewString()
	header := &domain.JournalEntry{EntryID: entryID, Description: "Sale on account"}
	lines := []domain.JournalLine{
		{LineID: uuid.NewString(), EntryID: entryID, AccountCode: "1100", Debit: decimal.RequireFromString("75.50"), Credit: decimal.Zero},
		{LineID: uuid.NewString(), EntryID: entryID, AccountCode: "4000", Debit: decimal.Zero, Credit: decimal.RequireFromString("75.50")},
	}
	reversalDate := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)

	suite.mockJournalRepo.On("FindEntryByID", ctx, entryID).Return(header, nil).Once()
	suite.mockJournalRepo.On("FindLinesByEntryID", ctx, entryID).Return(lines, nil).Once()

	var savedLines []domain.JournalLine
	var savedEntry domain.JournalEntry
	suite.mockJournalRepo.On("SaveEntry", ctx, mock.AnythingOfType("domain.JournalEntry"), mock.AnythingOfType("[]domain.JournalLine"), (*string)(nil)).
		Run(func(args mock.Arguments) {
			savedEntry = args.Get(1).(domain.JournalEntry)
			savedLines = args.Get(2).([]domain.JournalLine)
		}).
		Return(nil).Once()

	reversal, err := suite.service.ReverseEntry(ctx, entryID, reversalDate)

	suite.Require().NoError(err)
	suite.Require().NotNil(reversal)
	suite.NotEqual(entryID, reversal.EntryID)
	suite.Equal(reversalDate, savedEntry.EntryDate)
	suite.Equal(fmt.Sprintf("Reversal of entry: %s", header.Description), savedEntry.Description)

	suite.Require().Len(savedLines, 2)
	suite.Equal("1100", savedLines[0].AccountCode)
	suite.True(savedLines[0].Credit.Equal(decimal.RequireFromString("75.50")))
	suite.True(savedLines[0].Debit.IsZero())
	suite.Equal("4000", savedLines[1].AccountCode)
	suite.True(savedLines[1].Debit.Equal(decimal.RequireFromString("75.50")))
	suite.True(savedLines[1].Credit.IsZero())

	suite.mockJournalRepo.AssertExpectations(suite.T())
}
