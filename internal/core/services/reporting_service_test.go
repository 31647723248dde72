package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/xylo-fin/xylo-backend/internal/core/domain"
	portsrepo "github.com/xylo-fin/xylo-backend/internal/core/ports/repositories"
	portssvc "github.com/xylo-fin/xylo-backend/internal/core/ports/services"
	"github.com/xylo-fin/xylo-backend/internal/core/services"
)

// --- Mock ReportingRepository ---
type MockReportingRepository struct {
	mock.Mock
}

// Ensure MockReportingRepository implements portsrepo.ReportingRepository
var _ portsrepo.ReportingRepository = (*MockReportingRepository)(nil)

func (m *MockReportingRepository) GetTrialBalanceData(ctx context.Context, from, to *time.Time) ([]domain.TrialBalanceRow, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TrialBalanceRow), args.Error(1)
}

// --- Test Suite ---
type ReportingServiceTestSuite struct {
	suite.Suite
	mockReportingRepo *MockReportingRepository
	service           portssvc.ReportingSvc
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockReportingRepo = new(MockReportingRepository)
	suite.service = services.NewReportingService(suite.mockReportingRepo)
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}

func ptrName(s string) *string { return &s }

func ptrType(t domain.AccountType) *domain.AccountType { return &t }

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// balancedRows describes a small ledger: 1000.00 of sales collected via
// bank, 300.00 of rent paid, 200.00 owed to a supplier for stock and
// 500.00 of owner capital contributed in cash.
func balancedRows() []domain.TrialBalanceRow {
	return []domain.TrialBalanceRow{
		{AccountCode: "1000", AccountName: ptrName("Cash"), AccountType: ptrType(domain.Asset), TotalDebit: dec("500.00"), TotalCredit: dec("300.00")},
		{AccountCode: "1100", AccountName: ptrName("Bank"), AccountType: ptrType(domain.Asset), TotalDebit: dec("1000.00"), TotalCredit: dec("0.00")},
		{AccountCode: "2000", AccountName: ptrName("Accounts Payable"), AccountType: ptrType(domain.Liability), TotalDebit: dec("0.00"), TotalCredit: dec("200.00")},
		{AccountCode: "3000", AccountName: ptrName("Equity / Capital"), AccountType: ptrType(domain.Equity), TotalDebit: dec("0.00"), TotalCredit: dec("500.00")},
		{AccountCode: "4000", AccountName: ptrName("Sales / Revenue"), AccountType: ptrType(domain.Income), TotalDebit: dec("0.00"), TotalCredit: dec("1000.00")},
		{AccountCode: "5000", AccountName: ptrName("Cost of Goods Sold"), AccountType: ptrType(domain.Expense), TotalDebit: dec("200.00"), TotalCredit: dec("0.00")},
		{AccountCode: "5100", AccountName: ptrName("Rent Expense"), AccountType: ptrType(domain.Expense), TotalDebit: dec("300.00"), TotalCredit: dec("0.00")},
	}
}

// --- Test Cases ---

func (suite *ReportingServiceTestSuite) TestTrialBalance_Passthrough() {
	ctx := context.Background()
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)
	rows := balancedRows()

	suite.mockReportingRepo.On("GetTrialBalanceData", ctx, &from, &to).Return(rows, nil).Once()

	result, err := suite.service.TrialBalance(ctx, &from, &to)

	suite.Require().NoError(err)
	suite.Equal(rows, result)
	suite.mockReportingRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestTrialBalance_NilBecomesEmpty() {
	ctx := context.Background()

	suite.mockReportingRepo.On("GetTrialBalanceData", ctx, (*time.Time)(nil), (*time.Time)(nil)).Return(nil, nil).Once()

	result, err := suite.service.TrialBalance(ctx, nil, nil)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *ReportingServiceTestSuite) TestTrialBalance_RepoError() {
	ctx := context.Background()
	repoErr := assert.AnError

	suite.mockReportingRepo.On("GetTrialBalanceData", ctx, (*time.Time)(nil), (*time.Time)(nil)).Return(nil, repoErr).Once()

	_, err := suite.service.TrialBalance(ctx, nil, nil)

	suite.Require().Error(err)
	suite.ErrorIs(err, repoErr)
}

func (suite *ReportingServiceTestSuite) TestProfitAndLoss() {
	ctx := context.Background()

	suite.mockReportingRepo.On("GetTrialBalanceData", ctx, (*time.Time)(nil), (*time.Time)(nil)).Return(balancedRows(), nil).Once()

	report, err := suite.service.ProfitAndLoss(ctx, nil, nil)

	suite.Require().NoError(err)
	suite.Require().NotNil(report)
	suite.True(report.Income.Equal(dec("1000.00")), "income %s", report.Income)
	suite.True(report.Expense.Equal(dec("500.00")), "expense %s", report.Expense)
	suite.True(report.Profit.Equal(dec("500.00")), "profit %s", report.Profit)
}

func (suite *ReportingServiceTestSuite) TestProfitAndLoss_SkipsUnknownAccounts() {
	ctx := context.Background()
	rows := []domain.TrialBalanceRow{
		{AccountCode: "4000", AccountType: ptrType(domain.Income), TotalDebit: dec("0.00"), TotalCredit: dec("100.00")},
		// Orphaned code, no chart entry: ignored by the P&L.
		{AccountCode: "9999", TotalDebit: dec("40.00"), TotalCredit: dec("0.00")},
	}

	suite.mockReportingRepo.On("GetTrialBalanceData", ctx, (*time.Time)(nil), (*time.Time)(nil)).Return(rows, nil).Once()

	report, err := suite.service.ProfitAndLoss(ctx, nil, nil)

	suite.Require().NoError(err)
	suite.True(report.Income.Equal(dec("100.00")))
	suite.True(report.Expense.IsZero())
	suite.True(report.Profit.Equal(dec("100.00")))
}

func (suite *ReportingServiceTestSuite) TestBalanceSheet_Reconciles() {
	ctx := context.Background()
	asOf := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)

	suite.mockReportingRepo.On("GetTrialBalanceData", ctx, (*time.Time)(nil), &asOf).Return(balancedRows(), nil).Once()

	sheet, err := suite.service.BalanceSheet(ctx, &asOf)

	suite.Require().NoError(err)
	suite.Require().NotNil(sheet)
	// Cash 200 + Bank 1000.
	suite.True(sheet.Assets.Equal(dec("1200.00")), "assets %s", sheet.Assets)
	suite.True(sheet.Liabilities.Equal(dec("200.00")), "liabilities %s", sheet.Liabilities)
	// Capital 500 + profit 500 folded in.
	suite.True(sheet.Equity.Equal(dec("1000.00")), "equity %s", sheet.Equity)
	suite.True(sheet.Reconciles.IsZero(), "reconciles %s", sheet.Reconciles)
}

func (suite *ReportingServiceTestSuite) TestBalanceSheet_SurfacesImbalance() {
	ctx := context.Background()
	// An orphaned debit-only row: its amount lands in no section, so
	// assets minus (liabilities plus equity) comes out nonzero.
	rows := []domain.TrialBalanceRow{
		{AccountCode: "1000", AccountType: ptrType(domain.Asset), TotalDebit: dec("100.00"), TotalCredit: dec("0.00")},
		{AccountCode: "9999", TotalDebit: dec("0.00"), TotalCredit: dec("100.00")},
	}

	suite.mockReportingRepo.On("GetTrialBalanceData", ctx, (*time.Time)(nil), (*time.Time)(nil)).Return(rows, nil).Once()

	sheet, err := suite.service.BalanceSheet(ctx, nil)

	suite.Require().NoError(err)
	suite.True(sheet.Reconciles.Equal(dec("100.00")), "reconciles %s", sheet.Reconciles)
}
