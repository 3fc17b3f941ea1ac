package services_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/fiscalledger/fiscal_ledger_app/internal/apperrors"
	"github.com/fiscalledger/fiscal_ledger_app/internal/core/domain"
	portssvc "github.com/fiscalledger/fiscal_ledger_app/internal/core/ports/services"
	"github.com/fiscalledger/fiscal_ledger_app/internal/core/services"
	"github.com/fiscalledger/fiscal_ledger_app/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type FiscalYearServiceTestSuite struct {
	suite.Suite
	mockFYRepo      *MockFiscalYearRepository
	mockAccountRepo *MockAccountRepository
	mockTxnRepo     *MockTransactionRepository
	mockCompanyRepo *MockCompanyRepository
	service         portssvc.FiscalYearSvcFacade
	ctx             context.Context
	companyID       string
	userID          string
}

func (suite *FiscalYearServiceTestSuite) SetupTest() {
	suite.mockFYRepo = new(MockFiscalYearRepository)
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.mockCompanyRepo = new(MockCompanyRepository)
	suite.service = services.NewFiscalYearService(suite.mockFYRepo, suite.mockAccountRepo, suite.mockTxnRepo, suite.mockCompanyRepo)
	suite.ctx = context.Background()
	suite.companyID = uuid.NewString()
	suite.userID = uuid.NewString()
}

func (suite *FiscalYearServiceTestSuite) activeFiscalYear() *domain.FiscalYear {
	return &domain.FiscalYear{
		FiscalYearID: uuid.NewString(),
		CompanyID:    suite.companyID,
		Year:         2024,
		StartDate:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:      time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
		Status:       domain.FiscalYearActive,
	}
}

func (suite *FiscalYearServiceTestSuite) company() *domain.Company {
	return &domain.Company{
		CompanyID: suite.companyID,
		Name:      "Acme Trading Ltd",
		IsActive:  true,
	}
}

func (suite *FiscalYearServiceTestSuite) TestCreateFiscalYear_Success() {
	req := dto.CreateFiscalYearRequest{
		Year:      2024,
		StartDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
	}

	suite.mockCompanyRepo.On("FindCompanyByID", suite.ctx, suite.companyID).Return(suite.company(), nil).Once()
	suite.mockFYRepo.On("SaveFiscalYear", suite.ctx, mock.AnythingOfType("domain.FiscalYear")).Return(nil).Once()

	fy, err := suite.service.CreateFiscalYear(suite.ctx, suite.companyID, req, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(fy)
	suite.Equal(2024, fy.Year)
	suite.Equal(domain.FiscalYearActive, fy.Status)
	suite.Equal(suite.companyID, fy.CompanyID)
	suite.Equal(suite.userID, fy.CreatedBy)
	suite.WithinDuration(time.Now(), fy.CreatedAt, time.Second)
	suite.mockFYRepo.AssertExpectations(suite.T())
	suite.mockCompanyRepo.AssertExpectations(suite.T())
}

func (suite *FiscalYearServiceTestSuite) TestCreateFiscalYear_InvalidDateRange() {
	req := dto.CreateFiscalYearRequest{
		Year:      2024,
		StartDate: time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	fy, err := suite.service.CreateFiscalYear(suite.ctx, suite.companyID, req, suite.userID)

	suite.Require().Error(err)
	suite.Nil(fy)
	suite.ErrorIs(err, services.ErrInvalidDateRange)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockFYRepo.AssertNotCalled(suite.T(), "SaveFiscalYear", mock.Anything, mock.Anything)
}

func (suite *FiscalYearServiceTestSuite) TestCreateFiscalYear_DuplicateYear() {
	req := dto.CreateFiscalYearRequest{
		Year:      2024,
		StartDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
	}
	dupErr := fmt.Errorf("%w: fiscal year 2024 already exists", apperrors.ErrDuplicate)

	suite.mockCompanyRepo.On("FindCompanyByID", suite.ctx, suite.companyID).Return(suite.company(), nil).Once()
	suite.mockFYRepo.On("SaveFiscalYear", suite.ctx, mock.AnythingOfType("domain.FiscalYear")).Return(dupErr).Once()

	fy, err := suite.service.CreateFiscalYear(suite.ctx, suite.companyID, req, suite.userID)

	suite.Require().Error(err)
	suite.Nil(fy)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockFYRepo.AssertExpectations(suite.T())
}

func (suite *FiscalYearServiceTestSuite) TestGetFiscalYearByID_WrongCompany() {
	fy := suite.activeFiscalYear()
	fy.CompanyID = uuid.NewString()

	suite.mockFYRepo.On("FindFiscalYearByID", suite.ctx, fy.FiscalYearID).Return(fy, nil).Once()

	found, err := suite.service.GetFiscalYearByID(suite.ctx, suite.companyID, fy.FiscalYearID)

	suite.Require().Error(err)
	suite.Nil(found)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockFYRepo.AssertExpectations(suite.T())
}

func (suite *FiscalYearServiceTestSuite) TestCloseFiscalYear_ProfitPostsTwoEntries() {
	fy := suite.activeFiscalYear()
	tx := fakeTx{}
	equityBalance := decimal.NewFromInt(500)
	equity := &domain.Account{
		AccountID:    uuid.NewString(),
		CompanyID:    suite.companyID,
		Name:         "Retained Earnings",
		AccountType:  domain.Equity,
		CurrencyCode: "USD",
		Balance:      equityBalance,
		IsActive:     true,
	}
	summary := &domain.FiscalYearSummary{
		FiscalYearID:     fy.FiscalYearID,
		TotalIncome:      decimal.NewFromInt(10000),
		TotalExpenses:    decimal.NewFromInt(4000),
		NetProfit:        decimal.NewFromInt(6000),
		TransactionCount: 12,
	}

	suite.mockFYRepo.On("FindFiscalYearByID", suite.ctx, fy.FiscalYearID).Return(fy, nil).Once()
	suite.mockCompanyRepo.On("FindCompanyByID", suite.ctx, suite.companyID).Return(suite.company(), nil).Once()
	suite.mockFYRepo.On("Begin", suite.ctx).Return(tx, nil).Once()
	suite.mockFYRepo.On("FindFiscalYearForUpdate", suite.ctx, tx, fy.FiscalYearID).Return(fy, nil).Once()
	suite.mockFYRepo.On("SummarizeFiscalYearInTx", suite.ctx, tx, fy.FiscalYearID).Return(summary, nil).Once()
	suite.mockAccountRepo.On("GetOrCreateAccountInTx", suite.ctx, tx, mock.AnythingOfType("domain.Account")).Return(equity, nil).Once()

	var inserted []domain.Transaction
	suite.mockTxnRepo.On("InsertTransactionsInTx", suite.ctx, tx, mock.AnythingOfType("[]domain.Transaction")).
		Run(func(args mock.Arguments) {
			inserted = args.Get(2).([]domain.Transaction)
		}).Return(nil).Once()
	suite.mockAccountRepo.On("ApplyBalanceDeltaInTx", suite.ctx, tx, equity.AccountID, summary.NetProfit, suite.userID, mock.AnythingOfType("time.Time")).
		Return(equityBalance.Add(summary.NetProfit), nil).Once()
	suite.mockFYRepo.On("MarkFiscalYearClosedInTx", suite.ctx, tx, fy.FiscalYearID, suite.userID, mock.AnythingOfType("time.Time")).Return(nil).Once()
	suite.mockFYRepo.On("Commit", suite.ctx, tx).Return(nil).Once()
	suite.mockFYRepo.On("Rollback", suite.ctx, tx).Return(nil)

	result, err := suite.service.CloseFiscalYear(suite.ctx, suite.companyID, fy.FiscalYearID, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(result)
	suite.True(result.NetProfit.Equal(decimal.NewFromInt(6000)))
	suite.Len(result.ClosingTransactionIDs, 2)

	suite.Require().Len(inserted, 2)
	out, in := inserted[0], inserted[1]
	suite.Equal(domain.TransferOut, out.TransactionType)
	suite.True(out.Amount.Equal(decimal.NewFromInt(10000)))
	suite.True(out.RunningBalance.Equal(decimal.NewFromInt(10500)))
	suite.Equal(domain.TransferIn, in.TransactionType)
	suite.True(in.Amount.Equal(decimal.NewFromInt(4000)))
	suite.True(in.RunningBalance.Equal(decimal.NewFromInt(6500)))
	for _, entry := range inserted {
		suite.Equal(equity.AccountID, entry.AccountID)
		suite.Equal(fy.EndDate, entry.TransactionDate)
		suite.Equal("true", entry.Metadata[domain.ClosingEntryMetadataKey])
	}

	suite.mockFYRepo.AssertExpectations(suite.T())
	suite.mockAccountRepo.AssertExpectations(suite.T())
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *FiscalYearServiceTestSuite) TestCloseFiscalYear_LossPostsSingleExpense() {
	fy := suite.activeFiscalYear()
	tx := fakeTx{}
	equity := &domain.Account{
		AccountID:    uuid.NewString(),
		CompanyID:    suite.companyID,
		Name:         "Retained Earnings",
		AccountType:  domain.Equity,
		CurrencyCode: "USD",
		Balance:      decimal.Zero,
		IsActive:     true,
	}
	summary := &domain.FiscalYearSummary{
		FiscalYearID:     fy.FiscalYearID,
		TotalIncome:      decimal.NewFromInt(2000),
		TotalExpenses:    decimal.NewFromInt(5000),
		NetProfit:        decimal.NewFromInt(-3000),
		TransactionCount: 7,
	}

	suite.mockFYRepo.On("FindFiscalYearByID", suite.ctx, fy.FiscalYearID).Return(fy, nil).Once()
	suite.mockCompanyRepo.On("FindCompanyByID", suite.ctx, suite.companyID).Return(suite.company(), nil).Once()
	suite.mockFYRepo.On("Begin", suite.ctx).Return(tx, nil).Once()
	suite.mockFYRepo.On("FindFiscalYearForUpdate", suite.ctx, tx, fy.FiscalYearID).Return(fy, nil).Once()
	suite.mockFYRepo.On("SummarizeFiscalYearInTx", suite.ctx, tx, fy.FiscalYearID).Return(summary, nil).Once()
	suite.mockAccountRepo.On("GetOrCreateAccountInTx", suite.ctx, tx, mock.AnythingOfType("domain.Account")).Return(equity, nil).Once()

	var inserted []domain.Transaction
	suite.mockTxnRepo.On("InsertTransactionsInTx", suite.ctx, tx, mock.AnythingOfType("[]domain.Transaction")).
		Run(func(args mock.Arguments) {
			inserted = args.Get(2).([]domain.Transaction)
		}).Return(nil).Once()
	suite.mockAccountRepo.On("ApplyBalanceDeltaInTx", suite.ctx, tx, equity.AccountID, summary.NetProfit, suite.userID, mock.AnythingOfType("time.Time")).
		Return(decimal.NewFromInt(-3000), nil).Once()
	suite.mockFYRepo.On("MarkFiscalYearClosedInTx", suite.ctx, tx, fy.FiscalYearID, suite.userID, mock.AnythingOfType("time.Time")).Return(nil).Once()
	suite.mockFYRepo.On("Commit", suite.ctx, tx).Return(nil).Once()
	suite.mockFYRepo.On("Rollback", suite.ctx, tx).Return(nil)

	result, err := suite.service.CloseFiscalYear(suite.ctx, suite.companyID, fy.FiscalYearID, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(result)
	suite.Len(result.ClosingTransactionIDs, 1)

	suite.Require().Len(inserted, 1)
	suite.Equal(domain.Expense, inserted[0].TransactionType)
	suite.True(inserted[0].Amount.Equal(decimal.NewFromInt(3000)))
	suite.True(inserted[0].RunningBalance.Equal(decimal.NewFromInt(-3000)))

	suite.mockFYRepo.AssertExpectations(suite.T())
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *FiscalYearServiceTestSuite) TestCloseFiscalYear_EmptyPeriodClosesWithoutEntries() {
	fy := suite.activeFiscalYear()
	tx := fakeTx{}
	equity := &domain.Account{
		AccountID:   uuid.NewString(),
		CompanyID:   suite.companyID,
		Name:        "Retained Earnings",
		AccountType: domain.Equity,
		Balance:     decimal.Zero,
		IsActive:    true,
	}
	summary := &domain.FiscalYearSummary{
		FiscalYearID:  fy.FiscalYearID,
		TotalIncome:   decimal.Zero,
		TotalExpenses: decimal.Zero,
		NetProfit:     decimal.Zero,
	}

	suite.mockFYRepo.On("FindFiscalYearByID", suite.ctx, fy.FiscalYearID).Return(fy, nil).Once()
	suite.mockCompanyRepo.On("FindCompanyByID", suite.ctx, suite.companyID).Return(suite.company(), nil).Once()
	suite.mockFYRepo.On("Begin", suite.ctx).Return(tx, nil).Once()
	suite.mockFYRepo.On("FindFiscalYearForUpdate", suite.ctx, tx, fy.FiscalYearID).Return(fy, nil).Once()
	suite.mockFYRepo.On("SummarizeFiscalYearInTx", suite.ctx, tx, fy.FiscalYearID).Return(summary, nil).Once()
	suite.mockAccountRepo.On("GetOrCreateAccountInTx", suite.ctx, tx, mock.AnythingOfType("domain.Account")).Return(equity, nil).Once()
	suite.mockFYRepo.On("MarkFiscalYearClosedInTx", suite.ctx, tx, fy.FiscalYearID, suite.userID, mock.AnythingOfType("time.Time")).Return(nil).Once()
	suite.mockFYRepo.On("Commit", suite.ctx, tx).Return(nil).Once()
	suite.mockFYRepo.On("Rollback", suite.ctx, tx).Return(nil)

	result, err := suite.service.CloseFiscalYear(suite.ctx, suite.companyID, fy.FiscalYearID, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(result)
	suite.Empty(result.ClosingTransactionIDs)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "InsertTransactionsInTx", mock.Anything, mock.Anything, mock.Anything)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "ApplyBalanceDeltaInTx", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.mockFYRepo.AssertExpectations(suite.T())
}

func (suite *FiscalYearServiceTestSuite) TestCloseFiscalYear_AlreadyClosed() {
	fy := suite.activeFiscalYear()
	fy.Status = domain.FiscalYearClosed

	suite.mockFYRepo.On("FindFiscalYearByID", suite.ctx, fy.FiscalYearID).Return(fy, nil).Once()

	result, err := suite.service.CloseFiscalYear(suite.ctx, suite.companyID, fy.FiscalYearID, suite.userID)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, services.ErrAlreadyClosed)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockFYRepo.AssertNotCalled(suite.T(), "Begin", mock.Anything)
}

func (suite *FiscalYearServiceTestSuite) TestCloseFiscalYear_LostRaceUnderLock() {
	fy := suite.activeFiscalYear()
	tx := fakeTx{}
	closed := *fy
	closed.Status = domain.FiscalYearClosed

	suite.mockFYRepo.On("FindFiscalYearByID", suite.ctx, fy.FiscalYearID).Return(fy, nil).Once()
	suite.mockCompanyRepo.On("FindCompanyByID", suite.ctx, suite.companyID).Return(suite.company(), nil).Once()
	suite.mockFYRepo.On("Begin", suite.ctx).Return(tx, nil).Once()
	suite.mockFYRepo.On("FindFiscalYearForUpdate", suite.ctx, tx, fy.FiscalYearID).Return(&closed, nil).Once()
	suite.mockFYRepo.On("Rollback", suite.ctx, tx).Return(nil).Once()

	result, err := suite.service.CloseFiscalYear(suite.ctx, suite.companyID, fy.FiscalYearID, suite.userID)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, services.ErrAlreadyClosed)
	suite.mockFYRepo.AssertNotCalled(suite.T(), "Commit", mock.Anything, mock.Anything)
	suite.mockFYRepo.AssertNotCalled(suite.T(), "MarkFiscalYearClosedInTx", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.mockFYRepo.AssertExpectations(suite.T())
}

func (suite *FiscalYearServiceTestSuite) TestCloseFiscalYear_RollsBackOnInsertFailure() {
	fy := suite.activeFiscalYear()
	tx := fakeTx{}
	equity := &domain.Account{
		AccountID:   uuid.NewString(),
		CompanyID:   suite.companyID,
		Name:        "Retained Earnings",
		AccountType: domain.Equity,
		Balance:     decimal.Zero,
		IsActive:    true,
	}
	summary := &domain.FiscalYearSummary{
		FiscalYearID:  fy.FiscalYearID,
		TotalIncome:   decimal.NewFromInt(100),
		TotalExpenses: decimal.Zero,
		NetProfit:     decimal.NewFromInt(100),
	}
	insertErr := errors.New("insert failed")

	suite.mockFYRepo.On("FindFiscalYearByID", suite.ctx, fy.FiscalYearID).Return(fy, nil).Once()
	suite.mockCompanyRepo.On("FindCompanyByID", suite.ctx, suite.companyID).Return(suite.company(), nil).Once()
	suite.mockFYRepo.On("Begin", suite.ctx).Return(tx, nil).Once()
	suite.mockFYRepo.On("FindFiscalYearForUpdate", suite.ctx, tx, fy.FiscalYearID).Return(fy, nil).Once()
	suite.mockFYRepo.On("SummarizeFiscalYearInTx", suite.ctx, tx, fy.FiscalYearID).Return(summary, nil).Once()
	suite.mockAccountRepo.On("GetOrCreateAccountInTx", suite.ctx, tx, mock.AnythingOfType("domain.Account")).Return(equity, nil).Once()
	suite.mockTxnRepo.On("InsertTransactionsInTx", suite.ctx, tx, mock.AnythingOfType("[]domain.Transaction")).Return(insertErr).Once()
	suite.mockFYRepo.On("Rollback", suite.ctx, tx).Return(nil).Once()

	result, err := suite.service.CloseFiscalYear(suite.ctx, suite.companyID, fy.FiscalYearID, suite.userID)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, insertErr)
	suite.mockFYRepo.AssertNotCalled(suite.T(), "Commit", mock.Anything, mock.Anything)
	suite.mockFYRepo.AssertExpectations(suite.T())
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func TestFiscalYearServiceTestSuite(t *testing.T) {
	suite.Run(t, new(FiscalYearServiceTestSuite))
}
