package services_test

import (
	"context"
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

type LedgerServiceTestSuite struct {
	suite.Suite
	mockTxnRepo      *MockTransactionRepository
	mockFYRepo       *MockFiscalYearRepository
	mockAccountRepo  *MockAccountRepository
	mockProjectRepo  *MockProjectRepository
	mockCustomerRepo *MockCustomerRepository
	service          portssvc.LedgerSvcFacade
	ctx              context.Context
	companyID        string
	userID           string
	fiscalYear       *domain.FiscalYear
	account          *domain.Account
}

func (suite *LedgerServiceTestSuite) SetupTest() {
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.mockFYRepo = new(MockFiscalYearRepository)
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockProjectRepo = new(MockProjectRepository)
	suite.mockCustomerRepo = new(MockCustomerRepository)
	suite.service = services.NewLedgerService(suite.mockTxnRepo, suite.mockFYRepo, suite.mockAccountRepo, suite.mockProjectRepo, suite.mockCustomerRepo)
	suite.ctx = context.Background()
	suite.companyID = uuid.NewString()
	suite.userID = uuid.NewString()
	suite.fiscalYear = &domain.FiscalYear{
		FiscalYearID: uuid.NewString(),
		CompanyID:    suite.companyID,
		Year:         2024,
		StartDate:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:      time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
		Status:       domain.FiscalYearActive,
	}
	suite.account = &domain.Account{
		AccountID:    uuid.NewString(),
		CompanyID:    suite.companyID,
		Name:         "Main Bank",
		AccountType:  domain.Bank,
		CurrencyCode: "USD",
		Balance:      decimal.NewFromInt(1000),
		IsActive:     true,
	}
}

func (suite *LedgerServiceTestSuite) appendRequest() dto.AppendTransactionRequest {
	return dto.AppendTransactionRequest{
		FiscalYearID:    suite.fiscalYear.FiscalYearID,
		AccountID:       suite.account.AccountID,
		Type:            "INCOME",
		Amount:          decimal.NewFromInt(250),
		Description:     "Invoice settled",
		TransactionDate: time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC),
	}
}

func (suite *LedgerServiceTestSuite) TestAppendTransaction_Success() {
	req := suite.appendRequest()

	suite.mockFYRepo.On("FindFiscalYearByID", suite.ctx, req.FiscalYearID).Return(suite.fiscalYear, nil).Once()
	suite.mockAccountRepo.On("FindAccountByID", suite.ctx, req.AccountID).Return(suite.account, nil).Once()

	persisted := &domain.Transaction{
		TransactionID:   uuid.NewString(),
		CompanyID:       suite.companyID,
		FiscalYearID:    req.FiscalYearID,
		AccountID:       req.AccountID,
		TransactionType: domain.Income,
		Amount:          req.Amount,
		Description:     req.Description,
		TransactionDate: req.TransactionDate,
		RunningBalance:  decimal.NewFromInt(1250),
	}
	var captured domain.Transaction
	suite.mockTxnRepo.On("SaveTransaction", suite.ctx, mock.AnythingOfType("domain.Transaction")).
		Run(func(args mock.Arguments) {
			captured = args.Get(1).(domain.Transaction)
		}).
		Return(persisted, nil).Once()

	saved, err := suite.service.AppendTransaction(suite.ctx, suite.companyID, req, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(saved)
	suite.Equal(domain.Income, saved.TransactionType)
	suite.True(saved.Amount.Equal(decimal.NewFromInt(250)))
	suite.True(saved.RunningBalance.Equal(decimal.NewFromInt(1250)))

	suite.Equal(suite.companyID, captured.CompanyID)
	suite.Equal(req.FiscalYearID, captured.FiscalYearID)
	suite.Equal(suite.userID, captured.CreatedBy)
	suite.WithinDuration(time.Now(), captured.CreatedAt, time.Second)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestAppendTransaction_UnknownType() {
	req := suite.appendRequest()
	req.Type = "WITHDRAWAL"

	saved, err := suite.service.AppendTransaction(suite.ctx, suite.companyID, req, suite.userID)

	suite.Require().Error(err)
	suite.Nil(saved)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestAppendTransaction_NonPositiveAmount() {
	req := suite.appendRequest()
	req.Amount = decimal.NewFromInt(-5)

	saved, err := suite.service.AppendTransaction(suite.ctx, suite.companyID, req, suite.userID)

	suite.Require().Error(err)
	suite.Nil(saved)
	suite.ErrorIs(err, apperrors.ErrValidation)

	req.Amount = decimal.Zero
	saved, err = suite.service.AppendTransaction(suite.ctx, suite.companyID, req, suite.userID)

	suite.Require().Error(err)
	suite.Nil(saved)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *LedgerServiceTestSuite) TestAppendTransaction_ReservedMetadataKey() {
	req := suite.appendRequest()
	req.Metadata = map[string]string{domain.ClosingEntryMetadataKey: "true"}

	saved, err := suite.service.AppendTransaction(suite.ctx, suite.companyID, req, suite.userID)

	suite.Require().Error(err)
	suite.Nil(saved)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockFYRepo.AssertNotCalled(suite.T(), "FindFiscalYearByID", mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestAppendTransaction_ClosedPeriod() {
	req := suite.appendRequest()
	suite.fiscalYear.Status = domain.FiscalYearClosed

	suite.mockFYRepo.On("FindFiscalYearByID", suite.ctx, req.FiscalYearID).Return(suite.fiscalYear, nil).Once()

	saved, err := suite.service.AppendTransaction(suite.ctx, suite.companyID, req, suite.userID)

	suite.Require().Error(err)
	suite.Nil(saved)
	suite.ErrorIs(err, services.ErrPeriodClosed)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestAppendTransaction_PeriodClosedDuringInsert() {
	req := suite.appendRequest()

	suite.mockFYRepo.On("FindFiscalYearByID", suite.ctx, req.FiscalYearID).Return(suite.fiscalYear, nil).Once()
	suite.mockAccountRepo.On("FindAccountByID", suite.ctx, req.AccountID).Return(suite.account, nil).Once()
	conflictErr := fmt.Errorf("%w: fiscal year is not active", apperrors.ErrConflict)
	suite.mockTxnRepo.On("SaveTransaction", suite.ctx, mock.AnythingOfType("domain.Transaction")).Return(nil, conflictErr).Once()

	saved, err := suite.service.AppendTransaction(suite.ctx, suite.companyID, req, suite.userID)

	suite.Require().Error(err)
	suite.Nil(saved)
	suite.ErrorIs(err, services.ErrPeriodClosed)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestAppendTransaction_DateOutsidePeriod() {
	req := suite.appendRequest()
	req.TransactionDate = time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)

	suite.mockFYRepo.On("FindFiscalYearByID", suite.ctx, req.FiscalYearID).Return(suite.fiscalYear, nil).Once()

	saved, err := suite.service.AppendTransaction(suite.ctx, suite.companyID, req, suite.userID)

	suite.Require().Error(err)
	suite.Nil(saved)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *LedgerServiceTestSuite) TestAppendTransaction_FiscalYearOfOtherCompany() {
	req := suite.appendRequest()
	suite.fiscalYear.CompanyID = uuid.NewString()

	suite.mockFYRepo.On("FindFiscalYearByID", suite.ctx, req.FiscalYearID).Return(suite.fiscalYear, nil).Once()

	saved, err := suite.service.AppendTransaction(suite.ctx, suite.companyID, req, suite.userID)

	suite.Require().Error(err)
	suite.Nil(saved)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *LedgerServiceTestSuite) TestAppendTransaction_InactiveAccount() {
	req := suite.appendRequest()
	suite.account.IsActive = false

	suite.mockFYRepo.On("FindFiscalYearByID", suite.ctx, req.FiscalYearID).Return(suite.fiscalYear, nil).Once()
	suite.mockAccountRepo.On("FindAccountByID", suite.ctx, req.AccountID).Return(suite.account, nil).Once()

	saved, err := suite.service.AppendTransaction(suite.ctx, suite.companyID, req, suite.userID)

	suite.Require().Error(err)
	suite.Nil(saved)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *LedgerServiceTestSuite) TestAppendTransaction_InvalidProjectReference() {
	req := suite.appendRequest()
	projectID := uuid.NewString()
	req.ProjectID = &projectID

	suite.mockFYRepo.On("FindFiscalYearByID", suite.ctx, req.FiscalYearID).Return(suite.fiscalYear, nil).Once()
	suite.mockAccountRepo.On("FindAccountByID", suite.ctx, req.AccountID).Return(suite.account, nil).Once()
	suite.mockProjectRepo.On("FindProjectByID", suite.ctx, projectID).Return(nil, apperrors.ErrNotFound).Once()

	saved, err := suite.service.AppendTransaction(suite.ctx, suite.companyID, req, suite.userID)

	suite.Require().Error(err)
	suite.Nil(saved)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestGetTransactionByID_WrongCompany() {
	txn := &domain.Transaction{
		TransactionID:   uuid.NewString(),
		CompanyID:       uuid.NewString(),
		TransactionType: domain.Income,
		Amount:          decimal.NewFromInt(10),
	}

	suite.mockTxnRepo.On("FindTransactionByID", suite.ctx, txn.TransactionID).Return(txn, nil).Once()

	found, err := suite.service.GetTransactionByID(suite.ctx, suite.companyID, txn.TransactionID)

	suite.Require().Error(err)
	suite.Nil(found)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *LedgerServiceTestSuite) TestListTransactionsByFiscalYear_DefaultLimit() {
	fyID := suite.fiscalYear.FiscalYearID
	token := "next-page"
	txns := []domain.Transaction{
		{TransactionID: uuid.NewString(), CompanyID: suite.companyID, FiscalYearID: fyID, TransactionType: domain.Income, Amount: decimal.NewFromInt(100)},
	}

	suite.mockFYRepo.On("FindFiscalYearByID", suite.ctx, fyID).Return(suite.fiscalYear, nil).Once()
	suite.mockTxnRepo.On("ListTransactionsByFiscalYear", suite.ctx, suite.companyID, fyID, 20, (*string)(nil)).Return(txns, &token, nil).Once()

	page, err := suite.service.ListTransactionsByFiscalYear(suite.ctx, suite.companyID, fyID, dto.ListTransactionsParams{})

	suite.Require().NoError(err)
	suite.Require().NotNil(page)
	suite.Len(page.Transactions, 1)
	suite.Require().NotNil(page.NextToken)
	suite.Equal(token, *page.NextToken)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestListTransactionsByAccount_ScopeCheck() {
	suite.account.CompanyID = uuid.NewString()

	suite.mockAccountRepo.On("FindAccountByID", suite.ctx, suite.account.AccountID).Return(suite.account, nil).Once()

	page, err := suite.service.ListTransactionsByAccount(suite.ctx, suite.companyID, suite.account.AccountID, dto.ListTransactionsParams{Limit: 5})

	suite.Require().Error(err)
	suite.Nil(page)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "ListTransactionsByAccount", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestLedgerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}
