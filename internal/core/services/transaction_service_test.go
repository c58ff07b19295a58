package services_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/barterbase/barter_books_app/internal/apperrors"
	"github.com/barterbase/barter_books_app/internal/core/domain"
	portsrepo "github.com/barterbase/barter_books_app/internal/core/ports/repositories"
	portssvc "github.com/barterbase/barter_books_app/internal/core/ports/services"
	"github.com/barterbase/barter_books_app/internal/core/services"
	"github.com/barterbase/barter_books_app/internal/dto"
	"github.com/barterbase/barter_books_app/internal/utils/accounting"
)

// --- Mocks ---

type MockTransactionRepository struct {
	mock.Mock
}

var _ portsrepo.TransactionRepositoryWithTx = (*MockTransactionRepository)(nil)

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListTransactions(ctx context.Context, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	args := m.Called(ctx, limit, nextToken)
	var txns []domain.Transaction
	if args.Get(0) != nil {
		txns = args.Get(0).([]domain.Transaction)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return txns, token, args.Error(2)
}

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) UpdateDraftTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) MarkTransactionPosted(ctx context.Context, transactionID string, userID string, postedAt time.Time) error {
	args := m.Called(ctx, transactionID, userID, postedAt)
	return args.Error(0)
}

func (m *MockTransactionRepository) MarkTransactionVoided(ctx context.Context, transactionID string, reason string, userID string, voidedAt time.Time) error {
	args := m.Called(ctx, transactionID, reason, userID, voidedAt)
	return args.Error(0)
}

func (m *MockTransactionRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockTransactionRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockTransactionRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

type MockAccountService struct {
	mock.Mock
}

var _ portssvc.AccountSvcFacade = (*MockAccountService)(nil)

func (m *MockAccountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest, creatorUserID string) (*domain.Account, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) GetAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error) {
	args := m.Called(ctx, accountIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Account), args.Error(1)
}

func (m *MockAccountService) ListAccounts(ctx context.Context, limit int, offset int) ([]domain.Account, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountService) DeactivateAccount(ctx context.Context, accountID string, userID string) error {
	args := m.Called(ctx, accountID, userID)
	return args.Error(0)
}

type MockCounterpartyService struct {
	mock.Mock
}

var _ portssvc.CounterpartySvcFacade = (*MockCounterpartyService)(nil)

func (m *MockCounterpartyService) CreateCounterparty(ctx context.Context, req dto.CreateCounterpartyRequest, creatorUserID string) (*domain.Counterparty, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Counterparty), args.Error(1)
}

func (m *MockCounterpartyService) GetCounterpartyByID(ctx context.Context, counterpartyID string) (*domain.Counterparty, error) {
	args := m.Called(ctx, counterpartyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Counterparty), args.Error(1)
}

func (m *MockCounterpartyService) ListCounterparties(ctx context.Context, limit int, offset int) ([]domain.Counterparty, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Counterparty), args.Error(1)
}

// --- Test Suite ---

type TransactionServiceTestSuite struct {
	suite.Suite
	mockRepo            *MockTransactionRepository
	mockAccountSvc      *MockAccountService
	mockCounterpartySvc *MockCounterpartyService
	service             portssvc.TransactionSvcFacade
	ctx                 context.Context
	userID              string
	activeAccounts      map[string]domain.Account
}

func (s *TransactionServiceTestSuite) SetupTest() {
	s.mockRepo = new(MockTransactionRepository)
	s.mockAccountSvc = new(MockAccountService)
	s.mockCounterpartySvc = new(MockCounterpartyService)
	s.service = services.NewTransactionService(s.mockRepo, s.mockAccountSvc, s.mockCounterpartySvc, nil, decimal.NewFromInt(5))
	s.ctx = context.Background()
	s.userID = "user-1"

	s.activeAccounts = map[string]domain.Account{
		"acc-cash":     {AccountID: "acc-cash", Name: "Cash", AccountType: domain.Asset, IsActive: true},
		"acc-revenue":  {AccountID: "acc-revenue", Name: "Sales Revenue", AccountType: domain.Revenue, IsActive: true},
		"acc-income":   {AccountID: "acc-income", Name: "Barter Income", AccountType: domain.Revenue, IsActive: true},
		"acc-expense":  {AccountID: "acc-expense", Name: "Barter Expense", AccountType: domain.Expense, IsActive: true},
		"acc-clearing": {AccountID: "acc-clearing", Name: "Barter Clearing", AccountType: domain.Asset, IsActive: true},
	}
}

func (s *TransactionServiceTestSuite) standardCreateRequest() dto.CreateTransactionRequest {
	return dto.CreateTransactionRequest{
		Kind:            domain.Standard,
		Description:     "Office supplies",
		TransactionDate: time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC),
		Entries: []dto.CreateEntryRequest{
			{AccountID: "acc-cash", Direction: domain.Debit, Amount: decimal.RequireFromString("100.00")},
			{AccountID: "acc-revenue", Direction: domain.Credit, Amount: decimal.RequireFromString("100.00")},
		},
	}
}

func (s *TransactionServiceTestSuite) barterCreateRequest() dto.CreateTransactionRequest {
	counterpartyID := "cp-1"
	return dto.CreateTransactionRequest{
		Kind:            domain.Barter,
		Description:     "Design work for furniture",
		TransactionDate: time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC),
		CounterpartyID:  &counterpartyID,
		BarterDetail: &dto.BarterDetailRequest{
			GoodsReceivedDescription: "office furniture",
			GoodsProvidedDescription: "web design services",
			FMVReceived:              decimal.RequireFromString("1000.00"),
			FMVProvided:              decimal.RequireFromString("900.00"),
			IncomeAccountID:          "acc-income",
			ExpenseAccountID:         "acc-expense",
			ClearingAccountID:        "acc-clearing",
		},
	}
}

func (s *TransactionServiceTestSuite) draftTransaction(id string) *domain.Transaction {
	return &domain.Transaction{
		TransactionID:   id,
		Kind:            domain.Standard,
		Description:     "Office supplies",
		State:           domain.Draft,
		TransactionDate: time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC),
		Entries: []domain.LedgerEntry{
			{EntryID: "entry-1", TransactionID: id, AccountID: "acc-cash", Direction: domain.Debit, Amount: decimal.RequireFromString("100.00"), State: domain.Draft},
			{EntryID: "entry-2", TransactionID: id, AccountID: "acc-revenue", Direction: domain.Credit, Amount: decimal.RequireFromString("100.00"), State: domain.Draft},
		},
	}
}

// --- CreateTransaction ---

func (s *TransactionServiceTestSuite) TestCreateTransaction_Standard_Success() {
	req := s.standardCreateRequest()
	s.mockAccountSvc.On("GetAccountsByIDs", s.ctx, []string{"acc-cash", "acc-revenue"}).Return(s.activeAccounts, nil).Once()
	s.mockRepo.On("SaveTransaction", s.ctx, mock.AnythingOfType("domain.Transaction")).Return(nil).Once()

	txn, warning, err := s.service.CreateTransaction(s.ctx, req, s.userID)

	s.NoError(err)
	s.Nil(warning)
	s.NotNil(txn)
	s.Equal(domain.Draft, txn.State)
	s.Equal(domain.Standard, txn.Kind)
	s.Len(txn.Entries, 2)
	s.NotEmpty(txn.Entries[0].EntryID)
	s.Equal(txn.TransactionID, txn.Entries[0].TransactionID)
	s.Equal(s.userID, txn.CreatedBy)
	s.mockRepo.AssertExpectations(s.T())
	s.mockAccountSvc.AssertExpectations(s.T())
}

func (s *TransactionServiceTestSuite) TestCreateTransaction_Standard_NonPositiveAmount() {
	req := s.standardCreateRequest()
	req.Entries[0].Amount = decimal.Zero

	_, _, err := s.service.CreateTransaction(s.ctx, req, s.userID)

	s.ErrorIs(err, apperrors.ErrValidation)
	s.mockRepo.AssertNotCalled(s.T(), "SaveTransaction", mock.Anything, mock.Anything)
}

func (s *TransactionServiceTestSuite) TestCreateTransaction_Standard_UnknownAccount() {
	req := s.standardCreateRequest()
	req.Entries[1].AccountID = "acc-missing"
	s.mockAccountSvc.On("GetAccountsByIDs", s.ctx, []string{"acc-cash", "acc-missing"}).Return(s.activeAccounts, nil).Once()

	_, _, err := s.service.CreateTransaction(s.ctx, req, s.userID)

	s.ErrorIs(err, services.ErrAccountNotFound)
	s.mockRepo.AssertNotCalled(s.T(), "SaveTransaction", mock.Anything, mock.Anything)
}

func (s *TransactionServiceTestSuite) TestCreateTransaction_Standard_InactiveAccount() {
	req := s.standardCreateRequest()
	inactive := map[string]domain.Account{
		"acc-cash":    {AccountID: "acc-cash", IsActive: true},
		"acc-revenue": {AccountID: "acc-revenue", IsActive: false},
	}
	s.mockAccountSvc.On("GetAccountsByIDs", s.ctx, []string{"acc-cash", "acc-revenue"}).Return(inactive, nil).Once()

	_, _, err := s.service.CreateTransaction(s.ctx, req, s.userID)

	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *TransactionServiceTestSuite) TestCreateTransaction_Standard_SaveError() {
	req := s.standardCreateRequest()
	s.mockAccountSvc.On("GetAccountsByIDs", s.ctx, mock.Anything).Return(s.activeAccounts, nil).Once()
	s.mockRepo.On("SaveTransaction", s.ctx, mock.AnythingOfType("domain.Transaction")).Return(assert.AnError).Once()

	_, _, err := s.service.CreateTransaction(s.ctx, req, s.userID)

	s.ErrorIs(err, assert.AnError)
}

func (s *TransactionServiceTestSuite) TestCreateTransaction_Barter_Success() {
	req := s.barterCreateRequest()
	s.mockCounterpartySvc.On("GetCounterpartyByID", s.ctx, "cp-1").Return(&domain.Counterparty{CounterpartyID: "cp-1", Name: "Acme Barter LLC", IsActive: true}, nil).Once()
	s.mockAccountSvc.On("GetAccountsByIDs", s.ctx, []string{"acc-income", "acc-expense", "acc-clearing"}).Return(s.activeAccounts, nil).Once()
	s.mockRepo.On("SaveTransaction", s.ctx, mock.AnythingOfType("domain.Transaction")).Return(nil).Once()

	txn, warning, err := s.service.CreateTransaction(s.ctx, req, s.userID)

	s.NoError(err)
	s.NotNil(txn)
	s.Len(txn.Entries, 3)
	s.NotNil(txn.BarterDetail)
	s.True(txn.BarterDetail.FMVReceived.Equal(decimal.RequireFromString("1000.00")))
	// 100 against 1000 is a 10% divergence, past the 5% tolerance.
	s.NotNil(warning)
	s.mockRepo.AssertExpectations(s.T())
}

func (s *TransactionServiceTestSuite) TestCreateTransaction_Barter_MissingDetail() {
	req := s.barterCreateRequest()
	req.BarterDetail = nil

	_, _, err := s.service.CreateTransaction(s.ctx, req, s.userID)

	s.ErrorIs(err, services.ErrMissingBarterDetail)
}

func (s *TransactionServiceTestSuite) TestCreateTransaction_Barter_MissingCounterparty() {
	req := s.barterCreateRequest()
	req.CounterpartyID = nil

	_, _, err := s.service.CreateTransaction(s.ctx, req, s.userID)

	s.ErrorIs(err, services.ErrMissingCounterparty)
}

func (s *TransactionServiceTestSuite) TestCreateTransaction_Barter_SuppliedEntriesRejected() {
	req := s.barterCreateRequest()
	req.Entries = []dto.CreateEntryRequest{
		{AccountID: "acc-cash", Direction: domain.Debit, Amount: decimal.RequireFromString("10.00")},
	}

	_, _, err := s.service.CreateTransaction(s.ctx, req, s.userID)

	s.ErrorIs(err, apperrors.ErrValidation)
}

// --- UpdateTransaction ---

func (s *TransactionServiceTestSuite) TestUpdateTransaction_Description() {
	txn := s.draftTransaction("txn-1")
	s.mockRepo.On("FindTransactionByID", s.ctx, "txn-1").Return(txn, nil).Once()
	s.mockRepo.On("UpdateDraftTransaction", s.ctx, mock.AnythingOfType("domain.Transaction")).Return(nil).Once()

	newDescription := "Updated description"
	updated, warning, err := s.service.UpdateTransaction(s.ctx, "txn-1", dto.UpdateTransactionRequest{Description: &newDescription}, s.userID)

	s.NoError(err)
	s.Nil(warning)
	s.Equal("Updated description", updated.Description)
	s.Equal(s.userID, updated.LastUpdatedBy)
	s.mockRepo.AssertExpectations(s.T())
}

func (s *TransactionServiceTestSuite) TestUpdateTransaction_PostedIsImmutable() {
	txn := s.draftTransaction("txn-1")
	txn.State = domain.Posted
	s.mockRepo.On("FindTransactionByID", s.ctx, "txn-1").Return(txn, nil).Once()

	newDescription := "no"
	_, _, err := s.service.UpdateTransaction(s.ctx, "txn-1", dto.UpdateTransactionRequest{Description: &newDescription}, s.userID)

	s.ErrorIs(err, services.ErrImmutable)
	s.mockRepo.AssertNotCalled(s.T(), "UpdateDraftTransaction", mock.Anything, mock.Anything)
}

func (s *TransactionServiceTestSuite) TestUpdateTransaction_LostDraftRace() {
	txn := s.draftTransaction("txn-1")
	s.mockRepo.On("FindTransactionByID", s.ctx, "txn-1").Return(txn, nil).Once()
	conflict := fmt.Errorf("%w: transaction txn-1 is not in draft state", apperrors.ErrConflict)
	s.mockRepo.On("UpdateDraftTransaction", s.ctx, mock.AnythingOfType("domain.Transaction")).Return(conflict).Once()

	newDescription := "racing"
	_, _, err := s.service.UpdateTransaction(s.ctx, "txn-1", dto.UpdateTransactionRequest{Description: &newDescription}, s.userID)

	s.ErrorIs(err, services.ErrImmutable)
}

// --- PostTransaction ---

func (s *TransactionServiceTestSuite) TestPostTransaction_Success() {
	txn := s.draftTransaction("txn-1")
	s.mockRepo.On("FindTransactionByID", s.ctx, "txn-1").Return(txn, nil).Once()
	s.mockRepo.On("MarkTransactionPosted", s.ctx, "txn-1", s.userID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	posted, err := s.service.PostTransaction(s.ctx, "txn-1", s.userID)

	s.NoError(err)
	s.Equal(domain.Posted, posted.State)
	s.NotNil(posted.PostedAt)
	for _, e := range posted.Entries {
		s.Equal(domain.Posted, e.State)
		s.NotNil(e.PostedAt)
	}
	s.mockRepo.AssertExpectations(s.T())
}

func (s *TransactionServiceTestSuite) TestPostTransaction_AlreadyPosted() {
	txn := s.draftTransaction("txn-1")
	txn.State = domain.Posted
	s.mockRepo.On("FindTransactionByID", s.ctx, "txn-1").Return(txn, nil).Once()

	_, err := s.service.PostTransaction(s.ctx, "txn-1", s.userID)

	s.ErrorIs(err, services.ErrAlreadyPosted)
	s.mockRepo.AssertNotCalled(s.T(), "MarkTransactionPosted", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *TransactionServiceTestSuite) TestPostTransaction_VoidIsImmutable() {
	txn := s.draftTransaction("txn-1")
	txn.State = domain.Void
	s.mockRepo.On("FindTransactionByID", s.ctx, "txn-1").Return(txn, nil).Once()

	_, err := s.service.PostTransaction(s.ctx, "txn-1", s.userID)

	s.ErrorIs(err, services.ErrImmutable)
}

func (s *TransactionServiceTestSuite) TestPostTransaction_UnbalancedDraft() {
	txn := s.draftTransaction("txn-1")
	txn.Entries[1].Amount = decimal.RequireFromString("90.00")
	s.mockRepo.On("FindTransactionByID", s.ctx, "txn-1").Return(txn, nil).Once()

	_, err := s.service.PostTransaction(s.ctx, "txn-1", s.userID)

	s.ErrorIs(err, apperrors.ErrValidation)
	// The structured validator error stays on the chain with its totals.
	var unbalanced *accounting.UnbalancedError
	s.True(errors.As(err, &unbalanced))
	s.True(unbalanced.DebitTotal.Equal(decimal.RequireFromString("100.00")))
	s.True(unbalanced.CreditTotal.Equal(decimal.RequireFromString("90.00")))
	s.mockRepo.AssertNotCalled(s.T(), "MarkTransactionPosted", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *TransactionServiceTestSuite) TestPostTransaction_BarterWithoutDetail() {
	txn := s.draftTransaction("txn-1")
	txn.Kind = domain.Barter
	txn.BarterDetail = nil
	s.mockRepo.On("FindTransactionByID", s.ctx, "txn-1").Return(txn, nil).Once()

	_, err := s.service.PostTransaction(s.ctx, "txn-1", s.userID)

	s.ErrorIs(err, services.ErrMissingBarterDetail)
	s.mockRepo.AssertNotCalled(s.T(), "MarkTransactionPosted", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *TransactionServiceTestSuite) TestPostTransaction_LostRace() {
	txn := s.draftTransaction("txn-1")
	s.mockRepo.On("FindTransactionByID", s.ctx, "txn-1").Return(txn, nil).Once()
	conflict := fmt.Errorf("%w: transaction txn-1 is not in draft state", apperrors.ErrConflict)
	s.mockRepo.On("MarkTransactionPosted", s.ctx, "txn-1", s.userID, mock.AnythingOfType("time.Time")).Return(conflict).Once()

	_, err := s.service.PostTransaction(s.ctx, "txn-1", s.userID)

	s.ErrorIs(err, apperrors.ErrConflict)
}

func (s *TransactionServiceTestSuite) TestPostTransaction_NotFound() {
	s.mockRepo.On("FindTransactionByID", s.ctx, "txn-missing").Return(nil, apperrors.NewNotFoundError("transaction txn-missing not found")).Once()

	_, err := s.service.PostTransaction(s.ctx, "txn-missing", s.userID)

	s.ErrorIs(err, apperrors.ErrNotFound)
}

// --- VoidTransaction ---

func (s *TransactionServiceTestSuite) TestVoidTransaction_Success() {
	txn := s.draftTransaction("txn-1")
	txn.State = domain.Posted
	s.mockRepo.On("FindTransactionByID", s.ctx, "txn-1").Return(txn, nil).Once()
	s.mockRepo.On("MarkTransactionVoided", s.ctx, "txn-1", "duplicate entry", s.userID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	voided, err := s.service.VoidTransaction(s.ctx, "txn-1", "duplicate entry", s.userID)

	s.NoError(err)
	s.Equal(domain.Void, voided.State)
	s.Equal("duplicate entry", voided.VoidReason)
	s.NotNil(voided.VoidedAt)
	s.True(voided.IsTerminal())
	s.mockRepo.AssertExpectations(s.T())
}

func (s *TransactionServiceTestSuite) TestVoidTransaction_EmptyReason() {
	_, err := s.service.VoidTransaction(s.ctx, "txn-1", "", s.userID)

	s.ErrorIs(err, services.ErrVoidReasonRequired)
	s.mockRepo.AssertNotCalled(s.T(), "FindTransactionByID", mock.Anything, mock.Anything)
}

func (s *TransactionServiceTestSuite) TestVoidTransaction_DraftNotPosted() {
	txn := s.draftTransaction("txn-1")
	s.mockRepo.On("FindTransactionByID", s.ctx, "txn-1").Return(txn, nil).Once()

	_, err := s.service.VoidTransaction(s.ctx, "txn-1", "mistake", s.userID)

	s.ErrorIs(err, services.ErrNotPosted)
	s.mockRepo.AssertNotCalled(s.T(), "MarkTransactionVoided", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// --- ListTransactions ---

func (s *TransactionServiceTestSuite) TestListTransactions_DefaultLimit() {
	s.mockRepo.On("ListTransactions", s.ctx, 20, (*string)(nil)).Return([]domain.Transaction{*s.draftTransaction("txn-1")}, nil, nil).Once()

	resp, err := s.service.ListTransactions(s.ctx, dto.ListTransactionsParams{})

	s.NoError(err)
	s.Len(resp.Transactions, 1)
	s.Nil(resp.NextToken)
	s.mockRepo.AssertExpectations(s.T())
}

func (s *TransactionServiceTestSuite) TestListTransactions_ClampsLimit() {
	token := "next"
	s.mockRepo.On("ListTransactions", s.ctx, 100, (*string)(nil)).Return([]domain.Transaction{}, &token, nil).Once()

	resp, err := s.service.ListTransactions(s.ctx, dto.ListTransactionsParams{Limit: 5000})

	s.NoError(err)
	s.Equal(&token, resp.NextToken)
	s.mockRepo.AssertExpectations(s.T())
}

// --- PreviewBarterEntries ---

func (s *TransactionServiceTestSuite) TestPreviewBarterEntries() {
	req := *s.barterCreateRequest().BarterDetail

	entries, warning, err := s.service.PreviewBarterEntries(s.ctx, req)

	s.NoError(err)
	s.Len(entries, 3)
	s.NotNil(warning)
	s.mockRepo.AssertNotCalled(s.T(), "SaveTransaction", mock.Anything, mock.Anything)
}

func TestTransactionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}
