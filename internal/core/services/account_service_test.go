package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/barterbase/barter_books_app/internal/apperrors"
	"github.com/barterbase/barter_books_app/internal/core/domain"
	portsrepo "github.com/barterbase/barter_books_app/internal/core/ports/repositories"
	portssvc "github.com/barterbase/barter_books_app/internal/core/ports/services"
	"github.com/barterbase/barter_books_app/internal/core/services"
	"github.com/barterbase/barter_books_app/internal/dto"
)

type MockAccountRepository struct {
	mock.Mock
}

var _ portsrepo.AccountRepositoryFacade = (*MockAccountRepository)(nil)

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error) {
	args := m.Called(ctx, accountIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context, limit int, offset int) ([]domain.Account, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

type AccountServiceTestSuite struct {
	suite.Suite
	mockRepo *MockAccountRepository
	service  portssvc.AccountSvcFacade
	ctx      context.Context
	userID   string
}

func (s *AccountServiceTestSuite) SetupTest() {
	s.mockRepo = new(MockAccountRepository)
	s.service = services.NewAccountService(s.mockRepo)
	s.ctx = context.Background()
	s.userID = "user-1"
}

func (s *AccountServiceTestSuite) TestCreateAccount_Success() {
	req := dto.CreateAccountRequest{Name: "Cash", AccountType: domain.Asset, Description: "Petty cash"}
	s.mockRepo.On("SaveAccount", s.ctx, mock.AnythingOfType("domain.Account")).Return(nil).Once()

	account, err := s.service.CreateAccount(s.ctx, req, s.userID)

	s.NoError(err)
	s.NotEmpty(account.AccountID)
	s.Equal("Cash", account.Name)
	s.True(account.IsActive)
	s.Equal(s.userID, account.CreatedBy)
	s.mockRepo.AssertExpectations(s.T())
}

func (s *AccountServiceTestSuite) TestGetAccountByID_NotFound() {
	s.mockRepo.On("FindAccountByID", s.ctx, "acc-missing").Return(nil, apperrors.NewNotFoundError("account acc-missing not found")).Once()

	_, err := s.service.GetAccountByID(s.ctx, "acc-missing")

	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *AccountServiceTestSuite) TestDeactivateAccount_Success() {
	active := &domain.Account{AccountID: "acc-1", Name: "Cash", AccountType: domain.Asset, IsActive: true}
	s.mockRepo.On("FindAccountByID", s.ctx, "acc-1").Return(active, nil).Once()
	s.mockRepo.On("SaveAccount", s.ctx, mock.MatchedBy(func(a domain.Account) bool {
		return a.AccountID == "acc-1" && !a.IsActive
	})).Return(nil).Once()

	err := s.service.DeactivateAccount(s.ctx, "acc-1", s.userID)

	s.NoError(err)
	s.mockRepo.AssertExpectations(s.T())
}

func (s *AccountServiceTestSuite) TestDeactivateAccount_AlreadyInactive() {
	inactive := &domain.Account{AccountID: "acc-1", IsActive: false}
	s.mockRepo.On("FindAccountByID", s.ctx, "acc-1").Return(inactive, nil).Once()

	err := s.service.DeactivateAccount(s.ctx, "acc-1", s.userID)

	s.NoError(err)
	s.mockRepo.AssertNotCalled(s.T(), "SaveAccount", mock.Anything, mock.Anything)
}

func (s *AccountServiceTestSuite) TestListAccounts_ClampsLimit() {
	s.mockRepo.On("ListAccounts", s.ctx, 100, 0).Return([]domain.Account{}, nil).Once()

	_, err := s.service.ListAccounts(s.ctx, 500, -1)

	s.NoError(err)
	s.mockRepo.AssertExpectations(s.T())
}

func TestAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}
