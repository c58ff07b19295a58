package services_test

import (
	"context"
	"testing"
	"time"

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
)

type MockBalanceSheetRepository struct {
	mock.Mock
}

var _ portsrepo.BalanceSheetRepositoryFacade = (*MockBalanceSheetRepository)(nil)

func (m *MockBalanceSheetRepository) SaveSnapshot(ctx context.Context, snapshot domain.BalanceSheetSnapshot) error {
	args := m.Called(ctx, snapshot)
	return args.Error(0)
}

func (m *MockBalanceSheetRepository) FindSnapshotByID(ctx context.Context, snapshotID string) (*domain.BalanceSheetSnapshot, error) {
	args := m.Called(ctx, snapshotID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BalanceSheetSnapshot), args.Error(1)
}

func (m *MockBalanceSheetRepository) ListSnapshots(ctx context.Context, limit int, offset int) ([]domain.BalanceSheetSnapshot, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BalanceSheetSnapshot), args.Error(1)
}

type BalanceSheetServiceTestSuite struct {
	suite.Suite
	mockRepo *MockBalanceSheetRepository
	service  portssvc.BalanceSheetSvcFacade
	ctx      context.Context
	userID   string
}

func (s *BalanceSheetServiceTestSuite) SetupTest() {
	s.mockRepo = new(MockBalanceSheetRepository)
	s.service = services.NewBalanceSheetService(s.mockRepo)
	s.ctx = context.Background()
	s.userID = "user-1"
}

func (s *BalanceSheetServiceTestSuite) balancedRequest() dto.CreateBalanceSheetRequest {
	return dto.CreateBalanceSheetRequest{
		PeriodType:  domain.PeriodQuarter,
		PeriodStart: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		PeriodEnd:   time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC),
		LineItems: []dto.BalanceSheetLineItemRequest{
			{Section: domain.CurrentAssets, Description: "Cash", Amount: decimal.RequireFromString("10000.00")},
			{Section: domain.CurrentLiabilities, Description: "Accounts payable", Amount: decimal.RequireFromString("6000.00")},
			{Section: domain.EquitySection, Description: "Owner equity", Amount: decimal.RequireFromString("4000.00")},
		},
	}
}

func (s *BalanceSheetServiceTestSuite) TestCreateSnapshot_Success() {
	req := s.balancedRequest()
	s.mockRepo.On("SaveSnapshot", s.ctx, mock.AnythingOfType("domain.BalanceSheetSnapshot")).Return(nil).Once()

	snapshot, err := s.service.CreateSnapshot(s.ctx, req, s.userID)

	s.NoError(err)
	s.NotEmpty(snapshot.SnapshotID)
	s.Equal(domain.PeriodQuarter, snapshot.PeriodType)
	s.Len(snapshot.LineItems, 3)
	s.Equal(0, snapshot.LineItems[0].Position)
	s.Equal(2, snapshot.LineItems[2].Position)
	s.Equal(s.userID, snapshot.CreatedBy)
	s.mockRepo.AssertExpectations(s.T())
}

func (s *BalanceSheetServiceTestSuite) TestCreateSnapshot_Unbalanced() {
	req := s.balancedRequest()
	req.LineItems[2].Amount = decimal.RequireFromString("2000.00")

	_, err := s.service.CreateSnapshot(s.ctx, req, s.userID)

	s.ErrorIs(err, services.ErrSnapshotUnbalanced)
	s.mockRepo.AssertNotCalled(s.T(), "SaveSnapshot", mock.Anything, mock.Anything)
}

func (s *BalanceSheetServiceTestSuite) TestCreateSnapshot_PeriodEndBeforeStart() {
	req := s.balancedRequest()
	req.PeriodEnd = req.PeriodStart.AddDate(0, 0, -1)

	_, err := s.service.CreateSnapshot(s.ctx, req, s.userID)

	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *BalanceSheetServiceTestSuite) TestCreateSnapshot_SaveError() {
	req := s.balancedRequest()
	s.mockRepo.On("SaveSnapshot", s.ctx, mock.AnythingOfType("domain.BalanceSheetSnapshot")).Return(assert.AnError).Once()

	_, err := s.service.CreateSnapshot(s.ctx, req, s.userID)

	s.ErrorIs(err, assert.AnError)
}

func (s *BalanceSheetServiceTestSuite) TestGetSnapshotByID_NotFound() {
	s.mockRepo.On("FindSnapshotByID", s.ctx, "snap-missing").Return(nil, apperrors.NewNotFoundError("snapshot snap-missing not found")).Once()

	_, err := s.service.GetSnapshotByID(s.ctx, "snap-missing")

	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *BalanceSheetServiceTestSuite) TestListSnapshots_ClampsLimit() {
	s.mockRepo.On("ListSnapshots", s.ctx, 100, 0).Return([]domain.BalanceSheetSnapshot{}, nil).Once()

	_, err := s.service.ListSnapshots(s.ctx, 9999, -5)

	s.NoError(err)
	s.mockRepo.AssertExpectations(s.T())
}

func (s *BalanceSheetServiceTestSuite) TestSummarizeLineItems() {
	summary := s.service.SummarizeLineItems([]domain.BalanceSheetLineItem{
		{Section: domain.CurrentAssets, Amount: decimal.RequireFromString("100.00")},
		{Section: domain.EquitySection, Amount: decimal.RequireFromString("100.00")},
	})

	s.True(summary.IsBalanced)
	s.True(summary.TotalAssets.Equal(decimal.RequireFromString("100.00")))
}

func TestBalanceSheetServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BalanceSheetServiceTestSuite))
}
