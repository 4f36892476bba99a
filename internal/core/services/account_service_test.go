package services_test

import (
	"context"
	"testing"

	"github.com/openbooks/general_ledger_app/internal/apperrors"
	"github.com/openbooks/general_ledger_app/internal/core/domain"
	portsrepo "github.com/openbooks/general_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/openbooks/general_ledger_app/internal/core/ports/services"
	"github.com/openbooks/general_ledger_app/internal/core/services"
	"github.com/openbooks/general_ledger_app/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock AccountRepository (full facade) ---
type MockAccountRepository struct {
	MockAccountReader
}

var _ portsrepo.AccountRepositoryFacade = (*MockAccountRepository)(nil)

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) DeleteAccount(ctx context.Context, number string) error {
	args := m.Called(ctx, number)
	return args.Error(0)
}

// --- Mock ElementReader ---
type MockElementReader struct {
	mock.Mock
}

var _ portsrepo.ElementReader = (*MockElementReader)(nil)

func (m *MockElementReader) FindElementByNumber(ctx context.Context, number int64) (*domain.Element, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Element), args.Error(1)
}

func (m *MockElementReader) FindElementByName(ctx context.Context, name string) (*domain.Element, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Element), args.Error(1)
}

func (m *MockElementReader) ListElements(ctx context.Context, filter domain.ElementFilter) ([]domain.Element, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Element), args.Error(1)
}

// --- Test Suite Setup ---
type AccountServiceTestSuite struct {
	suite.Suite
	mockAccountRepo *MockAccountRepository
	mockElementRepo *MockElementReader
	mockPlayerRepo  *MockPlayerReader
	service         portssvc.AccountSvcFacade
	assetElement    domain.Element
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockElementRepo = new(MockElementReader)
	suite.mockPlayerRepo = new(MockPlayerReader)
	suite.service = services.NewAccountService(suite.mockAccountRepo, suite.mockElementRepo, suite.mockPlayerRepo)

	suite.assetElement = domain.Element{Number: 1, Name: "Assets"}
}

// --- Test Cases ---

func (suite *AccountServiceTestSuite) TestSaveAccount_Success() {
	ctx := context.Background()
	req := dto.SaveAccountRequest{Number: "1000", Name: "Checking", ElementNumber: 1}

	suite.mockElementRepo.On("FindElementByNumber", ctx, int64(1)).Return(&suite.assetElement, nil).Once()
	suite.mockAccountRepo.On("FindAccountByName", ctx, "Checking").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockAccountRepo.On("FindAccountByNumber", ctx, "1000").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockAccountRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).Return(nil).Once()

	account, err := suite.service.SaveAccount(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(account)
	suite.Equal("1000", account.Number)
	suite.Equal(int64(1), account.ElementNumber)
	suite.mockAccountRepo.AssertExpectations(suite.T())
	suite.mockElementRepo.AssertExpectations(suite.T())
	suite.mockPlayerRepo.AssertNotCalled(suite.T(), "FindPlayerByName", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestSaveAccount_UnknownElement() {
	ctx := context.Background()
	req := dto.SaveAccountRequest{Number: "1000", Name: "Checking", ElementNumber: 9}

	suite.mockElementRepo.On("FindElementByNumber", ctx, int64(9)).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockAccountRepo.On("FindAccountByName", ctx, "Checking").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.SaveAccount(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrDanglingElementReference)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "SaveAccount", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestSaveAccount_NameHeldByOtherAccount() {
	ctx := context.Background()
	req := dto.SaveAccountRequest{Number: "1000", Name: "Checking", ElementNumber: 1}
	other := domain.Account{Number: "1010", Name: "Checking", ElementNumber: 1}

	suite.mockElementRepo.On("FindElementByNumber", ctx, int64(1)).Return(&suite.assetElement, nil).Once()
	suite.mockAccountRepo.On("FindAccountByName", ctx, "Checking").Return(&other, nil).Once()

	_, err := suite.service.SaveAccount(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrDuplicateKey)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "SaveAccount", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestSaveAccount_UpdateKeepsName() {
	// Re-saving the same account under its own name is not a conflict.
	ctx := context.Background()
	req := dto.SaveAccountRequest{Number: "1000", Name: "Checking", ElementNumber: 1}
	same := domain.Account{Number: "1000", Name: "Checking", ElementNumber: 1}

	suite.mockElementRepo.On("FindElementByNumber", ctx, int64(1)).Return(&suite.assetElement, nil).Once()
	suite.mockAccountRepo.On("FindAccountByName", ctx, "Checking").Return(&same, nil).Once()
	suite.mockAccountRepo.On("FindAccountByNumber", ctx, "1000").Return(&same, nil).Once()
	suite.mockAccountRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).Return(nil).Once()

	account, err := suite.service.SaveAccount(ctx, req)

	suite.Require().NoError(err)
	suite.Equal("1000", account.Number)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestSaveAccount_UnknownPlayer() {
	ctx := context.Background()
	ghost := "Nobody"
	req := dto.SaveAccountRequest{Number: "2100", Name: "Card", ElementNumber: 1, PlayerName: &ghost}

	suite.mockElementRepo.On("FindElementByNumber", ctx, int64(1)).Return(&suite.assetElement, nil).Once()
	suite.mockAccountRepo.On("FindAccountByName", ctx, "Card").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockPlayerRepo.On("FindPlayerByName", ctx, ghost).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.SaveAccount(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrDanglingPlayerReference)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "SaveAccount", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestDeleteAccount_Referenced() {
	ctx := context.Background()
	suite.mockAccountRepo.On("DeleteAccount", ctx, "1000").Return(apperrors.ErrReferentialConstraint).Once()

	err := suite.service.DeleteAccount(ctx, "1000")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrReferentialConstraint)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestDeleteAccount_Success() {
	ctx := context.Background()
	suite.mockAccountRepo.On("DeleteAccount", ctx, "1000").Return(nil).Once()

	err := suite.service.DeleteAccount(ctx, "1000")

	suite.Require().NoError(err)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestGetAccountByNumber_NotFound() {
	ctx := context.Background()
	suite.mockAccountRepo.On("FindAccountByNumber", ctx, "9999").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.GetAccountByNumber(ctx, "9999")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

// --- Run Test Suite ---
func TestAccountService(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}
