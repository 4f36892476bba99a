package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/openbooks/general_ledger_app/internal/apperrors"
	"github.com/openbooks/general_ledger_app/internal/core/domain"
	portsrepo "github.com/openbooks/general_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/openbooks/general_ledger_app/internal/core/ports/services"
	"github.com/openbooks/general_ledger_app/internal/core/services"
	"github.com/openbooks/general_ledger_app/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock PlayerRepository (full facade) ---
type MockPlayerRepository struct {
	MockPlayerReader
}

var _ portsrepo.PlayerRepositoryFacade = (*MockPlayerRepository)(nil)

func (m *MockPlayerRepository) SavePlayer(ctx context.Context, player domain.Player) error {
	args := m.Called(ctx, player)
	return args.Error(0)
}

func (m *MockPlayerRepository) DeletePlayer(ctx context.Context, name string) error {
	args := m.Called(ctx, name)
	return args.Error(0)
}

// --- Test Suite Setup ---
type PlayerServiceTestSuite struct {
	suite.Suite
	mockPlayerRepo *MockPlayerRepository
	service        portssvc.PlayerSvcFacade
}

func (suite *PlayerServiceTestSuite) SetupTest() {
	suite.mockPlayerRepo = new(MockPlayerRepository)
	suite.service = services.NewPlayerService(suite.mockPlayerRepo)
}

// --- Test Cases ---

func (suite *PlayerServiceTestSuite) TestSavePlayer_Create() {
	ctx := context.Background()
	req := dto.SavePlayerRequest{Name: "First National", IsBank: true}

	suite.mockPlayerRepo.On("FindPlayerByName", ctx, "First National").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockPlayerRepo.On("SavePlayer", ctx, mock.AnythingOfType("domain.Player")).Return(nil).Once()

	player, err := suite.service.SavePlayer(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(player)
	suite.Equal("First National", player.Name)
	suite.True(player.IsBank)
	suite.mockPlayerRepo.AssertExpectations(suite.T())
}

func (suite *PlayerServiceTestSuite) TestSavePlayer_UpdatePreservesCreatedAt() {
	ctx := context.Background()
	req := dto.SavePlayerRequest{Name: "Corner Grocer", IsBank: false}
	created := time.Date(2024, 5, 2, 9, 30, 0, 0, time.UTC)
	prior := domain.Player{Name: "Corner Grocer", AuditFields: domain.AuditFields{CreatedAt: created}}

	suite.mockPlayerRepo.On("FindPlayerByName", ctx, "Corner Grocer").Return(&prior, nil).Once()
	suite.mockPlayerRepo.On("SavePlayer", ctx, mock.AnythingOfType("domain.Player")).Return(nil).Once()

	player, err := suite.service.SavePlayer(ctx, req)

	suite.Require().NoError(err)
	suite.Equal(created, player.CreatedAt)
	suite.mockPlayerRepo.AssertExpectations(suite.T())
}

func (suite *PlayerServiceTestSuite) TestDeletePlayer_Referenced() {
	ctx := context.Background()
	suite.mockPlayerRepo.On("DeletePlayer", ctx, "Corner Grocer").Return(apperrors.ErrReferentialConstraint).Once()

	err := suite.service.DeletePlayer(ctx, "Corner Grocer")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrReferentialConstraint)
	suite.mockPlayerRepo.AssertExpectations(suite.T())
}

func (suite *PlayerServiceTestSuite) TestListPlayers_BankFilter() {
	ctx := context.Background()
	isBank := true
	params := dto.ListPlayersParams{IsBank: &isBank}
	players := []domain.Player{{Name: "First National", IsBank: true}}

	suite.mockPlayerRepo.On("ListPlayers", ctx, params.Filter()).Return(players, nil).Once()

	got, err := suite.service.ListPlayers(ctx, params)

	suite.Require().NoError(err)
	suite.Len(got, 1)
	suite.mockPlayerRepo.AssertExpectations(suite.T())
}

func (suite *PlayerServiceTestSuite) TestGetPlayerByName_NotFound() {
	ctx := context.Background()
	suite.mockPlayerRepo.On("FindPlayerByName", ctx, "Nobody").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.GetPlayerByName(ctx, "Nobody")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

// --- Run Test Suite ---
func TestPlayerService(t *testing.T) {
	suite.Run(t, new(PlayerServiceTestSuite))
}
