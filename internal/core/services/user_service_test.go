package services_test

import (
	"context"
	"testing"

	"github.com/changifyhq/changify-backend/internal/apperrors"
	"github.com/changifyhq/changify-backend/internal/core/domain"
	"github.com/changifyhq/changify-backend/internal/core/services"
	"github.com/changifyhq/changify-backend/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) ListOperators(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// --- Test Suite ---
type UserServiceTestSuite struct {
	suite.Suite
	mockRepo *MockUserRepository
	service  *services.UserService

	seedAdminID   string
	seedManagerID string
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockUserRepository)
	suite.seedAdminID = uuid.NewString()
	suite.seedManagerID = uuid.NewString()
	suite.service = services.NewUserService(suite.mockRepo,
		[]string{suite.seedAdminID},
		[]string{suite.seedManagerID})
}

func (suite *UserServiceTestSuite) TestResolveRole_SeedAdminSkipsRepo() {
	ctx := context.Background()

	role, err := suite.service.ResolveRole(ctx, suite.seedAdminID)

	suite.Require().NoError(err)
	suite.Equal(domain.RoleAdmin, role)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindUserByID", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestResolveRole_SeedOverridesStoredRole() {
	// A demoted record in the database must not win over the configured seed.
	ctx := context.Background()

	role, err := suite.service.ResolveRole(ctx, suite.seedManagerID)

	suite.Require().NoError(err)
	suite.Equal(domain.RoleManager, role)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindUserByID", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestResolveRole_StoredRoleUsed() {
	ctx := context.Background()
	userID := uuid.NewString()
	suite.mockRepo.On("FindUserByID", ctx, userID).
		Return(&domain.User{UserID: userID, Role: domain.RoleManager}, nil).Once()

	role, err := suite.service.ResolveRole(ctx, userID)

	suite.Require().NoError(err)
	suite.Equal(domain.RoleManager, role)
}

func (suite *UserServiceTestSuite) TestResolveRole_UnknownActorIsPlainUser() {
	ctx := context.Background()
	userID := uuid.NewString()
	suite.mockRepo.On("FindUserByID", ctx, userID).Return(nil, apperrors.ErrNotFound).Once()

	role, err := suite.service.ResolveRole(ctx, userID)

	suite.Require().NoError(err)
	suite.Equal(domain.RoleUser, role)
}

func (suite *UserServiceTestSuite) TestResolveRole_RepoError() {
	ctx := context.Background()
	userID := uuid.NewString()
	suite.mockRepo.On("FindUserByID", ctx, userID).Return(nil, assert.AnError).Once()

	role, err := suite.service.ResolveRole(ctx, userID)

	suite.Require().Error(err)
	suite.Empty(role)
	suite.ErrorIs(err, assert.AnError)
}

func (suite *UserServiceTestSuite) TestEnsureUser_AssignsResolvedRole() {
	ctx := context.Background()
	req := dto.EnsureUserRequest{
		UserID:    suite.seedAdminID,
		Username:  "lena",
		FirstName: "Lena",
	}
	suite.mockRepo.On("SaveUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.UserID == suite.seedAdminID &&
			u.Role == domain.RoleAdmin &&
			u.Username == "lena" &&
			u.CreatedBy == suite.seedAdminID &&
			!u.CreatedAt.IsZero()
	})).Return(nil).Once()

	user, err := suite.service.EnsureUser(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(user)
	suite.Equal(domain.RoleAdmin, user.Role)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestEnsureUser_NewActorDefaultsToUser() {
	ctx := context.Background()
	userID := uuid.NewString()
	suite.mockRepo.On("FindUserByID", ctx, userID).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.UserID == userID && u.Role == domain.RoleUser
	})).Return(nil).Once()

	user, err := suite.service.EnsureUser(ctx, dto.EnsureUserRequest{UserID: userID, Username: "newcomer"})

	suite.Require().NoError(err)
	suite.Equal(domain.RoleUser, user.Role)
}

func (suite *UserServiceTestSuite) TestEnsureUser_SaveFailure() {
	ctx := context.Background()
	suite.mockRepo.On("SaveUser", ctx, mock.Anything).Return(assert.AnError).Once()

	user, err := suite.service.EnsureUser(ctx, dto.EnsureUserRequest{UserID: suite.seedAdminID})

	suite.Require().Error(err)
	suite.Nil(user)
}

func (suite *UserServiceTestSuite) TestListOperators_EmptyIsNotNil() {
	ctx := context.Background()
	suite.mockRepo.On("ListOperators", ctx).Return([]domain.User{}, nil).Once()

	operators, err := suite.service.ListOperators(ctx)

	suite.Require().NoError(err)
	suite.NotNil(operators)
	suite.Empty(operators)
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
