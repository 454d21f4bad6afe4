package services_test

import (
	"context"
	"regexp"
	"testing"

	"github.com/contactsapp/contacts-backend/internal/apperrors"
	portssvc "github.com/contactsapp/contacts-backend/internal/core/ports/services"
	"github.com/contactsapp/contacts-backend/internal/core/services"
	"github.com/contactsapp/contacts-backend/internal/models"
	"github.com/contactsapp/contacts-backend/internal/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type UserServiceTestSuite struct {
	suite.Suite
	mocks   *mockRepoSet
	service portssvc.UserSvcFacade
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mocks = newMockRepoSet()
	suite.service = services.NewUserService(suite.mocks.Repositories(), suite.mocks)
}

// --- ListUsers Tests ---

func (suite *UserServiceTestSuite) TestListUsers_ExpandsLinkedContacts() {
	ctx := context.Background()
	callerID := uuid.NewString()
	contactID := uuid.NewString()
	contact := &models.Contact{ContactID: contactID, Name: "Alice", Email: "alice@corp.test", Extension: "1234"}
	users := []models.User{
		{UserID: uuid.NewString(), Username: "alice@corp.test", Role: models.RoleUser, ContactID: &contactID},
		{UserID: uuid.NewString(), Username: "bob@corp.test", Role: models.RoleAdmin},
	}

	suite.mocks.User.On("FindUsersExcluding", ctx, callerID).Return(users, nil).Once()
	suite.mocks.Contact.On("FindContactByID", ctx, contactID).Return(contact, nil).Once()

	responses, err := suite.service.ListUsers(ctx, callerID)

	suite.Require().NoError(err)
	suite.Require().Len(responses, 2)
	suite.Equal(contact, responses[0].Contact)
	suite.Nil(responses[1].Contact)
	suite.Equal(models.RoleAdmin, responses[1].Role)
	suite.mocks.User.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestListUsers_RepoError() {
	ctx := context.Background()
	callerID := uuid.NewString()
	expectedErr := assert.AnError

	suite.mocks.User.On("FindUsersExcluding", ctx, callerID).Return(nil, expectedErr).Once()

	responses, err := suite.service.ListUsers(ctx, callerID)

	suite.Require().Error(err)
	suite.Nil(responses)
	suite.ErrorIs(err, expectedErr)
}

// --- ResetPassword Tests ---

func (suite *UserServiceTestSuite) TestResetPassword_Success() {
	ctx := context.Background()
	user := testUser("alice@corp.test", "old-password")

	suite.mocks.User.On("FindUserByID", ctx, user.UserID).Return(user, nil).Once()

	var storedHash, storedSalt string
	suite.mocks.User.UpdateCredentialsFn = func(ctx context.Context, userID, passwordHash, salt string) error {
		suite.Equal(user.UserID, userID)
		storedHash = passwordHash
		storedSalt = salt
		return nil
	}

	password, err := suite.service.ResetPassword(ctx, user.UserID)

	suite.Require().NoError(err)
	suite.Regexp(regexp.MustCompile(`^[0-9A-F]{10}$`), password)
	suite.NotContains(password, "I")
	suite.NotContains(password, "O")

	// The stored hash must verify against the returned plaintext, and the old
	// credential must no longer match.
	ok, err := utils.VerifyPassword(password, storedSalt, storedHash)
	suite.Require().NoError(err)
	suite.True(ok)
	suite.NotEqual(user.Salt, storedSalt)
}

func (suite *UserServiceTestSuite) TestResetPassword_UserNotFound() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mocks.User.On("FindUserByID", ctx, userID).Return(nil, apperrors.ErrNotFound).Once()

	password, err := suite.service.ResetPassword(ctx, userID)

	suite.Require().Error(err)
	suite.Empty(password)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mocks.User.AssertNotCalled(suite.T(), "UpdateCredentials", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// --- DeleteUser Tests ---

func (suite *UserServiceTestSuite) TestDeleteUser_CascadesThroughContact() {
	ctx := context.Background()
	user := testUser("alice@corp.test", "password123")
	contactID := *user.ContactID

	suite.mocks.User.On("FindUserByID", ctx, user.UserID).Return(user, nil).Once()

	// Dependent rows must be gone before their referents.
	var order []string
	suite.mocks.Group.RemoveMembershipsByContactFn = func(ctx context.Context, id string) error {
		suite.Equal(contactID, id)
		order = append(order, "memberships")
		return nil
	}
	suite.mocks.Favorite.DeleteFavoritesByContactFn = func(ctx context.Context, id string) error {
		order = append(order, "favorites")
		return nil
	}
	suite.mocks.User.SetContactIDFn = func(ctx context.Context, userID string, id *string) error {
		suite.Nil(id)
		order = append(order, "detach")
		return nil
	}
	suite.mocks.Contact.DeleteContactFn = func(ctx context.Context, id string) error {
		order = append(order, "contact")
		return nil
	}
	suite.mocks.RefreshToken.DeleteByUserIDFn = func(ctx context.Context, userID string) error {
		order = append(order, "tokens")
		return nil
	}
	suite.mocks.User.DeleteUserFn = func(ctx context.Context, userID string) error {
		suite.Equal(user.UserID, userID)
		order = append(order, "user")
		return nil
	}

	err := suite.service.DeleteUser(ctx, user.UserID)

	suite.Require().NoError(err)
	suite.Equal([]string{"memberships", "favorites", "detach", "contact", "tokens", "user"}, order)
}

func (suite *UserServiceTestSuite) TestDeleteUser_NoLinkedContact() {
	ctx := context.Background()
	user := testUser("bob@corp.test", "password123")
	user.ContactID = nil

	suite.mocks.User.On("FindUserByID", ctx, user.UserID).Return(user, nil).Once()
	suite.mocks.RefreshToken.On("DeleteByUserID", ctx, user.UserID).Return(nil).Once()
	suite.mocks.User.On("DeleteUser", ctx, user.UserID).Return(nil).Once()

	err := suite.service.DeleteUser(ctx, user.UserID)

	suite.Require().NoError(err)
	suite.mocks.Contact.AssertNotCalled(suite.T(), "DeleteContact", mock.Anything, mock.Anything)
	suite.mocks.User.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestDeleteUser_NotFound() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mocks.User.On("FindUserByID", ctx, userID).Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.DeleteUser(ctx, userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mocks.User.AssertNotCalled(suite.T(), "DeleteUser", mock.Anything, mock.Anything)
}

func TestUserService(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
