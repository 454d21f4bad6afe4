package services_test

import (
	"context"
	"time"

	portsrepo "github.com/contactsapp/contacts-backend/internal/core/ports/repositories"
	"github.com/contactsapp/contacts-backend/internal/models"
	"github.com/stretchr/testify/mock"
)

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
	SaveUserFn           func(ctx context.Context, user models.User) error
	FindUserByIDFn       func(ctx context.Context, userID string) (*models.User, error)
	FindUserByUsernameFn func(ctx context.Context, username string) (*models.User, error)
	CountUsersFn         func(ctx context.Context) (int64, error)
	FindUsersExcludingFn func(ctx context.Context, userID string) ([]models.User, error)
	UpdateCredentialsFn  func(ctx context.Context, userID, passwordHash, salt string) error
	SetContactIDFn       func(ctx context.Context, userID string, contactID *string) error
	ClearContactLinkFn   func(ctx context.Context, contactID string) error
	DeleteUserFn         func(ctx context.Context, userID string) error
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user models.User) error {
	if m.SaveUserFn != nil {
		return m.SaveUserFn(ctx, user)
	}
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*models.User, error) {
	if m.FindUserByIDFn != nil {
		return m.FindUserByIDFn(ctx, userID)
	}
	args := m.Called(ctx, userID)
	var user *models.User
	if args.Get(0) != nil {
		user = args.Get(0).(*models.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*models.User, error) {
	if m.FindUserByUsernameFn != nil {
		return m.FindUserByUsernameFn(ctx, username)
	}
	args := m.Called(ctx, username)
	var user *models.User
	if args.Get(0) != nil {
		user = args.Get(0).(*models.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) CountUsers(ctx context.Context) (int64, error) {
	if m.CountUsersFn != nil {
		return m.CountUsersFn(ctx)
	}
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) FindUsersExcluding(ctx context.Context, userID string) ([]models.User, error) {
	if m.FindUsersExcludingFn != nil {
		return m.FindUsersExcludingFn(ctx, userID)
	}
	args := m.Called(ctx, userID)
	var users []models.User
	if args.Get(0) != nil {
		users = args.Get(0).([]models.User)
	}
	return users, args.Error(1)
}

func (m *MockUserRepository) UpdateCredentials(ctx context.Context, userID, passwordHash, salt string) error {
	if m.UpdateCredentialsFn != nil {
		return m.UpdateCredentialsFn(ctx, userID, passwordHash, salt)
	}
	args := m.Called(ctx, userID, passwordHash, salt)
	return args.Error(0)
}

func (m *MockUserRepository) SetContactID(ctx context.Context, userID string, contactID *string) error {
	if m.SetContactIDFn != nil {
		return m.SetContactIDFn(ctx, userID, contactID)
	}
	args := m.Called(ctx, userID, contactID)
	return args.Error(0)
}

func (m *MockUserRepository) ClearContactLink(ctx context.Context, contactID string) error {
	if m.ClearContactLinkFn != nil {
		return m.ClearContactLinkFn(ctx, contactID)
	}
	args := m.Called(ctx, contactID)
	return args.Error(0)
}

func (m *MockUserRepository) DeleteUser(ctx context.Context, userID string) error {
	if m.DeleteUserFn != nil {
		return m.DeleteUserFn(ctx, userID)
	}
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// --- Mock ContactRepository ---
type MockContactRepository struct {
	mock.Mock
	SaveContactFn        func(ctx context.Context, contact models.Contact) error
	FindContactByIDFn    func(ctx context.Context, contactID string) (*models.Contact, error)
	FindContactByEmailFn func(ctx context.Context, email string) (*models.Contact, error)
	FindContactByKeyFn   func(ctx context.Context, key string) (*models.Contact, error)
	ListContactsFn       func(ctx context.Context) ([]models.Contact, error)
	UpdateContactFn      func(ctx context.Context, contact models.Contact) error
	DeleteContactFn      func(ctx context.Context, contactID string) error
}

func (m *MockContactRepository) SaveContact(ctx context.Context, contact models.Contact) error {
	if m.SaveContactFn != nil {
		return m.SaveContactFn(ctx, contact)
	}
	args := m.Called(ctx, contact)
	return args.Error(0)
}

func (m *MockContactRepository) FindContactByID(ctx context.Context, contactID string) (*models.Contact, error) {
	if m.FindContactByIDFn != nil {
		return m.FindContactByIDFn(ctx, contactID)
	}
	args := m.Called(ctx, contactID)
	var contact *models.Contact
	if args.Get(0) != nil {
		contact = args.Get(0).(*models.Contact)
	}
	return contact, args.Error(1)
}

func (m *MockContactRepository) FindContactByEmail(ctx context.Context, email string) (*models.Contact, error) {
	if m.FindContactByEmailFn != nil {
		return m.FindContactByEmailFn(ctx, email)
	}
	args := m.Called(ctx, email)
	var contact *models.Contact
	if args.Get(0) != nil {
		contact = args.Get(0).(*models.Contact)
	}
	return contact, args.Error(1)
}

func (m *MockContactRepository) FindContactByKey(ctx context.Context, key string) (*models.Contact, error) {
	if m.FindContactByKeyFn != nil {
		return m.FindContactByKeyFn(ctx, key)
	}
	args := m.Called(ctx, key)
	var contact *models.Contact
	if args.Get(0) != nil {
		contact = args.Get(0).(*models.Contact)
	}
	return contact, args.Error(1)
}

func (m *MockContactRepository) ListContacts(ctx context.Context) ([]models.Contact, error) {
	if m.ListContactsFn != nil {
		return m.ListContactsFn(ctx)
	}
	args := m.Called(ctx)
	var contacts []models.Contact
	if args.Get(0) != nil {
		contacts = args.Get(0).([]models.Contact)
	}
	return contacts, args.Error(1)
}

func (m *MockContactRepository) UpdateContact(ctx context.Context, contact models.Contact) error {
	if m.UpdateContactFn != nil {
		return m.UpdateContactFn(ctx, contact)
	}
	args := m.Called(ctx, contact)
	return args.Error(0)
}

func (m *MockContactRepository) DeleteContact(ctx context.Context, contactID string) error {
	if m.DeleteContactFn != nil {
		return m.DeleteContactFn(ctx, contactID)
	}
	args := m.Called(ctx, contactID)
	return args.Error(0)
}

// --- Mock FavoriteRepository ---
type MockFavoriteRepository struct {
	mock.Mock
	SaveFavoriteFn             func(ctx context.Context, favorite models.Favorite) error
	ListFavoriteContactsFn     func(ctx context.Context, userID string) ([]models.Contact, error)
	FindFavoriteFn             func(ctx context.Context, userID, contactID string) (*models.Favorite, error)
	DeleteFavoriteFn           func(ctx context.Context, userID, contactID string) error
	DeleteFavoritesByContactFn func(ctx context.Context, contactID string) error
}

func (m *MockFavoriteRepository) SaveFavorite(ctx context.Context, favorite models.Favorite) error {
	if m.SaveFavoriteFn != nil {
		return m.SaveFavoriteFn(ctx, favorite)
	}
	args := m.Called(ctx, favorite)
	return args.Error(0)
}

func (m *MockFavoriteRepository) ListFavoriteContacts(ctx context.Context, userID string) ([]models.Contact, error) {
	if m.ListFavoriteContactsFn != nil {
		return m.ListFavoriteContactsFn(ctx, userID)
	}
	args := m.Called(ctx, userID)
	var contacts []models.Contact
	if args.Get(0) != nil {
		contacts = args.Get(0).([]models.Contact)
	}
	return contacts, args.Error(1)
}

func (m *MockFavoriteRepository) FindFavorite(ctx context.Context, userID, contactID string) (*models.Favorite, error) {
	if m.FindFavoriteFn != nil {
		return m.FindFavoriteFn(ctx, userID, contactID)
	}
	args := m.Called(ctx, userID, contactID)
	var favorite *models.Favorite
	if args.Get(0) != nil {
		favorite = args.Get(0).(*models.Favorite)
	}
	return favorite, args.Error(1)
}

func (m *MockFavoriteRepository) DeleteFavorite(ctx context.Context, userID, contactID string) error {
	if m.DeleteFavoriteFn != nil {
		return m.DeleteFavoriteFn(ctx, userID, contactID)
	}
	args := m.Called(ctx, userID, contactID)
	return args.Error(0)
}

func (m *MockFavoriteRepository) DeleteFavoritesByContact(ctx context.Context, contactID string) error {
	if m.DeleteFavoritesByContactFn != nil {
		return m.DeleteFavoritesByContactFn(ctx, contactID)
	}
	args := m.Called(ctx, contactID)
	return args.Error(0)
}

// --- Mock GroupRepository ---
type MockGroupRepository struct {
	mock.Mock
	SaveGroupFn                  func(ctx context.Context, group models.Group) error
	FindGroupByIDFn              func(ctx context.Context, groupID string) (*models.Group, error)
	ListGroupsFn                 func(ctx context.Context) ([]models.Group, error)
	UpdateGroupFn                func(ctx context.Context, group models.Group) error
	DeleteGroupFn                func(ctx context.Context, groupID string) error
	AddMemberFn                  func(ctx context.Context, member models.GroupMember) error
	FindMemberFn                 func(ctx context.Context, groupID, contactID string) (*models.GroupMember, error)
	ListMemberContactsFn         func(ctx context.Context, groupID string) ([]models.Contact, error)
	RemoveMemberFn               func(ctx context.Context, groupID, contactID string) error
	RemoveMembersByGroupFn       func(ctx context.Context, groupID string) error
	RemoveMembershipsByContactFn func(ctx context.Context, contactID string) error
}

func (m *MockGroupRepository) SaveGroup(ctx context.Context, group models.Group) error {
	if m.SaveGroupFn != nil {
		return m.SaveGroupFn(ctx, group)
	}
	args := m.Called(ctx, group)
	return args.Error(0)
}

func (m *MockGroupRepository) FindGroupByID(ctx context.Context, groupID string) (*models.Group, error) {
	if m.FindGroupByIDFn != nil {
		return m.FindGroupByIDFn(ctx, groupID)
	}
	args := m.Called(ctx, groupID)
	var group *models.Group
	if args.Get(0) != nil {
		group = args.Get(0).(*models.Group)
	}
	return group, args.Error(1)
}

func (m *MockGroupRepository) ListGroups(ctx context.Context) ([]models.Group, error) {
	if m.ListGroupsFn != nil {
		return m.ListGroupsFn(ctx)
	}
	args := m.Called(ctx)
	var groups []models.Group
	if args.Get(0) != nil {
		groups = args.Get(0).([]models.Group)
	}
	return groups, args.Error(1)
}

func (m *MockGroupRepository) UpdateGroup(ctx context.Context, group models.Group) error {
	if m.UpdateGroupFn != nil {
		return m.UpdateGroupFn(ctx, group)
	}
	args := m.Called(ctx, group)
	return args.Error(0)
}

func (m *MockGroupRepository) DeleteGroup(ctx context.Context, groupID string) error {
	if m.DeleteGroupFn != nil {
		return m.DeleteGroupFn(ctx, groupID)
	}
	args := m.Called(ctx, groupID)
	return args.Error(0)
}

func (m *MockGroupRepository) AddMember(ctx context.Context, member models.GroupMember) error {
	if m.AddMemberFn != nil {
		return m.AddMemberFn(ctx, member)
	}
	args := m.Called(ctx, member)
	return args.Error(0)
}

func (m *MockGroupRepository) FindMember(ctx context.Context, groupID, contactID string) (*models.GroupMember, error) {
	if m.FindMemberFn != nil {
		return m.FindMemberFn(ctx, groupID, contactID)
	}
	args := m.Called(ctx, groupID, contactID)
	var member *models.GroupMember
	if args.Get(0) != nil {
		member = args.Get(0).(*models.GroupMember)
	}
	return member, args.Error(1)
}

func (m *MockGroupRepository) ListMemberContacts(ctx context.Context, groupID string) ([]models.Contact, error) {
	if m.ListMemberContactsFn != nil {
		return m.ListMemberContactsFn(ctx, groupID)
	}
	args := m.Called(ctx, groupID)
	var contacts []models.Contact
	if args.Get(0) != nil {
		contacts = args.Get(0).([]models.Contact)
	}
	return contacts, args.Error(1)
}

func (m *MockGroupRepository) RemoveMember(ctx context.Context, groupID, contactID string) error {
	if m.RemoveMemberFn != nil {
		return m.RemoveMemberFn(ctx, groupID, contactID)
	}
	args := m.Called(ctx, groupID, contactID)
	return args.Error(0)
}

func (m *MockGroupRepository) RemoveMembersByGroup(ctx context.Context, groupID string) error {
	if m.RemoveMembersByGroupFn != nil {
		return m.RemoveMembersByGroupFn(ctx, groupID)
	}
	args := m.Called(ctx, groupID)
	return args.Error(0)
}

func (m *MockGroupRepository) RemoveMembershipsByContact(ctx context.Context, contactID string) error {
	if m.RemoveMembershipsByContactFn != nil {
		return m.RemoveMembershipsByContactFn(ctx, contactID)
	}
	args := m.Called(ctx, contactID)
	return args.Error(0)
}

// --- Mock RefreshTokenRepository ---
type MockRefreshTokenRepository struct {
	mock.Mock
	SaveRefreshTokenFn func(ctx context.Context, token models.RefreshToken) error
	FindByTokenFn      func(ctx context.Context, tokenValue string) (*models.RefreshToken, error)
	RotateTokenFn      func(ctx context.Context, oldValue, newValue string, newExpiry time.Time) (bool, error)
	DeleteByTokenFn    func(ctx context.Context, tokenValue string) error
	DeleteByUserIDFn   func(ctx context.Context, userID string) error
}

func (m *MockRefreshTokenRepository) SaveRefreshToken(ctx context.Context, token models.RefreshToken) error {
	if m.SaveRefreshTokenFn != nil {
		return m.SaveRefreshTokenFn(ctx, token)
	}
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockRefreshTokenRepository) FindByToken(ctx context.Context, tokenValue string) (*models.RefreshToken, error) {
	if m.FindByTokenFn != nil {
		return m.FindByTokenFn(ctx, tokenValue)
	}
	args := m.Called(ctx, tokenValue)
	var token *models.RefreshToken
	if args.Get(0) != nil {
		token = args.Get(0).(*models.RefreshToken)
	}
	return token, args.Error(1)
}

func (m *MockRefreshTokenRepository) RotateToken(ctx context.Context, oldValue, newValue string, newExpiry time.Time) (bool, error) {
	if m.RotateTokenFn != nil {
		return m.RotateTokenFn(ctx, oldValue, newValue, newExpiry)
	}
	args := m.Called(ctx, oldValue, newValue, newExpiry)
	return args.Bool(0), args.Error(1)
}

func (m *MockRefreshTokenRepository) DeleteByToken(ctx context.Context, tokenValue string) error {
	if m.DeleteByTokenFn != nil {
		return m.DeleteByTokenFn(ctx, tokenValue)
	}
	args := m.Called(ctx, tokenValue)
	return args.Error(0)
}

func (m *MockRefreshTokenRepository) DeleteByUserID(ctx context.Context, userID string) error {
	if m.DeleteByUserIDFn != nil {
		return m.DeleteByUserIDFn(ctx, userID)
	}
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// --- Mock bundle and transaction manager ---

// mockRepoSet bundles all repository mocks with a pass-through TxManager so
// services run their transactional closures against the same mocks.
type mockRepoSet struct {
	User         *MockUserRepository
	Contact      *MockContactRepository
	Favorite     *MockFavoriteRepository
	Group        *MockGroupRepository
	RefreshToken *MockRefreshTokenRepository
}

func newMockRepoSet() *mockRepoSet {
	return &mockRepoSet{
		User:         new(MockUserRepository),
		Contact:      new(MockContactRepository),
		Favorite:     new(MockFavoriteRepository),
		Group:        new(MockGroupRepository),
		RefreshToken: new(MockRefreshTokenRepository),
	}
}

func (m *mockRepoSet) Repositories() portsrepo.Repositories {
	return portsrepo.Repositories{
		User:         m.User,
		Contact:      m.Contact,
		Favorite:     m.Favorite,
		Group:        m.Group,
		RefreshToken: m.RefreshToken,
	}
}

func (m *mockRepoSet) WithinTx(ctx context.Context, fn func(repos portsrepo.Repositories) error) error {
	return fn(m.Repositories())
}
