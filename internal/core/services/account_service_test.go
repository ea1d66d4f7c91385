package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lucasll37/myfinanceapp-backend/internal/apperrors"
	"github.com/lucasll37/myfinanceapp-backend/internal/core/domain"
	"github.com/lucasll37/myfinanceapp-backend/internal/core/services"
	"github.com/lucasll37/myfinanceapp-backend/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock AccountRepository ---
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) CreateAccountWithOwner(ctx context.Context, account domain.Account, owner domain.AccountMember) error {
	args := m.Called(ctx, account, owner)
	return args.Error(0)
}

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	var account *domain.Account
	if args.Get(0) != nil {
		account = args.Get(0).(*domain.Account)
	}
	return account, args.Error(1)
}

func (m *MockAccountRepository) ListAccountsByUserID(ctx context.Context, userID string) ([]domain.AccountWithRole, error) {
	args := m.Called(ctx, userID)
	var accounts []domain.AccountWithRole
	if args.Get(0) != nil {
		accounts = args.Get(0).([]domain.AccountWithRole)
	}
	return accounts, args.Error(1)
}

func (m *MockAccountRepository) UpdateAccount(ctx context.Context, accountID string, fields map[string]any) (*domain.Account, error) {
	args := m.Called(ctx, accountID, fields)
	var account *domain.Account
	if args.Get(0) != nil {
		account = args.Get(0).(*domain.Account)
	}
	return account, args.Error(1)
}

func (m *MockAccountRepository) SoftDeleteAccount(ctx context.Context, accountID string, now time.Time) error {
	args := m.Called(ctx, accountID, now)
	return args.Error(0)
}

func (m *MockAccountRepository) FindAcceptedMember(ctx context.Context, accountID, userID string) (*domain.AccountMember, error) {
	args := m.Called(ctx, accountID, userID)
	var member *domain.AccountMember
	if args.Get(0) != nil {
		member = args.Get(0).(*domain.AccountMember)
	}
	return member, args.Error(1)
}

func (m *MockAccountRepository) FindMember(ctx context.Context, accountID, userID string) (*domain.AccountMember, error) {
	args := m.Called(ctx, accountID, userID)
	var member *domain.AccountMember
	if args.Get(0) != nil {
		member = args.Get(0).(*domain.AccountMember)
	}
	return member, args.Error(1)
}

func (m *MockAccountRepository) ListMembers(ctx context.Context, accountID string) ([]domain.AccountMember, error) {
	args := m.Called(ctx, accountID)
	var members []domain.AccountMember
	if args.Get(0) != nil {
		members = args.Get(0).([]domain.AccountMember)
	}
	return members, args.Error(1)
}

func (m *MockAccountRepository) AddMember(ctx context.Context, member domain.AccountMember) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

func (m *MockAccountRepository) UpdateMemberStatus(ctx context.Context, accountID, userID string, status domain.MemberStatus) error {
	args := m.Called(ctx, accountID, userID, status)
	return args.Error(0)
}

func (m *MockAccountRepository) RemoveMember(ctx context.Context, accountID, userID string) error {
	args := m.Called(ctx, accountID, userID)
	return args.Error(0)
}

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByProvider(ctx context.Context, provider domain.AuthProvider, providerUserID string) (*domain.User, error) {
	args := m.Called(ctx, provider, providerUserID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) MarkLastLogin(ctx context.Context, userID string, when time.Time) error {
	args := m.Called(ctx, userID, when)
	return args.Error(0)
}

// --- Mock NotificationSvcFacade ---
type MockNotificationService struct {
	mock.Mock
}

func (m *MockNotificationService) Notify(ctx context.Context, userID, title, message string, kind string) error {
	args := m.Called(ctx, userID, title, message, kind)
	return args.Error(0)
}

func (m *MockNotificationService) ListNotifications(ctx context.Context, userID string) ([]domain.Notification, error) {
	args := m.Called(ctx, userID)
	var notifications []domain.Notification
	if args.Get(0) != nil {
		notifications = args.Get(0).([]domain.Notification)
	}
	return notifications, args.Error(1)
}

func (m *MockNotificationService) MarkRead(ctx context.Context, notificationID, userID string) (*domain.Notification, error) {
	args := m.Called(ctx, notificationID, userID)
	var notification *domain.Notification
	if args.Get(0) != nil {
		notification = args.Get(0).(*domain.Notification)
	}
	return notification, args.Error(1)
}

func (m *MockNotificationService) MarkAllRead(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// --- Test Suite ---
type AccountServiceTestSuite struct {
	suite.Suite
	mockAccountRepo *MockAccountRepository
	mockUserRepo    *MockUserRepository
	mockNotifier    *MockNotificationService
	service         *services.AccountService
	ctx             context.Context
	userID          string
	accountID       string
}

func (s *AccountServiceTestSuite) SetupTest() {
	s.mockAccountRepo = new(MockAccountRepository)
	s.mockUserRepo = new(MockUserRepository)
	s.mockNotifier = new(MockNotificationService)
	s.service = services.NewAccountService(s.mockAccountRepo, s.mockUserRepo, s.mockNotifier)
	s.ctx = context.Background()
	s.userID = uuid.NewString()
	s.accountID = uuid.NewString()
}

func TestAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}

func (s *AccountServiceTestSuite) member(role domain.Role, status domain.MemberStatus) *domain.AccountMember {
	return &domain.AccountMember{
		AccountID: s.accountID,
		UserID:    s.userID,
		Role:      role,
		Status:    status,
	}
}

func (s *AccountServiceTestSuite) TestAuthorize_NonMemberIsNotFound() {
	s.mockAccountRepo.On("FindAcceptedMember", s.ctx, s.accountID, s.userID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := s.service.AuthorizeAccountAction(s.ctx, s.userID, s.accountID, domain.ActionRead)

	// Absence of membership is reported as not found, never forbidden.
	assert.ErrorIs(s.T(), err, apperrors.ErrNotFound)
	s.mockAccountRepo.AssertExpectations(s.T())
}

func (s *AccountServiceTestSuite) TestAuthorize_ViewerCannotWrite() {
	s.mockAccountRepo.On("FindAcceptedMember", s.ctx, s.accountID, s.userID).Return(s.member(domain.RoleViewer, domain.MemberAccepted), nil).Once()

	_, err := s.service.AuthorizeAccountAction(s.ctx, s.userID, s.accountID, domain.ActionWrite)

	assert.ErrorIs(s.T(), err, apperrors.ErrForbidden)
}

func (s *AccountServiceTestSuite) TestAuthorize_EditorCannotManage() {
	s.mockAccountRepo.On("FindAcceptedMember", s.ctx, s.accountID, s.userID).Return(s.member(domain.RoleEditor, domain.MemberAccepted), nil).Once()

	_, err := s.service.AuthorizeAccountAction(s.ctx, s.userID, s.accountID, domain.ActionManage)

	assert.ErrorIs(s.T(), err, apperrors.ErrForbidden)
}

func (s *AccountServiceTestSuite) TestAuthorize_OwnerCanManage() {
	s.mockAccountRepo.On("FindAcceptedMember", s.ctx, s.accountID, s.userID).Return(s.member(domain.RoleOwner, domain.MemberAccepted), nil).Once()

	role, err := s.service.AuthorizeAccountAction(s.ctx, s.userID, s.accountID, domain.ActionManage)

	assert.NoError(s.T(), err)
	assert.Equal(s.T(), domain.RoleOwner, role)
}

func (s *AccountServiceTestSuite) TestUpdateAccount_EditorCanUpdate() {
	s.mockAccountRepo.On("FindAcceptedMember", s.ctx, s.accountID, s.userID).Return(s.member(domain.RoleEditor, domain.MemberAccepted), nil).Once()
	s.mockAccountRepo.On("UpdateAccount", s.ctx, s.accountID, map[string]any{"name": "Renamed"}).
		Return(&domain.Account{AccountID: s.accountID, Name: "Renamed"}, nil).Once()

	name := "Renamed"
	account, role, err := s.service.UpdateAccount(s.ctx, s.accountID, dto.UpdateAccountRequest{Name: &name}, s.userID)

	assert.NoError(s.T(), err)
	assert.Equal(s.T(), "Renamed", account.Name)
	assert.Equal(s.T(), domain.RoleEditor, role)
	s.mockAccountRepo.AssertExpectations(s.T())
}

func (s *AccountServiceTestSuite) TestUpdateAccount_ViewerForbidden() {
	s.mockAccountRepo.On("FindAcceptedMember", s.ctx, s.accountID, s.userID).Return(s.member(domain.RoleViewer, domain.MemberAccepted), nil).Once()

	name := "Renamed"
	_, _, err := s.service.UpdateAccount(s.ctx, s.accountID, dto.UpdateAccountRequest{Name: &name}, s.userID)

	assert.ErrorIs(s.T(), err, apperrors.ErrForbidden)
	s.mockAccountRepo.AssertNotCalled(s.T(), "UpdateAccount", mock.Anything, mock.Anything, mock.Anything)
}

func (s *AccountServiceTestSuite) TestDeleteAccount_EditorForbidden() {
	s.mockAccountRepo.On("FindAcceptedMember", s.ctx, s.accountID, s.userID).Return(s.member(domain.RoleEditor, domain.MemberAccepted), nil).Once()

	err := s.service.DeleteAccount(s.ctx, s.accountID, s.userID)

	assert.ErrorIs(s.T(), err, apperrors.ErrForbidden)
	s.mockAccountRepo.AssertNotCalled(s.T(), "SoftDeleteAccount", mock.Anything, mock.Anything, mock.Anything)
}

func (s *AccountServiceTestSuite) TestCreateAccount_MakesCreatorAcceptedOwner() {
	var capturedOwner domain.AccountMember
	s.mockAccountRepo.On("CreateAccountWithOwner", s.ctx, mock.AnythingOfType("domain.Account"), mock.AnythingOfType("domain.AccountMember")).
		Run(func(args mock.Arguments) {
			capturedOwner = args.Get(2).(domain.AccountMember)
		}).Return(nil).Once()

	account, err := s.service.CreateAccount(s.ctx, dto.CreateAccountRequest{
		Name:        "Household",
		AccountType: "household",
	}, s.userID)

	assert.NoError(s.T(), err)
	assert.NotNil(s.T(), account)
	assert.Equal(s.T(), s.userID, capturedOwner.UserID)
	assert.Equal(s.T(), domain.RoleOwner, capturedOwner.Role)
	assert.Equal(s.T(), domain.MemberAccepted, capturedOwner.Status)
	assert.Equal(s.T(), account.AccountID, capturedOwner.AccountID)
}

func (s *AccountServiceTestSuite) TestCreateAccount_RepoErrorPropagates() {
	s.mockAccountRepo.On("CreateAccountWithOwner", s.ctx, mock.Anything, mock.Anything).Return(assert.AnError).Once()

	account, err := s.service.CreateAccount(s.ctx, dto.CreateAccountRequest{
		Name:        "Household",
		AccountType: "household",
	}, s.userID)

	assert.Error(s.T(), err)
	assert.Nil(s.T(), account)
}

func (s *AccountServiceTestSuite) TestInviteMember_UnknownEmailFailsValidation() {
	s.mockAccountRepo.On("FindAcceptedMember", s.ctx, s.accountID, s.userID).Return(s.member(domain.RoleOwner, domain.MemberAccepted), nil).Once()
	s.mockUserRepo.On("FindUserByEmail", s.ctx, "ghost@example.com").Return(nil, apperrors.ErrNotFound).Once()

	_, err := s.service.InviteMember(s.ctx, s.accountID, dto.InviteMemberRequest{Email: "ghost@example.com", Role: domain.RoleViewer}, s.userID)

	assert.ErrorIs(s.T(), err, apperrors.ErrValidation)
}

func (s *AccountServiceTestSuite) TestInviteMember_NotifiesInvitee() {
	inviteeID := uuid.NewString()
	s.mockAccountRepo.On("FindAcceptedMember", s.ctx, s.accountID, s.userID).Return(s.member(domain.RoleOwner, domain.MemberAccepted), nil).Once()
	s.mockUserRepo.On("FindUserByEmail", s.ctx, "friend@example.com").Return(&domain.User{UserID: inviteeID, Email: "friend@example.com", FullName: "Friend"}, nil).Once()
	s.mockAccountRepo.On("FindMember", s.ctx, s.accountID, inviteeID).Return(nil, apperrors.ErrNotFound).Once()
	s.mockAccountRepo.On("AddMember", s.ctx, mock.AnythingOfType("domain.AccountMember")).Return(nil).Once()
	s.mockAccountRepo.On("FindAccountByID", s.ctx, s.accountID).Return(&domain.Account{AccountID: s.accountID, Name: "Household"}, nil).Once()
	s.mockNotifier.On("Notify", s.ctx, inviteeID, mock.Anything, mock.Anything, "invite").Return(nil).Once()

	member, err := s.service.InviteMember(s.ctx, s.accountID, dto.InviteMemberRequest{Email: "friend@example.com", Role: domain.RoleEditor}, s.userID)

	assert.NoError(s.T(), err)
	assert.Equal(s.T(), domain.MemberPending, member.Status)
	assert.Equal(s.T(), domain.RoleEditor, member.Role)
	s.mockNotifier.AssertExpectations(s.T())
}

func (s *AccountServiceTestSuite) TestInviteMember_ExistingMemberConflicts() {
	inviteeID := uuid.NewString()
	s.mockAccountRepo.On("FindAcceptedMember", s.ctx, s.accountID, s.userID).Return(s.member(domain.RoleOwner, domain.MemberAccepted), nil).Once()
	s.mockUserRepo.On("FindUserByEmail", s.ctx, "friend@example.com").Return(&domain.User{UserID: inviteeID}, nil).Once()
	s.mockAccountRepo.On("FindMember", s.ctx, s.accountID, inviteeID).Return(&domain.AccountMember{AccountID: s.accountID, UserID: inviteeID}, nil).Once()

	_, err := s.service.InviteMember(s.ctx, s.accountID, dto.InviteMemberRequest{Email: "friend@example.com", Role: domain.RoleViewer}, s.userID)

	assert.ErrorIs(s.T(), err, apperrors.ErrDuplicate)
}

func (s *AccountServiceTestSuite) TestRemoveMember_OwnerCannotBeRemoved() {
	ownerID := uuid.NewString()
	s.mockAccountRepo.On("FindAcceptedMember", s.ctx, s.accountID, s.userID).Return(s.member(domain.RoleOwner, domain.MemberAccepted), nil).Once()
	s.mockAccountRepo.On("FindMember", s.ctx, s.accountID, ownerID).Return(&domain.AccountMember{AccountID: s.accountID, UserID: ownerID, Role: domain.RoleOwner}, nil).Once()

	err := s.service.RemoveMember(s.ctx, s.accountID, ownerID, s.userID)

	assert.ErrorIs(s.T(), err, apperrors.ErrValidation)
	s.mockAccountRepo.AssertNotCalled(s.T(), "RemoveMember", mock.Anything, mock.Anything, mock.Anything)
}

func (s *AccountServiceTestSuite) TestAcceptInvite_FlipsPendingToAccepted() {
	s.mockAccountRepo.On("FindMember", s.ctx, s.accountID, s.userID).Return(s.member(domain.RoleViewer, domain.MemberPending), nil).Once()
	s.mockAccountRepo.On("UpdateMemberStatus", s.ctx, s.accountID, s.userID, domain.MemberAccepted).Return(nil).Once()

	member, err := s.service.AcceptInvite(s.ctx, s.accountID, s.userID)

	assert.NoError(s.T(), err)
	assert.Equal(s.T(), domain.MemberAccepted, member.Status)
}

func (s *AccountServiceTestSuite) TestAcceptInvite_AlreadyAcceptedConflicts() {
	s.mockAccountRepo.On("FindMember", s.ctx, s.accountID, s.userID).Return(s.member(domain.RoleViewer, domain.MemberAccepted), nil).Once()

	_, err := s.service.AcceptInvite(s.ctx, s.accountID, s.userID)

	assert.ErrorIs(s.T(), err, apperrors.ErrDuplicate)
}
