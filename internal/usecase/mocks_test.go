package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/wekeepgrowing/playvault-backend/internal/domain/entity"
	"github.com/wekeepgrowing/playvault-backend/internal/domain/repository"
	"github.com/wekeepgrowing/playvault-backend/internal/domain/verifier"
	"github.com/wekeepgrowing/playvault-backend/internal/usecase/dto"
	"github.com/wekeepgrowing/playvault-backend/pkg/messaging"
)

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) UpdateLastIP(ctx context.Context, id, ip string) error {
	return m.Called(ctx, id, ip).Error(0)
}

func (m *MockUserRepository) UpdateRole(ctx context.Context, id string, role entity.Role) error {
	return m.Called(ctx, id, role).Error(0)
}

// MockSessionRepository is a mock implementation of SessionRepository
type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) Save(ctx context.Context, session *entity.Session) error {
	return m.Called(ctx, session).Error(0)
}

func (m *MockSessionRepository) Get(ctx context.Context, id string) (*entity.Session, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Session), args.Error(1)
}

func (m *MockSessionRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockSessionRepository) DeleteByUser(ctx context.Context, userID string) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

// MockLoginAttemptRepository is a mock implementation of LoginAttemptRepository
type MockLoginAttemptRepository struct {
	mock.Mock
}

func (m *MockLoginAttemptRepository) Create(ctx context.Context, attempt *entity.LoginAttempt) error {
	return m.Called(ctx, attempt).Error(0)
}

func (m *MockLoginAttemptRepository) ListByUserID(ctx context.Context, userID string, limit int) ([]*entity.LoginAttempt, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.LoginAttempt), args.Error(1)
}

// MockKycRepository is a mock implementation of KycRepository.
// WithinTransaction runs fn against the mock itself.
type MockKycRepository struct {
	mock.Mock
}

func (m *MockKycRepository) FindByUserID(ctx context.Context, userID string) (*entity.KycRecord, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.KycRecord), args.Error(1)
}

func (m *MockKycRepository) FindByVerifierKycID(ctx context.Context, verifierKycID string) (*entity.KycRecord, error) {
	args := m.Called(ctx, verifierKycID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.KycRecord), args.Error(1)
}

func (m *MockKycRepository) Upsert(ctx context.Context, record *entity.KycRecord) error {
	return m.Called(ctx, record).Error(0)
}

func (m *MockKycRepository) UpdateFromPending(ctx context.Context, record *entity.KycRecord) (bool, error) {
	args := m.Called(ctx, record)
	return args.Bool(0), args.Error(1)
}

func (m *MockKycRepository) Save(ctx context.Context, record *entity.KycRecord) error {
	return m.Called(ctx, record).Error(0)
}

func (m *MockKycRepository) WithinTransaction(ctx context.Context, fn func(tx repository.KycRepository) error) error {
	return fn(m)
}

// MockKycEventRepository is a mock implementation of KycEventRepository
type MockKycEventRepository struct {
	mock.Mock
}

func (m *MockKycEventRepository) Create(ctx context.Context, event *entity.KycEvent) error {
	return m.Called(ctx, event).Error(0)
}

func (m *MockKycEventRepository) ListByKycID(ctx context.Context, kycID string) ([]*entity.KycEvent, error) {
	args := m.Called(ctx, kycID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.KycEvent), args.Error(1)
}

// MockAdminActionLogRepository is a mock implementation of AdminActionLogRepository
type MockAdminActionLogRepository struct {
	mock.Mock
}

func (m *MockAdminActionLogRepository) Create(ctx context.Context, log *entity.AdminActionLog) error {
	return m.Called(ctx, log).Error(0)
}

// MockSessionUseCase is a mock implementation of SessionUseCase
type MockSessionUseCase struct {
	mock.Mock
}

func (m *MockSessionUseCase) CreateSession(ctx context.Context, user *entity.User, client dto.ClientInfo) (*entity.Session, error) {
	args := m.Called(ctx, user, client)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Session), args.Error(1)
}

func (m *MockSessionUseCase) ResolveSession(ctx context.Context, sessionID string) (*entity.Session, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Session), args.Error(1)
}

func (m *MockSessionUseCase) DestroySession(ctx context.Context, sessionID string) error {
	return m.Called(ctx, sessionID).Error(0)
}

func (m *MockSessionUseCase) RevokeUserSessions(ctx context.Context, userID string) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

// MockVerifierClient is a mock implementation of verifier.Client
type MockVerifierClient struct {
	mock.Mock
}

func (m *MockVerifierClient) Authenticate(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockVerifierClient) Initiate(ctx context.Context, req *verifier.InitiateRequest) (*verifier.InitiateResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*verifier.InitiateResponse), args.Error(1)
}

func (m *MockVerifierClient) PollStatus(ctx context.Context, verifierKycID string) (*verifier.StatusResponse, error) {
	args := m.Called(ctx, verifierKycID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*verifier.StatusResponse), args.Error(1)
}

// MockKycNotifier is a mock implementation of KycNotifier
type MockKycNotifier struct {
	mock.Mock
}

func (m *MockKycNotifier) PublishStatusChanged(ctx context.Context, event *dto.KycStatusChangedEvent) error {
	return m.Called(ctx, event).Error(0)
}

// MockPublisher is a mock implementation of messaging.Publisher
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, channel string, message interface{}) error {
	return m.Called(ctx, channel, message).Error(0)
}

// MockSubscriber hands out a prepared message channel
type MockSubscriber struct {
	mock.Mock
}

func (m *MockSubscriber) Subscribe(ctx context.Context, channel string) (<-chan messaging.Message, error) {
	args := m.Called(ctx, channel)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(<-chan messaging.Message), args.Error(1)
}

// MockMailer is a mock implementation of service.Mailer
type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) SendMail(ctx context.Context, to, subject, htmlBody string) error {
	return m.Called(ctx, to, subject, htmlBody).Error(0)
}

// MockKycEmailRenderer is a mock implementation of service.KycEmailRenderer
type MockKycEmailRenderer struct {
	mock.Mock
}

func (m *MockKycEmailRenderer) GenerateKycResultEmail(name string, verified bool, reason string) (string, string, error) {
	args := m.Called(name, verified, reason)
	return args.String(0), args.String(1), args.Error(2)
}

func strPtr(s string) *string { return &s }
