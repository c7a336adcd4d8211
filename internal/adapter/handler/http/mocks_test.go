package http

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/wekeepgrowing/playvault-backend/internal/domain/entity"
	"github.com/wekeepgrowing/playvault-backend/internal/usecase/dto"
)

type MockAuthUseCase struct {
	mock.Mock
}

func (m *MockAuthUseCase) Register(ctx context.Context, params dto.RegisterParams) (*entity.User, *entity.Session, error) {
	args := m.Called(ctx, params)
	u, _ := args.Get(0).(*entity.User)
	s, _ := args.Get(1).(*entity.Session)
	return u, s, args.Error(2)
}

func (m *MockAuthUseCase) Login(ctx context.Context, params dto.LoginParams) (*entity.User, *entity.Session, error) {
	args := m.Called(ctx, params)
	u, _ := args.Get(0).(*entity.User)
	s, _ := args.Get(1).(*entity.Session)
	return u, s, args.Error(2)
}

func (m *MockAuthUseCase) Logout(ctx context.Context, session *entity.Session) error {
	return m.Called(ctx, session).Error(0)
}

func (m *MockAuthUseCase) CurrentUser(ctx context.Context, session *entity.Session) (*entity.User, error) {
	args := m.Called(ctx, session)
	u, _ := args.Get(0).(*entity.User)
	return u, args.Error(1)
}

type MockKycUseCase struct {
	mock.Mock
}

func (m *MockKycUseCase) Submit(ctx context.Context, session *entity.Session, params dto.SubmitKycParams) (*entity.KycRecord, error) {
	args := m.Called(ctx, session, params)
	r, _ := args.Get(0).(*entity.KycRecord)
	return r, args.Error(1)
}

func (m *MockKycUseCase) Status(ctx context.Context, session *entity.Session) (*dto.KycStatusResult, error) {
	args := m.Called(ctx, session)
	r, _ := args.Get(0).(*dto.KycStatusResult)
	return r, args.Error(1)
}

func (m *MockKycUseCase) ApplyVerifierUpdate(ctx context.Context, params dto.VerifierUpdateParams) error {
	return m.Called(ctx, params).Error(0)
}

func (m *MockKycUseCase) AdminGet(ctx context.Context, admin *entity.Session, userID string) (*dto.AdminKycView, error) {
	args := m.Called(ctx, admin, userID)
	v, _ := args.Get(0).(*dto.AdminKycView)
	return v, args.Error(1)
}

func (m *MockKycUseCase) AdminOverride(ctx context.Context, admin *entity.Session, params dto.AdminOverrideParams) (*entity.KycRecord, error) {
	args := m.Called(ctx, admin, params)
	r, _ := args.Get(0).(*entity.KycRecord)
	return r, args.Error(1)
}

func (m *MockKycUseCase) Reconcile(ctx context.Context, admin *entity.Session, userID string) (*dto.KycStatusResult, error) {
	args := m.Called(ctx, admin, userID)
	r, _ := args.Get(0).(*dto.KycStatusResult)
	return r, args.Error(1)
}

type MockAdminUseCase struct {
	mock.Mock
}

func (m *MockAdminUseCase) ChangeRole(ctx context.Context, admin *entity.Session, userID string, role entity.Role) (*entity.User, error) {
	args := m.Called(ctx, admin, userID, role)
	u, _ := args.Get(0).(*entity.User)
	return u, args.Error(1)
}

func (m *MockAdminUseCase) RevokeSessions(ctx context.Context, admin *entity.Session, userID string) (int, error) {
	args := m.Called(ctx, admin, userID)
	return args.Int(0), args.Error(1)
}

func (m *MockAdminUseCase) ListLoginAttempts(ctx context.Context, admin *entity.Session, userID string, limit int) ([]*entity.LoginAttempt, error) {
	args := m.Called(ctx, admin, userID, limit)
	a, _ := args.Get(0).([]*entity.LoginAttempt)
	return a, args.Error(1)
}

func strPtr(s string) *string { return &s }
