package mapper

import (
	"github.com/wekeepgrowing/playvault-backend/internal/domain/entity"
	"github.com/wekeepgrowing/playvault-backend/internal/infrastructure/db/model"
)

// UserToModel 사용자 엔티티를 DB 모델로 변환
func UserToModel(user *entity.User) *model.UserModel {
	if user == nil {
		return nil
	}

	return &model.UserModel{
		ID:            user.ID,
		Username:      user.Username,
		Password:      user.PasswordHash,
		Email:         user.Email,
		DisplayName:   user.DisplayName,
		Role:          string(user.Role),
		LastIPAddress: user.LastIPAddress,
		CreatedAt:     user.CreatedAt,
		UpdatedAt:     user.UpdatedAt,
	}
}

// UserFromModel DB 모델을 사용자 엔티티로 변환
func UserFromModel(m *model.UserModel) *entity.User {
	if m == nil {
		return nil
	}

	return &entity.User{
		ID:            m.ID,
		Username:      m.Username,
		PasswordHash:  m.Password,
		Email:         m.Email,
		DisplayName:   m.DisplayName,
		Role:          entity.Role(m.Role),
		LastIPAddress: m.LastIPAddress,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// LoginAttemptToModel 로그인 시도 엔티티를 DB 모델로 변환
func LoginAttemptToModel(a *entity.LoginAttempt) *model.LoginAttemptModel {
	return &model.LoginAttemptModel{
		ID:            a.ID,
		UserID:        a.UserID,
		Username:      a.Username,
		IPAddress:     a.IPAddress,
		UserAgent:     a.UserAgent,
		Success:       a.Success,
		Location:      a.Location,
		FailureReason: a.FailureReason,
		CreatedAt:     a.CreatedAt,
	}
}

// LoginAttemptsFromModels DB 모델 슬라이스를 엔티티 슬라이스로 변환
func LoginAttemptsFromModels(models []model.LoginAttemptModel) []*entity.LoginAttempt {
	attempts := make([]*entity.LoginAttempt, len(models))
	for i := range models {
		m := &models[i]
		attempts[i] = &entity.LoginAttempt{
			ID:            m.ID,
			UserID:        m.UserID,
			Username:      m.Username,
			IPAddress:     m.IPAddress,
			UserAgent:     m.UserAgent,
			Success:       m.Success,
			Location:      m.Location,
			FailureReason: m.FailureReason,
			CreatedAt:     m.CreatedAt,
		}
	}
	return attempts
}
