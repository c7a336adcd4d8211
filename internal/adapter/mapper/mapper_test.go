package mapper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/wekeepgrowing/playvault-backend/internal/domain/entity"
	"github.com/wekeepgrowing/playvault-backend/internal/infrastructure/db/model"
)

func TestUserMapperKeepsRoleAndHash(t *testing.T) {
	email := "jane@example.com"
	user := &entity.User{
		ID:           "abc123def456",
		Username:     "jane",
		PasswordHash: "$2a$10$hash",
		Email:        &email,
		Role:         entity.RoleAdmin,
	}

	m := UserToModel(user)
	assert.Equal(t, "admin", m.Role)
	assert.Equal(t, "$2a$10$hash", m.Password)

	back := UserFromModel(m)
	assert.Equal(t, user, back)
	assert.Nil(t, UserFromModel(nil))
}

func TestKycMapperPreservesNullableFields(t *testing.T) {
	verifiedAt := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	verifierID := "sb-1"
	rec := &entity.KycRecord{
		ID:             "5f0c7f1e-8a51-4ed4-9f44-0a0d1d3b9a11",
		UserID:         "abc123def456",
		FullName:       "Jane Doe",
		DateOfBirth:    time.Date(1990, 1, 2, 0, 0, 0, 0, time.UTC),
		DocumentType:   entity.DocumentPassport,
		DocumentNumber: "X1234",
		Status:         entity.KycStatusVerified,
		VerifierKycID:  &verifierID,
		VerifiedAt:     &verifiedAt,
	}

	back := KycFromModel(KycToModel(rec))
	assert.Equal(t, rec, back)
	assert.Nil(t, back.RejectionReason)
}

func TestKycEventsFromModels(t *testing.T) {
	reason := "already verified"
	event := &entity.KycEvent{
		KycID:      "k1",
		Source:     entity.KycEventSourceWebhook,
		FromStatus: entity.KycStatusVerified,
		ToStatus:   entity.KycStatusPending,
		Reason:     &reason,
		Details:    map[string]interface{}{"kyc_id": "sb-1"},
	}

	m := KycEventToModel(event)
	events := KycEventsFromModels(append([]model.KycEventModel{}, *m))

	assert.Len(t, events, 1)
	assert.Equal(t, event.FromStatus, events[0].FromStatus)
	assert.Equal(t, "sb-1", events[0].Details["kyc_id"])
	assert.False(t, events[0].Accepted)
}
