package mapper

import (
	"github.com/wekeepgrowing/playvault-backend/internal/domain/entity"
	"github.com/wekeepgrowing/playvault-backend/internal/infrastructure/db/model"
	"gorm.io/datatypes"
)

// KycToModel KYC 엔티티를 DB 모델로 변환
func KycToModel(k *entity.KycRecord) *model.KycRecordModel {
	if k == nil {
		return nil
	}

	return &model.KycRecordModel{
		ID:               k.ID,
		UserID:           k.UserID,
		FullName:         k.FullName,
		DateOfBirth:      k.DateOfBirth,
		DocumentType:     string(k.DocumentType),
		DocumentNumber:   k.DocumentNumber,
		DocumentImageURL: k.DocumentImageURL,
		SelfieImageURL:   k.SelfieImageURL,
		Status:           string(k.Status),
		RejectionReason:  k.RejectionReason,
		VerifierKycID:    k.VerifierKycID,
		VerificationURL:  k.VerificationURL,
		SubmittedAt:      k.SubmittedAt,
		VerifiedAt:       k.VerifiedAt,
		UpdatedAt:        k.UpdatedAt,
	}
}

// KycFromModel DB 모델을 KYC 엔티티로 변환
func KycFromModel(m *model.KycRecordModel) *entity.KycRecord {
	if m == nil {
		return nil
	}

	return &entity.KycRecord{
		ID:               m.ID,
		UserID:           m.UserID,
		FullName:         m.FullName,
		DateOfBirth:      m.DateOfBirth,
		DocumentType:     entity.DocumentType(m.DocumentType),
		DocumentNumber:   m.DocumentNumber,
		DocumentImageURL: m.DocumentImageURL,
		SelfieImageURL:   m.SelfieImageURL,
		Status:           entity.KycStatus(m.Status),
		RejectionReason:  m.RejectionReason,
		VerifierKycID:    m.VerifierKycID,
		VerificationURL:  m.VerificationURL,
		SubmittedAt:      m.SubmittedAt,
		VerifiedAt:       m.VerifiedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

// KycEventToModel KYC 이벤트 엔티티를 DB 모델로 변환
func KycEventToModel(e *entity.KycEvent) *model.KycEventModel {
	return &model.KycEventModel{
		ID:         e.ID,
		KycID:      e.KycID,
		Source:     string(e.Source),
		FromStatus: string(e.FromStatus),
		ToStatus:   string(e.ToStatus),
		Accepted:   e.Accepted,
		Reason:     e.Reason,
		Details:    datatypes.JSONMap(e.Details),
		CreatedAt:  e.CreatedAt,
	}
}

// KycEventsFromModels DB 모델 슬라이스를 엔티티 슬라이스로 변환
func KycEventsFromModels(models []model.KycEventModel) []*entity.KycEvent {
	events := make([]*entity.KycEvent, len(models))
	for i := range models {
		m := &models[i]
		events[i] = &entity.KycEvent{
			ID:         m.ID,
			KycID:      m.KycID,
			Source:     entity.KycEventSource(m.Source),
			FromStatus: entity.KycStatus(m.FromStatus),
			ToStatus:   entity.KycStatus(m.ToStatus),
			Accepted:   m.Accepted,
			Reason:     m.Reason,
			Details:    map[string]interface{}(m.Details),
			CreatedAt:  m.CreatedAt,
		}
	}
	return events
}

// AdminActionLogToModel 관리자 작업 기록을 DB 모델로 변환
func AdminActionLogToModel(l *entity.AdminActionLog) *model.AdminActionLogModel {
	return &model.AdminActionLogModel{
		ID:           l.ID,
		AdminID:      l.AdminID,
		Action:       string(l.Action),
		TargetUserID: l.TargetUserID,
		Detail:       datatypes.JSONMap(l.Detail),
		CreatedAt:    l.CreatedAt,
	}
}
