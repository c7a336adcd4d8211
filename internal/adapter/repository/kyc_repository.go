package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/wekeepgrowing/playvault-backend/internal/adapter/mapper"
	"github.com/wekeepgrowing/playvault-backend/internal/domain/entity"
	"github.com/wekeepgrowing/playvault-backend/internal/domain/repository"
	"github.com/wekeepgrowing/playvault-backend/internal/infrastructure/db/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// 재제출 시 덮어쓰는 컬럼
var kycUpsertColumns = []string{
	"full_name", "date_of_birth", "document_type", "document_number",
	"document_image_url", "selfie_image_url", "status", "rejection_reason",
	"verifier_kyc_id", "verification_url", "submitted_at", "verified_at", "updated_at",
}

type KycRepositoryImpl struct {
	db *gorm.DB
}

// NewKycRepository KYC 저장소 구현체 생성
func NewKycRepository(db *gorm.DB) repository.KycRepository {
	return &KycRepositoryImpl{db: db}
}

// FindByUserID 사용자 ID로 조회
func (r *KycRepositoryImpl) FindByUserID(ctx context.Context, userID string) (*entity.KycRecord, error) {
	return r.findOne(ctx, "user_id = ?", userID)
}

// FindByVerifierKycID 검증기 ID로 조회
func (r *KycRepositoryImpl) FindByVerifierKycID(ctx context.Context, verifierKycID string) (*entity.KycRecord, error) {
	return r.findOne(ctx, "verifier_kyc_id = ?", verifierKycID)
}

func (r *KycRepositoryImpl) findOne(ctx context.Context, query string, arg interface{}) (*entity.KycRecord, error) {
	var m model.KycRecordModel

	if err := r.db.WithContext(ctx).First(&m, query, arg).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("KYC 기록 조회 실패: %w", err)
	}

	return mapper.KycFromModel(&m), nil
}

// Upsert user_id 충돌 시 제출 내용으로 덮어씁니다. 기존 행이 있으면 그 ID가 record에 반영됩니다.
func (r *KycRepositoryImpl) Upsert(ctx context.Context, record *entity.KycRecord) error {
	m := mapper.KycToModel(record)

	err := r.db.WithContext(ctx).
		Clauses(
			clause.OnConflict{
				Columns:   []clause.Column{{Name: "user_id"}},
				DoUpdates: clause.AssignmentColumns(kycUpsertColumns),
			},
			clause.Returning{Columns: []clause.Column{{Name: "id"}}},
		).
		Create(m).Error
	if err != nil {
		return fmt.Errorf("KYC 기록 저장 실패: %w", err)
	}

	record.ID = m.ID
	return nil
}

// UpdateFromPending status = 'pending' 조건부 단일 행 갱신
func (r *KycRepositoryImpl) UpdateFromPending(ctx context.Context, record *entity.KycRecord) (bool, error) {
	result := r.db.WithContext(ctx).Model(&model.KycRecordModel{}).
		Where("id = ? AND status = ?", record.ID, string(entity.KycStatusPending)).
		Updates(outcomeColumns(record))
	if result.Error != nil {
		return false, fmt.Errorf("KYC 상태 갱신 실패: %w", result.Error)
	}
	return result.RowsAffected == 1, nil
}

// Save 현재 상태와 관계없이 결과 컬럼을 저장합니다
func (r *KycRepositoryImpl) Save(ctx context.Context, record *entity.KycRecord) error {
	result := r.db.WithContext(ctx).Model(&model.KycRecordModel{}).
		Where("id = ?", record.ID).
		Updates(outcomeColumns(record))
	if result.Error != nil {
		return fmt.Errorf("KYC 상태 저장 실패: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("KYC 기록 없음: %s", record.ID)
	}
	return nil
}

// WithinTransaction 트랜잭션 범위의 저장소로 fn을 실행합니다
func (r *KycRepositoryImpl) WithinTransaction(ctx context.Context, fn func(tx repository.KycRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&KycRepositoryImpl{db: tx})
	})
}

// outcomeColumns 상태 전이 시 변경되는 컬럼. nil 값도 그대로 기록합니다.
func outcomeColumns(record *entity.KycRecord) map[string]interface{} {
	return map[string]interface{}{
		"status":           string(record.Status),
		"rejection_reason": record.RejectionReason,
		"verified_at":      record.VerifiedAt,
		"updated_at":       record.UpdatedAt,
	}
}

type KycEventRepositoryImpl struct {
	db *gorm.DB
}

// NewKycEventRepository KYC 이벤트 저장소 구현체 생성
func NewKycEventRepository(db *gorm.DB) repository.KycEventRepository {
	return &KycEventRepositoryImpl{db: db}
}

// Create 이벤트 추가
func (r *KycEventRepositoryImpl) Create(ctx context.Context, event *entity.KycEvent) error {
	m := mapper.KycEventToModel(event)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return fmt.Errorf("KYC 이벤트 기록 실패: %w", err)
	}
	event.ID = m.ID
	event.CreatedAt = m.CreatedAt
	return nil
}

// ListByKycID KYC 기록의 이벤트를 시간순으로 조회
func (r *KycEventRepositoryImpl) ListByKycID(ctx context.Context, kycID string) ([]*entity.KycEvent, error) {
	var models []model.KycEventModel
	if err := r.db.WithContext(ctx).
		Where("kyc_id = ?", kycID).
		Order("created_at ASC, id ASC").
		Find(&models).Error; err != nil {
		return nil, fmt.Errorf("KYC 이벤트 조회 실패: %w", err)
	}
	return mapper.KycEventsFromModels(models), nil
}

type AdminActionLogRepositoryImpl struct {
	db *gorm.DB
}

// NewAdminActionLogRepository 관리자 작업 기록 저장소 구현체 생성
func NewAdminActionLogRepository(db *gorm.DB) repository.AdminActionLogRepository {
	return &AdminActionLogRepositoryImpl{db: db}
}

// Create 관리자 작업 기록 추가
func (r *AdminActionLogRepositoryImpl) Create(ctx context.Context, log *entity.AdminActionLog) error {
	m := mapper.AdminActionLogToModel(log)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return fmt.Errorf("관리자 작업 기록 실패: %w", err)
	}
	log.ID = m.ID
	log.CreatedAt = m.CreatedAt
	return nil
}
