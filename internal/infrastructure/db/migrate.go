package db

import (
	"fmt"

	"github.com/wekeepgrowing/playvault-backend/internal/infrastructure/db/model"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Migrate 스키마 마이그레이션을 실행합니다
func Migrate(db *gorm.DB, logger *zap.Logger) error {
	logger.Info("데이터베이스 마이그레이션 시작")

	if err := db.AutoMigrate(
		&model.UserModel{},
		&model.LoginAttemptModel{},
		&model.KycRecordModel{},
		&model.KycEventModel{},
		&model.AdminActionLogModel{},
	); err != nil {
		return fmt.Errorf("auto migrate 실패: %w", err)
	}

	if err := createConstraints(db); err != nil {
		return fmt.Errorf("제약 조건 생성 실패: %w", err)
	}

	logger.Info("데이터베이스 마이그레이션 완료")
	return nil
}

// createConstraints GORM 태그로 표현할 수 없는 KYC 불변식을 DB에 둡니다
func createConstraints(db *gorm.DB) error {
	statements := []string{
		`DO $$ BEGIN
			ALTER TABLE kyc_records ADD CONSTRAINT chk_kyc_rejected_reason
				CHECK (status <> 'rejected' OR rejection_reason IS NOT NULL);
		EXCEPTION WHEN duplicate_object THEN NULL; END $$`,
		`DO $$ BEGIN
			ALTER TABLE kyc_records ADD CONSTRAINT chk_kyc_verified_at
				CHECK (status <> 'verified' OR verified_at IS NOT NULL);
		EXCEPTION WHEN duplicate_object THEN NULL; END $$`,
		`DO $$ BEGIN
			ALTER TABLE users ADD CONSTRAINT chk_users_role
				CHECK (role IN ('user', 'admin'));
		EXCEPTION WHEN duplicate_object THEN NULL; END $$`,
		`CREATE INDEX IF NOT EXISTS idx_kyc_records_pending ON kyc_records (submitted_at) WHERE status = 'pending'`,
	}

	for _, stmt := range statements {
		if err := db.Exec(stmt).Error; err != nil {
			return err
		}
	}
	return nil
}
