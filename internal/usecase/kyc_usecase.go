package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/wekeepgrowing/playvault-backend/internal/domain/entity"
	"github.com/wekeepgrowing/playvault-backend/internal/domain/repository"
	"github.com/wekeepgrowing/playvault-backend/internal/domain/verifier"
	"github.com/wekeepgrowing/playvault-backend/internal/usecase/dto"
	"github.com/wekeepgrowing/playvault-backend/internal/usecase/interfaces"
	apperrors "github.com/wekeepgrowing/playvault-backend/pkg/errors"
	"go.uber.org/zap"
)

const (
	minFullNameLength       = 2
	minDocumentNumberLength = 4
)

// KycUseCase KYC 워크플로 유스케이스 구현체
type KycUseCase struct {
	logger                   *zap.Logger
	kycRepository            repository.KycRepository
	kycEventRepository       repository.KycEventRepository
	adminActionLogRepository repository.AdminActionLogRepository
	userRepository           repository.UserRepository
	verifierClient           verifier.Client
	adminGate                interfaces.AdminGate
	notifier                 interfaces.KycNotifier
	now                      func() time.Time
}

// NewKycUseCase 새 KYC 유스케이스 생성.
// verifierClient가 nil이면 외부 검증 없이 pending 상태로만 저장합니다.
// notifier가 nil이면 상태 변경 이벤트를 발행하지 않습니다.
func NewKycUseCase(
	logger *zap.Logger,
	repos *repository.Repositories,
	verifierClient verifier.Client,
	adminGate interfaces.AdminGate,
	notifier interfaces.KycNotifier,
) interfaces.KycUseCase {
	return &KycUseCase{
		logger:                   logger,
		kycRepository:            repos.Kyc,
		kycEventRepository:       repos.KycEvent,
		adminActionLogRepository: repos.AdminActionLog,
		userRepository:           repos.User,
		verifierClient:           verifierClient,
		adminGate:                adminGate,
		notifier:                 notifier,
		now:                      time.Now,
	}
}

// Submit KYC 정보 제출. 외부 검증 요청이 실패하면 아무것도 저장되지 않습니다.
func (uc *KycUseCase) Submit(ctx context.Context, session *entity.Session, params dto.SubmitKycParams) (*entity.KycRecord, error) {
	if !session.IsActive() {
		return nil, apperrors.NewAppError(apperrors.ErrUnauthenticated, "Not authenticated", nil)
	}
	if err := validateSubmission(params, uc.now()); err != nil {
		return nil, err
	}

	var saved *entity.KycRecord
	err := uc.kycRepository.WithinTransaction(ctx, func(tx repository.KycRepository) error {
		existing, err := tx.FindByUserID(ctx, session.UserID)
		if err != nil {
			return apperrors.NewAppError(apperrors.ErrInternal, "KYC 기록 조회 실패", err)
		}

		record := &entity.KycRecord{ID: uuid.NewString(), UserID: session.UserID}
		if existing != nil {
			record.ID = existing.ID
		}
		record.FullName = strings.TrimSpace(params.FullName)
		record.DateOfBirth = params.DateOfBirth
		record.DocumentType = params.DocumentType
		record.DocumentNumber = params.DocumentNumber
		record.DocumentImageURL = params.DocumentImageURL
		record.SelfieImageURL = params.SelfieImageURL
		record.Resubmit(uc.now())

		if uc.verifierClient != nil {
			if err := uc.initiateVerification(ctx, record); err != nil {
				return err
			}
		}

		if err := tx.Upsert(ctx, record); err != nil {
			return apperrors.NewAppError(apperrors.ErrInternal, "KYC 기록 저장 실패", err)
		}
		saved = record
		return nil
	})
	if err != nil {
		if apperrors.CodeOf(err) == apperrors.ErrInternal {
			return nil, apperrors.Wrap(err, "KYC 제출 실패")
		}
		return nil, err
	}

	uc.logger.Info("KYC 제출 완료",
		zap.String("user_id", saved.UserID),
		zap.String("kyc_id", saved.ID),
		zap.Bool("verifier", saved.VerifierKycID != nil),
	)
	return saved, nil
}

// initiateVerification 외부 검증 세션을 시작하고 결과를 record에 기록합니다
func (uc *KycUseCase) initiateVerification(ctx context.Context, record *entity.KycRecord) error {
	user, err := uc.userRepository.FindByID(ctx, record.UserID)
	if err != nil {
		return apperrors.NewAppError(apperrors.ErrInternal, "사용자 조회 실패", err)
	}
	if user == nil {
		return apperrors.NewAppError(apperrors.ErrNotFound, "User not found", nil)
	}

	firstName, lastName := SplitFullName(record.FullName)
	resp, err := uc.verifierClient.Initiate(ctx, &verifier.InitiateRequest{
		ExternalID: user.ID,
		FirstName:  firstName,
		LastName:   lastName,
		Email:      stringValue(user.Email),
	})
	if err != nil {
		uc.logger.Error("외부 KYC 검증 시작 실패", zap.String("user_id", user.ID), zap.Error(err))
		return apperrors.NewAppError(apperrors.ErrVerifierUnavailable, "Verification service unavailable", err)
	}

	record.VerifierKycID = &resp.VerifierKycID
	if resp.VerificationURL != "" {
		record.VerificationURL = &resp.VerificationURL
	}
	return nil
}

// Status 사용자의 KYC 상태 (로컬 조회)
func (uc *KycUseCase) Status(ctx context.Context, session *entity.Session) (*dto.KycStatusResult, error) {
	if !session.IsActive() {
		return nil, apperrors.NewAppError(apperrors.ErrUnauthenticated, "Not authenticated", nil)
	}

	record, err := uc.kycRepository.FindByUserID(ctx, session.UserID)
	if err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrInternal, "KYC 상태 조회 실패", err)
	}
	return dto.NewKycStatusResult(record), nil
}

// ApplyVerifierUpdate 검증기 웹훅 반영. 알 수 없는 ID로는 기록을 만들지 않습니다.
func (uc *KycUseCase) ApplyVerifierUpdate(ctx context.Context, params dto.VerifierUpdateParams) error {
	if params.VerifierKycID == "" {
		return apperrors.NewAppError(apperrors.ErrInvalidArgument, "kyc_id is required", nil)
	}

	record, err := uc.kycRepository.FindByVerifierKycID(ctx, params.VerifierKycID)
	if err != nil {
		return apperrors.NewAppError(apperrors.ErrInternal, "KYC 기록 조회 실패", err)
	}
	if record == nil {
		uc.logger.Warn("알 수 없는 검증기 KYC ID", zap.String("verifier_kyc_id", params.VerifierKycID))
		return apperrors.NewAppError(apperrors.ErrUnknownKycID, "Unknown KYC id", nil)
	}

	_, err = uc.applyVerifierResult(ctx, record, params.Status, params.Details, entity.KycEventSourceWebhook)
	return err
}

// applyVerifierResult 검증기 결과를 전이 규칙에 따라 반영하고 이벤트를 남깁니다
func (uc *KycUseCase) applyVerifierResult(
	ctx context.Context,
	record *entity.KycRecord,
	rawStatus string,
	details map[string]interface{},
	source entity.KycEventSource,
) (*entity.KycRecord, error) {
	from := record.Status
	to := ParseVerifierStatus(rawStatus)
	reason := RejectionReasonFrom(details)

	event := &entity.KycEvent{
		KycID:      record.ID,
		Source:     source,
		FromStatus: from,
		ToStatus:   to,
		Details:    details,
	}
	if reason != "" {
		event.Reason = &reason
	}

	if err := record.ApplyVerifierStatus(to, reason, uc.now()); err != nil {
		uc.recordEvent(ctx, event)
		uc.logger.Warn("허용되지 않는 KYC 상태 전이",
			zap.String("kyc_id", record.ID),
			zap.String("from", string(from)),
			zap.String("to", rawStatus),
			zap.String("source", string(source)),
			zap.Error(err),
		)
		return nil, apperrors.NewAppError(apperrors.ErrInvalidTransition,
			fmt.Sprintf("Cannot transition KYC from %s to %s", from, rawStatus), err)
	}

	applied, err := uc.kycRepository.UpdateFromPending(ctx, record)
	if err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrInternal, "KYC 상태 갱신 실패", err)
	}
	if !applied {
		uc.recordEvent(ctx, event)
		uc.logger.Warn("KYC 기록이 이미 처리됨", zap.String("kyc_id", record.ID), zap.String("source", string(source)))
		return nil, apperrors.NewAppError(apperrors.ErrInvalidTransition, "KYC record is no longer pending", nil)
	}

	event.Accepted = true
	uc.recordEvent(ctx, event)
	uc.publish(ctx, record, string(source))

	uc.logger.Info("KYC 상태 변경",
		zap.String("kyc_id", record.ID),
		zap.String("user_id", record.UserID),
		zap.String("status", string(record.Status)),
		zap.String("source", string(source)),
	)
	return record, nil
}

// AdminGet 관리자용 KYC 상세
func (uc *KycUseCase) AdminGet(ctx context.Context, admin *entity.Session, userID string) (*dto.AdminKycView, error) {
	if err := uc.adminGate.RequireAdmin(admin); err != nil {
		return nil, err
	}

	record, err := uc.findRecord(ctx, userID)
	if err != nil {
		return nil, err
	}

	events, err := uc.kycEventRepository.ListByKycID(ctx, record.ID)
	if err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrInternal, "KYC 이벤트 조회 실패", err)
	}
	return &dto.AdminKycView{Record: record, Events: events}, nil
}

// AdminOverride 관리자 상태 변경. 전이 규칙은 적용하지 않지만 불변식은 유지합니다.
func (uc *KycUseCase) AdminOverride(ctx context.Context, admin *entity.Session, params dto.AdminOverrideParams) (*entity.KycRecord, error) {
	if err := uc.adminGate.RequireAdmin(admin); err != nil {
		return nil, err
	}
	if !params.Status.Valid() {
		return nil, apperrors.NewAppError(apperrors.ErrInvalidArgument, fmt.Sprintf("Invalid status: %s", params.Status), nil)
	}

	record, err := uc.findRecord(ctx, params.UserID)
	if err != nil {
		return nil, err
	}

	from := record.Status
	reason := strings.TrimSpace(stringValue(params.Reason))
	if err := record.SetStatus(params.Status, reason, uc.now()); err != nil {
		if errors.Is(err, entity.ErrRejectionReasonRequired) {
			return nil, apperrors.NewAppError(apperrors.ErrInvalidArgument, "Rejection reason is required", nil)
		}
		return nil, apperrors.NewAppError(apperrors.ErrInvalidArgument, err.Error(), nil)
	}

	if err := uc.kycRepository.Save(ctx, record); err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrInternal, "KYC 상태 저장 실패", err)
	}

	event := &entity.KycEvent{
		KycID:      record.ID,
		Source:     entity.KycEventSourceAdmin,
		FromStatus: from,
		ToStatus:   record.Status,
		Accepted:   true,
		Reason:     record.RejectionReason,
	}
	uc.recordEvent(ctx, event)
	uc.recordAdminAction(ctx, admin, entity.AdminActionKycOverride, record.UserID, map[string]interface{}{
		"kyc_id": record.ID,
		"from":   string(from),
		"to":     string(record.Status),
		"reason": reason,
	})
	uc.publish(ctx, record, string(entity.KycEventSourceAdmin))

	uc.logger.Info("관리자 KYC 상태 변경",
		zap.String("admin_id", admin.UserID),
		zap.String("user_id", record.UserID),
		zap.String("from", string(from)),
		zap.String("to", string(record.Status)),
	)
	return record, nil
}

// Reconcile pending 기록의 검증기 상태를 조회해 반영합니다
func (uc *KycUseCase) Reconcile(ctx context.Context, admin *entity.Session, userID string) (*dto.KycStatusResult, error) {
	if err := uc.adminGate.RequireAdmin(admin); err != nil {
		return nil, err
	}
	if uc.verifierClient == nil {
		return nil, apperrors.NewAppError(apperrors.ErrVerifierUnavailable, "Verification service is not configured", nil)
	}

	record, err := uc.findRecord(ctx, userID)
	if err != nil {
		return nil, err
	}
	if record.Status != entity.KycStatusPending || record.VerifierKycID == nil {
		return nil, apperrors.NewAppError(apperrors.ErrInvalidTransition, "Only pending verifications can be reconciled", nil)
	}

	resp, err := uc.verifierClient.PollStatus(ctx, *record.VerifierKycID)
	if err != nil {
		uc.logger.Error("외부 KYC 상태 조회 실패", zap.String("kyc_id", record.ID), zap.Error(err))
		return nil, apperrors.NewAppError(apperrors.ErrVerifierUnavailable, "Verification service unavailable", err)
	}

	uc.recordAdminAction(ctx, admin, entity.AdminActionKycReconcile, record.UserID, map[string]interface{}{
		"kyc_id":          record.ID,
		"verifier_status": resp.Status,
	})

	// 검증기에서 아직 진행 중이면 변경 없이 현재 상태를 돌려줍니다
	if ParseVerifierStatus(resp.Status) == entity.KycStatusPending {
		return dto.NewKycStatusResult(record), nil
	}

	updated, err := uc.applyVerifierResult(ctx, record, resp.Status, resp.Details, entity.KycEventSourceReconcile)
	if err != nil {
		return nil, err
	}
	return dto.NewKycStatusResult(updated), nil
}

func (uc *KycUseCase) findRecord(ctx context.Context, userID string) (*entity.KycRecord, error) {
	record, err := uc.kycRepository.FindByUserID(ctx, userID)
	if err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrInternal, "KYC 기록 조회 실패", err)
	}
	if record == nil {
		return nil, apperrors.NewAppError(apperrors.ErrNotFound, "KYC record not found", nil)
	}
	return record, nil
}

// recordEvent 이벤트 기록 실패는 요청을 실패시키지 않습니다
func (uc *KycUseCase) recordEvent(ctx context.Context, event *entity.KycEvent) {
	if err := uc.kycEventRepository.Create(ctx, event); err != nil {
		uc.logger.Warn("KYC 이벤트 기록 실패", zap.String("kyc_id", event.KycID), zap.Error(err))
	}
}

func (uc *KycUseCase) recordAdminAction(ctx context.Context, admin *entity.Session, action entity.AdminAction, targetUserID string, detail map[string]interface{}) {
	log := &entity.AdminActionLog{
		AdminID:      admin.UserID,
		Action:       action,
		TargetUserID: &targetUserID,
		Detail:       detail,
	}
	if err := uc.adminActionLogRepository.Create(ctx, log); err != nil {
		uc.logger.Warn("관리자 작업 기록 실패", zap.String("action", string(action)), zap.Error(err))
	}
}

func (uc *KycUseCase) publish(ctx context.Context, record *entity.KycRecord, source string) {
	if uc.notifier == nil {
		return
	}
	event := &dto.KycStatusChangedEvent{
		KycID:           record.ID,
		UserID:          record.UserID,
		Status:          record.Status,
		RejectionReason: record.RejectionReason,
		Source:          source,
		OccurredAt:      record.UpdatedAt,
	}
	if err := uc.notifier.PublishStatusChanged(ctx, event); err != nil {
		uc.logger.Warn("KYC 상태 변경 이벤트 발행 실패", zap.String("kyc_id", record.ID), zap.Error(err))
	}
}

// validateSubmission 제출 내용 검증
func validateSubmission(params dto.SubmitKycParams, now time.Time) error {
	invalid := func(msg string) error {
		return apperrors.NewAppError(apperrors.ErrInvalidArgument, msg, nil)
	}

	if utf8.RuneCountInString(strings.TrimSpace(params.FullName)) < minFullNameLength {
		return invalid("Full name must be at least 2 characters")
	}
	if params.DateOfBirth.IsZero() || params.DateOfBirth.After(now) {
		return invalid("Invalid date of birth")
	}
	switch params.DocumentType {
	case entity.DocumentPassport, entity.DocumentDriverLicense, entity.DocumentIDCard:
	default:
		return invalid("Invalid document type")
	}
	if utf8.RuneCountInString(params.DocumentNumber) < minDocumentNumberLength {
		return invalid("Document number must be at least 4 characters")
	}
	if params.DocumentImageURL != nil && !isWebURL(*params.DocumentImageURL) {
		return invalid("Invalid document image URL")
	}
	if params.SelfieImageURL != nil && !isWebURL(*params.SelfieImageURL) {
		return invalid("Invalid selfie image URL")
	}
	return nil
}

func isWebURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// ParseVerifierStatus 검증기 상태 문자열을 KYC 상태로 변환합니다.
// 알 수 없는 값은 그대로 두어 전이 검사에서 거부되도록 합니다.
func ParseVerifierStatus(raw string) entity.KycStatus {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "verified", "approved", "completed":
		return entity.KycStatusVerified
	case "rejected", "declined", "failed":
		return entity.KycStatusRejected
	case "pending", "processing", "in_progress":
		return entity.KycStatusPending
	}
	return entity.KycStatus(raw)
}

// RejectionReasonFrom verification_details에서 거절 사유 추출
func RejectionReasonFrom(details map[string]interface{}) string {
	for _, key := range []string{"rejection_reason", "reason", "message"} {
		if v, ok := details[key].(string); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}
