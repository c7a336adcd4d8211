package repository

// Repositories 모든 레포지토리 인터페이스의 컬렉션
type Repositories struct {
	User           UserRepository
	Session        SessionRepository
	LoginAttempt   LoginAttemptRepository
	Kyc            KycRepository
	KycEvent       KycEventRepository
	AdminActionLog AdminActionLogRepository
}
