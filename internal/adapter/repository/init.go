package repository

import (
	"github.com/redis/go-redis/v9"
	domainrepo "github.com/wekeepgrowing/playvault-backend/internal/domain/repository"
	"gorm.io/gorm"
)

// InitRepositories 모든 레포지토리를 초기화하고 컬렉션을 반환합니다
func InitRepositories(database *gorm.DB, redisClient *redis.Client) *domainrepo.Repositories {
	return &domainrepo.Repositories{
		User:           NewUserRepository(database),
		Session:        NewRedisSessionRepository(redisClient),
		LoginAttempt:   NewLoginAttemptRepository(database),
		Kyc:            NewKycRepository(database),
		KycEvent:       NewKycEventRepository(database),
		AdminActionLog: NewAdminActionLogRepository(database),
	}
}
