package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/wekeepgrowing/playvault-backend/internal/domain/entity"
	"github.com/wekeepgrowing/playvault-backend/internal/domain/repository"
	"github.com/wekeepgrowing/playvault-backend/internal/usecase/constants"
)

// RedisSessionRepository Redis 기반 세션 저장소
type RedisSessionRepository struct {
	client *redis.Client
	now    func() time.Time
}

// NewRedisSessionRepository 세션 저장소 생성
func NewRedisSessionRepository(client *redis.Client) repository.SessionRepository {
	return &RedisSessionRepository{client: client, now: time.Now}
}

func sessionKey(id string) string {
	return constants.SessionPrefix + id
}

func userSessionsKey(userID string) string {
	return constants.UserSessionsPrefix + userID
}

// Save 세션 JSON을 만료 시각까지 저장하고 사용자별 집합에 등록합니다
func (r *RedisSessionRepository) Save(ctx context.Context, session *entity.Session) error {
	ttl := session.ExpiresAt.Sub(r.now())
	if ttl <= 0 {
		return fmt.Errorf("이미 만료된 세션: %s", session.ID)
	}

	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("세션 직렬화 실패: %w", err)
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, sessionKey(session.ID), data, ttl)
	pipe.SAdd(ctx, userSessionsKey(session.UserID), session.ID)
	// 세션 TTL이 고정이므로 가장 최근 세션 기준으로 집합 만료를 갱신
	pipe.Expire(ctx, userSessionsKey(session.UserID), ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("세션 데이터 저장 실패: %w", err)
	}
	return nil
}

// Get 세션 조회. 만료 시각이 지난 세션은 없는 것으로 취급합니다.
func (r *RedisSessionRepository) Get(ctx context.Context, id string) (*entity.Session, error) {
	data, err := r.client.Get(ctx, sessionKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("세션 조회 실패: %w", err)
	}

	var session entity.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("세션 역직렬화 실패: %w", err)
	}

	if session.IsExpired(r.now()) {
		return nil, nil
	}
	return &session, nil
}

// Delete 세션 삭제
func (r *RedisSessionRepository) Delete(ctx context.Context, id string) error {
	session, err := r.Get(ctx, id)
	if err != nil {
		return err
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, sessionKey(id))
	if session != nil {
		pipe.SRem(ctx, userSessionsKey(session.UserID), id)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("세션 삭제 실패: %w", err)
	}
	return nil
}

// DeleteByUser 사용자의 모든 세션 삭제
func (r *RedisSessionRepository) DeleteByUser(ctx context.Context, userID string) (int, error) {
	ids, err := r.client.SMembers(ctx, userSessionsKey(userID)).Result()
	if err != nil {
		return 0, fmt.Errorf("사용자 세션 목록 조회 실패: %w", err)
	}
	if len(ids) == 0 {
		return 0, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = sessionKey(id)
	}

	pipe := r.client.TxPipeline()
	deleted := pipe.Del(ctx, keys...)
	pipe.Del(ctx, userSessionsKey(userID))
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, fmt.Errorf("사용자 세션 삭제 실패: %w", err)
	}
	return int(deleted.Val()), nil
}
