package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wekeepgrowing/playvault-backend/internal/domain/entity"
)

func newSessionRepo(t *testing.T) (*RedisSessionRepository, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedisSessionRepository(client).(*RedisSessionRepository), mr
}

func testSession(id, userID string, ttl time.Duration) *entity.Session {
	now := time.Now()
	return &entity.Session{
		ID:        id,
		UserID:    userID,
		IsAdmin:   true,
		ExpiresAt: now.Add(ttl),
		IP:        "10.0.0.1",
		UserAgent: "go-test",
		CreatedAt: now,
	}
}

func TestRedisSessionRepository_SaveGetDelete(t *testing.T) {
	repo, mr := newSessionRepo(t)
	ctx := context.Background()

	sess := testSession("s-1", "U12abcdefghi", time.Hour)
	require.NoError(t, repo.Save(ctx, sess))
	assert.True(t, mr.Exists("session:s-1"))

	got, err := repo.Get(ctx, "s-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "U12abcdefghi", got.UserID)
	assert.True(t, got.IsAdmin)

	require.NoError(t, repo.Delete(ctx, "s-1"))
	got, err = repo.Get(ctx, "s-1")
	require.NoError(t, err)
	assert.Nil(t, got)

	// 이미 삭제된 세션 삭제도 성공
	assert.NoError(t, repo.Delete(ctx, "s-1"))
}

func TestRedisSessionRepository_ExpiryCheckedOnLookup(t *testing.T) {
	repo, _ := newSessionRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, testSession("s-2", "U1", time.Hour)))

	// TTL이 남아 있어도 만료 시각이 지났으면 조회되지 않음
	repo.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	got, err := repo.Get(ctx, "s-2")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRedisSessionRepository_TTL(t *testing.T) {
	repo, mr := newSessionRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, testSession("s-3", "U1", time.Minute)))
	mr.FastForward(2 * time.Minute)

	got, err := repo.Get(ctx, "s-3")
	require.NoError(t, err)
	assert.Nil(t, got)

	assert.Error(t, repo.Save(ctx, testSession("s-4", "U1", -time.Minute)))
}

func TestRedisSessionRepository_DeleteByUser(t *testing.T) {
	repo, _ := newSessionRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, testSession("a", "U1", time.Hour)))
	require.NoError(t, repo.Save(ctx, testSession("b", "U1", time.Hour)))
	require.NoError(t, repo.Save(ctx, testSession("c", "U2", time.Hour)))

	n, err := repo.DeleteByUser(ctx, "U1")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	for _, id := range []string{"a", "b"} {
		got, err := repo.Get(ctx, id)
		require.NoError(t, err)
		assert.Nil(t, got)
	}
	other, err := repo.Get(ctx, "c")
	require.NoError(t, err)
	assert.NotNil(t, other)

	n, err = repo.DeleteByUser(ctx, "nobody")
	require.NoError(t, err)
	assert.Zero(t, n)
}
