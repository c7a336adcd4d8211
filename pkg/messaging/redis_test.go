package messaging

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisBusPublishSubscribe(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	bus := NewRedisBus(client)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := bus.Subscribe(ctx, "kyc:status")
	require.NoError(t, err)

	type event struct {
		UserID string `json:"user_id"`
		Status string `json:"status"`
	}
	require.NoError(t, bus.Publish(ctx, "kyc:status", event{UserID: "u1", Status: "verified"}))

	select {
	case msg := <-ch:
		var got event
		require.NoError(t, msg.Decode(&got))
		assert.Equal(t, "kyc:status", msg.Channel)
		assert.Equal(t, event{UserID: "u1", Status: "verified"}, got)
	case <-time.After(2 * time.Second):
		t.Fatal("메시지 수신 시간 초과")
	}

	cancel()
	assert.Eventually(t, func() bool {
		_, ok := <-ch
		return !ok
	}, 2*time.Second, 10*time.Millisecond)
}
