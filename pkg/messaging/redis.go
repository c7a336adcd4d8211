package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Publisher 메시지 발행 인터페이스
type Publisher interface {
	Publish(ctx context.Context, channel string, message interface{}) error
}

// Subscriber 채널 구독 인터페이스
type Subscriber interface {
	Subscribe(ctx context.Context, channel string) (<-chan Message, error)
}

// Message 메시지 구조체
type Message struct {
	Channel string
	Payload []byte
	Time    time.Time
}

// Decode는 JSON 페이로드를 v로 역직렬화합니다.
func (m Message) Decode(v interface{}) error {
	return json.Unmarshal(m.Payload, v)
}

// RedisBus Redis pub/sub 기반 메시지 버스
type RedisBus struct {
	client *redis.Client
}

// NewRedisBus 기존 Redis 클라이언트를 공유하는 메시지 버스 생성
func NewRedisBus(client *redis.Client) *RedisBus {
	return &RedisBus{client: client}
}

// Publish 메시지 발행
func (r *RedisBus) Publish(ctx context.Context, channel string, message interface{}) error {
	payload, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("메시지 직렬화 실패: %w", err)
	}

	if err := r.client.Publish(ctx, channel, payload).Err(); err != nil {
		return fmt.Errorf("메시지 발행 실패: %w", err)
	}
	return nil
}

// Subscribe 채널 구독. ctx가 끝나면 채널이 닫힙니다.
func (r *RedisBus) Subscribe(ctx context.Context, channel string) (<-chan Message, error) {
	pubsub := r.client.Subscribe(ctx, channel)

	// 구독 확인
	if _, err := pubsub.Receive(ctx); err != nil {
		pubsub.Close()
		return nil, fmt.Errorf("채널 구독 실패: %w", err)
	}

	messageCh := make(chan Message)
	go func() {
		defer close(messageCh)
		defer pubsub.Close()

		ch := pubsub.Channel()
		for {
			select {
			case msg, ok := <-ch:
				if !ok {
					return
				}
				select {
				case messageCh <- Message{Channel: msg.Channel, Payload: []byte(msg.Payload), Time: time.Now()}:
				case <-ctx.Done():
					return
				}
			case <-ctx.Done():
				return
			}
		}
	}()

	return messageCh, nil
}
