package entity

import "time"

// Session 서버 측 세션. IsAdmin은 로그인 시점의 역할로 고정됩니다.
type Session struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	IsAdmin   bool      `json:"is_admin"`
	ExpiresAt time.Time `json:"expires_at"`
	IP        string    `json:"ip"`
	UserAgent string    `json:"user_agent"`
	CreatedAt time.Time `json:"created_at"`
}

// NewSession 사용자에 대한 새 세션을 생성합니다
func NewSession(id string, user *User, ttl time.Duration, ip, userAgent string) *Session {
	now := time.Now()
	return &Session{
		ID:        id,
		UserID:    user.ID,
		IsAdmin:   user.IsAdmin(),
		ExpiresAt: now.Add(ttl),
		IP:        ip,
		UserAgent: userAgent,
		CreatedAt: now,
	}
}

// IsExpired 만료 여부
func (s *Session) IsExpired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// IsActive 인증에 사용할 수 있는 세션인지 확인
func (s *Session) IsActive() bool {
	return s != nil && s.UserID != "" && !s.IsExpired(time.Now())
}
