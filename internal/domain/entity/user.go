package entity

import (
	"errors"
	"time"
)

// Role 사용자 역할
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Valid 정의된 역할인지 확인
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// User 비즈니스 도메인 엔티티
type User struct {
	ID            string
	Username      string
	PasswordHash  string
	Email         *string
	DisplayName   *string
	Role          Role
	LastIPAddress *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewUser 사용자 생성 팩토리 함수
func NewUser(username, passwordHash string, email, displayName *string) (*User, error) {
	if username == "" {
		return nil, errors.New("사용자 이름은 필수입니다")
	}
	if passwordHash == "" {
		return nil, errors.New("비밀번호 해시는 필수입니다")
	}

	now := time.Now()
	return &User{
		Username:     username,
		PasswordHash: passwordHash,
		Email:        email,
		DisplayName:  displayName,
		Role:         RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// IsAdmin 관리자 역할인지 확인
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// RecordLogin 로그인 성공 기록
func (u *User) RecordLogin(ip string) {
	if ip != "" {
		u.LastIPAddress = &ip
	}
	u.UpdatedAt = time.Now()
}
