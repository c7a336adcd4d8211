package usecase

import (
	"fmt"
	"strings"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"golang.org/x/crypto/bcrypt"
)

const (
	idDigits = "0123456789"
	idAlnum  = "0123456789abcdefghijklmnopqrstuvwxyz"

	// MaxPasswordBytes bcrypt 입력 한도 (문자 수가 아닌 UTF-8 바이트 수)
	MaxPasswordBytes = 72
)

// GenerateUserID 12자리 사용자 ID 생성.
// 접두사 'U' + 숫자 2자리 + 영숫자 9자리 (예: U12ABC345XYZ)
func GenerateUserID() (string, error) {
	twoDigits, err := gonanoid.Generate(idDigits, 2)
	if err != nil {
		return "", fmt.Errorf("숫자 생성 실패: %w", err)
	}

	nineAlnum, err := gonanoid.Generate(idAlnum, 9)
	if err != nil {
		return "", fmt.Errorf("영숫자 생성 실패: %w", err)
	}

	return strings.ToUpper("u" + twoDigits + nineAlnum), nil
}

// HashPassword 비밀번호를 bcrypt로 해싱합니다
func HashPassword(password string, cost int) (string, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword 비밀번호가 해시와 일치하는지 확인합니다
func VerifyPassword(hashedPassword, inputPassword string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(inputPassword)) == nil
}

// SplitFullName 검증기 요청용 이름 분리. 마지막 단어를 성으로 봅니다.
func SplitFullName(fullName string) (first, last string) {
	parts := strings.Fields(fullName)
	switch len(parts) {
	case 0:
		return "", ""
	case 1:
		return parts[0], ""
	default:
		return strings.Join(parts[:len(parts)-1], " "), parts[len(parts)-1]
	}
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
