package service

// Locator 클라이언트 IP를 위치 문자열로 변환합니다.
// 위치를 알 수 없으면 false를 반환합니다.
type Locator interface {
	Locate(ip string) (string, bool)
}

// NoopLocator 위치 조회를 하지 않는 Locator
type NoopLocator struct{}

func (NoopLocator) Locate(string) (string, bool) { return "", false }
