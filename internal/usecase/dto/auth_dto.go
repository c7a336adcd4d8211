package dto

// ClientInfo 요청을 보낸 클라이언트 정보
type ClientInfo struct {
	IP        string
	UserAgent string
}

// RegisterParams 회원가입 파라미터
type RegisterParams struct {
	Username    string
	Password    string
	Email       *string
	DisplayName *string
	Client      ClientInfo
}

// LoginParams 로그인 파라미터
type LoginParams struct {
	Username string
	Password string
	Client   ClientInfo
}
