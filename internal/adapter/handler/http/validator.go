package http

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// RequestValidator go-playground/validator 기반 echo.Validator
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator 오류 메시지에 JSON 필드 이름을 쓰는 검증기 생성
func NewRequestValidator() echo.Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	// max는 문자 수를 셉니다. bcrypt 입력처럼 바이트 한도가 필요한 필드용
	_ = v.RegisterValidation("maxbytes", maxBytes)
	return &RequestValidator{validate: v}
}

func maxBytes(fl validator.FieldLevel) bool {
	limit, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	return len(fl.Field().String()) <= limit
}

// Validate echo.Validator 구현
func (rv *RequestValidator) Validate(i interface{}) error {
	return rv.validate.Struct(i)
}
