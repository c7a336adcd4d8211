package model

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/schema"
)

func TestKycEventModel_StatusColumnsAreUnbounded(t *testing.T) {
	s, err := schema.Parse(&KycEventModel{}, &sync.Map{}, schema.NamingStrategy{})
	require.NoError(t, err)
	assert.Equal(t, "kyc_events", s.Table)

	// 허용되지 않은 전이도 검증기가 보낸 상태 문자열 그대로 기록됩니다
	for _, name := range []string{"FromStatus", "ToStatus"} {
		field := s.LookUpField(name)
		require.NotNil(t, field, name)
		assert.Equal(t, schema.DataType("text"), field.DataType, name)
		assert.Zero(t, field.Size, name)
		assert.True(t, field.NotNull, name)
	}
}
