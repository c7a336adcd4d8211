package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatLocation(t *testing.T) {
	tests := []struct {
		name               string
		city, region, code string
		want               string
		ok                 bool
	}{
		{"전체", "Seoul", "Seoul", "KR", "Seoul, Seoul, KR", true},
		{"국가만", "", "", "US", "US", true},
		{"정보 없음", "", "", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := formatLocation(tt.city, tt.region, tt.code)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewGeoIPLocatorMissingFile(t *testing.T) {
	_, err := NewGeoIPLocator("/nonexistent/GeoLite2-City.mmdb")
	assert.Error(t, err)
}
