package geo

import (
	"fmt"
	"net"
	"strings"

	"github.com/oschwald/geoip2-golang"
	"github.com/wekeepgrowing/playvault-backend/internal/domain/service"
)

// GeoIPLocator GeoLite2 City DB 기반 Locator
type GeoIPLocator struct {
	reader *geoip2.Reader
}

// NewGeoIPLocator .mmdb 파일을 열어 Locator를 생성합니다
func NewGeoIPLocator(cityDBPath string) (*GeoIPLocator, error) {
	reader, err := geoip2.Open(cityDBPath)
	if err != nil {
		return nil, fmt.Errorf("GeoIP DB 열기 실패: %w", err)
	}
	return &GeoIPLocator{reader: reader}, nil
}

// Locate "City, Region, CountryCode" 형식의 위치를 반환합니다.
// 사설 IP나 DB에 없는 IP는 false.
func (l *GeoIPLocator) Locate(ipAddress string) (string, bool) {
	ip := net.ParseIP(ipAddress)
	if ip == nil || ip.IsLoopback() || ip.IsPrivate() {
		return "", false
	}

	record, err := l.reader.City(ip)
	if err != nil {
		return "", false
	}

	var region string
	if len(record.Subdivisions) > 0 {
		region = record.Subdivisions[0].Names["en"]
	}
	return formatLocation(record.City.Names["en"], region, record.Country.IsoCode)
}

// Close DB 닫기
func (l *GeoIPLocator) Close() error {
	return l.reader.Close()
}

func formatLocation(city, region, country string) (string, bool) {
	parts := make([]string, 0, 3)
	for _, p := range []string{city, region, country} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) == 0 {
		return "", false
	}
	return strings.Join(parts, ", "), true
}

var _ service.Locator = (*GeoIPLocator)(nil)
