package stats_service

import (
	"testing"
	"time"
)

func TestParseRecordTime(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		ok   bool
	}{
		{"RFC3339", "2026-02-01T10:30:00Z", true},
		{"RFC3339纳秒", "2026-02-01T10:30:00.123456Z", true},
		{"无时区", "2026-02-01T10:30:00", true},
		{"空格分隔", "2026-02-01 10:30:00", true},
		{"仅日期", "2026-02-01", true},
		{"空串", "", false},
		{"乱码", "not-a-time", false},
		{"时间戳数字", "1760000000", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := parseRecordTime(tt.raw)
			if ok != tt.ok {
				t.Errorf("parseRecordTime(%q) ok = %v, want %v", tt.raw, ok, tt.ok)
			}
		})
	}
}

func TestClassifyWindow(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		age  time.Duration
		want windowBucket
	}{
		{"五天前", 5 * 24 * time.Hour, bucketCurrent},
		{"恰好三十天差一秒", 30*24*time.Hour - time.Second, bucketCurrent},
		{"恰好三十天", 30 * 24 * time.Hour, bucketPrevious},
		{"四十五天前", 45 * 24 * time.Hour, bucketPrevious},
		{"恰好六十天", 60 * 24 * time.Hour, bucketOlder},
		{"一百天前", 100 * 24 * time.Hour, bucketOlder},
		{"未来时间按本期计", -time.Hour, bucketCurrent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifyWindow(now, now.Add(-tt.age))
			if got != tt.want {
				t.Errorf("classifyWindow(age=%v) = %v, want %v", tt.age, got, tt.want)
			}
		})
	}
}

func TestDayKey(t *testing.T) {
	// 带时区的时间必须按UTC截断
	loc := time.FixedZone("UTC+8", 8*3600)
	early := time.Date(2026, 2, 1, 3, 0, 0, 0, loc) // UTC为1月31日19点
	if got := dayKey(early); got != "2026-01-31" {
		t.Errorf("dayKey = %q, want 2026-01-31", got)
	}

	utc := time.Date(2026, 2, 1, 23, 59, 59, 0, time.UTC)
	if got := dayKey(utc); got != "2026-02-01" {
		t.Errorf("dayKey = %q, want 2026-02-01", got)
	}
}
