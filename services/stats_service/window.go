package stats_service

import "time"

// growthWindow 增长对比窗口长度，current = [now-30d, now)，previous = [now-60d, now-30d)
const growthWindow = 30 * 24 * time.Hour

type windowBucket int

const (
	bucketCurrent windowBucket = iota
	bucketPrevious
	bucketOlder
)

// recordTimeFormats 记录时间戳的兼容格式，历史数据来源不一
var recordTimeFormats = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// parseRecordTime 解析记录携带的创建时间
// 解析失败返回 false，调用方将该记录排除在窗口统计与按天序列之外
func parseRecordTime(raw string) (time.Time, bool) {
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range recordTimeFormats {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// classifyWindow 按距 now 的时长划分增长窗口
func classifyWindow(now, createdAt time.Time) windowBucket {
	age := now.Sub(createdAt)
	switch {
	case age < growthWindow:
		return bucketCurrent
	case age < 2*growthWindow:
		return bucketPrevious
	default:
		return bucketOlder
	}
}

// dayKey 按 UTC 截断到天，作为按天序列的桶键
func dayKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}
