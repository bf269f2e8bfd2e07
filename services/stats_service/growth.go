package stats_service

// PctChange 计算环比百分比
// previous 为 0 时：current > 0 记为 100%，否则 0%
func PctChange(current, previous float64) float64 {
	if previous == 0 {
		if current > 0 {
			return 100.0
		}
		return 0.0
	}
	return (current - previous) / previous * 100.0
}
