package stats_service

import "testing"

func TestPctChange(t *testing.T) {
	tests := []struct {
		name     string
		current  float64
		previous float64
		want     float64
	}{
		{"双零", 0, 0, 0},
		{"上期为零本期有值", 5, 0, 100},
		{"上期为零本期为零", 0, 0, 0},
		{"下降一半", 50, 100, -50},
		{"翻倍", 200, 100, 100},
		{"持平", 100, 100, 0},
		{"跌到零", 0, 80, -100},
		{"小数", 30, 40, -25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PctChange(tt.current, tt.previous)
			if got != tt.want {
				t.Errorf("PctChange(%v, %v) = %v, want %v", tt.current, tt.previous, got, tt.want)
			}
		})
	}
}
