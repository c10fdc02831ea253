package calculator

import (
	"reflect"
	"sort"
	"testing"
)

func TestDetectLevels_LocalExtrema(t *testing.T) {
	closes := []float64{1, 5, 2, 6, 1, 7, 1}
	support, resistance := DetectLevels(closes, 1, 3)

	if !reflect.DeepEqual(support, []float64{1, 2}) {
		t.Errorf("support = %v, want [1 2]", support)
	}
	if !reflect.DeepEqual(resistance, []float64{7, 6, 5}) {
		t.Errorf("resistance = %v, want [7 6 5]", resistance)
	}
}

func TestDetectLevels_ShortSeries(t *testing.T) {
	tests := []struct {
		name   string
		closes []float64
		window int
	}{
		{"empty", nil, 1},
		{"one point", []float64{5}, 1},
		{"just under threshold", []float64{1, 2, 3, 4, 5, 6}, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			support, resistance := DetectLevels(tt.closes, tt.window, 5)
			if len(support) != 0 || len(resistance) != 0 {
				t.Errorf("got support=%v resistance=%v, want both empty", support, resistance)
			}
		})
	}
}

func TestDetectLevels_MaxLevelsZero(t *testing.T) {
	closes := []float64{1, 5, 2, 6, 1, 7, 1}
	support, resistance := DetectLevels(closes, 1, 0)
	if len(support) != 0 || len(resistance) != 0 {
		t.Errorf("got support=%v resistance=%v, want both empty with max_levels=0", support, resistance)
	}
}

func TestDetectLevels_SortedAndDistinct(t *testing.T) {
	// Two maxima at the same price must collapse to one level.
	closes := []float64{1, 8, 2, 8, 2, 9, 3, 7, 1}
	support, resistance := DetectLevels(closes, 1, 10)

	for i := 1; i < len(resistance); i++ {
		if resistance[i] >= resistance[i-1] {
			t.Fatalf("resistance not strictly descending: %v", resistance)
		}
	}
	if !sort.Float64sAreSorted(support) {
		t.Fatalf("support not ascending: %v", support)
	}
	for i := 1; i < len(support); i++ {
		if support[i] == support[i-1] {
			t.Fatalf("duplicate support level: %v", support)
		}
	}

	count := 0
	for _, r := range resistance {
		if r == 8 {
			count++
		}
	}
	if count != 1 {
		t.Errorf("duplicate price 8 appears %d times in %v", count, resistance)
	}
}

func TestDetectLevels_TruncationTakesFirstN(t *testing.T) {
	closes := []float64{1, 8, 2, 9, 2, 7, 1}
	_, resistance := DetectLevels(closes, 1, 2)
	if !reflect.DeepEqual(resistance, []float64{9, 8}) {
		t.Errorf("resistance = %v, want the two highest [9 8]", resistance)
	}
}

func TestDetectLevels_WindowSensitivity(t *testing.T) {
	closes := make([]float64, 0, 60)
	for i := 0; i < 60; i++ {
		base := float64(i % 7)
		closes = append(closes, 100+base*float64(1+i%3))
	}
	sNarrow, rNarrow := DetectLevels(closes, 2, 10)
	sWide, rWide := DetectLevels(closes, 10, 10)
	if len(sWide) > len(sNarrow) || len(rWide) > len(rNarrow) {
		t.Errorf("wider window produced more levels: narrow=(%d,%d) wide=(%d,%d)",
			len(sNarrow), len(rNarrow), len(sWide), len(rWide))
	}
}
