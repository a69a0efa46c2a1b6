package components

import (
	"strings"
	"testing"
)

func TestLayoutRow(t *testing.T) {
	widths := LayoutRow(100, 3)
	sum := 0
	for _, w := range widths {
		sum += w
	}
	if sum != 100 {
		t.Errorf("widths sum = %d, want 100", sum)
	}
	if widths[0] != 34 || widths[1] != 33 || widths[2] != 33 {
		t.Errorf("widths = %v", widths)
	}

	if LayoutRow(10, 0) != nil {
		t.Error("zero columns should return nil")
	}
}

func TestToneForAmount(t *testing.T) {
	cases := []struct {
		in   float64
		want Tone
	}{
		{1_250_000, ToneGood},
		{-45_000, ToneBad},
		{0, ToneNeutral},
	}
	for _, tc := range cases {
		if got := ToneForAmount(tc.in); got != tc.want {
			t.Errorf("ToneForAmount(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestMetricCardRow(t *testing.T) {
	metrics := []Metric{
		{Label: "Ending Net Worth", Value: "2,400,000 DKK", Detail: "1,900,000 DKK real", Tone: ToneGood},
		{Label: "Horizon", Value: "30 years", Detail: "3 deficit years", Tone: ToneWarn},
	}
	out := MetricCardRow(metrics, 80)
	if out == "" {
		t.Fatal("empty row")
	}
	for _, want := range []string{"Ending Net Worth", "2,400,000 DKK", "3 deficit years"} {
		if !strings.Contains(out, want) {
			t.Errorf("row missing %q", want)
		}
	}

	if got := MetricCardRow(nil, 80); got != "" {
		t.Errorf("empty metrics = %q", got)
	}
}

func TestBarChart_SignedSeries(t *testing.T) {
	out := BarChart([]float64{100, 50, -25, -80}, []string{"0", "1", "2", "3"}, 40, 8)
	if out == "" {
		t.Fatal("empty chart")
	}
	if !strings.Contains(out, "┼") {
		t.Error("chart missing zero axis")
	}
	// Both signs must render bars.
	if !strings.Contains(out, "█") {
		t.Error("chart missing bars")
	}
}

func TestBarChart_Empty(t *testing.T) {
	if got := BarChart(nil, nil, 40, 8); got != "" {
		t.Errorf("empty input = %q", got)
	}
}

func TestChartTickStep(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{10, 2},
		{100, 20},
		{1_000_000, 200_000},
		{0, 1},
	}
	for _, tc := range cases {
		if got := chartTickStep(tc.in); got != tc.want {
			t.Errorf("chartTickStep(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestTabIdxByKey(t *testing.T) {
	if got := TabIdxByKey('y'); got != 1 {
		t.Errorf("TabIdxByKey('y') = %d, want 1", got)
	}
	if got := TabIdxByKey('z'); got != -1 {
		t.Errorf("TabIdxByKey('z') = %d, want -1", got)
	}
}
