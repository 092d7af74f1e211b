package satellite

import (
	"math/rand/v2"
	"testing"

	"github.com/jalrakshak/jalrakshak/internal/risk"
)

func TestSeverityFor(t *testing.T) {
	tests := []struct {
		spread int
		want   risk.Level
	}{
		{5, risk.LevelLow},
		{10, risk.LevelLow},
		{11, risk.LevelMedium},
		{20, risk.LevelMedium},
		{21, risk.LevelHigh},
		{35, risk.LevelHigh},
		{36, risk.LevelCritical},
		{50, risk.LevelCritical},
	}

	for _, tt := range tests {
		if got := SeverityFor(tt.spread); got != tt.want {
			t.Errorf("SeverityFor(%d) = %s, want %s", tt.spread, got, tt.want)
		}
	}
}

func TestAnalyzeStaysInRange(t *testing.T) {
	a := NewWithSource(rand.New(rand.NewPCG(1, 2)))
	seen := map[int]bool{}

	for i := 0; i < 2000; i++ {
		res := a.Analyze()
		if res.WaterSpreadPercentage < MinWaterSpread || res.WaterSpreadPercentage > MaxWaterSpread {
			t.Fatalf("water spread %d out of [%d, %d]", res.WaterSpreadPercentage, MinWaterSpread, MaxWaterSpread)
		}
		if res.Severity != SeverityFor(res.WaterSpreadPercentage) {
			t.Fatalf("severity %s does not match spread %d", res.Severity, res.WaterSpreadPercentage)
		}
		seen[res.WaterSpreadPercentage] = true
	}

	if len(seen) < 40 {
		t.Errorf("only %d distinct values in 2000 draws", len(seen))
	}
}

func TestAnalyzeConstants(t *testing.T) {
	res := New().Analyze()
	if res.Confidence != Confidence {
		t.Errorf("Confidence = %v, want %v", res.Confidence, Confidence)
	}
	if res.InferenceTime != "412ms" {
		t.Errorf("InferenceTime = %q", res.InferenceTime)
	}
	if res.MaskOverlay != MaskOverlay {
		t.Error("MaskOverlay changed")
	}
}

func TestAnalyzeBounds(t *testing.T) {
	low := &Analyzer{intN: func(int) int { return 0 }}
	if got := low.Analyze().WaterSpreadPercentage; got != 5 {
		t.Errorf("minimum draw = %d, want 5", got)
	}
	high := &Analyzer{intN: func(n int) int { return n - 1 }}
	if got := high.Analyze(); got.WaterSpreadPercentage != 49 || got.Severity != risk.LevelCritical {
		t.Errorf("maximum draw = %+v", got)
	}
}
