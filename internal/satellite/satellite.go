// Package satellite is a stand-in for SAR water-mask inference. No imagery
// is processed: the water spread is a uniform random draw.
package satellite

import (
	"math/rand/v2"

	"github.com/jalrakshak/jalrakshak/internal/risk"
)

const (
	MinWaterSpread = 5
	MaxWaterSpread = 50

	// Confidence and InferenceTime are fixed display values.
	Confidence    = 92.4
	InferenceTime = "412ms"

	// MaskOverlay is a 1x1 transparent PNG.
	MaskOverlay = "data:image/png;base64,iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mNkYPhfDwAChwGA6ie6hQAAAABJRU5ErkJggg=="
)

// spreadRange is the width of the draw; results fall in [5, 50).
const spreadRange = 45

// Result is the response of one mock inference run.
type Result struct {
	WaterSpreadPercentage int        `json:"waterSpreadPercentage"`
	Severity              risk.Level `json:"severity"`
	Confidence            float64    `json:"confidence"`
	InferenceTime         string     `json:"inferenceTime"`
	MaskOverlay           string     `json:"maskOverlay"`
}

// Analyzer produces mock results. The zero value is not usable; use New.
type Analyzer struct {
	intN func(n int) int
}

// New returns an analyzer drawing from the global unseeded source.
func New() *Analyzer {
	return &Analyzer{intN: rand.IntN}
}

// NewWithSource returns an analyzer drawing from src, for reproducible runs.
// A *rand.Rand is not safe for concurrent use; callers sharing one must
// serialize access.
func NewWithSource(src *rand.Rand) *Analyzer {
	return &Analyzer{intN: src.IntN}
}

// Analyze draws a fresh result.
func (a *Analyzer) Analyze() Result {
	spread := MinWaterSpread + a.intN(spreadRange)
	return Result{
		WaterSpreadPercentage: spread,
		Severity:              SeverityFor(spread),
		Confidence:            Confidence,
		InferenceTime:         InferenceTime,
		MaskOverlay:           MaskOverlay,
	}
}

// SeverityFor buckets a water spread percentage.
func SeverityFor(spread int) risk.Level {
	switch {
	case spread > 35:
		return risk.LevelCritical
	case spread > 20:
		return risk.LevelHigh
	case spread > 10:
		return risk.LevelMedium
	default:
		return risk.LevelLow
	}
}
