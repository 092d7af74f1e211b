package risk

import (
	"strings"
	"unicode/utf16"
)

// Level is one of the four fixed risk buckets.
type Level string

const (
	LevelLow      Level = "Low"
	LevelMedium   Level = "Medium"
	LevelHigh     Level = "High"
	LevelCritical Level = "Critical"
)

// Buckets is the classification order; index = seed mod len(Buckets).
var Buckets = []Level{LevelLow, LevelMedium, LevelHigh, LevelCritical}

// ParseLevel accepts a level name in any case.
func ParseLevel(s string) (Level, bool) {
	for _, l := range Buckets {
		if strings.EqualFold(string(l), s) {
			return l, true
		}
	}
	return "", false
}

// Severity returns a numeric severity for sorting (higher = more dangerous)
func (l Level) Severity() int {
	switch l {
	case LevelCritical:
		return 3
	case LevelHigh:
		return 2
	case LevelMedium:
		return 1
	default:
		return 0
	}
}

// CSSClass returns the CSS class for styling
func (l Level) CSSClass() string {
	switch l {
	case LevelCritical:
		return "risk-critical"
	case LevelHigh:
		return "risk-high"
	case LevelMedium:
		return "risk-medium"
	default:
		return "risk-low"
	}
}

// Signals are the three display strings shown alongside a report.
type Signals struct {
	Rainfall           string `json:"rainfall"`
	RiverLevel         string `json:"riverLevel"`
	SatelliteInference string `json:"satelliteInference"`
}

// Alerts holds the alert sentence in each supported language.
type Alerts struct {
	En string `json:"en"`
	Hi string `json:"hi"`
	As string `json:"as"`
	Bn string `json:"bn"`
}

// Text returns the alert for lang, falling back to English.
func (a Alerts) Text(lang Language) string {
	switch lang {
	case LangHindi:
		return a.Hi
	case LangAssamese:
		return a.As
	case LangBengali:
		return a.Bn
	default:
		return a.En
	}
}

// Record is a static flood-risk report. There is exactly one per Level.
type Record struct {
	RiskLevel  Level   `json:"riskLevel"`
	Confidence int     `json:"confidence"`
	Signals    Signals `json:"signals"`
	Alerts     Alerts  `json:"alerts"`
}

// Seed is the mock inference input: the combined length of both names,
// counted in UTF-16 code units.
func Seed(state, district string) int {
	return utf16Len(state) + utf16Len(district)
}

// Classify picks the bucket for a location. This is a stub, not a model:
// the result depends only on the name lengths.
func Classify(state, district string) Level {
	return Buckets[Seed(state, district)%len(Buckets)]
}

// Lookup is Classify followed by RecordFor.
func Lookup(state, district string) Record {
	rec, _ := RecordFor(Classify(state, district))
	return rec
}

// RecordFor returns the static record for a level.
func RecordFor(l Level) (Record, bool) {
	rec, ok := records[l]
	return rec, ok
}

// Records returns all four records keyed by level.
func Records() map[Level]Record {
	out := make(map[Level]Record, len(records))
	for k, v := range records {
		out[k] = v
	}
	return out
}

func utf16Len(s string) int {
	n := 0
	for _, r := range s {
		n += utf16.RuneLen(r)
	}
	return n
}
