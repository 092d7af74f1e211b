package risk

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/jalrakshak/jalrakshak/internal/region"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		state    string
		district string
		want     Level
	}{
		{"Assam", "Dhubri", LevelCritical}, // 5+6 = 11, 11 mod 4 = 3
		{"Assam", "Silchar", LevelLow},     // 12
		{"Sikkim", "Namchi", LevelLow},     // 12
		{"Sikkim", "Mangan", LevelLow},     // 12
		{"Mizoram", "Aizawl", LevelMedium}, // 13
		{"Tripura", "Udaipur", LevelHigh},  // 14
		{"", "", LevelLow},
		{"", "abc", LevelCritical},
	}

	for _, tt := range tests {
		if got := Classify(tt.state, tt.district); got != tt.want {
			t.Errorf("Classify(%q, %q) = %s, want %s", tt.state, tt.district, got, tt.want)
		}
	}
}

func TestClassifyIsDeterministic(t *testing.T) {
	for _, s := range region.States() {
		districts, _ := region.Districts(s)
		for _, d := range districts {
			first := Classify(s, d)
			for i := 0; i < 5; i++ {
				if got := Classify(s, d); got != first {
					t.Fatalf("Classify(%q, %q) changed from %s to %s", s, d, first, got)
				}
			}
			if want := Buckets[(len(s)+len(d))%4]; first != want {
				t.Errorf("Classify(%q, %q) = %s, want %s", s, d, first, want)
			}
		}
	}
}

func TestSeedCountsUTF16Units(t *testing.T) {
	if got := Seed("অসম", ""); got != 3 {
		t.Errorf("Seed(Bengali script) = %d, want 3", got)
	}
	// U+1F30A is outside the BMP and takes a surrogate pair.
	if got := Seed("🌊", "x"); got != 3 {
		t.Errorf("Seed(emoji) = %d, want 3", got)
	}
}

func TestRecordsAreComplete(t *testing.T) {
	all := Records()
	if len(all) != 4 {
		t.Fatalf("len(Records()) = %d, want 4", len(all))
	}
	for _, l := range Buckets {
		rec, ok := RecordFor(l)
		if !ok {
			t.Fatalf("no record for %s", l)
		}
		if rec.RiskLevel != l {
			t.Errorf("record for %s has RiskLevel %s", l, rec.RiskLevel)
		}
		if rec.Confidence < 0 || rec.Confidence > 100 {
			t.Errorf("%s confidence %d out of range", l, rec.Confidence)
		}
		for _, lang := range Languages {
			if rec.Alerts.Text(lang) == "" {
				t.Errorf("%s has no %s alert", l, lang)
			}
		}
		if len(Recommendations(l)) == 0 {
			t.Errorf("%s has no recommendations", l)
		}
	}
}

func TestRecordJSONFieldNames(t *testing.T) {
	b, err := json.Marshal(Lookup("Assam", "Dhubri"))
	if err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{`"riskLevel":"Critical"`, `"confidence":96`, `"riverLevel"`, `"satelliteInference"`, `"as":`, `"bn":`} {
		if !strings.Contains(string(b), key) {
			t.Errorf("expected %s in %s", key, b)
		}
	}
}

func TestLevel_Severity(t *testing.T) {
	for i := 1; i < len(Buckets); i++ {
		if Buckets[i].Severity() <= Buckets[i-1].Severity() {
			t.Errorf("%s should be more severe than %s", Buckets[i], Buckets[i-1])
		}
	}
}

func TestParseLevel(t *testing.T) {
	if l, ok := ParseLevel("critical"); !ok || l != LevelCritical {
		t.Errorf("ParseLevel(critical) = %q, %v", l, ok)
	}
	if _, ok := ParseLevel("Severe"); ok {
		t.Error("ParseLevel(Severe) should fail")
	}
}

func TestVoiceTags(t *testing.T) {
	want := map[Language]string{
		LangEnglish:  "en-IN",
		LangHindi:    "hi-IN",
		LangBengali:  "bn-IN",
		LangAssamese: "bn-IN",
	}
	for lang, tag := range want {
		if got := lang.VoiceTag(); got != tag {
			t.Errorf("%s.VoiceTag() = %s, want %s", lang, got, tag)
		}
	}
	if got := Language("fr").VoiceTag(); got != "en-US" {
		t.Errorf("unknown language VoiceTag() = %s, want en-US", got)
	}
}

func TestAlertsTextFallsBackToEnglish(t *testing.T) {
	rec, _ := RecordFor(LevelLow)
	if got := rec.Alerts.Text("fr"); got != rec.Alerts.En {
		t.Errorf("Text(fr) = %q, want English alert", got)
	}
}
