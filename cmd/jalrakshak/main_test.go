package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/jalrakshak/jalrakshak/internal/api"
	"github.com/jalrakshak/jalrakshak/internal/audio"
	"github.com/jalrakshak/jalrakshak/internal/dashboard"
	"github.com/jalrakshak/jalrakshak/internal/risk"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(api.NewServer(api.Config{}, nil, nil).Handler())
	t.Cleanup(ts.Close)
	return ts
}

func TestReportCommand(t *testing.T) {
	ts := newTestServer(t)
	audioPath := filepath.Join(t.TempDir(), "alert.wav")

	cmd := &ReportCmd{
		State:     "Assam",
		District:  "Dhubri",
		Lang:      "hi",
		Satellite: true,
		Speak:     true,
		AudioOut:  audioPath,
	}
	var out bytes.Buffer
	if err := cmd.run(context.Background(), dashboard.NewHTTPBackend(ts.URL), &out, zap.NewNop()); err != nil {
		t.Fatalf("run: %v", err)
	}

	rec, _ := risk.RecordFor(risk.LevelCritical)
	text := out.String()
	for _, want := range []string{
		"Dhubri, Assam",
		"Risk level:  CRITICAL (96% confidence)",
		"SAR mask:",
		rec.Alerts.Hi,
		"(speaking hi-IN at 0.9x)",
		"Recommended actions:",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("expected %q in output:\n%s", want, text)
		}
	}

	clip, err := os.ReadFile(audioPath)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(clip, audio.Silent()) {
		t.Error("expected the placeholder clip")
	}
}

func TestReportCommandLocate(t *testing.T) {
	ts := newTestServer(t)

	cmd := &ReportCmd{Locate: true, Lat: 12.97, Lon: 77.59, Lang: "en", JSON: true}
	var out bytes.Buffer
	if err := cmd.run(context.Background(), dashboard.NewHTTPBackend(ts.URL), &out, zap.NewNop()); err != nil {
		t.Fatalf("run: %v", err)
	}

	var got risk.Record
	if err := json.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v\n%s", err, out.String())
	}
	if got.RiskLevel != risk.LevelCritical {
		t.Errorf("any position maps to Dhubri, Assam; got %s", got.RiskLevel)
	}
}

func TestReportCommandUnknownDistrict(t *testing.T) {
	ts := newTestServer(t)

	cmd := &ReportCmd{State: "Assam", District: "Aizawl", Lang: "en"}
	err := cmd.run(context.Background(), dashboard.NewHTTPBackend(ts.URL), &bytes.Buffer{}, zap.NewNop())
	if err == nil {
		t.Fatal("expected error for district outside state")
	}
}

func TestReportCommandServerDown(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer ts.Close()

	cmd := &ReportCmd{State: "Assam", District: "Dhubri", Lang: "en"}
	err := cmd.run(context.Background(), dashboard.NewHTTPBackend(ts.URL), &bytes.Buffer{}, zap.NewNop())
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestProbeHealth(t *testing.T) {
	fails := 2
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if fails > 0 {
			fails--
			http.Error(w, "starting", http.StatusServiceUnavailable)
			return
		}
		json.NewEncoder(w).Encode(api.HealthStatus{Status: "ok"})
	}))
	defer ts.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	health, err := probeHealth(ctx, ts.Client(), ts.URL, zap.NewNop())
	if err != nil {
		t.Fatalf("probeHealth: %v", err)
	}
	if health.Status != "ok" {
		t.Errorf("status = %q", health.Status)
	}
}

func TestProbeHealthGivesUp(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	defer ts.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()

	if _, err := probeHealth(ctx, ts.Client(), ts.URL, zap.NewNop()); err == nil {
		t.Fatal("expected error once the context expires")
	}
}

func TestNewLogger(t *testing.T) {
	if _, err := newLogger("debug", "console"); err != nil {
		t.Errorf("console logger: %v", err)
	}
	if _, err := newLogger("loud", "json"); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestConsoleSpeakerEndsPlayback(t *testing.T) {
	ts := newTestServer(t)
	var out bytes.Buffer
	ctl := dashboard.New(dashboard.NewHTTPBackend(ts.URL), consoleSpeaker{out: &out}, nil, nil)
	if err := ctl.SelectState("Assam"); err != nil {
		t.Fatal(err)
	}
	if err := ctl.SelectDistrict("Dhubri"); err != nil {
		t.Fatal(err)
	}
	if err := ctl.Submit(context.Background()); err != nil {
		t.Fatal(err)
	}

	if err := ctl.TogglePlayback(); err != nil {
		t.Fatalf("TogglePlayback: %v", err)
	}
	if ctl.Playing() {
		t.Error("playback should end once the utterance is printed")
	}
	if !strings.Contains(out.String(), "(speaking en-IN at 0.9x)") {
		t.Errorf("unexpected output %q", out.String())
	}
}
