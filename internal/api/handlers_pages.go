package api

import (
	"bytes"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/jalrakshak/jalrakshak/internal/region"
	"github.com/jalrakshak/jalrakshak/internal/risk"
)

// IndexData is the data rendered into the single page.
type IndexData struct {
	States    []string
	Languages []LanguageTab
	Levels    []risk.Level
	Config    PageConfig
}

// LanguageTab is one alert language tab.
type LanguageTab struct {
	Code  risk.Language
	Label string
}

// PageConfig is handed to the page script as JSON.
type PageConfig struct {
	Districts       map[string][]string      `json:"districts"`
	Voices          map[risk.Language]string `json:"voices"`
	Recommendations map[risk.Level][]string  `json:"recommendations"`
	SpeechRate      float64                  `json:"speechRate"`
	DefaultLanguage risk.Language            `json:"defaultLanguage"`
	DefaultLocation region.Location          `json:"defaultLocation"`
	LocateTimeoutMS int64                    `json:"locateTimeoutMs"`
	ToastMS         int64                    `json:"toastMs"`
}

func (s *Server) indexData() IndexData {
	tabs := make([]LanguageTab, 0, len(risk.Languages))
	for _, l := range risk.Languages {
		tabs = append(tabs, LanguageTab{Code: l, Label: l.Label()})
	}
	recs := make(map[risk.Level][]string, len(risk.Buckets))
	for _, l := range risk.Buckets {
		recs[l] = risk.Recommendations(l)
	}
	return IndexData{
		States:    region.States(),
		Languages: tabs,
		Levels:    risk.Buckets,
		Config: PageConfig{
			Districts:       region.Table(),
			Voices:          risk.VoiceTags(),
			Recommendations: recs,
			SpeechRate:      risk.SpeechRate,
			DefaultLanguage: risk.DefaultLanguage,
			DefaultLocation: region.Default,
			LocateTimeoutMS: (10 * time.Second).Milliseconds(),
			ToastMS:         (4 * time.Second).Milliseconds(),
		},
	}
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := s.tmpl.ExecuteTemplate(&buf, "index.html", s.indexData()); err != nil {
		s.log.Error("render index", zap.Error(err))
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}

// HealthStatus is the /health response.
type HealthStatus struct {
	Status           string  `json:"status"`
	UptimeSeconds    float64 `json:"uptimeSeconds"`
	ReportStore      bool    `json:"reportStore"`
	MigrationVersion int     `json:"migrationVersion,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	health := HealthStatus{
		Status:        "ok",
		UptimeSeconds: time.Since(s.started).Seconds(),
		ReportStore:   s.store != nil,
	}

	if s.store != nil {
		version, err := s.store.MigrationVersion()
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, map[string]string{"status": "error", "error": err.Error()})
			return
		}
		health.MigrationVersion = version
	}

	writeJSON(w, http.StatusOK, health)
}
