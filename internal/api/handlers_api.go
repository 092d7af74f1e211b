package api

import (
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/jalrakshak/jalrakshak/internal/audio"
	"github.com/jalrakshak/jalrakshak/internal/metrics"
	"github.com/jalrakshak/jalrakshak/internal/models"
	"github.com/jalrakshak/jalrakshak/internal/region"
	"github.com/jalrakshak/jalrakshak/internal/risk"
)

const (
	maxJSONBody      = 1 << 20
	maxMultipartBody = 32 << 20
)

type floodRiskRequest struct {
	State    string `json:"state"`
	District string `json:"district"`
}

// decodeJSON reads exactly one JSON value from the body. Anything but
// whitespace after it is an error.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxJSONBody))
	if err := dec.Decode(v); err != nil {
		return err
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return errors.New("unexpected data after JSON body")
	}
	return nil
}

// handleFloodRisk returns the static record for the location's bucket.
func (s *Server) handleFloodRisk(w http.ResponseWriter, r *http.Request) {
	var req floodRiskRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.log.Debug("flood-risk: bad request", zap.Error(err))
		writeError(w, http.StatusBadRequest, "Failed to fetch flood risk")
		return
	}

	rec := risk.Lookup(req.State, req.District)

	if err := wait(r.Context(), s.cfg.RiskDelay); err != nil {
		return
	}

	metrics.RiskReportsTotal.WithLabelValues(string(rec.RiskLevel)).Inc()
	s.logReport(req, rec)

	writeJSON(w, http.StatusOK, rec)
}

func (s *Server) logReport(req floodRiskRequest, rec risk.Record) {
	if s.store == nil {
		return
	}
	_, err := s.store.InsertReport(models.Report{
		State:      req.State,
		District:   req.District,
		RiskLevel:  string(rec.RiskLevel),
		Confidence: rec.Confidence,
		CreatedAt:  time.Now(),
	})
	if err != nil {
		s.log.Warn("record report", zap.Error(err))
	}
}

// handleAnalyzeSatellite returns a fresh mock water-mask result. Uploaded
// imagery is parsed and discarded.
func (s *Server) handleAnalyzeSatellite(w http.ResponseWriter, r *http.Request) {
	if mt, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type")); mt == "multipart/form-data" {
		r.Body = http.MaxBytesReader(w, r.Body, maxMultipartBody)
		if err := r.ParseMultipartForm(maxMultipartBody); err != nil {
			s.log.Debug("analyze-satellite: bad form", zap.Error(err))
			writeError(w, http.StatusInternalServerError, "Failed to analyze satellite imagery")
			return
		}
		defer r.MultipartForm.RemoveAll()
	}

	s.analyzeMu.Lock()
	res := s.analyzer.Analyze()
	s.analyzeMu.Unlock()

	if err := wait(r.Context(), s.cfg.SatelliteDelay); err != nil {
		return
	}

	metrics.SatelliteWaterSpread.Observe(float64(res.WaterSpreadPercentage))
	if s.store != nil {
		if _, err := s.store.InsertSatelliteRun(models.SatelliteRun{
			WaterSpreadPct: res.WaterSpreadPercentage,
			Severity:       string(res.Severity),
			CreatedAt:      time.Now(),
		}); err != nil {
			s.log.Warn("record satellite run", zap.Error(err))
		}
	}

	writeJSON(w, http.StatusOK, res)
}

// handleGenerateAudio returns the fixed silent clip.
func (s *Server) handleGenerateAudio(w http.ResponseWriter, r *http.Request) {
	var req audio.Request
	if err := decodeJSON(w, r, &req); err != nil {
		s.log.Debug("generate-audio: bad request", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to generate audio")
		return
	}

	clip := audio.Generate(req)

	lang := risk.Language(clip.Lang)
	if !lang.Valid() {
		lang = "other"
	}
	metrics.AudioClipsTotal.WithLabelValues(string(lang)).Inc()

	w.Header().Set("Content-Type", audio.ContentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(clip.Data)))
	w.Header().Set("X-Alert-Text", audio.HeaderValue(clip.AlertText))
	w.Header().Set("X-Lang", audio.HeaderValue(clip.Lang))
	w.Write(clip.Data)
}

func (s *Server) handleStates(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{"states": region.States()})
}

func (s *Server) handleDistricts(w http.ResponseWriter, r *http.Request) {
	districts, ok := region.Districts(r.PathValue("state"))
	if !ok {
		writeError(w, http.StatusNotFound, "State not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string][]string{"districts": districts})
}

func (s *Server) handleRecommendations(w http.ResponseWriter, r *http.Request) {
	level, ok := risk.ParseLevel(r.PathValue("level"))
	if !ok {
		writeError(w, http.StatusNotFound, "Risk level not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"riskLevel":       level,
		"recommendations": risk.Recommendations(level),
	})
}

func (s *Server) handleReports(w http.ResponseWriter, r *http.Request) {
	limit := 20
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 200 {
			writeError(w, http.StatusBadRequest, "limit must be between 1 and 200")
			return
		}
		limit = n
	}

	reports, err := s.store.RecentReports(limit)
	if err != nil {
		s.log.Error("recent reports", zap.Error(err))
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	counts, err := s.store.ReportCounts()
	if err != nil {
		s.log.Error("report counts", zap.Error(err))
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	runs, err := s.store.RecentSatelliteRuns(limit)
	if err != nil {
		s.log.Error("recent satellite runs", zap.Error(err))
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"reports":       reports,
		"counts":        counts,
		"satelliteRuns": runs,
	})
}
