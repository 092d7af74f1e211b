package api

import (
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/jalrakshak/jalrakshak/internal/imagegen"
	"github.com/jalrakshak/jalrakshak/internal/metrics"
	"github.com/jalrakshak/jalrakshak/internal/region"
	"github.com/jalrakshak/jalrakshak/internal/risk"
)

// handleReportCard serves a PNG share card for ?state=&district=.
// Unknown locations still get a card; only the label is omitted.
func (s *Server) handleReportCard(w http.ResponseWriter, r *http.Request) {
	state := r.URL.Query().Get("state")
	district := r.URL.Query().Get("district")
	rec := risk.Lookup(state, district)

	label := ""
	if region.Contains(state, district) {
		label = district + ", " + state
	}
	key := string(rec.RiskLevel) + "|" + label

	card, ok := s.cardCache.Get(key)
	if !ok {
		var err error
		card, err = imagegen.GenerateCard(imagegen.CardData{
			Level:      rec.RiskLevel,
			Confidence: rec.Confidence,
			Location:   label,
			Rainfall:   rec.Signals.Rainfall,
			RiverLevel: rec.Signals.RiverLevel,
		})
		if err != nil {
			s.log.Error("report-card: failed to generate", zap.Error(err))
			http.Error(w, "Failed to generate report card", http.StatusInternalServerError)
			return
		}
		metrics.ReportCardsRendered.Inc()
		s.cardCache.Set(key, card)
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(card)))
	w.Header().Set("Cache-Control", "public, max-age=600")
	w.Write(card)
}
