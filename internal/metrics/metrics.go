package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jalrakshak_http_requests_total",
			Help: "Total HTTP requests by handler, method and status code",
		},
		[]string{"handler", "method", "code"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "jalrakshak_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds, including artificial inference delay",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"handler", "method"},
	)

	RiskReportsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jalrakshak_risk_reports_total",
			Help: "Total flood risk reports served by risk level",
		},
		[]string{"level"},
	)

	SatelliteWaterSpread = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "jalrakshak_satellite_water_spread_percent",
			Help:    "Water spread percentage returned by mock satellite inference",
			Buckets: []float64{10, 20, 35, 50},
		},
	)

	AudioClipsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jalrakshak_audio_clips_total",
			Help: "Total placeholder audio clips served by requested language",
		},
		[]string{"lang"},
	)

	ReportCardsRendered = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "jalrakshak_report_cards_rendered_total",
			Help: "Total share card images rendered (cache misses)",
		},
	)
)
