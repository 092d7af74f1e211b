package models

import "time"

// Report is one served flood risk report, as logged by the report store.
type Report struct {
	ID         int64     `json:"id"`
	State      string    `json:"state"`
	District   string    `json:"district"`
	RiskLevel  string    `json:"riskLevel"`
	Confidence int       `json:"confidence"`
	CreatedAt  time.Time `json:"createdAt"`
}

// SatelliteRun is one mock satellite inference result.
type SatelliteRun struct {
	ID             int64     `json:"id"`
	WaterSpreadPct int       `json:"waterSpreadPercentage"`
	Severity       string    `json:"severity"`
	CreatedAt      time.Time `json:"createdAt"`
}

// LevelCount is the number of reports served at one risk level.
type LevelCount struct {
	RiskLevel string `json:"riskLevel"`
	Count     int    `json:"count"`
}
