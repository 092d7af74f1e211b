package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/jalrakshak/jalrakshak/internal/dashboard"
	"github.com/jalrakshak/jalrakshak/internal/region"
	"github.com/jalrakshak/jalrakshak/internal/risk"
)

type ReportCmd struct {
	URL       string  `default:"http://localhost:8080" env:"JALRAKSHAK_URL" help:"Server base URL."`
	State     string  `help:"State name, e.g. Assam."`
	District  string  `help:"District name, e.g. Dhubri."`
	Locate    bool    `help:"Pick the nearest district from --lat/--lon instead of --state/--district."`
	Lat       float64 `help:"Latitude for --locate."`
	Lon       float64 `help:"Longitude for --locate."`
	Lang      string  `default:"en" enum:"en,hi,as,bn" help:"Alert language."`
	Satellite bool    `help:"Also run the SAR water mask."`
	Speak     bool    `help:"Print the alert as it would be spoken."`
	AudioOut  string  `name:"audio-out" type:"path" help:"Write the alert audio clip to this file."`
	JSON      bool    `name:"json" help:"Print the raw report as JSON."`
}

func (c *ReportCmd) Run(logger *zap.Logger) error {
	ctx := context.Background()
	backend := dashboard.NewHTTPBackend(c.URL)
	return c.run(ctx, backend, os.Stdout, logger)
}

func (c *ReportCmd) run(ctx context.Context, backend dashboard.Backend, out io.Writer, logger *zap.Logger) error {
	notifier := dashboard.NotifierFunc(func(n dashboard.Notification) {
		if n.Kind == dashboard.KindError {
			logger.Warn(n.Message)
			return
		}
		logger.Info(n.Message)
	})

	var locator dashboard.Locator
	if c.Locate {
		locator = dashboard.StaticLocator(region.Coordinates{Lat: c.Lat, Lng: c.Lon})
	}
	ctl := dashboard.New(backend, consoleSpeaker{out: out}, locator, notifier)

	if c.Locate {
		if err := ctl.Locate(ctx); err != nil {
			return err
		}
	} else {
		if err := ctl.SelectState(c.State); err != nil {
			return err
		}
		if err := ctl.SelectDistrict(c.District); err != nil {
			return err
		}
	}

	if err := ctl.Submit(ctx); err != nil {
		return err
	}
	if err := ctl.SetLanguage(risk.Language(c.Lang)); err != nil {
		return err
	}
	if c.Satellite {
		if err := ctl.RunSatellite(ctx); err != nil {
			return err
		}
	}

	st := ctl.Snapshot()
	if c.JSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(st.Record); err != nil {
			return err
		}
	} else {
		printReport(out, st)
	}

	if c.Speak {
		if err := ctl.TogglePlayback(); err != nil {
			return err
		}
	}

	if c.AudioOut != "" {
		clip, err := backend.GenerateAudio(ctx, ctl.AlertText(), c.Lang)
		if err != nil {
			return fmt.Errorf("generate audio: %w", err)
		}
		if err := os.WriteFile(c.AudioOut, clip, 0o644); err != nil {
			return err
		}
		logger.Info("audio written", zap.String("path", c.AudioOut), zap.Int("bytes", len(clip)))
	}
	return nil
}

func printReport(w io.Writer, st dashboard.State) {
	rec := st.Record
	fmt.Fprintf(w, "%s, %s\n", st.Selection.District, st.Selection.State)
	fmt.Fprintf(w, "Risk level:  %s (%d%% confidence)\n", strings.ToUpper(string(rec.RiskLevel)), rec.Confidence)
	fmt.Fprintf(w, "Rainfall:    %s\n", rec.Signals.Rainfall)
	fmt.Fprintf(w, "River level: %s\n", rec.Signals.RiverLevel)
	fmt.Fprintf(w, "Satellite:   %s\n", rec.Signals.SatelliteInference)
	if res := st.SatelliteResult; res != nil {
		fmt.Fprintf(w, "SAR mask:    %d%% water spread, %s (%.1f%%, %s)\n",
			res.WaterSpreadPercentage, res.Severity, res.Confidence, res.InferenceTime)
	}
	fmt.Fprintf(w, "\n[%s] %s\n", st.Language.Label(), st.AlertText)

	if recs := risk.Recommendations(rec.RiskLevel); len(recs) > 0 {
		fmt.Fprintln(w, "\nRecommended actions:")
		for _, r := range recs {
			fmt.Fprintf(w, "  - %s\n", r)
		}
	}
}

// consoleSpeaker stands in for a speech engine by printing the utterance.
type consoleSpeaker struct {
	out io.Writer
}

func (s consoleSpeaker) Speak(u dashboard.Utterance, cb dashboard.Callbacks) (dashboard.Playback, error) {
	fmt.Fprintf(s.out, "\n(speaking %s at %.1fx) %s\n", u.Lang, u.Rate, u.Text)
	if cb.OnEnd != nil {
		cb.OnEnd()
	}
	return noopPlayback{}, nil
}

type noopPlayback struct{}

func (noopPlayback) Cancel() {}
