package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/jalrakshak/jalrakshak/internal/api"
	"github.com/jalrakshak/jalrakshak/internal/httputil"
)

type HealthcheckCmd struct {
	URL     string        `default:"http://localhost:8080" env:"JALRAKSHAK_URL" help:"Server base URL."`
	Timeout time.Duration `default:"30s" help:"Give up after this long."`
}

func (c *HealthcheckCmd) Run(logger *zap.Logger) error {
	ctx, cancel := context.WithTimeout(context.Background(), c.Timeout)
	defer cancel()

	health, err := probeHealth(ctx, httputil.NewClient(), c.URL, logger)
	if err != nil {
		return err
	}
	fmt.Printf("%s (uptime %.0fs, report log %t)\n", health.Status, health.UptimeSeconds, health.ReportStore)
	return nil
}

// probeHealth polls baseURL/health with exponential backoff until it
// returns 200 "ok" or ctx is done.
func probeHealth(ctx context.Context, client *http.Client, baseURL string, logger *zap.Logger) (api.HealthStatus, error) {
	var health api.HealthStatus

	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+"/health", nil)
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("User-Agent", httputil.UserAgent)

		resp, err := client.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("health: status %d", resp.StatusCode)
		}
		if err := json.NewDecoder(resp.Body).Decode(&health); err != nil {
			return backoff.Permanent(fmt.Errorf("decode health: %w", err))
		}
		if health.Status != "ok" {
			return fmt.Errorf("health: status %q", health.Status)
		}
		return nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 200 * time.Millisecond
	bo.MaxElapsedTime = 0
	notify := func(err error, next time.Duration) {
		logger.Debug("healthcheck: retrying", zap.Error(err), zap.Duration("next", next))
	}
	if err := backoff.RetryNotify(operation, backoff.WithContext(bo, ctx), notify); err != nil {
		return api.HealthStatus{}, fmt.Errorf("healthcheck %s: %w", baseURL, err)
	}
	return health, nil
}
