package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/jalrakshak/jalrakshak/internal/api"
	"github.com/jalrakshak/jalrakshak/internal/store"
)

type ServeCmd struct {
	Port           string        `default:"8080" env:"PORT,JALRAKSHAK_PORT" help:"HTTP server port."`
	DB             string        `name:"db" env:"JALRAKSHAK_DB" help:"SQLite path for the report log. Empty disables it."`
	RiskDelay      time.Duration `default:"1.5s" env:"JALRAKSHAK_RISK_DELAY" help:"Artificial flood-risk inference latency."`
	SatelliteDelay time.Duration `default:"2s" env:"JALRAKSHAK_SATELLITE_DELAY" help:"Artificial satellite inference latency."`
}

func (c *ServeCmd) Run(logger *zap.Logger) error {
	var st *store.Store
	if c.DB != "" {
		db, err := store.Open(c.DB)
		if err != nil {
			return err
		}
		defer db.Close()

		st = store.New(db, logger.Named("store"))
		if err := st.Migrate(); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		logger.Info("report log enabled", zap.String("db", c.DB))
	}

	server := api.NewServer(api.Config{
		Port:           c.Port,
		RiskDelay:      c.RiskDelay,
		SatelliteDelay: c.SatelliteDelay,
	}, st, logger.Named("api"))

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := server.Run(ctx); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	logger.Info("server stopped")
	return nil
}
