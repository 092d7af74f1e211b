package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	kongdotenv "github.com/titusjaka/kong-dotenv-go"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type CLI struct {
	EnvFile   kongdotenv.ENVFileConfig `kong:"optional,name=env-file,default='.env',help='Path to .env file'"`
	LogLevel  string                   `name:"log-level" default:"info" enum:"debug,info,warn,error" env:"JALRAKSHAK_LOG_LEVEL" help:"Log level."`
	LogFormat string                   `name:"log-format" default:"json" enum:"json,console" env:"JALRAKSHAK_LOG_FORMAT" help:"Log encoding."`

	Serve       ServeCmd       `cmd:"" default:"withargs" help:"Run the web server."`
	Report      ReportCmd      `cmd:"" help:"Fetch a flood risk report from a running server."`
	Healthcheck HealthcheckCmd `cmd:"" help:"Probe /health until it answers or the timeout expires."`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("jalrakshak"),
		kong.Description("Flood risk reports and voice alerts for North-East India (demo, simulated data)."),
		kong.UsageOnError(),
	)

	logger, err := newLogger(cli.LogLevel, cli.LogFormat)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	ctx.FatalIfErrorf(ctx.Run(logger))
}

func newLogger(level, format string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(lvl)
	if format == "console" {
		config.Encoding = "console"
		config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}
	return config.Build()
}
