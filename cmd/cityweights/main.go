// Command cityweights converts a CSV (or .xlsx) table of cities into a JSON
// array annotated with a population weight and a smoothing radius.
//
// Usage:
//
//	cityweights <in_csv> <out_json>
//
// Optional environment: LOG_LEVEL, LOG_FORMAT, METRICS_TEXTFILE, XLSX_SHEET,
// KAFKA_BROKERS, KAFKA_TOPIC, KAFKA_TIMEOUT. A .env file in the working
// directory is read first and its use is logged at info level.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/couchcryptid/city-weights/internal/adapter/csvfile"
	"github.com/couchcryptid/city-weights/internal/adapter/jsonfile"
	kafkaadapter "github.com/couchcryptid/city-weights/internal/adapter/kafka"
	"github.com/couchcryptid/city-weights/internal/adapter/xlsx"
	"github.com/couchcryptid/city-weights/internal/config"
	"github.com/couchcryptid/city-weights/internal/observability"
	"github.com/couchcryptid/city-weights/internal/pipeline"
	"github.com/joho/godotenv"
)

const usage = "Usage: cityweights <in_csv> <out_json>"

// envFile is the optional dotenv file consulted before the environment.
var envFile = ".env"

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if len(args) != 2 {
		fmt.Fprintln(stdout, usage)
		return 1
	}
	inPath, outPath := args[0], args[1]

	envLoaded := godotenv.Load(envFile) == nil

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		return 1
	}

	logger := observability.NewLogger(stderr, cfg)
	metrics := observability.NewMetrics()
	if envLoaded {
		logger.Info("loaded environment file", "path", envFile)
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sinks := []pipeline.Sink{jsonfile.NewWriter(outPath)}
	if cfg.KafkaEnabled {
		writer := kafkaadapter.NewWriter(cfg, logger)
		defer func() {
			if err := writer.Close(); err != nil {
				logger.Error("kafka writer close error", "error", err)
			}
		}()
		sinks = append(sinks, writer)
		logger.Info("kafka publishing enabled", "topic", cfg.KafkaTopic, "brokers", cfg.KafkaBrokers)
	}

	p := pipeline.New(newExtractor(inPath, cfg), pipeline.NewTransformer(logger), logger, metrics, sinks...)
	_, runErr := p.Run(ctx)

	if cfg.MetricsTextfile != "" {
		if err := metrics.WriteTextfile(cfg.MetricsTextfile); err != nil {
			logger.Error("metrics textfile error", "path", cfg.MetricsTextfile, "error", err)
		}
	}

	if runErr != nil {
		logger.Error("conversion failed", "input", inPath, "output", outPath, "error", runErr)
		return 1
	}
	return 0
}

// newExtractor picks the reader by file extension.
func newExtractor(path string, cfg *config.Config) pipeline.Extractor {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return xlsx.NewReader(path, cfg.XLSXSheet)
	}
	return csvfile.NewReader(path)
}
