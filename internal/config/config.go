package config

import (
	"errors"
	"os"
	"strings"
	"time"

	sharedcfg "github.com/couchcryptid/storm-data-shared/config"
)

// Config holds the optional run settings, populated from environment variables.
// The zero environment yields a plain CSV-to-JSON conversion.
type Config struct {
	LogLevel  string
	LogFormat string

	// MetricsTextfile is the path of a Prometheus textfile written after each run.
	MetricsTextfile string

	// XLSXSheet selects the worksheet for .xlsx input. Empty means the first sheet.
	XLSXSheet string

	// Kafka publishing of the annotated entries.
	KafkaBrokers []string
	KafkaTopic   string
	KafkaTimeout time.Duration
	KafkaEnabled bool
}

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	kafkaTimeout, err := time.ParseDuration(sharedcfg.EnvOrDefault("KAFKA_TIMEOUT", "10s"))
	if err != nil || kafkaTimeout <= 0 {
		return nil, errors.New("invalid KAFKA_TIMEOUT")
	}

	var brokers []string
	if v := strings.TrimSpace(os.Getenv("KAFKA_BROKERS")); v != "" {
		brokers = sharedcfg.ParseBrokers(v)
		if len(brokers) == 0 {
			return nil, errors.New("invalid KAFKA_BROKERS: no broker addresses")
		}
	}

	cfg := &Config{
		LogLevel:        sharedcfg.EnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:       sharedcfg.EnvOrDefault("LOG_FORMAT", "text"),
		MetricsTextfile: os.Getenv("METRICS_TEXTFILE"),
		XLSXSheet:       os.Getenv("XLSX_SHEET"),
		KafkaBrokers:    brokers,
		KafkaTopic:      sharedcfg.EnvOrDefault("KAFKA_TOPIC", "city-weights"),
		KafkaTimeout:    kafkaTimeout,
		KafkaEnabled:    len(brokers) > 0,
	}

	switch strings.ToLower(cfg.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return nil, errors.New("invalid LOG_LEVEL: must be debug, info, warn or error")
	}
	switch strings.ToLower(cfg.LogFormat) {
	case "json", "text":
	default:
		return nil, errors.New("invalid LOG_FORMAT: must be json or text")
	}

	return cfg, nil
}
