package config

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"dialtone/pkg/client"
	"dialtone/pkg/logger"
)

const (
	BackendCSV   = "csv"
	BackendMongo = "mongo"
)

type Config struct {
	Port     string
	LogLevel string

	SheetDir     string
	TableBackend string
	DefaultStyle string
	HeaderRow    int

	MongoURI          string
	MongoDatabaseName string
	MongoConnTimeout  time.Duration

	KafkaBrokers     []string
	KafkaReportTopic string

	RequestTimeout time.Duration
	MaxRequestSize int

	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration

	Log   *logger.Logger
	Mongo *client.MongoClient
}

func Load(serviceName string) *Config {
	cfg := &Config{
		Port:     getEnvStr(EnvPort, DefaultPort),
		LogLevel: getEnvStr(EnvLogLevel, DefaultLogLevel),

		SheetDir:     getEnvStr(EnvSheetDir, DefaultSheetDir),
		TableBackend: getEnvStr(EnvTableBackend, DefaultTableBackend),
		DefaultStyle: getEnvStr(EnvDefaultStyle, DefaultDefaultStyle),
		HeaderRow:    getEnvNum(EnvHeaderRow, DefaultHeaderRow),

		MongoURI:          getEnvStr(EnvMongoURI, DefaultMongoURI),
		MongoDatabaseName: getEnvStr(EnvMongoDatabaseName, DefaultMongoDatabaseName),
		MongoConnTimeout:  getEnvDuration(EnvMongoConnTimeout, DefaultMongoConnTimeout),

		KafkaBrokers:     getEnvList(EnvKafkaBrokers, nil),
		KafkaReportTopic: getEnvStr(EnvKafkaReportTopic, DefaultKafkaReportTopic),

		RequestTimeout: getEnvDuration(EnvRequestTimeout, DefaultRequestTimeout),
		MaxRequestSize: getEnvNum(EnvMaxRequestSize, DefaultMaxRequestSize),

		ReadTimeout:     getEnvDuration(EnvReadTimeout, DefaultReadTimeout),
		WriteTimeout:    getEnvDuration(EnvWriteTimeout, DefaultWriteTimeout),
		IdleTimeout:     getEnvDuration(EnvIdleTimeout, DefaultIdleTimeout),
		ShutdownTimeout: getEnvDuration(EnvShutdownTimeout, DefaultShutdownTimeout),
	}

	cfg.Log = logger.New(logger.Config{
		Level:     cfg.LogLevel,
		Format:    logger.JSON,
		AddSource: true,
		Service:   serviceName,
	})

	if err := cfg.Validate(); err != nil {
		cfg.Log.Fatal(err.Error())
	}
	cfg.LogConfiguration()
	return cfg
}

// SetMongo connects the shared Mongo client. Only called when the table
// backend (or readiness probing) actually needs it.
func (cfg *Config) SetMongo() {
	cfg.Mongo = client.NewMongoClient(cfg.Log, cfg.MongoURI, cfg.MongoConnTimeout)
}

func (cfg *Config) Validate() error {
	var errs []string

	if port, err := strconv.Atoi(cfg.Port); err != nil || port < 1 || port > 65535 {
		errs = append(errs, fmt.Sprintf("Port must be between 1 and 65535, got: %s", cfg.Port))
	}

	if cfg.TableBackend != BackendCSV && cfg.TableBackend != BackendMongo {
		errs = append(errs, fmt.Sprintf("TableBackend must be %q or %q, got: %s", BackendCSV, BackendMongo, cfg.TableBackend))
	}

	if cfg.HeaderRow < 0 {
		errs = append(errs, fmt.Sprintf("HeaderRow cannot be negative, got: %d", cfg.HeaderRow))
	}

	if cfg.TableBackend == BackendMongo {
		if !regexp.MustCompile(`^mongodb(\+srv)?://`).MatchString(cfg.MongoURI) {
			errs = append(errs, fmt.Sprintf("MongoURI must start with 'mongodb://' or 'mongodb+srv://', got: %s", cfg.MongoURI))
		}
		if cfg.MongoDatabaseName == "" {
			errs = append(errs, "MongoDatabaseName cannot be empty")
		}
		if cfg.MongoConnTimeout <= 0 {
			errs = append(errs, fmt.Sprintf("MongoConnTimeout must be positive, got: %s", cfg.MongoConnTimeout))
		}
	}

	if len(cfg.KafkaBrokers) > 0 && cfg.KafkaReportTopic == "" {
		errs = append(errs, "KafkaReportTopic cannot be empty when brokers are configured")
	}

	if cfg.RequestTimeout <= 0 {
		errs = append(errs, fmt.Sprintf("RequestTimeout must be positive, got: %s", cfg.RequestTimeout))
	}
	if cfg.MaxRequestSize <= 0 {
		errs = append(errs, fmt.Sprintf("MaxRequestSize must be positive, got: %d", cfg.MaxRequestSize))
	}
	if cfg.ReadTimeout <= 0 {
		errs = append(errs, fmt.Sprintf("ReadTimeout must be positive, got: %s", cfg.ReadTimeout))
	}
	if cfg.WriteTimeout <= 0 {
		errs = append(errs, fmt.Sprintf("WriteTimeout must be positive, got: %s", cfg.WriteTimeout))
	}
	if cfg.IdleTimeout <= 0 {
		errs = append(errs, fmt.Sprintf("IdleTimeout must be positive, got: %s", cfg.IdleTimeout))
	}
	if cfg.ShutdownTimeout <= 0 {
		errs = append(errs, fmt.Sprintf("ShutdownTimeout must be positive, got: %s", cfg.ShutdownTimeout))
	}

	if len(errs) > 0 {
		msg := "Configuration validation failed:\n"
		for i, e := range errs {
			msg += fmt.Sprintf("  %d. %s\n", i+1, e)
		}
		return fmt.Errorf("%s", msg)
	}

	return nil
}

func (cfg *Config) LogConfiguration() {
	cfg.Log.Info("Configuration loaded successfully",
		"port", cfg.Port,
		"table_backend", cfg.TableBackend,
		"sheet_dir", cfg.SheetDir,
		"default_style", cfg.DefaultStyle,
		"header_row", cfg.HeaderRow,
		"mongo_database", cfg.MongoDatabaseName,
		"kafka_brokers", len(cfg.KafkaBrokers),
		"request_timeout", cfg.RequestTimeout,
	)
}

func getEnvStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvNum(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

func getEnvList(key string, fallback []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}

	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
