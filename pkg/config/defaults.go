package config

import "time"

const (
	DefaultPort     = "8080"
	DefaultLogLevel = "info"

	DefaultSheetDir     = "./sheets"
	DefaultTableBackend = BackendCSV
	DefaultDefaultStyle = "digits"
	DefaultHeaderRow    = 0

	DefaultMongoURI          = "mongodb://localhost:27017"
	DefaultMongoDatabaseName = "dialtone"
	DefaultMongoConnTimeout  = 10 * time.Second

	DefaultKafkaReportTopic = "dialtone.reports"

	DefaultRequestTimeout = 30 * time.Second
	DefaultMaxRequestSize = 1 * 1024 * 1024 // 1MB

	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second
)
