package config

const (
	EnvPort     = "PORT"
	EnvLogLevel = "LOG_LEVEL"

	EnvSheetDir     = "SHEET_DIR"
	EnvTableBackend = "TABLE_BACKEND"
	EnvDefaultStyle = "DEFAULT_STYLE"
	EnvHeaderRow    = "HEADER_ROW"

	EnvMongoURI          = "MONGO_URI"
	EnvMongoDatabaseName = "MONGO_DATABASE_NAME"
	EnvMongoConnTimeout  = "MONGO_CONN_TIMEOUT"

	EnvKafkaBrokers     = "KAFKA_BROKERS"
	EnvKafkaReportTopic = "KAFKA_REPORT_TOPIC"

	EnvRequestTimeout = "REQUEST_TIMEOUT"
	EnvMaxRequestSize = "MAX_REQUEST_SIZE"

	EnvReadTimeout     = "READ_TIMEOUT"
	EnvWriteTimeout    = "WRITE_TIMEOUT"
	EnvIdleTimeout     = "IDLE_TIMEOUT"
	EnvShutdownTimeout = "SHUTDOWN_TIMEOUT"
)
