package common

const (
	EnvKeyGoEnv string = "GO_ENV"

	EnvKeyRunIntegrationTests string = "RUN_INTEGRATION_TESTS"

	EnvKeyThermoDBType string = "THERMO_DB_TYPE"
	EnvKeyThermoDbPath string = "THERMO_DB_PATH"
	EnvKeyThermoDbDSN  string = "THERMO_DB_DSN"

	EnvKeyThermoHttpHostPort string = "THERMO_HTTP_HOST_PORT"
	EnvKeyThermoGrpcHostPort string = "THERMO_GRPC_HOST_PORT"

	EnvKeyThermoStoreCapacity string = "THERMO_STORE_CAPACITY"

	EnvKeyThermoDefaultRate  string = "THERMO_DEFAULT_RATE"
	EnvKeyThermoDefaultBurst string = "THERMO_DEFAULT_BURST"

	EnvKeyThermoMockCount   string = "THERMO_MOCK_COUNT"
	EnvKeyThermoMockRefresh string = "THERMO_MOCK_REFRESH"

	EnvKeyThermoNatsURL     string = "THERMO_NATS_URL"
	EnvKeyThermoNatsSubject string = "THERMO_NATS_SUBJECT"

	EnvKeyThermoCorsOrigins string = "THERMO_CORS_ORIGINS"

	EnvKeyThermoLogDir string = "THERMO_LOG_DIR"

	LoggerNameThermoCore    string = "thermo_core"
	LoggerNameRestfulServer string = "restful_server"
	LoggerNameGrpcServer    string = "grpc_server"
	LoggerNameJournal       string = "journal"
	LoggerNamePublisher     string = "publisher"

	LoggerFieldThermoCategory  string = "category"
	LoggerCategoryThermoIngest string = "ingest"
	LoggerCategoryThermoQuery  string = "query"
	LoggerCategoryThermoTile   string = "tile"
	LoggerCategoryAnomaly      string = "anomaly"
	LoggerCategoryMock         string = "mock"
)
