package common

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DBTypeNone     string = "none"
	DBTypeFile     string = "file"
	DBTypeMemory   string = "memory"
	DBTypePostgres string = "postgres"
)

type Config struct {
	HttpHostPort string
	GrpcHostPort string

	DBType string
	DBPath string
	DBDSN  string

	StoreCapacity int

	DefaultRate  float64
	DefaultBurst int

	MockCount   int
	MockRefresh time.Duration

	NatsURL     string
	NatsSubject string

	CorsOrigins []string
}

func DefaultConfig() Config {
	return Config{
		HttpHostPort:  ":8080",
		DBType:        DBTypeNone,
		DBPath:        "thermonet.db",
		StoreCapacity: 1000,
		DefaultRate:   0,
		DefaultBurst:  0,
		MockCount:     150,
		MockRefresh:   5 * time.Minute,
		NatsSubject:   "thermonet.readings",
		CorsOrigins:   []string{"*"},
	}
}

// LoadDotEnv loads .env from the working directory. A missing file is not an
// error, every key can come from the process environment instead.
func LoadDotEnv() error {
	if _, err := os.Stat(".env"); os.IsNotExist(err) {
		return nil
	}
	return godotenv.Load()
}

// LoadConfig reads the THERMO_* environment on top of DefaultConfig.
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()
	var err error

	if v := strings.TrimSpace(os.Getenv(EnvKeyThermoHttpHostPort)); v != "" {
		cfg.HttpHostPort = v
	}
	cfg.GrpcHostPort = strings.TrimSpace(os.Getenv(EnvKeyThermoGrpcHostPort))

	if v := strings.TrimSpace(os.Getenv(EnvKeyThermoDBType)); v != "" {
		switch v {
		case DBTypeNone, DBTypeFile, DBTypeMemory, DBTypePostgres:
			cfg.DBType = v
		default:
			return cfg, fmt.Errorf("unknown %s: %q", EnvKeyThermoDBType, v)
		}
	}
	if v, found := os.LookupEnv(EnvKeyThermoDbPath); found && v != "" {
		cfg.DBPath = v
	}
	cfg.DBDSN = os.Getenv(EnvKeyThermoDbDSN)
	if cfg.DBType == DBTypePostgres && cfg.DBDSN == "" {
		return cfg, fmt.Errorf("%s must be set when %s=postgres", EnvKeyThermoDbDSN, EnvKeyThermoDBType)
	}

	if cfg.StoreCapacity, err = intFromEnv(EnvKeyThermoStoreCapacity, cfg.StoreCapacity); err != nil {
		return cfg, err
	}
	if cfg.StoreCapacity <= 0 {
		return cfg, fmt.Errorf("invalid %s, should be a positive int", EnvKeyThermoStoreCapacity)
	}

	if v := os.Getenv(EnvKeyThermoDefaultRate); v != "" {
		if cfg.DefaultRate, err = strconv.ParseFloat(v, 64); err != nil {
			return cfg, fmt.Errorf("invalid %s, should be a float64 value: %w", EnvKeyThermoDefaultRate, err)
		}
	}
	if cfg.DefaultBurst, err = intFromEnv(EnvKeyThermoDefaultBurst, cfg.DefaultBurst); err != nil {
		return cfg, err
	}

	if cfg.MockCount, err = intFromEnv(EnvKeyThermoMockCount, cfg.MockCount); err != nil {
		return cfg, err
	}
	if v := os.Getenv(EnvKeyThermoMockRefresh); v != "" {
		if cfg.MockRefresh, err = time.ParseDuration(v); err != nil {
			return cfg, fmt.Errorf("invalid %s, should be a duration like 5m: %w", EnvKeyThermoMockRefresh, err)
		}
	}

	cfg.NatsURL = strings.TrimSpace(os.Getenv(EnvKeyThermoNatsURL))
	if v := strings.TrimSpace(os.Getenv(EnvKeyThermoNatsSubject)); v != "" {
		cfg.NatsSubject = v
	}

	if v := os.Getenv(EnvKeyThermoCorsOrigins); v != "" {
		origins := Mapper(strings.Split(v, ","), strings.TrimSpace)
		cfg.CorsOrigins = Filter(origins, func(o string) bool { return o != "" })
	}

	return cfg, nil
}

// LimiterEnabled reports whether per-device rate limiting was configured.
func (c Config) LimiterEnabled() bool {
	return c.DefaultRate > 0 && c.DefaultBurst > 0
}

func intFromEnv(key string, fallback int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback, fmt.Errorf("invalid %s, should be an int value: %w", key, err)
	}
	return n, nil
}
