package db

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
	"thermonet.xyz/thermonet-service/pkg/common"
	"thermonet.xyz/thermonet-service/pkg/models"
)

type DB struct {
	Conn *gorm.DB
}

// Open connects through dialector and migrates the journal tables.
func Open(dialector gorm.Dialector) (*DB, error) {
	logger := common.GetLoggerWith(common.LoggerNameJournal)

	conn, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	logger.Info("Connected to database with dialector:", zap.String("dialector", dialector.Name()))

	if dialector.Name() == "sqlite" {
		if err := conn.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
			return nil, fmt.Errorf("enable sqlite foreign key support: %w", err)
		}
		if err := conn.Exec("PRAGMA journal_mode = WAL").Error; err != nil {
			return nil, fmt.Errorf("set sqlite journal mode: %w", err)
		}
	}

	if err := conn.AutoMigrate(&models.Reading{}, &models.Device{}, &models.Anomaly{}); err != nil {
		return nil, fmt.Errorf("migrate database: %w", err)
	}

	logger.Info("Database migration completed")

	return &DB{Conn: conn}, nil
}

func (d *DB) Close() error {
	sqlDB, err := d.Conn.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func UseSqliteDialector(path string) gorm.Dialector {
	if path == "" {
		path = "thermonet.db"
	}
	return sqlite.Open(path)
}

// UseMemorySqliteDialector opens a fresh named in-memory database, so two
// callers never see each other's rows.
func UseMemorySqliteDialector() gorm.Dialector {
	return sqlite.Open(fmt.Sprintf("file:thermonet-%s?mode=memory&cache=shared", uuid.NewString()))
}

func UsePostgresDialector(dsn string) gorm.Dialector {
	return postgres.Open(dsn)
}

// DialectorFor picks the dialector cfg asks for. DBTypeNone yields nil.
func DialectorFor(cfg common.Config) (gorm.Dialector, error) {
	switch cfg.DBType {
	case common.DBTypeNone, "":
		return nil, nil
	case common.DBTypeFile:
		return UseSqliteDialector(cfg.DBPath), nil
	case common.DBTypeMemory:
		return UseMemorySqliteDialector(), nil
	case common.DBTypePostgres:
		return UsePostgresDialector(cfg.DBDSN), nil
	}
	return nil, fmt.Errorf("unknown database type %q", cfg.DBType)
}
