package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"thermonet.xyz/thermonet-service/pkg/common"
	_ "thermonet.xyz/thermonet-service/pkg/testing"
)

func tableExists(db *gorm.DB, tableName string) bool {
	var count int64
	err := db.Raw(
		`SELECT count(*) FROM sqlite_master WHERE type='table' AND name=?`, tableName,
	).Scan(&count).Error
	return err == nil && count > 0
}

func openMemory(t *testing.T) *DB {
	t.Helper()
	common.SetTestLoggerNop()

	instance, err := Open(UseMemorySqliteDialector())
	require.NoError(t, err)
	t.Cleanup(func() { _ = instance.Close() })
	return instance
}

func TestWithMemorySqlite(t *testing.T) {
	instance := openMemory(t)

	var tables = []string{"readings", "devices", "anomalies"}
	for _, table := range tables {
		if !tableExists(instance.Conn, table) {
			t.Errorf("Expected table %q to exist after migration", table)
		}
	}
}

func TestMemoryDatabasesAreIsolated(t *testing.T) {
	first := openMemory(t)
	second := openMemory(t)

	require.NoError(t, first.Conn.Exec(`INSERT INTO devices (device_id, last_seen, total_readings, seq) VALUES ('dev-1', 1, 1, 1)`).Error)

	var count int64
	require.NoError(t, second.Conn.Table("devices").Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestDialectorFor(t *testing.T) {
	cfg := common.DefaultConfig()

	dialector, err := DialectorFor(cfg)
	assert.NoError(t, err)
	assert.Nil(t, dialector)

	for dbType, name := range map[string]string{
		common.DBTypeFile:     "sqlite",
		common.DBTypeMemory:   "sqlite",
		common.DBTypePostgres: "postgres",
	} {
		cfg.DBType = dbType
		cfg.DBDSN = "host=localhost user=thermo dbname=thermo sslmode=disable"
		dialector, err := DialectorFor(cfg)
		require.NoError(t, err, dbType)
		assert.Equal(t, name, dialector.Name(), dbType)
	}

	cfg.DBType = "mysql"
	_, err = DialectorFor(cfg)
	assert.Error(t, err)
}
