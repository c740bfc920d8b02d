package common

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{
		EnvKeyThermoHttpHostPort, EnvKeyThermoGrpcHostPort, EnvKeyThermoDBType, EnvKeyThermoDbPath,
		EnvKeyThermoStoreCapacity, EnvKeyThermoDefaultRate, EnvKeyThermoDefaultBurst,
		EnvKeyThermoMockCount, EnvKeyThermoMockRefresh, EnvKeyThermoNatsURL, EnvKeyThermoCorsOrigins,
	} {
		t.Setenv(key, "")
	}

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.HttpHostPort)
	assert.Equal(t, DBTypeNone, cfg.DBType)
	assert.Equal(t, 1000, cfg.StoreCapacity)
	assert.Equal(t, 150, cfg.MockCount)
	assert.Equal(t, 5*time.Minute, cfg.MockRefresh)
	assert.Equal(t, []string{"*"}, cfg.CorsOrigins)
	assert.False(t, cfg.LimiterEnabled())
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv(EnvKeyThermoHttpHostPort, "127.0.0.1:9000")
	t.Setenv(EnvKeyThermoDBType, DBTypeMemory)
	t.Setenv(EnvKeyThermoStoreCapacity, "50")
	t.Setenv(EnvKeyThermoDefaultRate, "2.5")
	t.Setenv(EnvKeyThermoDefaultBurst, "4")
	t.Setenv(EnvKeyThermoMockRefresh, "30s")
	t.Setenv(EnvKeyThermoCorsOrigins, "http://localhost:3000, http://localhost:5173,")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9000", cfg.HttpHostPort)
	assert.Equal(t, DBTypeMemory, cfg.DBType)
	assert.Equal(t, 50, cfg.StoreCapacity)
	assert.Equal(t, 2.5, cfg.DefaultRate)
	assert.Equal(t, 4, cfg.DefaultBurst)
	assert.Equal(t, 30*time.Second, cfg.MockRefresh)
	assert.Equal(t, []string{"http://localhost:3000", "http://localhost:5173"}, cfg.CorsOrigins)
	assert.True(t, cfg.LimiterEnabled())
}

func TestLoadConfig_EdgeCases(t *testing.T) {
	{
		t.Setenv(EnvKeyThermoDBType, "mongo")
		_, err := LoadConfig()
		assert.Error(t, err)
	}

	{
		t.Setenv(EnvKeyThermoDBType, DBTypePostgres)
		t.Setenv(EnvKeyThermoDbDSN, "")
		_, err := LoadConfig()
		assert.Error(t, err)
	}

	{
		t.Setenv(EnvKeyThermoDBType, "")
		t.Setenv(EnvKeyThermoStoreCapacity, "0")
		_, err := LoadConfig()
		assert.Error(t, err)
	}

	{
		t.Setenv(EnvKeyThermoStoreCapacity, "")
		t.Setenv(EnvKeyThermoDefaultRate, "fast")
		_, err := LoadConfig()
		assert.Error(t, err)
	}

	{
		t.Setenv(EnvKeyThermoDefaultRate, "")
		t.Setenv(EnvKeyThermoMockRefresh, "often")
		_, err := LoadConfig()
		assert.Error(t, err)
	}
}

func TestMapperReducerFilter(t *testing.T) {
	doubled := Mapper([]int{1, 2, 3}, func(i int) int { return i * 2 })
	assert.Equal(t, []int{2, 4, 6}, doubled)

	sum := Reducer([]int{1, 2, 3}, func(acc int, i int) int { return acc + i }, 0)
	assert.Equal(t, 6, sum)

	odd := Filter([]int{1, 2, 3, 4, 5}, func(i int) bool { return i%2 == 1 })
	assert.Equal(t, []int{1, 3, 5}, odd)
}
