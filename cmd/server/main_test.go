package main

import (
	"bytes"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"thermonet.xyz/thermonet-service/pkg/common"
	thermoHttp "thermonet.xyz/thermonet-service/pkg/http"
	_ "thermonet.xyz/thermonet-service/pkg/testing"
	"thermonet.xyz/thermonet-service/pkg/thermo"
)

func TestHexID(t *testing.T) {
	var out bytes.Buffer
	hexidCmd.SetOut(&out)
	defer hexidCmd.SetOut(nil)

	require.NoError(t, runHexID(hexidCmd, []string{"37.7749", "-122.4194"}))
	assert.Equal(t, "b0b49c38\n", out.String())

	assert.Error(t, runHexID(hexidCmd, []string{"north", "-122.4194"}))
	assert.Error(t, runHexID(hexidCmd, []string{"37.7749", "west"}))
}

func TestDemoReadings(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	readings := demoReadings(rand.New(rand.NewSource(42)), 12, now)
	require.Len(t, readings, 12)

	assert.Equal(t, "demo-000", readings[0].DeviceID)
	assert.Equal(t, "demo-011", readings[11].DeviceID)
	for _, r := range readings {
		assert.InDelta(t, seedCenterLat, *r.Latitude, seedSpread/2)
		assert.InDelta(t, seedCenterLng, *r.Longitude, seedSpread/2)
		assert.GreaterOrEqual(t, *r.Temperature, 15.0)
		assert.Less(t, *r.Temperature, 30.0)
		assert.Equal(t, now.UnixMilli(), r.Timestamp)
	}
	assert.NoError(t, thermo.ValidateRawReadings(readings))

	again := demoReadings(rand.New(rand.NewSource(42)), 12, now)
	assert.Equal(t, readings, again)
}

func TestSeedAgainstServer(t *testing.T) {
	common.SetTestLoggerNop()
	gin.SetMode(gin.TestMode)

	thermoCore := (&thermo.Thermo{
		Store: thermo.NewReadingStore(100),
	}).WithDefaultServices()
	rs := &thermoHttp.RestfulServer{Server: gin.New(), Thermo: thermoCore}
	rs.Setup()

	server := httptest.NewServer(rs.Server)
	defer server.Close()

	readings := demoReadings(rand.New(rand.NewSource(7)), 5, time.Now())

	var out bytes.Buffer
	require.NoError(t, seed(server.Client(), server.URL, readings, &out))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	assert.Equal(t, "synced 5 readings, server holds 5 readings from 5 devices", lines[0])
	assert.GreaterOrEqual(t, len(lines), 2)
	for _, line := range lines[1:] {
		assert.Contains(t, line, "median=")
		assert.Contains(t, line, "confidence=")
	}
	assert.Equal(t, 5, thermoCore.Store.Len())
}

func TestSeed_ServerRejects(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":"Rate limit exceeded"}`))
	}))
	defer server.Close()

	err := seed(server.Client(), server.URL, demoReadings(rand.New(rand.NewSource(1)), 1, time.Now()), &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 429")
}
