package thermo

import (
	"bufio"
	"encoding/json"
	"io"
	"testing"
	"time"

	"thermonet.xyz/thermonet-service/pkg/common"
	"thermonet.xyz/thermonet-service/pkg/models"
	thtest "thermonet.xyz/thermonet-service/pkg/testing"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

// newTestThermo builds a Thermo with the default services, a fixed clock, no
// mock readings and a jitter of zero.
func newTestThermo(t *testing.T, capacity int) *Thermo {
	t.Helper()
	common.SetTestLoggerNop()

	thermo := &Thermo{
		Store:  NewReadingStore(capacity),
		Mock:   NewStaticMockSource(nil),
		Clock:  thtest.FixedClock(testNow),
		Jitter: func() float64 { return 0 },
	}
	return thermo.WithDefaultServices()
}

func rawReading(deviceID string, lat, lng, temp float64) models.RawReading {
	return models.RawReading{
		DeviceID:    deviceID,
		Latitude:    thtest.Float(lat),
		Longitude:   thtest.Float(lng),
		Temperature: thtest.Float(temp),
		Accuracy:    thtest.Float(5),
		Confidence:  thtest.Int(90),
		Timestamp:   testNow.UnixMilli(),
	}
}

func storedReading(id, deviceID string) models.Reading {
	return models.Reading{
		ID:          id,
		DeviceID:    deviceID,
		Latitude:    thtest.Float(37.7749),
		Longitude:   thtest.Float(-122.4194),
		Temperature: thtest.Float(20),
		Origin:      models.OriginRealDevice,
	}
}

func ParseLogs(r io.Reader) []any {
	scanner := bufio.NewScanner(r)
	var logs []any

	for scanner.Scan() {
		line := scanner.Text()
		var j any
		if err := json.Unmarshal([]byte(line), &j); err == nil {
			logs = append(logs, j)
		}
	}
	return logs
}
