package messaging

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"thermonet.xyz/thermonet-service/pkg/common"
	"thermonet.xyz/thermonet-service/pkg/models"
	thtest "thermonet.xyz/thermonet-service/pkg/testing"
	"thermonet.xyz/thermonet-service/pkg/thermo"
)

type message struct {
	subject string
	data    []byte
}

type fakeConn struct {
	published  []message
	publishErr error
	drainErr   error
	drained    bool
}

func (f *fakeConn) Publish(subject string, data []byte) error {
	if f.publishErr != nil {
		return f.publishErr
	}
	f.published = append(f.published, message{subject: subject, data: data})
	return nil
}

func (f *fakeConn) Drain() error {
	f.drained = true
	return f.drainErr
}

func testEvent() thermo.IngestEvent {
	return thermo.IngestEvent{
		Readings: []models.Reading{{
			ID:              "r-1",
			DeviceID:        "dev-1",
			Latitude:        thtest.Float(37.7749),
			Longitude:       thtest.Float(-122.4194),
			Temperature:     thtest.Float(21),
			ServerTimestamp: 1748779200000,
			SpatialKey:      "b0b49c38",
			Origin:          models.OriginRealDevice,
		}},
		TotalReadings: 1,
		ActiveDevices: 1,
		Timestamp:     1748779200000,
	}
}

func TestPublish(t *testing.T) {
	common.SetTestLoggerNop()
	conn := &fakeConn{}
	p := newPublisher(conn, "test.readings")

	require.NoError(t, p.Publish(testEvent()))
	require.Len(t, conn.published, 1)
	assert.Equal(t, "test.readings", conn.published[0].subject)

	var got thermo.IngestEvent
	require.NoError(t, json.Unmarshal(conn.published[0].data, &got))
	assert.Equal(t, testEvent(), got)
}

func TestPublish_DefaultSubject(t *testing.T) {
	common.SetTestLoggerNop()
	p := newPublisher(&fakeConn{}, "")
	assert.Equal(t, DefaultSubject, p.Subject())
}

func TestPublish_ConnError(t *testing.T) {
	common.SetTestLoggerNop()
	connErr := errors.New("nats: connection closed")
	p := newPublisher(&fakeConn{publishErr: connErr}, "test.readings")

	err := p.Publish(testEvent())
	require.Error(t, err)
	assert.ErrorIs(t, err, connErr)
	assert.Contains(t, err.Error(), "test.readings")
}

func TestClose_LogsDrainError(t *testing.T) {
	var buf bytes.Buffer
	common.SetTestCaptureLogger(&buf, zapcore.WarnLevel)

	conn := &fakeConn{drainErr: errors.New("nats: connection closed")}
	newPublisher(conn, "").Close()

	assert.True(t, conn.drained)
	assert.Contains(t, buf.String(), "Failed to drain NATS connection")
}

func TestNewNatsPublisher_Unreachable(t *testing.T) {
	common.SetTestLoggerNop()

	start := time.Now()
	_, err := NewNatsPublisher("nats://127.0.0.1:1", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connect to nats")
	assert.Less(t, time.Since(start), 10*time.Second)
}
