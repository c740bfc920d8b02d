package thermo

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"thermonet.xyz/thermonet-service/pkg/models"
	thtest "thermonet.xyz/thermonet-service/pkg/testing"
)

func TestValidateRawReadings(t *testing.T) {
	assert.NoError(t, ValidateRawReadings([]models.RawReading{{DeviceID: "dev-1"}}))
	assert.NoError(t, ValidateRawReadings([]models.RawReading{{
		DeviceID:     "dev-1",
		Accuracy:     thtest.Float(0),
		Confidence:   thtest.Int(100),
		BatteryLevel: thtest.Int(0),
	}}))

	assert.ErrorIs(t, ValidateRawReadings(nil), ErrInvalidPayload)
	assert.ErrorIs(t, ValidateRawReadings([]models.RawReading{{}}), ErrInvalidPayload)
	assert.ErrorIs(t, ValidateRawReadings([]models.RawReading{{DeviceID: "dev-1", Confidence: thtest.Int(-1)}}), ErrInvalidPayload)
	assert.ErrorIs(t, ValidateRawReadings([]models.RawReading{{DeviceID: "dev-1", BatteryLevel: thtest.Int(101)}}), ErrInvalidPayload)

	err := ValidateRawReadings([]models.RawReading{{DeviceID: "dev-1"}, {DeviceID: "dev-2", Accuracy: thtest.Float(-0.1)}})
	assert.ErrorIs(t, err, ErrInvalidPayload)
	assert.Contains(t, err.Error(), "reading 1")
}

func TestDistinctDeviceIDs(t *testing.T) {
	ids := DistinctDeviceIDs([]models.RawReading{
		{DeviceID: "b"}, {DeviceID: "a"}, {DeviceID: "b"}, {DeviceID: ""}, {DeviceID: "c"},
	})
	assert.Equal(t, []string{"b", "a", "c"}, ids)
	assert.Empty(t, DistinctDeviceIDs(nil))
}
