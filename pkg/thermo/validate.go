package thermo

import (
	"fmt"

	z "github.com/Oudwins/zog"
	"thermonet.xyz/thermonet-service/pkg/models"
)

var rawReadingSchema = z.Struct(z.Shape{
	"DeviceID":     z.String().Min(1).Required(),
	"Accuracy":     z.Ptr(z.Float64().GTE(0)),
	"Confidence":   z.Ptr(z.Int().GTE(0).LTE(100)),
	"BatteryLevel": z.Ptr(z.Int().GTE(0).LTE(100)),
})

// ValidateRawReadings checks a whole batch before anything is stored. The
// error wraps ErrInvalidPayload and names the first offending element.
func ValidateRawReadings(raw []models.RawReading) error {
	if len(raw) == 0 {
		return fmt.Errorf("%w: empty batch", ErrInvalidPayload)
	}

	for i := range raw {
		if errs := rawReadingSchema.Validate(&raw[i]); errs != nil {
			return fmt.Errorf("%w: reading %d: %v", ErrInvalidPayload, i, errs)
		}
	}
	return nil
}

// DistinctDeviceIDs lists the device ids of a batch in first-seen order.
func DistinctDeviceIDs(raw []models.RawReading) []string {
	seen := make(map[string]bool, len(raw))
	ids := make([]string, 0)
	for i := range raw {
		id := raw[i].DeviceID
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	return ids
}
