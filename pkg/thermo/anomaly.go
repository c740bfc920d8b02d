package thermo

import (
	"fmt"
	"slices"
	"time"

	"go.uber.org/zap"
	"thermonet.xyz/thermonet-service/pkg/common"
	"thermonet.xyz/thermonet-service/pkg/models"
)

// Plausibility limits of the on-device sensor proxies. Readings outside them
// are still stored, only flagged.
const (
	MinPlausibleTemperature = -50.0
	MaxPlausibleTemperature = 85.0
	MaxGpsAccuracyMeters    = 50.0
	MaxClockAhead           = 5 * time.Minute
	MaxReadingAge           = 30 * time.Minute
)

func (t *Thermo) checkReading(reading *models.Reading, now int64) []models.Anomaly {
	found := make([]models.Anomaly, 0)
	add := func(kind models.AnomalyType, message string) {
		found = append(found, models.Anomaly{
			DeviceID:  reading.DeviceID,
			ReadingID: reading.ID,
			Timestamp: now,
			Type:      kind,
			Message:   message,
		})
	}

	if temp := reading.Temperature; temp != nil && (*temp < MinPlausibleTemperature || *temp > MaxPlausibleTemperature) {
		add(models.AnomalyTypeTemperatureRange,
			fmt.Sprintf("Temperature %.2f outside plausible range [%.0f, %.0f]", *temp, MinPlausibleTemperature, MaxPlausibleTemperature))
	}

	if acc := reading.Accuracy; acc != nil && *acc > MaxGpsAccuracyMeters {
		add(models.AnomalyTypeGpsAccuracy,
			fmt.Sprintf("GPS accuracy %.1fm exceeds %.0fm", *acc, MaxGpsAccuracyMeters))
	}

	// a zero client timestamp means the device did not send one
	if ts := reading.ClientTimestamp; ts != 0 {
		if ts > now+MaxClockAhead.Milliseconds() {
			add(models.AnomalyTypeFutureTimestamp,
				fmt.Sprintf("Client timestamp %d is %s ahead of server", ts, time.Duration(ts-now)*time.Millisecond))
		} else if ts < now-MaxReadingAge.Milliseconds() {
			add(models.AnomalyTypeStaleTimestamp,
				fmt.Sprintf("Client timestamp %d is %s old", ts, time.Duration(now-ts)*time.Millisecond))
		}
	}

	if len(found) > 0 {
		logger := common.GetLoggerWith(
			common.LoggerNameThermoCore,
			zap.String(common.LoggerFieldThermoCategory, common.LoggerCategoryAnomaly),
		)
		logger.Info("Anomaly found", zap.String("device_id", reading.DeviceID), zap.Reflect("anomalies", found))
	}

	return found
}

func (t *Thermo) getDeviceAnomalies(deviceID string) ([]models.Anomaly, error) {
	if t.Journal != nil {
		return t.Journal.DeviceAnomalies(deviceID)
	}

	// without a journal the flagged readings still in the window are the record
	anomalies := make([]models.Anomaly, 0)
	for _, r := range t.Store.Select(func(r *models.Reading) bool {
		return r.DeviceID == deviceID && len(r.Flags) > 0
	}) {
		anomalies = append(anomalies, t.checkReading(&r, r.ServerTimestamp)...)
	}

	slices.Reverse(anomalies)
	return anomalies, nil
}

type IAnomalyImpl struct {
	thermo *Thermo
}

func (ia *IAnomalyImpl) CheckReading(reading *models.Reading, now int64) []models.Anomaly {
	return ia.thermo.checkReading(reading, now)
}

func (ia *IAnomalyImpl) GetDeviceAnomalies(deviceID string) ([]models.Anomaly, error) {
	return ia.thermo.getDeviceAnomalies(deviceID)
}

func (t *Thermo) GetIAnomaly() IAnomaly {
	return &IAnomalyImpl{thermo: t}
}
