package thermo

import (
	"math"

	"thermonet.xyz/thermonet-service/pkg/models"
)

const (
	AvgSourceReal     = "real"
	AvgSourceBaseline = "baseline"

	deviceStatusOnline = "online"
)

func (t *Thermo) computeStats() models.NetworkStats {
	base := t.baseline()
	readings := t.Store.Snapshot()
	deviceCount := t.Store.DeviceCount()

	stats := models.NetworkStats{
		ActiveDeviceCount: deviceCount,
		TotalDevices:      base.Devices + deviceCount,
		TotalReadings:     base.Readings + len(readings),
		RealDevices:       deviceCount,
		RealReadings:      len(readings),
		NetworkHealth:     base.NetworkHealth,
		LastSync:          t.Store.LastSync(),
		LastUpdate:        t.Now().UnixMilli(),
	}

	if avg, ok := MeanTemperature(readings); ok {
		stats.AvgTemperature = avg
		stats.AvgTemperatureSource = AvgSourceReal
		stats.HasRealData = true
	} else {
		// keeps dashboards populated; HasRealData tells them it is not measured
		jittered := base.AvgTemperature + 2*base.Jitter*t.jitter()
		stats.AvgTemperature = math.Round(jittered*10) / 10
		stats.AvgTemperatureSource = AvgSourceBaseline
	}

	return stats
}

// MeanTemperature averages the readings that carry a temperature.
func MeanTemperature(readings []models.Reading) (float64, bool) {
	sum, n := 0.0, 0
	for i := range readings {
		if !readings[i].HasTemperature() {
			continue
		}
		sum += *readings[i].Temperature
		n++
	}
	if n == 0 {
		return 0, false
	}
	return sum / float64(n), true
}

func (t *Thermo) latestDevice() (*models.DeviceSnapshot, bool) {
	device, ok := t.Store.MostRecentDevice()
	if !ok {
		return nil, false
	}

	snapshot := &models.DeviceSnapshot{
		DeviceID:      device.DeviceID,
		Status:        deviceStatusOnline,
		Battery:       device.LastBatteryLevel,
		DataQuality:   device.LastConfidence,
		LastReading:   device.LastSeen,
		TotalReadings: device.TotalReadings,
		LastLocation:  device.LastLocation,
	}

	var latest *models.Reading
	for _, r := range t.Store.Select(func(r *models.Reading) bool { return r.DeviceID == device.DeviceID }) {
		if latest == nil || r.ClientTimestamp >= latest.ClientTimestamp {
			latest = &r
		}
	}
	if latest != nil {
		snapshot.Temperature = latest.Temperature
		snapshot.GpsAccuracy = latest.Accuracy
		snapshot.HexID = latest.SpatialKey
	}

	return snapshot, true
}

type IStatsImpl struct {
	thermo *Thermo
}

func (is *IStatsImpl) ComputeStats() models.NetworkStats {
	return is.thermo.computeStats()
}

func (is *IStatsImpl) LatestDevice() (*models.DeviceSnapshot, bool) {
	return is.thermo.latestDevice()
}

func (t *Thermo) GetIStats() IStats {
	return &IStatsImpl{thermo: t}
}
