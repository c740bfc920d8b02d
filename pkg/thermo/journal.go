package thermo

import (
	"fmt"

	"go.uber.org/zap"
	"thermonet.xyz/thermonet-service/pkg/common"
	"thermonet.xyz/thermonet-service/pkg/models"
)

// Journal makes the store durable. Append is called before the in-memory
// store changes, so a failed Append leaves both sides untouched.
type Journal interface {
	Append(readings []models.Reading, devices []models.Device, anomalies []models.Anomaly) error
	LoadRecent(limit int) ([]models.Reading, error)
	LoadDevices() ([]models.Device, error)
	DeviceAnomalies(deviceID string) ([]models.Anomaly, error)
}

type IngestEvent struct {
	Readings      []models.Reading `json:"readings"`
	TotalReadings int              `json:"totalReadings"`
	ActiveDevices int              `json:"activeDevices"`
	Timestamp     int64            `json:"timestamp"`
}

// Publisher fans accepted batches out to other consumers. Errors are logged by
// the caller and never fail an ingest.
type Publisher interface {
	Publish(event IngestEvent) error
}

// Restore loads the journaled window and device index into the store.
func (t *Thermo) Restore() error {
	if t.Journal == nil {
		return nil
	}

	readings, err := t.Journal.LoadRecent(t.Store.Capacity())
	if err != nil {
		return fmt.Errorf("load journaled readings: %w", err)
	}
	devices, err := t.Journal.LoadDevices()
	if err != nil {
		return fmt.Errorf("load journaled devices: %w", err)
	}

	t.Store.Hydrate(readings, devices)
	t.Metrics.observeStore(t.Store.Len(), t.Store.DeviceCount())

	common.GetLoggerWith(common.LoggerNameThermoCore).Info("Restored store from journal",
		zap.Int("readings", len(readings)),
		zap.Int("devices", len(devices)),
	)
	return nil
}
