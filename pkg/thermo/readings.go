package thermo

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"thermonet.xyz/thermonet-service/pkg/common"
	"thermonet.xyz/thermonet-service/pkg/models"
	"thermonet.xyz/thermonet-service/pkg/spatial"
)

type IngestResult struct {
	AcceptedCount             int   `json:"synced"`
	TotalStoredCount          int   `json:"totalReadings"`
	DistinctActiveDeviceCount int   `json:"activeDevices"`
	Timestamp                 int64 `json:"timestamp"`
}

type TemperatureBand string

const (
	BandNone TemperatureBand = ""
	BandCold TemperatureBand = "cold"
	BandWarm TemperatureBand = "warm"
	BandHot  TemperatureBand = "hot"
)

const (
	coldBelow = 18.0
	hotFrom   = 25.0
)

// Matches reports whether temp falls in the band. A missing temperature only
// matches BandNone.
func (b TemperatureBand) Matches(temp *float64) bool {
	if b == BandNone {
		return true
	}
	if temp == nil {
		return false
	}
	switch b {
	case BandCold:
		return *temp < coldBelow
	case BandWarm:
		return *temp >= coldBelow && *temp < hotFrom
	case BandHot:
		return *temp >= hotFrom
	}
	return true
}

type OriginFilter string

const (
	OriginAll      OriginFilter = "all"
	OriginRealOnly OriginFilter = "realOnly"
)

// BoundingBox is inclusive on all four edges.
type BoundingBox struct {
	SWLat float64
	SWLng float64
	NELat float64
	NELng float64
}

func (b BoundingBox) Contains(lat, lng float64) bool {
	return lat >= b.SWLat && lat <= b.NELat && lng >= b.SWLng && lng <= b.NELng
}

// ParseBounds reads "swLat,swLng,neLat,neLng".
func ParseBounds(s string) (*BoundingBox, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return nil, fmt.Errorf("%w: bounds needs 4 comma separated values, got %d", ErrInvalidParameter, len(parts))
	}

	var values [4]float64
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: bounds value %q: %v", ErrInvalidParameter, p, err)
		}
		values[i] = v
	}

	return &BoundingBox{SWLat: values[0], SWLng: values[1], NELat: values[2], NELng: values[3]}, nil
}

// FilterRealOnly is the dashboard filter value that drops mock readings.
const FilterRealOnly = "real"

type QuerySpec struct {
	Band   TemperatureBand
	Origin OriginFilter
	Bounds *BoundingBox
}

// QueryResult counts are taken over the returned readings.
type QueryResult struct {
	Readings  []models.Reading
	RealCount int
	MockCount int
}

// ParseQuerySpec maps the dashboard filter and bounds parameters onto a
// QuerySpec. Unknown filter values are ignored.
func ParseQuerySpec(filter, bounds string) (QuerySpec, error) {
	spec := QuerySpec{Origin: OriginAll}

	switch filter {
	case string(BandCold), string(BandWarm), string(BandHot):
		spec.Band = TemperatureBand(filter)
	case FilterRealOnly:
		spec.Origin = OriginRealOnly
	}

	if bounds != "" {
		box, err := ParseBounds(bounds)
		if err != nil {
			return spec, err
		}
		spec.Bounds = box
	}
	return spec, nil
}

func (t *Thermo) ingest(raw []models.RawReading) (*IngestResult, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameThermoCore,
		zap.String(common.LoggerFieldThermoCategory, common.LoggerCategoryThermoIngest),
	)

	if err := ValidateRawReadings(raw); err != nil {
		t.Metrics.observeBatch(batchResultInvalid)
		logger.Info("Rejected readings batch", zap.Int("size", len(raw)), zap.Error(err))
		return nil, err
	}

	if t.Anomaly == nil {
		return nil, fmt.Errorf("anomaly service: %w", ErrServiceUnavailable)
	}

	t.ingestMu.Lock()
	defer t.ingestMu.Unlock()

	now := t.Now().UnixMilli()
	if last := t.Store.LastServerTimestamp(); now < last {
		now = last
	}

	enc := t.encoder()
	batch := make([]models.Reading, len(raw))
	anomalies := make([]models.Anomaly, 0)
	for i := range raw {
		r := &raw[i]
		id := r.ID
		if id == "" {
			id = uuid.NewString()
		}

		batch[i] = models.Reading{
			ID:              id,
			DeviceID:        r.DeviceID,
			Latitude:        r.Latitude,
			Longitude:       r.Longitude,
			Temperature:     r.Temperature,
			Pressure:        r.Pressure,
			Accuracy:        r.Accuracy,
			Confidence:      r.Confidence,
			BatteryLevel:    r.BatteryLevel,
			ClientTimestamp: r.Timestamp,
			ServerTimestamp: now,
			SpatialKey:      spatial.KeyFor(enc, r.Latitude, r.Longitude),
			Origin:          models.OriginRealDevice,
		}

		found := t.Anomaly.CheckReading(&batch[i], now)
		for _, a := range found {
			batch[i].Flags = append(batch[i].Flags, string(a.Type))
		}
		anomalies = append(anomalies, found...)
	}

	if t.Journal != nil {
		devices := t.Store.PlanDevices(batch, now)
		if err := t.Journal.Append(batch, devices, anomalies); err != nil {
			t.Metrics.observeBatch(batchResultFailed)
			logger.Error("Failed to journal readings batch", zap.Int("size", len(batch)), zap.Error(err))
			return nil, fmt.Errorf("journal readings: %w", err)
		}
	}

	res := t.Store.Append(batch, now)
	t.Metrics.observeIngest(res, anomalies)

	logger.Info("Ingested readings batch",
		zap.Int("accepted", res.Accepted),
		zap.Int("stored", res.Stored),
		zap.Int("evicted", res.Evicted),
		zap.Int("active_devices", res.ActiveDevices),
		zap.Int("anomalies", len(anomalies)),
	)

	if t.Publisher != nil {
		event := IngestEvent{
			Readings:      batch,
			TotalReadings: res.Stored,
			ActiveDevices: res.ActiveDevices,
			Timestamp:     now,
		}
		if err := t.Publisher.Publish(event); err != nil {
			logger.Warn("Failed to publish readings batch", zap.Error(err))
		}
	}

	return &IngestResult{
		AcceptedCount:             res.Accepted,
		TotalStoredCount:          res.Stored,
		DistinctActiveDeviceCount: res.ActiveDevices,
		Timestamp:                 now,
	}, nil
}

func (t *Thermo) query(spec QuerySpec) QueryResult {
	matches := func(r *models.Reading) bool {
		if !spatial.ValidCoordinates(r.Latitude, r.Longitude) {
			return false
		}
		if !spec.Band.Matches(r.Temperature) {
			return false
		}
		if spec.Bounds != nil && !spec.Bounds.Contains(*r.Latitude, *r.Longitude) {
			return false
		}
		return true
	}

	result := QueryResult{Readings: t.Store.Select(matches)}
	result.RealCount = len(result.Readings)

	if spec.Origin != OriginRealOnly {
		for _, r := range t.mockReadings() {
			if matches(&r) {
				result.Readings = append(result.Readings, r)
				result.MockCount++
			}
		}
	}

	common.GetLoggerWith(
		common.LoggerNameThermoCore,
		zap.String(common.LoggerFieldThermoCategory, common.LoggerCategoryThermoQuery),
	).Debug("Queried readings",
		zap.String("band", string(spec.Band)),
		zap.String("origin", string(spec.Origin)),
		zap.Int("real", result.RealCount),
		zap.Int("mock", result.MockCount),
	)

	return result
}

type IReadingsImpl struct {
	thermo *Thermo
}

func (ir *IReadingsImpl) Ingest(raw []models.RawReading) (*IngestResult, error) {
	return ir.thermo.ingest(raw)
}

func (ir *IReadingsImpl) Query(spec QuerySpec) QueryResult {
	return ir.thermo.query(spec)
}

func (t *Thermo) GetIReadings() IReadings {
	return &IReadingsImpl{thermo: t}
}
