package thermo

import (
	"math/rand/v2"
	"sync"
	"time"

	"thermonet.xyz/thermonet-service/pkg/models"
	"thermonet.xyz/thermonet-service/pkg/spatial"
)

type IReadings interface {
	Ingest(raw []models.RawReading) (*IngestResult, error)
	Query(spec QuerySpec) QueryResult
}

type ITiles interface {
	ComputeTile(spatialKey string) (*models.TileSummary, error)
}

type IStats interface {
	ComputeStats() models.NetworkStats
	LatestDevice() (*models.DeviceSnapshot, bool)
}

type IAnomaly interface {
	CheckReading(reading *models.Reading, now int64) []models.Anomaly
	GetDeviceAnomalies(deviceID string) ([]models.Anomaly, error)
}

// Baseline is the pre-existing synthetic network the stats are layered on.
type Baseline struct {
	Devices        int
	Readings       int
	AvgTemperature float64
	Jitter         float64
	NetworkHealth  float64
}

var DefaultBaseline = Baseline{
	Devices:        1247,
	Readings:       179000,
	AvgTemperature: 21.4,
	Jitter:         1.0,
	NetworkHealth:  99.7,
}

type Thermo struct {
	Store     *ReadingStore
	Mock      *MockSource
	Journal   Journal
	Publisher Publisher
	Encoder   spatial.Encoder
	Metrics   *Metrics
	Clock     func() time.Time
	// Jitter returns a value in [-0.5, 0.5); nil uses math/rand.
	Jitter   func() float64
	Baseline *Baseline

	Readings IReadings
	Tiles    ITiles
	Stats    IStats
	Anomaly  IAnomaly

	ingestMu sync.Mutex
}

type ServiceOpts struct {
	Readings IReadings
	Tiles    ITiles
	Stats    IStats
	Anomaly  IAnomaly
}

func (t *Thermo) WithServices(opts ServiceOpts) *Thermo {
	if opts.Readings != nil {
		t.Readings = opts.Readings
	}
	if opts.Tiles != nil {
		t.Tiles = opts.Tiles
	}
	if opts.Stats != nil {
		t.Stats = opts.Stats
	}
	if opts.Anomaly != nil {
		t.Anomaly = opts.Anomaly
	}
	return t
}

// WithDefaultServices wires the built-in implementation of every service.
func (t *Thermo) WithDefaultServices() *Thermo {
	return t.WithServices(ServiceOpts{
		Readings: t.GetIReadings(),
		Tiles:    t.GetITiles(),
		Stats:    t.GetIStats(),
		Anomaly:  t.GetIAnomaly(),
	})
}

func (t *Thermo) Now() time.Time {
	if t.Clock != nil {
		return t.Clock()
	}
	return time.Now()
}

func (t *Thermo) encoder() spatial.Encoder {
	if t.Encoder != nil {
		return t.Encoder
	}
	return spatial.HexEncoder{}
}

func (t *Thermo) baseline() Baseline {
	if t.Baseline != nil {
		return *t.Baseline
	}
	return DefaultBaseline
}

func (t *Thermo) jitter() float64 {
	if t.Jitter != nil {
		return t.Jitter()
	}
	return rand.Float64() - 0.5
}

func (t *Thermo) mockReadings() []models.Reading {
	if t.Mock == nil {
		return nil
	}
	return t.Mock.Readings()
}
