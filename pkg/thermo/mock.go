package thermo

import (
	"context"
	"math"
	"math/rand"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"thermonet.xyz/thermonet-service/pkg/common"
	"thermonet.xyz/thermonet-service/pkg/models"
	"thermonet.xyz/thermonet-service/pkg/spatial"
)

const (
	mockCenterLat = 37.7749
	mockCenterLng = -122.4194
	mockSpread    = 0.4
	mockMaxAge    = time.Hour
)

// MockSource holds the synthetic readings shown next to real ones. The set is
// regenerated as a whole, never mixed into the ReadingStore.
type MockSource struct {
	mu       sync.RWMutex
	readings []models.Reading
	count    int
	rnd      *rand.Rand
	encoder  spatial.Encoder
	clock    func() time.Time
}

func NewMockSource(count int, seed int64, encoder spatial.Encoder, clock func() time.Time) *MockSource {
	if encoder == nil {
		encoder = spatial.HexEncoder{}
	}
	if clock == nil {
		clock = time.Now
	}
	m := &MockSource{
		count:   count,
		rnd:     rand.New(rand.NewSource(seed)),
		encoder: encoder,
		clock:   clock,
	}
	m.Refresh()
	return m
}

// NewStaticMockSource serves a fixed set; Refresh keeps it as is.
func NewStaticMockSource(readings []models.Reading) *MockSource {
	return &MockSource{readings: append([]models.Reading(nil), readings...)}
}

func (m *MockSource) Refresh() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.rnd == nil {
		return
	}

	now := m.clock()
	readings := make([]models.Reading, 0, m.count)
	for range m.count {
		lat := round(mockCenterLat+(m.rnd.Float64()-0.5)*mockSpread, 6)
		lng := round(mockCenterLng+(m.rnd.Float64()-0.5)*mockSpread, 6)
		temp := round(15+m.rnd.Float64()*15, 1)
		pressure := round(1010+(m.rnd.Float64()-0.5)*30, 1)
		accuracy := round(2+m.rnd.Float64()*8, 1)
		confidence := 75 + m.rnd.Intn(25)
		ts := now.Add(-time.Duration(m.rnd.Int63n(int64(mockMaxAge)))).UnixMilli()

		readings = append(readings, models.Reading{
			ID:              uuid.NewString(),
			DeviceID:        m.deviceID(),
			Latitude:        &lat,
			Longitude:       &lng,
			Temperature:     &temp,
			Pressure:        &pressure,
			Accuracy:        &accuracy,
			Confidence:      &confidence,
			ClientTimestamp: ts,
			ServerTimestamp: ts,
			SpatialKey:      m.encoder.Encode(lat, lng),
			Origin:          models.OriginMock,
		})
	}
	m.readings = readings
}

// deviceID mimics the DX + 4 base36 ids of the demo fleet.
func (m *MockSource) deviceID() string {
	suffix := strconv.FormatInt(m.rnd.Int63n(36*36*36*36), 36)
	return "DX" + strings.ToUpper(strings.Repeat("0", 4-len(suffix))+suffix)
}

func (m *MockSource) Readings() []models.Reading {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]models.Reading(nil), m.readings...)
}

func (m *MockSource) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.readings)
}

// Run regenerates the set every interval until ctx is done.
func (m *MockSource) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}

	logger := common.GetLoggerWith(
		common.LoggerNameThermoCore,
		zap.String(common.LoggerFieldThermoCategory, common.LoggerCategoryMock),
	)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.Refresh()
			logger.Debug("Mock readings refreshed", zap.Int("count", m.Len()))
		}
	}
}

func round(v float64, decimals int) float64 {
	p := math.Pow10(decimals)
	return math.Round(v*p) / p
}
