package thermo

import (
	"github.com/prometheus/client_golang/prometheus"
	"thermonet.xyz/thermonet-service/pkg/models"
)

const (
	batchResultAccepted = "accepted"
	batchResultInvalid  = "invalid"
	batchResultFailed   = "failed"
)

// Metrics holds the ingestion collectors. A nil *Metrics records nothing.
type Metrics struct {
	batches   *prometheus.CounterVec
	readings  prometheus.Counter
	evicted   prometheus.Counter
	anomalies *prometheus.CounterVec
	stored    prometheus.Gauge
	devices   prometheus.Gauge
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		batches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "thermonet",
			Name:      "ingest_batches_total",
			Help:      "Submitted reading batches by result.",
		}, []string{"result"}),
		readings: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "thermonet",
			Name:      "readings_ingested_total",
			Help:      "Readings accepted into the store.",
		}),
		evicted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "thermonet",
			Name:      "readings_evicted_total",
			Help:      "Readings pushed out of the sliding window.",
		}),
		anomalies: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "thermonet",
			Name:      "anomalies_total",
			Help:      "Implausible readings flagged at ingestion by type.",
		}, []string{"type"}),
		stored: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "thermonet",
			Name:      "store_readings",
			Help:      "Readings currently held in the sliding window.",
		}),
		devices: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "thermonet",
			Name:      "store_devices",
			Help:      "Devices in the device index.",
		}),
	}

	reg.MustRegister(m.batches, m.readings, m.evicted, m.anomalies, m.stored, m.devices)
	return m
}

func (m *Metrics) observeBatch(result string) {
	if m == nil {
		return
	}
	m.batches.WithLabelValues(result).Inc()
}

func (m *Metrics) observeIngest(res AppendResult, anomalies []models.Anomaly) {
	if m == nil {
		return
	}
	m.batches.WithLabelValues(batchResultAccepted).Inc()
	m.readings.Add(float64(res.Accepted))
	m.evicted.Add(float64(res.Evicted))
	for _, a := range anomalies {
		m.anomalies.WithLabelValues(string(a.Type)).Inc()
	}
	m.observeStore(res.Stored, res.ActiveDevices)
}

func (m *Metrics) observeStore(stored, devices int) {
	if m == nil {
		return
	}
	m.stored.Set(float64(stored))
	m.devices.Set(float64(devices))
}
