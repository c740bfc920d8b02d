package models

type Origin string

const (
	OriginRealDevice Origin = "real-device"
	OriginMock       Origin = "mock"
)

type AnomalyType string

const (
	AnomalyTypeTemperatureRange AnomalyType = "temperature_range"
	AnomalyTypeGpsAccuracy      AnomalyType = "gps_accuracy"
	AnomalyTypeFutureTimestamp  AnomalyType = "future_timestamp"
	AnomalyTypeStaleTimestamp   AnomalyType = "stale_timestamp"
)

// RawReading is one element of a device submission, every field but DeviceID
// may be absent.
type RawReading struct {
	ID           string   `json:"id,omitempty"`
	DeviceID     string   `json:"deviceId"`
	Latitude     *float64 `json:"latitude"`
	Longitude    *float64 `json:"longitude"`
	Temperature  *float64 `json:"temperature"`
	Pressure     *float64 `json:"pressure,omitempty"`
	Accuracy     *float64 `json:"accuracy"`
	Confidence   *int     `json:"confidence"`
	BatteryLevel *int     `json:"batteryLevel"`
	Timestamp    int64    `json:"timestamp"`
}

type Reading struct {
	Seq             uint     `gorm:"primaryKey;autoIncrement" json:"-"`
	ID              string   `gorm:"index;size:64" json:"id"`
	DeviceID        string   `gorm:"index" json:"deviceId"`
	Latitude        *float64 `json:"latitude"`
	Longitude       *float64 `json:"longitude"`
	Temperature     *float64 `json:"temperature"`
	Pressure        *float64 `json:"pressure,omitempty"`
	Accuracy        *float64 `json:"accuracy"`
	Confidence      *int     `json:"confidence"`
	BatteryLevel    *int     `json:"batteryLevel"`
	ClientTimestamp int64    `json:"clientTimestamp"`
	ServerTimestamp int64    `gorm:"index" json:"serverTimestamp"`
	SpatialKey      string   `gorm:"index;size:8" json:"spatialKey"`
	Origin          Origin   `gorm:"type:varchar(16)" json:"origin"`
	Flags           []string `gorm:"serializer:json" json:"flags,omitempty"`
}

// HasTemperature reports whether the reading can take part in temperature
// aggregates.
func (r Reading) HasTemperature() bool {
	return r.Temperature != nil
}

// ReadingView is the dashboard shape of a reading.
type ReadingView struct {
	ID          string   `json:"id"`
	Lat         float64  `json:"lat"`
	Lng         float64  `json:"lng"`
	Temperature *float64 `json:"temperature"`
	Pressure    *float64 `json:"pressure"`
	Timestamp   int64    `json:"timestamp"`
	DeviceID    string   `json:"deviceId"`
	HexID       string   `json:"hexId"`
	Confidence  *int     `json:"confidence"`
	Accuracy    *float64 `json:"accuracy"`
	Source      Origin   `json:"source"`
}

// NewReadingView expects a reading with valid coordinates. The client
// timestamp is shown when the device sent one.
func NewReadingView(r Reading) ReadingView {
	ts := r.ClientTimestamp
	if ts == 0 {
		ts = r.ServerTimestamp
	}
	return ReadingView{
		ID:          r.ID,
		Lat:         *r.Latitude,
		Lng:         *r.Longitude,
		Temperature: r.Temperature,
		Pressure:    r.Pressure,
		Timestamp:   ts,
		DeviceID:    r.DeviceID,
		HexID:       r.SpatialKey,
		Confidence:  r.Confidence,
		Accuracy:    r.Accuracy,
		Source:      r.Origin,
	}
}

type Location struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

type Device struct {
	DeviceID         string   `gorm:"primaryKey" json:"deviceId"`
	LastSeen         int64    `json:"lastSeen"`
	TotalReadings    int64    `json:"totalReadings"`
	LastLocation     Location `gorm:"embedded;embeddedPrefix:last_" json:"lastLocation"`
	LastBatteryLevel *int     `json:"lastBatteryLevel"`
	LastConfidence   *int     `json:"lastConfidence"`
	// Seq orders devices updated within the same millisecond.
	Seq uint64 `json:"-"`
}

type Anomaly struct {
	ID        uint        `gorm:"primaryKey" json:"id"`
	DeviceID  string      `gorm:"index" json:"deviceId"`
	ReadingID string      `gorm:"index" json:"readingId"`
	Timestamp int64       `json:"timestamp"`
	Type      AnomalyType `gorm:"type:varchar(24);check:type IN ('temperature_range','gps_accuracy','future_timestamp','stale_timestamp')" json:"type"`
	Message   string      `json:"message"`
}

type TileSummary struct {
	HexID       string     `json:"hexId"`
	SampleCount int        `json:"sampleCount"`
	MedianTemp  float64    `json:"medianTemp"`
	Confidence  int        `json:"confidence"`
	LastUpdated int64      `json:"lastUpdated"`
	Coordinates [2]float64 `json:"coordinates"`
}

type NetworkStats struct {
	AvgTemperature       float64 `json:"avgTemperature"`
	AvgTemperatureSource string  `json:"avgTemperatureSource"`
	HasRealData          bool    `json:"hasRealData"`
	ActiveDeviceCount    int     `json:"activeDevices"`
	TotalDevices         int     `json:"totalDevices"`
	TotalReadings        int     `json:"totalReadings"`
	RealDevices          int     `json:"realDevices"`
	RealReadings         int     `json:"realReadings"`
	NetworkHealth        float64 `json:"networkHealth"`
	LastSync             int64   `json:"lastSync"`
	LastUpdate           int64   `json:"lastUpdate"`
}

type DeviceSnapshot struct {
	DeviceID      string   `json:"deviceId"`
	Status        string   `json:"status"`
	Battery       *int     `json:"battery"`
	Temperature   *float64 `json:"temperature"`
	GpsAccuracy   *float64 `json:"gpsAccuracy"`
	DataQuality   *int     `json:"dataQuality"`
	LastReading   int64    `json:"lastReading"`
	TotalReadings int64    `json:"totalReadings"`
	LastLocation  Location `json:"lastLocation"`
	HexID         string   `json:"hexId"`
}
