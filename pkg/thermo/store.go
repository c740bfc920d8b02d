package thermo

import (
	"sync"

	"thermonet.xyz/thermonet-service/pkg/models"
)

const DefaultCapacity = 1000

// ReadingStore keeps the most recent readings in arrival order, bounded by
// capacity, plus a per-device summary. Eviction is FIFO from the head.
// Devices are never removed, even after all of their readings are evicted.
type ReadingStore struct {
	mu       sync.RWMutex
	capacity int
	readings []models.Reading
	devices  map[string]*models.Device
	seq      uint64
	lastSync int64
}

type AppendResult struct {
	Accepted      int
	Stored        int
	ActiveDevices int
	Evicted       int
}

func NewReadingStore(capacity int) *ReadingStore {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &ReadingStore{
		capacity: capacity,
		readings: make([]models.Reading, 0, capacity),
		devices:  make(map[string]*models.Device),
	}
}

func (s *ReadingStore) Capacity() int {
	return s.capacity
}

// PlanDevices returns the device records as they will look once batch is
// appended at now. The store is not modified.
func (s *ReadingStore) PlanDevices(batch []models.Reading, now int64) []models.Device {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.planDevices(batch, now)
}

func (s *ReadingStore) planDevices(batch []models.Reading, now int64) []models.Device {
	planned := make(map[string]*models.Device)
	order := make([]string, 0)
	seq := s.seq

	for i := range batch {
		r := &batch[i]
		if r.DeviceID == "" {
			continue
		}

		d, ok := planned[r.DeviceID]
		if !ok {
			d = &models.Device{DeviceID: r.DeviceID}
			if existing, found := s.devices[r.DeviceID]; found {
				*d = *existing
			}
			planned[r.DeviceID] = d
			order = append(order, r.DeviceID)
		}

		seq++
		d.TotalReadings++
		d.LastSeen = now
		d.LastLocation = models.Location{Latitude: r.Latitude, Longitude: r.Longitude}
		d.LastBatteryLevel = r.BatteryLevel
		d.LastConfidence = r.Confidence
		d.Seq = seq
	}

	devices := make([]models.Device, 0, len(order))
	for _, id := range order {
		devices = append(devices, *planned[id])
	}
	return devices
}

// Append adds batch in order, evicts the oldest readings beyond capacity and
// updates the device index, all under one lock.
func (s *ReadingStore) Append(batch []models.Reading, now int64) AppendResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	devices := s.planDevices(batch, now)

	s.readings = append(s.readings, batch...)
	evicted := 0
	if over := len(s.readings) - s.capacity; over > 0 {
		copy(s.readings, s.readings[over:])
		clear(s.readings[s.capacity:])
		s.readings = s.readings[:s.capacity]
		evicted = over
	}

	for i := range devices {
		d := devices[i]
		s.devices[d.DeviceID] = &d
		if d.Seq > s.seq {
			s.seq = d.Seq
		}
	}
	s.lastSync = now

	return AppendResult{
		Accepted:      len(batch),
		Stored:        len(s.readings),
		ActiveDevices: len(s.devices),
		Evicted:       evicted,
	}
}

// Hydrate replaces the store content with previously journaled state. Only the
// newest capacity readings are kept.
func (s *ReadingStore) Hydrate(readings []models.Reading, devices []models.Device) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if over := len(readings) - s.capacity; over > 0 {
		readings = readings[over:]
	}
	s.readings = append(make([]models.Reading, 0, s.capacity), readings...)

	s.devices = make(map[string]*models.Device, len(devices))
	s.seq = 0
	for i := range devices {
		d := devices[i]
		s.devices[d.DeviceID] = &d
		if d.Seq > s.seq {
			s.seq = d.Seq
		}
		if d.LastSeen > s.lastSync {
			s.lastSync = d.LastSeen
		}
	}
}

func (s *ReadingStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.readings)
}

func (s *ReadingStore) DeviceCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.devices)
}

func (s *ReadingStore) LastSync() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastSync
}

// LastServerTimestamp is the server timestamp of the newest stored reading,
// or 0 for an empty store.
func (s *ReadingStore) LastServerTimestamp() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.readings) == 0 {
		return 0
	}
	return s.readings[len(s.readings)-1].ServerTimestamp
}

// Snapshot copies the stored readings in arrival order.
func (s *ReadingStore) Snapshot() []models.Reading {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Reading(nil), s.readings...)
}

// Select copies the readings keep accepts, in arrival order.
func (s *ReadingStore) Select(keep func(*models.Reading) bool) []models.Reading {
	s.mu.RLock()
	defer s.mu.RUnlock()

	selected := make([]models.Reading, 0)
	for i := range s.readings {
		if keep(&s.readings[i]) {
			selected = append(selected, s.readings[i])
		}
	}
	return selected
}

func (s *ReadingStore) Device(deviceID string) (models.Device, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	d, ok := s.devices[deviceID]
	if !ok {
		return models.Device{}, false
	}
	return *d, true
}

// MostRecentDevice returns the device seen last; within one batch the device
// of the later reading wins.
func (s *ReadingStore) MostRecentDevice() (models.Device, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var latest *models.Device
	for _, d := range s.devices {
		if latest == nil || d.LastSeen > latest.LastSeen ||
			(d.LastSeen == latest.LastSeen && d.Seq > latest.Seq) {
			latest = d
		}
	}
	if latest == nil {
		return models.Device{}, false
	}
	return *latest, true
}
