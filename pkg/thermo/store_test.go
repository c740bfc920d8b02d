package thermo

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"thermonet.xyz/thermonet-service/pkg/models"
	_ "thermonet.xyz/thermonet-service/pkg/testing"
)

func TestReadingStore_FIFOEviction(t *testing.T) {
	store := NewReadingStore(1000)

	evicted := 0
	for b := range 12 {
		batch := make([]models.Reading, 0, 100)
		for i := range 100 {
			batch = append(batch, storedReading(fmt.Sprintf("r-%d", b*100+i+1), "dev-1"))
		}
		res := store.Append(batch, int64(b))
		assert.Equal(t, 100, res.Accepted)
		assert.LessOrEqual(t, res.Stored, 1000)
		evicted += res.Evicted
	}

	snapshot := store.Snapshot()
	require.Len(t, snapshot, 1000)
	assert.Equal(t, 200, evicted)
	assert.Equal(t, "r-201", snapshot[0].ID)
	assert.Equal(t, "r-1200", snapshot[999].ID)

	device, ok := store.Device("dev-1")
	require.True(t, ok)
	assert.Equal(t, int64(1200), device.TotalReadings)
}

func TestReadingStore_SingleBatchOverCapacity(t *testing.T) {
	store := NewReadingStore(3)

	batch := make([]models.Reading, 0, 5)
	for i := range 5 {
		batch = append(batch, storedReading(fmt.Sprintf("r-%d", i+1), "dev-1"))
	}
	res := store.Append(batch, 1)

	assert.Equal(t, AppendResult{Accepted: 5, Stored: 3, ActiveDevices: 1, Evicted: 2}, res)
	ids := make([]string, 0, 3)
	for _, r := range store.Snapshot() {
		ids = append(ids, r.ID)
	}
	assert.Equal(t, []string{"r-3", "r-4", "r-5"}, ids)
}

func TestReadingStore_DevicesOutliveEviction(t *testing.T) {
	store := NewReadingStore(2)

	store.Append([]models.Reading{storedReading("a-1", "dev-a")}, 1)
	store.Append([]models.Reading{storedReading("b-1", "dev-b"), storedReading("b-2", "dev-b")}, 2)

	assert.Equal(t, 2, store.Len())
	assert.Equal(t, 2, store.DeviceCount())
	assert.Empty(t, store.Select(func(r *models.Reading) bool { return r.DeviceID == "dev-a" }))

	device, ok := store.Device("dev-a")
	require.True(t, ok)
	assert.Equal(t, int64(1), device.TotalReadings)
	assert.Equal(t, int64(1), device.LastSeen)
}

func TestReadingStore_PlanDevicesDoesNotMutate(t *testing.T) {
	store := NewReadingStore(10)
	store.Append([]models.Reading{storedReading("r-1", "dev-1")}, 1)

	planned := store.PlanDevices([]models.Reading{
		storedReading("r-2", "dev-1"),
		storedReading("r-3", "dev-2"),
	}, 5)

	require.Len(t, planned, 2)
	assert.Equal(t, "dev-1", planned[0].DeviceID)
	assert.Equal(t, int64(2), planned[0].TotalReadings)
	assert.Equal(t, int64(5), planned[0].LastSeen)
	assert.Equal(t, int64(1), planned[1].TotalReadings)

	assert.Equal(t, 1, store.Len())
	assert.Equal(t, 1, store.DeviceCount())
	device, _ := store.Device("dev-1")
	assert.Equal(t, int64(1), device.TotalReadings)
	assert.Equal(t, int64(1), store.LastSync())
}

func TestReadingStore_MostRecentDevice(t *testing.T) {
	store := NewReadingStore(10)

	_, ok := store.MostRecentDevice()
	assert.False(t, ok)

	store.Append([]models.Reading{storedReading("r-1", "dev-a"), storedReading("r-2", "dev-b")}, 100)
	device, ok := store.MostRecentDevice()
	require.True(t, ok)
	assert.Equal(t, "dev-b", device.DeviceID)

	store.Append([]models.Reading{storedReading("r-3", "dev-a")}, 200)
	device, _ = store.MostRecentDevice()
	assert.Equal(t, "dev-a", device.DeviceID)
}

func TestReadingStore_Hydrate(t *testing.T) {
	store := NewReadingStore(2)

	readings := []models.Reading{
		storedReading("r-1", "dev-1"),
		storedReading("r-2", "dev-1"),
		storedReading("r-3", "dev-1"),
	}
	readings[2].ServerTimestamp = 300
	devices := []models.Device{{DeviceID: "dev-1", LastSeen: 300, TotalReadings: 3, Seq: 3}}

	store.Hydrate(readings, devices)

	snapshot := store.Snapshot()
	require.Len(t, snapshot, 2)
	assert.Equal(t, "r-2", snapshot[0].ID)
	assert.Equal(t, int64(300), store.LastSync())
	assert.Equal(t, int64(300), store.LastServerTimestamp())

	// sequence numbers continue after the hydrated devices
	store.Append([]models.Reading{storedReading("r-4", "dev-2")}, 300)
	device, _ := store.MostRecentDevice()
	assert.Equal(t, "dev-2", device.DeviceID)
}

func TestReadingStore_DefaultCapacity(t *testing.T) {
	assert.Equal(t, DefaultCapacity, NewReadingStore(0).Capacity())
	assert.Equal(t, DefaultCapacity, NewReadingStore(-5).Capacity())
	assert.Equal(t, int64(0), NewReadingStore(0).LastServerTimestamp())
}

func TestReadingStore_ConcurrentAppend(t *testing.T) {
	store := NewReadingStore(50)

	var wg sync.WaitGroup
	for g := range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range 10 {
				store.Append([]models.Reading{storedReading(fmt.Sprintf("g%d-%d", g, i), fmt.Sprintf("dev-%d", g))}, 1)
				_ = store.Snapshot()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, store.Len())
	assert.Equal(t, 20, store.DeviceCount())

	total := int64(0)
	for g := range 20 {
		d, ok := store.Device(fmt.Sprintf("dev-%d", g))
		require.True(t, ok)
		total += d.TotalReadings
	}
	assert.Equal(t, int64(200), total)
}
