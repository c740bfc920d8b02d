package spatial

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func ptr(v float64) *float64 { return &v }

func TestHexEncoderKnownKeys(t *testing.T) {
	enc := HexEncoder{}

	assert.Equal(t, "4a809500", enc.Encode(0, 0))
	assert.Equal(t, "b0b49c38", enc.Encode(37.7749, -122.4194))
	assert.Equal(t, "84e05710", enc.Encode(40.7128, -74.0060))
	assert.Equal(t, "95002a00", enc.Encode(90, 180))
}

func TestHexEncoderPadsShortKeys(t *testing.T) {
	enc := HexEncoder{}

	// lat part collapses to "0", only the left pad keeps the width
	assert.Equal(t, "00009500", enc.Encode(-90, 0))
	assert.Equal(t, "00000000", enc.Encode(-90, -180))
}

func TestHexEncoderDeterministicAndFixedWidth(t *testing.T) {
	enc := HexEncoder{}
	rnd := rand.New(rand.NewSource(42))

	for range 1000 {
		lat := rnd.Float64()*180 - 90
		lng := rnd.Float64()*360 - 180

		first := enc.Encode(lat, lng)
		second := enc.Encode(lat, lng)

		assert.Equal(t, first, second)
		assert.Len(t, first, KeyWidth)
		assert.True(t, IsKey(first), "key %q is not lower-case hex", first)
	}
}

func TestKeyForSentinel(t *testing.T) {
	enc := HexEncoder{}

	cases := []struct {
		name     string
		lat, lng *float64
	}{
		{"missing lat", nil, ptr(10)},
		{"missing lng", ptr(10), nil},
		{"nan", ptr(math.NaN()), ptr(10)},
		{"inf", ptr(10), ptr(math.Inf(1))},
		{"lat out of range", ptr(91), ptr(10)},
		{"lng out of range", ptr(10), ptr(-180.5)},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, SentinelKey, KeyFor(enc, c.lat, c.lng))
		})
	}

	assert.Equal(t, enc.Encode(37.7749, -122.4194), KeyFor(enc, ptr(37.7749), ptr(-122.4194)))
	// zero is a real coordinate, not a missing one
	assert.Equal(t, "4a809500", KeyFor(enc, ptr(0), ptr(0)))
}

func TestIsKey(t *testing.T) {
	assert.True(t, IsKey("b0b49c38"))
	assert.False(t, IsKey("B0B49C38"))
	assert.False(t, IsKey("b0b49c3"))
	assert.False(t, IsKey("b0b49c3g"))
}
