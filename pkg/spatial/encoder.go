// Package spatial turns coordinates into the short tile keys readings are
// grouped by.
package spatial

import (
	"math"
	"strconv"
	"strings"
)

const (
	// SentinelKey marks a reading without usable coordinates.
	SentinelKey = "00000000"

	KeyWidth = 8

	latOffset = 90.0
	lngOffset = 180.0
	scale     = 1_000_000.0
	partWidth = 4
)

// Encoder maps a coordinate to a fixed-width tile key. Implementations must be
// pure: equal inputs give equal keys.
type Encoder interface {
	Encode(lat, lng float64) string
}

// HexEncoder keeps the low 4 hex digits of each scaled, offset coordinate.
// Keys alias across the globe once the high digits are dropped, so equal keys
// are a grouping hint and not proof that two readings are close.
type HexEncoder struct{}

func (HexEncoder) Encode(lat, lng float64) string {
	key := lowHex(lat+latOffset) + lowHex(lng+lngOffset)
	if len(key) < KeyWidth {
		key = strings.Repeat("0", KeyWidth-len(key)) + key
	}
	return key
}

func lowHex(shifted float64) string {
	h := strconv.FormatInt(int64(math.Floor(shifted*scale)), 16)
	if len(h) > partWidth {
		return h[len(h)-partWidth:]
	}
	return h
}

// ValidCoordinates reports whether lat/lng are present, finite and in range.
func ValidCoordinates(lat, lng *float64) bool {
	if lat == nil || lng == nil {
		return false
	}
	if math.IsNaN(*lat) || math.IsInf(*lat, 0) || math.IsNaN(*lng) || math.IsInf(*lng, 0) {
		return false
	}
	return *lat >= -latOffset && *lat <= latOffset && *lng >= -lngOffset && *lng <= lngOffset
}

// KeyFor returns enc's key for the coordinate, or SentinelKey when the
// coordinate cannot be encoded.
func KeyFor(enc Encoder, lat, lng *float64) string {
	if !ValidCoordinates(lat, lng) {
		return SentinelKey
	}
	return enc.Encode(*lat, *lng)
}

// IsKey reports whether s has the shape of a tile key.
func IsKey(s string) bool {
	if len(s) != KeyWidth {
		return false
	}
	for _, c := range s {
		if !(c >= '0' && c <= '9' || c >= 'a' && c <= 'f') {
			return false
		}
	}
	return true
}
