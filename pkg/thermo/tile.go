package thermo

import (
	"fmt"
	"slices"

	"go.uber.org/zap"
	"thermonet.xyz/thermonet-service/pkg/common"
	"thermonet.xyz/thermonet-service/pkg/models"
	"thermonet.xyz/thermonet-service/pkg/spatial"
)

const (
	tileConfidenceBase    = 60
	tileConfidenceStep    = 5
	tileConfidenceCeiling = 95
)

// LowerMedian returns the middle value of a sorted copy of values. Even counts
// take the lower of the two middle values, never their average.
func LowerMedian(values []float64) float64 {
	sorted := slices.Clone(values)
	slices.Sort(sorted)
	return sorted[(len(sorted)-1)/2]
}

// TileConfidence saturates at 95 from 7 samples on.
func TileConfidence(sampleCount int) int {
	return min(tileConfidenceCeiling, tileConfidenceBase+tileConfidenceStep*sampleCount)
}

func (t *Thermo) computeTile(spatialKey string) (*models.TileSummary, error) {
	if spatialKey == "" {
		return nil, fmt.Errorf("%w: hexId", ErrMissingParameter)
	}
	if !spatial.IsKey(spatialKey) {
		return nil, fmt.Errorf("%w: hexId %q is not an 8 digit lower-case hex key", ErrInvalidParameter, spatialKey)
	}

	selection := t.Store.Select(func(r *models.Reading) bool {
		return r.SpatialKey == spatialKey &&
			r.HasTemperature() &&
			spatial.ValidCoordinates(r.Latitude, r.Longitude)
	})
	if len(selection) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrTileNotFound, spatialKey)
	}

	temps := make([]float64, len(selection))
	var latSum, lngSum float64
	var lastUpdated int64
	for i, r := range selection {
		temps[i] = *r.Temperature
		latSum += *r.Latitude
		lngSum += *r.Longitude
		lastUpdated = max(lastUpdated, r.ServerTimestamp)
	}

	n := len(selection)
	tile := &models.TileSummary{
		HexID:       spatialKey,
		SampleCount: n,
		MedianTemp:  LowerMedian(temps),
		Confidence:  TileConfidence(n),
		LastUpdated: lastUpdated,
		Coordinates: [2]float64{latSum / float64(n), lngSum / float64(n)},
	}

	common.GetLoggerWith(
		common.LoggerNameThermoCore,
		zap.String(common.LoggerFieldThermoCategory, common.LoggerCategoryThermoTile),
	).Debug("Computed tile", zap.Reflect("tile", tile))

	return tile, nil
}

type ITilesImpl struct {
	thermo *Thermo
}

func (it *ITilesImpl) ComputeTile(spatialKey string) (*models.TileSummary, error) {
	return it.thermo.computeTile(spatialKey)
}

func (t *Thermo) GetITiles() ITiles {
	return &ITilesImpl{thermo: t}
}
