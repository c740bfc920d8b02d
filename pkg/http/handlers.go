package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"

	"thermonet.xyz/thermonet-service/pkg/common"
	"thermonet.xyz/thermonet-service/pkg/models"
	"thermonet.xyz/thermonet-service/pkg/thermo"
)

const (
	msgInvalidJSON     = "Invalid JSON"
	msgInvalidReadings = "Invalid readings data"
	msgInvalidBounds   = "Invalid bounds parameter"
	msgHexIDRequired   = "hexId parameter required"
	msgInvalidHexID    = "Invalid hexId parameter"
	msgTileNotFound    = "Tile not found"
	msgRateLimited     = "Rate limit exceeded"
	msgInternal        = "Internal server error"
	msgLimiterDisabled = "Rate limiting is disabled"
)

const (
	queryParamFilter  = "filter"
	queryParamBounds  = "bounds"
	queryParamHexID   = "hexId"
	pathParamDeviceID = "device_id"
)

func errorJSON(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

func internalError(c *gin.Context, err error) {
	common.GetLoggerWith(common.LoggerNameRestfulServer).Error("Request failed",
		zap.String("path", c.FullPath()),
		zap.Error(err),
	)
	errorJSON(c, http.StatusInternalServerError, msgInternal)
}

func (rs *RestfulServer) SyncReadings(c *gin.Context) {
	var raw []models.RawReading
	if err := c.ShouldBindJSON(&raw); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			errorJSON(c, http.StatusBadRequest, msgInvalidReadings)
		} else {
			errorJSON(c, http.StatusBadRequest, msgInvalidJSON)
		}
		return
	}

	// rejected batches must not cost the devices a token
	if err := thermo.ValidateRawReadings(raw); err != nil {
		errorJSON(c, http.StatusBadRequest, msgInvalidReadings)
		return
	}

	if !rs.CheckBatchLimiter(thermo.DistinctDeviceIDs(raw)) {
		errorJSON(c, http.StatusTooManyRequests, msgRateLimited)
		return
	}

	res, err := rs.Thermo.Readings.Ingest(raw)
	if err != nil {
		if errors.Is(err, thermo.ErrInvalidPayload) {
			errorJSON(c, http.StatusBadRequest, msgInvalidReadings)
			return
		}
		internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"synced":        res.AcceptedCount,
		"totalReadings": res.TotalStoredCount,
		"activeDevices": res.DistinctActiveDeviceCount,
		"timestamp":     res.Timestamp,
	})
}

func (rs *RestfulServer) GetTemperatures(c *gin.Context) {
	spec, err := thermo.ParseQuerySpec(c.Query(queryParamFilter), c.Query(queryParamBounds))
	if err != nil {
		errorJSON(c, http.StatusBadRequest, msgInvalidBounds)
		return
	}

	result := rs.Thermo.Readings.Query(spec)
	data := common.Mapper(result.Readings, models.NewReadingView)

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"data":         data,
		"readings":     data,
		"count":        len(data),
		"realReadings": result.RealCount,
		"mockReadings": result.MockCount,
		"timestamp":    rs.Thermo.Now().UnixMilli(),
	})
}

func (rs *RestfulServer) GetStats(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    rs.Thermo.Stats.ComputeStats(),
	})
}

func (rs *RestfulServer) GetDevice(c *gin.Context) {
	snapshot, ok := rs.Thermo.Stats.LatestDevice()
	if !ok {
		// nothing has reported yet, which is not an error
		c.JSON(http.StatusOK, gin.H{"success": true, "data": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": snapshot})
}

func (rs *RestfulServer) GetTile(c *gin.Context) {
	tile, err := rs.Thermo.Tiles.ComputeTile(c.Query(queryParamHexID))
	switch {
	case errors.Is(err, thermo.ErrMissingParameter):
		errorJSON(c, http.StatusBadRequest, msgHexIDRequired)
		return
	case errors.Is(err, thermo.ErrInvalidParameter):
		errorJSON(c, http.StatusBadRequest, msgInvalidHexID)
		return
	case errors.Is(err, thermo.ErrTileNotFound):
		errorJSON(c, http.StatusNotFound, msgTileNotFound)
		return
	case err != nil:
		internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": tile})
}

func (rs *RestfulServer) GetAnomalies(c *gin.Context) {
	deviceID := c.Param(pathParamDeviceID)

	anomalies, err := rs.Thermo.Anomaly.GetDeviceAnomalies(deviceID)
	if err != nil {
		internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": anomalies})
}

type LimiterRequest struct {
	Rate  float64 `json:"rate"`
	Burst int     `json:"burst"`
}

var limiterRequestSchema = z.Struct(z.Shape{
	"rate":  z.Float64().Required().GT(0),
	"burst": z.Int().Required().GT(0),
})

func (rs *RestfulServer) PostLimiter(c *gin.Context) {
	deviceID := c.Param(pathParamDeviceID)

	var req LimiterRequest
	if err := limiterRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	if !rs.SetLimiter(deviceID, req.Rate, req.Burst) {
		errorJSON(c, http.StatusConflict, msgLimiterDisabled)
		return
	}

	c.Status(http.StatusOK)
}

func (rs *RestfulServer) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
