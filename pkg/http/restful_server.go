package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"golang.org/x/time/rate"
	"thermonet.xyz/thermonet-service/pkg/thermo"
)

type RestfulServer struct {
	Server           *gin.Engine
	Thermo           *thermo.Thermo
	RateLimiterStore *thermo.RateLimiterStore
	// Gatherer backs /metrics; nil leaves the route out.
	Gatherer    prometheus.Gatherer
	CorsOrigins []string
}

// CheckBatchLimiter reports whether every device of a batch may submit now.
func (rs *RestfulServer) CheckBatchLimiter(deviceIDs []string) bool {
	if rs.RateLimiterStore == nil {
		return true
	}
	return rs.RateLimiterStore.AllowBatch(deviceIDs)
}

func (rs *RestfulServer) SetLimiter(deviceID string, deviceRate float64, deviceBurst int) bool {
	if rs.RateLimiterStore == nil {
		return false
	}
	rs.RateLimiterStore.SetLimiter(deviceID, rate.Limit(deviceRate), deviceBurst)
	return true
}

// Cors answers preflight requests itself and decorates every other response.
func (rs *RestfulServer) Cors() gin.HandlerFunc {
	origins := rs.CorsOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	c := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	})

	return func(ctx *gin.Context) {
		c.HandlerFunc(ctx.Writer, ctx.Request)
		if ctx.Request.Method == http.MethodOptions {
			ctx.AbortWithStatus(http.StatusOK)
			return
		}
		ctx.Next()
	}
}

func (rs *RestfulServer) Setup() {
	rs.Server.HandleMethodNotAllowed = true
	rs.Server.Use(rs.Cors())

	rs.Server.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "API endpoint not found"})
	})
	rs.Server.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed"})
	})

	rs.Server.GET("/healthz", rs.HealthCheck)
	if rs.Gatherer != nil {
		rs.Server.GET("/metrics", gin.WrapH(promhttp.HandlerFor(rs.Gatherer, promhttp.HandlerOpts{})))
	}

	api := rs.Server.Group("/api")
	{
		api.POST("/sync-readings", rs.SyncReadings)
		api.GET("/temperatures", rs.GetTemperatures)
		api.GET("/stats", rs.GetStats)
		api.GET("/device", rs.GetDevice)
		api.GET("/tiles", rs.GetTile)

		devices := api.Group("/devices/:device_id")
		{
			devices.GET("/anomalies", rs.GetAnomalies)
			devices.POST("/limiter", rs.PostLimiter)
		}
	}
}
