package grpc

import (
	"thermonet.xyz/thermonet-service/pkg/thermo"
)

type ReadingServer struct {
	Thermo           *thermo.Thermo
	RateLimiterStore *thermo.RateLimiterStore
	UnimplementedThermoNetServiceServer
}

func (s *ReadingServer) CheckBatchLimiter(deviceIDs []string) bool {
	if s.RateLimiterStore == nil {
		return true
	}
	return s.RateLimiterStore.AllowBatch(deviceIDs)
}
