package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
	"thermonet.xyz/thermonet-service/pkg/common"
	"thermonet.xyz/thermonet-service/pkg/thermo"
)

// CreateRateLimitInterceptor guards the listed methods with the per-device
// limiter. Requests whose readings cannot be decoded or fail validation are
// passed on without spending tokens, and the handler reports them as invalid.
func (s *ReadingServer) CreateRateLimitInterceptor(fullMethods []string) grpc.UnaryServerInterceptor {
	targetMethods := common.Reducer(fullMethods,
		func(m map[string]bool, method string) map[string]bool {
			m[method] = true
			return m
		},
		map[string]bool{},
	)

	return func(
		ctx context.Context,
		req any,
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (any, error) {
		if targetMethods[info.FullMethod] {
			if r, ok := req.(*structpb.Struct); ok {
				if raw, err := rawReadingsFrom(r); err == nil && thermo.ValidateRawReadings(raw) == nil {
					if !s.CheckBatchLimiter(thermo.DistinctDeviceIDs(raw)) {
						return nil, status.Errorf(codes.ResourceExhausted, "rate limit exceeded")
					}
				}
			}
		}

		return handler(ctx, req)
	}
}
