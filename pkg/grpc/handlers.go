package grpc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"thermonet.xyz/thermonet-service/pkg/common"
	"thermonet.xyz/thermonet-service/pkg/models"
	"thermonet.xyz/thermonet-service/pkg/thermo"
)

const (
	fieldReadings = "readings"
	fieldFilter   = "filter"
	fieldBounds   = "bounds"
	fieldHexID    = "hexId"
)

// rawReadingsFrom decodes the "readings" list of a request through its JSON
// form, the same document the REST endpoint accepts.
func rawReadingsFrom(req *structpb.Struct) ([]models.RawReading, error) {
	value, ok := req.GetFields()[fieldReadings]
	if !ok {
		return nil, fmt.Errorf("%w: %s is required", thermo.ErrInvalidPayload, fieldReadings)
	}
	if _, isList := value.GetKind().(*structpb.Value_ListValue); !isList {
		return nil, fmt.Errorf("%w: %s must be a list", thermo.ErrInvalidPayload, fieldReadings)
	}

	b, err := json.Marshal(value.AsInterface())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", thermo.ErrInvalidPayload, err)
	}

	var raw []models.RawReading
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", thermo.ErrInvalidPayload, err)
	}
	return raw, nil
}

// toStruct converts v through its JSON form so gRPC and REST share field names.
func toStruct(v any) (*structpb.Struct, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return structpb.NewStruct(m)
}

func respond(v any) (*structpb.Struct, error) {
	out, err := toStruct(v)
	if err != nil {
		return nil, toStatus(err)
	}
	return out, nil
}

func toStatus(err error) error {
	switch {
	case errors.Is(err, thermo.ErrInvalidPayload),
		errors.Is(err, thermo.ErrMissingParameter),
		errors.Is(err, thermo.ErrInvalidParameter):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, thermo.ErrTileNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, thermo.ErrRateLimited):
		return status.Error(codes.ResourceExhausted, err.Error())
	}

	common.GetLoggerWith(common.LoggerNameGrpcServer).Error("Request failed", zap.Error(err))
	return status.Error(codes.Internal, "internal server error")
}

type envelope struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

type syncResponse struct {
	Success bool `json:"success"`
	*thermo.IngestResult
}

type temperaturesResponse struct {
	Success      bool                 `json:"success"`
	Data         []models.ReadingView `json:"data"`
	Count        int                  `json:"count"`
	RealReadings int                  `json:"realReadings"`
	MockReadings int                  `json:"mockReadings"`
	Timestamp    int64                `json:"timestamp"`
}

func (s *ReadingServer) SyncReadings(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	raw, err := rawReadingsFrom(req)
	if err != nil {
		return nil, toStatus(err)
	}

	res, err := s.Thermo.Readings.Ingest(raw)
	if err != nil {
		return nil, toStatus(err)
	}

	return respond(syncResponse{Success: true, IngestResult: res})
}

func (s *ReadingServer) QueryTemperatures(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	fields := req.GetFields()
	spec, err := thermo.ParseQuerySpec(fields[fieldFilter].GetStringValue(), fields[fieldBounds].GetStringValue())
	if err != nil {
		return nil, toStatus(err)
	}

	result := s.Thermo.Readings.Query(spec)
	data := common.Mapper(result.Readings, models.NewReadingView)

	return respond(temperaturesResponse{
		Success:      true,
		Data:         data,
		Count:        len(data),
		RealReadings: result.RealCount,
		MockReadings: result.MockCount,
		Timestamp:    s.Thermo.Now().UnixMilli(),
	})
}

func (s *ReadingServer) GetStats(ctx context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	return respond(envelope{Success: true, Data: s.Thermo.Stats.ComputeStats()})
}

func (s *ReadingServer) GetDevice(ctx context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	snapshot, ok := s.Thermo.Stats.LatestDevice()
	if !ok {
		return respond(envelope{Success: true})
	}
	return respond(envelope{Success: true, Data: snapshot})
}

func (s *ReadingServer) GetTile(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	tile, err := s.Thermo.Tiles.ComputeTile(req.GetFields()[fieldHexID].GetStringValue())
	if err != nil {
		return nil, toStatus(err)
	}
	return respond(envelope{Success: true, Data: tile})
}
