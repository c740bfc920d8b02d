package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"math/rand"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	thermoGrpc "thermonet.xyz/thermonet-service/pkg/grpc"
)

var maxDevices int = 1000
var httpHostPort string = "127.0.0.1:8080"
var grpcHostPort string = "127.0.0.1:8081"

var grpcClient thermoGrpc.ThermoNetServiceClient

var rnd *rand.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
var rndMu sync.Mutex

var failures atomic.Int64

func main() {
	deviceIDs := make([]string, maxDevices)
	for i := range maxDevices {
		deviceIDs[i] = uuid.NewString()
	}
	fmt.Printf("generated %v device IDs\n", maxDevices)

	resp, err := http.Get(fmt.Sprintf("http://%s/healthz", httpHostPort))
	if err != nil {
		log.Fatal("Failed to connect to HTTP server:", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		log.Fatal("HTTP server not available")
	}

	fmt.Printf("http server verified\n")

	conn, err := grpc.NewClient(grpcHostPort, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		log.Fatal("Failed to connect to gRPC server:", err)
	}
	defer conn.Close()
	grpcClient = thermoGrpc.NewThermoNetServiceClient(conn)
	if _, err := grpcClient.GetStats(context.Background(), &emptypb.Empty{}); err != nil {
		log.Fatal("gRPC server not available:", err)
	}

	fmt.Printf("gRPC server verified and connected\n")

	var startTime time.Time
	var usedTime time.Duration

	startTime = time.Now()
	wg := sync.WaitGroup{}
	for i := range maxDevices {
		wg.Add(1)
		go func() {
			syncReadings(deviceIDs[i])
			fmt.Printf("\rsynced first reading for device %v", i)
			wg.Done()
		}()
	}
	wg.Wait()
	usedTime = time.Since(startTime)

	fmt.Printf(
		"\rsynced first reading for %v devices: used time=%v seconds, throughput=%v action/second\n",
		maxDevices, usedTime.Seconds(), float64(maxDevices)/usedTime.Seconds(),
	)

	startTime = time.Now()
	wg = sync.WaitGroup{}
	for i := range maxDevices {
		wg.Add(1)
		go func() {
			doAction(deviceIDs[i])
			wg.Done()
		}()
	}
	wg.Wait()
	usedTime = time.Since(startTime)

	fmt.Printf(
		"\n\rdid actions for %v devices: used time=%v seconds, throughput=%v action/second, failures=%v\n",
		maxDevices, usedTime.Seconds(), float64(maxDevices*3)/usedTime.Seconds(), failures.Load(),
	)
}

func flipCoin() bool {
	rndMu.Lock()
	defer rndMu.Unlock()
	return rnd.Int31n(100000)%2 == 0
}

func rndFloat64(min, max float64, decimal int) float64 {
	rndMu.Lock()
	val := min + rnd.Float64()*(max-min)
	rndMu.Unlock()
	multiplier := math.Pow10(decimal)
	return math.Round(val*multiplier) / multiplier
}

func reportFailure(action string, err error) {
	failures.Add(1)
	fmt.Printf("\n%s error: %v\n", action, err)
}

func newReading(deviceID string) map[string]any {
	return map[string]any{
		"deviceId":     deviceID,
		"latitude":     rndFloat64(37.6, 37.9, 6),
		"longitude":    rndFloat64(-122.6, -122.3, 6),
		"temperature":  rndFloat64(10.0, 32.0, 1),
		"accuracy":     rndFloat64(2.0, 20.0, 1),
		"confidence":   int(rndFloat64(60, 100, 0)),
		"batteryLevel": int(rndFloat64(5, 100, 0)),
		"timestamp":    time.Now().UnixMilli(),
	}
}

func syncReadings(deviceID string) {
	reading := newReading(deviceID)

	if flipCoin() {
		jsonData, _ := json.Marshal([]any{reading})
		resp, err := http.Post(fmt.Sprintf("http://%s/api/sync-readings", httpHostPort), "application/json", bytes.NewBuffer(jsonData))
		if err != nil {
			reportFailure("SyncReadings", err)
			return
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			reportFailure("SyncReadings", fmt.Errorf("status %v", resp.StatusCode))
		}
	} else {
		req, err := structpb.NewStruct(map[string]any{"readings": []any{reading}})
		if err != nil {
			reportFailure("SyncReadings", err)
			return
		}
		if _, err := grpcClient.SyncReadings(context.Background(), req); err != nil {
			reportFailure("SyncReadings", err)
		}
	}
}

func doAction(deviceID string) {
	actions := []func(){
		genSyncReadingsAction(deviceID),
		genQueryTemperaturesAction(),
		genGetAnomaliesAction(deviceID),
	}
	actionNames := []string{
		"SyncReadings",
		"QueryTemperatures",
		"GetAnomalies",
	}
	rndMu.Lock()
	rnd.Shuffle(len(actions), func(i, j int) {
		actions[i], actions[j] = actions[j], actions[i]
		actionNames[i], actionNames[j] = actionNames[j], actionNames[i]
	})
	pause := time.Duration(100+rnd.Int31n(1000)) * time.Millisecond
	rndMu.Unlock()

	for index, action := range actions {
		action()
		fmt.Printf("\rexecuted action %v for device %v", actionNames[index], deviceID)
		time.Sleep(pause)
	}
}

func genSyncReadingsAction(deviceID string) func() {
	return func() {
		syncReadings(deviceID)
	}
}

func genQueryTemperaturesAction() func() {
	return func() {
		bounds := "37.6,-122.6,37.9,-122.3"

		if flipCoin() {
			resp, err := http.Get(fmt.Sprintf("http://%s/api/temperatures?bounds=%s", httpHostPort, bounds))
			if err != nil {
				reportFailure("QueryTemperatures", err)
				return
			}
			defer resp.Body.Close()
			if resp.StatusCode != http.StatusOK {
				reportFailure("QueryTemperatures", fmt.Errorf("status %v", resp.StatusCode))
			}
		} else {
			req, _ := structpb.NewStruct(map[string]any{"bounds": bounds})
			if _, err := grpcClient.QueryTemperatures(context.Background(), req); err != nil {
				reportFailure("QueryTemperatures", err)
			}
		}
	}
}

func genGetAnomaliesAction(deviceID string) func() {
	return func() {
		resp, err := http.Get(fmt.Sprintf("http://%s/api/devices/%s/anomalies", httpHostPort, deviceID))
		if err != nil {
			reportFailure("GetAnomalies", err)
			return
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			reportFailure("GetAnomalies", fmt.Errorf("status %v", resp.StatusCode))
		}
	}
}
