package testing

import (
	"os"
	"path"
	"runtime"
	"time"
)

func init() {
	// tests run from the project root so logs/ and *.db land in one place
	//
	//   import (
	//     _ "thermonet.xyz/thermonet-service/pkg/testing"
	//   )

	_, filename, _, _ := runtime.Caller(0)
	dir := path.Join(path.Dir(filename), "..", "..")
	err := os.Chdir(dir)
	if err != nil {
		panic(err)
	}
}

func Float(v float64) *float64 {
	return &v
}

func Int(v int) *int {
	return &v
}

func Int64(v int64) *int64 {
	return &v
}

// FixedClock returns a clock that reports t on every call.
func FixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// SteppingClock starts at t and moves forward by step on every call.
func SteppingClock(t time.Time, step time.Duration) func() time.Time {
	current := t.Add(-step)
	return func() time.Time {
		current = current.Add(step)
		return current
	}
}
