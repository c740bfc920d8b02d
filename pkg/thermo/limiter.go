package thermo

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// RateLimiterStore manages per-device rate limiters: device_id -> rate limiter
type RateLimiterStore struct {
	limiters     map[string]*rate.Limiter
	mu           sync.Mutex
	defaultRate  rate.Limit
	defaultBurst int
}

func NewRateLimiterStore(defaultRate rate.Limit, defaultBurst int) *RateLimiterStore {
	return &RateLimiterStore{
		limiters:     make(map[string]*rate.Limiter),
		defaultRate:  defaultRate,
		defaultBurst: defaultBurst,
	}
}

func (s *RateLimiterStore) GetLimiter(deviceID string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.getLimiterLocked(deviceID)
}

func (s *RateLimiterStore) getLimiterLocked(deviceID string) *rate.Limiter {
	limiter, exists := s.limiters[deviceID]
	if !exists {
		limiter = rate.NewLimiter(s.defaultRate, s.defaultBurst)
		s.limiters[deviceID] = limiter
	}
	return limiter
}

func (s *RateLimiterStore) SetLimiter(deviceID string, deviceRate rate.Limit, deviceBurst int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.limiters[deviceID] = rate.NewLimiter(deviceRate, deviceBurst)
}

// AllowBatch admits a submission that carries readings from every device in
// deviceIDs. Each device spends one token, and only when all of them have one.
func (s *RateLimiterStore) AllowBatch(deviceIDs []string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	limiters := make([]*rate.Limiter, 0, len(deviceIDs))
	for _, id := range deviceIDs {
		limiter := s.getLimiterLocked(id)
		if limiter.TokensAt(now) < 1 {
			return false
		}
		limiters = append(limiters, limiter)
	}

	for _, limiter := range limiters {
		limiter.AllowN(now, 1)
	}
	return true
}

func (s *RateLimiterStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.limiters)
}
