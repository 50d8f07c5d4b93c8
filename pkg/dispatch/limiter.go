package dispatch

import (
	"sync"

	"golang.org/x/time/rate"
)

// RateLimiterStore manages per-caller rate limiters: caller id -> rate limiter
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

func (s *RateLimiterStore) GetLimiter(callerID string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	limiter, exists := s.limiters[callerID]
	if !exists {
		limiter = rate.NewLimiter(s.defaultRate, s.defaultBurst)
		s.limiters[callerID] = limiter
	}
	return limiter
}

func (s *RateLimiterStore) SetLimiter(callerID string, callerRate rate.Limit, callerBurst int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.limiters[callerID] = rate.NewLimiter(callerRate, callerBurst)
}
