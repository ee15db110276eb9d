package service

import (
	"context"
	"fmt"
	"hash/fnv"
	"sync"
	"time"

	"leasehub/internal/cache"
	"leasehub/internal/filter"
)

// FilterService owns the per-session filter panel state.
type FilterService interface {
	Get(ctx context.Context, sessionID string) (filter.State, error)
	Update(ctx context.Context, sessionID string, p filter.Patch) (filter.State, error)
	Reset(ctx context.Context, sessionID string) (filter.State, error)
	SessionCleaner
}

// filterStripes serializes read-modify-write updates per session within one process.
const filterStripes = 64

type filterService struct {
	cache cache.Store
	ttl   time.Duration
	locks [filterStripes]sync.Mutex
}

// NewFilterService creates a filter service. State lives as long as ttl after its last change.
func NewFilterService(store cache.Store, ttl time.Duration) FilterService {
	return &filterService{cache: store, ttl: ttl}
}

func (s *filterService) lock(sessionID string) *sync.Mutex {
	h := fnv.New32a()
	_, _ = h.Write([]byte(sessionID))
	return &s.locks[h.Sum32()%filterStripes]
}

func (s *filterService) cacheKey(sessionID string) string {
	return fmt.Sprintf("filters:%s", sessionID)
}

// Get returns the session's filters, creating the defaults on first open.
func (s *filterService) Get(ctx context.Context, sessionID string) (filter.State, error) {
	mu := s.lock(sessionID)
	mu.Lock()
	defer mu.Unlock()
	return s.load(ctx, sessionID)
}

func (s *filterService) load(ctx context.Context, sessionID string) (filter.State, error) {
	var st filter.State
	found, err := cache.GetJSON(ctx, s.cache, s.cacheKey(sessionID), &st)
	if err != nil {
		return filter.State{}, err
	}
	if found {
		return st, nil
	}
	st = filter.Default()
	if err := s.save(ctx, sessionID, st); err != nil {
		return filter.State{}, err
	}
	return st, nil
}

// Update applies a patch from the filter panel.
func (s *filterService) Update(ctx context.Context, sessionID string, p filter.Patch) (filter.State, error) {
	mu := s.lock(sessionID)
	mu.Lock()
	defer mu.Unlock()

	st, err := s.load(ctx, sessionID)
	if err != nil {
		return filter.State{}, err
	}
	st.Apply(p)
	if err := s.save(ctx, sessionID, st); err != nil {
		return filter.State{}, err
	}
	return st, nil
}

// Reset restores the defaults, modified flags included.
func (s *filterService) Reset(ctx context.Context, sessionID string) (filter.State, error) {
	mu := s.lock(sessionID)
	mu.Lock()
	defer mu.Unlock()

	st := filter.Default()
	if err := s.save(ctx, sessionID, st); err != nil {
		return filter.State{}, err
	}
	return st, nil
}

// Clear drops the session's filters.
func (s *filterService) Clear(ctx context.Context, sessionID string) error {
	return s.cache.Delete(ctx, s.cacheKey(sessionID))
}

func (s *filterService) save(ctx context.Context, sessionID string, st filter.State) error {
	if err := cache.SetJSON(ctx, s.cache, s.cacheKey(sessionID), st, s.ttl); err != nil {
		return fmt.Errorf("save filters: %w", err)
	}
	return nil
}
