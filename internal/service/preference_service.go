package service

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"leasehub/internal/auth"
	"leasehub/internal/cache"
	"leasehub/internal/model"
	"leasehub/internal/upstream"
)

const preferencesCacheTTL = 5 * time.Minute

// PreferenceService reads and writes tenant preferences.
// Get returns nil, nil when the tenant has none.
type PreferenceService interface {
	Get(ctx context.Context, sess *auth.Session) (*model.TenantPreferences, error)
	Save(ctx context.Context, sess *auth.Session, prefs model.TenantPreferences) error
}

type preferenceService struct {
	api      TenantAPI
	sessions auth.SessionStore
	cache    cache.Store
	group    singleflight.Group
	logger   *zap.Logger
}

// cachedPreferences distinguishes "none stored" from a cache miss.
type cachedPreferences struct {
	Found bool                     `json:"found"`
	Prefs *model.TenantPreferences `json:"prefs,omitempty"`
}

// NewPreferenceService creates a preference service.
func NewPreferenceService(api TenantAPI, sessions auth.SessionStore, store cache.Store, logger *zap.Logger) PreferenceService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &preferenceService{api: api, sessions: sessions, cache: store, logger: logger}
}

func (s *preferenceService) cacheKey(userID string) string {
	return fmt.Sprintf("preferences:%s", userID)
}

// Get fetches preferences through the cache. Concurrent fetches for the same
// user share one upstream call.
func (s *preferenceService) Get(ctx context.Context, sess *auth.Session) (*model.TenantPreferences, error) {
	key := s.cacheKey(sess.User.UserID)

	var cached cachedPreferences
	if found, _ := cache.GetJSON(ctx, s.cache, key, &cached); found {
		return cached.Prefs, nil
	}

	v, err, _ := s.group.Do(key, func() (interface{}, error) {
		// Detached so one caller going away does not fail the others.
		fetchCtx := context.WithoutCancel(ctx)
		var prefs *model.TenantPreferences
		err := withJar(fetchCtx, s.sessions, s.api, sess, func(jar http.CookieJar) error {
			var err error
			prefs, err = s.api.Preferences(fetchCtx, jar)
			return err
		})
		switch {
		case upstream.IsNotFound(err):
			prefs = nil
		case err != nil:
			return nil, upstreamError("fetch preferences", err, nil)
		}
		entry := cachedPreferences{Found: prefs != nil, Prefs: prefs}
		if err := cache.SetJSON(fetchCtx, s.cache, key, entry, preferencesCacheTTL); err != nil {
			s.logger.Warn("cache preferences", zap.Error(err))
		}
		return prefs, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*model.TenantPreferences), nil
}

// Save stores preferences upstream and drops the cached copy.
func (s *preferenceService) Save(ctx context.Context, sess *auth.Session, prefs model.TenantPreferences) error {
	err := withJar(ctx, s.sessions, s.api, sess, func(jar http.CookieJar) error {
		return s.api.SavePreferences(ctx, jar, prefs)
	})
	if err != nil {
		return upstreamError("save preferences", err, nil)
	}
	if err := s.cache.Delete(ctx, s.cacheKey(sess.User.UserID)); err != nil {
		s.logger.Warn("invalidate preferences", zap.Error(err))
	}
	return nil
}
