package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"leasehub/internal/auth"
	"leasehub/internal/cache"
	apperrors "leasehub/internal/errors"
	"leasehub/internal/filter"
	"leasehub/internal/listing"
	"leasehub/internal/model"
	"leasehub/internal/upstream"
)

const (
	listingCacheTTL  = time.Minute
	propertyCacheTTL = time.Minute
)

// SearchResult is one page of property cards and the query that produced it.
type SearchResult struct {
	Query  url.Values           `json:"query"`
	Cards  []model.PropertyCard `json:"cards"`
	Count  int                  `json:"count"`
	Cached bool                 `json:"cached"`
}

// PropertyService searches and shows public properties.
type PropertyService interface {
	Search(ctx context.Context, sess *auth.Session, usePreferences bool) (*SearchResult, error)
	Detail(ctx context.Context, sess *auth.Session, id string) (*model.PropertyDetail, error)
	SessionCleaner
}

type propertyService struct {
	api      PropertyAPI
	sessions auth.SessionStore
	filters  FilterService
	prefs    PreferenceService
	tracker  *listing.Tracker
	cache    cache.Store
	logger   *zap.Logger
}

// NewPropertyService creates a property service.
func NewPropertyService(
	api PropertyAPI,
	sessions auth.SessionStore,
	filters FilterService,
	prefs PreferenceService,
	tracker *listing.Tracker,
	store cache.Store,
	logger *zap.Logger,
) PropertyService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &propertyService{
		api:      api,
		sessions: sessions,
		filters:  filters,
		prefs:    prefs,
		tracker:  tracker,
		cache:    store,
		logger:   logger,
	}
}

// Search reconciles the session's filters with the tenant's preferences and
// fetches matching cards. A newer search for the same session supersedes
// this one, which then returns ErrSuperseded.
func (s *propertyService) Search(ctx context.Context, sess *auth.Session, usePreferences bool) (*SearchResult, error) {
	runCtx, tk := s.tracker.Begin(ctx, sess.ID)
	defer s.tracker.End(tk)

	st, err := s.filters.Get(runCtx, sess.ID)
	if err != nil {
		if !s.tracker.Current(tk) {
			return nil, apperrors.ErrSuperseded
		}
		return nil, fmt.Errorf("load filters: %w", err)
	}

	var prefs *model.TenantPreferences
	if usePreferences && sess.User.Role == model.RoleTenant {
		prefs, err = s.prefs.Get(runCtx, sess)
		if err != nil {
			// Search without preferences rather than fail the page.
			s.logger.Warn("preferences unavailable for search", zap.String("session_id", sess.ID), zap.Error(err))
			prefs = nil
		}
	}
	if !s.tracker.Current(tk) {
		return nil, apperrors.ErrSuperseded
	}
	q := filter.Reconcile(st, prefs, usePreferences)

	key := cache.QueryKey("listings", q)
	var payloads []model.PropertyPayload
	cached, _ := cache.GetJSON(runCtx, s.cache, key, &payloads)
	if !cached {
		err = withJar(runCtx, s.sessions, s.api, sess, func(jar http.CookieJar) error {
			var err error
			payloads, err = s.api.PublicListings(runCtx, jar, q)
			return err
		})
		if err != nil {
			if !s.tracker.Current(tk) {
				return nil, apperrors.ErrSuperseded
			}
			return nil, upstreamError("search listings", err, nil)
		}
		if err := cache.SetJSON(runCtx, s.cache, key, payloads, listingCacheTTL); err != nil {
			s.logger.Warn("cache listings", zap.Error(err))
		}
	}

	if !s.tracker.Current(tk) {
		return nil, apperrors.ErrSuperseded
	}
	cards := listing.Cards(payloads)
	return &SearchResult{Query: q, Cards: cards, Count: len(cards), Cached: cached}, nil
}

// Detail fetches one property.
func (s *propertyService) Detail(ctx context.Context, sess *auth.Session, id string) (*model.PropertyDetail, error) {
	key := fmt.Sprintf("property:%s", id)

	var payload model.PropertyPayload
	if found, _ := cache.GetJSON(ctx, s.cache, key, &payload); !found {
		var fetched *model.PropertyPayload
		err := withJar(ctx, s.sessions, s.api, sess, func(jar http.CookieJar) error {
			var err error
			fetched, err = s.api.PublicProperty(ctx, jar, id)
			return err
		})
		if err != nil {
			if upstream.IsNotFound(err) {
				return nil, apperrors.ErrPropertyNotFound
			}
			if errors.Is(err, context.Canceled) {
				return nil, err
			}
			return nil, upstreamError("fetch property", err, nil)
		}
		payload = *fetched
		if err := cache.SetJSON(ctx, s.cache, key, payload, propertyCacheTTL); err != nil {
			s.logger.Warn("cache property", zap.Error(err))
		}
	}

	detail := listing.Detail(payload)
	return &detail, nil
}

// Clear cancels the session's in-flight search.
func (s *propertyService) Clear(_ context.Context, sessionID string) error {
	s.tracker.Cancel(sessionID)
	return nil
}
