package auth

import (
	"context"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/net/publicsuffix"

	"leasehub/internal/cache"
	apperrors "leasehub/internal/errors"
	"leasehub/internal/model"
)

const sessionKeyPrefix = "session:"

// Pending is a verification step the session must pass before it is authenticated.
type Pending struct {
	Type  string `json:"type"`
	Email string `json:"email"`
}

// Cookie is a persisted upstream cookie with the attributes that scope it.
// A blank Domain means a host-only cookie.
type Cookie struct {
	Name     string    `json:"name"`
	Value    string    `json:"value"`
	Path     string    `json:"path,omitempty"`
	Domain   string    `json:"domain,omitempty"`
	Expires  time.Time `json:"expires,omitzero"`
	Secure   bool      `json:"secure,omitempty"`
	HttpOnly bool      `json:"httpOnly,omitempty"`
}

// Equal reports whether both cookies carry the same value and scope.
func (c Cookie) Equal(o Cookie) bool {
	return c.Name == o.Name && c.Value == o.Value && c.Path == o.Path &&
		c.Domain == o.Domain && c.Expires.Equal(o.Expires) &&
		c.Secure == o.Secure && c.HttpOnly == o.HttpOnly
}

func (c Cookie) expired(now time.Time) bool {
	return !c.Expires.IsZero() && !c.Expires.After(now)
}

func (c Cookie) sameSlot(o Cookie) bool {
	return c.Name == o.Name && c.Path == o.Path && c.Domain == o.Domain
}

func (c Cookie) httpCookie() *http.Cookie {
	return &http.Cookie{
		Name:     c.Name,
		Value:    c.Value,
		Path:     c.Path,
		Domain:   c.Domain,
		Expires:  c.Expires,
		Secure:   c.Secure,
		HttpOnly: c.HttpOnly,
	}
}

// sessionJar is a cookiejar that also records the attributes of every cookie
// it accepts, which cookiejar.Jar does not expose.
type sessionJar struct {
	*cookiejar.Jar

	mu      sync.Mutex
	cookies []Cookie
	now     func() time.Time
}

func (j *sessionJar) SetCookies(u *url.URL, cookies []*http.Cookie) {
	j.Jar.SetCookies(u, cookies)

	j.mu.Lock()
	defer j.mu.Unlock()
	now := j.now()
	for _, hc := range cookies {
		j.record(u, hc, now)
	}
}

func (j *sessionJar) record(u *url.URL, hc *http.Cookie, now time.Time) {
	c := Cookie{
		Name:     hc.Name,
		Value:    hc.Value,
		Path:     hc.Path,
		Domain:   strings.TrimPrefix(strings.ToLower(hc.Domain), "."),
		Secure:   hc.Secure,
		HttpOnly: hc.HttpOnly,
	}
	if c.Path == "" || c.Path[0] != '/' {
		c.Path = defaultPath(u.Path)
	}
	deleted := hc.MaxAge < 0
	switch {
	case hc.MaxAge > 0:
		c.Expires = now.Add(time.Duration(hc.MaxAge) * time.Second).UTC().Truncate(time.Second)
	case !hc.Expires.IsZero():
		c.Expires = hc.Expires.UTC().Truncate(time.Second)
		deleted = deleted || c.expired(now)
	}

	for i, cur := range j.cookies {
		if !cur.sameSlot(c) {
			continue
		}
		if deleted {
			j.cookies = append(j.cookies[:i], j.cookies[i+1:]...)
		} else {
			j.cookies[i] = c
		}
		return
	}
	if !deleted {
		j.cookies = append(j.cookies, c)
	}
}

func (j *sessionJar) snapshot() []Cookie {
	j.mu.Lock()
	defer j.mu.Unlock()
	now := j.now()
	out := make([]Cookie, 0, len(j.cookies))
	for _, c := range j.cookies {
		if !c.expired(now) {
			out = append(out, c)
		}
	}
	return out
}

// defaultPath is the cookie path used when Set-Cookie has none (RFC 6265 5.1.4).
func defaultPath(p string) string {
	if p == "" || p[0] != '/' {
		return "/"
	}
	i := strings.LastIndex(p, "/")
	if i == 0 {
		return "/"
	}
	return p[:i]
}

// Session is the server-side state behind one browser token.
// User is set only once the upstream confirmed the session.
type Session struct {
	ID        string      `json:"id"`
	User      *model.User `json:"user,omitempty"`
	Pending   *Pending    `json:"pending,omitempty"`
	Cookies   []Cookie    `json:"cookies,omitempty"`
	CreatedAt time.Time   `json:"createdAt"`
}

// Authenticated reports whether the upstream confirmed the session.
func (s *Session) Authenticated() bool {
	return s != nil && s.User != nil && s.Pending == nil
}

// Jar rebuilds the upstream cookie jar scoped to base. Expired cookies are dropped.
func (s *Session) Jar(base *url.URL) (http.CookieJar, error) {
	inner, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, fmt.Errorf("create cookie jar: %w", err)
	}
	jar := &sessionJar{Jar: inner, now: time.Now}
	if len(s.Cookies) > 0 {
		now := jar.now()
		cookies := make([]*http.Cookie, 0, len(s.Cookies))
		for _, c := range s.Cookies {
			if c.expired(now) {
				continue
			}
			if c.Path == "" {
				c.Path = "/"
			}
			cookies = append(cookies, c.httpCookie())
			jar.cookies = append(jar.cookies, c)
		}
		inner.SetCookies(base, cookies)
	}
	return jar, nil
}

// Capture copies the jar's cookies back into the session. Jars built by
// Session.Jar keep each cookie's path, domain and expiry; any other jar only
// yields name and value for base.
func (s *Session) Capture(jar http.CookieJar, base *url.URL) {
	if sj, ok := jar.(*sessionJar); ok {
		s.Cookies = sj.snapshot()
		return
	}
	cookies := jar.Cookies(base)
	out := make([]Cookie, 0, len(cookies))
	for _, c := range cookies {
		out = append(out, Cookie{Name: c.Name, Value: c.Value, Path: "/"})
	}
	s.Cookies = out
}

// SessionStore defines the interface for session storage operations.
type SessionStore interface {
	Create(ctx context.Context) (*Session, error)
	Get(ctx context.Context, id string) (*Session, error)
	Save(ctx context.Context, sess *Session) error
	Delete(ctx context.Context, id string) error
}

// RedisSessionStore keeps sessions in the cache store with a sliding TTL.
type RedisSessionStore struct {
	cache cache.Store
	ttl   time.Duration
	now   func() time.Time
}

// Ensure RedisSessionStore implements SessionStore
var _ SessionStore = (*RedisSessionStore)(nil)

// NewSessionStore creates a new session store.
func NewSessionStore(store cache.Store, ttl time.Duration) *RedisSessionStore {
	return &RedisSessionStore{cache: store, ttl: ttl, now: time.Now}
}

// Create stores a new, unauthenticated session.
func (s *RedisSessionStore) Create(ctx context.Context) (*Session, error) {
	sess := &Session{ID: uuid.NewString(), CreatedAt: s.now().UTC()}
	if err := s.Save(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// Get loads a session. A missing session yields ErrSessionNotFound.
func (s *RedisSessionStore) Get(ctx context.Context, id string) (*Session, error) {
	if id == "" {
		return nil, apperrors.ErrSessionNotFound
	}
	var sess Session
	found, err := cache.GetJSON(ctx, s.cache, sessionKeyPrefix+id, &sess)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, apperrors.ErrSessionNotFound
	}
	return &sess, nil
}

// Save writes the session and refreshes its TTL.
func (s *RedisSessionStore) Save(ctx context.Context, sess *Session) error {
	return cache.SetJSON(ctx, s.cache, sessionKeyPrefix+sess.ID, sess, s.ttl)
}

// Delete removes a session.
func (s *RedisSessionStore) Delete(ctx context.Context, id string) error {
	return s.cache.Delete(ctx, sessionKeyPrefix+id)
}
