package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"leasehub/internal/auth"
	"leasehub/internal/bootstrap"
	"leasehub/internal/cache"
	apperrors "leasehub/internal/errors"
	"leasehub/internal/model"
	"leasehub/internal/wizard"
)

// WizardView is a running wizard as shown to the browser.
type WizardView struct {
	Kind       wizard.Kind `json:"kind"`
	Step       int         `json:"step"`
	StepName   string      `json:"stepName"`
	TotalSteps int         `json:"totalSteps"`
	Data       wizard.Data `json:"data"`
	Done       bool        `json:"done"`
}

// WizardResult is the outcome of a move. Next is set when the wizard was
// left, either by completing it or by going back from the first step.
type WizardResult struct {
	Wizard *WizardView `json:"wizard,omitempty"`
	Exit   bool        `json:"exit"`
	Next   string      `json:"next,omitempty"`
}

// WizardService drives the step machines for a session.
type WizardService interface {
	Start(ctx context.Context, sess *auth.Session, kind wizard.Kind) (*WizardView, error)
	Get(ctx context.Context, sess *auth.Session, kind wizard.Kind) (*WizardView, error)
	Next(ctx context.Context, sess *auth.Session, kind wizard.Kind, input wizard.Data) (*WizardResult, error)
	Back(ctx context.Context, sess *auth.Session, kind wizard.Kind) (*WizardResult, error)
	SessionCleaner
}

// completer performs a wizard's terminal side effect and returns the route to continue to.
type completer func(ctx context.Context, sess *auth.Session, data wizard.Data) (string, error)

// wizardLockTTL bounds how long a crashed completion can block the wizard.
const wizardLockTTL = 30 * time.Second

type wizardService struct {
	registry  wizard.Registry
	cache     cache.StateStore
	ttl       time.Duration
	completes map[wizard.Kind]completer
	logger    *zap.Logger
}

// NewWizardService creates a wizard service. templates, prefs and tenants
// back the terminal steps of the template, onboarding and request wizards.
func NewWizardService(
	registry wizard.Registry,
	store cache.StateStore,
	ttl time.Duration,
	templates TemplateService,
	prefs PreferenceService,
	tenants TenantAPI,
	sessions auth.SessionStore,
	logger *zap.Logger,
) WizardService {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &wizardService{registry: registry, cache: store, ttl: ttl, logger: logger}
	s.completes = map[wizard.Kind]completer{
		wizard.KindTemplate:   completeTemplate(templates),
		wizard.KindOnboarding: completeOnboarding(prefs),
		wizard.KindRequest:    completeRequest(tenants, sessions),
	}
	return s
}

func (s *wizardService) cacheKey(sessionID string, kind wizard.Kind) string {
	return fmt.Sprintf("wizard:%s:%s", sessionID, kind)
}

func (s *wizardService) definition(sess *auth.Session, kind wizard.Kind) (*wizard.Definition, error) {
	def, err := s.registry.Get(kind)
	if err != nil {
		return nil, err
	}
	if !def.Allows(sess.User.Role) {
		return nil, apperrors.ErrForbidden
	}
	return def, nil
}

func (s *wizardService) load(ctx context.Context, sess *auth.Session, kind wizard.Kind) (*wizard.State, error) {
	var st wizard.State
	found, err := cache.GetJSON(ctx, s.cache, s.cacheKey(sess.ID, kind), &st)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, apperrors.ErrWizardNotStarted
	}
	return &st, nil
}

func (s *wizardService) save(ctx context.Context, sess *auth.Session, st *wizard.State) error {
	if err := cache.SetJSON(ctx, s.cache, s.cacheKey(sess.ID, st.Kind), st, s.ttl); err != nil {
		return fmt.Errorf("save wizard: %w", err)
	}
	return nil
}

// lock claims the terminal step of a wizard for one request. The returned
// func releases it.
func (s *wizardService) lock(ctx context.Context, sess *auth.Session, kind wizard.Kind) (func(), error) {
	key := s.cacheKey(sess.ID, kind) + ":lock"
	ok, err := s.cache.SetNX(ctx, key, []byte(sess.ID), wizardLockTTL)
	if err != nil {
		return nil, fmt.Errorf("lock wizard: %w", err)
	}
	if !ok {
		return nil, apperrors.ErrWizardBusy
	}
	return func() {
		if err := s.cache.Delete(context.WithoutCancel(ctx), key); err != nil {
			s.logger.Warn("release wizard lock", zap.String("key", key), zap.Error(err))
		}
	}, nil
}

func view(def *wizard.Definition, st *wizard.State) *WizardView {
	return &WizardView{
		Kind:       st.Kind,
		Step:       st.Step,
		StepName:   def.StepName(st),
		TotalSteps: len(def.Steps),
		Data:       st.Data,
		Done:       st.Done,
	}
}

// Start begins the wizard on step 1, discarding any earlier run.
func (s *wizardService) Start(ctx context.Context, sess *auth.Session, kind wizard.Kind) (*WizardView, error) {
	def, err := s.definition(sess, kind)
	if err != nil {
		return nil, err
	}
	st := def.Start()
	if err := s.save(ctx, sess, st); err != nil {
		return nil, err
	}
	return view(def, st), nil
}

// Get returns the running wizard.
func (s *wizardService) Get(ctx context.Context, sess *auth.Session, kind wizard.Kind) (*WizardView, error) {
	def, err := s.definition(sess, kind)
	if err != nil {
		return nil, err
	}
	st, err := s.load(ctx, sess, kind)
	if err != nil {
		return nil, err
	}
	return view(def, st), nil
}

// Next merges input and moves forward when the current step is valid. On the
// last step it runs the terminal side effect and marks the wizard done. Only
// one request at a time may finish a wizard; a concurrent one gets
// ErrWizardBusy. Entered data is kept even when the step does not pass.
func (s *wizardService) Next(ctx context.Context, sess *auth.Session, kind wizard.Kind, input wizard.Data) (*WizardResult, error) {
	def, err := s.definition(sess, kind)
	if err != nil {
		return nil, err
	}
	st, err := s.load(ctx, sess, kind)
	if err != nil {
		return nil, err
	}
	if def.Terminal(st) && !st.Done {
		release, err := s.lock(ctx, sess, kind)
		if err != nil {
			return nil, err
		}
		defer release()
		// another request may have finished the wizard before the lock was taken
		if st, err = s.load(ctx, sess, kind); err != nil {
			return nil, err
		}
	}

	terminal := def.Terminal(st)
	if err := def.Next(st, input); err != nil {
		if saveErr := s.save(ctx, sess, st); saveErr != nil {
			s.logger.Warn("save wizard input", zap.Error(saveErr))
		}
		return nil, err
	}
	if !terminal {
		if err := s.save(ctx, sess, st); err != nil {
			return nil, err
		}
		return &WizardResult{Wizard: view(def, st)}, nil
	}

	route, err := s.completes[kind](ctx, sess, st.Data)
	if err != nil {
		if saveErr := s.save(ctx, sess, st); saveErr != nil {
			s.logger.Warn("save wizard input", zap.Error(saveErr))
		}
		return nil, fmt.Errorf("complete %s wizard: %w", kind, err)
	}
	st.Complete()
	if err := s.save(ctx, sess, st); err != nil {
		return nil, err
	}
	return &WizardResult{Wizard: view(def, st), Next: route}, nil
}

// Back moves one step back. From step 1 the wizard is left and discarded.
func (s *wizardService) Back(ctx context.Context, sess *auth.Session, kind wizard.Kind) (*WizardResult, error) {
	def, err := s.definition(sess, kind)
	if err != nil {
		return nil, err
	}
	st, err := s.load(ctx, sess, kind)
	if err != nil {
		return nil, err
	}

	exit, err := def.Back(st)
	if err != nil {
		return nil, err
	}
	if exit {
		if err := s.cache.Delete(ctx, s.cacheKey(sess.ID, kind)); err != nil {
			return nil, err
		}
		return &WizardResult{Exit: true, Next: def.ExitRoute}, nil
	}
	if err := s.save(ctx, sess, st); err != nil {
		return nil, err
	}
	return &WizardResult{Wizard: view(def, st)}, nil
}

// Clear drops every wizard of the session.
func (s *wizardService) Clear(ctx context.Context, sessionID string) error {
	for kind := range s.registry {
		if err := s.cache.Delete(ctx, s.cacheKey(sessionID, kind)); err != nil {
			return err
		}
	}
	return nil
}

func completeTemplate(templates TemplateService) completer {
	return func(ctx context.Context, sess *auth.Session, data wizard.Data) (string, error) {
		tpl, err := templates.Create(ctx, sess.User.UserID, TemplateInput{
			Title:    stringField(data, "title"),
			Subtitle: stringField(data, "subtitle"),
			Content:  stringField(data, "content"),
		})
		if err != nil {
			return "", err
		}
		return "/templates?" + url.Values{"created": {tpl.ID.String()}}.Encode(), nil
	}
}

func completeOnboarding(prefs PreferenceService) completer {
	return func(ctx context.Context, sess *auth.Session, data wizard.Data) (string, error) {
		raw, err := json.Marshal(data)
		if err != nil {
			return "", fmt.Errorf("encode preferences: %w", err)
		}
		var p model.TenantPreferences
		if err := json.Unmarshal(raw, &p); err != nil {
			return "", fmt.Errorf("decode preferences: %w", err)
		}
		if err := prefs.Save(ctx, sess, p); err != nil {
			return "", err
		}
		return bootstrap.PathTenantDashboard, nil
	}
}

func completeRequest(tenants TenantAPI, sessions auth.SessionStore) completer {
	return func(ctx context.Context, sess *auth.Session, data wizard.Data) (string, error) {
		var id string
		err := withJar(ctx, sessions, tenants, sess, func(jar http.CookieJar) error {
			var err error
			id, err = tenants.CreateRequest(ctx, jar, data)
			return err
		})
		if err != nil {
			return "", upstreamError("create request", err, nil)
		}
		q := url.Values{"success": {"true"}}
		if id != "" {
			q.Set("id", id)
		}
		return "/tenant/requests?" + q.Encode(), nil
	}
}

func stringField(data wizard.Data, key string) string {
	if v, ok := data[key].(string); ok {
		return v
	}
	return ""
}
