package wizard

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "leasehub/internal/errors"
	"leasehub/internal/model"
)

func mustLoad(t *testing.T) Registry {
	t.Helper()
	reg, err := Load()
	require.NoError(t, err)
	return reg
}

func data(t *testing.T, body string) Data {
	t.Helper()
	var d Data
	require.NoError(t, json.Unmarshal([]byte(body), &d))
	return d
}

func TestLoad_EmbeddedDefinitions(t *testing.T) {
	reg := mustLoad(t)

	for _, kind := range []Kind{KindTemplate, KindOnboarding, KindRequest} {
		def, err := reg.Get(kind)
		require.NoError(t, err, kind)
		assert.NotEmpty(t, def.Steps)
		assert.NotEmpty(t, def.ExitRoute)
	}

	_, err := reg.Get("payroll")
	assert.ErrorIs(t, err, apperrors.ErrUnknownWizard)
}

func TestParse_RejectsUnknownRule(t *testing.T) {
	_, err := Parse([]byte(`
x:
  steps:
    - name: one
      rules:
        - { field: a, rule: telepathy }
`))
	assert.Error(t, err)
}

func TestParse_RejectsEmptyWizard(t *testing.T) {
	_, err := Parse([]byte("x:\n  exit_route: /\n"))
	assert.Error(t, err)
}

func TestDefinition_Allows(t *testing.T) {
	reg := mustLoad(t)

	onboarding, _ := reg.Get(KindOnboarding)
	assert.True(t, onboarding.Allows(model.RoleTenant))
	assert.False(t, onboarding.Allows(model.RolePropertyManager))

	tmpl, _ := reg.Get(KindTemplate)
	assert.True(t, tmpl.Allows(model.RolePropertyManager))
}

func TestTemplateWizard_ForwardIsGated(t *testing.T) {
	def, _ := mustLoad(t).Get(KindTemplate)
	s := def.Start()

	err := def.Next(s, data(t, `{"title":"   "}`))
	var stepErr *apperrors.StepError
	require.ErrorAs(t, err, &stepErr)
	assert.Equal(t, "details", stepErr.Step)
	assert.Contains(t, stepErr.Fields, "title")
	assert.Equal(t, 1, s.Step)

	require.NoError(t, def.Next(s, data(t, `{"title":"Lease renewal","subtitle":"12 months"}`)))
	assert.Equal(t, 2, s.Step)
	assert.Equal(t, "content", def.StepName(s))

	require.NoError(t, def.Next(s, data(t, `{"content":"<p>Dear tenant</p>"}`)))
	assert.True(t, def.Terminal(s))

	require.NoError(t, def.Next(s, nil))
	assert.Equal(t, 3, s.Step, "terminal step does not advance by itself")
	assert.Equal(t, "Lease renewal", s.Data["title"])
}

func TestWizard_BackFromFirstStepExits(t *testing.T) {
	def, _ := mustLoad(t).Get(KindRequest)
	s := def.Start()

	exit, err := def.Back(s)
	require.NoError(t, err)
	assert.True(t, exit)
}

func TestWizard_BackIsAlwaysAllowed(t *testing.T) {
	def, _ := mustLoad(t).Get(KindRequest)
	s := def.Start()
	require.NoError(t, def.Next(s, data(t, `{"categories":["plumbing"]}`)))

	exit, err := def.Back(s)
	require.NoError(t, err)
	assert.False(t, exit)
	assert.Equal(t, 1, s.Step)
	assert.Equal(t, []any{"plumbing"}, s.Data["categories"], "step data is kept when moving back")
}

func TestWizard_CompletedIsNotReenterable(t *testing.T) {
	def, _ := mustLoad(t).Get(KindTemplate)
	s := def.Start()
	s.Complete()

	assert.ErrorIs(t, def.Next(s, nil), apperrors.ErrWizardCompleted)
	_, err := def.Back(s)
	assert.ErrorIs(t, err, apperrors.ErrWizardCompleted)
}

func TestRequestWizard_Rules(t *testing.T) {
	def, _ := mustLoad(t).Get(KindRequest)

	tests := []struct {
		name  string
		step  int
		input string
		ok    bool
	}{
		{"no category", 1, `{"categories":[]}`, false},
		{"blank category", 1, `{"categories":[""]}`, false},
		{"one category", 1, `{"categories":["electrical"]}`, true},
		{"no description", 2, `{}`, false},
		{"description", 2, `{"description":"sink leaks"}`, true},
		{"no slots", 3, `{"availability":[]}`, false},
		{"slot missing timeslot", 3, `{"availability":[{"date":"2026-11-02"}]}`, false},
		{"second slot incomplete", 3, `{"availability":[{"date":"2026-11-02","timeslot":"am"},{"timeslot":"pm"}]}`, false},
		{"complete slots", 3, `{"availability":[{"date":"2026-11-02","timeslot":"am"}]}`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &State{Kind: KindRequest, Step: tt.step, Data: data(t, tt.input)}
			err := def.Validate(s)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, apperrors.ErrStepInvalid)
			}
		})
	}
}

func TestOnboardingWizard_LocationRule(t *testing.T) {
	def, _ := mustLoad(t).Get(KindOnboarding)
	s := def.Start()

	err := def.Next(s, data(t, `{"location":{"country":"US","state":"TX"}}`))
	var stepErr *apperrors.StepError
	require.ErrorAs(t, err, &stepErr)
	assert.Equal(t, "missing city", stepErr.Fields["location"])

	require.NoError(t, def.Next(s, data(t, `{"location":{"country":"US","state":"TX","city":"Austin"}}`)))
	assert.Equal(t, "rental_types", def.StepName(s))
}
