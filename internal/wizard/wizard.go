// Package wizard drives the multi-step flows: template creation, tenant
// onboarding and new service requests.
package wizard

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	apperrors "leasehub/internal/errors"
	"leasehub/internal/model"
)

// Kind names a wizard.
type Kind string

const (
	KindTemplate   Kind = "template"
	KindOnboarding Kind = "onboarding"
	KindRequest    Kind = "request"
)

//go:embed definitions.yaml
var definitionsYAML []byte

// Rule is one validity check on a step field.
type Rule struct {
	Field string `yaml:"field"`
	Rule  string `yaml:"rule"`
	Min   int    `yaml:"min"`
}

// Step is one screen of a wizard.
type Step struct {
	Name  string `yaml:"name"`
	Rules []Rule `yaml:"rules"`
}

// Definition is the ordered step list of a wizard.
type Definition struct {
	Kind      Kind     `yaml:"-"`
	ExitRoute string   `yaml:"exit_route"`
	Roles     []string `yaml:"roles"`
	Steps     []Step   `yaml:"steps"`
}

// Allows reports whether role may run the wizard. No roles means everyone.
func (d *Definition) Allows(role model.Role) bool {
	if len(d.Roles) == 0 {
		return true
	}
	for _, r := range d.Roles {
		if model.NormalizeRole(r) == role {
			return true
		}
	}
	return false
}

// Registry holds the known wizards by kind.
type Registry map[Kind]*Definition

// Parse reads wizard definitions from YAML and checks every rule name.
func Parse(data []byte) (Registry, error) {
	raw := map[string]*Definition{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse wizard definitions: %w", err)
	}

	reg := make(Registry, len(raw))
	for name, def := range raw {
		if def == nil || len(def.Steps) == 0 {
			return nil, fmt.Errorf("wizard %q has no steps", name)
		}
		for _, step := range def.Steps {
			for _, r := range step.Rules {
				if _, ok := checks[r.Rule]; !ok {
					return nil, fmt.Errorf("wizard %q step %q: unknown rule %q", name, step.Name, r.Rule)
				}
			}
		}
		def.Kind = Kind(name)
		reg[def.Kind] = def
	}
	return reg, nil
}

// Load parses the embedded definitions.
func Load() (Registry, error) {
	return Parse(definitionsYAML)
}

// Get returns the definition for kind.
func (r Registry) Get(kind Kind) (*Definition, error) {
	def, ok := r[Kind(strings.ToLower(string(kind)))]
	if !ok {
		return nil, apperrors.ErrUnknownWizard
	}
	return def, nil
}

// Data is the accumulated input of a wizard, keyed by field name.
type Data map[string]any

// State is a running wizard. Step counts from 1.
type State struct {
	Kind Kind `json:"kind"`
	Step int  `json:"step"`
	Data Data `json:"data"`
	Done bool `json:"done"`
}

// Start returns a fresh state on step 1.
func (d *Definition) Start() *State {
	return &State{Kind: d.Kind, Step: 1, Data: Data{}}
}

// StepName returns the name of the state's current step.
func (d *Definition) StepName(s *State) string {
	if s.Step < 1 || s.Step > len(d.Steps) {
		return ""
	}
	return d.Steps[s.Step-1].Name
}

// Terminal reports whether s sits on the last step.
func (d *Definition) Terminal(s *State) bool {
	return s.Step == len(d.Steps)
}

// Validate checks the current step's rules against the accumulated data.
func (d *Definition) Validate(s *State) error {
	step := d.Steps[s.Step-1]
	fields := map[string]string{}
	for _, r := range step.Rules {
		if msg := checks[r.Rule](s.Data[r.Field], r); msg != "" {
			fields[r.Field] = msg
		}
	}
	if len(fields) > 0 {
		return &apperrors.StepError{Step: step.Name, Fields: fields}
	}
	return nil
}

// Next merges input into the state and, when the current step is valid, moves
// forward. On the last step it only validates; the caller performs the terminal
// action and then calls Complete.
func (d *Definition) Next(s *State, input Data) error {
	if s.Done {
		return apperrors.ErrWizardCompleted
	}
	if s.Data == nil {
		s.Data = Data{}
	}
	for k, v := range input {
		s.Data[k] = v
	}
	if err := d.Validate(s); err != nil {
		return err
	}
	if !d.Terminal(s) {
		s.Step++
	}
	return nil
}

// Back moves one step back. It returns exit=true when called on step 1, in
// which case the wizard is left entirely.
func (d *Definition) Back(s *State) (exit bool, err error) {
	if s.Done {
		return false, apperrors.ErrWizardCompleted
	}
	if s.Step <= 1 {
		return true, nil
	}
	s.Step--
	return false, nil
}

// Complete marks the wizard finished. A finished wizard accepts neither Next nor Back.
func (s *State) Complete() {
	s.Done = true
}
