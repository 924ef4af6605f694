package wizard

import (
	"errors"
	"fmt"
	"time"

	"github.com/livinggrainco/site/internal/commission"
)

var (
	ErrFieldNotInStep = errors.New("field not asked on this step")
	ErrStepIncomplete = errors.New("step incomplete")
	ErrNoActiveStep   = errors.New("no step accepts answers here")
	ErrUnknownAction  = errors.New("unknown action")
)

// Action says how a step submission was triggered.
type Action string

const (
	// ActionSelect is a tap on a single-choice option.
	ActionSelect Action = "select"

	// ActionContinue is the explicit continue control.
	ActionContinue Action = "continue"
)

func ParseAction(s string) (Action, error) {
	switch a := Action(s); a {
	case ActionSelect, ActionContinue:
		return a, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAction, s)
}

// StalePolicy decides what happens to answers of an abandoned project type
// when the visitor goes back and picks another one.
type StalePolicy string

const (
	// StaleKeep leaves them in the record; they are never read.
	StaleKeep StalePolicy = "keep"

	// StaleClear drops every field outside the common group and the group
	// of the new project type.
	StaleClear StalePolicy = "clear"
)

func ParseStalePolicy(s string) (StalePolicy, error) {
	switch p := StalePolicy(s); p {
	case StaleKeep, StaleClear:
		return p, nil
	case "":
		return StaleKeep, nil
	}
	return "", fmt.Errorf("unknown stale field policy %q", s)
}

// UnmarshalText lets configuration parse the policy directly.
func (p *StalePolicy) UnmarshalText(text []byte) error {
	v, err := ParseStalePolicy(string(text))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// Options configures new sessions.
type Options struct {
	Stale StalePolicy
}

// Session is one visitor's walk through the form. The flow variant is
// frozen when a routing step commits, so the step count and the step at
// each index only change in response to that visitor's own choice.
type Session struct {
	ID          string             `json:"id"`
	Index       int                `json:"index"`
	ShowContact bool               `json:"showContact"`
	Finished    bool               `json:"finished"`
	Booking     bool               `json:"booking"`
	Variant     Variant            `json:"variant"`
	Stale       StalePolicy        `json:"stale"`
	Answers     commission.Answers `json:"answers"`
	CreatedAt   time.Time          `json:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt"`
}

// New starts a session at the intent step with an empty record.
func New(id string, opts Options) *Session {
	if opts.Stale == "" {
		opts.Stale = StaleKeep
	}
	now := time.Now().UTC()
	return &Session{
		ID:        id,
		Variant:   VariantStandard,
		Stale:     opts.Stale,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Restart discards every answer and returns to the intent step, keeping
// the session id.
func (s *Session) Restart() {
	created := s.CreatedAt
	*s = *New(s.ID, Options{Stale: s.Stale})
	s.CreatedAt = created
}

func (s *Session) Clone() *Session {
	c := *s
	c.Answers = s.Answers.Clone()
	return &c
}

// Flow returns the frozen flow. A session restored with an unknown
// variant falls back to routing its answers.
func (s *Session) Flow() Flow {
	f, err := FlowFor(s.Variant)
	if err != nil {
		return Route(s.Answers)
	}
	return f
}

func (s *Session) Total() int { return s.Flow().Len() }

// Current returns the step the visitor is looking at.
func (s *Session) Current() Step {
	switch {
	case s.ShowContact:
		return catalogue[StepContactInfo]
	case s.Finished:
		return catalogue[StepPreview]
	}
	return s.Flow().At(s.Index)
}

// Advance moves to the next step. Past the last step of a flow that has
// no summary step of its own, it finishes the session instead.
func (s *Session) Advance() {
	f := s.Flow()
	if s.Index+1 < f.Len() {
		s.Index++
		return
	}
	s.Index = f.Len() - 1
	if !f.EndsWithPreview() {
		s.Finished = true
	}
}

// GoBack unwinds the booking panel, the finished summary and the
// contact-info view, in that order; otherwise it moves to the previous
// step.
func (s *Session) GoBack() {
	switch {
	case s.Booking:
		s.Booking = false
	case s.Finished:
		s.Finished = false
	case s.ShowContact:
		s.ShowContact = false
	case s.Index > 0:
		s.Index--
	}
	if s.Index == 0 {
		s.ShowContact = false
	}
}

// ExistingOrder switches to the contact-info view. It only applies on the
// intent step.
func (s *Session) ExistingOrder() error {
	if s.Index != 0 || s.ShowContact {
		return ErrNoActiveStep
	}
	s.ShowContact = true
	return nil
}

// NewCommission leaves the intent step for project type selection.
func (s *Session) NewCommission() error {
	if s.Index != 0 || s.ShowContact {
		return ErrNoActiveStep
	}
	s.Advance()
	return nil
}

// Book reveals the booking panel on the summary.
func (s *Session) Book() error {
	if s.Current().Kind != StepPreview || s.ShowContact {
		return ErrNoActiveStep
	}
	s.Booking = true
	return nil
}

// Submit commits p to the current step and advances when the action and
// the step allow it. Fields not asked on the current step are rejected
// and nothing is written. A continue on a step that is not ready returns
// ErrStepIncomplete with the patch still applied.
func (s *Session) Submit(p commission.Patch, action Action) error {
	if _, err := ParseAction(string(action)); err != nil {
		return err
	}
	step := s.Current()
	if step.Terminal() || s.Finished {
		return ErrNoActiveStep
	}
	for f := range p {
		if !step.Owns(f) {
			return fmt.Errorf("%w: %s on %s", ErrFieldNotInStep, f, step.Kind)
		}
	}

	before := s.Answers.ProjectType()
	if err := s.Answers.Apply(p); err != nil {
		return err
	}
	if step.normalize != nil {
		step.normalize(&s.Answers, p)
	}
	if step.routing {
		s.reroute(before)
	}

	switch action {
	case ActionContinue:
		if !step.Ready(s.Answers) {
			return ErrStepIncomplete
		}
		s.Advance()
	case ActionSelect:
		if step.auto != nil && step.auto(s.Answers, p) && step.Ready(s.Answers) {
			s.Advance()
		}
	}
	return nil
}

func (s *Session) reroute(before commission.ProjectType) {
	after := s.Answers.ProjectType()
	if s.Stale == StaleClear && before != "" && before != after {
		var foreign []commission.Group
		for _, g := range allGroups {
			if g != commission.GroupCommon && g != commission.GroupFor(after) {
				foreign = append(foreign, g)
			}
		}
		s.Answers = s.Answers.Without(foreign...)
	}
	s.Variant = Route(s.Answers).Variant
	s.Index = min(s.Index, s.Total()-1)
}

var allGroups = []commission.Group{
	commission.GroupCommon,
	commission.GroupGeneric,
	commission.GroupWatchBox,
	commission.GroupShadowBox,
	commission.GroupJewelryBox,
	commission.GroupNightstand,
	commission.GroupDesk,
}

// Fields lists the fields owned by the current step, for form decoding.
func (s *Session) Fields() []commission.Field {
	if s.ShowContact || s.Finished {
		return nil
	}
	return s.Current().Fields()
}
