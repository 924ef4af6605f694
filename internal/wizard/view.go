package wizard

import (
	"github.com/livinggrainco/site/internal/commission"
)

// View is the render model of the current screen.
type View struct {
	Kind         StepKind       `json:"kind"`
	Title        string         `json:"title"`
	Prompt       string         `json:"prompt"`
	Number       int            `json:"number"`
	Total        int            `json:"total"`
	Progress     int            `json:"progress"`
	ShowProgress bool           `json:"showProgress"`
	CanGoBack    bool           `json:"canGoBack"`
	Ready        bool           `json:"ready"`
	Booking      bool           `json:"booking"`
	Questions    []QuestionView `json:"questions,omitempty"`
	Summary      []string       `json:"summary,omitempty"`
}

// QuestionView is a visible question with its current answer.
type QuestionView struct {
	Field       commission.Field    `json:"field"`
	Label       string              `json:"label"`
	Input       Input               `json:"input"`
	Options     []commission.Option `json:"options,omitempty"`
	Placeholder string              `json:"placeholder,omitempty"`
	Min         int                 `json:"min,omitempty"`
	Max         int                 `json:"max,omitempty"`
	AllowCustom bool                `json:"allowCustom,omitempty"`
	Value       string              `json:"value,omitempty"`
}

// Custom reports whether the answer is a free entry rather than one of
// the offered options.
func (q QuestionView) Custom() bool {
	if q.Value == "" || len(q.Options) == 0 {
		return false
	}
	for _, o := range q.Options {
		if o.ID == q.Value {
			return false
		}
	}
	return true
}

// View builds the render model for the session's current screen.
func (s *Session) View() View {
	step := s.Current()
	total := s.Total()
	number := min(s.Index+1, total)

	v := View{
		Kind:         step.Kind,
		Title:        step.Title,
		Prompt:       step.Prompt,
		Number:       number,
		Total:        total,
		Progress:     number * 100 / max(total, 1),
		ShowProgress: !s.ShowContact && s.Index > 0,
		CanGoBack:    s.ShowContact || s.Finished || s.Booking || s.Index > 0,
		Ready:        step.Ready(s.Answers),
		Booking:      s.Booking,
	}
	if step.Kind == StepPreview {
		v.Progress = 100
		v.Summary = commission.Summary(s.Answers)
	}
	for _, q := range step.Questions {
		if !q.Visible(s.Answers) {
			continue
		}
		v.Questions = append(v.Questions, QuestionView{
			Field:       q.Field,
			Label:       q.Label,
			Input:       q.Input,
			Options:     q.Options,
			Placeholder: q.Placeholder,
			Min:         q.Min,
			Max:         q.Max,
			AllowCustom: q.AllowCustom,
			Value:       s.Answers.Value(q.Field),
		})
	}
	return v
}
