package commission

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

var (
	ErrUnknownField = errors.New("unknown field")
	ErrInvalidValue = errors.New("invalid value")
)

// Answers is the record accumulated over one wizard session. A field is
// present once the visitor has answered it; an empty answer is absence.
// The zero value is an empty record ready to use.
type Answers struct {
	values map[Field]string
}

// Patch is a partial update to an Answers record. An empty value clears
// the field.
type Patch map[Field]string

// Get returns the raw value of f and whether it is present.
func (a Answers) Get(f Field) (string, bool) {
	v, ok := a.values[f]
	return v, ok
}

// Value returns the raw value of f, or "" when absent.
func (a Answers) Value(f Field) string {
	return a.values[f]
}

func (a Answers) Has(f Field) bool {
	_, ok := a.values[f]
	return ok
}

// Int returns the numeric value of f. Absent or non-numeric fields yield 0.
func (a Answers) Int(f Field) int {
	n, _ := strconv.Atoi(a.values[f])
	return n
}

// Bool returns the value of a boolean field and whether it was answered.
func (a Answers) Bool(f Field) (value, ok bool) {
	v, ok := a.values[f]
	if !ok {
		return false, false
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, false
	}
	return b, true
}

// ProjectType returns the selected project type, or "" before selection.
func (a Answers) ProjectType() ProjectType {
	return ProjectType(a.values[FieldProjectType])
}

func (a Answers) Len() int {
	return len(a.values)
}

// Fields returns the present fields in lexical order.
func (a Answers) Fields() []Field {
	fields := make([]Field, 0, len(a.values))
	for f := range a.values {
		fields = append(fields, f)
	}
	slices.Sort(fields)
	return fields
}

// Map returns a copy of the record as a plain map.
func (a Answers) Map() map[Field]string {
	m := make(map[Field]string, len(a.values))
	for f, v := range a.values {
		m[f] = v
	}
	return m
}

func (a Answers) Clone() Answers {
	if a.values == nil {
		return Answers{}
	}
	return Answers{values: a.Map()}
}

// Set parses raw according to the kind of f and stores it. An empty raw
// value removes the field.
func (a *Answers) Set(f Field, raw string) error {
	v, err := normalize(f, raw)
	if err != nil {
		return err
	}
	if v == "" {
		delete(a.values, f)
		return nil
	}
	if a.values == nil {
		a.values = make(map[Field]string)
	}
	a.values[f] = v
	return nil
}

func (a *Answers) Unset(fields ...Field) {
	for _, f := range fields {
		delete(a.values, f)
	}
}

// Apply validates every entry of p and then stores them all. Nothing is
// written when any entry is rejected.
func (a *Answers) Apply(p Patch) error {
	normalized := make(map[Field]string, len(p))
	for f, raw := range p {
		v, err := normalize(f, raw)
		if err != nil {
			return err
		}
		normalized[f] = v
	}
	for f, v := range normalized {
		if v == "" {
			delete(a.values, f)
			continue
		}
		if a.values == nil {
			a.values = make(map[Field]string)
		}
		a.values[f] = v
	}
	return nil
}

// Merge copies every field of other into a; other wins on conflict.
func (a *Answers) Merge(other Answers) {
	for f, v := range other.values {
		if a.values == nil {
			a.values = make(map[Field]string, len(other.values))
		}
		a.values[f] = v
	}
}

// Without returns a copy of the record minus every field in the given
// groups.
func (a Answers) Without(groups ...Group) Answers {
	out := Answers{}
	for f, v := range a.values {
		if slices.Contains(groups, f.Group()) {
			continue
		}
		if out.values == nil {
			out.values = make(map[Field]string)
		}
		out.values[f] = v
	}
	return out
}

func normalize(f Field, raw string) (string, error) {
	spec, ok := fieldSpecs[f]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownField, f)
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", nil
	}
	switch spec.kind {
	case KindNumber:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return "", fmt.Errorf("%w: %s must be a whole number", ErrInvalidValue, f)
		}
		return strconv.Itoa(n), nil
	case KindBoolean:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return "", fmt.Errorf("%w: %s must be true or false", ErrInvalidValue, f)
		}
		return strconv.FormatBool(b), nil
	}
	return raw, nil
}

// MarshalJSON writes the record with typed values, nesting dotted fields:
// {"watchCapacity": 6, "hasInlays": false, "dimensions": {"length": "48"}}.
func (a Answers) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(a.values))
	for f, v := range a.values {
		var typed any = v
		switch f.Kind() {
		case KindNumber:
			n, _ := strconv.Atoi(v)
			typed = n
		case KindBoolean:
			b, _ := strconv.ParseBool(v)
			typed = b
		}

		parent, child, nested := strings.Cut(string(f), ".")
		if !nested {
			out[parent] = typed
			continue
		}
		obj, _ := out[parent].(map[string]any)
		if obj == nil {
			obj = make(map[string]any)
			out[parent] = obj
		}
		obj[child] = typed
	}
	return json.Marshal(out)
}

func (a *Answers) UnmarshalJSON(data []byte) error {
	var p Patch
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*a = Answers{}
	return a.Apply(p)
}

// UnmarshalJSON accepts the same nested shape Answers marshals to. JSON
// numbers and booleans are converted to their text form; null clears.
func (p *Patch) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		return err
	}

	out := make(Patch, len(raw))
	for key, v := range raw {
		if obj, ok := v.(map[string]any); ok {
			for child, cv := range obj {
				if err := out.put(Field(key+"."+child), cv); err != nil {
					return err
				}
			}
			continue
		}
		if err := out.put(Field(key), v); err != nil {
			return err
		}
	}
	*p = out
	return nil
}

func (p Patch) put(f Field, v any) error {
	if !f.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownField, f)
	}
	switch v := v.(type) {
	case nil:
		p[f] = ""
	case string:
		p[f] = v
	case json.Number:
		p[f] = v.String()
	case bool:
		p[f] = strconv.FormatBool(v)
	default:
		return fmt.Errorf("%w: %s has unsupported type %T", ErrInvalidValue, f, v)
	}
	return nil
}
