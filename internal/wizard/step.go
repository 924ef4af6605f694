// Package wizard drives the commission request form: the catalogue of
// steps, the flow variants that order them and the per-visitor session
// that walks a flow.
package wizard

import (
	"slices"

	"github.com/livinggrainco/site/internal/commission"
)

// StepKind identifies one step of the form.
type StepKind string

const (
	StepIntent      StepKind = "intent"
	StepProjectType StepKind = "project-type"
	StepDetails     StepKind = "details"
	StepMaterial    StepKind = "material"
	StepContact     StepKind = "contact"
	StepPreview     StepKind = "preview"
	StepContactInfo StepKind = "contact-info"

	StepWatchCapacity StepKind = "watch-capacity"
	StepWatchBoxShape StepKind = "watch-box-shape"
	StepWatchBoxLid   StepKind = "watch-box-lid"
	StepWatchBoxInlay StepKind = "watch-box-inlay"
	StepWatchCushion  StepKind = "watch-cushion"

	StepShadowBoxDimensions StepKind = "shadow-box-dimensions"
	StepShadowBoxFace       StepKind = "shadow-box-face"
	StepShadowBoxShelves    StepKind = "shadow-box-shelves"
	StepShadowBoxBacking    StepKind = "shadow-box-backing"

	StepJewelryOrientation   StepKind = "jewelry-orientation"
	StepJewelryTopFace       StepKind = "jewelry-top-face"
	StepJewelryInnerMaterial StepKind = "jewelry-inner-material"
	StepJewelryDrawers       StepKind = "jewelry-drawers"
	StepJewelryDoorFace      StepKind = "jewelry-door-face"
	StepJewelryInterior      StepKind = "jewelry-interior"
	StepJewelryHardware      StepKind = "jewelry-hardware"

	StepNightstandStyle  StepKind = "nightstand-style"
	StepNightstandEdging StepKind = "nightstand-edging"

	StepDeskShape           StepKind = "desk-shape"
	StepDeskLeftLeg         StepKind = "desk-left-leg"
	StepDeskRightLeg        StepKind = "desk-right-leg"
	StepDeskLength          StepKind = "desk-length"
	StepDeskHeight          StepKind = "desk-height"
	StepDeskDepth           StepKind = "desk-depth"
	StepDeskLegDesign       StepKind = "desk-leg-design"
	StepDeskLeftSideLength  StepKind = "desk-left-side-length"
	StepDeskRightSideLength StepKind = "desk-right-side-length"
	StepDeskLeftSideDepth   StepKind = "desk-left-side-depth"
	StepDeskRightSideDepth  StepKind = "desk-right-side-depth"
)

// Input is the control a question is rendered with.
type Input string

const (
	InputChoice   Input = "choice"
	InputToggle   Input = "toggle"
	InputSelect   Input = "select"
	InputNumber   Input = "number"
	InputText     Input = "text"
	InputEmail    Input = "email"
	InputTextarea Input = "textarea"
	InputFile     Input = "file"
)

// Question is one input of a step.
type Question struct {
	Field       commission.Field
	Label       string
	Input       Input
	Options     []commission.Option
	Placeholder string
	Min, Max    int

	// AllowCustom offers a free entry next to the preset options.
	AllowCustom bool

	// ShowIf hides the question until the record satisfies it.
	ShowIf func(a commission.Answers) bool
}

// Visible reports whether q is shown for the record a.
func (q Question) Visible(a commission.Answers) bool {
	return q.ShowIf == nil || q.ShowIf(a)
}

// Step describes one screen of the form.
type Step struct {
	Kind      StepKind
	Title     string
	Prompt    string
	Questions []Question

	// auto reports whether committing p by selection moves straight on.
	auto func(a commission.Answers, p commission.Patch) bool

	// ready reports whether the continue control is enabled.
	ready func(a commission.Answers) bool

	// normalize runs after p is applied and before readiness is checked.
	normalize func(a *commission.Answers, p commission.Patch)

	// routing steps commit a discriminant that selects the flow variant.
	routing bool
}

// Owns reports whether f is answered on this step.
func (s Step) Owns(f commission.Field) bool {
	return slices.ContainsFunc(s.Questions, func(q Question) bool { return q.Field == f })
}

// Fields lists the fields answered on this step.
func (s Step) Fields() []commission.Field {
	fields := make([]commission.Field, len(s.Questions))
	for i, q := range s.Questions {
		fields[i] = q.Field
	}
	return fields
}

func (s Step) Ready(a commission.Answers) bool {
	return s.ready == nil || s.ready(a)
}

// Routing reports whether committing this step can change the flow.
func (s Step) Routing() bool { return s.routing }

// Terminal reports whether the step accepts no answers.
func (s Step) Terminal() bool {
	return s.Kind == StepPreview || s.Kind == StepContactInfo
}

// Lookup returns the descriptor for kind.
func Lookup(kind StepKind) (Step, bool) {
	s, ok := catalogue[kind]
	return s, ok
}

func has(fields ...commission.Field) func(commission.Answers) bool {
	return func(a commission.Answers) bool {
		for _, f := range fields {
			if !a.Has(f) {
				return false
			}
		}
		return true
	}
}

func selected(f commission.Field) func(commission.Answers, commission.Patch) bool {
	return func(_ commission.Answers, p commission.Patch) bool {
		return p[f] != ""
	}
}

func isTrue(f commission.Field) func(commission.Answers) bool {
	return func(a commission.Answers) bool {
		v, _ := a.Bool(f)
		return v
	}
}

func equals(f commission.Field, values ...string) func(commission.Answers) bool {
	return func(a commission.Answers) bool {
		return slices.Contains(values, a.Value(f))
	}
}

// choice is a single tap-target question that advances on selection.
func choice(kind StepKind, title, prompt string, f commission.Field, label string, options []commission.Option) Step {
	return Step{
		Kind:      kind,
		Title:     title,
		Prompt:    prompt,
		Questions: []Question{{Field: f, Label: label, Input: InputChoice, Options: options}},
		auto:      selected(f),
		ready:     has(f),
	}
}

// withCustom is a choice whose "custom" option reveals a free-text
// companion that must be filled before continuing.
func withCustom(kind StepKind, title, prompt string, f, companion commission.Field, label string, options []commission.Option) Step {
	s := choice(kind, title, prompt, f, label, options)
	s.Questions = append(s.Questions, Question{
		Field:       companion,
		Label:       "Describe your preferred material",
		Input:       InputText,
		Placeholder: "e.g. Alcantara, silk",
		ShowIf:      equals(f, commission.Custom),
	})
	s.auto = func(_ commission.Answers, p commission.Patch) bool {
		return p[f] != "" && p[f] != commission.Custom
	}
	s.ready = func(a commission.Answers) bool {
		return a.Has(f) && (a.Value(f) != commission.Custom || a.Has(companion))
	}
	return s
}

// preset offers fixed measurements and a custom entry. Picking a preset
// advances; a custom entry needs continue.
func preset(kind StepKind, title, prompt string, f commission.Field, label string, options []commission.Option) Step {
	s := choice(kind, title, prompt, f, label, options)
	s.Questions[0].AllowCustom = true
	s.Questions[0].Placeholder = `Custom size in inches`
	s.auto = func(_ commission.Answers, p commission.Patch) bool {
		return slices.ContainsFunc(options, func(o commission.Option) bool { return o.ID == p[f] })
	}
	return s
}

// legs asks for a desk leg design, with a free idea or reference photo
// when none of the presets fit.
func legs(kind StepKind, title string, design, idea, file commission.Field) Step {
	options := append(slices.Clone(commission.DeskLegDesigns), commission.Option{
		ID:          commission.Custom,
		Label:       "Custom",
		Description: "Describe your idea or upload a reference photo",
	})
	isCustom := equals(design, commission.Custom)
	return Step{
		Kind:   kind,
		Title:  title,
		Prompt: "Pick a leg style or describe your own.",
		Questions: []Question{
			{Field: design, Label: "Leg design", Input: InputChoice, Options: options},
			{Field: idea, Label: "Describe your idea", Input: InputTextarea, ShowIf: isCustom},
			{Field: file, Label: "Reference photo", Input: InputFile, ShowIf: isCustom},
		},
		auto: func(_ commission.Answers, p commission.Patch) bool {
			return p[design] != "" && p[design] != commission.Custom
		},
		ready: func(a commission.Answers) bool {
			switch a.Value(design) {
			case "":
				return false
			case commission.Custom:
				return a.Has(idea) || a.Has(file)
			}
			return true
		},
		normalize: func(a *commission.Answers, p commission.Patch) {
			if (p[idea] != "" || p[file] != "") && !a.Has(design) {
				_ = a.Set(design, commission.Custom)
			}
		},
	}
}

var catalogue = map[StepKind]Step{}

func register(steps ...Step) {
	for _, s := range steps {
		catalogue[s.Kind] = s
	}
}

func init() {
	register(
		Step{
			Kind:   StepIntent,
			Title:  "How can we help you today?",
			Prompt: "Select the option that best describes your inquiry.",
		},
		Step{
			Kind:   StepContactInfo,
			Title:  "Get in Touch",
			Prompt: "We're here to help with any questions about your existing order.",
		},
		func() Step {
			s := choice(StepProjectType, "What would you like built?", "Choose the kind of piece.",
				commission.FieldProjectType, "Project type", commission.ProjectTypes)
			s.routing = true
			return s
		}(),
		Step{
			Kind:   StepDetails,
			Title:  "Tell us about the piece",
			Prompt: "Shape, legs and rough dimensions. Skip anything you have not decided yet.",
			Questions: []Question{
				{Field: commission.FieldShape, Label: "Shape", Input: InputChoice, Options: commission.Shapes},
				{Field: commission.FieldLegDesign, Label: "Leg design", Input: InputChoice, Options: commission.LegDesigns},
				{Field: commission.FieldLength, Label: "Length (in)", Input: InputText, Placeholder: "72"},
				{Field: commission.FieldWidth, Label: "Width (in)", Input: InputText, Placeholder: "36"},
				{Field: commission.FieldHeight, Label: "Height (in)", Input: InputText, Placeholder: "30"},
			},
		},
		Step{
			Kind:   StepMaterial,
			Title:  "Wood and finish",
			Prompt: "Every piece starts with the right board.",
			Questions: []Question{
				{Field: commission.FieldMaterial, Label: "Wood species", Input: InputChoice, Options: commission.Woods},
				{Field: commission.FieldFinish, Label: "Finish", Input: InputChoice, Options: commission.Finishes},
				{
					Field:       commission.FieldColor,
					Label:       "Color",
					Input:       InputText,
					Placeholder: "e.g. Espresso, Sage green",
					ShowIf:      equals(commission.FieldFinish, "stained", "painted"),
				},
			},
			ready: has(commission.FieldMaterial, commission.FieldFinish),
		},
		Step{
			Kind:   StepContact,
			Title:  "How do we reach you?",
			Prompt: "We reply to every request within two business days.",
			Questions: []Question{
				{Field: commission.FieldName, Label: "Name", Input: InputText},
				{Field: commission.FieldEmail, Label: "Email", Input: InputEmail},
				{Field: commission.FieldPhone, Label: "Phone (optional)", Input: InputText},
				{Field: commission.FieldMessage, Label: "Anything else?", Input: InputTextarea},
			},
			ready: has(commission.FieldName, commission.FieldEmail),
		},
		Step{
			Kind:   StepPreview,
			Title:  "Your commission",
			Prompt: "Here is what we have so far. Book a consultation to talk it through.",
		},
	)

	// Watch box.
	register(
		func() Step {
			s := choice(StepWatchCapacity, "How many watches?", "Pick the number of slots.",
				commission.FieldWatchCapacity, "Capacity", commission.WatchCapacities)
			s.ready = func(a commission.Answers) bool { return a.Int(commission.FieldWatchCapacity) > 0 }
			return s
		}(),
		choice(StepWatchBoxShape, "Box shape", "Choose the outline of the box.",
			commission.FieldWatchBoxShape, "Shape", commission.WatchBoxShapes),
		choice(StepWatchBoxLid, "Lid", "Show the collection or keep it hidden.",
			commission.FieldWatchBoxLid, "Lid", commission.WatchBoxLids),
		Step{
			Kind:   StepWatchBoxInlay,
			Title:  "Inlays",
			Prompt: "Add a metal inlay to the lid or sides.",
			Questions: []Question{
				{Field: commission.FieldHasInlays, Label: "Add inlays?", Input: InputToggle},
				{
					Field:   commission.FieldInlayMaterial,
					Label:   "Inlay material",
					Input:   InputSelect,
					Options: commission.MetalFinishes,
					ShowIf:  isTrue(commission.FieldHasInlays),
				},
				{
					Field:   commission.FieldInlayType,
					Label:   "Inlay type",
					Input:   InputSelect,
					Options: commission.InlayTypes,
					ShowIf:  isTrue(commission.FieldHasInlays),
				},
			},
			ready: has(commission.FieldHasInlays),
			normalize: func(a *commission.Answers, _ commission.Patch) {
				if v, ok := a.Bool(commission.FieldHasInlays); ok && !v {
					a.Unset(commission.FieldInlayMaterial, commission.FieldInlayType)
				}
			},
		},
		withCustom(StepWatchCushion, "Cushions", "What should the watches rest on?",
			commission.FieldCushionMaterial, commission.FieldCustomCushionMaterial, "Cushion material", commission.CushionMaterials),
	)

	// Shadow box.
	register(
		Step{
			Kind:   StepShadowBoxDimensions,
			Title:  "Dimensions",
			Prompt: "Outer size of the frame in inches.",
			Questions: []Question{
				{Field: commission.FieldShadowBoxHeight, Label: "Height (in)", Input: InputNumber, Min: 4, Max: 72},
				{Field: commission.FieldShadowBoxWidth, Label: "Width (in)", Input: InputNumber, Min: 4, Max: 72},
			},
			ready: has(commission.FieldShadowBoxHeight, commission.FieldShadowBoxWidth),
		},
		choice(StepShadowBoxFace, "Front", "Open for easy access or glass to protect.",
			commission.FieldShadowBoxFace, "Face", commission.ShadowBoxFaces),
		Step{
			Kind:   StepShadowBoxShelves,
			Title:  "Shelves",
			Prompt: "Divide the display with shelves.",
			Questions: []Question{
				{Field: commission.FieldHasShelves, Label: "Add shelves?", Input: InputToggle},
				{
					Field:  commission.FieldNumberOfShelves,
					Label:  "Number of shelves",
					Input:  InputNumber,
					Min:    1,
					Max:    10,
					ShowIf: isTrue(commission.FieldHasShelves),
				},
			},
			ready: func(a commission.Answers) bool {
				shelves, ok := a.Bool(commission.FieldHasShelves)
				return ok && (!shelves || a.Int(commission.FieldNumberOfShelves) > 0)
			},
			normalize: func(a *commission.Answers, _ commission.Patch) {
				if v, ok := a.Bool(commission.FieldHasShelves); ok && !v {
					a.Unset(commission.FieldNumberOfShelves)
				}
			},
		},
		choice(StepShadowBoxBacking, "Backing", "What lines the back panel?",
			commission.FieldBackingMaterial, "Backing material", commission.BackingMaterials),
	)

	// Jewelry box.
	register(
		func() Step {
			s := choice(StepJewelryOrientation, "Style", "A chest with a lid or a standing armoire.",
				commission.FieldJewelryOrientation, "Orientation", commission.JewelryOrientations)
			s.routing = true
			return s
		}(),
		choice(StepJewelryTopFace, "Lid", "Choose the top of the box.",
			commission.FieldTopFace, "Top", commission.TopFaces),
		withCustom(StepJewelryInnerMaterial, "Lining", "What lines the compartments?",
			commission.FieldInnerMaterial, commission.FieldCustomInnerMaterial, "Inner material", commission.InnerMaterials),
		func() Step {
			s := choice(StepJewelryDrawers, "Drawers", "How many drawers below the doors?",
				commission.FieldDrawerCount, "Drawers", commission.DrawerCounts)
			s.ready = func(a commission.Answers) bool { return a.Int(commission.FieldDrawerCount) > 0 }
			return s
		}(),
		choice(StepJewelryDoorFace, "Door", "Solid wood or glass.",
			commission.FieldDoorFace, "Door face", commission.DoorFaces),
		choice(StepJewelryInterior, "Interior", "How should the cabinet be fitted?",
			commission.FieldInteriorOptions, "Interior", commission.InteriorOptions),
		Step{
			Kind:   StepJewelryHardware,
			Title:  "Hardware",
			Prompt: "Hinges, pulls and hooks.",
			Questions: []Question{
				{Field: commission.FieldHardwareMaterial, Label: "Hardware finish", Input: InputSelect, Options: commission.MetalFinishes},
			},
			ready: has(commission.FieldHardwareMaterial),
		},
	)

	// Nightstand.
	register(
		choice(StepNightstandStyle, "Style", "Drawers, an open shelf or a cabinet.",
			commission.FieldNightstandStyle, "Style", commission.NightstandStyles),
		Step{
			Kind:   StepNightstandEdging,
			Title:  "Edging",
			Prompt: "Add a profile to the top edge.",
			Questions: []Question{
				{Field: commission.FieldHasEdging, Label: "Add edging?", Input: InputToggle},
				{
					Field:   commission.FieldEdgingTemplate,
					Label:   "Edge profile",
					Input:   InputChoice,
					Options: commission.EdgingTemplates,
					ShowIf:  isTrue(commission.FieldHasEdging),
				},
				{
					Field:  commission.FieldEdgingPhotoName,
					Label:  "Or upload a photo of the edge you want",
					Input:  InputFile,
					ShowIf: isTrue(commission.FieldHasEdging),
				},
			},
			auto: func(_ commission.Answers, p commission.Patch) bool {
				return p[commission.FieldEdgingTemplate] != "" || p[commission.FieldHasEdging] == "false"
			},
			ready: func(a commission.Answers) bool {
				edging, ok := a.Bool(commission.FieldHasEdging)
				if !ok {
					return false
				}
				return !edging || a.Has(commission.FieldEdgingTemplate) || a.Has(commission.FieldEdgingPhotoName)
			},
			normalize: func(a *commission.Answers, _ commission.Patch) {
				if v, ok := a.Bool(commission.FieldHasEdging); ok && !v {
					a.Unset(commission.FieldEdgingTemplate, commission.FieldEdgingPhotoName)
				}
			},
		},
	)

	// Desk.
	register(
		func() Step {
			s := choice(StepDeskShape, "Desk shape", "Choose the footprint.",
				commission.FieldDeskShape, "Shape", commission.DeskShapes)
			s.routing = true
			return s
		}(),
		legs(StepDeskLeftLeg, "Left side legs",
			commission.FieldLeftLegDesign, commission.FieldLeftLegCustomIdea, commission.FieldLeftLegCustomFileName),
		legs(StepDeskRightLeg, "Right side legs",
			commission.FieldRightLegDesign, commission.FieldRightLegCustomIdea, commission.FieldRightLegCustomFileName),
		legs(StepDeskLegDesign, "Legs",
			commission.FieldDeskLegDesign, commission.FieldDeskLegCustomIdea, commission.FieldDeskLegCustomFileName),
		preset(StepDeskLength, "Length", "Along the longest side.",
			commission.FieldDeskLength, "Length", commission.DeskLengths),
		preset(StepDeskDepth, "Depth", "Front to back.",
			commission.FieldDeskDepth, "Depth", commission.DeskDepths),
		preset(StepDeskLeftSideLength, "Left side length", "Length of the left run.",
			commission.FieldLeftSideLength, "Length", commission.DeskLengths),
		preset(StepDeskRightSideLength, "Right side length", "Length of the right run.",
			commission.FieldRightSideLength, "Length", commission.DeskLengths),
		preset(StepDeskLeftSideDepth, "Left side depth", "Depth of the left run.",
			commission.FieldLeftSideDepth, "Depth", commission.DeskSideDepths),
		preset(StepDeskRightSideDepth, "Right side depth", "Depth of the right run.",
			commission.FieldRightSideDepth, "Depth", commission.DeskSideDepths),
		Step{
			Kind:   StepDeskHeight,
			Title:  "Height",
			Prompt: "Standard seated desks sit between 28 and 30 inches.",
			Questions: []Question{
				{Field: commission.FieldDeskHeight, Label: "Height", Input: InputSelect, Options: commission.DeskHeights},
			},
			ready: has(commission.FieldDeskHeight),
		},
	)
}
