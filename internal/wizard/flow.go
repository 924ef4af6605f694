package wizard

import (
	"fmt"
	"slices"

	"github.com/livinggrainco/site/internal/commission"
)

// Variant names one ordered list of steps.
type Variant string

const (
	VariantStandard          Variant = "standard"
	VariantWatchBox          Variant = "watch-box"
	VariantShadowBox         Variant = "shadow-box"
	VariantJewelryHorizontal Variant = "jewelry-box/horizontal"
	VariantJewelryVertical   Variant = "jewelry-box/vertical"
	VariantJewelryPending    Variant = "jewelry-box"
	VariantNightstand        Variant = "nightstand"
	VariantDeskL             Variant = "desk/l-shape"
	VariantDeskStandard      Variant = "desk/standard"
	VariantDeskPending       Variant = "desk"
)

// Flow is the ordered list of steps for one variant.
type Flow struct {
	Variant Variant    `json:"variant"`
	Steps   []StepKind `json:"steps"`
}

func (f Flow) Len() int { return len(f.Steps) }

// At returns the step at index i, clamped to the flow bounds.
func (f Flow) At(i int) Step {
	i = max(0, min(i, len(f.Steps)-1))
	return catalogue[f.Steps[i]]
}

// EndsWithPreview reports whether the last step is the summary.
func (f Flow) EndsWithPreview() bool {
	return len(f.Steps) > 0 && f.Steps[len(f.Steps)-1] == StepPreview
}

var head = []StepKind{StepIntent, StepProjectType}

func flow(v Variant, steps ...StepKind) Flow {
	return Flow{Variant: v, Steps: append(slices.Clone(head), steps...)}
}

var flows = []Flow{
	flow(VariantStandard, StepDetails, StepMaterial, StepContact, StepPreview),
	flow(VariantWatchBox,
		StepWatchCapacity, StepWatchBoxShape, StepWatchBoxLid, StepWatchBoxInlay, StepWatchCushion,
		StepContact),
	flow(VariantShadowBox,
		StepShadowBoxDimensions, StepShadowBoxFace, StepShadowBoxShelves, StepShadowBoxBacking,
		StepContact),
	flow(VariantJewelryHorizontal,
		StepJewelryOrientation, StepJewelryTopFace, StepJewelryInnerMaterial,
		StepMaterial, StepContact, StepPreview),
	flow(VariantJewelryVertical,
		StepJewelryOrientation, StepJewelryDrawers, StepJewelryDoorFace, StepJewelryInterior, StepJewelryHardware,
		StepMaterial, StepContact, StepPreview),
	flow(VariantJewelryPending, StepJewelryOrientation),
	flow(VariantNightstand,
		StepNightstandStyle, StepNightstandEdging,
		StepMaterial, StepContact, StepPreview),
	flow(VariantDeskL,
		StepDeskShape, StepDeskLeftLeg, StepDeskRightLeg, StepDeskLength, StepDeskHeight, StepDeskDepth,
		StepMaterial, StepContact, StepPreview),
	flow(VariantDeskStandard,
		StepDeskShape, StepDeskLegDesign,
		StepDeskLeftSideLength, StepDeskRightSideLength, StepDeskLeftSideDepth, StepDeskRightSideDepth,
		StepDeskHeight, StepMaterial, StepContact, StepPreview),
	flow(VariantDeskPending, StepDeskShape),
}

// Flows returns every flow variant.
func Flows() []Flow {
	out := make([]Flow, len(flows))
	for i, f := range flows {
		out[i] = Flow{Variant: f.Variant, Steps: slices.Clone(f.Steps)}
	}
	return out
}

// FlowFor returns the flow of variant v.
func FlowFor(v Variant) (Flow, error) {
	for _, f := range flows {
		if f.Variant == v {
			return f, nil
		}
	}
	return Flow{}, fmt.Errorf("unknown flow variant %q", v)
}

// Route selects the flow for the answers collected so far. Project types
// without a dedicated flow use the standard one; jewelry boxes and desks
// stop at their second discriminant until it is answered.
func Route(a commission.Answers) Flow {
	v := VariantStandard
	switch a.ProjectType() {
	case commission.ProjectWatchBox:
		v = VariantWatchBox
	case commission.ProjectShadowBox:
		v = VariantShadowBox
	case commission.ProjectNightstand:
		v = VariantNightstand
	case commission.ProjectJewelryBox:
		switch a.Value(commission.FieldJewelryOrientation) {
		case commission.OrientationHorizontal:
			v = VariantJewelryHorizontal
		case commission.OrientationVertical:
			v = VariantJewelryVertical
		default:
			v = VariantJewelryPending
		}
	case commission.ProjectDesk:
		switch shape := a.Value(commission.FieldDeskShape); {
		case shape == commission.DeskShapeL:
			v = VariantDeskL
		case shape != "":
			v = VariantDeskStandard
		default:
			v = VariantDeskPending
		}
	}
	f, _ := FlowFor(v)
	return f
}
