package commission

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// Summary lists the visitor's selections for the preview step, one bullet
// per answered field relevant to the selected project type, in the order
// the flow asks for them.
func Summary(a Answers) []string {
	var items []string
	add := func(format string, args ...any) {
		items = append(items, fmt.Sprintf(format, args...))
	}

	pt := a.ProjectType()
	if pt != "" {
		add("Type: %s", capitalize(strings.Replace(string(pt), "-", " ", 1)))
	}

	switch pt {
	case ProjectWatchBox:
		if n := a.Int(FieldWatchCapacity); n != 0 {
			add("Capacity: %d watches", n)
		}
		if v := a.Value(FieldWatchBoxShape); v != "" {
			add("Shape: %s", capitalize(v))
		}
		if v := a.Value(FieldWatchBoxLid); v != "" {
			add("Lid: %s", capitalize(v))
		}
		if inlays, ok := a.Bool(FieldHasInlays); ok {
			material, kind := a.Value(FieldInlayMaterial), a.Value(FieldInlayType)
			if inlays && material != "" && kind != "" {
				add("Inlays: %s - %s", material, kind)
			} else {
				add("Inlays: None")
			}
		}
		if v := a.Value(FieldCushionMaterial); v != "" {
			add("Cushion: %s", customOr(a, v, FieldCustomCushionMaterial))
		}

	case ProjectShadowBox:
		h, w := a.Value(FieldShadowBoxHeight), a.Value(FieldShadowBoxWidth)
		if h != "" && w != "" {
			add(`Dimensions: %s" H × %s" W`, h, w)
		}
		if v := a.Value(FieldShadowBoxFace); v != "" {
			face := "Open Face"
			if v == "glass" {
				face = "Glass Door"
			}
			add("Face: %s", face)
		}
		if shelves, ok := a.Bool(FieldHasShelves); ok {
			if n := a.Int(FieldNumberOfShelves); shelves && n != 0 {
				add("Shelves: %d shelves", n)
			} else {
				add("Shelves: None")
			}
		}
		if v := a.Value(FieldBackingMaterial); v != "" {
			add("Backing: %s", titleCaser.String(strings.ReplaceAll(v, "-", " ")))
		}

	case ProjectJewelryBox:
		orientation := a.Value(FieldJewelryOrientation)
		if orientation != "" {
			add("Style: %s", capitalize(orientation))
		}
		switch orientation {
		case OrientationHorizontal:
			if v := a.Value(FieldTopFace); v != "" {
				lid := "Solid w/ Mirror Inlaid"
				if v == "glass" {
					lid = "Glass Top"
				}
				add("Lid: %s", lid)
			}
			if v := a.Value(FieldInnerMaterial); v != "" {
				add("Interior: %s", customOr(a, v, FieldCustomInnerMaterial))
			}
		case OrientationVertical:
			if n := a.Int(FieldDrawerCount); n != 0 {
				add("Drawers: %d", n)
			}
			if v := a.Value(FieldDoorFace); v != "" {
				door := "Solid Face"
				if v == "glass" {
					door = "Glass Face"
				}
				add("Door: %s", door)
			}
			if v := a.Value(FieldInteriorOptions); v != "" {
				interior := "Hooks & Shelves"
				switch v {
				case "necklace-hooks":
					interior = "Necklace Hooks"
				case "shelves":
					interior = "Shelves"
				}
				add("Interior: %s", interior)
			}
			if v := a.Value(FieldHardwareMaterial); v != "" {
				add("Hardware: %s", v)
			}
		}
		items = appendWood(items, a, true)

	case ProjectNightstand:
		if v := a.Value(FieldNightstandStyle); v != "" {
			style := "Drawers"
			switch v {
			case "1-drawer-open-solid":
				style = "1 Drawer-Open Solid"
			case "1-door-cabinet":
				style = "1 Door-Cabinet"
			}
			add("Style: %s", style)
		}
		if edging, ok := a.Bool(FieldHasEdging); ok {
			switch {
			case !edging:
				add("Edging: None")
			case a.Has(FieldEdgingTemplate):
				add("Edging: %s", a.Value(FieldEdgingTemplate))
			case a.Has(FieldEdgingPhotoName):
				add("Edging: Custom (photo provided)")
			}
		}
		items = appendWood(items, a, true)

	case ProjectDesk:
		shape := a.Value(FieldDeskShape)
		if shape != "" {
			add("Shape: %s", LabelOf(DeskShapes, shape))
		}
		if shape == DeskShapeL {
			if v := legs(a, FieldLeftLegDesign, FieldLeftLegCustomIdea, FieldLeftLegCustomFileName); v != "" {
				add("Left legs: %s", v)
			}
			if v := legs(a, FieldRightLegDesign, FieldRightLegCustomIdea, FieldRightLegCustomFileName); v != "" {
				add("Right legs: %s", v)
			}
			if v := a.Value(FieldDeskLength); v != "" {
				add(`Length: %s"`, v)
			}
			if v := a.Value(FieldDeskHeight); v != "" {
				add(`Height: %s"`, v)
			}
			if v := a.Value(FieldDeskDepth); v != "" {
				add(`Depth: %s"`, v)
			}
		} else if shape != "" {
			if v := legs(a, FieldDeskLegDesign, FieldDeskLegCustomIdea, FieldDeskLegCustomFileName); v != "" {
				add("Legs: %s", v)
			}
			for _, m := range []struct {
				label string
				field Field
			}{
				{"Left side length", FieldLeftSideLength},
				{"Right side length", FieldRightSideLength},
				{"Left side depth", FieldLeftSideDepth},
				{"Right side depth", FieldRightSideDepth},
				{"Height", FieldDeskHeight},
			} {
				if v := a.Value(m.field); v != "" {
					add(`%s: %s"`, m.label, v)
				}
			}
		}
		items = appendWood(items, a, true)

	default:
		if v := a.Value(FieldShape); v != "" {
			add("Shape: %s", v)
		}
		if v := a.Value(FieldLegDesign); v != "" {
			add("Legs: %s", v)
		}
		var dims []string
		for _, f := range []Field{FieldLength, FieldWidth, FieldHeight} {
			if v := a.Value(f); v != "" {
				dims = append(dims, v+`"`)
			}
		}
		if len(dims) > 0 {
			add("Dimensions: %s", strings.Join(dims, " × "))
		}
		items = appendWood(items, a, false)
	}

	return items
}

func appendWood(items []string, a Answers, withColor bool) []string {
	if v := a.Value(FieldMaterial); v != "" {
		items = append(items, "Wood: "+v)
	}
	if v := a.Value(FieldFinish); v != "" {
		items = append(items, "Finish: "+v)
	}
	if v := a.Value(FieldColor); withColor && v != "" {
		items = append(items, "Color: "+v)
	}
	return items
}

// customOr substitutes the free-text companion for a "custom" choice.
func customOr(a Answers, choice string, companion Field) string {
	if text := a.Value(companion); choice == Custom && text != "" {
		return text
	}
	return capitalize(choice)
}

func legs(a Answers, design, idea, file Field) string {
	v := a.Value(design)
	switch {
	case v == "":
		return ""
	case v != Custom:
		return LabelOf(DeskLegDesigns, v)
	case a.Has(idea):
		return a.Value(idea)
	case a.Has(file):
		return "Custom (photo provided)"
	default:
		return "Custom"
	}
}

// capitalize upper-cases the first letter only.
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
