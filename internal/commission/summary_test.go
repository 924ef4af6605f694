package commission_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/livinggrainco/site/internal/commission"
)

func answers(t *testing.T, p commission.Patch) commission.Answers {
	t.Helper()
	var a commission.Answers
	if err := a.Apply(p); err != nil {
		t.Fatalf("building answers: %v", err)
	}
	return a
}

func TestSummary(t *testing.T) {
	tests := []struct {
		name  string
		patch commission.Patch
		want  []string
	}{
		{
			name: "watch box",
			patch: commission.Patch{
				commission.FieldProjectType:     "watch-box",
				commission.FieldWatchCapacity:   "6",
				commission.FieldWatchBoxShape:   "hexagon",
				commission.FieldWatchBoxLid:     "glass",
				commission.FieldHasInlays:       "false",
				commission.FieldCushionMaterial: "velvet",
			},
			want: []string{
				"Type: Watch box",
				"Capacity: 6 watches",
				"Shape: Hexagon",
				"Lid: Glass",
				"Inlays: None",
				"Cushion: Velvet",
			},
		},
		{
			name: "watch box with inlays and custom cushion",
			patch: commission.Patch{
				commission.FieldProjectType:           "watch-box",
				commission.FieldHasInlays:             "true",
				commission.FieldInlayMaterial:         "Brass",
				commission.FieldInlayType:             "Banding",
				commission.FieldCushionMaterial:       "custom",
				commission.FieldCustomCushionMaterial: "Alcantara",
			},
			want: []string{
				"Type: Watch box",
				"Inlays: Brass - Banding",
				"Cushion: Alcantara",
			},
		},
		{
			name: "shadow box",
			patch: commission.Patch{
				commission.FieldProjectType:     "shadow-box",
				commission.FieldShadowBoxHeight: "24",
				commission.FieldShadowBoxWidth:  "36",
				commission.FieldShadowBoxFace:   "glass",
				commission.FieldHasShelves:      "true",
				commission.FieldNumberOfShelves: "3",
				commission.FieldBackingMaterial: "foam-board",
			},
			want: []string{
				"Type: Shadow box",
				`Dimensions: 24" H × 36" W`,
				"Face: Glass Door",
				"Shelves: 3 shelves",
				"Backing: Foam Board",
			},
		},
		{
			name: "horizontal jewelry box",
			patch: commission.Patch{
				commission.FieldProjectType:         "jewelry-box",
				commission.FieldJewelryOrientation:  "horizontal",
				commission.FieldTopFace:             "solid-mirror",
				commission.FieldInnerMaterial:       "custom",
				commission.FieldCustomInnerMaterial: "Silk",
				commission.FieldMaterial:            "Cherry",
				commission.FieldFinish:              "Natural Oil",
			},
			want: []string{
				"Type: Jewelry box",
				"Style: Horizontal",
				"Lid: Solid w/ Mirror Inlaid",
				"Interior: Silk",
				"Wood: Cherry",
				"Finish: Natural Oil",
			},
		},
		{
			name: "vertical jewelry box",
			patch: commission.Patch{
				commission.FieldProjectType:        "jewelry-box",
				commission.FieldJewelryOrientation: "vertical",
				commission.FieldDrawerCount:        "2",
				commission.FieldDoorFace:           "glass",
				commission.FieldInteriorOptions:    "both",
				commission.FieldHardwareMaterial:   "Brass",
				commission.FieldMaterial:           "Walnut",
				commission.FieldFinish:             "Custom Stain",
				commission.FieldColor:              "Ebony",
			},
			want: []string{
				"Type: Jewelry box",
				"Style: Vertical",
				"Drawers: 2",
				"Door: Glass Face",
				"Interior: Hooks & Shelves",
				"Hardware: Brass",
				"Wood: Walnut",
				"Finish: Custom Stain",
				"Color: Ebony",
			},
		},
		{
			name: "nightstand with photo edging",
			patch: commission.Patch{
				commission.FieldProjectType:     "nightstand",
				commission.FieldNightstandStyle: "1-door-cabinet",
				commission.FieldHasEdging:       "true",
				commission.FieldEdgingPhotoName: "edge.jpg",
			},
			want: []string{
				"Type: Nightstand",
				"Style: 1 Door-Cabinet",
				"Edging: Custom (photo provided)",
			},
		},
		{
			name: "l-shaped desk",
			patch: commission.Patch{
				commission.FieldProjectType:        "desk",
				commission.FieldDeskShape:          "l-shape",
				commission.FieldLeftLegDesign:      "x-legs",
				commission.FieldRightLegDesign:     "custom",
				commission.FieldRightLegCustomIdea: "Hairpin steel",
				commission.FieldDeskLength:         "60",
				commission.FieldDeskHeight:         "29",
				commission.FieldDeskDepth:          "24",
			},
			want: []string{
				"Type: Desk",
				"Shape: L Shape",
				"Left legs: X Legs",
				"Right legs: Hairpin steel",
				`Length: 60"`,
				`Height: 29"`,
				`Depth: 24"`,
			},
		},
		{
			name: "rectangular desk",
			patch: commission.Patch{
				commission.FieldProjectType:           "desk",
				commission.FieldDeskShape:             "rectangle",
				commission.FieldDeskLegDesign:         "custom",
				commission.FieldDeskLegCustomFileName: "legs.png",
				commission.FieldLeftSideLength:        "54",
				commission.FieldRightSideDepth:        "22",
			},
			want: []string{
				"Type: Desk",
				"Shape: Rectangle",
				"Legs: Custom (photo provided)",
				`Left side length: 54"`,
				`Right side depth: 22"`,
			},
		},
		{
			name: "generic table",
			patch: commission.Patch{
				commission.FieldProjectType: "table",
				commission.FieldShape:       "round",
				commission.FieldLength:      "48",
				commission.FieldHeight:      "30",
				commission.FieldMaterial:    "Oak",
				commission.FieldColor:       "ignored",
			},
			want: []string{
				"Type: Table",
				"Shape: round",
				`Dimensions: 48" × 30"`,
				"Wood: Oak",
			},
		},
		{
			name:  "nothing answered",
			patch: commission.Patch{},
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := commission.Summary(answers(t, tt.patch))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Summary mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSummaryIgnoresForeignGroups(t *testing.T) {
	a := answers(t, commission.Patch{
		commission.FieldProjectType:   "shadow-box",
		commission.FieldWatchCapacity: "12",
		commission.FieldShadowBoxFace: "open",
	})

	want := []string{"Type: Shadow box", "Face: Open Face"}
	if diff := cmp.Diff(want, commission.Summary(a)); diff != "" {
		t.Errorf("Summary mismatch (-want +got):\n%s", diff)
	}
}
