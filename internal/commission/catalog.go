package commission

import "strconv"

// ProjectType is the kind of piece being commissioned.
type ProjectType string

const (
	ProjectTable      ProjectType = "table"
	ProjectDesk       ProjectType = "desk"
	ProjectVanity     ProjectType = "vanity"
	ProjectWatchBox   ProjectType = "watch-box"
	ProjectJewelryBox ProjectType = "jewelry-box"
	ProjectShadowBox  ProjectType = "shadow-box"
	ProjectNightstand ProjectType = "nightstand"
	ProjectOther      ProjectType = "other"
)

// Discriminant values that select a flow variant.
const (
	OrientationHorizontal = "horizontal"
	OrientationVertical   = "vertical"
	DeskShapeL            = "l-shape"
)

// Custom is the option id that asks for a free-text companion answer.
const Custom = "custom"

// Option is one choice offered for a question.
type Option struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Description string `json:"description,omitempty"`
}

// LabelOf returns the label of the option with the given id, or the id
// itself when no option matches.
func LabelOf(options []Option, id string) string {
	for _, o := range options {
		if o.ID == id {
			return o.Label
		}
	}
	return id
}

func plain(labels ...string) []Option {
	opts := make([]Option, len(labels))
	for i, l := range labels {
		opts[i] = Option{ID: l, Label: l}
	}
	return opts
}

func numbered(label func(n int) string, ns ...int) []Option {
	opts := make([]Option, len(ns))
	for i, n := range ns {
		opts[i] = Option{ID: strconv.Itoa(n), Label: label(n)}
	}
	return opts
}

func inches(n int) string { return strconv.Itoa(n) + `"` }

func span(from, to, step int) []int {
	var ns []int
	for n := from; n <= to; n += step {
		ns = append(ns, n)
	}
	return ns
}

var ProjectTypes = []Option{
	{ID: string(ProjectTable), Label: "Table"},
	{ID: string(ProjectDesk), Label: "Desk"},
	{ID: string(ProjectVanity), Label: "Vanity"},
	{ID: string(ProjectWatchBox), Label: "Watch Box"},
	{ID: string(ProjectJewelryBox), Label: "Jewelry Box"},
	{ID: string(ProjectShadowBox), Label: "Shadow Box"},
	{ID: string(ProjectNightstand), Label: "Nightstand"},
	{ID: string(ProjectOther), Label: "Other"},
}

// Generic piece details.
var (
	Shapes = []Option{
		{ID: "rectangle", Label: "Rectangle"},
		{ID: "round", Label: "Round"},
		{ID: "live-edge", Label: "Live Edge"},
		{ID: Custom, Label: "Custom"},
	}
	LegDesigns = []Option{
		{ID: "square", Label: "Square Legs"},
		{ID: "round", Label: "Round Legs"},
		{ID: "x-legs", Label: "X-Legs"},
		{ID: "tapered", Label: "Tapered Legs"},
		{ID: Custom, Label: "Custom Design"},
	}
)

// Materials and finishes shared by most flows.
var (
	Woods = []Option{
		{ID: "walnut", Label: "Black Walnut"},
		{ID: "oak", Label: "White Oak"},
		{ID: "maple", Label: "Hard Maple"},
		{ID: "cherry", Label: "Cherry"},
		{ID: "ash", Label: "Ash"},
		{ID: "mahogany", Label: "Mahogany"},
	}
	Finishes = []Option{
		{ID: "natural", Label: "Natural Oil"},
		{ID: "satin", Label: "Satin Polyurethane"},
		{ID: "matte", Label: "Matte Finish"},
		{ID: "stained", Label: "Custom Stain"},
		{ID: "painted", Label: "Painted"},
	}
	MetalFinishes = plain("Brass", "Stainless Steel", "Silver", "Gold", "Copper")
)

// Watch box.
var (
	WatchCapacities = numbered(func(n int) string {
		if n == 1 {
			return "1 watch"
		}
		return strconv.Itoa(n) + " watches"
	}, 1, 2, 3, 4, 6, 8, 10, 12, 16, 20, 24)
	WatchBoxShapes = []Option{
		{ID: "square", Label: "Square"},
		{ID: "rectangle", Label: "Rectangle"},
		{ID: "hexagon", Label: "Hexagon"},
		{ID: "triangle", Label: "Triangle"},
	}
	WatchBoxLids = []Option{
		{ID: "glass", Label: "Glass Top", Description: "Display your collection with a clear glass lid"},
		{ID: "wood", Label: "Wood Top", Description: "Classic solid wood lid for a timeless look"},
	}
	InlayTypes       = plain("Banding", "Contrasting Wood", "Vertical", "Horizontal")
	CushionMaterials = []Option{
		{ID: "leather", Label: "Leather", Description: "Premium leather for a luxurious feel"},
		{ID: "velvet", Label: "Velvet", Description: "Soft velvet for gentle watch protection"},
		{ID: "suede", Label: "Suede", Description: "Rich suede texture"},
		{ID: "wood", Label: "Wood", Description: "Minimalist wood pillows"},
		{ID: Custom, Label: "Custom", Description: "Tell us your preferred material"},
	}
)

// Shadow box.
var (
	ShadowBoxFaces = []Option{
		{ID: "open", Label: "Open Face", Description: "No glass or door - open display for easy access"},
		{ID: "glass", Label: "Glass Door", Description: "Protected display with glass front to preserve your collection"},
	}
	BackingMaterials = []Option{
		{ID: "foam-board", Label: "Foam Board", Description: "Lightweight, easy to pin items"},
		{ID: "cork", Label: "Cork", Description: "Natural texture, ideal for pinning"},
		{ID: "felt", Label: "Felt", Description: "Soft, elegant presentation"},
		{ID: "plywood", Label: "Plywood", Description: "Solid wood backing"},
		{ID: "mdf", Label: "MDF", Description: "Smooth, paintable surface"},
	}
)

// Jewelry box.
var (
	JewelryOrientations = []Option{
		{ID: OrientationHorizontal, Label: "Horizontal", Description: "Traditional jewelry box with top-opening lid"},
		{ID: OrientationVertical, Label: "Vertical", Description: "Armoire-style with drawers and doors"},
	}
	TopFaces = []Option{
		{ID: "glass", Label: "Glass Top", Description: "See your collection at a glance with a glass lid"},
		{ID: "solid-mirror", Label: "Solid w/ Mirror Inlaid", Description: "Elegant solid lid with inlaid mirror detail"},
	}
	InnerMaterials = []Option{
		{ID: "leather", Label: "Leather", Description: "Premium leather lining"},
		{ID: "velvet", Label: "Velvet", Description: "Soft velvet interior"},
		{ID: "suede", Label: "Suede", Description: "Rich suede lining"},
		{ID: "wood", Label: "Wood", Description: "Natural wood compartments"},
		{ID: Custom, Label: "Custom", Description: "Tell us your preference"},
	}
	DrawerCounts = numbered(func(n int) string {
		if n == 1 {
			return "1 Drawer"
		}
		return strconv.Itoa(n) + " Drawers"
	}, 1, 2, 3)
	DoorFaces = []Option{
		{ID: "solid", Label: "Solid Face", Description: "Traditional solid wood door"},
		{ID: "glass", Label: "Glass Face", Description: "Display your jewelry with a glass door"},
	}
	InteriorOptions = []Option{
		{ID: "necklace-hooks", Label: "Necklace Hooks", Description: "Dedicated hooks for hanging necklaces"},
		{ID: "shelves", Label: "Shelves", Description: "Adjustable shelves for versatile storage"},
		{ID: "both", Label: "Both", Description: "Combination of hooks and shelves"},
	}
)

// Nightstand.
var (
	NightstandStyles = []Option{
		{ID: "drawers", Label: "Drawers", Description: "Multiple drawer storage"},
		{ID: "1-drawer-open-solid", Label: "1 Drawer-Open Solid", Description: "One drawer with open shelf below"},
		{ID: "1-door-cabinet", Label: "1 Door-Cabinet", Description: "Single door cabinet design"},
	}
	EdgingTemplates = plain("Simple Rounded Edge", "Chamfered Edge", "Decorative Bevel", "Live Edge", "No Edging")
)

// Desk.
var (
	DeskShapes = []Option{
		{ID: DeskShapeL, Label: "L Shape", Description: "Corner desk with two perpendicular surfaces"},
		{ID: "rectangle", Label: "Rectangle", Description: "Traditional straight desk"},
		{ID: "live-edge", Label: "Live Edge", Description: "Natural edge desk with organic form"},
		{ID: "corner", Label: "Corner", Description: "Angled corner desk design"},
	}
	DeskLegDesigns = []Option{
		{ID: "square", Label: "Square"},
		{ID: "round", Label: "Round"},
		{ID: "x-legs", Label: "X Legs"},
		{ID: "drawers", Label: "Drawers"},
		{ID: "shelves", Label: "Shelves"},
	}
	DeskLengths    = numbered(inches, span(48, 72, 6)...)
	DeskSideDepths = numbered(inches, span(18, 30, 2)...)
	DeskDepths     = numbered(inches, span(16, 30, 2)...)
	DeskHeights    = numbered(func(n int) string {
		return inches(n) + " (" + strconv.Itoa(n) + " inches)"
	}, span(26, 32, 1)...)
)
