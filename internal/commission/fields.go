// Package commission defines the answer record collected by the commission
// wizard, the option catalogs offered for each question and the summary
// shown at the end of every flow. It has no external dependencies beyond
// text casing.
package commission

// Field names one answer in the record. Nested values use a dotted name,
// e.g. "dimensions.length".
type Field string

// Kind is the value type of a field.
type Kind int

const (
	KindText Kind = iota
	KindNumber
	KindBoolean
)

// Group ties a field to the project type whose flow asks for it.
type Group string

const (
	GroupCommon     Group = "common"
	GroupGeneric    Group = "generic"
	GroupWatchBox   Group = "watch-box"
	GroupShadowBox  Group = "shadow-box"
	GroupJewelryBox Group = "jewelry-box"
	GroupNightstand Group = "nightstand"
	GroupDesk       Group = "desk"
)

const (
	FieldProjectType Field = "projectType"
	FieldMaterial    Field = "material"
	FieldFinish      Field = "finish"
	FieldColor       Field = "color"
	FieldName        Field = "name"
	FieldEmail       Field = "email"
	FieldPhone       Field = "phone"
	FieldMessage     Field = "message"

	FieldShape     Field = "shape"
	FieldLegDesign Field = "legDesign"
	FieldLength    Field = "dimensions.length"
	FieldWidth     Field = "dimensions.width"
	FieldHeight    Field = "dimensions.height"

	FieldWatchCapacity         Field = "watchCapacity"
	FieldWatchBoxShape         Field = "watchBoxShape"
	FieldWatchBoxLid           Field = "watchBoxLid"
	FieldHasInlays             Field = "hasInlays"
	FieldInlayMaterial         Field = "inlayMaterial"
	FieldInlayType             Field = "inlayType"
	FieldCushionMaterial       Field = "cushionMaterial"
	FieldCustomCushionMaterial Field = "customCushionMaterial"

	FieldShadowBoxHeight Field = "shadowBoxDimensions.height"
	FieldShadowBoxWidth  Field = "shadowBoxDimensions.width"
	FieldShadowBoxFace   Field = "shadowBoxFace"
	FieldHasShelves      Field = "hasShelves"
	FieldNumberOfShelves Field = "numberOfShelves"
	FieldBackingMaterial Field = "backingMaterial"

	FieldJewelryOrientation  Field = "jewelryOrientation"
	FieldTopFace             Field = "topFace"
	FieldInnerMaterial       Field = "innerMaterial"
	FieldCustomInnerMaterial Field = "customInnerMaterial"
	FieldDrawerCount         Field = "drawerCount"
	FieldDoorFace            Field = "doorFace"
	FieldInteriorOptions     Field = "interiorOptions"
	FieldHardwareMaterial    Field = "hardwareMaterial"

	FieldNightstandStyle Field = "nightstandStyle"
	FieldHasEdging       Field = "hasEdging"
	FieldEdgingTemplate  Field = "edgingTemplate"
	FieldEdgingPhotoName Field = "edgingPhotoName"

	FieldDeskShape              Field = "deskShape"
	FieldLeftLegDesign          Field = "leftLegDesign"
	FieldLeftLegCustomIdea      Field = "leftLegCustomIdea"
	FieldLeftLegCustomFileName  Field = "leftLegCustomFileName"
	FieldRightLegDesign         Field = "rightLegDesign"
	FieldRightLegCustomIdea     Field = "rightLegCustomIdea"
	FieldRightLegCustomFileName Field = "rightLegCustomFileName"
	FieldDeskLegDesign          Field = "deskLegDesign"
	FieldDeskLegCustomIdea      Field = "deskLegCustomIdea"
	FieldDeskLegCustomFileName  Field = "deskLegCustomFileName"
	FieldLeftSideLength         Field = "leftSideLength"
	FieldRightSideLength        Field = "rightSideLength"
	FieldDeskLength             Field = "deskLength"
	FieldLeftSideDepth          Field = "leftSideDepth"
	FieldRightSideDepth         Field = "rightSideDepth"
	FieldDeskHeight             Field = "deskHeight"
	FieldDeskDepth              Field = "deskDepth"
)

type fieldSpec struct {
	kind  Kind
	group Group
}

var fieldSpecs = map[Field]fieldSpec{
	FieldProjectType: {KindText, GroupCommon},
	FieldMaterial:    {KindText, GroupCommon},
	FieldFinish:      {KindText, GroupCommon},
	FieldColor:       {KindText, GroupCommon},
	FieldName:        {KindText, GroupCommon},
	FieldEmail:       {KindText, GroupCommon},
	FieldPhone:       {KindText, GroupCommon},
	FieldMessage:     {KindText, GroupCommon},

	FieldShape:     {KindText, GroupGeneric},
	FieldLegDesign: {KindText, GroupGeneric},
	FieldLength:    {KindText, GroupGeneric},
	FieldWidth:     {KindText, GroupGeneric},
	FieldHeight:    {KindText, GroupGeneric},

	FieldWatchCapacity:         {KindNumber, GroupWatchBox},
	FieldWatchBoxShape:         {KindText, GroupWatchBox},
	FieldWatchBoxLid:           {KindText, GroupWatchBox},
	FieldHasInlays:             {KindBoolean, GroupWatchBox},
	FieldInlayMaterial:         {KindText, GroupWatchBox},
	FieldInlayType:             {KindText, GroupWatchBox},
	FieldCushionMaterial:       {KindText, GroupWatchBox},
	FieldCustomCushionMaterial: {KindText, GroupWatchBox},

	FieldShadowBoxHeight: {KindText, GroupShadowBox},
	FieldShadowBoxWidth:  {KindText, GroupShadowBox},
	FieldShadowBoxFace:   {KindText, GroupShadowBox},
	FieldHasShelves:      {KindBoolean, GroupShadowBox},
	FieldNumberOfShelves: {KindNumber, GroupShadowBox},
	FieldBackingMaterial: {KindText, GroupShadowBox},

	FieldJewelryOrientation:  {KindText, GroupJewelryBox},
	FieldTopFace:             {KindText, GroupJewelryBox},
	FieldInnerMaterial:       {KindText, GroupJewelryBox},
	FieldCustomInnerMaterial: {KindText, GroupJewelryBox},
	FieldDrawerCount:         {KindNumber, GroupJewelryBox},
	FieldDoorFace:            {KindText, GroupJewelryBox},
	FieldInteriorOptions:     {KindText, GroupJewelryBox},
	FieldHardwareMaterial:    {KindText, GroupJewelryBox},

	FieldNightstandStyle: {KindText, GroupNightstand},
	FieldHasEdging:       {KindBoolean, GroupNightstand},
	FieldEdgingTemplate:  {KindText, GroupNightstand},
	FieldEdgingPhotoName: {KindText, GroupNightstand},

	FieldDeskShape:              {KindText, GroupDesk},
	FieldLeftLegDesign:          {KindText, GroupDesk},
	FieldLeftLegCustomIdea:      {KindText, GroupDesk},
	FieldLeftLegCustomFileName:  {KindText, GroupDesk},
	FieldRightLegDesign:         {KindText, GroupDesk},
	FieldRightLegCustomIdea:     {KindText, GroupDesk},
	FieldRightLegCustomFileName: {KindText, GroupDesk},
	FieldDeskLegDesign:          {KindText, GroupDesk},
	FieldDeskLegCustomIdea:      {KindText, GroupDesk},
	FieldDeskLegCustomFileName:  {KindText, GroupDesk},
	FieldLeftSideLength:         {KindText, GroupDesk},
	FieldRightSideLength:        {KindText, GroupDesk},
	FieldDeskLength:             {KindText, GroupDesk},
	FieldLeftSideDepth:          {KindText, GroupDesk},
	FieldRightSideDepth:         {KindText, GroupDesk},
	FieldDeskHeight:             {KindText, GroupDesk},
	FieldDeskDepth:              {KindText, GroupDesk},
}

// Valid reports whether f is a known field.
func (f Field) Valid() bool {
	_, ok := fieldSpecs[f]
	return ok
}

func (f Field) Kind() Kind {
	return fieldSpecs[f].kind
}

func (f Field) Group() Group {
	return fieldSpecs[f].group
}

// GroupFor maps a project type to the field group its flow collects.
// Table, vanity, other and the unset type share the generic group.
func GroupFor(pt ProjectType) Group {
	switch pt {
	case ProjectWatchBox:
		return GroupWatchBox
	case ProjectShadowBox:
		return GroupShadowBox
	case ProjectJewelryBox:
		return GroupJewelryBox
	case ProjectNightstand:
		return GroupNightstand
	case ProjectDesk:
		return GroupDesk
	default:
		return GroupGeneric
	}
}
