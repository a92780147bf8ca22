package housespec

// Options lists every form vocabulary and the default form values.
type Options struct {
	EssentialRooms        []Room          `json:"essential_rooms"`
	OptionalRooms         []Room          `json:"optional_rooms"`
	Garages               []Garage        `json:"garages"`
	OutdoorSpaces         []OutdoorSpace  `json:"outdoor_spaces"`
	Styles                []StyleName     `json:"styles"`
	Layouts               []Layout        `json:"layouts"`
	AccessibilityFeatures []Accessibility `json:"accessibility_features"`
	RenderStyles          []RenderStyle   `json:"render_styles"`
	ColorSchemes          []ColorScheme   `json:"color_schemes"`
	Resolutions           []Resolution    `json:"resolutions"`
	MinDimension          int             `json:"min_dimension"`
	MaxFloors             int             `json:"max_floors"`
	MaxFurnitureDetail    int             `json:"max_furniture_detail"`
	Defaults              Draft           `json:"defaults"`
}

// FormOptions returns the vocabularies for rendering the design form.
// Styles ends with the CustomStyle sentinel.
func FormOptions() Options {
	return Options{
		EssentialRooms:        EssentialRooms,
		OptionalRooms:         OptionalRooms,
		Garages:               Garages,
		OutdoorSpaces:         OutdoorSpaces,
		Styles:                append(append([]StyleName{}, StyleNames...), CustomStyle),
		Layouts:               Layouts,
		AccessibilityFeatures: AccessibilityFeatures,
		RenderStyles:          RenderStyles,
		ColorSchemes:          ColorSchemes,
		Resolutions:           Resolutions,
		MinDimension:          MinDimension,
		MaxFloors:             MaxFloors,
		MaxFurnitureDetail:    MaxFurniture,
		Defaults:              DefaultDraft(),
	}
}
