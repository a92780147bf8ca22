// Package housespec defines the typed house specification collected from the
// design form, the vocabularies each field draws from, and the boundary parse
// that turns a loosely typed form payload into a validated Input.
package housespec

import (
	"errors"
	"fmt"
	"strings"
)

const (
	MinDimension    = 10
	MaxFloors       = 3
	MaxFurniture    = 3
	DefaultFeatures = "walk-in closet, pantry, large windows"
)

// Dimensions is the house footprint in feet.
type Dimensions struct {
	Length int `json:"length"`
	Width  int `json:"width"`
}

// Input is a validated house specification. Build one with Parse.
type Input struct {
	Dimensions            Dimensions
	Floors                int
	Bedrooms              int
	Bathrooms             int
	Rooms                 []Room
	Garage                Garage
	Outdoor               []OutdoorSpace
	Style                 Style
	Layout                Layout
	Accessibility         bool
	AccessibilityFeatures []Accessibility
	ExtraFeatures         []string
	SpecialInstructions   string
	RenderStyle           RenderStyle
	FurnitureDetail       int
	ColorScheme           ColorScheme
	Resolution            Resolution
}

// HasRoom reports whether room was selected.
func (in Input) HasRoom(room Room) bool {
	for _, r := range in.Rooms {
		if r == room {
			return true
		}
	}
	return false
}

// Draft is the form payload as submitted by the presentation layer.
type Draft struct {
	Length                int      `json:"length"`
	Width                 int      `json:"width"`
	Floors                int      `json:"floors"`
	Bedrooms              int      `json:"bedrooms"`
	Bathrooms             int      `json:"bathrooms"`
	Rooms                 []string `json:"rooms"`
	Garage                string   `json:"garage"`
	Outdoor               []string `json:"outdoor"`
	Style                 string   `json:"style"`
	CustomStyle           string   `json:"custom_style,omitempty"`
	Layout                string   `json:"layout"`
	Accessibility         bool     `json:"accessibility"`
	AccessibilityFeatures []string `json:"accessibility_features"`
	Features              string   `json:"features"`
	SpecialInstructions   string   `json:"special_instructions"`
	RenderStyle           string   `json:"render_style"`
	FurnitureDetail       int      `json:"furniture_detail"`
	ColorScheme           string   `json:"color_scheme"`
	Resolution            string   `json:"resolution"`
}

// DefaultDraft returns the form defaults. Decoding a request body into the
// returned value leaves omitted fields at their defaults.
func DefaultDraft() Draft {
	return Draft{
		Length:    50,
		Width:     30,
		Floors:    1,
		Bedrooms:  3,
		Bathrooms: 2,
		Rooms: []string{
			string(Kitchen),
			string(LivingRoom),
			string(DiningRoom),
			string(LaundryRoom),
		},
		Garage:                string(GarageNone),
		Outdoor:               []string{string(Patio)},
		Style:                 string(Modern),
		Layout:                string(OpenFloorPlan),
		AccessibilityFeatures: []string{},
		Features:              DefaultFeatures,
		RenderStyle:           string(Blueprint2D),
		FurnitureDetail:       2,
		ColorScheme:           string(BlueprintColors),
		Resolution:            string(High),
	}
}

// Parse validates d and returns the typed Input. Every violation is reported;
// each wraps ErrInvalidInput.
func Parse(d Draft) (Input, error) {
	var errs []error
	fail := func(err error) {
		errs = append(errs, err)
	}
	bounds := func(field string, v, lo, hi int) {
		if v < lo || (hi > 0 && v > hi) {
			fail(fmt.Errorf("%w: %s %d out of range", ErrInvalidInput, field, v))
		}
	}

	bounds("length", d.Length, MinDimension, 0)
	bounds("width", d.Width, MinDimension, 0)
	bounds("floors", d.Floors, 1, MaxFloors)
	bounds("bedrooms", d.Bedrooms, 1, 0)
	bounds("bathrooms", d.Bathrooms, 1, 0)
	if d.FurnitureDetail < 0 || d.FurnitureDetail > MaxFurniture {
		fail(fmt.Errorf("%w: furniture_detail %d out of range", ErrInvalidInput, d.FurnitureDetail))
	}

	in := Input{
		Dimensions:          Dimensions{Length: d.Length, Width: d.Width},
		Floors:              d.Floors,
		Bedrooms:            d.Bedrooms,
		Bathrooms:           d.Bathrooms,
		Accessibility:       d.Accessibility,
		ExtraFeatures:       SplitFeatures(d.Features),
		SpecialInstructions: d.SpecialInstructions,
		FurnitureDetail:     d.FurnitureDetail,
	}

	var err error
	if in.Rooms, err = matchSet("rooms", d.Rooms, Rooms()); err != nil {
		fail(err)
	}
	if in.Garage, err = match("garage", d.Garage, Garages); err != nil {
		fail(err)
	}
	if in.Outdoor, err = matchSet("outdoor", d.Outdoor, OutdoorSpaces); err != nil {
		fail(err)
	}
	if in.Style, err = parseStyle(d.Style, d.CustomStyle); err != nil {
		fail(err)
	}
	if in.Layout, err = match("layout", d.Layout, Layouts); err != nil {
		fail(err)
	}
	if d.Accessibility {
		if in.AccessibilityFeatures, err = matchSet("accessibility_features", d.AccessibilityFeatures, AccessibilityFeatures); err != nil {
			fail(err)
		}
	}
	if in.RenderStyle, err = match("render_style", d.RenderStyle, RenderStyles); err != nil {
		fail(err)
	}
	if in.ColorScheme, err = match("color_scheme", d.ColorScheme, ColorSchemes); err != nil {
		fail(err)
	}
	if in.Resolution, err = match("resolution", d.Resolution, Resolutions); err != nil {
		fail(err)
	}

	if len(errs) > 0 {
		return Input{}, errors.Join(errs...)
	}
	return in, nil
}

// Draft converts in back to a form payload, for prefilling an edit form.
func (in Input) Draft() Draft {
	d := Draft{
		Length:              in.Dimensions.Length,
		Width:               in.Dimensions.Width,
		Floors:              in.Floors,
		Bedrooms:            in.Bedrooms,
		Bathrooms:           in.Bathrooms,
		Rooms:               toStrings(in.Rooms),
		Garage:              string(in.Garage),
		Outdoor:             toStrings(in.Outdoor),
		Style:               string(in.Style.Name()),
		Layout:              string(in.Layout),
		Accessibility:       in.Accessibility,
		Features:            strings.Join(in.ExtraFeatures, ", "),
		SpecialInstructions: in.SpecialInstructions,
		RenderStyle:         string(in.RenderStyle),
		FurnitureDetail:     in.FurnitureDetail,
		ColorScheme:         string(in.ColorScheme),
		Resolution:          string(in.Resolution),
	}
	d.AccessibilityFeatures = toStrings(in.AccessibilityFeatures)
	if in.Style.IsCustom() {
		d.CustomStyle = in.Style.Display()
	}
	return d
}

// SplitFeatures splits a comma-separated feature list, trimming each entry
// and dropping empties.
func SplitFeatures(s string) []string {
	features := make([]string, 0)
	for _, part := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			features = append(features, trimmed)
		}
	}
	return features
}

func parseStyle(name, custom string) (Style, error) {
	if strings.EqualFold(strings.TrimSpace(name), string(CustomStyle)) {
		style := Custom(custom)
		if style.Display() == "" {
			return Style{}, fmt.Errorf("%w: custom_style required when style is Custom", ErrInvalidInput)
		}
		return style, nil
	}
	n, err := match("style", name, StyleNames)
	if err != nil {
		return Style{}, err
	}
	return Enumerated(n), nil
}

func toStrings[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}
