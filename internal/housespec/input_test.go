package housespec_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JaimeStill/floorplan/internal/housespec"
)

func TestParseDefaults(t *testing.T) {
	in, err := housespec.Parse(housespec.DefaultDraft())
	require.NoError(t, err)

	assert.Equal(t, housespec.Dimensions{Length: 50, Width: 30}, in.Dimensions)
	assert.Equal(t, 1, in.Floors)
	assert.Equal(t, 3, in.Bedrooms)
	assert.Equal(t, 2, in.Bathrooms)
	assert.Equal(t, []housespec.Room{
		housespec.Kitchen,
		housespec.LivingRoom,
		housespec.DiningRoom,
		housespec.LaundryRoom,
	}, in.Rooms)
	assert.Equal(t, housespec.GarageNone, in.Garage)
	assert.Equal(t, []housespec.OutdoorSpace{housespec.Patio}, in.Outdoor)
	assert.Equal(t, "Modern", in.Style.Display())
	assert.False(t, in.Style.IsCustom())
	assert.Equal(t, housespec.OpenFloorPlan, in.Layout)
	assert.Equal(t, []string{"walk-in closet", "pantry", "large windows"}, in.ExtraFeatures)
	assert.Equal(t, housespec.Blueprint2D, in.RenderStyle)
	assert.Equal(t, 2, in.FurnitureDetail)
	assert.Equal(t, housespec.BlueprintColors, in.ColorScheme)
	assert.Equal(t, housespec.High, in.Resolution)
}

func TestDecodeIntoDefaultDraft(t *testing.T) {
	d := housespec.DefaultDraft()
	body := `{"floors": 2, "garage": "2-car", "outdoor": ["deck", "Pool"], "furniture_detail": 0}`
	require.NoError(t, json.NewDecoder(strings.NewReader(body)).Decode(&d))

	in, err := housespec.Parse(d)
	require.NoError(t, err)

	assert.Equal(t, 2, in.Floors)
	assert.Equal(t, housespec.Garage2Car, in.Garage)
	assert.Equal(t, []housespec.OutdoorSpace{housespec.Deck, housespec.Pool}, in.Outdoor)
	assert.Equal(t, 0, in.FurnitureDetail)
	assert.Equal(t, 50, in.Dimensions.Length)
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*housespec.Draft)
	}{
		{"length below minimum", func(d *housespec.Draft) { d.Length = 9 }},
		{"width below minimum", func(d *housespec.Draft) { d.Width = 0 }},
		{"zero floors", func(d *housespec.Draft) { d.Floors = 0 }},
		{"four floors", func(d *housespec.Draft) { d.Floors = 4 }},
		{"no bedrooms", func(d *housespec.Draft) { d.Bedrooms = 0 }},
		{"no bathrooms", func(d *housespec.Draft) { d.Bathrooms = 0 }},
		{"furniture above range", func(d *housespec.Draft) { d.FurnitureDetail = 4 }},
		{"furniture below range", func(d *housespec.Draft) { d.FurnitureDetail = -1 }},
		{"unknown room", func(d *housespec.Draft) { d.Rooms = []string{"Kitchen", "Sauna"} }},
		{"unknown garage", func(d *housespec.Draft) { d.Garage = "4-Car" }},
		{"empty garage", func(d *housespec.Draft) { d.Garage = "" }},
		{"unknown outdoor", func(d *housespec.Draft) { d.Outdoor = []string{"Moat"} }},
		{"unknown style", func(d *housespec.Draft) { d.Style = "Gothic" }},
		{"custom without text", func(d *housespec.Draft) { d.Style = "Custom"; d.CustomStyle = "  " }},
		{"unknown layout", func(d *housespec.Draft) { d.Layout = "Maze" }},
		{"unknown render style", func(d *housespec.Draft) { d.RenderStyle = "Sketch" }},
		{"unknown color scheme", func(d *housespec.Draft) { d.ColorScheme = "Sepia" }},
		{"unknown resolution", func(d *housespec.Draft) { d.Resolution = "8K" }},
		{"unknown accessibility", func(d *housespec.Draft) {
			d.Accessibility = true
			d.AccessibilityFeatures = []string{"Elevator"}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := housespec.DefaultDraft()
			tt.modify(&d)

			_, err := housespec.Parse(d)
			require.Error(t, err)
			assert.ErrorIs(t, err, housespec.ErrInvalidInput)
		})
	}
}

func TestParseReportsEveryViolation(t *testing.T) {
	d := housespec.DefaultDraft()
	d.Length = 1
	d.Layout = "Maze"

	_, err := housespec.Parse(d)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "length")
	assert.Contains(t, err.Error(), "layout")
}

func TestParseCustomStyle(t *testing.T) {
	d := housespec.DefaultDraft()
	d.Style = "custom"
	d.CustomStyle = " Art Deco "

	in, err := housespec.Parse(d)
	require.NoError(t, err)

	assert.True(t, in.Style.IsCustom())
	assert.Equal(t, "Art Deco", in.Style.Display())
	assert.Equal(t, "art deco", in.Style.PromptText())
}

func TestParseAccessibilityRequiresFlag(t *testing.T) {
	d := housespec.DefaultDraft()
	d.AccessibilityFeatures = []string{"Ramps"}

	in, err := housespec.Parse(d)
	require.NoError(t, err)
	assert.Empty(t, in.AccessibilityFeatures)

	d.Accessibility = true
	in, err = housespec.Parse(d)
	require.NoError(t, err)
	assert.Equal(t, []housespec.Accessibility{housespec.Ramps}, in.AccessibilityFeatures)
}

func TestParseDeduplicatesSets(t *testing.T) {
	d := housespec.DefaultDraft()
	d.Rooms = []string{"kitchen", "Kitchen", "pantry"}
	d.Outdoor = []string{"Pool", "Patio", "pool"}

	in, err := housespec.Parse(d)
	require.NoError(t, err)

	assert.Equal(t, []housespec.Room{housespec.Kitchen, housespec.Pantry}, in.Rooms)
	assert.Equal(t, []housespec.OutdoorSpace{housespec.Pool, housespec.Patio}, in.Outdoor)
}

func TestSplitFeatures(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", []string{}},
		{" , ,", []string{}},
		{"skylight", []string{"skylight"}},
		{" walk-in closet ,, large windows ", []string{"walk-in closet", "large windows"}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, housespec.SplitFeatures(tt.in))
		})
	}
}

func TestDraftRoundTrip(t *testing.T) {
	d := housespec.DefaultDraft()
	d.Style = "Custom"
	d.CustomStyle = "Chettinad"
	d.Accessibility = true
	d.AccessibilityFeatures = []string{"No Steps"}
	d.SpecialInstructions = "north-facing entrance"

	in, err := housespec.Parse(d)
	require.NoError(t, err)

	again, err := housespec.Parse(in.Draft())
	require.NoError(t, err)
	assert.Equal(t, in, again)
}

func TestParseKeepsSpecialInstructions(t *testing.T) {
	d := housespec.DefaultDraft()
	d.SpecialInstructions = "  keep leading spaces\n"

	in, err := housespec.Parse(d)
	require.NoError(t, err)
	assert.Equal(t, "  keep leading spaces\n", in.SpecialInstructions)
}

func TestFormOptions(t *testing.T) {
	opts := housespec.FormOptions()

	assert.Len(t, opts.EssentialRooms, 3)
	assert.Len(t, opts.OptionalRooms, 5)
	assert.Equal(t, housespec.CustomStyle, opts.Styles[len(opts.Styles)-1])
	assert.Equal(t, housespec.DefaultDraft(), opts.Defaults)
}
