package prompt_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JaimeStill/floorplan/internal/housespec"
	"github.com/JaimeStill/floorplan/internal/prompt"
)

func parse(t *testing.T, modify func(*housespec.Draft)) housespec.Input {
	t.Helper()
	d := housespec.DefaultDraft()
	if modify != nil {
		modify(&d)
	}
	in, err := housespec.Parse(d)
	require.NoError(t, err)
	return in
}

func count(values []string, target string) int {
	n := 0
	for _, v := range values {
		if v == target {
			n++
		}
	}
	return n
}

func TestBuildExample(t *testing.T) {
	in := parse(t, func(d *housespec.Draft) {
		d.Rooms = []string{"Kitchen", "Living Room"}
		d.Garage = "2-Car"
		d.Outdoor = []string{"Patio"}
		d.Features = ""
	})

	p := prompt.Build(in)

	for _, want := range []string{
		"50", "30", "1", "modern", "2-car garage", "patio",
		"3 bedrooms", "2 bathrooms", "open floor plan",
	} {
		assert.Contains(t, p.Text, want)
	}
	assert.Equal(t, []string{
		"kitchen", "living room", "2-car garage", "patio", "3 bedrooms", "2 bathrooms",
	}, p.Rooms)
}

func TestBuildDeterministic(t *testing.T) {
	in := parse(t, func(d *housespec.Draft) {
		d.Accessibility = true
		d.AccessibilityFeatures = []string{"Ramps", "Wider Doorways"}
		d.SpecialInstructions = "Vastu-compliant kitchen in the south-east"
	})

	first := prompt.Build(in)
	for range 5 {
		assert.Equal(t, first, prompt.Build(in))
	}
}

func TestRoomsOrder(t *testing.T) {
	in := parse(t, func(d *housespec.Draft) {
		d.Rooms = []string{"Basement", "Home Office", "Dining Room", "Kitchen"}
		d.Garage = "3-Car"
		d.Outdoor = []string{"Pool", "Deck"}
		d.Bedrooms = 4
		d.Bathrooms = 3
		d.Features = "skylight, wine cellar"
		d.Accessibility = true
		d.AccessibilityFeatures = []string{"No Steps"}
	})

	assert.Equal(t, []string{
		"kitchen", "dining room",
		"home office", "basement",
		"3-car garage",
		"pool", "deck",
		"4 bedrooms", "3 bathrooms",
		"skylight", "wine cellar",
		"no steps",
	}, prompt.Rooms(in))
}

func TestSelectedRoomsAppearOnce(t *testing.T) {
	in := parse(t, func(d *housespec.Draft) {
		d.Rooms = []string{"Kitchen", "Living Room", "Dining Room", "Home Office", "Laundry Room", "Pantry", "Mudroom", "Basement"}
	})

	rooms := prompt.Rooms(in)
	for _, room := range housespec.Rooms() {
		assert.Equal(t, 1, count(rooms, strings.ToLower(string(room))), room)
	}
	for _, feature := range in.ExtraFeatures {
		assert.Equal(t, 1, count(rooms, strings.ToLower(feature)), feature)
	}
}

func TestExtraFeaturesSkipSelectedRooms(t *testing.T) {
	in := parse(t, func(d *housespec.Draft) {
		d.Rooms = append(d.Rooms, "Pantry")
		d.Features = "walk-in closet, Pantry, large windows, walk-in closet"
	})

	rooms := prompt.Rooms(in)
	assert.Equal(t, 1, count(rooms, "pantry"))
	assert.Equal(t, 1, count(rooms, "walk-in closet"))
	assert.Equal(t, 1, count(rooms, "large windows"))
	assert.Equal(t, "large windows", rooms[len(rooms)-1])
}

func TestGarage(t *testing.T) {
	none := parse(t, func(d *housespec.Draft) { d.Garage = "None" })
	for _, room := range prompt.Rooms(none) {
		assert.NotContains(t, room, "garage")
	}

	one := parse(t, func(d *housespec.Draft) { d.Garage = "1-Car" })
	assert.Equal(t, 1, count(prompt.Rooms(one), "1-car garage"))
}

func TestEmptyExtrasContributeNothing(t *testing.T) {
	in := parse(t, func(d *housespec.Draft) {
		d.Rooms = nil
		d.Outdoor = nil
		d.Features = " , "
	})

	assert.Equal(t, []string{"3 bedrooms", "2 bathrooms"}, prompt.Rooms(in))
}

func TestAccessibilityFlagWithoutFeatures(t *testing.T) {
	base := parse(t, nil)
	flagged := parse(t, func(d *housespec.Draft) { d.Accessibility = true })

	assert.Equal(t, prompt.Rooms(base), prompt.Rooms(flagged))
}

func TestSpecialInstructions(t *testing.T) {
	without := prompt.Build(parse(t, nil))
	assert.NotContains(t, without.Text, "\n\n\n")
	assert.True(t, strings.HasSuffix(without.Text, "homeowners alike."))

	with := prompt.Build(parse(t, func(d *housespec.Draft) {
		d.SpecialInstructions = "Place the staircase near the entrance."
	}))
	assert.Contains(t, with.Text, "\n\nPlace the staircase near the entrance.\n\n")
	assert.NotContains(t, with.Text, "\n\n\n")

	indented := prompt.Build(parse(t, func(d *housespec.Draft) {
		d.SpecialInstructions = "  keep leading spaces"
	}))
	assert.Contains(t, indented.Text, "\n\n  keep leading spaces\n\n")

	blank := prompt.Build(parse(t, func(d *housespec.Draft) {
		d.SpecialInstructions = " \n\t"
	}))
	assert.Equal(t, without.Text, blank.Text)
}

func TestBuildInterpolation(t *testing.T) {
	p := prompt.Build(parse(t, func(d *housespec.Draft) {
		d.RenderStyle = "Isometric View"
		d.Style = "Custom"
		d.CustomStyle = "Chettinad Heritage"
		d.Floors = 2
		d.FurnitureDetail = 3
		d.ColorScheme = "Grayscale"
		d.Resolution = "Ultra High"
		d.Layout = "Mixed"
	}))

	assert.True(t, strings.HasPrefix(p.Text, "Generate a high-quality isometric view of a chettinad heritage house with 2 floor(s)"))
	assert.Contains(t, p.Text, "detail level 3/3")
	assert.Contains(t, p.Text, "Use a Grayscale color scheme")
	assert.Contains(t, p.Text, "ultra high resolution")
	assert.Contains(t, p.Text, "Layout style: mixed")
}
