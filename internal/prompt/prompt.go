// Package prompt assembles the natural-language image prompt for a house
// specification. Build is pure: the same Input always yields the same Prompt.
package prompt

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/JaimeStill/floorplan/internal/housespec"
)

// Prompt is the assembled prompt text and the room list it enumerates.
type Prompt struct {
	Text  string   `json:"text"`
	Rooms []string `json:"rooms"`
}

// Build renders the prompt for in.
func Build(in housespec.Input) Prompt {
	rooms := Rooms(in)

	var b strings.Builder
	fmt.Fprintf(
		&b,
		"Generate a high-quality %s of a %s house with %d floor(s) and the following specifications:\n",
		strings.ToLower(string(in.RenderStyle)),
		in.Style.PromptText(),
		in.Floors,
	)
	fmt.Fprintf(&b, "- Total house size: %d feet long and %d feet wide\n", in.Dimensions.Length, in.Dimensions.Width)
	fmt.Fprintf(&b, "- Include all these spaces: %s\n", strings.Join(rooms, ", "))
	fmt.Fprintf(&b, "- Layout style: %s\n\n", strings.ToLower(string(in.Layout)))

	b.WriteString("Rendering Requirements:\n")
	b.WriteString("- Label every room by name inside the room\n")
	b.WriteString("- Show each room's dimensions in feet inside the room\n")
	b.WriteString("- Show the total house dimensions along the outer walls\n")
	b.WriteString("- Mark window and door placements clearly\n")
	b.WriteString("- Draw walls with visible thickness\n")
	fmt.Fprintf(&b, "- Include furniture at detail level %d/3\n", in.FurnitureDetail)
	fmt.Fprintf(&b, "- Use a %s color scheme\n", in.ColorScheme)
	fmt.Fprintf(&b, "- Keep %s resolution and clarity\n", strings.ToLower(string(in.Resolution)))
	b.WriteString("- Use dimension annotations in feet (ft)\n")
	b.WriteString("- Label each floor clearly if there are multiple floors\n\n")

	if strings.TrimSpace(in.SpecialInstructions) != "" {
		b.WriteString(in.SpecialInstructions)
		b.WriteString("\n\n")
	}

	b.WriteString("Make it easy to understand for architects and homeowners alike.")

	return Prompt{
		Text:  b.String(),
		Rooms: rooms,
	}
}

// Rooms returns the ordered room list for in: essential rooms, optional rooms,
// garage, outdoor spaces, bedroom and bathroom counts, extra features, then
// accessibility features. Extra and accessibility features already in the
// list, compared case-insensitively, are skipped.
func Rooms(in housespec.Input) []string {
	rooms := make([]string, 0, 16)

	for _, room := range housespec.EssentialRooms {
		if in.HasRoom(room) {
			rooms = append(rooms, strings.ToLower(string(room)))
		}
	}
	for _, room := range housespec.OptionalRooms {
		if in.HasRoom(room) {
			rooms = append(rooms, strings.ToLower(string(room)))
		}
	}

	if in.Garage != housespec.GarageNone && in.Garage != "" {
		rooms = append(rooms, strings.ToLower(string(in.Garage))+" garage")
	}

	for _, space := range in.Outdoor {
		rooms = append(rooms, strings.ToLower(string(space)))
	}

	rooms = append(rooms,
		strconv.Itoa(in.Bedrooms)+" bedrooms",
		strconv.Itoa(in.Bathrooms)+" bathrooms",
	)

	seen := make(map[string]bool, len(rooms))
	for _, room := range rooms {
		seen[room] = true
	}
	add := func(token string) {
		key := strings.ToLower(token)
		if token == "" || seen[key] {
			return
		}
		seen[key] = true
		rooms = append(rooms, token)
	}

	for _, feature := range in.ExtraFeatures {
		add(strings.TrimSpace(feature))
	}

	if in.Accessibility {
		for _, feature := range in.AccessibilityFeatures {
			add(strings.ToLower(string(feature)))
		}
	}

	return rooms
}
