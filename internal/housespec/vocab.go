package housespec

import (
	"fmt"
	"strings"
)

// Room is a named interior space that can be included in the plan.
type Room string

const (
	Kitchen     Room = "Kitchen"
	LivingRoom  Room = "Living Room"
	DiningRoom  Room = "Dining Room"
	HomeOffice  Room = "Home Office"
	LaundryRoom Room = "Laundry Room"
	Pantry      Room = "Pantry"
	Mudroom     Room = "Mudroom"
	Basement    Room = "Basement"
)

// EssentialRooms lists the essential rooms in prompt order.
var EssentialRooms = []Room{Kitchen, LivingRoom, DiningRoom}

// OptionalRooms lists the optional rooms in prompt order.
var OptionalRooms = []Room{HomeOffice, LaundryRoom, Pantry, Mudroom, Basement}

// Rooms returns every room in declaration order.
func Rooms() []Room {
	return append(append([]Room{}, EssentialRooms...), OptionalRooms...)
}

// Garage is the garage capacity. GarageNone contributes nothing to the prompt.
type Garage string

const (
	GarageNone Garage = "None"
	Garage1Car Garage = "1-Car"
	Garage2Car Garage = "2-Car"
	Garage3Car Garage = "3-Car"
)

var Garages = []Garage{GarageNone, Garage1Car, Garage2Car, Garage3Car}

// OutdoorSpace is an exterior feature of the property.
type OutdoorSpace string

const (
	Patio          OutdoorSpace = "Patio"
	Deck           OutdoorSpace = "Deck"
	Balcony        OutdoorSpace = "Balcony"
	Porch          OutdoorSpace = "Porch"
	Garden         OutdoorSpace = "Garden"
	Pool           OutdoorSpace = "Pool"
	OutdoorKitchen OutdoorSpace = "Outdoor Kitchen"
)

var OutdoorSpaces = []OutdoorSpace{Patio, Deck, Balcony, Porch, Garden, Pool, OutdoorKitchen}

// Layout is the floor plan organization.
type Layout string

const (
	OpenFloorPlan     Layout = "Open Floor Plan"
	Compartmentalized Layout = "Compartmentalized"
	Mixed             Layout = "Mixed"
)

var Layouts = []Layout{OpenFloorPlan, Compartmentalized, Mixed}

// Accessibility is an accessibility accommodation.
type Accessibility string

const (
	WiderDoorways      Accessibility = "Wider Doorways"
	Ramps              Accessibility = "Ramps"
	NoSteps            Accessibility = "No Steps"
	AccessibleBathroom Accessibility = "Accessible Bathroom"
	LowerCountertops   Accessibility = "Lower Countertops"
)

var AccessibilityFeatures = []Accessibility{
	WiderDoorways,
	Ramps,
	NoSteps,
	AccessibleBathroom,
	LowerCountertops,
}

// RenderStyle is the requested drawing type.
type RenderStyle string

const (
	Blueprint2D    RenderStyle = "Blueprint (2D)"
	DetailedPlan2D RenderStyle = "Detailed Floor Plan (2D)"
	FloorPlan3D    RenderStyle = "3D Floor Plan"
	IsometricView  RenderStyle = "Isometric View"
)

var RenderStyles = []RenderStyle{Blueprint2D, DetailedPlan2D, FloorPlan3D, IsometricView}

// ColorScheme is the rendering palette.
type ColorScheme string

const (
	BlueprintColors ColorScheme = "Blueprint (Blue/White)"
	Grayscale       ColorScheme = "Grayscale"
	Colored         ColorScheme = "Colored"
)

var ColorSchemes = []ColorScheme{BlueprintColors, Grayscale, Colored}

// Resolution is the requested output fidelity.
type Resolution string

const (
	Standard  Resolution = "Standard"
	High      Resolution = "High"
	UltraHigh Resolution = "Ultra High"
)

var Resolutions = []Resolution{Standard, High, UltraHigh}

// match resolves value against vocab case-insensitively and returns the canonical spelling.
func match[T ~string](field, value string, vocab []T) (T, error) {
	value = strings.TrimSpace(value)
	for _, v := range vocab {
		if strings.EqualFold(string(v), value) {
			return v, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("%w: %s %q", ErrInvalidInput, field, value)
}

// matchSet resolves every value and drops repeats, keeping first-occurrence order.
func matchSet[T ~string](field string, values []string, vocab []T) ([]T, error) {
	out := make([]T, 0, len(values))
	seen := make(map[T]bool, len(values))
	for _, value := range values {
		v, err := match(field, value, vocab)
		if err != nil {
			return nil, err
		}
		if seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out, nil
}
