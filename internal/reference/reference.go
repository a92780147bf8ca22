// Package reference serves the static city reference data shown alongside
// generated plans: material costs, builders, solar vendors, the construction
// timeline, and the permit checklist.
package reference

// City is a supported location. Exactly one city is the default.
type City struct {
	Name    string `json:"name"`
	Default bool   `json:"default"`
}

type Material struct {
	Item    string `json:"item"`
	Cost    string `json:"cost"`
	Contact string `json:"contact"`
}

type Builder struct {
	Name    string `json:"name"`
	Budget  string `json:"budget"`
	Contact string `json:"contact"`
}

type SolarVendor struct {
	Company string `json:"company"`
	Cost    string `json:"cost"`
	Contact string `json:"contact"`
}

// CityInfo is the per-city reference data. City is the resolved city;
// Fallback is set when Requested was absent or unknown.
type CityInfo struct {
	Requested    string        `json:"requested"`
	City         string        `json:"city"`
	Fallback     bool          `json:"fallback"`
	Materials    []Material    `json:"materials"`
	Builders     []Builder     `json:"builders"`
	SolarVendors []SolarVendor `json:"solar_vendors"`
}

// Phase is one construction phase with its duration range in weeks.
type Phase struct {
	Name     string `json:"name"`
	MinWeeks int    `json:"min_weeks"`
	MaxWeeks int    `json:"max_weeks"`
}

// Timeline is the ordered list of phases with the summed duration range.
type Timeline struct {
	Phases   []Phase `json:"phases"`
	MinWeeks int     `json:"min_weeks"`
	MaxWeeks int     `json:"max_weeks"`
}

// NewTimeline totals the duration of phases.
func NewTimeline(phases []Phase) Timeline {
	t := Timeline{Phases: phases}
	if t.Phases == nil {
		t.Phases = []Phase{}
	}
	for _, p := range phases {
		t.MinWeeks += p.MinWeeks
		t.MaxWeeks += p.MaxWeeks
	}
	return t
}

// Permit categories.
const (
	CategoryHouse      = "house"
	CategoryCommercial = "commercial"
	CategoryProcess    = "process"
)

// Checklist is an ordered group of permit items.
type Checklist struct {
	Category string   `json:"category"`
	Items    []string `json:"items"`
}

// resolve finds requested among cities, case-insensitively, falling back to
// the default city. The bool reports whether the fallback was used.
func resolve(cities []City, requested string) (City, bool, error) {
	var fallback *City
	for i, c := range cities {
		if requested != "" && equalFold(c.Name, requested) {
			return c, false, nil
		}
		if c.Default && fallback == nil {
			fallback = &cities[i]
		}
	}
	if fallback == nil {
		return City{}, false, ErrNoDefaultCity
	}
	return *fallback, true, nil
}

// group collects permit items into checklists, keeping first-seen category order.
func group(items []permitItem) []Checklist {
	out := []Checklist{}
	index := make(map[string]int)
	for _, it := range items {
		i, ok := index[it.Category]
		if !ok {
			i = len(out)
			index[it.Category] = i
			out = append(out, Checklist{Category: it.Category, Items: []string{}})
		}
		out[i].Items = append(out[i].Items, it.Item)
	}
	return out
}
