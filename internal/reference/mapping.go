package reference

import (
	"strings"

	"github.com/JaimeStill/floorplan/pkg/query"
	"github.com/JaimeStill/floorplan/pkg/repository"
)

var cityProjection = query.
	NewProjectionMap("public", "cities", "c").
	Project("name", "Name").
	Project("is_default", "Default")

var materialProjection = query.
	NewProjectionMap("public", "materials", "m").
	Project("item", "Item").
	Project("cost", "Cost").
	Project("contact", "Contact")

var builderProjection = query.
	NewProjectionMap("public", "builders", "b").
	Project("name", "Name").
	Project("budget", "Budget").
	Project("contact", "Contact")

var solarProjection = query.
	NewProjectionMap("public", "solar_vendors", "s").
	Project("company", "Company").
	Project("cost", "Cost").
	Project("contact", "Contact")

var phaseProjection = query.
	NewProjectionMap("public", "timeline_phases", "t").
	Project("phase", "Name").
	Project("min_weeks", "MinWeeks").
	Project("max_weeks", "MaxWeeks")

var permitProjection = query.
	NewProjectionMap("public", "permit_items", "p").
	Project("category", "Category").
	Project("item", "Item")

var byPosition = query.SortField{Field: "position"}

type permitItem struct {
	Category string
	Item     string
}

func scanCity(s repository.Scanner) (City, error) {
	var c City
	err := s.Scan(&c.Name, &c.Default)
	return c, err
}

func scanMaterial(s repository.Scanner) (Material, error) {
	var m Material
	err := s.Scan(&m.Item, &m.Cost, &m.Contact)
	return m, err
}

func scanBuilder(s repository.Scanner) (Builder, error) {
	var b Builder
	err := s.Scan(&b.Name, &b.Budget, &b.Contact)
	return b, err
}

func scanSolar(s repository.Scanner) (SolarVendor, error) {
	var v SolarVendor
	err := s.Scan(&v.Company, &v.Cost, &v.Contact)
	return v, err
}

func scanPhase(s repository.Scanner) (Phase, error) {
	var p Phase
	err := s.Scan(&p.Name, &p.MinWeeks, &p.MaxWeeks)
	return p, err
}

func scanPermit(s repository.Scanner) (permitItem, error) {
	var p permitItem
	err := s.Scan(&p.Category, &p.Item)
	return p, err
}

func equalFold(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
