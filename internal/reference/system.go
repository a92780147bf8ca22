package reference

import "context"

// System defines read access to the reference tables.
type System interface {
	Handler() *Handler

	Cities(ctx context.Context) ([]City, error)
	// CityInfo returns the tables for city, resolving an absent or unknown
	// city to the default.
	CityInfo(ctx context.Context, city string) (*CityInfo, error)
	Timeline(ctx context.Context) (*Timeline, error)
	Permits(ctx context.Context) ([]Checklist, error)
}
