package api

import (
	"github.com/JaimeStill/floorplan/internal/plans"
	"github.com/JaimeStill/floorplan/internal/reference"
)

// Domain holds all domain systems that comprise the API.
type Domain struct {
	Plans     plans.System
	Reference reference.System
}

// NewDomain creates all domain systems from the API runtime.
func NewDomain(runtime *Runtime) *Domain {
	return &Domain{
		Plans: plans.New(
			runtime.Sessions,
			runtime.Images,
			runtime.Storage,
			runtime.Logger,
			runtime.Pagination,
			runtime.Cookie,
		),
		Reference: reference.New(
			runtime.Database.Connection(),
			runtime.Logger,
		),
	}
}
