package reference

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/JaimeStill/floorplan/pkg/query"
	"github.com/JaimeStill/floorplan/pkg/repository"
)

type repo struct {
	db     *sql.DB
	logger *slog.Logger
}

// New creates a reference repository implementing the System interface.
func New(db *sql.DB, logger *slog.Logger) System {
	return &repo{
		db:     db,
		logger: logger.With("system", "reference"),
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger)
}

func (r *repo) Cities(ctx context.Context) ([]City, error) {
	q, args := query.NewBuilder(cityProjection, byPosition).Build()

	cities, err := repository.QueryMany(ctx, r.db, q, args, scanCity)
	if err != nil {
		return nil, fmt.Errorf("query cities: %w", err)
	}
	return cities, nil
}

func (r *repo) CityInfo(ctx context.Context, requested string) (*CityInfo, error) {
	cities, err := r.Cities(ctx)
	if err != nil {
		return nil, err
	}

	city, fallback, err := resolve(cities, requested)
	if err != nil {
		return nil, err
	}
	if fallback && requested != "" {
		r.logger.Info("unknown city, using default", "requested", requested, "city", city.Name)
	}

	info := &CityInfo{
		Requested: requested,
		City:      city.Name,
		Fallback:  fallback,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		q, args := cityQuery(materialProjection, city.Name)
		rows, err := repository.QueryMany(gctx, r.db, q, args, scanMaterial)
		if err != nil {
			return fmt.Errorf("query materials: %w", err)
		}
		info.Materials = rows
		return nil
	})

	g.Go(func() error {
		q, args := cityQuery(builderProjection, city.Name)
		rows, err := repository.QueryMany(gctx, r.db, q, args, scanBuilder)
		if err != nil {
			return fmt.Errorf("query builders: %w", err)
		}
		info.Builders = rows
		return nil
	})

	g.Go(func() error {
		q, args := cityQuery(solarProjection, city.Name)
		rows, err := repository.QueryMany(gctx, r.db, q, args, scanSolar)
		if err != nil {
			return fmt.Errorf("query solar vendors: %w", err)
		}
		info.SolarVendors = rows
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return info, nil
}

func (r *repo) Timeline(ctx context.Context) (*Timeline, error) {
	q, args := query.NewBuilder(phaseProjection, byPosition).Build()

	phases, err := repository.QueryMany(ctx, r.db, q, args, scanPhase)
	if err != nil {
		return nil, fmt.Errorf("query timeline: %w", err)
	}

	t := NewTimeline(phases)
	return &t, nil
}

func (r *repo) Permits(ctx context.Context) ([]Checklist, error) {
	q, args := query.NewBuilder(permitProjection, byPosition).Build()

	items, err := repository.QueryMany(ctx, r.db, q, args, scanPermit)
	if err != nil {
		return nil, fmt.Errorf("query permits: %w", err)
	}
	return group(items), nil
}

func cityQuery(projection *query.ProjectionMap, city string) (string, []any) {
	return query.
		NewBuilder(projection, byPosition).
		WhereEquals("city", city).
		Build()
}
