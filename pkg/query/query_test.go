package query_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/JaimeStill/floorplan/pkg/query"
)

func phases() *query.ProjectionMap {
	return query.
		NewProjectionMap("public", "timeline_phases", "t").
		Project("name", "name").
		Project("min_weeks", "minWeeks").
		Project("max_weeks", "maxWeeks")
}

func TestProjectionMap(t *testing.T) {
	p := phases()

	assert.Equal(t, "public.timeline_phases t", p.Table())
	assert.Equal(t, "t.name, t.min_weeks, t.max_weeks", p.Columns())
	assert.Equal(t, "t.min_weeks", p.Column("minWeeks"))
	assert.Equal(t, "position", p.Column("position"))
}

func TestBuild(t *testing.T) {
	tests := []struct {
		name    string
		builder *query.Builder
		sql     string
		args    []any
	}{
		{
			name:    "no conditions",
			builder: query.NewBuilder(phases()),
			sql:     "SELECT t.name, t.min_weeks, t.max_weeks FROM public.timeline_phases t",
		},
		{
			name:    "ordered",
			builder: query.NewBuilder(phases(), query.SortField{Field: "position"}, query.SortField{Field: "maxWeeks", Descending: true}),
			sql:     "SELECT t.name, t.min_weeks, t.max_weeks FROM public.timeline_phases t ORDER BY position ASC, t.max_weeks DESC",
		},
		{
			name: "numbered conditions",
			builder: query.NewBuilder(phases()).
				WhereEquals("name", "Foundation").
				WhereEquals("minWeeks", 2),
			sql:  "SELECT t.name, t.min_weeks, t.max_weeks FROM public.timeline_phases t WHERE t.name = $1 AND t.min_weeks = $2",
			args: []any{"Foundation", 2},
		},
		{
			name:    "nil value skipped",
			builder: query.NewBuilder(phases()).WhereEquals("name", (*string)(nil)),
			sql:     "SELECT t.name, t.min_weeks, t.max_weeks FROM public.timeline_phases t",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, args := tt.builder.Build()
			assert.Equal(t, tt.sql, sql)
			assert.Equal(t, tt.args, args)
		})
	}
}

func TestParseSortFields(t *testing.T) {
	assert.Nil(t, query.ParseSortFields(""))
	assert.Equal(t, []query.SortField{
		{Field: "index"},
		{Field: "timestamp", Descending: true},
	}, query.ParseSortFields("index, -timestamp,"))
}
