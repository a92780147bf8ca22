package reference

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cities = []City{
	{Name: "Chennai", Default: true},
	{Name: "Coimbatore"},
	{Name: "Madurai"},
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name      string
		requested string
		want      string
		fallback  bool
	}{
		{"exact", "Madurai", "Madurai", false},
		{"case insensitive", "coimbatore", "Coimbatore", false},
		{"surrounding space", "  Madurai ", "Madurai", false},
		{"unknown", "Mumbai", "Chennai", true},
		{"absent", "", "Chennai", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			city, fallback, err := resolve(cities, tt.requested)
			require.NoError(t, err)
			assert.Equal(t, tt.want, city.Name)
			assert.Equal(t, tt.fallback, fallback)
		})
	}
}

func TestResolveWithoutDefault(t *testing.T) {
	_, _, err := resolve([]City{{Name: "Salem"}}, "Erode")
	assert.ErrorIs(t, err, ErrNoDefaultCity)
}

func TestGroup(t *testing.T) {
	lists := group([]permitItem{
		{CategoryHouse, "Planning Permission"},
		{CategoryHouse, "Completion Certificate"},
		{CategoryCommercial, "Trade License"},
		{CategoryProcess, "Pay prescribed fees"},
	})

	require.Len(t, lists, 3)
	assert.Equal(t, CategoryHouse, lists[0].Category)
	assert.Equal(t, []string{"Planning Permission", "Completion Certificate"}, lists[0].Items)
	assert.Equal(t, CategoryProcess, lists[2].Category)

	assert.Empty(t, group(nil))
}

func TestCityQuery(t *testing.T) {
	sql, args := cityQuery(builderProjection, "Salem")

	assert.Equal(t,
		"SELECT b.name, b.budget, b.contact FROM public.builders b WHERE city = $1 ORDER BY position ASC",
		sql,
	)
	assert.Equal(t, []any{"Salem"}, args)
}
