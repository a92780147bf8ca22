package pagination_test

import (
	"encoding/json"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JaimeStill/floorplan/pkg/pagination"
	"github.com/JaimeStill/floorplan/pkg/query"
)

func testConfig() pagination.Config {
	return pagination.Config{DefaultPageSize: 10, MaxPageSize: 50}
}

func TestConfigFinalize(t *testing.T) {
	t.Setenv("TEST_DEFAULT_PAGE_SIZE", "25")

	cfg := pagination.Config{}
	require.NoError(t, cfg.Finalize(&pagination.ConfigEnv{
		DefaultPageSize: "TEST_DEFAULT_PAGE_SIZE",
		MaxPageSize:     "TEST_MAX_PAGE_SIZE",
	}))
	assert.Equal(t, 25, cfg.DefaultPageSize)
	assert.Equal(t, 100, cfg.MaxPageSize)

	bad := pagination.Config{DefaultPageSize: 80, MaxPageSize: 40}
	assert.Error(t, bad.Finalize(nil))
}

func TestConfigMerge(t *testing.T) {
	cfg := testConfig()
	cfg.Merge(&pagination.Config{MaxPageSize: 75})

	assert.Equal(t, 10, cfg.DefaultPageSize)
	assert.Equal(t, 75, cfg.MaxPageSize)
}

func TestPageRequestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		in       pagination.PageRequest
		page     int
		pageSize int
	}{
		{"zero values", pagination.PageRequest{}, 1, 10},
		{"clamped size", pagination.PageRequest{Page: 2, PageSize: 500}, 2, 50},
		{"kept", pagination.PageRequest{Page: 3, PageSize: 5}, 3, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := tt.in
			req.Normalize(testConfig())
			assert.Equal(t, tt.page, req.Page)
			assert.Equal(t, tt.pageSize, req.PageSize)
		})
	}
}

func TestPageRequestFromQuery(t *testing.T) {
	values := url.Values{
		"page":      {"2"},
		"page_size": {"5"},
		"search":    {"victorian"},
		"sort":      {"-index"},
	}

	req := pagination.PageRequestFromQuery(values, testConfig())
	assert.Equal(t, 2, req.Page)
	assert.Equal(t, 5, req.PageSize)
	require.NotNil(t, req.Search)
	assert.Equal(t, "victorian", *req.Search)
	assert.Equal(t, pagination.SortFields{{Field: "index", Descending: true}}, req.Sort)
	assert.Equal(t, 5, req.Offset())

	assert.True(t, req.Sort.Descending("index"))
	assert.False(t, req.Sort.Descending("timestamp"))

	empty := pagination.PageRequestFromQuery(url.Values{}, testConfig())
	assert.Nil(t, empty.Search)
	assert.Empty(t, empty.Term())
	assert.Equal(t, 1, empty.Page)
}

func TestSortFieldsUnmarshal(t *testing.T) {
	var fromString pagination.SortFields
	require.NoError(t, json.Unmarshal([]byte(`"index,-timestamp"`), &fromString))
	assert.Equal(t, pagination.SortFields{
		{Field: "index"},
		{Field: "timestamp", Descending: true},
	}, fromString)

	var fromArray pagination.SortFields
	require.NoError(t, json.Unmarshal([]byte(`[{"Field": "index", "Descending": true}]`), &fromArray))
	assert.Equal(t, pagination.SortFields{query.SortField{Field: "index", Descending: true}}, fromArray)
}

func TestNewPageResult(t *testing.T) {
	result := pagination.NewPageResult[int](nil, 0, 1, 10)
	assert.Equal(t, []int{}, result.Data)
	assert.Equal(t, 1, result.TotalPages)

	result = pagination.NewPageResult([]int{1, 2}, 21, 3, 10)
	assert.Equal(t, 3, result.TotalPages)
}

func TestSlice(t *testing.T) {
	items := []int{0, 1, 2, 3, 4, 5, 6}

	tests := []struct {
		name  string
		page  int
		size  int
		want  []int
		pages int
	}{
		{"first page", 1, 3, []int{0, 1, 2}, 3},
		{"last partial page", 3, 3, []int{6}, 3},
		{"past the end", 5, 3, []int{}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := pagination.Slice(items, pagination.PageRequest{Page: tt.page, PageSize: tt.size})
			assert.Equal(t, tt.want, result.Data)
			assert.Equal(t, 7, result.Total)
			assert.Equal(t, tt.pages, result.TotalPages)
		})
	}
}
