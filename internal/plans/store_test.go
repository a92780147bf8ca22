package plans_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JaimeStill/floorplan/internal/housespec"
	"github.com/JaimeStill/floorplan/internal/plans"
)

func record(t *testing.T, bedrooms int) plans.Record {
	t.Helper()
	d := housespec.DefaultDraft()
	d.Bedrooms = bedrooms
	in, err := housespec.Parse(d)
	require.NoError(t, err)

	return plans.Record{
		Timestamp:   time.Date(2024, 3, 1, 14, 5, 9, 0, time.UTC),
		Image:       []byte{byte(bedrooms)},
		ContentType: "image/jpeg",
		Summary:     plans.Summarize(in),
		Spec:        in,
	}
}

func filled(t *testing.T, n int) *plans.Store {
	t.Helper()
	s := plans.NewStore()
	for i := range n {
		s.Append(record(t, i+1))
	}
	return s
}

func bedrooms(s *plans.Store) []int {
	out := make([]int, 0, s.Len())
	for _, r := range s.Records() {
		out = append(out, r.Spec.Bedrooms)
	}
	return out
}

func TestAppendIsMonotonic(t *testing.T) {
	s := plans.NewStore()
	for i := range 4 {
		before := s.Len()
		idx := s.Append(record(t, i+1))
		assert.Equal(t, before, idx)
		assert.Equal(t, before+1, s.Len())
	}
	assert.Equal(t, []int{1, 2, 3, 4}, bedrooms(s))
}

func TestRequestRegenerate(t *testing.T) {
	s := filled(t, 2)

	in, err := s.RequestRegenerate(1)
	require.NoError(t, err)
	assert.Equal(t, 2, in.Bedrooms)
	assert.Equal(t, 2, s.Len(), "regenerate leaves the store unchanged")

	_, err = s.RequestRegenerate(2)
	assert.ErrorIs(t, err, plans.ErrIndexOutOfRange)

	_, err = s.RequestRegenerate(-1)
	assert.ErrorIs(t, err, plans.ErrIndexOutOfRange)
}

func TestDeleteConfirm(t *testing.T) {
	s := filled(t, 3)

	p, err := s.RequestDelete(1)
	require.NoError(t, err)
	assert.Equal(t, plans.ActionDelete, p.Action)
	assert.Equal(t, 3, s.Len(), "request alone removes nothing")

	pending, ok := s.Pending()
	require.True(t, ok)
	assert.Equal(t, p, pending)

	_, err = s.Confirm(p.Token)
	require.NoError(t, err)

	assert.Equal(t, []int{1, 3}, bedrooms(s), "later records shift down")
	_, ok = s.Pending()
	assert.False(t, ok)
}

func TestDeleteCancel(t *testing.T) {
	s := filled(t, 3)
	p, err := s.RequestDelete(0)
	require.NoError(t, err)

	require.NoError(t, s.Cancel(p.Token))

	assert.Equal(t, []int{1, 2, 3}, bedrooms(s))
	_, ok := s.Pending()
	assert.False(t, ok)

	_, err = s.Confirm(p.Token)
	assert.ErrorIs(t, err, plans.ErrNoPending)
}

func TestRequestDeleteOutOfRange(t *testing.T) {
	s := filled(t, 1)
	_, err := s.RequestDelete(1)
	assert.ErrorIs(t, err, plans.ErrIndexOutOfRange)
	_, ok := s.Pending()
	assert.False(t, ok)
}

func TestLatestRequestWins(t *testing.T) {
	s := filled(t, 3)

	first, err := s.RequestDelete(0)
	require.NoError(t, err)
	second, err := s.RequestDelete(2)
	require.NoError(t, err)

	_, err = s.Confirm(first.Token)
	assert.ErrorIs(t, err, plans.ErrStaleToken)
	assert.Equal(t, 3, s.Len())

	got, err := s.Confirm(second.Token)
	require.NoError(t, err)
	assert.Equal(t, 2, got.Index)
	assert.Equal(t, []int{1, 2}, bedrooms(s))
}

func TestClearAll(t *testing.T) {
	s := filled(t, 3)

	p := s.RequestClearAll()
	assert.Equal(t, plans.ActionClearAll, p.Action)
	assert.Equal(t, 3, s.Len())

	_, err := s.Confirm(p.Token)
	require.NoError(t, err)
	assert.Equal(t, 0, s.Len())
}

func TestClearAllCancel(t *testing.T) {
	s := filled(t, 2)
	p := s.RequestClearAll()

	require.NoError(t, s.Cancel(p.Token))
	assert.Equal(t, 2, s.Len())
}

func TestClearAllOnEmptyStore(t *testing.T) {
	s := plans.NewStore()
	p := s.RequestClearAll()

	_, err := s.Confirm(p.Token)
	require.NoError(t, err)
	assert.Equal(t, 0, s.Len())
}

func TestClearReplacesPendingDelete(t *testing.T) {
	s := filled(t, 2)
	del, err := s.RequestDelete(0)
	require.NoError(t, err)

	clear := s.RequestClearAll()
	pending, ok := s.Pending()
	require.True(t, ok)
	assert.Equal(t, plans.ActionClearAll, pending.Action)

	assert.ErrorIs(t, s.Cancel(del.Token), plans.ErrStaleToken)
	require.NoError(t, s.Cancel(clear.Token))
	assert.Equal(t, 2, s.Len())
}

func TestCancelWithoutPending(t *testing.T) {
	s := plans.NewStore()
	assert.ErrorIs(t, s.Cancel("anything"), plans.ErrNoPending)
}

func TestRecordsReturnsCopy(t *testing.T) {
	s := filled(t, 1)
	records := s.Records()
	records[0].Summary.Style = "changed"

	r, err := s.Get(0)
	require.NoError(t, err)
	assert.Equal(t, "Modern", r.Summary.Style)
}
