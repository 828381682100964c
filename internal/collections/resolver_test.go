package collections

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopsync/internal/highlevel"
)

type fakeLister struct {
	cols []highlevel.Collection
	err  error
}

func (f *fakeLister) ListCollections(context.Context) ([]highlevel.Collection, error) {
	return f.cols, f.err
}

func TestMatch_ExactBeatsSubstring(t *testing.T) {
	t.Parallel()

	cols := []highlevel.Collection{
		{ID: "col_2", Name: "Summer Sale"},
		{ID: "col_1", Name: "Summer"},
	}

	col, ok := Match(cols, "summer")
	require.True(t, ok)
	assert.Equal(t, "col_1", col.ID)
}

func TestMatch_CaseInsensitiveAndTrimmed(t *testing.T) {
	t.Parallel()

	cols := []highlevel.Collection{{ID: "col_1", Name: "  Gadgets "}}

	col, ok := Match(cols, "GADGETS")
	require.True(t, ok)
	assert.Equal(t, "col_1", col.ID)
}

func TestMatch_SubstringFallbackFirstHitWins(t *testing.T) {
	t.Parallel()

	cols := []highlevel.Collection{
		{ID: "col_1", Name: "Winter Gear"},
		{ID: "col_2", Name: "Gear Sale"},
	}

	col, ok := Match(cols, "gear")
	require.True(t, ok)
	assert.Equal(t, "col_1", col.ID)
}

func TestMatch_NoMatchOrEmptyTarget(t *testing.T) {
	t.Parallel()

	cols := []highlevel.Collection{{ID: "col_1", Name: "Gadgets"}}

	_, ok := Match(cols, "toys")
	assert.False(t, ok)

	_, ok = Match(cols, "   ")
	assert.False(t, ok)
}

func TestResolve_ReturnsObservedNamesOnMiss(t *testing.T) {
	t.Parallel()

	resolver := NewResolver(&fakeLister{cols: []highlevel.Collection{
		{ID: "col_1", Name: "Gadgets"},
		{ID: "col_2", Name: "Widgets"},
	}})

	col, observed, err := resolver.Resolve(context.Background(), "toys")
	require.NoError(t, err)
	assert.Empty(t, col.ID)
	assert.Equal(t, []string{"Gadgets", "Widgets"}, observed)
}

func TestResolve_PropagatesListError(t *testing.T) {
	t.Parallel()

	resolver := NewResolver(&fakeLister{err: errors.New("boom")})

	_, _, err := resolver.Resolve(context.Background(), "gadgets")
	require.Error(t, err)
}
