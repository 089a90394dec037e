package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_KeepsInputOrderAndDropsFailures(t *testing.T) {
	src := newFakeCatalog(
		book("1", "Fantasy", "A", "polski", "1994"),
		book("3", "Sci-Fi", "B", "polski", "2005"),
	)
	r := NewResolver(src, 4)

	books := r.Resolve(context.Background(), []string{"3", "2", "1"})

	require.Len(t, books, 2)
	assert.Equal(t, "00000000000003", books[0].ID)
	assert.Equal(t, "00000000000001", books[1].ID)
	assert.ElementsMatch(t, []string{"00000000000001", "00000000000002", "00000000000003"}, src.lookups)
}

func TestResolve_AllFailuresYieldEmptyList(t *testing.T) {
	src := newFakeCatalog()
	src.failAll = true

	books := NewResolver(src, 2).Resolve(context.Background(), []string{"1", "2", "3"})

	require.NotNil(t, books)
	assert.Empty(t, books)
}

func TestResolve_NoIDs(t *testing.T) {
	src := newFakeCatalog()

	books := NewResolver(src, 0).Resolve(context.Background(), nil)

	require.NotNil(t, books)
	assert.Empty(t, books)
	assert.Empty(t, src.lookups)
}
