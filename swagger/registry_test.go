package swagger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type brokenRegistry struct{}

func (brokenRegistry) ListRoutes() ([]RouteEntry, error) {
	return nil, errors.New("routing table gone")
}

func TestExtract(t *testing.T) {
	t.Run("keeps registration order", func(t *testing.T) {
		entries, err := Extract(Routes{
			{PathTemplate: "/b"},
			{PathTemplate: "/a"},
			{PathTemplate: "/c"},
		})
		require.NoError(t, err)
		require.Len(t, entries, 3)
		assert.Equal(t, "/b", entries[0].PathTemplate)
		assert.Equal(t, "/a", entries[1].PathTemplate)
		assert.Equal(t, "/c", entries[2].PathTemplate)
	})

	t.Run("defaults to GET", func(t *testing.T) {
		entries, err := Extract(Routes{{PathTemplate: "/users"}})
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, []string{"GET"}, entries[0].Methods)
	})

	t.Run("uppercases and de-duplicates methods", func(t *testing.T) {
		entries, err := Extract(Routes{
			{PathTemplate: "/users", Methods: []string{"get", "GET", "post", " "}},
		})
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, []string{"GET", "POST"}, entries[0].Methods)
	})

	t.Run("drops internal routes", func(t *testing.T) {
		entries, err := Extract(Routes{
			{PathTemplate: "/users"},
			{PathTemplate: "/api-docs", Internal: true},
		})
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "/users", entries[0].PathTemplate)
	})

	t.Run("path templates pass through untouched", func(t *testing.T) {
		entries, err := Extract(Routes{{PathTemplate: "/users/<int:user_id>"}})
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "/users/<int:user_id>", entries[0].PathTemplate)
	})

	t.Run("propagates registry errors", func(t *testing.T) {
		entries, err := Extract(brokenRegistry{})
		assert.ErrorContains(t, err, "routing table gone")
		assert.Nil(t, entries)
	})
}
