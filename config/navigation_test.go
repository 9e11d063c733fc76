package config

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildNavigation(t *testing.T) {
	tree, err := BuildNavigation([]string{"/a.md", "/b.md", "/c.md"})
	require.NoError(t, err)

	want := NavigationTree{
		{Index: 0, Path: "/a.md"},
		{Index: 1, Path: "/b.md"},
		{Index: 2, Path: "/c.md"},
	}
	if diff := cmp.Diff(want, tree); diff != "" {
		t.Errorf("BuildNavigation (-want +got):\n%s", diff)
	}
}

func TestBuildNavigationFollowsInputOrder(t *testing.T) {
	tree, err := BuildNavigation([]string{"/c.md", "/a.md", "/b.md"})
	require.NoError(t, err)
	assert.Equal(t, []string{"/c.md", "/a.md", "/b.md"}, tree.Paths())
	for i, n := range tree {
		assert.Equal(t, i, n.Index)
	}
}

func TestBuildNavigationKeepsDuplicates(t *testing.T) {
	tree, err := BuildNavigation([]string{"/", "/a.md", "/"})
	require.NoError(t, err)

	require.Len(t, tree, 3)
	assert.Equal(t, NavNode{Index: 2, Path: "/"}, tree[2])
}

func TestBuildNavigationEmpty(t *testing.T) {
	tree, err := BuildNavigation(nil)
	require.NoError(t, err)
	assert.Empty(t, tree)
}

func TestBuildNavigationInvalidPath(t *testing.T) {
	for _, sidebar := range [][]string{
		{"/", "about.md"},
		{"/", ""},
	} {
		tree, err := BuildNavigation(sidebar)
		assert.Nil(t, tree)
		require.ErrorIs(t, err, ErrInvalidPath)

		var ce *ConfigError
		require.ErrorAs(t, err, &ce)
		assert.Equal(t, 1, ce.Index)
		assert.Equal(t, sidebar[1], ce.Path)
	}
}
