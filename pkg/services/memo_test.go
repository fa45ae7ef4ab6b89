package services

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestCache_MemoizesWithinScope(t *testing.T) {
	dir := t.TempDir()
	writeFixturePost(t, dir, "one.md", "one", 100)
	writeFixturePost(t, dir, "two.md", "two", 200)

	rc := NewRequestCache()

	posts, err := rc.ListPosts(dir, "", SortNewestFirst)
	require.NoError(t, err)
	require.Len(t, posts, 2)

	// A change on disk is invisible inside the same scope
	require.NoError(t, os.Remove(filepath.Join(dir, "two.md")))

	again, err := rc.ListPosts(dir, "", SortNewestFirst)
	require.NoError(t, err)
	assert.Len(t, again, 2)

	// and visible to a fresh scope, as a new request would see it
	fresh, err := NewRequestCache().ListPosts(dir, "", SortNewestFirst)
	require.NoError(t, err)
	assert.Len(t, fresh, 1)
}

func TestRequestCache_KeysIncludeArguments(t *testing.T) {
	rc := NewRequestCache()

	all, err := rc.ListPosts(blogFixture, "", SortNewestFirst)
	require.NoError(t, err)
	filtered, err := rc.ListPosts(blogFixture, "web", SortNewestFirst)
	require.NoError(t, err)

	assert.Len(t, all, 3)
	assert.Len(t, filtered, 2)
}

func TestRequestCache_LoadPostAbsent(t *testing.T) {
	rc := NewRequestCache()

	post, err := rc.LoadPost(blogFixture, "ghost")
	require.NoError(t, err)
	assert.Nil(t, post)

	sib, err := rc.ResolveSiblings(blogFixture, "ghost")
	require.NoError(t, err)
	assert.Nil(t, sib)
}
