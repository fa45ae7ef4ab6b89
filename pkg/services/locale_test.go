package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasLocale(t *testing.T) {
	cases := []struct {
		path string
		want bool
	}{
		{"/en", true},
		{"/en/", true},
		{"/en/about", true},
		{"/fr/blog/some-post", true},
		{"/ja", true},
		{"/", false},
		{"/about", false},
		{"/blog", false},
		{"/english", false},
		{"/enx/about", false},
		{"/de/about", false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, HasLocale(tc.path), "path %q", tc.path)
	}
}

func TestResolveLocale(t *testing.T) {
	assert.Equal(t, LocaleFR, ResolveLocale("/fr/blog"))
	assert.Equal(t, LocaleJA, ResolveLocale("/ja"))
	assert.Equal(t, DefaultLocale, ResolveLocale("/about"))
	assert.Equal(t, DefaultLocale, ResolveLocale("/"))
	assert.Equal(t, DefaultLocale, ResolveLocale("/de/about"))
}

func TestRewritePath(t *testing.T) {
	rewritten, redirect := RewritePath("/about")
	assert.True(t, redirect)
	assert.Equal(t, "/en/about", rewritten)

	unchanged, redirect := RewritePath("/en/about")
	assert.False(t, redirect)
	assert.Equal(t, "/en/about", unchanged)

	root, redirect := RewritePath("/")
	assert.True(t, redirect)
	assert.Equal(t, "/en/", root)
}

func TestDefaultLocaleIsFirstEntry(t *testing.T) {
	assert.Equal(t, Locales[0], DefaultLocale)
}
