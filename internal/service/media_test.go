package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const testStorageRoot = "https://resepku-recipe-images.s3.amazonaws.com/"

func TestResolveForWrite(t *testing.T) {
	// An uploaded file reference always wins
	assert.Equal(t, "recipe-images/a.png", ResolveForWrite("recipe-images/a.png", "http://example.com/b.jpg"))
	assert.Equal(t, "http://example.com/b.jpg", ResolveForWrite("", "http://example.com/b.jpg"))
	assert.Equal(t, "", ResolveForWrite("", ""))
}

func TestResolveForDisplayPlaceholder(t *testing.T) {
	assert.Equal(t, PlaceholderImageURL, ResolveForDisplay("", testStorageRoot))
}

func TestResolveForDisplayAbsoluteURLUnchanged(t *testing.T) {
	assert.Equal(t, "http://example.com/pic.jpg", ResolveForDisplay("http://example.com/pic.jpg", testStorageRoot))
	assert.Equal(t, "https://example.com/pic.jpg", ResolveForDisplay("https://example.com/pic.jpg", testStorageRoot))
}

func TestResolveForDisplayRelativePath(t *testing.T) {
	assert.Equal(t,
		testStorageRoot+"recipe-images/pic.jpg",
		ResolveForDisplay("recipe-images/pic.jpg", testStorageRoot))

	// Windows-style separators are normalized
	assert.Equal(t,
		testStorageRoot+"recipe-images/pic.jpg",
		ResolveForDisplay(`recipe-images\pic.jpg`, testStorageRoot))

	// A leading slash does not double up
	assert.Equal(t,
		testStorageRoot+"recipe-images/pic.jpg",
		ResolveForDisplay("/recipe-images/pic.jpg", testStorageRoot))
}

func TestResolveForDisplayIdempotent(t *testing.T) {
	for _, ref := range []string{"", "recipe-images/pic.jpg", `a\b\c.png`, "https://example.com/x.jpg"} {
		once := ResolveForDisplay(ref, testStorageRoot)
		twice := ResolveForDisplay(once, testStorageRoot)
		assert.Equal(t, once, twice, "resolving twice must be stable for %q", ref)
	}
}
