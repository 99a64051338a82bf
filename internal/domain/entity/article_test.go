package entity

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPair(t *testing.T) (*Author, *Magazine) {
	t.Helper()
	a, err := NewAuthor("Carry Bradshaw")
	require.NoError(t, err)
	m, err := NewMagazine("Vogue", "Fashion")
	require.NoError(t, err)
	return a, m
}

func TestNewArticle(t *testing.T) {
	author, magazine := newPair(t)

	tests := []struct {
		name      string
		author    *Author
		magazine  *Magazine
		title     string
		wantField string
	}{
		{name: "valid", author: author, magazine: magazine, title: "How to wear a tutu with style"},
		{name: "minimum title", author: author, magazine: magazine, title: "Tutus"},
		{name: "maximum title", author: author, magazine: magazine, title: strings.Repeat("t", 50)},
		{name: "title too short", author: author, magazine: magazine, title: "Tutu", wantField: "title"},
		{name: "title too long", author: author, magazine: magazine, title: strings.Repeat("t", 51), wantField: "title"},
		{name: "nil author", magazine: magazine, title: "Dating life in NYC", wantField: "author"},
		{name: "nil magazine", author: author, title: "Dating life in NYC", wantField: "magazine"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			art, err := NewArticle(tt.author, tt.magazine, tt.title)
			if tt.wantField != "" {
				assert.Nil(t, art)
				var ve *ValidationError
				require.True(t, errors.As(err, &ve))
				assert.Equal(t, tt.wantField, ve.Field)
				return
			}
			require.NoError(t, err)
			assert.Same(t, tt.author, art.Author())
			assert.Same(t, tt.magazine, art.Magazine())
			assert.Equal(t, tt.title, art.Title())
		})
	}
}

func TestArticle_SetTitle(t *testing.T) {
	author, magazine := newPair(t)
	art, err := NewArticle(author, magazine, "Dating life in NYC")
	require.NoError(t, err)

	require.NoError(t, art.SetTitle("Dating life in LA"))
	assert.Equal(t, "Dating life in LA", art.Title())

	for _, bad := range []string{"", "New", strings.Repeat("x", 51)} {
		err := art.SetTitle(bad)
		assert.True(t, errors.Is(err, ErrValidationFailed), "title %q", bad)
		assert.Equal(t, "Dating life in LA", art.Title())
	}
}

func TestArticle_SetAuthorAndMagazine(t *testing.T) {
	author, magazine := newPair(t)
	art, err := NewArticle(author, magazine, "2023 Eccentric Design Trends")
	require.NoError(t, err)

	other, err := NewAuthor("Samantha Jones")
	require.NoError(t, err)
	ad, err := NewMagazine("AD", "Architecture")
	require.NoError(t, err)

	require.NoError(t, art.SetAuthor(other))
	require.NoError(t, art.SetMagazine(ad))
	assert.Same(t, other, art.Author())
	assert.Same(t, ad, art.Magazine())

	assert.True(t, errors.Is(art.SetAuthor(nil), ErrValidationFailed))
	assert.True(t, errors.Is(art.SetMagazine(nil), ErrValidationFailed))
	assert.Same(t, other, art.Author())
	assert.Same(t, ad, art.Magazine())
}
