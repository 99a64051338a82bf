package entity

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMagazine(t *testing.T) {
	tests := []struct {
		name      string
		magName   string
		category  string
		wantField string
	}{
		{name: "valid", magName: "Vogue", category: "Fashion"},
		{name: "two characters", magName: "AD", category: "Architecture"},
		{name: "sixteen characters", magName: strings.Repeat("m", 16), category: "Science"},
		{name: "one character", magName: "V", category: "Fashion", wantField: "name"},
		{name: "empty name", magName: "", category: "Fashion", wantField: "name"},
		{name: "seventeen characters", magName: strings.Repeat("m", 17), category: "Science", wantField: "name"},
		{name: "empty category", magName: "Vogue", category: "", wantField: "category"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewMagazine(tt.magName, tt.category)
			if tt.wantField != "" {
				assert.Nil(t, m)
				var ve *ValidationError
				require.True(t, errors.As(err, &ve))
				assert.Equal(t, tt.wantField, ve.Field)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.magName, m.Name())
			assert.Equal(t, tt.category, m.Category())
		})
	}
}

func TestMagazine_SetName(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{name: "length 0", value: "", wantErr: true},
		{name: "length 1", value: "X", wantErr: true},
		{name: "length 2", value: "XY"},
		{name: "length 16", value: strings.Repeat("x", 16)},
		{name: "length 17", value: strings.Repeat("x", 17), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewMagazine("Title", "Technology")
			require.NoError(t, err)

			err = m.SetName(tt.value)
			if tt.wantErr {
				assert.True(t, errors.Is(err, ErrValidationFailed))
				assert.Equal(t, "Title", m.Name())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.value, m.Name())
		})
	}
}

func TestMagazine_SetCategory(t *testing.T) {
	m, err := NewMagazine("Title", "Technology")
	require.NoError(t, err)

	require.NoError(t, m.SetCategory("Science"))
	assert.Equal(t, "Science", m.Category())

	err = m.SetCategory("")
	assert.True(t, errors.Is(err, ErrValidationFailed))
	assert.Equal(t, "Science", m.Category())
	assert.Equal(t, "Magazine: Title, Category: Science", m.String())
}
