package entity

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAuthor(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "regular name", input: "Carry Bradshaw"},
		{name: "single character", input: "A"},
		{name: "multi-byte name", input: "太郎"},
		{name: "empty name", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := NewAuthor(tt.input)
			if tt.wantErr {
				assert.Nil(t, a)
				assert.True(t, errors.Is(err, ErrValidationFailed))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, a.Name())
			assert.NotEqual(t, uuid.Nil, a.ID())
		})
	}
}

func TestAuthor_SetNameIsRejected(t *testing.T) {
	a, err := NewAuthor("Ada")
	require.NoError(t, err)

	for _, name := range []string{"New Name", "Ada", ""} {
		err := a.SetName(name)

		var ife *ImmutableFieldError
		require.True(t, errors.As(err, &ife))
		assert.Equal(t, "name", ife.Field)
		assert.Equal(t, "Ada", a.Name())
	}
}

func TestAuthor_DistinctIdentity(t *testing.T) {
	a1, err := NewAuthor("Ada")
	require.NoError(t, err)
	a2, err := NewAuthor("Ada")
	require.NoError(t, err)

	assert.NotEqual(t, a1.ID(), a2.ID())
	assert.Equal(t, "Author: Ada", a1.String())
}
