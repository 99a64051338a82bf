// Package entity defines the core domain entities and validation logic for the catalog.
// It contains Author, Magazine and Article, their validation rules and the
// domain-specific errors returned when a rule is broken.
package entity

import (
	"fmt"

	"github.com/google/uuid"
)

// Author writes articles. The name is fixed at construction.
// Articles are not stored on the author; they are derived from the article registry.
type Author struct {
	id   uuid.UUID
	name string
}

// NewAuthor creates an Author with a fresh identity.
// Returns a ValidationError if the name is empty.
func NewAuthor(name string) (*Author, error) {
	if err := ValidateAuthorName(name); err != nil {
		return nil, err
	}
	return &Author{id: uuid.New(), name: name}, nil
}

// ID returns the author's identity.
func (a *Author) ID() uuid.UUID { return a.id }

// Name returns the author's name.
func (a *Author) Name() string { return a.name }

// SetName always fails: an author's name is write-once.
func (a *Author) SetName(string) error {
	return &ImmutableFieldError{Field: "name"}
}

// String implements fmt.Stringer.
func (a *Author) String() string {
	return fmt.Sprintf("Author: %s", a.name)
}
