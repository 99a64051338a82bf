package entity

import (
	"fmt"

	"github.com/google/uuid"
)

// Magazine publishes articles under a category.
// Name and category stay mutable but are revalidated on every assignment.
type Magazine struct {
	id       uuid.UUID
	name     string
	category string
}

// NewMagazine creates a Magazine with a fresh identity.
// Returns a ValidationError if the name is not 2-16 characters or the category is empty.
func NewMagazine(name, category string) (*Magazine, error) {
	if err := ValidateMagazineName(name); err != nil {
		return nil, err
	}
	if err := ValidateCategory(category); err != nil {
		return nil, err
	}
	return &Magazine{id: uuid.New(), name: name, category: category}, nil
}

// ID returns the magazine's identity.
func (m *Magazine) ID() uuid.UUID { return m.id }

// Name returns the magazine's name.
func (m *Magazine) Name() string { return m.name }

// Category returns the magazine's category.
func (m *Magazine) Category() string { return m.category }

// SetName replaces the name. The magazine is unchanged if validation fails.
func (m *Magazine) SetName(name string) error {
	if err := ValidateMagazineName(name); err != nil {
		return err
	}
	m.name = name
	return nil
}

// SetCategory replaces the category. The magazine is unchanged if validation fails.
func (m *Magazine) SetCategory(category string) error {
	if err := ValidateCategory(category); err != nil {
		return err
	}
	m.category = category
	return nil
}

// String implements fmt.Stringer.
func (m *Magazine) String() string {
	return fmt.Sprintf("Magazine: %s, Category: %s", m.name, m.category)
}
