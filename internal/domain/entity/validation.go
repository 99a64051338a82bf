package entity

import (
	"fmt"

	"magazine-catalog/internal/utils/text"
)

// Length bounds, counted in runes.
const (
	MinAuthorNameLength   = 1
	MinMagazineNameLength = 2
	MaxMagazineNameLength = 16
	MinCategoryLength     = 1
	MinTitleLength        = 5
	MaxTitleLength        = 50
)

// ValidateAuthorName checks that an author name is non-empty.
func ValidateAuthorName(name string) error {
	if text.CountRunes(name) < MinAuthorNameLength {
		return &ValidationError{Field: "name", Message: "is required"}
	}
	return nil
}

// ValidateMagazineName checks that a magazine name is between 2 and 16 characters.
func ValidateMagazineName(name string) error {
	if !text.LengthBetween(name, MinMagazineNameLength, MaxMagazineNameLength) {
		return &ValidationError{
			Field:   "name",
			Message: fmt.Sprintf("must be between %d and %d characters", MinMagazineNameLength, MaxMagazineNameLength),
		}
	}
	return nil
}

// ValidateCategory checks that a magazine category is non-empty.
func ValidateCategory(category string) error {
	if text.CountRunes(category) < MinCategoryLength {
		return &ValidationError{Field: "category", Message: "is required"}
	}
	return nil
}

// ValidateTitle checks that an article title is between 5 and 50 characters.
// The same rule applies at construction and on reassignment.
func ValidateTitle(title string) error {
	if !text.LengthBetween(title, MinTitleLength, MaxTitleLength) {
		return &ValidationError{
			Field:   "title",
			Message: fmt.Sprintf("must be between %d and %d characters", MinTitleLength, MaxTitleLength),
		}
	}
	return nil
}
