// Package author provides use cases for authors: registration, the
// articles/magazines/topic-area relationship queries and the add-article
// aggregate helper.
package author

import (
	"errors"

	"magazine-catalog/internal/observability/metrics"
)

// Sentinel errors for author use case operations.
var (
	// ErrAuthorNotFound indicates that the requested author is not registered.
	ErrAuthorNotFound = errors.New("author not found")

	// ErrInvalidAuthorID indicates that the provided author ID is the nil UUID.
	ErrInvalidAuthorID = errors.New("invalid author ID")

	// ErrMagazineNotFound indicates that the magazine passed to AddArticle is not registered.
	ErrMagazineNotFound = errors.New("magazine not found")
)

func init() {
	metrics.RegisterNotFound(ErrAuthorNotFound)
	metrics.RegisterNotFound(ErrMagazineNotFound)
}
