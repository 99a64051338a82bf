// Package article provides use cases for articles: direct creation, lookup and
// validated updates of title, author and magazine.
package article

import (
	"errors"

	"magazine-catalog/internal/observability/metrics"
)

// Sentinel errors for article use case operations.
var (
	// ErrArticleNotFound indicates that the requested article is not registered.
	ErrArticleNotFound = errors.New("article not found")

	// ErrInvalidArticleID indicates that the provided article ID is the nil UUID.
	ErrInvalidArticleID = errors.New("invalid article ID")

	// ErrAuthorNotFound indicates that the referenced author is not registered.
	ErrAuthorNotFound = errors.New("author not found")

	// ErrMagazineNotFound indicates that the referenced magazine is not registered.
	ErrMagazineNotFound = errors.New("magazine not found")
)

func init() {
	metrics.RegisterNotFound(ErrArticleNotFound)
	metrics.RegisterNotFound(ErrAuthorNotFound)
	metrics.RegisterNotFound(ErrMagazineNotFound)
}
