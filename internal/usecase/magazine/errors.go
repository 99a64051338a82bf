// Package magazine provides use cases for magazines: registration, validated
// updates, the article/contributor queries and the registry-wide top publisher.
package magazine

import (
	"errors"

	"magazine-catalog/internal/observability/metrics"
)

// Sentinel errors for magazine use case operations.
var (
	// ErrMagazineNotFound indicates that the requested magazine is not registered.
	ErrMagazineNotFound = errors.New("magazine not found")

	// ErrInvalidMagazineID indicates that the provided magazine ID is the nil UUID.
	ErrInvalidMagazineID = errors.New("invalid magazine ID")

	// ErrNoMagazines is returned by TopPublisher when no magazine is registered.
	ErrNoMagazines = errors.New("no magazines registered")
)

func init() {
	metrics.RegisterNotFound(ErrMagazineNotFound)
	metrics.RegisterNotFound(ErrNoMagazines)
}
