package repository

import (
	"context"

	"github.com/google/uuid"

	"magazine-catalog/internal/domain/entity"
)

type AuthorRepository interface {
	List(ctx context.Context) ([]*entity.Author, error)
	Count(ctx context.Context) (int, error)
	// Get returns (nil, nil) if the author is not registered.
	Get(ctx context.Context, id uuid.UUID) (*entity.Author, error)
	Create(ctx context.Context, author *entity.Author) error
}
