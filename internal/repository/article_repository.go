package repository

import (
	"context"

	"github.com/google/uuid"

	"magazine-catalog/internal/domain/entity"
)

type ArticleRepository interface {
	// List returns every registered article in registration order.
	List(ctx context.Context) ([]*entity.Article, error)
	// ListByAuthor returns the articles currently attributed to the author, in registration order.
	ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]*entity.Article, error)
	// ListByMagazine returns the articles currently published in the magazine, in registration order.
	ListByMagazine(ctx context.Context, magazineID uuid.UUID) ([]*entity.Article, error)
	Count(ctx context.Context) (int, error)
	// Get returns (nil, nil) if the article is not registered.
	Get(ctx context.Context, id uuid.UUID) (*entity.Article, error)
	Create(ctx context.Context, article *entity.Article) error
	Update(ctx context.Context, article *entity.Article) error
}
