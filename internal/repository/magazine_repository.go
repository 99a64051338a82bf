package repository

import (
	"context"

	"github.com/google/uuid"

	"magazine-catalog/internal/domain/entity"
)

type MagazineRepository interface {
	// List returns every registered magazine in registration order.
	List(ctx context.Context) ([]*entity.Magazine, error)
	Count(ctx context.Context) (int, error)
	// Get returns (nil, nil) if the magazine is not registered.
	Get(ctx context.Context, id uuid.UUID) (*entity.Magazine, error)
	Create(ctx context.Context, magazine *entity.Magazine) error
	Update(ctx context.Context, magazine *entity.Magazine) error
}
