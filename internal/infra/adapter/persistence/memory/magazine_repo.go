package memory

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"magazine-catalog/internal/domain/entity"
	"magazine-catalog/internal/repository"
)

type MagazineRepo struct{ store *Store }

func NewMagazineRepo(store *Store) repository.MagazineRepository {
	return &MagazineRepo{store: store}
}

func (repo *MagazineRepo) List(ctx context.Context) ([]*entity.Magazine, error) {
	var magazines []*entity.Magazine
	err := repo.store.read(ctx, func() error {
		magazines = repo.store.magazines.snapshot()
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	return magazines, nil
}

func (repo *MagazineRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := repo.store.read(ctx, func() error {
		n = len(repo.store.magazines.items)
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("Count: %w", err)
	}
	return n, nil
}

func (repo *MagazineRepo) Get(ctx context.Context, id uuid.UUID) (*entity.Magazine, error) {
	var magazine *entity.Magazine
	err := repo.store.read(ctx, func() error {
		magazine, _ = repo.store.magazines.get(id)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return magazine, nil
}

func (repo *MagazineRepo) Create(ctx context.Context, magazine *entity.Magazine) error {
	if magazine == nil {
		return fmt.Errorf("Create: %w", entity.ErrInvalidInput)
	}
	err := repo.store.write(ctx, func() error {
		return repo.store.magazines.add(magazine.ID(), magazine)
	})
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}

// Update confirms the magazine is registered. The registry holds the same
// pointer the caller mutated, so there is nothing to copy.
func (repo *MagazineRepo) Update(ctx context.Context, magazine *entity.Magazine) error {
	if magazine == nil {
		return fmt.Errorf("Update: %w", entity.ErrInvalidInput)
	}
	err := repo.store.write(ctx, func() error {
		if !repo.store.magazines.has(magazine.ID()) {
			return entity.ErrNotFound
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("Update: %w", err)
	}
	return nil
}
