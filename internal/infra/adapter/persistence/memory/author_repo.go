package memory

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"magazine-catalog/internal/domain/entity"
	"magazine-catalog/internal/repository"
)

type AuthorRepo struct{ store *Store }

func NewAuthorRepo(store *Store) repository.AuthorRepository {
	return &AuthorRepo{store: store}
}

func (repo *AuthorRepo) List(ctx context.Context) ([]*entity.Author, error) {
	var authors []*entity.Author
	err := repo.store.read(ctx, func() error {
		authors = repo.store.authors.snapshot()
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	return authors, nil
}

func (repo *AuthorRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := repo.store.read(ctx, func() error {
		n = len(repo.store.authors.items)
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("Count: %w", err)
	}
	return n, nil
}

func (repo *AuthorRepo) Get(ctx context.Context, id uuid.UUID) (*entity.Author, error) {
	var author *entity.Author
	err := repo.store.read(ctx, func() error {
		author, _ = repo.store.authors.get(id)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return author, nil
}

func (repo *AuthorRepo) Create(ctx context.Context, author *entity.Author) error {
	if author == nil {
		return fmt.Errorf("Create: %w", entity.ErrInvalidInput)
	}
	err := repo.store.write(ctx, func() error {
		return repo.store.authors.add(author.ID(), author)
	})
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}
