package memory

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"magazine-catalog/internal/domain/entity"
	"magazine-catalog/internal/repository"
)

type ArticleRepo struct{ store *Store }

func NewArticleRepo(store *Store) repository.ArticleRepository {
	return &ArticleRepo{store: store}
}

func (repo *ArticleRepo) List(ctx context.Context) ([]*entity.Article, error) {
	var articles []*entity.Article
	err := repo.store.read(ctx, func() error {
		articles = repo.store.articles.snapshot()
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	return articles, nil
}

func (repo *ArticleRepo) ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]*entity.Article, error) {
	articles, err := repo.filter(ctx, func(a *entity.Article) bool {
		return a.Author().ID() == authorID
	})
	if err != nil {
		return nil, fmt.Errorf("ListByAuthor: %w", err)
	}
	return articles, nil
}

func (repo *ArticleRepo) ListByMagazine(ctx context.Context, magazineID uuid.UUID) ([]*entity.Article, error) {
	articles, err := repo.filter(ctx, func(a *entity.Article) bool {
		return a.Magazine().ID() == magazineID
	})
	if err != nil {
		return nil, fmt.Errorf("ListByMagazine: %w", err)
	}
	return articles, nil
}

// filter scans the registry in insertion order. Author and magazine are read
// from the article at scan time, so reassignments are always reflected.
func (repo *ArticleRepo) filter(ctx context.Context, match func(*entity.Article) bool) ([]*entity.Article, error) {
	articles := make([]*entity.Article, 0)
	err := repo.store.read(ctx, func() error {
		for _, a := range repo.store.articles.items {
			if match(a) {
				articles = append(articles, a)
			}
		}
		return nil
	})
	return articles, err
}

func (repo *ArticleRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := repo.store.read(ctx, func() error {
		n = len(repo.store.articles.items)
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("Count: %w", err)
	}
	return n, nil
}

func (repo *ArticleRepo) Get(ctx context.Context, id uuid.UUID) (*entity.Article, error) {
	var article *entity.Article
	err := repo.store.read(ctx, func() error {
		article, _ = repo.store.articles.get(id)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return article, nil
}

func (repo *ArticleRepo) Create(ctx context.Context, article *entity.Article) error {
	if article == nil {
		return fmt.Errorf("Create: %w", entity.ErrInvalidInput)
	}
	err := repo.store.write(ctx, func() error {
		return repo.store.articles.add(article.ID(), article)
	})
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}

func (repo *ArticleRepo) Update(ctx context.Context, article *entity.Article) error {
	if article == nil {
		return fmt.Errorf("Update: %w", entity.ErrInvalidInput)
	}
	err := repo.store.write(ctx, func() error {
		if !repo.store.articles.has(article.ID()) {
			return entity.ErrNotFound
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("Update: %w", err)
	}
	return nil
}
