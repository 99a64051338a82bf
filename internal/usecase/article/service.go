package article

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"magazine-catalog/internal/domain/entity"
	"magazine-catalog/internal/observability"
	"magazine-catalog/internal/observability/logging"
	"magazine-catalog/internal/observability/metrics"
	"magazine-catalog/internal/repository"
)

// CreateInput represents the input parameters for creating a new article.
type CreateInput struct {
	AuthorID   uuid.UUID
	MagazineID uuid.UUID
	Title      string
}

// UpdateInput represents the input parameters for updating an existing article.
// Fields with nil values will not be updated.
type UpdateInput struct {
	ID         uuid.UUID
	Title      *string
	AuthorID   *uuid.UUID
	MagazineID *uuid.UUID
}

// Service provides article use cases.
type Service struct {
	ArticleRepo  repository.ArticleRepository
	AuthorRepo   repository.AuthorRepository
	MagazineRepo repository.MagazineRepository
}

// Create constructs and registers an article.
// Returns ErrAuthorNotFound or ErrMagazineNotFound for unregistered references
// and a ValidationError if the title is not 5-50 characters. Nothing is
// registered when an error is returned.
func (s *Service) Create(ctx context.Context, in CreateInput) (_ *entity.Article, err error) {
	ctx, done := observability.Start(ctx, "article.Create")
	defer func() { done(err) }()

	author, err := s.author(ctx, in.AuthorID)
	if err != nil {
		return nil, err
	}
	magazine, err := s.magazine(ctx, in.MagazineID)
	if err != nil {
		return nil, err
	}

	art, err := entity.NewArticle(author, magazine, in.Title)
	if err != nil {
		metrics.RecordValidationFailure("article", err)
		return nil, err
	}
	if err := s.ArticleRepo.Create(ctx, art); err != nil {
		return nil, fmt.Errorf("create article: %w", err)
	}

	if n, err := s.ArticleRepo.Count(ctx); err == nil {
		metrics.UpdateArticlesTotal(n)
	}
	logging.FromContext(ctx).Info("article created",
		slog.String("article_id", art.ID().String()),
		slog.String("author", author.Name()),
		slog.String("magazine", magazine.Name()),
		slog.String("title", art.Title()))
	return art, nil
}

// Get retrieves a single article by its ID.
// Returns ErrInvalidArticleID for the nil UUID.
// Returns ErrArticleNotFound if the article does not exist.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (_ *entity.Article, err error) {
	ctx, done := observability.Start(ctx, "article.Get")
	defer func() { done(err) }()

	return s.get(ctx, id)
}

func (s *Service) get(ctx context.Context, id uuid.UUID) (*entity.Article, error) {
	if id == uuid.Nil {
		return nil, ErrInvalidArticleID
	}
	art, err := s.ArticleRepo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	if art == nil {
		return nil, ErrArticleNotFound
	}
	return art, nil
}

// List retrieves every registered article in registration order.
func (s *Service) List(ctx context.Context) (_ []*entity.Article, err error) {
	ctx, done := observability.Start(ctx, "article.List")
	defer func() { done(err) }()

	articles, err := s.ArticleRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	return articles, nil
}

// Count returns the number of registered articles.
func (s *Service) Count(ctx context.Context) (_ int, err error) {
	ctx, done := observability.Start(ctx, "article.Count")
	defer func() { done(err) }()

	n, err := s.ArticleRepo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count articles: %w", err)
	}
	return n, nil
}

// Update modifies an existing article with the provided input.
// Only non-nil fields are applied. The title is validated with the same bounds
// as Create, and author/magazine references must be registered. All fields are
// checked before any is applied.
func (s *Service) Update(ctx context.Context, in UpdateInput) (err error) {
	ctx, done := observability.Start(ctx, "article.Update")
	defer func() { done(err) }()

	art, err := s.get(ctx, in.ID)
	if err != nil {
		return err
	}

	if in.Title != nil {
		if err := entity.ValidateTitle(*in.Title); err != nil {
			metrics.RecordValidationFailure("article", err)
			return err
		}
	}
	var author *entity.Author
	if in.AuthorID != nil {
		if author, err = s.author(ctx, *in.AuthorID); err != nil {
			return err
		}
	}
	var magazine *entity.Magazine
	if in.MagazineID != nil {
		if magazine, err = s.magazine(ctx, *in.MagazineID); err != nil {
			return err
		}
	}

	if in.Title != nil {
		if err := art.SetTitle(*in.Title); err != nil {
			return err
		}
	}
	if author != nil {
		if err := art.SetAuthor(author); err != nil {
			return err
		}
	}
	if magazine != nil {
		if err := art.SetMagazine(magazine); err != nil {
			return err
		}
	}

	if err := s.ArticleRepo.Update(ctx, art); err != nil {
		return fmt.Errorf("update article: %w", err)
	}
	logging.FromContext(ctx).Info("article updated",
		slog.String("article_id", art.ID().String()),
		slog.String("author", art.Author().Name()),
		slog.String("magazine", art.Magazine().Name()),
		slog.String("title", art.Title()))
	return nil
}

func (s *Service) author(ctx context.Context, id uuid.UUID) (*entity.Author, error) {
	author, err := s.AuthorRepo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get author: %w", err)
	}
	if author == nil {
		return nil, ErrAuthorNotFound
	}
	return author, nil
}

func (s *Service) magazine(ctx context.Context, id uuid.UUID) (*entity.Magazine, error) {
	magazine, err := s.MagazineRepo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get magazine: %w", err)
	}
	if magazine == nil {
		return nil, ErrMagazineNotFound
	}
	return magazine, nil
}
