package author

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"magazine-catalog/internal/domain/entity"
	"magazine-catalog/internal/observability"
	"magazine-catalog/internal/observability/logging"
	"magazine-catalog/internal/observability/metrics"
	"magazine-catalog/internal/repository"
)

// CreateInput represents the input parameters for registering a new author.
type CreateInput struct {
	Name string
}

// AddArticleInput represents the input parameters for AddArticle.
type AddArticleInput struct {
	AuthorID   uuid.UUID
	MagazineID uuid.UUID
	Title      string
}

// Service provides author use cases.
// Relationship queries are always derived from the article registry.
type Service struct {
	AuthorRepo   repository.AuthorRepository
	MagazineRepo repository.MagazineRepository
	ArticleRepo  repository.ArticleRepository
}

// Create validates and registers a new author.
// Returns a ValidationError if the name is empty; nothing is registered in that case.
func (s *Service) Create(ctx context.Context, in CreateInput) (_ *entity.Author, err error) {
	ctx, done := observability.Start(ctx, "author.Create")
	defer func() { done(err) }()

	author, err := entity.NewAuthor(in.Name)
	if err != nil {
		metrics.RecordValidationFailure("author", err)
		return nil, err
	}
	if err := s.AuthorRepo.Create(ctx, author); err != nil {
		return nil, fmt.Errorf("create author: %w", err)
	}

	if n, err := s.AuthorRepo.Count(ctx); err == nil {
		metrics.UpdateAuthorsTotal(n)
	}
	logging.FromContext(ctx).Info("author created",
		slog.String("author_id", author.ID().String()),
		slog.String("name", author.Name()))
	return author, nil
}

// Get retrieves a registered author.
// Returns ErrInvalidAuthorID for the nil UUID and ErrAuthorNotFound if the author is not registered.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (_ *entity.Author, err error) {
	ctx, done := observability.Start(ctx, "author.Get")
	defer func() { done(err) }()

	return s.get(ctx, id)
}

func (s *Service) get(ctx context.Context, id uuid.UUID) (*entity.Author, error) {
	if id == uuid.Nil {
		return nil, ErrInvalidAuthorID
	}
	author, err := s.AuthorRepo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get author: %w", err)
	}
	if author == nil {
		return nil, ErrAuthorNotFound
	}
	return author, nil
}

// List retrieves every registered author in registration order.
func (s *Service) List(ctx context.Context) (_ []*entity.Author, err error) {
	ctx, done := observability.Start(ctx, "author.List")
	defer func() { done(err) }()

	authors, err := s.AuthorRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list authors: %w", err)
	}
	return authors, nil
}

// Rename always fails with an ImmutableFieldError once the author exists.
// The author's name is left unchanged.
func (s *Service) Rename(ctx context.Context, id uuid.UUID, name string) (err error) {
	ctx, done := observability.Start(ctx, "author.Rename")
	defer func() { done(err) }()

	author, err := s.get(ctx, id)
	if err != nil {
		return err
	}
	return author.SetName(name)
}

// Articles returns every registered article written by the author, in registration order.
func (s *Service) Articles(ctx context.Context, id uuid.UUID) (_ []*entity.Article, err error) {
	ctx, done := observability.Start(ctx, "author.Articles", attribute.String("author_id", id.String()))
	defer func() { done(err) }()

	return s.articles(ctx, id)
}

func (s *Service) articles(ctx context.Context, id uuid.UUID) ([]*entity.Article, error) {
	if _, err := s.get(ctx, id); err != nil {
		return nil, err
	}

	start := time.Now()
	articles, err := s.ArticleRepo.ListByAuthor(ctx, id)
	metrics.RecordQueryDuration("author_articles", time.Since(start))
	if err != nil {
		return nil, fmt.Errorf("list articles by author: %w", err)
	}
	return articles, nil
}

// Magazines returns the distinct magazines the author has written for,
// in the order they first appear among the author's articles.
func (s *Service) Magazines(ctx context.Context, id uuid.UUID) (_ []*entity.Magazine, err error) {
	ctx, done := observability.Start(ctx, "author.Magazines", attribute.String("author_id", id.String()))
	defer func() { done(err) }()

	return s.magazines(ctx, id)
}

func (s *Service) magazines(ctx context.Context, id uuid.UUID) ([]*entity.Magazine, error) {
	articles, err := s.articles(ctx, id)
	if err != nil {
		return nil, err
	}

	seen := make(map[uuid.UUID]struct{}, len(articles))
	magazines := make([]*entity.Magazine, 0, len(articles))
	for _, a := range articles {
		m := a.Magazine()
		if _, ok := seen[m.ID()]; ok {
			continue
		}
		seen[m.ID()] = struct{}{}
		magazines = append(magazines, m)
	}
	return magazines, nil
}

// AddArticle creates an article by the author in the given magazine and registers it.
// The article goes into the same registry as directly created articles, so it is
// immediately visible to every relationship query.
// Returns a ValidationError if the title is not 5-50 characters.
func (s *Service) AddArticle(ctx context.Context, in AddArticleInput) (_ *entity.Article, err error) {
	ctx, done := observability.Start(ctx, "author.AddArticle",
		attribute.String("author_id", in.AuthorID.String()),
		attribute.String("magazine_id", in.MagazineID.String()))
	defer func() { done(err) }()

	author, err := s.get(ctx, in.AuthorID)
	if err != nil {
		return nil, err
	}
	magazine, err := s.MagazineRepo.Get(ctx, in.MagazineID)
	if err != nil {
		return nil, fmt.Errorf("get magazine: %w", err)
	}
	if magazine == nil {
		return nil, ErrMagazineNotFound
	}

	article, err := entity.NewArticle(author, magazine, in.Title)
	if err != nil {
		metrics.RecordValidationFailure("article", err)
		return nil, err
	}
	if err := s.ArticleRepo.Create(ctx, article); err != nil {
		return nil, fmt.Errorf("create article: %w", err)
	}

	if n, err := s.ArticleRepo.Count(ctx); err == nil {
		metrics.UpdateArticlesTotal(n)
	}
	logging.FromContext(ctx).Info("article added",
		slog.String("article_id", article.ID().String()),
		slog.String("author", author.Name()),
		slog.String("magazine", magazine.Name()),
		slog.String("title", article.Title()))
	return article, nil
}

// TopicAreas returns the distinct categories of the magazines the author has
// written for, in first-appearance order. An author without articles gets an
// empty slice.
func (s *Service) TopicAreas(ctx context.Context, id uuid.UUID) (_ []string, err error) {
	ctx, done := observability.Start(ctx, "author.TopicAreas", attribute.String("author_id", id.String()))
	defer func() { done(err) }()

	magazines, err := s.magazines(ctx, id)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(magazines))
	topics := make([]string, 0, len(magazines))
	for _, m := range magazines {
		if _, ok := seen[m.Category()]; ok {
			continue
		}
		seen[m.Category()] = struct{}{}
		topics = append(topics, m.Category())
	}
	return topics, nil
}
