package magazine

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

// contributingThreshold is the number of articles an author needs in a
// magazine to count as a contributing author.
const contributingThreshold = 2

// CreateInput represents the input parameters for registering a new magazine.
type CreateInput struct {
	Name     string
	Category string
}

// UpdateInput represents the input parameters for updating a magazine.
// Fields with nil values will not be updated.
type UpdateInput struct {
	ID       uuid.UUID
	Name     *string
	Category *string
}

// ArticleCount pairs a magazine with the number of articles it has published.
type ArticleCount struct {
	Magazine *entity.Magazine
	Articles int
}

// Service provides magazine use cases.
type Service struct {
	MagazineRepo repository.MagazineRepository
	ArticleRepo  repository.ArticleRepository
}

// Create validates and registers a new magazine.
// Returns a ValidationError if the name is not 2-16 characters or the category is empty.
func (s *Service) Create(ctx context.Context, in CreateInput) (_ *entity.Magazine, err error) {
	ctx, done := observability.Start(ctx, "magazine.Create")
	defer func() { done(err) }()

	magazine, err := entity.NewMagazine(in.Name, in.Category)
	if err != nil {
		metrics.RecordValidationFailure("magazine", err)
		return nil, err
	}
	if err := s.MagazineRepo.Create(ctx, magazine); err != nil {
		return nil, fmt.Errorf("create magazine: %w", err)
	}

	if n, err := s.MagazineRepo.Count(ctx); err == nil {
		metrics.UpdateMagazinesTotal(n)
	}
	logging.FromContext(ctx).Info("magazine created",
		slog.String("magazine_id", magazine.ID().String()),
		slog.String("name", magazine.Name()),
		slog.String("category", magazine.Category()))
	return magazine, nil
}

// Get retrieves a registered magazine.
// Returns ErrInvalidMagazineID for the nil UUID and ErrMagazineNotFound if the magazine is not registered.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (_ *entity.Magazine, err error) {
	ctx, done := observability.Start(ctx, "magazine.Get")
	defer func() { done(err) }()

	return s.get(ctx, id)
}

func (s *Service) get(ctx context.Context, id uuid.UUID) (*entity.Magazine, error) {
	if id == uuid.Nil {
		return nil, ErrInvalidMagazineID
	}
	magazine, err := s.MagazineRepo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get magazine: %w", err)
	}
	if magazine == nil {
		return nil, ErrMagazineNotFound
	}
	return magazine, nil
}

// List retrieves every registered magazine in registration order.
func (s *Service) List(ctx context.Context) (_ []*entity.Magazine, err error) {
	ctx, done := observability.Start(ctx, "magazine.List")
	defer func() { done(err) }()

	magazines, err := s.MagazineRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list magazines: %w", err)
	}
	return magazines, nil
}

// Update modifies the name and/or category of a magazine.
// Every supplied field is validated before any of them is applied, so a
// failed update leaves the magazine untouched.
func (s *Service) Update(ctx context.Context, in UpdateInput) (err error) {
	ctx, done := observability.Start(ctx, "magazine.Update")
	defer func() { done(err) }()

	magazine, err := s.get(ctx, in.ID)
	if err != nil {
		return err
	}

	if in.Name != nil {
		if err := entity.ValidateMagazineName(*in.Name); err != nil {
			metrics.RecordValidationFailure("magazine", err)
			return err
		}
	}
	if in.Category != nil {
		if err := entity.ValidateCategory(*in.Category); err != nil {
			metrics.RecordValidationFailure("magazine", err)
			return err
		}
	}

	if in.Name != nil {
		if err := magazine.SetName(*in.Name); err != nil {
			return err
		}
	}
	if in.Category != nil {
		if err := magazine.SetCategory(*in.Category); err != nil {
			return err
		}
	}

	if err := s.MagazineRepo.Update(ctx, magazine); err != nil {
		return fmt.Errorf("update magazine: %w", err)
	}
	logging.FromContext(ctx).Info("magazine updated",
		slog.String("magazine_id", magazine.ID().String()),
		slog.String("name", magazine.Name()),
		slog.String("category", magazine.Category()))
	return nil
}

// Articles returns every registered article published in the magazine, in registration order.
func (s *Service) Articles(ctx context.Context, id uuid.UUID) (_ []*entity.Article, err error) {
	ctx, done := observability.Start(ctx, "magazine.Articles", attribute.String("magazine_id", id.String()))
	defer func() { done(err) }()

	return s.articles(ctx, id)
}

func (s *Service) articles(ctx context.Context, id uuid.UUID) ([]*entity.Article, error) {
	if _, err := s.get(ctx, id); err != nil {
		return nil, err
	}

	start := time.Now()
	articles, err := s.ArticleRepo.ListByMagazine(ctx, id)
	metrics.RecordQueryDuration("magazine_articles", time.Since(start))
	if err != nil {
		return nil, fmt.Errorf("list articles by magazine: %w", err)
	}
	return articles, nil
}

// Contributors returns the distinct authors who have written for the magazine,
// in the order they first appear.
func (s *Service) Contributors(ctx context.Context, id uuid.UUID) (_ []*entity.Author, err error) {
	ctx, done := observability.Start(ctx, "magazine.Contributors", attribute.String("magazine_id", id.String()))
	defer func() { done(err) }()

	articles, err := s.articles(ctx, id)
	if err != nil {
		return nil, err
	}
	authors, _ := tallyAuthors(articles)
	return authors, nil
}

// ArticleTitles returns the titles of the magazine's articles in registration order.
// A magazine without articles gets an empty slice.
func (s *Service) ArticleTitles(ctx context.Context, id uuid.UUID) (_ []string, err error) {
	ctx, done := observability.Start(ctx, "magazine.ArticleTitles", attribute.String("magazine_id", id.String()))
	defer func() { done(err) }()

	articles, err := s.articles(ctx, id)
	if err != nil {
		return nil, err
	}
	titles := make([]string, 0, len(articles))
	for _, a := range articles {
		titles = append(titles, a.Title())
	}
	return titles, nil
}

// ContributingAuthors returns the authors with at least two articles in the
// magazine, in the order they first appear. Returns an empty slice if none qualify.
func (s *Service) ContributingAuthors(ctx context.Context, id uuid.UUID) (_ []*entity.Author, err error) {
	ctx, done := observability.Start(ctx, "magazine.ContributingAuthors", attribute.String("magazine_id", id.String()))
	defer func() { done(err) }()

	articles, err := s.articles(ctx, id)
	if err != nil {
		return nil, err
	}
	authors, counts := tallyAuthors(articles)

	contributing := make([]*entity.Author, 0, len(authors))
	for _, a := range authors {
		if counts[a.ID()] >= contributingThreshold {
			contributing = append(contributing, a)
		}
	}
	return contributing, nil
}

// tallyAuthors returns the distinct authors in first-appearance order and
// their article counts.
func tallyAuthors(articles []*entity.Article) ([]*entity.Author, map[uuid.UUID]int) {
	counts := make(map[uuid.UUID]int, len(articles))
	authors := make([]*entity.Author, 0, len(articles))
	for _, a := range articles {
		author := a.Author()
		if counts[author.ID()] == 0 {
			authors = append(authors, author)
		}
		counts[author.ID()]++
	}
	return authors, counts
}

// ArticleCounts returns every registered magazine with its article count, in
// registration order.
func (s *Service) ArticleCounts(ctx context.Context) (_ []ArticleCount, err error) {
	ctx, done := observability.Start(ctx, "magazine.ArticleCounts")
	defer func() { done(err) }()

	return s.articleCounts(ctx)
}

func (s *Service) articleCounts(ctx context.Context) ([]ArticleCount, error) {
	magazines, err := s.MagazineRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list magazines: %w", err)
	}
	articles, err := s.ArticleRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}

	byMagazine := make(map[uuid.UUID]int, len(magazines))
	for _, a := range articles {
		byMagazine[a.Magazine().ID()]++
	}

	counts := make([]ArticleCount, 0, len(magazines))
	for _, m := range magazines {
		counts = append(counts, ArticleCount{Magazine: m, Articles: byMagazine[m.ID()]})
	}
	return counts, nil
}

// TopPublisher returns the registered magazine with the most articles.
// Ties go to the magazine registered first; if every magazine is empty the
// first registered magazine is returned. Returns ErrNoMagazines if none exist.
func (s *Service) TopPublisher(ctx context.Context) (_ *entity.Magazine, err error) {
	ctx, done := observability.Start(ctx, "magazine.TopPublisher")
	defer func() { done(err) }()

	start := time.Now()
	counts, err := s.articleCounts(ctx)
	metrics.RecordQueryDuration("top_publisher", time.Since(start))
	if err != nil {
		return nil, err
	}
	if len(counts) == 0 {
		return nil, ErrNoMagazines
	}

	top := counts[0]
	for _, c := range counts[1:] {
		if c.Articles > top.Articles {
			top = c
		}
	}
	return top.Magazine, nil
}
