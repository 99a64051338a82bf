package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"magazine-catalog/internal/config"
	"magazine-catalog/internal/domain/entity"
	"magazine-catalog/internal/infra/adapter/persistence/memory"
	"magazine-catalog/internal/observability/logging"
	articleUC "magazine-catalog/internal/usecase/article"
	authorUC "magazine-catalog/internal/usecase/author"
	magazineUC "magazine-catalog/internal/usecase/magazine"
	"magazine-catalog/internal/usecase/report"
)

func main() {
	bootLogger := logging.New(os.Stderr, slog.LevelInfo, logging.FormatJSON)
	cfg, err := config.LoadFromEnv(bootLogger)
	if err != nil {
		bootLogger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	logger := logging.New(os.Stderr, logging.ParseLevel(cfg.LogLevel), cfg.LogFormat).
		With(slog.String("service", cfg.ServiceName))
	slog.SetDefault(logger)
	logger.Info("configuration loaded",
		slog.String("log_level", cfg.LogLevel),
		slog.String("log_format", cfg.LogFormat),
		slog.String("report_format", cfg.ReportFormat))

	if err := run(logging.WithLogger(context.Background(), logger), cfg, os.Stdout); err != nil {
		logger.Error("catalog run failed", slog.Any("error", err))
		os.Exit(1)
	}
}

// app holds the wired use-case services.
type app struct {
	authors   *authorUC.Service
	magazines *magazineUC.Service
	articles  *articleUC.Service
	reports   *report.Service
}

func newApp(store *memory.Store) *app {
	authorRepo := memory.NewAuthorRepo(store)
	magazineRepo := memory.NewMagazineRepo(store)
	articleRepo := memory.NewArticleRepo(store)

	authors := &authorUC.Service{AuthorRepo: authorRepo, MagazineRepo: magazineRepo, ArticleRepo: articleRepo}
	magazines := &magazineUC.Service{MagazineRepo: magazineRepo, ArticleRepo: articleRepo}
	return &app{
		authors:   authors,
		magazines: magazines,
		articles:  &articleUC.Service{ArticleRepo: articleRepo, AuthorRepo: authorRepo, MagazineRepo: magazineRepo},
		reports:   &report.Service{Authors: authors, Magazines: magazines},
	}
}

// run executes the sample scenario and writes the catalog report to out.
func run(ctx context.Context, cfg config.Config, out io.Writer) error {
	logger := logging.FromContext(ctx)

	store := memory.NewStore()
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("failed to close store", slog.Any("error", err))
		}
	}()

	a := newApp(store)
	if err := a.scenario(ctx, logger); err != nil {
		return err
	}

	r, err := a.reports.Build(ctx)
	if err != nil {
		return fmt.Errorf("build report: %w", err)
	}
	if err := report.Encode(out, r, cfg.ReportFormat); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return nil
}

func (a *app) scenario(ctx context.Context, logger *slog.Logger) error {
	// Magazine attributes are mutable within their limits.
	title, err := a.magazines.Create(ctx, magazineUC.CreateInput{Name: "Title", Category: "Technology"})
	if err != nil {
		return fmt.Errorf("create magazine: %w", err)
	}
	newName, newCategory := "New Title", "Science"
	if err := a.magazines.Update(ctx, magazineUC.UpdateInput{ID: title.ID(), Name: &newName, Category: &newCategory}); err != nil {
		return fmt.Errorf("update magazine: %w", err)
	}
	logger.Info("magazine updated", slog.String("name", title.Name()), slog.String("category", title.Category()))

	tooLong := "An unreasonably long magazine name"
	err = a.magazines.Update(ctx, magazineUC.UpdateInput{ID: title.ID(), Name: &tooLong})
	logRejected(logger, "magazine rename rejected", err)

	carry, err := a.authors.Create(ctx, authorUC.CreateInput{Name: "Carry Bradshaw"})
	if err != nil {
		return fmt.Errorf("create author: %w", err)
	}
	logger.Info("author created", slog.String("author", carry.String()))

	err = a.authors.Rename(ctx, carry.ID(), "New Name")
	logRejected(logger, "author rename rejected", err)

	vogue, err := a.magazines.Create(ctx, magazineUC.CreateInput{Name: "Vogue", Category: "Fashion"})
	if err != nil {
		return fmt.Errorf("create magazine: %w", err)
	}
	ad, err := a.magazines.Create(ctx, magazineUC.CreateInput{Name: "AD", Category: "Architecture"})
	if err != nil {
		return fmt.Errorf("create magazine: %w", err)
	}

	seed := []struct {
		magazine *entity.Magazine
		title    string
	}{
		{vogue, "How to wear a tutu with style"},
		{vogue, "Dating life in NYC"},
		{ad, "2023 Eccentric Design Trends"},
	}
	var first *entity.Article
	for _, s := range seed {
		art, err := a.articles.Create(ctx, articleUC.CreateInput{AuthorID: carry.ID(), MagazineID: s.magazine.ID(), Title: s.title})
		if err != nil {
			return fmt.Errorf("create article: %w", err)
		}
		if first == nil {
			first = art
		}
	}
	logger.Info("article created", slog.String("title", first.Title()))

	short := "Tiny"
	err = a.articles.Update(ctx, articleUC.UpdateInput{ID: first.ID(), Title: &short})
	logRejected(logger, "article retitle rejected", err)

	added, err := a.authors.AddArticle(ctx, authorUC.AddArticleInput{AuthorID: carry.ID(), MagazineID: ad.ID(), Title: "2024 Fashion Trends"})
	if err != nil {
		return fmt.Errorf("add article: %w", err)
	}
	logger.Info("article added", slog.String("title", added.Title()), slog.String("magazine", added.Magazine().Name()))

	topics, err := a.authors.TopicAreas(ctx, carry.ID())
	if err != nil {
		return fmt.Errorf("topic areas: %w", err)
	}
	logger.Info("author topic areas", slog.Any("topics", topics))

	top, err := a.magazines.TopPublisher(ctx)
	if err != nil {
		return fmt.Errorf("top publisher: %w", err)
	}
	logger.Info("top publisher", slog.String("magazine", top.String()))
	return nil
}

// logRejected logs an expected rejection. Unexpected errors are logged at error level.
func logRejected(logger *slog.Logger, msg string, err error) {
	switch {
	case err == nil:
		logger.Warn(msg+": change was accepted")
	case errors.Is(err, entity.ErrImmutableField), errors.Is(err, entity.ErrValidationFailed):
		logger.Info(msg, slog.String("reason", err.Error()))
	default:
		logger.Error(msg, slog.Any("error", err))
	}
}
