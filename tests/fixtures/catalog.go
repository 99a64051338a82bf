// Package fixtures provides reusable catalog wiring and seed data for tests.
// Every Catalog owns a fresh store, so tests never share registry state.
package fixtures

import (
	"context"
	"testing"

	"magazine-catalog/internal/domain/entity"
	"magazine-catalog/internal/infra/adapter/persistence/memory"
	"magazine-catalog/internal/usecase/article"
	"magazine-catalog/internal/usecase/author"
	"magazine-catalog/internal/usecase/magazine"
)

// Catalog bundles a store with the services wired over it.
type Catalog struct {
	Store     *memory.Store
	Authors   *author.Service
	Magazines *magazine.Service
	Articles  *article.Service
}

// NewCatalog creates a Catalog over an empty store. The store is closed when the test ends.
func NewCatalog(tb testing.TB) *Catalog {
	tb.Helper()

	store := memory.NewStore()
	tb.Cleanup(func() { _ = store.Close() })

	authors := memory.NewAuthorRepo(store)
	magazines := memory.NewMagazineRepo(store)
	articles := memory.NewArticleRepo(store)

	return &Catalog{
		Store:     store,
		Authors:   &author.Service{AuthorRepo: authors, MagazineRepo: magazines, ArticleRepo: articles},
		Magazines: &magazine.Service{MagazineRepo: magazines, ArticleRepo: articles},
		Articles:  &article.Service{ArticleRepo: articles, AuthorRepo: authors, MagazineRepo: magazines},
	}
}

// Author registers an author or fails the test.
func (c *Catalog) Author(tb testing.TB, name string) *entity.Author {
	tb.Helper()
	a, err := c.Authors.Create(context.Background(), author.CreateInput{Name: name})
	if err != nil {
		tb.Fatalf("create author %q: %v", name, err)
	}
	return a
}

// Magazine registers a magazine or fails the test.
func (c *Catalog) Magazine(tb testing.TB, name, category string) *entity.Magazine {
	tb.Helper()
	m, err := c.Magazines.Create(context.Background(), magazine.CreateInput{Name: name, Category: category})
	if err != nil {
		tb.Fatalf("create magazine %q: %v", name, err)
	}
	return m
}

// Article registers an article through the direct creation path or fails the test.
func (c *Catalog) Article(tb testing.TB, a *entity.Author, m *entity.Magazine, title string) *entity.Article {
	tb.Helper()
	art, err := c.Articles.Create(context.Background(), article.CreateInput{
		AuthorID:   a.ID(),
		MagazineID: m.ID(),
		Title:      title,
	})
	if err != nil {
		tb.Fatalf("create article %q: %v", title, err)
	}
	return art
}

// Sample holds the entities created by Seed.
type Sample struct {
	Carry *entity.Author
	Vogue *entity.Magazine
	AD    *entity.Magazine
}

// Seed registers one author, two magazines and three articles:
// two in Vogue and one in AD, all by Carry Bradshaw.
func (c *Catalog) Seed(tb testing.TB) Sample {
	tb.Helper()
	s := Sample{
		Carry: c.Author(tb, "Carry Bradshaw"),
		Vogue: c.Magazine(tb, "Vogue", "Fashion"),
		AD:    c.Magazine(tb, "AD", "Architecture"),
	}
	c.Article(tb, s.Carry, s.Vogue, "How to wear a tutu with style")
	c.Article(tb, s.Carry, s.Vogue, "Dating life in NYC")
	c.Article(tb, s.Carry, s.AD, "2023 Eccentric Design Trends")
	return s
}
