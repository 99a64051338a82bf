// Package report builds a read-only snapshot of the catalog and encodes it
// for display.
package report

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"magazine-catalog/internal/domain/entity"
	"magazine-catalog/internal/observability"
	"magazine-catalog/internal/usecase/author"
	"magazine-catalog/internal/usecase/magazine"
)

// Supported report formats.
const (
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// ErrUnsupportedFormat is returned by Encode for an unknown format.
var ErrUnsupportedFormat = errors.New("unsupported report format")

// Report is a snapshot of every magazine and author in the catalog.
type Report struct {
	TopPublisher string           `yaml:"top_publisher" json:"top_publisher"`
	Magazines    []MagazineReport `yaml:"magazines" json:"magazines"`
	Authors      []AuthorReport   `yaml:"authors" json:"authors"`
}

// MagazineReport describes one magazine.
type MagazineReport struct {
	Name                string   `yaml:"name" json:"name"`
	Category            string   `yaml:"category" json:"category"`
	ArticleTitles       []string `yaml:"article_titles" json:"article_titles"`
	Contributors        []string `yaml:"contributors" json:"contributors"`
	ContributingAuthors []string `yaml:"contributing_authors" json:"contributing_authors"`
}

// AuthorReport describes one author.
type AuthorReport struct {
	Name          string   `yaml:"name" json:"name"`
	ArticleTitles []string `yaml:"article_titles" json:"article_titles"`
	Magazines     []string `yaml:"magazines" json:"magazines"`
	TopicAreas    []string `yaml:"topic_areas" json:"topic_areas"`
}

// Service builds reports from the author and magazine use cases.
type Service struct {
	Authors   *author.Service
	Magazines *magazine.Service
}

// Build collects the current state of the catalog.
// TopPublisher is empty when no magazine is registered.
func (s *Service) Build(ctx context.Context) (_ *Report, err error) {
	ctx, done := observability.Start(ctx, "report.Build")
	defer func() { done(err) }()

	r := &Report{
		Magazines: []MagazineReport{},
		Authors:   []AuthorReport{},
	}

	top, err := s.Magazines.TopPublisher(ctx)
	switch {
	case errors.Is(err, magazine.ErrNoMagazines):
	case err != nil:
		return nil, fmt.Errorf("top publisher: %w", err)
	default:
		r.TopPublisher = top.Name()
	}

	magazines, err := s.Magazines.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, m := range magazines {
		mr, err := s.magazineReport(ctx, m)
		if err != nil {
			return nil, err
		}
		r.Magazines = append(r.Magazines, mr)
	}

	authors, err := s.Authors.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, a := range authors {
		ar, err := s.authorReport(ctx, a)
		if err != nil {
			return nil, err
		}
		r.Authors = append(r.Authors, ar)
	}
	return r, nil
}

func (s *Service) magazineReport(ctx context.Context, m *entity.Magazine) (MagazineReport, error) {
	titles, err := s.Magazines.ArticleTitles(ctx, m.ID())
	if err != nil {
		return MagazineReport{}, fmt.Errorf("article titles of %s: %w", m.Name(), err)
	}
	contributors, err := s.Magazines.Contributors(ctx, m.ID())
	if err != nil {
		return MagazineReport{}, fmt.Errorf("contributors of %s: %w", m.Name(), err)
	}
	contributing, err := s.Magazines.ContributingAuthors(ctx, m.ID())
	if err != nil {
		return MagazineReport{}, fmt.Errorf("contributing authors of %s: %w", m.Name(), err)
	}
	return MagazineReport{
		Name:                m.Name(),
		Category:            m.Category(),
		ArticleTitles:       titles,
		Contributors:        authorNames(contributors),
		ContributingAuthors: authorNames(contributing),
	}, nil
}

func (s *Service) authorReport(ctx context.Context, a *entity.Author) (AuthorReport, error) {
	articles, err := s.Authors.Articles(ctx, a.ID())
	if err != nil {
		return AuthorReport{}, fmt.Errorf("articles of %s: %w", a.Name(), err)
	}
	magazines, err := s.Authors.Magazines(ctx, a.ID())
	if err != nil {
		return AuthorReport{}, fmt.Errorf("magazines of %s: %w", a.Name(), err)
	}
	topics, err := s.Authors.TopicAreas(ctx, a.ID())
	if err != nil {
		return AuthorReport{}, fmt.Errorf("topic areas of %s: %w", a.Name(), err)
	}

	titles := make([]string, 0, len(articles))
	for _, art := range articles {
		titles = append(titles, art.Title())
	}
	magazineNames := make([]string, 0, len(magazines))
	for _, m := range magazines {
		magazineNames = append(magazineNames, m.Name())
	}
	return AuthorReport{
		Name:          a.Name(),
		ArticleTitles: titles,
		Magazines:     magazineNames,
		TopicAreas:    topics,
	}, nil
}

func authorNames(authors []*entity.Author) []string {
	out := make([]string, 0, len(authors))
	for _, a := range authors {
		out = append(out, a.Name())
	}
	return out
}

// Encode writes r to w as YAML or JSON.
func Encode(w io.Writer, r *Report, format string) error {
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}
