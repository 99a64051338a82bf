package fixtures_test

import (
	"context"
	"testing"

	"magazine-catalog/tests/fixtures"
)

func TestSeed(t *testing.T) {
	c := fixtures.NewCatalog(t)
	s := c.Seed(t)

	n, err := c.Articles.Count(context.Background())
	if err != nil {
		t.Fatalf("Count err=%v", err)
	}
	if n != 3 {
		t.Fatalf("expected 3 articles, got %d", n)
	}
	if s.Carry.Name() != "Carry Bradshaw" || s.Vogue.Name() != "Vogue" || s.AD.Name() != "AD" {
		t.Fatalf("unexpected sample %+v", s)
	}
}

func TestNewCatalog_Isolated(t *testing.T) {
	first := fixtures.NewCatalog(t)
	first.Seed(t)

	second := fixtures.NewCatalog(t)
	n, err := second.Articles.Count(context.Background())
	if err != nil {
		t.Fatalf("Count err=%v", err)
	}
	if n != 0 {
		t.Fatalf("expected an empty catalog, got %d articles", n)
	}
}
