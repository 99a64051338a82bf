package entity

import "github.com/google/uuid"

// Article joins exactly one Author and one Magazine under a title.
type Article struct {
	id       uuid.UUID
	title    string
	author   *Author
	magazine *Magazine
}

// NewArticle creates an Article with a fresh identity.
// Returns a ValidationError if author or magazine is nil or the title is not 5-50 characters.
// Construction does not register the article anywhere; that is the repository's job.
func NewArticle(author *Author, magazine *Magazine, title string) (*Article, error) {
	if author == nil {
		return nil, &ValidationError{Field: "author", Message: "is required"}
	}
	if magazine == nil {
		return nil, &ValidationError{Field: "magazine", Message: "is required"}
	}
	if err := ValidateTitle(title); err != nil {
		return nil, err
	}
	return &Article{
		id:       uuid.New(),
		title:    title,
		author:   author,
		magazine: magazine,
	}, nil
}

// ID returns the article's identity.
func (a *Article) ID() uuid.UUID { return a.id }

// Title returns the article's title.
func (a *Article) Title() string { return a.title }

// Author returns the article's author.
func (a *Article) Author() *Author { return a.author }

// Magazine returns the magazine the article appears in.
func (a *Article) Magazine() *Magazine { return a.magazine }

// SetTitle replaces the title, applying the same bounds as NewArticle.
func (a *Article) SetTitle(title string) error {
	if err := ValidateTitle(title); err != nil {
		return err
	}
	a.title = title
	return nil
}

// SetAuthor reassigns the article to another author.
func (a *Article) SetAuthor(author *Author) error {
	if author == nil {
		return &ValidationError{Field: "author", Message: "is required"}
	}
	a.author = author
	return nil
}

// SetMagazine moves the article to another magazine.
func (a *Article) SetMagazine(magazine *Magazine) error {
	if magazine == nil {
		return &ValidationError{Field: "magazine", Message: "is required"}
	}
	a.magazine = magazine
	return nil
}
