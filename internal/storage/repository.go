package storage

import (
	"context"
	"crypto/rand"
	"errors"
	"time"

	"github.com/oklog/ulid/v2"
)

var (
	ErrNotFound   = errors.New("storage: not found")
	ErrConflict   = errors.New("storage: title already in use")
	ErrEmptyTitle = errors.New("storage: title is required")
)

// Document is a saved editor buffer. Body holds the raw buffer text as the
// editor displayed it; the parsed outline is never stored.
type Document struct {
	ID        string
	Title     string
	Body      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type DocumentListFilter struct {
	TitlePrefix string
	Limit       int
	Offset      int
}

type Repository interface {
	CreateDocument(ctx context.Context, in Document) error
	GetDocument(ctx context.Context, id string) (Document, error)
	GetDocumentByTitle(ctx context.Context, title string) (Document, error)
	UpdateDocument(ctx context.Context, in Document) error
	DeleteDocument(ctx context.Context, id string) error
	ListDocuments(ctx context.Context, filter DocumentListFilter) ([]Document, error)
}

// NewDocumentID returns a ULID so ids sort by creation time.
func NewDocumentID(now time.Time) string {
	return ulid.MustNew(ulid.Timestamp(now), ulid.Monotonic(rand.Reader, 0)).String()
}
