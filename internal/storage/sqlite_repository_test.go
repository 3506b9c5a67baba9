package storage

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"time"
)

func setupRepo(t *testing.T) *SQLiteRepository {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "lazylist-test.db")
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := MigrateUp(db); err != nil {
		t.Fatalf("migrate up: %v", err)
	}

	repo, err := NewSQLiteRepository(db)
	if err != nil {
		t.Fatalf("new repo: %v", err)
	}
	return repo
}

func parseRFC3339(t *testing.T, value string) time.Time {
	t.Helper()
	out, err := time.Parse(time.RFC3339, value)
	if err != nil {
		t.Fatalf("parse time: %v", err)
	}
	return out
}

func TestDocumentCRUD(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()
	created := parseRFC3339(t, "2026-02-09T12:00:00Z")

	doc := Document{
		ID:        NewDocumentID(created),
		Title:     "groceries",
		Body:      "[_]buy milk\r\n[x]eggs",
		CreatedAt: created,
		UpdatedAt: created,
	}
	if err := repo.CreateDocument(ctx, doc); err != nil {
		t.Fatalf("create document: %v", err)
	}

	got, err := repo.GetDocument(ctx, doc.ID)
	if err != nil {
		t.Fatalf("get document: %v", err)
	}
	if got.Title != doc.Title || got.Body != doc.Body || !got.CreatedAt.Equal(created) {
		t.Fatalf("unexpected document: %#v", got)
	}

	doc.Body = "[x]buy milk"
	doc.UpdatedAt = created.Add(time.Hour)
	if err := repo.UpdateDocument(ctx, doc); err != nil {
		t.Fatalf("update document: %v", err)
	}
	byTitle, err := repo.GetDocumentByTitle(ctx, "groceries")
	if err != nil {
		t.Fatalf("get by title: %v", err)
	}
	if byTitle.Body != "[x]buy milk" || !byTitle.UpdatedAt.Equal(doc.UpdatedAt) {
		t.Fatalf("unexpected updated document: %#v", byTitle)
	}

	if err := repo.DeleteDocument(ctx, doc.ID); err != nil {
		t.Fatalf("delete document: %v", err)
	}
	if _, err := repo.GetDocument(ctx, doc.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found after delete, got %v", err)
	}
	if err := repo.DeleteDocument(ctx, doc.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found on second delete, got %v", err)
	}
	if err := repo.UpdateDocument(ctx, doc); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found on update, got %v", err)
	}
}

func TestDocumentTitleRules(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()
	now := parseRFC3339(t, "2026-02-09T12:00:00Z")

	if err := repo.CreateDocument(ctx, Document{ID: "doc-1", Title: "  ", CreatedAt: now, UpdatedAt: now}); !errors.Is(err, ErrEmptyTitle) {
		t.Fatalf("expected empty title error, got %v", err)
	}
	if err := repo.CreateDocument(ctx, Document{ID: "doc-1", Title: "plan", CreatedAt: now, UpdatedAt: now}); err != nil {
		t.Fatalf("create document: %v", err)
	}
	if err := repo.CreateDocument(ctx, Document{ID: "doc-2", Title: "plan", CreatedAt: now, UpdatedAt: now}); !errors.Is(err, ErrConflict) {
		t.Fatalf("expected conflict on duplicate title, got %v", err)
	}
}

func TestListDocuments(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()
	base := parseRFC3339(t, "2026-02-09T12:00:00Z")

	titles := []string{"work_plan", "workout", "home"}
	for i, title := range titles {
		at := base.Add(time.Duration(i) * time.Minute)
		if err := repo.CreateDocument(ctx, Document{ID: NewDocumentID(at), Title: title, CreatedAt: at, UpdatedAt: at}); err != nil {
			t.Fatalf("create %s: %v", title, err)
		}
	}

	all, err := repo.ListDocuments(ctx, DocumentListFilter{})
	if err != nil {
		t.Fatalf("list documents: %v", err)
	}
	if len(all) != 3 || all[0].Title != "home" || all[2].Title != "work_plan" {
		t.Fatalf("unexpected order: %#v", all)
	}

	prefixed, err := repo.ListDocuments(ctx, DocumentListFilter{TitlePrefix: "work_"})
	if err != nil {
		t.Fatalf("list with prefix: %v", err)
	}
	if len(prefixed) != 1 || prefixed[0].Title != "work_plan" {
		t.Fatalf("expected literal underscore match, got %#v", prefixed)
	}

	paged, err := repo.ListDocuments(ctx, DocumentListFilter{Offset: 1})
	if err != nil {
		t.Fatalf("list with offset: %v", err)
	}
	if len(paged) != 2 || paged[0].Title != "workout" {
		t.Fatalf("unexpected offset page: %#v", paged)
	}

	limited, err := repo.ListDocuments(ctx, DocumentListFilter{Limit: 1})
	if err != nil {
		t.Fatalf("list with limit: %v", err)
	}
	if len(limited) != 1 {
		t.Fatalf("expected one document, got %d", len(limited))
	}
}

func TestNewDocumentIDSortsByTime(t *testing.T) {
	early := NewDocumentID(parseRFC3339(t, "2026-02-09T12:00:00Z"))
	late := NewDocumentID(parseRFC3339(t, "2026-02-09T12:00:01Z"))
	if len(early) != 26 || early >= late {
		t.Fatalf("unexpected ids: %s %s", early, late)
	}
}

func TestOpenSQLiteMigrates(t *testing.T) {
	repo, err := OpenSQLite(filepath.Join(t.TempDir(), "open.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	defer repo.Close()

	docs, err := repo.ListDocuments(t.Context(), DocumentListFilter{})
	if err != nil {
		t.Fatalf("list on fresh db: %v", err)
	}
	if len(docs) != 0 {
		t.Fatalf("expected empty store, got %d", len(docs))
	}
}
