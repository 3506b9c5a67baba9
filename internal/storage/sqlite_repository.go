package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mattn/go-sqlite3"
)

const sqliteTimeLayout = time.RFC3339Nano

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) (*SQLiteRepository, error) {
	if db == nil {
		return nil, errors.New("storage: nil db")
	}
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}
	return &SQLiteRepository{db: db}, nil
}

// OpenSQLite opens the database at path and applies pending migrations.
func OpenSQLite(path string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := MigrateUp(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	repo, err := NewSQLiteRepository(db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return repo, nil
}

func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

func (r *SQLiteRepository) CreateDocument(ctx context.Context, in Document) error {
	if strings.TrimSpace(in.Title) == "" {
		return ErrEmptyTitle
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO documents (id, title, body, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)`,
		in.ID, in.Title, in.Body, mustTime(in.CreatedAt), mustTime(in.UpdatedAt),
	)
	return translateError(err)
}

func (r *SQLiteRepository) GetDocument(ctx context.Context, id string) (Document, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, title, body, created_at, updated_at
		FROM documents WHERE id = ?`, id)
	return scanDocumentRow(row)
}

func (r *SQLiteRepository) GetDocumentByTitle(ctx context.Context, title string) (Document, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, title, body, created_at, updated_at
		FROM documents WHERE title = ?`, title)
	return scanDocumentRow(row)
}

func (r *SQLiteRepository) UpdateDocument(ctx context.Context, in Document) error {
	if strings.TrimSpace(in.Title) == "" {
		return ErrEmptyTitle
	}
	res, err := r.db.ExecContext(ctx, `
		UPDATE documents
		SET title = ?, body = ?, updated_at = ?
		WHERE id = ?`,
		in.Title, in.Body, mustTime(in.UpdatedAt), in.ID,
	)
	if err != nil {
		return translateError(err)
	}
	return checkRowsAffected(res)
}

func (r *SQLiteRepository) DeleteDocument(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM documents WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return checkRowsAffected(res)
}

func (r *SQLiteRepository) ListDocuments(ctx context.Context, filter DocumentListFilter) ([]Document, error) {
	query := `SELECT id, title, body, created_at, updated_at FROM documents`
	args := make([]any, 0, 3)
	if filter.TitlePrefix != "" {
		query += ` WHERE title LIKE ? ESCAPE '\'`
		args = append(args, escapeLike(filter.TitlePrefix)+"%")
	}
	query += ` ORDER BY updated_at DESC, id DESC`
	query += applyPagination(&args, filter.Limit, filter.Offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Document, 0)
	for rows.Next() {
		doc, scanErr := scanDocument(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		out = append(out, doc)
	}
	return out, rows.Err()
}

func mustTime(v time.Time) string {
	return v.UTC().Format(sqliteTimeLayout)
}

func parseRequiredTime(v string) (time.Time, error) {
	return time.Parse(sqliteTimeLayout, v)
}

func applyPagination(args *[]any, limit, offset int) string {
	sql := ""
	if limit > 0 {
		sql += " LIMIT ?"
		*args = append(*args, limit)
	} else if offset > 0 {
		sql += " LIMIT -1"
	}
	if offset > 0 {
		sql += " OFFSET ?"
		*args = append(*args, offset)
	}
	return sql
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

type scanner interface {
	Scan(dest ...any) error
}

func scanDocumentRow(row *sql.Row) (Document, error) {
	doc, err := scanDocument(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Document{}, ErrNotFound
		}
		return Document{}, err
	}
	return doc, nil
}

func scanDocument(s scanner) (Document, error) {
	var out Document
	var created, updated string
	if err := s.Scan(&out.ID, &out.Title, &out.Body, &created, &updated); err != nil {
		return Document{}, err
	}
	createdAt, err := parseRequiredTime(created)
	if err != nil {
		return Document{}, err
	}
	updatedAt, err := parseRequiredTime(updated)
	if err != nil {
		return Document{}, err
	}
	out.CreatedAt = createdAt
	out.UpdatedAt = updatedAt
	return out, nil
}

func checkRowsAffected(res sql.Result) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func translateError(err error) error {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
		return fmt.Errorf("%w: %v", ErrConflict, err)
	}
	return err
}
