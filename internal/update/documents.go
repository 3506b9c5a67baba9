package update

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sandeepkv93/lazylist/internal/commands"
	"github.com/sandeepkv93/lazylist/internal/outline"
	"github.com/sandeepkv93/lazylist/internal/storage"
)

const documentListLimit = 50

var errNoStore = &commands.CommandError{Code: commands.ErrCodeHandlerMissing, Message: "document storage is not configured"}

func (m *Model) storeContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), m.storeTimeout)
}

// saveDocument writes the canonical buffer. An empty title saves over the
// current document; a new title saves a new copy.
func (m *Model) saveDocument(title string) (storage.Document, error) {
	if m.store == nil {
		return storage.Document{}, errNoStore
	}
	title = strings.TrimSpace(title)
	if title == "" {
		title = m.Document.Title
	}
	if title == "" {
		return storage.Document{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: "save requires a title for a new document"}
	}

	ctx, cancel := m.storeContext()
	defer cancel()
	now := m.now()
	doc := storage.Document{Title: title, Body: outline.Serialize(m.Items), UpdatedAt: now}
	if m.Document.ID != "" && title == m.Document.Title {
		doc.ID = m.Document.ID
		if err := m.store.UpdateDocument(ctx, doc); err != nil {
			return storage.Document{}, fmt.Errorf("save %q: %w", title, err)
		}
	} else {
		doc.ID = storage.NewDocumentID(now)
		doc.CreatedAt = now
		if err := m.store.CreateDocument(ctx, doc); err != nil {
			return storage.Document{}, fmt.Errorf("save %q: %w", title, err)
		}
	}
	m.Document = DocumentRef{ID: doc.ID, Title: doc.Title}
	m.Dirty = false
	m.rememberSession()
	m.logger.Debug("document saved", "id", doc.ID, "title", doc.Title, "items", len(m.Items))
	return doc, nil
}

func (m *Model) openDocument(title string) (storage.Document, error) {
	if m.store == nil {
		return storage.Document{}, errNoStore
	}
	ctx, cancel := m.storeContext()
	defer cancel()
	doc, err := m.store.GetDocumentByTitle(ctx, title)
	if errors.Is(err, storage.ErrNotFound) {
		return storage.Document{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: fmt.Sprintf("no document titled %q", title)}
	}
	if err != nil {
		return storage.Document{}, fmt.Errorf("open %q: %w", title, err)
	}
	m.Document = DocumentRef{ID: doc.ID, Title: doc.Title}
	m.loadBuffer(doc.Body)
	m.rememberSession()
	return doc, nil
}

func (m *Model) deleteDocument(title string) error {
	if m.store == nil {
		return errNoStore
	}
	ctx, cancel := m.storeContext()
	defer cancel()
	doc, err := m.store.GetDocumentByTitle(ctx, title)
	if errors.Is(err, storage.ErrNotFound) {
		return &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: fmt.Sprintf("no document titled %q", title)}
	}
	if err != nil {
		return fmt.Errorf("delete %q: %w", title, err)
	}
	if err := m.store.DeleteDocument(ctx, doc.ID); err != nil {
		return fmt.Errorf("delete %q: %w", title, err)
	}
	if doc.ID == m.Document.ID {
		m.Document = DocumentRef{}
		m.Dirty = true
		m.rememberSession()
	}
	return nil
}

func (m *Model) listDocuments() error {
	if m.store == nil {
		return errNoStore
	}
	ctx, cancel := m.storeContext()
	defer cancel()
	docs, err := m.store.ListDocuments(ctx, storage.DocumentListFilter{Limit: documentListLimit})
	if err != nil {
		return fmt.Errorf("list documents: %w", err)
	}
	m.Documents = docs
	return nil
}
