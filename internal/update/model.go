package update

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/log"
	"github.com/sandeepkv93/lazylist/internal/outline"
	"github.com/sandeepkv93/lazylist/internal/storage"
)

type SidePane string

const (
	PaneDebug     SidePane = "debug"
	PanePreview   SidePane = "preview"
	PaneDocuments SidePane = "documents"
)

func parseSidePane(raw string) (SidePane, error) {
	switch p := SidePane(strings.ToLower(strings.TrimSpace(raw))); p {
	case PaneDebug, PanePreview:
		return p, nil
	case "":
		return PaneDebug, nil
	default:
		return "", fmt.Errorf("config: unknown side pane %q", raw)
	}
}

type StatusBar struct {
	Text    string
	IsError bool
}

type GlobalKeyMap struct {
	Palette   key.Binding
	Save      key.Binding
	CyclePane key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func DefaultKeyMap() GlobalKeyMap {
	return GlobalKeyMap{
		Palette:   key.NewBinding(key.WithKeys("ctrl+p"), key.WithHelp("ctrl+p", "command palette")),
		Save:      key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save document")),
		CyclePane: key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "switch side pane")),
		Help:      key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "toggle help")),
		Quit:      key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

type CommandPaletteState struct {
	Active bool
	Input  string
}

// DocumentRef identifies the saved document the buffer belongs to. Both
// fields are empty for an unsaved buffer.
type DocumentRef struct {
	ID    string
	Title string
}

type Clipboard interface {
	WriteAll(text string) error
}

type SystemClipboard struct{}

func (SystemClipboard) WriteAll(text string) error { return clipboard.WriteAll(text) }

type NoopClipboard struct{}

func (NoopClipboard) WriteAll(string) error { return nil }

// Dependencies are the collaborators a Model talks to. Nil fields fall back
// to inert defaults.
type Dependencies struct {
	Store     storage.Repository
	Clipboard Clipboard
	Logger    *log.Logger
}

type Model struct {
	Items       outline.List
	Document    DocumentRef
	Dirty       bool
	Pane        SidePane
	DumpFormat  outline.DumpFormat
	Documents   []storage.Document
	Palette     CommandPaletteState
	HelpVisible bool
	Status      StatusBar
	Keys        GlobalKeyMap
	Quitting    bool
	LastError   error

	store         storage.Repository
	clipboard     Clipboard
	logger        *log.Logger
	storeTimeout  time.Duration
	stateFilePath string
	now           func() time.Time

	editor       textarea.Model
	commandInput textinput.Model
	sideViewport viewport.Model
	helpModel    help.Model
	paneWidth    int
	editorHeight int
}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type ClearStatusMsg struct{}

type AppErrorMsg struct {
	Err error
}

// LoadTextMsg replaces the buffer with Text, as if it had been pasted over
// the whole editor.
type LoadTextMsg struct {
	Text string
}

func NewModel() Model {
	cfg := DefaultRuntimeConfig()
	m := Model{
		Items:        outline.Empty(),
		Pane:         PaneDebug,
		DumpFormat:   outline.DumpJSON,
		Keys:         DefaultKeyMap(),
		clipboard:    NoopClipboard{},
		logger:       log.New(io.Discard),
		storeTimeout: cfg.StoreTimeout(),
		now:          func() time.Time { return time.Now().UTC() },
		paneWidth:    cfg.PaneWidth,
		editorHeight: cfg.EditorHeight,
	}
	m.initBubbleComponents()
	m.refreshSidePane()
	return m
}

// NewModelWithConfig expects cfg to have passed Validate; invalid pane or
// dump settings fall back to defaults.
func NewModelWithConfig(deps Dependencies, cfg RuntimeConfig) Model {
	m := NewModel()
	m.store = deps.Store
	if deps.Clipboard != nil {
		m.clipboard = deps.Clipboard
	}
	if deps.Logger != nil {
		m.logger = deps.Logger
	}
	if format, err := outline.ParseDumpFormat(cfg.DumpFormat); err == nil {
		m.DumpFormat = format
	}
	if pane, err := parseSidePane(cfg.SidePane); err == nil {
		m.Pane = pane
	}
	if cfg.StoreTimeoutMS > 0 {
		m.storeTimeout = cfg.StoreTimeout()
	}
	if cfg.PaneWidth > 0 {
		m.paneWidth = cfg.PaneWidth
	}
	if cfg.EditorHeight > 0 {
		m.editorHeight = cfg.EditorHeight
	}
	m.stateFilePath = strings.TrimSpace(cfg.StateFilePath)
	m.layout()

	start := strings.TrimSpace(cfg.StartDocument)
	if start == "" && m.stateFilePath != "" {
		state, err := loadSessionState(m.stateFilePath)
		if err != nil {
			m.logger.Warn("session state unreadable", "path", m.stateFilePath, "err", err)
		}
		start = state.LastDocument
	}
	if start != "" && m.store != nil {
		if _, err := m.openDocument(start); err != nil {
			m.logger.Warn("start document not opened", "title", start, "err", err)
			m.Status = StatusBar{Text: err.Error(), IsError: true}
		}
	}
	m.refreshSidePane()
	return m
}

// Buffer returns the editor contents as displayed.
func (m Model) Buffer() string {
	return m.editor.Value()
}
