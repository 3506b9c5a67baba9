package update

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/lazylist/internal/outline"
	"github.com/sandeepkv93/lazylist/internal/views"
)

func (m *Model) initBubbleComponents() {
	m.editor = textarea.New()
	m.editor.ShowLineNumbers = false
	m.editor.Placeholder = "[_] open task, [x] done task, three blank lines start a new task"
	m.editor.CharLimit = 0
	m.editor.MaxHeight = 0
	m.editor.Focus()

	m.commandInput = textinput.New()
	m.commandInput.Prompt = "/"
	m.commandInput.CharLimit = 256
	m.commandInput.Width = 48

	m.helpModel = help.New()
	m.sideViewport = viewport.New(m.paneWidth-4, m.editorHeight)
	m.layout()
}

func (m *Model) layout() {
	m.editor.SetWidth(m.paneWidth - 2)
	m.editor.SetHeight(m.editorHeight)
	m.sideViewport.Width = m.paneWidth - 2
	m.sideViewport.Height = m.editorHeight - 1
}

func (m *Model) resize(width, height int) {
	if width > 0 {
		m.paneWidth = max(20, width/2-2)
	}
	if height > 0 {
		m.editorHeight = max(5, height-8)
	}
	m.layout()
	m.refreshSidePane()
}

// handleEditorKey forwards msg to the textarea and reparses the buffer when
// the key changed it.
func (m Model) handleEditorKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "pgup", "pgdown":
		var cmd tea.Cmd
		m.sideViewport, cmd = m.sideViewport.Update(msg)
		return m, cmd
	}
	before := m.editor.Value()
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	if after := m.editor.Value(); after != before {
		m.applyEdit(after)
	}
	return m, cmd
}

// applyEdit reparses text and puts the canonical rendering back in the
// editor when it differs from what was typed.
func (m *Model) applyEdit(text string) {
	m.Items = outline.Parse(text)
	m.Dirty = true
	canonical := editorText(outline.Serialize(m.Items))
	if canonical != text {
		m.logger.Debug("buffer normalized", "items", len(m.Items), "typed_lines", strings.Count(text, "\n")+1, "canonical_lines", strings.Count(canonical, "\n")+1)
		m.editor.SetValue(canonical)
	}
	m.refreshSidePane()
}

// loadBuffer replaces the whole buffer without marking it dirty.
func (m *Model) loadBuffer(text string) {
	m.Items = outline.Parse(text)
	m.editor.SetValue(editorText(outline.Serialize(m.Items)))
	m.Dirty = false
	m.refreshSidePane()
}

// replaceItems swaps in an edited list and redisplays it.
func (m *Model) replaceItems(items outline.List) {
	m.Items = items
	m.editor.SetValue(editorText(outline.Serialize(items)))
	m.Dirty = true
	m.refreshSidePane()
}

func (m *Model) cyclePane() {
	if m.Pane == PaneDebug {
		m.Pane = PanePreview
	} else {
		m.Pane = PaneDebug
	}
	m.refreshSidePane()
}

func (m *Model) refreshSidePane() {
	var content string
	switch m.Pane {
	case PanePreview:
		content = views.RenderMarkdown(outline.Markdown(m.Items), m.sideViewport.Width)
		if content == "" {
			content = "(nothing to preview)"
		}
	case PaneDocuments:
		rows := make([]views.DocumentRow, 0, len(m.Documents))
		for _, doc := range m.Documents {
			rows = append(rows, views.DocumentRow{Title: doc.Title, UpdatedAt: doc.UpdatedAt, Current: doc.ID == m.Document.ID})
		}
		content = views.RenderDocumentList(rows)
	default:
		dump, err := outline.Dump(m.Items, m.DumpFormat)
		if err != nil {
			m.logger.Error("debug dump failed", "format", m.DumpFormat, "err", err)
			content = err.Error()
		} else {
			content = dump
		}
	}
	m.sideViewport.SetContent(content)
}

// editorText converts serialized line breaks to the textarea's own.
func editorText(serialized string) string {
	return strings.ReplaceAll(serialized, outline.LineBreak, "\n")
}
