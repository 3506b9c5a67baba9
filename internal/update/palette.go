package update

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/lazylist/internal/commands"
	"github.com/sandeepkv93/lazylist/internal/outline"
)

func (m Model) handlePaletteKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "esc":
		m.closePalette()
		m.Status = StatusBar{Text: "command palette closed", IsError: false}
	case "enter":
		m.Palette.Input = m.commandInput.Value()
		m = m.executePaletteCommand()
	default:
		if msg.Type == tea.KeyRunes {
			m.commandInput.SetValue(m.commandInput.Value() + string(msg.Runes))
			m.Palette.Input = m.commandInput.Value()
			return m
		}
		var cmd tea.Cmd
		m.commandInput, cmd = m.commandInput.Update(msg)
		_ = cmd
		m.Palette.Input = m.commandInput.Value()
	}
	return m
}

func (m *Model) closePalette() {
	m.Palette.Active = false
	m.Palette.Input = ""
	m.commandInput.SetValue("")
	m.commandInput.Blur()
}

func (m Model) executePaletteCommand() Model {
	raw := strings.TrimSpace(m.Palette.Input)
	m.closePalette()
	cmd, err := commands.Parse(raw)
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m
	}
	return m.runCommand(cmd)
}

func (m Model) runCommand(cmd commands.Command) Model {
	res, err := commands.Execute(cmd, commands.Handlers{
		New: func() (commands.Result, error) {
			m.Document = DocumentRef{}
			m.loadBuffer("")
			return commands.Result{Message: "new buffer"}, nil
		},
		Save: func(a commands.SaveArgs) (commands.Result, error) {
			doc, err := m.saveDocument(a.Title)
			if err != nil {
				return commands.Result{}, err
			}
			return commands.Result{Message: fmt.Sprintf("saved %q", doc.Title)}, nil
		},
		Open: func(a commands.OpenArgs) (commands.Result, error) {
			doc, err := m.openDocument(a.Title)
			if err != nil {
				return commands.Result{}, err
			}
			return commands.Result{Message: fmt.Sprintf("opened %q (%d items)", doc.Title, len(m.Items))}, nil
		},
		Delete: func(a commands.DeleteArgs) (commands.Result, error) {
			if err := m.deleteDocument(a.Title); err != nil {
				return commands.Result{}, err
			}
			return commands.Result{Message: fmt.Sprintf("deleted %q", a.Title)}, nil
		},
		List: func() (commands.Result, error) {
			if err := m.listDocuments(); err != nil {
				return commands.Result{}, err
			}
			m.Pane = PaneDocuments
			m.refreshSidePane()
			return commands.Result{Message: fmt.Sprintf("%d saved document(s)", len(m.Documents))}, nil
		},
		Toggle: func(a commands.ToggleArgs) (commands.Result, error) {
			items, err := outline.Toggle(m.Items, a.Index)
			if err != nil {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: err.Error()}
			}
			m.replaceItems(items)
			return commands.Result{Message: fmt.Sprintf("item %d is now %s", a.Index, items[a.Index-1].Kind)}, nil
		},
		Copy: func() (commands.Result, error) {
			text := outline.Serialize(m.Items)
			if err := m.clipboard.WriteAll(text); err != nil {
				return commands.Result{}, fmt.Errorf("copy to clipboard: %w", err)
			}
			return commands.Result{Message: fmt.Sprintf("copied %d item(s)", len(m.Items))}, nil
		},
		Pane: func(a commands.PaneArgs) (commands.Result, error) {
			m.Pane = SidePane(a.Name)
			m.refreshSidePane()
			return commands.Result{Message: "side pane: " + a.Name}, nil
		},
	})
	if err != nil {
		m.LastError = err
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		m.logger.Warn("command failed", "command", cmd.Type, "err", err)
		return m
	}
	m.Status = StatusBar{Text: res.Message, IsError: false}
	m.logger.Info("command", "command", cmd.Type, "result", res.Message)
	return m
}
