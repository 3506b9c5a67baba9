package update

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/lazylist/internal/commands"
	"github.com/sandeepkv93/lazylist/internal/outline"
	"github.com/sandeepkv93/lazylist/internal/views"
)

func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(typed.Width, typed.Height)
		return m, nil
	case tea.KeyMsg:
		if m.Palette.Active {
			if key.Matches(typed, m.Keys.Quit) {
				m.Quitting = true
				return m, tea.Quit
			}
			return m.handlePaletteKey(typed), nil
		}

		switch {
		case key.Matches(typed, m.Keys.Quit):
			m.Quitting = true
			return m, tea.Quit
		case key.Matches(typed, m.Keys.Palette):
			m.Palette.Active = true
			m.Palette.Input = ""
			m.commandInput.SetValue("")
			m.commandInput.Focus()
			m.Status = StatusBar{Text: "command palette active", IsError: false}
			return m, nil
		case key.Matches(typed, m.Keys.Save):
			return m.runCommand(commands.Command{Type: commands.TypeSave, Save: &commands.SaveArgs{}}), nil
		case key.Matches(typed, m.Keys.CyclePane):
			m.cyclePane()
			m.Status = StatusBar{Text: "side pane: " + string(m.Pane), IsError: false}
			return m, nil
		case key.Matches(typed, m.Keys.Help):
			m.HelpVisible = !m.HelpVisible
			if m.HelpVisible {
				m.Status = StatusBar{Text: "help shown", IsError: false}
			} else {
				m.Status = StatusBar{Text: "help hidden", IsError: false}
			}
			return m, nil
		}
		return m.handleEditorKey(typed)
	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
		return m, nil
	case ClearStatusMsg:
		m.Status = StatusBar{}
		return m, nil
	case AppErrorMsg:
		m.LastError = typed.Err
		if typed.Err != nil {
			m.Status = StatusBar{Text: typed.Err.Error(), IsError: true}
			m.logger.Error("app error", "err", typed.Err)
		}
		return m, nil
	case LoadTextMsg:
		m.applyEdit(typed.Text)
		return m, nil
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	summary := outline.Summarize(m.Items)
	side := m.sideViewport.View()
	if m.HelpVisible {
		side = m.renderHelpView()
	}
	sideTitle := string(m.Pane)
	if m.Pane == PaneDebug {
		sideTitle += " (" + string(m.DumpFormat) + ")"
	}
	palette := ""
	if m.Palette.Active {
		palette = views.RenderCommandPalette(true, m.commandInput.View())
	}

	return views.RenderApp(views.AppData{
		Header: views.RenderHeader(views.HeaderData{
			Title: m.Document.Title,
			Dirty: m.Dirty,
			Open:  summary.Open,
			Done:  summary.Done,
			Items: len(m.Items),
		}),
		Editor:     m.editor.View(),
		SideTitle:  sideTitle,
		SidePane:   side,
		Palette:    palette,
		StatusLine: m.Status.Text,
		StatusErr:  m.Status.IsError,
		Footer:     m.footer(),
		PaneWidth:  m.paneWidth,
	})
}
