package update

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/sandeepkv93/lazylist/internal/views"
)

type helpKeyMap struct {
	short []key.Binding
	full  [][]key.Binding
}

func (k helpKeyMap) ShortHelp() []key.Binding  { return k.short }
func (k helpKeyMap) FullHelp() [][]key.Binding { return k.full }

var paletteCommands = []string{
	"new                 start an empty buffer",
	"save [title]        save (or save as title)",
	"open <title>        load a saved document",
	"delete <title>      delete a saved document",
	"list                show saved documents",
	"toggle <n>          flip item n open/done",
	"copy                copy buffer to clipboard",
	"pane debug|preview  choose side pane",
}

func (m Model) globalBindings() []key.Binding {
	return []key.Binding{m.Keys.Palette, m.Keys.Save, m.Keys.CyclePane, m.Keys.Help, m.Keys.Quit}
}

func (m Model) renderHelpView() string {
	bindings := m.globalBindings()
	plain := make([]string, 0, len(paletteCommands))
	for _, c := range paletteCommands {
		plain = append(plain, "- "+c)
	}
	return views.RenderHelpPanel(views.HelpPanelData{
		Bindings: plain,
		HelpView: m.helpModel.View(helpKeyMap{
			short: bindings,
			full:  [][]key.Binding{bindings},
		}),
	})
}

func (m Model) footer() string {
	parts := make([]string, 0, len(m.globalBindings()))
	for _, b := range m.globalBindings() {
		h := b.Help()
		parts = append(parts, fmt.Sprintf("%s %s", h.Key, h.Desc))
	}
	return "keys: " + strings.Join(parts, " | ")
}
