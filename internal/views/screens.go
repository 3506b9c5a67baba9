package views

import (
	"fmt"
	"strings"
	"time"
)

type HelpPanelData struct {
	Bindings []string
	HelpView string
}

type DocumentRow struct {
	Title     string
	UpdatedAt time.Time
	Current   bool
}

type HeaderData struct {
	Title string
	Dirty bool
	Open  int
	Done  int
	Items int
}

func RenderHeader(data HeaderData) string {
	title := data.Title
	if strings.TrimSpace(title) == "" {
		title = "untitled"
	}
	if data.Dirty {
		title += "*"
	}
	return fmt.Sprintf("lazylist | %s | items: %d | open: %d | done: %d", title, data.Items, data.Open, data.Done)
}

func RenderCommandPalette(active bool, input string) string {
	if !active {
		return ""
	}
	return fmt.Sprintf("command: %s", input)
}

func RenderHelpPanel(data HelpPanelData) string {
	return fmt.Sprintf("help:\n%s\n%s",
		strings.Join(data.Bindings, "\n"),
		data.HelpView,
	)
}

func RenderDocumentList(rows []DocumentRow) string {
	if len(rows) == 0 {
		return "documents:\n(none saved)"
	}
	var b strings.Builder
	b.WriteString("documents:")
	for _, row := range rows {
		marker := " "
		if row.Current {
			marker = ">"
		}
		fmt.Fprintf(&b, "\n%s %s  %s", marker, row.Title, row.UpdatedAt.Local().Format("2006-01-02 15:04"))
	}
	return b.String()
}
