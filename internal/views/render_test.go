package views

import (
	"strings"
	"testing"
	"time"
)

func TestRenderHeader(t *testing.T) {
	got := RenderHeader(HeaderData{Title: "groceries", Dirty: true, Open: 2, Done: 1, Items: 4})
	if got != "lazylist | groceries* | items: 4 | open: 2 | done: 1" {
		t.Fatalf("unexpected header: %q", got)
	}
	if !strings.Contains(RenderHeader(HeaderData{}), "untitled") {
		t.Fatal("expected untitled fallback")
	}
}

func TestRenderDocumentList(t *testing.T) {
	if got := RenderDocumentList(nil); !strings.Contains(got, "(none saved)") {
		t.Fatalf("unexpected empty list: %q", got)
	}
	got := RenderDocumentList([]DocumentRow{
		{Title: "home", UpdatedAt: time.Date(2026, 2, 9, 12, 0, 0, 0, time.UTC), Current: true},
		{Title: "work", UpdatedAt: time.Date(2026, 2, 8, 12, 0, 0, 0, time.UTC)},
	})
	if !strings.Contains(got, "> home") || !strings.Contains(got, "  work") {
		t.Fatalf("unexpected list: %q", got)
	}
}

func TestRenderAppIncludesSections(t *testing.T) {
	out := RenderApp(AppData{
		Header:     "lazylist | untitled",
		Editor:     "[_]buy milk",
		SideTitle:  "debug",
		SidePane:   `[{"kind":"open"}]`,
		Palette:    RenderCommandPalette(true, "save"),
		StatusLine: "saved",
		Footer:     "ctrl+c quit",
	})
	for _, want := range []string{"lazylist | untitled", "buy milk", "debug", "command: save", "saved", "ctrl+c quit"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestRenderMarkdownEmpty(t *testing.T) {
	if got := RenderMarkdown("   ", 40); got != "" {
		t.Fatalf("expected empty render, got %q", got)
	}
	if got := RenderMarkdown("- [x] shipped", 40); !strings.Contains(got, "shipped") {
		t.Fatalf("expected rendered task text, got %q", got)
	}
}
