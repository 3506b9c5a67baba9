package outline

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

type DumpFormat string

const (
	DumpJSON DumpFormat = "json"
	DumpYAML DumpFormat = "yaml"
)

var ErrUnknownDumpFormat = errors.New("outline: unknown dump format")

type dumpItem struct {
	Kind  Kind     `json:"kind" yaml:"kind"`
	Lines []string `json:"lines" yaml:"lines"`
}

// ParseDumpFormat accepts "json" or "yaml" in any case. Empty means JSON.
func ParseDumpFormat(raw string) (DumpFormat, error) {
	switch DumpFormat(strings.ToLower(strings.TrimSpace(raw))) {
	case "", DumpJSON:
		return DumpJSON, nil
	case DumpYAML:
		return DumpYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownDumpFormat, raw)
	}
}

// Dump renders a read-only structural view of list for debugging. The output
// is not meant to be read back.
func Dump(list List, format DumpFormat) (string, error) {
	items := make([]dumpItem, 0, len(list))
	for _, it := range list {
		lines := it.Lines
		if lines == nil {
			lines = []string{}
		}
		items = append(items, dumpItem{Kind: it.Kind, Lines: lines})
	}

	switch format {
	case "", DumpJSON:
		out, err := json.MarshalIndent(items, "", "  ")
		if err != nil {
			return "", fmt.Errorf("marshal json dump: %w", err)
		}
		return string(out), nil
	case DumpYAML:
		out, err := yaml.Marshal(items)
		if err != nil {
			return "", fmt.Errorf("marshal yaml dump: %w", err)
		}
		return strings.TrimRight(string(out), "\n"), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownDumpFormat, format)
	}
}
