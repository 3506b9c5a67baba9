package update

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
)

// sessionState survives restarts so the last document reopens on launch.
type sessionState struct {
	LastDocument string `json:"last_document"`
}

func (m *Model) rememberSession() {
	if err := m.persistSessionState(); err != nil {
		m.logger.Warn("session state not saved", "path", m.stateFilePath, "err", err)
	}
}

func (m *Model) persistSessionState() error {
	if strings.TrimSpace(m.stateFilePath) == "" {
		return nil
	}
	dir := filepath.Dir(m.stateFilePath)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	payload, err := json.MarshalIndent(sessionState{LastDocument: m.Document.Title}, "", "  ")
	if err != nil {
		return err
	}
	tmp := m.stateFilePath + ".tmp"
	if err := os.WriteFile(tmp, append(payload, '\n'), 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, m.stateFilePath)
}

func loadSessionState(path string) (sessionState, error) {
	var state sessionState
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return state, nil
	}
	raw, err := os.ReadFile(trimmed)
	if err != nil {
		if os.IsNotExist(err) {
			return state, nil
		}
		return state, err
	}
	if strings.TrimSpace(string(raw)) == "" {
		return state, nil
	}
	if err := json.Unmarshal(raw, &state); err != nil {
		return sessionState{}, err
	}
	state.LastDocument = strings.TrimSpace(state.LastDocument)
	return state, nil
}
