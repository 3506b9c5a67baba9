package update

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
	"github.com/sandeepkv93/lazylist/internal/outline"
)

// DefaultConfigFile is read from the working directory when no -config flag
// is given and the file exists.
const DefaultConfigFile = "lazylist.toml"

type RuntimeConfig struct {
	DBPath         string `toml:"db_path"`
	LogPath        string `toml:"log_path"`
	LogLevel       string `toml:"log_level"`
	DumpFormat     string `toml:"dump_format"`
	SidePane       string `toml:"side_pane"`
	EditorHeight   int    `toml:"editor_height"`
	PaneWidth      int    `toml:"pane_width"`
	StoreTimeoutMS int    `toml:"store_timeout_ms"`
	StateFilePath  string `toml:"state_file"`
	StartDocument  string `toml:"start_document"`
}

func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		DBPath:         "lazylist.db",
		LogPath:        "lazylist.log",
		LogLevel:       "info",
		DumpFormat:     string(outline.DumpJSON),
		SidePane:       string(PaneDebug),
		EditorHeight:   16,
		PaneWidth:      58,
		StoreTimeoutMS: 2000,
		StateFilePath:  ".lazylist_state.json",
	}
}

// LoadRuntimeConfig overlays the TOML file at path onto base. An empty path
// returns base unchanged.
func LoadRuntimeConfig(path string, base RuntimeConfig) (RuntimeConfig, error) {
	cfg := base
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return base, fmt.Errorf("load config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return base, fmt.Errorf("load config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	return cfg, nil
}

func RuntimeConfigFromEnv(base RuntimeConfig) RuntimeConfig {
	cfg := base
	if v, ok := getEnvString("LAZYLIST_DB_PATH"); ok {
		cfg.DBPath = v
	}
	if v, ok := getEnvString("LAZYLIST_LOG_PATH"); ok {
		cfg.LogPath = v
	}
	if v, ok := getEnvString("LAZYLIST_LOG_LEVEL"); ok {
		cfg.LogLevel = v
	}
	if v, ok := getEnvString("LAZYLIST_DUMP_FORMAT"); ok {
		cfg.DumpFormat = v
	}
	if v, ok := getEnvString("LAZYLIST_SIDE_PANE"); ok {
		cfg.SidePane = v
	}
	if v, ok := getEnvString("LAZYLIST_STATE_FILE"); ok {
		cfg.StateFilePath = v
	}
	if v, ok := getEnvInt("LAZYLIST_EDITOR_HEIGHT"); ok && v > 0 {
		cfg.EditorHeight = v
	}
	if v, ok := getEnvInt("LAZYLIST_PANE_WIDTH"); ok && v > 0 {
		cfg.PaneWidth = v
	}
	if v, ok := getEnvInt("LAZYLIST_STORE_TIMEOUT_MS"); ok && v > 0 {
		cfg.StoreTimeoutMS = v
	}
	return cfg
}

func (c RuntimeConfig) Validate() error {
	var errs []error
	if _, err := outline.ParseDumpFormat(c.DumpFormat); err != nil {
		errs = append(errs, err)
	}
	if _, err := parseSidePane(c.SidePane); err != nil {
		errs = append(errs, err)
	}
	if _, err := log.ParseLevel(strings.ToLower(strings.TrimSpace(c.LogLevel))); err != nil {
		errs = append(errs, fmt.Errorf("config: log level: %w", err))
	}
	if c.EditorHeight <= 0 {
		errs = append(errs, fmt.Errorf("config: editor_height must be positive, got %d", c.EditorHeight))
	}
	if c.PaneWidth < 20 {
		errs = append(errs, fmt.Errorf("config: pane_width must be at least 20, got %d", c.PaneWidth))
	}
	if c.StoreTimeoutMS <= 0 {
		errs = append(errs, fmt.Errorf("config: store_timeout_ms must be positive, got %d", c.StoreTimeoutMS))
	}
	return errors.Join(errs...)
}

func (c RuntimeConfig) StoreTimeout() time.Duration {
	return time.Duration(c.StoreTimeoutMS) * time.Millisecond
}

func getEnvString(name string) (string, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	return raw, raw != ""
}

func getEnvInt(name string) (int, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}
