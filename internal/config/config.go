// Package config loads memscan's configuration from JSONC via hujson,
// merged over a defaults -> global -> project (or, when given, an
// explicit file in its place) -> CLI-override precedence chain, with
// the set of files actually consulted tracked for `config print`.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tailscale/hujson"

	"github.com/tripwire/memscan/internal/region"
	"github.com/tripwire/memscan/internal/value"
)

// FileName is the default project config file name.
const FileName = ".memscan.json"

// Config holds every user-configurable default.
type Config struct {
	ChunkSize         int    `json:"chunk_size,omitempty"`
	DefaultDataType   string `json:"default_data_type,omitempty"`
	DefaultScope      string `json:"default_scope,omitempty"`
	DefaultEndianness string `json:"default_endianness,omitempty"`
}

// Default returns the built-in configuration used when nothing
// overrides it.
func Default() Config {
	return Config{
		ChunkSize:         128 * 1024 * 1024,
		DefaultDataType:   value.DefaultDataType.String(),
		DefaultScope:      region.DefaultScope.String(),
		DefaultEndianness: value.DefaultEndianness.String(),
	}
}

// Sources records which files, if any, contributed to a loaded Config.
type Sources struct {
	Global  string
	Project string
}

// Load resolves configuration with the following precedence (highest
// wins): defaults, global user config, project config (or an explicit
// file at configPath), then CLI overrides applied by the caller.
func Load(workDir, configPath string, env []string) (Config, Sources, error) {
	cfg := Default()

	var sources Sources

	globalCfg, globalPath, err := loadGlobal(env)
	if err != nil {
		return Config{}, Sources{}, err
	}

	sources.Global = globalPath
	cfg = merge(cfg, globalCfg)

	projectCfg, projectPath, err := loadProject(workDir, configPath)
	if err != nil {
		return Config{}, Sources{}, err
	}

	sources.Project = projectPath
	cfg = merge(cfg, projectCfg)

	if err := validate(cfg); err != nil {
		return Config{}, Sources{}, err
	}

	return cfg, sources, nil
}

func globalPath(env []string) string {
	for _, e := range env {
		if after, ok := strings.CutPrefix(e, "XDG_CONFIG_HOME="); ok {
			return filepath.Join(after, "memscan", "config.json")
		}
	}

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "memscan", "config.json")
	}

	home, err := os.UserHomeDir()
	if err == nil {
		return filepath.Join(home, ".config", "memscan", "config.json")
	}

	return ""
}

func loadGlobal(env []string) (Config, string, error) {
	path := globalPath(env)
	if path == "" {
		return Config{}, "", nil
	}

	cfg, loaded, err := loadFile(path, false)
	if err != nil {
		return Config{}, "", err
	}

	if !loaded {
		return Config{}, "", nil
	}

	return cfg, path, nil
}

func loadProject(workDir, configPath string) (Config, string, error) {
	cfgFile := filepath.Join(workDir, FileName)
	mustExist := false

	if configPath != "" {
		cfgFile = configPath
		if !filepath.IsAbs(cfgFile) {
			cfgFile = filepath.Join(workDir, cfgFile)
		}

		mustExist = true

		if _, err := os.Stat(cfgFile); err != nil {
			return Config{}, "", fmt.Errorf("%w: %s", ErrConfigFileNotFound, configPath)
		}
	}

	cfg, loaded, err := loadFile(cfgFile, mustExist)
	if err != nil {
		return Config{}, "", err
	}

	if !loaded {
		return Config{}, "", nil
	}

	return cfg, cfgFile, nil
}

func loadFile(path string, mustExist bool) (Config, bool, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is intentionally user-controlled
	if err != nil {
		if os.IsNotExist(err) && !mustExist {
			return Config{}, false, nil
		}

		if mustExist {
			return Config{}, false, fmt.Errorf("%w: %s", ErrConfigFileRead, path)
		}

		return Config{}, false, nil
	}

	cfg, err := parse(data)
	if err != nil {
		return Config{}, false, fmt.Errorf("%w %s: %w", ErrConfigInvalid, path, err)
	}

	return cfg, true, nil
}

func parse(data []byte) (Config, error) {
	standardized, err := hujson.Standardize(data)
	if err != nil {
		return Config{}, fmt.Errorf("invalid JSONC: %w", err)
	}

	var cfg Config

	if err := json.Unmarshal(standardized, &cfg); err != nil {
		return Config{}, fmt.Errorf("invalid JSON: %w", err)
	}

	return cfg, nil
}

func merge(base, overlay Config) Config {
	if overlay.ChunkSize != 0 {
		base.ChunkSize = overlay.ChunkSize
	}

	if overlay.DefaultDataType != "" {
		base.DefaultDataType = overlay.DefaultDataType
	}

	if overlay.DefaultScope != "" {
		base.DefaultScope = overlay.DefaultScope
	}

	if overlay.DefaultEndianness != "" {
		base.DefaultEndianness = overlay.DefaultEndianness
	}

	return base
}

func validate(cfg Config) error {
	if cfg.ChunkSize <= 0 {
		return ErrChunkSizeInvalid
	}

	if _, err := value.ParseDataType(cfg.DefaultDataType); err != nil {
		return err
	}

	if _, err := region.ParseScope(cfg.DefaultScope); err != nil {
		return err
	}

	if _, err := value.ParseEndianness(cfg.DefaultEndianness); err != nil {
		return err
	}

	return nil
}

// Format renders cfg as indented JSON for `config print`.
func Format(cfg Config) (string, error) {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to format config: %w", err)
	}

	return string(data), nil
}
