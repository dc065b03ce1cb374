package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/nikogura/portfolio-prioritizer/pkg/criteria"
	"github.com/nikogura/portfolio-prioritizer/pkg/ranking"
	"github.com/nikogura/portfolio-prioritizer/pkg/scoring"
	"github.com/pkg/errors"
)

// Environment variables that override the config file.
const (
	EnvTopK         = "PORTFOLIO_TOP_K"
	EnvOutputDir    = "PORTFOLIO_OUTPUT_DIR"
	EnvSchemePrefix = "PORTFOLIO_SCHEME_"
)

// Config represents the application configuration.
type Config struct {
	Schemes     map[string]string `json:"schemes,omitempty"` // criterion -> "descending" | "null"
	TopK        int               `json:"top_k"`
	DateLayouts []string          `json:"date_layouts,omitempty"`
	Report      ReportConfig      `json:"report"`
	Defaults    DefaultConfig     `json:"defaults"`
}

// ReportConfig holds pandoc settings for PDF export.
type ReportConfig struct {
	TemplatePath string `json:"template_path,omitempty"`
	ClassFile    string `json:"class_file,omitempty"`
}

// DefaultConfig holds default values for commands.
type DefaultConfig struct {
	OutputDir string `json:"output_dir"`
}

// DefaultPath returns ~/.portfolio-prioritizer/config.json.
func DefaultPath() (path string, err error) {
	var homeDir string
	homeDir, err = os.UserHomeDir()
	if err != nil {
		err = errors.Wrap(err, "failed to get user home directory")
		return path, err
	}
	path = filepath.Join(homeDir, ".portfolio-prioritizer", "config.json")
	return path, err
}

// Default returns the configuration used when no file exists.
func Default() (cfg Config) {
	cfg = Config{
		Schemes: map[string]string{},
		TopK:    ranking.DefaultK,
		Defaults: DefaultConfig{
			OutputDir: ".",
		},
	}
	return cfg
}

// Load reads configuration from file with .env and environment variable overrides.
// An explicit configPath must exist; a missing default file means built-in defaults.
// Fields absent from the file keep their defaults; explicit values are validated as given.
func Load(configPath string) (cfg Config, err error) {
	_ = godotenv.Load()

	cfg = Default()

	path := configPath
	if path == "" {
		path, err = DefaultPath()
		if err != nil {
			return cfg, err
		}
	}

	var data []byte
	data, err = os.ReadFile(path)
	switch {
	case err == nil:
		err = json.Unmarshal(data, &cfg)
		if err != nil {
			err = errors.Wrapf(err, "failed to parse config file: %s", path)
			return cfg, err
		}
	case os.IsNotExist(err) && configPath == "":
		err = nil
	case os.IsNotExist(err):
		err = errors.Errorf("config file not found: %s (run 'portfolio-prioritizer init' to create)", path)
		return cfg, err
	default:
		err = errors.Wrapf(err, "failed to read config file: %s", path)
		return cfg, err
	}

	err = cfg.applyEnv()
	if err != nil {
		return cfg, err
	}

	if cfg.Defaults.OutputDir == "" {
		cfg.Defaults.OutputDir = "."
	}

	err = cfg.Validate()
	if err != nil {
		err = errors.Wrap(err, "config validation failed")
		return cfg, err
	}

	return cfg, err
}

func (c *Config) applyEnv() (err error) {
	if v := os.Getenv(EnvTopK); v != "" {
		c.TopK, err = strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			err = errors.Wrapf(err, "invalid %s", EnvTopK)
			return err
		}
	}

	if v := os.Getenv(EnvOutputDir); v != "" {
		c.Defaults.OutputDir = v
	}

	if c.Schemes == nil {
		c.Schemes = map[string]string{}
	}
	for _, def := range criteria.All() {
		if v := os.Getenv(SchemeEnvVar(def.ID)); v != "" {
			c.Schemes[string(def.ID)] = v
		}
	}

	return err
}

// SchemeEnvVar names the variable overriding one criterion's scheme,
// e.g. PORTFOLIO_SCHEME_PROJECT_COST or PORTFOLIO_SCHEME_COMPLETION.
func SchemeEnvVar(id criteria.ID) (name string) {
	name = EnvSchemePrefix + strings.ToUpper(strings.ReplaceAll(string(id), "%", ""))
	return name
}

// Validate fails on any scheme outside the presets and on a non-positive top_k.
func (c *Config) Validate() (err error) {
	_, err = c.Selection()
	if err != nil {
		return err
	}

	if c.TopK < 1 {
		err = errors.Errorf("top_k must be at least 1, got %d", c.TopK)
		return err
	}

	return err
}

// Selection returns the configured schemes. Criteria not listed are left to the default.
func (c *Config) Selection() (sel scoring.Selection, err error) {
	sel, err = scoring.ParseSelection(c.Schemes)
	return sel, err
}

// Reference builds the date-parsing reference for an evaluation instant.
func (c *Config) Reference(ref criteria.Reference) (out criteria.Reference) {
	out = ref
	out.Layouts = append(append([]string(nil), c.DateLayouts...), ref.Layouts...)
	return out
}

// InitConfig creates a default configuration file.
func InitConfig(configPath string) (err error) {
	path := configPath
	if path == "" {
		path, err = DefaultPath()
		if err != nil {
			return err
		}
	}

	dir := filepath.Dir(path)
	err = os.MkdirAll(dir, 0750)
	if err != nil {
		err = errors.Wrapf(err, "failed to create config directory: %s", dir)
		return err
	}

	_, err = os.Stat(path)
	if err == nil {
		err = errors.Errorf("config file already exists: %s", path)
		return err
	}

	defaultConfig := Default()
	for _, def := range criteria.All() {
		defaultConfig.Schemes[string(def.ID)] = string(scoring.Descending)
	}
	defaultConfig.Defaults.OutputDir = filepath.Join(dir, "reports")

	var data []byte
	data, err = json.MarshalIndent(defaultConfig, "", "  ")
	if err != nil {
		err = errors.Wrap(err, "failed to marshal default config")
		return err
	}

	err = os.WriteFile(path, data, 0600)
	if err != nil {
		err = errors.Wrapf(err, "failed to write config file: %s", path)
		return err
	}

	return err
}
