package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/dhamidi/pratt/expr/parser"
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("pratt.config")

// EnvVar names the environment variable that points at a config file.
const EnvVar = "PRATT_CONFIG"

// Config holds the complete application configuration
type Config struct {
	Parser ParserConfig `toml:"parser"`
	Output OutputConfig `toml:"output"`
	Log    LogConfig    `toml:"log"`
	UI     UIConfig     `toml:"ui"`
}

// ParserConfig holds parser limits
type ParserConfig struct {
	MaxDepth int `toml:"max_depth"`
}

// OutputConfig holds defaults for the parse command
type OutputConfig struct {
	Format string `toml:"format"`
}

// LogConfig holds logging settings. Verbosity follows commonlog: 0 is
// errors only, each step up adds a level, down to 5 for debug.
type LogConfig struct {
	Verbosity int    `toml:"verbosity"`
	File      string `toml:"file"`
}

// UIConfig holds playground server settings
type UIConfig struct {
	Addr string `toml:"addr"`
}

// Default returns the configuration used when no file is found.
func Default() *Config {
	var cfg Config
	cfg.applyDefaults()
	return &cfg
}

// Load loads configuration from a TOML file
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	var cfg Config
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown config key %s in %s", undecoded[0], path)
	}

	cfg.applyDefaults()
	cfg.expandEnvVars()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadDefault loads the file named by PRATT_CONFIG, then ./pratt.toml,
// then the user config directory. Without any file it returns Default.
func LoadDefault() (*Config, error) {
	if path := os.Getenv(EnvVar); path != "" {
		return Load(path)
	}

	candidates := []string{"./pratt.toml"}
	if dir, err := os.UserConfigDir(); err == nil {
		candidates = append(candidates, filepath.Join(dir, "pratt", "config.toml"))
	}
	for _, p := range candidates {
		if _, err := os.Stat(p); err == nil {
			log.Debugf("using config file %s", p)
			return Load(p)
		}
	}

	log.Debug("no config file found, using defaults")
	return Default(), nil
}

func (c *Config) applyDefaults() {
	if c.Parser.MaxDepth == 0 {
		c.Parser.MaxDepth = parser.DefaultMaxDepth
	}
	if c.Output.Format == "" {
		c.Output.Format = "text"
	}
	if c.UI.Addr == "" {
		c.UI.Addr = ":8080"
	}
}

func (c *Config) expandEnvVars() {
	c.Log.File = os.ExpandEnv(c.Log.File)
}

// Validate rejects values no component can work with.
func (c *Config) Validate() error {
	if c.Parser.MaxDepth < 0 {
		return fmt.Errorf("parser.max_depth must be positive, got %d", c.Parser.MaxDepth)
	}
	if c.Log.Verbosity < 0 {
		return fmt.Errorf("log.verbosity must not be negative, got %d", c.Log.Verbosity)
	}
	return nil
}

// ParserOptions returns the parser options described by the config.
func (c *Config) ParserOptions() []parser.Option {
	return []parser.Option{parser.WithMaxDepth(c.Parser.MaxDepth)}
}

// LogPath returns the log file, or nil to log to stderr.
func (c *Config) LogPath() *string {
	if c.Log.File == "" {
		return nil
	}
	path := c.Log.File
	return &path
}
