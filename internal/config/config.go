package config

import (
	stderrors "errors"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/goccy/go-json"

	"github.com/vango-dev/weave/internal/errors"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "weave.json"

	// DefaultPort is the default live server port.
	DefaultPort = 3000

	// DefaultHost is the default live server host.
	DefaultHost = "localhost"

	// DefaultDemo is the demo rendered when none is named.
	DefaultDemo = "counter"

	// DefaultNamespace is the default Prometheus namespace.
	DefaultNamespace = "weave"

	// DefaultExportDir is the default directory for file exports.
	DefaultExportDir = "snapshots"
)

// Config represents the complete weave.json configuration.
type Config struct {
	// Name is the project name.
	Name string `json:"name,omitempty"`

	// Demo is the demo served and rendered by default.
	Demo string `json:"demo,omitempty"`

	// Server contains live server configuration.
	Server ServerConfig `json:"server,omitempty"`

	// Log contains logging configuration.
	Log LogConfig `json:"log,omitempty"`

	// Metrics contains Prometheus configuration.
	Metrics MetricsConfig `json:"metrics,omitempty"`

	// Export contains snapshot export configuration.
	Export ExportConfig `json:"export,omitempty"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// ServerConfig configures the live demo server.
type ServerConfig struct {
	// Host is the interface to bind to.
	Host string `json:"host,omitempty"`

	// Port is the port to listen on.
	Port int `json:"port,omitempty"`

	// StrictOwner makes every connection's document reject mutations
	// from goroutines other than the connection's own.
	StrictOwner *bool `json:"strictOwner,omitempty"`
}

// LogConfig configures the slog handler.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `json:"level,omitempty"`

	// Format is text or json.
	Format string `json:"format,omitempty"`
}

// MetricsConfig configures Prometheus metrics.
type MetricsConfig struct {
	// Enabled exposes /metrics on the live server.
	Enabled bool `json:"enabled,omitempty"`

	// Namespace prefixes every metric name.
	Namespace string `json:"namespace,omitempty"`
}

// ExportConfig configures where rendered snapshots are published.
type ExportConfig struct {
	// Bucket is the S3 bucket. When empty, snapshots are written to Dir.
	Bucket string `json:"bucket,omitempty"`

	// Prefix is prepended to every object key.
	Prefix string `json:"prefix,omitempty"`

	// Region is the S3 region.
	Region string `json:"region,omitempty"`

	// Endpoint overrides the S3 endpoint, for S3-compatible stores.
	Endpoint string `json:"endpoint,omitempty"`

	// Dir is the directory used by file exports.
	Dir string `json:"dir,omitempty"`
}

// New creates a new Config with default values.
func New() *Config {
	strict := true
	return &Config{
		Demo: DefaultDemo,
		Server: ServerConfig{
			Host:        DefaultHost,
			Port:        DefaultPort,
			StrictOwner: &strict,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Metrics: MetricsConfig{
			Enabled:   true,
			Namespace: DefaultNamespace,
		},
		Export: ExportConfig{
			Region: "us-east-1",
			Dir:    DefaultExportDir,
		},
	}
}

// NewAt creates a default Config that Save writes to path.
func NewAt(path string) *Config {
	cfg := New()
	cfg.configPath = path
	return cfg
}

// Load reads configuration from the specified directory.
// It looks for weave.json in the directory.
func Load(dir string) (*Config, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadOrDefault reads weave.json from dir, falling back to defaults when
// the file does not exist. Invalid files are still an error.
func LoadOrDefault(dir string) (*Config, error) {
	cfg, err := Load(dir)
	if err != nil && stderrors.Is(err, fs.ErrNotExist) {
		return New(), nil
	}
	return cfg, err
}

// LoadFile reads configuration from the specified file path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("E144").
				WithDetail("No weave.json found in " + filepath.Dir(path)).
				WithSuggestion("Create weave.json or run 'weave init'").
				Wrap(err)
		}
		return nil, errors.New("E140").Wrap(err)
	}

	cfg := New()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.New("E140").
			WithDetail("Failed to parse weave.json: " + err.Error()).
			WithSuggestion("Check that weave.json is valid JSON").
			Wrap(err)
	}

	cfg.configPath = path
	cfg.applyDefaults()

	return cfg, nil
}

// Save writes the configuration to the file it was loaded from.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.Newf(errors.CategoryConfig, "no config path set")
	}
	return c.SaveTo(c.configPath)
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.New("E140").Wrap(err)
	}

	// Add newline at end of file
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.New("E140").Wrap(err)
	}

	c.configPath = path
	return nil
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// Dir returns the directory containing the config file.
func (c *Config) Dir() string {
	if c.configPath == "" {
		return ""
	}
	return filepath.Dir(c.configPath)
}

// applyDefaults fills in default values for empty fields.
func (c *Config) applyDefaults() {
	d := New()
	if c.Demo == "" {
		c.Demo = d.Demo
	}
	if c.Server.Host == "" {
		c.Server.Host = d.Server.Host
	}
	if c.Server.Port == 0 {
		c.Server.Port = d.Server.Port
	}
	if c.Server.StrictOwner == nil {
		c.Server.StrictOwner = d.Server.StrictOwner
	}
	if c.Log.Level == "" {
		c.Log.Level = d.Log.Level
	}
	if c.Log.Format == "" {
		c.Log.Format = d.Log.Format
	}
	if c.Metrics.Namespace == "" {
		c.Metrics.Namespace = d.Metrics.Namespace
	}
	if c.Export.Dir == "" {
		c.Export.Dir = d.Export.Dir
	}
	if c.Export.Region == "" {
		c.Export.Region = d.Export.Region
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return errors.New("E140").
			WithDetail("server.port must be between 0 and 65535")
	}
	if _, ok := levels[strings.ToLower(c.Log.Level)]; !ok {
		return errors.New("E140").
			WithDetailf("log.level %q is not one of debug, info, warn, error", c.Log.Level)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return errors.New("E140").
			WithDetailf("log.format %q is not text or json", c.Log.Format)
	}
	if c.Demo == "" {
		return errors.New("E140").WithDetail("demo must not be empty")
	}
	return nil
}

// Address returns the host:port string for the live server.
func (c *Config) Address() string {
	return c.Server.Host + ":" + strconv.Itoa(c.Server.Port)
}

// URL returns the full URL for the live server.
func (c *Config) URL() string {
	return "http://" + c.Address()
}

// Strict reports whether live documents use the strict owner check.
func (c *Config) Strict() bool {
	return c.Server.StrictOwner == nil || *c.Server.StrictOwner
}

// ExportPath returns the absolute path of the file export directory.
func (c *Config) ExportPath() string {
	if filepath.IsAbs(c.Export.Dir) {
		return c.Export.Dir
	}
	return filepath.Join(c.Dir(), c.Export.Dir)
}

var levels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// Level returns the configured slog level, defaulting to info.
func (c *Config) Level() slog.Level {
	if l, ok := levels[strings.ToLower(c.Log.Level)]; ok {
		return l
	}
	return slog.LevelInfo
}

// NewLogger returns a logger writing to w with the configured level and
// format.
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.Level()}
	if c.Log.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// Exists checks if a config file exists in the given directory.
func Exists(dir string) bool {
	path := filepath.Join(dir, ConfigFileName)
	_, err := os.Stat(path)
	return err == nil
}

// FindProjectRoot walks up directories to find the project root.
// Returns the directory containing weave.json, or an error if not found.
func FindProjectRoot(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	for {
		if Exists(dir) {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New("E144").
				WithDetail("No weave.json found in " + startDir + " or any parent directory").
				Wrap(fs.ErrNotExist)
		}
		dir = parent
	}
}

// LoadFromWorkingDir loads configuration from the nearest weave.json at
// or above the working directory, or defaults when there is none.
func LoadFromWorkingDir() (*Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	root, err := FindProjectRoot(wd)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return New(), nil
		}
		return nil, err
	}

	return Load(root)
}
