package crawler

import (
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	defaultUserAgent    = "news-minter/1.0"
	defaultFetchTimeout = 30 * time.Second
	defaultMaxBodyBytes = 10 << 20 // 10MB
)

// Config tunes the page fetch. All fields are optional; zero values fall
// back to defaults.
type Config struct {
	UserAgent    string        `yaml:"userAgent"`
	FetchTimeout time.Duration `yaml:"fetchTimeout"`
	MaxBodyBytes int64         `yaml:"maxBodyBytes"`
}

// UnmarshalYAML accepts fetchTimeout as a Go duration string ("30s").
func (c *Config) UnmarshalYAML(value *yaml.Node) error {
	var raw struct {
		UserAgent    string `yaml:"userAgent"`
		FetchTimeout string `yaml:"fetchTimeout"`
		MaxBodyBytes int64  `yaml:"maxBodyBytes"`
	}
	if err := value.Decode(&raw); err != nil {
		return err
	}

	c.UserAgent = raw.UserAgent
	c.MaxBodyBytes = raw.MaxBodyBytes
	if raw.FetchTimeout != "" {
		d, err := time.ParseDuration(raw.FetchTimeout)
		if err != nil {
			return fmt.Errorf("invalid fetchTimeout %q: %w", raw.FetchTimeout, err)
		}
		c.FetchTimeout = d
	}
	return nil
}

func DefaultConfig() Config {
	return Config{
		UserAgent:    defaultUserAgent,
		FetchTimeout: defaultFetchTimeout,
		MaxBodyBytes: defaultMaxBodyBytes,
	}
}

func (c *Config) applyDefaults() {
	if c.UserAgent == "" {
		c.UserAgent = defaultUserAgent
	}
	if c.FetchTimeout <= 0 {
		c.FetchTimeout = defaultFetchTimeout
	}
	if c.MaxBodyBytes <= 0 {
		c.MaxBodyBytes = defaultMaxBodyBytes
	}
}

// LoadConfig decodes a YAML crawler config, filling defaults for anything
// left unset.
func LoadConfig(r io.Reader) (*Config, error) {
	decoder := yaml.NewDecoder(r)
	var cfg Config
	if err := decoder.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode crawler config: %w", err)
	}
	cfg.applyDefaults()
	return &cfg, nil
}

// LoadConfigFile reads the config from path; an empty path yields defaults.
func LoadConfigFile(path string) (*Config, error) {
	if path == "" {
		cfg := DefaultConfig()
		return &cfg, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open crawler config %s: %w", path, err)
	}
	defer f.Close()

	return LoadConfig(f)
}
