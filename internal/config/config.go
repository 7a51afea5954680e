package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const configDir = ".showcase"
const configFile = "config.json"

// envPrefix scopes environment overrides: SHOWCASE_API_URL etc.
const envPrefix = "SHOWCASE"

// Config is one profile's settings. Server is the frontend URL the
// user connected to; APIURL is the backend resolved from its
// config.json document.
type Config struct {
	Server         string `json:"server,omitempty" mapstructure:"server"`
	APIURL         string `json:"api_url,omitempty" mapstructure:"api_url"`
	CustomerName   string `json:"customer_name,omitempty" mapstructure:"customer_name"`
	DefaultTab     string `json:"default_tab,omitempty" mapstructure:"default_tab"`
	ItemLimit      int    `json:"item_limit,omitempty" mapstructure:"item_limit"`
	GenerateImages bool   `json:"generate_images,omitempty" mapstructure:"generate_images"`
	LastPrompt     string `json:"last_prompt,omitempty" mapstructure:"last_prompt"`
	Profile        string `json:"-" mapstructure:"-"`
}

// DefaultItemLimit matches the backend's default page size.
const DefaultItemLimit = 12

func configPath(profile string) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot find home directory: %w", err)
	}
	filename := configFile
	if profile != "" {
		filename = fmt.Sprintf("config-%s.json", profile)
	}
	return filepath.Join(home, configDir, filename), nil
}

// Load reads the profile's config file and applies SHOWCASE_*
// environment overrides. A missing file yields a zero config, not an
// error, so first-run commands can prompt the user to connect.
func Load(profile string) (*Config, error) {
	path, err := configPath(profile)
	if err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")
	v.SetEnvPrefix(envPrefix)
	for _, key := range []string{"server", "api_url", "customer_name", "default_tab", "item_limit", "generate_images", "last_prompt"} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("binding env for %s: %w", key, err)
		}
	}
	v.SetDefault("item_limit", DefaultItemLimit)

	if err := v.ReadInConfig(); err != nil {
		if !os.IsNotExist(err) {
			if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
				return nil, fmt.Errorf("reading config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	cfg.Profile = profile
	return &cfg, nil
}

func (c *Config) Save() error {
	path, err := configPath(c.Profile)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

func (c *Config) profileFlag() string {
	if c.Profile == "" {
		return ""
	}
	return " --profile " + c.Profile
}

// Validate checks that the profile points at a backend.
func (c *Config) Validate() error {
	if c.APIURL == "" {
		return fmt.Errorf("not connected. Run: showcase%s connect <frontend-url>", c.profileFlag())
	}
	return nil
}

// Limit returns the configured item limit, falling back to the default.
func (c *Config) Limit() int {
	if c.ItemLimit > 0 {
		return c.ItemLimit
	}
	return DefaultItemLimit
}

// ListProfiles enumerates available config profiles.
func ListProfiles() ([]string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("cannot find home directory: %w", err)
	}
	dir := filepath.Join(home, configDir)
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading config directory: %w", err)
	}
	var profiles []string
	for _, e := range entries {
		name := e.Name()
		if name == configFile {
			profiles = append(profiles, "default")
			continue
		}
		if strings.HasPrefix(name, "config-") && strings.HasSuffix(name, ".json") {
			profiles = append(profiles, strings.TrimSuffix(strings.TrimPrefix(name, "config-"), ".json"))
		}
	}
	return profiles, nil
}

// ProfileName maps the empty profile to its display name.
func ProfileName(profile string) string {
	if profile == "" {
		return "default"
	}
	return profile
}
