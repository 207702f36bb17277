package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/ini.v1"
)

// Required credential keys. Startup is fatal when any of them is empty.
var requiredKeys = []string{"TELEGRAM_TOKEN", "SPOTIFY_CLIENT_ID", "SPOTIFY_CLIENT_SECRET"}

// Config wraps viper and provides typed accessors.
type Config struct {
	v *viper.Viper
}

// Load reads an optional INI config file and overlays environment variables.
// An empty or missing path falls back to environment-only configuration.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()
	for _, key := range requiredKeys {
		_ = v.BindEnv(key)
	}
	_ = v.BindEnv("AUTO_DELETE_DELAY")

	setDefaults(v)

	if strings.TrimSpace(path) == "" {
		return &Config{v: v}, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return &Config{v: v}, nil
	}

	if strings.EqualFold(filepath.Ext(path), ".ini") {
		if err := loadINI(v, path); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		return &Config{v: v}, nil
	}

	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return &Config{v: v}, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("BotAPI", "https://api.telegram.org")
	v.SetDefault("BotDebug", false)
	v.SetDefault("LogLevel", "info")
	v.SetDefault("LogFormat", "text")
	v.SetDefault("AUTO_DELETE_DELAY", "0")
	v.SetDefault("WorkerPoolSize", 4)
	v.SetDefault("RateLimitPerSecond", 1.0)
	v.SetDefault("RateLimitBurst", 3)
}

// Validate reports the first missing required credential.
func (c *Config) Validate() error {
	for _, key := range requiredKeys {
		if strings.TrimSpace(c.GetString(key)) == "" {
			return fmt.Errorf("missing required configuration: %s", key)
		}
	}
	return nil
}

// AutoDeleteDelay returns the configured auto-delete delay in seconds.
// Invalid or negative values disable the feature; ok is false so callers
// can log a warning instead of failing startup.
func (c *Config) AutoDeleteDelay() (seconds int, ok bool) {
	raw := strings.TrimSpace(c.GetString("AUTO_DELETE_DELAY"))
	if raw == "" {
		return 0, true
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil || parsed < 0 {
		return 0, false
	}
	return parsed, true
}

// GetString returns a string value.
func (c *Config) GetString(key string) string {
	return c.v.GetString(key)
}

// GetInt returns an int value.
func (c *Config) GetInt(key string) int {
	return c.v.GetInt(key)
}

// GetFloat64 returns a float64 value.
func (c *Config) GetFloat64(key string) float64 {
	return c.v.GetFloat64(key)
}

// GetBool returns a bool value.
func (c *Config) GetBool(key string) bool {
	return c.v.GetBool(key)
}

func loadINI(v *viper.Viper, path string) error {
	cfg, err := ini.Load(path)
	if err != nil {
		return err
	}

	for _, key := range cfg.Section("").Keys() {
		v.Set(key.Name(), key.Value())
	}

	return nil
}
