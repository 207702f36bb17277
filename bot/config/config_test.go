package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.ini")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadINI(t *testing.T) {
	path := writeConfig(t, strings.Join([]string{
		"TELEGRAM_TOKEN = 123:abc",
		"SPOTIFY_CLIENT_ID = client",
		"SPOTIFY_CLIENT_SECRET = secret",
		"AUTO_DELETE_DELAY = 45",
		"LogLevel = debug",
	}, "\n"))

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if got := cfg.GetString("TELEGRAM_TOKEN"); got != "123:abc" {
		t.Errorf("TELEGRAM_TOKEN = %q", got)
	}
	if got := cfg.GetString("LogLevel"); got != "debug" {
		t.Errorf("LogLevel = %q", got)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestLoadMissingFileFallsBackToEnv(t *testing.T) {
	t.Setenv("TELEGRAM_TOKEN", "env-token")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.ini"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := cfg.GetString("TELEGRAM_TOKEN"); got != "env-token" {
		t.Errorf("TELEGRAM_TOKEN = %q, want env-token", got)
	}
}

func TestDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if got := cfg.GetString("BotAPI"); got != "https://api.telegram.org" {
		t.Errorf("BotAPI = %q", got)
	}
	if got := cfg.GetInt("WorkerPoolSize"); got != 4 {
		t.Errorf("WorkerPoolSize = %d", got)
	}
	if got := cfg.GetFloat64("RateLimitPerSecond"); got != 1.0 {
		t.Errorf("RateLimitPerSecond = %v", got)
	}
	if got := cfg.GetInt("RateLimitBurst"); got != 3 {
		t.Errorf("RateLimitBurst = %d", got)
	}
}

func TestValidateMissingCredentials(t *testing.T) {
	tests := []struct {
		name    string
		content string
		missing string
	}{
		{
			name:    "no telegram token",
			content: "SPOTIFY_CLIENT_ID = a\nSPOTIFY_CLIENT_SECRET = b",
			missing: "TELEGRAM_TOKEN",
		},
		{
			name:    "no client id",
			content: "TELEGRAM_TOKEN = t\nSPOTIFY_CLIENT_SECRET = b",
			missing: "SPOTIFY_CLIENT_ID",
		},
		{
			name:    "no client secret",
			content: "TELEGRAM_TOKEN = t\nSPOTIFY_CLIENT_ID = a",
			missing: "SPOTIFY_CLIENT_SECRET",
		},
		{
			name:    "blank value counts as missing",
			content: "TELEGRAM_TOKEN =   \nSPOTIFY_CLIENT_ID = a\nSPOTIFY_CLIENT_SECRET = b",
			missing: "TELEGRAM_TOKEN",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(writeConfig(t, tt.content))
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			err = cfg.Validate()
			if err == nil {
				t.Fatal("Validate succeeded with missing credential")
			}
			if !strings.Contains(err.Error(), tt.missing) {
				t.Errorf("Validate error %q does not name %s", err, tt.missing)
			}
		})
	}
}

func TestAutoDeleteDelay(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  int
		ok    bool
	}{
		{name: "unset", value: "", want: 0, ok: true},
		{name: "zero disables", value: "0", want: 0, ok: true},
		{name: "positive", value: "120", want: 120, ok: true},
		{name: "negative rejected", value: "-5", want: 0, ok: false},
		{name: "garbage rejected", value: "soon", want: 0, ok: false},
		{name: "fraction rejected", value: "1.5", want: 0, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content := "TELEGRAM_TOKEN = t\nSPOTIFY_CLIENT_ID = a\nSPOTIFY_CLIENT_SECRET = b"
			if tt.value != "" {
				content += "\nAUTO_DELETE_DELAY = " + tt.value
			}
			cfg, err := Load(writeConfig(t, content))
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			got, ok := cfg.AutoDeleteDelay()
			if got != tt.want || ok != tt.ok {
				t.Errorf("AutoDeleteDelay() = (%d, %v), want (%d, %v)", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestEnvDoesNotOverrideExplicitFileValue(t *testing.T) {
	t.Setenv("AUTO_DELETE_DELAY", "999")

	cfg, err := Load(writeConfig(t, strings.Join([]string{
		"TELEGRAM_TOKEN = t",
		"SPOTIFY_CLIENT_ID = a",
		"SPOTIFY_CLIENT_SECRET = b",
		"AUTO_DELETE_DELAY = 15",
	}, "\n")))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if got, ok := cfg.AutoDeleteDelay(); got != 15 || !ok {
		t.Errorf("AutoDeleteDelay() = (%d, %v), want (15, true)", got, ok)
	}
}
