package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// =============================================================================
// UNIFIED CONFIG TESTS
// =============================================================================

func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("FACTCHECK_PROVIDER", "")
	t.Setenv("FACTCHECK_REMOTE_URL", "")
	t.Setenv("FACTCHECK_DARK_MODE", "")
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Provider.LatencyDuration() != 2*time.Second {
		t.Errorf("expected 2s latency, got %v", cfg.Provider.LatencyDuration())
	}
	if cfg.Provider.TimeoutDuration() != 0 {
		t.Errorf("expected no timeout by default, got %v", cfg.Provider.TimeoutDuration())
	}
	if !cfg.Stats.Enabled {
		t.Error("expected stats enabled by default")
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Provider.Kind != KindKeyword {
		t.Errorf("expected keyword provider, got %s", cfg.Provider.Kind)
	}
}

func TestConfig_SaveLoad(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), DirName, FileName)

	cfg := DefaultConfig()
	cfg.Provider.Kind = KindStatic
	cfg.Provider.Static.Verdict = "FAKE"
	cfg.Provider.Timeout = "5s"
	cfg.UI.Theme = "dark"

	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Provider.Kind != KindStatic {
		t.Errorf("expected static, got %s", loaded.Provider.Kind)
	}
	if loaded.Provider.Static.Verdict != "FAKE" {
		t.Errorf("expected FAKE, got %s", loaded.Provider.Static.Verdict)
	}
	if loaded.Provider.TimeoutDuration() != 5*time.Second {
		t.Errorf("expected 5s timeout, got %v", loaded.Provider.TimeoutDuration())
	}
	if !loaded.UI.IsDark() {
		t.Error("expected dark theme")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(path, []byte("provider: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestParseDuration_Fallback(t *testing.T) {
	p := ProviderConfig{Latency: "not-a-duration", Timeout: "bogus"}
	if p.LatencyDuration() != 2*time.Second {
		t.Errorf("expected fallback latency, got %v", p.LatencyDuration())
	}
	if p.TimeoutDuration() != 0 {
		t.Errorf("expected disabled timeout, got %v", p.TimeoutDuration())
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
		is      error
	}{
		{"keyword ok", func(c *Config) { c.Provider.Kind = KindKeyword }, false, nil},
		{"unknown kind", func(c *Config) { c.Provider.Kind = "oracle" }, true, nil},
		{"gemini without key", func(c *Config) { c.Provider.Kind = KindGemini }, true, ErrNoAPIKey},
		{"gemini with key", func(c *Config) {
			c.Provider.Kind = KindGemini
			c.Provider.Gemini.APIKey = "k"
		}, false, nil},
		{"remote without url", func(c *Config) {
			c.Provider.Kind = KindRemote
			c.Provider.Remote.BaseURL = ""
		}, true, nil},
		{"static confidence above range", func(c *Config) {
			c.Provider.Kind = KindStatic
			c.Provider.Static.Confidence = 150
		}, true, nil},
		{"static confidence negative", func(c *Config) {
			c.Provider.Kind = KindStatic
			c.Provider.Static.Confidence = -1
		}, true, nil},
		{"consensus static member out of range", func(c *Config) {
			c.Provider.Kind = KindConsensus
			c.Provider.Consensus.Members = []string{KindKeyword, KindStatic}
			c.Provider.Static.Confidence = 101
		}, true, nil},
		{"nested consensus", func(c *Config) {
			c.Provider.Kind = KindConsensus
			c.Provider.Consensus.Members = []string{KindConsensus}
		}, true, nil},
		{"consensus member missing key", func(c *Config) {
			c.Provider.Kind = KindConsensus
			c.Provider.Consensus.Members = []string{KindKeyword, KindGemini}
		}, true, ErrNoAPIKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.is != nil && !errors.Is(err, tt.is) {
				t.Errorf("expected errors.Is(%v, %v)", err, tt.is)
			}
		})
	}
}

func TestStatsPath(t *testing.T) {
	cfg := DefaultConfig()
	if got := cfg.StatsPath("/ws"); got != filepath.Join("/ws", DirName, "stats.json") {
		t.Errorf("unexpected stats path %s", got)
	}
	cfg.Stats.Path = "/abs/stats.json"
	if got := cfg.StatsPath("/ws"); got != "/abs/stats.json" {
		t.Errorf("unexpected stats path %s", got)
	}
}
