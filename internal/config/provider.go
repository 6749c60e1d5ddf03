package config

import (
	"fmt"
	"strings"
	"time"
)

// Provider kinds.
const (
	KindKeyword   = "keyword"
	KindStatic    = "static"
	KindGemini    = "gemini"
	KindRemote    = "remote"
	KindConsensus = "consensus"
)

// ValidKinds lists all supported provider kinds.
var ValidKinds = []string{KindKeyword, KindStatic, KindGemini, KindRemote, KindConsensus}

// ProviderConfig selects and configures the verification provider.
type ProviderConfig struct {
	Kind string `yaml:"kind"`

	// Latency is the simulated delay of the keyword provider.
	Latency string `yaml:"latency"`

	// Timeout bounds a single verification. Empty means no timeout.
	Timeout string `yaml:"timeout"`

	// Seed makes the keyword provider reproducible. Zero picks a random seed.
	Seed uint64 `yaml:"seed"`

	Static    StaticConfig    `yaml:"static"`
	Gemini    GeminiConfig    `yaml:"gemini"`
	Remote    RemoteConfig    `yaml:"remote"`
	Consensus ConsensusConfig `yaml:"consensus"`
}

// StaticConfig configures the fixed-answer provider.
type StaticConfig struct {
	Verdict    string `yaml:"verdict"`
	Confidence int    `yaml:"confidence"`
}

// GeminiConfig configures the Gemini adapter.
type GeminiConfig struct {
	APIKey      string  `yaml:"api_key"`
	Model       string  `yaml:"model"`
	Temperature float32 `yaml:"temperature"`
}

// RemoteConfig configures the HTTP backend adapter.
type RemoteConfig struct {
	BaseURL string `yaml:"base_url"`
	Retries int    `yaml:"retries"`
	Timeout string `yaml:"timeout"` // per HTTP attempt
}

// ConsensusConfig configures the fan-out provider.
type ConsensusConfig struct {
	Members     []string `yaml:"members"`
	Parallelism int      `yaml:"parallelism"`
}

// DefaultProviderConfig returns the provider defaults.
func DefaultProviderConfig() ProviderConfig {
	return ProviderConfig{
		Kind:    "",
		Latency: "2s",
		Timeout: "",
		Static: StaticConfig{
			Verdict:    "NOT_ENOUGH_INFO",
			Confidence: 70,
		},
		Gemini: GeminiConfig{
			Model: "gemini-2.5-flash",
		},
		Remote: RemoteConfig{
			BaseURL: "http://localhost:8088",
			Retries: 3,
			Timeout: "30s",
		},
		Consensus: ConsensusConfig{
			Members:     []string{KindKeyword, KindStatic},
			Parallelism: 2,
		},
	}
}

// LatencyDuration returns the simulated latency.
func (p ProviderConfig) LatencyDuration() time.Duration {
	return parseDuration(p.Latency, 2*time.Second)
}

// TimeoutDuration returns the verification timeout; zero disables it.
func (p ProviderConfig) TimeoutDuration() time.Duration {
	return parseDuration(p.Timeout, 0)
}

// RemoteTimeout returns the per-attempt HTTP timeout.
func (p ProviderConfig) RemoteTimeout() time.Duration {
	return parseDuration(p.Remote.Timeout, 30*time.Second)
}

// Validate checks the kind and any credentials the kind needs.
func (p ProviderConfig) Validate() error {
	if !validKind(p.Kind) {
		return fmt.Errorf("invalid provider kind: %q (valid: %v)", p.Kind, ValidKinds)
	}

	switch p.Kind {
	case KindStatic:
		if p.Static.Confidence < 0 || p.Static.Confidence > 100 {
			return fmt.Errorf("static confidence %d out of range [0,100]", p.Static.Confidence)
		}
	case KindGemini:
		if p.Gemini.APIKey == "" {
			return fmt.Errorf("gemini: %w (set GEMINI_API_KEY)", ErrNoAPIKey)
		}
	case KindRemote:
		if strings.TrimSpace(p.Remote.BaseURL) == "" {
			return fmt.Errorf("remote provider requires base_url")
		}
	case KindConsensus:
		if len(p.Consensus.Members) == 0 {
			return fmt.Errorf("consensus provider requires at least one member")
		}
		for _, m := range p.Consensus.Members {
			if m == KindConsensus {
				return fmt.Errorf("consensus members cannot be consensus")
			}
			member := p
			member.Kind = m
			if err := member.Validate(); err != nil {
				return fmt.Errorf("consensus member %s: %w", m, err)
			}
		}
	}
	return nil
}

func validKind(kind string) bool {
	for _, k := range ValidKinds {
		if k == kind {
			return true
		}
	}
	return false
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return fallback
	}
	return d
}
