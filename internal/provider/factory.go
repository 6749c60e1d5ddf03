package provider

import (
	"context"
	"fmt"

	"factcheck/internal/claim"
	"factcheck/internal/config"
)

// New builds the provider selected by cfg, wrapped with its timeout.
func New(ctx context.Context, cfg config.ProviderConfig) (Provider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	p, err := build(ctx, cfg, cfg.Kind)
	if err != nil {
		return nil, err
	}
	return WithTimeout(p, cfg.TimeoutDuration()), nil
}

func build(ctx context.Context, cfg config.ProviderConfig, kind string) (Provider, error) {
	switch kind {
	case config.KindKeyword, "":
		if cfg.Seed != 0 {
			return NewSeededKeyword(cfg.LatencyDuration(), cfg.Seed), nil
		}
		return NewKeyword(cfg.LatencyDuration(), nil), nil

	case config.KindStatic:
		v, ok := claim.ParseVerdict(cfg.Static.Verdict)
		if !ok {
			return nil, fmt.Errorf("static provider: unknown verdict %q", cfg.Static.Verdict)
		}
		return NewStatic(v, cfg.Static.Confidence), nil

	case config.KindGemini:
		return NewGemini(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model, cfg.Gemini.Temperature)

	case config.KindRemote:
		return NewRemote(cfg.Remote.BaseURL, cfg.RemoteTimeout(), cfg.Remote.Retries), nil

	case config.KindConsensus:
		members := make([]Provider, 0, len(cfg.Consensus.Members))
		for _, m := range cfg.Consensus.Members {
			if m == config.KindConsensus {
				return nil, fmt.Errorf("consensus member cannot be consensus")
			}
			p, err := build(ctx, cfg, m)
			if err != nil {
				return nil, fmt.Errorf("consensus member %s: %w", m, err)
			}
			members = append(members, p)
		}
		return NewConsensus(cfg.Consensus.Parallelism, members...), nil
	}
	return nil, fmt.Errorf("unknown provider kind %q", kind)
}
