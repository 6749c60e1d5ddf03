package provider

import (
	"context"
	"time"

	"factcheck/internal/claim"
	"factcheck/internal/stats"

	"go.uber.org/zap"
)

// WithTimeout bounds every call to p by d. d <= 0 returns p unchanged.
func WithTimeout(p Provider, d time.Duration) Provider {
	if d <= 0 {
		return p
	}
	return Func(func(ctx context.Context, text string) (claim.Result, error) {
		ctx, cancel := context.WithTimeout(ctx, d)
		defer cancel()
		return p.Verify(ctx, text)
	})
}

// Recorder receives one outcome per verification.
type Recorder interface {
	Record(o stats.Outcome)
}

// Instrument logs and records every call made through p. Claim text is
// never logged, only its length.
func Instrument(p Provider, name string, logger *zap.Logger, rec Recorder) Provider {
	if logger == nil {
		logger = zap.NewNop()
	}
	return Func(func(ctx context.Context, text string) (claim.Result, error) {
		start := time.Now()
		res, err := p.Verify(ctx, text)
		elapsed := time.Since(start)

		if err != nil {
			logger.Warn("verification failed",
				zap.String("provider", name),
				zap.Int("claim_len", len([]rune(text))),
				zap.Duration("elapsed", elapsed),
				zap.Error(err))
		} else {
			fields := []zap.Field{
				zap.String("provider", name),
				zap.String("verdict", string(res.Verdict)),
				zap.Int("confidence", res.Confidence),
				zap.Int("sources", len(res.Sources)),
				zap.Duration("elapsed", elapsed),
			}
			if !res.Verdict.Valid() {
				logger.Warn("unrecognized verdict", fields...)
			} else {
				logger.Debug("verification complete", fields...)
			}
		}

		if rec != nil {
			o := stats.Outcome{Provider: name, Duration: elapsed, Failed: err != nil}
			if err == nil {
				o.Verdict = string(res.Verdict)
				o.Confidence = res.Confidence
			}
			rec.Record(o)
		}
		return res, err
	})
}
