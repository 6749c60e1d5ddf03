package main

import (
	"fmt"
	"io"
	"sort"

	"factcheck/internal/stats"

	"github.com/spf13/cobra"
)

// statsCmd prints the persisted verdict statistics.
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show verification statistics",
	RunE:  runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if !cfg.Stats.Enabled {
		fmt.Fprintln(cmd.OutOrStdout(), "Statistics are disabled (stats.enabled: false).")
		return nil
	}
	tr, err := stats.NewTracker(cfg.StatsPath(workspace))
	if err != nil {
		return err
	}
	printStats(cmd.OutOrStdout(), tr.Snapshot())
	return nil
}

func printStats(w io.Writer, agg stats.Aggregate) {
	fmt.Fprintf(w, "Verifications: %d (failed %d)\n", agg.Total.Calls, agg.Total.Failures)
	if agg.Total.Calls == 0 {
		return
	}
	fmt.Fprintf(w, "Mean latency:  %s\n", agg.Total.MeanLatency())
	fmt.Fprintf(w, "Mean confidence: %.1f\n\n", agg.Total.MeanConfidence())

	fmt.Fprintln(w, "By verdict:")
	for _, v := range sortedKeys(agg.ByVerdict) {
		fmt.Fprintf(w, "  %-16s %d\n", v, agg.ByVerdict[v])
	}

	fmt.Fprintln(w, "By provider:")
	names := make([]string, 0, len(agg.ByProvider))
	for name := range agg.ByProvider {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		c := agg.ByProvider[name]
		fmt.Fprintf(w, "  %-16s calls=%d failed=%d mean=%s\n", name, c.Calls, c.Failures, c.MeanLatency())
	}
}

func sortedKeys(m map[string]int64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
