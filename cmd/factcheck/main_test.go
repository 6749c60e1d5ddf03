package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"factcheck/internal/claim"
	"factcheck/internal/config"
	"factcheck/internal/render"
	"factcheck/internal/stats"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args in a fresh workspace.
func execute(t *testing.T, ws string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("FACTCHECK_PROVIDER", "")
	t.Setenv("FACTCHECK_REMOTE_URL", "")

	providerKind, timeout, checkJSON, checkPlain, configForce = "", 0, false, false, false

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append([]string{"-w", ws}, args...))
	err := rootCmd.Execute()
	return out.String(), err
}

func TestCheck_JSON(t *testing.T) {
	ws := t.TempDir()
	out, err := execute(t, ws, "check", "--provider", "static", "--json", "The", "sky", "is", "blue")
	require.NoError(t, err)

	var res claim.Result
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, claim.VerdictNotEnoughInfo, res.Verdict)
	assert.Equal(t, 70, res.Confidence)
	assert.Len(t, res.Sources, 3)

	// the outcome was recorded
	tr, err := stats.NewTracker(filepath.Join(config.Dir(ws), "stats.json"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), tr.Snapshot().Total.Calls)
}

func TestCheck_Plain(t *testing.T) {
	out, err := execute(t, t.TempDir(), "check", "--provider", "static", "--plain", "Water is wet")
	require.NoError(t, err)
	assert.Contains(t, out, "NOT ENOUGH INFO")
	assert.Contains(t, out, "70%")
	assert.Contains(t, out, "**BBC News**")
}

func TestCheck_EmptyClaim(t *testing.T) {
	_, err := execute(t, t.TempDir(), "check", "--provider", "static", "   ")
	assert.Error(t, err)
}

func TestCheck_InvalidProvider(t *testing.T) {
	_, err := execute(t, t.TempDir(), "check", "--provider", "oracle", "claim")
	assert.Error(t, err)
}

func TestConfigInit(t *testing.T) {
	ws := t.TempDir()
	out, err := execute(t, ws, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, out, "config.yaml")

	_, err = os.Stat(config.DefaultPath(ws))
	require.NoError(t, err)

	_, err = execute(t, ws, "config", "init")
	assert.Error(t, err, "refuses to overwrite without --force")

	_, err = execute(t, ws, "config", "init", "--force")
	assert.NoError(t, err)
}

func TestConfigShow_MasksKey(t *testing.T) {
	ws := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.Provider.Gemini.APIKey = "secret-key"
	require.NoError(t, cfg.Save(config.DefaultPath(ws)))

	out, err := execute(t, ws, "config", "show")
	require.NoError(t, err)
	assert.NotContains(t, out, "secret-key")
	assert.Contains(t, out, "********")
}

func TestStats_Empty(t *testing.T) {
	out, err := execute(t, t.TempDir(), "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "Verifications: 0")
}

func TestPrintStats(t *testing.T) {
	tr := stats.NewMemoryTracker()
	tr.Record(stats.Outcome{Provider: "keyword", Verdict: "REAL", Confidence: 90})
	tr.Record(stats.Outcome{Provider: "keyword", Failed: true})

	var b strings.Builder
	printStats(&b, tr.Snapshot())
	out := b.String()
	assert.Contains(t, out, "Verifications: 2 (failed 1)")
	assert.Contains(t, out, "REAL")
	assert.Contains(t, out, "keyword")
}

func TestConsoleSurface_Markdown(t *testing.T) {
	s := &consoleSurface{}
	render.Apply(s, render.Build(claim.Result{
		Verdict:    claim.VerdictFake,
		Confidence: 50,
		Sources:    []claim.Evidence{{Name: "Reuters", Text: "Contradicted"}},
	}))
	md := s.Markdown("The earth is flat")
	assert.Contains(t, md, "> The earth is flat")
	assert.Contains(t, md, "`FAKE`")
	assert.Contains(t, md, "50%")
	assert.Contains(t, md, "- **Reuters**: Contradicted")

	failed := &consoleSurface{}
	failed.Notify("Something went wrong. Please try again.")
	assert.Contains(t, failed.Markdown("x"), "Something went wrong")
	assert.NotContains(t, failed.Markdown("x"), "Evidence")
}

func TestBar(t *testing.T) {
	assert.Equal(t, "`"+strings.Repeat("░", 10)+"`", bar(0, 10))
	assert.Equal(t, "`"+strings.Repeat("█", 5)+strings.Repeat("░", 5)+"`", bar(0.5, 10))
	assert.Equal(t, "`"+strings.Repeat("█", 10)+"`", bar(1.5, 10))
}
