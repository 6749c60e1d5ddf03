package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"factcheck/internal/claim"
	"factcheck/internal/verify"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	checkJSON  bool
	checkPlain bool
)

// checkCmd verifies one claim and prints the result.
var checkCmd = &cobra.Command{
	Use:   "check [claim]",
	Short: "Verify a single claim",
	Long: `Runs one claim through the verification workflow and prints the verdict,
confidence and evidence.

Example:
  factcheck check "The sky is blue"
  factcheck check --provider gemini --json "The earth is flat"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().BoolVar(&checkJSON, "json", false, "Print the raw result as JSON")
	checkCmd.Flags().BoolVar(&checkPlain, "plain", false, "Print markdown without terminal styling")
}

func runCheck(cmd *cobra.Command, args []string) error {
	ctx, cancel := signalContext()
	defer cancel()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	tr := openTracker(cfg, logger)
	defer saveTracker(tr, logger)

	p, err := buildProvider(ctx, cfg, tr, logger)
	if err != nil {
		return err
	}

	edit := claim.Guard(strings.Join(args, " "))
	if edit.OverLimit {
		logger.Warn("claim truncated", zap.Int("max_chars", claim.MaxChars))
	}

	surface := &consoleSurface{}
	ctrl := verify.NewController(surface, logger)
	admitted, verr := ctrl.Run(ctx, p, edit.Text)
	if !admitted {
		return fmt.Errorf("claim is empty")
	}

	out := cmd.OutOrStdout()
	if checkJSON {
		if verr != nil {
			return verr
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(ctrl.UI().Current)
	}

	fmt.Fprint(out, renderMarkdown(surface.Markdown(claim.Normalize(edit.Text)), checkPlain))
	return verr
}
