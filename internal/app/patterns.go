package app

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/stellar-ptw/stellar/internal/risk"
)

var patternsCmd = &cobra.Command{
	Use:   "patterns",
	Short: "Export or import the risk pattern table",
	Long: `The risk pattern table maps keywords to hazards, PPE and safety measures.
Export the active table, edit it, and import it back to customize scoring.
Imported tables are written to patterns_file, or patterns.yaml in the data
directory when no file is configured.`,
}

var patternsExportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Write the active pattern table (YAML or JSON by extension)",
	Args:  cobra.ExactArgs(1),
	RunE:  runPatternsExport,
}

var patternsImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Validate a pattern table and make it the active one",
	Args:  cobra.ExactArgs(1),
	RunE:  runPatternsImport,
}

func init() {
	patternsCmd.AddCommand(patternsExportCmd, patternsImportCmd)
	rootCmd.AddCommand(patternsCmd)
}

func runPatternsExport(cmd *cobra.Command, args []string) error {
	e, err := newEnv(cmd.Context())
	if err != nil {
		return err
	}
	defer e.Close()

	patterns := e.engine.Risk().ExportPatterns()
	if err := risk.WritePatternsFile(args[0], patterns); err != nil {
		return fmt.Errorf("writing patterns: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Exported %d pattern(s) to %s\n", len(patterns), args[0])
	return nil
}

func runPatternsImport(cmd *cobra.Command, args []string) error {
	patterns, err := risk.LoadPatternsFile(args[0])
	if err != nil {
		return err
	}
	if err := validatePatterns(patterns); err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}

	e, err := newEnv(cmd.Context())
	if err != nil {
		return err
	}
	defer e.Close()

	dest := e.patternsPath()
	if err := risk.WritePatternsFile(dest, patterns); err != nil {
		return fmt.Errorf("writing patterns: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Imported %d pattern(s) into %s\n", len(patterns), dest)
	return nil
}

// validatePatterns rejects tables the analyzer would silently score as
// nonsense.
func validatePatterns(patterns []risk.Pattern) error {
	if len(patterns) == 0 {
		return errors.New("no patterns")
	}
	seen := make(map[string]bool, len(patterns))
	var problems []string
	for i, p := range patterns {
		switch {
		case p.ID == "":
			problems = append(problems, fmt.Sprintf("pattern %d: missing id", i+1))
		case seen[p.ID]:
			problems = append(problems, fmt.Sprintf("pattern %s: duplicate id", p.ID))
		}
		seen[p.ID] = true
		if len(p.Keywords) == 0 {
			problems = append(problems, fmt.Sprintf("pattern %s: no keywords", p.ID))
		}
		if p.BaseScore < 0 || p.BaseScore > 100 {
			problems = append(problems, fmt.Sprintf("pattern %s: base_score %.0f outside 0-100", p.ID, p.BaseScore))
		}
		switch p.Level {
		case risk.LevelLow, risk.LevelMedium, risk.LevelHigh, risk.LevelCritical:
		default:
			problems = append(problems, fmt.Sprintf("pattern %s: unknown risk_level %q", p.ID, p.Level))
		}
	}
	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}
