package app

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/stellar-ptw/stellar/internal/output"
	"github.com/stellar-ptw/stellar/internal/stellar"
)

var learningCmd = &cobra.Command{
	Use:   "learning",
	Short: "Export, import or inspect learned templates",
}

var learningExportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Write learned templates to a JSON file",
	Args:  cobra.ExactArgs(1),
	RunE:  runLearningExport,
}

var learningImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace learned templates with those in a JSON export",
	Args:  cobra.ExactArgs(1),
	RunE:  runLearningImport,
}

var learningStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learned template statistics",
	Args:  cobra.NoArgs,
	RunE:  runLearningStats,
}

var learningClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Forget every learned template",
	Args:  cobra.NoArgs,
	RunE:  runLearningClear,
}

func init() {
	learningCmd.AddCommand(learningExportCmd, learningImportCmd, learningStatsCmd, learningClearCmd)
	rootCmd.AddCommand(learningCmd)
}

func runLearningExport(cmd *cobra.Command, args []string) error {
	e, err := newEnv(cmd.Context())
	if err != nil {
		return err
	}
	defer e.Close()

	snap := e.engine.ExportLearning()
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding learning snapshot: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(args[0]), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(args[0], data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", args[0], err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Exported %d template(s) to %s\n", len(snap.Templates), args[0])
	return nil
}

func runLearningImport(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	var snap stellar.LearningSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return fmt.Errorf("parsing %s: %w", args[0], err)
	}

	e, err := newEnv(cmd.Context())
	if err != nil {
		return err
	}
	defer e.Close()

	e.engine.ImportLearning(snap)
	if err := e.engine.Persist(cmd.Context()); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Imported %d template(s) (snapshot version %s)\n", e.engine.Suggestions().Len(), snap.Version)
	return nil
}

func runLearningStats(cmd *cobra.Command, args []string) error {
	e, err := newEnv(cmd.Context())
	if err != nil {
		return err
	}
	defer e.Close()

	stats := e.engine.Statistics()
	out := cmd.OutOrStdout()
	if flagJSON {
		return renderJSON(out, stats)
	}

	fmt.Fprintln(out, output.Section("Learning"))
	fmt.Fprintf(out, " %s %d\n", output.StyleLabel.Render("Templates"), stats.Learning.TotalTemplates)
	fmt.Fprintf(out, " %s %d\n", output.StyleLabel.Render("Total usage"), stats.Learning.TotalUsage)
	fmt.Fprintf(out, " %s %.1f\n", output.StyleLabel.Render("Average frequency"), stats.Learning.AverageFrequency)
	fmt.Fprintf(out, " %s %d\n", output.StyleLabel.Render("Risk patterns"), stats.PatternCount)
	if mp := stats.Learning.MostPopular; mp != nil {
		fmt.Fprintf(out, " %s %s (%d×)\n", output.StyleLabel.Render("Most popular"), mp.Description, mp.Frequency)
	}

	popular := e.engine.Suggestions().Popular(5)
	if len(popular) > 1 {
		fmt.Fprintln(out)
		tbl := output.NewTable("Description", "Uses", "Duration", "Workers")
		for _, t := range popular {
			duration := "-"
			if t.Duration > 0 {
				duration = fmt.Sprintf("%.1f h", t.Duration)
			}
			workers := "-"
			if t.Workers > 0 {
				workers = fmt.Sprintf("%d", t.Workers)
			}
			tbl.AddRow(shorten(t.Description, 40), fmt.Sprintf("%d", t.Frequency), duration, workers)
		}
		fmt.Fprint(out, tbl.String())
	}
	return nil
}

func runLearningClear(cmd *cobra.Command, args []string) error {
	e, err := newEnv(cmd.Context())
	if err != nil {
		return err
	}
	defer e.Close()

	n := e.engine.Suggestions().Len()
	e.engine.Suggestions().Clear()
	if err := e.engine.Persist(cmd.Context()); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Cleared %d template(s)\n", n)
	return nil
}
