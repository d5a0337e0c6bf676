package app

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stellar-ptw/stellar/internal/output"
	"github.com/stellar-ptw/stellar/internal/stellar"
	"github.com/stellar-ptw/stellar/internal/store"
	"github.com/stellar-ptw/stellar/internal/watcher"
)

var (
	historyLimit int
	historyLevel string
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List saved analyses",
	Long: `History lists analyses saved by 'analyze', 'watch' and the MCP server,
newest first. Use 'history show <id>' to print one in full.`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

var historyDiffCmd = &cobra.Command{
	Use:   "diff <old-id> <new-id>",
	Short: "Compare two saved analyses",
	Long: `Diff shows how the risk and quality scores moved between two saved
analyses, and lists the changes the watcher would have alerted on.`,
	Args: cobra.ExactArgs(2),
	RunE: runHistoryDiff,
}

var historyShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print a saved analysis",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "Number of analyses to show")
	historyCmd.Flags().StringVar(&historyLevel, "level", "", "Only show this risk level")
	historyCmd.AddCommand(historyShowCmd)
	historyCmd.AddCommand(historyDiffCmd)
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	e, err := newEnv(cmd.Context())
	if err != nil {
		return err
	}
	defer e.Close()

	list, err := e.db.ListAnalyses(cmd.Context(), historyLimit, historyLevel)
	if err != nil {
		return fmt.Errorf("listing analyses: %w", err)
	}
	out := cmd.OutOrStdout()
	if flagJSON {
		return renderJSON(out, list)
	}

	total, err := e.db.CountAnalyses(cmd.Context())
	if err != nil {
		return fmt.Errorf("counting analyses: %w", err)
	}
	fmt.Fprintln(out, output.Section(fmt.Sprintf("History (%d of %d)", len(list), total)))
	if len(list) == 0 {
		fmt.Fprintln(out, output.StyleMuted.Render(" No analyses saved yet."))
		return nil
	}
	tbl := output.NewTable("ID", "When", "Source", "Level", "Risk", "Quality", "Description")
	for _, a := range list {
		tbl.AddRow(
			shortID(a.ID),
			a.CreatedAt.Local().Format("2006-01-02 15:04"),
			a.Source,
			output.Level(a.RiskLevel),
			fmt.Sprintf("%.0f", a.RiskScore),
			fmt.Sprintf("%.0f", a.QualityScore),
			shorten(a.Description, 36),
		)
	}
	fmt.Fprint(out, tbl.String())
	return nil
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	e, err := newEnv(cmd.Context())
	if err != nil {
		return err
	}
	defer e.Close()

	a, err := e.db.FindAnalysis(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("analysis %s: %w", args[0], err)
	}
	if flagJSON {
		_, err := cmd.OutOrStdout().Write(append(a.Payload, '\n'))
		return err
	}
	var analysis stellar.ComprehensiveAnalysis
	if err := json.Unmarshal(a.Payload, &analysis); err != nil {
		return fmt.Errorf("decoding analysis %s: %w", a.ID, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), " %s\n", output.StyleMuted.Render(fmt.Sprintf("%s · %s · %s", a.ID, a.CreatedAt.Local().Format("2006-01-02 15:04:05"), a.Description)))
	renderAnalysis(cmd.OutOrStdout(), analysis)
	return nil
}

// scoreDelta is the change of one score between two analyses.
type scoreDelta struct {
	Name           string  `json:"name"`
	Previous       float64 `json:"previous"`
	Current        float64 `json:"current"`
	Delta          float64 `json:"delta"`
	HigherIsBetter bool    `json:"higher_is_better"`
}

// historyDiff is the JSON-serializable result of 'history diff'.
type historyDiff struct {
	From    string          `json:"from"`
	To      string          `json:"to"`
	Deltas  []scoreDelta    `json:"deltas"`
	Changes []watcher.Alert `json:"changes"`
}

func runHistoryDiff(cmd *cobra.Command, args []string) error {
	e, err := newEnv(cmd.Context())
	if err != nil {
		return err
	}
	defer e.Close()

	var states [2]*watcher.State
	var rows [2]*store.Analysis
	for i, id := range args {
		a, err := e.db.FindAnalysis(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("analysis %s: %w", id, err)
		}
		states[i], err = storedState(a)
		if err != nil {
			return err
		}
		rows[i] = a
	}

	diff := diffStates(states[0], states[1])
	diff.From, diff.To = rows[0].ID, rows[1].ID

	out := cmd.OutOrStdout()
	if flagJSON {
		return renderJSON(out, diff)
	}

	fmt.Fprintln(out, output.Section("History: Comparison"))
	fmt.Fprintf(out, " %s → %s\n\n", shortID(diff.From), shortID(diff.To))
	fmt.Fprintf(out, " Level: %s → %s\n\n", output.Level(string(states[0].Level)), output.Level(string(states[1].Level)))

	tbl := output.NewTable("Score", "Previous", "Current", "Delta", "Trend")
	for _, d := range diff.Deltas {
		tbl.AddRow(
			d.Name,
			fmt.Sprintf("%.0f", d.Previous),
			fmt.Sprintf("%.0f", d.Current),
			fmt.Sprintf("%+.0f", d.Delta),
			output.TrendArrow(d.Delta, d.HigherIsBetter),
		)
	}
	fmt.Fprint(out, tbl.String())

	if len(diff.Changes) == 0 {
		fmt.Fprintln(out, output.StyleMuted.Render("\n No notable changes."))
		return nil
	}
	fmt.Fprintln(out)
	for _, c := range diff.Changes {
		fmt.Fprintf(out, " %s %s\n", alertIcon(c.Level), c.Title)
		if c.Message != "" {
			fmt.Fprintf(out, "   %s\n", output.StyleMuted.Render(c.Message))
		}
	}
	return nil
}

// storedState rebuilds the watcher view of a saved analysis.
func storedState(a *store.Analysis) (*watcher.State, error) {
	var analysis stellar.ComprehensiveAnalysis
	if err := json.Unmarshal(a.Payload, &analysis); err != nil {
		return nil, fmt.Errorf("decoding analysis %s: %w", a.ID, err)
	}
	return watcher.NewState(stellar.Request{Description: a.Description}, analysis, a.CreatedAt), nil
}

func diffStates(prev, curr *watcher.State) historyDiff {
	return historyDiff{
		Deltas: []scoreDelta{
			{Name: "Risk", Previous: prev.RiskScore, Current: curr.RiskScore, Delta: curr.RiskScore - prev.RiskScore},
			{Name: "Quality", Previous: prev.QualityScore, Current: curr.QualityScore, Delta: curr.QualityScore - prev.QualityScore, HigherIsBetter: true},
		},
		Changes: watcher.Compare(prev, curr),
	}
}

// shortID is the ID prefix shown in listings; 'history show' accepts it.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
