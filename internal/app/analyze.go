package app

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/stellar-ptw/stellar/internal/stellar"
	"github.com/stellar-ptw/stellar/internal/store"
)

var (
	analyzeDraft    draftFlags
	analyzeRoles    []string
	analyzeSkills   []string
	analyzeDept     string
	analyzeTeamSize int
	analyzeNoSave   bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [draft-file]",
	Short: "Full analysis of a permit draft",
	Long: `Analyze runs every check over a permit draft: risk assessment, data
quality, suggestions learned from past work and, when a roster is loaded,
personnel and team recommendations. The result is saved to history.

The draft is a YAML or JSON file, or is given with flags:

  stellar analyze draft.yaml
  stellar analyze -d "сварочные работы в тоннеле" --start 2025-06-01 --end 2025-06-01T18:00
  stellar analyze draft.yaml --roster people.yaml --role foreman --role worker`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeDraft.bind(analyzeCmd)
	analyzeCmd.Flags().StringSliceVar(&analyzeRoles, "role", nil, "Required team roles (default from config)")
	analyzeCmd.Flags().StringSliceVar(&analyzeSkills, "skill", nil, "Required skills")
	analyzeCmd.Flags().StringVar(&analyzeDept, "department", "", "Preferred department ID")
	analyzeCmd.Flags().IntVar(&analyzeTeamSize, "team-size", 0, "Team size (default from config)")
	analyzeCmd.Flags().BoolVar(&analyzeNoSave, "no-save", false, "Do not save the analysis to history")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	e, err := newEnv(cmd.Context())
	if err != nil {
		return err
	}
	defer e.Close()

	req, err := analyzeDraft.request(cmd, args)
	if err != nil {
		return err
	}

	// Flags override the draft; the config fills what is still missing.
	if cmd.Flags().Changed("role") || len(req.RequiredRoles) == 0 {
		names := analyzeRoles
		if !cmd.Flags().Changed("role") {
			names = e.cfg.Team.RequiredRoles
		}
		if req.RequiredRoles, err = parseRoles(names); err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("skill") {
		req.RequiredSkills = analyzeSkills
	}
	if cmd.Flags().Changed("department") {
		req.DepartmentID = analyzeDept
	}
	if cmd.Flags().Changed("team-size") {
		req.TeamSize = analyzeTeamSize
	}
	if req.TeamSize == 0 {
		req.TeamSize = e.cfg.Team.DefaultSize
	}
	if len(req.Roster) == 0 {
		req.Roster = e.roster
	}

	result := e.engine.Analyze(req, e.lang)

	if !analyzeNoSave {
		id, err := saveHistory(cmd.Context(), e, store.SourceCLI, req, result)
		if err != nil {
			return err
		}
		e.logger.Debug("analysis saved", zap.String("id", id))
	}

	if flagJSON {
		return renderJSON(cmd.OutOrStdout(), result)
	}
	renderAnalysis(cmd.OutOrStdout(), result)
	return nil
}

func saveHistory(ctx context.Context, e *env, source string, req stellar.Request, a stellar.ComprehensiveAnalysis) (string, error) {
	payload, err := json.Marshal(a)
	if err != nil {
		return "", fmt.Errorf("encoding analysis: %w", err)
	}
	id, err := e.db.SaveAnalysis(ctx, &store.Analysis{
		Source:       source,
		Description:  req.Description,
		RiskLevel:    string(a.Risk.Level),
		RiskScore:    a.Risk.Score,
		QualityScore: a.Quality.Score,
		IsValid:      a.Quality.IsValid,
		Payload:      payload,
	})
	if err != nil {
		return "", fmt.Errorf("saving analysis: %w", err)
	}
	return id, nil
}
