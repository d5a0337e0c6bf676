package app

import (
	"strings"

	"github.com/spf13/cobra"
)

var (
	riskWorkType string
	riskLocation string
)

var riskCmd = &cobra.Command{
	Use:   "risk <description...>",
	Short: "Risk assessment of a work description",
	Long: `Risk scores a free-text work description against the risk pattern table
and prints the level, hazards, required PPE and safety measures.

  stellar risk сварочные работы в тоннеле
  stellar risk --lang en "painting of the fence"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRisk,
}

func init() {
	riskCmd.Flags().StringVar(&riskWorkType, "work-type", "", "Work type, matched together with the description")
	riskCmd.Flags().StringVar(&riskLocation, "location", "", "Work location, matched together with the description")
	rootCmd.AddCommand(riskCmd)
}

func runRisk(cmd *cobra.Command, args []string) error {
	e, err := newEnv(cmd.Context())
	if err != nil {
		return err
	}
	defer e.Close()

	a := e.engine.Risk().Analyze(strings.Join(args, " "), riskWorkType, riskLocation, e.lang)
	if flagJSON {
		return renderJSON(cmd.OutOrStdout(), a)
	}
	renderAssessment(cmd.OutOrStdout(), a)
	return nil
}
