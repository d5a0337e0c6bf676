package app

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/stellar-ptw/stellar/internal/suggestions"
)

var (
	learnFile        string
	learnDescription string
	learnWorkType    string
	learnLocation    string
	learnDuration    float64
	learnWorkers     int
	learnPPE         []string
	learnMeasures    []string
)

var learnCmd = &cobra.Command{
	Use:   "learn",
	Short: "Record completed work for future suggestions",
	Long: `Learn records completed work so later drafts with similar descriptions
get PPE, safety measures, duration and crew size suggestions. Similar works
are merged into one template and counted.

  stellar learn -d "замена подшипников насоса" --duration 4 --workers 2 --ppe Перчатки
  stellar learn --file completed.yaml`,
	Args: cobra.NoArgs,
	RunE: runLearn,
}

func init() {
	f := learnCmd.Flags()
	f.StringVar(&learnFile, "file", "", "YAML or JSON file with a list of completed works")
	f.StringVarP(&learnDescription, "description", "d", "", "Work description")
	f.StringVar(&learnWorkType, "work-type", "", "Work type")
	f.StringVar(&learnLocation, "location", "", "Work location")
	f.Float64Var(&learnDuration, "duration", 0, "Actual duration in hours")
	f.IntVar(&learnWorkers, "workers", 0, "Crew size")
	f.StringSliceVar(&learnPPE, "ppe", nil, "PPE used (repeatable)")
	f.StringSliceVar(&learnMeasures, "measure", nil, "Safety measures applied (repeatable)")
	learnCmd.MarkFlagsMutuallyExclusive("file", "description")
	rootCmd.AddCommand(learnCmd)
}

func runLearn(cmd *cobra.Command, args []string) error {
	var works []suggestions.WorkData
	switch {
	case learnFile != "":
		var err error
		if works, err = suggestions.LoadWorkData(learnFile); err != nil {
			return fmt.Errorf("loading works: %w", err)
		}
	case strings.TrimSpace(learnDescription) != "":
		works = []suggestions.WorkData{{
			WorkType:       learnWorkType,
			Description:    learnDescription,
			Location:       learnLocation,
			Duration:       learnDuration,
			RequiredPPE:    learnPPE,
			SafetyMeasures: learnMeasures,
			Workers:        learnWorkers,
		}}
	default:
		return errors.New("pass --description or --file")
	}

	e, err := newEnv(cmd.Context())
	if err != nil {
		return err
	}
	defer e.Close()

	for _, w := range works {
		e.engine.Suggestions().Learn(w)
	}
	if err := e.engine.Persist(cmd.Context()); err != nil {
		return err
	}

	stats := e.engine.Statistics()
	if flagJSON {
		return renderJSON(cmd.OutOrStdout(), struct {
			Learned int               `json:"learned"`
			Stats   suggestions.Stats `json:"stats"`
		}{len(works), stats.Learning})
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Learned %d work(s); %d template(s) stored.\n", len(works), stats.Learning.TotalTemplates)
	return nil
}
