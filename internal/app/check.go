package app

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/stellar-ptw/stellar/internal/anomaly"
	"github.com/stellar-ptw/stellar/internal/lang"
	"github.com/stellar-ptw/stellar/internal/output"
	"github.com/stellar-ptw/stellar/internal/personnel"
	"github.com/stellar-ptw/stellar/internal/stellar"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Data-quality checks for permits and personnel",
}

var (
	checkDraft draftFlags

	checkPermitsWorkers int

	checkPersonID       string
	checkPersonName     string
	checkPersonEmail    string
	checkPersonPhone    string
	checkPersonPosition string
)

var checkPermitCmd = &cobra.Command{
	Use:   "permit [draft-file]",
	Short: "Check a single permit draft",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCheckPermit,
}

var checkPermitsCmd = &cobra.Command{
	Use:   "permits <batch-file>",
	Short: "Check every permit in a batch file",
	Long: `Check every permit in a YAML or JSON batch file. The file holds a list of
drafts, or an object with a "permits" list. Results keep the file order.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheckPermits,
}

var checkPersonCmd = &cobra.Command{
	Use:   "person",
	Short: "Check a personnel record",
	Long: `Check a personnel record given with flags, or a roster entry by --id.

  stellar check person --name "Иван Петров" --email ivan@example.com --phone "+7 900 123-45-67"
  stellar check person --roster people.yaml --id 7`,
	Args: cobra.NoArgs,
	RunE: runCheckPerson,
}

func init() {
	checkDraft.bind(checkPermitCmd)
	checkPermitsCmd.Flags().IntVar(&checkPermitsWorkers, "workers", runtime.NumCPU(), "Permits checked in parallel")

	checkPersonCmd.Flags().StringVar(&checkPersonID, "id", "", "Check this roster entry")
	checkPersonCmd.Flags().StringVar(&checkPersonName, "name", "", "Full name")
	checkPersonCmd.Flags().StringVar(&checkPersonEmail, "email", "", "Email address")
	checkPersonCmd.Flags().StringVar(&checkPersonPhone, "phone", "", "Phone number")
	checkPersonCmd.Flags().StringVar(&checkPersonPosition, "position", "", "Position")

	checkCmd.AddCommand(checkPermitCmd, checkPermitsCmd, checkPersonCmd)
	rootCmd.AddCommand(checkCmd)
}

func runCheckPermit(cmd *cobra.Command, args []string) error {
	e, err := newEnv(cmd.Context())
	if err != nil {
		return err
	}
	defer e.Close()

	req, err := checkDraft.request(cmd, args)
	if err != nil {
		return err
	}
	report := e.engine.Anomaly().CheckPermitData(req.Permit(), e.lang)
	if flagJSON {
		return renderJSON(cmd.OutOrStdout(), report)
	}
	renderReport(cmd.OutOrStdout(), "Permit check", report)
	return nil
}

// batchResult pairs a permit with its report.
type batchResult struct {
	Index       int            `json:"index"`
	Description string         `json:"description"`
	Report      anomaly.Report `json:"report"`
}

// checkBatch checks reqs concurrently, at most workers at a time. Results
// are returned in input order.
func checkBatch(d *anomaly.Detector, reqs []stellar.Request, l lang.Language, workers int) ([]batchResult, error) {
	results := make([]batchResult, len(reqs))
	var g errgroup.Group
	g.SetLimit(max(workers, 1))
	for i, req := range reqs {
		g.Go(func() error {
			results[i] = batchResult{
				Index:       i + 1,
				Description: req.Description,
				Report:      d.CheckPermitData(req.Permit(), l),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func runCheckPermits(cmd *cobra.Command, args []string) error {
	e, err := newEnv(cmd.Context())
	if err != nil {
		return err
	}
	defer e.Close()

	reqs, err := stellar.LoadRequests(args[0])
	if err != nil {
		return fmt.Errorf("loading permits: %w", err)
	}
	results, err := checkBatch(e.engine.Anomaly(), reqs, e.lang, checkPermitsWorkers)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if flagJSON {
		return renderJSON(out, results)
	}

	tbl := output.NewTable("#", "Description", "Status", "Score", "Issues")
	invalid := 0
	for _, r := range results {
		status := output.StyleSuccess.Render("valid")
		if !r.Report.IsValid {
			status = output.StyleError.Render("invalid")
			invalid++
		}
		tbl.AddRow(
			fmt.Sprintf("%d", r.Index),
			shorten(r.Description, 40),
			status,
			fmt.Sprintf("%.0f", r.Report.Score),
			fmt.Sprintf("%d", len(r.Report.Anomalies)+len(r.Report.Warnings)),
		)
	}
	fmt.Fprintln(out, output.Section("Permit batch"))
	fmt.Fprint(out, tbl.String())
	fmt.Fprintf(out, "\n %d of %d permits invalid\n", invalid, len(results))
	return nil
}

func runCheckPerson(cmd *cobra.Command, args []string) error {
	e, err := newEnv(cmd.Context())
	if err != nil {
		return err
	}
	defer e.Close()

	data := anomaly.PersonData{
		Name:     checkPersonName,
		Email:    checkPersonEmail,
		Phone:    checkPersonPhone,
		Position: checkPersonPosition,
	}
	if checkPersonID != "" {
		if err := e.requireRoster(); err != nil {
			return err
		}
		p, ok := personnel.FindByID(e.roster, checkPersonID)
		if !ok {
			return fmt.Errorf("person %q not in roster", checkPersonID)
		}
		data = anomaly.PersonData{Name: p.Name, Email: p.Email, Phone: p.Phone, Position: p.Position}
	} else if !cmd.Flags().Changed("name") {
		return errors.New("pass --name or --id")
	}

	report := e.engine.Anomaly().CheckPersonnelData(data, e.lang)
	if flagJSON {
		return renderJSON(cmd.OutOrStdout(), report)
	}
	renderReport(cmd.OutOrStdout(), "Personnel check", report)
	return nil
}

// shorten truncates s to n runes with an ellipsis.
func shorten(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
