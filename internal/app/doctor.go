package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"github.com/stellar-ptw/stellar/internal/anomaly"
	"github.com/stellar-ptw/stellar/internal/config"
	"github.com/stellar-ptw/stellar/internal/lang"
	"github.com/stellar-ptw/stellar/internal/output"
	"github.com/stellar-ptw/stellar/internal/personnel"
	"github.com/stellar-ptw/stellar/internal/risk"
	"github.com/stellar-ptw/stellar/internal/stellar"
	"github.com/stellar-ptw/stellar/internal/store"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check whether the stellar setup is healthy",
	Long: `Run a series of health checks against your stellar configuration,
data directory, pattern table and roster. Prints a pass/fail line for each
check and a summary of how many checks passed.`,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

// doctorCheck holds the result of a single health check.
type doctorCheck struct {
	Name    string `json:"name"`
	Passed  bool   `json:"passed"`
	Message string `json:"message"`
}

// doctorOutput is the JSON-serializable result of the doctor command.
type doctorOutput struct {
	Checks      []doctorCheck `json:"checks"`
	PassedCount int           `json:"passed"`
	TotalCount  int           `json:"total"`
}

func runDoctor(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	output.AutoColor(cfg.Output.Color && !flagNoColor && !flagJSON, os.Stdout)

	checks := runDoctorChecks(cmd.Context(), cfg)

	passed := 0
	for _, c := range checks {
		if c.Passed {
			passed++
		}
	}

	out := cmd.OutOrStdout()
	if flagJSON {
		return renderJSON(out, doctorOutput{
			Checks:      checks,
			PassedCount: passed,
			TotalCount:  len(checks),
		})
	}

	fmt.Fprintln(out, output.Section("Doctor"))
	fmt.Fprintln(out)
	for _, c := range checks {
		renderDoctorCheck(out, c)
	}
	fmt.Fprintln(out)
	summary := fmt.Sprintf("%d/%d checks passed", passed, len(checks))
	if passed == len(checks) {
		fmt.Fprintf(out, " %s\n\n", output.StyleSuccess.Render(summary))
	} else {
		fmt.Fprintf(out, " %s\n\n", output.StyleWarning.Render(summary))
	}
	return nil
}

func runDoctorChecks(ctx context.Context, cfg *config.Config) []doctorCheck {
	checks := []doctorCheck{
		checkLanguage(cfg.Language),
		checkDataDir(cfg.DataDir),
	}
	checks = append(checks, checkDatabase(ctx, cfg.DBPath()))
	checks = append(checks, checkPatterns(cfg))

	rosterFile := cfg.RosterFile
	if flagRoster != "" {
		rosterFile = flagRoster
	}
	checks = append(checks, checkRoster(rosterFile))
	checks = append(checks, checkWatchDaemon(pidFilePath(cfg.DataDir)))
	checks = append(checks, checkNotifier(runtime.GOOS, exec.LookPath))
	return checks
}

// renderDoctorCheck prints a single check result line.
func renderDoctorCheck(out io.Writer, c doctorCheck) {
	var indicator string
	if c.Passed {
		indicator = output.StyleSuccess.Render("✓")
	} else {
		indicator = output.StyleWarning.Render("✗")
	}
	label := output.StyleBold.Render(c.Name)
	detail := output.StyleMuted.Render(c.Message)
	fmt.Fprintf(out, "  %s  %-30s %s\n", indicator, label, detail)
}

// checkLanguage verifies the configured language is one stellar speaks.
func checkLanguage(code string) doctorCheck {
	l := lang.Parse(code)
	base, _, _ := strings.Cut(strings.ToLower(strings.TrimSpace(code)), "-")
	base, _, _ = strings.Cut(base, "_")
	if code != "" && base != string(l) {
		return doctorCheck{
			Name:    "Language",
			Passed:  false,
			Message: fmt.Sprintf("unknown language %q, falling back to %s", code, l),
		}
	}
	return doctorCheck{Name: "Language", Passed: true, Message: string(l)}
}

// checkDataDir verifies the data directory exists and is writable.
func checkDataDir(dir string) doctorCheck {
	info, err := os.Stat(dir)
	if err != nil {
		return doctorCheck{
			Name:    "Data directory",
			Passed:  false,
			Message: fmt.Sprintf("not found: %s", dir),
		}
	}
	if !info.IsDir() {
		return doctorCheck{
			Name:    "Data directory",
			Passed:  false,
			Message: fmt.Sprintf("path exists but is not a directory: %s", dir),
		}
	}
	probe, err := os.CreateTemp(dir, ".doctor-*")
	if err != nil {
		return doctorCheck{
			Name:    "Data directory",
			Passed:  false,
			Message: fmt.Sprintf("not writable: %s", dir),
		}
	}
	_ = probe.Close()
	_ = os.Remove(probe.Name())
	return doctorCheck{Name: "Data directory", Passed: true, Message: dir}
}

// checkDatabase opens the history database and reports its contents.
func checkDatabase(ctx context.Context, dbPath string) doctorCheck {
	if _, err := os.Stat(dbPath); err != nil {
		return doctorCheck{
			Name:    "SQLite database",
			Passed:  false,
			Message: fmt.Sprintf("not found at %s (run 'stellar analyze' to create)", dbPath),
		}
	}
	db, err := store.Open(dbPath)
	if err != nil {
		return doctorCheck{
			Name:    "SQLite database",
			Passed:  false,
			Message: fmt.Sprintf("open failed: %v", err),
		}
	}
	defer db.Close()

	n, err := db.CountAnalyses(ctx)
	if err != nil {
		return doctorCheck{Name: "SQLite database", Passed: false, Message: err.Error()}
	}
	templates := 0
	if data, err := db.GetDocument(ctx, stellar.LearningKey); err == nil && data != nil {
		var snap stellar.LearningSnapshot
		if err := json.Unmarshal(data, &snap); err != nil {
			return doctorCheck{
				Name:    "SQLite database",
				Passed:  false,
				Message: fmt.Sprintf("learning snapshot is corrupt: %v", err),
			}
		}
		templates = len(snap.Templates)
	}
	return doctorCheck{
		Name:    "SQLite database",
		Passed:  true,
		Message: fmt.Sprintf("schema v%d, %d analyses, %d learned templates", db.SchemaVersion(), n, templates),
	}
}

// checkPatterns loads and validates the pattern table the engine will use.
func checkPatterns(cfg *config.Config) doctorCheck {
	path := cfg.PatternsFile
	if path == "" {
		path = filepath.Join(cfg.DataDir, patternsFileName)
	}
	patterns, err := risk.LoadPatternsFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist) && cfg.PatternsFile == "":
		return doctorCheck{
			Name:    "Risk patterns",
			Passed:  true,
			Message: fmt.Sprintf("built-in table (%d patterns)", len(risk.DefaultPatterns())),
		}
	case err != nil:
		return doctorCheck{Name: "Risk patterns", Passed: false, Message: err.Error()}
	}
	if err := validatePatterns(patterns); err != nil {
		return doctorCheck{
			Name:    "Risk patterns",
			Passed:  false,
			Message: fmt.Sprintf("%s: %v", path, err),
		}
	}
	return doctorCheck{
		Name:    "Risk patterns",
		Passed:  true,
		Message: fmt.Sprintf("%d patterns from %s", len(patterns), path),
	}
}

// checkRoster loads the roster and runs the personnel checklist over it.
func checkRoster(path string) doctorCheck {
	if path == "" {
		return doctorCheck{
			Name:    "Roster",
			Passed:  false,
			Message: "no roster configured (personnel features disabled)",
		}
	}
	roster, err := personnel.LoadRoster(path)
	if err != nil {
		return doctorCheck{Name: "Roster", Passed: false, Message: err.Error()}
	}

	detector := anomaly.NewDetector()
	seen := make(map[string]bool, len(roster))
	var duplicates, invalid int
	for _, p := range roster {
		if seen[p.ID] {
			duplicates++
		}
		seen[p.ID] = true
		report := detector.CheckPersonnelData(anomaly.PersonData{
			Name:     p.Name,
			Email:    p.Email,
			Phone:    p.Phone,
			Position: p.Position,
		}, lang.EN)
		if !report.IsValid {
			invalid++
		}
	}
	if duplicates > 0 || invalid > 0 {
		return doctorCheck{
			Name:    "Roster",
			Passed:  false,
			Message: fmt.Sprintf("%d people, %d duplicate ids, %d invalid records", len(roster), duplicates, invalid),
		}
	}
	return doctorCheck{
		Name:    "Roster",
		Passed:  true,
		Message: fmt.Sprintf("%d people from %s", len(roster), path),
	}
}

// checkWatchDaemon checks whether the watch daemon PID file exists and the process is running.
func checkWatchDaemon(pidFile string) doctorCheck {
	pid, err := readPID(pidFile)
	if errors.Is(err, fs.ErrNotExist) {
		return doctorCheck{
			Name:    "Watch daemon",
			Passed:  false,
			Message: "not running (no PID file)",
		}
	}
	if err != nil {
		return doctorCheck{
			Name:    "Watch daemon",
			Passed:  false,
			Message: fmt.Sprintf("invalid PID file: %v", err),
		}
	}
	if !processExists(pid) {
		return doctorCheck{
			Name:    "Watch daemon",
			Passed:  false,
			Message: fmt.Sprintf("PID %d is not running (stale PID file)", pid),
		}
	}
	return doctorCheck{
		Name:    "Watch daemon",
		Passed:  true,
		Message: fmt.Sprintf("running (PID %d)", pid),
	}
}

// checkNotifier reports whether 'watch --notify' can reach the desktop.
func checkNotifier(goos string, lookPath func(string) (string, error)) doctorCheck {
	var tool string
	switch goos {
	case "darwin":
		tool = "osascript"
	case "linux":
		tool = "notify-send"
	default:
		return doctorCheck{
			Name:    "Desktop notifications",
			Passed:  false,
			Message: fmt.Sprintf("not supported on %s (alerts go to stderr)", goos),
		}
	}
	if _, err := lookPath(tool); err != nil {
		return doctorCheck{
			Name:    "Desktop notifications",
			Passed:  false,
			Message: fmt.Sprintf("%s not found (alerts go to stderr)", tool),
		}
	}
	return doctorCheck{Name: "Desktop notifications", Passed: true, Message: tool}
}
