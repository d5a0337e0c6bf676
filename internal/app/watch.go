package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/stellar-ptw/stellar/internal/logging"
	"github.com/stellar-ptw/stellar/internal/output"
	"github.com/stellar-ptw/stellar/internal/store"
	"github.com/stellar-ptw/stellar/internal/watcher"
)

var (
	watchDaemon   bool
	watchStop     bool
	watchQuiet    bool
	watchNotify   bool
	watchMinLevel string
	watchDebounce time.Duration
	watchNoSave   bool
)

var watchCmd = &cobra.Command{
	Use:   "watch <draft-file>",
	Short: "Re-analyze a draft file on every save",
	Long: `Watch follows a permit draft file and re-analyzes it each time it is
saved. Alerts are printed when the risk level rises or falls, when the
permit becomes invalid or valid again, and when new issues appear.

Examples:
  stellar watch draft.yaml                    # run in foreground (ctrl-c to stop)
  stellar watch draft.yaml --notify           # also send desktop notifications
  stellar watch draft.yaml --daemon &         # run in background, write PID file
  stellar watch --stop                        # stop the background daemon`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().BoolVar(&watchDaemon, "daemon", false, "Run in background mode (write PID file, log to file)")
	watchCmd.Flags().BoolVar(&watchStop, "stop", false, "Stop a running background daemon")
	watchCmd.Flags().BoolVar(&watchQuiet, "quiet", false, "Suppress terminal output, only send notifications")
	watchCmd.Flags().BoolVar(&watchNotify, "notify", false, "Send desktop notifications")
	watchCmd.Flags().StringVar(&watchMinLevel, "min-level", "warning", "Lowest alert level sent as a notification: info, warning or critical")
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", 0, "Wait this long after the last save (default from config)")
	watchCmd.Flags().BoolVar(&watchNoSave, "no-save", false, "Do not save analyses to history")
	rootCmd.AddCommand(watchCmd)
}

// pidFilePath returns the path to the daemon PID file.
func pidFilePath(dataDir string) string {
	return filepath.Join(dataDir, "watch.pid")
}

// logFilePath returns the path to the daemon log file.
func logFilePath(dataDir string) string {
	return filepath.Join(dataDir, "watch.log")
}

func runWatch(cmd *cobra.Command, args []string) error {
	e, err := newEnv(cmd.Context())
	if err != nil {
		return err
	}
	defer e.Close()

	if watchStop {
		return stopDaemon(cmd.OutOrStdout(), pidFilePath(e.cfg.DataDir))
	}
	if len(args) == 0 {
		return errors.New("pass the draft file to watch")
	}
	switch watchMinLevel {
	case "info", "warning", "critical":
	default:
		return fmt.Errorf("invalid --min-level %q", watchMinLevel)
	}

	delay := watchDebounce
	if delay <= 0 {
		delay = e.cfg.Watch.Debounce()
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	// Handle SIGINT/SIGTERM for graceful shutdown.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, shutdownSignals...)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			cancel()
		case <-ctx.Done():
		}
	}()

	if watchDaemon {
		return runDaemon(ctx, e, args[0], delay)
	}
	return runForeground(ctx, cmd.OutOrStdout(), e, args[0], delay)
}

// newDraftWatcher builds a watcher over path that saves each analysis and
// passes alerts to the notifier and alertFn.
func newDraftWatcher(e *env, path string, delay time.Duration, logger *zap.Logger, alertFn func(watcher.Alert)) *watcher.Watcher {
	var notifier *watcher.Notifier
	if watchNotify {
		notifier = watcher.NewNotifier(watchMinLevel)
	}

	w := watcher.New(path, e.engine, e.lang, delay, func(a watcher.Alert) {
		if notifier != nil {
			if err := notifier.Notify(a); err != nil {
				logger.Warn("desktop notification failed", zap.Error(err))
			}
		}
		alertFn(a)
	})
	w.Logger = logger
	if !watchNoSave {
		w.OnAnalysis = func(s watcher.State) {
			id, err := saveHistory(context.Background(), e, store.SourceWatch, s.Request, s.Analysis)
			if err != nil {
				logger.Warn("saving watched analysis", zap.Error(err))
				return
			}
			logger.Debug("analysis saved", zap.String("id", id))
		}
	}
	return w
}

// runForeground runs the watcher with live terminal output.
func runForeground(ctx context.Context, out io.Writer, e *env, path string, delay time.Duration) error {
	w := newDraftWatcher(e, path, delay, e.logger, func(a watcher.Alert) {
		if !watchQuiet {
			printAlert(out, a)
		}
	})

	if !watchQuiet {
		fmt.Fprintf(out, "stellar watching %s... (debounce %s)\n", path, delay)
	}

	// The first analysis is the baseline; later ones only surface as alerts.
	save := w.OnAnalysis
	baseline := true
	w.OnAnalysis = func(s watcher.State) {
		if save != nil {
			save(s)
		}
		if baseline && !watchQuiet {
			fmt.Fprintf(out, "[%s] %s %s risk %.0f, quality %.0f, %s\n",
				s.Timestamp.Format("15:04:05"),
				checkMark(),
				output.Level(string(s.Level)),
				s.RiskScore,
				s.QualityScore,
				validity(s.Valid),
			)
		}
		baseline = false
	}

	err := w.Run(ctx)
	if errors.Is(err, context.Canceled) {
		if !watchQuiet {
			fmt.Fprintln(out, "\nStopped.")
		}
		return nil
	}
	return err
}

// runDaemon sets up the PID and log files, then runs the watcher. The
// actual backgrounding should be done by the caller (nohup, &, etc.) since
// Go cannot reliably fork.
func runDaemon(ctx context.Context, e *env, path string, delay time.Duration) error {
	dataDir := e.cfg.DataDir
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}

	pidFile := pidFilePath(dataDir)
	if pid, err := readPID(pidFile); err == nil {
		if processExists(pid) {
			return fmt.Errorf("daemon already running (PID %d). Use --stop to stop it", pid)
		}
		// Stale PID file, remove it.
		_ = os.Remove(pidFile)
	}

	pid := os.Getpid()
	if err := os.WriteFile(pidFile, []byte(strconv.Itoa(pid)), 0o644); err != nil {
		return fmt.Errorf("writing PID file: %w", err)
	}
	defer func() { _ = os.Remove(pidFile) }()

	logger, err := logging.NewFile(logging.Level(e.cfg.LogLevel, flagVerbose), logFilePath(dataDir))
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Warn("stellar daemon started", zap.Int("pid", pid), zap.String("draft", path))
	w := newDraftWatcher(e, path, delay, logger, func(a watcher.Alert) {
		logger.Warn("alert",
			zap.String("alert_level", a.Level),
			zap.String("title", a.Title),
			zap.String("message", a.Message),
		)
	})

	err = w.Run(ctx)
	if errors.Is(err, context.Canceled) {
		logger.Warn("daemon stopped")
		return nil
	}
	return err
}

// readPID reads the daemon PID from the PID file.
func readPID(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(strings.TrimSpace(string(data)))
}

// printAlert formats and prints an alert to the terminal.
func printAlert(out io.Writer, a watcher.Alert) {
	timestamp := a.Time.Format("15:04:05")
	fmt.Fprintf(out, "[%s] %s %s\n", timestamp, alertIcon(a.Level), a.Title)
	if a.Message != "" {
		fmt.Fprintf(out, "         %s\n", output.StyleMuted.Render(a.Message))
	}
}

// alertIcon returns the terminal indicator for an alert level.
func alertIcon(level string) string {
	switch level {
	case "critical":
		return output.StyleError.Render("\xf0\x9f\x94\xb4") // red circle
	case "warning":
		return output.StyleWarning.Render("\xe2\x9a\xa0\xef\xb8\x8f") // warning sign
	case "info":
		return output.StyleSuccess.Render("\xe2\x9c\x93") // check mark
	default:
		return " "
	}
}

// checkMark returns a terminal check mark indicator.
func checkMark() string {
	return "\xe2\x9c\x93"
}

func validity(valid bool) string {
	if valid {
		return output.StyleSuccess.Render("valid")
	}
	return output.StyleError.Render("invalid")
}
