package watcher

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"
)

var alertRank = map[string]int{"info": 0, "warning": 1, "critical": 2}

// Notifier sends alerts as desktop notifications. On macOS it uses
// osascript, on Linux notify-send; otherwise, or when those fail, the alert
// is written to Fallback.
type Notifier struct {
	// MinLevel drops alerts below this level. Empty means deliver all.
	MinLevel string
	Fallback io.Writer

	goos     string
	lookPath func(string) (string, error)
	run      func(name string, args ...string) error
}

// NewNotifier creates a Notifier for the current platform writing fallbacks
// to stderr.
func NewNotifier(minLevel string) *Notifier {
	return &Notifier{
		MinLevel: minLevel,
		Fallback: os.Stderr,
		goos:     runtime.GOOS,
		lookPath: exec.LookPath,
		run: func(name string, args ...string) error {
			return exec.Command(name, args...).Run()
		},
	}
}

// Notify delivers alert unless it is below MinLevel.
func (n *Notifier) Notify(alert Alert) error {
	if n.MinLevel != "" && alertRank[alert.Level] < alertRank[n.MinLevel] {
		return nil
	}
	switch n.goos {
	case "darwin":
		script := fmt.Sprintf(`display notification %q with title "stellar" subtitle %q`, alert.Message, alert.Title)
		if err := n.run("osascript", "-e", script); err != nil {
			return n.fallback(alert)
		}
		return nil
	case "linux":
		if _, err := n.lookPath("notify-send"); err != nil {
			return n.fallback(alert)
		}
		args := []string{"-u", urgency(alert.Level), "stellar: " + alert.Title, alert.Message}
		if err := n.run("notify-send", args...); err != nil {
			return n.fallback(alert)
		}
		return nil
	default:
		return n.fallback(alert)
	}
}

func (n *Notifier) fallback(alert Alert) error {
	_, err := fmt.Fprintf(n.Fallback, "[%s] %s: %s\n", alert.Level, alert.Title, alert.Message)
	return err
}

func urgency(level string) string {
	switch level {
	case "critical":
		return "critical"
	case "warning":
		return "normal"
	default:
		return "low"
	}
}
