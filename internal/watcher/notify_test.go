package watcher

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"
)

type recordedCall struct {
	name string
	args []string
}

func fakeNotifier(goos string, haveNotifySend bool, runErr error) (*Notifier, *[]recordedCall, *bytes.Buffer) {
	var calls []recordedCall
	var buf bytes.Buffer
	n := &Notifier{
		Fallback: &buf,
		goos:     goos,
		lookPath: func(name string) (string, error) {
			if haveNotifySend {
				return "/usr/bin/" + name, nil
			}
			return "", errors.New("not found")
		},
		run: func(name string, args ...string) error {
			calls = append(calls, recordedCall{name: name, args: args})
			return runErr
		},
	}
	return n, &calls, &buf
}

func TestNotify_Linux(t *testing.T) {
	n, calls, buf := fakeNotifier("linux", true, nil)
	alert := Alert{Level: "critical", Title: "Risk escalated: critical", Message: "Risk score 96 (was 22, low)", Time: time.Now()}

	if err := n.Notify(alert); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(*calls) != 1 {
		t.Fatalf("expected 1 command, got %d", len(*calls))
	}
	got := (*calls)[0]
	want := []string{"-u", "critical", "stellar: Risk escalated: critical", "Risk score 96 (was 22, low)"}
	if got.name != "notify-send" || strings.Join(got.args, "|") != strings.Join(want, "|") {
		t.Errorf("unexpected command: %s %q", got.name, got.args)
	}
	if buf.Len() != 0 {
		t.Errorf("fallback should be unused, got %q", buf.String())
	}
}

func TestNotify_FallsBack(t *testing.T) {
	tests := []struct {
		name    string
		goos    string
		haveCmd bool
		runErr  error
	}{
		{name: "linux without notify-send", goos: "linux"},
		{name: "linux command fails", goos: "linux", haveCmd: true, runErr: errors.New("no display")},
		{name: "darwin osascript fails", goos: "darwin", runErr: errors.New("denied")},
		{name: "windows", goos: "windows"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			n, _, buf := fakeNotifier(tc.goos, tc.haveCmd, tc.runErr)
			err := n.Notify(Alert{Level: "warning", Title: "New issue: end_date", Message: "End date is before the start date"})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := buf.String(); got != "[warning] New issue: end_date: End date is before the start date\n" {
				t.Errorf("unexpected fallback output %q", got)
			}
		})
	}
}

func TestNotify_MinLevel(t *testing.T) {
	n, calls, buf := fakeNotifier("linux", true, nil)
	n.MinLevel = "warning"

	_ = n.Notify(Alert{Level: "info", Title: "Permit is valid"})
	if len(*calls) != 0 || buf.Len() != 0 {
		t.Errorf("info alert should be dropped below warning")
	}

	_ = n.Notify(Alert{Level: "warning", Title: "Permit became invalid"})
	if len(*calls) != 1 {
		t.Fatalf("warning alert should be delivered, got %d calls", len(*calls))
	}
	if (*calls)[0].args[1] != "normal" {
		t.Errorf("expected normal urgency, got %q", (*calls)[0].args[1])
	}
}

func TestNewNotifier_DoesNotPanic(t *testing.T) {
	var buf bytes.Buffer
	n := NewNotifier("critical")
	n.Fallback = &buf
	// Below MinLevel, so nothing is executed.
	if err := n.Notify(Alert{Level: "info", Title: "x", Message: "y"}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
