package app

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckLanguage(t *testing.T) {
	tests := []struct {
		code   string
		passed bool
	}{
		{"", true},
		{"en", true},
		{"TR", true},
		{"ru-RU", true},
		{"de", false},
		{"rubbish", false},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.passed, checkLanguage(tt.code).Passed)
		})
	}
}

func TestCheckDataDir(t *testing.T) {
	dir := t.TempDir()
	assert.True(t, checkDataDir(dir).Passed)
	assert.False(t, checkDataDir(filepath.Join(dir, "missing")).Passed)

	file := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(file, nil, 0o644))
	assert.Contains(t, checkDataDir(file).Message, "not a directory")
}

func TestCheckRoster(t *testing.T) {
	assert.False(t, checkRoster("").Passed)

	good := writeFile(t, "roster.yaml", `
- id: "1"
  name: Иван Петров
  position: Сварщик
  role: worker
- id: "2"
  name: Анна Смирнова
  position: Мастер
  role: foreman
`)
	c := checkRoster(good)
	assert.True(t, c.Passed, c.Message)
	assert.Contains(t, c.Message, "2 people")

	dup := writeFile(t, "dup.yaml", `
- id: "1"
  name: Иван Петров
  role: worker
- id: "1"
  name: Олег Иванов
  role: worker
`)
	c = checkRoster(dup)
	assert.False(t, c.Passed)
	assert.Contains(t, c.Message, "1 duplicate ids")
}

func TestCheckWatchDaemon(t *testing.T) {
	dir := t.TempDir()
	pidFile := pidFilePath(dir)
	assert.Equal(t, "not running (no PID file)", checkWatchDaemon(pidFile).Message)

	require.NoError(t, os.WriteFile(pidFile, []byte("garbage"), 0o644))
	assert.Contains(t, checkWatchDaemon(pidFile).Message, "invalid PID file")

	require.NoError(t, os.WriteFile(pidFile, []byte(strconv.Itoa(os.Getpid())), 0o644))
	assert.True(t, checkWatchDaemon(pidFile).Passed)
}

func TestCheckNotifier(t *testing.T) {
	found := func(string) (string, error) { return "/usr/bin/tool", nil }
	missing := func(string) (string, error) { return "", errors.New("not found") }

	assert.True(t, checkNotifier("linux", found).Passed)
	assert.Equal(t, "osascript", checkNotifier("darwin", found).Message)
	assert.Contains(t, checkNotifier("linux", missing).Message, "notify-send not found")
	assert.False(t, checkNotifier("windows", found).Passed)
}
