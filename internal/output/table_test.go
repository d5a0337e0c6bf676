package output

import (
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVisualLen(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"plain", "hello", 5},
		{"empty", "", 0},
		{"bold", "\x1b[1mhello\x1b[0m", 5},
		{"multiple sequences", "\x1b[1m\x1b[34mblue bold\x1b[0m", 9},
		{"cyrillic", "Сварка", 6},
		{"turkish", "Kaynakçı", 8},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, visualLen(tc.input))
		})
	}
}

func TestPad(t *testing.T) {
	assert.Equal(t, "hi        ", pad("hi", 10))
	assert.Equal(t, "hello", pad("hello", 5))
	assert.Equal(t, "toolong", pad("toolong", 3), "no truncation")
	assert.Equal(t, 10, visualLen(pad("Каска", 10)))
}

func TestTable_Render(t *testing.T) {
	SetNoColor(true)
	defer SetNoColor(false)

	tbl := NewTable("Имя", "Балл")
	tbl.AddRow("Иван Петров", "95")
	tbl.AddRow("Bob", "87")

	out := tbl.Render()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4, "header, separator and two rows")
	assert.Contains(t, lines[0], "Имя")
	assert.Contains(t, lines[1], "─")

	// Columns line up even with multi-byte names.
	assert.Equal(t, visualLen(lines[2]), visualLen(lines[3]))
	assert.Equal(t, "Bob"+strings.Repeat(" ", visualLen("Иван Петров")-3)+"  87  ", lines[3])
	assert.Equal(t, tbl.Render(), tbl.String())
}

func TestTable_EmptyHeaders(t *testing.T) {
	assert.Empty(t, NewTable().Render())
}

func TestSetNoColor(t *testing.T) {
	SetNoColor(true)
	assert.True(t, IsNoColor())
	assert.NotContains(t, StyleHeader.Render("test"), "\x1b[")
	SetNoColor(false)
	assert.False(t, IsNoColor())
}

func TestAutoColor_NotATerminal(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "out")
	require.NoError(t, err)
	defer f.Close()

	AutoColor(true, f)
	assert.True(t, IsNoColor())
	SetNoColor(false)

	assert.False(t, IsTerminal(nil))
}

func TestBars(t *testing.T) {
	SetNoColor(true)
	defer SetNoColor(false)

	assert.Equal(t, "████████░░ 80/100", ScoreBar(80, 10))
	assert.Equal(t, "░░░░░░░░░░ 0/100", RiskBar(0, 10))
	assert.Equal(t, "██████████ 150/100", ScoreBar(150, 10))
	assert.Equal(t, "CRITICAL", Level("critical"))
	assert.Equal(t, "   - a\n   - b\n", Bullets([]string{"a", "b"}, "-"))
	assert.Empty(t, Bullets(nil, "-"))
	assert.Contains(t, Section("Риск"), "Риск")
}

func TestTrendArrow(t *testing.T) {
	SetNoColor(true)
	defer SetNoColor(false)

	assert.Equal(t, "─", TrendArrow(0, true))
	assert.Equal(t, "▲ +12", TrendArrow(12, false))
	assert.Equal(t, "▼ -5", TrendArrow(-5, true))
}

func TestBars_EveryBracket(t *testing.T) {
	SetNoColor(true)
	defer SetNoColor(false)

	for _, score := range []float64{10, 35, 55, 65, 75, 90} {
		assert.Equal(t, "x", scoreStyle(score)("x"))
		assert.Equal(t, "x", riskStyle(score)("x"))
		assert.Contains(t, RiskBar(score, 10), fmt.Sprintf("%.0f/100", score))
		assert.Contains(t, ScoreBar(score, 10), fmt.Sprintf("%.0f/100", score))
	}
}
