package output

import (
	"fmt"
	"strings"
)

// ScoreBar renders a visual progress bar for a 0-100 score where higher is
// better.
// Example: "████████░░ 80/100"
func ScoreBar(score float64, width int) string {
	return bar(score, width, scoreStyle(score))
}

// RiskBar renders a 0-100 risk score; higher is worse.
func RiskBar(score float64, width int) string {
	return bar(score, width, riskStyle(score))
}

func bar(score float64, width int, style func(string) string) string {
	if width <= 0 {
		width = 20
	}
	filled := int((score / 100.0) * float64(width))
	filled = min(max(filled, 0), width)

	b := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return fmt.Sprintf("%s %s", style(b), StyleMuted.Render(fmt.Sprintf("%.0f/100", score)))
}

func scoreStyle(score float64) func(string) string {
	switch {
	case score >= 70:
		return func(s string) string { return StyleSuccess.Render(s) }
	case score >= 50:
		return func(s string) string { return StyleWarning.Render(s) }
	default:
		return func(s string) string { return StyleError.Render(s) }
	}
}

func riskStyle(score float64) func(string) string {
	switch {
	case score >= 80:
		return func(s string) string { return StyleError.Render(s) }
	case score >= 60:
		return func(s string) string { return StyleAlert.Render(s) }
	case score >= 30:
		return func(s string) string { return StyleWarning.Render(s) }
	default:
		return func(s string) string { return StyleSuccess.Render(s) }
	}
}

// TrendArrow returns a styled indicator for a score change, green when the
// change goes the good way.
func TrendArrow(delta float64, higherIsBetter bool) string {
	if delta == 0 {
		return StyleMuted.Render("─")
	}

	isPositive := delta > 0
	isImproved := isPositive == higherIsBetter

	var arrow string
	if isPositive {
		arrow = fmt.Sprintf("▲ +%.0f", delta)
	} else {
		arrow = fmt.Sprintf("▼ %.0f", delta)
	}

	if isImproved {
		return StyleSuccess.Render(arrow)
	}
	return StyleError.Render(arrow)
}

// Level renders a risk level name in its color.
func Level(level string) string {
	s := strings.ToUpper(level)
	switch level {
	case "critical":
		return StyleError.Bold(true).Render(s)
	case "high":
		return StyleAlert.Bold(true).Render(s)
	case "medium":
		return StyleWarning.Render(s)
	default:
		return StyleSuccess.Render(s)
	}
}

// Section prints a styled section header with a horizontal rule.
func Section(title string) string {
	return SectionWidth(title, 66)
}

// SectionWidth is Section with a custom rule width.
func SectionWidth(title string, width int) string {
	if width <= 0 {
		width = 66
	}
	header := StyleHeader.Render(title)
	rule := StyleMuted.Render(strings.Repeat("─", width))
	return fmt.Sprintf("\n %s\n %s", header, rule)
}

// Bullets renders items as an indented list. Empty input renders nothing.
func Bullets(items []string, marker string) string {
	var sb strings.Builder
	for _, item := range items {
		fmt.Fprintf(&sb, "   %s %s\n", marker, item)
	}
	return sb.String()
}
