package app

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/stellar-ptw/stellar/internal/anomaly"
	"github.com/stellar-ptw/stellar/internal/output"
	"github.com/stellar-ptw/stellar/internal/personnel"
	"github.com/stellar-ptw/stellar/internal/risk"
	"github.com/stellar-ptw/stellar/internal/stellar"
	"github.com/stellar-ptw/stellar/internal/suggestions"
)

func renderJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func renderAnalysis(w io.Writer, a stellar.ComprehensiveAnalysis) {
	renderAssessment(w, a.Risk)
	renderReport(w, "Permit check", a.Quality)
	if a.Autocomplete.Confidence > 0 {
		renderAutocomplete(w, a.Autocomplete)
	}
	if len(a.PersonnelRecommendations) > 0 {
		renderRecommendations(w, "Suitable personnel", a.PersonnelRecommendations)
	}
	if a.Team != nil {
		renderTeam(w, a.Team)
	}
	if len(a.Insights) > 0 {
		fmt.Fprintln(w, output.Section("Insights"))
		fmt.Fprint(w, output.Bullets(a.Insights, "→"))
	}
	fmt.Fprintln(w)
}

func renderAssessment(w io.Writer, a risk.Assessment) {
	fmt.Fprintln(w, output.Section("Risk assessment"))
	fmt.Fprintf(w, " %s %s\n", output.StyleLabel.Render("Level"), output.Level(string(a.Level)))
	fmt.Fprintf(w, " %s %s\n", output.StyleLabel.Render("Score"), output.RiskBar(a.Score, 20))
	fmt.Fprintf(w, " %s %s\n", output.StyleLabel.Render("Confidence"), output.StyleMuted.Render(fmt.Sprintf("%.0f%%", a.Confidence*100)))
	if len(a.MatchedPatterns) > 0 {
		fmt.Fprintf(w, " %s %s\n", output.StyleLabel.Render("Patterns"), strings.Join(a.MatchedPatterns, ", "))
	}
	renderList(w, "Hazards", a.Hazards, "!")
	renderList(w, "Required PPE", a.RequiredPPE, "•")
	renderList(w, "Safety measures", a.SafetyMeasures, "•")
	renderList(w, "Recommendations", a.Recommendations, "→")
}

func renderList(w io.Writer, title string, items []string, marker string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(w, "\n %s\n", output.StyleBold.Render(title))
	fmt.Fprint(w, output.Bullets(items, marker))
}

func renderReport(w io.Writer, title string, r anomaly.Report) {
	fmt.Fprintln(w, output.Section(title))
	status := output.StyleSuccess.Render("valid")
	if !r.IsValid {
		status = output.StyleError.Render("invalid")
	}
	fmt.Fprintf(w, " %s %s\n", output.StyleLabel.Render("Status"), status)
	fmt.Fprintf(w, " %s %s\n", output.StyleLabel.Render("Quality"), output.ScoreBar(r.Score, 20))

	if len(r.Anomalies) > 0 {
		fmt.Fprintln(w)
		tbl := output.NewTable("Severity", "Field", "Problem")
		for _, a := range r.Anomalies {
			tbl.AddRow(severity(a.Severity), a.Field, a.Reason)
		}
		fmt.Fprint(w, tbl.String())
	}
	renderList(w, "Warnings", r.Warnings, "!")
	renderList(w, "Recommendations", r.Recommendations, "→")
}

func severity(s anomaly.Severity) string {
	switch s {
	case anomaly.SeverityHigh:
		return output.StyleError.Render(string(s))
	case anomaly.SeverityMedium:
		return output.StyleWarning.Render(string(s))
	default:
		return output.StyleMuted.Render(string(s))
	}
}

func renderAutocomplete(w io.Writer, r suggestions.AutocompleteResult) {
	fmt.Fprintln(w, output.Section("From similar past work"))
	fmt.Fprintf(w, " %s %s\n", output.StyleLabel.Render("Confidence"), output.ScoreBar(r.Confidence*100, 20))
	if r.EstimatedDuration > 0 {
		fmt.Fprintf(w, " %s %.1f h\n", output.StyleLabel.Render("Estimated duration"), r.EstimatedDuration)
	}
	if r.EstimatedWorkers > 0 {
		fmt.Fprintf(w, " %s %d\n", output.StyleLabel.Render("Estimated workers"), r.EstimatedWorkers)
	}
	renderList(w, "Suggested PPE", r.SuggestedPPE, "•")
	renderList(w, "Suggested measures", r.SuggestedMeasures, "•")
	if r.Hint != "" {
		fmt.Fprintf(w, "\n %s\n", output.StyleMuted.Render(r.Hint))
	}
}

func renderRecommendations(w io.Writer, title string, recs []personnel.Recommendation) {
	fmt.Fprintln(w, output.Section(title))
	if len(recs) == 0 {
		fmt.Fprintln(w, output.StyleMuted.Render(" No suitable candidates."))
		return
	}
	tbl := output.NewTable("ID", "Name", "Position", "Score", "Reasons")
	for _, r := range recs {
		reasons := strings.Join(r.Reasons, "; ")
		if len(r.Warnings) > 0 {
			reasons += output.StyleWarning.Render(" (" + strings.Join(r.Warnings, "; ") + ")")
		}
		tbl.AddRow(r.Person.ID, r.Person.Name, r.Person.Position, fmt.Sprintf("%.0f", r.Score), reasons)
	}
	fmt.Fprint(w, tbl.String())
}

func renderTeam(w io.Writer, t *personnel.TeamSuggestion) {
	fmt.Fprintln(w, output.Section("Suggested team"))
	if t == nil || len(t.Team) == 0 {
		fmt.Fprintln(w, output.StyleMuted.Render(" Nobody available."))
		return
	}
	tbl := output.NewTable("ID", "Name", "Role", "Position")
	for _, p := range t.Team {
		tbl.AddRow(p.ID, p.Name, string(p.Role), p.Position)
	}
	fmt.Fprint(w, tbl.String())
	fmt.Fprintf(w, " %s %s\n", output.StyleLabel.Render("Team score"), output.ScoreBar(t.TotalScore, 20))
	renderList(w, "Warnings", t.Warnings, "!")
	renderList(w, "Recommendations", t.Recommendations, "→")
}
