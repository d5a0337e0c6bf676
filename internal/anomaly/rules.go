package anomaly

import (
	"regexp"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/stellar-ptw/stellar/internal/textsim"
)

// Deductions applied by the built-in rules.
const (
	DeductShortDescription   = 20
	DeductGenericDescription = 10
	DeductDangerousNoMeasure = 25
	DeductInvertedDates      = 30
	DeductPastStart          = 5
	DeductLongDuration       = 10
	DeductShortDuration      = 5
	DeductMissingLocation    = 5
	DeductShortLocation      = 10
	DeductNoResponsible      = 20
	DeductNoPPEDangerous     = 20
	DeductNoPPE              = 5

	DeductShortName  = 25
	DeductNameDigits = 10
	DeductBadEmail   = 15
	DeductBadPhone   = 10
)

const (
	minDescriptionLen = 10
	minLocationLen    = 3
	minNameLen        = 2
	minMeaningful     = 3 // words longer than 3 runes a description needs

	pastStartTolerance = 24 * time.Hour
	maxDuration        = 30 * 24 * time.Hour
	minDuration        = 15 * time.Minute

	minPhoneDigits = 10
	maxPhoneDigits = 15
)

// dangerousStems mark work that must carry safety measures and PPE.
var dangerousStems = []string{
	"высот", "электр", "свар", "газ", "хими", "взрыв",
	"yüksek", "elektrik", "kaynak", "gaz", "kimyasal", "patlay",
	"height", "electric", "weld", "gas", "chemical", "explos",
}

// genericDescriptions are bare nouns that say nothing about the job.
var genericDescriptions = map[string]bool{
	"работы": true, "работа": true, "ремонт": true, "обслуживание": true,
	"iş": true, "işler": true, "bakım": true, "onarım": true,
	"work": true, "works": true, "job": true, "repair": true, "maintenance": true,
}

var (
	emailPattern     = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePunctuation = regexp.MustCompile(`[\s\-()]`)
)

// IsDangerous reports whether text mentions a dangerous activity stem.
func IsDangerous(text string) bool {
	lower := strings.ToLower(text)
	for _, stem := range dangerousStems {
		if strings.Contains(lower, stem) {
			return true
		}
	}
	return false
}

// IsGeneric reports whether a description is too generic: fewer than three
// words longer than three runes, or a bare stoplisted noun.
func IsGeneric(description string) bool {
	trimmed := strings.ToLower(strings.TrimSpace(description))
	if genericDescriptions[trimmed] {
		return true
	}
	return len(textsim.Words(trimmed, minMeaningful+1)) < minMeaningful
}

// ShortDescription flags descriptions under ten runes.
func ShortDescription(ctx *PermitContext) []Finding {
	desc := strings.TrimSpace(ctx.Permit.Description)
	if utf8.RuneCountInString(desc) >= minDescriptionLen {
		return nil
	}
	return []Finding{anomalyFinding("description", desc, SeverityHigh, msgShortDescription, ctx.Lang, DeductShortDescription)}
}

// GenericDescription flags non-empty descriptions that say too little.
func GenericDescription(ctx *PermitContext) []Finding {
	desc := strings.TrimSpace(ctx.Permit.Description)
	if desc == "" || !IsGeneric(desc) {
		return nil
	}
	return []Finding{anomalyFinding("description", desc, SeverityMedium, msgGenericDescription, ctx.Lang, DeductGenericDescription)}
}

// DangerousWithoutMeasures flags dangerous work with no safety measures.
func DangerousWithoutMeasures(ctx *PermitContext) []Finding {
	if !ctx.Dangerous || len(ctx.Permit.SafetyMeasures) > 0 {
		return nil
	}
	return []Finding{anomalyFinding("safety_measures", "", SeverityHigh, msgDangerousNoMeasures, ctx.Lang, DeductDangerousNoMeasure)}
}

// Dates checks ordering, start in the past and overall duration.
func Dates(ctx *PermitContext) []Finding {
	start, end := ctx.Permit.StartDate, ctx.Permit.EndDate
	var findings []Finding

	if !start.IsZero() && !end.IsZero() && end.Before(start) {
		findings = append(findings, anomalyFinding("end_date", formatDate(end), SeverityHigh, msgInvertedDates, ctx.Lang, DeductInvertedDates))
	}

	if !start.IsZero() && start.Before(ctx.Now.Add(-pastStartTolerance)) {
		findings = append(findings, Finding{Warning: warnPastStart.For(ctx.Lang), Deduction: DeductPastStart})
	}

	if !start.IsZero() && !end.IsZero() && !end.Before(start) {
		d := end.Sub(start)
		switch {
		case d > maxDuration:
			findings = append(findings, anomalyFinding("end_date", d.String(), SeverityMedium, msgLongDuration, ctx.Lang, DeductLongDuration))
		case d < minDuration:
			findings = append(findings, anomalyFinding("end_date", d.String(), SeverityLow, msgShortDuration, ctx.Lang, DeductShortDuration))
		}
	}
	return findings
}

// Location flags a missing or vague work location.
func Location(ctx *PermitContext) []Finding {
	loc := strings.TrimSpace(ctx.Permit.Location)
	if loc == "" {
		return []Finding{{Warning: warnNoLocation.For(ctx.Lang), Deduction: DeductMissingLocation}}
	}
	if utf8.RuneCountInString(loc) < minLocationLen {
		return []Finding{anomalyFinding("location", loc, SeverityMedium, msgShortLocation, ctx.Lang, DeductShortLocation)}
	}
	return nil
}

// ResponsiblePerson flags permits without a responsible person.
func ResponsiblePerson(ctx *PermitContext) []Finding {
	if strings.TrimSpace(ctx.Permit.ResponsiblePersonID) != "" {
		return nil
	}
	return []Finding{anomalyFinding("responsible_person_id", "", SeverityHigh, msgNoResponsible, ctx.Lang, DeductNoResponsible)}
}

// PPE flags permits with no protective equipment listed.
func PPE(ctx *PermitContext) []Finding {
	if len(ctx.Permit.RequiredPPE) > 0 {
		return nil
	}
	if ctx.Dangerous {
		return []Finding{anomalyFinding("required_ppe", "", SeverityHigh, msgNoPPEDangerous, ctx.Lang, DeductNoPPEDangerous)}
	}
	return []Finding{{Warning: warnNoPPE.For(ctx.Lang), Deduction: DeductNoPPE}}
}

// Name checks the length and characters of a person's name.
func Name(ctx *PersonContext) []Finding {
	name := strings.TrimSpace(ctx.Person.Name)
	var findings []Finding
	if utf8.RuneCountInString(name) < minNameLen {
		findings = append(findings, anomalyFinding("name", name, SeverityHigh, msgShortName, ctx.Lang, DeductShortName))
	}
	if strings.IndexFunc(name, unicode.IsDigit) >= 0 {
		findings = append(findings, anomalyFinding("name", name, SeverityMedium, msgNameDigits, ctx.Lang, DeductNameDigits))
	}
	return findings
}

// Email checks the address format when one is given.
func Email(ctx *PersonContext) []Finding {
	email := strings.TrimSpace(ctx.Person.Email)
	if email == "" || emailPattern.MatchString(email) {
		return nil
	}
	return []Finding{anomalyFinding("email", email, SeverityMedium, msgBadEmail, ctx.Lang, DeductBadEmail)}
}

// Phone checks the number length, ignoring spaces, dashes and parentheses,
// when one is given.
func Phone(ctx *PersonContext) []Finding {
	phone := strings.TrimSpace(ctx.Person.Phone)
	if phone == "" {
		return nil
	}
	n := utf8.RuneCountInString(phonePunctuation.ReplaceAllString(phone, ""))
	if n >= minPhoneDigits && n <= maxPhoneDigits {
		return nil
	}
	return []Finding{anomalyFinding("phone", phone, SeverityLow, msgBadPhone, ctx.Lang, DeductBadPhone)}
}

func formatDate(t time.Time) string {
	return t.Format(time.RFC3339)
}
