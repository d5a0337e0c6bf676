package app

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/stellar-ptw/stellar/internal/personnel"
	"github.com/stellar-ptw/stellar/internal/stellar"
)

// draftFlags describe a permit draft on the command line, as an
// alternative to a draft file.
type draftFlags struct {
	description string
	workType    string
	location    string
	start       string
	end         string
	responsible string
	ppe         []string
	measures    []string
}

func (d *draftFlags) bind(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVarP(&d.description, "description", "d", "", "Work description")
	f.StringVar(&d.workType, "work-type", "", "Work type")
	f.StringVar(&d.location, "location", "", "Work location")
	f.StringVar(&d.start, "start", "", "Start date (RFC 3339 or YYYY-MM-DD)")
	f.StringVar(&d.end, "end", "", "End date (RFC 3339 or YYYY-MM-DD)")
	f.StringVar(&d.responsible, "responsible", "", "Responsible person ID")
	f.StringSliceVar(&d.ppe, "ppe", nil, "PPE listed on the permit (repeatable)")
	f.StringSliceVar(&d.measures, "measure", nil, "Safety measures listed on the permit (repeatable)")
}

// request builds the draft from a file argument when given, then applies
// any flags on top.
func (d *draftFlags) request(cmd *cobra.Command, args []string) (stellar.Request, error) {
	var req stellar.Request
	if len(args) > 0 {
		var err error
		if req, err = stellar.LoadRequest(args[0]); err != nil {
			return stellar.Request{}, fmt.Errorf("loading draft: %w", err)
		}
	}

	f := cmd.Flags()
	if f.Changed("description") {
		req.Description = d.description
	}
	if f.Changed("work-type") {
		req.WorkType = d.workType
	}
	if f.Changed("location") {
		req.Location = d.location
	}
	if f.Changed("responsible") {
		req.ResponsiblePersonID = d.responsible
	}
	if f.Changed("ppe") {
		req.RequiredPPE = d.ppe
	}
	if f.Changed("measure") {
		req.SafetyMeasures = d.measures
	}
	if f.Changed("start") {
		t, err := stellar.ParseDate(d.start)
		if err != nil {
			return stellar.Request{}, fmt.Errorf("--start: %w", err)
		}
		req.StartDate = t
	}
	if f.Changed("end") {
		t, err := stellar.ParseDate(d.end)
		if err != nil {
			return stellar.Request{}, fmt.Errorf("--end: %w", err)
		}
		req.EndDate = t
	}

	if strings.TrimSpace(req.Description) == "" && len(args) == 0 {
		return stellar.Request{}, errors.New("pass a draft file or --description")
	}
	return req, nil
}

// parseRoles converts role names, rejecting unknown ones.
func parseRoles(names []string) ([]personnel.Role, error) {
	roles := make([]personnel.Role, 0, len(names))
	for _, n := range names {
		r := personnel.Role(strings.ToLower(strings.TrimSpace(n)))
		switch r {
		case personnel.RoleIssuer, personnel.RoleSupervisor, personnel.RoleForeman, personnel.RoleWorker:
			roles = append(roles, r)
		default:
			return nil, fmt.Errorf("unknown role %q (want issuer, supervisor, foreman or worker)", n)
		}
	}
	return roles, nil
}
