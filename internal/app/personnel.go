package app

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/stellar-ptw/stellar/internal/personnel"
)

var personnelCmd = &cobra.Command{
	Use:   "personnel",
	Short: "Find suitable people or a replacement",
}

var (
	findRole   string
	findSkills []string
	findDept   string
	findLimit  int

	replaceLimit int
)

var personnelFindCmd = &cobra.Command{
	Use:   "find <description...>",
	Short: "Rank roster members for a work description",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runPersonnelFind,
}

var personnelReplaceCmd = &cobra.Command{
	Use:   "replace <person-id>",
	Short: "Rank substitutes for a roster member",
	Args:  cobra.ExactArgs(1),
	RunE:  runPersonnelReplace,
}

func init() {
	personnelFindCmd.Flags().StringVar(&findRole, "role", "", "Required role: issuer, supervisor, foreman or worker")
	personnelFindCmd.Flags().StringSliceVar(&findSkills, "skill", nil, "Required skills (repeatable)")
	personnelFindCmd.Flags().StringVar(&findDept, "department", "", "Preferred department ID")
	personnelFindCmd.Flags().IntVar(&findLimit, "limit", 5, "Maximum candidates to show (0 for all)")
	personnelReplaceCmd.Flags().IntVar(&replaceLimit, "limit", 5, "Maximum candidates to show (0 for all)")

	personnelCmd.AddCommand(personnelFindCmd, personnelReplaceCmd)
	rootCmd.AddCommand(personnelCmd)
}

func runPersonnelFind(cmd *cobra.Command, args []string) error {
	e, err := newEnv(cmd.Context())
	if err != nil {
		return err
	}
	defer e.Close()
	if err := e.requireRoster(); err != nil {
		return err
	}

	req := personnel.Request{
		Description:  strings.Join(args, " "),
		Skills:       findSkills,
		DepartmentID: findDept,
	}
	if findRole != "" {
		roles, err := parseRoles([]string{findRole})
		if err != nil {
			return err
		}
		req.Role = roles[0]
	}

	recs := limitRecs(e.engine.Personnel().FindSuitable(req, e.roster, e.lang), findLimit)
	if flagJSON {
		return renderJSON(cmd.OutOrStdout(), recs)
	}
	renderRecommendations(cmd.OutOrStdout(), "Suitable personnel", recs)
	return nil
}

func runPersonnelReplace(cmd *cobra.Command, args []string) error {
	e, err := newEnv(cmd.Context())
	if err != nil {
		return err
	}
	defer e.Close()
	if err := e.requireRoster(); err != nil {
		return err
	}

	p, ok := personnel.FindByID(e.roster, args[0])
	if !ok {
		return fmt.Errorf("person %q not in roster", args[0])
	}
	recs := limitRecs(e.engine.Personnel().FindReplacement(p, e.roster, e.lang), replaceLimit)
	if flagJSON {
		return renderJSON(cmd.OutOrStdout(), recs)
	}
	renderRecommendations(cmd.OutOrStdout(), fmt.Sprintf("Replacements for %s", p.Name), recs)
	return nil
}

func limitRecs(recs []personnel.Recommendation, n int) []personnel.Recommendation {
	if n > 0 && len(recs) > n {
		return recs[:n]
	}
	return recs
}
