package app

import (
	"strings"

	"github.com/spf13/cobra"
)

var (
	teamRoles []string
	teamSize  int
)

var teamCmd = &cobra.Command{
	Use:   "team <description...>",
	Short: "Assemble a team from the roster",
	Long: `Team picks the best available person for each required role, then fills
the remaining places with the best remaining candidates. Roles and size
default to the team section of the config.

  stellar team --roster people.yaml --role supervisor --role worker --size 4 "монтаж опор"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runTeam,
}

func init() {
	teamCmd.Flags().StringSliceVar(&teamRoles, "role", nil, "Required roles (repeatable; default from config)")
	teamCmd.Flags().IntVar(&teamSize, "size", 0, "Team size (default from config)")
	rootCmd.AddCommand(teamCmd)
}

func runTeam(cmd *cobra.Command, args []string) error {
	e, err := newEnv(cmd.Context())
	if err != nil {
		return err
	}
	defer e.Close()
	if err := e.requireRoster(); err != nil {
		return err
	}

	names := teamRoles
	if len(names) == 0 {
		names = e.cfg.Team.RequiredRoles
	}
	roles, err := parseRoles(names)
	if err != nil {
		return err
	}
	size := teamSize
	if size == 0 {
		size = e.cfg.Team.DefaultSize
	}

	team := e.engine.Personnel().SuggestTeam(strings.Join(args, " "), roles, e.roster, size, e.lang)
	if flagJSON {
		return renderJSON(cmd.OutOrStdout(), team)
	}
	renderTeam(cmd.OutOrStdout(), team)
	return nil
}
