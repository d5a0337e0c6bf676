package app

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/stellar-ptw/stellar/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run an MCP stdio server exposing the permit engine",
	Long: `Start a Model Context Protocol stdio server so an assistant can
analyze permits while they are being written. The server exposes:

  analyze_work       Full analysis of a permit draft (saved to history)
  assess_risk        Risk level, PPE and safety measures for a description
  check_permit       Quality check of permit fields
  check_personnel    Quality check of a person record
  autocomplete_work  Suggestions from previously learned works
  find_personnel     Rank roster people for a work description
  suggest_team       Assemble a team for the required roles
  find_replacement   Find substitutes for a person
  learn_work         Learn from a completed work
  learning_stats     Learned template statistics

The roster comes from --roster or roster_file in the config.

Add to your MCP client configuration:
  {"mcpServers":{"stellar":{"command":"stellar","args":["mcp","--roster","roster.yaml"]}}}`,
	RunE: runMCP,
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

func runMCP(cmd *cobra.Command, args []string) error {
	e, err := newEnv(cmd.Context())
	if err != nil {
		return err
	}
	defer e.Close()

	srv := mcp.NewServer(mcp.Options{
		Engine:   e.engine,
		Roster:   e.roster,
		Language: e.lang,
		History:  e.db,
		Logger:   e.logger,
	})
	return srv.Run(cmd.Context(), os.Stdin, os.Stdout)
}
