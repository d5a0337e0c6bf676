// Package app contains the Cobra command tree for stellar.
package app

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/stellar-ptw/stellar/internal/mcp"
)

var appVersion = "dev"

// SetVersion sets the application version (called from main with ldflags value).
func SetVersion(v string) {
	appVersion = v
	rootCmd.Version = v
	mcp.Version = v
}

var (
	flagNoColor bool
	flagJSON    bool
	flagVerbose bool
	flagConfig  string
	flagLang    string
	flagRoster  string
)

var rootCmd = &cobra.Command{
	Use:   "stellar",
	Short: "Permit-to-work risk analysis and planning assistant",
	Long: `stellar analyzes permit-to-work drafts written in Russian, Turkish or
English. It scores the risk of the described work, checks the permit data for
mistakes, suggests PPE and safety measures learned from past work, and
recommends personnel and teams from a roster.

Run 'stellar' with no arguments to see the available commands.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "stellar", appVersion)
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Use a subcommand:")
		fmt.Fprintln(out, "  analyze    Full analysis of a permit draft")
		fmt.Fprintln(out, "  risk       Risk assessment of a work description")
		fmt.Fprintln(out, "  check      Data-quality checks for permits and personnel")
		fmt.Fprintln(out, "  personnel  Find suitable people or a replacement")
		fmt.Fprintln(out, "  team       Assemble a team from the roster")
		fmt.Fprintln(out, "  learn      Record completed work for future suggestions")
		fmt.Fprintln(out, "  learning   Export, import or inspect learned templates")
		fmt.Fprintln(out, "  patterns   Export or import the risk pattern table")
		fmt.Fprintln(out, "  history    List saved analyses")
		fmt.Fprintln(out, "  watch      Re-analyze a draft file on every save")
		fmt.Fprintln(out, "  mcp        Serve the engine as MCP tools on stdio")
		return nil
	},
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path (default: ~/.config/stellar/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Output as JSON")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging on stderr")
	rootCmd.PersistentFlags().StringVar(&flagLang, "lang", "", "Message language: ru, tr or en (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagRoster, "roster", "", "Personnel roster file (default from config)")
}
