package cli

import (
	"github.com/spf13/cobra"
)

var version = "0.1.0"

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:     "riposte",
	Short:   "A terminal HTTP client built around reusable request descriptors",
	Version: version,
	Long: `Riposte is a terminal-based HTTP client. Requests are assembled as
reusable descriptors (method, headers, query parameters, body, content
encoding, timeout) and executed with detailed timing output. Request
collections can be kept in YAML files and run as suites, with JSONPath
extraction and JSON Schema validation of responses.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return RootCmd.Execute()
}

func init() {
	RootCmd.AddCommand(getCmd)
	RootCmd.AddCommand(postCmd)
	RootCmd.AddCommand(putCmd)
	RootCmd.AddCommand(deleteCmd)
	RootCmd.AddCommand(runCmd)
	RootCmd.AddCommand(benchCmd)
}
