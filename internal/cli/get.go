package cli

import (
	"github.com/spf13/cobra"

	"github.com/riposte-http/riposte/http"
)

var getCmd = &cobra.Command{
	Use:   "get URL",
	Short: "Make a GET request to the specified URL",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runMethod(http.MethodGet, cmd, args)
	},
}

func init() {
	addRequestFlags(getCmd)
}
