package cli

import (
	"github.com/spf13/cobra"

	"github.com/riposte-http/riposte/http"
)

var putCmd = &cobra.Command{
	Use:   "put URL",
	Short: "Make a PUT request to the specified URL",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runMethod(http.MethodPut, cmd, args)
	},
}

func init() {
	addRequestFlags(putCmd)
}
