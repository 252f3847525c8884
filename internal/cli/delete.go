package cli

import (
	"github.com/spf13/cobra"

	"github.com/riposte-http/riposte/http"
)

var deleteCmd = &cobra.Command{
	Use:   "delete URL",
	Short: "Make a DELETE request to the specified URL",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runMethod(http.MethodDelete, cmd, args)
	},
}

func init() {
	addRequestFlags(deleteCmd)
}
