package cli

import (
	"github.com/spf13/cobra"

	"github.com/riposte-http/riposte/http"
)

var postCmd = &cobra.Command{
	Use:   "post URL",
	Short: "Make a POST request to the specified URL",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runMethod(http.MethodPost, cmd, args)
	},
}

func init() {
	addRequestFlags(postCmd)
}
