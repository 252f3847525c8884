package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/riposte-http/riposte/http"
	"github.com/riposte-http/riposte/internal/output"
)

// runMethod executes a single request for one of the method commands.
func runMethod(method http.Method, cmd *cobra.Command, args []string) {
	flags := readRequestFlags(cmd)
	host, path := parseURL(args[0])

	req, err := buildRequest(method, path, flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	client := http.NewClient(
		http.WithBaseURL(host),
		http.WithTimeout(flags.timeout),
	)

	formatter := output.NewFormatter(flags.verbose, flags.noColor)
	fmt.Print(formatter.FormatRequest(req, host))

	resp, err := client.Do(context.Background(), req)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Print(formatter.FormatResponse(resp))

	if !resp.IsSuccess() {
		os.Exit(1)
	}
}
