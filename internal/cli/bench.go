package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/riposte-http/riposte/http"
	"github.com/riposte-http/riposte/internal/metrics"
	"github.com/riposte-http/riposte/internal/output"
)

var benchCmd = &cobra.Command{
	Use:   "bench URL",
	Short: "Send the same GET request repeatedly and report the latency distribution",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		flags := readRequestFlags(cmd)
		count, _ := cmd.Flags().GetInt("count")
		if count < 1 {
			fmt.Fprintln(os.Stderr, "Error: count must be at least 1")
			os.Exit(1)
		}

		host, path := parseURL(args[0])

		req, err := buildRequest(http.MethodGet, path, flags)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		client := http.NewClient(
			http.WithBaseURL(host),
			http.WithTimeout(flags.timeout),
		)

		recorder := metrics.NewRecorder()
		for i := 0; i < count; i++ {
			resp, err := client.Do(context.Background(), req)
			if err != nil || !resp.IsSuccess() {
				recorder.RecordFailure()
				continue
			}
			recorder.RecordSuccess(resp.Timing.TotalTime)
		}

		printSummary(host+req.AbsolutePath(), count, recorder.Summarize(), flags.noColor)
	},
}

// printSummary renders the latency distribution of a bench run.
func printSummary(target string, count int, summary metrics.Summary, noColor bool) {
	icon := output.SuccessIcon(noColor)
	if summary.Failures > 0 {
		icon = output.ErrorIcon(noColor)
	}

	fmt.Printf("%s %s: %d requests, %d failed\n", icon, target, count, summary.Failures)
	if summary.Count == 0 {
		return
	}
	fmt.Printf("  min:  %s\n", summary.Min)
	fmt.Printf("  mean: %s\n", summary.Mean)
	fmt.Printf("  p50:  %s\n", summary.P50)
	fmt.Printf("  p90:  %s\n", summary.P90)
	fmt.Printf("  p99:  %s\n", summary.P99)
	fmt.Printf("  max:  %s\n", summary.Max)
}

func init() {
	addRequestFlags(benchCmd)
	benchCmd.Flags().IntP("count", "n", 10, "Number of requests to send")
}
