package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/riposte-http/riposte/http"
	"github.com/riposte-http/riposte/internal/config"
	"github.com/riposte-http/riposte/internal/output"
	"github.com/riposte-http/riposte/pkg/jsonpath"
	"github.com/riposte-http/riposte/pkg/jsonschema"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run requests or suites from a configuration file",
	Run: func(cmd *cobra.Command, args []string) {
		configFile, _ := cmd.Flags().GetString("config")
		environment, _ := cmd.Flags().GetString("environment")
		request, _ := cmd.Flags().GetString("request")
		suite, _ := cmd.Flags().GetString("suite")
		verbose, _ := cmd.Flags().GetBool("verbose")
		timeout, _ := cmd.Flags().GetDuration("timeout")
		noColor, _ := cmd.Flags().GetBool("no-color")

		if configFile == "" || environment == "" || (request == "" && suite == "") {
			fmt.Fprintln(os.Stderr, "Error: config, environment, and one of request or suite are required")
			cmd.Help()
			os.Exit(1)
		}

		cfg, err := config.Load(configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}

		if errs := config.Validate(cfg); len(errs) > 0 {
			fmt.Fprintln(os.Stderr, "Configuration validation errors:")
			for _, err := range errs {
				fmt.Fprintf(os.Stderr, "  - %s\n", err.Error())
			}
			os.Exit(1)
		}

		if err := config.ValidateEnvironment(cfg, environment); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		runner := &configRunner{
			cfg:       cfg,
			env:       cfg.Environments[environment],
			vars:      map[string]string{},
			formatter: output.NewFormatter(verbose, noColor),
			timeout:   timeout,
			verbose:   verbose,
			noColor:   noColor,
		}
		for name, value := range runner.env.Vars {
			runner.vars[name] = value
		}

		if request != "" {
			if err := config.ValidateRequest(cfg, request); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			if err := runner.runRequest(request); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			return
		}

		if err := config.ValidateSuite(cfg, suite); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if err := runner.runSuite(suite); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

// configRunner executes requests defined in a configuration file,
// carrying extracted variables from one request to the next.
type configRunner struct {
	cfg       *config.Config
	env       config.Environment
	vars      map[string]string
	formatter *output.Formatter
	timeout   time.Duration
	verbose   bool
	noColor   bool
}

func (r *configRunner) runSuite(name string) error {
	suite := r.cfg.Suites[name]

	for varName, value := range suite.Vars {
		r.vars[varName] = config.ExpandVars(value, r.vars)
	}

	for _, requestName := range suite.Requests {
		fmt.Printf("\n=== Executing request: %s ===\n\n", requestName)
		if err := r.runRequest(requestName); err != nil {
			return fmt.Errorf("request %q: %w", requestName, err)
		}
	}
	return nil
}

func (r *configRunner) runRequest(name string) error {
	reqConfig := r.cfg.Requests[name]

	host, path := r.resolveTarget(config.ExpandVars(reqConfig.URL, r.vars))

	req, err := r.buildRequest(reqConfig, path)
	if err != nil {
		return err
	}

	fmt.Print(r.formatter.FormatRequest(req, host))

	client := http.NewClient(
		http.WithBaseURL(host),
		http.WithTimeout(r.timeout),
	)

	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	resp, err := client.Do(ctx, req)
	if err != nil {
		return err
	}

	fmt.Print(r.formatter.FormatResponse(resp))

	if len(reqConfig.Extract) > 0 {
		extracted, err := jsonpath.ExtractAll(resp.GetBodyAsString(), reqConfig.Extract)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: variable extraction incomplete: %v\n", err)
		}
		for varName, value := range extracted {
			r.vars[varName] = value
			if r.verbose {
				fmt.Printf("Extracted variable %s = %s\n", varName, value)
			}
		}
	}

	if len(reqConfig.Validate) > 0 {
		schemaBytes, err := json.Marshal(reqConfig.Validate)
		if err != nil {
			return fmt.Errorf("marshaling schema: %w", err)
		}
		valid, violations := jsonschema.Validate(resp.GetBodyAsString(), string(schemaBytes))
		if !valid {
			fmt.Fprintf(os.Stderr, "%s Schema validation failed: %v\n", output.ErrorIcon(r.noColor), violations)
		} else if r.verbose {
			fmt.Printf("%s Schema validation passed\n", output.SuccessIcon(r.noColor))
		}
	}

	return nil
}

// buildRequest turns a request template into a descriptor.
func (r *configRunner) buildRequest(reqConfig config.Request, path string) (*http.Request, error) {
	req := http.NewRequest(http.Method(strings.ToUpper(reqConfig.Method)), path)

	req.WithHeaders(config.ExpandVarsInMap(r.env.Headers, r.vars))
	req.WithHeaders(config.ExpandVarsInMap(reqConfig.Headers, r.vars))

	for name, value := range config.ExpandVarsInMap(reqConfig.QueryParams, r.vars) {
		if err := req.AddParam(name, value); err != nil {
			return nil, err
		}
	}

	if reqConfig.Body != nil {
		switch body := reqConfig.Body.(type) {
		case string:
			req.WithContent(http.NewStringContent(config.ExpandVars(body, r.vars), "application/json"))
		default:
			req.WithContent(http.NewJSONContent(r.expandBody(body)))
		}
	}

	if reqConfig.Gzip {
		if err := req.SetEncoder(http.GzipEncoder{}); err != nil {
			return nil, err
		}
	}

	if reqConfig.Timeout != "" {
		timeout, err := time.ParseDuration(reqConfig.Timeout)
		if err != nil {
			return nil, fmt.Errorf("invalid timeout %q: %w", reqConfig.Timeout, err)
		}
		req.WithTimeout(timeout)
	}

	return req, nil
}

// expandBody substitutes variables in every string found in a decoded
// YAML/JSON body value.
func (r *configRunner) expandBody(body interface{}) interface{} {
	switch v := body.(type) {
	case string:
		return config.ExpandVars(v, r.vars)
	case map[string]interface{}:
		expanded := make(map[string]interface{}, len(v))
		for key, value := range v {
			expanded[key] = r.expandBody(value)
		}
		return expanded
	case []interface{}:
		expanded := make([]interface{}, len(v))
		for i, value := range v {
			expanded[i] = r.expandBody(value)
		}
		return expanded
	default:
		return v
	}
}

// resolveTarget maps a template URL onto (host, path). Relative URLs are
// resolved against the environment's base URL.
func (r *configRunner) resolveTarget(rawURL string) (string, string) {
	if strings.HasPrefix(rawURL, "http://") || strings.HasPrefix(rawURL, "https://") {
		return parseURL(rawURL)
	}
	if rawURL == "" {
		return r.env.BaseURL, "/"
	}
	return r.env.BaseURL, rawURL
}

func init() {
	runCmd.Flags().StringP("config", "c", "", "Configuration file (required)")
	runCmd.Flags().StringP("environment", "e", "", "Environment to use (required)")
	runCmd.Flags().StringP("request", "r", "", "Request to run")
	runCmd.Flags().StringP("suite", "s", "", "Suite to run")
	runCmd.Flags().BoolP("verbose", "v", false, "Enable verbose output")
	runCmd.Flags().DurationP("timeout", "t", 30*time.Second, "Request timeout")
	runCmd.Flags().Bool("no-color", false, "Disable colored output")
}
