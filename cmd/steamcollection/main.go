// Package main provides the command that generates a Postman collection from
// the Steam Web API discovery endpoint.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"steamcollection/internal/catalog"
	"steamcollection/internal/config"
	"steamcollection/internal/discovery"
	"steamcollection/internal/formatter"
	"steamcollection/internal/generator"
	"steamcollection/internal/logger"
)

type options struct {
	configFile string
	output     string
	logLevel   string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:           "steamcollection",
		Short:         "Generate a Postman collection for the Steam Web API",
		Long:          "Fetches ISteamWebAPIUtil/GetSupportedAPIList and writes every interface and method as a Postman v2.1 collection.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.configFile, "config", "", "Path to YAML configuration file")
	cmd.Flags().StringVar(&opts.output, "output", "", "Output JSON file path (overrides config)")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")

	return cmd
}

func loadConfig(opts *options) (*config.Config, error) {
	cfg := config.Default()

	if opts.configFile != "" {
		loaded, err := config.LoadConfig(opts.configFile)
		if err != nil {
			return nil, err
		}

		cfg = loaded
	}

	if opts.output != "" {
		cfg.Output.Path = opts.output
	}

	if opts.logLevel != "" {
		cfg.Logging.Level = opts.logLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// run performs one attempt. Handled failures (missing key, bad status,
// malformed document) are reported on stdout and return nil.
func run(cmd *cobra.Command, opts *options) error {
	out := cmd.OutOrStdout()

	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	log := logger.NewLoggerWithWriter(cfg.Logging.Level, logger.ConsoleWriter(cmd.ErrOrStderr()))

	apiKey, ok := discovery.NewEnvCredentials(cfg.Steam.APIKeyEnv).Lookup()
	if !ok {
		fmt.Fprintf(out, "Please set the %s environment variable to your Steam Web API key\n", cfg.Steam.APIKeyEnv)

		return nil
	}

	result, err := generator.NewFromConfig(cfg, log).Run(cmd.Context(), apiKey)

	var statusErr *discovery.StatusError

	switch {
	case err == nil:
	case errors.As(err, &statusErr):
		color.New(color.FgRed).Fprintf(out, "Failed to retrieve data. Status code: %d\n", statusErr.StatusCode)

		return nil
	case errors.Is(err, catalog.ErrMalformedInput):
		color.New(color.FgRed).Fprintf(out, "Discovery document is malformed: %v\n", err)

		return nil
	case isFetchError(err):
		color.New(color.FgRed).Fprintf(out, "Failed to retrieve data: %v\n", err)

		return nil
	default:
		return err
	}

	color.New(color.FgGreen).Fprintln(out, "Postman collection JSON file generated successfully!")
	fmt.Fprintf(out, "Saved %d interfaces and %d methods to %s (%d bytes)\n\n",
		result.Folders, result.Items, result.OutputPath, result.Bytes)
	fmt.Fprintln(out, formatter.FormatSummary(result.Collection))

	return nil
}

// isFetchError reports whether err came from the network side of the run.
func isFetchError(err error) bool {
	var fetchErr *generator.StageError

	return errors.As(err, &fetchErr) && fetchErr.Stage == generator.StageFetch
}
