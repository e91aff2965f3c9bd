// Command allure-jira checks Jira connectivity using the same ALLURE_JIRA_*
// configuration as the Allure Jira integration.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	jira "github.com/peteraglen/allure-jira-go-client"
)

type rootOptions struct {
	configFile string
	verbose    bool
	timeout    time.Duration
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "allure-jira",
		Short:         "Query Jira with the Allure Jira integration settings",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configFile, "config", "", "config file with ALLURE_JIRA_* keys (environment takes precedence)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log requests at debug level")
	flags.DurationVar(&opts.timeout, "timeout", 30*time.Second, "per-request timeout")

	cmd.AddCommand(newServerInfoCommand(opts), newIssueCommand(opts))

	return cmd
}

func newServerInfoCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "server-info",
		Short: "Print the Jira server info",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, closeLogger, err := opts.buildClient()
			if err != nil {
				return err
			}
			defer closeLogger()

			info, err := client.ServerInfo(cmd.Context())
			if err != nil {
				return err
			}

			return printJSON(cmd.OutOrStdout(), info)
		},
	}
}

func newIssueCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "issue <key>",
		Short: "Print a Jira issue",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, closeLogger, err := opts.buildClient()
			if err != nil {
				return err
			}
			defer closeLogger()

			issue, err := client.GetIssue(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			return printJSON(cmd.OutOrStdout(), issue)
		},
	}
}

func (o *rootOptions) buildClient() (*jira.Client, func(), error) {
	logger, err := o.newLogger()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create logger: %w", err)
	}
	closeLogger := func() { _ = logger.Sync() }

	source := jira.NewEnvPropertySource()
	if o.configFile != "" {
		if source, err = jira.NewFilePropertySource(o.configFile); err != nil {
			closeLogger()
			return nil, nil, err
		}
	}

	builder := jira.NewBuilder(
		jira.WithPropertySource(source),
		jira.WithRequestLogger(logger.Sugar()),
		jira.WithTimeout(o.timeout),
		jira.WithUserAgent("allure-jira-cli"),
	)

	if err := builder.LoadDefaults(); err != nil {
		closeLogger()
		return nil, nil, err
	}

	client, err := builder.Build()
	if err != nil {
		closeLogger()
		return nil, nil, err
	}

	return client, closeLogger, nil
}

func (o *rootOptions) newLogger() (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.DisableStacktrace = true
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	if o.verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	return cfg.Build()
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
