// Package cli is the command tree of the concept catalog: the root command
// runs every demo, each subcommand runs one.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/marcodamonte/oop-concepts/internal/config"
	"github.com/marcodamonte/oop-concepts/internal/console"
	"github.com/marcodamonte/oop-concepts/internal/logging"
)

// Execute runs the root command against os.Args and exits with status 1
// when it fails.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

type options struct {
	configPath string
	logLevel   string
	noColor    bool
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:          "oop-concepts",
		Short:        "Object-oriented and error-handling concepts, one demo at a time",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := opts.env(cmd)
			if err != nil {
				return err
			}
			for _, d := range catalog {
				e.con.Section(d.title)
				d.run(e)
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "YAML file decoded over the built-in scenarios")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "debug|info|warn|error (overrides the config)")
	cmd.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "disable styled section headers")

	for _, d := range catalog {
		cmd.AddCommand(demoCmd(&opts, d))
	}
	cmd.AddCommand(listCmd())
	return cmd
}

func demoCmd(opts *options, d demo) *cobra.Command {
	return &cobra.Command{
		Use:   d.name,
		Short: d.title,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := opts.env(cmd)
			if err != nil {
				return err
			}
			e.con.Section(d.title)
			d.run(e)
			return nil
		},
	}
}

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the demos",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			for _, d := range catalog {
				fmt.Fprintf(cmd.OutOrStdout(), "%-14s %s\n", d.name, d.title)
			}
		},
	}
}

// env loads the configuration and builds the console and logger for a run.
// Only a broken configuration makes a command fail.
func (o *options) env(cmd *cobra.Command) (env, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return env{}, err
	}
	if o.logLevel != "" {
		cfg.Logging.Level = o.logLevel
	}

	var conOpts []console.Option
	if o.noColor {
		conOpts = append(conOpts, console.WithColor(false))
	}

	return env{
		con: console.New(cmd.OutOrStdout(), cmd.ErrOrStderr(), conOpts...),
		log: logging.New(cmd.ErrOrStderr(), cfg.Logging),
		cfg: cfg,
	}, nil
}
