package main

import (
	"github.com/spf13/cobra"

	"github.com/goliatone/go-formkit/internal/config"
	"github.com/goliatone/go-formkit/internal/logging"
)

type rootFlags struct {
	configPath    string
	logLevel      string
	humanLogs     bool
	catalogPath   string
	theme         string
	variant       string
	inlineRuntime bool
}

func newRootCmd() *cobra.Command {
	return newRootCmdWith(surveyPick)
}

func newRootCmdWith(pick picker) *cobra.Command {
	flags := &rootFlags{}
	state := &app{pick: pick}

	cmd := &cobra.Command{
		Use:           "formkit",
		Short:         "Render and browse the formkit component catalog",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return state.init(cmd, flags)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&flags.configPath, "config", "c", "", "YAML config file")
	pf.StringVar(&flags.logLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")
	pf.BoolVar(&flags.humanLogs, "human-logs", true, "Write console-formatted logs instead of JSON")
	pf.StringVar(&flags.catalogPath, "catalog", "", "Catalog YAML file (defaults to the built-in catalog)")
	pf.StringVar(&flags.theme, "theme", "", "Theme name")
	pf.StringVar(&flags.variant, "variant", "", "Theme variant")
	pf.BoolVar(&flags.inlineRuntime, "inline-runtime", false, "Inline component scripts instead of linking them")

	cmd.AddCommand(newRenderCmd(state))
	cmd.AddCommand(newServeCmd(state))
	cmd.AddCommand(newPickCmd(state))
	cmd.AddCommand(newListCmd(state))

	return cmd
}

// init loads the config file, applies explicitly set flags on top and builds
// the logger.
func (a *app) init(cmd *cobra.Command, flags *rootFlags) error {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return err
	}

	changed := cmd.Flags().Changed
	if changed("log-level") {
		cfg.LogLevel = flags.logLevel
	}
	if changed("human-logs") {
		cfg.HumanLogs = flags.humanLogs
	}
	if changed("catalog") {
		cfg.Catalog = flags.catalogPath
	}
	if changed("theme") {
		cfg.Theme = flags.theme
	}
	if changed("variant") {
		cfg.ThemeVariant = flags.variant
	}
	if changed("inline-runtime") {
		cfg.InlineRuntime = flags.inlineRuntime
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logging.New(logging.Options{
		Level:         cfg.LogLevel,
		HumanReadable: cfg.HumanLogs,
		Writer:        cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.log = log
	return nil
}
