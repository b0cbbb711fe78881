package main

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/lixenwraith/vi-field/config"
)

// runFunc starts the sandbox with a validated configuration
type runFunc func(ctx context.Context, cfg *config.Config) error

// newRootCmd builds the CLI, flags override file and environment values
func newRootCmd(run runFunc) *cobra.Command {
	v := viper.New()
	var cfgFile string

	cmd := &cobra.Command{
		Use:           "field-sandbox",
		Short:         "Interactive electric field sandbox for the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("log-file") {
				v.Set("logger.enabled", true)
			}
			cfg, err := config.Load(v, cfgFile)
			if err != nil {
				return err
			}
			return run(cmd.Context(), cfg)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&cfgFile, "config", "c", "", "config file (toml, yaml or json)")
	flags.Float64("scale", 0, "initial field scale")
	flags.Bool("direction-only", false, "draw grid arrows at uniform length")
	flags.Bool("sound", false, "enable the sensor probe tone")
	flags.String("log-file", "", "write logs to this file")
	flags.String("log-level", "", "log level (debug, info, warn, error)")

	// Unset flags fall through to file, environment and defaults
	_ = v.BindPFlag("field.scale", flags.Lookup("scale"))
	_ = v.BindPFlag("display.direction_only", flags.Lookup("direction-only"))
	_ = v.BindPFlag("sound.enabled", flags.Lookup("sound"))
	_ = v.BindPFlag("logger.log_file", flags.Lookup("log-file"))
	_ = v.BindPFlag("logger.level", flags.Lookup("log-level"))

	return cmd
}
