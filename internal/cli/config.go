package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rshade/emetricx/internal/config"
)

// NewConfigInitCmd creates the config init command for initializing configuration.
func NewConfigInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize configuration file with default values",
		Long:  `Creates $EMETRICX_HOME/config.yaml (default ~/.emetricx/config.yaml) with default values.`,
		Example: `  # Create configuration
  emetricx config init

  # Create configuration, overwriting existing
  emetricx config init --force`,
		Args: noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.New()

			if !force {
				if _, err := os.Stat(cfg.ConfigPath()); err == nil {
					return errors.New("configuration file already exists, use --force to overwrite")
				} else if !os.IsNotExist(err) {
					return fmt.Errorf("cannot access config path %s: %w", cfg.ConfigPath(), err)
				}
			}

			if err := cfg.Save(); err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Configuration initialized successfully\n")
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Configuration file: %s\n", cfg.ConfigPath())
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing configuration file")
	return cmd
}

// NewConfigGetCmd creates the config get command.
func NewConfigGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "get <key>",
		Short:   "Print one configuration value",
		Example: `  emetricx config get output.default_format`,
		Args:    exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := config.New().Get(args[0])
			if err != nil {
				return &UsageError{Err: err}
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), v)
			return nil
		},
	}
}

// NewConfigSetCmd creates the config set command.
func NewConfigSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set and save one configuration value",
		Example: `  emetricx config set output.default_format json
  emetricx config set logging.level debug`,
		Args: exactArgs(2), //nolint:mnd // key and value
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.New()
			if err := cfg.Set(args[0], args[1]); err != nil {
				return &UsageError{Err: err}
			}
			if err := cfg.Save(); err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", args[0], args[1])
			return nil
		},
	}
}

// NewConfigListCmd creates the config list command.
func NewConfigListCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all configuration values",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := resolveOutputFormat(output)
			if err != nil {
				return err
			}

			values := config.New().List()
			if format == config.FormatJSON {
				return writeJSON(cmd.OutOrStdout(), values)
			}
			for _, k := range config.Keys {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", k, values[k])
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&output, "output", "", "output format (text, json); defaults to config")
	return cmd
}

// NewConfigValidateCmd creates the config validate command for validating configuration.
func NewConfigValidateCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration file",
		Example: `  # Validate current configuration
  emetricx config validate

  # Validate and show detailed information
  emetricx config validate --verbose`,
		Args: noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.New()
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("configuration validation failed: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Configuration is valid\n")
			if verbose {
				_, _ = fmt.Fprintln(cmd.OutOrStdout())
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Configuration details:")
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "  Config file: %s\n", cfg.ConfigPath())
				for _, k := range config.Keys {
					v, _ := cfg.Get(k)
					label := strings.ReplaceAll(k, "_", " ")
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "  %s: %s\n", label, v)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show detailed validation information")
	return cmd
}
