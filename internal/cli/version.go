package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/emetricx/internal/config"
	"github.com/rshade/emetricx/pkg/version"
)

// NewVersionCmd creates the version command.
func NewVersionCmd(ver string) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := resolveOutputFormat(output)
			if err != nil {
				return err
			}

			info := version.Get()
			if ver != "" {
				info.Version = ver
			}
			if format == config.FormatJSON {
				return writeJSON(cmd.OutOrStdout(), info)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "emetricx %s\n", info.Version)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "  commit:   %s\n", info.GitCommit)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "  built:    %s\n", info.BuildDate)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "  go:       %s\n", info.GoVersion)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "  platform: %s\n", info.Platform)
			return nil
		},
	}

	cmd.Flags().StringVar(&output, "output", "", "output format (text, json); defaults to config")
	return cmd
}
