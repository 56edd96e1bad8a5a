package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/emetricx/internal/config"
	"github.com/rshade/emetricx/internal/report"
)

// NewStateShowCmd creates the state show command.
func NewStateShowCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the saved wizard state",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := resolveOutputFormat(output)
			if err != nil {
				return err
			}

			session, store := openSessionWithStore(cmd)
			if format == config.FormatJSON {
				return writeJSON(cmd.OutOrStdout(), session.Snapshot())
			}

			snap := session.Snapshot()
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Session:  %s\n", snap.SessionID)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Category: %s\n", snap.Category.DisplayName())
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Step:     %s\n", snap.Step.Title())
			if path := statePath(store); path != "" {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "File:     %s\n", path)
			}
			if !snap.UpdatedAt.IsZero() {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Updated:  %s\n", snap.UpdatedAt.Format("2006-01-02 15:04:05 MST"))
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout())
			return report.RenderTotals(cmd.OutOrStdout(), snap.Totals)
		},
	}

	cmd.Flags().StringVar(&output, "output", "", "output format (text, json); defaults to config")
	return cmd
}

// NewStateResetCmd creates the state reset command.
func NewStateResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Clear the saved wizard state",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			openSession(cmd).Reset(cmd.Context())
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Wizard state cleared")
			return nil
		},
	}
}
