package cli

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rshade/emetricx/internal/config"
	"github.com/rshade/emetricx/internal/tui"
)

// ErrNotInteractive is returned when the wizard is started without a terminal.
var ErrNotInteractive = errors.New("the wizard needs an interactive terminal; use estimate, totals and report instead")

// NewWizardCmd creates the wizard command, which runs the interactive
// six-step flow.
func NewWizardCmd() *cobra.Command {
	var reportDir string

	cmd := &cobra.Command{
		Use:   "wizard",
		Short: "Run the interactive carbon accounting wizard",
		Long: `Walks through Category, Data Input, Offsets, Gap Analysis, Visualize and Report.
Progress is saved after every step and restored on the next run.`,
		Args: noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !isTerminal(os.Stdin) || !isTerminal(os.Stdout) {
				return ErrNotInteractive
			}
			if reportDir == "" {
				reportDir = config.GetGlobalConfig().Report.Directory
			}

			ctx := cmd.Context()
			model := tui.NewWizardModel(ctx, openSession(cmd), reportDir)
			p := tea.NewProgram(model, tea.WithContext(ctx), tea.WithAltScreen())
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("running wizard: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&reportDir, "report-dir", "", "directory for downloaded reports (defaults to config)")
	return cmd
}
