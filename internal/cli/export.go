package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/rshade/emetricx/internal/chart"
	"github.com/rshade/emetricx/internal/config"
	"github.com/rshade/emetricx/internal/report"
)

// NewExportCmd creates the export command, which writes every artefact for
// the saved state in one go.
func NewExportCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the text report, JSON report and chart data",
		Long: `Writes three files for the saved wizard state into --dir:
  emetricx-report-<unix-millis>.txt   the downloadable report
  emetricx-report-<unix-millis>.json  the structured report
  emetricx-charts-<unix-millis>.json  the chart configs`,
		Args: noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if dir == "" {
				dir = config.GetGlobalConfig().Report.Directory
			}
			paths, err := ExportAll(cmd, dir, time.Now())
			if err != nil {
				return err
			}
			for _, p := range paths {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), p)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "", "output directory (defaults to config report.directory)")
	return cmd
}

// ExportAll writes the export artefacts concurrently and returns their paths
// sorted.
func ExportAll(cmd *cobra.Command, dir string, now time.Time) ([]string, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating export directory: %w", err)
	}

	session := openSession(cmd)
	data := reportData(session)
	charts := chart.Build(chartData(session))
	stem := strings.TrimSuffix(report.FileName(now), ".txt")

	var g errgroup.Group
	paths := make([]string, 3)

	g.Go(func() error {
		p, err := report.Write(dir, data, now)
		paths[0] = p
		return err
	})
	g.Go(func() error {
		b, err := report.JSON(data, now)
		if err != nil {
			return err
		}
		paths[1] = filepath.Join(dir, stem+".json")
		return writeFile(paths[1], b)
	})
	g.Go(func() error {
		b, err := json.MarshalIndent(charts, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding charts: %w", err)
		}
		paths[2] = filepath.Join(dir, fmt.Sprintf("emetricx-charts-%d.json", now.UnixMilli()))
		return writeFile(paths[2], b)
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	logger.Info().Ctx(cmd.Context()).Str("dir", dir).Int("files", len(paths)).Msg("export complete")
	sort.Strings(paths)
	return paths, nil
}

func writeFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing %s: %w", filepath.Base(path), err)
	}
	return nil
}
