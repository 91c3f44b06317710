package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"luxdash/internal/export"
)

func newExportCommand() *cobra.Command {
	var (
		sf  selectionFlags
		out string
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the filtered dashboard to an XLSX workbook",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a := fromContext(cmd.Context())
			t0 := time.Now()

			s, err := a.newSession()
			if err != nil {
				return err
			}
			sel, err := sf.selection(cmd, s)
			if err != nil {
				return err
			}
			data, err := s.Evaluate(sel)
			if err != nil {
				return err
			}

			if out == "" {
				out = export.FileName(data)
			}
			fh, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("create %s: %w", out, err)
			}
			if err := export.Write(fh, data); err != nil {
				fh.Close()
				return err
			}
			if err := fh.Close(); err != nil {
				return err
			}

			a.logger.Info("workbook written", "path", out, "took", since(t0))
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	sf.register(cmd)
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output path (default: dashboard-<timestamp>.xlsx)")
	return cmd
}
