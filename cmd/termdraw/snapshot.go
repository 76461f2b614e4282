package main

import (
	"fmt"

	"github.com/hnimtadd/termdraw/terminal/ansi"
	"github.com/hnimtadd/termdraw/terminal/canvas"
	"github.com/spf13/cobra"
)

type snapshotFlags struct {
	cols, rows int
	color      bool
}

func newSnapshotCmd(flags *logFlags) *cobra.Command {
	opts := &snapshotFlags{}
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Paint the demo scene on an in-memory grid and print it",
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.cols <= 0 || opts.rows <= 0 {
				return fmt.Errorf("invalid size %dx%d", opts.cols, opts.rows)
			}
			log, closeLog, err := flags.open()
			if err != nil {
				return err
			}
			defer closeLog()

			grid := canvas.NewGrid(canvas.Options{
				Cols:   opts.cols,
				Rows:   opts.rows,
				Logger: log,
			})
			paintScene(grid)
			log.Debug("snapshot painted", "dirty_rows", len(grid.DirtyRows()))

			out := cmd.OutOrStdout()
			if err := ansi.Encode(out, grid, ansi.Options{NoColor: !opts.color}); err != nil {
				return err
			}
			_, err = fmt.Fprintln(out)
			return err
		},
	}
	cmd.Flags().IntVar(&opts.cols, "cols", 40, "canvas width in columns")
	cmd.Flags().IntVar(&opts.rows, "rows", 12, "canvas height in rows")
	cmd.Flags().BoolVar(&opts.color, "ansi", false, "emit SGR color sequences")
	return cmd
}
