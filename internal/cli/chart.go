package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/faizmokh/belajar/internal/render"
)

func newChartCommand(ctx context.Context, opts *sourceOptions) *cobra.Command {
	var (
		stepFlag    int
		noColorFlag bool
	)

	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Draw the study calendar as a terminal chart.",
		Long:  "chart prints one column per day between the first and last logged dates, with a filled cell for every slot covered by a session.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cal, err := opts.calendar(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			term := render.NewTerminal(out, opts.palette())
			term.Step = stepFlag
			if noColorFlag {
				term.Color = false
			}
			return term.Render(out, cal)
		},
	}

	opts.bind(cmd)
	cmd.Flags().IntVar(&stepFlag, "step", render.DefaultStep, "Minutes covered by each row")
	cmd.Flags().BoolVar(&noColorFlag, "no-color", false, "Disable colour even on a terminal")

	return cmd
}

func newSVGCommand(ctx context.Context, opts *sourceOptions) *cobra.Command {
	var outFlag string

	cmd := &cobra.Command{
		Use:   "svg",
		Short: "Write the study calendar as an SVG image.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cal, err := opts.calendar(ctx)
			if err != nil {
				return err
			}

			path := outFlag
			if path == "" {
				path = opts.cfg.OutPath
			}

			file, err := os.Create(path)
			if err != nil {
				return fmt.Errorf("create output: %w", err)
			}
			if err := render.NewSVG(opts.palette()).Render(file, cal); err != nil {
				file.Close()
				return fmt.Errorf("render svg: %w", err)
			}
			if err := file.Close(); err != nil {
				return err
			}

			opts.logger.Info("chart written", "path", path, "days", len(cal))
			fmt.Fprintf(cmd.OutOrStdout(), "Output saved to `%s`.\n", path)
			return nil
		},
	}

	opts.bind(cmd)
	cmd.Flags().StringVar(&outFlag, "out", "", "Output path (default: $BELAJAR_OUT or image.svg)")

	return cmd
}
