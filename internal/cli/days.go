package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/faizmokh/belajar/internal/logbook"
	"github.com/faizmokh/belajar/internal/render"
)

func newDaysCommand(ctx context.Context, opts *sourceOptions) *cobra.Command {
	var outputJSON bool

	cmd := &cobra.Command{
		Use:   "days",
		Short: "List every day in the logged span with its sessions.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cal, err := opts.calendar(ctx)
			if err != nil {
				return err
			}

			if outputJSON {
				return printJSON(cmd, cal)
			}
			if len(cal) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No study sessions logged")
				return nil
			}
			for _, day := range cal {
				printDay(cmd, day)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "\n%d days, %s total\n", len(cal), render.Duration(cal.TotalMinutes()))
			return nil
		},
	}

	opts.bind(cmd)
	cmd.Flags().BoolVar(&outputJSON, "json", false, "Emit the calendar as JSON")

	return cmd
}

func newWeeksCommand(ctx context.Context, opts *sourceOptions) *cobra.Command {
	var outputJSON bool

	cmd := &cobra.Command{
		Use:   "weeks",
		Short: "Summarize study time per ISO week.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cal, err := opts.calendar(ctx)
			if err != nil {
				return err
			}

			weeks := cal.Weeks()
			if outputJSON {
				return printJSON(cmd, weeks)
			}
			if len(weeks) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No study sessions logged")
				return nil
			}

			out := cmd.OutOrStdout()
			for _, week := range weeks {
				first := week.Days[0]
				last := week.Days[len(week.Days)-1]
				active := 0
				for _, day := range week.Days {
					if !day.Empty() {
						active++
					}
				}
				fmt.Fprintf(out, "%d-W%02d  %s..%s  %-7s %d/%d days\n",
					week.Year, week.Week,
					first.Date.Format(logbook.DateLayout), last.Date.Format(logbook.DateLayout),
					render.Duration(week.Minutes), active, len(week.Days))
			}
			return nil
		},
	}

	opts.bind(cmd)
	cmd.Flags().BoolVar(&outputJSON, "json", false, "Emit the weekly summary as JSON")

	return cmd
}

func newFillCommand(ctx context.Context, opts *sourceOptions) *cobra.Command {
	var outFlag string

	cmd := &cobra.Command{
		Use:   "fill",
		Short: "Print the log with every missing day filled in.",
		Long:  "fill rewrites the log in canonical form, sorted by date, with a bare header for each day that has no sessions. Annotations and decoration are dropped.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cal, err := opts.calendar(ctx)
			if err != nil {
				return err
			}

			if outFlag == "" {
				return logbook.Format(cmd.OutOrStdout(), cal)
			}
			if err := logbook.WriteFile(ctx, outFlag, cal); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d days to %s\n", len(cal), outFlag)
			return nil
		},
	}

	opts.bind(cmd)
	cmd.Flags().StringVar(&outFlag, "out", "", "Write to this file instead of stdout")

	return cmd
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
