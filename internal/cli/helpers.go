package cli

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/faizmokh/belajar/internal/config"
	"github.com/faizmokh/belajar/internal/files"
	"github.com/faizmokh/belajar/internal/logbook"
	"github.com/faizmokh/belajar/internal/render"
)

// sourceOptions carries the flags shared by every command that reads the log.
type sourceOptions struct {
	cfg    config.Config
	logger *slog.Logger

	file    string
	lenient bool
	from    string
	to      string
}

func newSourceOptions(cfg config.Config, logger *slog.Logger) *sourceOptions {
	if logger == nil {
		logger = slog.Default()
	}
	return &sourceOptions{cfg: cfg, logger: logger}
}

func (o *sourceOptions) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.file, "file", "", "Study log to read (default: $BELAJAR_LOG, $DATAPATH or ~/.belajar/study.txt)")
	cmd.Flags().BoolVar(&o.lenient, "lenient", false, "Accept out-of-range or inverted time ranges as-is")
	cmd.Flags().StringVar(&o.from, "from", "", "First date to include in DD-MM-YYYY")
	cmd.Flags().StringVar(&o.to, "to", "", "Last date to include in DD-MM-YYYY")
}

func (o *sourceOptions) manager() (*files.Manager, error) {
	path := o.file
	if path == "" {
		path = o.cfg.LogPath
	}
	return files.NewManager(path)
}

// calendar loads, parses, and normalizes the log, then applies --from/--to.
func (o *sourceOptions) calendar(ctx context.Context) (logbook.Calendar, error) {
	mgr, err := o.manager()
	if err != nil {
		return nil, err
	}

	reader := logbook.NewReader(mgr, logbook.ParseOptions{
		Lenient: o.lenient,
		Logger:  o.logger,
	})
	cal, err := reader.Calendar(ctx)
	if err != nil {
		return nil, err
	}
	o.logger.Debug("calendar loaded", "path", mgr.Path(), "days", len(cal))

	from, err := parseBound("from", o.from)
	if err != nil {
		return nil, err
	}
	to, err := parseBound("to", o.to)
	if err != nil {
		return nil, err
	}
	if from.IsZero() && to.IsZero() {
		return cal, nil
	}
	return cal.Between(from, to), nil
}

func parseBound(name, value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, nil
	}
	date, err := logbook.ParseDate(value)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse --%s: %w", name, err)
	}
	return date, nil
}

func (o *sourceOptions) palette() render.Palette {
	p := o.cfg.Palette
	defaults := render.DefaultPalette()
	if p.Background == "" {
		p.Background = defaults.Background
	}
	if p.Header == "" {
		p.Header = defaults.Header
	}
	if p.Block == "" {
		p.Block = defaults.Block
	}
	if p.Text == "" {
		p.Text = defaults.Text
	}
	return p
}

func formatIntervals(intervals []logbook.Interval) string {
	if len(intervals) == 0 {
		return "(no sessions)"
	}
	parts := make([]string, 0, len(intervals))
	for _, iv := range intervals {
		parts = append(parts, iv.String())
	}
	return strings.Join(parts, ", ")
}

func printDay(cmd *cobra.Command, day logbook.Day) {
	fmt.Fprintf(cmd.OutOrStdout(), "%s  %-7s %s\n",
		day.Label, render.Duration(day.Minutes()), formatIntervals(day.Intervals))
}
