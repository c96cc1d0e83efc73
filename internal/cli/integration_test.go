package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/faizmokh/belajar/internal/config"
	"github.com/faizmokh/belajar/internal/files"
	"github.com/faizmokh/belajar/internal/logbook"
	"github.com/faizmokh/belajar/internal/render"
)

const sampleLog = `~~ January ~~
01-01-2024
09.00-10.30 calculus
14.00-14.45
03-01-2024 exam week
14.15-15.00
`

func TestCLIWorkflowEndToEnd(t *testing.T) {
	ctx := context.Background()
	path := writeLog(t, sampleLog)
	opts := newTestOptions(t)

	// 1. List days, including the synthesized gap.
	daysOut := executeCommand(t, newDaysCommand(ctx, opts), "--file", path)
	assertContains(t, daysOut, "Mon 01-01-2024  2h15m   09:00-10:30, 14:00-14:45")
	assertContains(t, daysOut, "Tue 02-01-2024  0m      (no sessions)")
	assertContains(t, daysOut, "Wed 03-01-2024  45m     14:15-15:00")
	assertContains(t, daysOut, "3 days, 3h00m total")

	// 2. Chart renders one column per day.
	chartOut := executeCommand(t, newChartCommand(ctx, opts), "--file", path, "--no-color")
	assertContains(t, chartOut, "Mon 01-01-2024 Tue 02-01-2024 Wed 03-01-2024")
	assertContains(t, chartOut, " 9:00  "+strings.Repeat("█", 14))

	// 3. Weekly summary.
	weeksOut := executeCommand(t, newWeeksCommand(ctx, opts), "--file", path)
	assertContains(t, weeksOut, "2024-W01  01-01-2024..03-01-2024  3h00m   2/3 days")

	// 4. Fill writes a canonical log that parses back to the same calendar.
	filled := filepath.Join(t.TempDir(), "filled.txt")
	fillOut := executeCommand(t, newFillCommand(ctx, opts), "--file", path, "--out", filled)
	assertContains(t, fillOut, "Wrote 3 days")

	original := loadCalendar(t, path)
	again := loadCalendar(t, filled)
	if len(original) != len(again) {
		t.Fatalf("filled calendar has %d days, want %d", len(again), len(original))
	}
	for i := range original {
		if original[i].Label != again[i].Label || original[i].Minutes() != again[i].Minutes() {
			t.Fatalf("day %d changed: %+v vs %+v", i, again[i], original[i])
		}
	}

	// 5. SVG export.
	svgPath := filepath.Join(t.TempDir(), "chart.svg")
	svgOut := executeCommand(t, newSVGCommand(ctx, opts), "--file", path, "--out", svgPath)
	assertContains(t, svgOut, "Output saved to")
	data, err := os.ReadFile(svgPath)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	assertContains(t, string(data), "Wed 03-01-2024")
}

func TestDaysCommandJSON(t *testing.T) {
	path := writeLog(t, sampleLog)
	out := executeCommand(t, newDaysCommand(context.Background(), newTestOptions(t)), "--file", path, "--json")

	var days []struct {
		Date      string             `json:"date"`
		Label     string             `json:"label"`
		Minutes   int                `json:"minutes"`
		Intervals []logbook.Interval `json:"intervals"`
	}
	if err := json.Unmarshal([]byte(out), &days); err != nil {
		t.Fatalf("Unmarshal: %v\n%s", err, out)
	}
	if len(days) != 3 {
		t.Fatalf("len(days) = %d, want 3", len(days))
	}
	if days[1].Date != "02-01-2024" || days[1].Intervals == nil || len(days[1].Intervals) != 0 {
		t.Fatalf("gap day = %+v, want empty intervals array", days[1])
	}
	if days[0].Intervals[0] != (logbook.Interval{Start: 540, End: 630}) || days[0].Minutes != 135 {
		t.Fatalf("first day = %+v", days[0])
	}
}

func TestCommandsRespectDateWindow(t *testing.T) {
	path := writeLog(t, sampleLog)
	out := executeCommand(t, newDaysCommand(context.Background(), newTestOptions(t)),
		"--file", path, "--from", "02-01-2024", "--to", "02-01-2024")

	assertContains(t, out, "Tue 02-01-2024")
	assertNotContains(t, out, "Mon 01-01-2024")
	assertNotContains(t, out, "Wed 03-01-2024")
}

func TestDaysCommandEmptyLog(t *testing.T) {
	path := writeLog(t, "")
	out := executeCommand(t, newDaysCommand(context.Background(), newTestOptions(t)), "--file", path)
	assertContains(t, out, "No study sessions logged")

	chart := executeCommand(t, newChartCommand(context.Background(), newTestOptions(t)), "--file", path)
	assertContains(t, chart, "23:00")
}

func TestMalformedTimeIsRejectedUnlessLenient(t *testing.T) {
	path := writeLog(t, "01-01-2024\n99.99-10.00\n")
	ctx := context.Background()

	err := executeCommandErr(t, newDaysCommand(ctx, newTestOptions(t)), "--file", path)
	if !errors.Is(err, logbook.ErrMalformedTime) {
		t.Fatalf("error = %v, want ErrMalformedTime", err)
	}

	out := executeCommand(t, newDaysCommand(ctx, newTestOptions(t)), "--file", path, "--lenient", "--json")
	assertContains(t, out, `"start": 6039`)
}

func TestFillRefusesRangesItCannotWriteBack(t *testing.T) {
	path := writeLog(t, "01-01-2024\n99.99-10.00\n09.00-10.00\n")
	err := executeCommandErr(t, newFillCommand(context.Background(), newTestOptions(t)),
		"--file", path, "--lenient", "--out", path)
	if !errors.Is(err, logbook.ErrMalformedTime) {
		t.Fatalf("error = %v, want ErrMalformedTime", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	assertContains(t, string(data), "99.99-10.00")
}

func TestMalformedDateAborts(t *testing.T) {
	path := writeLog(t, "30-02-2024\n09.00-10.00\n")
	err := executeCommandErr(t, newChartCommand(context.Background(), newTestOptions(t)), "--file", path)
	if !errors.Is(err, logbook.ErrMalformedDate) {
		t.Fatalf("error = %v, want ErrMalformedDate", err)
	}
}

func TestMissingLogIsSourceUnavailable(t *testing.T) {
	err := executeCommandErr(t, newDaysCommand(context.Background(), newTestOptions(t)),
		"--file", filepath.Join(t.TempDir(), "nope.txt"))
	if !errors.Is(err, files.ErrSourceUnavailable) {
		t.Fatalf("error = %v, want ErrSourceUnavailable", err)
	}
}

func TestConfiguredLogPathIsUsed(t *testing.T) {
	path := writeLog(t, sampleLog)
	opts := newSourceOptions(config.Config{LogPath: path, Palette: render.DefaultPalette()}, quietLogger())

	out := executeCommand(t, newDaysCommand(context.Background(), opts))
	assertContains(t, out, "Wed 03-01-2024")
}

func TestRootCommandRegistersSubcommands(t *testing.T) {
	root := NewRootCommand(context.Background(), config.Config{}, quietLogger())
	for _, name := range []string{"chart", "svg", "days", "weeks", "fill", "version"} {
		if sub, _, err := root.Find([]string{name}); err != nil || sub.Name() != name {
			t.Fatalf("Find(%q) = %v, %v", name, sub, err)
		}
	}

	out := executeCommand(t, newVersionCommand())
	assertContains(t, out, "belajar ")
	assertContains(t, out, "commit none")
}

func executeCommand(t *testing.T, cmd *cobra.Command, args ...string) string {
	t.Helper()
	if args == nil {
		args = []string{}
	}
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		t.Fatalf("cmd.Execute(%q): %v\n%s", args, err, buf.String())
	}
	return buf.String()
}

func executeCommandErr(t *testing.T, cmd *cobra.Command, args ...string) error {
	t.Helper()
	if args == nil {
		args = []string{}
	}
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	cmd.SilenceUsage = true
	err := cmd.Execute()
	if err == nil {
		t.Fatalf("cmd.Execute(%q): expected error\n%s", args, buf.String())
	}
	return err
}

func assertContains(t *testing.T, output, want string) {
	t.Helper()
	if !strings.Contains(output, want) {
		t.Fatalf("output %q missing substring %q", output, want)
	}
}

func assertNotContains(t *testing.T, output, want string) {
	t.Helper()
	if strings.Contains(output, want) {
		t.Fatalf("output %q unexpectedly contained substring %q", output, want)
	}
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
}

func newTestOptions(t *testing.T) *sourceOptions {
	t.Helper()
	return newSourceOptions(config.Config{Palette: render.DefaultPalette()}, quietLogger())
}

func writeLog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "study.txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func loadCalendar(t *testing.T, path string) logbook.Calendar {
	t.Helper()
	mgr, err := files.NewManager(path)
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	cal, err := logbook.NewReader(mgr, logbook.ParseOptions{Logger: quietLogger()}).Calendar(context.Background())
	if err != nil {
		t.Fatalf("Calendar: %v", err)
	}
	return cal
}
