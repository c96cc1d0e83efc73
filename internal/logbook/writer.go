package logbook

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// maxTokenMinute is the largest offset an HH.MM token can carry (99.59).
const maxTokenMinute = 99*60 + 59

// Format writes the calendar back in log form: a header per day followed by
// its HH.MM-HH.MM ranges. Gap days appear as bare headers. Nothing is written
// if any interval cannot be expressed as an HH.MM-HH.MM token.
func Format(w io.Writer, cal Calendar) error {
	for _, day := range cal {
		for _, iv := range day.Intervals {
			if err := checkRange(iv); err != nil {
				return fmt.Errorf("%s: %w", day.Date.Format(DateLayout), err)
			}
		}
	}

	bw := bufio.NewWriter(w)
	for i, day := range cal {
		if i > 0 {
			bw.WriteString("\n")
		}
		bw.WriteString(day.Date.Format(DateLayout))
		bw.WriteString("\n")
		for _, iv := range day.Intervals {
			bw.WriteString(formatRange(iv))
			bw.WriteString("\n")
		}
	}
	return bw.Flush()
}

func checkRange(iv Interval) error {
	for _, m := range []int{iv.Start, iv.End} {
		if m < 0 || m > maxTokenMinute {
			return &MalformedTimeError{
				Token:  fmt.Sprintf("%d-%d", iv.Start, iv.End),
				Reason: "minute offset does not fit HH.MM",
			}
		}
	}
	return nil
}

func formatRange(iv Interval) string {
	return fmt.Sprintf("%02d.%02d-%02d.%02d", iv.Start/60, iv.Start%60, iv.End/60, iv.End%60)
}

// WriteFile replaces path with the formatted calendar. The file is written to a
// sibling temp file first and renamed into place.
func WriteFile(ctx context.Context, path string, cal Calendar) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var b strings.Builder
	if err := Format(&b, cal); err != nil {
		return err
	}

	dir := filepath.Dir(path)
	temp, err := os.CreateTemp(dir, "belajar-*")
	if err != nil {
		return err
	}
	defer os.Remove(temp.Name())

	if _, err := temp.WriteString(b.String()); err != nil {
		temp.Close()
		return err
	}
	if err := temp.Sync(); err != nil {
		temp.Close()
		return err
	}
	if err := temp.Close(); err != nil {
		return err
	}

	info, err := os.Stat(path)
	if err == nil {
		if err := os.Chmod(temp.Name(), info.Mode()); err != nil {
			return err
		}
	}

	return os.Rename(temp.Name(), path)
}
