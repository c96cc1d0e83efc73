package logbook

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strconv"
	"strings"
)

var (
	datePattern = regexp.MustCompile(`^\d\d-\d\d-\d\d\d\d$`)
	timePattern = regexp.MustCompile(`^(\d\d)\.(\d\d)-(\d\d)\.(\d\d)$`)
)

// maxLineBytes caps a single log line, annotations included.
const maxLineBytes = 16 * 1024 * 1024

// ParseOptions tunes how time ranges are converted.
type ParseOptions struct {
	// Lenient converts time ranges arithmetically without range checks.
	Lenient bool
	// Logger receives diagnostics about discarded lines. Defaults to slog.Default().
	Logger *slog.Logger
}

// Parser groups study-log lines into date buckets.
type Parser struct {
	r    io.Reader
	opts ParseOptions
}

// NewParser returns a parser that reads the full log from r.
func NewParser(r io.Reader, opts ParseOptions) *Parser {
	return &Parser{r: r, opts: opts}
}

// Parse reads every line from the underlying reader and buckets it.
func (p *Parser) Parse() (*DayLog, error) {
	if p.r == nil {
		return NewDayLog(), nil
	}

	var lines []string
	scanner := bufio.NewScanner(p.r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}
	return ParseLines(lines, p.opts)
}

// ParseLines buckets time ranges beneath the date header preceding them.
// Lines before the first header are discarded; unrecognised lines are ignored.
func ParseLines(lines []string, opts ParseOptions) (*DayLog, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	days := NewDayLog()
	var current *string
	for i, raw := range lines {
		token, ok := lineToken(raw)
		if !ok {
			continue
		}

		switch {
		case datePattern.MatchString(token):
			date := token
			current = &date
			days.open(date)
		case timePattern.MatchString(token):
			if current == nil {
				logger.Warn("discarding time range before first date header",
					"line", i+1, "token", token)
				continue
			}
			iv, err := ParseInterval(token, opts.Lenient)
			if err != nil {
				var te *MalformedTimeError
				if errors.As(err, &te) {
					te.Line = i + 1
				}
				return nil, err
			}
			days.Add(*current, iv)
		}
	}
	return days, nil
}

// lineToken strips decoration and returns the text before the first space.
func lineToken(raw string) (string, bool) {
	line := strings.ReplaceAll(strings.TrimSpace(raw), "~", "")
	if line == "" {
		return "", false
	}
	token, _, _ := strings.Cut(line, " ")
	return token, true
}

// ParseInterval converts an HH.MM-HH.MM token to minute offsets. Unless lenient,
// hours must be below 24, minutes below 60, and the range must end after it starts.
func ParseInterval(token string, lenient bool) (Interval, error) {
	m := timePattern.FindStringSubmatch(token)
	if m == nil {
		return Interval{}, &MalformedTimeError{Token: token, Reason: "expected HH.MM-HH.MM"}
	}

	var parts [4]int
	for i := range parts {
		// Two ASCII digits always convert.
		parts[i], _ = strconv.Atoi(m[i+1])
	}

	iv := Interval{
		Start: parts[0]*60 + parts[1],
		End:   parts[2]*60 + parts[3],
	}
	if lenient {
		return iv, nil
	}

	switch {
	case parts[0] >= 24 || parts[2] >= 24:
		return Interval{}, &MalformedTimeError{Token: token, Reason: "hour must be below 24"}
	case parts[1] >= 60 || parts[3] >= 60:
		return Interval{}, &MalformedTimeError{Token: token, Reason: "minute must be below 60"}
	case iv.End <= iv.Start:
		return Interval{}, &MalformedTimeError{Token: token, Reason: "end must be after start"}
	}
	return iv, nil
}
