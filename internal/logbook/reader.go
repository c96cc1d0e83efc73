package logbook

import (
	"context"
	"errors"

	"github.com/faizmokh/belajar/internal/files"
)

// Reader loads a study log through a files.Manager and normalizes it.
type Reader struct {
	manager *files.Manager
	opts    ParseOptions
}

// NewReader wires a reader using the shared files.Manager.
func NewReader(manager *files.Manager, opts ParseOptions) *Reader {
	return &Reader{manager: manager, opts: opts}
}

// DayLog returns the parsed, unnormalized buckets.
func (r *Reader) DayLog(ctx context.Context) (*DayLog, error) {
	if r == nil || r.manager == nil {
		return nil, errors.New("reader not initialized with file manager")
	}

	lines, err := r.manager.Lines(ctx)
	if err != nil {
		return nil, err
	}
	return ParseLines(lines, r.opts)
}

// Calendar returns the gap-filled calendar for the managed log.
func (r *Reader) Calendar(ctx context.Context) (Calendar, error) {
	log, err := r.DayLog(ctx)
	if err != nil {
		return nil, err
	}
	return Normalize(log)
}
