// Package convert turns HSP lines into BED records, one line at a time.
package convert

import (
	"errors"
	"fmt"
	"io"

	"github.com/jjtimmons/hspbed/internal/bed"
	"github.com/jjtimmons/hspbed/internal/hsp"
	"github.com/jjtimmons/hspbed/internal/stream"
)

// Stats counts what a Run did.
type Stats struct {
	// Lines read from the input
	Lines int

	// Skipped comment and blank lines
	Skipped int

	// Records written to the output
	Records int
}

func (s Stats) String() string {
	return fmt.Sprintf("%d lines read, %d skipped, %d BED records written", s.Lines, s.Skipped, s.Records)
}

// Run reads HSP lines from in and writes a BED record to out for each.
//
// Comment and blank lines are skipped. The first malformed line stops the
// run with a *hsp.ParseError, records written before it stay written.
func Run(in io.Reader, out io.Writer, opts Options) (stats Stats, err error) {
	scanner := stream.NewScanner(in)
	w := bed.NewWriter(out)

	for scanner.Scan() {
		stats.Lines++

		rec, ok, err := hsp.Parse(scanner.Text())
		if err != nil {
			var perr *hsp.ParseError
			if errors.As(err, &perr) {
				perr.Line = stats.Lines
			}
			return stats, err
		}
		if !ok {
			stats.Skipped++
			continue
		}

		b := Build(&rec, opts)
		if err := w.Write(&b); err != nil {
			return stats, fmt.Errorf("failed to write BED record: %w", err)
		}
		stats.Records++
	}

	if err := scanner.Err(); err != nil {
		return stats, fmt.Errorf("failed to read HSPs: %w", err)
	}
	return stats, nil
}
