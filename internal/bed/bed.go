// Package bed is for 6-column BED interval records.
package bed

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/biogo/biogo/feat"
)

// Columns is the number of tab separated columns in a written BED line.
const Columns = 6

var (
	_ feat.Feature  = (*Record)(nil)
	_ feat.Orienter = (*Record)(nil)
	_ feat.Feature  = Chrom("")
)

// Record is a BED6 interval.
type Record struct {
	// Chrom is the name of the reference the interval is on
	Chrom string

	// ChromStart and ChromEnd bound the interval. They're kept in the order
	// they were given, ChromStart > ChromEnd on the minus strand
	ChromStart int64
	ChromEnd   int64

	// FeatName is the name column
	FeatName string

	// FeatScore is the score column, already rendered as text
	FeatScore string

	// FeatStrand is the strand column
	FeatStrand feat.Orientation
}

// Start returns the smaller of the interval's bounds.
func (r *Record) Start() int { return int(min(r.ChromStart, r.ChromEnd)) }

// End returns the larger of the interval's bounds.
func (r *Record) End() int { return int(max(r.ChromStart, r.ChromEnd)) }

// Len returns the length of the interval.
func (r *Record) Len() int { return r.End() - r.Start() }

// Name returns the name column.
func (r *Record) Name() string { return r.FeatName }

// Description returns the score column.
func (r *Record) Description() string { return r.FeatScore }

// Location returns the reference the interval is on.
func (r *Record) Location() feat.Feature { return Chrom(r.Chrom) }

// Orientation returns the strand of the interval.
func (r *Record) Orientation() feat.Orientation { return r.FeatStrand }

// Chrom is a reference sequence, the location of a Record.
type Chrom string

func (c Chrom) Start() int             { return 0 }
func (c Chrom) End() int               { return 0 }
func (c Chrom) Len() int               { return 0 }
func (c Chrom) Name() string           { return string(c) }
func (c Chrom) Description() string    { return "chromosome" }
func (c Chrom) Location() feat.Feature { return nil }

// StrandOf returns the orientation of a span: Forward if start <= end,
// Reverse otherwise.
func StrandOf(start, end int64) feat.Orientation {
	if start <= end {
		return feat.Forward
	}
	return feat.Reverse
}

// Symbol returns the BED strand column for an orientation.
func Symbol(o feat.Orientation) string {
	switch o {
	case feat.Forward:
		return "+"
	case feat.Reverse:
		return "-"
	}
	return "."
}

// parseSymbol is the inverse of Symbol.
func parseSymbol(s string) (feat.Orientation, error) {
	switch s {
	case "+":
		return feat.Forward, nil
	case "-":
		return feat.Reverse, nil
	case ".":
		return feat.NotOriented, nil
	}
	return feat.NotOriented, fmt.Errorf("unknown strand %q", s)
}

// Writer writes Records as tab separated BED lines.
type Writer struct {
	w io.Writer
}

// NewWriter returns a Writer writing to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Write one Record as a line.
func (w *Writer) Write(r *Record) error {
	_, err := fmt.Fprintf(w.w, "%s\t%d\t%d\t%s\t%s\t%s\n",
		r.Chrom, r.ChromStart, r.ChromEnd, r.FeatName, r.FeatScore, Symbol(r.FeatStrand))
	return err
}

// Parse one BED6 line, the inverse of Writer.Write.
func Parse(line string) (r Record, err error) {
	cols := strings.Split(strings.TrimRight(line, "\r\n"), "\t")
	if len(cols) != Columns {
		return r, fmt.Errorf("failed to parse BED line, %d columns: %q", len(cols), line)
	}

	r.Chrom = cols[0]
	if r.ChromStart, err = strconv.ParseInt(cols[1], 10, 64); err != nil {
		return Record{}, fmt.Errorf("failed to parse chromStart: %w", err)
	}
	if r.ChromEnd, err = strconv.ParseInt(cols[2], 10, 64); err != nil {
		return Record{}, fmt.Errorf("failed to parse chromEnd: %w", err)
	}
	r.FeatName = cols[3]
	r.FeatScore = cols[4]
	if r.FeatStrand, err = parseSymbol(cols[5]); err != nil {
		return Record{}, fmt.Errorf("failed to parse strand: %w", err)
	}
	return r, nil
}
