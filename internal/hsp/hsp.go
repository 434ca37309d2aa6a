// Package hsp parses tabular high-scoring pair (HSP) lines, as written by
// `blastn -outfmt 6` or `blastn -outfmt 7`, into Records.
package hsp

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// FieldCount is the number of tab separated columns in an HSP line.
const FieldCount = 12

// fieldNames are the column names of an HSP line, in order.
var fieldNames = [FieldCount]string{
	"query",
	"target",
	"identity",
	"alignment length",
	"mismatches",
	"gap opens",
	"query start",
	"query end",
	"target start",
	"target end",
	"evalue",
	"bitscore",
}

// ErrFieldCount is the cause of a ParseError on a line with too few columns.
var ErrFieldCount = errors.New("too few fields")

// Record is a single HSP (one local alignment between a query and a target).
type Record struct {
	// Query is the query sequence's id
	Query string

	// Target is the target (subject) sequence's id, often a chromosome
	Target string

	// Identity is the percent identity of the alignment
	Identity float64

	// AlignmentLength is the length of the aligned region
	AlignmentLength int

	// Mismatches is the number of mismatching bps
	Mismatches int

	// GapOpens is the number of gap openings
	GapOpens int

	// QueryStart and QueryEnd are the span on the query. Not ordered:
	// QueryStart > QueryEnd for an alignment on the minus strand
	QueryStart int64
	QueryEnd   int64

	// TargetStart and TargetEnd are the span on the target, also not ordered
	TargetStart int64
	TargetEnd   int64

	// Evalue is the expect value of the alignment (lower is more significant)
	Evalue float64

	// Bitscore is the normalized alignment score
	Bitscore float64
}

// ParseError reports a malformed HSP line.
type ParseError struct {
	// Line is the 1-based line number in the input, 0 if unknown
	Line int

	// Field is the name of the column that failed to parse, empty for a bad field count
	Field string

	// Err is the underlying cause
	Err error
}

func (e *ParseError) Error() string {
	var b strings.Builder
	b.WriteString("malformed HSP")
	if e.Line > 0 {
		fmt.Fprintf(&b, " on line %d", e.Line)
	}
	if e.Field != "" {
		fmt.Fprintf(&b, ", field %q", e.Field)
	}
	fmt.Fprintf(&b, ": %v", e.Err)
	return b.String()
}

func (e *ParseError) Unwrap() error { return e.Err }

// Skip reports whether a line carries no HSP: it's empty or a "#" comment.
func Skip(line string) bool {
	return line == "" || strings.HasPrefix(line, "#")
}

// Parse a single line into a Record. ok is false for lines that
// should be skipped (see Skip). A line with fewer than FieldCount columns,
// or any column that isn't of its expected type, returns a *ParseError.
func Parse(line string) (rec Record, ok bool, err error) {
	line = strings.TrimSuffix(line, "\r")
	if Skip(line) {
		return Record{}, false, nil
	}

	cols := strings.Split(line, "\t")
	if len(cols) < FieldCount {
		return Record{}, false, &ParseError{
			Err: fmt.Errorf("%w: got %d, need %d", ErrFieldCount, len(cols), FieldCount),
		}
	}
	// the last column may carry blast's trailing whitespace
	cols[FieldCount-1] = strings.TrimSpace(cols[FieldCount-1])

	p := fieldParser{cols: cols}
	rec = Record{
		Query:           cols[0],
		Target:          cols[1],
		Identity:        p.toFloat(2),
		AlignmentLength: p.toInt(3),
		Mismatches:      p.toInt(4),
		GapOpens:        p.toInt(5),
		QueryStart:      p.toInt64(6),
		QueryEnd:        p.toInt64(7),
		TargetStart:     p.toInt64(8),
		TargetEnd:       p.toInt64(9),
		Evalue:          p.toFloat(10),
		Bitscore:        p.toFloat(11),
	}
	if p.err != nil {
		return Record{}, false, p.err
	}
	return rec, true, nil
}

// fieldParser converts columns and keeps the first failure.
type fieldParser struct {
	cols []string
	err  error
}

func (p *fieldParser) fail(i int, err error) {
	if p.err == nil {
		p.err = &ParseError{Field: fieldNames[i], Err: err}
	}
}

// toFloat ignores surrounding whitespace. Integer columns don't.
func (p *fieldParser) toFloat(i int) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(p.cols[i]), 64)
	if err != nil {
		p.fail(i, err)
	}
	return f
}

func (p *fieldParser) toInt(i int) int {
	n, err := strconv.ParseInt(p.cols[i], 10, 32)
	if err != nil {
		p.fail(i, err)
	}
	return int(n)
}

func (p *fieldParser) toInt64(i int) int64 {
	n, err := strconv.ParseInt(p.cols[i], 10, 64)
	if err != nil {
		p.fail(i, err)
	}
	return n
}
