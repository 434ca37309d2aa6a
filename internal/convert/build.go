package convert

import (
	"strconv"
	"strings"

	"github.com/jjtimmons/hspbed/internal/bed"
	"github.com/jjtimmons/hspbed/internal/hsp"
	"github.com/jjtimmons/hspbed/internal/score"
)

// Orientation chooses which side of an HSP becomes the BED interval.
type Orientation int

const (
	// Forward makes the target span the interval, the query goes in the name
	Forward Orientation = iota

	// Reverse makes the query span the interval, the target goes in the name
	Reverse
)

func (o Orientation) String() string {
	if o == Reverse {
		return "reverse"
	}
	return "forward"
}

// Options are the run-wide settings for building BED records.
type Options struct {
	// DisplayName replaces the query id, if not nil
	DisplayName *string

	// Orientation is which span becomes the interval
	Orientation Orientation

	// TransformEvalue scores records with score.Transform rather than the raw e-value
	TransformEvalue bool
}

// span is one side of an alignment.
type span struct {
	name       string
	start, end int64
}

// spans splits an HSP into the side that becomes the interval
// and the side that's embedded in the name column.
func (o Orientation) spans(rec *hsp.Record, query string) (interval, other span) {
	q := span{query, rec.QueryStart, rec.QueryEnd}
	t := span{rec.Target, rec.TargetStart, rec.TargetEnd}
	if o == Reverse {
		return q, t
	}
	return t, q
}

// Build a BED record from an HSP.
func Build(rec *hsp.Record, opts Options) bed.Record {
	query := rec.Query
	if opts.DisplayName != nil {
		query = *opts.DisplayName
	}
	interval, other := opts.Orientation.spans(rec, query)

	name := strings.Join([]string{
		other.name,
		strconv.FormatInt(other.start, 10),
		strconv.FormatInt(other.end, 10),
		bed.Symbol(bed.StrandOf(other.start, other.end)),
		formatFloat(rec.Identity),
		strconv.Itoa(rec.AlignmentLength),
		strconv.Itoa(rec.Mismatches),
		strconv.Itoa(rec.GapOpens),
		formatFloat(rec.Evalue),
		formatFloat(rec.Bitscore),
	}, ":")

	s := formatFloat(rec.Evalue)
	if opts.TransformEvalue {
		s = strconv.Itoa(score.Transform(rec.Evalue))
	}

	return bed.Record{
		Chrom:      interval.name,
		ChromStart: interval.start,
		ChromEnd:   interval.end,
		FeatName:   name,
		FeatScore:  s,
		FeatStrand: bed.StrandOf(interval.start, interval.end),
	}
}
