package ingest

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
)

// ============================================================================
// REJECTION LOG — suspicious rows, one "<issue>,<detail>" line each
// ============================================================================

// RejectionLog writes rejected rows as "<issue>,<detail>" lines. The issue
// prefix is what CountRejections keys on; the detail is free-form.
type RejectionLog struct {
	w io.Writer
}

// NewRejectionLog wraps a writer.
func NewRejectionLog(w io.Writer) *RejectionLog {
	return &RejectionLog{w: w}
}

// Log records one rejection.
func (l *RejectionLog) Log(issue, detail string) error {
	_, err := fmt.Fprintf(l.w, "%s,%s\n", issue, detail)
	return errors.Wrap(err, "writing rejection")
}

// Counts holds per-issue rejection totals.
type Counts struct {
	NegativeFare int `json:"negative_fare"`
	UnknownZone  int `json:"unknown_zone"`
	TimeReversal int `json:"time_reversal"`
	ExtremeSpeed int `json:"extreme_speed"`
}

// Total is the number of rejected rows across all issues.
func (c Counts) Total() int {
	return c.NegativeFare + c.UnknownZone + c.TimeReversal + c.ExtremeSpeed
}

// CountRejections tallies a rejection log by issue prefix (the text before
// the first comma). Lines with an unrecognized prefix are ignored.
func CountRejections(r io.Reader) (Counts, error) {
	var counts Counts
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		issue, _, _ := strings.Cut(scanner.Text(), ",")
		switch issue {
		case IssueNegativeFare:
			counts.NegativeFare++
		case IssueUnknownZone:
			counts.UnknownZone++
		case IssueTimeReversal:
			counts.TimeReversal++
		case IssueExtremeSpeed:
			counts.ExtremeSpeed++
		}
	}
	return counts, errors.Wrap(scanner.Err(), "scanning rejection log")
}

// LoadCounts reads rejection totals from a log file. A missing file means
// no rejections — zero counts, not an error.
func LoadCounts(path string) (Counts, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Counts{}, nil
		}
		return Counts{}, errors.Wrapf(err, "opening rejection log %s", path)
	}
	defer f.Close()
	return CountRejections(f)
}
