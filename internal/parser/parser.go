package parser

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"go-result-table/internal/model"
	"go-result-table/internal/table"
)

// A well-formed report line has exactly this many comma-separated
// fields; anything else is noise from an interrupted harness run.
const fieldCount = 9

const ratioField = 6

// Stats counts what happened to the lines of one source.
type Stats struct {
	Lines   int64
	Parsed  int64
	Skipped int64
}

// ParseLine splits one report line into a Record. ok is false for
// lines that fail any shape check; malformed lines are never an error.
func ParseLine(line string) (model.Record, bool) {
	fields := strings.Split(line, ",")

	// harness writes its failure marker into the last field
	if strings.HasSuffix(strings.TrimSpace(fields[len(fields)-1]), "error") {
		return model.Record{}, false
	}
	if len(fields) != fieldCount {
		return model.Record{}, false
	}

	ratio := strings.Split(fields[ratioField], "/")
	if len(ratio) != 2 {
		return model.Record{}, false
	}
	if !isNumeric(strings.TrimSpace(ratio[0])) {
		return model.Record{}, false
	}
	verified, err := strconv.Atoi(strings.TrimSpace(ratio[0]))
	if err != nil {
		return model.Record{}, false
	}
	total, err := strconv.Atoi(strings.TrimSpace(ratio[1]))
	if err != nil {
		return model.Record{}, false
	}

	return model.Record{
		Case:     strings.TrimSpace(fields[0]),
		Variant:  strings.TrimSpace(fields[1]),
		Verified: verified,
		Total:    total,
	}, true
}

// Aggregate reads line-oriented records from r and writes the accepted
// ones into both count tables, last write winning per (case, variant)
// pair. Malformed lines are skipped silently and only counted.
func Aggregate(r io.Reader, totals, verified *table.Counts) (Stats, error) {
	var st Stats

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 20*1024*1024)

	for scanner.Scan() {
		st.Lines++

		rec, ok := ParseLine(scanner.Text())
		if !ok {
			st.Skipped++
			continue
		}

		totals.Set(rec.Case, rec.Variant, rec.Total)
		verified.Set(rec.Case, rec.Variant, rec.Verified)
		st.Parsed++
	}

	if err := scanner.Err(); err != nil {
		return st, err
	}
	return st, nil
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
