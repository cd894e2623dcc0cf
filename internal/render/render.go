package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"go-result-table/internal/natsort"
	"go-result-table/internal/table"
)

// Configuration variant literals of the experiment runs compared in
// the table. The empty string is the default run and is a variant of
// its own.
const (
	BaselineVariant = "-a 1 -p false -b true"
	ProofVariant    = "-p false -b true"
	DefaultVariant  = ""
)

// alwaysShown lists the case-number prefixes rendered even when the
// baseline run produced no lemmas for them.
var alwaysShown = map[int]bool{
	44:  true,
	111: true,
}

// Rows writes one LaTeX table row per included case, in natural order
// of the case identifiers. A case is included when its baseline total
// is non-zero, or when its numeric prefix is on the always-shown list.
// Counts missing from either table render as 0.
func Rows(w io.Writer, totals, verified *table.Counts) error {
	cases := verified.Cases()
	natsort.Sort(cases)

	for _, c := range cases {
		if totals.Get(c, BaselineVariant) == 0 && !allowListed(c) {
			continue
		}

		_, err := fmt.Fprintf(w, "%s & %d & %d & %d & %d \\\\\n",
			truncate(c, 7),
			totals.Get(c, BaselineVariant),
			totals.Get(c, DefaultVariant),
			verified.Get(c, ProofVariant),
			verified.Get(c, DefaultVariant),
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func allowListed(caseKey string) bool {
	prefix, _, found := strings.Cut(caseKey, "/")
	if !found {
		return false
	}
	n, err := strconv.Atoi(strings.TrimSpace(prefix))
	if err != nil {
		return false
	}
	return alwaysShown[n]
}

// truncate keeps the first n runes; identifiers are assumed free of
// LaTeX-special characters, so no escaping happens here.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
