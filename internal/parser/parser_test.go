package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-result-table/internal/model"
	"go-result-table/internal/table"
)

func TestParseLine_Accepted(t *testing.T) {
	t.Parallel()

	rec, ok := ParseLine("1/foo,-a 1 -p false -b true,,,,,3/5,,ok")
	require.True(t, ok)

	assert.Equal(t, model.Record{
		Case:     "1/foo",
		Variant:  "-a 1 -p false -b true",
		Verified: 3,
		Total:    5,
	}, rec)
}

func TestParseLine_TrimsKeys(t *testing.T) {
	t.Parallel()

	rec, ok := ParseLine("  1/foo , -p false -b true ,,,,, 3 / 5 ,,ok")
	require.True(t, ok)

	assert.Equal(t, "1/foo", rec.Case)
	assert.Equal(t, "-p false -b true", rec.Variant)
	assert.Equal(t, 3, rec.Verified)
	assert.Equal(t, 5, rec.Total)
}

func TestParseLine_EmptyVariantIsValid(t *testing.T) {
	t.Parallel()

	rec, ok := ParseLine("1/foo,,,,,,3/5,,ok")
	require.True(t, ok)
	assert.Equal(t, "", rec.Variant)
}

func TestParseLine_FieldCountGate(t *testing.T) {
	t.Parallel()

	// 8 fields
	_, ok := ParseLine("1/foo,,,,,3/5,,ok")
	assert.False(t, ok)

	// 10 fields
	_, ok = ParseLine("1/foo,,,,,,3/5,,,ok")
	assert.False(t, ok)
}

func TestParseLine_ErrorMarkerGate(t *testing.T) {
	t.Parallel()

	// the marker is checked on the last field regardless of shape
	_, ok := ParseLine("1/foo,,,,,,3/5,,timeout error")
	assert.False(t, ok)

	_, ok = ParseLine("1/foo,error")
	assert.False(t, ok)

	_, ok = ParseLine("1/foo,,,,,,3/5,,  error  ")
	assert.False(t, ok)
}

func TestParseLine_RatioGate(t *testing.T) {
	t.Parallel()

	for _, line := range []string{
		"1/foo,,,,,,abc/5,,ok",  // non-numeric verified
		"1/foo,,,,,,-3/5,,ok",   // sign is not a digit
		"1/foo,,,,,,3/abc,,ok",  // non-numeric total
		"1/foo,,,,,,3,,ok",      // no slash
		"1/foo,,,,,,3/5/7,,ok",  // too many parts
		"1/foo,,,,,,/5,,ok",     // empty verified
	} {
		_, ok := ParseLine(line)
		assert.False(t, ok, "line %q should be rejected", line)
	}
}

func TestAggregate_FillsBothTables(t *testing.T) {
	t.Parallel()

	in := strings.NewReader(
		"1/foo,,,,,,3/5,,ok\n" +
			"1/foo,-a 1 -p false -b true,,,,,4/5,,ok\n",
	)

	totals, verified := table.New(), table.New()
	st, err := Aggregate(in, totals, verified)
	require.NoError(t, err)

	assert.Equal(t, int64(2), st.Lines)
	assert.Equal(t, int64(2), st.Parsed)
	assert.Equal(t, int64(0), st.Skipped)

	assert.Equal(t, 5, totals.Get("1/foo", ""))
	assert.Equal(t, 5, totals.Get("1/foo", "-a 1 -p false -b true"))
	assert.Equal(t, 3, verified.Get("1/foo", ""))
	assert.Equal(t, 4, verified.Get("1/foo", "-a 1 -p false -b true"))
}

func TestAggregate_LastWriteWins(t *testing.T) {
	t.Parallel()

	in := strings.NewReader(
		"1/foo,,,,,,3/5,,ok\n" +
			"1/foo,,,,,,7/9,,ok\n",
	)

	totals, verified := table.New(), table.New()
	_, err := Aggregate(in, totals, verified)
	require.NoError(t, err)

	assert.Equal(t, 9, totals.Get("1/foo", ""))
	assert.Equal(t, 7, verified.Get("1/foo", ""))
	assert.Equal(t, 1, verified.Len())
}

func TestAggregate_SkipsDirtyLinesSilently(t *testing.T) {
	t.Parallel()

	in := strings.NewReader(
		"garbage\n" +
			"1/foo,,,,,,3/5,,parse error\n" +
			"1/foo,,,,,,3/5,,ok\n",
	)

	totals, verified := table.New(), table.New()
	st, err := Aggregate(in, totals, verified)
	require.NoError(t, err)

	assert.Equal(t, int64(3), st.Lines)
	assert.Equal(t, int64(1), st.Parsed)
	assert.Equal(t, int64(2), st.Skipped)
	assert.Equal(t, 1, verified.Len())
}
