package batch

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleInput = `Mississippi
mississippi
2
issi
2
s
4
Banana
banana
1
ana
2
`

func TestParseFile(t *testing.T) {
	records, err := ParseFile(strings.NewReader(sampleInput))
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "Mississippi", records[0].Title)
	assert.Equal(t, "mississippi", records[0].Body)
	require.Len(t, records[0].Searches, 2)
	assert.Equal(t, Search{Pattern: "issi", Expected: 2}, records[0].Searches[0])
	assert.Equal(t, Search{Pattern: "s", Expected: 4}, records[0].Searches[1])

	assert.Equal(t, "Banana", records[1].Title)
	assert.Equal(t, "banana", records[1].Body)
	assert.Equal(t, Search{Pattern: "ana", Expected: 2}, records[1].Searches[0])
}

func TestParseFileRejectsTruncatedRecord(t *testing.T) {
	_, err := ParseFile(strings.NewReader("Title\nbody\n1\npattern\n"))
	assert.ErrorIs(t, err, ErrMalformedRecord)
}

func TestRunDetectsPassAndFail(t *testing.T) {
	records, err := ParseFile(strings.NewReader(sampleInput))
	require.NoError(t, err)

	results := Run(records)
	require.Len(t, results, 3)
	for _, r := range results {
		assert.Truef(t, r.Passed, "expected pass: %+v", r)
	}

	bad := []Record{{Title: "T", Body: "abc", Searches: []Search{{Pattern: "a", Expected: 99}}}}
	badResults := Run(bad)
	require.Len(t, badResults, 1)
	assert.False(t, badResults[0].Passed)
}

func TestWriteCSV(t *testing.T) {
	results := []Result{
		{SourceTitle: "T", SearchStr: "a", Found: 1, Expected: 1, Passed: true},
		{SourceTitle: "T", SearchStr: "z", Found: 0, Expected: 1, Passed: false},
	}
	var buf strings.Builder
	require.NoError(t, WriteCSV(&buf, results))

	out := buf.String()
	assert.Contains(t, out, "Source Title,Search String,Found,Expected,Result")
	assert.Contains(t, out, "T,a,1,1,passed")
	assert.Contains(t, out, "T,z,0,1,failed")
}
