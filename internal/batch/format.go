// Package batch implements a positions.in batch-test harness, grounded
// on original_source/PositionsTest.cpp: it builds one automaton per
// source-text record, runs each recorded search pattern through
// Positions, and verifies both the reported count and that every
// returned index actually matches the pattern in the source text.
package batch

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// ErrMalformedRecord is wrapped with details and returned when a
// positions.in file doesn't match ParseFile's expected grammar.
var ErrMalformedRecord = errors.New("batch: malformed record")

// Search is one pattern and its expected occurrence count within a
// Record's body.
type Search struct {
	Pattern  string
	Expected int
}

// Record is one "source text" entry: a title, a body to build an
// automaton from, and the searches to run against it.
type Record struct {
	Title    string
	Body     string
	Searches []Search
}

// ParseFile reads the positions.in grammar from r:
//
//	<title line>
//	<body line>
//	<K : integer on its own line>
//	repeated K times:
//	  <search pattern line>
//	  <expected count : integer on its own line>
//
// repeated until EOF.
func ParseFile(r io.Reader) ([]Record, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	var records []Record
	for {
		title, ok, err := readLine(sc)
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}

		body, ok, err := readLine(sc)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, fmt.Errorf("%w: title %q has no body line", ErrMalformedRecord, title)
		}

		countLine, ok, err := readLine(sc)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, fmt.Errorf("%w: title %q has no search count", ErrMalformedRecord, title)
		}
		count, err := strconv.Atoi(countLine)
		if err != nil {
			return nil, fmt.Errorf("%w: title %q: search count %q: %v", ErrMalformedRecord, title, countLine, err)
		}

		searches := make([]Search, 0, count)
		for i := 0; i < count; i++ {
			pattern, ok, err := readLine(sc)
			if err != nil {
				return nil, err
			}
			if !ok {
				return nil, fmt.Errorf("%w: title %q: missing pattern %d/%d", ErrMalformedRecord, title, i+1, count)
			}
			expectedLine, ok, err := readLine(sc)
			if err != nil {
				return nil, err
			}
			if !ok {
				return nil, fmt.Errorf("%w: title %q: missing expected count for pattern %q", ErrMalformedRecord, title, pattern)
			}
			expected, err := strconv.Atoi(expectedLine)
			if err != nil {
				return nil, fmt.Errorf("%w: title %q: expected count %q: %v", ErrMalformedRecord, title, expectedLine, err)
			}
			searches = append(searches, Search{Pattern: pattern, Expected: expected})
		}

		records = append(records, Record{Title: title, Body: body, Searches: searches})
	}
	return records, nil
}

func readLine(sc *bufio.Scanner) (string, bool, error) {
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return "", false, err
		}
		return "", false, nil
	}
	return sc.Text(), true, nil
}
