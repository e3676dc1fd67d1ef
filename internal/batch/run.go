package batch

import (
	"github.com/gopherlabs/suffixautomaton/automaton"
)

// Result is one verified search outcome, matching the CSV columns
// "Source Title, Search String, Found, Expected, Result".
type Result struct {
	SourceTitle string
	SearchStr   string
	Found       int
	Expected    int
	Passed      bool
}

// Run builds an automaton per record and verifies every search
// against it: the reported position count must equal Expected, and
// every reported position must actually be followed by the pattern in
// the body (original_source/PositionsTest.cpp's substring check).
func Run(records []Record, opts ...automaton.Option) []Result {
	var results []Result
	for _, rec := range records {
		a := automaton.Build([]byte(rec.Body), opts...)
		for _, search := range rec.Searches {
			positions := a.Positions([]byte(search.Pattern))
			passed := len(positions) == search.Expected
			if passed {
				passed = allMatch(rec.Body, search.Pattern, positions)
			}
			results = append(results, Result{
				SourceTitle: rec.Title,
				SearchStr:   search.Pattern,
				Found:       len(positions),
				Expected:    search.Expected,
				Passed:      passed,
			})
		}
	}
	return results
}

func allMatch(body, pattern string, positions []int) bool {
	n := len(pattern)
	for _, p := range positions {
		if p < 0 || p+n > len(body) {
			return false
		}
		if body[p:p+n] != pattern {
			return false
		}
	}
	return true
}
