package batch

import (
	"encoding/csv"
	"io"
	"strconv"
)

// WriteCSV writes results as a CSV report with the columns
// "Source Title, Search String, Found, Expected, Result".
func WriteCSV(w io.Writer, results []Result) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"Source Title", "Search String", "Found", "Expected", "Result"}); err != nil {
		return err
	}
	for _, r := range results {
		status := "passed"
		if !r.Passed {
			status = "failed"
		}
		row := []string{
			r.SourceTitle,
			r.SearchStr,
			strconv.Itoa(r.Found),
			strconv.Itoa(r.Expected),
			status,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	return cw.Error()
}
