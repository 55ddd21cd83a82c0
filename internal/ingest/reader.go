package ingest

import (
	"bufio"
	"encoding/csv"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"
)

// Target is one row of the batch file.
type Target struct {
	Company  string
	MaxItems int
}

// Regex for valid company slugs, e.g. turk-telekom
var slugRegex = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// LoadTargets reads a company,max_items CSV with a header row.
// Invalid rows are skipped rather than failing the whole file.
func LoadTargets(path string) ([]Target, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseTargets(f)
}

// ParseTargets is LoadTargets over any reader.
func ParseTargets(src io.Reader) ([]Target, error) {
	r := csv.NewReader(stripBOM(src))
	r.FieldsPerRecord = -1

	var targets []Target
	line := 0
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return targets, err
		}
		line++
		if line == 1 {
			continue // header
		}
		if len(record) < 2 {
			continue
		}

		company := strings.ToLower(strings.TrimSpace(record[0]))
		if !slugRegex.MatchString(company) {
			continue
		}
		limit, err := strconv.Atoi(strings.TrimSpace(record[1]))
		if err != nil || limit <= 0 {
			continue
		}

		targets = append(targets, Target{Company: company, MaxItems: limit})
	}
	return targets, nil
}

func stripBOM(r io.Reader) io.Reader {
	br := bufio.NewReader(r)
	rdr, _, err := br.ReadRune()
	if err != nil {
		return br
	}
	if rdr != '\uFEFF' {
		br.UnreadRune()
	}
	return br
}
