// Package csvdata parses delimited search-console exports into normalized
// records. The source formats use 0 and blank interchangeably for "not
// reported", so every zero numeric value is normalized to nil before
// storage. That loss is intentional and relied upon downstream; a true
// zero click count is indistinguishable from missing data.
package csvdata

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// ParseError reports structural problems with the input. A structural
// error aborts the whole import; no partial results are produced.
type ParseError struct {
	Details []string
}

func (e *ParseError) Error() string {
	if len(e.Details) == 1 {
		return "malformed input: " + e.Details[0]
	}
	return fmt.Sprintf("malformed input: %d structural errors", len(e.Details))
}

// Record is one normalized row. Key is the trimmed natural key (keyword
// text or page URL); metric fields are accessed through the typed getters,
// which apply the zero-to-nil convention.
type Record struct {
	Key    string
	fields map[string]string
}

// Raw returns the trimmed cell for a semantic field, or "" if the column
// was absent from the input.
func (r Record) Raw(field string) string {
	return r.fields[field]
}

// Count parses a countable metric (clicks, impressions, volume). Empty or
// non-numeric cells yield 0, and 0 is normalized to nil.
func (r Record) Count(field string) *int {
	n := leadingInt(r.fields[field])
	if n <= 0 {
		return nil
	}
	return &n
}

// Percent parses a percentage cell ("3,5%" or "3.5%") into a 0-1 fraction,
// nil when empty or zero.
func (r Record) Percent(field string) *float64 {
	s := strings.TrimSpace(strings.ReplaceAll(strings.ReplaceAll(r.fields[field], "%", ""), ",", "."))
	v := leadingFloat(s) / 100
	if v == 0 {
		return nil
	}
	return &v
}

// Float parses a fractional metric (position), accepting a decimal comma.
// Empty or zero cells yield nil.
func (r Record) Float(field string) *float64 {
	v := leadingFloat(strings.ReplaceAll(r.fields[field], ",", "."))
	if v == 0 {
		return nil
	}
	return &v
}

// Parse converts raw delimited text into normalized records using the
// given source profile. The delimiter (tab or comma) is auto-detected from
// the header and first data row. Rows whose natural key is empty after
// trimming are skipped silently. Parsing the same text twice yields the
// same records.
func Parse(text string, profile Profile) ([]Record, error) {
	delim, err := detectDelimiter(text)
	if err != nil {
		return nil, err
	}

	r := csv.NewReader(strings.NewReader(text))
	r.Comma = delim
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	header, err := r.Read()
	if err == io.EOF {
		return nil, &ParseError{Details: []string{"empty input"}}
	}
	if err != nil {
		return nil, &ParseError{Details: []string{err.Error()}}
	}

	columns := matchHeader(header, profile)

	var records []Record
	for line := 2; ; line++ {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &ParseError{Details: []string{fmt.Sprintf("line %d: %v", line, err)}}
		}

		fields := make(map[string]string, len(columns))
		for name, idx := range columns {
			if idx < len(row) {
				fields[name] = strings.TrimSpace(row[idx])
			}
		}

		key := fields[profile.Key]
		if key == "" {
			continue
		}
		records = append(records, Record{Key: key, fields: fields})
	}

	return records, nil
}

// matchHeader resolves each profile field to a column index. Header cells
// are compared exact after trimming; the first alias present wins. A field
// with no matching column is simply absent from the records.
func matchHeader(header []string, profile Profile) map[string]int {
	index := make(map[string]int, len(header))
	for i, cell := range header {
		cell = strings.TrimSpace(cell)
		if _, seen := index[cell]; !seen {
			index[cell] = i
		}
	}

	columns := make(map[string]int, len(profile.Fields))
	for _, f := range profile.Fields {
		for _, alias := range f.Aliases {
			if i, ok := index[alias]; ok {
				columns[f.Name] = i
				break
			}
		}
	}
	return columns
}

// detectDelimiter picks tab or comma by splitting the header and first
// data row with each candidate and requiring a consistent field count.
func detectDelimiter(text string) (rune, error) {
	header, data := firstTwoLines(text)
	if header == "" {
		return 0, &ParseError{Details: []string{"empty input"}}
	}

	for _, d := range []rune{'\t', ','} {
		hn := splitCount(header, d)
		if hn < 2 {
			continue
		}
		if data == "" || splitCount(data, d) == hn {
			return d, nil
		}
	}

	// Single-column input has no delimiter to detect.
	if !strings.ContainsAny(header, "\t,") {
		return ',', nil
	}

	return 0, &ParseError{Details: []string{"no consistent delimiter (tab or comma) across header and first data row"}}
}

// splitCount returns the number of fields the line splits into with the
// candidate delimiter, honoring CSV quoting. 0 means the line did not
// parse at all.
func splitCount(line string, delim rune) int {
	r := csv.NewReader(strings.NewReader(line))
	r.Comma = delim
	r.LazyQuotes = true
	fields, err := r.Read()
	if err != nil {
		return 0
	}
	return len(fields)
}

func firstTwoLines(text string) (header, data string) {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		if header == "" {
			header = line
			continue
		}
		return header, line
	}
	return header, ""
}

// leadingInt parses the leading decimal digits of a trimmed cell, the way
// the source exports are read: "120" -> 120, "1 200" -> 1, "" -> 0,
// "abc" -> 0.
func leadingInt(s string) int {
	s = strings.TrimSpace(s)
	n := 0
	ok := false
	for _, c := range s {
		if c < '0' || c > '9' {
			break
		}
		n = n*10 + int(c-'0')
		ok = true
	}
	if !ok {
		return 0
	}
	return n
}

// leadingFloat parses the leading float of a trimmed cell: "4.2" -> 4.2,
// "" -> 0, non-numeric -> 0.
func leadingFloat(s string) float64 {
	s = strings.TrimSpace(s)
	intPart := 0.0
	i := 0
	ok := false
	for ; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			break
		}
		intPart = intPart*10 + float64(c-'0')
		ok = true
	}
	if i < len(s) && s[i] == '.' {
		i++
		frac := 0.0
		scale := 1.0
		for ; i < len(s); i++ {
			c := s[i]
			if c < '0' || c > '9' {
				break
			}
			frac = frac*10 + float64(c-'0')
			scale *= 10
			ok = true
		}
		intPart += frac / scale
	}
	if !ok {
		return 0
	}
	return intPart
}
