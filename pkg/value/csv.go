package value

import (
	"encoding/csv"
	"errors"
	"strings"
)

// DecodeCSV parses delimited text with a header row into an array of
// objects, one per data row, coercing numeric and boolean cell values.
// Blank lines are skipped. Any reader error (including ragged rows) is
// returned as-is so callers can treat it as "not CSV".
func DecodeCSV(text string) (*Value, error) {
	reader := csv.NewReader(strings.NewReader(text))
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return nil, errors.New("CSV needs a header row and at least one data row")
	}

	headers := records[0]
	rows := []*Value{}
	for _, record := range records[1:] {
		fields := make([]Field, 0, len(headers))
		for i, name := range headers {
			if i < len(record) {
				fields = append(fields, Field{Key: name, Val: coerceScalar(record[i])})
			} else {
				fields = append(fields, Field{Key: name, Val: Null()})
			}
		}
		rows = append(rows, NewObject(fields...))
	}
	return NewArray(rows...), nil
}
