package storage

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ReportRow is one record of a report result. Columns keep the order in which
// the query produced them, and that order survives a JSON round trip.
type ReportRow struct {
	Columns []string
	Values  []any
}

func NewReportRow(columns []string, values []any) ReportRow {
	return ReportRow{Columns: columns, Values: values}
}

func (r ReportRow) Get(column string) (any, bool) {
	for i, c := range r.Columns {
		if c == column && i < len(r.Values) {
			return r.Values[i], true
		}
	}
	return nil, false
}

func (r ReportRow) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	for i, col := range r.Columns {
		if i > 0 {
			buf.WriteByte(',')
		}

		key, err := json.Marshal(col)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')

		var v any
		if i < len(r.Values) {
			v = r.Values[i]
		}
		val, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("report row: column %q: %w", col, err)
		}
		buf.Write(val)
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (r *ReportRow) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("report row: expected object, got %v", tok)
	}

	r.Columns = nil
	r.Values = nil

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("report row: expected key, got %v", tok)
		}

		var v any
		if err := dec.Decode(&v); err != nil {
			return fmt.Errorf("report row: column %q: %w", key, err)
		}

		r.Columns = append(r.Columns, key)
		r.Values = append(r.Values, v)
	}

	if _, err := dec.Token(); err != nil {
		return err
	}

	return nil
}
