package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

// StringList is a []string persisted as a JSONB column.
type StringList []string

// Value implements driver.Valuer.
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	return string(b), err
}

// Scan implements sql.Scanner.
func (l *StringList) Scan(src any) error {
	return scanJSON(src, l)
}

// Spec is a single key/value specification row of a product
// (e.g. "Voltage" → "400 V").
type Spec struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// SpecList is a []Spec persisted as a JSONB column.
type SpecList []Spec

// Value implements driver.Valuer.
func (l SpecList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	return string(b), err
}

// Scan implements sql.Scanner.
func (l *SpecList) Scan(src any) error {
	return scanJSON(src, l)
}

// Document is an arbitrary structured JSON object, used for CMS page content
// and persisted as a JSONB column or as an on-disk JSON file.
type Document map[string]any

// Value implements driver.Valuer.
func (d Document) Value() (driver.Value, error) {
	if d == nil {
		return "{}", nil
	}
	b, err := json.Marshal(d)
	return string(b), err
}

// Scan implements sql.Scanner.
func (d *Document) Scan(src any) error {
	return scanJSON(src, d)
}

func scanJSON(src, dst any) error {
	switch v := src.(type) {
	case nil:
		return nil
	case []byte:
		return json.Unmarshal(v, dst)
	case string:
		return json.Unmarshal([]byte(v), dst)
	default:
		return errors.New("unsupported source type for JSON column")
	}
}
