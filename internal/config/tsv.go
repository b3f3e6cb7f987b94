package config

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// ConfigItem is one advanced build-time configuration knob loaded from the
// tab-separated pico_configs.tsv file. Values chosen by the user are passed
// through to the build descriptor as compile definitions.
type ConfigItem struct {
	Name        string
	Type        string // "bool", "int", "enum"; empty defaults to int
	Min         string
	Max         string
	Default     string
	EnumValues  string // pipe-separated values for enum items
	Description string
}

// Kind returns the item type, applying the empty-means-int default.
func (c ConfigItem) Kind() string {
	if c.Type == "" {
		return "int"
	}
	return c.Type
}

// LoadConfigItems parses the advanced configuration catalog from a TSV file.
// A missing file is not an error; the engine proceeds with an empty catalog.
func LoadConfigItems(path string) ([]ConfigItem, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: open %s: %v", ErrIO, path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = '\t'
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	header, err := r.Read()
	if err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: parse %s: %v", ErrIO, path, err)
	}

	col := make(map[string]int, len(header))
	for i, name := range header {
		col[name] = i
	}

	field := func(row []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	var items []ConfigItem
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: parse %s: %v", ErrIO, path, err)
		}
		items = append(items, ConfigItem{
			Name:        field(row, "name"),
			Type:        field(row, "type"),
			Min:         field(row, "min"),
			Max:         field(row, "max"),
			Default:     field(row, "default"),
			EnumValues:  field(row, "enumvalues"),
			Description: field(row, "description"),
		})
	}
	return items, nil
}
