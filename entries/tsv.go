package entries

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// MakeTSV writes the entries worksheet as a TSV file. The first row of the grid is
// the worksheet header and must include a 'date eaten' column.
func MakeTSV(f io.Writer, grid [][]string) error {
	if len(grid) == 0 {
		return fmt.Errorf("Empty sheet")
	}

	// ... header
	row := grid[0]
	header := make([]string, len(row))
	for i, v := range row {
		header[i] = clean(v)
	}

	if len(header) == 0 {
		return fmt.Errorf("Missing/invalid header row")
	}

	found := false
	for _, h := range header {
		if normalise(h) == "dateeaten" {
			found = true
			break
		}
	}

	if !found {
		return fmt.Errorf("Missing 'date eaten' column")
	}

	// ... records
	records := [][]string{}
	for _, row := range grid[1:] {
		record := make([]string, len(header))
		blank := true

		for i := range header {
			if i < len(row) {
				record[i] = clean(row[i])
			}

			if record[i] != "" {
				blank = false
			}
		}

		if !blank {
			records = append(records, record)
		}
	}

	// ... write to file
	w := csv.NewWriter(f)
	w.Comma = '\t'

	if err := w.Write(header); err != nil {
		return err
	}

	for _, record := range records {
		if err := w.Write(record); err != nil {
			return err
		}
	}

	w.Flush()

	return w.Error()
}

// ParseTSV reads a list of entries from a TSV file with 'Date Eaten', 'Preparation'
// and 'Quantity' columns (in any order). Blank lines are skipped, any other
// incomplete line is an error.
func ParseTSV(f io.Reader) ([]Entry, error) {
	r := csv.NewReader(f)
	r.Comma = '\t'
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("TSV file is empty")
	}

	// .. build index
	index := map[string]int{}
	for i, v := range records[0] {
		k := normalise(v)
		if _, ok := index[k]; ok {
			return nil, fmt.Errorf("Duplicate column name '%s'", v)
		}

		index[k] = i
	}

	for k, column := range map[string]string{"dateeaten": "date eaten", "preparation": "preparation", "quantity": "quantity"} {
		if _, ok := index[k]; !ok {
			return nil, fmt.Errorf("Missing '%s' column", column)
		}
	}

	get := func(record []string, k string) string {
		if ix := index[k]; ix < len(record) {
			return clean(record[ix])
		}

		return ""
	}

	// ... records
	list := []Entry{}
	for i, record := range records[1:] {
		entry := Entry{
			DateEaten:   get(record, "dateeaten"),
			Preparation: get(record, "preparation"),
			Quantity:    get(record, "quantity"),
		}

		if entry == (Entry{}) {
			continue
		}

		if err := entry.Validate(); err != nil {
			return nil, fmt.Errorf("line %d: %w", i+2, err)
		}

		list = append(list, entry)
	}

	return list, nil
}

func clean(v string) string {
	return strings.TrimSpace(v)
}

func normalise(v string) string {
	return strings.ToLower(strings.ReplaceAll(v, " ", ""))
}
