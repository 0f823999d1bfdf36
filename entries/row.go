package entries

import (
	"time"
)

const (
	DateFormat      = "01/02/2006"
	TimestampFormat = "01/02/2006 15:04:05"
	ISOFormat       = "2006-01-02"
)

// Row is the worksheet row for an entry:
//
//	timestamp | date eaten | preparation | quantity | notes
type Row []string

// NewRow builds the worksheet row for a validated entry submitted at 'now'.
func NewRow(entry Entry, now time.Time) Row {
	return Row{
		now.Format(TimestampFormat),
		entry.DateEaten,
		entry.Preparation,
		entry.Quantity,
		"",
	}
}

// Values converts the row to the representation expected by sheets.ValueRange.
func (r Row) Values() []interface{} {
	values := make([]interface{}, len(r))
	for i, v := range r {
		values[i] = v
	}

	return values
}
