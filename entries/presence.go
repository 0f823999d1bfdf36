package entries

import (
	"fmt"
	"time"
)

// WINDOW is the number of days summarised by Week.
const WINDOW = 7

// DayPresence records whether any entries were made for a day.
type DayPresence struct {
	Date       string `json:"date"`
	HasEntries bool   `json:"hasEntries"`
	DayNumber  int    `json:"dayNumber"`
}

func (d DayPresence) String() string {
	if d.HasEntries {
		return fmt.Sprintf("%v  %2d  Y", d.Date, d.DayNumber)
	}

	return fmt.Sprintf("%v  %2d  -", d.Date, d.DayNumber)
}

// Week returns the presence calendar for the 7 days ending on 'today', oldest
// first. 'column' is the 'date eaten' column with the header row already removed.
func Week(today time.Time, column []string) []DayPresence {
	loc := today.Location()
	week := make([]DayPresence, 0, WINDOW)

	for i := WINDOW - 1; i >= 0; i-- {
		day := time.Date(today.Year(), today.Month(), today.Day()-i, 0, 0, 0, 0, loc)
		date := day.Format(DateFormat)

		hasEntries := false
		for _, cell := range column {
			if Matches(cell, date, loc) {
				hasEntries = true
				break
			}
		}

		week = append(week, DayPresence{
			Date:       day.Format(ISOFormat),
			HasEntries: hasEntries,
			DayNumber:  day.Day(),
		})
	}

	return week
}

// Column extracts the first cell of every row after the header. Short rows are
// returned as blank cells.
func Column(grid [][]string) []string {
	if len(grid) < 2 {
		return []string{}
	}

	column := make([]string, 0, len(grid)-1)
	for _, row := range grid[1:] {
		if len(row) > 0 {
			column = append(column, row[0])
		} else {
			column = append(column, "")
		}
	}

	return column
}
