package entries

import (
	"reflect"
	"testing"
	"time"
)

func TestWeek(t *testing.T) {
	expected := []DayPresence{
		{Date: "2024-03-04", HasEntries: false, DayNumber: 4},
		{Date: "2024-03-05", HasEntries: false, DayNumber: 5},
		{Date: "2024-03-06", HasEntries: false, DayNumber: 6},
		{Date: "2024-03-07", HasEntries: false, DayNumber: 7},
		{Date: "2024-03-08", HasEntries: true, DayNumber: 8},
		{Date: "2024-03-09", HasEntries: false, DayNumber: 9},
		{Date: "2024-03-10", HasEntries: true, DayNumber: 10},
	}

	grid := [][]string{
		{"Date Eaten"},
		{"03/08/2024"},
		{"bad"},
		{"2024-03-10"},
	}

	today := time.Date(2024, time.March, 10, 14, 5, 9, 0, time.UTC)
	week := Week(today, Column(grid))

	if !reflect.DeepEqual(week, expected) {
		t.Errorf("Incorrect week\n   expected: %v\n   got:      %v", expected, week)
	}
}

func TestWeekAcrossMonthBoundary(t *testing.T) {
	expected := []string{
		"2024-02-25",
		"2024-02-26",
		"2024-02-27",
		"2024-02-28",
		"2024-02-29",
		"2024-03-01",
		"2024-03-02",
	}

	today := time.Date(2024, time.March, 2, 0, 0, 0, 0, time.UTC)
	week := Week(today, []string{"02/29/2024", "2024-03-01"})

	if len(week) != WINDOW {
		t.Fatalf("Incorrect number of days - expected:%v, got:%v", WINDOW, len(week))
	}

	for i, day := range week {
		if day.Date != expected[i] {
			t.Errorf("Incorrect date for day %v - expected:%v, got:%v", i, expected[i], day.Date)
		}
	}

	if !week[4].HasEntries || !week[5].HasEntries {
		t.Errorf("Expected entries for 2024-02-29 and 2024-03-01, got %v", week)
	}

	if week[6].HasEntries || week[6].DayNumber != 2 {
		t.Errorf("Incorrect presence for 2024-03-02 - got %v", week[6])
	}
}

func TestWeekIsOrderedAndEndsToday(t *testing.T) {
	column := []string{"", "  ", "not-a-date", "12/31/2023", "2023-12-28"}
	days := []time.Time{
		time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2023, time.December, 31, 23, 59, 59, 0, time.UTC),
		time.Date(2024, time.March, 31, 12, 0, 0, 0, time.UTC),
	}

	for _, today := range days {
		week := Week(today, column)

		if len(week) != WINDOW {
			t.Fatalf("Incorrect number of days - expected:%v, got:%v", WINDOW, len(week))
		}

		for i := 1; i < len(week); i++ {
			if week[i].Date <= week[i-1].Date {
				t.Errorf("Week dates not strictly increasing: %v", week)
			}
		}

		if last := week[len(week)-1].Date; last != today.Format(ISOFormat) {
			t.Errorf("Incorrect last day - expected:%v, got:%v", today.Format(ISOFormat), last)
		}
	}
}

func TestWeekWithEmptyColumn(t *testing.T) {
	today := time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)

	for _, day := range Week(today, Column([][]string{{"Date Eaten"}})) {
		if day.HasEntries {
			t.Errorf("Unexpected entry for %v", day.Date)
		}
	}
}

func TestColumn(t *testing.T) {
	expected := []string{"03/08/2024", "", "2024-03-10"}

	grid := [][]string{
		{"Date Eaten"},
		{"03/08/2024"},
		{},
		{"2024-03-10", "ignored"},
	}

	if column := Column(grid); !reflect.DeepEqual(column, expected) {
		t.Errorf("Incorrect column\n   expected: %v\n   got:      %v", expected, column)
	}

	if column := Column(nil); len(column) != 0 {
		t.Errorf("Expected empty column for empty grid, got %v", column)
	}
}
