package dialogue

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	prefixYear  = "year_"
	prefixMonth = "month_"
	prefixDay   = "day_"
)

const daysPerRow = 7

// yearOptions текущий и следующий год
func yearOptions(now time.Time) []int {
	return []int{now.Year(), now.Year() + 1}
}

// monthOptions месяцы, в которых ещё остались будущие дни
func monthOptions(now time.Time, year int) []int {
	start := 1
	switch {
	case year < now.Year():
		return nil
	case year == now.Year():
		start = int(now.Month())
	}
	months := make([]int, 0, 13-start)
	for m := start; m <= 12; m++ {
		months = append(months, m)
	}
	return months
}

// dayOptions дни месяца начиная с сегодняшнего
func dayOptions(now time.Time, year, month int) []int {
	if month < 1 || month > 12 {
		return nil
	}
	if year < now.Year() || (year == now.Year() && month < int(now.Month())) {
		return nil
	}
	start := 1
	if year == now.Year() && month == int(now.Month()) {
		start = now.Day()
	}
	last := daysIn(year, month)
	days := make([]int, 0, last-start+1)
	for d := start; d <= last; d++ {
		days = append(days, d)
	}
	return days
}

func daysIn(year, month int) int {
	// нулевой день следующего месяца = последний день текущего
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func contains(options []int, v int) bool {
	for _, o := range options {
		if o == v {
			return true
		}
	}
	return false
}

// parseNumbered разбирает callback вида "<prefix><число>"
func parseNumbered(data, prefix string) (int, bool) {
	raw, ok := strings.CutPrefix(data, prefix)
	if !ok || raw == "" {
		return 0, false
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

func yearKeyboard(now time.Time) *Keyboard {
	kb := &Keyboard{}
	for _, y := range yearOptions(now) {
		kb.Inline = append(kb.Inline, []Button{{Text: strconv.Itoa(y), Data: fmt.Sprintf("%s%d", prefixYear, y)}})
	}
	return kb
}

func monthKeyboard(now time.Time, year int) *Keyboard {
	kb := &Keyboard{}
	for _, m := range monthOptions(now, year) {
		kb.Inline = append(kb.Inline, []Button{{Text: monthNames[m-1], Data: fmt.Sprintf("%s%02d", prefixMonth, m)}})
	}
	return kb
}

func dayKeyboard(now time.Time, year, month int) *Keyboard {
	kb := &Keyboard{}
	var row []Button
	for _, d := range dayOptions(now, year, month) {
		row = append(row, Button{Text: fmt.Sprintf("%02d", d), Data: fmt.Sprintf("%s%02d", prefixDay, d)})
		if len(row) == daysPerRow {
			kb.Inline = append(kb.Inline, row)
			row = nil
		}
	}
	if len(row) > 0 {
		kb.Inline = append(kb.Inline, row)
	}
	return kb
}
