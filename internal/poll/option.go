package poll

import (
	"fmt"
	"time"
)

// DaysPerWeek is the number of options every poll carries, Monday through Sunday.
const DaysPerWeek = 7

// Symbols are the reaction emoji used to select an option, indexed by option position.
var Symbols = [DaysPerWeek]string{
	"1️⃣",
	"2️⃣",
	"3️⃣",
	"4️⃣",
	"5️⃣",
	"6️⃣",
	"7️⃣",
}

type Option struct {
	Index  int       `json:"index"`
	Date   time.Time `json:"date"`
	Label  string    `json:"label"`
	Symbol string    `json:"symbol"`
}

// MondayOf returns local midnight of the Monday that starts the week containing t.
func MondayOf(t time.Time) time.Time {
	year, month, day := t.Date()
	midnight := time.Date(year, month, day, 0, 0, 0, 0, t.Location())
	offset := (int(midnight.Weekday()) + 6) % DaysPerWeek
	return midnight.AddDate(0, 0, -offset)
}

// NextMonday returns the first Monday strictly after the week containing t.
func NextMonday(t time.Time) time.Time {
	return MondayOf(t).AddDate(0, 0, DaysPerWeek)
}

func WeekOptions(monday time.Time) []Option {
	monday = MondayOf(monday)
	options := make([]Option, 0, DaysPerWeek)

	for i := 0; i < DaysPerWeek; i++ {
		date := monday.AddDate(0, 0, i)
		options = append(options, Option{
			Index:  i,
			Date:   date,
			Label:  Label(date),
			Symbol: Symbols[i],
		})
	}

	return options
}

// Label renders a date the way it is shown on the poll, e.g. "6/2(Mon)".
func Label(date time.Time) string {
	return fmt.Sprintf("%d/%d(%s)", int(date.Month()), date.Day(), date.Weekday().String()[:3])
}

func IndexOfSymbol(options []Option, symbol string) (int, bool) {
	for _, option := range options {
		if option.Symbol == symbol {
			return option.Index, true
		}
	}
	return -1, false
}

func validOptions(options []Option) error {
	if len(options) != DaysPerWeek {
		return fmt.Errorf("poll has %d options, want %d", len(options), DaysPerWeek)
	}

	seen := make(map[string]struct{}, len(options))
	for i, option := range options {
		if option.Index != i {
			return fmt.Errorf("option %d has index %d", i, option.Index)
		}
		if _, ok := seen[option.Symbol]; ok {
			return fmt.Errorf("option %d reuses symbol %q", i, option.Symbol)
		}
		seen[option.Symbol] = struct{}{}
	}

	return nil
}
