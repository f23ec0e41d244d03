package extension

import (
	"fmt"
	"github.com/dustin/go-humanize"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"strings"
	"time"
)

func DefaultErrorMessage() string {
	return ErrorMessage("Something went wrong, please try again.")
}

func ErrorMessage(text string) string {
	return "⚠️ " + text
}

func Mention(userID string) string {
	return fmt.Sprintf("<@%s>", userID)
}

// StateName turns a state identifier such as "poll_open" into "Poll Open".
func StateName(state string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(state, "_", " "))
}

// Since renders t relative to now, or "never" for the zero time.
func Since(t time.Time) string {
	if t.IsZero() {
		return "never"
	}
	return humanize.Time(t)
}

func OnOff(enabled bool) string {
	if enabled {
		return "on"
	}
	return "off"
}
