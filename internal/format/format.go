// Package format renders property values for people: prices, dates and
// shortened descriptions.
package format

import (
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// CardDescriptionLength is the description length shown in listings.
const CardDescriptionLength = 100

var printer = message.NewPrinter(language.AmericanEnglish)

// Price renders an amount in whole US dollars, e.g. "$1,200,000".
func Price(amount float64) string {
	return "$" + printer.Sprint(number.Decimal(amount, number.MaxFractionDigits(0)))
}

// Date renders the calendar day of t, e.g. "1/15/2024".
func Date(t time.Time) string {
	return t.Format("1/2/2006")
}

// Truncate shortens text to at most max characters followed by "...".
func Truncate(text string, max int) string {
	if utf8.RuneCountInString(text) <= max {
		return text
	}
	runes := []rune(text)
	return strings.TrimSpace(string(runes[:max])) + "..."
}
