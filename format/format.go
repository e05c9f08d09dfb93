// Package format renders money and timestamps for display.
//
// All helpers are pure: they take a value and return a string. Times are
// rendered in their own location; convert with t.In before calling if a
// particular zone is wanted.
package format

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DefaultCurrency is used when Currency is called with an empty code.
const DefaultCurrency = "USD"

const (
	dateLayout      = "January 2, 2006 at 03:04 PM"
	shortDateLayout = "Jan 2, 2006"
)

var displayLanguage = language.AmericanEnglish

// Currency formats an amount in minor units (cents) as a currency string in
// US English, e.g. Currency(150000, "USD") == "$1,500.00". The amount is always
// divided by 100 and kept exact; the number of fraction digits follows the
// currency.
// Unknown codes render with the upper-cased code as the symbol.
func Currency(cents int64, code string) string {
	if code == "" {
		code = DefaultCurrency
	}
	p := message.NewPrinter(displayLanguage)

	symbol := strings.ToUpper(code)
	scale := 2
	if unit, err := currency.ParseISO(code); err == nil {
		symbol = p.Sprint(currency.NarrowSymbol(unit))
		scale, _ = currency.Standard.Rounding(unit)
	}

	amount := decimal.NewFromInt(cents).Shift(-2)
	sign := ""
	if amount.IsNegative() {
		sign = "-"
		amount = amount.Abs()
	}
	return sign + symbol + groupThousands(amount.StringFixed(int32(scale)))
}

// groupThousands inserts US-English thousands separators into the integer
// part of an unsigned fixed-point string such as "1234567.89".
func groupThousands(fixed string) string {
	intPart, frac, hasFrac := strings.Cut(fixed, ".")
	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if hasFrac {
		b.WriteByte('.')
		b.WriteString(frac)
	}
	return b.String()
}

// MajorUnits formats an amount already in major units, such as a channel's
// monthly price in dollars. It rounds to the nearest cent before delegating
// to Currency.
func MajorUnits(amount float64, code string) string {
	cents := decimal.NewFromFloat(amount).Shift(2).Round(0).IntPart()
	return Currency(cents, code)
}

// Date renders a long date with time, e.g. "March 5, 2025 at 02:07 PM".
func Date(t time.Time) string {
	return t.Format(dateLayout)
}

// ShortDate renders e.g. "Mar 5, 2025".
func ShortDate(t time.Time) string {
	return t.Format(shortDateLayout)
}

// RelativeTime describes how long before now t happened using the coarsest
// of minutes, hours and days, each floored. There is no week or month unit.
// Times in the future read as "just now".
func RelativeTime(t, now time.Time) string {
	diff := now.Sub(t)
	minutes := int64(diff / time.Minute)
	hours := int64(diff / time.Hour)
	days := int64(diff / (24 * time.Hour))

	switch {
	case minutes < 1:
		return "just now"
	case minutes < 60:
		return fmt.Sprintf("%dm ago", minutes)
	case hours < 24:
		return fmt.Sprintf("%dh ago", hours)
	default:
		return fmt.Sprintf("%dd ago", days)
	}
}

// ParseTimestamp parses the timestamps the backend emits: RFC 3339 with or
// without fractional seconds, or a bare ISO date-time which is read as UTC.
func ParseTimestamp(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}
	t, err := time.ParseInLocation("2006-01-02T15:04:05.999999999", s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse timestamp %q: %w", s, err)
	}
	return t, nil
}
