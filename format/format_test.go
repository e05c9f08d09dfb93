package format

import (
	"math"
	"testing"
	"time"
)

func TestCurrency(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name  string
		cents int64
		code  string
		want  string
	}{
		{"default currency", 150000, "", "$1,500.00"},
		{"explicit usd", 150000, "USD", "$1,500.00"},
		{"lowercase code", 999, "usd", "$9.99"},
		{"zero", 0, "", "$0.00"},
		{"sub dollar", 5, "", "$0.05"},
		{"negative", -500, "", "-$5.00"},
		{"hundreds", 99999, "", "$999.99"},
		{"millions", 123456789, "", "$1,234,567.89"},
		{"beyond float precision", 900719925474099301, "USD", "$9,007,199,254,740,993.01"},
		{"max int64", math.MaxInt64, "USD", "$92,233,720,368,547,758.07"},
		{"min int64", math.MinInt64, "USD", "-$92,233,720,368,547,758.08"},
		{"unknown code", 1000, "xyz", "XYZ10.00"},
	}
	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()
			if got := Currency(c.cents, c.code); got != c.want {
				t.Fatalf("Currency(%d, %q) = %q, want %q", c.cents, c.code, got, c.want)
			}
		})
	}
}

func TestGroupThousands(t *testing.T) {
	cases := map[string]string{
		"0.00":       "0.00",
		"999":        "999",
		"1000":       "1,000",
		"123456.7":   "123,456.7",
		"1234567.89": "1,234,567.89",
	}
	for in, want := range cases {
		if got := groupThousands(in); got != want {
			t.Fatalf("groupThousands(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestMajorUnits(t *testing.T) {
	cases := []struct {
		amount float64
		code   string
		want   string
	}{
		{9.99, "", "$9.99"},
		{0.1, "USD", "$0.10"},
		{999.999, "", "$1,000.00"},
	}
	for _, c := range cases {
		if got := MajorUnits(c.amount, c.code); got != c.want {
			t.Fatalf("MajorUnits(%v, %q) = %q, want %q", c.amount, c.code, got, c.want)
		}
	}
}

func TestRelativeTime_Thresholds(t *testing.T) {
	t.Parallel()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	cases := []struct {
		ago  time.Duration
		want string
	}{
		{0, "just now"},
		{30 * time.Second, "just now"},
		{59 * time.Second, "just now"},
		{time.Minute, "1m ago"},
		{5 * time.Minute, "5m ago"},
		{59 * time.Minute, "59m ago"},
		{90 * time.Minute, "1h ago"},
		{23*time.Hour + 59*time.Minute, "23h ago"},
		{24 * time.Hour, "1d ago"},
		{48 * time.Hour, "2d ago"},
		{400 * 24 * time.Hour, "400d ago"},
		{-time.Hour, "just now"},
	}
	for _, c := range cases {
		if got := RelativeTime(now.Add(-c.ago), now); got != c.want {
			t.Fatalf("RelativeTime(ago=%s) = %q, want %q", c.ago, got, c.want)
		}
	}
}

func TestDateFormats(t *testing.T) {
	t.Parallel()
	ts := time.Date(2025, 3, 5, 14, 7, 0, 0, time.UTC)
	if got := Date(ts); got != "March 5, 2025 at 02:07 PM" {
		t.Fatalf("Date = %q", got)
	}
	if got := ShortDate(ts); got != "Mar 5, 2025" {
		t.Fatalf("ShortDate = %q", got)
	}
}

func TestParseTimestamp(t *testing.T) {
	t.Parallel()
	want := time.Date(2025, 3, 5, 14, 7, 0, 0, time.UTC)
	cases := []struct {
		in   string
		want time.Time
	}{
		{"2025-03-05T14:07:00Z", want},
		{"2025-03-05T14:07:00.000123+00:00", want.Add(123 * time.Microsecond)},
		{"2025-03-05T14:07:00", want},
		{"2025-03-05T14:07:00.123456", want.Add(123456 * time.Microsecond)},
	}
	for _, c := range cases {
		got, err := ParseTimestamp(c.in)
		if err != nil {
			t.Fatalf("ParseTimestamp(%q): %v", c.in, err)
		}
		if !got.Equal(c.want) {
			t.Fatalf("ParseTimestamp(%q) = %v, want %v", c.in, got, c.want)
		}
	}

	if _, err := ParseTimestamp("yesterday"); err == nil {
		t.Fatalf("expected error for unparseable timestamp")
	}
}
