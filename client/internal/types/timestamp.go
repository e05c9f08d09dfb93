package types

import (
	"bytes"
	"time"

	"github.com/channelgate/channelgate-go/format"
)

// Timestamp is a time decoded leniently from the backend: RFC 3339 with or
// without fractional seconds, or a bare ISO date-time read as UTC. JSON null
// and "" decode to the zero time.
type Timestamp struct {
	time.Time
}

// NewTimestamp wraps t.
func NewTimestamp(t time.Time) Timestamp { return Timestamp{Time: t} }

// UnmarshalJSON implements json.Unmarshaler.
func (ts *Timestamp) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) || bytes.Equal(data, []byte(`""`)) {
		ts.Time = time.Time{}
		return nil
	}
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return &time.ParseError{Value: string(data), Message: ": timestamp must be a JSON string"}
	}
	t, err := format.ParseTimestamp(string(data[1 : len(data)-1]))
	if err != nil {
		return err
	}
	ts.Time = t
	return nil
}

// MarshalJSON writes RFC 3339 with nanoseconds, or null for the zero time.
func (ts Timestamp) MarshalJSON() ([]byte, error) {
	if ts.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + ts.Time.Format(time.RFC3339Nano) + `"`), nil
}
