package atom

import (
	"time"
)

const (
	isoLayout   = "2006-01-02T15:04:05.000Z07:00"
	stampLayout = "2006-01-02"
)

// Timestamp is either a point in time or a raw string supplied by the
// caller. Raw strings are emitted verbatim.
type Timestamp struct {
	time time.Time
	raw  string
}

func At(t time.Time) Timestamp {
	return Timestamp{time: t}
}

func RawTimestamp(s string) Timestamp {
	return Timestamp{raw: s}
}

func (ts Timestamp) IsZero() bool {
	return ts.raw == "" && ts.time.IsZero()
}

func (ts Timestamp) IsRaw() bool {
	return ts.raw != ""
}

// Time returns the time value, false for raw timestamps.
func (ts Timestamp) Time() (time.Time, bool) {
	if ts.raw != "" {
		return time.Time{}, false
	}
	return ts.time, true
}

func (ts Timestamp) String() string {
	if ts.raw != "" {
		return ts.raw
	}
	return ts.time.String()
}

// ToISO formats ts as an ISO-8601 UTC timestamp with millisecond precision.
func ToISO(ts Timestamp) (string, error) {
	if ts.raw != "" {
		return ts.raw, nil
	}
	if err := checkTime(ts.time); err != nil {
		return "", err
	}
	return ts.time.UTC().Format(isoLayout), nil
}

// ToDateStamp formats ts as YYYY-MM-DD in the local calendar. Raw values
// must parse as RFC 3339.
func ToDateStamp(ts Timestamp) (string, error) {
	t := ts.time
	if ts.raw != "" {
		parsed, err := time.Parse(time.RFC3339Nano, ts.raw)
		if err != nil {
			return "", &InvalidDateError{Value: ts.raw, Reason: "not an RFC 3339 timestamp"}
		}
		t = parsed
	}
	if err := checkTime(t); err != nil {
		return "", err
	}
	return t.Local().Format(stampLayout), nil
}

func checkTime(t time.Time) error {
	if t.IsZero() {
		return &InvalidDateError{Value: t.String(), Reason: "date is missing"}
	}
	if y := t.UTC().Year(); y < 0 || y > 9999 {
		return &InvalidDateError{Value: t.String(), Reason: "year outside 0000-9999"}
	}
	return nil
}
