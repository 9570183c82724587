package decode

import (
	"fmt"
	"time"
	"unicode"
	"unicode/utf8"

	_ "time/tzdata"
)

const (
	// TimestampLayout is the only date-time layout the backend emits.
	TimestampLayout = "2006-01-02 15:04:05"

	// ZeroTimestamp is the backend's way of saying "no timestamp".
	ZeroTimestamp = "0000-00-00 00:00:00"

	dateLayoutNumeric = "2006-01-02"
	dateLayoutNamed   = "January 2, 2006"
)

// Location is the civil time zone every backend timestamp is expressed in.
var Location = mustLoadLocation("America/Montreal")

func mustLoadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(fmt.Sprintf("load location %s: %v", name, err))
	}
	return loc
}

// Timestamp is an instant in Location. The sentinel ZeroTimestamp decodes to
// the zero time.Time, the earliest instant Go represents.
type Timestamp struct {
	time.Time
}

// ParseTimestamp parses s using TimestampLayout in Location.
func ParseTimestamp(s string) (Timestamp, error) {
	if s == ZeroTimestamp {
		return Timestamp{}, nil
	}
	t, err := time.ParseInLocation(TimestampLayout, s, Location)
	if err != nil {
		return Timestamp{}, wrapError("timestamp", s, "expected "+TimestampLayout, err)
	}
	return Timestamp{Time: t}, nil
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	s, err := Classify(data)
	if err != nil {
		return err
	}
	if s.Kind != KindString {
		return newError("timestamp", s.String(), "expected a string")
	}
	v, err := ParseTimestamp(s.Str)
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// OptionalTimestamp decodes null to Valid == false.
type OptionalTimestamp struct {
	Timestamp Timestamp
	Valid     bool
}

func (o *OptionalTimestamp) UnmarshalJSON(data []byte) error {
	if s, err := Classify(data); err == nil && s.Kind == KindNull {
		*o = OptionalTimestamp{}
		return nil
	}
	var t Timestamp
	if err := t.UnmarshalJSON(data); err != nil {
		return err
	}
	*o = OptionalTimestamp{Timestamp: t, Valid: true}
	return nil
}

// Date is a calendar date without a time of day or zone.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// ParseDate picks the layout from the first character: a letter selects
// "January 2, 2006", anything else "2006-01-02". The other layout is never
// tried.
func ParseDate(s string) (Date, error) {
	first, _ := utf8.DecodeRuneInString(s)
	if first == utf8.RuneError {
		return Date{}, newError("date", s, "empty or invalid date")
	}

	layout := dateLayoutNumeric
	if unicode.IsLetter(first) {
		layout = dateLayoutNamed
	}
	t, err := time.Parse(layout, s)
	if err != nil {
		return Date{}, wrapError("date", s, "expected "+layout, err)
	}
	return DateOf(t), nil
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

func (d Date) IsZero() bool { return d == Date{} }

// In returns midnight of d in loc.
func (d Date) In(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s, err := Classify(data)
	if err != nil {
		return err
	}
	if s.Kind != KindString {
		return newError("date", s.String(), "expected a string")
	}
	v, err := ParseDate(s.Str)
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// OptionalDate decodes null to Valid == false.
type OptionalDate struct {
	Date  Date
	Valid bool
}

func (o *OptionalDate) UnmarshalJSON(data []byte) error {
	if s, err := Classify(data); err == nil && s.Kind == KindNull {
		*o = OptionalDate{}
		return nil
	}
	var d Date
	if err := d.UnmarshalJSON(data); err != nil {
		return err
	}
	*o = OptionalDate{Date: d, Valid: true}
	return nil
}
