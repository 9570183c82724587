package decode

import (
	"strconv"
	"strings"
	"time"
)

// Count is a non-negative integer that may be sent as a JSON number or as a
// numeric string ("3").
type Count int

func (c *Count) UnmarshalJSON(data []byte) error {
	s, err := Classify(data)
	if err != nil {
		return err
	}

	var n int64
	switch s.Kind {
	case KindInt:
		n = s.Int
	case KindString:
		n, err = strconv.ParseInt(strings.TrimSpace(s.Str), 10, 64)
		if err != nil {
			return wrapError("count", s.Str, "not an integer", err)
		}
	default:
		return newError("count", s.String(), "unsupported "+s.Kind.String()+" value")
	}
	if n < 0 {
		return newError("count", s.String(), "negative count")
	}
	*c = Count(n)
	return nil
}

// OptionalFloat is a float sent as a number, a numeric string, an empty
// string or null. The last two decode to Valid == false.
type OptionalFloat struct {
	Float float64
	Valid bool
}

func (o OptionalFloat) Get() (float64, bool) { return o.Float, o.Valid }

func (o *OptionalFloat) UnmarshalJSON(data []byte) error {
	s, err := Classify(data)
	if err != nil {
		return err
	}

	switch s.Kind {
	case KindNull:
		*o = OptionalFloat{}
	case KindInt:
		*o = OptionalFloat{Float: float64(s.Int), Valid: true}
	case KindFloat:
		*o = OptionalFloat{Float: s.Float, Valid: true}
	case KindString:
		str := strings.TrimSpace(s.Str)
		if str == "" {
			*o = OptionalFloat{}
			return nil
		}
		f, err := strconv.ParseFloat(str, 64)
		if err != nil {
			return wrapError("float", s.Str, "not a number", err)
		}
		*o = OptionalFloat{Float: f, Valid: true}
	default:
		return newError("float", s.String(), "unsupported "+s.Kind.String()+" value")
	}
	return nil
}

// Percentage is a percentage sent as a number or as a decorated string such
// as "12.5 %". Null and "" decode to Valid == false.
type Percentage struct {
	Value float64
	Valid bool
}

func (p Percentage) Get() (float64, bool) { return p.Value, p.Valid }

func (p *Percentage) UnmarshalJSON(data []byte) error {
	s, err := Classify(data)
	if err != nil {
		return err
	}

	switch s.Kind {
	case KindNull:
		*p = Percentage{}
	case KindInt:
		*p = Percentage{Value: float64(s.Int), Valid: true}
	case KindFloat:
		*p = Percentage{Value: s.Float, Valid: true}
	case KindString:
		if s.Str == "" {
			*p = Percentage{}
			return nil
		}
		cleaned := strings.Map(func(r rune) rune {
			if (r >= '0' && r <= '9') || r == '.' || r == '-' || r == '+' {
				return r
			}
			return -1
		}, s.Str)
		f, err := strconv.ParseFloat(cleaned, 64)
		if err != nil {
			return wrapError("percentage", s.Str, "not a number", err)
		}
		*p = Percentage{Value: f, Valid: true}
	default:
		return newError("percentage", s.String(), "unsupported "+s.Kind.String()+" value")
	}
	return nil
}

// CardExpiry is a card expiry sent as "mm/yy". It decodes to the first day of
// that month.
type CardExpiry struct {
	Date
}

func ParseCardExpiry(s string) (CardExpiry, error) {
	t, err := time.Parse("01/06", s)
	if err != nil {
		return CardExpiry{}, wrapError("card expiry", s, "expected mm/yy", err)
	}
	return CardExpiry{Date: DateOf(t)}, nil
}

func (e *CardExpiry) UnmarshalJSON(data []byte) error {
	s, err := Classify(data)
	if err != nil {
		return err
	}
	if s.Kind != KindString {
		return newError("card expiry", s.String(), "expected a string")
	}
	v, err := ParseCardExpiry(s.Str)
	if err != nil {
		return err
	}
	*e = v
	return nil
}
