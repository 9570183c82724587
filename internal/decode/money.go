package decode

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Currency is the only currency the backend prices in.
var Currency = currency.CAD

// minorDigits is the number of decimal digits of Currency's minor unit.
const minorDigits = 2

var (
	maxMinor = decimal.NewFromInt(math.MaxInt64)
	minMinor = decimal.NewFromInt(math.MinInt64)
)

// Money is an exact amount of Currency, stored in minor units (cents).
// The zero value is zero dollars.
type Money struct {
	minor int64
}

// MoneyFromMinor builds an amount from a number of cents.
func MoneyFromMinor(cents int64) Money {
	return Money{minor: cents}
}

// MoneyFromInt treats n as whole currency units.
func MoneyFromInt(n int64) (Money, error) {
	return fromDecimal(decimal.NewFromInt(n), decimal.NewFromInt(n).String())
}

// MoneyFromFloat treats f as a decimal magnitude. The shortest decimal that
// round-trips to f is used, so no precision is lost beyond what the float
// already lost.
func MoneyFromFloat(f float64) (Money, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Money{}, newError("money", strconv.FormatFloat(f, 'g', -1, 64), "non-finite float")
	}
	d := decimal.NewFromFloat(f)
	return fromDecimal(d, d.String())
}

func fromDecimal(d decimal.Decimal, value string) (Money, error) {
	minor := d.RoundBank(minorDigits).Shift(minorDigits)
	if minor.GreaterThan(maxMinor) || minor.LessThan(minMinor) {
		return Money{}, newError("money", value, "amount out of range")
	}
	return Money{minor: minor.IntPart()}, nil
}

// Minor returns the amount in cents.
func (m Money) Minor() int64 { return m.minor }

// Decimal returns the amount in whole currency units.
func (m Money) Decimal() decimal.Decimal {
	return decimal.New(m.minor, -minorDigits)
}

func (m Money) Currency() currency.Unit { return Currency }

func (m Money) IsZero() bool { return m.minor == 0 }

func (m Money) Add(o Money) Money { return Money{minor: m.minor + o.minor} }

// Cmp returns -1, 0 or +1.
func (m Money) Cmp(o Money) int {
	switch {
	case m.minor < o.minor:
		return -1
	case m.minor > o.minor:
		return 1
	}
	return 0
}

func (m Money) String() string {
	return m.Decimal().StringFixed(minorDigits) + " " + Currency.String()
}

// Format renders the amount with the digit grouping of tag, e.g.
// "1,234.50 CAD" for English. Whole units and cents are rendered as
// integers, so every int64 amount is printed exactly.
func (m Money) Format(tag language.Tag) string {
	p := message.NewPrinter(tag)
	u := uint64(m.minor)
	sign := ""
	if m.minor < 0 {
		u = -u
		sign = "-"
	}
	whole := p.Sprint(number.Decimal(u / 100))
	sep := strings.TrimFunc(p.Sprint(number.Decimal(0, number.Scale(minorDigits))), unicode.IsDigit)
	return fmt.Sprintf("%s%s%s%02d %s", sign, whole, sep, u%100, Currency)
}

// UnmarshalJSON accepts an integer, a float or a currency string.
func (m *Money) UnmarshalJSON(data []byte) error {
	v, err := DecodeMoney(data)
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// DecodeMoney decodes a required money value. Null and strings with no
// numeric content are errors.
func DecodeMoney(raw []byte) (Money, error) {
	s, err := Classify(raw)
	if err != nil {
		return Money{}, err
	}
	return moneyFromScalar(s)
}

func moneyFromScalar(s Scalar) (Money, error) {
	switch s.Kind {
	case KindInt:
		return MoneyFromInt(s.Int)
	case KindFloat:
		return MoneyFromFloat(s.Float)
	case KindString:
		return ParseMoney(s.Str)
	}
	return Money{}, newError("money", s.String(), "unsupported "+s.Kind.String()+" value")
}

// OptionalMoney is a money field that may be absent: null or a string with no
// numeric content decodes to Valid == false.
type OptionalMoney struct {
	Money Money
	Valid bool
}

func (o OptionalMoney) Get() (Money, bool) { return o.Money, o.Valid }

func (o *OptionalMoney) UnmarshalJSON(data []byte) error {
	s, err := Classify(data)
	if err != nil {
		return err
	}
	if s.Kind == KindNull {
		*o = OptionalMoney{}
		return nil
	}
	m, err := moneyFromScalar(s)
	if err != nil {
		if errors.Is(err, ErrEmptyAmount) {
			*o = OptionalMoney{}
			return nil
		}
		return err
	}
	*o = OptionalMoney{Money: m, Valid: true}
	return nil
}

// ParseMoney parses a currency string in either North-American or European
// notation. Currency symbols, unit words and whitespace are ignored.
//
// Separator rules, applied to the cleaned string:
//
//	no separators              plain number
//	one '.' only               0-2 digits after it: decimal point, 3: thousands
//	one ',' only               0-2 digits after it: decimal point, 3: thousands
//	one of each                the later one is the decimal point
//	repeated '.', <=1 ','      '.' groups thousands, ',' is the decimal point
//	repeated ',', <=1 '.'      ',' groups thousands, '.' is the decimal point
//	repeated both              error
func ParseMoney(s string) (Money, error) {
	cleaned := cleanAmount(s)
	if cleaned == "" {
		return Money{}, wrapError("money", s, "no digits", ErrEmptyAmount)
	}

	dots := strings.Count(cleaned, ".")
	commas := strings.Count(cleaned, ",")

	switch {
	case dots == 0 && commas == 0:
		return parsePlain(s, cleaned)

	case dots == 1 && commas == 0:
		switch digitsAfter(cleaned, '.') {
		case 0, 1, 2:
			return parseNorthAmerican(s, cleaned)
		case 3:
			return parseEuropean(s, cleaned)
		}
		return Money{}, newError("money", s, "malformed currency string")

	case dots == 0 && commas == 1:
		switch digitsAfter(cleaned, ',') {
		case 0, 1, 2:
			return parseEuropean(s, cleaned)
		case 3:
			return parseNorthAmerican(s, cleaned)
		}
		return Money{}, newError("money", s, "malformed currency string")

	case dots == 1 && commas == 1:
		dot := strings.IndexByte(cleaned, '.')
		comma := strings.IndexByte(cleaned, ',')
		switch {
		case dot > comma:
			return parseNorthAmerican(s, cleaned)
		case comma > dot:
			return parseEuropean(s, cleaned)
		}
		// Two distinct bytes cannot share an index; kept so the table is total.
		return Money{}, newError("money", s, "separators at the same position")

	case dots > 1 && commas <= 1:
		return parseEuropean(s, cleaned)

	case commas > 1 && dots <= 1:
		return parseNorthAmerican(s, cleaned)
	}

	return Money{}, newError("money", s, "too many separators")
}

func cleanAmount(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' || r == ',' || r == '-' || r == '+' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// digitsAfter counts the characters following the single occurrence of sep.
func digitsAfter(s string, sep byte) int {
	return len(s) - strings.IndexByte(s, sep) - 1
}

// parseNorthAmerican drops ',' thousands separators and keeps '.' as the
// decimal point.
func parseNorthAmerican(orig, cleaned string) (Money, error) {
	return parsePlain(orig, strings.ReplaceAll(cleaned, ",", ""))
}

// parseEuropean drops '.' thousands separators and turns the ',' decimal
// point into '.'.
func parseEuropean(orig, cleaned string) (Money, error) {
	normalized := strings.ReplaceAll(cleaned, ".", "")
	return parsePlain(orig, strings.ReplaceAll(normalized, ",", "."))
}

func parsePlain(orig, normalized string) (Money, error) {
	d, err := decimal.NewFromString(normalized)
	if err != nil {
		return Money{}, wrapError("money", orig, "invalid amount", err)
	}
	return fromDecimal(d, orig)
}
