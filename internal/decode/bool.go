package decode

import (
	"math"
	"strconv"
	"strings"
)

// TriBool is a boolean that can also be absent (wire null).
type TriBool int8

const (
	Absent TriBool = iota
	False
	True
)

func (b TriBool) String() string {
	switch b {
	case True:
		return "true"
	case False:
		return "false"
	}
	return "absent"
}

// Bool reports the value and whether it was present.
func (b TriBool) Bool() (value, ok bool) {
	return b == True, b != Absent
}

func triFrom(v bool) TriBool {
	if v {
		return True
	}
	return False
}

var (
	trueTokens  = map[string]struct{}{"true": {}, "t": {}, "yes": {}, "y": {}, "1": {}}
	falseTokens = map[string]struct{}{"false": {}, "f": {}, "no": {}, "n": {}, "0": {}}
)

func (b *TriBool) UnmarshalJSON(data []byte) error {
	v, err := DecodeBool(data)
	if err != nil {
		return err
	}
	*b = v
	return nil
}

// DecodeBool accepts booleans, 0/1 integers, 0.0/1.0 floats, boolean-ish
// strings and null (Absent).
func DecodeBool(raw []byte) (TriBool, error) {
	s, err := Classify(raw)
	if err != nil {
		return Absent, err
	}

	switch s.Kind {
	case KindNull:
		return Absent, nil
	case KindBool:
		return triFrom(s.Bool), nil
	case KindInt:
		return boolFromInt(s.Int)
	case KindFloat:
		return boolFromFloat(s.Float)
	case KindString:
		return ParseBoolString(s.Str)
	}
	return Absent, newError("bool", s.String(), "unsupported "+s.Kind.String()+" value")
}

// ParseBoolString matches the case-folded, trimmed string against the known
// tokens, then falls back to parsing it as a boolean literal, an integer and a
// float, in that order.
func ParseBoolString(str string) (TriBool, error) {
	folded := strings.TrimSpace(strings.ToLower(str))
	if _, ok := trueTokens[folded]; ok {
		return True, nil
	}
	if _, ok := falseTokens[folded]; ok {
		return False, nil
	}

	if v, err := strconv.ParseBool(str); err == nil {
		return triFrom(v), nil
	}
	if i, err := strconv.ParseInt(str, 10, 64); err == nil {
		return boolFromInt(i)
	}
	if f, err := strconv.ParseFloat(str, 64); err == nil {
		return boolFromFloat(f)
	}
	return Absent, newError("bool", str, "could not parse boolean from string")
}

func boolFromInt(i int64) (TriBool, error) {
	switch i {
	case 1:
		return True, nil
	case 0:
		return False, nil
	}
	return Absent, newError("bool", strconv.FormatInt(i, 10), "the number is neither 1 nor 0")
}

// epsilon is the machine epsilon for float64.
const epsilon = 2.220446049250313e-16

func boolFromFloat(f float64) (TriBool, error) {
	if math.Abs(f-1.0) < epsilon {
		return True, nil
	}
	if f == 0 {
		return False, nil
	}
	return Absent, newError("bool", strconv.FormatFloat(f, 'g', -1, 64), "the number is neither 1.0 nor 0.0")
}
