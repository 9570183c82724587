package decode

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Kind enumerates the JSON shapes a wire value can take.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindArray
	KindObject
)

var kindNames = [...]string{
	KindNull:   "null",
	KindBool:   "bool",
	KindInt:    "int",
	KindFloat:  "float",
	KindString: "string",
	KindArray:  "array",
	KindObject: "object",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Scalar is a classified wire value. Exactly one of the payload fields is
// meaningful, selected by Kind. Arrays and objects keep their raw bytes so a
// caller can decode the elements itself.
type Scalar struct {
	Kind  Kind
	Bool  bool
	Int   int64
	Float float64
	Str   string
	Raw   json.RawMessage
}

func (s Scalar) String() string {
	switch s.Kind {
	case KindNull:
		return "null"
	case KindBool:
		return fmt.Sprintf("%t", s.Bool)
	case KindInt:
		return fmt.Sprintf("%d", s.Int)
	case KindFloat:
		return fmt.Sprintf("%g", s.Float)
	case KindString:
		return s.Str
	default:
		return string(s.Raw)
	}
}

// Classify inspects a raw JSON value and returns its tagged representation.
// Numbers that fit into int64 are KindInt, every other number is KindFloat.
func Classify(raw []byte) (Scalar, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return Scalar{}, newError("value", "", "empty input")
	}
	if !json.Valid(raw) {
		return Scalar{}, newError("value", string(raw), "invalid json")
	}

	switch raw[0] {
	case 'n':
		if string(raw) != "null" {
			return Scalar{}, newError("value", string(raw), "invalid literal")
		}
		return Scalar{Kind: KindNull}, nil

	case 't', 'f':
		var b bool
		if err := json.Unmarshal(raw, &b); err != nil {
			return Scalar{}, wrapError("value", string(raw), "invalid literal", err)
		}
		return Scalar{Kind: KindBool, Bool: b}, nil

	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return Scalar{}, wrapError("value", string(raw), "invalid string", err)
		}
		return Scalar{Kind: KindString, Str: s}, nil

	case '[', '{':
		kind := KindArray
		if raw[0] == '{' {
			kind = KindObject
		}
		return Scalar{Kind: kind, Raw: append(json.RawMessage(nil), raw...)}, nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var n json.Number
	if err := dec.Decode(&n); err != nil {
		return Scalar{}, wrapError("value", string(raw), "invalid number", err)
	}
	if i, err := n.Int64(); err == nil {
		return Scalar{Kind: KindInt, Int: i}, nil
	}
	f, err := n.Float64()
	if err != nil {
		return Scalar{}, wrapError("value", string(raw), "number out of range", err)
	}
	return Scalar{Kind: KindFloat, Float: f}, nil
}
