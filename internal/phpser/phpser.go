// Package phpser decodes values written by PHP's serialize().
//
// Only the scalar and array forms are supported:
//
//	N;                    null
//	b:1;                  bool
//	i:42;                 int
//	d:0.5;                float
//	s:5:"hello";          string, length in bytes
//	a:2:{i:0;...;i:1;...} array of key/value pairs
//
// Objects and references are rejected. Arrays keep their pair order.
package phpser

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// ErrSyntax is matched by every decoding error.
var ErrSyntax = errors.New("php serialize syntax error")

type SyntaxError struct {
	Offset int
	Msg    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("php serialize: %s at offset %d", e.Msg, e.Offset)
}

func (e *SyntaxError) Unwrap() error { return ErrSyntax }

type Kind int

const (
	Null Kind = iota
	Bool
	Int
	Float
	String
	Array
)

// Value is a decoded PHP value. Array holds the pairs of an array in order.
type Value struct {
	Kind  Kind
	Bool  bool
	Int   int64
	Float float64
	Str   string
	Array []Pair
}

type Pair struct {
	Key   Value
	Value Value
}

// Get looks up a string key in an array value.
func (v Value) Get(key string) (Value, bool) {
	if v.Kind != Array {
		return Value{}, false
	}
	for _, p := range v.Array {
		if p.Key.Kind == String && p.Key.Str == key {
			return p.Value, true
		}
	}
	return Value{}, false
}

// AsString returns string values as is and formats integers in base 10.
func (v Value) AsString() (string, bool) {
	switch v.Kind {
	case String:
		return v.Str, true
	case Int:
		return strconv.FormatInt(v.Int, 10), true
	}
	return "", false
}

// Decode parses exactly one serialized value; trailing bytes are an error.
func Decode(data []byte) (Value, error) {
	d := &decoder{data: data}
	v, err := d.value()
	if err != nil {
		return Value{}, err
	}
	if d.pos != len(d.data) {
		return Value{}, d.errorf("trailing data")
	}
	return v, nil
}

// Tuple returns the elements of an array whose keys are the integers
// 0..n-1 in order, i.e. a PHP list.
func Tuple(v Value) ([]Value, error) {
	if v.Kind != Array {
		return nil, &SyntaxError{Msg: "value is not an array"}
	}
	out := make([]Value, 0, len(v.Array))
	for i, p := range v.Array {
		if p.Key.Kind != Int || p.Key.Int != int64(i) {
			return nil, &SyntaxError{Msg: fmt.Sprintf("element %d is not positional", i)}
		}
		out = append(out, p.Value)
	}
	return out, nil
}

type decoder struct {
	data []byte
	pos  int
}

func (d *decoder) errorf(format string, args ...any) error {
	return &SyntaxError{Offset: d.pos, Msg: fmt.Sprintf(format, args...)}
}

func (d *decoder) expect(c byte) error {
	if d.pos >= len(d.data) || d.data[d.pos] != c {
		return d.errorf("expected %q", c)
	}
	d.pos++
	return nil
}

// readUntil returns the bytes up to (not including) stop and consumes stop.
func (d *decoder) readUntil(stop byte) (string, error) {
	start := d.pos
	for d.pos < len(d.data) {
		if d.data[d.pos] == stop {
			s := string(d.data[start:d.pos])
			d.pos++
			return s, nil
		}
		d.pos++
	}
	d.pos = start
	return "", d.errorf("unterminated token, expected %q", stop)
}

func (d *decoder) value() (Value, error) {
	if d.pos >= len(d.data) {
		return Value{}, d.errorf("unexpected end of input")
	}

	tag := d.data[d.pos]
	d.pos++

	if tag == 'N' {
		if err := d.expect(';'); err != nil {
			return Value{}, err
		}
		return Value{Kind: Null}, nil
	}
	if err := d.expect(':'); err != nil {
		return Value{}, err
	}

	switch tag {
	case 'b':
		s, err := d.readUntil(';')
		if err != nil {
			return Value{}, err
		}
		switch s {
		case "0":
			return Value{Kind: Bool}, nil
		case "1":
			return Value{Kind: Bool, Bool: true}, nil
		}
		return Value{}, d.errorf("invalid bool %q", s)

	case 'i':
		s, err := d.readUntil(';')
		if err != nil {
			return Value{}, err
		}
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return Value{}, d.errorf("invalid int %q", s)
		}
		return Value{Kind: Int, Int: n}, nil

	case 'd':
		s, err := d.readUntil(';')
		if err != nil {
			return Value{}, err
		}
		f, err := parseFloat(s)
		if err != nil {
			return Value{}, d.errorf("invalid float %q", s)
		}
		return Value{Kind: Float, Float: f}, nil

	case 's':
		return d.str()

	case 'a':
		return d.array()
	}

	return Value{}, d.errorf("unsupported type %q", tag)
}

func parseFloat(s string) (float64, error) {
	switch s {
	case "INF":
		return math.Inf(1), nil
	case "-INF":
		return math.Inf(-1), nil
	case "NAN":
		return math.NaN(), nil
	}
	return strconv.ParseFloat(s, 64)
}

func (d *decoder) length() (int, error) {
	s, err := d.readUntil(':')
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, d.errorf("invalid length %q", s)
	}
	// Every string byte and every array element takes at least one input byte.
	if n > len(d.data)-d.pos {
		return 0, d.errorf("length %d exceeds remaining input", n)
	}
	return n, nil
}

func (d *decoder) str() (Value, error) {
	n, err := d.length()
	if err != nil {
		return Value{}, err
	}
	if err := d.expect('"'); err != nil {
		return Value{}, err
	}
	if n > len(d.data)-d.pos {
		return Value{}, d.errorf("string of length %d overruns input", n)
	}
	s := string(d.data[d.pos : d.pos+n])
	d.pos += n
	if err := d.expect('"'); err != nil {
		return Value{}, err
	}
	if err := d.expect(';'); err != nil {
		return Value{}, err
	}
	return Value{Kind: String, Str: s}, nil
}

func (d *decoder) array() (Value, error) {
	n, err := d.length()
	if err != nil {
		return Value{}, err
	}
	if err := d.expect('{'); err != nil {
		return Value{}, err
	}

	var pairs []Pair
	for i := 0; i < n; i++ {
		key, err := d.value()
		if err != nil {
			return Value{}, err
		}
		if key.Kind != Int && key.Kind != String {
			return Value{}, d.errorf("array key must be int or string")
		}
		val, err := d.value()
		if err != nil {
			return Value{}, err
		}
		pairs = append(pairs, Pair{Key: key, Value: val})
	}

	if err := d.expect('}'); err != nil {
		return Value{}, err
	}
	return Value{Kind: Array, Array: pairs}, nil
}
