package phpser

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_Scalars(t *testing.T) {
	tests := []struct {
		in   string
		want Value
	}{
		{`N;`, Value{Kind: Null}},
		{`b:1;`, Value{Kind: Bool, Bool: true}},
		{`b:0;`, Value{Kind: Bool}},
		{`i:-42;`, Value{Kind: Int, Int: -42}},
		{`d:0.5;`, Value{Kind: Float, Float: 0.5}},
		{`s:0:"";`, Value{Kind: String}},
		{`s:5:"a;b"c";`, Value{Kind: String, Str: `a;b"c`}},
		{`s:5:"café";`, Value{Kind: String, Str: "café"}},
	}

	for _, tt := range tests {
		got, err := Decode([]byte(tt.in))
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	inf, err := Decode([]byte(`d:-INF;`))
	require.NoError(t, err)
	assert.True(t, math.IsInf(inf.Float, -1))
}

func TestDecode_SessionPayload(t *testing.T) {
	in := `a:4:{i:0;s:5:"12345";i:1;s:15:"bob@example.com";i:2;i:1;i:3;a:2:{s:10:"user_email";s:15:"bob@example.com";s:10:"first_name";s:3:"Bob";}}`

	v, err := Decode([]byte(in))
	require.NoError(t, err)

	elems, err := Tuple(v)
	require.NoError(t, err)
	require.Len(t, elems, 4)

	id, ok := elems[0].AsString()
	assert.True(t, ok)
	assert.Equal(t, "12345", id)
	assert.Equal(t, "bob@example.com", elems[1].Str)
	assert.Equal(t, int64(1), elems[2].Int)

	name, ok := elems[3].Get("first_name")
	require.True(t, ok)
	assert.Equal(t, "Bob", name.Str)

	_, ok = elems[3].Get("missing")
	assert.False(t, ok)
}

func TestTuple_RejectsNonPositional(t *testing.T) {
	v, err := Decode([]byte(`a:2:{i:1;s:1:"a";i:0;s:1:"b";}`))
	require.NoError(t, err)
	_, err = Tuple(v)
	assert.ErrorIs(t, err, ErrSyntax)

	v, err = Decode([]byte(`a:1:{s:1:"k";i:1;}`))
	require.NoError(t, err)
	_, err = Tuple(v)
	assert.ErrorIs(t, err, ErrSyntax)

	_, err = Tuple(Value{Kind: String, Str: "x"})
	assert.ErrorIs(t, err, ErrSyntax)
}

func TestDecode_EmptyArray(t *testing.T) {
	v, err := Decode([]byte(`a:0:{}`))
	require.NoError(t, err)
	assert.Equal(t, Array, v.Kind)

	elems, err := Tuple(v)
	require.NoError(t, err)
	assert.Empty(t, elems)
}

func TestDecode_Errors(t *testing.T) {
	for _, in := range []string{
		``,
		`x`,
		`N`,
		`b:2;`,
		`i:abc;`,
		`i:1`,
		`d:x;`,
		`s:10:"short";`,
		`s:-1:"";`,
		`s:3:"abc"`,
		`a:2:{i:0;i:1;}`,
		`a:1:{b:1;i:1;}`,
		`a:1:{i:0;i:1;`,
		`O:8:"stdClass":0:{}`,
		`i:1;i:2;`,
		`s:9223372036854775807:"x";`,
		`s:99999999999999999999:"x";`,
		`a:9223372036854775807:{}`,
		`a:2:{i:0;s:9223372036854775807:"x";i:1;s:1:"e";}`,
	} {
		_, err := Decode([]byte(in))
		require.Error(t, err, in)
		assert.ErrorIs(t, err, ErrSyntax, in)
	}
}

func TestValue_AsString(t *testing.T) {
	s, ok := Value{Kind: Int, Int: 7}.AsString()
	assert.True(t, ok)
	assert.Equal(t, "7", s)

	_, ok = Value{Kind: Bool}.AsString()
	assert.False(t, ok)
}
