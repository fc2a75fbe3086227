package value_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/streamjson/jlex"
	"github.com/streamjson/jlex/value"
)

func mustParseBuffer(t *testing.T, s string) value.Value {
	t.Helper()
	lx := jlex.NewBuffer([]byte(s))
	v, err := value.ExactlyOne(lx, value.Unbounded)
	require.NoError(t, err)
	return v
}

func TestParseLiteralScenario(t *testing.T) {
	v := mustParseBuffer(t, `[null, true, false, "hello", 0, 3.1415, [1, 2], {"x": 1, "y": 2}]`)
	require.Equal(t, value.KindArray, v.Kind)
	require.Len(t, v.Array, 8)

	assert.Equal(t, value.KindNull, v.Array[0].Kind)
	assert.Equal(t, value.Bool(true), v.Array[1])
	assert.Equal(t, value.Bool(false), v.Array[2])
	assert.Equal(t, "hello", v.Array[3].Str)
	assert.Equal(t, "0", string(v.Array[4].Num))
	assert.Equal(t, "3.1415", string(v.Array[5].Num))

	nested := v.Array[6]
	require.Equal(t, value.KindArray, nested.Kind)
	require.Len(t, nested.Array, 2)
	assert.Equal(t, "1", string(nested.Array[0].Num))
	assert.Equal(t, "2", string(nested.Array[1].Num))

	obj := v.Array[7]
	require.Equal(t, value.KindObject, obj.Kind)
	require.Len(t, obj.Object, 2)
	assert.Equal(t, "x", obj.Object[0].Key)
	assert.Equal(t, "y", obj.Object[1].Key)

	// count mirrors the grounding example's count of 13: the outer array
	// plus its 8 elements plus the nested array's 2 elements plus the
	// object's 2 values.
	assert.Equal(t, 13, countValues(v))
}

func countValues(v value.Value) int {
	n := 1
	for _, e := range v.Array {
		n += countValues(e)
	}
	for _, m := range v.Object {
		n += countValues(m.Value)
	}
	return n
}

func TestParseBoundedDepth(t *testing.T) {
	lx := jlex.NewBuffer([]byte(`[[0]]`))
	_, err := value.ExactlyOne(lx, 2)
	require.NoError(t, err)

	lx2 := jlex.NewBuffer([]byte(`[[0]]`))
	_, err2 := value.ExactlyOne(lx2, 1)
	e, ok := err2.(jlex.Error)
	require.True(t, ok)
	assert.Equal(t, jlex.KindDepth, e.Kind)
}

func TestParseRejectsTrailingGarbage(t *testing.T) {
	lx := jlex.NewBuffer([]byte(`1 2`))
	_, err := value.ExactlyOne(lx, value.Unbounded)
	e, ok := err.(jlex.Error)
	require.True(t, ok)
	assert.Equal(t, jlex.KindTokenEOF, e.Kind)
}

func TestMany(t *testing.T) {
	lx := jlex.NewBuffer([]byte(`1 2 3`))
	var got []string
	for v, err := range value.Many(lx) {
		require.NoError(t, err)
		got = append(got, string(v.Num))
	}
	assert.Equal(t, []string{"1", "2", "3"}, got)
}

func TestManyStopsAtFirstError(t *testing.T) {
	lx := jlex.NewBuffer([]byte(`1 [2,] 3`))
	var got []value.Value
	var lastErr error
	for v, err := range value.Many(lx) {
		lastErr = err
		if err != nil {
			break
		}
		got = append(got, v)
	}
	require.Error(t, lastErr)
	require.Len(t, got, 1)
}

// TestStructuralBoundaryErrors drives the nine array/object boundary
// inputs named in spec.md's worked scenarios through value.Parse and
// checks that each one reports the specific structural Kind the grammar
// was looking for when input ran out or a wrong byte showed up.
func TestStructuralBoundaryErrors(t *testing.T) {
	cases := []struct {
		in   string
		want jlex.Kind
	}{
		{`[`, jlex.KindTokenValueOrEnd},
		{`[1`, jlex.KindTokenCommaOrEnd},
		{`[1 2`, jlex.KindTokenCommaOrEnd},
		{`[1,`, jlex.KindTokenValue},
		{`{`, jlex.KindTokenValueOrEnd},
		{`{0`, jlex.KindTokenString},
		{`{"a" 1`, jlex.KindTokenColon},
		{`{"a":1`, jlex.KindTokenCommaOrEnd},
		{`{"a":1,`, jlex.KindTokenValue},
	}
	for _, c := range cases {
		lx := jlex.NewBuffer([]byte(c.in))
		_, err := value.Parse(lx, value.Unbounded)
		e, ok := err.(jlex.Error)
		require.True(t, ok, "input %q: want jlex.Error, got %T(%v)", c.in, err, err)
		assert.Equal(t, c.want, e.Kind, "input %q", c.in)
	}
}

func TestParseAgreesBufferAndStream(t *testing.T) {
	inputs := []string{
		`[null, true, false, "hello", 0, 3.1415, [1, 2], {"x": 1, "y": 2}]`,
		`"Hello 日本"`,
		`"😀"`,
		`[1,2,3]`,
		`{"a":1,"b":[true,false,null]}`,
	}
	for _, in := range inputs {
		blx := jlex.NewBuffer([]byte(in))
		bv, berr := value.ExactlyOne(blx, value.Unbounded)

		slx := jlex.NewStream(strings.NewReader(in))
		sv, serr := value.ExactlyOne(slx, value.Unbounded)

		require.Equal(t, berr, serr, "input %q", in)
		if berr == nil {
			assert.Equal(t, bv.String(), sv.String(), "input %q", in)
		}
	}
}
