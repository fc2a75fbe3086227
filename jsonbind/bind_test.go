package jsonbind_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/streamjson/jlex"
	"github.com/streamjson/jlex/jsonbind"
	"github.com/streamjson/jlex/value"
)

type address struct {
	City string `json:"city"`
	Zip  string `json:"zip"`
}

type person struct {
	Name    string   `json:"name"`
	Age     int      `json:"age"`
	Emails  []string `json:"emails"`
	Address *address `json:"address"`
	Ignored string   `json:"-"`
}

func parse(t *testing.T, s string) value.Value {
	t.Helper()
	lx := jlex.NewBuffer([]byte(s))
	v, err := value.ExactlyOne(lx, value.Unbounded)
	require.NoError(t, err)
	return v
}

func TestBindStruct(t *testing.T) {
	v := parse(t, `{"name":"Ada","age":36,"emails":["ada@example.com"],"address":{"city":"London","zip":"W1"}}`)
	var p person
	require.NoError(t, jsonbind.Bind(v, &p))
	assert.Equal(t, "Ada", p.Name)
	assert.Equal(t, 36, p.Age)
	assert.Equal(t, []string{"ada@example.com"}, p.Emails)
	require.NotNil(t, p.Address)
	assert.Equal(t, "London", p.Address.City)
	assert.Empty(t, p.Ignored)
}

func TestBindNullPointer(t *testing.T) {
	v := parse(t, `{"name":"Ada","age":36,"address":null}`)
	var p person
	require.NoError(t, jsonbind.Bind(v, &p))
	assert.Nil(t, p.Address)
}

func TestBindMap(t *testing.T) {
	v := parse(t, `{"a":1,"b":2}`)
	var m map[string]int
	require.NoError(t, jsonbind.Bind(v, &m))
	assert.Equal(t, map[string]int{"a": 1, "b": 2}, m)
}

func TestBindRejectsNonPointer(t *testing.T) {
	v := parse(t, `1`)
	var i int
	err := jsonbind.Bind(v, i)
	assert.Error(t, err)
}

func TestBindTypeMismatch(t *testing.T) {
	v := parse(t, `"not a number"`)
	var i int
	err := jsonbind.Bind(v, &i)
	assert.Error(t, err)
}

func TestBindNonIntegerNumberIntoIntField(t *testing.T) {
	v := parse(t, `3.14`)
	var i int
	err := jsonbind.Bind(v, &i)
	assert.Error(t, err)
}
