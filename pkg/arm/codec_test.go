package arm

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type thing struct {
	Name  *string  `json:"name,omitempty"`
	Count *int32   `json:"count,omitempty"`
	Items []string `json:"items,omitzero"`
}

func (t *thing) Validate() error {
	if t == nil {
		return nil
	}
	return CheckRequired("thing", Req("name", t.Name), ReqSlice("items", t.Items))
}

func TestUnmarshal_Required(t *testing.T) {
	var v thing
	require.NoError(t, Unmarshal([]byte(`{"name":"a","items":[]}`), &v))
	assert.NotNil(t, v.Items)
	assert.Empty(t, v.Items)

	err := Unmarshal([]byte(`{"items":[]}`), &v)
	assert.EqualError(t, err, `decode thing: missing required field "name"`)

	err = Unmarshal([]byte(`{"name":"a"}`), &thing{})
	assert.Equal(t, MissingField, DecodeErrorKindOf(err))
}

func TestUnmarshal_TypeMismatch(t *testing.T) {
	err := Unmarshal([]byte(`{"name":"a","count":"three","items":[]}`), &thing{})
	var de *DecodeError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, TypeMismatch, de.Kind)
	assert.Equal(t, "count", de.Path)
	assert.Equal(t, "thing", de.Type)

	var typeErr *json.UnmarshalTypeError
	assert.True(t, errors.As(err, &typeErr), "underlying codec error should be reachable")
}

func TestUnmarshal_Malformed(t *testing.T) {
	err := Unmarshal([]byte(`{"name":`), &thing{})
	assert.Equal(t, Malformed, DecodeErrorKindOf(err))
	assert.True(t, IsDecodeError(err))
}

func TestWrapDecodeError(t *testing.T) {
	assert.Nil(t, WrapDecodeError(nil, "x"))

	plain := errors.New("plain")
	assert.Same(t, plain, WrapDecodeError(plain, "x"))

	err := WrapDecodeError(NewMissingFieldError("T", "name"), "properties")
	err = WrapDecodeError(err, "[3]")
	err = WrapDecodeError(err, "value")
	var de *DecodeError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "value[3].properties.name", de.Path)
}

func TestNestedList(t *testing.T) {
	items := []*thing{{Name: new(string), Items: []string{}}, {}}
	err := NestedList("things", items)
	var de *DecodeError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "things[1].name", de.Path)
}

func TestMarshalTagged(t *testing.T) {
	data, err := MarshalTagged("actionType", "RunPlaybook", struct {
		Order int `json:"order"`
	}{Order: 1})
	require.NoError(t, err)
	assert.Equal(t, `{"actionType":"RunPlaybook","order":1}`, string(data))

	_, err = MarshalTagged("kind", "X", []int{1})
	assert.Error(t, err)
}
