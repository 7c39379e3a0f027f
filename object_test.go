package ljson

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetObjectCapacity(t *testing.T) {
	var v Value
	v.SetObject(4)
	assert.Equal(t, Object, v.Kind())
	assert.Equal(t, 0, v.ObjectSize())
	assert.Equal(t, 4, v.ObjectCapacity())
}

func TestSetValueByKeyInsertsAndGrows(t *testing.T) {
	var v Value
	v.SetObject(0)

	var one Value
	one.SetNumber(1)
	res := v.SetValueByKey([]byte("a"), &one)
	assert.Equal(t, InsertOK, res)
	assert.Equal(t, 1, v.ObjectSize())
	assert.Equal(t, 1, v.ObjectCapacity())

	var two Value
	two.SetNumber(2)
	res = v.SetValueByKey([]byte("b"), &two)
	assert.Equal(t, InsertOK, res)
	assert.Equal(t, 2, v.ObjectCapacity())
}

func TestSetValueByKeyModifiesExisting(t *testing.T) {
	var v Value
	v.SetObject(0)
	var one Value
	one.SetNumber(1)
	v.SetValueByKey([]byte("a"), &one)

	var five Value
	five.SetNumber(5)
	res := v.SetValueByKey([]byte("a"), &five)
	assert.Equal(t, ModifyOK, res)
	assert.Equal(t, 1, v.ObjectSize())

	n, err := v.GetValueByKey([]byte("a")).NumberValue()
	require.NoError(t, err)
	assert.Equal(t, float64(5), n)
}

func TestFindIndexAndGetValueByKey(t *testing.T) {
	var v Value
	v.SetObject(0)
	var val Value
	val.SetString([]byte("x"))
	v.SetValueByKey([]byte("key"), &val)

	assert.Equal(t, 0, v.FindIndex([]byte("key")))
	assert.Equal(t, NotFound, v.FindIndex([]byte("missing")))
	assert.Nil(t, v.GetValueByKey([]byte("missing")))
}

func TestSetValueByIndexOutOfRange(t *testing.T) {
	var v Value
	v.SetObject(0)
	var val Value
	val.SetNumber(1)
	assert.Equal(t, IndexWrong, v.SetValueByIndex(0, &val))
}

func TestRemoveValueByIndexShrinksCapacity(t *testing.T) {
	var v Value
	v.SetObject(0)
	for i := 0; i < 8; i++ {
		var val Value
		val.SetNumber(float64(i))
		v.SetValueByKey([]byte{byte('a' + i)}, &val)
	}
	require.Equal(t, 8, v.ObjectCapacity())

	for i := 7; i >= 1; i-- {
		assert.Equal(t, RemoveOK, v.RemoveValueByIndex(i))
	}
	assert.Equal(t, 1, v.ObjectSize())
	assert.Equal(t, 3, v.ObjectCapacity())
}

func TestRemoveValueByKey(t *testing.T) {
	var v Value
	v.SetObject(0)
	var val Value
	val.SetNumber(1)
	v.SetValueByKey([]byte("a"), &val)

	assert.Equal(t, RemoveOK, v.RemoveValueByKey([]byte("a")))
	assert.Equal(t, IndexWrong, v.RemoveValueByKey([]byte("a")))
}

func TestKeyAndGetValueByIndex(t *testing.T) {
	var v Value
	v.SetObject(0)
	var val Value
	val.SetBoolean(true)
	v.SetValueByKey([]byte("flag"), &val)

	assert.Equal(t, "flag", string(v.Key(0)))
	b, err := v.GetValueByIndex(0).Boolean()
	require.NoError(t, err)
	assert.True(t, b)
}

func TestClearObject(t *testing.T) {
	var v Value
	v.SetObject(0)
	var val Value
	val.SetNumber(1)
	v.SetValueByKey([]byte("a"), &val)
	v.SetValueByKey([]byte("b"), &val)

	v.ClearObject()
	assert.Equal(t, 0, v.ObjectSize())
}

func TestSetValueByKeyCopiesKey(t *testing.T) {
	key := []byte("mutable")
	var v Value
	v.SetObject(0)
	var val Value
	val.SetNumber(1)
	v.SetValueByKey(key, &val)

	key[0] = 'X'
	assert.Equal(t, 0, v.FindIndex([]byte("mutable")))
}
