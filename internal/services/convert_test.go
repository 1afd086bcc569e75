package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConvertNumber(t *testing.T) {
	assert.Equal(t, 12.5, ConvertValue("12.5", "number"))
	assert.Equal(t, 12.5, ConvertValue(12.5, "number"))
	assert.Equal(t, 12.0, ConvertValue(12, "number"))
	// Unparseable strings pass through unchanged
	assert.Equal(t, "twelve", ConvertValue("twelve", "number"))
}

func TestConvertInteger(t *testing.T) {
	assert.Equal(t, 12.0, ConvertValue("12.9", "integer"))
	assert.Equal(t, 3.0, ConvertValue(3.7, "integer"))
}

func TestConvertBoolean(t *testing.T) {
	assert.Equal(t, true, ConvertValue("true", "boolean"))
	assert.Equal(t, true, ConvertValue("Yes", "boolean"))
	assert.Equal(t, true, ConvertValue("1", "boolean"))
	assert.Equal(t, false, ConvertValue("no", "boolean"))
	assert.Equal(t, false, ConvertValue("false", "boolean"))
	assert.Equal(t, true, ConvertValue(true, "boolean"))
	assert.Equal(t, false, ConvertValue(0.0, "boolean"))
}

func TestConvertArray(t *testing.T) {
	assert.Equal(t, []interface{}{"a", "b"}, ConvertValue([]interface{}{"a", "b"}, "array"))
	assert.Equal(t, []interface{}{"a", "b"}, ConvertValue(`["a","b"]`, "array"))
	assert.Equal(t, []interface{}{"a", "b", "c"}, ConvertValue("a; b, c", "array"))
	assert.Equal(t, []interface{}{7.0}, ConvertValue(7.0, "array"))
}

func TestConvertMeasurement(t *testing.T) {
	obj := map[string]interface{}{"measure": 12.0, "unit": "lb"}
	assert.Equal(t, obj, ConvertValue(obj, "measurement"))

	v := ConvertValue("12.5 lb", "measurement")
	m, ok := v.(map[string]interface{})
	assert.True(t, ok)
	assert.Equal(t, 12.5, m["measure"])
	assert.Equal(t, "lb", m["unit"])

	assert.Equal(t, "not a measurement", ConvertValue("not a measurement", "measurement"))
}

func TestConvertStringPassesStructuresThrough(t *testing.T) {
	obj := map[string]interface{}{"k": "v"}
	assert.Equal(t, obj, ConvertValue(obj, "string"))

	arr := []interface{}{"x"}
	assert.Equal(t, arr, ConvertValue(arr, "string"))

	assert.Equal(t, "42", ConvertValue(42, "string"))
	assert.Equal(t, "plain", ConvertValue("plain", ""))
}

func TestConvertEnumAndObjectPassThrough(t *testing.T) {
	assert.Equal(t, "Blue", ConvertValue("Blue", "enum"))
	obj := map[string]interface{}{"nested": true}
	assert.Equal(t, obj, ConvertValue(obj, "object"))
}
