package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseNumericRange(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		min     *int
		max     *int
		isEmpty bool
	}{
		{name: "both bounds", input: "1,10", min: intPtr(1), max: intPtr(10)},
		{name: "min only", input: "3,", min: intPtr(3)},
		{name: "max only", input: ",8", max: intPtr(8)},
		{name: "spaces", input: " 2 , 4 ", min: intPtr(2), max: intPtr(4)},
		{name: "no comma", input: "5", isEmpty: true},
		{name: "too many parts", input: "1,2,3", isEmpty: true},
		{name: "empty", input: "", isEmpty: true},
		{name: "garbage", input: "a,b", isEmpty: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := ParseNumericRange(tt.input)
			assert.Equal(t, tt.isEmpty, r.Empty())
			if tt.min != nil {
				assert.Equal(t, *tt.min, *r.Min)
			} else {
				assert.Nil(t, r.Min)
			}
			if tt.max != nil {
				assert.Equal(t, *tt.max, *r.Max)
			} else {
				assert.Nil(t, r.Max)
			}
		})
	}
}

func TestNumericRangeContains(t *testing.T) {
	r := ParseNumericRange("2,5")

	// 边界包含
	assert.True(t, r.Contains(2))
	assert.True(t, r.Contains(5))
	assert.True(t, r.Contains(3))
	assert.False(t, r.Contains(1))
	assert.False(t, r.Contains(6))

	minOnly := ParseNumericRange("4,")
	assert.True(t, minOnly.Contains(4))
	assert.True(t, minOnly.Contains(100))
	assert.False(t, minOnly.Contains(3))

	maxOnly := ParseNumericRange(",4")
	assert.True(t, maxOnly.Contains(0))
	assert.True(t, maxOnly.Contains(4))
	assert.False(t, maxOnly.Contains(5))

	empty := NumericRange{}
	assert.True(t, empty.Contains(-100))
	assert.True(t, empty.Contains(100))
}

func intPtr(v int) *int {
	return &v
}
