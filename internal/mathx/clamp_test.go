package mathx_test

import (
	"testing"

	"github.com/go-sensors/sensironsht4x/internal/mathx"
	"github.com/stretchr/testify/assert"
)

func Test_Clamp_limits_value_to_bounds(t *testing.T) {
	cases := []struct {
		name     string
		v        float64
		expected float64
	}{
		{"below", -6, 0},
		{"within", 44, 44},
		{"above", 119, 100},
		{"at lower bound", 0, 0},
		{"at upper bound", 100, 100},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.expected, mathx.Clamp(c.v, 0, 100))
		})
	}
}

func Test_Clamp_swaps_reversed_bounds(t *testing.T) {
	assert.Equal(t, 10, mathx.Clamp(42, 10, 0))
	assert.Equal(t, 0, mathx.Clamp(-1, 10, 0))
}
