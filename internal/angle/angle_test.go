package angle

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConversions(t *testing.T) {
	tests := []struct {
		deg float64
		rad float64
	}{
		{0, 0},
		{90, math.Pi / 2},
		{180, math.Pi},
		{45, math.Pi / 4},
		{-30, -math.Pi / 6},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.rad, ToRadians(tt.deg), 1e-12, "ToRadians(%v)", tt.deg)
		assert.InDelta(t, tt.deg, ToDegrees(tt.rad), 1e-12, "ToDegrees(%v)", tt.rad)
	}
}

func TestClampUnit(t *testing.T) {
	assert.Equal(t, 1.0, ClampUnit(1.0000000000000002))
	assert.Equal(t, -1.0, ClampUnit(-1.0000000000000002))
	assert.Equal(t, 0.25, ClampUnit(0.25))
	assert.Equal(t, 1.0, ClampUnit(7))
}

func TestInverseTrigStaysFiniteOutsideDomain(t *testing.T) {
	// Unclamped these would be NaN.
	assert.Equal(t, 0.0, AcosDeg(1+1e-15))
	assert.Equal(t, 180.0, AcosDeg(-1-1e-15))
	assert.Equal(t, 90.0, AsinDeg(1+1e-15))
	assert.False(t, math.IsNaN(AsinDeg(-1-1e-15)))
}

func TestTrigInDegrees(t *testing.T) {
	assert.InDelta(t, 0.5, SinDeg(30), 1e-12)
	assert.InDelta(t, 0.5, CosDeg(60), 1e-12)
	assert.InDelta(t, 60, AcosDeg(0.5), 1e-9)
	assert.InDelta(t, 30, AsinDeg(0.5), 1e-9)
}
