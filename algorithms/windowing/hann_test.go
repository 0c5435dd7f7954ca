package windowing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHannEndpointsAndSymmetry(t *testing.T) {
	h := NewHann(16)
	coeffs := h.Coefficients()

	require.Len(t, coeffs, 16)
	assert.InDelta(t, 0.0, coeffs[0], 1e-12)

	// Periodic window: w[k] == w[N-k] for interior points
	for k := 1; k < 16; k++ {
		assert.InDelta(t, coeffs[k], coeffs[16-k], 1e-12)
	}
}

func TestHannPowerMatchesCoefficients(t *testing.T) {
	h := NewHann(64)

	sum := 0.0
	for _, c := range h.Coefficients() {
		sum += c * c
	}

	assert.InDelta(t, sum, h.Power(), 1e-12)
}

func TestApplySizeMismatch(t *testing.T) {
	h := NewHann(8)

	assert.Nil(t, h.Apply(make([]float64, 4)))
	assert.Error(t, h.ApplyInPlace(make([]float64, 4)))
}

func TestApplyInPlaceMatchesApply(t *testing.T) {
	h := NewHann(8)
	signal := []float64{1, 2, 3, 4, 5, 6, 7, 8}

	expected := h.Apply(signal)
	require.NoError(t, h.ApplyInPlace(signal))

	assert.Equal(t, expected, signal)
}
