package windowing

import (
	"fmt"
	"math"
)

// Hann represents a periodic Hann window function. The periodic form
// (denominator N rather than N-1) is the variant used for averaged
// periodogram estimates.
type Hann struct {
	size         int
	coefficients []float64
	power        float64
}

// NewHann creates a new Hann window of the given size
func NewHann(size int) *Hann {
	h := &Hann{size: size}
	h.generate()
	return h
}

// generate creates Hann window coefficients and their coherent power sum
func (h *Hann) generate() {
	h.coefficients = make([]float64, h.size)

	denominator := float64(h.size)
	for i := 0; i < h.size; i++ {
		c := 0.5 * (1.0 - math.Cos(2*math.Pi*float64(i)/denominator))
		h.coefficients[i] = c
		h.power += c * c
	}
}

// Apply applies the window to a signal (creates new array)
func (h *Hann) Apply(signal []float64) []float64 {
	if len(signal) != h.size {
		return nil
	}

	windowed := make([]float64, h.size)
	for i := 0; i < h.size; i++ {
		windowed[i] = signal[i] * h.coefficients[i]
	}

	return windowed
}

// ApplyInPlace applies the window to a signal in-place
func (h *Hann) ApplyInPlace(signal []float64) error {
	if len(signal) != h.size {
		return fmt.Errorf("signal length (%d) doesn't match window size (%d)", len(signal), h.size)
	}

	for i := 0; i < h.size; i++ {
		signal[i] *= h.coefficients[i]
	}

	return nil
}

// Power returns the coherent window power (sum of squared coefficients),
// the normalization term for single-sided spectral density scaling.
func (h *Hann) Power() float64 {
	return h.power
}

// Coefficients returns a copy of the window coefficients
func (h *Hann) Coefficients() []float64 {
	coeffs := make([]float64, len(h.coefficients))
	copy(coeffs, h.coefficients)
	return coeffs
}

// Size returns the window size
func (h *Hann) Size() int {
	return h.size
}
