package spectral

import (
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"

	"github.com/RyanBlaney/corazon-hrv/algorithms/common"
	"github.com/RyanBlaney/corazon-hrv/algorithms/windowing"
)

// PSD holds a single-sided power spectral density estimate
type PSD struct {
	Frequencies []float64 `json:"frequencies"` // Hz, strictly increasing
	Power       []float64 `json:"power"`       // power per Hz, >= 0
}

// Empty reports whether the estimate carries no bins
func (p PSD) Empty() bool {
	return len(p.Frequencies) == 0
}

// WelchParams contains parameters for Welch PSD estimation
type WelchParams struct {
	SegmentLength int     `json:"segment_length"` // nominal, shrunk to the signal
	Overlap       float64 `json:"overlap"`        // fraction of segment length
	MinSegment    int     `json:"min_segment"`    // below this the estimate is empty
}

// DefaultWelchParams returns the standard estimation parameters
func DefaultWelchParams() WelchParams {
	return WelchParams{
		SegmentLength: 256,
		Overlap:       0.5,
		MinSegment:    16,
	}
}

// Welch estimates power spectral density by averaging periodograms of
// overlapping Hann-windowed segments.
type Welch struct {
	params WelchParams
}

// NewWelch creates a Welch estimator with default parameters
func NewWelch() *Welch {
	return &Welch{params: DefaultWelchParams()}
}

// NewWelchWithParams creates a Welch estimator with custom parameters
func NewWelchWithParams(params WelchParams) *Welch {
	return &Welch{params: params}
}

// Compute estimates the PSD of a uniformly sampled signal. The effective
// segment length is the largest power of two that fits both the nominal
// length and the signal; a signal too short for a single minimum-length
// segment yields an empty estimate rather than an error.
func (w *Welch) Compute(signal []float64, sampleRate float64) PSD {
	nominal := w.params.SegmentLength
	if len(signal) < nominal {
		nominal = len(signal)
	}

	segLen := common.PrevPowerOfTwo(nominal)
	if segLen < w.params.MinSegment || sampleRate <= 0 {
		return PSD{Frequencies: []float64{}, Power: []float64{}}
	}

	window := windowing.NewHann(segLen)
	windowPower := window.Power()

	hop := int(float64(segLen) * (1.0 - w.params.Overlap))
	if hop < 1 {
		hop = 1
	}

	freqBins := segLen/2 + 1
	accumulated := make([]float64, freqBins)
	segments := 0

	buffer := make([]float64, segLen)

	for start := 0; start+segLen <= len(signal); start += hop {
		copy(buffer, signal[start:start+segLen])

		// Remove the segment mean before windowing
		mean := common.Mean(buffer)
		for i := range buffer {
			buffer[i] -= mean
		}

		if err := window.ApplyInPlace(buffer); err != nil {
			continue
		}

		spectrum := fft.FFTReal(buffer)

		for k := 0; k < freqBins; k++ {
			mag := cmplx.Abs(spectrum[k])
			power := mag * mag / (sampleRate * windowPower)

			// Single-sided scaling: double everything except DC and Nyquist
			if k != 0 && k != freqBins-1 {
				power *= 2.0
			}

			accumulated[k] += power
		}

		segments++
	}

	if segments == 0 {
		return PSD{Frequencies: []float64{}, Power: []float64{}}
	}

	frequencies := make([]float64, freqBins)
	power := make([]float64, freqBins)
	for k := 0; k < freqBins; k++ {
		frequencies[k] = float64(k) * sampleRate / float64(segLen)
		power[k] = accumulated[k] / float64(segments)
	}

	return PSD{Frequencies: frequencies, Power: power}
}
