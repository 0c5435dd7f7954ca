package spectral

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func rampPSD() PSD {
	// 21 bins, 0 to 1 Hz in 0.05 Hz steps
	frequencies := make([]float64, 21)
	power := make([]float64, 21)
	for i := range frequencies {
		frequencies[i] = float64(i) * 0.05
		power[i] = float64(i%7) + 0.5
	}
	return PSD{Frequencies: frequencies, Power: power}
}

func TestAdditivityAtBinFrequency(t *testing.T) {
	psd := rampPSD()

	// Split exactly on a bin frequency so the two halves partition the
	// trapezoids of the whole band.
	low := psd.Frequencies[2]
	split := psd.Frequencies[6]
	high := psd.Frequencies[18]

	whole := BandPower(psd, low, high)
	left := BandPower(psd, low, split)
	right := BandPower(psd, split, high)

	assert.InDelta(t, whole, left+right, 1e-12)
}

func TestFullRangeMatchesTrapezoidSum(t *testing.T) {
	psd := rampPSD()

	expected := 0.0
	for i := 0; i < len(psd.Frequencies)-1; i++ {
		expected += (psd.Power[i] + psd.Power[i+1]) / 2.0 * 0.05
	}

	assert.InDelta(t, expected, BandPower(psd, 0.0, 1.0), 1e-12)
}

func TestStraddlingTrapezoidCountsInFull(t *testing.T) {
	psd := PSD{
		Frequencies: []float64{0.0, 0.1, 0.2},
		Power:       []float64{1.0, 1.0, 1.0},
	}

	// The band covers half of the second trapezoid, but inclusion is
	// overlap-based with no clipping, so the trapezoid contributes fully.
	assert.InDelta(t, 0.2, BandPower(psd, 0.0, 0.15), 1e-12)
}

func TestBandOutsidePSD(t *testing.T) {
	psd := rampPSD()
	assert.Equal(t, 0.0, BandPower(psd, 2.0, 3.0))
}

func TestDegeneratePSD(t *testing.T) {
	assert.Equal(t, 0.0, BandPower(PSD{}, 0.04, 0.4))
	assert.Equal(t, 0.0, BandPower(PSD{Frequencies: []float64{0.1}, Power: []float64{1}}, 0.04, 0.4))
	assert.Equal(t, 0.0, BandPower(PSD{Frequencies: []float64{0.1, 0.2}, Power: []float64{1}}, 0.04, 0.4))
	assert.Equal(t, 0.0, BandPower(rampPSD(), 0.4, 0.4))
}
