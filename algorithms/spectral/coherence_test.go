package spectral

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// peakedPSD concentrates power around centerHz on a 0.015625 Hz grid
func peakedPSD(centerHz float64) PSD {
	frequencies := make([]float64, 129)
	power := make([]float64, 129)
	for k := range frequencies {
		f := float64(k) * 4.0 / 256.0
		frequencies[k] = f
		power[k] = 0.01 + math.Exp(-math.Pow((f-centerHz)/0.01, 2))
	}
	return PSD{Frequencies: frequencies, Power: power}
}

func TestScoreBoundedByOne(t *testing.T) {
	scorer := NewCoherenceScorer()

	for _, target := range []float64{0.05, 0.1, 0.2, 0.35} {
		result := scorer.Score(peakedPSD(0.1), target)
		assert.GreaterOrEqual(t, result.Score, 0.0)
		assert.LessOrEqual(t, result.Score, 1.0)
	}
}

func TestOnTargetScoresHigherThanOffTarget(t *testing.T) {
	scorer := NewCoherenceScorer()
	psd := peakedPSD(0.1)

	onTarget := scorer.Score(psd, 0.1)
	offTarget := scorer.Score(psd, 0.3)

	assert.Greater(t, onTarget.Score, offTarget.Score)
}

func TestPeakDetection(t *testing.T) {
	result := NewCoherenceScorer().Score(peakedPSD(0.2), 0.1)

	assert.InDelta(t, 0.2, result.PeakFrequencyHz, 4.0/256.0)
	assert.Greater(t, result.PeakPower, 0.0)
}

func TestZeroTotalPowerScoresZero(t *testing.T) {
	psd := PSD{
		Frequencies: []float64{0.1, 0.2, 0.3},
		Power:       []float64{0, 0, 0},
	}

	result := NewCoherenceScorer().Score(psd, 0.1)

	assert.Equal(t, 0.0, result.Score)
	assert.Equal(t, 0.0, result.TotalPower)
	assert.Equal(t, 0.0, result.TargetBandPower)
}

func TestEmptyPSD(t *testing.T) {
	result := NewCoherenceScorer().Score(PSD{}, 0.1)

	assert.Equal(t, 0.0, result.Score)
	assert.Equal(t, 0.0, result.PeakFrequencyHz)
	assert.Equal(t, 0.0, result.PeakPower)
}

func TestNoBinInBand(t *testing.T) {
	psd := PSD{
		Frequencies: []float64{0.5, 0.6, 0.7},
		Power:       []float64{1, 2, 3},
	}

	result := NewCoherenceScorer().Score(psd, 0.1)

	assert.Equal(t, 0.0, result.PeakFrequencyHz)
	assert.Equal(t, 0.0, result.PeakPower)
}

func TestTargetBandClippedIntoAnalysisBand(t *testing.T) {
	scorer := NewCoherenceScorer()
	psd := peakedPSD(0.05)

	// Target near the lower band edge: the target band must not reach
	// below 0.04 Hz, so the result stays a valid fraction.
	result := scorer.Score(psd, 0.045)

	require.Greater(t, result.TotalPower, 0.0)
	assert.GreaterOrEqual(t, result.Score, 0.0)
	assert.LessOrEqual(t, result.Score, 1.0)
}

func TestFirstOccurrenceWinsOnTies(t *testing.T) {
	psd := PSD{
		Frequencies: []float64{0.05, 0.1, 0.15, 0.2},
		Power:       []float64{1.0, 2.0, 2.0, 1.0},
	}

	result := NewCoherenceScorer().Score(psd, 0.1)

	assert.Equal(t, 0.1, result.PeakFrequencyHz)
}
