package hrv_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RyanBlaney/corazon-hrv/hrv"
)

// breathingSeries simulates RR intervals modulated by paced breathing at
// breathHz, with a cumulative time axis built by summing the intervals.
func breathingSeries(n int, baseRR, modDepth, breathHz float64) ([]float64, []float64) {
	timestamps := make([]float64, n)
	intervals := make([]float64, n)

	t := 0.0
	for i := 0; i < n; i++ {
		rr := baseRR + modDepth*math.Sin(2*math.Pi*breathHz*t)
		t += rr
		timestamps[i] = t
		intervals[i] = rr
	}

	return timestamps, intervals
}

func TestLengthMismatchIsAnError(t *testing.T) {
	analyzer := hrv.NewAnalyzer()

	result, err := analyzer.Analyze([]float64{0.8, 1.6}, []float64{0.8}, 0.1)

	require.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "length mismatch")
}

func TestEmptyInputDegradesToZeroResult(t *testing.T) {
	analyzer := hrv.NewAnalyzer()

	result, err := analyzer.Analyze(nil, nil, 0.1)

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, hrv.AnalysisMetrics{}, result.Metrics)
	assert.True(t, result.PSD.Empty())
	assert.Empty(t, result.CleanedIntervals)
}

func TestSparseInputDegradesToEmptySpectrum(t *testing.T) {
	timestamps, intervals := breathingSeries(4, 0.8, 0.0, 0.1)

	result, err := hrv.NewAnalyzer().Analyze(timestamps, intervals, 0.1)

	require.NoError(t, err)
	assert.True(t, result.PSD.Empty())
	assert.InDelta(t, 75.0, result.Metrics.MeanHR, 1e-9)
	assert.Equal(t, 0.0, result.Metrics.CoherenceScore)
}

func TestPacedBreathingProducesCoherentSpectrum(t *testing.T) {
	const breathHz = 0.1
	timestamps, intervals := breathingSeries(300, 0.8, 0.05, breathHz)

	result, err := hrv.NewAnalyzer().Analyze(timestamps, intervals, breathHz)

	require.NoError(t, err)
	require.False(t, result.PSD.Empty())

	// 300 beats at ~0.8 s resample to enough samples for full segments
	assert.InDelta(t, 75.0, result.Metrics.MeanHR, 2.0)
	assert.InDelta(t, breathHz, result.Metrics.PeakFrequencyHz, 0.02)
	assert.Greater(t, result.Metrics.CoherenceScore, 0.1)
	assert.LessOrEqual(t, result.Metrics.CoherenceScore, 1.0)
	assert.Greater(t, result.Metrics.TotalPower, 0.0)

	// The 0.1 Hz modulation lives in the LF band
	assert.Greater(t, result.Metrics.LFPower, result.Metrics.HFPower)
}

func TestArtifactsDoNotReachTheSpectrum(t *testing.T) {
	timestamps, intervals := breathingSeries(200, 0.8, 0.05, 0.1)

	// Corrupt a few samples with implausible values
	intervals[50] = 5.0
	intervals[120] = 0.05
	intervals[121] = math.NaN()

	result, err := hrv.NewAnalyzer().Analyze(timestamps, intervals, 0.1)

	require.NoError(t, err)
	assert.Len(t, result.CleanedIntervals, 197)
	for _, v := range result.CleanedIntervals {
		assert.GreaterOrEqual(t, v, 0.3)
		assert.LessOrEqual(t, v, 2.0)
	}
}

func TestResultRoundTripsThroughJSON(t *testing.T) {
	timestamps, intervals := breathingSeries(300, 0.8, 0.05, 0.1)

	result, err := hrv.NewAnalyzer().Analyze(timestamps, intervals, 0.1)
	require.NoError(t, err)

	encoded, err := json.Marshal(result)
	require.NoError(t, err)

	var decoded hrv.AnalysisResult
	require.NoError(t, json.Unmarshal(encoded, &decoded))

	assert.Equal(t, result.Metrics, decoded.Metrics)
	assert.Equal(t, result.PSD.Frequencies, decoded.PSD.Frequencies)
	assert.Equal(t, result.PSD.Power, decoded.PSD.Power)
	assert.Equal(t, result.CleanedTimestamps, decoded.CleanedTimestamps)
	assert.Equal(t, result.CleanedIntervals, decoded.CleanedIntervals)
}
