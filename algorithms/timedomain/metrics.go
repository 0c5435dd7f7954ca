package timedomain

import (
	"math"

	"github.com/RyanBlaney/corazon-hrv/algorithms/common"
)

// Metrics holds the classical time-domain statistics of a beat-interval
// series. All values degrade to 0 on empty or degenerate input.
type Metrics struct {
	MeanHR float64 `json:"mean_hr"` // beats per minute
	MeanRR float64 `json:"mean_rr"` // seconds
	SDNN   float64 `json:"sdnn"`    // seconds
	RMSSD  float64 `json:"rmssd"`   // seconds
	PNN50  float64 `json:"pnn50"`   // percent
}

// pNN50 counts successive differences above this threshold, in seconds
const pnn50Threshold = 0.05

// Compute calculates time-domain metrics over the interval values of a
// cleaned series. Timestamps are irrelevant here; only the interval
// durations matter.
func Compute(intervals []float64) Metrics {
	if len(intervals) == 0 {
		return Metrics{}
	}

	meanRR := common.Mean(intervals)

	meanHR := 0.0
	if meanRR > 0 {
		meanHR = 60.0 / meanRR
	}

	sdnn := common.StandardDeviation(intervals)

	// Successive-difference statistics
	rmssd := 0.0
	pnn50 := 0.0
	if len(intervals) > 1 {
		sumSquares := 0.0
		aboveThreshold := 0
		for i := 1; i < len(intervals); i++ {
			d := intervals[i] - intervals[i-1]
			sumSquares += d * d
			if math.Abs(d) > pnn50Threshold {
				aboveThreshold++
			}
		}

		numDiffs := len(intervals) - 1
		rmssd = math.Sqrt(sumSquares / float64(numDiffs))
		pnn50 = 100.0 * float64(aboveThreshold) / float64(numDiffs)
	}

	return Metrics{
		MeanHR: meanHR,
		MeanRR: meanRR,
		SDNN:   sdnn,
		RMSSD:  rmssd,
		PNN50:  pnn50,
	}
}
