package artifact

import (
	"github.com/RyanBlaney/corazon-hrv/algorithms/common"
)

// FilterParams contains parameters for artifact rejection
type FilterParams struct {
	// Physiologic plausibility range for a beat interval, in seconds
	MinInterval float64 `json:"min_interval"`
	MaxInterval float64 `json:"max_interval"`

	// Hampel outlier pass
	WindowHalfWidth int     `json:"window_half_width"` // samples on each side
	Threshold       float64 `json:"threshold"`         // multiples of scaled MAD
}

// DefaultFilterParams returns the standard artifact rejection parameters
func DefaultFilterParams() FilterParams {
	return FilterParams{
		MinInterval:     0.3,
		MaxInterval:     2.0,
		WindowHalfWidth: 2,
		Threshold:       3.0,
	}
}

// Filter rejects physiologically implausible intervals and local outliers
// from a beat-interval series. The output is always an order-preserving
// subsequence of the input; no sample is modified, reordered or duplicated.
type Filter struct {
	params FilterParams
}

// NewFilter creates an artifact filter with default parameters
func NewFilter() *Filter {
	return &Filter{params: DefaultFilterParams()}
}

// NewFilterWithParams creates an artifact filter with custom parameters
func NewFilterWithParams(params FilterParams) *Filter {
	return &Filter{params: params}
}

// Apply filters a parallel (timestamps, intervals) series in two passes:
// a physiologic range gate followed by a two-sided Hampel pass over the
// survivors. The Hampel pass needs the whole series; this is not a
// streaming filter.
func (f *Filter) Apply(timestamps, intervals []float64) ([]float64, []float64) {
	gatedTs := make([]float64, 0, len(intervals))
	gatedRr := make([]float64, 0, len(intervals))

	for i, rr := range intervals {
		if i >= len(timestamps) {
			break
		}
		if !common.IsFinite(timestamps[i]) || !common.IsFinite(rr) {
			continue
		}
		if rr < f.params.MinInterval || rr > f.params.MaxInterval {
			continue
		}
		gatedTs = append(gatedTs, timestamps[i])
		gatedRr = append(gatedRr, rr)
	}

	// Too few samples to estimate local statistics
	if len(gatedRr) < 3 {
		return gatedTs, gatedRr
	}

	outTs := make([]float64, 0, len(gatedRr))
	outRr := make([]float64, 0, len(gatedRr))

	for i, rr := range gatedRr {
		start := i - f.params.WindowHalfWidth
		if start < 0 {
			start = 0
		}
		end := i + f.params.WindowHalfWidth + 1
		if end > len(gatedRr) {
			end = len(gatedRr)
		}

		window := gatedRr[start:end]
		median := common.Median(window)
		scaledMAD := common.MAD(window)

		// Zero dispersion: deviation cannot be assessed, keep the sample
		if scaledMAD == 0 {
			outTs = append(outTs, gatedTs[i])
			outRr = append(outRr, rr)
			continue
		}

		deviation := rr - median
		if deviation < 0 {
			deviation = -deviation
		}
		if deviation <= f.params.Threshold*scaledMAD {
			outTs = append(outTs, gatedTs[i])
			outRr = append(outRr, rr)
		}
	}

	return outTs, outRr
}
