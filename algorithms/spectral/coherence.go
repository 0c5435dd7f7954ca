package spectral

// CoherenceParams contains parameters for coherence scoring
type CoherenceParams struct {
	// Analysis band, Hz. Total power and peak detection are restricted
	// to this range.
	BandLow  float64 `json:"band_low"`
	BandHigh float64 `json:"band_high"`

	// Half-width of the target band around the paced frequency, Hz
	TargetHalfWidth float64 `json:"target_half_width"`
}

// DefaultCoherenceParams returns the standard 0.04-0.4 Hz analysis band
func DefaultCoherenceParams() CoherenceParams {
	return CoherenceParams{
		BandLow:         0.04,
		BandHigh:        0.4,
		TargetHalfWidth: 0.015,
	}
}

// CoherenceResult holds the coherence score and supporting band powers
type CoherenceResult struct {
	Score           float64 `json:"score"`             // target / total, in [0, 1]
	TotalPower      float64 `json:"total_power"`       // over the analysis band
	TargetBandPower float64 `json:"target_band_power"` // over the clipped target band
	PeakFrequencyHz float64 `json:"peak_frequency_hz"` // strongest in-band bin
	PeakPower       float64 `json:"peak_power"`
}

// CoherenceScorer derives the fraction of in-band spectral power that is
// concentrated near a target breathing frequency, plus the dominant
// in-band spectral peak.
type CoherenceScorer struct {
	params CoherenceParams
}

// NewCoherenceScorer creates a scorer with default parameters
func NewCoherenceScorer() *CoherenceScorer {
	return &CoherenceScorer{params: DefaultCoherenceParams()}
}

// NewCoherenceScorerWithParams creates a scorer with custom parameters
func NewCoherenceScorerWithParams(params CoherenceParams) *CoherenceScorer {
	return &CoherenceScorer{params: params}
}

// Score evaluates a PSD against a target frequency. A PSD with no power in
// the analysis band scores 0, never an error.
func (c *CoherenceScorer) Score(psd PSD, targetHz float64) CoherenceResult {
	totalPower := BandPower(psd, c.params.BandLow, c.params.BandHigh)

	// Target band clipped into the analysis band
	targetLow := targetHz - c.params.TargetHalfWidth
	if targetLow < c.params.BandLow {
		targetLow = c.params.BandLow
	}
	targetHigh := targetHz + c.params.TargetHalfWidth
	if targetHigh > c.params.BandHigh {
		targetHigh = c.params.BandHigh
	}

	targetBandPower := BandPower(psd, targetLow, targetHigh)

	score := 0.0
	if totalPower > 0 {
		score = targetBandPower / totalPower
	}

	peakFreq, peakPower := c.findPeak(psd)

	return CoherenceResult{
		Score:           score,
		TotalPower:      totalPower,
		TargetBandPower: targetBandPower,
		PeakFrequencyHz: peakFreq,
		PeakPower:       peakPower,
	}
}

// findPeak scans the in-band bins for the strictly maximal power. The
// first occurrence wins on ties; both values are 0 when no bin lies in
// the analysis band.
func (c *CoherenceScorer) findPeak(psd PSD) (float64, float64) {
	peakFreq := 0.0
	peakPower := 0.0
	found := false

	for i, f := range psd.Frequencies {
		if f < c.params.BandLow || f > c.params.BandHigh {
			continue
		}
		if !found || psd.Power[i] > peakPower {
			peakFreq = f
			peakPower = psd.Power[i]
			found = true
		}
	}

	if !found {
		return 0.0, 0.0
	}
	return peakFreq, peakPower
}
