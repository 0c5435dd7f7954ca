package config

import (
	"github.com/RyanBlaney/corazon-hrv/algorithms/artifact"
	"github.com/RyanBlaney/corazon-hrv/algorithms/spectral"
)

// AnalysisConfig configures the batch analysis pipeline
type AnalysisConfig struct {
	// Resampling rate for the interval series, Hz
	SampleRate float64 `json:"sample_rate"`

	// Frequency-domain bands, [min, max] Hz
	LFBand [2]float64 `json:"lf_band"`
	HFBand [2]float64 `json:"hf_band"`

	Artifact  artifact.FilterParams    `json:"artifact"`
	Welch     spectral.WelchParams     `json:"welch"`
	Coherence spectral.CoherenceParams `json:"coherence"`
}

// DefaultAnalysisConfig returns the standard pipeline configuration
func DefaultAnalysisConfig() *AnalysisConfig {
	return &AnalysisConfig{
		SampleRate: 4.0,
		LFBand:     [2]float64{0.04, 0.15},
		HFBand:     [2]float64{0.15, 0.4},
		Artifact:   artifact.DefaultFilterParams(),
		Welch:      spectral.DefaultWelchParams(),
		Coherence:  spectral.DefaultCoherenceParams(),
	}
}

// CalibrationConfig configures the paced-breathing calibration scan
type CalibrationConfig struct {
	// Duration of each candidate segment, seconds
	StepSec float64 `json:"step_sec"`

	// Segments with fewer raw samples than this score zero without
	// running the pipeline
	MinSegmentSamples int `json:"min_segment_samples"`
}

// DefaultCalibrationConfig returns the standard scan configuration
func DefaultCalibrationConfig() *CalibrationConfig {
	return &CalibrationConfig{
		StepSec:           20.0,
		MinSegmentSamples: 16,
	}
}

// QualityConfig configures the live signal-quality monitor
type QualityConfig struct {
	// Rolling window over raw intervals, seconds
	WindowSec float64 `json:"window_sec"`

	// Below this many samples in the window the score is 0
	MinSamples int `json:"min_samples"`

	// Staleness beyond which the signal is considered lost, seconds
	StaleAfterSec float64 `json:"stale_after_sec"`

	// Horizon for the freshness component, seconds
	FreshnessHorizonSec float64 `json:"freshness_horizon_sec"`

	// Physiologic plausibility range, seconds
	MinInterval float64 `json:"min_interval"`
	MaxInterval float64 `json:"max_interval"`

	// Outlier detection threshold, multiples of scaled MAD
	OutlierThreshold float64 `json:"outlier_threshold"`

	// Coefficient-of-variation normalization for the stability component
	CVNormalization float64 `json:"cv_normalization"`

	// Composite weights
	WeightValid     float64 `json:"weight_valid"`
	WeightOutlier   float64 `json:"weight_outlier"`
	WeightStability float64 `json:"weight_stability"`
	WeightFreshness float64 `json:"weight_freshness"`

	// Label thresholds on the composite score
	ExcellentAt int `json:"excellent_at"`
	GoodAt      int `json:"good_at"`
	FairAt      int `json:"fair_at"`
}

// DefaultQualityConfig returns the standard monitor configuration
func DefaultQualityConfig() *QualityConfig {
	return &QualityConfig{
		WindowSec:           30.0,
		MinSamples:          6,
		StaleAfterSec:       8.0,
		FreshnessHorizonSec: 5.0,
		MinInterval:         0.3,
		MaxInterval:         2.0,
		OutlierThreshold:    3.0,
		CVNormalization:     0.25,
		WeightValid:         0.45,
		WeightOutlier:       0.20,
		WeightStability:     0.20,
		WeightFreshness:     0.15,
		ExcellentAt:         85,
		GoodAt:              70,
		FairAt:              50,
	}
}
