package hrv

import (
	"fmt"

	"github.com/RyanBlaney/corazon-hrv/algorithms/artifact"
	"github.com/RyanBlaney/corazon-hrv/algorithms/resample"
	"github.com/RyanBlaney/corazon-hrv/algorithms/spectral"
	"github.com/RyanBlaney/corazon-hrv/algorithms/timedomain"
	"github.com/RyanBlaney/corazon-hrv/hrv/config"
	"github.com/RyanBlaney/corazon-hrv/logging"
)

// AnalysisMetrics is the flat record of time-domain, frequency-domain and
// coherence metrics produced for one analysis pass.
type AnalysisMetrics struct {
	MeanHR float64 `json:"mean_hr"` // beats per minute
	MeanRR float64 `json:"mean_rr"` // seconds
	SDNN   float64 `json:"sdnn"`    // seconds
	RMSSD  float64 `json:"rmssd"`   // seconds
	PNN50  float64 `json:"pnn50"`   // percent

	LFPower    float64 `json:"lf_power"`    // 0.04-0.15 Hz
	HFPower    float64 `json:"hf_power"`    // 0.15-0.4 Hz
	TotalPower float64 `json:"total_power"` // 0.04-0.4 Hz

	CoherenceScore  float64 `json:"coherence_score"`
	PeakFrequencyHz float64 `json:"peak_frequency_hz"`
	PeakPower       float64 `json:"peak_power"`
	TargetBandPower float64 `json:"target_band_power"`
}

// AnalysisResult bundles the metrics with the spectrum and the cleaned
// series they were computed from. All fields serialize to JSON for the
// report/export layer.
type AnalysisResult struct {
	Metrics           AnalysisMetrics `json:"metrics"`
	PSD               spectral.PSD    `json:"psd"`
	CleanedTimestamps []float64       `json:"cleaned_timestamps"`
	CleanedIntervals  []float64       `json:"cleaned_intervals"`
}

// Analyzer runs the batch HRV pipeline: artifact rejection, time-domain
// metrics, uniform resampling, Welch PSD estimation and coherence scoring.
// Each invocation is an isolated, stateless computation over immutable
// inputs; an Analyzer is safe to share across goroutines.
type Analyzer struct {
	config *config.AnalysisConfig
	filter *artifact.Filter
	welch  *spectral.Welch
	scorer *spectral.CoherenceScorer
	logger logging.Logger
}

// NewAnalyzer creates an analyzer with the default configuration
func NewAnalyzer() *Analyzer {
	return NewAnalyzerWithConfig(config.DefaultAnalysisConfig())
}

// NewAnalyzerWithConfig creates an analyzer with a custom configuration
func NewAnalyzerWithConfig(cfg *config.AnalysisConfig) *Analyzer {
	if cfg == nil {
		cfg = config.DefaultAnalysisConfig()
	}

	return &Analyzer{
		config: cfg,
		filter: artifact.NewFilterWithParams(cfg.Artifact),
		welch:  spectral.NewWelchWithParams(cfg.Welch),
		scorer: spectral.NewCoherenceScorerWithParams(cfg.Coherence),
		logger: logging.WithFields(logging.Fields{"component": "hrv.analyzer"}),
	}
}

// Analyze runs the full pipeline over a timestamped interval series with a
// target breathing frequency. The two input slices must have equal length;
// a mismatch is reported as an error before any computation runs. Sparse
// input is not an error: too few samples at any stage degrade to zero
// metrics and an empty spectrum, so the result is always structurally
// complete. Any panic escaping the numeric stages is reported as the
// single error of the invocation.
func (a *Analyzer) Analyze(timestamps, intervals []float64, targetHz float64) (result *AnalysisResult, err error) {
	if len(timestamps) != len(intervals) {
		return nil, fmt.Errorf("length mismatch: %d timestamps, %d intervals", len(timestamps), len(intervals))
	}

	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = fmt.Errorf("analysis failed: %v", r)
			a.logger.Error(err, "pipeline panic recovered")
		}
	}()

	cleanedTs, cleanedRr := a.filter.Apply(timestamps, intervals)

	a.logger.Debug("artifact filter applied", logging.Fields{
		"input_samples": len(intervals),
		"kept_samples":  len(cleanedRr),
	})

	td := timedomain.Compute(cleanedRr)

	signal := resample.Uniform(cleanedTs, cleanedRr, a.config.SampleRate)
	psd := a.welch.Compute(signal, a.config.SampleRate)

	if psd.Empty() && len(intervals) > 0 {
		a.logger.Warn("insufficient data for spectral analysis", logging.Fields{
			"resampled_samples": len(signal),
		})
	}

	coherence := a.scorer.Score(psd, targetHz)

	metrics := AnalysisMetrics{
		MeanHR:          td.MeanHR,
		MeanRR:          td.MeanRR,
		SDNN:            td.SDNN,
		RMSSD:           td.RMSSD,
		PNN50:           td.PNN50,
		LFPower:         spectral.BandPower(psd, a.config.LFBand[0], a.config.LFBand[1]),
		HFPower:         spectral.BandPower(psd, a.config.HFBand[0], a.config.HFBand[1]),
		TotalPower:      coherence.TotalPower,
		CoherenceScore:  coherence.Score,
		PeakFrequencyHz: coherence.PeakFrequencyHz,
		PeakPower:       coherence.PeakPower,
		TargetBandPower: coherence.TargetBandPower,
	}

	return &AnalysisResult{
		Metrics:           metrics,
		PSD:               psd,
		CleanedTimestamps: cleanedTs,
		CleanedIntervals:  cleanedRr,
	}, nil
}
