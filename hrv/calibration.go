package hrv

import (
	"github.com/RyanBlaney/corazon-hrv/hrv/config"
	"github.com/RyanBlaney/corazon-hrv/logging"
)

// CalibrationPoint records the outcome of one candidate breathing
// frequency during a calibration scan.
type CalibrationPoint struct {
	FrequencyHz     float64 `json:"frequency_hz"`
	BreathsPerMin   float64 `json:"breaths_per_min"`
	Score           float64 `json:"score"`
	PeakFrequencyHz float64 `json:"peak_frequency_hz"`
	PeakPower       float64 `json:"peak_power"`
}

// CalibrationSummary is the ordered scan result. Best points at the
// element with the strictly greatest score, nil when no candidates were
// scanned.
type CalibrationSummary struct {
	Points []CalibrationPoint `json:"points"`
	Best   *CalibrationPoint  `json:"best,omitempty"`
}

// CalibrationScanner partitions a raw interval series into fixed-duration
// time segments, one per candidate frequency, and scores each segment with
// the full analysis pipeline. Segments run sequentially so results arrive
// in candidate order and only one analysis is ever in flight.
type CalibrationScanner struct {
	analyzer *Analyzer
	config   *config.CalibrationConfig
	logger   logging.Logger
}

// NewCalibrationScanner creates a scanner with the default configuration
func NewCalibrationScanner(analyzer *Analyzer) *CalibrationScanner {
	return NewCalibrationScannerWithConfig(analyzer, config.DefaultCalibrationConfig())
}

// NewCalibrationScannerWithConfig creates a scanner with a custom configuration
func NewCalibrationScannerWithConfig(analyzer *Analyzer, cfg *config.CalibrationConfig) *CalibrationScanner {
	if analyzer == nil {
		analyzer = NewAnalyzer()
	}
	if cfg == nil {
		cfg = config.DefaultCalibrationConfig()
	}

	return &CalibrationScanner{
		analyzer: analyzer,
		config:   cfg,
		logger:   logging.WithFields(logging.Fields{"component": "hrv.calibration"}),
	}
}

// Scan slices the raw series into len(frequencies) contiguous segments of
// stepSec seconds and scores each against its candidate frequency. The
// scan never fails: a segment with too few samples, or one whose analysis
// errors, yields a zero-valued point for its candidate. Segment bounds are
// inclusive on both edges, so a sample lying exactly on a boundary
// contributes to both adjacent segments.
func (s *CalibrationScanner) Scan(timestamps, intervals, frequencies []float64, stepSec float64) CalibrationSummary {
	if stepSec <= 0 {
		stepSec = s.config.StepSec
	}

	n := len(timestamps)
	if len(intervals) < n {
		n = len(intervals)
	}

	summary := CalibrationSummary{
		Points: make([]CalibrationPoint, 0, len(frequencies)),
	}

	for i, freq := range frequencies {
		segStart := float64(i) * stepSec
		segEnd := float64(i+1) * stepSec

		segTs := make([]float64, 0, n)
		segRr := make([]float64, 0, n)
		for j := 0; j < n; j++ {
			if timestamps[j] >= segStart && timestamps[j] <= segEnd {
				segTs = append(segTs, timestamps[j])
				segRr = append(segRr, intervals[j])
			}
		}

		point := CalibrationPoint{
			FrequencyHz:   freq,
			BreathsPerMin: freq * 60.0,
		}

		if len(segRr) >= s.config.MinSegmentSamples {
			result, err := s.analyzer.Analyze(segTs, segRr, freq)
			if err != nil {
				s.logger.Warn("segment analysis failed, scoring zero", logging.Fields{
					"segment": i,
					"error":   err.Error(),
				})
			} else {
				point.Score = result.Metrics.CoherenceScore
				point.PeakFrequencyHz = result.Metrics.PeakFrequencyHz
				point.PeakPower = result.Metrics.PeakPower
			}
		} else {
			s.logger.Debug("segment too sparse, scoring zero", logging.Fields{
				"segment": i,
				"samples": len(segRr),
			})
		}

		summary.Points = append(summary.Points, point)
	}

	// First-seen maximum: later candidates only win on a strictly
	// greater score.
	for i := range summary.Points {
		if summary.Best == nil || summary.Points[i].Score > summary.Best.Score {
			best := summary.Points[i]
			summary.Best = &best
		}
	}

	return summary
}
