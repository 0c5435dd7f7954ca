package hrv

import (
	"time"

	"github.com/google/uuid"
)

// SessionReport is the post-session record handed to the storage/export
// layer. It is a plain serializable value; the core mandates no wire
// format beyond JSON-compatible fields.
type SessionReport struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`

	// Span of the cleaned series that was analyzed, seconds
	DurationSec float64 `json:"duration_sec"`

	Analysis    AnalysisResult      `json:"analysis"`
	Calibration *CalibrationSummary `json:"calibration,omitempty"`

	// Breathing rate of the best calibration point, 0 when no
	// calibration was run or nothing scored
	RecommendedBreathsPerMin float64 `json:"recommended_breaths_per_min,omitempty"`
}

// NewSessionReport assembles a report from an analysis result and an
// optional calibration summary.
func NewSessionReport(analysis *AnalysisResult, calibration *CalibrationSummary) *SessionReport {
	report := &SessionReport{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
	}

	if analysis != nil {
		report.Analysis = *analysis
		if n := len(analysis.CleanedTimestamps); n >= 2 {
			report.DurationSec = analysis.CleanedTimestamps[n-1] - analysis.CleanedTimestamps[0]
		}
	}

	if calibration != nil {
		report.Calibration = calibration
		if calibration.Best != nil {
			report.RecommendedBreathsPerMin = calibration.Best.BreathsPerMin
		}
	}

	return report
}
