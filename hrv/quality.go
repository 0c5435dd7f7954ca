package hrv

import (
	"math"
	"sync"
	"time"

	"github.com/RyanBlaney/corazon-hrv/algorithms/common"
	"github.com/RyanBlaney/corazon-hrv/hrv/config"
)

// QualityLabel is the human-readable classification of the live signal
type QualityLabel string

const (
	QualityExcellent QualityLabel = "Excellent"
	QualityGood      QualityLabel = "Good"
	QualityFair      QualityLabel = "Fair"
	QualityPoor      QualityLabel = "Poor"
	QualitySearching QualityLabel = "Searching"
	QualityNoSignal  QualityLabel = "No Signal"
)

// QualityState is the current score/label snapshot of the monitor
type QualityState struct {
	Score int          `json:"score"` // 0-100
	Label QualityLabel `json:"label"`
}

type qualitySample struct {
	at       time.Time
	interval float64
}

// SignalQualityMonitor keeps a short rolling window of raw beat intervals
// and scores it for live feedback. Unlike the batch pipeline it never
// rejects input and never errors: every state of the window maps to a
// score and label.
//
// The monitor is the one piece of continuously mutated state in the
// library. Push and Recompute are the two writers (sample arrival and the
// host's periodic tick); both take the current time explicitly and both
// serialize on an internal lock, since the prune-then-append sequence is
// not atomic otherwise. State may be read concurrently.
type SignalQualityMonitor struct {
	mu          sync.Mutex
	config      *config.QualityConfig
	samples     []qualitySample
	lastArrival time.Time
	state       QualityState
}

// NewSignalQualityMonitor creates a monitor with the default configuration
func NewSignalQualityMonitor() *SignalQualityMonitor {
	return NewSignalQualityMonitorWithConfig(config.DefaultQualityConfig())
}

// NewSignalQualityMonitorWithConfig creates a monitor with a custom configuration
func NewSignalQualityMonitorWithConfig(cfg *config.QualityConfig) *SignalQualityMonitor {
	if cfg == nil {
		cfg = config.DefaultQualityConfig()
	}

	return &SignalQualityMonitor{
		config: cfg,
		state:  QualityState{Score: 0, Label: QualitySearching},
	}
}

// Push records a newly arrived raw interval and recomputes the score
func (m *SignalQualityMonitor) Push(interval float64, now time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.samples = append(m.samples, qualitySample{at: now, interval: interval})
	m.lastArrival = now
	m.recompute(now)
}

// Recompute re-scores the window against the current time without adding
// a sample. The host calls this on its feedback cadence so staleness is
// reflected even when no beats arrive.
func (m *SignalQualityMonitor) Recompute(now time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.recompute(now)
}

// Reset clears the window, e.g. on a session boundary
func (m *SignalQualityMonitor) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.samples = nil
	m.lastArrival = time.Time{}
	m.state = QualityState{Score: 0, Label: QualitySearching}
}

// State returns the most recent score/label snapshot
func (m *SignalQualityMonitor) State() QualityState {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.state
}

// recompute prunes the window and rebuilds the state. Callers hold the lock.
func (m *SignalQualityMonitor) recompute(now time.Time) {
	window := time.Duration(m.config.WindowSec * float64(time.Second))
	kept := m.samples[:0]
	for _, s := range m.samples {
		if now.Sub(s.at) <= window {
			kept = append(kept, s)
		}
	}
	m.samples = kept

	staleness := math.Inf(1)
	if !m.lastArrival.IsZero() {
		staleness = now.Sub(m.lastArrival).Seconds()
	}
	stale := staleness > m.config.StaleAfterSec

	if len(m.samples) < m.config.MinSamples {
		if stale {
			m.state = QualityState{Score: 0, Label: QualityNoSignal}
		} else {
			m.state = QualityState{Score: 0, Label: QualitySearching}
		}
		return
	}

	intervals := make([]float64, len(m.samples))
	for i, s := range m.samples {
		intervals[i] = s.interval
	}

	inRange := make([]float64, 0, len(intervals))
	for _, v := range intervals {
		if v >= m.config.MinInterval && v <= m.config.MaxInterval {
			inRange = append(inRange, v)
		}
	}

	if len(inRange) == 0 {
		m.state = QualityState{Score: 0, Label: QualityPoor}
		return
	}

	validRatio := float64(len(inRange)) / float64(len(intervals))

	// Robust outlier fraction over the whole window, not localized
	outlierRatio := 0.0
	scaledMAD := common.MAD(inRange)
	if scaledMAD > 0 {
		median := common.Median(inRange)
		outliers := 0
		for _, v := range inRange {
			if math.Abs(v-median) > m.config.OutlierThreshold*scaledMAD {
				outliers++
			}
		}
		outlierRatio = float64(outliers) / float64(len(inRange))
	}

	cv := common.CoefficientOfVariation(inRange)
	stabilityScore := common.Clamp(1.0-cv/m.config.CVNormalization, 0, 1)
	freshnessScore := common.Clamp(1.0-staleness/m.config.FreshnessHorizonSec, 0, 1)

	composite := 100.0 * (m.config.WeightValid*validRatio +
		m.config.WeightOutlier*(1.0-outlierRatio) +
		m.config.WeightStability*stabilityScore +
		m.config.WeightFreshness*freshnessScore)

	score := int(math.Round(common.Clamp(composite, 0, 100)))
	if stale {
		score = 0
	}

	m.state = QualityState{Score: score, Label: m.label(score, stale)}
}

func (m *SignalQualityMonitor) label(score int, stale bool) QualityLabel {
	switch {
	case score >= m.config.ExcellentAt:
		return QualityExcellent
	case score >= m.config.GoodAt:
		return QualityGood
	case score >= m.config.FairAt:
		return QualityFair
	case score > 0:
		return QualityPoor
	case stale:
		return QualityNoSignal
	default:
		return QualitySearching
	}
}
