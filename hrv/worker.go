package hrv

import (
	"context"
	"fmt"
	"sync"
)

type analysisRequest struct {
	timestamps []float64
	intervals  []float64
	targetHz   float64
	reply      chan analysisResponse
}

type analysisResponse struct {
	result *AnalysisResult
	err    error
}

// AnalysisWorker runs an Analyzer on a dedicated goroutine with a
// request/response channel, keeping batch analyses off the live-feedback
// path. One request is in flight at a time; callers that share a worker
// serialize on its channel. There is no mid-flight cancellation: a caller
// that stops waiting simply abandons the response, and the computation
// runs to completion.
type AnalysisWorker struct {
	analyzer  *Analyzer
	requests  chan analysisRequest
	done      chan struct{}
	closeOnce sync.Once
}

// NewAnalysisWorker starts a worker around the given analyzer. A nil
// analyzer gets the default configuration.
func NewAnalysisWorker(analyzer *Analyzer) *AnalysisWorker {
	if analyzer == nil {
		analyzer = NewAnalyzer()
	}

	w := &AnalysisWorker{
		analyzer: analyzer,
		requests: make(chan analysisRequest),
		done:     make(chan struct{}),
	}
	go w.run()

	return w
}

func (w *AnalysisWorker) run() {
	for {
		select {
		case req := <-w.requests:
			result, err := w.analyzer.Analyze(req.timestamps, req.intervals, req.targetHz)
			req.reply <- analysisResponse{result: result, err: err}
		case <-w.done:
			return
		}
	}
}

// Analyze submits one request and blocks until its response arrives, the
// context is cancelled, or the worker is closed. A cancelled wait discards
// the eventual result; the reply channel is buffered so the worker never
// blocks on an abandoned response.
func (w *AnalysisWorker) Analyze(ctx context.Context, timestamps, intervals []float64, targetHz float64) (*AnalysisResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	req := analysisRequest{
		timestamps: timestamps,
		intervals:  intervals,
		targetHz:   targetHz,
		reply:      make(chan analysisResponse, 1),
	}

	select {
	case w.requests <- req:
	case <-w.done:
		return nil, fmt.Errorf("analysis worker closed")
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	select {
	case resp := <-req.reply:
		return resp.result, resp.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Close stops the worker goroutine. Requests submitted after Close fail;
// a request already being processed completes and its response is
// delivered.
func (w *AnalysisWorker) Close() {
	w.closeOnce.Do(func() {
		close(w.done)
	})
}
