package resample

// Uniform converts an irregularly-timed series into a fixed-rate signal by
// linear interpolation between bracketing samples. Timestamps must be
// sorted ascending; the cursor only ever advances, so the series is walked
// once regardless of the output length.
//
// Returns an empty signal when fewer than 2 points are given or the time
// span is not positive.
func Uniform(timestamps, values []float64, sampleRate float64) []float64 {
	n := len(timestamps)
	if n < 2 || len(values) != n || sampleRate <= 0 {
		return []float64{}
	}

	tStart := timestamps[0]
	tEnd := timestamps[n-1]
	if tEnd <= tStart {
		return []float64{}
	}

	numSamples := int((tEnd-tStart)*sampleRate) + 1
	signal := make([]float64, 0, numSamples)

	cursor := 0
	step := 1.0 / sampleRate

	for k := 0; k < numSamples; k++ {
		t := tStart + float64(k)*step
		if t > tEnd {
			break
		}

		// Advance to the bracketing source interval
		for cursor < n-2 && timestamps[cursor+1] < t {
			cursor++
		}

		t0 := timestamps[cursor]
		t1 := timestamps[cursor+1]

		// Degenerate zero-length source interval, nothing to interpolate
		if t1 <= t0 {
			continue
		}

		frac := (t - t0) / (t1 - t0)
		if frac < 0 {
			frac = 0
		}
		if frac > 1 {
			frac = 1
		}

		signal = append(signal, values[cursor]+frac*(values[cursor+1]-values[cursor]))
	}

	return signal
}
