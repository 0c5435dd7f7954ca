package spectral

// BandPower integrates a PSD over [lowHz, highHz] with the trapezoid rule.
// A trapezoid is included whenever its frequency interval overlaps the band
// with positive measure; no clipping is performed at the band edges, so a
// trapezoid straddling an edge contributes in full. Returns 0 for an empty
// or malformed estimate.
func BandPower(psd PSD, lowHz, highHz float64) float64 {
	n := len(psd.Frequencies)
	if n < 2 || len(psd.Power) != n || highHz <= lowHz {
		return 0.0
	}

	total := 0.0
	for i := 0; i < n-1; i++ {
		f0 := psd.Frequencies[i]
		f1 := psd.Frequencies[i+1]

		if f1 <= lowHz || f0 >= highHz {
			continue
		}

		total += (psd.Power[i] + psd.Power[i+1]) / 2.0 * (f1 - f0)
	}

	return total
}
