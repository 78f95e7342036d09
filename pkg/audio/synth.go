package audio

import "math"

// Synthesize returns NumSamples samples of
//
//	x(t) = Amplitude * (sin(2π·f·t) + HarmonicRatio·sin(2π·2f·t))
//
// with t evenly spaced over [0, DurationSeconds], both endpoints included.
func Synthesize() []float64 {
	return SynthesizeTone(SampleRate, DurationSeconds, Frequency)
}

// SynthesizeTone is Synthesize with explicit parameters
func SynthesizeTone(sampleRate, seconds int, freq float64) []float64 {
	n := sampleRate * seconds
	if n <= 0 {
		return nil
	}

	samples := make([]float64, n)
	step := 0.0
	if n > 1 {
		step = float64(seconds) / float64(n-1)
	}

	for i := range samples {
		t := float64(i) * step
		samples[i] = Amplitude * (math.Sin(2*math.Pi*freq*t) +
			HarmonicRatio*math.Sin(2*math.Pi*2*freq*t))
	}
	return samples
}

// Peak returns the largest absolute sample value
func Peak(samples []float64) float64 {
	peak := 0.0
	for _, s := range samples {
		if a := math.Abs(s); a > peak {
			peak = a
		}
	}
	return peak
}
