// pkg/audio/constants.go
package audio

const (
	// SampleRate is the test tone sample rate in Hz
	SampleRate = 22050
	// DurationSeconds is the test tone length
	DurationSeconds = 5
	// Frequency is the fundamental (A4)
	Frequency = 440.0
	// Amplitude scales the whole waveform
	Amplitude = 0.3
	// HarmonicRatio is the second harmonic level relative to the fundamental
	HarmonicRatio = 0.1

	// Channels is the number of audio channels (1 = mono)
	Channels = 1
	// BitDepth is the PCM bit depth of the WAV output
	BitDepth = 16

	// NumSamples is SampleRate * DurationSeconds
	NumSamples = SampleRate * DurationSeconds

	// PeakAmplitude bounds |x(t)|
	PeakAmplitude = Amplitude * (1 + HarmonicRatio)
)

// Output file names, relative to the working directory
const (
	WAVFile = "test_audio.wav"
	MP3File = "test_audio.mp3"
)

// StepName identifies the generator in run reports
const StepName = "audio"

// wavFormatPCM is the WAVE_FORMAT_PCM tag
const wavFormatPCM = 1
