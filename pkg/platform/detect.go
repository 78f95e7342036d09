// pkg/platform/detect.go
package platform

import (
	"fmt"
	"runtime"
)

// Python interpreters probed in order of preference
var pythonCandidates = []string{"python3", "python"}

// Platform represents the detected system platform
type Platform struct {
	OS        string   // linux, darwin, windows
	Arch      string   // amd64, arm64, 386, arm
	Pythons   []string // Python interpreters found on PATH
	Preferred string   // Preferred interpreter
	FFmpeg    bool     // Whether ffmpeg is available for MP3 encoding
}

// Detect detects the current platform and the tools djfix shells out to
func Detect() *Platform {
	p := &Platform{
		OS:      runtime.GOOS,
		Arch:    runtime.GOARCH,
		Pythons: []string{},
	}

	for _, name := range pythonCandidates {
		if commandExists(name) {
			p.Pythons = append(p.Pythons, name)
		}
	}
	if len(p.Pythons) > 0 {
		p.Preferred = p.Pythons[0]
	}

	p.FFmpeg = commandExists("ffmpeg")

	return p
}

// String returns a string representation of the platform
func (p *Platform) String() string {
	return fmt.Sprintf("%s/%s (pythons: %v, preferred: %s, ffmpeg: %v)",
		p.OS, p.Arch, p.Pythons, p.Preferred, p.FFmpeg)
}
