package audio

import (
	"context"
	"errors"
	"fmt"

	"github.com/dj-ai/djfix/pkg/core"
)

// ErrEncoderNotFound is returned when no MP3 encoder binary is available
var ErrEncoderNotFound = errors.New("mp3 encoder not found")

// MP3Converter re-encodes a WAV file to MP3 by shelling out to ffmpeg
type MP3Converter struct {
	FFmpegPath string // Default: "ffmpeg"
	Available  bool   // Whether FFmpegPath resolved on PATH
	Runner     core.Runner
}

// Convert reads src back to make sure it decodes, then encodes dst with
// libmp3lame, overwriting dst.
func (c *MP3Converter) Convert(ctx context.Context, src, dst string) error {
	if !c.Available || c.Runner == nil {
		return ErrEncoderNotFound
	}

	if _, _, err := ReadWAV(src); err != nil {
		return fmt.Errorf("reading source: %w", err)
	}

	bin := c.FFmpegPath
	if bin == "" {
		bin = "ffmpeg"
	}

	args := []string{
		"-y",
		"-hide_banner",
		"-loglevel", "error",
		"-i", src,
		"-codec:a", "libmp3lame",
		"-q:a", "2",
		dst,
	}
	if err := c.Runner.Run(ctx, bin, args...); err != nil {
		return fmt.Errorf("ffmpeg: %w", err)
	}
	return nil
}
