// Package video samples dominant colours from video frames.
package video

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"strconv"

	ffmpeg "github.com/u2takey/ffmpeg-go"

	imgutil "github.com/jmylchreest/palettegen/internal/image"
)

// FrameSource provides seekable access to the frames of a video.
type FrameSource interface {
	// Duration returns the length of the video in seconds.
	Duration(ctx context.Context) (float64, error)
	// FrameAt returns the frame shown at the given offset, drawn onto a video surface.
	FrameAt(ctx context.Context, seconds float64) (*image.NRGBA, error)
}

// probeFormat is the subset of ffprobe output we read.
type probeFormat struct {
	Format struct {
		Duration string `json:"duration"`
	} `json:"format"`
}

// FFmpegSource reads frames from a video file using the ffmpeg and ffprobe binaries.
type FFmpegSource struct {
	path    string
	surface image.Point
}

// NewFFmpegSource creates a FrameSource for the video at path.
func NewFFmpegSource(path string) *FFmpegSource {
	return &FFmpegSource{
		path:    path,
		surface: imgutil.VideoSurface,
	}
}

// Duration probes the container duration.
func (s *FFmpegSource) Duration(ctx context.Context) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	out, err := ffmpeg.Probe(s.path)
	if err != nil {
		return 0, fmt.Errorf("ffprobe error: %w", err)
	}
	return parseDuration(out)
}

// parseDuration reads the container duration from ffprobe JSON output.
func parseDuration(probeJSON string) (float64, error) {
	var probe probeFormat
	if err := json.Unmarshal([]byte(probeJSON), &probe); err != nil {
		return 0, fmt.Errorf("failed to parse probe output: %w", err)
	}
	if probe.Format.Duration == "" {
		return 0, fmt.Errorf("video duration unknown")
	}

	duration, err := strconv.ParseFloat(probe.Format.Duration, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid video duration %q: %w", probe.Format.Duration, err)
	}
	return duration, nil
}

// FrameAt seeks to seconds and decodes a single frame as PNG.
func (s *FFmpegSource) FrameAt(ctx context.Context, seconds float64) (*image.NRGBA, error) {
	var stdout, stderr bytes.Buffer

	stream := ffmpeg.Input(s.path, ffmpeg.KwArgs{"ss": strconv.FormatFloat(seconds, 'f', 3, 64)}).
		Output("pipe:1", ffmpeg.KwArgs{
			"vframes": 1,
			"format":  "image2",
			"vcodec":  "png",
		}).
		WithOutput(&stdout).
		WithErrorOutput(&stderr)
	stream.Context = ctx

	if err := stream.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("ffmpeg failed at %.3fs: %w: %s", seconds, err, bytes.TrimSpace(stderr.Bytes()))
	}

	frame, err := png.Decode(&stdout)
	if err != nil {
		return nil, fmt.Errorf("failed to decode frame at %.3fs: %w", seconds, err)
	}

	return imgutil.Surface(frame, s.surface), nil
}
