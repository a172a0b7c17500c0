package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/palettegen/internal/colour"
	"github.com/jmylchreest/palettegen/internal/video"
)

// frameSourceFunc opens a FrameSource for a video path.
type frameSourceFunc func(path string) video.FrameSource

func newFFmpegSource(path string) video.FrameSource {
	return video.NewFFmpegSource(path)
}

// videoOptions holds the video command flags.
type videoOptions struct {
	rate   video.FrameRate
	format string
	output string
	stride int
}

// newVideoCmd creates the video command.
func newVideoCmd(root *rootOptions, open frameSourceFunc) *cobra.Command {
	opts := &videoOptions{rate: video.DefaultFrameRate}

	cmd := &cobra.Command{
		Use:   "video <file>",
		Short: "Extract the dominant colour of each sampled video frame",
		Long: `Extract a sequence of dominant colours from a video.

Frames are sampled at 1, 2 or 5 frames per second of video. Each frame is
drawn onto a surface of at most 400x300 and its most frequent sampled colour
is reported. Frames without opaque pixels report black.

Requires ffmpeg and ffprobe on PATH.

Examples:
  # Two frames per second (default)
  palettegen video clip.mp4

  # One frame per second as JSON
  palettegen video --rate 1 -f json clip.mp4`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVideo(cmd, root, opts, open, args[0])
		},
	}

	cmd.Flags().Var(&opts.rate, "rate", "frames sampled per second of video (1, 2, 5)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", formatText, "output format (text, table, json)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().IntVar(&opts.stride, "stride", colour.DefaultStride, "sampling stride in bytes (multiple of 4)")

	return cmd
}

// runVideo executes the video command.
func runVideo(cmd *cobra.Command, root *rootOptions, opts *videoOptions, open frameSourceFunc, path string) error {
	logger := root.logger.Named("video")

	if flagUnset(cmd, "rate") && root.env.frameRate != nil {
		opts.rate = *root.env.frameRate
	}

	if err := validateFormat(opts.format, videoFormats); err != nil {
		return err
	}
	if opts.stride <= 0 || opts.stride%4 != 0 {
		return fmt.Errorf("invalid configuration: stride must be a positive multiple of 4, got %d", opts.stride)
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("invalid video path: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("invalid video path: %s is a directory", path)
	}

	sampler := video.NewSampler(opts.stride, logger)
	palette, err := sampler.Run(cmd.Context(), open(path), opts.rate)
	if err != nil {
		return fmt.Errorf("failed to sample video: %w", err)
	}

	if palette.Len() == 0 {
		logger.Warn("video too short to sample at this rate", "path", path, "rate", int(opts.rate))
	} else {
		logger.Debug("sampled video", "frames", palette.Len())
	}

	output, err := formatPalette(palette, opts.format, opts.output == "" && isTerminal(cmd.OutOrStdout()))
	if err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}

	return writeOutput(cmd, logger, opts.output, output)
}
