package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/palettegen/internal/colour"
	"github.com/jmylchreest/palettegen/internal/image"
	"github.com/jmylchreest/palettegen/internal/seed"
)

// extractOptions holds the extract command flags.
type extractOptions struct {
	colours   int
	algorithm string
	format    string
	output    string
	swatch    string
	preview   bool
	seedMode  string
	seedValue int64
	stride    int
}

// newExtractCmd creates the extract command.
func newExtractCmd(root *rootOptions) *cobra.Command {
	opts := &extractOptions{}

	cmd := &cobra.Command{
		Use:   "extract <image|directory>",
		Short: "Extract a colour palette from an image",
		Long: `Extract a colour palette from an image.

The image is drawn onto a sampling surface of at most 800x600, every eighth
pixel with alpha above 128 is sampled, and the samples are clustered. Each
palette entry is a cluster centre, ordered by how many samples it represents.

When given a directory, a random supported image inside it is used.

Supported image formats: JPEG, PNG, GIF, WebP

Examples:
  # Extract 5 colours (default) from an image
  palettegen extract wallpaper.jpg

  # Extract 8 colours as JSON
  palettegen extract -c 8 -f json wallpaper.png

  # Save the palette and a PNG swatch
  palettegen extract -o palette.txt --swatch palette.png wallpaper.jpg

  # Reproduce a palette with a fixed seed
  palettegen extract --seed-mode manual --seed 42 wallpaper.jpg

  # Use k-means++ or dominant colour weighting instead
  palettegen extract -a kmeans++ wallpaper.jpg`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExtract(cmd, root, opts, args[0])
		},
	}

	cmd.Flags().IntVarP(&opts.colours, "colours", "c", colour.DefaultColourCount, "number of colours to extract (1-256)")
	cmd.Flags().StringVarP(&opts.algorithm, "algorithm", "a", string(colour.AlgorithmKMeans), "extraction algorithm (kmeans, kmeans++, dominant)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", formatText, "output format (text, hex, rgb, table, json)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().StringVar(&opts.swatch, "swatch", "", "write a PNG swatch of the palette to this file")
	cmd.Flags().BoolVar(&opts.preview, "preview", false, "show colour previews (default: on when stdout is a terminal)")
	cmd.Flags().StringVar(&opts.seedMode, "seed-mode", string(seed.DefaultConfig().Mode), "k-means seed mode (content, filepath, manual, random)")
	cmd.Flags().Int64Var(&opts.seedValue, "seed", 0, "k-means seed value (implies --seed-mode manual)")
	cmd.Flags().IntVar(&opts.stride, "stride", colour.DefaultStride, "sampling stride in bytes (multiple of 4)")

	return cmd
}

// applyEnv fills flags left unset from the environment.
func (o *extractOptions) applyEnv(cmd *cobra.Command, env envConfig) {
	if flagUnset(cmd, "colours") && env.colours != nil {
		o.colours = *env.colours
	}
	if flagUnset(cmd, "algorithm") && env.algorithm != "" {
		o.algorithm = env.algorithm
	}
	if flagUnset(cmd, "seed") && env.seed != nil {
		o.seedValue = *env.seed
	}
	if flagUnset(cmd, "seed-mode") {
		switch {
		case env.seedMode != "":
			o.seedMode = env.seedMode
		case !flagUnset(cmd, "seed") || env.seed != nil:
			o.seedMode = string(seed.ModeManual)
		}
	}
}

// seedConfig converts the seed flags into a seed configuration.
func (o *extractOptions) seedConfig() (seed.Config, error) {
	mode, err := seed.ParseMode(o.seedMode)
	if err != nil {
		return seed.Config{}, err
	}

	config := seed.Config{Mode: mode}
	if mode == seed.ModeManual {
		v := o.seedValue
		config.Value = &v
	}
	return config, nil
}

// runExtract executes the extract command.
func runExtract(cmd *cobra.Command, root *rootOptions, opts *extractOptions, path string) error {
	logger := root.logger.Named("extract")
	opts.applyEnv(cmd, root.env)

	if err := image.ValidateImagePath(path); err != nil {
		return fmt.Errorf("invalid image path: %w", err)
	}

	if err := validateFormat(opts.format, imageFormats); err != nil {
		return err
	}

	seedConfig, err := opts.seedConfig()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	config := colour.ExtractorConfig{
		Algorithm:  colour.Algorithm(opts.algorithm),
		ColorCount: opts.colours,
		Stride:     opts.stride,
	}
	if err := config.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	imagePath, err := image.ResolveImagePath(path)
	if err != nil {
		return fmt.Errorf("failed to resolve image: %w", err)
	}
	if imagePath != path {
		logger.Info("selected image from directory", "path", imagePath)
	}

	img, err := image.NewFileLoader().Load(imagePath)
	if err != nil {
		return fmt.Errorf("failed to load image: %w", err)
	}

	surface := image.Surface(img, image.ImageSurface)
	logger.Debug("image loaded",
		"path", imagePath,
		"size", fmt.Sprintf("%dx%d", img.Bounds().Dx(), img.Bounds().Dy()),
		"surface", fmt.Sprintf("%dx%d", surface.Bounds().Dx(), surface.Bounds().Dy()))

	config.Seed, err = seed.Calculate(img, imagePath, seedConfig)
	if err != nil {
		return fmt.Errorf("failed to calculate seed: %w", err)
	}

	extractor, err := colour.NewExtractor(config)
	if err != nil {
		return fmt.Errorf("failed to create extractor: %w", err)
	}

	logger.Debug("extracting colours",
		"algorithm", config.Algorithm,
		"colours", config.ColorCount,
		"seed_mode", seedConfig.Mode,
		"seed", config.Seed)

	palette, err := extractor.Extract(surface, config.ColorCount)
	if err != nil {
		return fmt.Errorf("failed to extract colours: %w", err)
	}

	if palette.Len() == 0 {
		logger.Warn("no opaque pixels sampled, palette is empty", "path", imagePath)
	} else {
		logger.Debug("extracted palette", "colours", palette.Len(), "samples", palette.Stats().Samples)
	}

	if opts.swatch != "" {
		if err := writeSwatch(opts.swatch, palette); err != nil {
			return err
		}
		if palette.Len() > 0 {
			logger.Info("wrote swatch", "path", opts.swatch)
		} else {
			logger.Warn("skipping swatch for empty palette", "path", opts.swatch)
		}
	}

	showPreview := opts.preview
	if flagUnset(cmd, "preview") {
		showPreview = opts.output == "" && isTerminal(cmd.OutOrStdout())
	}

	output, err := formatPalette(palette, opts.format, showPreview)
	if err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}

	return writeOutput(cmd, logger, opts.output, output)
}

// writeSwatch encodes the palette swatch to path. Empty palettes are skipped.
func writeSwatch(path string, palette *colour.Palette) error {
	if palette.Len() == 0 {
		return nil
	}

	f, err := os.Create(path) // #nosec G304 - User-specified output path
	if err != nil {
		return fmt.Errorf("failed to create swatch file: %w", err)
	}

	if err := colour.EncodeSwatch(f, palette); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write swatch file: %w", err)
	}
	return nil
}
