// Package cli provides the command-line interface for palettegen.
package cli

import (
	"fmt"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/palettegen/internal/version"
)

// rootOptions holds state shared by all subcommands.
type rootOptions struct {
	verbose bool
	quiet   bool

	logger hclog.Logger
	env    envConfig
}

// NewRootCmd builds the palettegen command tree.
func NewRootCmd() *cobra.Command {
	return newRootCmd(newFFmpegSource)
}

func newRootCmd(openVideo frameSourceFunc) *cobra.Command {
	opts := &rootOptions{logger: hclog.NewNullLogger()}

	rootCmd := &cobra.Command{
		Use:   "palettegen",
		Short: "Extract colour palettes from images and videos",
		Long: `palettegen extracts a palette of representative colours from an image by
clustering sampled pixels, or a sequence of dominant colours from a video by
sampling frames at a fixed rate.

Palettes can be printed as text, hex, rgb, a table or JSON, and exported as a
PNG swatch.`,
		Version:      version.Short(),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			opts.logger = newLogger(cmd.ErrOrStderr(), opts.verbose, opts.quiet)

			env, err := loadEnvConfig()
			if err != nil {
				return err
			}
			opts.env = env
			return nil
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&opts.quiet, "quiet", "q", false, "suppress non-error output")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newExtractCmd(opts))
	rootCmd.AddCommand(newVideoCmd(opts, openVideo))

	return rootCmd
}

// newVersionCmd creates the version command.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}
