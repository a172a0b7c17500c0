package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/palettegen/internal/video"
)

// Environment variables read as defaults for unset flags.
const (
	EnvColours   = "PALETTEGEN_COLOURS"
	EnvAlgorithm = "PALETTEGEN_ALGORITHM"
	EnvSeedMode  = "PALETTEGEN_SEED_MODE"
	EnvSeed      = "PALETTEGEN_SEED"
	EnvFrameRate = "PALETTEGEN_FRAME_RATE"
)

// envConfig holds settings taken from the environment. Nil and empty fields
// were not set.
type envConfig struct {
	colours   *int
	algorithm string
	seedMode  string
	seed      *int64
	frameRate *video.FrameRate
}

// loadEnvConfig reads a .env file from the working directory, if present, then
// parses the PALETTEGEN_ variables. Variables already in the environment take
// precedence over the file.
func loadEnvConfig() (envConfig, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return envConfig{}, fmt.Errorf("failed to load .env file: %w", err)
	}

	var cfg envConfig

	if v := os.Getenv(EnvColours); v != "" {
		n, err := cast.ToIntE(decimal(v))
		if err != nil {
			return envConfig{}, fmt.Errorf("invalid %s: %w", EnvColours, err)
		}
		cfg.colours = &n
	}

	cfg.algorithm = os.Getenv(EnvAlgorithm)
	cfg.seedMode = os.Getenv(EnvSeedMode)

	if v := os.Getenv(EnvSeed); v != "" {
		n, err := cast.ToInt64E(decimal(v))
		if err != nil {
			return envConfig{}, fmt.Errorf("invalid %s: %w", EnvSeed, err)
		}
		cfg.seed = &n
	}

	if v := os.Getenv(EnvFrameRate); v != "" {
		rate, err := video.ParseFrameRate(decimal(v))
		if err != nil {
			return envConfig{}, fmt.Errorf("invalid %s: %w", EnvFrameRate, err)
		}
		cfg.frameRate = &rate
	}

	return cfg, nil
}

// decimal strips leading zeros so cast reads v in base 10 rather than as an
// octal or hex literal.
func decimal(v string) string {
	v = strings.TrimSpace(v)
	sign := ""
	if strings.HasPrefix(v, "-") || strings.HasPrefix(v, "+") {
		sign, v = v[:1], v[1:]
	}
	if v = strings.TrimLeft(v, "0"); v == "" {
		v = "0"
	}
	return sign + v
}

// flagUnset reports whether a flag was left at its default on the command line.
func flagUnset(cmd *cobra.Command, name string) bool {
	return !cmd.Flags().Changed(name)
}
