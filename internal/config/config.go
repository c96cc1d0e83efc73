package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"

	"github.com/faizmokh/belajar/internal/render"
)

// Config holds start-up settings for one run of belajar.
type Config struct {
	LogPath  string
	OutPath  string
	LogLevel string
	Palette  render.Palette
}

// DefaultEnvFile is read from the working directory when present.
const DefaultEnvFile = ".env"

// DefaultOutPath is where the svg command writes unless told otherwise.
const DefaultOutPath = "image.svg"

// Load reads envFile (if it exists) into the process environment, then builds
// a Config from environment variables. Variables already set take precedence
// over the file.
func Load(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, err
		}
	}

	defaults := render.DefaultPalette()
	cfg := Config{
		LogPath:  getenv("BELAJAR_LOG", os.Getenv("DATAPATH")),
		OutPath:  getenv("BELAJAR_OUT", DefaultOutPath),
		LogLevel: getenv("BELAJAR_LOG_LEVEL", "info"),
		Palette: render.Palette{
			Background: getenv("BELAJAR_COLOR_BACKGROUND", defaults.Background),
			Header:     getenv("BELAJAR_COLOR_HEADER", defaults.Header),
			Block:      getenv("BELAJAR_COLOR_BLOCK", defaults.Block),
			Text:       getenv("BELAJAR_COLOR_TEXT", defaults.Text),
		},
	}
	if err := cfg.Palette.Validate(); err != nil {
		return Config{}, fmt.Errorf("palette: %w", err)
	}
	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
