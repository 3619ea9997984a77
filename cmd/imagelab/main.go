package main

import (
	"fmt"
	"os"

	"imagelab/internal/config"
	"imagelab/internal/logger"
	"imagelab/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("imagelab %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("imagelab - interactive image analysis demo server")
			fmt.Println()
			fmt.Println("Usage: imagelab [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Println("  IMAGELAB_ADDR             Listen address (default :8080)")
			fmt.Println("  IMAGELAB_MAX_UPLOAD_MB    Upload size cap in MiB (default 16)")
			fmt.Println("  IMAGELAB_GRID_ROWS        Default grid rows (default 4)")
			fmt.Println("  IMAGELAB_GRID_COLS        Default grid columns (default 4)")
			fmt.Println("  IMAGELAB_MIN_AREA         Default detection minimum area (default 500)")
			fmt.Println("  IMAGELAB_LOG_LEVEL        debug, info, warn or error (default info)")
			fmt.Println()
			fmt.Println("Upload an image to POST /api/{op} with op one of: grayscale,")
			fmt.Println("rotate, mirror, grid, edges, detect, properties.")
			return
		}
	}

	cfg := config.Load()
	log := logger.NewConsole(os.Stderr, cfg.LogLevel)
	log.Debug().Str("version", Version).Str("build_time", BuildTime).Str("commit", GitCommit).Msg("starting")

	srv := server.New(cfg, log)
	if err := srv.Run(); err != nil {
		log.Fatal().Err(err).Msg("server error")
	}
}
