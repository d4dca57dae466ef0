package main

import (
	"flag"
	"os"
	"path/filepath"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"

	"portfolio-engine/internal/convert"
	"portfolio-engine/internal/logging"
	"portfolio-engine/internal/prefs"
	"portfolio-engine/internal/scene"
	"portfolio-engine/internal/utils"
)

func main() {
	contentPath := flag.String("content", "content.yaml", "Path to the page content file")
	packPath := flag.String("pack", "", "Path to the asset pack (optional)")
	dataDir := flag.String("data", defaultDataDir(), "Directory for preferences and logs")
	debugFlag := flag.Bool("debug", false, "Enable verbose debug logging")
	width := flag.Int("width", 1280, "Window width")
	height := flag.Int("height", 720, "Window height")
	flag.Parse()

	log, err := logging.Init(filepath.Join(*dataDir, "logs"), *debugFlag)
	if err != nil {
		os.Stderr.WriteString("failed to init logging: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer log.Sync()

	log.Info("--- portfolio engine start ---")

	if *packPath != "" {
		unpacked := filepath.Join(*dataDir, "assets-unpacked")
		if _, err := os.Stat(unpacked); os.IsNotExist(err) {
			log.Info("unpacking asset pack", zap.String("pack", *packPath))
			if err := convert.ExtractPack(*packPath, unpacked); err != nil {
				log.Error("failed to extract asset pack", zap.Error(err))
				os.Exit(1)
			}
		}
		utils.SetUnpackedDir(unpacked)
	}

	content, err := scene.LoadContent(*contentPath)
	if err != nil {
		log.Error("failed to load content", zap.Error(err))
		os.Exit(1)
	}
	log.Info("content loaded",
		zap.Int("timeline", len(content.Timeline)),
		zap.Int("signals", len(content.Signals)),
		zap.Int("decor", len(content.Decor)))

	if err := os.MkdirAll(*dataDir, 0755); err != nil {
		log.Error("failed to create data dir", zap.Error(err))
		os.Exit(1)
	}
	store, err := prefs.Open(filepath.Join(*dataDir, "prefs.db"))
	if err != nil {
		log.Error("failed to open preference store", zap.Error(err))
		os.Exit(1)
	}
	defer store.Close()

	window := NewWindow(content, store, log, *width, *height)
	defer window.Close()
	window.Run()
}

func defaultDataDir() string {
	if dir := os.Getenv("PORTFOLIO_DATA_DIR"); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".local", "share", "portfolio-engine")
}
