package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/bluewaveradio/bluewave-cli/internal/cache"
	"github.com/bluewaveradio/bluewave-cli/internal/config"
	"github.com/bluewaveradio/bluewave-cli/internal/dining"
	"github.com/bluewaveradio/bluewave-cli/internal/events"
	"github.com/bluewaveradio/bluewave-cli/internal/nowplaying"
	"github.com/bluewaveradio/bluewave-cli/internal/player"
	"github.com/bluewaveradio/bluewave-cli/internal/ui"
	"github.com/bluewaveradio/bluewave-cli/internal/weather"
)

var (
	versionFlag = flag.Bool("version", false, "Show version information")
	debugFlag   = flag.Bool("debug", false, "Enable debug logging")
)

func init() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "%s v%s - %s\n\n", config.AppName, config.AppVersion, config.AppDescription)
		fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()

		configPath, err := config.GetConfigPath()
		if err == nil {
			if _, statErr := os.Stat(configPath); statErr == nil {
				fmt.Fprintf(os.Stderr, "\nConfig file: %s\n", configPath)
			} else {
				fmt.Fprintf(os.Stderr, "\nConfig file will be created on first use.\n")
			}
		}
	}
}

func setupLogging() {
	if *debugFlag {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)

		cacheDir, err := cache.GetCacheDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not get cache dir: %v\n", err)
			cacheDir = os.TempDir()
		}
		if err := os.MkdirAll(cacheDir, 0755); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not create log dir: %v\n", err)
		}
		logPath := filepath.Join(cacheDir, "debug.log")
		logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not create log file: %v\n", err)
			logFile = os.Stderr
		}
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: logFile, TimeFormat: "15:04:05"})
		fmt.Printf("Debug log: %s\n", logPath)
		log.Info().Msgf("Starting %s v%s (debug mode)", config.AppName, config.AppVersion)
		return
	}

	// Avoid TUI corruption by only logging errors to /dev/null
	zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	logFile, err := os.OpenFile(os.DevNull, os.O_WRONLY, 0644)
	if err == nil {
		log.Logger = log.Output(logFile)
	}
}

func main() {
	flag.Parse()

	if *versionFlag {
		fmt.Printf("%s v%s\n", config.AppName, config.AppVersion)
		fmt.Println(config.AppDescription)
		os.Exit(0)
	}

	setupLogging()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	blobCache, err := cache.NewCache()
	if err != nil {
		log.Warn().Err(err).Msg("Cache unavailable, listings will not persist")
	} else {
		go func() {
			if err := blobCache.CleanExpired(); err != nil {
				log.Debug().Err(err).Msg("Cache cleanup failed")
			}
		}()
	}

	engine := player.NewEngine(config.StreamURL, config.StationName, config.StationLocation, player.NewSource)

	publisher, err := nowplaying.New(engine, nowplaying.ArtworkURL(blobCache))
	if err != nil {
		log.Warn().Err(err).Msg("Media controls unavailable")
		publisher = nil
	}

	weatherMgr := weather.NewManager(weather.NewClient(), blobCache, cfg.UseMetric)
	eventsMgr := events.NewManager(blobCache, cfg.FavoriteEvents)
	diningMgr := dining.NewManager(blobCache, cfg.FavoriteRestaurants)

	tui := ui.NewUI(engine, weatherMgr, eventsMgr, diningMgr, cfg)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	uiDone := make(chan error, 1)

	go func() {
		<-sigChan
		if *debugFlag {
			log.Info().Msg("Received shutdown signal, cleaning up...")
		}
		tui.Shutdown()
	}()

	if *debugFlag {
		log.Info().Msg("Starting UI...")
	}

	// Run UI in a goroutine so we can handle signals properly
	go func() {
		uiDone <- tui.Run()
	}()

	runErr := <-uiDone

	if publisher != nil {
		publisher.Close()
	}
	engine.Close()

	if runErr != nil {
		if *debugFlag {
			log.Error().Err(runErr).Msg("Error running UI")
		}
		os.Exit(1)
	}
	if *debugFlag {
		log.Info().Msgf("%s stopped", config.AppName)
	}
}
