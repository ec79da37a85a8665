// Command hoopshot is a terminal basketball shooting game.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/lixenwraith/hoopshot/audio"
	"github.com/lixenwraith/hoopshot/config"
	"github.com/lixenwraith/hoopshot/parameter"
)

const defaultConfigPath = "hoopshot.toml"

var (
	configFlag = flag.String("config", "", "config file (default ./hoopshot.toml if present, or $HOOPSHOT_CONFIG)")
	debugFlag  = flag.Bool("debug", false, "write logs to "+logDir+"/"+logFileName)
	fpsFlag    = flag.Int("fps", 0, "frame rate override")
	cameraFlag = flag.Int("camera", 0, "starting camera preset 1-4")
	muteFlag   = flag.Bool("mute", false, "start muted")
	noAudio    = flag.Bool("no-audio", false, "disable sound entirely")
	watchFlag  = flag.Bool("watch", true, "reload the config file when it changes")
	dumpFlag   = flag.Bool("dump-config", false, "print the resolved config as TOML and exit")
)

func main() {
	flag.Parse()

	path, explicit := configPath()
	cfg, err := loadConfig(path, explicit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "hoopshot: %v\n", err)
		os.Exit(1)
	}

	if *dumpFlag {
		if err := cfg.Encode(os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "hoopshot: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	if err := run(cfg, path); err != nil {
		fmt.Fprintf(os.Stderr, "hoopshot: %v\n", err)
		os.Exit(1)
	}
}

// configPath resolves the config file and whether the user named it explicitly
func configPath() (string, bool) {
	if *configFlag != "" {
		return *configFlag, true
	}
	if env, ok := os.LookupEnv(config.EnvConfigPath); ok && env != "" {
		return env, true
	}
	return defaultConfigPath, false
}

// loadConfig layers flags over defaults, file and environment
func loadConfig(path string, explicit bool) (*config.Config, error) {
	cfg, err := config.Load(path, !explicit)
	if err != nil {
		return nil, err
	}
	applyFlags(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "flags")
	}
	return cfg, nil
}

// applyFlags writes command-line overrides; reloads call it again so flags keep winning
func applyFlags(cfg *config.Config) {
	if *fpsFlag > 0 {
		cfg.Display.FPS = *fpsFlag
	}
	if *cameraFlag > 0 {
		cfg.Display.Camera = *cameraFlag
	}
	if *muteFlag {
		cfg.Audio.Muted = true
	}
	if *noAudio {
		cfg.Audio.Enabled = false
	}
}

func run(cfg *config.Config, path string) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "terminal")
	}
	if err := screen.Init(); err != nil {
		return errors.Wrap(err, "terminal init")
	}

	// Panic Recovery: restore the terminal before the trace so it stays readable
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mHOOPSHOT CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack))
	screen.EnableMouse(tcell.MouseDragEvents)
	screen.EnableFocus()
	screen.HideCursor()
	screen.Clear()

	sound := audio.NewSoundManager(cfg.AudioSettings())
	if err := sound.Initialize(); err != nil {
		// Non-fatal, game runs silent
		log.Printf("AUDIO: disabled: %v", err)
	} else {
		defer sound.Cleanup()
	}
	sound.SetMuted(cfg.Audio.Muted)

	a, err := newApp(cfg, screen, sound)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var reloads <-chan *config.Config
	if *watchFlag && fileExists(path) {
		if reloads, err = config.Watch(ctx, path); err != nil {
			log.Printf("CONFIG: watch disabled: %v", err)
		}
	}

	eventChan := make(chan tcell.Event, parameter.TerminalEventBuffer)
	go pollEvents(screen, eventChan)

	ticker := time.NewTicker(cfg.FrameInterval())
	defer ticker.Stop()

	log.Printf("START: fps=%d camera=%d audio=%v", cfg.Display.FPS, cfg.Display.Camera, sound.IsInitialized())
	for !a.quit {
		select {
		case ev, ok := <-eventChan:
			if !ok {
				return nil
			}
			a.handleEvent(ev, time.Now())

		case next := <-reloads:
			applyFlags(next)
			if err := next.Validate(); err != nil {
				log.Printf("CONFIG: rejected reload: %v", err)
				continue
			}
			fpsChanged, err := a.applyConfig(next)
			if err != nil {
				log.Printf("CONFIG: rejected reload: %v", err)
				continue
			}
			if fpsChanged {
				ticker.Reset(next.FrameInterval())
			}
			log.Printf("CONFIG: applied reload")

		case now := <-ticker.C:
			a.tick(now)
		}
	}
	log.Printf("QUIT: frames=%d", a.state.Frame())
	return nil
}

// pollEvents forwards terminal events until the screen closes
// Runs on its own goroutine; a panic here must still restore the terminal
func pollEvents(screen tcell.Screen, out chan<- tcell.Event) {
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\r\n\x1b[31mEVENT POLLER CRASHED: %v\x1b[0m\r\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer close(out)

	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		out <- ev
	}
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
