// hexterm runs the kaleidoscope in a terminal.
//
// Usage: go run ./cmd/hexterm [-config path] [-seed n]
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/pthm-cable/hexbloom/config"
	"github.com/pthm-cable/hexbloom/renderer"
	"github.com/pthm-cable/hexbloom/systems"
)

type app struct {
	screen tcell.Screen
	sim    *systems.Simulation
	view   *renderer.Terminal
}

func newApp(screen tcell.Screen, cfg *config.Config, seed int64) (*app, error) {
	sim, err := systems.NewSimulation(cfg, seed)
	if err != nil {
		return nil, fmt.Errorf("creating simulation: %w", err)
	}
	style, err := renderer.NewStyle(cfg.Render)
	if err != nil {
		return nil, fmt.Errorf("creating render style: %w", err)
	}
	return &app{
		screen: screen,
		sim:    sim,
		view:   renderer.NewTerminal(screen, cfg.Field.Radius, cfg.Render.TerminalAspect, style),
	}, nil
}

// handleEvent processes one terminal event. Returns false to quit.
func (a *app) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() == tcell.KeyRune {
			switch ev.Rune() {
			case 'q', 'Q':
				return false
			case 'r', 'R':
				a.sim.RequestReset()
			}
		}

	case *tcell.EventMouse:
		if ev.Buttons()&tcell.Button1 != 0 {
			cx, cy := ev.Position()
			fx, fy := a.view.CellToField(cx, cy)
			r := a.sim.FieldRadius()
			if fx*fx+fy*fy <= r*r {
				a.sim.RequestReset()
			}
		}

	case *tcell.EventResize:
		a.screen.Sync()
	}
	return true
}

// frame advances the simulation one tick and redraws.
func (a *app) frame() error {
	attrs, err := a.sim.Tick()
	if err != nil {
		return err
	}
	renderer.DrawFrame(a.view, attrs)
	a.view.Show()
	return nil
}

func (a *app) run(fps int) error {
	if fps < 1 {
		fps = 60
	}
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	quit := make(chan struct{})
	go a.screen.ChannelEvents(events, quit)
	defer close(quit)

	for {
		select {
		case ev := <-events:
			if ev == nil || !a.handleEvent(ev) {
				return nil
			}
		case <-ticker.C:
			if err := a.frame(); err != nil {
				return err
			}
		}
	}
}

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	logPath := flag.String("log", "", "Write JSON logs to this file (empty = discard)")
	flag.Parse()

	// Logs must not go to the terminal being drawn on
	var logOut io.Writer = io.Discard
	if *logPath != "" {
		f, err := os.Create(*logPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		logOut = f
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(logOut, nil)))

	if err := config.Init(*configPath); err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to init screen: %v\n", err)
		os.Exit(1)
	}
	screen.EnableMouse()
	screen.HideCursor()

	a, err := newApp(screen, cfg, rngSeed)
	if err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "failed to start: %v\n", err)
		os.Exit(1)
	}

	slog.Info("starting terminal view", "seed", rngSeed, "fps", cfg.Screen.TargetFPS)
	runErr := a.run(cfg.Screen.TargetFPS)
	screen.Fini()
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "simulation failed: %v\n", runErr)
		os.Exit(1)
	}
}
