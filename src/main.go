package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/integrii/flaggy"
	"github.com/mattn/go-isatty"

	"rewindlife/src/config"
	"rewindlife/src/universe"
	"rewindlife/src/view"
)

const title = "Game of Life"

var viewers = map[string]func(cfg *config.Config) (universe.Viewer, error){
	config.ModeWindow: func(cfg *config.Config) (universe.Viewer, error) {
		return view.NewWindow(title, cfg.Window.Width, cfg.Window.Height, cfg.Window.CellSize), nil
	},
	config.ModeTerminal: func(cfg *config.Config) (universe.Viewer, error) {
		return view.NewTerminal(os.Stdout, colorOutput(os.Stdout)), nil
	},
	config.ModeInteractive: func(cfg *config.Config) (universe.Viewer, error) {
		ui, err := view.NewConsoleUI()
		if err != nil {
			return nil, err
		}
		return ui, nil
	},
	config.ModeBatch: func(cfg *config.Config) (universe.Viewer, error) {
		return view.NewConsoleOut(os.Stdout, colorOutput(os.Stdout)), nil
	},
}

// colorOutput reports whether f is a terminal, redirected output gets no escape sequences
func colorOutput(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func main() {
	cfg, savePath := initOptions()

	uo, err := cfg.UniverseOptions()
	if err != nil {
		flaggy.ShowHelpAndExit(err.Error())
	}

	if savePath != "" {
		if err := config.Save(savePath, cfg); err != nil {
			log.Fatalf("save config: %v", err)
		}
		log.Printf("configuration written to %s", savePath)
	}

	u, err := universe.NewUniverse(&uo)
	if err != nil {
		log.Fatal(err)
	}

	v, err := viewers[cfg.Mode](cfg)
	if err != nil {
		log.Fatal(err)
	}
	u.RegisterViewer(v)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := v.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		stop()
		log.Fatal(err)
	}
}

func initOptions() (cfg *config.Config, savePath string) {
	var (
		o          config.Overrides
		configPath string
	)

	templateNames := make([]string, 0)
	for _, t := range universe.Templates() {
		templateNames = append(templateNames, t.Name)
	}

	flaggy.SetName("rewindlife")
	flaggy.SetDescription("Conway's \"The Life\" game with pause, drawing and one step rewind")
	flaggy.DefaultParser.ShowHelpOnUnexpected = true
	flaggy.String(&o.Mode, "m", "mode", "Presentation mode ["+strings.Join(config.Modes(), "|")+"], "+defaultMode+" by default")
	flaggy.Int(&o.Width, "x", "width", "Width of a simulation field, in the window mode the window is resized to fit it")
	flaggy.Int(&o.Height, "y", "height", "Height of a simulation field, in the window mode the window is resized to fit it")
	flaggy.Duration(&o.Interval, "i", "interval", "Simulation speed (interval between the steps) in format the number with 'ms' suffix, for example 150ms")
	flaggy.Int(&o.MaxSteps, "s", "maxSteps", "Limit the simulation to maxSteps")
	flaggy.String(&o.Template, "t", "template", "Settle with the template instead of random data ["+strings.Join(templateNames, "|")+"]")
	flaggy.Int64(&o.Seed, "r", "seed", "Seed of the random data, the current time is used if omitted")
	flaggy.Int(&o.CellSize, "z", "cellSize", "Cell size in pixels (window mode)")
	flaggy.String(&configPath, "c", "config", "Load the configuration from the yaml file")
	flaggy.String(&savePath, "w", "save-config", "Write the resulting configuration to the yaml file")

	flaggy.Parse()

	cfg = config.DefaultConfig(defaultMode)
	if configPath != "" {
		loaded, err := config.Load(configPath, defaultMode)
		if err != nil {
			log.Fatalf("load config: %v", err)
		}
		cfg = loaded
	}
	cfg.Apply(o)
	return
}
