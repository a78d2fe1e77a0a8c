package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/leonelquinteros/gotext"

	"tilecollapse/locales"
	"tilecollapse/pkg/engine/terminal"
	"tilecollapse/pkg/engine/throttle"
	"tilecollapse/pkg/game/config"
	"tilecollapse/pkg/game/generator"
	"tilecollapse/pkg/game/renderer"
	ebitenrenderer "tilecollapse/pkg/game/renderer/ebiten"
	"tilecollapse/pkg/game/renderer/tui"
	"tilecollapse/pkg/game/setup"
	"tilecollapse/pkg/game/state"
)

func main() {
	cfg := config.Default()
	cfg.BindFlags(flag.CommandLine)
	verbose := flag.Bool("v", false, "log every run to stderr")
	flag.Parse()

	lang := locales.Load(cfg.Language)
	if lang != cfg.Language {
		log.Printf("No translations for %q, using %q", cfg.Language, lang)
		cfg.Language = lang
	}
	config.SetCurrent(cfg)

	var logger *log.Logger
	if *verbose {
		logger = log.New(os.Stderr, "tilecollapse: ", log.LstdFlags)
	}

	run, err := setup.New(*config.Current(), state.NewSession(), logger)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if cfg.GUI {
		runGUI(ctx, run)
		return
	}
	if err := runTUI(ctx, run); err != nil {
		stop()
		log.Fatal(err)
	}
}

// runGUI animates the generation in a window
func runGUI(ctx context.Context, run *setup.Run) {
	viewer := ebitenrenderer.New(run)
	renderer.SetRenderer(viewer)
	renderer.Init()

	if err := viewer.Run(ctx); err != nil {
		log.Fatalf("Window closed with error: %v", err)
	}
}

// runTUI generates one map and prints it to the terminal
func runTUI(ctx context.Context, run *setup.Run) error {
	// nothing is animated in the terminal
	run.SetSpeed(throttle.MaxSpeed)

	cfg := run.Config
	useColor := cfg.Color || terminal.IsTerminal()

	t := tui.New(os.Stdout, useColor)
	renderer.SetRenderer(t)
	renderer.Init()

	if maxW, maxH := t.MaxGridSize(); terminal.IsTerminal() && (cfg.Width > maxW || cfg.Height > maxH) {
		log.Printf(gotext.Get("GRID_TOO_LARGE"), cfg.Width, cfg.Height, maxW, maxH)
	}

	renderer.ShowMessage(fmt.Sprintf(gotext.Get("RUN_STARTED"), cfg.Width, cfg.Height, run.Generator.Name()))
	run.OnStage = func(stage generator.Stage, _ *generator.Result) {
		renderer.ShowMessage(run.StageMessage(stage))
	}

	res, err := run.Execute(ctx, nil)
	if err != nil {
		return fmt.Errorf(gotext.Get("RUN_FAILED"), err)
	}

	renderer.RenderMaze(res.Maze)
	renderer.RenderMap(res.Map)
	if res.Map != nil {
		renderer.ShowMessage(t.FormatText(gotext.Get("LEGEND")))
	}

	if res.Canceled {
		renderer.ShowMessage(gotext.Get("RUN_CANCELED"))
		return nil
	}
	renderer.ShowMessage(fmt.Sprintf(gotext.Get("RUN_DONE"), run.Session.Elapsed()))
	return nil
}
