package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/leonelquinteros/gotext"

	"lightmaze/pkg/engine/input"
	"lightmaze/pkg/engine/logging"
	"lightmaze/pkg/engine/terminal"
	"lightmaze/pkg/engine/world"
	"lightmaze/pkg/game/config"
	"lightmaze/pkg/game/devtools"
	"lightmaze/pkg/game/generator"
	"lightmaze/pkg/game/renderer"
	"lightmaze/pkg/game/renderer/ebiten"
	"lightmaze/pkg/game/renderer/tui"
)

// Rows kept free below the maze when sizing to the terminal
const fitReserveRows = 3

var (
	configPath    = flag.String("config", "", "path to a JSON config file")
	widthFlag     = flag.Int("width", config.DefaultWidth, "maze width in cells (odd)")
	heightFlag    = flag.Int("height", config.DefaultHeight, "maze height in cells (odd)")
	seedFlag      = flag.Int64("seed", 0, "random seed (default: time based)")
	generatorFlag = flag.String("generator", config.DefaultGenerator, "carving algorithm: prim or backtracker")
	colorFlag     = flag.Bool("color", false, "colour the output (default: on when stdout is a terminal)")
	tileSizeFlag  = flag.Int("tile", config.DefaultTileSize, "tile size in pixels for -gui")
	fitFlag       = flag.Bool("fit", false, "size the maze to the terminal")
	guiFlag       = flag.Bool("gui", false, "show the maze in a window (R regenerates, Esc quits)")
	interactive   = flag.Bool("i", false, "keep the maze on screen and read keys (r regenerates, q quits)")
	dumpFlag      = flag.String("dump", "", "write a debug dump of the maze to this file")
	legendFlag    = flag.Bool("legend", false, "print a glyph legend under the maze")
	verboseFlag   = flag.Bool("v", false, "log generation details to stderr")
	localeDir     = flag.String("locale", "", "directory holding translations")
	langFlag      = flag.String("lang", "en_GB", "translation language")
)

// buildConfig layers defaults, the config file, then explicitly set flags
func buildConfig() (*config.Config, error) {
	cfg := config.Default()
	cfg.SetColor(terminal.IsTerminal())

	if *configPath != "" {
		fileCfg, err := config.LoadConfig(*configPath)
		if err != nil {
			return nil, err
		}
		cfg.Merge(fileCfg)
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			cfg.SetWidth(*widthFlag)
		case "height":
			cfg.SetHeight(*heightFlag)
		case "seed":
			cfg.SetSeed(*seedFlag)
		case "generator":
			cfg.SetGenerator(*generatorFlag)
		case "color":
			cfg.SetColor(*colorFlag)
		case "tile":
			cfg.SetTileSize(*tileSizeFlag)
		}
	})

	if *fitFlag {
		w, h := terminal.FitTerminal(fitReserveRows)
		cfg.SetWidth(w)
		cfg.SetHeight(h)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newGenerator resolves the configured generator with a fresh seeded source
func newGenerator(cfg *config.Config, seed int64) (generator.GridGenerator, error) {
	return generator.ByName(cfg.GetGenerator(), rand.New(rand.NewSource(seed)))
}

func main() {
	flag.Parse()

	if !*verboseFlag {
		logging.SetLogger(nil)
	}

	if *localeDir != "" {
		gotext.Configure(*localeDir, *langFlag, "default")
	}

	cfg, err := buildConfig()
	if err != nil {
		log.Fatalf("Cannot load configuration: %v", err)
	}

	if cfg.HasEvenDimension() {
		log.Printf("%s", gotext.Get("Warning: %dx%d has an even dimension; the border will be incomplete", cfg.GetWidth(), cfg.GetHeight()))
	}

	seed, ok := cfg.GetSeed()
	if !ok {
		seed = time.Now().UnixNano()
	}

	gen, err := newGenerator(cfg, seed)
	if err != nil {
		log.Fatalf("Cannot create generator: %v", err)
	}

	grid, err := generator.Generate(gen, cfg.GetHeight(), cfg.GetWidth())
	if err != nil {
		log.Fatalf("Cannot generate maze: %v", err)
	}

	if *dumpFlag != "" {
		path, err := devtools.DumpMazeToFile(*dumpFlag, grid, devtools.Metadata{Generator: gen.Name(), Seed: seed})
		if err != nil {
			log.Fatalf("Cannot write dump: %v", err)
		}
		logging.Logf("maze dump written to %s", path)
	}

	if *guiFlag {
		runViewer(cfg, grid)
		return
	}

	if *interactive && terminal.IsTerminal() {
		if err := runInteractive(cfg, grid, seed, gen.Name()); err != nil {
			log.Fatalf("Interactive session stopped: %v", err)
		}
		return
	}

	if err := printMaze(cfg, grid, seed, *legendFlag); err != nil {
		log.Fatalf("Cannot render maze: %v", err)
	}
}

// runViewer opens the graphical viewer; each regeneration draws a new seed
func runViewer(cfg *config.Config, grid *world.Grid) {
	regenerate := func() (*world.Grid, error) {
		gen, err := newGenerator(cfg, time.Now().UnixNano())
		if err != nil {
			return nil, err
		}
		return generator.Generate(gen, cfg.GetHeight(), cfg.GetWidth())
	}

	v := ebiten.New(grid, cfg.GetTileSize(), regenerate)
	if err := v.Run(gotext.Get("Maze")); err != nil {
		log.Fatalf("Viewer stopped: %v", err)
	}
}

// runInteractive redraws the maze after each keypress until the user quits
func runInteractive(cfg *config.Config, grid *world.Grid, seed int64, genName string) error {
	t := tui.New()
	showLegend := *legendFlag

	for {
		t.Clear()
		if err := printMaze(cfg, grid, seed, showLegend); err != nil {
			return err
		}
		fmt.Println(t.Prompt())

		action, err := t.GetInput()
		if err != nil {
			return err
		}
		logging.Logf("key action: %v", action)

		switch action {
		case input.ActionQuit:
			return nil
		case input.ActionToggleLegend:
			showLegend = !showLegend
		case input.ActionDump:
			path := *dumpFlag
			if path == "" {
				path = fmt.Sprintf("maze-%d.txt", seed)
			}
			if _, err := devtools.DumpMazeToFile(path, grid, devtools.Metadata{Generator: genName, Seed: seed}); err != nil {
				return err
			}
		case input.ActionRegenerate:
			seed = time.Now().UnixNano()
			gen, err := newGenerator(cfg, seed)
			if err != nil {
				return err
			}
			if grid, err = generator.Generate(gen, cfg.GetHeight(), cfg.GetWidth()); err != nil {
				return err
			}
		}
	}
}

// printMaze renders the maze and a short summary to stdout
func printMaze(cfg *config.Config, grid *world.Grid, seed int64, legend bool) error {
	if !cfg.GetColor() {
		if err := (renderer.Text{}).Render(os.Stdout, grid); err != nil {
			return err
		}
		if legend {
			fmt.Println(gotext.Get("# wall  . light  E entry  S exit"))
		}
		return nil
	}

	t := tui.New()
	if err := t.Render(os.Stdout, grid); err != nil {
		return err
	}
	if legend {
		fmt.Println(t.Legend())
		fmt.Println(t.FormatText("GT{Seed} ACTION{%d}, LIGHT{%d} GT{lights}", seed, grid.Count(world.Light)))
	}
	return nil
}
