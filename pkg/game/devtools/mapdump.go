// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/zyedidia/generic/mapset"

	"lightmaze/pkg/engine/world"
	"lightmaze/pkg/game/generator"
	"lightmaze/pkg/game/renderer"
)

// DefaultDumpFilename is used when no dump path is given
const DefaultDumpFilename = "maze.txt"

// glyphSolution marks plain passage cells on the entry-to-exit path
const glyphSolution = '*'

// Metadata describes how a maze was produced
type Metadata struct {
	Generator string
	Seed      int64
}

// writeMapGrid writes the grid, optionally overlaying the solution path.
func writeMapGrid(w io.Writer, g *world.Grid, solution mapset.Set[world.Coord], overlay bool) {
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			c := world.NewCoord(x, y)
			s, ok := g.Get(c)
			if !ok {
				fmt.Fprintf(w, "%c", renderer.GlyphUnknown)
				continue
			}
			if overlay && s == world.Passage && solution.Has(c) {
				fmt.Fprintf(w, "%c", glyphSolution)
				continue
			}
			fmt.Fprintf(w, "%c", renderer.Glyph(s))
		}
		fmt.Fprintln(w)
	}
}

// WriteDump writes a full debug dump: metadata, legend, the map, the map
// with the solution path overlaid, and the light positions.
func WriteDump(w io.Writer, g *world.Grid, meta Metadata) error {
	if g == nil {
		return fmt.Errorf("no grid")
	}

	entry := generator.EntryCoord(g)
	exit := generator.ExitCoord(g)
	path := g.FindPath(entry, exit)
	solution := mapset.New[world.Coord]()
	for _, c := range path {
		solution.Put(c)
	}

	// --- Metadata ---
	fmt.Fprintln(w, "=== MAZE DUMP ===")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "--- Metadata ---")
	fmt.Fprintf(w, "generator: %s\n", meta.Generator)
	fmt.Fprintf(w, "seed: %d\n", meta.Seed)
	fmt.Fprintf(w, "width: %d\n", g.Width())
	fmt.Fprintf(w, "height: %d\n", g.Height())
	fmt.Fprintf(w, "coordinate_system: x,y (0-based, x=column, y=row)\n")
	fmt.Fprintf(w, "entry: %v\n", entry)
	fmt.Fprintf(w, "exit: %v\n", exit)
	fmt.Fprintf(w, "carved_cells: %d\n", g.CarvedCount())
	fmt.Fprintf(w, "lights: %d\n", g.Count(world.Light))
	fmt.Fprintf(w, "solution_length: %d\n", len(path))
	fmt.Fprintln(w, "")

	// --- Legend ---
	fmt.Fprintln(w, "--- Legend (cell symbols) ---")
	fmt.Fprintf(w, "%c = wall  '%c' = passage  %c = light  %c = entry  %c = exit  %c = solution path\n",
		renderer.GlyphWall, renderer.GlyphPassage, renderer.GlyphLight,
		renderer.GlyphEntry, renderer.GlyphExit, glyphSolution)
	fmt.Fprintln(w, "")

	// --- Map ---
	fmt.Fprintln(w, "--- Map ---")
	writeMapGrid(w, g, solution, false)
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Map (solution overlay) ---")
	writeMapGrid(w, g, solution, true)
	fmt.Fprintln(w, "")

	// --- Lights ---
	fmt.Fprintln(w, "--- Lights (x,y) ---")
	g.ForEachCell(func(c world.Coord, s world.CellState) {
		if s == world.Light {
			fmt.Fprintf(w, "  %v\n", c)
		}
	})

	return nil
}

// DumpMazeToFile writes the debug dump to path (DefaultDumpFilename if empty)
// and returns the absolute path written.
func DumpMazeToFile(path string, g *world.Grid, meta Metadata) (string, error) {
	if path == "" {
		path = DefaultDumpFilename
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := WriteDump(f, g, meta); err != nil {
		return "", err
	}

	return absPath, f.Sync()
}
