// Package generator tests maze carving: lattice invariants, perfect-maze
// connectivity, entry/exit marking, light spacing and reproducibility.
package generator

import (
	"errors"
	"fmt"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"

	"lightmaze/pkg/engine/logging"
	"lightmaze/pkg/engine/world"
	"lightmaze/pkg/game/lighting"
)

func init() {
	logging.SetLogger(nil)
}

// scriptedSource replays a fixed sequence of choices, wrapping each into [0,n).
type scriptedSource struct {
	values []int
	next   int
}

func (s *scriptedSource) Intn(n int) int {
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[s.next%len(s.values)]
	s.next++
	return v % n
}

// snapshot returns the grid contents as a plain map for comparison.
func snapshot(g *world.Grid) map[world.Coord]world.CellState {
	m := make(map[world.Coord]world.CellState)
	g.ForEachCell(func(c world.Coord, s world.CellState) {
		m[c] = s
	})
	return m
}

// countEdges returns the number of step-1 adjacent pairs of carved cells.
func countEdges(g *world.Grid) int {
	edges := 0
	g.ForEachCell(func(c world.Coord, s world.CellState) {
		if !s.IsCarved() {
			return
		}
		for _, n := range []world.Coord{c.Add(1, 0), c.Add(0, 1)} {
			if ns, ok := g.Get(n); ok && ns.IsCarved() {
				edges++
			}
		}
	})
	return edges
}

// generators returns a fresh instance of every registered generator for seed.
func generators(t *testing.T, seed int64) []GridGenerator {
	t.Helper()
	var gens []GridGenerator
	for _, name := range Names() {
		gen, err := ByName(name, rand.New(rand.NewSource(seed)))
		if err != nil {
			t.Fatalf("ByName(%q) error = %v", name, err)
		}
		gens = append(gens, gen)
	}
	return gens
}

var sizes = []struct{ height, width int }{
	{5, 5},
	{7, 11},
	{15, 15},
	{21, 9},
	{31, 41},
}

func TestCarve_ClearedGridAllBlocked(t *testing.T) {
	g := world.NewGrid(5, 5)
	g.Clear()
	if got := g.Count(world.Blocked); got != 25 {
		t.Errorf("Count(Blocked) after Clear = %d, want 25", got)
	}
}

func TestPrimCarve_FiveByFiveFromOneOne(t *testing.T) {
	g := world.NewGrid(5, 5)
	gen := NewPrim(&scriptedSource{values: []int{0}})
	if err := gen.Carve(g); err != nil {
		t.Fatalf("Carve() error = %v", err)
	}

	if s, _ := g.Get(world.NewCoord(1, 1)); s != world.Passage {
		t.Errorf("cell 1,1 = %v, want Passage", s)
	}
	// Four lattice cells joined by three walls.
	if got := g.CarvedCount(); got != 7 {
		t.Errorf("CarvedCount() = %d, want 7", got)
	}
	if s, _ := g.Get(world.NewCoord(2, 2)); s != world.Blocked {
		t.Errorf("cell 2,2 = %v, want Blocked (never on the lattice)", s)
	}
}

func TestRandomOddStart_RoundsUp(t *testing.T) {
	g := world.NewGrid(9, 9)
	// Intn(7) -> 1 gives 2, rounded to 3; Intn(7) -> 4 gives 5.
	got := randomOddStart(g, &scriptedSource{values: []int{1, 4}})
	if want := world.NewCoord(3, 5); got != want {
		t.Errorf("randomOddStart = %v, want %v", got, want)
	}
}

func TestGenerate_PerfectMaze(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		for _, gen := range generators(t, seed) {
			for _, sz := range sizes {
				name := fmt.Sprintf("%s/seed%d/%dx%d", gen.Name(), seed, sz.width, sz.height)
				t.Run(name, func(t *testing.T) {
					g, err := Generate(gen, sz.height, sz.width)
					if err != nil {
						t.Fatalf("Generate() error = %v", err)
					}

					carved := g.CarvedCount()
					if edges := countEdges(g); edges != carved-1 {
						t.Errorf("edges = %d, want %d for %d carved cells (tree)", edges, carved-1, carved)
					}
					if reach := g.ReachableFrom(EntryCoord(g)).Size(); reach != carved {
						t.Errorf("reachable = %d, want all %d carved cells", reach, carved)
					}

					// Every odd lattice cell is carved.
					for y := 1; y < sz.height-1; y += 2 {
						for x := 1; x < sz.width-1; x += 2 {
							if s, _ := g.Get(world.NewCoord(x, y)); !s.IsCarved() {
								t.Errorf("lattice cell %d,%d = %v, want carved", x, y, s)
							}
						}
					}
				})
			}
		}
	}
}

func TestGenerate_BorderStaysBlocked(t *testing.T) {
	for _, gen := range generators(t, 42) {
		g, err := Generate(gen, 17, 23)
		if err != nil {
			t.Fatalf("%s: Generate() error = %v", gen.Name(), err)
		}
		g.ForEachCell(func(c world.Coord, s world.CellState) {
			if g.IsOnPerimeter(c) && s != world.Blocked {
				t.Errorf("%s: border cell %v = %v, want Blocked", gen.Name(), c, s)
			}
		})
	}
}

func TestGenerate_EntryAndExit(t *testing.T) {
	for _, gen := range generators(t, 7) {
		g, err := Generate(gen, 15, 19)
		if err != nil {
			t.Fatalf("%s: Generate() error = %v", gen.Name(), err)
		}

		if n := g.Count(world.Entry); n != 1 {
			t.Errorf("%s: Count(Entry) = %d, want 1", gen.Name(), n)
		}
		if n := g.Count(world.Exit); n != 1 {
			t.Errorf("%s: Count(Exit) = %d, want 1", gen.Name(), n)
		}
		if s, _ := g.Get(world.NewCoord(1, 1)); s != world.Entry {
			t.Errorf("%s: cell 1,1 = %v, want Entry", gen.Name(), s)
		}
		if s, _ := g.Get(world.NewCoord(17, 13)); s != world.Exit {
			t.Errorf("%s: cell 17,13 = %v, want Exit", gen.Name(), s)
		}
		if path := g.FindPath(EntryCoord(g), ExitCoord(g)); path == nil {
			t.Errorf("%s: no path from entry to exit", gen.Name())
		}
	}
}

func TestGenerate_LightFootprintsDisjoint(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		for _, gen := range generators(t, seed) {
			g, err := Generate(gen, 25, 31)
			if err != nil {
				t.Fatalf("%s: Generate() error = %v", gen.Name(), err)
			}

			var lights []world.Coord
			g.ForEachCell(func(c world.Coord, s world.CellState) {
				if s == world.Light {
					lights = append(lights, c)
				}
			})
			if len(lights) == 0 {
				t.Errorf("%s seed %d: no lights placed on a 31x25 maze", gen.Name(), seed)
			}

			owner := make(map[world.Coord]world.Coord)
			for _, l := range lights {
				lighting.Footprint(g, l).Each(func(c world.Coord) {
					if prev, taken := owner[c]; taken {
						t.Errorf("%s seed %d: cell %v lit by both %v and %v", gen.Name(), seed, c, prev, l)
					}
					owner[c] = l
				})
			}
		}
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			a, _ := ByName(name, rand.New(rand.NewSource(99)))
			b, _ := ByName(name, rand.New(rand.NewSource(99)))

			ga, err := Generate(a, 21, 21)
			if err != nil {
				t.Fatal(err)
			}
			gb, err := Generate(b, 21, 21)
			if err != nil {
				t.Fatal(err)
			}

			if diff := cmp.Diff(snapshot(ga), snapshot(gb)); diff != "" {
				t.Errorf("same seed produced different grids (-a +b):\n%s", diff)
			}
		})
	}
}

func TestGenerate_ScriptedSourceDeterministic(t *testing.T) {
	script := []int{3, 1, 4, 1, 5, 9, 2, 6, 5, 3, 5}
	ga, err := Generate(NewPrim(&scriptedSource{values: script}), 11, 13)
	if err != nil {
		t.Fatal(err)
	}
	gb, err := Generate(NewPrim(&scriptedSource{values: script}), 11, 13)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(snapshot(ga), snapshot(gb)); diff != "" {
		t.Errorf("same script produced different grids (-a +b):\n%s", diff)
	}
}

func TestGenerate_TooSmall(t *testing.T) {
	tests := []struct {
		name          string
		height, width int
	}{
		{"narrow", 5, 2},
		{"flat", 1, 9},
		{"entry equals exit", 3, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := Generate(NewPrim(rand.New(rand.NewSource(1))), tt.height, tt.width)
			if !errors.Is(err, ErrDimensionsTooSmall) {
				t.Errorf("Generate(%d, %d) error = %v, want ErrDimensionsTooSmall", tt.height, tt.width, err)
			}
			if g != nil {
				t.Error("Generate returned a grid alongside an error")
			}
		})
	}
}

func TestCarve_TooSmallGrid(t *testing.T) {
	g := world.NewGrid(2, 2)
	if err := NewBacktracker(rand.New(rand.NewSource(1))).Carve(g); !errors.Is(err, ErrDimensionsTooSmall) {
		t.Errorf("Carve(2x2) error = %v, want ErrDimensionsTooSmall", err)
	}
}

func TestGenerate_EvenDimensions(t *testing.T) {
	g, err := Generate(NewPrim(rand.New(rand.NewSource(3))), 10, 12)
	if err != nil {
		t.Fatalf("Generate(10, 12) error = %v", err)
	}
	if want := world.NewCoord(9, 7); ExitCoord(g) != want {
		t.Errorf("ExitCoord = %v, want %v", ExitCoord(g), want)
	}
	if s, _ := g.Get(world.NewCoord(9, 7)); s != world.Exit {
		t.Errorf("cell 9,7 = %v, want Exit", s)
	}
}

func TestMarkBoundary_RejectsUncarved(t *testing.T) {
	g := world.NewGrid(7, 7)
	g.Clear()

	err := MarkBoundary(g)
	if !errors.Is(err, ErrBoundaryNotCarved) {
		t.Errorf("MarkBoundary on blocked grid error = %v, want ErrBoundaryNotCarved", err)
	}
	if n := g.Count(world.Entry); n != 0 {
		t.Errorf("Count(Entry) = %d after failed MarkBoundary, want 0", n)
	}
}

func TestByName(t *testing.T) {
	for _, name := range []string{NamePrim, NameBacktracker} {
		gen, err := ByName(name, rand.New(rand.NewSource(1)))
		if err != nil {
			t.Fatalf("ByName(%q) error = %v", name, err)
		}
		if gen.Name() != name {
			t.Errorf("ByName(%q).Name() = %q", name, gen.Name())
		}
	}

	if _, err := ByName("kruskal", nil); !errors.Is(err, ErrUnknownGenerator) {
		t.Errorf("ByName(unknown) error = %v, want ErrUnknownGenerator", err)
	}
}
