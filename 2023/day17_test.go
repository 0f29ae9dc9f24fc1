package main

import (
	"math/rand"
	"os"
	"strings"
	"testing"

	"github.com/maisem/aoc2023"
)

const (
	heatLossSample = `2413432311323
3215453535623
3255245654254
3446585845452
4546657867536
1438598798454
4457876987766
3637877979653
4654967986887
4564679986453
1224686865563
2546548887735
4322674655533
`
	heatLossStraight = `111111111111
999999999991
999999999991
999999999991
999999999991
`
)

func mustParseHeatLoss(t *testing.T, in string) aoc.Grid[int] {
	t.Helper()
	g, err := parseHeatLoss(aoc.Lines([]byte(in)))
	if err != nil {
		t.Fatalf("parseHeatLoss: %v", err)
	}
	return g
}

// checkRoute verifies that r.path is a legal way from the top-left block to
// the bottom-right one under m and that r.heatLoss is what it costs.
func checkRoute(t *testing.T, g aoc.Grid[int], m movement, r route) {
	t.Helper()
	size := g.Size()
	goal := aoc.Pt{X: size.X - 1, Y: size.Y - 1}

	var (
		pos  aoc.Pt
		loss int
		dirs []aoc.Direction
	)
	for _, p := range r.path {
		var dir aoc.Direction = -1
		for _, d := range aoc.Directions {
			if pos.Move(d) == p {
				dir = d
			}
		}
		if dir == -1 || !g.In(p) {
			t.Fatalf("route jumps from %v to %v", pos, p)
		}
		dirs = append(dirs, dir)
		loss += g.At(p)
		pos = p
	}
	if pos != goal {
		t.Errorf("route ends at %v, want %v", pos, goal)
	}
	if loss != r.heatLoss {
		t.Errorf("route loses %d, reported %d", loss, r.heatLoss)
	}

	run := 0
	for i, d := range dirs {
		if i > 0 && d != dirs[i-1] {
			if d == dirs[i-1].Opposite() {
				t.Errorf("route reverses at step %d", i)
			}
			if run < m.minRun {
				t.Errorf("route turns after %d blocks at step %d; want at least %d", run, i, m.minRun)
			}
			run = 0
		}
		run++
		if run > m.maxRun {
			t.Errorf("route goes %d blocks straight at step %d; want at most %d", run, i, m.maxRun)
		}
	}
	if len(dirs) > 0 && run < m.minRun {
		t.Errorf("route stops after %d blocks; want at least %d", run, m.minRun)
	}
}

// relaxAll finds the least heat loss by relaxing every state reachable under
// m until nothing improves, in no particular order.
func relaxAll(g aoc.Grid[int], m movement) (int, bool) {
	size := g.Size()
	goal := aoc.Pt{X: size.X - 1, Y: size.Y - 1}
	best := map[crucibleState]int{}
	q := aoc.NewQueue[crucibleState]()
	for _, d := range []aoc.Direction{aoc.Right, aoc.Down} {
		s := crucibleState{dir: d}
		best[s] = 0
		q.Push(s)
	}
	q.While(func(cur crucibleState) bool {
		for _, d := range aoc.Directions {
			straight := d == cur.dir
			turn := !straight && d != cur.dir.Opposite()
			var next crucibleState
			switch {
			case straight && cur.streak < m.maxRun:
				next = crucibleState{cur.pt.Move(d), d, cur.streak + 1}
			case turn && cur.streak >= m.minRun:
				next = crucibleState{cur.pt.Move(d), d, 1}
			default:
				continue
			}
			if !g.In(next.pt) {
				continue
			}
			c := best[cur] + g.At(next.pt)
			if b, ok := best[next]; !ok || c < b {
				best[next] = c
				q.Push(next)
			}
		}
		return true
	})
	least, ok := 0, false
	for s, c := range best {
		if s.pt == goal && s.streak >= m.minRun && (!ok || c < least) {
			least, ok = c, true
		}
	}
	return least, ok
}

func randomHeatLoss(rnd *rand.Rand, w, h int) aoc.Grid[int] {
	g := aoc.MakeGrid[int](w, h)
	for y := range g {
		for x := range g[y] {
			g.Set(aoc.Pt{X: x, Y: y}, 1+rnd.Intn(9))
		}
	}
	return g
}

func TestLeastHeatLoss(t *testing.T) {
	tests := []struct {
		name string
		in   string
		m    movement
		want int
	}{
		{"sample", heatLossSample, crucible, 102},
		{"sample-ultra", heatLossSample, ultraCrucible, 94},
		{"straight-ultra", heatLossStraight, ultraCrucible, 71},
		{"single", "7\n", crucible, 0},
		{"row", "1911\n", crucible, 11},
		{"column", "1\n2\n3\n", crucible, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := mustParseHeatLoss(t, tt.in)
			before := g.Hash()
			r, ok := leastHeatLoss(g, tt.m)
			if !ok {
				t.Fatalf("no route")
			}
			if r.heatLoss != tt.want {
				t.Errorf("heat loss = %d, want %d", r.heatLoss, tt.want)
			}
			checkRoute(t, g, tt.m, r)
			if g.Hash() != before {
				t.Error("search modified the grid")
			}
		})
	}
}

func TestLeastHeatLossUnreachable(t *testing.T) {
	tests := []struct {
		in string
		m  movement
	}{
		{"11111\n", crucible},     // four blocks straight
		{"1111\n", ultraCrucible}, // stops after three
		{"1\n", ultraCrucible},
		{"111\n111\n111\n", ultraCrucible},
	}
	for _, tt := range tests {
		g := mustParseHeatLoss(t, tt.in)
		if r, ok := leastHeatLoss(g, tt.m); ok {
			t.Errorf("leastHeatLoss(%q, %+v) = %+v, want unreachable", tt.in, tt.m, r)
		}
		if _, ok := relaxAll(g, tt.m); ok {
			t.Errorf("relaxAll(%q, %+v) found a route", tt.in, tt.m)
		}
	}
}

func TestLeastHeatLossExhaustive(t *testing.T) {
	rnd := rand.New(rand.NewSource(17))
	for i := 0; i < 200; i++ {
		g := randomHeatLoss(rnd, 1+rnd.Intn(6), 1+rnd.Intn(6))
		for _, m := range []movement{crucible, ultraCrucible} {
			want, wantOK := relaxAll(g, m)
			r, ok := leastHeatLoss(g, m)
			if ok != wantOK || r.heatLoss != want {
				t.Fatalf("leastHeatLoss(%+v) on\n%v= %d, %v; want %d, %v", m, g, r.heatLoss, ok, want, wantOK)
			}
			if ok {
				checkRoute(t, g, m, r)
			}
		}
	}
}

func TestParseHeatLoss(t *testing.T) {
	g := mustParseHeatLoss(t, "123\n456\n")
	if got := g.Size(); got != (aoc.Pt{X: 3, Y: 2}) {
		t.Errorf("size = %v", got)
	}
	if got := strings.TrimSpace(g.String()); got != "123\n456" {
		t.Errorf("grid = %q", got)
	}
	for _, in := range []string{"120\n", "12a\n", "12\n3\n", ""} {
		if _, err := parseHeatLoss(aoc.Lines([]byte(in))); err == nil {
			t.Errorf("parseHeatLoss(%q) succeeded, want error", in)
		}
	}
}

func TestDay17Input(t *testing.T) {
	in, err := os.ReadFile("../day17/input.txt")
	if err != nil {
		t.Skip("no input")
	}
	g, err := parseHeatLoss(aoc.Lines(in))
	if err != nil {
		t.Fatal(err)
	}
	r, ok := leastHeatLoss(g, crucible)
	if !ok {
		t.Fatal("no route")
	}
	if r.heatLoss != 1110 {
		t.Errorf("part 1 = %d, want 1110", r.heatLoss)
	}
	checkRoute(t, g, crucible, r)
	if r, ok := leastHeatLoss(g, ultraCrucible); !ok {
		t.Error("no ultra crucible route")
	} else {
		checkRoute(t, g, ultraCrucible, r)
	}
}
