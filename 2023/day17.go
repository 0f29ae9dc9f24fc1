package main

import (
	"fmt"
	"log"
	"slices"

	"github.com/dustin/go-humanize"
	"github.com/maisem/aoc2023"
)

func parseHeatLoss(lines []string) (aoc.Grid[int], error) {
	return aoc.ParseGrid(lines, func(r rune) (int, error) {
		if r < '1' || r > '9' {
			return 0, fmt.Errorf("bad heat loss %q", r)
		}
		return int(r - '0'), nil
	})
}

// movement is how a crucible may move: it must go at least minRun blocks in
// a direction before turning or stopping, and at most maxRun blocks.
type movement struct {
	minRun, maxRun int
}

var (
	crucible      = movement{minRun: 0, maxRun: 3}
	ultraCrucible = movement{minRun: 4, maxRun: 10}
)

// crucibleState is a search node: where the crucible is, the direction of
// its last move and how many consecutive moves it has made that way.
type crucibleState struct {
	pt     aoc.Pt
	dir    aoc.Direction
	streak int
}

// route is the result of a search.
type route struct {
	heatLoss int
	path     []aoc.Pt // blocks entered, in order; excludes the start
	settled  int      // states popped and expanded
}

// leastHeatLoss returns the route with the least heat loss from the top-left
// block of g to the bottom-right one, moving according to m. It reports
// false if the bottom-right block cannot be reached.
func leastHeatLoss(g aoc.Grid[int], m movement) (route, bool) {
	size := g.Size()
	goal := aoc.Pt{X: size.X - 1, Y: size.Y - 1}

	best := map[crucibleState]int{}
	parent := map[crucibleState]crucibleState{}
	q := aoc.MinQueue[crucibleState]()
	// The first move may go right or down. Seeding only one of them would
	// make the other a turn, which the ultra crucible cannot make yet.
	for _, d := range []aoc.Direction{aoc.Right, aoc.Down} {
		s := crucibleState{dir: d}
		best[s] = 0
		q.Push(&aoc.PQI[crucibleState]{V: s, P: 0})
	}

	var settled int
	for q.Len() > 0 {
		it := q.Pop()
		cur, cost := it.V, it.P
		if cost > best[cur] {
			continue // stale
		}
		if cur.pt == goal && cur.streak >= m.minRun {
			return route{
				heatLoss: cost,
				path:     pathTo(parent, cur),
				settled:  settled,
			}, true
		}
		settled++
		for _, d := range aoc.Directions {
			if d == cur.dir.Opposite() {
				continue
			}
			streak := 1
			if d == cur.dir {
				streak = cur.streak + 1
			} else if cur.streak < m.minRun {
				continue
			}
			if streak > m.maxRun {
				continue
			}
			loss, ok := g.AtOk(cur.pt.Move(d))
			if !ok {
				continue
			}
			next := crucibleState{pt: cur.pt.Move(d), dir: d, streak: streak}
			nc := cost + loss
			if b, ok := best[next]; ok && nc >= b {
				continue
			}
			best[next] = nc
			parent[next] = cur
			q.Push(&aoc.PQI[crucibleState]{V: next, P: nc})
		}
	}
	return route{settled: settled}, false
}

// pathTo walks parent links back from s to a seed state and returns the
// blocks entered along the way, in order.
func pathTo(parent map[crucibleState]crucibleState, s crucibleState) []aoc.Pt {
	var path []aoc.Pt
	for {
		p, ok := parent[s]
		if !ok {
			break
		}
		path = append(path, s.pt)
		s = p
	}
	slices.Reverse(path)
	return path
}

func (s solver) solveCrucible(m movement) int {
	g := aoc.Parsed(s.Puzzle, parseHeatLoss)
	r, ok := leastHeatLoss(g, m)
	if !ok {
		log.Fatalf("day 17: no route to %v with %+v", g.Size(), m)
	}
	s.Debugf("settled %s states; path of %d blocks", humanize.Comma(int64(r.settled)), len(r.path))
	return r.heatLoss
}

/*
want=102

2413432311323
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
*/
func (s solver) D17p1() any {
	return s.solveCrucible(crucible)
}

// want=94
func (s solver) D17p2() any {
	return s.solveCrucible(ultraCrucible)
}
