package main

import (
	"errors"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/maisem/aoc2023"
	"tailscale.com/util/set"
)

type pipeKind uint8

const (
	ground pipeKind = iota
	start
	bend // a straight or bent segment joining two ports
)

// pipe is a cell of the pipe maze.
type pipe struct {
	kind  pipeKind
	ports [2]aoc.Direction // valid when kind == bend
}

var pipeRunes = map[rune]pipe{
	'.': {kind: ground},
	'S': {kind: start},
	'|': {bend, [2]aoc.Direction{aoc.Up, aoc.Down}},
	'-': {bend, [2]aoc.Direction{aoc.Left, aoc.Right}},
	'L': {bend, [2]aoc.Direction{aoc.Up, aoc.Right}},
	'J': {bend, [2]aoc.Direction{aoc.Up, aoc.Left}},
	'7': {bend, [2]aoc.Direction{aoc.Down, aoc.Left}},
	'F': {bend, [2]aoc.Direction{aoc.Down, aoc.Right}},
}

func parsePipe(r rune) (pipe, error) {
	p, ok := pipeRunes[r]
	if !ok {
		return pipe{}, fmt.Errorf("unknown pipe %q", r)
	}
	return p, nil
}

func parsePipes(lines []string) (aoc.Grid[pipe], error) {
	return aoc.ParseGrid(lines, parsePipe)
}

// connects reports whether p has a port facing d.
func (p pipe) connects(d aoc.Direction) bool {
	return p.kind == bend && (p.ports[0] == d || p.ports[1] == d)
}

// exit returns the port of p other than in.
func (p pipe) exit(in aoc.Direction) (aoc.Direction, bool) {
	switch {
	case !p.connects(in):
		return 0, false
	case p.ports[0] == in:
		return p.ports[1], true
	default:
		return p.ports[0], true
	}
}

func (p pipe) String() string {
	for r, q := range pipeRunes {
		if q.kind == p.kind && (p.kind != bend || q.connects(p.ports[0]) && q.connects(p.ports[1])) {
			return string(r)
		}
	}
	return "?"
}

// inferStart returns the shape of the Start cell at pos: a bend joining the
// first two directions, in aoc.Directions order, whose neighbour connects
// back to pos.
func inferStart(g aoc.Grid[pipe], pos aoc.Pt) (pipe, error) {
	var ports []aoc.Direction
	for _, d := range aoc.Directions {
		if n, ok := g.AtOk(pos.Move(d)); ok && n.connects(d.Opposite()) {
			ports = append(ports, d)
		}
	}
	if len(ports) < 2 {
		return pipe{}, fmt.Errorf("start at %v has %d connected neighbours; want 2", pos, len(ports))
	}
	return pipe{bend, [2]aoc.Direction{ports[0], ports[1]}}, nil
}

var errNoStart = errors.New("no start")

// traceLoop returns the positions of the loop through Start, in walk order,
// beginning at Start.
func traceLoop(g aoc.Grid[pipe]) ([]aoc.Pt, error) {
	// The padding lets the walk step off any edge cell without bounds
	// checks; it is ground, so a loop never passes through it.
	padded := g.Pad(pipe{kind: ground})
	origin := aoc.Pt{X: 1, Y: 1}

	s, ok := padded.Find(func(p pipe) bool { return p.kind == start })
	if !ok {
		return nil, errNoStart
	}
	shape, err := inferStart(padded, s)
	if err != nil {
		return nil, err
	}

	ring := []aoc.Pt{s.Sub(origin)}
	seen := make(set.Set[aoc.Pt])
	seen.Add(s)
	pos, dir := s, shape.ports[0]
	for {
		pos = pos.Move(dir)
		c := padded.At(pos)
		if c.kind == start {
			return ring, nil
		}
		if seen.Contains(pos) {
			return nil, fmt.Errorf("loop revisits %v", pos.Sub(origin))
		}
		next, ok := c.exit(dir.Opposite())
		if !ok {
			return nil, fmt.Errorf("dead end at %v moving %v", pos.Sub(origin), dir)
		}
		seen.Add(pos)
		ring = append(ring, pos.Sub(origin))
		dir = next
	}
}

/*
want=8

..F7.
.FJ|.
SJ.L7
|F--J
LJ...
*/
func (s solver) D10p1() any {
	g := aoc.Parsed(s.Puzzle, parsePipes)
	ring := aoc.MustGet(traceLoop(g))
	s.Debugf("ring of %s cells", humanize.Comma(int64(len(ring))))
	return len(ring) / 2
}

/*
want=4

...........
.S-------7.
.|F-----7|.
.||.....||.
.||.....||.
.|L-7.F-J|.
.|..|.|..|.
.L--J.L--J.
...........
*/
func (s solver) D10p2() any {
	g := aoc.Parsed(s.Puzzle, parsePipes)
	ring := aoc.MustGet(traceLoop(g))
	s.Debugf("start is %v", aoc.MustGet(inferStart(g, ring[0])))
	return aoc.PolygonInterior(ring)
}
