package aoc

import (
	"fmt"
	"reflect"
	"strings"

	"golang.org/x/exp/constraints"
	"tailscale.com/util/deephash"
)

// Grid is a rectangular grid of cells indexed as g[y][x], with row 0 at the
// top.
type Grid[T any] [][]T

func (g Grid[T]) At(p Pt) T {
	return g[p.Y][p.X]
}

func (g Grid[T]) Set(p Pt, v T) {
	g[p.Y][p.X] = v
}

// In reports whether p lies within the grid.
func (g Grid[T]) In(p Pt) bool {
	size := g.Size()
	return p.X >= 0 && p.Y >= 0 && p.X < size.X && p.Y < size.Y
}

func (g Grid[T]) AtOk(p Pt) (T, bool) {
	if !g.In(p) {
		var zero T
		return zero, false
	}
	return g[p.Y][p.X], true
}

func MakeGrid[T any](x, y int) Grid[T] {
	out := make(Grid[T], y)
	for i := range out {
		out[i] = make([]T, x)
	}
	return out
}

// ParseGrid builds a grid from lines, converting each rune with cell. All
// lines must have the same number of runes.
func ParseGrid[T any](lines []string, cell func(rune) (T, error)) (Grid[T], error) {
	if len(lines) == 0 {
		return nil, fmt.Errorf("empty grid")
	}
	out := make(Grid[T], 0, len(lines))
	width := -1
	for y, line := range lines {
		row := make([]T, 0, len(line))
		for x, r := range []rune(line) {
			v, err := cell(r)
			if err != nil {
				return nil, fmt.Errorf("line %d, column %d: %w", y+1, x+1, err)
			}
			row = append(row, v)
		}
		if width == -1 {
			width = len(row)
		} else if len(row) != width {
			return nil, fmt.Errorf("line %d: got %d cells; want %d", y+1, len(row), width)
		}
		out = append(out, row)
	}
	return out, nil
}

// Find returns the first point, in row-major order, whose cell satisfies f.
func (g Grid[T]) Find(f func(T) bool) (Pt, bool) {
	for y, row := range g {
		for x, v := range row {
			if f(v) {
				return Pt{x, y}, true
			}
		}
	}
	return Pt{}, false
}

// Pad returns a copy of g surrounded by one ring of fill cells. A point p in
// g is at p.Add(Pt{1, 1}) in the result.
func (g Grid[T]) Pad(fill T) Grid[T] {
	size := g.Size()
	out := MakeGrid[T](size.X+2, size.Y+2)
	for y := range out {
		for x := range out[y] {
			out[y][x] = fill
		}
	}
	for y, row := range g {
		copy(out[y+1][1:], row)
	}
	return out
}

type hashFn[T any] func(*T) deephash.Sum

var hashers map[reflect.Type]any // map[reflect.Type]hashFn[T]

// Hash returns a deep hash of the grid contents.
func (g Grid[T]) Hash() deephash.Sum {
	if hashers == nil {
		hashers = make(map[reflect.Type]any)
	}
	rt := reflect.TypeOf(g)
	h, ok := hashers[rt]
	if !ok {
		h = hashFn[Grid[T]](deephash.HasherForType[Grid[T]]())
		hashers[rt] = h
	}
	return h.(hashFn[Grid[T]])(&g)
}

func (g Grid[T]) Size() Pt {
	if len(g) == 0 {
		return Pt{}
	}
	return Pt{len(g[0]), len(g)}
}

func (g Grid[T]) String() string {
	var sb strings.Builder
	for _, row := range g {
		for _, v := range row {
			fmt.Fprint(&sb, v)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Direction is one of the four cardinal directions.
type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

// Directions lists the four cardinal directions clockwise from Up.
var Directions = [...]Direction{Up, Right, Down, Left}

func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

func (d Direction) Turn(right bool) Direction {
	if right {
		return (d + 1) % 4
	}
	return (d + 3) % 4
}

func (d Direction) String() string {
	switch d {
	case Left:
		return "<"
	case Right:
		return ">"
	case Up:
		return "^"
	case Down:
		return "v"
	}
	return ""
}

type Pt = Pt2[int]

type Pt2[T constraints.Signed] struct {
	X, Y T
}

func (p Pt2[T]) Add(o Pt2[T]) Pt2[T] {
	return Pt2[T]{p.X + o.X, p.Y + o.Y}
}

func (p Pt2[T]) Sub(o Pt2[T]) Pt2[T] {
	return Pt2[T]{p.X - o.X, p.Y - o.Y}
}

// Move returns the point one step from p in direction d.
func (p Pt2[T]) Move(d Direction) Pt2[T] {
	switch d {
	case Up:
		p.Y--
	case Right:
		p.X++
	case Down:
		p.Y++
	case Left:
		p.X--
	default:
		panic(fmt.Sprintf("bad direction %d", int(d)))
	}
	return p
}

// MDist returns the manhattan distance between a and b.
func (a Pt2[T]) MDist(b Pt2[T]) T {
	return AbsDiff[T](a.X, b.X) + AbsDiff[T](a.Y, b.Y)
}
