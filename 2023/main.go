// Command 2023 solves Advent of Code 2023 puzzles.
//
// Each day reads its input from day<N>/input.txt, relative to the working
// directory, after checking its sample answers:
//
//	go run ./2023 -day 17
package main

import (
	"embed"

	"github.com/maisem/aoc2023"
)

func main() {
	aoc.Run(2023, sources, &solver{})
}

//go:embed day10.go day12.go day17.go
var sources embed.FS

type solver struct {
	*aoc.Puzzle
}
