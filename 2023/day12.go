package main

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/maisem/aoc2023"
)

type spring byte

const (
	operational spring = '.'
	damaged     spring = '#'
	unknown     spring = '?'
)

// springRow is one line of the condition records: the observed springs and
// the lengths of the contiguous groups of damaged springs, in order.
type springRow struct {
	springs []spring
	runs    []int
}

func (r springRow) String() string {
	runs := make([]string, len(r.runs))
	for i, n := range r.runs {
		runs[i] = strconv.Itoa(n)
	}
	return string(r.springs) + " " + strings.Join(runs, ",")
}

func parseSpringRow(line string) (springRow, error) {
	pattern, list, ok := strings.Cut(line, " ")
	if !ok {
		return springRow{}, fmt.Errorf("missing separator in %q", line)
	}
	var r springRow
	for _, c := range []byte(pattern) {
		switch s := spring(c); s {
		case operational, damaged, unknown:
			r.springs = append(r.springs, s)
		default:
			return springRow{}, fmt.Errorf("bad spring %q in %q", c, line)
		}
	}
	for _, f := range strings.Split(list, ",") {
		n, err := strconv.Atoi(f)
		if err != nil {
			return springRow{}, fmt.Errorf("bad run in %q: %w", line, err)
		}
		if n <= 0 {
			return springRow{}, fmt.Errorf("bad run %d in %q", n, line)
		}
		r.runs = append(r.runs, n)
	}
	return r, nil
}

func parseSpringRows(lines []string) ([]springRow, error) {
	rows := make([]springRow, 0, len(lines))
	for i, line := range lines {
		r, err := parseSpringRow(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		rows = append(rows, r)
	}
	return rows, nil
}

// unfold returns r with its springs repeated n times, separated by unknown
// springs, and its runs repeated n times.
func (r springRow) unfold(n int) springRow {
	var out springRow
	for i := 0; i < n; i++ {
		if i > 0 {
			out.springs = append(out.springs, unknown)
		}
		out.springs = append(out.springs, r.springs...)
		out.runs = append(out.runs, r.runs...)
	}
	return out
}

func (r springRow) arrangements() uint64 {
	return arrangements(r.springs, r.runs)
}

// arrangements returns the number of ways to replace each unknown spring
// with an operational or damaged one such that the contiguous groups of
// damaged springs have exactly the lengths in runs.
func arrangements(springs []spring, runs []int) uint64 {
	n, k := len(springs), len(runs)
	// memo[i][j] is the count for springs[i:] and runs[j:], plus one;
	// zero means not yet computed.
	memo := aoc.MakeGrid[uint64](k+1, n+1)

	// fits reports whether a run of length r can start at i.
	fits := func(i, r int) bool {
		if i+r > n || slices.Contains(springs[i:i+r], operational) {
			return false
		}
		return i+r == n || springs[i+r] != damaged
	}

	var count func(i, j int) uint64
	count = func(i, j int) uint64 {
		if j == k {
			if slices.Contains(springs[i:], damaged) {
				return 0
			}
			return 1
		}
		if i == n {
			return 0
		}
		if v := memo[i][j]; v != 0 {
			return v - 1
		}
		var total uint64
		c := springs[i]
		if c != damaged {
			total += count(i+1, j)
		}
		if c != operational {
			if r := runs[j]; fits(i, r) {
				// Skip the run and the operational spring after it.
				total += count(min(i+r+1, n), j+1)
			}
		}
		memo[i][j] = total + 1
		return total
	}
	return count(0, 0)
}

func sumArrangements(rows []springRow, unfold int) uint64 {
	return aoc.Fold(rows, func(sum uint64, r springRow) uint64 {
		return sum + r.unfold(unfold).arrangements()
	}, 0)
}

/*
want=21

???.### 1,1,3
.??..??...?##. 1,1,3
?#?#?#?#?#?#?#? 1,3,1,6
????.#...#... 4,1,1
????.######..#####. 1,6,5
?###???????? 3,2,1
*/
func (s solver) D12p1() any {
	rows := aoc.Parsed(s.Puzzle, parseSpringRows)
	for _, r := range rows {
		s.Debugf("%v: %d", r, r.arrangements())
	}
	return sumArrangements(rows, 1)
}

// want=525152
func (s solver) D12p2() any {
	return sumArrangements(aoc.Parsed(s.Puzzle, parseSpringRows), 5)
}
