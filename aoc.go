// Package aoc are quick & dirty utilities for solving Advent of Code
// problems.
//
// A solver is a struct embedding *Puzzle with methods named D{day}p{part}
// returning any. Run finds those methods, checks each one against the sample
// declared in its doc comment, then runs it on the real input.
//
// A sample is written as a comment of the form:
//
//	/*
//	want=42
//
//	sample input
//	*/
//
// If the input is omitted, the previous sample's input in the same file is
// reused.
package aoc

import (
	"flag"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"reflect"
	"regexp"
	"slices"
	"strings"
	"sync"
	"time"

	"golang.org/x/exp/maps"
	"tailscale.com/util/deephash"
	"tailscale.com/util/mak"
)

type sample struct {
	input string
	want  string
}

var sampleRx = regexp.MustCompile(`(?sm)^\s*want=([^\n]*)(?:\s+(.+\n))?\s*`)

func parseSample(comment string) (sample, bool) {
	text := strings.TrimPrefix(comment, "//")
	if v, ok := strings.CutPrefix(text, "/*"); ok {
		text = strings.TrimSuffix(v, "*/")
	}
	if m := sampleRx.FindStringSubmatch(text); m != nil {
		s := sample{
			want:  m[1],
			input: m[2],
		}
		return s, true
	}
	var zero sample
	return zero, false
}

func extractSamples(filename string, src []byte) map[string]sample {
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, filename, src, parser.ParseComments)
	if err != nil {
		log.Fatalf("parsing source to extract samples: %v", err)
	}
	var lastInput string
	samples := make(map[string]sample)
	for _, d := range f.Decls {
		fd, ok := d.(*ast.FuncDecl)
		if !ok || fd.Doc == nil {
			continue
		}
		funcName := fd.Name.Name
		for _, c := range fd.Doc.List {
			s, ok := parseSample(c.Text)
			if ok {
				s.input = Or(s.input, lastInput)
				samples[funcName] = s
				lastInput = s.input
				break
			}
		}
	}
	return samples
}

// extractAllSamples extracts the samples of every .go file at the top of
// sources.
func extractAllSamples(sources fs.FS) map[string]sample {
	names := MustGet(fs.Glob(sources, "*.go"))
	slices.Sort(names)
	samples := make(map[string]sample)
	for _, name := range names {
		for fn, s := range extractSamples(name, MustGet(fs.ReadFile(sources, name))) {
			samples[fn] = s
		}
	}
	return samples
}

type Puzzle struct {
	year       int
	day        day
	SampleMode bool

	solver  partSolver
	samples map[string]sample

	input  []byte // real input, once read
	parsed map[parseKey]any
}

// Day returns the day of the puzzle being solved.
func (p *Puzzle) Day() int {
	return p.day.day
}

// InputPath returns the path of the real input: the -input flag if set,
// otherwise input.txt in the day's directory.
func (p *Puzzle) InputPath() string {
	if flagInput != "" {
		return flagInput
	}
	return filepath.Join(fmt.Sprintf("day%d", p.Day()), "input.txt")
}

// Input returns the sample input in sample mode, and the real input
// otherwise. A missing or unreadable input file is fatal.
func (p *Puzzle) Input() []byte {
	if p.SampleMode {
		return []byte(p.Sample().input)
	}
	if p.input == nil {
		b, err := os.ReadFile(p.InputPath())
		if err != nil {
			log.Fatalf("day %d: reading input: %v", p.Day(), err)
		}
		p.input = b
	}
	return p.input
}

// Lines returns the lines of the current input.
func (p *Puzzle) Lines() []string {
	return Lines(p.Input())
}

// Lines splits in into lines. CRLF line endings are accepted, and a trailing
// newline (or trailing blank lines) does not produce empty lines.
func Lines(in []byte) []string {
	s := strings.ReplaceAll(string(in), "\r\n", "\n")
	s = strings.TrimRight(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

type parseKey struct {
	input deephash.Sum
	typ   reflect.Type
}

// Parsed returns parse applied to the lines of p's current input. Results are
// cached on p by input contents and result type so that both parts of a day
// share one parse of the same input. A parse error is fatal.
func Parsed[T any](p *Puzzle, parse func(lines []string) (T, error)) T {
	in := p.Input()
	k := parseKey{
		input: deephash.Hash(&in),
		typ:   reflect.TypeOf((*T)(nil)).Elem(),
	}
	if v, ok := p.parsed[k]; ok {
		return v.(T)
	}
	v, err := parse(p.Lines())
	if err != nil {
		log.Fatalf("day %d: parsing input: %v", p.Day(), err)
	}
	mak.Set(&p.parsed, k, any(v))
	return v
}

func (p *Puzzle) Debug(v ...any) {
	if flagDebug {
		fmt.Println(v...)
	}
}

func (p *Puzzle) Debugf(format string, args ...any) {
	if flagDebug && p.SampleMode {
		fmt.Printf(format+"\n", args...)
	}
}

func (p *Puzzle) Sample() sample {
	sample, ok := p.samples[p.solver.Name]
	if !ok {
		log.Fatalf("no sample found for %v", p.solver.Name)
	}
	return sample
}

type day struct {
	day   int
	parts []partSolver
}

type partSolver struct {
	Part string
	Name string
}

// extractMethods finds the methods of x named D{day}p{part} for each
// day/part of Advent of Code. The methods must have the signature
// func() any.
func extractMethods(x any) map[int]day {
	rx := regexp.MustCompile(`^D(\d+)p(\d+.*)$`)
	if v := reflect.ValueOf(x); v.Kind() != reflect.Pointer || v.Elem().Kind() != reflect.Struct {
		log.Fatalf("Run: got %T; want pointer to struct", x)
	}
	vt := reflect.TypeOf(x)
	byDays := map[int][]partSolver{}
	for i := 0; i < vt.NumMethod(); i++ {
		mt := vt.Method(i)
		mn := mt.Name
		matches := rx.FindStringSubmatch(mn)
		if len(matches) != 3 {
			continue
		}
		if mt.Type.NumIn() != 1 || mt.Type.NumOut() != 1 {
			log.Fatalf("%s: want signature func() any; got %v", mn, mt.Type)
		}
		day, part := matches[1], matches[2]
		d := Int(day)
		byDays[d] = append(byDays[d], partSolver{
			Part: part,
			Name: mn,
		})
	}
	days := make(map[int]day, len(byDays))
	for d, parts := range byDays {
		slices.SortFunc(parts, func(i, j partSolver) int {
			return strings.Compare(i.Part, j.Part)
		})
		days[d] = day{parts: parts, day: d}
	}
	return days
}

var (
	flagCurDay     int
	flagPart       string
	flagInput      string
	flagDebug      bool
	flagOnlySample bool
	flagSkipSample bool
)

func init() {
	flag.IntVar(&flagCurDay, "day", -1, "day to run")
	flag.BoolVar(&flagOnlySample, "sample", false, "only run sample")
	flag.BoolVar(&flagSkipSample, "skip-sample", false, "skip sample")
	flag.BoolVar(&flagDebug, "debug", false, "debug mode")
	flag.StringVar(&flagPart, "part", "", "part to run")
	flag.StringVar(&flagInput, "input", "", "input file; defaults to day<N>/input.txt")
}

var initFlags = sync.OnceFunc(flag.Parse)

func runDay(slvr any, year int, day day, samples map[string]sample) {
	p := Puzzle{
		year:    year,
		day:     day,
		samples: samples,
	}
	fmt.Printf("Running %d day %d\n", year, day.day)
	sr := reflect.ValueOf(slvr)
	sr.Elem().FieldByName("Puzzle").Set(reflect.ValueOf(&p))
	for _, ps := range day.parts {
		p.solver = ps
		if flagPart != "" && ps.Part != flagPart {
			continue
		}
		fn := sr.MethodByName(ps.Name).Interface().(func() any)

		for _, sm := range []bool{true, false} {
			if !sm && flagOnlySample {
				continue
			} else if sm && flagSkipSample {
				continue
			}
			p.SampleMode = sm
			if !sm {
				// Prime the input.
				p.Debug("reading", p.InputPath())
				p.Input()
			}
			t0 := time.Now()
			got := fn()
			if sm {
				sample := p.Sample()
				if fmt.Sprint(got) != sample.want {
					fmt.Printf("part %s: %v ❌; want %v\n", ps.Part, got, sample.want)
					return
				}
				fmt.Printf("part %s sample: %v ✅ (%v) \n", ps.Part, got, time.Since(t0).Round(time.Microsecond))
			} else {
				fmt.Printf("part %s: %v (took %v) \n", ps.Part, got, time.Since(t0).Round(time.Microsecond))
			}
		}
	}
}

// Run runs the D{day}p{part} methods of slvr, a pointer to a struct
// embedding *Puzzle, for the given year. Samples are read from the .go files
// in sources.
func Run(year int, sources fs.FS, slvr any) {
	samples := extractAllSamples(sources)
	days := extractMethods(slvr)
	initFlags()

	if flagCurDay != -1 {
		day, ok := days[flagCurDay]
		if !ok {
			log.Fatalf("no day %d", flagCurDay)
		}
		runDay(slvr, year, day, samples)
		return
	}

	dayNums := maps.Keys(days)
	slices.Sort(dayNums)
	for _, day := range dayNums {
		runDay(slvr, year, days[day], samples)
		fmt.Println()
	}
}

// MustGet returns v as is. It panics if err is non-nil.
func MustGet[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// Or returns the first non-zero value in list.
func Or[T any](list ...T) T {
	for _, v := range list {
		if !reflect.ValueOf(v).IsZero() {
			return v
		}
	}
	var zero T
	return zero
}
