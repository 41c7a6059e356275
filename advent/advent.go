package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/cespare/wait"
	"github.com/dustin/go-humanize"
	"github.com/felixge/fgprof"
)

func usage() {
	fmt.Fprintf(os.Stderr, `usage:
  %[1]s [flags] name...      run solutions (e.g. 3a; 3 for both parts; all)
  %[1]s import day file      copy a puzzle input into the input directory
  %[1]s repl name            read inputs interactively, one per line

flags:
`, os.Args[0])
	flag.PrintDefaults()
	fmt.Fprintln(os.Stderr, "\nwhere name is one of:")
	for _, name := range solutionNames() {
		fmt.Fprintln(os.Stderr, name)
	}
}

func main() {
	log.SetFlags(0)
	var (
		configFile = flag.String("config", "", "ini config file (default $HOME/.config/advent/config.ini)")
		inputDir   = flag.String("inputdir", "", "directory holding NN.txt puzzle inputs (overrides config)")
		noSample   = flag.Bool("nosample", false, "skip checking the sample input first")
		parallel   = flag.Bool("parallel", false, "run the named solutions concurrently")
		profile    = flag.String("profile", "", "write an fgprof (pprof format) profile of the runs to this file")
		verbose    = flag.Bool("v", false, "verbose logging")
	)
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}

	conf, err := loadConfig(*configFile)
	if err != nil {
		log.Fatal(err)
	}
	if *inputDir != "" {
		conf.inputDir = *inputDir
	}
	r := &runner{
		conf:     conf,
		noSample: *noSample,
		verbose:  *verbose,
	}

	args := flag.Args()
	switch args[0] {
	case "import":
		if len(args) != 3 {
			log.Fatal("usage: import day file")
		}
		day, err := strconv.Atoi(args[1])
		if err != nil {
			log.Fatalf("bad day %q", args[1])
		}
		if err := importInput(conf.inputDir, day, args[2]); err != nil {
			log.Fatal(err)
		}
		return
	case "repl":
		if len(args) != 2 {
			log.Fatal("usage: repl name")
		}
		s, ok := solutions[args[1]]
		if !ok {
			log.Fatalf("unknown solution %q", args[1])
		}
		if err := repl(args[1], s, *verbose); err != nil {
			log.Fatal(err)
		}
		return
	}

	names, err := expandNames(args)
	if err != nil {
		log.Fatal(err)
	}
	if err := r.runAll(names, *parallel, *profile); err != nil {
		log.Fatal(err)
	}
}

// A solution solves one part of one day's puzzle. The sample input is
// checked against want before the real input is used.
type solution struct {
	fn     func(r io.Reader) (uint64, error)
	sample string
	want   uint64

	// explain, if set, describes how fn sees an input; used by repl -v.
	explain func(input string) any
}

var solutions = make(map[string]solution)

func register(name string, s solution) {
	if _, ok := solutions[name]; ok {
		panic(fmt.Sprintf("duplicate solutions registered for %q", name))
	}
	solutions[name] = s
}

func solutionNames() []string {
	var names []string
	for name := range solutions {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return nameLess(names[i], names[j]) })
	return names
}

// expandNames turns command-line names into solution names: "all" is
// every solution and a bare day number is every part of that day.
func expandNames(args []string) ([]string, error) {
	all := solutionNames()
	var names []string
	for _, arg := range args {
		if arg == "all" {
			names = append(names, all...)
			continue
		}
		if _, ok := solutions[arg]; ok {
			names = append(names, arg)
			continue
		}
		n := len(names)
		if day, err := strconv.Atoi(arg); err == nil {
			for _, name := range all {
				if d, _ := splitName(name); d == day {
					names = append(names, name)
				}
			}
		}
		if len(names) == n {
			return nil, fmt.Errorf("unknown solution %q", arg)
		}
	}
	return names, nil
}

func nameLess(name0, name1 string) bool {
	n0, s0 := splitName(name0)
	n1, s1 := splitName(name1)
	if n0 < n1 {
		return true
	}
	if n0 > n1 {
		return false
	}
	return s0 < s1
}

func splitName(name string) (int, string) {
	i := 0
	for ; i < len(name); i++ {
		c := name[i]
		if c < '0' || c > '9' {
			break
		}
	}
	n, err := strconv.Atoi(name[:i])
	if err != nil {
		panic(err)
	}
	return n, name[i:]
}

type runner struct {
	conf     *config
	noSample bool
	verbose  bool

	// Overridden in tests.
	readInput func(day int) ([]byte, error)
	stdout    io.Writer
}

type result struct {
	name   string
	answer uint64
	timing timing
	size   int
}

var errSampleMismatch = errors.New("wrong answer for sample input")

func (r *runner) run(name string) (*result, error) {
	s := solutions[name]
	if !r.noSample {
		got, err := s.fn(strings.NewReader(s.sample))
		if err != nil {
			return nil, fmt.Errorf("%s: sample: %s", name, err)
		}
		if got != s.want {
			return nil, fmt.Errorf("%s: %w: got %d; want %d", name, errSampleMismatch, got, s.want)
		}
		if r.verbose {
			log.Printf("%s: sample ok (%d)", name, got)
		}
	}
	day, _ := splitName(name)
	read := r.readInput
	if read == nil {
		read = r.conf.readInput
	}
	b, err := read(day)
	if err != nil {
		return nil, err
	}
	t := startTiming()
	answer, err := s.fn(bytes.NewReader(b))
	tm := t.stop()
	if err != nil {
		return nil, fmt.Errorf("%s: %s", name, err)
	}
	return &result{name: name, answer: answer, timing: tm, size: len(b)}, nil
}

func (r *runner) runAll(names []string, parallel bool, profile string) error {
	if profile != "" {
		f, err := os.Create(profile)
		if err != nil {
			return err
		}
		defer f.Close()
		stop := fgprof.Start(f, fgprof.FormatPprof)
		defer func() {
			if err := stop(); err != nil {
				log.Printf("error writing profile: %s", err)
			}
		}()
	}

	results := make([]*result, len(names))
	if parallel {
		var wg wait.Group
		for i, name := range names {
			wg.Go(func(quit <-chan struct{}) error {
				select {
				case <-quit:
					return nil
				default:
				}
				res, err := r.run(name)
				if err != nil {
					return err
				}
				results[i] = res
				return nil
			})
		}
		if err := wg.Wait(); err != nil {
			return err
		}
	} else {
		for i, name := range names {
			res, err := r.run(name)
			if err != nil {
				return err
			}
			results[i] = res
		}
	}

	w := r.stdout
	if w == nil {
		w = os.Stdout
	}
	for _, res := range results {
		log.Printf("%s: %s input; %s", res.name, humanize.Bytes(uint64(res.size)), res.timing)
		if len(results) == 1 {
			fmt.Fprintln(w, res.answer)
		} else {
			fmt.Fprintf(w, "%s: %d\n", res.name, res.answer)
		}
	}
	return nil
}
