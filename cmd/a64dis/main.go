// Package main provides the entry point for a64dis.
// a64dis disassembles AArch64 ELF files or raw instruction words.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"

	"github.com/sarchlab/a64dis/crosscheck"
	"github.com/sarchlab/a64dis/insts"
	"github.com/sarchlab/a64dis/listing"
	"github.com/sarchlab/a64dis/loader"
)

// options holds the parsed command line.
type options struct {
	configPath string
	verbose    bool
	dump       bool
	crossCheck bool
	noAliases  bool
	words      bool
	start      uint64
	count      int
	args       []string
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	opts, err := parseOptions(args, stderr)
	if err != nil {
		return 2
	}

	log := logrus.New()
	log.SetOutput(stderr)
	if opts.verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	config := listing.DefaultConfig()
	if opts.configPath != "" {
		config, err = listing.LoadConfig(opts.configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Error loading listing config: %v\n", err)
			return 1
		}
	}
	if opts.noAliases {
		config.Aliases = false
	}
	if opts.dump {
		config.Fields = true
	}

	img, ranges, err := loadImage(opts)
	if err != nil {
		fmt.Fprintf(stderr, "Error loading program: %v\n", err)
		return 1
	}

	if opts.verbose {
		log.WithFields(logrus.Fields{
			"entry":    fmt.Sprintf("0x%x", img.EntryPoint),
			"segments": len(img.Segments),
			"symbols":  len(img.Symbols),
		}).Info("Loaded")
	}

	lister, err := listing.New(img, config,
		listing.WithLogger(log),
		listing.WithSymbols(img.SymbolAt),
	)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	var all []listing.Line
	for _, r := range ranges {
		lines, err := lister.Disassemble(r.start, r.count)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		fmt.Fprint(stdout, lister.Format(lines))
		if opts.dump {
			dumpLines(stdout, lines)
		}
		all = append(all, lines...)
	}

	if opts.verbose {
		printSummary(stdout, listing.Summarize(all), lister.Stats())
	}

	if opts.crossCheck {
		return runCrossCheck(stdout, log, config, all)
	}

	return 0
}

func parseOptions(args []string, stderr io.Writer) (*options, error) {
	fs := flag.NewFlagSet("a64dis", flag.ContinueOnError)
	fs.SetOutput(stderr)

	opts := &options{}
	var start string
	fs.StringVar(&opts.configPath, "config", "", "Path to listing configuration JSON file")
	fs.BoolVar(&opts.verbose, "v", false, "Verbose output")
	fs.BoolVar(&opts.dump, "dump", false, "Dump each decoded record")
	fs.BoolVar(&opts.crossCheck, "crosscheck", false, "Compare mnemonics against golang.org/x/arch")
	fs.BoolVar(&opts.noAliases, "no-aliases", false, "Show the underlying instruction instead of aliases")
	fs.BoolVar(&opts.words, "words", false, "Treat arguments as hex instruction words")
	fs.StringVar(&start, "start", "", "Start address (hex); default is each executable segment")
	fs.IntVar(&opts.count, "count", 0, "Number of instructions; default is to the end of the segment")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: a64dis [options] <program.elf>\n")
		fmt.Fprintf(stderr, "       a64dis -words [options] <hex word>...\n")
		fmt.Fprintf(stderr, "\nOptions:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	opts.args = fs.Args()

	if len(opts.args) < 1 {
		fs.Usage()
		return nil, fmt.Errorf("missing arguments")
	}

	if start != "" {
		v, err := parseHex(start)
		if err != nil {
			fmt.Fprintf(stderr, "Invalid -start: %v\n", err)
			return nil, err
		}
		opts.start = v
	}

	return opts, nil
}

// span is a range of words to list.
type span struct {
	start uint64
	count int
}

func loadImage(opts *options) (*loader.Image, []span, error) {
	if opts.words {
		words, err := parseWords(opts.args)
		if err != nil {
			return nil, nil, err
		}
		img := loader.FromWords(opts.start, words)
		count := len(words)
		if opts.count > 0 && opts.count < count {
			count = opts.count
		}
		return img, []span{{start: opts.start, count: count}}, nil
	}

	img, err := loader.Load(opts.args[0])
	if err != nil {
		return nil, nil, err
	}

	if opts.start != 0 {
		count := opts.count
		if count == 0 {
			count = segmentWordsFrom(img, opts.start)
		}
		return img, []span{{start: opts.start, count: count}}, nil
	}

	var spans []span
	for _, seg := range img.ExecutableSegments() {
		count := len(seg.Data) / 4
		if opts.count > 0 && opts.count < count {
			count = opts.count
		}
		spans = append(spans, span{start: seg.VirtAddr, count: count})
	}
	return img, spans, nil
}

// segmentWordsFrom counts the words from addr to the end of its segment.
func segmentWordsFrom(img *loader.Image, addr uint64) int {
	for _, seg := range img.Segments {
		if seg.Contains(addr) {
			return int(seg.VirtAddr+uint64(len(seg.Data))-addr) / 4
		}
	}
	return 0
}

func parseHex(s string) (uint64, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	return strconv.ParseUint(s, 16, 64)
}

// parseWords parses hex instruction words such as "d65f03c0" or
// "0x9100a820".
func parseWords(args []string) ([]uint32, error) {
	words := make([]uint32, 0, len(args))
	for _, arg := range args {
		v, err := parseHex(arg)
		if err != nil || v > 0xFFFFFFFF {
			return nil, fmt.Errorf("invalid instruction word %q", arg)
		}
		words = append(words, uint32(v))
	}
	return words, nil
}

func dumpLines(w io.Writer, lines []listing.Line) {
	cfg := spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, DisableCapacities: true}
	for _, line := range lines {
		if line.Inst == nil {
			continue
		}
		fmt.Fprintf(w, "%x:\n%s", line.Addr, cfg.Sdump(line.Inst))
	}
}

func printSummary(w io.Writer, s listing.Summary, stats listing.Statistics) {
	fmt.Fprintf(w, "\n")
	fmt.Fprintf(w, "Lines: %d\n", s.Lines)
	fmt.Fprintf(w, "Unmapped: %d\n", s.Unmapped)
	fmt.Fprintf(w, "Undecodable: %d\n", len(s.Undecodable))
	fmt.Fprintf(w, "Branch targets: %d\n", len(s.Targets))
	fmt.Fprintf(w, "Call targets: %d\n", len(s.Calls))
	fmt.Fprintf(w, "\n")
	fmt.Fprintf(w, "Groups:\n")
	for g := insts.GroupReserved; g <= insts.GroupSIMDFP; g++ {
		fmt.Fprintf(w, "  %-10s %d\n", g, s.Groups[g])
	}
	fmt.Fprintf(w, "\n")
	fmt.Fprintf(w, "Cache: %d reads, %d hits, %d misses, %d evictions\n",
		stats.Reads, stats.Hits, stats.Misses, stats.Evictions)
}

func runCrossCheck(w io.Writer, log logrus.FieldLogger, config *listing.Config, lines []listing.Line) int {
	checker := crosscheck.New(insts.NewDecoder(insts.WithAliases(config.Aliases)), log)

	words := lo.FilterMap(lines, func(line listing.Line, _ int) (crosscheck.Word, bool) {
		return crosscheck.Word{PC: line.Addr, Word: line.Word}, line.Mapped()
	})
	report := checker.CheckAll(words)

	fmt.Fprintf(w, "\nCross-check: %d/%d agree\n", report.Agreed, report.Checked)
	byMnemonic := report.ByMnemonic()
	mnemonics := lo.Keys(byMnemonic)
	slices.Sort(mnemonics)
	for _, m := range mnemonics {
		fmt.Fprintf(w, "  %s: %d\n", m, len(byMnemonic[m]))
		for _, r := range byMnemonic[m] {
			fmt.Fprintf(w, "    %s\n", r)
		}
	}

	if len(report.Disagreements) > 0 {
		return 1
	}
	return 0
}
