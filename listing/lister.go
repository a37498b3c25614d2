// Package listing produces disassembly listings for a debugger view.
//
// A Lister reads instruction words from a Source, decodes them a block at
// a time and keeps the decoded blocks in a set-associative cache so that
// scrolling back and forth over the same code does not decode it again.
package listing

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/sarchlab/a64dis/insts"
)

// ErrMisaligned reports a listing address that is not word aligned.
var ErrMisaligned = errors.New("address not word aligned")

// Source supplies instruction words.
type Source interface {
	// ReadWord reads the little-endian word at addr.
	ReadWord(addr uint64) (uint32, error)
}

// SymbolLookup resolves an address to a symbolic name.
type SymbolLookup func(addr uint64) (name string, ok bool)

// Line is one row of a listing.
type Line struct {
	Addr uint64
	Word uint32
	// Inst is shared with the cache and must not be released.
	Inst *insts.Instruction
	// Err is set when the word could not be read or decoded.
	Err error

	Flow      insts.Flow
	Target    uint64
	HasTarget bool
}

// Mapped reports whether the word could be read.
func (l Line) Mapped() bool {
	return l.Inst != nil
}

// Decoded reports whether the word is a valid instruction.
func (l Line) Decoded() bool {
	return l.Inst != nil && l.Err == nil
}

// Lister produces listings. It is not safe for concurrent use.
type Lister struct {
	config  *Config
	decoder *insts.Decoder
	source  Source
	cache   *Cache
	symbols SymbolLookup
	log     logrus.FieldLogger
}

// Option configures a Lister.
type Option func(*Lister)

// WithSymbols sets the symbol resolver used to label lines and targets.
func WithSymbols(lookup SymbolLookup) Option {
	return func(l *Lister) {
		l.symbols = lookup
	}
}

// WithLogger sets the logger undecodable words are reported to.
func WithLogger(log logrus.FieldLogger) Option {
	return func(l *Lister) {
		l.log = log
	}
}

// New creates a Lister over source.
func New(source Source, config *Config, opts ...Option) (*Lister, error) {
	if config == nil {
		config = DefaultConfig()
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid listing config: %w", err)
	}

	decoder := insts.NewDecoder(
		insts.WithAliases(config.Aliases),
		insts.WithFields(config.Fields),
	)

	l := &Lister{
		config:  config.Clone(),
		decoder: decoder,
		source:  source,
		cache:   NewCache(config.CacheBlocks, config.Associativity, config.BlockWords),
		log:     logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l, nil
}

// Config returns a copy of the listing configuration.
func (l *Lister) Config() *Config {
	return l.config.Clone()
}

// Stats returns decoded block cache statistics.
func (l *Lister) Stats() Statistics {
	return l.cache.Stats()
}

// Invalidate drops the decoded block holding addr.
func (l *Lister) Invalidate(addr uint64) {
	l.cache.Invalidate(addr)
}

// Reset drops every decoded block.
func (l *Lister) Reset() {
	l.cache.Reset()
}

// At returns the line at addr.
func (l *Lister) At(addr uint64) (Line, error) {
	if addr%4 != 0 {
		return Line{}, fmt.Errorf("%w: 0x%x", ErrMisaligned, addr)
	}
	return l.cache.Read(addr, l.fill).Line, nil
}

// Disassemble returns count lines starting at addr. Unreadable words
// produce lines with Err set rather than stopping the listing.
func (l *Lister) Disassemble(addr uint64, count int) ([]Line, error) {
	if addr%4 != 0 {
		return nil, fmt.Errorf("%w: 0x%x", ErrMisaligned, addr)
	}
	if count < 0 || count > l.config.MaxLines {
		return nil, fmt.Errorf("listing of %d lines outside 0..max_lines %d", count, l.config.MaxLines)
	}

	lines := make([]Line, 0, count)
	for i := 0; i < count; i++ {
		lines = append(lines, l.cache.Read(addr+uint64(4*i), l.fill).Line)
	}
	return lines, nil
}

// Range returns the lines covering [start, end).
func (l *Lister) Range(start, end uint64) ([]Line, error) {
	if end < start {
		return nil, fmt.Errorf("range end 0x%x before start 0x%x", end, start)
	}
	return l.Disassemble(start, int((end-start+3)/4))
}

// fill decodes one block of words.
func (l *Lister) fill(blockAddr uint64, lines []Line) {
	for i := range lines {
		addr := blockAddr + uint64(4*i)
		lines[i] = l.decodeLine(addr)
	}
}

func (l *Lister) decodeLine(addr uint64) Line {
	line := Line{Addr: addr}

	word, err := l.source.ReadWord(addr)
	if err != nil {
		line.Err = err
		return line
	}
	line.Word = word

	inst, err := l.decoder.Decode(word, addr)
	line.Inst = inst
	if err != nil {
		line.Err = err
		l.log.WithFields(logrus.Fields{
			"addr": fmt.Sprintf("0x%x", addr),
			"word": fmt.Sprintf("0x%08x", word),
		}).Debug("Undecodable instruction")
		return line
	}

	line.Flow = inst.Flow()
	line.Target, line.HasTarget = inst.BranchTarget()
	return line
}

// Format renders lines in objdump style, one per row:
//
//	<addr>:	<word> 	<text> <target symbol>
//
// Lines that start a symbol are preceded by a "<name>:" label.
func (l *Lister) Format(lines []Line) string {
	var b strings.Builder
	for _, line := range lines {
		if name, ok := l.lookup(line.Addr); ok {
			fmt.Fprintf(&b, "\n%016x <%s>:\n", line.Addr, name)
		}

		if !line.Mapped() {
			fmt.Fprintf(&b, "%8x:\t<unmapped>\n", line.Addr)
			continue
		}

		fmt.Fprintf(&b, "%8x:\t%08x \t%s", line.Addr, line.Word, line.Inst.Text)
		if line.HasTarget {
			if name, ok := l.lookup(line.Target); ok {
				fmt.Fprintf(&b, " <%s>", name)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func (l *Lister) lookup(addr uint64) (string, bool) {
	if l.symbols == nil {
		return "", false
	}
	return l.symbols(addr)
}
