// Package crosscheck compares the decoder against golang.org/x/arch's
// arm64asm decoder, mnemonic by mnemonic.
package crosscheck

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"golang.org/x/arch/arm64/arm64asm"

	"github.com/sarchlab/a64dis/insts"
)

// Result is the outcome of decoding one word with both decoders.
type Result struct {
	Word uint32
	PC   uint64

	Ours      string // text from insts; ".inst" when unallocated
	OursValid bool

	Theirs      string // GNU syntax text from arm64asm
	TheirsValid bool
}

// OursMnemonic returns the first word of our text.
func (r Result) OursMnemonic() string {
	return mnemonic(r.Ours)
}

// TheirsMnemonic returns the first word of arm64asm's text.
func (r Result) TheirsMnemonic() string {
	return mnemonic(r.Theirs)
}

// Agree reports whether both decoders reject the word or both accept it
// with the same mnemonic.
func (r Result) Agree() bool {
	if r.OursValid != r.TheirsValid {
		return false
	}
	return !r.OursValid || r.OursMnemonic() == r.TheirsMnemonic()
}

// String describes the result on one line.
func (r Result) String() string {
	theirs := r.Theirs
	if !r.TheirsValid {
		theirs = "<invalid>"
	}
	return fmt.Sprintf("0x%08x: %q vs %q", r.Word, r.Ours, theirs)
}

func mnemonic(text string) string {
	text = strings.ToLower(strings.TrimSpace(text))
	if i := strings.IndexByte(text, ' '); i >= 0 {
		return text[:i]
	}
	return text
}

// Report summarizes a batch of comparisons.
type Report struct {
	Checked       int
	Agreed        int
	Disagreements []Result
}

// ByMnemonic groups the disagreements by our mnemonic.
func (r Report) ByMnemonic() map[string][]Result {
	return lo.GroupBy(r.Disagreements, func(res Result) string {
		return res.OursMnemonic()
	})
}

// Checker runs both decoders.
type Checker struct {
	decoder *insts.Decoder
	log     logrus.FieldLogger
}

// New creates a Checker that uses decoder for our side.
func New(decoder *insts.Decoder, log logrus.FieldLogger) *Checker {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Checker{decoder: decoder, log: log}
}

// Check decodes word at pc with both decoders.
func (c *Checker) Check(word uint32, pc uint64) Result {
	r := Result{Word: word, PC: pc}

	inst, err := c.decoder.Decode(word, pc)
	r.Ours = inst.Text
	r.OursValid = err == nil

	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], word)
	theirs, err := arm64asm.Decode(buf[:])
	if err == nil {
		r.Theirs = arm64asm.GNUSyntax(theirs)
		r.TheirsValid = true
	}

	return r
}

// Word is an instruction word at its address.
type Word struct {
	PC   uint64
	Word uint32
}

// CheckWords compares consecutive words starting at base.
func (c *Checker) CheckWords(base uint64, words []uint32) Report {
	return c.CheckAll(lo.Map(words, func(word uint32, i int) Word {
		return Word{PC: base + uint64(4*i), Word: word}
	}))
}

// CheckAll compares words that need not be consecutive.
func (c *Checker) CheckAll(words []Word) Report {
	var report Report
	for _, w := range words {
		r := c.Check(w.Word, w.PC)
		report.Checked++
		if r.Agree() {
			report.Agreed++
			continue
		}
		report.Disagreements = append(report.Disagreements, r)
		c.log.WithFields(logrus.Fields{
			"addr":   fmt.Sprintf("0x%x", r.PC),
			"word":   fmt.Sprintf("0x%08x", r.Word),
			"ours":   r.Ours,
			"theirs": r.Theirs,
		}).Debug("Decoders disagree")
	}
	return report
}
