// Package loader reads AArch64 code images for disassembly.
package loader

import (
	"debug/elf"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/samber/lo"
)

// ErrUnmapped reports an address outside every loaded segment.
var ErrUnmapped = errors.New("address not mapped")

// SegmentFlags represents memory protection flags for a segment.
type SegmentFlags uint32

const (
	// SegmentFlagExecute indicates the segment is executable.
	SegmentFlagExecute SegmentFlags = 1 << iota
	// SegmentFlagWrite indicates the segment is writable.
	SegmentFlagWrite
	// SegmentFlagRead indicates the segment is readable.
	SegmentFlagRead
)

// Segment is a loadable region of the image.
type Segment struct {
	// VirtAddr is the virtual address of the first byte.
	VirtAddr uint64
	// Data contains the segment contents from the file.
	Data []byte
	// MemSize is the size in memory (may be larger than len(Data) for BSS).
	MemSize uint64
	// Flags contains the segment protection flags.
	Flags SegmentFlags
}

// Contains reports whether addr lies within the file-backed part of the
// segment.
func (s *Segment) Contains(addr uint64) bool {
	return addr >= s.VirtAddr && addr-s.VirtAddr < uint64(len(s.Data))
}

// Symbol is a named function in the image.
type Symbol struct {
	Name string
	Addr uint64
	Size uint64
}

// Image is a code image ready to be disassembled.
type Image struct {
	// EntryPoint is the virtual address where execution begins.
	EntryPoint uint64
	// Segments contains all loadable segments.
	Segments []Segment
	// Symbols contains function symbols sorted by address.
	Symbols []Symbol
}

// Load parses an AArch64 ELF binary into an Image.
func Load(path string) (*Image, error) {
	f, err := elf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open ELF file: %w", err)
	}
	defer func() { _ = f.Close() }()

	if f.Class != elf.ELFCLASS64 {
		return nil, fmt.Errorf("not a 64-bit ELF file")
	}

	if f.Machine != elf.EM_AARCH64 {
		return nil, fmt.Errorf("not an ARM64 ELF file (machine type: %v)", f.Machine)
	}

	img := &Image{EntryPoint: f.Entry}

	for _, phdr := range f.Progs {
		if phdr.Type != elf.PT_LOAD {
			continue
		}

		data := make([]byte, phdr.Filesz)
		if phdr.Filesz > 0 {
			n, err := phdr.ReadAt(data, 0)
			if err != nil && err != io.EOF {
				return nil, fmt.Errorf("failed to read segment at 0x%x: %w", phdr.Vaddr, err)
			}
			if uint64(n) != phdr.Filesz {
				return nil, fmt.Errorf("short read for segment at 0x%x: got %d bytes, expected %d",
					phdr.Vaddr, n, phdr.Filesz)
			}
		}

		img.Segments = append(img.Segments, Segment{
			VirtAddr: phdr.Vaddr,
			Data:     data,
			MemSize:  phdr.Memsz,
			Flags:    segmentFlags(phdr.Flags),
		})
	}

	syms, err := f.Symbols()
	if err != nil && !errors.Is(err, elf.ErrNoSymbols) {
		return nil, fmt.Errorf("failed to read symbols: %w", err)
	}
	img.Symbols = functionSymbols(syms)

	return img, nil
}

// FromWords builds an image holding words at consecutive addresses from
// base, as typed on a command line or captured from a target.
func FromWords(base uint64, words []uint32) *Image {
	data := make([]byte, 4*len(words))
	for i, word := range words {
		binary.LittleEndian.PutUint32(data[4*i:], word)
	}
	return &Image{
		EntryPoint: base,
		Segments: []Segment{{
			VirtAddr: base,
			Data:     data,
			MemSize:  uint64(len(data)),
			Flags:    SegmentFlagRead | SegmentFlagExecute,
		}},
	}
}

func segmentFlags(pf elf.ProgFlag) SegmentFlags {
	var flags SegmentFlags
	if pf&elf.PF_X != 0 {
		flags |= SegmentFlagExecute
	}
	if pf&elf.PF_W != 0 {
		flags |= SegmentFlagWrite
	}
	if pf&elf.PF_R != 0 {
		flags |= SegmentFlagRead
	}
	return flags
}

func functionSymbols(syms []elf.Symbol) []Symbol {
	var result []Symbol
	for _, s := range syms {
		if elf.ST_TYPE(s.Info) != elf.STT_FUNC || s.Value == 0 || s.Name == "" {
			continue
		}
		result = append(result, Symbol{Name: s.Name, Addr: s.Value, Size: s.Size})
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Addr < result[j].Addr
	})
	return result
}

// ReadWord reads the little-endian instruction word at addr.
func (img *Image) ReadWord(addr uint64) (uint32, error) {
	for i := range img.Segments {
		seg := &img.Segments[i]
		if !seg.Contains(addr) {
			continue
		}
		off := addr - seg.VirtAddr
		if off+4 > uint64(len(seg.Data)) {
			break
		}
		return binary.LittleEndian.Uint32(seg.Data[off:]), nil
	}
	return 0, fmt.Errorf("%w: 0x%x", ErrUnmapped, addr)
}

// SymbolAt returns the name of the function starting at addr.
func (img *Image) SymbolAt(addr uint64) (string, bool) {
	i := sort.Search(len(img.Symbols), func(i int) bool {
		return img.Symbols[i].Addr >= addr
	})
	if i < len(img.Symbols) && img.Symbols[i].Addr == addr {
		return img.Symbols[i].Name, true
	}
	return "", false
}

// ExecutableSegments returns the segments that hold code.
func (img *Image) ExecutableSegments() []Segment {
	return lo.Filter(img.Segments, func(seg Segment, _ int) bool {
		return seg.Flags&SegmentFlagExecute != 0 && len(seg.Data) > 0
	})
}
