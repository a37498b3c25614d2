package loader_test

import (
	"encoding/binary"
	"errors"
	"os"
	"path/filepath"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/a64dis/loader"
)

func TestLoader(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Loader Suite")
}

var _ = Describe("ELF Loader", func() {
	var tempDir string

	// mov x0, #42; ret
	code := []byte{
		0x40, 0x05, 0x80, 0xd2,
		0xc0, 0x03, 0x5f, 0xd6,
	}

	BeforeEach(func() {
		var err error
		tempDir, err = os.MkdirTemp("", "elf-loader-test")
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		_ = os.RemoveAll(tempDir)
	})

	Describe("Load", func() {
		Context("with a valid ARM64 ELF binary", func() {
			var elfPath string

			BeforeEach(func() {
				elfPath = filepath.Join(tempDir, "test.elf")
				writeELF(elfPath, elfAArch64, 0x400080, elfSegment{
					ptype: ptLoad, flags: pfR | pfX, vaddr: 0x400000, data: code,
				})
			})

			It("should extract the entry point", func() {
				img, err := loader.Load(elfPath)
				Expect(err).NotTo(HaveOccurred())
				Expect(img.EntryPoint).To(Equal(uint64(0x400080)))
			})

			It("should load segment contents", func() {
				img, err := loader.Load(elfPath)
				Expect(err).NotTo(HaveOccurred())
				Expect(img.Segments).To(HaveLen(1))
				Expect(img.Segments[0].VirtAddr).To(Equal(uint64(0x400000)))
				Expect(img.Segments[0].Data).To(Equal(code))
				Expect(img.Segments[0].Flags & loader.SegmentFlagExecute).NotTo(BeZero())
			})

			It("should read instruction words", func() {
				img, err := loader.Load(elfPath)
				Expect(err).NotTo(HaveOccurred())

				word, err := img.ReadWord(0x400004)
				Expect(err).NotTo(HaveOccurred())
				Expect(word).To(Equal(uint32(0xD65F03C0)))
			})

			It("should have no symbols without a symbol table", func() {
				img, err := loader.Load(elfPath)
				Expect(err).NotTo(HaveOccurred())
				Expect(img.Symbols).To(BeEmpty())
			})
		})

		Context("with an invalid file", func() {
			It("should return error for non-existent file", func() {
				_, err := loader.Load("/nonexistent/path/to/file.elf")
				Expect(err).To(HaveOccurred())
				Expect(err.Error()).To(ContainSubstring("failed to open"))
			})

			It("should return error for non-ELF file", func() {
				notElfPath := filepath.Join(tempDir, "not-elf.bin")
				Expect(os.WriteFile(notElfPath, []byte("not an elf file"), 0644)).To(Succeed())

				_, err := loader.Load(notElfPath)
				Expect(err).To(HaveOccurred())
				Expect(err.Error()).To(ContainSubstring("ELF"))
			})

			It("should return error for x86-64 ELF", func() {
				elfPath := filepath.Join(tempDir, "x86.elf")
				writeELF(elfPath, elfX8664, 0)

				_, err := loader.Load(elfPath)
				Expect(err).To(HaveOccurred())
				Expect(err.Error()).To(ContainSubstring("not an ARM64"))
			})

			It("should return error for 32-bit ELF", func() {
				elfPath := filepath.Join(tempDir, "elf32.elf")
				header := make([]byte, 52)
				copy(header, []byte{0x7f, 'E', 'L', 'F', 1, 1, 1})
				binary.LittleEndian.PutUint16(header[16:18], 2)
				binary.LittleEndian.PutUint16(header[18:20], elfAArch64)
				binary.LittleEndian.PutUint32(header[20:24], 1)
				Expect(os.WriteFile(elfPath, header, 0644)).To(Succeed())

				_, err := loader.Load(elfPath)
				Expect(err).To(HaveOccurred())
				Expect(err.Error()).To(ContainSubstring("not a 64-bit"))
			})
		})

		Context("with several segments", func() {
			It("should load code and data segments", func() {
				elfPath := filepath.Join(tempDir, "multi.elf")
				data := []byte{0x01, 0x02, 0x03, 0x04}
				writeELF(elfPath, elfAArch64, 0x400000,
					elfSegment{ptype: ptLoad, flags: pfR | pfX, vaddr: 0x400000, data: code},
					elfSegment{ptype: ptLoad, flags: pfR | pfW, vaddr: 0x600000, data: data, memsz: 1024},
					elfSegment{ptype: ptNote, flags: pfR},
				)

				img, err := loader.Load(elfPath)
				Expect(err).NotTo(HaveOccurred())
				Expect(img.Segments).To(HaveLen(2))
				Expect(img.Segments[1].Data).To(Equal(data))
				Expect(img.Segments[1].MemSize).To(Equal(uint64(1024)))
				Expect(img.Segments[1].Flags & loader.SegmentFlagWrite).NotTo(BeZero())

				exec := img.ExecutableSegments()
				Expect(exec).To(HaveLen(1))
				Expect(exec[0].VirtAddr).To(Equal(uint64(0x400000)))
			})
		})
	})

	Describe("Image", func() {
		It("should build an image from words", func() {
			img := loader.FromWords(0x1000, []uint32{0x9100A820, 0xD65F03C0})

			Expect(img.EntryPoint).To(Equal(uint64(0x1000)))
			word, err := img.ReadWord(0x1004)
			Expect(err).NotTo(HaveOccurred())
			Expect(word).To(Equal(uint32(0xD65F03C0)))
		})

		It("should report unmapped addresses", func() {
			img := loader.FromWords(0x1000, []uint32{0xD65F03C0})

			_, err := img.ReadWord(0x1004)
			Expect(errors.Is(err, loader.ErrUnmapped)).To(BeTrue())
			_, err = img.ReadWord(0xFFC)
			Expect(errors.Is(err, loader.ErrUnmapped)).To(BeTrue())
		})

		It("should not read a word that crosses the end of a segment", func() {
			img := &loader.Image{Segments: []loader.Segment{
				{VirtAddr: 0x1000, Data: []byte{1, 2, 3, 4, 5, 6}},
			}}

			_, err := img.ReadWord(0x1004)
			Expect(errors.Is(err, loader.ErrUnmapped)).To(BeTrue())
		})

		It("should find symbols by address", func() {
			img := &loader.Image{Symbols: []loader.Symbol{
				{Name: "_start", Addr: 0x1000, Size: 8},
				{Name: "main", Addr: 0x1040, Size: 16},
			}}

			name, ok := img.SymbolAt(0x1040)
			Expect(ok).To(BeTrue())
			Expect(name).To(Equal("main"))

			_, ok = img.SymbolAt(0x1044)
			Expect(ok).To(BeFalse())
		})
	})
})

const (
	elfAArch64 = 183
	elfX8664   = 62

	ptLoad = 1
	ptNote = 4

	pfX = 0x1
	pfW = 0x2
	pfR = 0x4
)

// elfSegment describes one program header of a test binary. A zero memsz
// means the memory size equals the file size.
type elfSegment struct {
	ptype uint32
	flags uint32
	vaddr uint64
	data  []byte
	memsz uint64
}

// writeELF writes a little-endian ELF64 executable with the given program
// headers and no section headers.
func writeELF(path string, machine uint16, entry uint64, segs ...elfSegment) {
	const (
		ehsize    = 64
		phentsize = 56
	)

	header := make([]byte, ehsize)
	copy(header, []byte{0x7f, 'E', 'L', 'F', 2, 1, 1})
	binary.LittleEndian.PutUint16(header[16:18], 2) // ET_EXEC
	binary.LittleEndian.PutUint16(header[18:20], machine)
	binary.LittleEndian.PutUint32(header[20:24], 1)
	binary.LittleEndian.PutUint64(header[24:32], entry)
	binary.LittleEndian.PutUint64(header[32:40], ehsize)
	binary.LittleEndian.PutUint16(header[52:54], ehsize)
	binary.LittleEndian.PutUint16(header[54:56], phentsize)
	binary.LittleEndian.PutUint16(header[56:58], uint16(len(segs)))
	binary.LittleEndian.PutUint16(header[58:60], 64)

	out := header
	offset := uint64(ehsize + phentsize*len(segs))
	for _, seg := range segs {
		memsz := seg.memsz
		if memsz == 0 {
			memsz = uint64(len(seg.data))
		}
		ph := make([]byte, phentsize)
		binary.LittleEndian.PutUint32(ph[0:4], seg.ptype)
		binary.LittleEndian.PutUint32(ph[4:8], seg.flags)
		binary.LittleEndian.PutUint64(ph[8:16], offset)
		binary.LittleEndian.PutUint64(ph[16:24], seg.vaddr)
		binary.LittleEndian.PutUint64(ph[24:32], seg.vaddr)
		binary.LittleEndian.PutUint64(ph[32:40], uint64(len(seg.data)))
		binary.LittleEndian.PutUint64(ph[40:48], memsz)
		binary.LittleEndian.PutUint64(ph[48:56], 0x1000)
		out = append(out, ph...)
		offset += uint64(len(seg.data))
	}
	for _, seg := range segs {
		out = append(out, seg.data...)
	}

	Expect(os.WriteFile(path, out, 0644)).To(Succeed())
}
