package main

import (
	"bytes"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestA64dis(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "a64dis Suite")
}

var _ = Describe("a64dis", func() {
	var stdout, stderr *bytes.Buffer

	BeforeEach(func() {
		stdout = &bytes.Buffer{}
		stderr = &bytes.Buffer{}
	})

	It("should parse hex words", func() {
		words, err := parseWords([]string{"d65f03c0", "0x9100A820"})
		Expect(err).NotTo(HaveOccurred())
		Expect(words).To(Equal([]uint32{0xD65F03C0, 0x9100A820}))

		_, err = parseWords([]string{"123456789"})
		Expect(err).To(HaveOccurred())
		_, err = parseWords([]string{"xyz"})
		Expect(err).To(HaveOccurred())
	})

	It("should disassemble words", func() {
		code := run([]string{"-words", "-start", "0x1000", "9100a820", "d65f03c0"}, stdout, stderr)

		Expect(code).To(Equal(0))
		Expect(stdout.String()).To(ContainSubstring("1000:\t9100a820 \tadd x0, x1, #0x2a\n"))
		Expect(stdout.String()).To(ContainSubstring("1004:\td65f03c0 \tret\n"))
	})

	It("should show the underlying instruction without aliases", func() {
		code := run([]string{"-words", "-no-aliases", "aa0103e0"}, stdout, stderr)

		Expect(code).To(Equal(0))
		Expect(stdout.String()).To(ContainSubstring("orr x0, xzr, x1"))
	})

	It("should limit the count", func() {
		code := run([]string{"-words", "-count", "1", "9100a820", "d65f03c0"}, stdout, stderr)

		Expect(code).To(Equal(0))
		Expect(stdout.String()).NotTo(ContainSubstring("ret"))
	})

	It("should dump decoded records", func() {
		code := run([]string{"-words", "-dump", "d65f03c0"}, stdout, stderr)

		Expect(code).To(Equal(0))
		Expect(stdout.String()).To(ContainSubstring("Text: (string) (len=3) \"ret\""))
	})

	It("should print a summary when verbose", func() {
		code := run([]string{"-words", "-v", "d65f03c0", "ffffffff"}, stdout, stderr)

		Expect(code).To(Equal(0))
		Expect(stdout.String()).To(ContainSubstring("Undecodable: 1\n"))
		Expect(stderr.String()).To(ContainSubstring("Undecodable instruction"))
	})

	It("should cross-check every listed word in one report", func() {
		code := run([]string{"-words", "-crosscheck", "9100a820", "d503201f", "d65f03c0"}, stdout, stderr)

		Expect(code).To(Equal(0))
		Expect(stdout.String()).To(ContainSubstring("Cross-check: 3/3 agree\n"))
	})

	It("should fail without arguments", func() {
		Expect(run(nil, stdout, stderr)).To(Equal(2))
		Expect(stderr.String()).To(ContainSubstring("Usage"))
	})

	It("should fail on a missing file", func() {
		Expect(run([]string{"/nonexistent/program.elf"}, stdout, stderr)).To(Equal(1))
		Expect(stderr.String()).To(ContainSubstring("Error loading program"))
	})
})
