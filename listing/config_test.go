package listing_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/a64dis/listing"
)

var _ = Describe("Config", func() {
	It("should create valid default config", func() {
		config := listing.DefaultConfig()
		Expect(config.Validate()).To(Succeed())
		Expect(config.Aliases).To(BeTrue())
	})

	Describe("Validation", func() {
		It("should reject a block size that is not a power of two", func() {
			config := listing.DefaultConfig()
			config.BlockWords = 12
			Expect(config.Validate()).To(HaveOccurred())
		})

		It("should reject zero associativity", func() {
			config := listing.DefaultConfig()
			config.Associativity = 0
			Expect(config.Validate()).To(HaveOccurred())
		})

		It("should reject a block count that does not fill the sets", func() {
			config := listing.DefaultConfig()
			config.CacheBlocks = 10
			config.Associativity = 4
			Expect(config.Validate()).To(HaveOccurred())
		})

		It("should reject a zero line limit", func() {
			config := listing.DefaultConfig()
			config.MaxLines = 0
			Expect(config.Validate()).To(HaveOccurred())
		})
	})

	It("should clone into an independent copy", func() {
		original := listing.DefaultConfig()
		clone := original.Clone()

		clone.BlockWords = 64

		Expect(original.BlockWords).To(Equal(16))
		Expect(clone.BlockWords).To(Equal(64))
	})

	Describe("File Operations", func() {
		var tempDir string

		BeforeEach(func() {
			var err error
			tempDir, err = os.MkdirTemp("", "listing-config-test")
			Expect(err).NotTo(HaveOccurred())
		})

		AfterEach(func() {
			_ = os.RemoveAll(tempDir)
		})

		It("should save and load config", func() {
			original := listing.DefaultConfig()
			original.BlockWords = 32
			original.Aliases = false

			path := filepath.Join(tempDir, "listing.json")
			Expect(original.SaveConfig(path)).To(Succeed())

			loaded, err := listing.LoadConfig(path)
			Expect(err).NotTo(HaveOccurred())
			Expect(loaded).To(Equal(original))
		})

		It("should keep defaults for missing keys", func() {
			path := filepath.Join(tempDir, "partial.json")
			Expect(os.WriteFile(path, []byte(`{"cache_blocks": 64}`), 0644)).To(Succeed())

			loaded, err := listing.LoadConfig(path)
			Expect(err).NotTo(HaveOccurred())
			Expect(loaded.CacheBlocks).To(Equal(64))
			Expect(loaded.BlockWords).To(Equal(16))
			Expect(loaded.Aliases).To(BeTrue())
		})

		It("should return error for non-existent file", func() {
			_, err := listing.LoadConfig("/nonexistent/path/listing.json")
			Expect(err).To(HaveOccurred())
		})

		It("should return error for invalid JSON", func() {
			path := filepath.Join(tempDir, "invalid.json")
			Expect(os.WriteFile(path, []byte("not valid json"), 0644)).To(Succeed())

			_, err := listing.LoadConfig(path)
			Expect(err).To(HaveOccurred())
		})
	})
})
