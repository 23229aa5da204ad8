package config_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frherrer/caseweaver/internal/config"
)

var _ = Describe("Config", func() {
	Describe("DefaultConfig", func() {
		It("should provide a valid configuration", func() {
			Expect(config.Validate(config.DefaultConfig())).To(Succeed())
		})

		It("should default the section and block length", func() {
			cfg := config.DefaultConfig()
			Expect(cfg.Parsing.DefaultSection).To(Equal("General"))
			Expect(cfg.Parsing.MinBlockLength).To(Equal(10))
		})
	})

	Describe("Load", func() {
		var dir string

		BeforeEach(func() {
			dir = GinkgoT().TempDir()
		})

		It("should merge file values over defaults", func() {
			path := filepath.Join(dir, "caseweaver.yaml")
			data := []byte("input:\n  directories: [llm-output]\nparsing:\n  default_section: Smoke\noutput:\n  formats: [json]\n")
			Expect(os.WriteFile(path, data, 0644)).To(Succeed())

			cfg, err := config.Load(path)
			Expect(err).ToNot(HaveOccurred())
			Expect(cfg.Input.Directories).To(Equal([]string{"llm-output"}))
			Expect(cfg.Parsing.DefaultSection).To(Equal("Smoke"))
			Expect(cfg.Output.Formats).To(Equal([]string{"json"}))
			// untouched values keep their defaults
			Expect(cfg.Parsing.MinBlockLength).To(Equal(10))
		})

		It("should fail for a missing file", func() {
			_, err := config.Load(filepath.Join(dir, "nope.yaml"))
			Expect(err).To(HaveOccurred())
		})

		It("should fail for malformed YAML", func() {
			path := filepath.Join(dir, "bad.yaml")
			Expect(os.WriteFile(path, []byte("input: [unclosed"), 0644)).To(Succeed())

			_, err := config.Load(path)
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("Validate", func() {
		var cfg *config.Config

		BeforeEach(func() {
			cfg = config.DefaultConfig()
		})

		It("should reject empty input directories", func() {
			cfg.Input.Directories = nil
			Expect(config.Validate(cfg)).ToNot(Succeed())
		})

		It("should reject an empty default section", func() {
			cfg.Parsing.DefaultSection = ""
			Expect(config.Validate(cfg)).ToNot(Succeed())
		})

		It("should reject unknown output formats", func() {
			cfg.Output.Formats = []string{"xlsx"}
			err := config.Validate(cfg)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("unknown format"))
		})

		It("should reject an invalid logging level", func() {
			cfg.Logging.Level = "loud"
			Expect(config.Validate(cfg)).ToNot(Succeed())
		})
	})
})
