package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ezrec/risc16/asm"
)

var _ = Describe("rasm", func() {
	var (
		dir    string
		source string
		bin    string
		hex    string
		stdout bytes.Buffer
	)

	writeSource := func(lines ...string) {
		err := os.WriteFile(source, []byte(strings.Join(lines, "\n")+"\n"), 0o644)
		Expect(err).NotTo(HaveOccurred())
	}

	readFile := func(name string) string {
		data, err := os.ReadFile(name)
		Expect(err).NotTo(HaveOccurred())
		return string(data)
	}

	run := func(args ...string) error {
		cmd := newCommand()
		cmd.SetOut(&stdout)
		cmd.SetErr(&stdout)
		cmd.SetArgs(append([]string{}, args...))
		return cmd.Execute()
	}

	BeforeEach(func() {
		dir = GinkgoT().TempDir()
		source = filepath.Join(dir, "prog.s")
		bin = filepath.Join(dir, "out.bin.txt")
		hex = filepath.Join(dir, "out.hex.txt")
		stdout.Reset()
	})

	Context("with a valid source", func() {
		BeforeEach(func() {
			writeSource(
				"# demo",
				"add r1, r2, r3",
				"",
				"li r0, -5  # negative",
				"bra 0x7ff",
				"jal r4, r5",
			)
		})

		It("should write binary and hex listings", func() {
			Expect(run(source, "-b", bin, "-x", hex)).To(Succeed())

			Expect(readFile(bin)).To(Equal(
				"1100_0001_0010_0011\n" +
					"0000_0000_11111011\n" +
					"1011_011111111111\n" +
					"1111_0100_0101_0111\n"))
			Expect(readFile(hex)).To(Equal(
				"c_1_2_3\n" +
					"0_0_fb\n" +
					"b_7ff\n" +
					"f_4_5_7\n"))
			Expect(stdout.String()).To(ContainSubstring(bin))
		})

		It("should drop the separators", func() {
			Expect(run(source, "--binf", bin, "--hexf", hex, "--no-underscore")).To(Succeed())

			Expect(readFile(bin)).To(HavePrefix("1100000100100011\n"))
			Expect(readFile(hex)).To(Equal("c123\n00fb\nb7ff\nf457\n"))
		})

		It("should write memory literals with addresses", func() {
			Expect(run(source, "-b", bin, "-x", hex, "-F", "-a", "0x10")).To(Succeed())

			lines := strings.Split(strings.TrimSpace(readFile(hex)), "\n")
			Expect(lines).To(Equal([]string{
				`x"c_1_2_3", -- Address 0x0010`,
				`x"0_0_fb",  -- Address 0x0012`,
				`x"b_7ff",   -- Address 0x0014`,
				`x"f_4_5_7", -- Address 0x0016`,
			}))
			Expect(readFile(bin)).To(HavePrefix(`b"1100_0001_0010_0011", -- Address 0x0010`))
		})

		It("should apply a configuration file, overridden by flags", func() {
			star := filepath.Join(dir, "rasm.star")
			conf := "no_underscore = True\nbinf = '" + bin + "'\nhexf = 'ignored.txt'\n"
			Expect(os.WriteFile(star, []byte(conf), 0o644)).To(Succeed())

			Expect(run(source, "-c", star, "-x", hex)).To(Succeed())

			Expect(readFile(bin)).To(HavePrefix("1100000100100011\n"))
			Expect(readFile(hex)).To(HavePrefix("c123\n"))
			Expect(filepath.Join(dir, "ignored.txt")).NotTo(BeAnExistingFile())
		})

		It("should trace in debug mode", func() {
			Expect(run(source, "-b", bin, "-x", hex, "--debug")).To(Succeed())
			Expect(readFile(bin)).To(HavePrefix("1100_0001_0010_0011\n"))
		})
	})

	It("should read standard input", func() {
		cmd := newCommand()
		cmd.SetOut(&stdout)
		cmd.SetIn(strings.NewReader("or r1, r2, r3\n"))
		cmd.SetArgs([]string{"-", "-b", bin, "-x", hex})

		Expect(cmd.Execute()).To(Succeed())
		Expect(readFile(hex)).To(Equal("e_1_2_3\n"))
	})

	It("should write nothing for blank and comment lines", func() {
		writeSource("", "   ", "# nothing", "\t# still nothing")

		Expect(run(source, "-b", bin, "-x", hex)).To(Succeed())
		Expect(readFile(bin)).To(BeEmpty())
		Expect(readFile(hex)).To(BeEmpty())
	})

	DescribeTable("should stop at the first error",
		func(line string, code int) {
			writeSource("add r1, r2, r3", line, "sub r1, r2, r3")

			err := run(source, "-b", bin, "-x", hex)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring(source))
			Expect(asm.ExitCode(err)).To(Equal(code))

			var se *asm.ErrSyntax
			Expect(errors.As(err, &se)).To(BeTrue())
			Expect(se.LineNo).To(Equal(2))

			Expect(readFile(bin)).To(Equal("1100_0001_0010_0011\n"))
			Expect(readFile(hex)).To(Equal("c_1_2_3\n"))
		},
		Entry("too many operands", "add r1, r2, r3, r4", asm.EXIT_TOO_MANY_OPERANDS),
		Entry("label", "label:", asm.EXIT_LABEL),
		Entry("unrecognized syntax", "add r1", asm.EXIT_SYNTAX),
		Entry("unknown mnemonic", "mul r1, r2, r3", asm.EXIT_MNEMONIC),
		Entry("immediate range", "li r1, 128", asm.EXIT_IMMEDIATE_RANGE),
	)

	It("should reject mismatched formats in strict mode", func() {
		writeSource("li r1, r2, r3")

		Expect(run(source, "-b", bin, "-x", hex)).To(Succeed())
		Expect(readFile(bin)).To(Equal("0000_0001_0010_0011\n"))

		err := run(source, "-b", bin, "-x", hex, "--strict")
		Expect(asm.ExitCode(err)).To(Equal(asm.EXIT_MNEMONIC))
	})

	It("should fail on a missing source", func() {
		err := run(filepath.Join(dir, "missing.s"), "-b", bin, "-x", hex)
		Expect(err).To(HaveOccurred())
		Expect(asm.ExitCode(err)).To(Equal(asm.EXIT_FAILURE))
	})

	It("should require exactly one source", func() {
		err := run()
		Expect(err).To(HaveOccurred())
		Expect(asm.ExitCode(err)).To(Equal(asm.EXIT_FAILURE))
	})

	It("should fail on a bad configuration file", func() {
		writeSource("add r1, r2, r3")
		star := filepath.Join(dir, "rasm.star")
		Expect(os.WriteFile(star, []byte("colour = True\n"), 0o644)).To(Succeed())

		err := run(source, "-c", star, "-b", bin, "-x", hex)
		Expect(err).To(HaveOccurred())
		Expect(asm.ExitCode(err)).To(Equal(asm.EXIT_FAILURE))
	})
})
