// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/tebeka/atexit"

	"github.com/ezrec/risc16/asm"
	"github.com/ezrec/risc16/config"
	"github.com/ezrec/risc16/emit"
	"github.com/ezrec/risc16/translate"
)

// output is a buffered output file. Close may be called more than once.
type output struct {
	*bufio.Writer
	file *os.File
}

func createOutput(name string) (out *output, err error) {
	file, err := os.Create(name)
	if err != nil {
		return
	}

	out = &output{Writer: bufio.NewWriter(file), file: file}
	return
}

// Close flushes and closes the output file.
func (out *output) Close() (err error) {
	if out == nil || out.file == nil {
		return
	}

	err = out.Flush()
	cerr := out.file.Close()
	out.file = nil
	if err == nil {
		err = cerr
	}

	return
}

// overlay copies the explicitly set command line flags over cfg.
func overlay(flags *pflag.FlagSet, cfg *config.Config, set *config.Config) {
	if flags.Changed("debug") {
		cfg.Debug = set.Debug
	}
	if flags.Changed("formatted") {
		cfg.Formatted = set.Formatted
	}
	if flags.Changed("no-underscore") {
		cfg.NoUnderscore = set.NoUnderscore
	}
	if flags.Changed("strict") {
		cfg.Strict = set.Strict
	}
	if flags.Changed("binf") {
		cfg.BinFile = set.BinFile
	}
	if flags.Changed("hexf") {
		cfg.HexFile = set.HexFile
	}
	if flags.Changed("start-address") {
		cfg.StartAddress = set.StartAddress
	}
}

// assemble assembles source into the binary and hexadecimal output files.
func assemble(cmd *cobra.Command, source string, cfg *config.Config) (err error) {
	var input io.Reader

	if source == "-" {
		input = cmd.InOrStdin()
	} else {
		inf, oerr := os.Open(source)
		if oerr != nil {
			err = oerr
			return
		}
		defer inf.Close()
		input = inf
	}

	outs := make([]*output, 0, 2)
	atexit.Register(func() {
		for _, out := range outs {
			out.Close()
		}
	})
	defer func() {
		for _, out := range outs {
			cerr := out.Close()
			if err == nil {
				err = cerr
			}
		}
	}()

	for _, name := range []string{cfg.BinFile, cfg.HexFile} {
		var out *output
		out, err = createOutput(name)
		if err != nil {
			return
		}
		outs = append(outs, out)
	}

	em := emit.NewEmitter(cfg.StartAddress,
		emit.Target{Writer: outs[0], Radix: emit.RADIX_BIN},
		emit.Target{Writer: outs[1], Radix: emit.RADIX_HEX},
	)
	em.Separator = cfg.Separator()
	em.Formatted = cfg.Formatted

	assembler := &asm.Assembler{Verbose: cfg.Debug, Strict: cfg.Strict}

	for line, lerr := range assembler.Lines(input) {
		if lerr != nil {
			err = fmt.Errorf("%v: %w", source, lerr)
			return
		}

		err = em.Emit(line.Inst)
		if err != nil {
			return
		}
	}

	if cfg.Debug {
		log.Print(translate.From("%v: %d instructions, next address 0x%04x", source, em.Count, em.Address))
	}

	err = translate.Fprintln(cmd.OutOrStdout(), "%v: %d instructions written to %v and %v",
		source, em.Count, cfg.BinFile, cfg.HexFile)

	return
}

// newCommand creates the assembler command.
func newCommand() *cobra.Command {
	var configFile string

	set := config.Default()

	cmd := &cobra.Command{
		Use:   "rasm source",
		Short: "Assembler for the 16-bit RISC instruction set",
		Long: `Rasm assembles a label-free RISC assembly source, one instruction
per line, into two parallel text listings of 16-bit machine words: one in
binary, one in hexadecimal. Comments start with '#'. A source of '-' is
read from standard input.

Settings may also be given by a Starlark file (--config); flags given on
the command line override it.`,

		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			cfg := config.Default()
			if len(configFile) != 0 {
				err = cfg.Load(configFile, nil)
				if err != nil {
					return
				}
			}
			overlay(cmd.Flags(), &cfg, &set)

			return assemble(cmd, args[0], &cfg)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&configFile, "config", "c", "", "Starlark configuration file")
	flags.BoolVarP(&set.Debug, "debug", "d", false, "Turn on debug prints")
	flags.BoolVarP(&set.Formatted, "formatted", "F", false, "Format for direct copy-paste into a VHDL memory file")
	flags.BoolVarP(&set.NoUnderscore, "no-underscore", "n", false, "Turn off the underscore field separators")
	flags.BoolVarP(&set.Strict, "strict", "s", false, "Require mnemonics to match the instruction format")
	flags.StringVarP(&set.BinFile, "binf", "b", config.DEFAULT_BIN_FILE, "Binary machine code output file")
	flags.StringVarP(&set.HexFile, "hexf", "x", config.DEFAULT_HEX_FILE, "Hexadecimal machine code output file")
	flags.Uint16VarP(&set.StartAddress, "start-address", "a", 0, "Address of the first instruction")

	return cmd
}
