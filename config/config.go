// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package config holds the assembler settings, and loads them from
// Starlark configuration files.
//
// A configuration file assigns any of these globals:
//
//	debug = True          # verbose line classification tracing
//	formatted = True      # memory initialization literal output
//	no_underscore = True  # no field separator
//	strict = True         # mnemonics must match the line format
//	binf = "rom.bin.txt"  # binary text output file
//	hexf = "rom.hex.txt"  # hexadecimal text output file
//	start_address = 0x100 # address of the first instruction
//
// Globals whose name starts with an underscore are ignored.
package config

import (
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/risc16/emit"
)

const (
	DEFAULT_BIN_FILE = "outbin.txt"
	DEFAULT_HEX_FILE = "outhex.txt"
)

// Config is the assembler configuration.
type Config struct {
	Debug        bool   // Verbose line classification tracing.
	Formatted    bool   // Emit memory initialization literals.
	NoUnderscore bool   // Emit fields without a separator.
	Strict       bool   // Mnemonics must be legal for the line format.
	BinFile      string // Binary text output file.
	HexFile      string // Hexadecimal text output file.
	StartAddress uint16 // Byte address of the first instruction.
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		BinFile: DEFAULT_BIN_FILE,
		HexFile: DEFAULT_HEX_FILE,
	}
}

// Separator returns the output field separator.
func (cfg *Config) Separator() string {
	if cfg.NoUnderscore {
		return ""
	}
	return emit.SEPARATOR
}

func asBool(key string, value starlark.Value) (b bool, err error) {
	st_bool, ok := value.(starlark.Bool)
	if !ok {
		err = ErrType{Key: key, Want: "bool", Got: value.Type()}
		return
	}
	b = bool(st_bool)
	return
}

func asString(key string, value starlark.Value) (s string, err error) {
	s, ok := starlark.AsString(value)
	if !ok {
		err = ErrType{Key: key, Want: "string", Got: value.Type()}
		return
	}
	if len(s) == 0 {
		err = ErrRange{Key: key, Value: value.String()}
	}
	return
}

func asAddress(key string, value starlark.Value) (address uint16, err error) {
	st_int, ok := value.(starlark.Int)
	if !ok {
		err = ErrType{Key: key, Want: "int", Got: value.Type()}
		return
	}
	st_int64, ok := st_int.Int64()
	if !ok || st_int64 < 0 || st_int64 > 0xffff {
		err = ErrRange{Key: key, Value: value.String()}
		return
	}
	address = uint16(st_int64)
	return
}

// Apply sets the configuration from Starlark globals.
func (cfg *Config) Apply(globals starlark.StringDict) (err error) {
	for _, key := range globals.Keys() {
		value := globals[key]
		switch key {
		case "debug":
			cfg.Debug, err = asBool(key, value)
		case "formatted":
			cfg.Formatted, err = asBool(key, value)
		case "no_underscore":
			cfg.NoUnderscore, err = asBool(key, value)
		case "strict":
			cfg.Strict, err = asBool(key, value)
		case "binf":
			cfg.BinFile, err = asString(key, value)
		case "hexf":
			cfg.HexFile, err = asString(key, value)
		case "start_address":
			cfg.StartAddress, err = asAddress(key, value)
		default:
			if !strings.HasPrefix(key, "_") {
				err = ErrKey(key)
			}
		}
		if err != nil {
			return
		}
	}

	return
}

// Load executes a Starlark configuration file, and applies its globals.
// If src is nil, the file is read from filename.
func (cfg *Config) Load(filename string, src any) (err error) {
	thread := starlark.Thread{Name: filename}
	opts := syntax.FileOptions{}

	globals, err := starlark.ExecFileOptions(&opts, &thread, filename, src, nil)
	if err != nil {
		return
	}

	return cfg.Apply(globals)
}
