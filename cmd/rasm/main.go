// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"log"
	"os"

	"github.com/tebeka/atexit"

	"github.com/ezrec/risc16/asm"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("rasm: ")

	cmd := newCommand()
	cmd.SetArgs(os.Args[1:])

	err := cmd.Execute()
	if err != nil {
		log.Print(err)
	}

	atexit.Exit(asm.ExitCode(err))
}
