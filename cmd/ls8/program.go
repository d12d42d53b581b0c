package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ezrec/ls8/emulator"
)

// isAssembly returns true if the file should be read as assembly text.
func isAssembly(path string, force bool) bool {
	if force {
		return true
	}

	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".asm" || ext == ".s"
}

// loadProgram reads a program file into the emulator's program listing.
// The file is read as assembly text if asm is set, or by its extension.
func (a *app) loadProgram(emu *emulator.Emulator, path string, asm bool) (err error) {
	inf, err := os.Open(path)
	if err != nil {
		return
	}
	defer inf.Close()

	if isAssembly(path, asm) {
		a.logger.Debug("assemble", "file", path)
		err = emu.Assemble(inf)
	} else {
		a.logger.Debug("load", "file", path)
		err = emu.LoadImage(inf)
	}
	if err != nil {
		err = fmt.Errorf("%v: %w", path, err)
		return
	}

	return
}

// newEmulator creates an emulator logging to the application logger.
func (a *app) newEmulator() (emu *emulator.Emulator) {
	emu = emulator.NewEmulator()
	emu.Logger = a.logger.Named("emu")
	return
}
