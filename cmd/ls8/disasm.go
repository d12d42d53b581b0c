package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ezrec/ls8/cpu"
)

func (a *app) disasmCommand() (cmd *cobra.Command) {
	cmd = &cobra.Command{
		Use:   "disasm FILE",
		Short: "Print the instructions of a program",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			emu := a.newEmulator()

			err = a.loadProgram(emu, args[0], a.config.GetBool("asm"))
			if err != nil {
				return
			}

			out := cmd.OutOrStdout()
			for addr, text := range cpu.Disassemble(emu.Program.Binary()) {
				_, err = fmt.Fprintf(out, "%02x: %s\n", addr, text)
				if err != nil {
					return
				}
			}

			return
		},
	}

	cmd.Flags().Bool("asm", false, "read FILE as assembly text")

	return
}
