package main

import (
	"github.com/spf13/cobra"
)

func (a *app) asmCommand() (cmd *cobra.Command) {
	cmd = &cobra.Command{
		Use:   "asm FILE",
		Short: "Assemble a program into binary text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			emu := a.newEmulator()

			err = a.loadProgram(emu, args[0], true)
			if err != nil {
				return
			}

			output := a.config.GetString("output")
			if len(output) == 0 || output == "-" {
				err = emu.Program.Listing(cmd.OutOrStdout())
				return
			}

			err = a.writeFile(output, emu.Program.Listing)
			return
		},
	}

	cmd.Flags().StringP("output", "o", "-", "binary text output file")

	return
}
