package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ezrec/ls8/internal"
)

func (a *app) definesCommand() (cmd *cobra.Command) {
	cmd = &cobra.Command{
		Use:   "defines",
		Short: "List the predefined assembler equates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			emu := a.newEmulator()

			defines, names := internal.DefinesSorted(emu.Defines())
			for _, name := range names {
				_, err = fmt.Fprintf(cmd.OutOrStdout(), ".equ %v %v\n", name, defines[name])
				if err != nil {
					return
				}
			}

			return
		},
	}

	return
}
