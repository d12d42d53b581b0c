package main

import (
	goio "io"
	"os"

	"github.com/spf13/cobra"
)

func (a *app) runCommand() (cmd *cobra.Command) {
	cmd = &cobra.Command{
		Use:   "run FILE",
		Short: "Run a program until it halts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			path := args[0]
			out := cmd.OutOrStdout()

			err = a.runProgram(path, out)
			if !a.config.GetBool("watch") {
				return
			}

			if err != nil {
				a.logger.Error("run", "file", path, "error", err)
			}

			err = a.watch(cmd.Context(), path, func() error {
				return a.runProgram(path, out)
			})
			return
		},
	}

	flags := cmd.Flags()
	flags.Bool("asm", false, "read FILE as assembly text")
	flags.Int("max-ticks", 0, "fail after this many instructions (0 is unlimited)")
	flags.String("dump", "", "write a YAML state snapshot to this file after the run")
	flags.Bool("watch", false, "run again whenever FILE changes")

	return
}

// runProgram loads and runs a program, printing to out.
func (a *app) runProgram(path string, out goio.Writer) (err error) {
	emu := a.newEmulator()
	emu.Tape.Output = out

	err = a.loadProgram(emu, path, a.config.GetBool("asm"))
	if err != nil {
		return
	}

	err = emu.Reset()
	if err != nil {
		return
	}

	err = emu.Run(a.config.GetInt("max-ticks"))
	if a.logger.IsDebug() {
		a.logger.Debug("state", "trace", emu.Cpu.String())
	}

	if dump := a.config.GetString("dump"); len(dump) != 0 {
		dump_err := a.writeFile(dump, emu.Snapshot().WriteYAML)
		if err == nil {
			err = dump_err
		}
	}

	return
}

// writeFile creates the file at path, and fills it with write.
func (a *app) writeFile(path string, write func(goio.Writer) error) (err error) {
	ouf, err := os.Create(path)
	if err != nil {
		return
	}

	err = write(ouf)
	close_err := ouf.Close()
	if err == nil {
		err = close_err
	}

	return
}
