package main

import (
	"context"
	goio "io"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// app is the state shared by all ls8 commands.
type app struct {
	config  *viper.Viper
	logger  hclog.Logger
	logFile goio.Closer // Rotated log file, if any.
	root    *cobra.Command
}

func newApp() (a *app) {
	a = &app{
		config: viper.New(),
		logger: hclog.NewNullLogger(),
	}

	a.root = &cobra.Command{
		Use:   "ls8",
		Short: "LS-8 emulator and toolchain",
		Long: `ls8 runs programs for the LS-8 8-bit virtual machine.
Programs are either binary text (one byte per line, '#' comments)
or assembly text (one mnemonic per line, ';' comments).`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) (err error) {
			err = a.loadConfig(cmd.Flags())
			if err != nil {
				return
			}

			a.openLogger(cmd.ErrOrStderr())
			return
		},
	}

	a.root.SilenceErrors = true
	a.root.SilenceUsage = true

	flags := a.root.PersistentFlags()
	flags.String("config", "", "YAML configuration file")
	flags.BoolP("verbose", "v", false, "trace every executed instruction")
	flags.String("log-file", "", "write logs to a size-rotated file")

	a.root.AddCommand(a.runCommand())
	a.root.AddCommand(a.asmCommand())
	a.root.AddCommand(a.disasmCommand())
	a.root.AddCommand(a.definesCommand())

	return
}

// Execute runs the command line, and releases the log file.
func (a *app) Execute(ctx context.Context, args []string) (err error) {
	defer a.Close()

	a.root.SetArgs(args)
	err = a.root.ExecuteContext(ctx)
	return
}

// Close releases the log file, if one was opened.
func (a *app) Close() (err error) {
	if a.logFile == nil {
		return
	}

	err = a.logFile.Close()
	a.logFile = nil
	return
}
