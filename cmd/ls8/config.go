package main

import (
	"strings"

	"github.com/spf13/pflag"
)

const (
	ENV_PREFIX = "LS8" // Environment variable prefix, ie LS8_MAX_TICKS
)

// loadConfig binds the command flags, the environment, and the optional
// configuration file. Flags take precedence, then environment, then file.
func (a *app) loadConfig(flags *pflag.FlagSet) (err error) {
	v := a.config

	v.SetEnvPrefix(ENV_PREFIX)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	err = v.BindPFlags(flags)
	if err != nil {
		return
	}

	file := v.GetString("config")
	if len(file) == 0 {
		return
	}

	v.SetConfigFile(file)
	v.SetConfigType("yaml")
	err = v.ReadInConfig()
	return
}
