package clirelayer

import (
	"github.com/spf13/cobra"
)

const (
	configFlag  = "config"
	envFileFlag = "env-file"

	configFlagDesc  = "path to config json file, relayer_config.json next to the executable is used when not specified"
	envFileFlagDesc = "path to .env file with RELAYER_* variables, .env from working directory is used when present"
)

type initParams struct {
	config  string
	envFile string
}

func (ip *initParams) validateFlags() error {
	return nil
}

func (ip *initParams) setFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(
		&ip.config,
		configFlag,
		"",
		configFlagDesc,
	)

	cmd.Flags().StringVar(
		&ip.envFile,
		envFileFlag,
		"",
		envFileFlagDesc,
	)
}
