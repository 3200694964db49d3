package cli

import (
	"fmt"
	"os"

	clirelayer "github.com/Ethernal-Tech/ovm-message-relayer/cli/relayer"
	clirelayerkey "github.com/Ethernal-Tech/ovm-message-relayer/cli/relayerkey"
	cliversion "github.com/Ethernal-Tech/ovm-message-relayer/cli/version"
	"github.com/Ethernal-Tech/ovm-message-relayer/common"
	"github.com/spf13/cobra"
)

type RootCommand struct {
	baseCmd *cobra.Command
}

func NewRootCommand() *RootCommand {
	rootCommand := &RootCommand{
		baseCmd: &cobra.Command{
			Short: "cli commands for ovm message relayer",
		},
	}

	rootCommand.baseCmd.PersistentFlags().Bool(common.JSONOutputFlag, false, "get all outputs in json format")

	rootCommand.registerSubCommands()

	return rootCommand
}

func (rc *RootCommand) registerSubCommands() {
	rc.baseCmd.AddCommand(
		clirelayerkey.GetCreateRelayerKeyCommand(),
		clirelayer.GetRunRelayerCommand(),
		cliversion.GetVersionCommand(),
	)
}

func (rc *RootCommand) Execute() {
	if err := rc.baseCmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)

		os.Exit(1)
	}
}
