package clirelayerkey

import (
	"github.com/Ethernal-Tech/ovm-message-relayer/common"
	"github.com/spf13/cobra"
)

var createRelayerKeyParamsData = &createRelayerKeyParams{}

func GetCreateRelayerKeyCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "create-relayer-key",
		Short:   "creates or imports relayer ethereum key into the secrets manager",
		PreRunE: runPreRun,
		Run:     common.GetCliRunCommand(createRelayerKeyParamsData),
	}

	createRelayerKeyParamsData.setFlags(cmd)

	return cmd
}

func runPreRun(_ *cobra.Command, _ []string) error {
	return createRelayerKeyParamsData.validateFlags()
}
