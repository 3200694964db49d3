package clirelayerkey

import (
	"fmt"

	"github.com/Ethernal-Tech/ovm-message-relayer/common"
	"github.com/Ethernal-Tech/ovm-message-relayer/eth"
	"github.com/spf13/cobra"
)

const (
	relayerDataDirFlag  = "relayer-data-dir"
	relayerConfigFlag   = "relayer-config"
	privateKeyFlag      = "private-key"
	forceRegenerateFlag = "force"
	showPrivateKeyFlag  = "show-pk"

	relayerDataDirFlagDesc  = "(mandatory relayer-config not specified) Path to relayer data directory when using local secrets manager" //nolint:lll
	relayerConfigFlagDesc   = "(mandatory relayer-data-dir not specified) Path to relayer secrets manager config file"                   //nolint:lll
	privateKeyFlagDesc      = "hex encoded private key to import, new key is generated when not specified"
	forceRegenerateFlagDesc = "force regenerating key even if it exists in specified directory"
	showPrivateKeyFlagDesc  = "show private key in output"
)

type createRelayerKeyParams struct {
	relayerDataDir  string
	relayerConfig   string
	privateKey      string
	forceRegenerate bool
	showPrivateKey  bool
}

func (ip *createRelayerKeyParams) validateFlags() error {
	if ip.relayerDataDir == "" && ip.relayerConfig == "" {
		return fmt.Errorf("specify at least one of: %s, %s", relayerDataDirFlag, relayerConfigFlag)
	}

	if ip.privateKey != "" {
		if _, err := common.DecodeHex(ip.privateKey); err != nil {
			return fmt.Errorf("invalid --%s flag: %w", privateKeyFlag, err)
		}
	}

	return nil
}

func (ip *createRelayerKeyParams) setFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(
		&ip.relayerDataDir,
		relayerDataDirFlag,
		"",
		relayerDataDirFlagDesc,
	)

	cmd.Flags().StringVar(
		&ip.relayerConfig,
		relayerConfigFlag,
		"",
		relayerConfigFlagDesc,
	)

	cmd.Flags().StringVar(
		&ip.privateKey,
		privateKeyFlag,
		"",
		privateKeyFlagDesc,
	)

	cmd.Flags().BoolVar(
		&ip.forceRegenerate,
		forceRegenerateFlag,
		false,
		forceRegenerateFlagDesc,
	)

	cmd.Flags().BoolVar(
		&ip.showPrivateKey,
		showPrivateKeyFlag,
		false,
		showPrivateKeyFlagDesc,
	)

	cmd.MarkFlagsMutuallyExclusive(relayerDataDirFlag, relayerConfigFlag)
}

func (ip *createRelayerKeyParams) Execute(_ common.OutputFormatter) (common.ICommandResult, error) {
	secretsManager, err := common.GetSecretsManager(ip.relayerDataDir, ip.relayerConfig)
	if err != nil {
		return nil, err
	}

	wallet, err := eth.CreateAndSaveRelayerEVMPrivateKey(secretsManager, ip.privateKey, ip.forceRegenerate)
	if err != nil {
		return nil, err
	}

	result := &CmdResult{
		Address: wallet.GetAddressHex(),
	}

	if ip.showPrivateKey {
		result.PrivateKey = wallet.GetPrivateKeyHex()
	}

	return result, nil
}
