package clirelayer

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	loggerInfra "github.com/Ethernal-Tech/cardano-infrastructure/logger"
	"github.com/Ethernal-Tech/ovm-message-relayer/common"
	"github.com/Ethernal-Tech/ovm-message-relayer/relayer/relayer_manager"
	"github.com/spf13/cobra"
)

var initParamsData = &initParams{}

func GetRunRelayerCommand() *cobra.Command {
	runRelayerCmd := &cobra.Command{
		Use:     "run-relayer",
		Short:   "runs ovm message relayer",
		PreRunE: runPreRun,
		Run:     runCommand,
	}

	initParamsData.setFlags(runRelayerCmd)

	return runRelayerCmd
}

func runPreRun(_ *cobra.Command, _ []string) error {
	return initParamsData.validateFlags()
}

func runCommand(cmd *cobra.Command, _ []string) {
	outputter := common.InitializeOutputter(cmd)
	defer outputter.WriteOutput()

	config, privateKey, err := loadConfig(initParamsData)
	if err != nil {
		outputter.SetError(err)

		return
	}

	logger, err := loggerInfra.NewLogger(config.Logger)
	if err != nil {
		outputter.SetError(err)

		return
	}

	wallet, err := relayer_manager.LoadRelayerWallet(config, privateKey)
	if err != nil {
		logger.Error("relayer wallet loading failed", "err", err)
		outputter.SetError(err)

		return
	}

	relayerManager, err := relayer_manager.NewRelayerManager(config, wallet, logger)
	if err != nil {
		logger.Error("relayer manager creation failed", "err", err)
		outputter.SetError(err)

		return
	}

	// interrupt signal (Ctrl+C) or SIGTERM stops the relayer
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := relayerManager.Start(ctx); err != nil {
		logger.Error("relayer manager failed", "err", err)
		outputter.SetError(err)

		return
	}

	outputter.SetCommandResult(&CmdResult{})
}
