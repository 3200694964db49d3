package clirelayer

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/Ethernal-Tech/ovm-message-relayer/common"
	"github.com/Ethernal-Tech/ovm-message-relayer/relayer/core"
	"github.com/joho/godotenv"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

const (
	envPrefix      = "RELAYER"
	defaultEnvFile = ".env"
	configPrefix   = "relayer"

	envPrivateKey = "private_key"
)

type stringOverride struct {
	key   string
	value *string
}

type uintOverride struct {
	key   string
	value *uint64
}

// loadConfig reads json config and overrides its values with RELAYER_* environment variables.
// It returns the config together with the relayer private key from the environment, if any
func loadConfig(params *initParams) (*core.RelayerConfiguration, string, error) {
	if err := loadEnvFile(params.envFile); err != nil {
		return nil, "", err
	}

	config, err := common.LoadConfig[core.RelayerConfiguration](params.config, configPrefix)
	if err != nil {
		// environment only setup
		if params.config != "" || !errors.Is(err, os.ErrNotExist) {
			return nil, "", fmt.Errorf("failed to load config: %w", err)
		}

		config = &core.RelayerConfiguration{}
	}

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if err := applyEnvOverrides(v, config); err != nil {
		return nil, "", fmt.Errorf("invalid environment configuration: %w", err)
	}

	config.SetDefaults()

	if err := config.Validate(); err != nil {
		return nil, "", fmt.Errorf("invalid config: %w", err)
	}

	return config, v.GetString(envPrivateKey), nil
}

func loadEnvFile(envFile string) error {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return fmt.Errorf("failed to load env file %s: %w", envFile, err)
		}

		return nil
	}

	if _, err := os.Stat(defaultEnvFile); err != nil {
		return nil
	}

	return godotenv.Load(defaultEnvFile)
}

// applyEnvOverrides copies every set RELAYER_* variable into config.
// Values that can not be parsed are reported instead of being replaced with zero values
func applyEnvOverrides(v *viper.Viper, config *core.RelayerConfiguration) error {
	for _, o := range []stringOverride{
		{key: "l1_node_url", value: &config.L1.NodeURL},
		{key: "l2_node_url", value: &config.L2.NodeURL},
		{key: "state_commitment_chain", value: &config.L1.StateCommitmentChainAddress},
		{key: "l1_cross_domain_messenger", value: &config.L1.CrossDomainMessengerAddress},
		{key: "l2_cross_domain_messenger", value: &config.L2.CrossDomainMessengerAddress},
		{key: "nonce_strategy", value: &config.L1.NonceStrategy},
		{key: "dbs_path", value: &config.DbsPath},
		{key: "data_dir", value: &config.RelayerDataDir},
		{key: "secrets_config", value: &config.RelayerConfigPath},
		{key: "prometheus_addr", value: &config.Telemetry.PrometheusAddr},
		{key: "datadog_addr", value: &config.Telemetry.DataDogAddr},
	} {
		if v.IsSet(o.key) {
			*o.value = v.GetString(o.key)
		}
	}

	var errs []error

	for _, o := range []uintOverride{
		{key: "polling_interval_ms", value: &config.PollingIntervalMs},
		{key: "starting_batch_index", value: &config.StartingBatchIndex},
		{key: "l1_start_block", value: &config.L1.StartBlock},
		{key: "l2_genesis_blocks", value: &config.L2.NumGenesisBlocks},
	} {
		if !v.IsSet(o.key) {
			continue
		}

		value, err := cast.ToUint64E(v.GetString(o.key))
		if err != nil {
			errs = append(errs, envValueError(o.key, v.GetString(o.key), err))

			continue
		}

		*o.value = value
	}

	if v.IsSet("retry_failed_messages") {
		value, err := cast.ToBoolE(v.GetString("retry_failed_messages"))
		if err != nil {
			errs = append(errs, envValueError("retry_failed_messages", v.GetString("retry_failed_messages"), err))
		} else {
			config.RetryFailedMessages = value
		}
	}

	if v.IsSet("max_relays_per_second") {
		value, err := cast.ToFloat64E(v.GetString("max_relays_per_second"))
		if err != nil {
			errs = append(errs, envValueError("max_relays_per_second", v.GetString("max_relays_per_second"), err))
		} else {
			config.MaxRelaysPerSecond = value
		}
	}

	return errors.Join(errs...)
}

func envValueError(key, value string, err error) error {
	return fmt.Errorf("%s_%s=%q: %w", envPrefix, strings.ToUpper(key), value, err)
}
