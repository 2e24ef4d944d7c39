package app

import (
	"fmt"
	"os"

	"github.com/ethereum/go-ethereum/common"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"

	"github.com/oceanlink/oceanlink-settler/models"
)

const (
	DefaultMongoTimeoutMillis    int64  = 2000
	DefaultRPCTimeoutMillis      int64  = 10000
	DefaultMaxQueryBlocks        uint64 = 1000
	DefaultBlockCacheSize        int    = 1024
	DefaultExecutorBatchSize     int64  = 10
	DefaultSolverIntervalMillis  int64  = 5000
	DefaultExecutorIntervalMilis int64  = 10000
	DefaultIndexerIntervalMillis int64  = 5000
	DefaultHealthIntervalMillis  int64  = 60000
	DefaultMetricsListenAddress  string = ":9090"
	DefaultHDPath                string = "m/44'/60'/0'/0/0"
)

// InitConfig reads the yaml file, overlays the environment and validates the
// result. Any problem is fatal since nothing can run without a valid config.
func InitConfig(configFile string, envFile string) models.Config {
	var config models.Config

	readConfigFromConfigFile(&config, configFile)
	readConfigFromENV(&config, envFile)
	readKeysFromGSM(&config)
	applyDefaults(&config)

	if err := validateConfig(config); err != nil {
		log.Fatal("[CONFIG] ", err.Error())
	}

	log.Info("[CONFIG] Config initialized")
	return config
}

func readConfigFromConfigFile(config *models.Config, configFile string) bool {
	if configFile == "" {
		log.Debug("[CONFIG] No config file provided")
		return false
	}

	yamlFile, err := os.ReadFile(configFile)
	if err != nil {
		log.Fatalf("[CONFIG] Error reading config file %q: %s\n", configFile, err.Error())
	}

	if err = yaml.UnmarshalStrict(yamlFile, config); err != nil {
		log.Fatalf("[CONFIG] Error unmarshalling config file %q: %s\n", configFile, err.Error())
	}

	log.Debug("[CONFIG] Config loaded from file: ", configFile)
	return true
}

func applyDefaults(config *models.Config) {
	if config.MongoDB.TimeoutMillis == 0 {
		config.MongoDB.TimeoutMillis = DefaultMongoTimeoutMillis
	}
	if config.Logger.Level == "" {
		config.Logger.Level = "info"
	}
	if config.Metrics.ListenAddress == "" {
		config.Metrics.ListenAddress = DefaultMetricsListenAddress
	}
	if config.HealthCheck.IntervalMillis == 0 {
		config.HealthCheck.IntervalMillis = DefaultHealthIntervalMillis
	}
	if config.ExecutorSigner.HDPath == "" {
		config.ExecutorSigner.HDPath = DefaultHDPath
	}
	if config.Solver.IntervalMillis == 0 {
		config.Solver.IntervalMillis = DefaultSolverIntervalMillis
	}
	if config.Executor.IntervalMillis == 0 {
		config.Executor.IntervalMillis = DefaultExecutorIntervalMilis
	}
	if config.Executor.BatchSize == 0 {
		config.Executor.BatchSize = DefaultExecutorBatchSize
	}
	if config.Indexer.IntervalMillis == 0 {
		config.Indexer.IntervalMillis = DefaultIndexerIntervalMillis
	}
	for i := range config.Chains {
		chain := &config.Chains[i]
		if chain.RPCTimeoutMillis == 0 {
			chain.RPCTimeoutMillis = DefaultRPCTimeoutMillis
		}
		if chain.MaxQueryBlocks == 0 {
			chain.MaxQueryBlocks = DefaultMaxQueryBlocks
		}
		if chain.BlockCacheSize == 0 {
			chain.BlockCacheSize = DefaultBlockCacheSize
		}
		if chain.Name == "" {
			chain.Name = fmt.Sprintf("chain-%d", chain.ChainID)
		}
	}
}

func validateConfig(config models.Config) error {
	if config.MongoDB.URI == "" {
		return fmt.Errorf("MongoDB.URI is required")
	}
	if config.MongoDB.Database == "" {
		return fmt.Errorf("MongoDB.Database is required")
	}
	if len(config.Chains) == 0 {
		return fmt.Errorf("at least one chain is required")
	}

	seen := make(map[uint64]bool)
	for i, chain := range config.Chains {
		if chain.ChainID == 0 {
			return fmt.Errorf("Chains[%d].ChainID is required", i)
		}
		if seen[chain.ChainID] {
			return fmt.Errorf("Chains[%d].ChainID %d is duplicated", i, chain.ChainID)
		}
		seen[chain.ChainID] = true
		if chain.RPCURL == "" {
			return fmt.Errorf("Chains[%d].RPCURL is required", i)
		}
		if !common.IsHexAddress(chain.VaultAddress) {
			return fmt.Errorf("Chains[%d].VaultAddress %q is invalid", i, chain.VaultAddress)
		}
		if chain.MaxQueryBlocks == 0 {
			return fmt.Errorf("Chains[%d].MaxQueryBlocks must be positive", i)
		}
	}

	if config.Executor.Enabled {
		signer := config.ExecutorSigner
		if signer.Mnemonic == "" && signer.PrivateKey == "" && signer.GcpKmsKeyName == "" {
			return fmt.Errorf("ExecutorSigner requires one of Mnemonic, PrivateKey or GcpKmsKeyName")
		}
		if config.Executor.BatchSize <= 0 {
			return fmt.Errorf("Executor.BatchSize must be positive")
		}
	}

	if config.Metrics.Enabled && config.Metrics.ListenAddress == "" {
		return fmt.Errorf("Metrics.ListenAddress is required")
	}

	return nil
}
