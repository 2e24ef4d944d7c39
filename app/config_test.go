package app

import (
	"fmt"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	log "github.com/sirupsen/logrus"

	"github.com/oceanlink/oceanlink-settler/models"
)

func init() {
	log.SetOutput(io.Discard)
}

func validTestConfig() models.Config {
	return models.Config{
		MongoDB: models.MongoConfig{
			URI:           "mongodb://localhost:27017",
			Database:      "oceanlink",
			TimeoutMillis: 2000,
		},
		Chains: []models.ChainConfig{
			{
				ChainID:        1,
				RPCURL:         "http://localhost:8545",
				VaultAddress:   "0x0000000000000000000000000000000000000001",
				MaxQueryBlocks: 1000,
			},
			{
				ChainID:        2,
				RPCURL:         "http://localhost:8546",
				VaultAddress:   "0x0000000000000000000000000000000000000002",
				MaxQueryBlocks: 1000,
			},
		},
	}
}

func TestReadConfigFromConfigFile(t *testing.T) {
	t.Run("Config File Provided", func(t *testing.T) {
		var config models.Config
		read := readConfigFromConfigFile(&config, "../config.sample.yml")

		assert.Equal(t, read, true)
		assert.Equal(t, config.MongoDB.Database, "mongodb-database")
		assert.Equal(t, config.MongoDB.TimeoutMillis, int64(2000))
		assert.Len(t, config.Chains, 2)
		assert.Equal(t, uint64(11155111), config.Chains[0].ChainID)
		assert.Equal(t, uint64(1000), config.Chains[0].MaxQueryBlocks)
		assert.Equal(t, int64(10), config.Executor.BatchSize)
	})

	t.Run("No Config File Provided", func(t *testing.T) {
		var config models.Config
		read := readConfigFromConfigFile(&config, "")
		assert.Equal(t, read, false)
	})

	t.Run("Invalid Config File Path", func(t *testing.T) {
		var config models.Config

		defer func() { log.StandardLogger().ExitFunc = nil }()
		log.StandardLogger().ExitFunc = func(num int) { panic(fmt.Sprintf("exit %d", num)) }

		assert.Panics(t, func() { readConfigFromConfigFile(&config, "../config.sample.invalid.yml") }, "readConfigFromConfigFile should panic")
	})

	t.Run("Invalid Config File Contents", func(t *testing.T) {
		var config models.Config

		defer func() { log.StandardLogger().ExitFunc = nil }()
		log.StandardLogger().ExitFunc = func(num int) { panic(fmt.Sprintf("exit %d", num)) }

		assert.Panics(t, func() { readConfigFromConfigFile(&config, "../sample.env") }, "readConfigFromConfigFile should panic")
	})
}

func TestReadConfigFromENV(t *testing.T) {
	t.Run("Overrides File Values", func(t *testing.T) {
		config := validTestConfig()

		t.Setenv("MONGODB_DATABASE", "from-env")
		t.Setenv("EXECUTOR_BATCH_SIZE", "25")
		t.Setenv("SOLVER_VERIFY_SIGNATURES", "true")
		t.Setenv("CHAIN_2_RPC_URL", "http://rpc.chain-two")
		t.Setenv("CHAIN_2_START_BLOCK_NUMBER", "1234")

		readConfigFromENV(&config, "")

		assert.Equal(t, "from-env", config.MongoDB.Database)
		assert.Equal(t, int64(25), config.Executor.BatchSize)
		assert.True(t, config.Solver.VerifySignatures)
		assert.Equal(t, "http://localhost:8545", config.Chains[0].RPCURL)
		assert.Equal(t, "http://rpc.chain-two", config.Chains[1].RPCURL)
		assert.Equal(t, uint64(1234), config.Chains[1].StartBlockNumber)
	})

	t.Run("Unparseable Values Are Ignored", func(t *testing.T) {
		config := validTestConfig()
		config.Executor.BatchSize = 7

		t.Setenv("EXECUTOR_BATCH_SIZE", "many")
		t.Setenv("EXECUTOR_ENABLED", "maybe")

		readConfigFromENV(&config, "")

		assert.Equal(t, int64(7), config.Executor.BatchSize)
		assert.False(t, config.Executor.Enabled)
	})
}

func TestApplyDefaults(t *testing.T) {
	config := models.Config{
		Chains: []models.ChainConfig{{ChainID: 5}},
	}

	applyDefaults(&config)

	assert.Equal(t, DefaultMongoTimeoutMillis, config.MongoDB.TimeoutMillis)
	assert.Equal(t, DefaultExecutorBatchSize, config.Executor.BatchSize)
	assert.Equal(t, DefaultSolverIntervalMillis, config.Solver.IntervalMillis)
	assert.Equal(t, DefaultExecutorIntervalMilis, config.Executor.IntervalMillis)
	assert.Equal(t, DefaultIndexerIntervalMillis, config.Indexer.IntervalMillis)
	assert.Equal(t, DefaultHDPath, config.ExecutorSigner.HDPath)
	assert.Equal(t, DefaultMaxQueryBlocks, config.Chains[0].MaxQueryBlocks)
	assert.Equal(t, DefaultBlockCacheSize, config.Chains[0].BlockCacheSize)
	assert.Equal(t, DefaultRPCTimeoutMillis, config.Chains[0].RPCTimeoutMillis)
	assert.Equal(t, "chain-5", config.Chains[0].Name)
}

func TestValidateConfig(t *testing.T) {
	t.Run("Valid Configuration", func(t *testing.T) {
		assert.NoError(t, validateConfig(validTestConfig()))
	})

	t.Run("Empty Configuration", func(t *testing.T) {
		assert.Error(t, validateConfig(models.Config{}))
	})

	t.Run("No Chains", func(t *testing.T) {
		config := validTestConfig()
		config.Chains = nil
		assert.Error(t, validateConfig(config))
	})

	t.Run("Duplicate Chain", func(t *testing.T) {
		config := validTestConfig()
		config.Chains[1].ChainID = 1
		assert.Error(t, validateConfig(config))
	})

	t.Run("Invalid Vault Address", func(t *testing.T) {
		config := validTestConfig()
		config.Chains[0].VaultAddress = "0x1234"
		assert.Error(t, validateConfig(config))
	})

	t.Run("Executor Without Signer", func(t *testing.T) {
		config := validTestConfig()
		config.Executor.Enabled = true
		config.Executor.BatchSize = 10
		assert.Error(t, validateConfig(config))

		config.ExecutorSigner.PrivateKey = "0xac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"
		assert.NoError(t, validateConfig(config))
	})
}

func TestInitConfig(t *testing.T) {
	t.Run("Config Initialization Success", func(t *testing.T) {
		config := InitConfig("../config.sample.yml", "../sample.env")

		assert.Equal(t, "mongodb-database", config.MongoDB.Database)
		assert.Len(t, config.Chains, 2)
		assert.Equal(t, os.Getenv("EXECUTOR_MNEMONIC"), config.ExecutorSigner.Mnemonic)
	})

	t.Run("Config Initialization Invalid", func(t *testing.T) {
		defer func() { log.StandardLogger().ExitFunc = nil }()
		log.StandardLogger().ExitFunc = func(num int) { panic(fmt.Sprintf("exit %d", num)) }

		t.Setenv("CHAIN_84532_VAULT_ADDRESS", "not-an-address")

		assert.Panics(t, func() { InitConfig("../config.sample.yml", "") }, "InitConfig should panic")
	})
}
